package service

import (
	"time"

	"foodcourt/storefront-svc/internal/domain"
)

// TimelineStep moves an order to Status once Offset has passed since creation.
type TimelineStep struct {
	Offset time.Duration
	Status domain.OrderStatus
}

func DefaultTimeline() []TimelineStep {
	return []TimelineStep{
		{Offset: 2 * time.Second, Status: domain.StatusConfirmed},
		{Offset: 5 * time.Second, Status: domain.StatusPreparing},
		{Offset: 15 * time.Second, Status: domain.StatusDelivering},
	}
}

// Timer is a pending callback that can be stopped before it fires.
type Timer interface {
	Stop() bool
}

type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

func RealScheduler() Scheduler {
	return realScheduler{}
}
