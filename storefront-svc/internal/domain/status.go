package domain

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusConfirmed  OrderStatus = "confirmed"
	StatusPreparing  OrderStatus = "preparing"
	StatusDelivering OrderStatus = "delivering"
	StatusDelivered  OrderStatus = "delivered"
)

var statusOrder = []OrderStatus{
	StatusPending,
	StatusConfirmed,
	StatusPreparing,
	StatusDelivering,
	StatusDelivered,
}

func (s OrderStatus) Valid() bool {
	return s.Rank() >= 0
}

// Rank is the position of s in the delivery sequence, or -1 for an unknown status.
func (s OrderStatus) Rank() int {
	for i, status := range statusOrder {
		if status == s {
			return i
		}
	}
	return -1
}

// Next returns the status that follows s. ok is false for delivered and unknown statuses.
func (s OrderStatus) Next() (next OrderStatus, ok bool) {
	rank := s.Rank()
	if rank < 0 || rank == len(statusOrder)-1 {
		return "", false
	}
	return statusOrder[rank+1], true
}

type PaymentMethod string

const (
	PaymentCredit PaymentMethod = "credit"
	PaymentDebit  PaymentMethod = "debit"
	PaymentPix    PaymentMethod = "pix"
	PaymentCash   PaymentMethod = "cash"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCredit, PaymentDebit, PaymentPix, PaymentCash:
		return true
	}
	return false
}
