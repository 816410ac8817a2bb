package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"foodcourt/storefront-svc/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountLocked      = errors.New("account is locked")
	ErrAuthUnavailable    = errors.New("authentication service unavailable")
	ErrInvalidToken       = errors.New("invalid or expired session token")
)

type Credentials struct {
	Email    string
	Password string
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Password string `json:"password"`
}

// StubAuthenticator accepts any credentials and returns a fabricated user bound
// to the given email.
type StubAuthenticator struct{}

func (StubAuthenticator) Authenticate(ctx context.Context, creds Credentials) (domain.User, error) {
	return domain.User{
		ID:      "1",
		Name:    "João Silva",
		Email:   creds.Email,
		Phone:   "(11) 99999-9999",
		Address: "Rua das Flores, 123 - São Paulo, SP",
	}, nil
}

type AuthConfig struct {
	Delay    time.Duration
	Secret   []byte
	TokenTTL time.Duration
}

// AuthService holds the single session of the running client.
type AuthService struct {
	mu            sync.Mutex
	session       domain.AuthSession
	authenticator Authenticator
	config        AuthConfig
	logger        *zap.Logger
	now           func() time.Time
}

func NewAuthService(authenticator Authenticator, cfg AuthConfig, logger *zap.Logger) *AuthService {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	return &AuthService{
		authenticator: authenticator,
		config:        cfg,
		logger:        logger,
		now:           time.Now,
	}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (domain.AuthSession, error) {
	if err := sleep(ctx, s.config.Delay); err != nil {
		return domain.AuthSession{}, err
	}

	user, err := s.authenticator.Authenticate(ctx, Credentials{Email: email, Password: password})
	if err != nil {
		s.logger.Warn("login rejected", zap.String("email", email), zap.Error(err))
		return domain.AuthSession{}, err
	}

	return s.startSession(user)
}

func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (domain.AuthSession, error) {
	if err := sleep(ctx, s.config.Delay); err != nil {
		return domain.AuthSession{}, err
	}

	user := domain.User{
		ID:      uuid.NewString(),
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   req.Phone,
		Address: req.Address,
	}
	return s.startSession(user)
}

func (s *AuthService) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.User != nil {
		s.logger.Info("user logged out", zap.String("user_id", s.session.User.ID))
	}
	s.session = domain.AuthSession{}
}

func (s *AuthService) Session() domain.AuthSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := s.session
	if session.User != nil {
		user := *session.User
		session.User = &user
	}
	return session
}

// VerifyToken checks the signature and expiry of token and that it belongs to the
// current session.
func (s *AuthService) VerifyToken(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return s.config.Secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.session.IsAuthenticated || s.session.Token != tokenString {
		return ErrInvalidToken
	}
	return nil
}

func (s *AuthService) startSession(user domain.User) (domain.AuthSession, error) {
	token, err := s.issueToken(user)
	if err != nil {
		return domain.AuthSession{}, fmt.Errorf("issue session token: %w", err)
	}

	s.mu.Lock()
	s.session = domain.AuthSession{User: &user, IsAuthenticated: true, Token: token}
	s.mu.Unlock()

	s.logger.Info("session started", zap.String("user_id", user.ID), zap.String("email", user.Email))
	return s.Session(), nil
}

func (s *AuthService) issueToken(user domain.User) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"jti":     uuid.NewString(),
		"iat":     now.Unix(),
		"exp":     now.Add(s.config.TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.config.Secret)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
