package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/xy-planning-network/wanderlust"
	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used unless overridden with WithCost.
const DefaultCost = 10

// A UserStore is the persistence Service depends on.
type UserStore interface {
	FindByUsername(ctx context.Context, username string) (wanderlust.User, error)
	Create(ctx context.Context, username string, passwordHash []byte) error
}

// Service verifies credentials and registers new Users.
type Service struct {
	cost  int
	dummy []byte
	users UserStore
}

// A ServiceOptFn configures a Service when constructing a new one.
type ServiceOptFn func(*Service)

// WithCost sets the bcrypt cost used to hash passwords.
// Costs outside bcrypt's accepted range are ignored.
func WithCost(cost int) ServiceOptFn {
	return func(s *Service) {
		if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
			return
		}
		s.cost = cost
	}
}

// NewService constructs a *Service backed by users.
func NewService(users UserStore, opts ...ServiceOptFn) (*Service, error) {
	if users == nil {
		return nil, fmt.Errorf("%w: nil UserStore", wanderlust.ErrBadConfig)
	}

	s := &Service{cost: DefaultCost, users: users}
	for _, opt := range opts {
		opt(s)
	}

	// dummy is compared against when a username is unknown
	// so both failure paths cost one bcrypt comparison.
	dummy, err := bcrypt.GenerateFromPassword([]byte("wanderlust-dummy-password"), s.cost)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", wanderlust.ErrUnexpected, err)
	}
	s.dummy = dummy

	return s, nil
}

// Login verifies password against the stored hash for username.
//
// Login returns [wanderlust.ErrInvalidCredentials] for empty input, an unknown username,
// and a wrong password alike.
// If the store cannot be reached, an error wrapping [wanderlust.ErrStoreUnavailable] returns.
func (s *Service) Login(ctx context.Context, username, password string) (wanderlust.User, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return wanderlust.User{}, wanderlust.ErrInvalidCredentials
	}

	u, err := s.users.FindByUsername(ctx, username)
	if errors.Is(err, wanderlust.ErrNotExist) {
		_ = bcrypt.CompareHashAndPassword(s.dummy, []byte(password))
		return wanderlust.User{}, wanderlust.ErrInvalidCredentials
	}

	if err != nil {
		return wanderlust.User{}, storeErr(err)
	}

	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)); err != nil {
		return wanderlust.User{}, wanderlust.ErrInvalidCredentials
	}

	return u, nil
}

// Register creates a User for username with a salted hash of password.
//
// Register returns [wanderlust.ErrInvalidInput] when either value is empty
// and [wanderlust.ErrUsernameTaken] when username already belongs to a User,
// including when a concurrent registration claims it first.
func (s *Service) Register(ctx context.Context, username, password string) error {
	if strings.TrimSpace(username) == "" || password == "" {
		return wanderlust.ErrInvalidInput
	}

	_, err := s.users.FindByUsername(ctx, username)
	switch {
	case err == nil:
		return wanderlust.ErrUsernameTaken
	case !errors.Is(err, wanderlust.ErrNotExist):
		return storeErr(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return fmt.Errorf("%w: %s", wanderlust.ErrInvalidInput, err)
	}
	if err != nil {
		return fmt.Errorf("%w: %s", wanderlust.ErrUnexpected, err)
	}

	err = s.users.Create(ctx, username, hash)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, wanderlust.ErrExists):
		return wanderlust.ErrUsernameTaken
	default:
		return storeErr(err)
	}
}

func storeErr(err error) error {
	if errors.Is(err, wanderlust.ErrStoreUnavailable) {
		return err
	}

	return fmt.Errorf("%w: %s", wanderlust.ErrStoreUnavailable, err)
}
