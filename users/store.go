package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/xy-planning-network/wanderlust"
	"github.com/xy-planning-network/wanderlust/postgres"
)

// userRow is the database representation of a [wanderlust.User].
type userRow struct {
	ID           uint `gorm:"primaryKey"`
	Username     string
	PasswordHash []byte
	WantToGo     pq.StringArray `gorm:"type:text[]"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (userRow) TableName() string { return "users" }

func (r userRow) toUser() wanderlust.User {
	wtg := make([]string, len(r.WantToGo))
	copy(wtg, r.WantToGo)

	return wanderlust.User{
		ID:           r.ID,
		Username:     r.Username,
		PasswordHash: r.PasswordHash,
		WantToGo:     wtg,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

const (
	findByUsernameSQL = `SELECT id, username, password_hash, want_to_go, created_at, updated_at FROM users WHERE username = ? LIMIT 1`

	// addToWantToGoSQL appends in a single statement,
	// so concurrent adds of the same destination yield one entry.
	addToWantToGoSQL = `UPDATE users SET want_to_go = array_append(want_to_go, ?), updated_at = ? WHERE username = ? AND NOT (? = ANY(want_to_go))`

	existsSQL = `SELECT id FROM users WHERE username = ? LIMIT 1`
)

// Store persists Users in PostgreSQL.
type Store struct {
	db *postgres.DB
}

// NewStore constructs a *Store backed by db.
func NewStore(db *postgres.DB) *Store { return &Store{db: db} }

// FindByUsername retrieves the User whose username is exactly username.
//
// If no such User exists, an error wrapping [wanderlust.ErrNotExist] returns.
func (s *Store) FindByUsername(ctx context.Context, username string) (wanderlust.User, error) {
	var row userRow
	if err := s.db.WithContext(ctx).Raw(&row, findByUsernameSQL, username); err != nil {
		if errors.Is(err, wanderlust.ErrNotExist) {
			return wanderlust.User{}, fmt.Errorf("%w: user %q", wanderlust.ErrNotExist, username)
		}
		return wanderlust.User{}, fmt.Errorf("%w: %s", wanderlust.ErrStoreUnavailable, err)
	}

	return row.toUser(), nil
}

// Create inserts a new User with an empty want-to-go list.
//
// The users_username_key constraint arbitrates concurrent registrations:
// if username is taken, an error wrapping [wanderlust.ErrExists] returns.
func (s *Store) Create(ctx context.Context, username string, passwordHash []byte) error {
	row := &userRow{
		Username:     username,
		PasswordHash: passwordHash,
		WantToGo:     pq.StringArray{},
	}

	err := s.db.WithContext(ctx).Create(row)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, wanderlust.ErrExists):
		return fmt.Errorf("%w: user %q", wanderlust.ErrExists, username)
	default:
		return fmt.Errorf("%w: %s", wanderlust.ErrStoreUnavailable, err)
	}
}

// AddToWantToGo adds destination to username's want-to-go list
// if it is not already a member.
// AddToWantToGo reports whether the list changed.
//
// If no User has username, an error wrapping [wanderlust.ErrNotExist] returns.
func (s *Store) AddToWantToGo(ctx context.Context, username, destination string) (bool, error) {
	db := s.db.WithContext(ctx)
	n, err := db.Exec(addToWantToGoSQL, destination, time.Now().UTC(), username, destination)
	if err != nil {
		return false, fmt.Errorf("%w: %s", wanderlust.ErrStoreUnavailable, err)
	}

	if n > 0 {
		return true, nil
	}

	// NOTE: zero rows means either the destination is present already
	// or the user is gone; tell the two apart.
	var row userRow
	err = db.Raw(&row, existsSQL, username)
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, wanderlust.ErrNotExist):
		return false, fmt.Errorf("%w: user %q", wanderlust.ErrNotExist, username)
	default:
		return false, fmt.Errorf("%w: %s", wanderlust.ErrStoreUnavailable, err)
	}
}
