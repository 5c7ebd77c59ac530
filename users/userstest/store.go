// Package userstest provides an in-memory users.Storer for tests.
package userstest

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/xy-planning-network/wanderlust"
)

// Store is a goroutine-safe, in-memory users.Storer.
// It upholds the same uniqueness and set-membership guarantees as the PostgreSQL store.
type Store struct {
	mu     sync.Mutex
	nextID uint
	users  map[string]*wanderlust.User

	// Err, when set, is returned from every method.
	Err error
}

// NewStore constructs an empty *Store.
func NewStore() *Store {
	return &Store{users: make(map[string]*wanderlust.User)}
}

func (s *Store) FindByUsername(_ context.Context, username string) (wanderlust.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return wanderlust.User{}, s.Err
	}

	u, ok := s.users[username]
	if !ok {
		return wanderlust.User{}, fmt.Errorf("%w: user %q", wanderlust.ErrNotExist, username)
	}

	cp := *u
	cp.WantToGo = append([]string{}, u.WantToGo...)
	return cp, nil
}

func (s *Store) Create(_ context.Context, username string, passwordHash []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return s.Err
	}

	if _, ok := s.users[username]; ok {
		return fmt.Errorf("%w: user %q", wanderlust.ErrExists, username)
	}

	s.nextID++
	now := time.Now()
	s.users[username] = &wanderlust.User{
		ID:           s.nextID,
		Username:     username,
		PasswordHash: passwordHash,
		WantToGo:     []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return nil
}

func (s *Store) AddToWantToGo(_ context.Context, username, destination string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return false, s.Err
	}

	u, ok := s.users[username]
	if !ok {
		return false, fmt.Errorf("%w: user %q", wanderlust.ErrNotExist, username)
	}

	for _, d := range u.WantToGo {
		if d == destination {
			return false, nil
		}
	}

	u.WantToGo = append(u.WantToGo, destination)
	u.UpdatedAt = time.Now()
	return true, nil
}

// Delete removes username, simulating a record vanishing out from under a session.
func (s *Store) Delete(username string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.users, username)
}
