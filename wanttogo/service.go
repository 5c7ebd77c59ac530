// Package wanttogo manages each User's set of destinations they want to visit.
package wanttogo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/xy-planning-network/wanderlust"
)

// An Outcome reports what Add did.
type Outcome int

const (
	// Added means the destination joined the list.
	Added Outcome = iota + 1

	// AlreadyPresent means the list held the destination already and was left unchanged.
	AlreadyPresent
)

func (o Outcome) String() string {
	switch o {
	case Added:
		return "added"
	case AlreadyPresent:
		return "already_present"
	default:
		return "unknown"
	}
}

// A Store is the persistence Service depends on.
type Store interface {
	FindByUsername(ctx context.Context, username string) (wanderlust.User, error)
	AddToWantToGo(ctx context.Context, username, destination string) (bool, error)
}

// Service reads and grows want-to-go lists.
type Service struct {
	catalog wanderlust.Catalog
	store   Store
}

// NewService constructs a *Service.
// Only destinations in catalog may be added.
func NewService(store Store, catalog wanderlust.Catalog) *Service {
	return &Service{catalog: catalog, store: store}
}

// Get returns username's want-to-go list in insertion order.
//
// If username no longer exists, [wanderlust.ErrUserNotFound] returns.
func (s *Service) Get(ctx context.Context, username string) ([]string, error) {
	u, err := s.find(ctx, username)
	if err != nil {
		return nil, err
	}

	return u.WantToGo, nil
}

// Add puts destination on username's want-to-go list unless it is there already.
//
// An empty or unknown destination returns [wanderlust.ErrInvalidInput] without touching the store.
func (s *Service) Add(ctx context.Context, username, destination string) (Outcome, error) {
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return 0, wanderlust.ErrInvalidInput
	}

	d, ok := s.catalog.Lookup(destination)
	if !ok {
		return 0, fmt.Errorf("%w: unknown destination %q", wanderlust.ErrInvalidInput, destination)
	}

	u, err := s.find(ctx, username)
	if err != nil {
		return 0, err
	}

	if u.WantsToGo(d.Name) {
		return AlreadyPresent, nil
	}

	added, err := s.store.AddToWantToGo(ctx, username, d.Name)
	switch {
	case errors.Is(err, wanderlust.ErrNotExist):
		return 0, fmt.Errorf("%w: %s", wanderlust.ErrUserNotFound, err)
	case err != nil:
		return 0, storeErr(err)
	case !added:
		// a concurrent Add won the race
		return AlreadyPresent, nil
	default:
		return Added, nil
	}
}

func (s *Service) find(ctx context.Context, username string) (wanderlust.User, error) {
	u, err := s.store.FindByUsername(ctx, username)
	switch {
	case errors.Is(err, wanderlust.ErrNotExist):
		return wanderlust.User{}, fmt.Errorf("%w: %s", wanderlust.ErrUserNotFound, err)
	case err != nil:
		return wanderlust.User{}, storeErr(err)
	default:
		return u, nil
	}
}

func storeErr(err error) error {
	if errors.Is(err, wanderlust.ErrStoreUnavailable) {
		return err
	}

	return fmt.Errorf("%w: %s", wanderlust.ErrStoreUnavailable, err)
}
