package users

import (
	"context"

	"github.com/xy-planning-network/wanderlust"
)

//go:generate mockgen -destination=./usersmock/store.go -package=usersmock . Storer

// A Storer is the full set of User persistence operations.
// [*Store] implements it against PostgreSQL
// and userstest.Store implements it in memory.
type Storer interface {
	FindByUsername(ctx context.Context, username string) (wanderlust.User, error)
	Create(ctx context.Context, username string, passwordHash []byte) error
	AddToWantToGo(ctx context.Context, username, destination string) (bool, error)
}

var _ Storer = (*Store)(nil)
