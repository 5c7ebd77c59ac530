package userstest_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/wanderlust"
	"github.com/xy-planning-network/wanderlust/users"
	"github.com/xy-planning-network/wanderlust/users/userstest"
)

var _ users.Storer = (*userstest.Store)(nil)

func TestStoreConcurrentAdds(t *testing.T) {
	// Arrange
	ctx := context.Background()
	s := userstest.NewStore()
	require.Nil(t, s.Create(ctx, "alice", []byte("hash")))

	// Act
	var wg sync.WaitGroup
	added := make(chan bool, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := s.AddToWantToGo(ctx, "alice", "Bali")
			require.Nil(t, err)
			added <- ok
		}()
	}
	wg.Wait()
	close(added)

	// Assert
	var n int
	for ok := range added {
		if ok {
			n++
		}
	}
	require.Equal(t, 1, n)

	u, err := s.FindByUsername(ctx, "alice")
	require.Nil(t, err)
	require.Equal(t, []string{"Bali"}, u.WantToGo)
}

func TestStoreConcurrentCreates(t *testing.T) {
	// Arrange
	ctx := context.Background()
	s := userstest.NewStore()

	// Act
	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- s.Create(ctx, "bob", []byte("hash"))
		}()
	}
	wg.Wait()
	close(errs)

	// Assert
	var created, taken int
	for err := range errs {
		switch {
		case err == nil:
			created++
		default:
			require.ErrorIs(t, err, wanderlust.ErrExists)
			taken++
		}
	}
	require.Equal(t, 1, created)
	require.Equal(t, 9, taken)
}
