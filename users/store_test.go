package users_test

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/wanderlust"
	"github.com/xy-planning-network/wanderlust/postgres"
	"github.com/xy-planning-network/wanderlust/users"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ws = regexp.MustCompile(`\s+`)

var containsMatcher = sqlmock.QueryMatcherFunc(func(expected, actual string) error {
	e := ws.ReplaceAllString(strings.TrimSpace(expected), " ")
	a := ws.ReplaceAllString(strings.TrimSpace(actual), " ")
	if !strings.Contains(a, e) {
		return errors.New("sql mismatch: " + a + " does not contain " + e)
	}
	return nil
})

func newMockStore(t *testing.T) (*users.Store, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(containsMatcher))
	require.Nil(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(gormpg.New(gormpg.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 logger.Discard,
		SkipDefaultTransaction: true,
	})
	require.Nil(t, err)

	return users.NewStore(postgres.NewDB(gdb)), mock
}

var userCols = []string{"id", "username", "password_hash", "want_to_go", "created_at", "updated_at"}

func TestStoreFindByUsername(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		// Arrange
		s, mock := newMockStore(t)
		mock.ExpectQuery("FROM users WHERE username = $1").
			WithArgs("alice").
			WillReturnRows(sqlmock.NewRows(userCols).AddRow(1, "alice", []byte("hash"), "{Bali,Rome}", now, now))

		// Act
		u, err := s.FindByUsername(ctx, "alice")

		// Assert
		require.Nil(t, err)
		require.Equal(t, wanderlust.User{
			ID:           1,
			Username:     "alice",
			PasswordHash: []byte("hash"),
			WantToGo:     []string{"Bali", "Rome"},
			CreatedAt:    now,
			UpdatedAt:    now,
		}, u)
		require.Nil(t, mock.ExpectationsWereMet())
	})

	t.Run("not-found", func(t *testing.T) {
		// Arrange
		s, mock := newMockStore(t)
		mock.ExpectQuery("FROM users WHERE username = $1").WillReturnRows(sqlmock.NewRows(userCols))

		// Act
		_, err := s.FindByUsername(ctx, "ghost")

		// Assert
		require.ErrorIs(t, err, wanderlust.ErrNotExist)
	})

	t.Run("unavailable", func(t *testing.T) {
		// Arrange
		s, mock := newMockStore(t)
		mock.ExpectQuery("FROM users WHERE username = $1").WillReturnError(errors.New("connection refused"))

		// Act
		_, err := s.FindByUsername(ctx, "alice")

		// Assert
		require.ErrorIs(t, err, wanderlust.ErrStoreUnavailable)
		require.NotErrorIs(t, err, wanderlust.ErrNotExist)
	})
}

func TestStoreCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("created", func(t *testing.T) {
		// Arrange
		s, mock := newMockStore(t)
		mock.ExpectQuery(`INSERT INTO "users"`).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

		// Act
		err := s.Create(ctx, "alice", []byte("hash"))

		// Assert
		require.Nil(t, err)
		require.Nil(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate", func(t *testing.T) {
		// Arrange
		s, mock := newMockStore(t)
		mock.ExpectQuery(`INSERT INTO "users"`).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

		// Act
		err := s.Create(ctx, "alice", []byte("hash"))

		// Assert
		require.ErrorIs(t, err, wanderlust.ErrExists)
	})

	t.Run("unavailable", func(t *testing.T) {
		// Arrange
		s, mock := newMockStore(t)
		mock.ExpectQuery(`INSERT INTO "users"`).WillReturnError(errors.New("broken pipe"))

		// Act
		err := s.Create(ctx, "alice", []byte("hash"))

		// Assert
		require.ErrorIs(t, err, wanderlust.ErrStoreUnavailable)
	})
}

func TestStoreAddToWantToGo(t *testing.T) {
	ctx := context.Background()
	const update = "UPDATE users SET want_to_go = array_append(want_to_go, $1)"
	const exists = "SELECT id FROM users WHERE username = $1"

	t.Run("added", func(t *testing.T) {
		// Arrange
		s, mock := newMockStore(t)
		mock.ExpectExec(update).WillReturnResult(sqlmock.NewResult(0, 1))

		// Act
		added, err := s.AddToWantToGo(ctx, "alice", "Bali")

		// Assert
		require.Nil(t, err)
		require.True(t, added)
		require.Nil(t, mock.ExpectationsWereMet())
	})

	t.Run("already-present", func(t *testing.T) {
		// Arrange
		s, mock := newMockStore(t)
		mock.ExpectExec(update).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(exists).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

		// Act
		added, err := s.AddToWantToGo(ctx, "alice", "Bali")

		// Assert
		require.Nil(t, err)
		require.False(t, added)
		require.Nil(t, mock.ExpectationsWereMet())
	})

	t.Run("user-gone", func(t *testing.T) {
		// Arrange
		s, mock := newMockStore(t)
		mock.ExpectExec(update).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(exists).WillReturnRows(sqlmock.NewRows([]string{"id"}))

		// Act
		_, err := s.AddToWantToGo(ctx, "ghost", "Bali")

		// Assert
		require.ErrorIs(t, err, wanderlust.ErrNotExist)
	})

	t.Run("unavailable", func(t *testing.T) {
		// Arrange
		s, mock := newMockStore(t)
		mock.ExpectExec(update).WillReturnError(errors.New("timeout"))

		// Act
		_, err := s.AddToWantToGo(ctx, "alice", "Bali")

		// Assert
		require.ErrorIs(t, err, wanderlust.ErrStoreUnavailable)
	})
}
