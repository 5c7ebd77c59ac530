package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/xy-planning-network/wanderlust"
	"gorm.io/gorm"
)

type DB struct {
	// Some *gorm.DB methods are not thread-safe
	// and mutate the state of the *gorm.DB backing DB.
	// Every DB method starts from a fresh *gorm.Session.
	db *gorm.DB
}

// NewDB constructs a *DB from a *gorm.DB.
func NewDB(db *gorm.DB) *DB { return &DB{db: db} }

// DB exposes the underlying *gorm.DB backing DB.
//
// NB: use in exceptional circumstances only.
func (db *DB) DB() *gorm.DB { return db.db }

// WithContext scopes all queries issued through the returned *DB to ctx.
func (db *DB) WithContext(ctx context.Context) *DB {
	return &DB{db: db.db.WithContext(ctx)}
}

// Create inserts value into the database, updating value with new data yielding from that insertion.
// Value is a pointer to a struct that is a database table.
//
// If value violates a unique constraint defined by the database, ErrExists returns.
func (db *DB) Create(value any) error {
	err := db.db.Session(&gorm.Session{}).Create(value).Error
	switch {
	case err == nil:
		return nil

	case IsUniqueViolation(err):
		return fmt.Errorf("%w: %s", wanderlust.ErrExists, err)

	default:
		return fmt.Errorf("%w: failed creating %T: %s", wanderlust.ErrUnexpected, value, err)
	}
}

// Exec executes SQL query sql, passing values to it,
// and returns the number of rows affected.
//
// Exec does not write any data resulting from the query into Go values.
func (db *DB) Exec(sql string, values ...any) (int64, error) {
	res := db.db.Session(&gorm.Session{}).Exec(sql, values...)
	if res.Error != nil {
		return 0, fmt.Errorf("%w: %s", wanderlust.ErrUnexpected, res.Error)
	}

	return res.RowsAffected, nil
}

// Raw executes sql, passing values to it, and scans the results into dest.
//
// If no rows are found, ErrNotExist returns.
func (db *DB) Raw(dest any, sql string, values ...any) error {
	res := db.db.Session(&gorm.Session{}).Raw(sql, values...).Scan(dest)
	err := res.Error
	if err != nil && errSQLSyntax.MatchString(err.Error()) {
		return fmt.Errorf("%w: %s", wanderlust.ErrNotValid, err)
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s", wanderlust.ErrNotExist, err)
	}

	if err != nil {
		return fmt.Errorf("%w: failed scanning results: %s", wanderlust.ErrUnexpected, err)
	}

	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: no rows", wanderlust.ErrNotExist)
	}

	return nil
}

// Ping confirms the database is reachable.
func (db *DB) Ping(ctx context.Context) error {
	sqlDB, err := db.db.DB()
	if err != nil {
		return fmt.Errorf("%w: %s", wanderlust.ErrStoreUnavailable, err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %s", wanderlust.ErrStoreUnavailable, err)
	}

	return nil
}

// Close releases the connection pool.
func (db *DB) Close() error {
	sqlDB, err := db.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}
