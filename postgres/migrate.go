package postgres

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Migration is used to hold the database key and function for creating the migration.
type Migration struct {
	Executor func(*gorm.DB) error
	Key      string
}

func (m Migration) execute(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := m.Executor(tx); err != nil {
			return err
		}

		return tx.Exec(`INSERT INTO migrations (key, ran_at) VALUES (?, ?)`, m.Key, time.Now().Unix()).Error
	})
}

// MigrateUp ensures schema and the migrations table exist
// and then runs, in order, each Migration whose key has not yet been recorded.
//
// Each Migration runs in its own transaction along with its record,
// so a failed Migration leaves no trace and is retried on the next boot.
func MigrateUp(db *gorm.DB, schema string, migrations []Migration) error {
	if err := db.Exec(fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s", schema)).Error; err != nil {
		return fmt.Errorf("failed creating %s schema: %w", schema, err)
	}

	err := db.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			id SERIAL PRIMARY KEY,
			ran_at bigint,
			key text,
			CONSTRAINT migrations_key UNIQUE (key)
		)
	`).Error
	if err != nil {
		return fmt.Errorf("failed creating migrations table: %w", err)
	}

	var ran []string
	if err := db.Raw("SELECT key FROM migrations").Scan(&ran).Error; err != nil {
		return fmt.Errorf("failed fetching ran migrations: %w", err)
	}

	for _, m := range pending(ran, migrations) {
		if err := m.execute(db); err != nil {
			return fmt.Errorf("failed running migration %s: %w", m.Key, err)
		}
	}

	return nil
}

// pending filters all down to the Migrations whose keys are not in ran.
func pending(ran []string, all []Migration) []Migration {
	done := make(map[string]bool, len(ran))
	for _, k := range ran {
		done[k] = true
	}

	var out []Migration
	for _, m := range all {
		if !done[m.Key] {
			out = append(out, m)
		}
	}

	return out
}
