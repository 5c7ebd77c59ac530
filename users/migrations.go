package users

import (
	"github.com/xy-planning-network/wanderlust/postgres"
	"gorm.io/gorm"
)

// Migrations creates and evolves the users table.
// Run them through [postgres.Connect] at startup.
var Migrations = []postgres.Migration{
	{
		Key: "0001_create_users",
		Executor: func(tx *gorm.DB) error {
			return tx.Exec(`
				CREATE TABLE IF NOT EXISTS users (
					id SERIAL PRIMARY KEY,
					username text NOT NULL,
					password_hash bytea NOT NULL,
					want_to_go text[] NOT NULL DEFAULT '{}',
					created_at timestamptz NOT NULL DEFAULT now(),
					updated_at timestamptz NOT NULL DEFAULT now()
				)
			`).Error
		},
	},
	{
		Key: "0002_users_username_key",
		Executor: func(tx *gorm.DB) error {
			return tx.Exec(`ALTER TABLE users ADD CONSTRAINT users_username_key UNIQUE (username)`).Error
		},
	},
}
