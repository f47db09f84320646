package database

import (
	"github.com/jmoiron/sqlx"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS users (
	id BIGSERIAL PRIMARY KEY,
	username VARCHAR(16) NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	credit_balance BIGINT NOT NULL DEFAULT 500 CHECK (credit_balance >= 0),
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS items (
	id BIGSERIAL PRIMARY KEY,
	owner_id BIGINT NOT NULL REFERENCES users(id),
	image_file VARCHAR(64) NOT NULL DEFAULT 'default.png',
	brand VARCHAR(64) NOT NULL DEFAULT 'n/a',
	colour VARCHAR(32) NOT NULL,
	category VARCHAR(32) NOT NULL,
	size VARCHAR(8) NOT NULL,
	minimum_credits BIGINT NOT NULL CHECK (minimum_credits > 0),
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS bookings (
	id BIGSERIAL PRIMARY KEY,
	reference VARCHAR(36) NOT NULL UNIQUE,
	item_id BIGINT NOT NULL REFERENCES items(id),
	renter_id BIGINT NOT NULL REFERENCES users(id),
	start_date DATE NOT NULL,
	end_date DATE NOT NULL,
	credits BIGINT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	CHECK (end_date > start_date)
);
CREATE INDEX IF NOT EXISTS idx_bookings_item ON bookings(item_id);
CREATE INDEX IF NOT EXISTS idx_bookings_renter ON bookings(renter_id);

CREATE TABLE IF NOT EXISTS favourites (
	id BIGSERIAL PRIMARY KEY,
	user_id BIGINT NOT NULL REFERENCES users(id),
	item_id BIGINT NOT NULL REFERENCES items(id),
	UNIQUE (user_id, item_id)
);
CREATE INDEX IF NOT EXISTS idx_favourites_item ON favourites(item_id);

CREATE TABLE IF NOT EXISTS credit_ledger (
	id BIGSERIAL PRIMARY KEY,
	booking_ref VARCHAR(36) NOT NULL,
	user_id BIGINT NOT NULL REFERENCES users(id),
	entry_type VARCHAR(6) NOT NULL CHECK (entry_type IN ('DEBIT', 'CREDIT')),
	amount BIGINT NOT NULL,
	balance_after BIGINT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_credit_ledger_user ON credit_ledger(user_id);
`

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	credit_balance INTEGER NOT NULL DEFAULT 500 CHECK (credit_balance >= 0),
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS items (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	owner_id INTEGER NOT NULL REFERENCES users(id),
	image_file TEXT NOT NULL DEFAULT 'default.png',
	brand TEXT NOT NULL DEFAULT 'n/a',
	colour TEXT NOT NULL,
	category TEXT NOT NULL,
	size TEXT NOT NULL,
	minimum_credits INTEGER NOT NULL CHECK (minimum_credits > 0),
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS bookings (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	reference TEXT NOT NULL UNIQUE,
	item_id INTEGER NOT NULL REFERENCES items(id),
	renter_id INTEGER NOT NULL REFERENCES users(id),
	start_date TEXT NOT NULL,
	end_date TEXT NOT NULL,
	credits INTEGER NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	CHECK (end_date > start_date)
);
CREATE INDEX IF NOT EXISTS idx_bookings_item ON bookings(item_id);
CREATE INDEX IF NOT EXISTS idx_bookings_renter ON bookings(renter_id);

CREATE TABLE IF NOT EXISTS favourites (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL REFERENCES users(id),
	item_id INTEGER NOT NULL REFERENCES items(id),
	UNIQUE (user_id, item_id)
);
CREATE INDEX IF NOT EXISTS idx_favourites_item ON favourites(item_id);

CREATE TABLE IF NOT EXISTS credit_ledger (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	booking_ref TEXT NOT NULL,
	user_id INTEGER NOT NULL REFERENCES users(id),
	entry_type TEXT NOT NULL CHECK (entry_type IN ('DEBIT', 'CREDIT')),
	amount INTEGER NOT NULL,
	balance_after INTEGER NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_credit_ledger_user ON credit_ledger(user_id);
`

// Migrate creates any missing tables. It is safe to run on every start.
func Migrate(db *sqlx.DB) error {
	schema := postgresSchema
	if db.DriverName() == "sqlite" {
		schema = sqliteSchema
	}
	_, err := db.Exec(schema)
	return err
}
