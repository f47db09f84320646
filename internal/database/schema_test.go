package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_SQLite(t *testing.T) {
	db, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(db))
	// second run must be a no-op
	require.NoError(t, Migrate(db))

	var tables []string
	err = db.Select(&tables, `SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`)
	require.NoError(t, err)
	assert.Equal(t, []string{"bookings", "credit_ledger", "favourites", "items", "users"}, tables)
}

func TestMigrate_SQLiteConstraints(t *testing.T) {
	db, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, Migrate(db))

	_, err = db.Exec(`INSERT INTO users (username, password_hash) VALUES ('janedoe', 'x')`)
	require.NoError(t, err)

	var balance int64
	require.NoError(t, db.Get(&balance, `SELECT credit_balance FROM users WHERE username = 'janedoe'`))
	assert.Equal(t, int64(500), balance)

	t.Run("negative balance rejected", func(t *testing.T) {
		_, err := db.Exec(`UPDATE users SET credit_balance = -1 WHERE username = 'janedoe'`)
		assert.Error(t, err)
	})

	t.Run("duplicate favourite rejected", func(t *testing.T) {
		_, err := db.Exec(`INSERT INTO items (owner_id, colour, category, size, minimum_credits) VALUES (1, 'Red', 'Dress', 'M', 100)`)
		require.NoError(t, err)
		_, err = db.Exec(`INSERT INTO favourites (user_id, item_id) VALUES (1, 1)`)
		require.NoError(t, err)
		_, err = db.Exec(`INSERT INTO favourites (user_id, item_id) VALUES (1, 1)`)
		assert.Error(t, err)
	})

	t.Run("empty booking range rejected", func(t *testing.T) {
		_, err := db.Exec(`INSERT INTO bookings (reference, item_id, renter_id, start_date, end_date, credits)
			VALUES ('ref-1', 1, 1, '2024-01-10', '2024-01-10', 100)`)
		assert.Error(t, err)
	})
}

func TestMigrate_Postgres(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	db := sqlx.NewDb(mockDB, "postgres")
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS users \\( id BIGSERIAL PRIMARY KEY").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, Migrate(db))
	assert.NoError(t, mock.ExpectationsWereMet())
}
