package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/closetshare/backend/internal/models"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	itemColumns    = `id, owner_id, image_file, brand, colour, category, size, minimum_credits`
	bookingColumns = `id, reference, item_id, renter_id, start_date, end_date, credits, created_at`
	userColumns    = `id, username, password_hash, credit_balance, created_at`
)

// queries runs the shared reads against either the pool or an open transaction.
// Statements are written with ? placeholders and rebound for the driver.
type queries struct {
	ext        sqlx.ExtContext
	lockSuffix string
}

func (q queries) GetItem(ctx context.Context, itemID int64) (*models.Item, error) {
	return q.getItem(ctx, itemID, "")
}

func (q queries) getItem(ctx context.Context, itemID int64, suffix string) (*models.Item, error) {
	var item models.Item
	query := q.ext.Rebind(`SELECT ` + itemColumns + ` FROM items WHERE id = ?` + suffix)
	if err := sqlx.GetContext(ctx, q.ext, &item, query, itemID); err != nil {
		return nil, notFound(err)
	}
	return &item, nil
}

func (q queries) GetBookingsForItem(ctx context.Context, itemID int64) ([]models.Booking, error) {
	var bookings []models.Booking
	query := q.ext.Rebind(`SELECT ` + bookingColumns + ` FROM bookings WHERE item_id = ? ORDER BY start_date`)
	if err := sqlx.SelectContext(ctx, q.ext, &bookings, query, itemID); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (q queries) GetFavouriteCount(ctx context.Context, itemID int64) (int, error) {
	var count int
	query := q.ext.Rebind(`SELECT COUNT(*) FROM favourites WHERE item_id = ?`)
	if err := sqlx.GetContext(ctx, q.ext, &count, query, itemID); err != nil {
		return 0, err
	}
	return count, nil
}

func (q queries) GetUserBalance(ctx context.Context, userID int64) (int64, error) {
	return q.getBalance(ctx, userID, "")
}

func (q queries) getBalance(ctx context.Context, userID int64, suffix string) (int64, error) {
	var balance int64
	query := q.ext.Rebind(`SELECT credit_balance FROM users WHERE id = ?` + suffix)
	if err := sqlx.GetContext(ctx, q.ext, &balance, query, userID); err != nil {
		return 0, notFound(err)
	}
	return balance, nil
}

type sqlTx struct {
	tx *sqlx.Tx
	queries
}

func (t *sqlTx) LockItem(ctx context.Context, itemID int64) (*models.Item, error) {
	return t.getItem(ctx, itemID, t.lockSuffix)
}

func (t *sqlTx) LockUserBalance(ctx context.Context, userID int64) (int64, error) {
	return t.getBalance(ctx, userID, t.lockSuffix)
}

func (t *sqlTx) UpdateUserBalance(ctx context.Context, userID, balance int64) error {
	result, err := t.tx.ExecContext(ctx,
		t.tx.Rebind(`UPDATE users SET credit_balance = ? WHERE id = ?`), balance, userID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (t *sqlTx) InsertBooking(ctx context.Context, booking *models.Booking) error {
	query := t.tx.Rebind(`INSERT INTO bookings (reference, item_id, renter_id, start_date, end_date, credits, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?) RETURNING id`)
	return t.tx.QueryRowxContext(ctx, query,
		booking.Reference, booking.ItemID, booking.RenterID, booking.StartDate, booking.EndDate,
		booking.Credits, booking.CreatedAt).Scan(&booking.ID)
}

func (t *sqlTx) InsertLedgerEntry(ctx context.Context, entry *models.LedgerEntry) error {
	_, err := t.tx.ExecContext(ctx, t.tx.Rebind(`INSERT INTO credit_ledger (booking_ref, user_id, entry_type, amount, balance_after, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`),
		entry.BookingRef, entry.UserID, entry.EntryType, entry.Amount, entry.BalanceAfter, entry.CreatedAt)
	return err
}

func (t *sqlTx) Commit() error {
	return t.tx.Commit()
}

func (t *sqlTx) Rollback() error {
	if err := t.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return err
	}
	return nil
}

// SQLStore implements Store on postgres (lib/pq) or sqlite (modernc).
// Row locks are only issued on postgres; sqlite callers serialise writers by
// running the pool with a single connection.
type SQLStore struct {
	db *sqlx.DB
	queries
}

func New(db *sqlx.DB) *SQLStore {
	lockSuffix := ""
	if sqlx.BindType(db.DriverName()) == sqlx.DOLLAR {
		lockSuffix = " FOR UPDATE"
	}
	return &SQLStore{db: db, queries: queries{ext: db, lockSuffix: lockSuffix}}
}

func (s *SQLStore) BeginTx(ctx context.Context) (Tx, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &sqlTx{tx: tx, queries: queries{ext: tx, lockSuffix: s.lockSuffix}}, nil
}

func (s *SQLStore) CreateUser(ctx context.Context, user *models.User) error {
	query := s.db.Rebind(`INSERT INTO users (username, password_hash, credit_balance, created_at)
		VALUES (?, ?, ?, ?) RETURNING id`)
	err := s.db.QueryRowxContext(ctx, query,
		user.Username, user.PasswordHash, user.CreditBalance, user.CreatedAt).Scan(&user.ID)
	if err != nil && isUniqueViolation(err) {
		return ErrConflict
	}
	return err
}

func (s *SQLStore) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	var user models.User
	query := s.db.Rebind(`SELECT ` + userColumns + ` FROM users WHERE id = ?`)
	if err := s.db.GetContext(ctx, &user, query, userID); err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (s *SQLStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	query := s.db.Rebind(`SELECT ` + userColumns + ` FROM users WHERE username = ?`)
	if err := s.db.GetContext(ctx, &user, query, username); err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (s *SQLStore) CreateItem(ctx context.Context, item *models.Item) error {
	query := s.db.Rebind(`INSERT INTO items (owner_id, image_file, brand, colour, category, size, minimum_credits)
		VALUES (?, ?, ?, ?, ?, ?, ?) RETURNING id`)
	return s.db.QueryRowxContext(ctx, query,
		item.OwnerID, item.ImageFile, item.Brand, item.Colour, item.Category, item.Size,
		item.MinimumCredits).Scan(&item.ID)
}

func (s *SQLStore) ListItems(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	err := s.db.SelectContext(ctx, &items, `SELECT `+itemColumns+` FROM items ORDER BY id`)
	return items, err
}

// FindItemsByAttributes returns items whose colour, brand or category equals
// any of values.
func (s *SQLStore) FindItemsByAttributes(ctx context.Context, values []string) ([]models.Item, error) {
	if len(values) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`SELECT `+itemColumns+` FROM items
		WHERE colour IN (?) OR brand IN (?) OR category IN (?) ORDER BY id`, values, values, values)
	if err != nil {
		return nil, err
	}

	var items []models.Item
	err = s.db.SelectContext(ctx, &items, s.db.Rebind(query), args...)
	return items, err
}

// AddFavourite reports whether a new favourite row was written.
func (s *SQLStore) AddFavourite(ctx context.Context, userID, itemID int64) (bool, error) {
	result, err := s.db.ExecContext(ctx, s.db.Rebind(`INSERT INTO favourites (user_id, item_id)
		VALUES (?, ?) ON CONFLICT (user_id, item_id) DO NOTHING`), userID, itemID)
	return affected(result, err)
}

func (s *SQLStore) RemoveFavourite(ctx context.Context, userID, itemID int64) (bool, error) {
	result, err := s.db.ExecContext(ctx,
		s.db.Rebind(`DELETE FROM favourites WHERE user_id = ? AND item_id = ?`), userID, itemID)
	return affected(result, err)
}

func (s *SQLStore) ListFavouriteItems(ctx context.Context, userID int64) ([]models.Item, error) {
	var items []models.Item
	query := s.db.Rebind(`SELECT i.id, i.owner_id, i.image_file, i.brand, i.colour, i.category, i.size, i.minimum_credits
		FROM favourites f
		JOIN items i ON i.id = f.item_id
		WHERE f.user_id = ?
		ORDER BY f.id`)
	err := s.db.SelectContext(ctx, &items, query, userID)
	return items, err
}

func (s *SQLStore) ListBookingsForRenter(ctx context.Context, renterID int64) ([]models.Booking, error) {
	var bookings []models.Booking
	query := s.db.Rebind(`SELECT ` + bookingColumns + ` FROM bookings WHERE renter_id = ? ORDER BY start_date DESC`)
	err := s.db.SelectContext(ctx, &bookings, query, renterID)
	return bookings, err
}

func (s *SQLStore) GetBookingByReference(ctx context.Context, reference string) (*models.Booking, error) {
	var booking models.Booking
	query := s.db.Rebind(`SELECT ` + bookingColumns + ` FROM bookings WHERE reference = ?`)
	if err := s.db.GetContext(ctx, &booking, query, reference); err != nil {
		return nil, notFound(err)
	}
	return &booking, nil
}

func (s *SQLStore) ListLedgerEntries(ctx context.Context, userID int64) ([]models.LedgerEntry, error) {
	var entries []models.LedgerEntry
	query := s.db.Rebind(`SELECT id, booking_ref, user_id, entry_type, amount, balance_after, created_at
		FROM credit_ledger WHERE user_id = ? ORDER BY id DESC`)
	err := s.db.SelectContext(ctx, &entries, query, userID)
	return entries, err
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func affected(result sql.Result, err error) (bool, error) {
	if err != nil {
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
