// Package store is the data-access layer. Every read the rental engine needs is
// available both outside and inside a transaction, so an availability check,
// the balance checks and the booking insert can share one Tx.
package store

import (
	"context"
	"errors"

	"github.com/closetshare/backend/internal/models"
)

var (
	ErrNotFound = errors.New("store: not found")
	ErrConflict = errors.New("store: conflict")
)

// Queries are the reads shared by Store and Tx.
type Queries interface {
	GetItem(ctx context.Context, itemID int64) (*models.Item, error)
	GetBookingsForItem(ctx context.Context, itemID int64) ([]models.Booking, error)
	GetFavouriteCount(ctx context.Context, itemID int64) (int, error)
	GetUserBalance(ctx context.Context, userID int64) (int64, error)
}

// Tx is one unit of work. Lock* methods take row locks held until Commit or
// Rollback; Rollback after Commit is a no-op.
type Tx interface {
	Queries
	LockItem(ctx context.Context, itemID int64) (*models.Item, error)
	LockUserBalance(ctx context.Context, userID int64) (int64, error)
	UpdateUserBalance(ctx context.Context, userID, balance int64) error
	InsertBooking(ctx context.Context, booking *models.Booking) error
	InsertLedgerEntry(ctx context.Context, entry *models.LedgerEntry) error
	Commit() error
	Rollback() error
}

type Store interface {
	Queries
	BeginTx(ctx context.Context) (Tx, error)

	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, userID int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	CreateItem(ctx context.Context, item *models.Item) error
	ListItems(ctx context.Context) ([]models.Item, error)
	FindItemsByAttributes(ctx context.Context, values []string) ([]models.Item, error)

	AddFavourite(ctx context.Context, userID, itemID int64) (bool, error)
	RemoveFavourite(ctx context.Context, userID, itemID int64) (bool, error)
	ListFavouriteItems(ctx context.Context, userID int64) ([]models.Item, error)

	ListBookingsForRenter(ctx context.Context, renterID int64) ([]models.Booking, error)
	GetBookingByReference(ctx context.Context, reference string) (*models.Booking, error)
	ListLedgerEntries(ctx context.Context, userID int64) ([]models.LedgerEntry, error)
}
