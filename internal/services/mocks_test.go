package services

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/closetshare/backend/internal/config"
	"github.com/closetshare/backend/internal/database"
	"github.com/closetshare/backend/internal/models"
	"github.com/closetshare/backend/internal/store"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event RentalEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

var fixedNow = time.Date(2024, time.January, 1, 9, 30, 0, 0, time.UTC)

func day(s string) models.Date {
	d, err := models.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func span(start, end string) models.DateRange {
	return models.DateRange{Start: day(start), End: day(end)}
}

func bookingOn(start, end string) models.Booking {
	return models.Booking{StartDate: day(start), EndDate: day(end)}
}

// newMockStore returns a postgres-flavoured store backed by sqlmock.
func newMockStore(t *testing.T) (*store.SQLStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return store.New(sqlx.NewDb(db, "postgres")), mock
}

// newSQLiteStore returns a migrated in-memory store.
func newSQLiteStore(t *testing.T) (*store.SQLStore, *sqlx.DB) {
	t.Helper()
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(db))
	return store.New(db), db
}

func seedUser(t *testing.T, st store.Store, username string, balance int64) int64 {
	t.Helper()
	u := &models.User{Username: username, PasswordHash: "x", CreditBalance: balance, CreatedAt: fixedNow}
	require.NoError(t, st.CreateUser(context.Background(), u))
	return u.ID
}

func seedItem(t *testing.T, st store.Store, ownerID int64, colour, brand, category string, credits int64) int64 {
	t.Helper()
	item := &models.Item{
		OwnerID:        ownerID,
		ImageFile:      models.DefaultImageFile,
		Brand:          brand,
		Colour:         colour,
		Category:       category,
		Size:           "M",
		MinimumCredits: credits,
	}
	require.NoError(t, st.CreateItem(context.Background(), item))
	return item.ID
}

func newTestRentalService(st store.Store, events EventPublisher) *RentalService {
	s := NewRentalService(st, config.DefaultRentalConfig(), events)
	s.now = func() time.Time { return fixedNow }
	s.ledger.now = s.now
	return s
}
