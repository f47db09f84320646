package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/closetshare/backend/internal/config"
	"github.com/closetshare/backend/internal/models"
	"github.com/closetshare/backend/internal/store"
	"github.com/google/uuid"
)

type RentalService struct {
	store   store.Store
	ledger  *CreditLedger
	pricing *PricingEngine
	events  EventPublisher
	cfg     *config.RentalConfig
	now     func() time.Time
}

// NewRentalService wires the rental engine. events may be nil.
func NewRentalService(st store.Store, cfg *config.RentalConfig, events EventPublisher) *RentalService {
	return &RentalService{
		store:   st,
		ledger:  NewCreditLedger(),
		pricing: NewPricingEngine(cfg),
		events:  events,
		cfg:     cfg,
		now:     time.Now,
	}
}

func (s *RentalService) today() models.Date {
	return models.DateOf(s.now().UTC())
}

// AttemptRental books itemID for renterID over period, moving the quoted price
// from the renter to the owner. The checks, the transfer and the booking insert
// run in one transaction holding the item lock, so two overlapping requests for
// the same item cannot both succeed.
func (s *RentalService) AttemptRental(ctx context.Context, renterID, itemID int64, period models.DateRange) (*models.Booking, error) {
	if !period.Valid() {
		return nil, ErrInvalidDateRange
	}

	tx, err := s.store.BeginTx(ctx)
	if err != nil {
		return nil, transactionFailed("begin", err)
	}
	defer tx.Rollback()

	item, err := tx.LockItem(ctx, itemID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, transactionFailed("lock item", err)
	}

	if item.OwnerID == renterID && !s.cfg.AllowSelfRental {
		return nil, ErrSelfRental
	}

	bookings, err := tx.GetBookingsForItem(ctx, itemID)
	if err != nil {
		return nil, transactionFailed("load bookings", err)
	}
	if !Available(bookings, period) {
		log.Printf("[RENTAL] Item %d unavailable for %s..%s", itemID, period.Start, period.End)
		return nil, ErrDatesUnavailable
	}

	favourites, err := tx.GetFavouriteCount(ctx, itemID)
	if err != nil {
		return nil, transactionFailed("count favourites", err)
	}

	demandDays := RecentDemandDays(bookings, s.today(), s.cfg.DemandWindowMonths)
	quote := s.pricing.ComputePrice(item, period, demandDays, favourites)

	booking := &models.Booking{
		Reference: uuid.NewString(),
		ItemID:    itemID,
		RenterID:  renterID,
		StartDate: period.Start,
		EndDate:   period.End,
		Credits:   quote.Total,
		CreatedAt: s.now().UTC(),
	}

	if _, err := s.ledger.TransferTx(ctx, tx, renterID, item.OwnerID, booking.Reference, quote.Total); err != nil {
		if errors.Is(err, ErrInsufficientCredits) || errors.Is(err, ErrUserNotFound) {
			log.Printf("[RENTAL] Rental of item %d by user %d rejected: %v", itemID, renterID, err)
			return nil, err
		}
		return nil, transactionFailed("transfer credits", err)
	}

	if err := tx.InsertBooking(ctx, booking); err != nil {
		return nil, transactionFailed("insert booking", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, transactionFailed("commit", err)
	}

	log.Printf("[RENTAL] Booking %s created - item %d, renter %d, %s..%s, %d credits",
		booking.Reference, itemID, renterID, period.Start, period.End, booking.Credits)

	s.publish(ctx, booking, item.OwnerID)
	return booking, nil
}

func (s *RentalService) publish(ctx context.Context, booking *models.Booking, ownerID int64) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, bookedEvent(booking, ownerID)); err != nil {
		log.Printf("[EVENTS] Failed to publish %s for booking %s: %v", EventRentalBooked, booking.Reference, err)
	}
}

// Quote prices period for itemID as of asOf without booking it. A zero asOf
// means today.
func (s *RentalService) Quote(ctx context.Context, itemID int64, period models.DateRange, asOf models.Date) (*Quote, error) {
	if !period.Valid() {
		return nil, ErrInvalidDateRange
	}
	if asOf.IsZero() {
		asOf = s.today()
	}

	item, err := s.getItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	bookings, err := s.store.GetBookingsForItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}

	favourites, err := s.store.GetFavouriteCount(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("count favourites: %w", err)
	}

	quote := s.pricing.ComputePrice(item, period, RecentDemandDays(bookings, asOf, s.cfg.DemandWindowMonths), favourites)
	return &quote, nil
}

// IsAvailable reports whether itemID is free for the whole of period.
func (s *RentalService) IsAvailable(ctx context.Context, itemID int64, period models.DateRange) (bool, error) {
	if !period.Valid() {
		return false, ErrInvalidDateRange
	}
	if _, err := s.getItem(ctx, itemID); err != nil {
		return false, err
	}

	bookings, err := s.store.GetBookingsForItem(ctx, itemID)
	if err != nil {
		return false, fmt.Errorf("load bookings: %w", err)
	}
	return Available(bookings, period), nil
}

func (s *RentalService) RecentDemandDays(ctx context.Context, itemID int64, asOf models.Date) (int, error) {
	bookings, err := s.store.GetBookingsForItem(ctx, itemID)
	if err != nil {
		return 0, err
	}
	return RecentDemandDays(bookings, asOf, s.cfg.DemandWindowMonths), nil
}

func (s *RentalService) FavouriteCount(ctx context.Context, itemID int64) (int, error) {
	return s.store.GetFavouriteCount(ctx, itemID)
}

// ItemCalendar lists the booked ranges of itemID in start order.
func (s *RentalService) ItemCalendar(ctx context.Context, itemID int64) ([]models.DateRange, error) {
	if _, err := s.getItem(ctx, itemID); err != nil {
		return nil, err
	}

	bookings, err := s.store.GetBookingsForItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	ranges := make([]models.DateRange, 0, len(bookings))
	for _, b := range bookings {
		ranges = append(ranges, b.Period())
	}
	return ranges, nil
}

func (s *RentalService) MyRentals(ctx context.Context, userID int64) ([]models.Booking, error) {
	bookings, err := s.store.ListBookingsForRenter(ctx, userID)
	if err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, nil
}

func (s *RentalService) Ledger(ctx context.Context, userID int64) ([]models.LedgerEntry, error) {
	entries, err := s.store.ListLedgerEntries(ctx, userID)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.LedgerEntry{}
	}
	return entries, nil
}

func (s *RentalService) getItem(ctx context.Context, itemID int64) (*models.Item, error) {
	item, err := s.store.GetItem(ctx, itemID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load item: %w", err)
	}
	return item, nil
}
