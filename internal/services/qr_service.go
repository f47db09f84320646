package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image/png"
	"strings"

	"github.com/closetshare/backend/internal/models"
	"github.com/closetshare/backend/internal/store"
	"github.com/skip2/go-qrcode"
)

const passPrefix = "closetshare:booking:"

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrNotYourBooking  = errors.New("booking belongs to another user")
	ErrInvalidPass     = errors.New("invalid booking pass")
)

// BookingPass is shown by the renter at hand-over and scanned by the owner.
type BookingPass struct {
	Reference string         `json:"reference"`
	Payload   string         `json:"payload"`
	QRImage   string         `json:"qrImage"` // base64 PNG
	Booking   models.Booking `json:"booking"`
}

type BookingPassService struct {
	store store.Store
}

func NewBookingPassService(st store.Store) *BookingPassService {
	return &BookingPassService{store: st}
}

// GeneratePass renders the QR pass for reference. Only the renter may fetch it.
func (s *BookingPassService) GeneratePass(ctx context.Context, userID int64, reference string) (*BookingPass, error) {
	booking, err := s.booking(ctx, reference)
	if err != nil {
		return nil, err
	}
	if booking.RenterID != userID {
		return nil, ErrNotYourBooking
	}

	payload := passPrefix + booking.Reference
	qr, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, qr.Image(256)); err != nil {
		return nil, err
	}

	return &BookingPass{
		Reference: booking.Reference,
		Payload:   payload,
		QRImage:   base64.StdEncoding.EncodeToString(buf.Bytes()),
		Booking:   *booking,
	}, nil
}

// VerifyPass checks a scanned payload on behalf of the item owner.
func (s *BookingPassService) VerifyPass(ctx context.Context, ownerID int64, payload string) (*models.Booking, error) {
	reference, ok := strings.CutPrefix(payload, passPrefix)
	if !ok || reference == "" {
		return nil, ErrInvalidPass
	}

	booking, err := s.booking(ctx, reference)
	if err != nil {
		return nil, err
	}

	item, err := s.store.GetItem(ctx, booking.ItemID)
	if err != nil {
		return nil, err
	}
	if item.OwnerID != ownerID {
		return nil, ErrNotYourBooking
	}
	return booking, nil
}

func (s *BookingPassService) booking(ctx context.Context, reference string) (*models.Booking, error) {
	booking, err := s.store.GetBookingByReference(ctx, reference)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrBookingNotFound
	}
	return booking, err
}
