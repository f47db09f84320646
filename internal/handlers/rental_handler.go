package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/closetshare/backend/internal/middleware"
	"github.com/closetshare/backend/internal/models"
	"github.com/closetshare/backend/internal/services"
	"github.com/go-chi/chi/v5"
)

// RentalRequest represents a rental attempt
// @Description Rental request, dates are inclusive YYYY-MM-DD
type RentalRequest struct {
	ItemID    int64  `json:"itemId" validate:"required,gt=0" example:"1"`
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02" example:"2024-01-10"`
	EndDate   string `json:"endDate" validate:"required,datetime=2006-01-02" example:"2024-01-12"`
}

type RentalHandler struct {
	service   *services.RentalService
	validator *services.ValidationHelper
}

func NewRentalHandler(service *services.RentalService) *RentalHandler {
	return &RentalHandler{
		service:   service,
		validator: services.NewValidationHelper(),
	}
}

// CreateRental books an item and pays for it in credits
// @Summary Rent an item
// @Description Checks availability, prices the rental and transfers credits from renter to owner atomically
// @Tags rentals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RentalRequest true "Rental request"
// @Success 201 {object} models.Booking
// @Failure 400 {object} services.ErrorResponse "Invalid request or date range"
// @Failure 402 {object} services.ErrorResponse "Insufficient credits"
// @Failure 403 {object} services.ErrorResponse "Own item"
// @Failure 404 {object} services.ErrorResponse "Item not found"
// @Failure 409 {object} services.ErrorResponse "Dates unavailable"
// @Failure 503 {object} services.ErrorResponse "Transaction failed, retry"
// @Router /rentals [post]
func (h *RentalHandler) CreateRental(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		services.SendErrorResponse(w, "Unauthorized", http.StatusUnauthorized, nil)
		return
	}

	var req RentalRequest
	if !services.DecodeJSONBody(w, r, &req) {
		return
	}

	if err := h.validator.ValidateStruct(&req); err != nil {
		services.SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	period, err := parsePeriod(req.StartDate, req.EndDate)
	if err != nil {
		services.SendErrorResponse(w, err.Error(), http.StatusBadRequest, nil)
		return
	}

	booking, err := h.service.AttemptRental(r.Context(), userID, req.ItemID, period)
	if err != nil {
		writeRentalError(w, err)
		return
	}

	services.WriteJSON(w, http.StatusCreated, booking)
}

// ListRentals lists the caller's bookings
// @Summary My rentals
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Booking
// @Router /rentals [get]
func (h *RentalHandler) ListRentals(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		services.SendErrorResponse(w, "Unauthorized", http.StatusUnauthorized, nil)
		return
	}

	bookings, err := h.service.MyRentals(r.Context(), userID)
	if err != nil {
		log.Printf("[RENTAL] Failed to list rentals for user %d: %v", userID, err)
		services.SendErrorResponse(w, "Failed to fetch rentals", http.StatusInternalServerError, nil)
		return
	}
	services.WriteJSON(w, http.StatusOK, bookings)
}

// Ledger lists the caller's credit movements
// @Summary Credit history
// @Tags account
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.LedgerEntry
// @Router /account/ledger [get]
func (h *RentalHandler) Ledger(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		services.SendErrorResponse(w, "Unauthorized", http.StatusUnauthorized, nil)
		return
	}

	entries, err := h.service.Ledger(r.Context(), userID)
	if err != nil {
		log.Printf("[RENTAL] Failed to list ledger for user %d: %v", userID, err)
		services.SendErrorResponse(w, "Failed to fetch credit history", http.StatusInternalServerError, nil)
		return
	}
	services.WriteJSON(w, http.StatusOK, entries)
}

// Quote prices a rental without booking it
// @Summary Price quote
// @Tags items
// @Produce json
// @Param itemId path int true "Item ID"
// @Param start query string true "Start date (YYYY-MM-DD)"
// @Param end query string true "End date (YYYY-MM-DD)"
// @Param asOf query string false "Price as of this date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} services.Quote
// @Failure 400 {object} services.ErrorResponse
// @Failure 404 {object} services.ErrorResponse
// @Router /items/{itemId}/quote [get]
func (h *RentalHandler) Quote(w http.ResponseWriter, r *http.Request) {
	itemID, ok := itemIDParam(w, r)
	if !ok {
		return
	}

	period, err := parsePeriod(r.URL.Query().Get("start"), r.URL.Query().Get("end"))
	if err != nil {
		services.SendErrorResponse(w, err.Error(), http.StatusBadRequest, nil)
		return
	}

	var asOf models.Date
	if raw := r.URL.Query().Get("asOf"); raw != "" {
		if asOf, err = models.ParseDate(raw); err != nil {
			services.SendErrorResponse(w, err.Error(), http.StatusBadRequest, nil)
			return
		}
	}

	quote, err := h.service.Quote(r.Context(), itemID, period, asOf)
	if err != nil {
		writeRentalError(w, err)
		return
	}
	services.WriteJSON(w, http.StatusOK, quote)
}

// Availability reports whether an item is free for a date range
// @Summary Check availability
// @Tags items
// @Produce json
// @Param itemId path int true "Item ID"
// @Param start query string true "Start date (YYYY-MM-DD)"
// @Param end query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} object{available=bool}
// @Failure 400 {object} services.ErrorResponse
// @Failure 404 {object} services.ErrorResponse
// @Router /items/{itemId}/availability [get]
func (h *RentalHandler) Availability(w http.ResponseWriter, r *http.Request) {
	itemID, ok := itemIDParam(w, r)
	if !ok {
		return
	}

	period, err := parsePeriod(r.URL.Query().Get("start"), r.URL.Query().Get("end"))
	if err != nil {
		services.SendErrorResponse(w, err.Error(), http.StatusBadRequest, nil)
		return
	}

	available, err := h.service.IsAvailable(r.Context(), itemID, period)
	if err != nil {
		writeRentalError(w, err)
		return
	}
	services.WriteJSON(w, http.StatusOK, map[string]any{
		"itemId":    itemID,
		"period":    period,
		"available": available,
	})
}

// Calendar lists the booked ranges of an item
// @Summary Item calendar
// @Tags items
// @Produce json
// @Param itemId path int true "Item ID"
// @Success 200 {array} models.DateRange
// @Failure 404 {object} services.ErrorResponse
// @Router /items/{itemId}/bookings [get]
func (h *RentalHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	itemID, ok := itemIDParam(w, r)
	if !ok {
		return
	}

	ranges, err := h.service.ItemCalendar(r.Context(), itemID)
	if err != nil {
		writeRentalError(w, err)
		return
	}
	services.WriteJSON(w, http.StatusOK, ranges)
}

func parsePeriod(start, end string) (models.DateRange, error) {
	s, err := models.ParseDate(start)
	if err != nil {
		return models.DateRange{}, err
	}
	e, err := models.ParseDate(end)
	if err != nil {
		return models.DateRange{}, err
	}
	return models.DateRange{Start: s, End: e}, nil
}

func itemIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	itemID, err := strconv.ParseInt(chi.URLParam(r, "itemId"), 10, 64)
	if err != nil || itemID <= 0 {
		services.SendErrorResponse(w, "Invalid item id", http.StatusBadRequest, nil)
		return 0, false
	}
	return itemID, true
}

// writeRentalError maps rental errors to HTTP statuses. Unknown errors are
// logged and reported as 500 without detail.
func writeRentalError(w http.ResponseWriter, err error) {
	var status int
	switch {
	case errors.Is(err, services.ErrInvalidDateRange):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrItemNotFound), errors.Is(err, services.ErrUserNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrSelfRental):
		status = http.StatusForbidden
	case errors.Is(err, services.ErrDatesUnavailable):
		status = http.StatusConflict
	case errors.Is(err, services.ErrInsufficientCredits):
		status = http.StatusPaymentRequired
	case errors.Is(err, services.ErrTransactionFailed):
		log.Printf("[RENTAL] %v", err)
		w.Header().Set("Retry-After", "1")
		services.SendErrorResponse(w, services.ErrTransactionFailed.Error(), http.StatusServiceUnavailable, nil)
		return
	default:
		log.Printf("[RENTAL] Unexpected error: %v", err)
		services.SendErrorResponse(w, "An Internal Error Occurred", http.StatusInternalServerError, nil)
		return
	}
	services.SendErrorResponse(w, err.Error(), status, nil)
}
