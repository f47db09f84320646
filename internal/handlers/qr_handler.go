package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/closetshare/backend/internal/middleware"
	"github.com/closetshare/backend/internal/services"
	"github.com/go-chi/chi/v5"
)

type QRHandler struct {
	service   *services.BookingPassService
	validator *services.ValidationHelper
}

func NewQRHandler(service *services.BookingPassService) *QRHandler {
	return &QRHandler{
		service:   service,
		validator: services.NewValidationHelper(),
	}
}

// GeneratePass returns the hand-over QR code for one of the caller's bookings
// @Summary Booking pass
// @Description Generate the QR code a renter shows when collecting an item
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Param reference path string true "Booking reference"
// @Success 200 {object} services.BookingPass
// @Failure 403 {object} services.ErrorResponse
// @Failure 404 {object} services.ErrorResponse
// @Router /rentals/{reference}/pass [get]
func (h *QRHandler) GeneratePass(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		services.SendErrorResponse(w, "Unauthorized", http.StatusUnauthorized, nil)
		return
	}

	pass, err := h.service.GeneratePass(r.Context(), userID, chi.URLParam(r, "reference"))
	if err != nil {
		writePassError(w, err)
		return
	}
	services.WriteJSON(w, http.StatusOK, pass)
}

// VerifyPass checks a scanned booking pass for the item owner
// @Summary Verify booking pass
// @Description Owner scans the renter's QR code at hand-over
// @Tags rentals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{qrData=string} true "Scanned QR payload"
// @Success 200 {object} models.Booking
// @Failure 400 {object} services.ErrorResponse
// @Failure 403 {object} services.ErrorResponse
// @Failure 404 {object} services.ErrorResponse
// @Router /rentals/verify [post]
func (h *QRHandler) VerifyPass(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		services.SendErrorResponse(w, "Unauthorized", http.StatusUnauthorized, nil)
		return
	}

	var req struct {
		QRData string `json:"qrData" validate:"required"`
	}
	if !services.DecodeJSONBody(w, r, &req) {
		return
	}

	if err := h.validator.ValidateStruct(&req); err != nil {
		services.SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	booking, err := h.service.VerifyPass(r.Context(), userID, req.QRData)
	if err != nil {
		writePassError(w, err)
		return
	}
	services.WriteJSON(w, http.StatusOK, booking)
}

func writePassError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidPass):
		services.SendErrorResponse(w, err.Error(), http.StatusBadRequest, nil)
	case errors.Is(err, services.ErrNotYourBooking):
		services.SendErrorResponse(w, err.Error(), http.StatusForbidden, nil)
	case errors.Is(err, services.ErrBookingNotFound):
		services.SendErrorResponse(w, err.Error(), http.StatusNotFound, nil)
	default:
		log.Printf("[QR] Unexpected error: %v", err)
		services.SendErrorResponse(w, "An Internal Error Occurred", http.StatusInternalServerError, nil)
	}
}
