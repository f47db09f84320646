package services

import "github.com/closetshare/backend/internal/models"

// Available reports whether period conflicts with none of bookings.
func Available(bookings []models.Booking, period models.DateRange) bool {
	for _, b := range bookings {
		if period.Overlaps(b.Period()) {
			return false
		}
	}
	return true
}
