package services

import "github.com/closetshare/backend/internal/models"

// DemandWindowStart is the earliest start date that still counts towards demand.
func DemandWindowStart(asOf models.Date, months int) models.Date {
	return asOf.AddMonths(-months)
}

// RecentDemandDays sums the booked days of every booking starting on or after
// the window start. Bookings starting after asOf are counted as well.
func RecentDemandDays(bookings []models.Booking, asOf models.Date, months int) int {
	since := DemandWindowStart(asOf, months)
	days := 0
	for _, b := range bookings {
		if b.StartDate.Compare(since) >= 0 {
			days += b.Period().Days()
		}
	}
	return days
}
