package services

import (
	"github.com/closetshare/backend/internal/config"
	"github.com/closetshare/backend/internal/models"
)

type demandTier struct {
	minDays   int
	surcharge int64
}

// Highest tier first; the first tier reached applies.
var demandTiers = []demandTier{
	{minDays: 150, surcharge: 30},
	{minDays: 100, surcharge: 20},
	{minDays: 50, surcharge: 10},
	{minDays: 25, surcharge: 5},
}

// Quote is a price with its breakdown.
// @Description Rental price breakdown
type Quote struct {
	ItemID              int64            `json:"itemId" example:"1"`
	Period              models.DateRange `json:"period"`
	BaseCredits         int64            `json:"baseCredits" example:"100"`
	DemandDays          int              `json:"demandDays" example:"30"`
	DemandSurcharge     int64            `json:"demandSurcharge" example:"5"`
	FavouriteCount      int              `json:"favouriteCount" example:"15"`
	PopularitySurcharge int64            `json:"popularitySurcharge" example:"2"`
	RentalDays          int              `json:"rentalDays" example:"2"`
	DurationSurcharge   int64            `json:"durationSurcharge" example:"10"`
	Total               int64            `json:"total" example:"117"`
}

type PricingEngine struct {
	creditsPerDay       int64
	favouritesPerCredit int
}

func NewPricingEngine(cfg *config.RentalConfig) *PricingEngine {
	return &PricingEngine{
		creditsPerDay:       cfg.CreditsPerDay,
		favouritesPerCredit: cfg.FavouritesPerCredit,
	}
}

func DemandSurcharge(demandDays int) int64 {
	for _, tier := range demandTiers {
		if demandDays >= tier.minDays {
			return tier.surcharge
		}
	}
	return 0
}

// PopularitySurcharge is favourites/favouritesPerCredit rounded half to even.
func (p *PricingEngine) PopularitySurcharge(favourites int) int64 {
	return roundHalfEven(favourites, p.favouritesPerCredit)
}

func (p *PricingEngine) DurationSurcharge(days int) int64 {
	return int64(days) * p.creditsPerDay
}

// ComputePrice is pure: the same inputs always give the same quote.
func (p *PricingEngine) ComputePrice(item *models.Item, period models.DateRange, demandDays, favourites int) Quote {
	q := Quote{
		ItemID:              item.ID,
		Period:              period,
		BaseCredits:         item.MinimumCredits,
		DemandDays:          demandDays,
		DemandSurcharge:     DemandSurcharge(demandDays),
		FavouriteCount:      favourites,
		PopularitySurcharge: p.PopularitySurcharge(favourites),
		RentalDays:          period.Days(),
		DurationSurcharge:   p.DurationSurcharge(period.Days()),
	}
	q.Total = q.BaseCredits + q.DemandSurcharge + q.PopularitySurcharge + q.DurationSurcharge
	return q
}

func roundHalfEven(n, d int) int64 {
	q, r := n/d, n%d
	switch {
	case 2*r > d:
		q++
	case 2*r == d && q%2 == 1:
		q++
	}
	return int64(q)
}
