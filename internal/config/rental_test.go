package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadRentalConfig_Defaults(t *testing.T) {
	cfg := LoadRentalConfig()

	assert.Equal(t, 6, cfg.DemandWindowMonths)
	assert.Equal(t, int64(5), cfg.CreditsPerDay)
	assert.Equal(t, 10, cfg.FavouritesPerCredit)
	assert.Equal(t, int64(500), cfg.StartingCredits)
	assert.False(t, cfg.AllowSelfRental)
	assert.Equal(t, "rental_events", cfg.EventQueue)
}

func TestLoadRentalConfig_Env(t *testing.T) {
	t.Setenv("RENTAL_CREDITS_PER_DAY", "7")
	t.Setenv("RENTAL_ALLOW_SELF_RENTAL", "true")
	t.Setenv("RENTAL_EVENT_QUEUE", "bookings")
	t.Setenv("RENTAL_DEMAND_WINDOW_MONTHS", "not-a-number")
	t.Setenv("RENTAL_FAVOURITES_PER_CREDIT", "0")

	cfg := LoadRentalConfig()

	assert.Equal(t, int64(7), cfg.CreditsPerDay)
	assert.True(t, cfg.AllowSelfRental)
	assert.Equal(t, "bookings", cfg.EventQueue)
	assert.Equal(t, 6, cfg.DemandWindowMonths)
	assert.Equal(t, 10, cfg.FavouritesPerCredit)
}
