package config

import (
	"os"
	"strconv"
)

// RentalConfig holds the pricing and booking knobs. The defaults are the
// marketplace's published tariff.
type RentalConfig struct {
	DemandWindowMonths  int
	CreditsPerDay       int64
	FavouritesPerCredit int
	StartingCredits     int64
	AllowSelfRental     bool
	EventQueue          string
}

func DefaultRentalConfig() *RentalConfig {
	return &RentalConfig{
		DemandWindowMonths:  6,
		CreditsPerDay:       5,
		FavouritesPerCredit: 10,
		StartingCredits:     500,
		AllowSelfRental:     false,
		EventQueue:          "rental_events",
	}
}

func LoadRentalConfig() *RentalConfig {
	def := DefaultRentalConfig()
	return &RentalConfig{
		DemandWindowMonths:  getEnvAsInt("RENTAL_DEMAND_WINDOW_MONTHS", def.DemandWindowMonths),
		CreditsPerDay:       int64(getEnvAsInt("RENTAL_CREDITS_PER_DAY", int(def.CreditsPerDay))),
		FavouritesPerCredit: getEnvAsInt("RENTAL_FAVOURITES_PER_CREDIT", def.FavouritesPerCredit),
		StartingCredits:     int64(getEnvAsInt("RENTAL_STARTING_CREDITS", int(def.StartingCredits))),
		AllowSelfRental:     getEnvAsBool("RENTAL_ALLOW_SELF_RENTAL", def.AllowSelfRental),
		EventQueue:          getEnv("RENTAL_EVENT_QUEUE", def.EventQueue),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil && intVal > 0 {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if boolVal, err := strconv.ParseBool(val); err == nil {
			return boolVal
		}
	}
	return defaultVal
}
