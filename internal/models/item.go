package models

import "strings"

const (
	DefaultImageFile = "default.png"
	DefaultBrand     = "n/a"
)

var (
	Categories = []string{"Dress", "Suit", "Costume", "Shirt", "Tshirt", "Trousers", "Shorts", "Skirt"}
	Colours    = []string{"White", "Black", "Grey", "Brown", "Beige", "Pink", "Red", "Orange", "Yellow", "Green", "Blue", "Purple"}
	Sizes      = []string{"XXS", "XS", "S", "M", "L", "XL", "XXL"}
)

type Item struct {
	ID             int64  `json:"id" db:"id" example:"1"`
	OwnerID        int64  `json:"ownerId" db:"owner_id" example:"7"`
	ImageFile      string `json:"imageFile" db:"image_file" example:"default.png"`
	Brand          string `json:"brand" db:"brand" example:"Zara"`
	Colour         string `json:"colour" db:"colour" example:"Blue"`
	Category       string `json:"category" db:"category" example:"Dress"`
	Size           string `json:"size" db:"size" example:"M"`
	MinimumCredits int64  `json:"minimumCredits" db:"minimum_credits" example:"100"`
}

// NormalizeWord upper-cases the first letter and lower-cases the rest,
// the form brands, colours and categories are stored in.
func NormalizeWord(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	lower := strings.ToLower(s)
	return strings.ToUpper(lower[:1]) + lower[1:]
}
