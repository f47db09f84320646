package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/closetshare/backend/internal/models"
	"github.com/closetshare/backend/internal/store"
)

// CreateItemRequest represents a new listing
// @Description Item listing request
type CreateItemRequest struct {
	Category       string `json:"category" validate:"required,oneof=Dress Suit Costume Shirt Tshirt Trousers Shorts Skirt" example:"Dress"`
	Colour         string `json:"colour" validate:"required,oneof=White Black Grey Brown Beige Pink Red Orange Yellow Green Blue Purple" example:"Blue"`
	Size           string `json:"size" validate:"required,oneof=XXS XS S M L XL XXL" example:"M"`
	Brand          string `json:"brand,omitempty" validate:"omitempty,max=64" example:"zara"`
	ImageFile      string `json:"imageFile,omitempty" validate:"omitempty,max=64,endswith=.png|endswith=.jpg|endswith=.jpeg" example:"dress.png"`
	MinimumCredits int64  `json:"minimumCredits" validate:"required,gt=0" example:"100"`
}

type ItemService struct {
	store store.Store
}

func NewItemService(st store.Store) *ItemService {
	return &ItemService{store: st}
}

// Create lists a new item owned by ownerID. Brands are stored capitalised.
func (s *ItemService) Create(ctx context.Context, ownerID int64, req CreateItemRequest) (*models.Item, error) {
	item := &models.Item{
		OwnerID:        ownerID,
		ImageFile:      models.DefaultImageFile,
		Brand:          models.DefaultBrand,
		Colour:         req.Colour,
		Category:       req.Category,
		Size:           req.Size,
		MinimumCredits: req.MinimumCredits,
	}
	if brand := strings.TrimSpace(req.Brand); brand != "" {
		item.Brand = models.NormalizeWord(brand)
	}
	if req.ImageFile != "" {
		item.ImageFile = req.ImageFile
	}

	if err := s.store.CreateItem(ctx, item); err != nil {
		return nil, err
	}

	log.Printf("[ITEMS] Item %d listed by user %d (%s %s %s, %d credits)",
		item.ID, ownerID, item.Colour, item.Brand, item.Category, item.MinimumCredits)
	return item, nil
}

func (s *ItemService) Get(ctx context.Context, itemID int64) (*models.Item, error) {
	item, err := s.store.GetItem(ctx, itemID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrItemNotFound
	}
	return item, err
}

func (s *ItemService) List(ctx context.Context) ([]models.Item, error) {
	items, err := s.store.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Item{}
	}
	return items, nil
}
