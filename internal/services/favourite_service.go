package services

import (
	"context"
	"errors"
	"log"

	"github.com/closetshare/backend/internal/models"
	"github.com/closetshare/backend/internal/store"
)

type FavouriteService struct {
	store store.Store
}

func NewFavouriteService(st store.Store) *FavouriteService {
	return &FavouriteService{store: st}
}

// Add favourites itemID for userID. Adding an existing favourite is a no-op;
// the result reports whether a row was written.
func (s *FavouriteService) Add(ctx context.Context, userID, itemID int64) (bool, error) {
	if err := s.ensureItem(ctx, itemID); err != nil {
		return false, err
	}

	added, err := s.store.AddFavourite(ctx, userID, itemID)
	if err != nil {
		return false, err
	}
	if added {
		log.Printf("[FAVOURITES] User %d favourited item %d", userID, itemID)
	}
	return added, nil
}

func (s *FavouriteService) Remove(ctx context.Context, userID, itemID int64) (bool, error) {
	if err := s.ensureItem(ctx, itemID); err != nil {
		return false, err
	}
	return s.store.RemoveFavourite(ctx, userID, itemID)
}

func (s *FavouriteService) List(ctx context.Context, userID int64) ([]models.Item, error) {
	items, err := s.store.ListFavouriteItems(ctx, userID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Item{}
	}
	return items, nil
}

func (s *FavouriteService) ensureItem(ctx context.Context, itemID int64) error {
	_, err := s.store.GetItem(ctx, itemID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrItemNotFound
	}
	return err
}
