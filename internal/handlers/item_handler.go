package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/closetshare/backend/internal/middleware"
	"github.com/closetshare/backend/internal/services"
)

type ItemHandler struct {
	items      *services.ItemService
	search     *services.SearchService
	favourites *services.FavouriteService
	validator  *services.ValidationHelper
}

func NewItemHandler(items *services.ItemService, search *services.SearchService, favourites *services.FavouriteService) *ItemHandler {
	return &ItemHandler{
		items:      items,
		search:     search,
		favourites: favourites,
		validator:  services.NewValidationHelper(),
	}
}

// ListItems lists every item on the marketplace
// @Summary Browse items
// @Tags items
// @Produce json
// @Success 200 {array} models.Item
// @Router /items [get]
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.items.List(r.Context())
	if err != nil {
		log.Printf("[ITEMS] Failed to list items: %v", err)
		services.SendErrorResponse(w, "Failed to fetch items", http.StatusInternalServerError, nil)
		return
	}
	services.WriteJSON(w, http.StatusOK, items)
}

// GetItem returns one item
// @Summary Get item
// @Tags items
// @Produce json
// @Param itemId path int true "Item ID"
// @Success 200 {object} models.Item
// @Failure 404 {object} services.ErrorResponse
// @Router /items/{itemId} [get]
func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	itemID, ok := itemIDParam(w, r)
	if !ok {
		return
	}

	item, err := h.items.Get(r.Context(), itemID)
	if err != nil {
		writeItemError(w, err)
		return
	}
	services.WriteJSON(w, http.StatusOK, item)
}

// CreateItem lists a new item owned by the caller
// @Summary List an item
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body services.CreateItemRequest true "Item"
// @Success 201 {object} models.Item
// @Failure 400 {object} services.ErrorResponse
// @Router /items [post]
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		services.SendErrorResponse(w, "Unauthorized", http.StatusUnauthorized, nil)
		return
	}

	var req services.CreateItemRequest
	if !services.DecodeJSONBody(w, r, &req) {
		return
	}

	if err := h.validator.ValidateStruct(&req); err != nil {
		services.SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	item, err := h.items.Create(r.Context(), userID, req)
	if err != nil {
		log.Printf("[ITEMS] Failed to create item for user %d: %v", userID, err)
		services.SendErrorResponse(w, "Failed to create item", http.StatusInternalServerError, nil)
		return
	}
	services.WriteJSON(w, http.StatusCreated, item)
}

// Search finds items by colour, brand or category words
// @Summary Search items
// @Tags items
// @Produce json
// @Param q query string true "Search words, e.g. 'red zara dress'"
// @Success 200 {array} models.Item
// @Router /items/search [get]
func (h *ItemHandler) Search(w http.ResponseWriter, r *http.Request) {
	items, err := h.search.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		log.Printf("[ITEMS] Search failed: %v", err)
		services.SendErrorResponse(w, "Search failed", http.StatusInternalServerError, nil)
		return
	}
	services.WriteJSON(w, http.StatusOK, items)
}

// AddFavourite favourites an item for the caller
// @Summary Favourite an item
// @Tags favourites
// @Produce json
// @Security BearerAuth
// @Param itemId path int true "Item ID"
// @Success 200 {object} object{added=bool}
// @Failure 404 {object} services.ErrorResponse
// @Router /items/{itemId}/favourite [post]
func (h *ItemHandler) AddFavourite(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		services.SendErrorResponse(w, "Unauthorized", http.StatusUnauthorized, nil)
		return
	}
	itemID, ok := itemIDParam(w, r)
	if !ok {
		return
	}

	added, err := h.favourites.Add(r.Context(), userID, itemID)
	if err != nil {
		writeItemError(w, err)
		return
	}
	services.WriteJSON(w, http.StatusOK, map[string]bool{"added": added})
}

// RemoveFavourite removes an item from the caller's favourites
// @Summary Unfavourite an item
// @Tags favourites
// @Produce json
// @Security BearerAuth
// @Param itemId path int true "Item ID"
// @Success 200 {object} object{removed=bool}
// @Failure 404 {object} services.ErrorResponse
// @Router /items/{itemId}/favourite [delete]
func (h *ItemHandler) RemoveFavourite(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		services.SendErrorResponse(w, "Unauthorized", http.StatusUnauthorized, nil)
		return
	}
	itemID, ok := itemIDParam(w, r)
	if !ok {
		return
	}

	removed, err := h.favourites.Remove(r.Context(), userID, itemID)
	if err != nil {
		writeItemError(w, err)
		return
	}
	services.WriteJSON(w, http.StatusOK, map[string]bool{"removed": removed})
}

// ListFavourites lists the caller's favourite items
// @Summary My favourites
// @Tags favourites
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Item
// @Router /favourites [get]
func (h *ItemHandler) ListFavourites(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		services.SendErrorResponse(w, "Unauthorized", http.StatusUnauthorized, nil)
		return
	}

	items, err := h.favourites.List(r.Context(), userID)
	if err != nil {
		log.Printf("[FAVOURITES] Failed to list favourites for user %d: %v", userID, err)
		services.SendErrorResponse(w, "Failed to fetch favourites", http.StatusInternalServerError, nil)
		return
	}
	services.WriteJSON(w, http.StatusOK, items)
}

func writeItemError(w http.ResponseWriter, err error) {
	if errors.Is(err, services.ErrItemNotFound) {
		services.SendErrorResponse(w, err.Error(), http.StatusNotFound, nil)
		return
	}
	log.Printf("[ITEMS] Unexpected error: %v", err)
	services.SendErrorResponse(w, "An Internal Error Occurred", http.StatusInternalServerError, nil)
}
