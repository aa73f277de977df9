package lifecycle

import (
	"errors"
	"fmt"

	"bidwars/internal/auctionerrors"
	"bidwars/internal/itemlock"
	model "bidwars/internal/models"
	"bidwars/internal/repository"
	"bidwars/utils"
)

// Service controls the only item state machine: Active -> Inactive via admin
// deactivate or the engine's max-amount auto-close, Inactive -> Active via
// admin activate. Toggling never touches bid history; reopening an
// auto-closed item makes bids above the unchanged current highest acceptable
// again, still capped by the old maximum.
type Service struct {
	store repository.AuctionStore
	locks *itemlock.Locker
}

// NewService creates a lifecycle service sharing the per-item locker with the
// bidding engine.
func NewService(store repository.AuctionStore, locks *itemlock.Locker) *Service {
	return &Service{store: store, locks: locks}
}

// Activate opens an item for bidding.
func (s *Service) Activate(itemID string) (model.Item, error) {
	return s.SetActive(itemID, true)
}

// Deactivate closes an item for bidding.
func (s *Service) Deactivate(itemID string) (model.Item, error) {
	return s.SetActive(itemID, false)
}

// Toggle flips the item's active flag unconditionally and returns the updated
// item.
func (s *Service) Toggle(itemID string) (model.Item, error) {
	return s.setActive(itemID, func(current bool) bool { return !current })
}

// SetActive forces the item's active flag to the given value.
func (s *Service) SetActive(itemID string, active bool) (model.Item, error) {
	return s.setActive(itemID, func(bool) bool { return active })
}

func (s *Service) setActive(itemID string, next func(current bool) bool) (model.Item, error) {
	if itemID == "" {
		return model.Item{}, fmt.Errorf("service: %w - empty item ID", auctionerrors.ErrInvalidItem)
	}

	s.locks.Lock(itemID)
	defer s.locks.Unlock(itemID)

	item, err := s.store.GetItem(itemID)
	if err != nil {
		return model.Item{}, fmt.Errorf("service: failed to read item %s: %w", itemID, err)
	}

	item.IsActive = next(item.IsActive)
	item.Version++

	if err := s.store.UpdateItem(item); err != nil {
		// Writers hold the item lock, so a version mismatch here means the
		// store itself is misbehaving.
		if errors.Is(err, auctionerrors.ErrVersionMismatch) {
			return model.Item{}, fmt.Errorf("service: %w - item %s", auctionerrors.ErrConflict, itemID)
		}
		return model.Item{}, fmt.Errorf("service: failed to update item %s: %w", itemID, err)
	}

	utils.Info("item status changed", map[string]any{
		"item_id":   itemID,
		"is_active": item.IsActive,
	})
	return item, nil
}
