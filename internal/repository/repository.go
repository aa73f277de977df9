package repository

import (
	"fmt"
	"sync"

	"bidwars/internal/auctionerrors"
	model "bidwars/internal/models"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// AuctionStore defines durable keyed storage for items and bids. CommitBid and
// UpdateItem are compare-and-commit operations: they succeed only when the
// caller's item carries the version read from the store plus one, so stale
// writes are rejected instead of silently overwriting newer state.
type AuctionStore interface {
	CreateItem(item model.Item) error
	GetItem(itemID string) (model.Item, error)
	ListItems() ([]model.Item, error)
	ListActiveItems() ([]model.Item, error)

	// CommitBid inserts the bid and installs the updated item projection in
	// one atomic step. No reader ever observes one without the other.
	CommitBid(bid model.Bid, item model.Item) error

	// UpdateItem replaces the stored item, subject to the version check.
	UpdateItem(item model.Item) error

	// GetBidsByItem returns the committed bids for an item in commit order
	// (ascending bid time).
	GetBidsByItem(itemID string) ([]model.Bid, error)

	// GetBidsByUser returns all bids a user has placed, in commit order.
	GetBidsByUser(userID string) ([]model.Bid, error)
}

// MemoryStore is a concurrency-safe in-memory implementation of AuctionStore.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]model.Item  // key: itemID
	bids  map[string][]model.Bid // key: itemID -> bids in commit order
}

// NewMemoryStore creates a new in-memory store instance
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items: make(map[string]model.Item),
		bids:  make(map[string][]model.Bid),
	}
}

// CreateItem stores a new item. The stored version starts at 1 regardless of
// the caller's value.
func (s *MemoryStore) CreateItem(item model.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[item.ItemID]; ok {
		return fmt.Errorf("create item %s: %w", item.ItemID, auctionerrors.ErrItemExists)
	}

	item.Version = 1
	s.items[item.ItemID] = item
	return nil
}

// GetItem returns the latest committed state of an item.
func (s *MemoryStore) GetItem(itemID string) (model.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[itemID]
	if !ok {
		return model.Item{}, fmt.Errorf("get item %s: %w", itemID, auctionerrors.ErrItemNotFound)
	}
	return item, nil
}

// ListItems returns all items.
func (s *MemoryStore) ListItems() ([]model.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]model.Item, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, item)
	}
	return items, nil
}

// ListActiveItems returns items that are currently open for bidding.
func (s *MemoryStore) ListActiveItems() ([]model.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]model.Item, 0, len(s.items))
	for _, item := range s.items {
		if item.IsActive {
			items = append(items, item)
		}
	}
	return items, nil
}

// CommitBid atomically appends the bid and installs the updated item
// projection. It fails with ErrVersionMismatch when the stored item has moved
// past the version the caller read.
func (s *MemoryStore) CommitBid(bid model.Bid, item model.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.items[item.ItemID]
	if !ok {
		return fmt.Errorf("commit bid for item %s: %w", item.ItemID, auctionerrors.ErrItemNotFound)
	}
	if item.Version != stored.Version+1 {
		return fmt.Errorf("commit bid for item %s: %w", item.ItemID, auctionerrors.ErrVersionMismatch)
	}

	// Bid times are monotonically non-decreasing per item even if the
	// wall clock steps backwards between commits.
	if history := s.bids[bid.ItemID]; len(history) > 0 {
		if last := history[len(history)-1].BidTime; bid.BidTime.Before(last) {
			bid.BidTime = last
		}
	}

	s.bids[bid.ItemID] = append(s.bids[bid.ItemID], bid)
	s.items[item.ItemID] = item
	return nil
}

// UpdateItem replaces the stored item under the same version check as
// CommitBid.
func (s *MemoryStore) UpdateItem(item model.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.items[item.ItemID]
	if !ok {
		return fmt.Errorf("update item %s: %w", item.ItemID, auctionerrors.ErrItemNotFound)
	}
	if item.Version != stored.Version+1 {
		return fmt.Errorf("update item %s: %w", item.ItemID, auctionerrors.ErrVersionMismatch)
	}

	s.items[item.ItemID] = item
	return nil
}

// GetBidsByItem returns all bids for an item in commit order.
func (s *MemoryStore) GetBidsByItem(itemID string) ([]model.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.items[itemID]; !ok {
		return nil, fmt.Errorf("get bids for item %s: %w", itemID, auctionerrors.ErrItemNotFound)
	}
	return append([]model.Bid(nil), s.bids[itemID]...), nil
}

// GetBidsByUser returns all bids placed by a user across items.
func (s *MemoryStore) GetBidsByUser(userID string) ([]model.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var bids []model.Bid
	for _, history := range s.bids {
		for _, b := range history {
			if b.UserID == userID {
				bids = append(bids, b)
			}
		}
	}
	return bids, nil
}
