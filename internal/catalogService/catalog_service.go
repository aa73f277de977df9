package catalog

import (
	"fmt"
	"sort"
	"time"

	"bidwars/internal/auctionerrors"
	model "bidwars/internal/models"
	"bidwars/internal/repository"
	"bidwars/internal/validation"
	"bidwars/utils"

	"github.com/shopspring/decimal"
)

// Service is the read-only query surface over committed auction state, plus
// the thin item-metadata boundary (admin create/update). It never
// participates in the bid write path.
type Service struct {
	store repository.AuctionStore
}

// NewService creates a new catalog service.
func NewService(store repository.AuctionStore) *Service {
	return &Service{store: store}
}

// HighestBid is the current-highest projection served to polling clients.
type HighestBid struct {
	Amount  decimal.Decimal `json:"current_highest_bid"`
	Bidder  string          `json:"current_highest_bidder,omitempty"`
	BidTime *time.Time      `json:"bid_time,omitempty"`
}

// CreateItem validates and stores a new auction lot. Items always start
// active; the derived fields are initialized from the starting price.
func (s *Service) CreateItem(title, description string, createdBy string, rawStartingPrice string, rawMaxAmount string) (model.Item, error) {
	if title == "" {
		return model.Item{}, fmt.Errorf("service: %w - empty title", auctionerrors.ErrInvalidItem)
	}

	startingPrice, err := validation.ParseAmount(rawStartingPrice)
	if err != nil {
		return model.Item{}, fmt.Errorf("service: starting price: %w", err)
	}

	var maxAmount *decimal.Decimal
	if rawMaxAmount != "" {
		parsed, err := validation.ParseAmount(rawMaxAmount)
		if err != nil {
			return model.Item{}, fmt.Errorf("service: max amount: %w", err)
		}
		if parsed.Cmp(startingPrice) < 0 {
			return model.Item{}, fmt.Errorf("service: %w - max amount below starting price", auctionerrors.ErrInvalidItem)
		}
		maxAmount = &parsed
	}

	item := model.Item{
		ItemID:            utils.GenerateID(),
		Title:             title,
		Description:       description,
		StartingPrice:     startingPrice,
		MaxAmount:         maxAmount,
		IsActive:          true,
		CreatedBy:         createdBy,
		CreatedAt:         time.Now().UTC(),
		CurrentHighestBid: startingPrice,
	}

	if err := s.store.CreateItem(item); err != nil {
		return model.Item{}, fmt.Errorf("service: failed to create item: %w", err)
	}

	utils.Info("item created", map[string]any{
		"item_id":    item.ItemID,
		"title":      title,
		"created_by": createdBy,
	})
	return item, nil
}

// ListItems returns all items, newest first.
func (s *Service) ListItems() ([]model.Item, error) {
	items, err := s.store.ListItems()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list items: %w", err)
	}
	sortNewestFirst(items)
	return items, nil
}

// ListActiveItems returns items currently open for bidding, newest first.
func (s *Service) ListActiveItems() ([]model.Item, error) {
	items, err := s.store.ListActiveItems()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list active items: %w", err)
	}
	sortNewestFirst(items)
	return items, nil
}

// GetItem returns a single item by ID.
func (s *Service) GetItem(itemID string) (model.Item, error) {
	if itemID == "" {
		return model.Item{}, fmt.Errorf("service: %w - empty item ID", auctionerrors.ErrInvalidItem)
	}
	item, err := s.store.GetItem(itemID)
	if err != nil {
		return model.Item{}, fmt.Errorf("service: failed to get item %s: %w", itemID, err)
	}
	return item, nil
}

// GetBidHistory returns an item's committed bids, most recent first.
func (s *Service) GetBidHistory(itemID string) ([]model.Bid, error) {
	if itemID == "" {
		return nil, fmt.Errorf("service: %w - empty item ID", auctionerrors.ErrInvalidItem)
	}

	bids, err := s.store.GetBidsByItem(itemID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for item %s: %w", itemID, err)
	}

	// The store keeps commit order (ascending bid time); clients observe
	// the reverse.
	for i, j := 0, len(bids)-1; i < j; i, j = i+1, j-1 {
		bids[i], bids[j] = bids[j], bids[i]
	}
	return bids, nil
}

// GetBidsByUser returns all bids the user has placed across items.
func (s *Service) GetBidsByUser(userID string) ([]model.Bid, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", auctionerrors.ErrInvalidItem)
	}

	bids, err := s.store.GetBidsByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for user %s: %w", userID, err)
	}
	return bids, nil
}

// GetHighestBid returns the current-highest projection for an item. With no
// bids it reports the starting price and no bidder.
func (s *Service) GetHighestBid(itemID string) (HighestBid, error) {
	item, err := s.GetItem(itemID)
	if err != nil {
		return HighestBid{}, err
	}

	projection := HighestBid{
		Amount: item.CurrentHighestBid,
		Bidder: item.CurrentHighestBidder,
	}

	if item.CurrentHighestBidder != "" {
		bids, err := s.store.GetBidsByItem(itemID)
		if err != nil {
			return HighestBid{}, fmt.Errorf("service: failed to get bids for item %s: %w", itemID, err)
		}
		if len(bids) > 0 {
			last := bids[len(bids)-1].BidTime
			projection.BidTime = &last
		}
	}

	return projection, nil
}

// UpdateItem replaces an item's metadata (title, description, max amount).
// The derived fields and active flag are preserved; raising the max amount is
// how a reopened auction accepts bids above the old ceiling.
func (s *Service) UpdateItem(itemID, title, description string, rawMaxAmount string) (model.Item, error) {
	item, err := s.GetItem(itemID)
	if err != nil {
		return model.Item{}, err
	}

	if title != "" {
		item.Title = title
	}
	if description != "" {
		item.Description = description
	}
	if rawMaxAmount != "" {
		parsed, err := validation.ParseAmount(rawMaxAmount)
		if err != nil {
			return model.Item{}, fmt.Errorf("service: max amount: %w", err)
		}
		if parsed.Cmp(item.StartingPrice) < 0 {
			return model.Item{}, fmt.Errorf("service: %w - max amount below starting price", auctionerrors.ErrInvalidItem)
		}
		item.MaxAmount = &parsed
	}

	item.Version++
	if err := s.store.UpdateItem(item); err != nil {
		return model.Item{}, fmt.Errorf("service: failed to update item %s: %w", itemID, err)
	}
	return item, nil
}

func sortNewestFirst(items []model.Item) {
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
}
