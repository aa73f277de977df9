package bidding

import (
	"errors"
	"fmt"
	"time"

	"bidwars/internal/auctionerrors"
	"bidwars/internal/itemlock"
	model "bidwars/internal/models"
	"bidwars/internal/repository"
	"bidwars/internal/validation"
	"bidwars/utils"
)

// Default retry budgets. A submission is re-validated against fresh state at
// most defaultCommitRetries times after a version conflict, and a failing
// store commit is retried at most defaultStorageRetries times.
const (
	defaultCommitRetries  = 3
	defaultStorageRetries = 3
)

// BiddingService is the bid acceptance engine: it decides whether each
// incoming bid commits, maintains the item's current-highest projection, and
// closes the auction when an accepted bid reaches the item's maximum.
type BiddingService struct {
	store          repository.AuctionStore
	locks          *itemlock.Locker
	commitRetries  int
	storageRetries int
}

// NewBiddingService creates a new BiddingService instance sharing the given
// per-item locker with the lifecycle controller.
func NewBiddingService(store repository.AuctionStore, locks *itemlock.Locker) *BiddingService {
	return &BiddingService{
		store:          store,
		locks:          locks,
		commitRetries:  defaultCommitRetries,
		storageRetries: defaultStorageRetries,
	}
}

// WithRetryBudgets overrides the default commit and storage retry budgets.
// Non-positive values keep the defaults.
func (s *BiddingService) WithRetryBudgets(commit, storage int) *BiddingService {
	if commit > 0 {
		s.commitRetries = commit
	}
	if storage > 0 {
		s.storageRetries = storage
	}
	return s
}

// SubmitBid validates and commits a bid for an item. On acceptance the new
// bid, the item's current-highest projection, and any max-amount auto-close
// become visible in a single atomic step. Validation rejections are terminal;
// version conflicts are retried against fresh state within the commit budget
// and then surface as ErrConflict; store failures are retried within the
// storage budget and then surface as ErrStorageUnavailable.
func (s *BiddingService) SubmitBid(itemID string, user model.User, rawAmount string) (model.Bid, error) {
	if itemID == "" || user.UserID == "" {
		return model.Bid{}, fmt.Errorf("service: %w - missing itemID or userID", auctionerrors.ErrInvalidItem)
	}

	// Serialize read-validate-commit per item. Different items never
	// contend on this lock.
	s.locks.Lock(itemID)
	defer s.locks.Unlock(itemID)

	storageFailures := 0
	for attempt := 0; attempt < s.commitRetries; attempt++ {
		item, err := s.store.GetItem(itemID)
		if err != nil {
			return model.Bid{}, fmt.Errorf("service: failed to read item %s: %w", itemID, err)
		}

		amount, err := validation.ValidateBid(item, user, rawAmount)
		if err != nil {
			return model.Bid{}, fmt.Errorf("service: %w", err)
		}

		bid := model.Bid{
			BidID:   utils.GenerateID(),
			ItemID:  itemID,
			UserID:  user.UserID,
			Amount:  amount,
			BidTime: time.Now().UTC(),
		}

		updated := item
		updated.CurrentHighestBid = amount
		updated.CurrentHighestBidder = user.UserID
		if item.MaxAmount != nil && amount.Equal(*item.MaxAmount) {
			updated.IsActive = false
		}
		updated.Version = item.Version + 1

		err = s.store.CommitBid(bid, updated)
		if err == nil {
			utils.Info("bid accepted", map[string]any{
				"bid_id":  bid.BidID,
				"item_id": itemID,
				"user_id": user.UserID,
				"amount":  amount.String(),
				"closed":  !updated.IsActive,
			})
			return bid, nil
		}

		if errors.Is(err, auctionerrors.ErrVersionMismatch) {
			// Another writer slipped in; re-validate against fresh state.
			continue
		}
		if errors.Is(err, auctionerrors.ErrItemNotFound) {
			return model.Bid{}, fmt.Errorf("service: failed to commit bid for item %s: %w", itemID, err)
		}

		storageFailures++
		if storageFailures >= s.storageRetries {
			return model.Bid{}, fmt.Errorf("service: %w - commit for item %s failed after %d attempts: %v",
				auctionerrors.ErrStorageUnavailable, itemID, storageFailures, err)
		}
		// A failed compare-and-commit left nothing behind, so the same
		// read-validate-commit attempt is safe to repeat.
		attempt--
	}

	return model.Bid{}, fmt.Errorf("service: %w - item %s contended past %d attempts",
		auctionerrors.ErrConflict, itemID, s.commitRetries)
}
