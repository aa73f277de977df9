// Package validation holds the pure bid acceptance rules. ValidateBid has no
// side effects and may be re-run speculatively against fresh item state.
package validation

import (
	"fmt"

	"bidwars/internal/auctionerrors"
	model "bidwars/internal/models"

	"github.com/shopspring/decimal"
)

// minorUnitPlaces is the currency's minor-unit precision (cents).
const minorUnitPlaces = 2

// ValidateBid evaluates a candidate bid against the item's latest committed
// state. Checks run in a fixed order and the first failure determines the
// rejection reason:
//
//  1. the auction must be active
//  2. only players may bid
//  3. the raw amount must parse as a positive decimal with at most two
//     fractional digits
//  4. the amount must be strictly greater than the current highest bid
//  5. the amount must not exceed the item's maximum, when one is set
//
// On success it returns the parsed amount.
func ValidateBid(item model.Item, user model.User, rawAmount string) (decimal.Decimal, error) {
	if !item.IsActive {
		return decimal.Decimal{}, fmt.Errorf("validate bid for item %s: %w", item.ItemID, auctionerrors.ErrAuctionClosed)
	}

	if user.Role != model.RolePlayer {
		return decimal.Decimal{}, fmt.Errorf("validate bid for item %s: %w - role %q", item.ItemID, auctionerrors.ErrRoleNotPermitted, user.Role)
	}

	amount, err := ParseAmount(rawAmount)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("validate bid for item %s: %w", item.ItemID, err)
	}

	if amount.Cmp(item.CurrentHighestBid) <= 0 {
		return decimal.Decimal{}, fmt.Errorf("validate bid for item %s: %w - current highest bid is %s",
			item.ItemID, auctionerrors.ErrBidTooLow, item.CurrentHighestBid.StringFixed(minorUnitPlaces))
	}

	if item.MaxAmount != nil && amount.Cmp(*item.MaxAmount) > 0 {
		return decimal.Decimal{}, fmt.Errorf("validate bid for item %s: %w - maximum is %s",
			item.ItemID, auctionerrors.ErrExceedsMaximum, item.MaxAmount.StringFixed(minorUnitPlaces))
	}

	return amount, nil
}

// ParseAmount parses a raw monetary amount. It rejects anything that is not a
// positive decimal expressible in the currency's minor unit.
func ParseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", auctionerrors.ErrMalformedAmount, raw)
	}
	if !amount.Equal(amount.Truncate(minorUnitPlaces)) {
		return decimal.Decimal{}, fmt.Errorf("%w: %q has sub-cent precision", auctionerrors.ErrMalformedAmount, raw)
	}
	if !amount.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("%w: %q is not positive", auctionerrors.ErrMalformedAmount, raw)
	}
	return amount, nil
}
