package validation

import (
	"testing"
	"time"

	"bidwars/internal/auctionerrors"
	model "bidwars/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// Helper to create an active item with a given current highest bid
func newItem(highest string, maxAmount string) model.Item {
	item := model.Item{
		ItemID:            "item1",
		Title:             "Item 1",
		StartingPrice:     decimal.RequireFromString("100.00"),
		IsActive:          true,
		CreatedAt:         time.Now().UTC(),
		CurrentHighestBid: decimal.RequireFromString(highest),
	}
	if maxAmount != "" {
		m := decimal.RequireFromString(maxAmount)
		item.MaxAmount = &m
	}
	return item
}

var (
	player = model.User{UserID: "user1", Username: "bidder1", Role: model.RolePlayer}
	admin  = model.User{UserID: "adm1", Username: "demo_admin", Role: model.RoleAdmin}
)

// Tests ValidateBid check ordering and rejection reasons
func TestValidateBid(t *testing.T) {
	t.Parallel()

	closedItem := newItem("100.00", "")
	closedItem.IsActive = false

	tests := []struct {
		name        string
		item        model.Item
		user        model.User
		amount      string
		expectedErr error
	}{
		{name: "first_bid_above_starting_price", item: newItem("100.00", ""), user: player, amount: "100.01", expectedErr: nil},
		{name: "closed_auction", item: closedItem, user: player, amount: "150.00", expectedErr: auctionerrors.ErrAuctionClosed},
		{name: "closed_wins_over_role", item: closedItem, user: admin, amount: "150.00", expectedErr: auctionerrors.ErrAuctionClosed},
		{name: "admin_cannot_bid", item: newItem("100.00", ""), user: admin, amount: "150.00", expectedErr: auctionerrors.ErrRoleNotPermitted},
		{name: "role_wins_over_malformed", item: newItem("100.00", ""), user: admin, amount: "not-a-number", expectedErr: auctionerrors.ErrRoleNotPermitted},
		{name: "malformed_text", item: newItem("100.00", ""), user: player, amount: "ten dollars", expectedErr: auctionerrors.ErrMalformedAmount},
		{name: "malformed_empty", item: newItem("100.00", ""), user: player, amount: "", expectedErr: auctionerrors.ErrMalformedAmount},
		{name: "malformed_sub_cent", item: newItem("100.00", ""), user: player, amount: "100.001", expectedErr: auctionerrors.ErrMalformedAmount},
		{name: "malformed_zero", item: newItem("100.00", ""), user: player, amount: "0", expectedErr: auctionerrors.ErrMalformedAmount},
		{name: "malformed_negative", item: newItem("100.00", ""), user: player, amount: "-5.00", expectedErr: auctionerrors.ErrMalformedAmount},
		{name: "malformed_wins_over_too_low", item: newItem("100.00", ""), user: player, amount: "-0.001", expectedErr: auctionerrors.ErrMalformedAmount},
		{name: "equal_to_highest_is_too_low", item: newItem("150.00", ""), user: player, amount: "150.00", expectedErr: auctionerrors.ErrBidTooLow},
		{name: "below_highest", item: newItem("150.00", ""), user: player, amount: "120.00", expectedErr: auctionerrors.ErrBidTooLow},
		{name: "any_positive_increment_accepted", item: newItem("150.00", ""), user: player, amount: "150.01", expectedErr: nil},
		{name: "above_maximum", item: newItem("150.00", "500.00"), user: player, amount: "500.01", expectedErr: auctionerrors.ErrExceedsMaximum},
		{name: "equal_to_maximum_accepted", item: newItem("150.00", "500.00"), user: player, amount: "500.00", expectedErr: nil},
		{name: "no_maximum_means_no_ceiling", item: newItem("150.00", ""), user: player, amount: "999999.99", expectedErr: nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			amount, err := ValidateBid(tc.item, tc.user, tc.amount)

			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
			} else {
				require.NoError(t, err)
				require.True(t, amount.Equal(decimal.RequireFromString(tc.amount)))
			}
		})
	}
}

// ValidateBid must be safe to re-run: same inputs, same outcome, no state.
func TestValidateBid_Rerunnable(t *testing.T) {
	t.Parallel()

	item := newItem("150.00", "500.00")
	for i := 0; i < 3; i++ {
		amount, err := ValidateBid(item, player, "200.00")
		require.NoError(t, err)
		require.True(t, amount.Equal(decimal.RequireFromString("200.00")))
	}
}

// Tests ParseAmount precision handling
func TestParseAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		raw       string
		wantError bool
	}{
		{name: "whole_number", raw: "100", wantError: false},
		{name: "one_decimal_place", raw: "100.5", wantError: false},
		{name: "two_decimal_places", raw: "100.55", wantError: false},
		{name: "trailing_zero_third_place", raw: "100.550", wantError: false},
		{name: "three_decimal_places", raw: "100.555", wantError: true},
		{name: "scientific_notation_ok", raw: "1e2", wantError: false},
		{name: "zero", raw: "0.00", wantError: true},
		{name: "negative", raw: "-1.00", wantError: true},
		{name: "garbage", raw: "12,50", wantError: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseAmount(tc.raw)
			if tc.wantError {
				require.ErrorIs(t, err, auctionerrors.ErrMalformedAmount)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
