package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User roles
const (
	RoleAdmin  = "admin"
	RolePlayer = "player"
)

// User represents a participant in the marketplace. Identity and role arrive
// verified from the authentication collaborator; the core never checks
// credentials itself.
type User struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Item represents an auction lot. CurrentHighestBid, CurrentHighestBidder and
// IsActive are derived projections owned by the bidding engine and the
// lifecycle controller; nothing else writes them.
type Item struct {
	ItemID        string           `json:"item_id"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	StartingPrice decimal.Decimal  `json:"starting_price"`
	MaxAmount     *decimal.Decimal `json:"max_amount,omitempty"`
	IsActive      bool             `json:"is_active"`
	CreatedBy     string           `json:"created_by"`
	CreatedAt     time.Time        `json:"created_at"`

	CurrentHighestBid    decimal.Decimal `json:"current_highest_bid"`
	CurrentHighestBidder string          `json:"current_highest_bidder,omitempty"`

	// Version counts committed writes to this item. The store rejects any
	// write whose expected version does not match the stored one.
	Version int64 `json:"-"`
}

// Bid represents an accepted monetary offer against an item. Bids are
// immutable once committed; for a given item their amounts are strictly
// increasing in bid-time order.
type Bid struct {
	BidID   string          `json:"bid_id"`
	ItemID  string          `json:"item_id"`
	UserID  string          `json:"user_id"`
	Amount  decimal.Decimal `json:"bid_amount"`
	BidTime time.Time       `json:"bid_time"`
}
