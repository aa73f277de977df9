package helpers

// Request/Response DTOs. Monetary amounts travel as strings so the validator
// owns precision checks.
type PlaceBidRequest struct {
	ItemID string `json:"item_id" binding:"required"`
	Amount string `json:"amount" binding:"required"`
}

type BidResponse struct {
	BidID   string `json:"bid_id"`
	ItemID  string `json:"item_id"`
	UserID  string `json:"user_id"`
	Amount  string `json:"bid_amount"`
	BidTime string `json:"bid_time"`
}

type CreateItemRequest struct {
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description"`
	StartingPrice string `json:"starting_price" binding:"required"`
	MaxAmount     string `json:"max_amount"`
}

type UpdateItemRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	MaxAmount   string `json:"max_amount"`
}

type SetStatusRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}
