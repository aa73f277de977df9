package handler

import (
	"fmt"
	"net/http"
	"time"

	model "bidwars/internal/models"
	"bidwars/services/auction/helpers"
	"bidwars/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=bidding_handler.go -destination=mock_services.go -package=handler

type BiddingServiceInterface interface {
	SubmitBid(itemID string, user model.User, rawAmount string) (model.Bid, error)
}

type BiddingHandler struct {
	service BiddingServiceInterface
}

func NewBiddingHandler(service BiddingServiceInterface) *BiddingHandler {
	return &BiddingHandler{service: service}
}

// SubmitBidHandler handles POST /bids
func (h *BiddingHandler) SubmitBidHandler(c *gin.Context) {
	user, ok := helpers.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, fmt.Errorf("missing identity"), "authentication required")
		return
	}

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SubmitBidHandler", err)
		return
	}

	bid, err := h.service.SubmitBid(req.ItemID, user, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("SubmitBidHandler: bid rejected", map[string]any{
			"handler": "SubmitBidHandler",
			"item_id": req.ItemID,
			"user_id": user.UserID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, BidToResponse(bid), "bid accepted")
	helpers.LogSuccess("SubmitBidHandler", "bid accepted", map[string]any{
		"bid_id":  bid.BidID,
		"item_id": bid.ItemID,
		"user_id": user.UserID,
		"amount":  bid.Amount.String(),
	})
}

// BidToResponse converts a committed bid into its wire representation.
func BidToResponse(bid model.Bid) helpers.BidResponse {
	return helpers.BidResponse{
		BidID:   bid.BidID,
		ItemID:  bid.ItemID,
		UserID:  bid.UserID,
		Amount:  bid.Amount.StringFixed(2),
		BidTime: bid.BidTime.UTC().Format(time.RFC3339),
	}
}
