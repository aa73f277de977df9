package handler

import (
	"errors"
	"fmt"
	"net/http"

	"bidwars/internal/auctionerrors"
	catalog "bidwars/internal/catalogService"
	model "bidwars/internal/models"
	"bidwars/services/auction/helpers"
	"bidwars/utils"

	"github.com/gin-gonic/gin"
)

type CatalogServiceInterface interface {
	CreateItem(title, description, createdBy, rawStartingPrice, rawMaxAmount string) (model.Item, error)
	UpdateItem(itemID, title, description, rawMaxAmount string) (model.Item, error)
	ListItems() ([]model.Item, error)
	ListActiveItems() ([]model.Item, error)
	GetItem(itemID string) (model.Item, error)
	GetBidHistory(itemID string) ([]model.Bid, error)
	GetBidsByUser(userID string) ([]model.Bid, error)
	GetHighestBid(itemID string) (catalog.HighestBid, error)
}

type CatalogHandler struct {
	service CatalogServiceInterface
}

func NewCatalogHandler(service CatalogServiceInterface) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// CreateItemHandler handles POST /items (admin only, enforced by middleware)
func (h *CatalogHandler) CreateItemHandler(c *gin.Context) {
	user, _ := helpers.CurrentUser(c)

	var req helpers.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateItemHandler", err)
		return
	}

	item, err := h.service.CreateItem(req.Title, req.Description, user.UserID, req.StartingPrice, req.MaxAmount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("CreateItemHandler: failed to create item", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, item, "item created successfully")
	helpers.LogSuccess("CreateItemHandler", "item created successfully", map[string]any{
		"item_id": item.ItemID,
		"title":   item.Title,
	})
}

// UpdateItemHandler handles PUT /items/:item_id (admin only)
func (h *CatalogHandler) UpdateItemHandler(c *gin.Context) {
	itemID := c.Param("item_id")

	var req helpers.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateItemHandler", err)
		return
	}

	item, err := h.service.UpdateItem(itemID, req.Title, req.Description, req.MaxAmount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("UpdateItemHandler: failed to update item", map[string]any{"item_id": itemID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, item, "item updated successfully")
}

// ListItemsHandler handles GET /items
func (h *CatalogHandler) ListItemsHandler(c *gin.Context) {
	items, err := h.service.ListItems()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	utils.JSONResponse(c, http.StatusOK, items, "items retrieved successfully")
}

// ListActiveItemsHandler handles GET /items/active
func (h *CatalogHandler) ListActiveItemsHandler(c *gin.Context) {
	items, err := h.service.ListActiveItems()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	utils.JSONResponse(c, http.StatusOK, items, "active items retrieved successfully")
}

// GetItemHandler handles GET /items/:item_id
func (h *CatalogHandler) GetItemHandler(c *gin.Context) {
	itemID := c.Param("item_id")
	item, err := h.service.GetItem(itemID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetItemHandler: error retrieving item", map[string]any{"item_id": itemID, "error": err.Error()})
		return
	}
	utils.JSONResponse(c, http.StatusOK, item, "item retrieved successfully")
}

// GetBidHistoryHandler handles GET /items/:item_id/bids
func (h *CatalogHandler) GetBidHistoryHandler(c *gin.Context) {
	itemID := c.Param("item_id")
	bids, err := h.service.GetBidHistory(itemID)
	if err != nil && !errors.Is(err, auctionerrors.ErrNoBids) {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidHistoryHandler: error retrieving bids", map[string]any{"item_id": itemID, "error": err.Error()})
		return
	}

	resp := make([]helpers.BidResponse, 0, len(bids))
	for _, b := range bids {
		resp = append(resp, BidToResponse(b))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bids retrieved successfully")
	helpers.LogSuccess("GetBidHistoryHandler", "bids retrieved successfully", map[string]any{
		"item_id": itemID,
		"count":   len(resp),
	})
}

// GetMyBidsHandler handles GET /bids for the calling user
func (h *CatalogHandler) GetMyBidsHandler(c *gin.Context) {
	user, ok := helpers.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, fmt.Errorf("missing identity"), "authentication required")
		return
	}

	bids, err := h.service.GetBidsByUser(user.UserID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}

	resp := make([]helpers.BidResponse, 0, len(bids))
	for _, b := range bids {
		resp = append(resp, BidToResponse(b))
	}
	utils.JSONResponse(c, http.StatusOK, resp, "bids retrieved successfully")
}

// GetHighestBidHandler handles GET /items/:item_id/highest-bid
func (h *CatalogHandler) GetHighestBidHandler(c *gin.Context) {
	itemID := c.Param("item_id")
	projection, err := h.service.GetHighestBid(itemID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetHighestBidHandler: error retrieving projection", map[string]any{"item_id": itemID, "error": err.Error()})
		return
	}
	utils.JSONResponse(c, http.StatusOK, projection, "highest bid retrieved successfully")
}
