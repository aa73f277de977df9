package handler

import (
	"fmt"
	"net/http"

	model "bidwars/internal/models"
	"bidwars/services/auction/helpers"
	"bidwars/utils"

	"github.com/gin-gonic/gin"
)

type LifecycleServiceInterface interface {
	Toggle(itemID string) (model.Item, error)
	SetActive(itemID string, active bool) (model.Item, error)
}

type LifecycleHandler struct {
	service LifecycleServiceInterface
}

func NewLifecycleHandler(service LifecycleServiceInterface) *LifecycleHandler {
	return &LifecycleHandler{service: service}
}

// ToggleStatusHandler handles POST /items/:item_id/toggle-status (admin only)
func (h *LifecycleHandler) ToggleStatusHandler(c *gin.Context) {
	itemID := c.Param("item_id")

	item, err := h.service.Toggle(itemID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ToggleStatusHandler: failed to toggle item", map[string]any{"item_id": itemID, "error": err.Error()})
		return
	}

	verb := "deactivated"
	if item.IsActive {
		verb = "activated"
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"is_active": item.IsActive}, "item "+verb+" successfully")
	helpers.LogSuccess("ToggleStatusHandler", "item "+verb, map[string]any{
		"item_id":   itemID,
		"is_active": item.IsActive,
	})
}

// SetStatusHandler handles PUT /items/:item_id/status (admin only)
func (h *LifecycleHandler) SetStatusHandler(c *gin.Context) {
	itemID := c.Param("item_id")

	var req helpers.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SetStatusHandler", err)
		return
	}

	item, err := h.service.SetActive(itemID, *req.IsActive)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("SetStatusHandler: failed to set item status", map[string]any{"item_id": itemID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"is_active": item.IsActive}, "item status updated successfully")
}
