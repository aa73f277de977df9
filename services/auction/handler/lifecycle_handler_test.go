package handler

import (
	"fmt"
	"net/http"
	"testing"

	"bidwars/internal/auctionerrors"
	model "bidwars/internal/models"
	"bidwars/services/auction/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func newLifecycleRouter(t *testing.T, mockService *MockLifecycleServiceInterface) *gin.Engine {
	t.Helper()
	h := NewLifecycleHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(identityMiddleware(testAdmin))
	router.POST("/items/:item_id/toggle-status", h.ToggleStatusHandler)
	router.PUT("/items/:item_id/status", h.SetStatusHandler)
	return router
}

// Test ToggleStatusHandler
func TestToggleStatusHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockLifecycleServiceInterface(ctrl)
	router := newLifecycleRouter(t, mockService)

	t.Run("deactivates", func(t *testing.T) {
		mockService.EXPECT().Toggle("item1").Return(model.Item{ItemID: "item1", IsActive: false}, nil)

		resp, w := performJSON(t, router, http.MethodPost, "/items/item1/toggle-status", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "item deactivated successfully", resp["message"])
		require.Equal(t, false, resp["data"].(map[string]any)["is_active"])
	})

	t.Run("activates", func(t *testing.T) {
		mockService.EXPECT().Toggle("item1").Return(model.Item{ItemID: "item1", IsActive: true}, nil)

		resp, w := performJSON(t, router, http.MethodPost, "/items/item1/toggle-status", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "item activated successfully", resp["message"])
	})

	t.Run("not_found", func(t *testing.T) {
		mockService.EXPECT().Toggle("missing").
			Return(model.Item{}, fmt.Errorf("service: %w", auctionerrors.ErrItemNotFound))

		_, w := performJSON(t, router, http.MethodPost, "/items/missing/toggle-status", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

// Test SetStatusHandler
func TestSetStatusHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockLifecycleServiceInterface(ctrl)
	router := newLifecycleRouter(t, mockService)

	t.Run("explicit_deactivate", func(t *testing.T) {
		mockService.EXPECT().SetActive("item1", false).Return(model.Item{ItemID: "item1", IsActive: false}, nil)

		active := false
		resp, w := performJSON(t, router, http.MethodPut, "/items/item1/status",
			helpers.SetStatusRequest{IsActive: &active})
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, false, resp["data"].(map[string]any)["is_active"])
	})

	t.Run("missing_flag", func(t *testing.T) {
		_, w := performJSON(t, router, http.MethodPut, "/items/item1/status", map[string]any{})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}
