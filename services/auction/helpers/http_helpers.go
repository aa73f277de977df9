package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"bidwars/internal/auctionerrors"
	"bidwars/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message.
// The messages are the caller-facing rejection reasons, one per sentinel, so
// polling clients can render actionable text.
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrItemNotFound):
		return http.StatusNotFound, "item not found"
	case errors.Is(err, auctionerrors.ErrMalformedAmount):
		return http.StatusBadRequest, "malformed bid amount"
	case errors.Is(err, auctionerrors.ErrInvalidItem):
		return http.StatusBadRequest, "invalid item details"
	case errors.Is(err, auctionerrors.ErrItemExists):
		return http.StatusConflict, "item already exists"
	case errors.Is(err, auctionerrors.ErrRoleNotPermitted):
		return http.StatusForbidden, "only players can bid"
	case errors.Is(err, auctionerrors.ErrAuctionClosed):
		return http.StatusConflict, "auction closed"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, auctionerrors.ErrExceedsMaximum):
		return http.StatusConflict, "bid exceeds maximum amount"
	case errors.Is(err, auctionerrors.ErrConflict), errors.Is(err, auctionerrors.ErrVersionMismatch):
		return http.StatusConflict, "concurrent update conflict, retry"
	case errors.Is(err, auctionerrors.ErrStorageUnavailable):
		return http.StatusServiceUnavailable, "storage unavailable"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
