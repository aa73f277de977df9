package server

import (
	"bidwars/internal/auth"
	handler "bidwars/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// Services bundles the service interfaces the router exposes.
type Services struct {
	Bidding   handler.BiddingServiceInterface
	Catalog   handler.CatalogServiceInterface
	Lifecycle handler.LifecycleServiceInterface
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(svcs Services, authManager *auth.Manager) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(AuthMiddleware(authManager))

	biddingHandler := handler.NewBiddingHandler(svcs.Bidding)
	catalogHandler := handler.NewCatalogHandler(svcs.Catalog)
	lifecycleHandler := handler.NewLifecycleHandler(svcs.Lifecycle)

	bids := router.Group("/bids")
	{
		bids.POST("", biddingHandler.SubmitBidHandler)
		bids.GET("", catalogHandler.GetMyBidsHandler)
	}

	items := router.Group("/items")
	{
		items.GET("", catalogHandler.ListItemsHandler)
		items.GET("/active", catalogHandler.ListActiveItemsHandler)
		items.GET("/:item_id", catalogHandler.GetItemHandler)
		items.GET("/:item_id/bids", catalogHandler.GetBidHistoryHandler)
		items.GET("/:item_id/highest-bid", catalogHandler.GetHighestBidHandler)

		admin := items.Group("", AdminOnlyMiddleware)
		{
			admin.POST("", catalogHandler.CreateItemHandler)
			admin.PUT("/:item_id", catalogHandler.UpdateItemHandler)
			admin.POST("/:item_id/toggle-status", lifecycleHandler.ToggleStatusHandler)
			admin.PUT("/:item_id/status", lifecycleHandler.SetStatusHandler)
		}
	}

	return router
}
