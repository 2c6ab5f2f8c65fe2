package server

import (
	handler "closed-auction-metrics/services/auctions/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application.
func SetupRouter(service handler.AuctionServiceInterface, intake handler.Intake) *gin.Engine {
	router := gin.New() // no default middleware, logging and recovery are explicit

	router.Use(gin.Recovery())
	router.Use(RequestLoggerMiddleware)

	auctionHandler := handler.NewAuctionHandler(service, intake)

	router.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	v1 := router.Group("/api/v1")
	{
		v1.GET("/closedauctions", auctionHandler.GetClosedAuctionsHandler)
		v1.GET("/closedauctions/:item_id", auctionHandler.GetClosedAuctionHandler)
		v1.GET("/closedauctions/:item_id/visualization", auctionHandler.GetClosedAuctionVisualizationHandler)
		v1.POST("/auctionends", auctionHandler.IngestAuctionEndHandler)
	}

	return router
}
