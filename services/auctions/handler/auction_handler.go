package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"closed-auction-metrics/internal/auctionerrors"
	model "closed-auction-metrics/internal/models"
	"closed-auction-metrics/services/auctions/helpers"
	"closed-auction-metrics/utils"
)

// AuctionServiceInterface is the application surface the HTTP layer depends
// on.
type AuctionServiceInterface interface {
	GetAuctionData(ctx context.Context, itemID string) (map[string]model.AuctionRecord, error)
	GetAuctionsData(ctx context.Context, start, end *time.Time, limit *int) (map[string]model.AuctionRecord, error)
	GetAuctionVisualizationHTML(ctx context.Context, itemID string) (string, error)
}

// Intake accepts raw auction-closed messages for asynchronous consumption;
// satisfied by queue.Queue.
type Intake interface {
	Enqueue(body []byte) (string, bool)
	Depth() int
}

type AuctionHandler struct {
	service AuctionServiceInterface
	intake  Intake
}

func NewAuctionHandler(service AuctionServiceInterface, intake Intake) *AuctionHandler {
	return &AuctionHandler{service: service, intake: intake}
}

// GetClosedAuctionHandler handles GET /api/v1/closedauctions/:item_id.
// The body is a mapping from item id to the serialized auction; an unknown
// id yields an empty object.
func (h *AuctionHandler) GetClosedAuctionHandler(c *gin.Context) {
	itemID := c.Param("item_id")
	auctions, err := h.service.GetAuctionData(c.Request.Context(), itemID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		utils.Warn("GetClosedAuctionHandler: failed to get auction", map[string]any{"item_id": itemID, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, auctions)
	helpers.LogSuccess("GetClosedAuctionHandler", "auction retrieved", map[string]any{
		"item_id": itemID,
		"found":   len(auctions) == 1,
	})
}

// GetClosedAuctionsHandler handles GET /api/v1/closedauctions. Results are
// keyed by item id; the window filters on auction end time, ascending, capped
// to the limit by keeping the most recently closed.
func (h *AuctionHandler) GetClosedAuctionsHandler(c *gin.Context) {
	window, err := helpers.ParseWindowQuery(c)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		utils.Warn("GetClosedAuctionsHandler: bad query parameters", map[string]any{"error": err.Error()})
		return
	}

	auctions, err := h.service.GetAuctionsData(c.Request.Context(), window.Start, window.End, window.Limit)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		utils.Warn("GetClosedAuctionsHandler: failed to get auctions", map[string]any{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, auctions)
	helpers.LogSuccess("GetClosedAuctionsHandler", "auctions retrieved", map[string]any{
		"count": len(auctions),
	})
}

// GetClosedAuctionVisualizationHandler handles
// GET /api/v1/closedauctions/:item_id/visualization. Rendering failures
// degrade to a 400 message body rather than failing the query path.
func (h *AuctionHandler) GetClosedAuctionVisualizationHandler(c *gin.Context) {
	itemID := c.Param("item_id")
	html, err := h.service.GetAuctionVisualizationHTML(c.Request.Context(), itemID)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrVisualization) {
			c.Data(http.StatusBadRequest, "text/html; charset=utf-8", []byte("encountered error generating graphics for item_id="+itemID))
			utils.Warn("GetClosedAuctionVisualizationHandler: degraded response", map[string]any{"item_id": itemID, "error": err.Error()})
			return
		}
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		utils.Warn("GetClosedAuctionVisualizationHandler: failed", map[string]any{"item_id": itemID, "error": err.Error()})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
	helpers.LogSuccess("GetClosedAuctionVisualizationHandler", "visualization served", map[string]any{
		"item_id": itemID,
	})
}

// IngestAuctionEndHandler handles POST /api/v1/auctionends: the raw body is
// enqueued for the ingestion consumer and acknowledged with 202.
func (h *AuctionHandler) IngestAuctionEndHandler(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil || len(body) == 0 {
		utils.JSONError(c, http.StatusBadRequest, auctionerrors.ErrInvalidPayload, "empty or unreadable body")
		return
	}

	deliveryID, ok := h.intake.Enqueue(body)
	if !ok {
		utils.JSONError(c, http.StatusServiceUnavailable, auctionerrors.ErrBackend, "intake is shut down")
		return
	}

	utils.JSONResponse(c, http.StatusAccepted, helpers.IngestAcceptedResponse{DeliveryID: deliveryID}, "auction end event accepted")
	helpers.LogSuccess("IngestAuctionEndHandler", "event enqueued", map[string]any{
		"delivery_id": deliveryID,
		"queue_depth": h.intake.Depth(),
	})
}
