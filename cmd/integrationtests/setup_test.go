package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	auction "closed-auction-metrics/internal/auctionService"
	"closed-auction-metrics/internal/ingest"
	model "closed-auction-metrics/internal/models"
	"closed-auction-metrics/internal/queue"
	"closed-auction-metrics/internal/repository"
	"closed-auction-metrics/internal/server"
)

// SetupTestRouter initializes the router with an in-memory repository and a
// running ingestion pipeline for integration testing.
func SetupTestRouter(t *testing.T, auctions ...*model.ClosedAuction) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	repo := repository.NewMemoryRepo(repository.DefaultQueryLimit)
	for _, a := range auctions {
		if err := repo.SaveAuction(ctx, a); err != nil {
			t.Fatalf("failed to seed auction %s: %v", a.ItemID, err)
		}
	}

	service := auction.NewAuctionService(repo)
	intake := queue.New(8)
	intake.Start(ctx)
	go ingest.NewConsumer(service, intake).Run(ctx)

	return server.SetupRouter(service, intake)
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request on the given router and
// parses the JSON object response.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body []byte) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()
	w := ExecuteRequest(t, router, method, url, body)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

// SeedAuctions builds the sample set used across the API tests. End times
// ascend 200 < 202 < 201.
func SeedAuctions() []*model.ClosedAuction {
	bid1 := model.GenerateBasicBid(100, 200)
	bid2 := model.GenerateBasicBid(101, 200)
	bid3 := model.GenerateBasicBid(102, 200)
	start1 := time.Date(2022, time.March, 17, 0, 0, 0, 130002000, time.UTC)
	auction1 := model.GenerateAuction([]model.Bid{bid1, bid2, bid3}, 200, start1, 30*time.Minute, nil)

	bid4 := model.GenerateBasicBid(103, 201)
	bid5 := model.GenerateBasicBid(104, 201)
	start2 := time.Date(2022, time.March, 17, 1, 10, 0, 130002000, time.UTC)
	auction2 := model.GenerateAuction([]model.Bid{bid4, bid5}, 201, start2, 24*time.Minute, nil)

	bid6 := model.GenerateBasicBid(105, 202)
	start3 := time.Date(2022, time.March, 17, 1, 17, 10, 130002000, time.UTC)
	auction3 := model.GenerateAuction([]model.Bid{bid6}, 202, start3, 14*time.Minute, nil)

	return []*model.ClosedAuction{auction1, auction2, auction3}
}
