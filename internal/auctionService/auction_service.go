package auction

import (
	"context"
	"fmt"
	"time"

	model "closed-auction-metrics/internal/models"
	"closed-auction-metrics/internal/repository"
	"closed-auction-metrics/internal/visualization"
	"closed-auction-metrics/utils"
)

// AuctionService is the application layer over the auction repository: it
// ingests auction-closed events and serves the query and visualization paths.
type AuctionService struct {
	repo repository.AuctionRepository
}

// NewAuctionService creates an AuctionService instance.
func NewAuctionService(repo repository.AuctionRepository) *AuctionService {
	return &AuctionService{repo: repo}
}

// AddAuctionData validates an auction-closed event, builds the ClosedAuction
// it describes and upserts it. Reprocessing the same item id is safe because
// the save replaces the record wholesale.
func (s *AuctionService) AddAuctionData(ctx context.Context, event AuctionClosedEvent) error {
	auction, err := auctionFromEvent(event)
	if err != nil {
		return fmt.Errorf("service: failed to build closed auction: %w", err)
	}

	if err := s.repo.SaveAuction(ctx, auction); err != nil {
		return fmt.Errorf("service: failed to save auction %s: %w", auction.ItemID, err)
	}

	utils.Info("recorded closed auction", map[string]any{
		"item_id":  auction.ItemID,
		"end_time": utils.FormatTimestamp(auction.EndTime),
		"num_bids": len(auction.Bids),
	})
	return nil
}

// GetAuctionData returns the transport record for one item id, keyed by item
// id. An unknown id yields an empty map, not an error.
func (s *AuctionService) GetAuctionData(ctx context.Context, itemID string) (map[string]model.AuctionRecord, error) {
	auction, err := s.repo.GetAuction(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get auction %s: %w", itemID, err)
	}

	result := map[string]model.AuctionRecord{}
	if auction != nil {
		result[auction.ItemID] = auction.Record()
	}
	return result, nil
}

// GetAuctionsData returns the auctions whose end time falls in the inclusive
// window, keyed by item id, resolved with the repository's ordering and
// limiting semantics.
func (s *AuctionService) GetAuctionsData(ctx context.Context, start, end *time.Time, limit *int) (map[string]model.AuctionRecord, error) {
	auctions, err := s.repo.GetAuctions(ctx, repository.Filter{
		LeftBound:  start,
		RightBound: end,
		Limit:      limit,
	})
	if err != nil {
		return nil, fmt.Errorf("service: failed to get auctions: %w", err)
	}

	result := make(map[string]model.AuctionRecord, len(auctions))
	for _, auction := range auctions {
		result[auction.ItemID] = auction.Record()
	}
	return result, nil
}

// GetAuctionVisualizationHTML renders the bid history of one auction as an
// inline-image HTML fragment. A missing auction yields a plain message; a
// rendering failure surfaces auctionerrors.ErrVisualization so the caller
// can degrade the response instead of failing the query path.
func (s *AuctionService) GetAuctionVisualizationHTML(ctx context.Context, itemID string) (string, error) {
	auction, err := s.repo.GetAuction(ctx, itemID)
	if err != nil {
		return "", fmt.Errorf("service: failed to get auction %s: %w", itemID, err)
	}
	if auction == nil {
		return fmt.Sprintf("could not find closed auction for item_id=%s", itemID), nil
	}

	html, err := visualization.BidHistoryHTML(auction)
	if err != nil {
		return "", fmt.Errorf("service: visualization for item %s: %w", itemID, err)
	}
	return html, nil
}
