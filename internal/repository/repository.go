package repository

import (
	"context"
	"sync"
	"time"

	model "closed-auction-metrics/internal/models"
)

// DefaultQueryLimit caps GetAuctions results when the caller does not supply
// a limit. Backends take it as a constructor argument so deployments can tune
// it; this is only the fallback.
const DefaultQueryLimit = 10

// Filter constrains a GetAuctions query. Nil bounds leave that side of the
// end-time window open; a nil limit means the backend's configured default.
type Filter struct {
	LeftBound  *time.Time
	RightBound *time.Time
	Limit      *int
}

// AuctionRepository defines closed-auction storage for the query and
// ingestion paths. Every backend resolves window queries with identical
// filter/sort/limit semantics.
type AuctionRepository interface {
	// GetAuction returns the auction recorded for itemID, or nil when none
	// exists. Absence is not an error.
	GetAuction(ctx context.Context, itemID string) (*model.ClosedAuction, error)
	// GetAuctions returns auctions whose end time falls inside the filter's
	// inclusive window, ascending by end time, capped per the filter's limit.
	GetAuctions(ctx context.Context, filter Filter) ([]*model.ClosedAuction, error)
	// SaveAuction upserts the auction keyed by its item id, replacing any
	// prior record wholesale.
	SaveAuction(ctx context.Context, auction *model.ClosedAuction) error
}

// MemoryRepo is a concurrency-safe in-memory implementation of
// AuctionRepository.
type MemoryRepo struct {
	mu           sync.RWMutex
	auctions     map[string]*model.ClosedAuction // key: item_id
	defaultLimit int
}

// NewMemoryRepo creates an in-memory repository. A defaultLimit <= 0 falls
// back to DefaultQueryLimit.
func NewMemoryRepo(defaultLimit int) *MemoryRepo {
	if defaultLimit <= 0 {
		defaultLimit = DefaultQueryLimit
	}
	return &MemoryRepo{
		auctions:     make(map[string]*model.ClosedAuction),
		defaultLimit: defaultLimit,
	}
}

// GetAuction returns the stored auction for itemID, or nil when absent.
func (r *MemoryRepo) GetAuction(ctx context.Context, itemID string) (*model.ClosedAuction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auction, ok := r.auctions[itemID]
	if !ok {
		return nil, nil
	}
	return auction, nil
}

// GetAuctions resolves the window query over all stored auctions.
func (r *MemoryRepo) GetAuctions(ctx context.Context, filter Filter) ([]*model.ClosedAuction, error) {
	r.mu.RLock()
	candidates := make([]*model.ClosedAuction, 0, len(r.auctions))
	for _, auction := range r.auctions {
		candidates = append(candidates, auction)
	}
	r.mu.RUnlock()

	return ResolveQuery(candidates, filter, r.defaultLimit), nil
}

// SaveAuction upserts the auction; a later save for the same item id replaces
// the earlier record wholesale.
func (r *MemoryRepo) SaveAuction(ctx context.Context, auction *model.ClosedAuction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.auctions[auction.ItemID] = auction
	return nil
}
