package repository

import (
	"sort"

	model "closed-auction-metrics/internal/models"
)

// ResolveQuery applies the repository query semantics to an already-fetched
// candidate set. It is the single implementation shared by every backend so
// window filtering, ordering and limiting cannot diverge between them:
//
//  1. keep auctions whose end time lies inside the inclusive window
//  2. stable-sort ascending by end time (closed longest ago first)
//  3. keep the last `limit` elements, the most recently closed, without
//     re-sorting
//
// A left bound greater than the right bound yields an empty result, as does
// a limit of zero. A nil limit uses defaultLimit.
func ResolveQuery(candidates []*model.ClosedAuction, filter Filter, defaultLimit int) []*model.ClosedAuction {
	if filter.LeftBound != nil && filter.RightBound != nil && filter.LeftBound.After(*filter.RightBound) {
		return []*model.ClosedAuction{}
	}

	trimmed := make([]*model.ClosedAuction, 0, len(candidates))
	for _, auction := range candidates {
		end := auction.EndTime
		if filter.LeftBound != nil && end.Before(*filter.LeftBound) {
			continue
		}
		if filter.RightBound != nil && end.After(*filter.RightBound) {
			continue
		}
		trimmed = append(trimmed, auction)
	}

	sortAuctionResults(trimmed)

	limit := defaultLimit
	if filter.Limit != nil {
		limit = *filter.Limit
	}
	return limitAuctionResults(trimmed, limit)
}

// sortAuctionResults orders auctions from ending farthest back in time to
// most recent (last index). The sort is stable for determinism on ties.
func sortAuctionResults(auctions []*model.ClosedAuction) {
	sort.SliceStable(auctions, func(i, j int) bool {
		return auctions[i].EndTime.Before(auctions[j].EndTime)
	})
}

// limitAuctionResults keeps the most recently closed auctions up to limit,
// preserving ascending order.
func limitAuctionResults(auctions []*model.ClosedAuction, limit int) []*model.ClosedAuction {
	if limit <= 0 {
		return []*model.ClosedAuction{}
	}
	if len(auctions) > limit {
		return auctions[len(auctions)-limit:]
	}
	return auctions
}
