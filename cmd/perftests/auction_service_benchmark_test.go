package perftests

import (
	"context"
	"fmt"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	auction "closed-auction-metrics/internal/auctionService"
	model "closed-auction-metrics/internal/models"
	repository "closed-auction-metrics/internal/repository"
)

var benchStart = time.Date(2022, time.March, 17, 0, 0, 0, 130002000, time.UTC)

func benchAuction(itemID int, closedAt time.Time) *model.ClosedAuction {
	bids := []model.Bid{
		model.GenerateBasicBid(itemID*10, itemID),
		model.GenerateBasicBid(itemID*10+1, itemID),
	}
	return model.GenerateAuction(bids, itemID, closedAt.Add(-30*time.Minute), 30*time.Minute, nil)
}

// Benchmark 1: SaveAuction - Isolated Items (Low Contention - Micro Benchmark)
func Benchmark_SaveAuction_Isolated(b *testing.B) {
	ctx := context.Background()
	repo := repository.NewMemoryRepo(repository.DefaultQueryLimit)

	auctions := make([]*model.ClosedAuction, b.N)
	for i := 0; i < b.N; i++ {
		auctions[i] = benchAuction(i, benchStart.Add(time.Duration(i)*time.Minute))
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := repo.SaveAuction(ctx, auctions[i]); err != nil {
			b.Fatalf("failed to save auction: %v", err)
		}
	}
}

// Benchmark 2: SaveAuction - Shared Item (High Contention - Concurrency Benchmark)
func Benchmark_SaveAuction_ConcurrentSharedItem(b *testing.B) {
	ctx := context.Background()
	repo := repository.NewMemoryRepo(repository.DefaultQueryLimit)
	shared := benchAuction(1, benchStart)

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = repo.SaveAuction(ctx, shared)
		}
	})
}

// Benchmark 3: GetAuctionData - Single - Threaded (Low Contention)
func Benchmark_GetAuctionData_SingleThreaded(b *testing.B) {
	ctx := context.Background()
	repo := repository.NewMemoryRepo(repository.DefaultQueryLimit)
	svc := auction.NewAuctionService(repo)

	for i := 0; i < b.N; i++ {
		if err := repo.SaveAuction(ctx, benchAuction(i, benchStart.Add(time.Duration(i)*time.Minute))); err != nil {
			b.Fatalf("failed to seed auction: %v", err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		itemID := fmt.Sprintf("%d", i)
		if _, err := svc.GetAuctionData(ctx, itemID); err != nil {
			b.Fatalf("failed to get auction: %v", err)
		}
	}
}

// Benchmark 4: GetAuctionsData - Concurrent Window Queries (High Contention)
func Benchmark_GetAuctionsData_ConcurrentWindow(b *testing.B) {
	ctx := context.Background()
	repo := repository.NewMemoryRepo(repository.DefaultQueryLimit)
	svc := auction.NewAuctionService(repo)

	for i := 0; i < 1000; i++ {
		if err := repo.SaveAuction(ctx, benchAuction(i, benchStart.Add(time.Duration(i)*time.Minute))); err != nil {
			b.Fatalf("failed to seed auction: %v", err)
		}
	}

	windowStart := benchStart.Add(100 * time.Minute)
	windowEnd := benchStart.Add(900 * time.Minute)
	limit := 50

	b.ReportAllocs()
	b.ResetTimer()

	var counter int64

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := svc.GetAuctionsData(ctx, &windowStart, &windowEnd, &limit); err != nil {
				b.Fatalf("failed to query window: %v", err)
			}
			atomic.AddInt64(&counter, 1)
		}
	})
}

// Benchmark 5: Mixed Workload (Readers + Writers concurrently)
func Benchmark_MixedWorkload(b *testing.B) {
	ctx := context.Background()
	repo := repository.NewMemoryRepo(repository.DefaultQueryLimit)
	svc := auction.NewAuctionService(repo)

	for i := 0; i < 200; i++ {
		if err := repo.SaveAuction(ctx, benchAuction(i, benchStart.Add(time.Duration(i)*time.Minute))); err != nil {
			b.Fatalf("failed to seed auction: %v", err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	var counter int64

	// Ratio: 70% readers, 30% writers
	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			opType := rnd.Intn(10)
			itemIndex := rnd.Intn(200)
			switch {
			case opType < 3:
				// Writer: re-save an auction (upsert path)
				_ = repo.SaveAuction(ctx, benchAuction(itemIndex, benchStart.Add(time.Duration(itemIndex)*time.Minute)))
			default:
				// Reader: fetch one auction
				_, _ = svc.GetAuctionData(ctx, fmt.Sprintf("%d", itemIndex))
			}
			atomic.AddInt64(&counter, 1)
		}
	})
}
