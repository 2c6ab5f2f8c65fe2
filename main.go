package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	auction "closed-auction-metrics/internal/auctionService"
	"closed-auction-metrics/internal/config"
	"closed-auction-metrics/internal/ingest"
	model "closed-auction-metrics/internal/models"
	"closed-auction-metrics/internal/queue"
	"closed-auction-metrics/internal/repository"
	"closed-auction-metrics/internal/server"
	"closed-auction-metrics/utils"
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, err := buildRepository(ctx, cfg)
	if err != nil {
		utils.Fatal("failed to initialize repository", map[string]any{"backend": cfg.Backend, "error": err.Error()})
	}

	service := auction.NewAuctionService(repo)

	intake := queue.New(cfg.QueueBuffer)
	intake.Start(ctx)
	consumer := ingest.NewConsumer(service, intake)
	go func() {
		consumer.Run(ctx)
		intake.CloseIntake()
	}()

	router := server.SetupRouter(service, intake)

	fmt.Printf("Starting closed-auction-metrics server on %s (backend: %s)...\n", cfg.HTTPAddr, cfg.Backend)
	if err := router.Run(cfg.HTTPAddr); err != nil {
		utils.Fatal("failed to start server", map[string]any{"error": err.Error()})
	}
}

// buildRepository selects and initializes the configured backend. The
// in-memory backend starts seeded with sample auctions for local runs.
func buildRepository(ctx context.Context, cfg config.Config) (repository.AuctionRepository, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		repo := repository.NewMemoryRepo(cfg.QueryDefaultLimit)
		prepopulateAuctions(ctx, repo)
		return repo, nil
	case config.BackendPostgres:
		pool, err := pgxpool.New(ctx, cfg.PostgresDSN())
		if err != nil {
			return nil, err
		}
		if err := pool.Ping(ctx); err != nil {
			return nil, err
		}
		return repository.NewPostgresRepo(ctx, pool, cfg.QueryDefaultLimit)
	default:
		return nil, fmt.Errorf("unknown repository backend %q", cfg.Backend)
	}
}

// prepopulateAuctions seeds the in-memory repo with sample closed auctions.
func prepopulateAuctions(ctx context.Context, repo *repository.MemoryRepo) {
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

	for _, a := range []*model.ClosedAuction{auction1, auction2, auction3} {
		if err := repo.SaveAuction(ctx, a); err != nil {
			utils.Warn("failed to seed auction", map[string]any{"item_id": a.ItemID, "error": err.Error()})
		}
	}
}
