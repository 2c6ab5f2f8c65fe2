package ingest

import (
	"context"
	"encoding/json"

	auction "closed-auction-metrics/internal/auctionService"
	"closed-auction-metrics/internal/queue"
	"closed-auction-metrics/utils"
)

// AuctionDataAdder is the slice of the application service the consumer
// needs.
type AuctionDataAdder interface {
	AddAuctionData(ctx context.Context, event auction.AuctionClosedEvent) error
}

// Source is where deliveries come from; satisfied by queue.Queue.
type Source interface {
	Out() <-chan queue.Delivery
}

// Consumer decodes auction-closed events from a delivery source and hands
// them to the application service. A malformed or rejected message is logged
// and dropped; redelivery of a good message is harmless because saves are
// upserts.
type Consumer struct {
	svc AuctionDataAdder
	src Source
}

// NewConsumer creates a Consumer over the given source.
func NewConsumer(svc AuctionDataAdder, src Source) *Consumer {
	return &Consumer{svc: svc, src: src}
}

// Run consumes deliveries until ctx is cancelled.
func (c *Consumer) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case delivery, ok := <-c.src.Out():
			if !ok {
				return
			}
			c.handle(ctx, delivery)
		}
	}
}

func (c *Consumer) handle(ctx context.Context, delivery queue.Delivery) {
	var event auction.AuctionClosedEvent
	if err := json.Unmarshal(delivery.Body, &event); err != nil {
		utils.Warn("dropping undecodable auction-closed message", map[string]any{
			"delivery_id": delivery.ID,
			"error":       err.Error(),
		})
		return
	}

	if err := c.svc.AddAuctionData(ctx, event); err != nil {
		utils.Warn("rejected auction-closed message", map[string]any{
			"delivery_id": delivery.ID,
			"item_id":     event.Item.ItemID,
			"error":       err.Error(),
		})
		return
	}

	utils.Info("consumed auction-closed message", map[string]any{
		"delivery_id": delivery.ID,
		"item_id":     event.Item.ItemID,
	})
}
