package auction

import (
	"fmt"
	"time"

	"closed-auction-metrics/internal/auctionerrors"
	model "closed-auction-metrics/internal/models"
	"closed-auction-metrics/utils"
)

// ItemPayload is the Item block of an auction-closed event from the upstream
// auctions context.
type ItemPayload struct {
	ItemID            string `json:"item_id"`
	SellerUserID      string `json:"seller_user_id"`
	StartTime         string `json:"start_time"`
	EndTime           string `json:"end_time"`
	StartPriceInCents int64  `json:"start_price_in_cents"`
}

// EventStamp carries the received time of a cancellation or finalization.
type EventStamp struct {
	TimeReceived string `json:"time_received"`
}

// AuctionClosedEvent is the inbound message shape announcing an auction's
// outcome. The alert flags are bookkeeping of the upstream context and are
// carried but not recorded.
type AuctionClosedEvent struct {
	Item               ItemPayload       `json:"Item"`
	Bids               []model.BidRecord `json:"Bids"`
	Cancellation       *EventStamp       `json:"Cancellation"`
	SentStartSoonAlert bool              `json:"SentStartSoonAlert"`
	SentEndSoonAlert   bool              `json:"SentEndSoonAlert"`
	Finalization       *EventStamp       `json:"Finalization"`
	WinningBid         *model.BidRecord  `json:"WinningBid"`
}

// auctionFromEvent validates the event and builds the ClosedAuction it
// describes. Every time string must match the fixed wire format; a malformed
// one rejects the whole event.
func auctionFromEvent(event AuctionClosedEvent) (*model.ClosedAuction, error) {
	if event.Item.ItemID == "" {
		return nil, fmt.Errorf("%w: missing item_id", auctionerrors.ErrInvalidPayload)
	}
	if event.Finalization == nil {
		return nil, fmt.Errorf("%w: missing Finalization for item %s", auctionerrors.ErrInvalidPayload, event.Item.ItemID)
	}
	if event.Item.StartPriceInCents < 0 {
		return nil, fmt.Errorf("%w: negative start price for item %s", auctionerrors.ErrInvalidPayload, event.Item.ItemID)
	}

	startTime, err := parseEventTime(event.Item.StartTime)
	if err != nil {
		return nil, err
	}
	endTime, err := parseEventTime(event.Item.EndTime)
	if err != nil {
		return nil, err
	}
	finalizedTime, err := parseEventTime(event.Finalization.TimeReceived)
	if err != nil {
		return nil, err
	}
	if endTime.Before(startTime) {
		return nil, fmt.Errorf("%w: end_time precedes start_time for item %s", auctionerrors.ErrInvalidPayload, event.Item.ItemID)
	}
	if finalizedTime.Before(endTime) {
		return nil, fmt.Errorf("%w: finalized_time precedes end_time for item %s", auctionerrors.ErrInvalidPayload, event.Item.ItemID)
	}

	auction := &model.ClosedAuction{
		ItemID:            event.Item.ItemID,
		StartPriceInCents: event.Item.StartPriceInCents,
		StartTime:         startTime,
		EndTime:           endTime,
		FinalizedTime:     finalizedTime,
		Bids:              make([]model.Bid, 0, len(event.Bids)),
	}

	if event.Cancellation != nil {
		cancelledAt, err := parseEventTime(event.Cancellation.TimeReceived)
		if err != nil {
			return nil, err
		}
		auction.CancellationTime = &cancelledAt
	}

	for _, br := range event.Bids {
		if br.AmountInCents < 0 {
			return nil, fmt.Errorf("%w: negative amount on bid %s", auctionerrors.ErrInvalidPayload, br.BidID)
		}
		bid, err := model.BidFromRecord(br)
		if err != nil {
			return nil, fmt.Errorf("%w: bid %s: %v", auctionerrors.ErrBadTimeFormat, br.BidID, err)
		}
		auction.Bids = append(auction.Bids, bid)
	}

	if event.WinningBid != nil {
		winner, err := model.BidFromRecord(*event.WinningBid)
		if err != nil {
			return nil, fmt.Errorf("%w: winning bid %s: %v", auctionerrors.ErrBadTimeFormat, event.WinningBid.BidID, err)
		}
		auction.ExplicitWinner = &winner
	}

	return auction, nil
}

func parseEventTime(s string) (t time.Time, err error) {
	t, err = utils.ParseTimestamp(s)
	if err != nil {
		err = fmt.Errorf("%w: %v", auctionerrors.ErrBadTimeFormat, err)
	}
	return t, err
}
