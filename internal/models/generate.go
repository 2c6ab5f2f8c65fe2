package models

import (
	"strconv"
	"time"
)

// Canned values used by the sample-data generators below.
const (
	basicBidAmountCents  = 4000
	basicStartPriceCents = 3400
	basicBidderUserID    = "asclark"
	finalizationDelay    = time.Minute
)

var basicBidTime = time.Date(2022, time.March, 17, 0, 0, 0, 130002000, time.UTC)

// GenerateBasicBid returns a canned active bid, used to seed the in-memory
// backend and in tests.
func GenerateBasicBid(bidID, itemID int) Bid {
	return Bid{
		BidID:         strconv.Itoa(bidID),
		ItemID:        strconv.Itoa(itemID),
		BidderUserID:  basicBidderUserID,
		AmountInCents: basicBidAmountCents,
		TimeReceived:  basicBidTime,
		Active:        true,
	}
}

// GenerateAuction returns a closed auction over the given bids with a canned
// start price, ending start+duration and finalized a minute after the end.
func GenerateAuction(bids []Bid, itemID int, start time.Time, duration time.Duration, winner *Bid) *ClosedAuction {
	end := start.Add(duration)
	return &ClosedAuction{
		ItemID:            strconv.Itoa(itemID),
		StartPriceInCents: basicStartPriceCents,
		StartTime:         start,
		EndTime:           end,
		FinalizedTime:     end.Add(finalizationDelay),
		Bids:              bids,
		ExplicitWinner:    winner,
	}
}
