package models

import (
	"sort"
	"time"

	"closed-auction-metrics/utils"
)

// Bid is one immutable bid event in a closed auction's history. Amounts are
// integer minor currency units (cents). A retracted bid stays in the history
// with Active set to false.
type Bid struct {
	BidID         string
	ItemID        string
	BidderUserID  string
	AmountInCents int64
	TimeReceived  time.Time
	Active        bool
}

// ClosedAuction is the recorded outcome of an auction that already ended
// elsewhere. ItemID is the natural key; saves replace the whole aggregate.
type ClosedAuction struct {
	ItemID            string
	StartPriceInCents int64
	StartTime         time.Time
	EndTime           time.Time
	CancellationTime  *time.Time
	FinalizedTime     time.Time
	Bids              []Bid
	ExplicitWinner    *Bid
}

// WinningBid returns the explicit winning bid when one was recorded upstream,
// otherwise infers it from the bid history.
func (a *ClosedAuction) WinningBid() *Bid {
	if a.ExplicitWinner != nil {
		return a.ExplicitWinner
	}
	return a.InferWinningBid()
}

// InferWinningBid returns the most recently received active bid, or nil when
// the auction was cancelled, has no bids, or has no active bid. The auction's
// own bid slice is never reordered.
func (a *ClosedAuction) InferWinningBid() *Bid {
	if len(a.Bids) == 0 || a.CancellationTime != nil {
		return nil
	}

	sorted := a.SortedBids()
	for i := len(sorted) - 1; i >= 0; i-- {
		if sorted[i].Active {
			bid := sorted[i]
			return &bid
		}
	}
	return nil
}

// SortedBids returns a copy of the bid history in ascending order of time
// received. The sort is stable: bids with equal timestamps keep their
// original relative order, so ties resolve deterministically.
func (a *ClosedAuction) SortedBids() []Bid {
	sorted := append([]Bid(nil), a.Bids...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TimeReceived.Before(sorted[j].TimeReceived)
	})
	return sorted
}

// BidRecord is the transport form of a Bid: the timestamp is rendered in the
// fixed wire format. Field names are part of the persisted contract.
type BidRecord struct {
	BidID         string `json:"bid_id"`
	ItemID        string `json:"item_id"`
	BidderUserID  string `json:"bidder_user_id"`
	AmountInCents int64  `json:"amount_in_cents"`
	TimeReceived  string `json:"time_received"`
	Active        bool   `json:"active"`
}

// AuctionRecord is the transport form of a ClosedAuction. An absent
// cancellation time is an empty string, never null. WinningBid carries only
// the explicitly recorded winner; inference is a separate operation.
type AuctionRecord struct {
	ItemID            string      `json:"item_id"`
	StartPriceInCents int64       `json:"start_price_in_cents"`
	StartTime         string      `json:"start_time"`
	EndTime           string      `json:"end_time"`
	CancellationTime  string      `json:"cancellation_time"`
	FinalizedTime     string      `json:"finalized_time"`
	Bids              []BidRecord `json:"bids"`
	WinningBid        *BidRecord  `json:"winning_bid"`
}

// BidDocument is the storage form of a Bid: native time for backend indexing
// plus the wire-format duplicate.
type BidDocument struct {
	BidID           string    `json:"bid_id"`
	ItemID          string    `json:"item_id"`
	BidderUserID    string    `json:"bidder_user_id"`
	AmountInCents   int64     `json:"amount_in_cents"`
	TimeReceived    time.Time `json:"time_received"`
	StrTimeReceived string    `json:"str_time_received"`
	Active          bool      `json:"active"`
}

// AuctionDocument is the storage form of a ClosedAuction: native times kept
// queryable for the backend, wire-format duplicates alongside.
type AuctionDocument struct {
	ItemID              string        `json:"item_id"`
	StartPriceInCents   int64         `json:"start_price_in_cents"`
	StartTime           time.Time     `json:"start_time"`
	EndTime             time.Time     `json:"end_time"`
	CancellationTime    *time.Time    `json:"cancellation_time"`
	FinalizedTime       time.Time     `json:"finalized_time"`
	StrStartTime        string        `json:"str_start_time"`
	StrEndTime          string        `json:"str_end_time"`
	StrCancellationTime string        `json:"str_cancellation_time"`
	StrFinalizedTime    string        `json:"str_finalized_time"`
	Bids                []BidDocument `json:"bids"`
	WinningBid          *BidDocument  `json:"winning_bid"`
}

// Record converts the bid to its transport form.
func (b Bid) Record() BidRecord {
	return BidRecord{
		BidID:         b.BidID,
		ItemID:        b.ItemID,
		BidderUserID:  b.BidderUserID,
		AmountInCents: b.AmountInCents,
		TimeReceived:  utils.FormatTimestamp(b.TimeReceived),
		Active:        b.Active,
	}
}

// Document converts the bid to its storage form.
func (b Bid) Document() BidDocument {
	return BidDocument{
		BidID:           b.BidID,
		ItemID:          b.ItemID,
		BidderUserID:    b.BidderUserID,
		AmountInCents:   b.AmountInCents,
		TimeReceived:    b.TimeReceived,
		StrTimeReceived: utils.FormatTimestamp(b.TimeReceived),
		Active:          b.Active,
	}
}

// Record converts the auction and every owned bid to the transport form.
func (a *ClosedAuction) Record() AuctionRecord {
	rec := AuctionRecord{
		ItemID:            a.ItemID,
		StartPriceInCents: a.StartPriceInCents,
		StartTime:         utils.FormatTimestamp(a.StartTime),
		EndTime:           utils.FormatTimestamp(a.EndTime),
		FinalizedTime:     utils.FormatTimestamp(a.FinalizedTime),
		Bids:              make([]BidRecord, 0, len(a.Bids)),
	}
	if a.CancellationTime != nil {
		rec.CancellationTime = utils.FormatTimestamp(*a.CancellationTime)
	}
	for _, b := range a.Bids {
		rec.Bids = append(rec.Bids, b.Record())
	}
	if a.ExplicitWinner != nil {
		wb := a.ExplicitWinner.Record()
		rec.WinningBid = &wb
	}
	return rec
}

// Document converts the auction and every owned bid to the storage form.
func (a *ClosedAuction) Document() AuctionDocument {
	doc := AuctionDocument{
		ItemID:            a.ItemID,
		StartPriceInCents: a.StartPriceInCents,
		StartTime:         a.StartTime,
		EndTime:           a.EndTime,
		CancellationTime:  a.CancellationTime,
		FinalizedTime:     a.FinalizedTime,
		StrStartTime:      utils.FormatTimestamp(a.StartTime),
		StrEndTime:        utils.FormatTimestamp(a.EndTime),
		StrFinalizedTime:  utils.FormatTimestamp(a.FinalizedTime),
		Bids:              make([]BidDocument, 0, len(a.Bids)),
	}
	if a.CancellationTime != nil {
		doc.StrCancellationTime = utils.FormatTimestamp(*a.CancellationTime)
	}
	for _, b := range a.Bids {
		doc.Bids = append(doc.Bids, b.Document())
	}
	if a.ExplicitWinner != nil {
		wb := a.ExplicitWinner.Document()
		doc.WinningBid = &wb
	}
	return doc
}

// BidFromDocument restores a bid from its storage form using the native
// timestamp; the string duplicate is for backend-side queries only.
func BidFromDocument(doc BidDocument) Bid {
	return Bid{
		BidID:         doc.BidID,
		ItemID:        doc.ItemID,
		BidderUserID:  doc.BidderUserID,
		AmountInCents: doc.AmountInCents,
		TimeReceived:  doc.TimeReceived,
		Active:        doc.Active,
	}
}

// AuctionFromDocument restores a ClosedAuction from its storage form.
func AuctionFromDocument(doc AuctionDocument) *ClosedAuction {
	auction := &ClosedAuction{
		ItemID:            doc.ItemID,
		StartPriceInCents: doc.StartPriceInCents,
		StartTime:         doc.StartTime,
		EndTime:           doc.EndTime,
		CancellationTime:  doc.CancellationTime,
		FinalizedTime:     doc.FinalizedTime,
		Bids:              make([]Bid, 0, len(doc.Bids)),
	}
	for _, bd := range doc.Bids {
		auction.Bids = append(auction.Bids, BidFromDocument(bd))
	}
	if doc.WinningBid != nil {
		winner := BidFromDocument(*doc.WinningBid)
		auction.ExplicitWinner = &winner
	}
	return auction
}

// BidFromRecord parses a transport bid back into the domain form.
func BidFromRecord(rec BidRecord) (Bid, error) {
	received, err := utils.ParseTimestamp(rec.TimeReceived)
	if err != nil {
		return Bid{}, err
	}
	return Bid{
		BidID:         rec.BidID,
		ItemID:        rec.ItemID,
		BidderUserID:  rec.BidderUserID,
		AmountInCents: rec.AmountInCents,
		TimeReceived:  received,
		Active:        rec.Active,
	}, nil
}

// AuctionFromRecord parses a transport record back into a ClosedAuction.
// An empty cancellation time means the auction was not cancelled.
func AuctionFromRecord(rec AuctionRecord) (*ClosedAuction, error) {
	start, err := utils.ParseTimestamp(rec.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := utils.ParseTimestamp(rec.EndTime)
	if err != nil {
		return nil, err
	}
	finalized, err := utils.ParseTimestamp(rec.FinalizedTime)
	if err != nil {
		return nil, err
	}

	auction := &ClosedAuction{
		ItemID:            rec.ItemID,
		StartPriceInCents: rec.StartPriceInCents,
		StartTime:         start,
		EndTime:           end,
		FinalizedTime:     finalized,
		Bids:              make([]Bid, 0, len(rec.Bids)),
	}

	if rec.CancellationTime != "" {
		cancelled, err := utils.ParseTimestamp(rec.CancellationTime)
		if err != nil {
			return nil, err
		}
		auction.CancellationTime = &cancelled
	}

	for _, br := range rec.Bids {
		bid, err := BidFromRecord(br)
		if err != nil {
			return nil, err
		}
		auction.Bids = append(auction.Bids, bid)
	}

	if rec.WinningBid != nil {
		winner, err := BidFromRecord(*rec.WinningBid)
		if err != nil {
			return nil, err
		}
		auction.ExplicitWinner = &winner
	}

	return auction, nil
}
