package visualization

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"closed-auction-metrics/internal/auctionerrors"
	model "closed-auction-metrics/internal/models"
)

func chartAuction(bids []model.Bid) *model.ClosedAuction {
	start := time.Date(2022, time.March, 17, 0, 0, 0, 130002000, time.UTC)
	end := start.Add(time.Hour)
	return &model.ClosedAuction{
		ItemID:            "200",
		StartPriceInCents: 3400,
		StartTime:         start,
		EndTime:           end,
		FinalizedTime:     end.Add(time.Minute),
		Bids:              bids,
	}
}

func chartBid(bidID string, amountCents int64, received time.Time) model.Bid {
	return model.Bid{
		BidID:         bidID,
		ItemID:        "200",
		BidderUserID:  "asclark",
		AmountInCents: amountCents,
		TimeReceived:  received,
		Active:        true,
	}
}

func TestBidHistoryHTML_RendersInlinePNG(t *testing.T) {
	t.Parallel()

	start := time.Date(2022, time.March, 17, 0, 0, 0, 130002000, time.UTC)
	auction := chartAuction([]model.Bid{
		chartBid("100", 4000, start.Add(10*time.Minute)),
		chartBid("101", 4500, start.Add(20*time.Minute)),
		chartBid("102", 5200, start.Add(30*time.Minute)),
	})

	html, err := BidHistoryHTML(auction)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(html, "<img src='data:image/png;base64,"))
	require.True(t, strings.HasSuffix(html, "'>"))

	encoded := strings.TrimSuffix(strings.TrimPrefix(html, "<img src='data:image/png;base64,"), "'>")
	png, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	require.Greater(t, len(png), 8)
	require.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestBidHistoryHTML_CancelledAuctionStillRenders(t *testing.T) {
	t.Parallel()

	start := time.Date(2022, time.March, 17, 0, 0, 0, 130002000, time.UTC)
	auction := chartAuction([]model.Bid{
		chartBid("100", 4000, start.Add(10*time.Minute)),
		chartBid("101", 4100, start.Add(12*time.Minute)),
	})
	cancelledAt := start.Add(15 * time.Minute)
	auction.CancellationTime = &cancelledAt

	html, err := BidHistoryHTML(auction)
	require.NoError(t, err)
	require.Contains(t, html, "data:image/png;base64,")
}

func TestBidHistoryHTML_TooFewBids(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		bids []model.Bid
	}{
		{name: "no_bids", bids: nil},
		{name: "single_bid", bids: []model.Bid{chartBid("100", 4000, time.Date(2022, time.March, 17, 0, 10, 0, 0, time.UTC))}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := BidHistoryHTML(chartAuction(tc.bids))
			require.Error(t, err)
			require.ErrorIs(t, err, auctionerrors.ErrVisualization)
		})
	}
}
