package visualization

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"closed-auction-metrics/internal/auctionerrors"
	model "closed-auction-metrics/internal/models"
)

// BidHistoryHTML renders an auction's bid history chart to PNG and wraps it
// as an inline base64 <img> fragment. Any rendering failure surfaces
// auctionerrors.ErrVisualization; callers treat it as a degraded response.
func BidHistoryHTML(auction *model.ClosedAuction) (string, error) {
	png, err := renderBidHistoryPNG(auction)
	if err != nil {
		return "", fmt.Errorf("%w: %v", auctionerrors.ErrVisualization, err)
	}
	encoded := base64.StdEncoding.EncodeToString(png)
	return fmt.Sprintf("<img src='data:image/png;base64,%s'>", encoded), nil
}

// renderBidHistoryPNG plots bid amounts in dollars over time with dashed
// vertical markers at the auction's start, end and (if set) cancellation.
func renderBidHistoryPNG(auction *model.ClosedAuction) ([]byte, error) {
	bids := auction.SortedBids()
	if len(bids) < 2 {
		return nil, fmt.Errorf("%w: item %s has %d bids", auctionerrors.ErrNoBidHistory, auction.ItemID, len(bids))
	}

	times := make([]time.Time, 0, len(bids))
	amounts := make([]float64, 0, len(bids))
	var maxBid model.Bid
	for i, bid := range bids {
		times = append(times, bid.TimeReceived)
		amounts = append(amounts, float64(bid.AmountInCents)/100)
		if i == 0 || bid.AmountInCents > maxBid.AmountInCents {
			maxBid = bid
		}
	}
	highest := float64(maxBid.AmountInCents) / 100

	series := []chart.Series{
		chart.TimeSeries{
			Name:    "bids",
			XValues: times,
			YValues: amounts,
			Style: chart.Style{
				StrokeColor: chart.ColorBlue,
				DotColor:    drawing.ColorFromHex("808080"),
				DotWidth:    3,
			},
		},
		verticalMarker(auction.StartTime, highest, chart.ColorGreen),
		verticalMarker(auction.EndTime, highest, chart.ColorGreen),
	}
	if auction.CancellationTime != nil {
		series = append(series, verticalMarker(*auction.CancellationTime, highest, chart.ColorRed))
	}
	series = append(series, chart.AnnotationSeries{
		Annotations: []chart.Value2{{
			XValue: chart.TimeToFloat64(maxBid.TimeReceived),
			YValue: highest,
			Label:  fmt.Sprintf("$%.2f", highest),
		}},
	})

	graph := chart.Chart{
		Title:  fmt.Sprintf("Auction for item %q", auction.ItemID),
		XAxis:  chart.XAxis{Name: "time"},
		YAxis:  chart.YAxis{Name: "bid offer amount [$]"},
		Series: series,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// verticalMarker draws a dashed vertical line at t up to the highest bid.
func verticalMarker(t time.Time, top float64, color drawing.Color) chart.TimeSeries {
	return chart.TimeSeries{
		XValues: []time.Time{t, t},
		YValues: []float64{0, top},
		Style: chart.Style{
			StrokeColor:     color,
			StrokeDashArray: []float64{5.0, 5.0},
		},
	}
}
