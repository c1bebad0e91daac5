package feed

import (
	"sort"
	"strconv"
	"time"

	"github.com/ANUSHKASINGH809/orderbook-simulator/pkg/errors"

	orderbookv1 "github.com/ANUSHKASINGH809/orderbook-simulator/internal/domain/orderbook/v1"
)

// levelsFromStrings parses [price, quantity, ...] string tuples, the wire
// shape used by the okx and bybit depth channels. Extra tuple elements are
// ignored.
func levelsFromStrings(raw [][]string) ([]orderbookv1.PriceLevel, error) {
	levels := make([]orderbookv1.PriceLevel, 0, len(raw))
	for _, entry := range raw {
		if len(entry) < 2 {
			return nil, errors.NewErrorDetails("level tuple too short", string(errors.FeedParseError), "levels")
		}
		price, err := strconv.ParseFloat(entry[0], 64)
		if err != nil {
			return nil, errors.NewTracer(string(errors.FeedParseError)).Wrap(err)
		}
		quantity, err := strconv.ParseFloat(entry[1], 64)
		if err != nil {
			return nil, errors.NewTracer(string(errors.FeedParseError)).Wrap(err)
		}
		levels = append(levels, orderbookv1.PriceLevel{Price: price, Quantity: quantity})
	}
	return levels, nil
}

// levelsFromNumbers parses [price, quantity, ...] numeric tuples, the wire
// shape used by the deribit book channel.
func levelsFromNumbers(raw [][]float64) ([]orderbookv1.PriceLevel, error) {
	levels := make([]orderbookv1.PriceLevel, 0, len(raw))
	for _, entry := range raw {
		if len(entry) < 2 {
			return nil, errors.NewErrorDetails("level tuple too short", string(errors.FeedParseError), "levels")
		}
		levels = append(levels, orderbookv1.PriceLevel{Price: entry[0], Quantity: entry[1]})
	}
	return levels, nil
}

// buildSnapshot normalizes parsed levels into the canonical snapshot shape:
// zero-quantity levels dropped, bids descending, asks ascending, both sides
// truncated to MaxDepth.
func buildSnapshot(venue string, bids, asks []orderbookv1.PriceLevel) orderbookv1.Snapshot {
	bids = normalizeSide(bids, func(i, j orderbookv1.PriceLevel) bool { return i.Price > j.Price })
	asks = normalizeSide(asks, func(i, j orderbookv1.PriceLevel) bool { return i.Price < j.Price })

	return orderbookv1.Snapshot{
		Venue:      venue,
		Bids:       bids,
		Asks:       asks,
		ObservedAt: time.Now().UTC(),
	}
}

func normalizeSide(levels []orderbookv1.PriceLevel, less func(i, j orderbookv1.PriceLevel) bool) []orderbookv1.PriceLevel {
	kept := make([]orderbookv1.PriceLevel, 0, len(levels))
	for _, level := range levels {
		if level.Quantity <= 0 || level.Price <= 0 {
			continue
		}
		kept = append(kept, level)
	}

	sort.SliceStable(kept, func(i, j int) bool { return less(kept[i], kept[j]) })

	if len(kept) > orderbookv1.MaxDepth {
		kept = kept[:orderbookv1.MaxDepth]
	}
	return kept
}
