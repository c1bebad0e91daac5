package feed

import (
	"github.com/ANUSHKASINGH809/orderbook-simulator/pkg/errors"
	"github.com/ANUSHKASINGH809/orderbook-simulator/pkg/logger"

	feedv1 "github.com/ANUSHKASINGH809/orderbook-simulator/internal/domain/feed/v1"
)

// NewForVenue builds the feed for a venue name, wiring the matching adapter
// into the shared client lifecycle.
func NewForVenue(venue, symbol string, log logger.Interface) (feedv1.Feed, error) {
	switch venue {
	case okxVenue:
		return NewClient(NewOKX(symbol), log), nil
	case bybitVenue:
		return NewClient(NewBybit(symbol), log), nil
	case deribitVenue:
		return NewClient(NewDeribit(symbol), log), nil
	default:
		return nil, errors.NewErrorDetails("no adapter for venue "+venue, string(errors.FeedUnknownVenueError), "venue")
	}
}
