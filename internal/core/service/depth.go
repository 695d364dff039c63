package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nalmatov/ltc-backend/internal/core/domain"
	"github.com/nalmatov/ltc-backend/internal/core/port"
	"github.com/nalmatov/ltc-backend/pkg/format"
)

var _ port.DepthServicePort = (*DepthService)(nil)

const depthBookLimit = 100

// DepthService computes ±2% depth from a live order book. Unlike the
// volume-proxy estimates in the aggregated view, this is real depth, summed
// level by level.
type DepthService struct {
	spot  port.SpotPricePort
	books map[string]port.OrderBookPort // keyed by lower-cased exchange name
}

func NewDepthService(spot port.SpotPricePort, books map[string]port.OrderBookPort) *DepthService {
	return &DepthService{
		spot:  spot,
		books: books,
	}
}

// Depth reports the order-book value within 2% of the current price on both
// sides. Exchanges without a wired order-book source are NotFound.
func (s *DepthService) Depth(ctx context.Context, exchange string) (domain.DepthReport, error) {
	book, ok := s.books[strings.ToLower(exchange)]
	if !ok {
		return domain.DepthReport{}, fmt.Errorf("%w: market depth for exchange %q is unavailable", domain.ErrNotFound, exchange)
	}

	snapshot, err := book.OrderBook(ctx, depthBookLimit)
	if err != nil {
		return domain.DepthReport{}, err
	}

	current := s.spot.CurrentPrice(ctx)
	if current == 0 {
		return domain.DepthReport{}, fmt.Errorf("%w: current price temporarily unavailable", domain.ErrUpstreamUnavailable)
	}

	currentDec := decimal.NewFromFloat(current)
	lower := currentDec.Mul(decimal.RequireFromString("0.98"))
	upper := currentDec.Mul(decimal.RequireFromString("1.02"))

	// both sides are best-first, so the walk stops at the first level
	// outside the band
	minusDepth := decimal.Zero
	for _, level := range snapshot.Bids {
		if level.Price.Cmp(lower) < 0 {
			break
		}
		minusDepth = minusDepth.Add(level.Price.Mul(level.Quantity))
	}

	plusDepth := decimal.Zero
	for _, level := range snapshot.Asks {
		if level.Price.Cmp(upper) > 0 {
			break
		}
		plusDepth = plusDepth.Add(level.Price.Mul(level.Quantity))
	}

	return domain.DepthReport{
		Exchange:      exchange,
		CurrentPrice:  current,
		PlusTwoDepth:  format.Money(plusDepth),
		MinusTwoDepth: format.Money(minusDepth),
	}, nil
}
