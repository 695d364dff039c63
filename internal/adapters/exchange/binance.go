package exchange

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/nalmatov/ltc-backend/internal/core/domain"
	"github.com/nalmatov/ltc-backend/internal/core/port"
	promclient "github.com/nalmatov/ltc-backend/internal/infrastructure/prometheus"
)

var (
	_ port.ReferencePricePort = (*Binance)(nil)
	_ port.OrderBookPort      = (*Binance)(nil)
)

// Binance is the quote provider: the reference price behind percent-driven
// synthetic pricing and the live order book behind the depth report.
type Binance struct {
	baseURL string
	symbol  string // concatenated pair, e.g. "LTCUSDT"
	client  *http.Client
	logger  *slog.Logger
}

func NewBinance(baseURL, symbol string, client *http.Client, logger *slog.Logger) *Binance {
	return &Binance{
		baseURL: baseURL,
		symbol:  symbol,
		client:  client,
		logger:  logger,
	}
}

type binanceTickerPrice struct {
	Symbol string `json:"symbol"`
	Price  string `json:"price"`
}

// ReferencePrice returns the current pair price, or the 0 sentinel on any
// transport failure, non-200 response or malformed body. Callers must check
// for 0 before using the value in a percentage calculation. No retries, no
// caching.
func (b *Binance) ReferencePrice(ctx context.Context) float64 {
	endpoint := fmt.Sprintf("%s/api/v3/ticker/price?symbol=%s", b.baseURL, b.symbol)

	var payload binanceTickerPrice
	if err := getJSON(ctx, b.client, endpoint, nil, &payload); err != nil {
		promclient.UpstreamRequests.WithLabelValues("binance", "error").Inc()
		b.logger.Warn("reference price unavailable", slog.Any("error", err))
		return 0
	}

	price, err := strconv.ParseFloat(payload.Price, 64)
	if err != nil {
		promclient.UpstreamRequests.WithLabelValues("binance", "error").Inc()
		b.logger.Warn("reference price malformed", slog.String("price", payload.Price))
		return 0
	}

	promclient.UpstreamRequests.WithLabelValues("binance", "ok").Inc()
	return price
}

type binanceDepth struct {
	Bids [][]string `json:"bids"`
	Asks [][]string `json:"asks"`
}

// OrderBook fetches a depth snapshot with up to limit levels per side.
func (b *Binance) OrderBook(ctx context.Context, limit int) (domain.OrderBook, error) {
	endpoint := fmt.Sprintf("%s/api/v3/depth?symbol=%s&limit=%d", b.baseURL, b.symbol, limit)

	var payload binanceDepth
	if err := getJSON(ctx, b.client, endpoint, nil, &payload); err != nil {
		promclient.UpstreamRequests.WithLabelValues("binance", "error").Inc()
		return domain.OrderBook{}, fmt.Errorf("%w: order book: %v", domain.ErrUpstreamUnavailable, err)
	}
	promclient.UpstreamRequests.WithLabelValues("binance", "ok").Inc()

	book := domain.OrderBook{
		Bids: parseLevels(payload.Bids),
		Asks: parseLevels(payload.Asks),
	}

	return book, nil
}

func parseLevels(raw [][]string) []domain.BookLevel {
	levels := make([]domain.BookLevel, 0, len(raw))
	for _, entry := range raw {
		if len(entry) < 2 {
			continue
		}
		price, err := decimal.NewFromString(entry[0])
		if err != nil {
			continue
		}
		qty, err := decimal.NewFromString(entry[1])
		if err != nil {
			continue
		}
		levels = append(levels, domain.BookLevel{Price: price, Quantity: qty})
	}

	return levels
}
