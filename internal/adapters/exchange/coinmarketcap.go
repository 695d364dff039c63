package exchange

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/nalmatov/ltc-backend/internal/core/domain"
	"github.com/nalmatov/ltc-backend/internal/core/port"
	promclient "github.com/nalmatov/ltc-backend/internal/infrastructure/prometheus"
	"github.com/nalmatov/ltc-backend/pkg/format"
)

var _ port.AltMarketDataPort = (*CoinMarketCap)(nil)

// CoinMarketCap is the alternate market-data provider. It uses slightly
// different depth proxies (5%/4% of quote volume) and reports no spread, so
// the spread column carries a fixed placeholder.
type CoinMarketCap struct {
	baseURL string
	apiKey  string
	symbol  string
	quote   string
	pair    string
	client  *http.Client
	logger  *slog.Logger
}

const cmcSpreadPlaceholder = "1.23%"

var (
	cmcPlusDepthShare  = decimal.RequireFromString("0.05")
	cmcMinusDepthShare = decimal.RequireFromString("0.04")
)

func NewCoinMarketCap(baseURL, apiKey, symbol, quote, pair string, client *http.Client, logger *slog.Logger) *CoinMarketCap {
	return &CoinMarketCap{
		baseURL: baseURL,
		apiKey:  apiKey,
		symbol:  symbol,
		quote:   quote,
		pair:    pair,
		client:  client,
		logger:  logger,
	}
}

type cmcMarketPairs struct {
	Data struct {
		MarketPairs []struct {
			Exchange struct {
				Name string `json:"name"`
			} `json:"exchange"`
			MarketPairQuote struct {
				Symbol string `json:"symbol"`
			} `json:"market_pair_quote"`
			Quote struct {
				USD struct {
					Price     float64 `json:"price"`
					Volume24h float64 `json:"volume_24h"`
				} `json:"USD"`
			} `json:"quote"`
		} `json:"market_pairs"`
	} `json:"data"`
}

// FetchSnapshot returns the alternate provider's listing snapshot for the
// target pair, unsorted and provisionally ranked in fetch order.
func (c *CoinMarketCap) FetchSnapshot(ctx context.Context) ([]domain.ExchangeListing, error) {
	endpoint := fmt.Sprintf("%s/v1/cryptocurrency/market-pairs/latest?symbol=%s&convert=USD", c.baseURL, c.symbol)

	header := http.Header{}
	header.Set("X-CMC_PRO_API_KEY", c.apiKey)

	var payload cmcMarketPairs
	if err := getJSON(ctx, c.client, endpoint, header, &payload); err != nil {
		promclient.UpstreamRequests.WithLabelValues("coinmarketcap", "error").Inc()
		return nil, fmt.Errorf("%w: market pairs: %v", domain.ErrUpstreamUnavailable, err)
	}
	promclient.UpstreamRequests.WithLabelValues("coinmarketcap", "ok").Inc()

	listings := make([]domain.ExchangeListing, 0, len(payload.Data.MarketPairs))
	for _, pair := range payload.Data.MarketPairs {
		if pair.MarketPairQuote.Symbol != c.quote {
			continue
		}

		volumeUSD := decimal.NewFromFloat(pair.Quote.USD.Volume24h)

		listings = append(listings, domain.ExchangeListing{
			ID:                  len(listings) + 1,
			ExchangeName:        pair.Exchange.Name,
			Pair:                c.pair,
			Price:               format.Price(decimal.NewFromFloat(pair.Quote.USD.Price)),
			DepthPlus2Pct:       format.Money(volumeUSD.Mul(cmcPlusDepthShare)),
			DepthMinus2Pct:      format.Money(volumeUSD.Mul(cmcMinusDepthShare)),
			Volume24h:           format.Money(volumeUSD),
			VolumeSpreadPercent: cmcSpreadPlaceholder,
			LastUpdated:         domain.LastUpdatedLabel,
		})
	}

	return listings, nil
}
