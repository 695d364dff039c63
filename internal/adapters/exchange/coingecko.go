package exchange

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nalmatov/ltc-backend/internal/core/domain"
	"github.com/nalmatov/ltc-backend/internal/core/port"
	promclient "github.com/nalmatov/ltc-backend/internal/infrastructure/prometheus"
	"github.com/nalmatov/ltc-backend/pkg/format"
)

var (
	_ port.MarketDataPort   = (*CoinGecko)(nil)
	_ port.SpotPricePort    = (*CoinGecko)(nil)
	_ port.PriceHistoryPort = (*CoinGecko)(nil)
)

// Depth estimates in the aggregated view are crude volume proxies, not
// real order-book sums. Kept as documented behavior; the /depth endpoint is
// the one place that walks an actual book.
var (
	plusDepthShare  = decimal.RequireFromString("0.06")
	minusDepthShare = decimal.RequireFromString("0.05")
)

// iconOverrides is the hand-curated icon table for exchanges that are
// missing from the metadata endpoint or map badly by identifier. Overrides
// win over provider-supplied values.
var iconOverrides = map[string]string{
	"bitstorage":  "https://coin-images.coingecko.com/markets/images/394/small/Group_3575807.png?1706864409",
	"bcex":        "https://coin-images.coingecko.com/markets/images/190/small/bcex.jpg?1706864323",
	"trade_ogre":  "https://coin-images.coingecko.com/markets/images/101/small/tradeogre.jpeg?1706864289",
	"oceanex":     "https://coin-images.coingecko.com/markets/images/341/small/Oceanex.png?1706864383",
	"probit":      "https://coin-images.coingecko.com/markets/images/370/small/probit.png?1706864390",
	"grovex":      "https://coin-images.coingecko.com/markets/images/11852/small/GroveX_200px.png?1738737388",
	"poloniex":    "https://coin-images.coingecko.com/markets/images/37/small/poloniex.png?1706864269",
	"toko_crypto": "https://coin-images.coingecko.com/markets/images/501/small/toko.png?1706864476",
	"cex":         "https://coin-images.coingecko.com/markets/images/56/small/main-icon.png?1706864277",
	"hitbtc":      "https://coin-images.coingecko.com/markets/images/25/small/hitbtc.png",
	"coincatch":   "https://coin-images.coingecko.com/markets/images/1214/small/CoinCatch_New_Logo.jpeg?1729059088",
}

// CoinGecko is the primary market-data provider: the ticker snapshot,
// exchange metadata, the spot price and the historical chart.
type CoinGecko struct {
	baseURL string
	coinID  string
	quote   string
	pair    string
	client  *http.Client
	logger  *slog.Logger
}

func NewCoinGecko(baseURL, coinID, quote, pair string, client *http.Client, logger *slog.Logger) *CoinGecko {
	return &CoinGecko{
		baseURL: baseURL,
		coinID:  coinID,
		quote:   quote,
		pair:    pair,
		client:  client,
		logger:  logger,
	}
}

type geckoExchange struct {
	ID    string `json:"id"`
	Image string `json:"image"`
	URL   string `json:"url"`
}

type geckoMarket struct {
	Name       string `json:"name"`
	Identifier string `json:"identifier"`
}

type geckoTicker struct {
	Target          string             `json:"target"`
	Last            float64            `json:"last"`
	ConvertedVolume map[string]float64 `json:"converted_volume"`
	BidAskSpreadPct *float64           `json:"bid_ask_spread_percentage"`
	Market          geckoMarket        `json:"market"`
}

type geckoTickersResponse struct {
	Tickers []geckoTicker `json:"tickers"`
}

// FetchSnapshot builds the live exchange listing snapshot for the target
// pair: all tickers quoted in the target currency, with depth estimates and
// best-effort icon/site metadata. IDs are provisional fetch-order ranks;
// the sort step reassigns them.
func (g *CoinGecko) FetchSnapshot(ctx context.Context) ([]domain.ExchangeListing, error) {
	icons, sites := g.exchangeMetadata(ctx)

	var payload geckoTickersResponse
	err := getJSON(ctx, g.client, fmt.Sprintf("%s/api/v3/coins/%s/tickers", g.baseURL, g.coinID), nil, &payload)
	if err != nil {
		promclient.UpstreamRequests.WithLabelValues("coingecko", "error").Inc()
		return nil, fmt.Errorf("%w: tickers: %v", domain.ErrUpstreamUnavailable, err)
	}
	promclient.UpstreamRequests.WithLabelValues("coingecko", "ok").Inc()

	listings := make([]domain.ExchangeListing, 0, len(payload.Tickers))
	for _, ticker := range payload.Tickers {
		if ticker.Target != g.quote {
			continue
		}

		volumeUSD := decimal.NewFromFloat(ticker.ConvertedVolume["usd"])

		spread := 1.0
		if ticker.BidAskSpreadPct != nil {
			spread = *ticker.BidAskSpreadPct
		}

		name := ticker.Market.Name
		if name == "" {
			name = "Unknown"
		}

		listings = append(listings, domain.ExchangeListing{
			ID:                  len(listings) + 1,
			ExchangeName:        name,
			Pair:                g.pair,
			Price:               format.Price(decimal.NewFromFloat(ticker.Last)),
			DepthPlus2Pct:       format.Money(volumeUSD.Mul(plusDepthShare)),
			DepthMinus2Pct:      format.Money(volumeUSD.Mul(minusDepthShare)),
			Volume24h:           format.Money(volumeUSD),
			VolumeSpreadPercent: format.Percent(decimal.NewFromFloat(spread)),
			LastUpdated:         domain.LastUpdatedLabel,
			IconURL:             icons[ticker.Market.Identifier],
			SiteURL:             sites[ticker.Market.Identifier],
		})
	}

	return listings, nil
}

// exchangeMetadata returns icon and site URL lookups by exchange
// identifier. Metadata is best-effort: on failure both lookups are empty
// apart from the static overrides.
func (g *CoinGecko) exchangeMetadata(ctx context.Context) (icons, sites map[string]string) {
	icons = make(map[string]string)
	sites = make(map[string]string)

	var exchanges []geckoExchange
	err := getJSON(ctx, g.client, g.baseURL+"/api/v3/exchanges", nil, &exchanges)
	if err != nil {
		g.logger.Warn("exchange metadata unavailable, proceeding without it", slog.Any("error", err))
	} else {
		for _, ex := range exchanges {
			icons[ex.ID] = ex.Image
			sites[ex.ID] = ex.URL
		}
	}

	for id, icon := range iconOverrides {
		icons[id] = icon
	}

	return icons, sites
}

// CurrentPrice returns the coin's USD spot price, or 0 when the provider
// is unavailable.
func (g *CoinGecko) CurrentPrice(ctx context.Context) float64 {
	endpoint := fmt.Sprintf("%s/api/v3/simple/price?ids=%s&vs_currencies=usd", g.baseURL, url.QueryEscape(g.coinID))

	var payload map[string]map[string]float64
	if err := getJSON(ctx, g.client, endpoint, nil, &payload); err != nil {
		promclient.UpstreamRequests.WithLabelValues("coingecko", "error").Inc()
		g.logger.Warn("spot price unavailable", slog.Any("error", err))
		return 0
	}
	promclient.UpstreamRequests.WithLabelValues("coingecko", "ok").Inc()

	return payload[g.coinID]["usd"]
}

type geckoMarketChart struct {
	Prices [][]float64 `json:"prices"`
}

// MarketChart returns the historical price samples for the last days.
func (g *CoinGecko) MarketChart(ctx context.Context, days int) ([]domain.PricePoint, error) {
	endpoint := fmt.Sprintf("%s/api/v3/coins/%s/market_chart?vs_currency=usd&days=%d", g.baseURL, g.coinID, days)

	var payload geckoMarketChart
	if err := getJSON(ctx, g.client, endpoint, nil, &payload); err != nil {
		promclient.UpstreamRequests.WithLabelValues("coingecko", "error").Inc()
		return nil, fmt.Errorf("%w: market chart: %v", domain.ErrUpstreamUnavailable, err)
	}
	promclient.UpstreamRequests.WithLabelValues("coingecko", "ok").Inc()

	points := make([]domain.PricePoint, 0, len(payload.Prices))
	for _, sample := range payload.Prices {
		if len(sample) < 2 {
			continue
		}
		points = append(points, domain.PricePoint{
			Timestamp: time.UnixMilli(int64(sample[0])),
			Price:     sample[1],
		})
	}

	return points, nil
}
