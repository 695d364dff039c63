package exchange

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nalmatov/ltc-backend/internal/core/domain"
)

const cmcFixture = `{
	"data": {
		"market_pairs": [
			{
				"exchange": {"name": "Binance"},
				"market_pair_quote": {"symbol": "USDT"},
				"quote": {"USD": {"price": 84.07, "volume_24h": 1000000}}
			},
			{
				"exchange": {"name": "Kraken"},
				"market_pair_quote": {"symbol": "USD"},
				"quote": {"USD": {"price": 84.2, "volume_24h": 700000}}
			},
			{
				"exchange": {"name": "OKX"},
				"market_pair_quote": {"symbol": "USDT"},
				"quote": {"USD": {"price": 84.11, "volume_24h": 350000}}
			}
		]
	}
}`

func newTestCMC(t *testing.T, handler http.Handler) *CoinMarketCap {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewCoinMarketCap(server.URL, "test-api-key", "LTC", "USDT", "LTC/USDT", server.Client(), slog.Default())
}

func TestCMCFetchSnapshot(t *testing.T) {
	cmc := newTestCMC(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/cryptocurrency/market-pairs/latest", r.URL.Path)
		assert.Equal(t, "LTC", r.URL.Query().Get("symbol"))
		assert.Equal(t, "test-api-key", r.Header.Get("X-CMC_PRO_API_KEY"))
		w.Write([]byte(cmcFixture))
	}))

	listings, err := cmc.FetchSnapshot(context.Background())
	require.NoError(t, err)

	require.Len(t, listings, 2, "non-USDT pairs are discarded")

	binance := listings[0]
	assert.Equal(t, 1, binance.ID)
	assert.Equal(t, "Binance", binance.ExchangeName)
	assert.Equal(t, "LTC/USDT", binance.Pair)
	assert.Equal(t, "84.0700", binance.Price)
	assert.Equal(t, "$50,000", binance.DepthPlus2Pct, "floor of 5% of quote volume")
	assert.Equal(t, "$40,000", binance.DepthMinus2Pct, "floor of 4% of quote volume")
	assert.Equal(t, "$1,000,000", binance.Volume24h)
	assert.Equal(t, cmcSpreadPlaceholder, binance.VolumeSpreadPercent)
	assert.Equal(t, domain.LastUpdatedLabel, binance.LastUpdated)

	assert.Equal(t, "OKX", listings[1].ExchangeName)
	assert.Equal(t, 2, listings[1].ID)
}

func TestCMCFetchSnapshotFailure(t *testing.T) {
	cmc := newTestCMC(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := cmc.FetchSnapshot(context.Background())
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}
