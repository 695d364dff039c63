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

func newTestBinance(t *testing.T, handler http.Handler) *Binance {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewBinance(server.URL, "LTCUSDT", server.Client(), slog.Default())
}

func TestReferencePrice(t *testing.T) {
	binance := newTestBinance(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/ticker/price", r.URL.Path)
		assert.Equal(t, "LTCUSDT", r.URL.Query().Get("symbol"))
		w.Write([]byte(`{"symbol": "LTCUSDT", "price": "84.12000000"}`))
	}))

	assert.Equal(t, 84.12, binance.ReferencePrice(context.Background()))
}

func TestReferencePriceSentinel(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-200 response",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
		},
		{
			name: "malformed price",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"symbol": "LTCUSDT", "price": "not-a-number"}`))
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`<html>rate limited</html>`))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			binance := newTestBinance(t, tc.handler)
			assert.Equal(t, 0.0, binance.ReferencePrice(context.Background()))
		})
	}
}

func TestOrderBook(t *testing.T) {
	binance := newTestBinance(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/depth", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("limit"))
		w.Write([]byte(`{
			"bids": [["84.10", "2.5"], ["84.05", "1.0"], ["bad", "1.0"]],
			"asks": [["84.15", "3.0"]]
		}`))
	}))

	book, err := binance.OrderBook(context.Background(), 100)
	require.NoError(t, err)

	require.Len(t, book.Bids, 2, "unparseable levels are skipped")
	assert.Equal(t, "84.1", book.Bids[0].Price.String())
	assert.Equal(t, "2.5", book.Bids[0].Quantity.String())
	require.Len(t, book.Asks, 1)
	assert.Equal(t, "84.15", book.Asks[0].Price.String())
}

func TestOrderBookFailure(t *testing.T) {
	binance := newTestBinance(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	_, err := binance.OrderBook(context.Background(), 100)
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}
