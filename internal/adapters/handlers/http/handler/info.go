package handler

import (
	"net/http"

	jsonresponse "github.com/nalmatov/ltc-backend/pkg/JSONResponse"
)

// GetInfo serves the API catalog at the root path.
func GetInfo(w http.ResponseWriter, r *http.Request) {
	jsonresponse.WriteResponse(w, http.StatusOK, map[string]any{
		"name":        "LTC Exchange API",
		"version":     "1.0.0",
		"description": "Aggregated exchange market data for the LTC/USDT pair",
		"endpoints": []map[string]string{
			{"path": "/api/listings", "description": "Sorted exchange listings via CoinGecko"},
			{"path": "/api/listings-cmc", "description": "Top exchange listings via CoinMarketCap"},
			{"path": "/api/synthetic-listings", "description": "Operator-curated synthetic listings"},
			{"path": "/api/depth/{exchange}", "description": "Real ±2% order-book depth for one exchange"},
			{"path": "/api/price-history", "description": "Historical price chart"},
		},
	})
}
