package http

import (
	"net/http"

	"github.com/nalmatov/ltc-backend/internal/adapters/handlers/http/handler"
	promclient "github.com/nalmatov/ltc-backend/internal/infrastructure/prometheus"
)

func addRoutes(
	mux *http.ServeMux,
	listingHandler *handler.ListingHandler,
	historyHandler *handler.HistoryHandler,
	depthHandler *handler.DepthHandler,
) {
	mux.HandleFunc("GET /api/listings", listingHandler.GetListings)
	mux.HandleFunc("GET /api/listings-cmc", listingHandler.GetListingsAlternate)

	mux.HandleFunc("POST /api/synthetic-listings", listingHandler.CreateSynthetic)
	mux.HandleFunc("GET /api/synthetic-listings", listingHandler.ListSynthetic)
	mux.HandleFunc("PATCH /api/synthetic-listings/{name}", listingHandler.UpdateSynthetic)
	mux.HandleFunc("DELETE /api/synthetic-listings/{name}", listingHandler.DeleteSynthetic)

	mux.HandleFunc("GET /api/price-history", historyHandler.GetHistory)
	mux.HandleFunc("GET /api/depth/{exchange}", depthHandler.GetDepth)

	mux.Handle("GET /metrics", promclient.Handler())
	mux.HandleFunc("GET /{$}", handler.GetInfo)
}
