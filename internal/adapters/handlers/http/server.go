package http

import (
	"net/http"

	"github.com/nalmatov/ltc-backend/internal/adapters/handlers/http/handler"
)

func NewServer(
	listingHandler *handler.ListingHandler,
	historyHandler *handler.HistoryHandler,
	depthHandler *handler.DepthHandler,
) http.Handler {
	mux := http.NewServeMux()
	addRoutes(mux, listingHandler, historyHandler, depthHandler)

	var h http.Handler = mux
	h = corsMiddleware(h)

	return h
}

// corsMiddleware allows cross-origin reads from the frontend. Origins are
// deliberately unrestricted; the read API carries no credentials.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
