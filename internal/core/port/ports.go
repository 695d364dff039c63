package port

import (
	"context"
	"time"

	"github.com/nalmatov/ltc-backend/internal/core/domain"
)

// CachePort is a key-value store with per-key expiry. Get returns
// domain.ErrCacheMiss when the key is absent; adapters map read failures to
// the same error so callers treat them as misses.
type CachePort interface {
	Get(ctx context.Context, key domain.CacheKey) ([]byte, error)
	Set(ctx context.Context, key domain.CacheKey, payload []byte, ttl time.Duration) error
}

// MarketDataPort fetches the live exchange snapshot for the target pair.
type MarketDataPort interface {
	FetchSnapshot(ctx context.Context) ([]domain.ExchangeListing, error)
}

// AltMarketDataPort fetches the snapshot from the alternate provider.
type AltMarketDataPort interface {
	FetchSnapshot(ctx context.Context) ([]domain.ExchangeListing, error)
}

// ReferencePricePort fetches the quote-provider price used to derive
// percent-adjusted synthetic prices. A return of 0 means "unavailable" and
// must be checked before use.
type ReferencePricePort interface {
	ReferencePrice(ctx context.Context) float64
}

// SpotPricePort fetches the current coin price for the depth report. The 0
// sentinel has the same meaning as for ReferencePricePort.
type SpotPricePort interface {
	CurrentPrice(ctx context.Context) float64
}

// OrderBookPort fetches a live depth snapshot from an exchange.
type OrderBookPort interface {
	OrderBook(ctx context.Context, limit int) (domain.OrderBook, error)
}

// PriceHistoryPort fetches the coin's historical price chart.
type PriceHistoryPort interface {
	MarketChart(ctx context.Context, days int) ([]domain.PricePoint, error)
}

// SyntheticStorePort owns the operator-curated listings. Keys are the
// lower-cased exchange names; Put overwrites on key collision.
type SyntheticStorePort interface {
	List() []domain.SyntheticListing
	Get(name string) (domain.SyntheticListing, bool)
	Put(listing domain.SyntheticListing)
	Delete(name string) bool
}

// ListingServicePort is the surface the HTTP handlers talk to.
type ListingServicePort interface {
	Listings(ctx context.Context, criterion domain.SortCriterion, descending bool) ([]domain.ExchangeListing, error)
	ListingsAlternate(ctx context.Context) ([]domain.ExchangeListing, error)
	CreateSynthetic(ctx context.Context, listing domain.SyntheticListing) (domain.SyntheticListing, error)
	ListSynthetic() []domain.SyntheticListing
	UpdateSynthetic(ctx context.Context, name string, patch domain.SyntheticPatch) (domain.SyntheticListing, error)
	DeleteSynthetic(name string) error
}

// HistoryServicePort serves the cached price-history chart.
type HistoryServicePort interface {
	History(ctx context.Context, days int, dailyClose bool) (domain.PriceHistoryResponse, error)
}

// DepthServicePort computes real ±2% order-book depth for one exchange.
type DepthServicePort interface {
	Depth(ctx context.Context, exchange string) (domain.DepthReport, error)
}
