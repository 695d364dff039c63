package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/nalmatov/ltc-backend/internal/core/domain"
	"github.com/nalmatov/ltc-backend/internal/core/port"
	promclient "github.com/nalmatov/ltc-backend/internal/infrastructure/prometheus"
)

var _ port.ListingServicePort = (*ListingService)(nil)

const (
	// listingsCacheTTL bounds the staleness of both listing tiers.
	listingsCacheTTL = 3 * time.Minute

	// altListingsLimit caps the alternate-provider view.
	altListingsLimit = 10
)

// ListingService owns the aggregation pipeline: fetch, merge, sort, rank,
// and the two cache tiers in front of it.
type ListingService struct {
	cache     port.CachePort
	market    port.MarketDataPort
	altMarket port.AltMarketDataPort
	refPrice  port.ReferencePricePort
	store     port.SyntheticStorePort
	pair      string
	logger    *slog.Logger
}

func NewListingService(
	cache port.CachePort,
	market port.MarketDataPort,
	altMarket port.AltMarketDataPort,
	refPrice port.ReferencePricePort,
	store port.SyntheticStorePort,
	pair string,
	logger *slog.Logger,
) *ListingService {
	return &ListingService{
		cache:     cache,
		market:    market,
		altMarket: altMarket,
		refPrice:  refPrice,
		store:     store,
		pair:      pair,
		logger:    logger,
	}
}

// Listings serves the aggregated view for one (criterion, direction)
// combination. Lookup priority: sorted cache, base cache, live fetch. The
// result is always re-sorted and re-cached unless the sorted tier hit.
func (s *ListingService) Listings(ctx context.Context, criterion domain.SortCriterion, descending bool) ([]domain.ExchangeListing, error) {
	if criterion == "" {
		criterion = domain.DefaultSortCriterion
	}

	sortedKey := domain.SortedListingsKey(s.pair, criterion, descending)
	if listings, ok := s.cachedListings(ctx, sortedKey, "sorted"); ok {
		return listings, nil
	}

	listings, err := s.baseListings(ctx)
	if err != nil {
		return nil, err
	}

	sorted := sortListings(listings, criterion, descending)
	s.writeCache(ctx, sortedKey, sorted, listingsCacheTTL)

	return sorted, nil
}

// baseListings returns the unsorted merged snapshot, from the base cache
// when possible, otherwise from a live fetch followed by a best-effort
// cache write.
func (s *ListingService) baseListings(ctx context.Context) ([]domain.ExchangeListing, error) {
	baseKey := domain.BaseSnapshotKey(s.pair)
	if listings, ok := s.cachedListings(ctx, baseKey, "base"); ok {
		return listings, nil
	}

	snapshot, err := s.market.FetchSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	merged := s.mergeSynthetic(ctx, snapshot)
	s.writeCache(ctx, baseKey, merged, listingsCacheTTL)

	return merged, nil
}

// ListingsAlternate serves the alternate provider's top listings by volume.
// One-shot, uncached.
func (s *ListingService) ListingsAlternate(ctx context.Context) ([]domain.ExchangeListing, error) {
	snapshot, err := s.altMarket.FetchSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	sorted := sortListings(snapshot, domain.SortByVolume, true)
	if len(sorted) > altListingsLimit {
		sorted = sorted[:altListingsLimit]
	}

	return sorted, nil
}

func (s *ListingService) cachedListings(ctx context.Context, key domain.CacheKey, tier string) ([]domain.ExchangeListing, bool) {
	payload, err := s.cache.Get(ctx, key)
	if err == nil {
		var listings []domain.ExchangeListing
		if err := json.Unmarshal(payload, &listings); err == nil {
			promclient.CacheHits.WithLabelValues(tier).Inc()
			s.logger.Debug("cache hit", slog.String("key", key.String()))
			return listings, true
		}
		s.logger.Warn("cache payload malformed, recomputing",
			slog.String("key", key.String()))
	}

	promclient.CacheMisses.WithLabelValues(tier).Inc()
	return nil, false
}

// writeCache is best-effort: a serialization or store failure is logged and
// the freshly computed data is served anyway.
func (s *ListingService) writeCache(ctx context.Context, key domain.CacheKey, v any, ttl time.Duration) {
	payload, err := json.Marshal(v)
	if err == nil {
		err = s.cache.Set(ctx, key, payload, ttl)
	}
	if err != nil {
		s.logger.Warn("cache write failed",
			slog.String("key", key.String()),
			slog.Any("error", err))
	}
}
