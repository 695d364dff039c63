package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nalmatov/ltc-backend/internal/core/domain"
	"github.com/nalmatov/ltc-backend/internal/core/port"
	promclient "github.com/nalmatov/ltc-backend/internal/infrastructure/prometheus"
)

var _ port.HistoryServicePort = (*HistoryService)(nil)

const maxHistoryDays = 90

// HistoryService serves the coin's price chart with a cache whose TTL
// scales with the requested window: long-range history changes less per
// unit wall-clock time, so it may live longer.
type HistoryService struct {
	cache  port.CachePort
	chart  port.PriceHistoryPort
	coinID string
	logger *slog.Logger
}

func NewHistoryService(cache port.CachePort, chart port.PriceHistoryPort, coinID string, logger *slog.Logger) *HistoryService {
	return &HistoryService{
		cache:  cache,
		chart:  chart,
		coinID: coinID,
		logger: logger,
	}
}

// History returns the price chart for the last days, collapsed to per-day
// closing prices when dailyClose is set. Days are clamped to [1, 90].
func (s *HistoryService) History(ctx context.Context, days int, dailyClose bool) (domain.PriceHistoryResponse, error) {
	if days > maxHistoryDays {
		days = maxHistoryDays
	}
	if days < 1 {
		days = 1
	}

	key := domain.PriceHistoryKey(s.coinID, days, dailyClose)
	if payload, err := s.cache.Get(ctx, key); err == nil {
		var cached domain.PriceHistoryResponse
		if err := json.Unmarshal(payload, &cached); err == nil {
			promclient.CacheHits.WithLabelValues("history").Inc()
			return cached, nil
		}
	}
	promclient.CacheMisses.WithLabelValues("history").Inc()

	points, err := s.chart.MarketChart(ctx, days)
	if err != nil {
		return domain.PriceHistoryResponse{}, err
	}

	resp := domain.PriceHistoryResponse{
		Status:   "success",
		Data:     chartItems(points, dailyClose),
		Currency: "USD",
		Period:   periodLabel(days),
	}

	payload, err := json.Marshal(resp)
	if err == nil {
		err = s.cache.Set(ctx, key, payload, historyTTL(days))
	}
	if err != nil {
		s.logger.Warn("history cache write failed",
			slog.String("key", key.String()),
			slog.Any("error", err))
	}

	return resp, nil
}

// historyTTL picks the cache lifetime for a window length.
func historyTTL(days int) time.Duration {
	switch {
	case days >= 30:
		return 12 * time.Hour
	case days >= 7:
		return 6 * time.Hour
	default:
		return time.Hour
	}
}

func periodLabel(days int) string {
	switch {
	case days <= 1:
		return "24 hours"
	case days <= 7:
		return "7 days"
	case days <= 30:
		return "1 month"
	default:
		return fmt.Sprintf("%d days", days)
	}
}

// chartItems converts raw samples to chart points. With dailyClose the
// samples collapse to the last price of each calendar day; days keep the
// order of first appearance, which is chronological for provider data.
func chartItems(points []domain.PricePoint, dailyClose bool) []domain.PriceHistoryItem {
	items := make([]domain.PriceHistoryItem, 0, len(points))

	if !dailyClose {
		for _, p := range points {
			items = append(items, domain.PriceHistoryItem{
				Date:  chartDate(p.Timestamp),
				Price: roundPrice(p.Price),
			})
		}
		return items
	}

	position := make(map[string]int)
	for _, p := range points {
		day := p.Timestamp.Format("2006-01-02")
		if at, ok := position[day]; ok {
			items[at].Price = roundPrice(p.Price)
			continue
		}

		position[day] = len(items)
		items = append(items, domain.PriceHistoryItem{
			Date:  chartDate(p.Timestamp),
			Price: roundPrice(p.Price),
		})
	}

	return items
}

func chartDate(t time.Time) string {
	return fmt.Sprintf("%d/%d", int(t.Month()), t.Day())
}

func roundPrice(price float64) float64 {
	rounded, _ := decimal.NewFromFloat(price).Round(2).Float64()
	return rounded
}
