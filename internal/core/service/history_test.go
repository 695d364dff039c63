package service

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nalmatov/ltc-backend/internal/core/domain"
)

func historyPoint(t time.Time, price float64) domain.PricePoint {
	return domain.PricePoint{Timestamp: t, Price: price}
}

func TestHistoryTTLScalesWithWindow(t *testing.T) {
	tests := []struct {
		days int
		want time.Duration
	}{
		{1, time.Hour},
		{6, time.Hour},
		{7, 6 * time.Hour},
		{29, 6 * time.Hour},
		{30, 12 * time.Hour},
		{90, 12 * time.Hour},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, historyTTL(tt.days), "days=%d", tt.days)
	}
}

func TestPeriodLabel(t *testing.T) {
	assert.Equal(t, "24 hours", periodLabel(1))
	assert.Equal(t, "7 days", periodLabel(7))
	assert.Equal(t, "1 month", periodLabel(30))
	assert.Equal(t, "45 days", periodLabel(45))
}

func TestHistoryClampsDays(t *testing.T) {
	chart := &fakeChart{}
	svc := NewHistoryService(newFakeCache(), chart, "litecoin", slog.Default())

	_, err := svc.History(context.Background(), 500, true)
	require.NoError(t, err)
	assert.Equal(t, maxHistoryDays, chart.lastDays)

	_, err = svc.History(context.Background(), -3, true)
	require.NoError(t, err)
	assert.Equal(t, 1, chart.lastDays)
}

func TestHistoryDailyCloseCollapse(t *testing.T) {
	day1 := time.Date(2025, 3, 23, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 3, 24, 0, 0, 0, 0, time.UTC)

	chart := &fakeChart{points: []domain.PricePoint{
		historyPoint(day1.Add(1*time.Hour), 80.111),
		historyPoint(day1.Add(13*time.Hour), 81.222),
		historyPoint(day1.Add(23*time.Hour), 82.333),
		historyPoint(day2.Add(2*time.Hour), 83.444),
	}}
	svc := NewHistoryService(newFakeCache(), chart, "litecoin", slog.Default())

	resp, err := svc.History(context.Background(), 7, true)
	require.NoError(t, err)

	require.Len(t, resp.Data, 2)
	assert.Equal(t, "3/23", resp.Data[0].Date)
	assert.Equal(t, 82.33, resp.Data[0].Price, "last sample of the day, rounded to 2 decimals")
	assert.Equal(t, "3/24", resp.Data[1].Date)
	assert.Equal(t, 83.44, resp.Data[1].Price)

	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "USD", resp.Currency)
	assert.Equal(t, "7 days", resp.Period)
}

func TestHistoryHourlyKeepsAllSamples(t *testing.T) {
	day := time.Date(2025, 3, 23, 0, 0, 0, 0, time.UTC)
	chart := &fakeChart{points: []domain.PricePoint{
		historyPoint(day, 80.0),
		historyPoint(day.Add(time.Hour), 81.0),
	}}
	svc := NewHistoryService(newFakeCache(), chart, "litecoin", slog.Default())

	resp, err := svc.History(context.Background(), 1, false)
	require.NoError(t, err)

	assert.Len(t, resp.Data, 2)
	assert.Equal(t, "24 hours", resp.Period)
}

func TestHistoryCaching(t *testing.T) {
	chart := &fakeChart{points: []domain.PricePoint{
		historyPoint(time.Date(2025, 3, 23, 12, 0, 0, 0, time.UTC), 80.0),
	}}
	cache := newFakeCache()
	svc := NewHistoryService(cache, chart, "litecoin", slog.Default())

	first, err := svc.History(context.Background(), 30, true)
	require.NoError(t, err)

	second, err := svc.History(context.Background(), 30, true)
	require.NoError(t, err)

	assert.Equal(t, 1, chart.calls, "second request is served from cache")
	assert.Equal(t, first, second)

	key := domain.PriceHistoryKey("litecoin", 30, true)
	assert.Equal(t, 12*time.Hour, cache.ttls[key], "month-long windows cache for 12 hours")
}

func TestHistoryUpstreamError(t *testing.T) {
	chart := &fakeChart{err: domain.ErrUpstreamUnavailable}
	svc := NewHistoryService(newFakeCache(), chart, "litecoin", slog.Default())

	_, err := svc.History(context.Background(), 30, true)

	assert.True(t, errors.Is(err, domain.ErrUpstreamUnavailable))
}
