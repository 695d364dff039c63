package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PricePoint is one raw sample of a provider's price chart.
type PricePoint struct {
	Timestamp time.Time
	Price     float64
}

// PriceHistoryItem is one chart point of the history response, with the
// date collapsed to a "month/day" display label.
type PriceHistoryItem struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

type PriceHistoryResponse struct {
	Status   string             `json:"status"`
	Data     []PriceHistoryItem `json:"data"`
	Currency string             `json:"currency"`
	Period   string             `json:"period"`
}

// BookLevel is one price level of an order book side.
type BookLevel struct {
	Price    decimal.Decimal
	Quantity decimal.Decimal
}

// OrderBook holds a depth snapshot. Bids are expected best-first
// (descending price), asks best-first (ascending price).
type OrderBook struct {
	Bids []BookLevel
	Asks []BookLevel
}

// DepthReport is the ±2% depth computed from a live order book.
type DepthReport struct {
	Exchange      string  `json:"exchange"`
	CurrentPrice  float64 `json:"currentPrice"`
	PlusTwoDepth  string  `json:"plus2PercentDepth"`
	MinusTwoDepth string  `json:"minus2PercentDepth"`
}

type DepthResponse struct {
	Status string      `json:"status"`
	Data   DepthReport `json:"data"`
}
