package ports

import (
	"context"
	"time"

	"signalTraderBot/internal/domain"
)

// MarketDataClient defines the interface for fetching historical market data
// from an exchange. Only read-only endpoints: live order placement is out of
// scope, the simulator is the broker.
type MarketDataClient interface {
	// Ping checks connectivity to the exchange API.
	Ping(ctx context.Context) error

	// GetServerTime retrieves the current server time from the exchange.
	GetServerTime(ctx context.Context) (time.Time, error)

	// GetBars retrieves the most recent historical bars for a symbol/interval.
	GetBars(ctx context.Context, symbol, interval string, limit int) ([]*domain.Bar, error)

	// GetBarsRange retrieves all historical bars between start and end,
	// paging through the exchange's per-request limit.
	GetBarsRange(ctx context.Context, symbol, interval string, start, end time.Time) ([]*domain.Bar, error)
}
