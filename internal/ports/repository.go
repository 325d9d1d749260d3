package ports

import (
	"context"

	"signalTraderBot/internal/domain"
)

// TradeRepository defines the interface for storing and retrieving completed
// round-trip trades.
type TradeRepository interface {
	// CreateTrade saves a new closed trade record and returns its assigned ID.
	CreateTrade(ctx context.Context, trade *domain.Trade) (int64, error)
	// FindBySymbol retrieves the most recent trades for a given symbol, up to a limit.
	FindBySymbol(ctx context.Context, symbol string, limit int) ([]*domain.Trade, error)
	// GetTotalNetProfit calculates the sum of net PnL across all stored trades.
	GetTotalNetProfit(ctx context.Context) (float64, error)
}
