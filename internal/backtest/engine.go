// Package backtest drives a strategy through historical bars against the
// simulated broker, one period at a time.
package backtest

import (
	"context"
	"fmt"

	"signalTraderBot/internal/broker/sim"
	"signalTraderBot/internal/domain"
	"signalTraderBot/internal/ports"
)

// Config holds configuration for a backtest run.
type Config struct {
	Symbol         string
	InitialCash    float64
	CommissionRate float64
}

// Result holds the aggregated outcome of a backtest.
type Result struct {
	TotalTrades        int
	WinningTrades      int
	LosingTrades       int
	WinRate            float64
	GrossProfit        float64
	NetProfit          float64
	FinalEquity        float64
	ReturnOnInvestment float64
	Trades             []*domain.Trade
}

// Run replays bars through the strategy. Per period the dispatch order is
// fixed: the period-open callback first, then every order status and trade
// notification the submitted intents produced, in submission order.
func Run(ctx context.Context, cfg Config, strat ports.Strategy, logger ports.Logger, bars []*domain.Bar) (*Result, error) {
	if len(bars) == 0 {
		return nil, fmt.Errorf("no bars to backtest")
	}

	broker, err := sim.New(sim.Config{
		Symbol:         cfg.Symbol,
		Cash:           cfg.InitialCash,
		CommissionRate: cfg.CommissionRate,
		Logger:         logger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating simulated broker: %w", err)
	}

	result := &Result{}
	for _, bar := range bars {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		broker.BeginPeriod(bar)
		if err := strat.OnPeriodOpen(ctx, bar, broker); err != nil {
			return nil, fmt.Errorf("period %s: %w", bar.Date.Format("2006-01-02"), err)
		}

		for _, trade := range broker.Dispatch(ctx, strat) {
			result.TotalTrades++
			if trade.NetPnL > 0 {
				result.WinningTrades++
			} else {
				result.LosingTrades++
			}
			result.GrossProfit += trade.GrossPnL
			result.NetProfit += trade.NetPnL
			result.Trades = append(result.Trades, trade)
		}
	}

	if result.TotalTrades > 0 {
		result.WinRate = float64(result.WinningTrades) / float64(result.TotalTrades)
	}
	result.FinalEquity = broker.Equity(bars[len(bars)-1].Close)
	result.ReturnOnInvestment = (result.FinalEquity - cfg.InitialCash) / cfg.InitialCash

	return result, nil
}
