package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"signalTraderBot/config"
	"signalTraderBot/internal/adapters/logger"
	"signalTraderBot/internal/adapters/sqlite"
	"signalTraderBot/internal/backtest"
	"signalTraderBot/internal/strategy/mlsignal"
	"signalTraderBot/internal/utils"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}

	appLogger := logger.NewStdLogger(cfg.LogLevel)
	ctx := context.Background()

	// 2. Load bars (OHLCV + predicted column) from CSV
	bars, err := utils.ReadBarsFromCSV(cfg.DataPath)
	if err != nil {
		appLogger.Error(ctx, err, "Failed to load bars", map[string]interface{}{"path": cfg.DataPath})
		log.Fatalf("FATAL: Failed to load bars: %v", err)
	}
	appLogger.Info(ctx, "Loaded bars", map[string]interface{}{"count": len(bars), "path": cfg.DataPath})

	// 3. Build the strategy; event lines go to stdout
	strat, err := mlsignal.New(mlsignal.Config{AllowShort: cfg.AllowShort}, appLogger, os.Stdout)
	if err != nil {
		log.Fatalf("FATAL: Failed to create strategy: %v", err)
	}

	// 4. Run the backtest
	result, err := backtest.Run(ctx, backtest.Config{
		Symbol:         cfg.Symbol,
		InitialCash:    cfg.InitialCash,
		CommissionRate: cfg.CommissionRate,
	}, strat, appLogger, bars)
	if err != nil {
		appLogger.Error(ctx, err, "Backtest failed")
		log.Fatalf("FATAL: Backtest failed: %v", err)
	}

	// 5. Persist closed trades
	repo, err := sqlite.NewRepository(sqlite.Config{DBPath: cfg.DBPath, Logger: appLogger})
	if err != nil {
		log.Fatalf("FATAL: Failed to open trade repository: %v", err)
	}
	defer repo.Close()

	for _, trade := range result.Trades {
		if _, err := repo.CreateTrade(ctx, trade); err != nil {
			appLogger.Error(ctx, err, "Failed to persist trade", map[string]interface{}{"tradeID": trade.ID})
		}
	}
	totalNet, err := repo.GetTotalNetProfit(ctx)
	if err != nil {
		appLogger.Error(ctx, err, "Failed to read stored net profit")
	}

	// 6. Report
	policy := "long-only"
	if cfg.AllowShort {
		policy = "long-and-short"
	}
	fmt.Printf("\n--- Backtest Result: %s (%s) ---\n", cfg.Symbol, policy)
	fmt.Printf("Trades: %d (won %d, lost %d, win rate %.2f%%)\n",
		result.TotalTrades, result.WinningTrades, result.LosingTrades, result.WinRate*100)
	fmt.Printf("Gross PnL: %.2f, Net PnL: %.2f\n", result.GrossProfit, result.NetProfit)
	fmt.Printf("Final equity: %.2f (ROI %.2f%%)\n", result.FinalEquity, result.ReturnOnInvestment*100)
	fmt.Printf("Stored net PnL across runs: %.2f\n", totalNet)
}
