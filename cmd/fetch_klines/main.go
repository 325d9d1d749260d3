package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"signalTraderBot/config"
	"signalTraderBot/internal/adapters/binanceclient"
	"signalTraderBot/internal/adapters/logger"
	"signalTraderBot/internal/utils"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err) // Use standard log before logger is ready
	}

	// 2. Initialize Logger
	appLogger := logger.NewStdLogger(cfg.LogLevel)
	ctx := context.Background()

	// 3. Initialize the Binance market-data adapter
	client, err := binanceclient.New(binanceclient.Config{
		APIKey:     cfg.APIKey,
		SecretKey:  cfg.SecretKey,
		UseTestnet: cfg.IsTestnet,
		Logger:     appLogger,
	})
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize Binance client: %v", err)
	}

	end := time.Now()
	start := end.AddDate(0, -3, 0) // 3 months ago

	appLogger.Info(ctx, "Fetching bars", map[string]interface{}{
		"symbol": cfg.Symbol, "interval": cfg.Interval,
		"start": start.Format("2006-01-02"), "end": end.Format("2006-01-02"),
	})
	bars, err := client.GetBarsRange(ctx, cfg.Symbol, cfg.Interval, start, end)
	if err != nil {
		appLogger.Error(ctx, err, "Error fetching bars")
		log.Fatalf("Error fetching bars: %v", err)
	}
	appLogger.Info(ctx, "Fetched bars", map[string]interface{}{"count": len(bars)})

	// The predicted column is written as zero here; the forecasting model
	// fills it in before a backtest run.
	filename := fmt.Sprintf("data/%s_%s_%s_to_%s.csv",
		cfg.Symbol, cfg.Interval, start.Format("20060102"), end.Format("20060102"))
	if err := utils.WriteBarsToCSV(bars, filename); err != nil {
		appLogger.Error(ctx, err, "Error writing CSV")
		log.Fatalf("Error writing CSV: %v", err)
	}
	appLogger.Info(ctx, "Saved bars", map[string]interface{}{"filename": filename})
}
