package backtest

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"signalTraderBot/internal/domain"
	"signalTraderBot/internal/strategy/mlsignal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockLogger implements ports.Logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, msg string, fields ...map[string]interface{}) {}
func (m *mockLogger) Info(ctx context.Context, msg string, fields ...map[string]interface{})  {}
func (m *mockLogger) Warn(ctx context.Context, msg string, fields ...map[string]interface{})  {}
func (m *mockLogger) Error(ctx context.Context, err error, msg string, fields ...map[string]interface{}) {
}

func bar(day int, open, close, predicted float64) *domain.Bar {
	return &domain.Bar{
		Date:      time.Date(2023, 1, day, 0, 0, 0, 0, time.UTC),
		Symbol:    "ETHUSDT",
		Open:      open,
		High:      close,
		Low:       open,
		Close:     close,
		Predicted: predicted,
	}
}

func TestRunRejectsEmptyInput(t *testing.T) {
	strat, err := mlsignal.New(mlsignal.Config{}, &mockLogger{}, &bytes.Buffer{})
	require.NoError(t, err)

	_, err = Run(context.Background(), Config{InitialCash: 1000}, strat, &mockLogger{}, nil)
	assert.Error(t, err)
}

func TestLongOnlyRoundTrip(t *testing.T) {
	var events bytes.Buffer
	strat, err := mlsignal.New(mlsignal.Config{AllowShort: false}, &mockLogger{}, &events)
	require.NoError(t, err)

	bars := []*domain.Bar{
		bar(2, 100, 105, 2),  // bullish: enter long, all-in
		bar(3, 110, 108, -1), // bearish while long: exit
	}
	result, err := Run(context.Background(), Config{Symbol: "ETHUSDT", InitialCash: 1000}, strat, &mockLogger{}, bars)
	require.NoError(t, err)

	want := strings.Join([]string{
		"2023-01-02, LONG CREATED --- Size: 10, Cash: 1000.00, Open: 100, Close: 105",
		"2023-01-02, BUY EXECUTED --- Price: 100.00, Cost: 1000.00, Commission: 0.00",
		"2023-01-03, SELL CREATED --- Size: 10",
		"2023-01-03, SELL EXECUTED --- Price: 110.00, Cost: 1100.00, Commission: 0.00",
		"2023-01-03, OPERATION RESULT --- Gross: 100.00, Net: 100.00",
	}, "\n") + "\n"
	assert.Equal(t, want, events.String())

	assert.Equal(t, 1, result.TotalTrades)
	assert.Equal(t, 1, result.WinningTrades)
	assert.Equal(t, 0, result.LosingTrades)
	assert.Equal(t, 1.0, result.WinRate)
	assert.InDelta(t, 100.0, result.NetProfit, 1e-9)
	assert.InDelta(t, 1100.0, result.FinalEquity, 1e-9)
	assert.InDelta(t, 0.10, result.ReturnOnInvestment, 1e-9)
}

func TestLongOnlyIgnoresBearishWhileFlat(t *testing.T) {
	var events bytes.Buffer
	strat, err := mlsignal.New(mlsignal.Config{AllowShort: false}, &mockLogger{}, &events)
	require.NoError(t, err)

	bars := []*domain.Bar{
		bar(2, 100, 99, -2),
		bar(3, 99, 98, 0),
	}
	result, err := Run(context.Background(), Config{Symbol: "ETHUSDT", InitialCash: 1000}, strat, &mockLogger{}, bars)
	require.NoError(t, err)

	assert.Empty(t, events.String())
	assert.Equal(t, 0, result.TotalTrades)
	assert.Equal(t, 0.0, result.WinRate)
	assert.InDelta(t, 1000.0, result.FinalEquity, 1e-9)
}

func TestCombinedShortThenReverse(t *testing.T) {
	var events bytes.Buffer
	strat, err := mlsignal.New(mlsignal.Config{AllowShort: true}, &mockLogger{}, &events)
	require.NoError(t, err)

	bars := []*domain.Bar{
		bar(2, 100, 98, -1.5), // bearish while flat: open short
		bar(3, 90, 92, 3),     // bullish while short: close, then go long
	}
	result, err := Run(context.Background(), Config{Symbol: "ETHUSDT", InitialCash: 1000}, strat, &mockLogger{}, bars)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(events.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "2023-01-02, SHORT CREATED --- Size: 10, Cash: 1000.00, Open: 100, Close: 98", lines[0])
	assert.Equal(t, "2023-01-02, SELL EXECUTED --- Price: 100.00, Cost: 1000.00, Commission: 0.00", lines[1])
	assert.Equal(t, "2023-01-03, CLOSE SHORT POSITION --- Size: 10", lines[2])
	// Cover at 90: gross (100-90)*10 = 100.
	assert.Equal(t, "2023-01-03, BUY EXECUTED --- Price: 90.00, Cost: 900.00, Commission: 0.00", lines[3])
	assert.Equal(t, "2023-01-03, OPERATION RESULT --- Gross: 100.00, Net: 100.00", lines[4])
	// Reopen sized against post-close cash: floor(1100 / 90) = 12.
	assert.Equal(t, "2023-01-03, BUY EXECUTED --- Price: 90.00, Cost: 1080.00, Commission: 0.00", lines[5])

	assert.Equal(t, 1, result.TotalTrades)
	require.Len(t, result.Trades, 1)
	assert.Equal(t, domain.Short, result.Trades[0].Side)
	// Ends long 12 @ 90 with 20 cash; last close 92 values it at 1124.
	assert.InDelta(t, 1124.0, result.FinalEquity, 1e-9)
}
