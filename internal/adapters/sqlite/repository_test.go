package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"signalTraderBot/internal/domain"

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

// setupTestDB creates a temporary database for testing
func setupTestDB(t *testing.T) *Repository {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	repo, err := NewRepository(Config{DBPath: dbPath, Logger: &mockLogger{}})
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func closedTrade(symbol string, net float64) *domain.Trade {
	return &domain.Trade{
		Symbol:     symbol,
		Side:       domain.Long,
		Quantity:   10,
		EntryPrice: 100,
		ExitPrice:  110,
		GrossPnL:   net + 2,
		NetPnL:     net,
		EntryTime:  time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC),
		ExitTime:   time.Date(2023, 1, 3, 0, 0, 0, 0, time.UTC),
		IsClosed:   true,
	}
}

func TestNewRepositoryRequiresLogger(t *testing.T) {
	repo, err := NewRepository(Config{DBPath: filepath.Join(t.TempDir(), "x.db")})
	assert.Error(t, err)
	assert.Nil(t, repo)
}

func TestCreateAndFindTrade(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	trade := closedTrade("ETHUSDT", 97.9)
	id, err := repo.CreateTrade(ctx, trade)
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	found, err := repo.FindBySymbol(ctx, "ETHUSDT", 10)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, id, found[0].ID)
	assert.Equal(t, domain.Long, found[0].Side)
	assert.Equal(t, int64(10), found[0].Quantity)
	assert.InDelta(t, 97.9, found[0].NetPnL, 1e-9)
	assert.True(t, found[0].IsClosed)
	assert.True(t, found[0].EntryTime.Equal(trade.EntryTime))

	other, err := repo.FindBySymbol(ctx, "BTCUSDT", 10)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestCreateTradeRejectsOpenTrade(t *testing.T) {
	repo := setupTestDB(t)

	open := closedTrade("ETHUSDT", 5)
	open.IsClosed = false
	_, err := repo.CreateTrade(context.Background(), open)
	assert.Error(t, err)

	_, err = repo.CreateTrade(context.Background(), nil)
	assert.Error(t, err)
}

func TestGetTotalNetProfit(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	total, err := repo.GetTotalNetProfit(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0.0, total, "empty table sums to zero")

	_, err = repo.CreateTrade(ctx, closedTrade("ETHUSDT", 100))
	require.NoError(t, err)
	_, err = repo.CreateTrade(ctx, closedTrade("ETHUSDT", -40.5))
	require.NoError(t, err)

	total, err = repo.GetTotalNetProfit(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 59.5, total, 1e-9)
}
