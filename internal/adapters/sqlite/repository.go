package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"signalTraderBot/internal/domain"
	"signalTraderBot/internal/ports"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Repository implements ports.TradeRepository using SQLite.
type Repository struct {
	db     *sql.DB
	logger ports.Logger
}

// Config holds configuration for the SQLite repository.
type Config struct {
	DBPath string
	Logger ports.Logger
}

// NewRepository creates a new SQLite repository instance.
func NewRepository(cfg Config) (*Repository, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required for SQLite repository")
	}
	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = "./data/backtest_trades.db" // Default path
	}

	// Create data directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		err = fmt.Errorf("failed to create data directory '%s': %w", filepath.Dir(dbPath), err)
		cfg.Logger.Error(context.Background(), err, "SQLite repository initialization failed")
		return nil, err
	}

	// WAL mode for better concurrency
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		err = fmt.Errorf("failed to open database at '%s': %w", dbPath, err)
		cfg.Logger.Error(context.Background(), err, "SQLite repository initialization failed")
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		err = fmt.Errorf("%w: failed to ping database at '%s': %v", ports.ErrDBConnection, dbPath, err)
		cfg.Logger.Error(context.Background(), err, "SQLite repository initialization failed")
		return nil, err
	}

	// SQLite handles concurrency internally; the Go driver benefits from a
	// single connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	repo := &Repository{db: db, logger: cfg.Logger}
	if err := repo.initializeSchema(context.Background()); err != nil {
		db.Close()
		err = fmt.Errorf("failed to initialize database schema: %w", err)
		cfg.Logger.Error(context.Background(), err, "SQLite repository initialization failed")
		return nil, err
	}

	cfg.Logger.Info(context.Background(), "SQLite database ready", map[string]interface{}{"path": dbPath})
	return repo, nil
}

func (r *Repository) initializeSchema(ctx context.Context) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS trades (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		symbol TEXT NOT NULL,
		side TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		entry_price REAL NOT NULL,
		exit_price REAL NOT NULL,
		gross_pnl REAL NOT NULL,
		net_pnl REAL NOT NULL,
		entry_time TIMESTAMP NOT NULL,
		exit_time TIMESTAMP NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_trades_symbol ON trades(symbol);`

	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("%w: creating trades table: %v", ports.ErrQueryFailed, err)
	}
	return nil
}

// Close closes the underlying database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// CreateTrade saves a new closed trade record and returns its assigned ID.
func (r *Repository) CreateTrade(ctx context.Context, trade *domain.Trade) (int64, error) {
	if trade == nil {
		return 0, fmt.Errorf("%w: trade is nil", ports.ErrInvalidRequest)
	}
	if !trade.IsClosed {
		return 0, fmt.Errorf("%w: only closed trades are persisted", ports.ErrInvalidRequest)
	}

	const query = `
	INSERT INTO trades (symbol, side, quantity, entry_price, exit_price, gross_pnl, net_pnl, entry_time, exit_time)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query,
		trade.Symbol, string(trade.Side), trade.Quantity,
		trade.EntryPrice, trade.ExitPrice,
		trade.GrossPnL, trade.NetPnL,
		trade.EntryTime, trade.ExitTime,
	)
	if err != nil {
		return 0, fmt.Errorf("%w: inserting trade: %v", ports.ErrQueryFailed, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: reading trade id: %v", ports.ErrQueryFailed, err)
	}
	return id, nil
}

// FindBySymbol retrieves the most recent trades for a given symbol, up to a limit.
func (r *Repository) FindBySymbol(ctx context.Context, symbol string, limit int) ([]*domain.Trade, error) {
	const query = `
	SELECT id, symbol, side, quantity, entry_price, exit_price, gross_pnl, net_pnl, entry_time, exit_time
	FROM trades WHERE symbol = ? ORDER BY exit_time DESC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, symbol, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: querying trades for %s: %v", ports.ErrQueryFailed, symbol, err)
	}
	defer rows.Close()

	var trades []*domain.Trade
	for rows.Next() {
		var t domain.Trade
		var side string
		if err := rows.Scan(&t.ID, &t.Symbol, &side, &t.Quantity,
			&t.EntryPrice, &t.ExitPrice, &t.GrossPnL, &t.NetPnL,
			&t.EntryTime, &t.ExitTime); err != nil {
			return nil, fmt.Errorf("%w: scanning trade row: %v", ports.ErrQueryFailed, err)
		}
		t.Side = domain.PositionSide(side)
		t.IsClosed = true
		trades = append(trades, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating trade rows: %v", ports.ErrQueryFailed, err)
	}
	return trades, nil
}

// GetTotalNetProfit calculates the sum of net PnL across all stored trades.
func (r *Repository) GetTotalNetProfit(ctx context.Context) (float64, error) {
	const query = `SELECT COALESCE(SUM(net_pnl), 0) FROM trades`

	var total float64
	if err := r.db.QueryRowContext(ctx, query).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: summing net pnl: %v", ports.ErrQueryFailed, err)
	}
	return total, nil
}
