package domain

import "time"

// Trade represents a round-trip: a position opened and, once IsClosed is set,
// fully closed again. GrossPnL is the raw price difference times quantity;
// NetPnL subtracts the entry and exit commissions.
type Trade struct {
	ID         int64
	Symbol     string
	Side       PositionSide // Direction of the position the trade tracks
	Quantity   int64        // Magnitude of the position
	EntryPrice float64
	ExitPrice  float64 // 0 while the trade is open
	GrossPnL   float64
	NetPnL     float64
	EntryTime  time.Time
	ExitTime   time.Time // Zero value while open
	IsClosed   bool
}
