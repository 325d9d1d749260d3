package domain

import "time"

// PositionSide represents the direction of a held position.
type PositionSide string

const (
	Flat  PositionSide = "FLAT"
	Long  PositionSide = "LONG"
	Short PositionSide = "SHORT"
)

// Position represents the position held in the simulated account. Size is
// signed: positive means long, negative means short, zero means flat. The
// side is always derived from the sign of Size, never stored separately.
type Position struct {
	Symbol     string
	Size       int64     // Signed quantity
	EntryPrice float64   // Average entry price (0 when flat)
	EntryTime  time.Time // Zero value when flat
}

// Side derives the position side from the sign of Size.
func (p *Position) Side() PositionSide {
	switch {
	case p.Size > 0:
		return Long
	case p.Size < 0:
		return Short
	default:
		return Flat
	}
}

// IsFlat reports whether no position is held.
func (p *Position) IsFlat() bool {
	return p.Size == 0
}

// AbsSize returns the magnitude of the held quantity.
func (p *Position) AbsSize() int64 {
	if p.Size < 0 {
		return -p.Size
	}
	return p.Size
}
