package domain

// Signal is the interpreted direction of a per-period forecast.
type Signal int

const (
	SignalNeutral Signal = iota
	SignalBullish
	SignalBearish
)

// String returns the string representation of the Signal.
func (s Signal) String() string {
	switch s {
	case SignalBullish:
		return "BULLISH"
	case SignalBearish:
		return "BEARISH"
	case SignalNeutral:
		return "NEUTRAL"
	default:
		return "UNKNOWN"
	}
}

// ClassifySignal interprets a raw forecast value: positive is bullish,
// negative is bearish, zero is neutral.
func ClassifySignal(predicted float64) Signal {
	switch {
	case predicted > 0:
		return SignalBullish
	case predicted < 0:
		return SignalBearish
	default:
		return SignalNeutral
	}
}
