package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifySignal(t *testing.T) {
	tests := []struct {
		name      string
		predicted float64
		want      Signal
	}{
		{name: "positive is bullish", predicted: 0.3, want: SignalBullish},
		{name: "large positive is bullish", predicted: 250, want: SignalBullish},
		{name: "negative is bearish", predicted: -0.0001, want: SignalBearish},
		{name: "zero is neutral", predicted: 0, want: SignalNeutral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifySignal(tt.predicted))
		})
	}
}

func TestOrderStatusTerminal(t *testing.T) {
	terminal := []OrderStatus{OrderCompleted, OrderCanceled, OrderMargin, OrderRejected}
	for _, s := range terminal {
		assert.True(t, s.IsTerminal(), s.String())
	}
	for _, s := range []OrderStatus{OrderSubmitted, OrderAccepted} {
		assert.False(t, s.IsTerminal(), s.String())
	}
}

func TestPositionSide(t *testing.T) {
	assert.Equal(t, Flat, (&Position{}).Side())
	assert.Equal(t, Long, (&Position{Size: 3}).Side())
	assert.Equal(t, Short, (&Position{Size: -3}).Side())
	assert.Equal(t, int64(3), (&Position{Size: -3}).AbsSize())
	assert.True(t, (&Position{}).IsFlat())
}
