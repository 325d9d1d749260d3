package ports

import (
	"context"

	"signalTraderBot/internal/domain"
)

// Strategy defines the callback surface a trading strategy exposes to the
// engine. Callbacks are dispatched one at a time, in the order the broker
// delivers them; a callback always runs to completion before the next one.
type Strategy interface {
	// OnPeriodOpen is invoked once per period with that period's bar and the
	// broker capability. The strategy decides here which order intents, if
	// any, to submit.
	OnPeriodOpen(ctx context.Context, bar *domain.Bar, broker Broker) error

	// OnOrderStatus is invoked for every status change of a submitted order.
	OnOrderStatus(ctx context.Context, order *domain.Order)

	// OnTradeClosed is invoked when a trade notification arrives; the trade
	// may still be open, in which case implementations ignore it.
	OnTradeClosed(ctx context.Context, trade *domain.Trade)
}
