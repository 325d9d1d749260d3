package ports

import (
	"context"

	"signalTraderBot/internal/domain"
)

// Broker is the capability handed to the strategy for querying the account
// and submitting order intents. Implementations execute intents against the
// current period's open price and deliver the resulting status and trade
// notifications back through the Strategy callbacks, strictly in submission
// order and never reentrantly.
type Broker interface {
	// Cash returns the currently available cash. Proceeds of an already
	// submitted close are reflected immediately, so sizing a reopen after a
	// close sees the updated balance.
	Cash() float64

	// Position returns the currently held position. The position only
	// changes as a consequence of executed orders, never on submission.
	Position() *domain.Position

	// SubmitBuy submits a market buy intent for the given quantity.
	SubmitBuy(ctx context.Context, quantity int64) (*domain.Order, error)

	// SubmitSell submits a market sell intent for the given quantity.
	SubmitSell(ctx context.Context, quantity int64) (*domain.Order, error)

	// SubmitClose submits an intent to flatten the current position at
	// market, whichever side it is on.
	SubmitClose(ctx context.Context) (*domain.Order, error)
}
