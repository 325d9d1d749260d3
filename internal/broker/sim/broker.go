// Package sim implements a simulated broker and account. It accepts order
// intents, fills them at the current period's open price, charges commission,
// and queues the status and trade notifications the strategy consumes.
package sim

import (
	"context"
	"fmt"
	"time"

	"signalTraderBot/internal/domain"
	"signalTraderBot/internal/ports"
)

// Config holds configuration for the simulated broker.
type Config struct {
	Symbol         string
	Cash           float64 // Initial account funds
	CommissionRate float64 // Commission as a fraction of notional per fill
	Logger         ports.Logger
}

// notification is a queued callback payload. Exactly one field is set.
type notification struct {
	order *domain.Order
	trade *domain.Trade
}

// Broker owns the simulated account: cash and the single (signed) position.
// Intents are executed synchronously inside Submit*, so cash changes are
// visible to the caller immediately, but the resulting notifications are
// queued and only delivered on Dispatch. That keeps the strategy callbacks
// non-reentrant while still letting a close-then-reopen pair size the reopen
// against the post-close balance.
type Broker struct {
	logger ports.Logger
	symbol string
	rate   float64

	cash      float64
	pos       domain.Position
	entryComm float64 // commission paid when the open position was entered

	bar         *domain.Bar // period currently being processed
	nextOrderID int64
	nextTradeID int64
	queue       []notification
}

// New creates a simulated broker with the given starting funds.
func New(cfg Config) (*Broker, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required for simulated broker")
	}
	if cfg.Cash <= 0 {
		return nil, fmt.Errorf("initial cash must be positive, got %.2f", cfg.Cash)
	}
	if cfg.CommissionRate < 0 || cfg.CommissionRate >= 1 {
		return nil, fmt.Errorf("commission rate must be in [0,1), got %f", cfg.CommissionRate)
	}
	return &Broker{
		logger: cfg.Logger,
		symbol: cfg.Symbol,
		rate:   cfg.CommissionRate,
		cash:   cfg.Cash,
		pos:    domain.Position{Symbol: cfg.Symbol},
	}, nil
}

// BeginPeriod makes bar the active period; subsequent fills execute at its
// open price.
func (b *Broker) BeginPeriod(bar *domain.Bar) {
	b.bar = bar
}

// Cash returns the currently available funds.
func (b *Broker) Cash() float64 { return b.cash }

// Position returns the currently held position.
func (b *Broker) Position() *domain.Position { return &b.pos }

// Equity values the account at the given price: cash plus the marked value
// of the open position (negative sizes reduce it).
func (b *Broker) Equity(price float64) float64 {
	return b.cash + float64(b.pos.Size)*price
}

// SubmitBuy executes a market buy of quantity units.
func (b *Broker) SubmitBuy(ctx context.Context, quantity int64) (*domain.Order, error) {
	return b.submit(ctx, domain.Buy, quantity)
}

// SubmitSell executes a market sell of quantity units.
func (b *Broker) SubmitSell(ctx context.Context, quantity int64) (*domain.Order, error) {
	return b.submit(ctx, domain.Sell, quantity)
}

// SubmitClose flattens the current position at market.
func (b *Broker) SubmitClose(ctx context.Context) (*domain.Order, error) {
	if b.pos.IsFlat() {
		return nil, ports.ErrPositionNotFound
	}
	if b.pos.Size > 0 {
		return b.submit(ctx, domain.Sell, b.pos.Size)
	}
	return b.submit(ctx, domain.Buy, -b.pos.Size)
}

func (b *Broker) submit(ctx context.Context, side domain.OrderSide, quantity int64) (*domain.Order, error) {
	if b.bar == nil {
		return nil, ports.ErrNoActivePeriod
	}

	b.nextOrderID++
	order := &domain.Order{
		ID:       b.nextOrderID,
		Symbol:   b.symbol,
		Side:     side,
		Quantity: quantity,
		Status:   domain.OrderSubmitted,
	}
	b.enqueueOrder(order)

	if quantity <= 0 {
		b.logger.Warn(ctx, "rejecting order with non-positive quantity",
			map[string]interface{}{"orderID": order.ID, "quantity": quantity})
		order.Status = domain.OrderRejected
		b.enqueueOrder(order)
		return order, nil
	}

	order.Status = domain.OrderAccepted
	b.enqueueOrder(order)

	// The terminal order status is delivered before the trade notification
	// the fill produced.
	trade := b.fill(ctx, order)
	b.enqueueOrder(order)
	if trade != nil {
		b.enqueueTrade(trade)
	}
	return order, nil
}

// fill executes an accepted order against the active bar's open price and
// settles cash, position, and trade bookkeeping. It returns the trade
// notification the fill produced, if any.
func (b *Broker) fill(ctx context.Context, order *domain.Order) *domain.Trade {
	price := b.bar.Open
	value := price * float64(order.Quantity)
	commission := value * b.rate

	delta := order.Quantity
	if !order.IsBuy() {
		delta = -delta
	}
	prevSize := b.pos.Size
	newSize := prevSize + delta
	var trade *domain.Trade

	// A single order never crosses through flat; reversals are a close
	// followed by a fresh entry.
	if prevSize != 0 && newSize != 0 && (prevSize > 0) != (newSize > 0) {
		b.logger.Warn(ctx, "rejecting order that would cross through flat",
			map[string]interface{}{"orderID": order.ID, "position": prevSize, "delta": delta})
		order.Status = domain.OrderRejected
		return nil
	}

	// Entering or extending a long requires the full cost up front.
	if order.IsBuy() && prevSize >= 0 && value+commission > b.cash {
		b.logger.Warn(ctx, "insufficient cash for buy",
			map[string]interface{}{"orderID": order.ID, "cost": value + commission, "cash": b.cash})
		order.Status = domain.OrderMargin
		return nil
	}

	if order.IsBuy() {
		b.cash -= value + commission
	} else {
		b.cash += value - commission
	}
	b.pos.Size = newSize

	switch {
	case prevSize == 0:
		b.pos.EntryPrice = price
		b.pos.EntryTime = b.bar.Date
		b.entryComm = commission
		trade = b.newTrade(newSize, price)

	case newSize == 0:
		gross := (price - b.pos.EntryPrice) * float64(prevSize)
		net := gross - b.entryComm - commission
		trade = b.newTrade(prevSize, b.pos.EntryPrice)
		trade.ExitPrice = price
		trade.ExitTime = b.bar.Date
		trade.GrossPnL = gross
		trade.NetPnL = net
		trade.IsClosed = true

		b.pos.EntryPrice = 0
		b.pos.EntryTime = time.Time{}
		b.entryComm = 0

	default:
		// Same-direction add: average the entry price.
		prevAbs := prevSize
		if prevAbs < 0 {
			prevAbs = -prevAbs
		}
		newAbs := newSize
		if newAbs < 0 {
			newAbs = -newAbs
		}
		b.pos.EntryPrice = (b.pos.EntryPrice*float64(prevAbs) + value) / float64(newAbs)
		b.entryComm += commission
	}

	order.Status = domain.OrderCompleted
	order.Executed = domain.Execution{
		Price:      price,
		Value:      value,
		Commission: commission,
		Time:       b.bar.Date,
	}
	return trade
}

func (b *Broker) newTrade(size int64, entryPrice float64) *domain.Trade {
	b.nextTradeID++
	side := domain.Long
	quantity := size
	if size < 0 {
		side = domain.Short
		quantity = -size
	}
	entryTime := b.pos.EntryTime
	if entryTime.IsZero() {
		entryTime = b.bar.Date
	}
	return &domain.Trade{
		ID:         b.nextTradeID,
		Symbol:     b.symbol,
		Side:       side,
		Quantity:   quantity,
		EntryPrice: entryPrice,
		EntryTime:  entryTime,
	}
}

func (b *Broker) enqueueOrder(order *domain.Order) {
	snapshot := *order
	b.queue = append(b.queue, notification{order: &snapshot})
}

func (b *Broker) enqueueTrade(trade *domain.Trade) {
	b.queue = append(b.queue, notification{trade: trade})
}

// Dispatch delivers all queued notifications to the strategy, strictly in the
// order they were produced, and returns the trades that closed. Each callback
// runs to completion before the next is delivered.
func (b *Broker) Dispatch(ctx context.Context, strat ports.Strategy) []*domain.Trade {
	pending := b.queue
	b.queue = nil

	var closed []*domain.Trade
	for _, n := range pending {
		switch {
		case n.order != nil:
			strat.OnOrderStatus(ctx, n.order)
		case n.trade != nil:
			strat.OnTradeClosed(ctx, n.trade)
			if n.trade.IsClosed {
				closed = append(closed, n.trade)
			}
		}
	}
	return closed
}
