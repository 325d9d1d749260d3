// Package mlsignal implements the forecast-driven trading strategy: it turns
// an externally predicted direction into position changes and reconciles the
// resulting order and trade notifications from the broker.
package mlsignal

import (
	"context"
	"fmt"
	"io"
	"time"

	"signalTraderBot/internal/domain"
	"signalTraderBot/internal/ports"
	"signalTraderBot/internal/sizing"
)

// Config holds parameters for the signal strategy.
type Config struct {
	// AllowShort selects the long-and-short policy. When false the strategy
	// only cycles FLAT<->LONG; when true it also opens shorts and reverses
	// through a close-then-reopen pair.
	AllowShort bool
}

// Strategy reacts to three callbacks per period/order: the period open, order
// status changes, and trade notifications. It tracks a single outstanding
// order handle; a new signal while one is outstanding is submitted anyway,
// matching the reference behavior (the simulator's in-order dispatch keeps
// replays deterministic regardless).
type Strategy struct {
	cfg    Config
	logger ports.Logger
	events io.Writer // one "<ISO-date>, <message>" line per strategy event

	order   *domain.Order // outstanding order, nil when none
	current time.Time     // date of the period being processed

	lastPrice float64 // last executed buy price
	lastComm  float64 // commission of that fill
}

// New creates a new signal strategy.
func New(cfg Config, logger ports.Logger, events io.Writer) (*Strategy, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger is required for strategy")
	}
	if events == nil {
		return nil, fmt.Errorf("event sink is required for strategy")
	}
	return &Strategy{cfg: cfg, logger: logger, events: events}, nil
}

// logEvent writes a timestamped strategy event line to the event sink.
func (s *Strategy) logEvent(msg string) {
	fmt.Fprintf(s.events, "%s, %s\n", s.current.Format("2006-01-02"), msg)
}

// OnPeriodOpen decides the order intents for the period from the interpreted
// signal and the current position.
func (s *Strategy) OnPeriodOpen(ctx context.Context, bar *domain.Bar, broker ports.Broker) error {
	s.current = bar.Date

	if s.order != nil {
		s.logger.Warn(ctx, "previous order still outstanding on period open",
			map[string]interface{}{"orderID": s.order.ID, "status": s.order.Status.String()})
	}

	signal := domain.ClassifySignal(bar.Predicted)
	pos := broker.Position()

	switch pos.Side() {
	case domain.Flat:
		switch signal {
		case domain.SignalBullish:
			return s.openLong(ctx, bar, broker)
		case domain.SignalBearish:
			if s.cfg.AllowShort {
				return s.openShort(ctx, bar, broker)
			}
		}

	case domain.Long:
		if signal != domain.SignalBearish {
			return nil
		}
		if !s.cfg.AllowShort {
			// Plain exit: sell the full held quantity.
			s.logEvent(fmt.Sprintf("SELL CREATED --- Size: %d", pos.Size))
			order, err := broker.SubmitSell(ctx, pos.Size)
			if err != nil {
				return fmt.Errorf("submitting exit sell: %w", err)
			}
			s.order = order
			return nil
		}
		// Reverse in two steps: flatten first, so the reopening size is
		// computed against the post-close cash.
		s.logEvent(fmt.Sprintf("CLOSE LONG POSITION --- Size: %d", pos.Size))
		if _, err := broker.SubmitClose(ctx); err != nil {
			return fmt.Errorf("closing long position: %w", err)
		}
		return s.reopen(ctx, bar, broker, domain.Sell)

	case domain.Short:
		if signal != domain.SignalBullish {
			return nil
		}
		s.logEvent(fmt.Sprintf("CLOSE SHORT POSITION --- Size: %d", pos.AbsSize()))
		if _, err := broker.SubmitClose(ctx); err != nil {
			return fmt.Errorf("closing short position: %w", err)
		}
		return s.reopen(ctx, bar, broker, domain.Buy)
	}
	return nil
}

// openLong enters a long position from flat, all-in against current cash.
func (s *Strategy) openLong(ctx context.Context, bar *domain.Bar, broker ports.Broker) error {
	cash := broker.Cash()
	size := sizing.MaxQuantity(cash, bar.Open)
	if size <= 0 {
		s.logger.Debug(ctx, "skipping long entry, cash below open price",
			map[string]interface{}{"cash": cash, "open": bar.Open})
		return nil
	}
	s.logEvent(fmt.Sprintf("LONG CREATED --- Size: %d, Cash: %.2f, Open: %v, Close: %v",
		size, cash, bar.Open, bar.Close))
	order, err := broker.SubmitBuy(ctx, size)
	if err != nil {
		return fmt.Errorf("submitting long entry: %w", err)
	}
	s.order = order
	return nil
}

// openShort enters a short position from flat, all-in against current cash.
func (s *Strategy) openShort(ctx context.Context, bar *domain.Bar, broker ports.Broker) error {
	cash := broker.Cash()
	size := sizing.MaxQuantity(cash, bar.Open)
	if size <= 0 {
		s.logger.Debug(ctx, "skipping short entry, cash below open price",
			map[string]interface{}{"cash": cash, "open": bar.Open})
		return nil
	}
	s.logEvent(fmt.Sprintf("SHORT CREATED --- Size: %d, Cash: %.2f, Open: %v, Close: %v",
		size, cash, bar.Open, bar.Close))
	order, err := broker.SubmitSell(ctx, size)
	if err != nil {
		return fmt.Errorf("submitting short entry: %w", err)
	}
	s.order = order
	return nil
}

// reopen submits the second leg of a reversal, sized against the cash the
// just-requested close left available.
func (s *Strategy) reopen(ctx context.Context, bar *domain.Bar, broker ports.Broker, side domain.OrderSide) error {
	size := sizing.MaxQuantity(broker.Cash(), bar.Open)
	if size <= 0 {
		s.logger.Debug(ctx, "skipping reversal reopen, cash below open price",
			map[string]interface{}{"cash": broker.Cash(), "open": bar.Open})
		return nil
	}
	var (
		order *domain.Order
		err   error
	)
	if side == domain.Buy {
		order, err = broker.SubmitBuy(ctx, size)
	} else {
		order, err = broker.SubmitSell(ctx, size)
	}
	if err != nil {
		return fmt.Errorf("submitting reversal %s: %w", side, err)
	}
	s.order = order
	return nil
}

// OnOrderStatus tracks the outstanding order through its lifecycle. Transient
// statuses only refresh the handle; every terminal status clears it so the
// strategy is ready to submit again.
func (s *Strategy) OnOrderStatus(ctx context.Context, order *domain.Order) {
	switch order.Status {
	case domain.OrderSubmitted, domain.OrderAccepted:
		s.order = order
		return

	case domain.OrderCompleted:
		exec := order.Executed
		if order.IsBuy() {
			s.logEvent(fmt.Sprintf("BUY EXECUTED --- Price: %.2f, Cost: %.2f, Commission: %.2f",
				exec.Price, exec.Value, exec.Commission))
			s.lastPrice = exec.Price
			s.lastComm = exec.Commission
		} else {
			s.logEvent(fmt.Sprintf("SELL EXECUTED --- Price: %.2f, Cost: %.2f, Commission: %.2f",
				exec.Price, exec.Value, exec.Commission))
		}

	case domain.OrderCanceled, domain.OrderMargin, domain.OrderRejected:
		s.logEvent("Order Failed")

	default:
		s.logger.Error(ctx, ports.ErrUnknownOrderStatus, "dropping order notification",
			map[string]interface{}{"orderID": order.ID, "status": int(order.Status)})
		return
	}

	s.order = nil
}

// OnTradeClosed reports the realized result of a finished round-trip. Open
// trade notifications are ignored.
func (s *Strategy) OnTradeClosed(ctx context.Context, trade *domain.Trade) {
	if !trade.IsClosed {
		return
	}
	s.logEvent(fmt.Sprintf("OPERATION RESULT --- Gross: %.2f, Net: %.2f", trade.GrossPnL, trade.NetPnL))
}
