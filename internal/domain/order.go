package domain

import "time"

// OrderSide represents the side of an order (BUY or SELL).
type OrderSide string

const (
	Buy  OrderSide = "BUY"
	Sell OrderSide = "SELL"
)

// OrderStatus is the closed set of states an order moves through.
// SUBMITTED and ACCEPTED are transient; the rest are terminal.
type OrderStatus int

const (
	OrderSubmitted OrderStatus = iota
	OrderAccepted
	OrderCompleted
	OrderCanceled
	OrderMargin
	OrderRejected
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	switch s {
	case OrderSubmitted:
		return "SUBMITTED"
	case OrderAccepted:
		return "ACCEPTED"
	case OrderCompleted:
		return "COMPLETED"
	case OrderCanceled:
		return "CANCELED"
	case OrderMargin:
		return "MARGIN"
	case OrderRejected:
		return "REJECTED"
	default:
		return "UNKNOWN"
	}
}

// IsTerminal reports whether no further updates will arrive for an order in
// this status.
func (s OrderStatus) IsTerminal() bool {
	switch s {
	case OrderCompleted, OrderCanceled, OrderMargin, OrderRejected:
		return true
	}
	return false
}

// Execution holds the realized details of a filled order.
type Execution struct {
	Price      float64 // Average fill price
	Value      float64 // Notional cost (price * quantity)
	Commission float64 // Commission charged for the fill
	Time       time.Time
}

// Order represents a single order intent and its progress through the broker.
type Order struct {
	ID       int64
	Symbol   string
	Side     OrderSide
	Quantity int64 // Requested quantity, always positive
	Status   OrderStatus
	Executed Execution // Populated once the order completes
}

// IsBuy reports whether the order is on the buy side.
func (o *Order) IsBuy() bool {
	return o.Side == Buy
}
