package orderbookv1

import (
	"errors"
	"fmt"
)

var (
	// ErrNilOrder is returned when a nil order is handed to the book.
	ErrNilOrder = errors.New("order cannot be nil")
	// ErrInvalidSize is returned when an order's quantity is not positive.
	ErrInvalidSize = errors.New("order quantity must be positive")
	// ErrPriceMismatch is returned when an order is appended to a level
	// keyed by a different price.
	ErrPriceMismatch = errors.New("order price does not match level price")
)

// Level is one price level: a FIFO queue of resting orders sharing the
// same scaled price, plus the aggregate remaining volume. Queue and
// aggregate are updated as a unit, so the aggregate always equals the sum
// of the queued orders' remaining quantities.
type Level struct {
	Price int64

	orders []*Order
	volume int64
}

// NewLevel creates an empty level keyed by the given scaled price.
func NewLevel(price int64) *Level {
	return &Level{Price: price}
}

// Append adds an order to the tail of the queue, preserving time priority.
func (l *Level) Append(order *Order) error {
	if order == nil {
		return ErrNilOrder
	}
	if order.Remaining <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSize, order.Remaining)
	}
	if order.Price != l.Price {
		return fmt.Errorf("%w: level %d, order %d", ErrPriceMismatch, l.Price, order.Price)
	}

	l.orders = append(l.orders, order)
	l.volume += order.Remaining

	return nil
}

// Front returns the order with time priority at this level, or nil when
// the level is empty.
func (l *Level) Front() *Order {
	if len(l.orders) == 0 {
		return nil
	}
	return l.orders[0]
}

// FillFront consumes qty from the front order, keeping the aggregate in
// step, and removes the front in the same step that zeroes it. Filling an
// empty level or exceeding the front's remaining quantity is a programming
// error, not a recoverable condition.
func (l *Level) FillFront(qty int64) {
	if len(l.orders) == 0 {
		panic("orderbook: fill on empty level")
	}
	front := l.orders[0]
	if qty <= 0 || qty > front.Remaining {
		panic(fmt.Sprintf("orderbook: fill %d against front remaining %d", qty, front.Remaining))
	}

	front.Remaining -= qty
	l.volume -= qty

	if front.IsFilled() {
		l.orders = l.orders[1:]
	}
}

// Empty checks if the level has no orders.
func (l *Level) Empty() bool {
	return len(l.orders) == 0
}

// Len returns the number of resting orders at this level.
func (l *Level) Len() int {
	return len(l.orders)
}

// Volume returns the aggregate remaining quantity at this level.
func (l *Level) Volume() int64 {
	return l.volume
}

// Orders returns a copy of the queue in time priority order.
func (l *Level) Orders() []*Order {
	orders := make([]*Order, len(l.orders))
	copy(orders, l.orders)
	return orders
}

// Validate performs basic validation of the level's state.
func (l *Level) Validate() error {
	var calculated int64
	for _, order := range l.orders {
		if order == nil {
			return fmt.Errorf("nil order found in level %d", l.Price)
		}
		if order.Remaining <= 0 {
			return fmt.Errorf("%w: resting order has remaining %d", ErrInvalidSize, order.Remaining)
		}
		if order.Price != l.Price {
			return fmt.Errorf("%w: level %d, order %d", ErrPriceMismatch, l.Price, order.Price)
		}
		calculated += order.Remaining
	}

	if calculated != l.volume {
		return fmt.Errorf("volume mismatch at level %d: calculated %d, stored %d", l.Price, calculated, l.volume)
	}

	return nil
}
