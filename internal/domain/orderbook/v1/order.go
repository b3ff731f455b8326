package orderbookv1

// Side identifies which half of the book an order rests on.
type Side int

const (
	// Buy is the bid side.
	Buy Side = iota
	// Sell is the ask side.
	Sell
)

// String implements fmt.Stringer.
func (s Side) String() string {
	if s == Buy {
		return "buy"
	}
	return "sell"
}

// Opposite returns the side an order matches against.
func (s Side) Opposite() Side {
	if s == Buy {
		return Sell
	}
	return Buy
}

// Order represents a single order in the book. Identity is (Side,
// Sequence); Remaining is the only mutable field and only a matching pass
// decrements it.
type Order struct {
	Side      Side
	Remaining int64
	Price     int64 // scaled by the tick factor
	Sequence  int64
}

// NewOrder creates a new order with the given parameters.
func NewOrder(side Side, quantity, price, sequence int64) *Order {
	return &Order{
		Side:      side,
		Remaining: quantity,
		Price:     price,
		Sequence:  sequence,
	}
}

// IsFilled checks if the order is filled (remaining quantity is zero).
func (o *Order) IsFilled() bool {
	return o.Remaining == 0
}
