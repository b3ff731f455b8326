package matching

import (
	orderbookv1 "github.com/VickyakaKV/market-engine/internal/domain/orderbook/v1"
	"github.com/VickyakaKV/market-engine/internal/usecase/orderbook"
)

// Matcher pairs the best bid against the best ask while they cross. It
// borrows the book for the duration of one pass and leaves it consistent;
// it performs no validation and cannot fail on a well-formed book.
type Matcher struct {
	book *orderbook.Book
}

// NewMatcher creates a matcher over the given book.
func NewMatcher(book *orderbook.Book) *Matcher {
	return &Matcher{book: book}
}

// MatchCrossing runs the book to a fixpoint and returns the trades in
// execution order. Each iteration fills min(bid remaining, ask remaining)
// at the price set by the order that arrived earlier: the resting side is
// never forced to improve, so a later aggressive bid prints at the ask
// price and vice versa. A single pass may produce zero, one, or many
// trades, e.g. one large order sweeping several opposing levels.
func (m *Matcher) MatchCrossing() []orderbookv1.Trade {
	var trades []orderbookv1.Trade

	for {
		bidLevel, ok := m.book.Best(orderbookv1.Buy)
		if !ok {
			break
		}
		askLevel, ok := m.book.Best(orderbookv1.Sell)
		if !ok {
			break
		}
		if bidLevel.Price < askLevel.Price {
			break
		}

		bid := bidLevel.Front()
		ask := askLevel.Front()

		quantity := min(bid.Remaining, ask.Remaining)
		price := bidLevel.Price
		if bid.Sequence > ask.Sequence {
			price = askLevel.Price
		}

		m.book.FillFront(orderbookv1.Buy, quantity)
		m.book.FillFront(orderbookv1.Sell, quantity)

		trades = append(trades, orderbookv1.Trade{
			Bid:      bid,
			Ask:      ask,
			Quantity: quantity,
			Price:    price,
		})
	}

	return trades
}
