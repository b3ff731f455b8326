package orderbook

import (
	"fmt"
	"sort"

	orderbookv1 "github.com/VickyakaKV/market-engine/internal/domain/orderbook/v1"
)

// Book owns every resting order, keyed into one price level per scaled
// price and side. Bids iterate highest price first, asks lowest first.
// The book is confined to the single submission goroutine; it is not safe
// for concurrent use.
type Book struct {
	bidLevels map[int64]*orderbookv1.Level // scaled price -> level
	askLevels map[int64]*orderbookv1.Level // scaled price -> level
}

// NewBook creates an empty book.
func NewBook() *Book {
	return &Book{
		bidLevels: make(map[int64]*orderbookv1.Level),
		askLevels: make(map[int64]*orderbookv1.Level),
	}
}

// Insert appends the order to the tail of its side/price level's queue,
// creating the level if absent. Insertion never matches; matching is a
// separate pass.
func (b *Book) Insert(order *orderbookv1.Order) error {
	if order == nil {
		return orderbookv1.ErrNilOrder
	}
	if order.Remaining <= 0 {
		return fmt.Errorf("%w: got %d", orderbookv1.ErrInvalidSize, order.Remaining)
	}

	levels := b.sideLevels(order.Side)
	level, exists := levels[order.Price]
	if !exists {
		level = orderbookv1.NewLevel(order.Price)
		levels[order.Price] = level
	}

	return level.Append(order)
}

// Best returns the top-priority level for the side: highest price for
// bids, lowest for asks. The second return is false when the side is
// empty.
func (b *Book) Best(side orderbookv1.Side) (*orderbookv1.Level, bool) {
	var best *orderbookv1.Level
	for _, level := range b.sideLevels(side) {
		if best == nil || better(side, level.Price, best.Price) {
			best = level
		}
	}
	return best, best != nil
}

// FillFront consumes qty from the front order of the side's best level.
// A fully filled front order is dequeued, and a level whose aggregate
// reaches zero is deleted rather than retained empty. Filling an empty
// side is a programming error.
func (b *Book) FillFront(side orderbookv1.Side, qty int64) {
	level, ok := b.Best(side)
	if !ok {
		panic("orderbook: fill on empty side")
	}

	level.FillFront(qty)

	if level.Empty() {
		if level.Volume() != 0 {
			panic(fmt.Sprintf("orderbook: empty level %d holds volume %d", level.Price, level.Volume()))
		}
		delete(b.sideLevels(side), level.Price)
	}
}

// Levels returns a consistent snapshot of the side's levels in priority
// order, aggregated by price. The snapshot is detached from the book, so
// later mutations do not tear it.
func (b *Book) Levels(side orderbookv1.Side) []orderbookv1.LevelView {
	levels := b.sideLevels(side)

	views := make([]orderbookv1.LevelView, 0, len(levels))
	for _, level := range levels {
		views = append(views, orderbookv1.LevelView{
			Price:  level.Price,
			Volume: level.Volume(),
		})
	}
	sort.Slice(views, func(i, j int) bool {
		return better(side, views[i].Price, views[j].Price)
	})

	return views
}

// TotalVolume returns the sum of remaining quantities across the side.
func (b *Book) TotalVolume(side orderbookv1.Side) int64 {
	var total int64
	for _, level := range b.sideLevels(side) {
		total += level.Volume()
	}
	return total
}

// Validate walks every level and checks its aggregate against its queue.
func (b *Book) Validate() error {
	for _, levels := range []map[int64]*orderbookv1.Level{b.bidLevels, b.askLevels} {
		for price, level := range levels {
			if level.Empty() {
				return fmt.Errorf("empty level retained at price %d", price)
			}
			if err := level.Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *Book) sideLevels(side orderbookv1.Side) map[int64]*orderbookv1.Level {
	if side == orderbookv1.Buy {
		return b.bidLevels
	}
	return b.askLevels
}

// better reports whether price a has priority over price b on the side.
func better(side orderbookv1.Side, a, b int64) bool {
	if side == orderbookv1.Buy {
		return a > b
	}
	return a < b
}
