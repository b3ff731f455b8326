package orderbookv1

// Trade records one fill between the best bid and the best ask. Trades
// are reported in execution order and not retained afterwards.
type Trade struct {
	Bid      *Order
	Ask      *Order
	Quantity int64
	Price    int64 // scaled by the tick factor
}

// LevelView is a read-only snapshot row of one price level, produced for
// display.
type LevelView struct {
	Price  int64
	Volume int64
}
