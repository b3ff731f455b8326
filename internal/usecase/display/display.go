package display

import (
	"fmt"
	"strings"

	orderbookv1 "github.com/VickyakaKV/market-engine/internal/domain/orderbook/v1"
	pricev1 "github.com/VickyakaKV/market-engine/internal/domain/price/v1"
)

// Renderer projects trades and book snapshots into the fixed-width text
// the terminal adapter prints. It holds no book state and never mutates
// any; rendering the same snapshot twice yields identical output.
type Renderer struct {
	codec *pricev1.Codec
	width int
}

// NewRenderer creates a renderer with the given column width per side.
func NewRenderer(codec *pricev1.Codec, columnWidth int) *Renderer {
	return &Renderer{codec: codec, width: columnWidth}
}

// TradeLine renders one executed trade as quantity@price, with the price
// at tick-size precision.
func (r *Renderer) TradeLine(trade orderbookv1.Trade) string {
	return fmt.Sprintf("%d@%s", trade.Quantity, r.codec.Format(trade.Price))
}

// Header renders the column header: BUY pinned to the left edge of its
// column, SELL to the right edge of its, matching the body rows.
func (r *Renderer) Header() string {
	return r.pad("BUY", false) + "|" + r.pad("SELL", true)
}

// RenderBook renders the two-column book: row i pairs the i-th bid level
// with the i-th ask level in priority order, blank-padding whichever side
// runs out of levels first.
func (r *Renderer) RenderBook(bids, asks []orderbookv1.LevelView) string {
	var sb strings.Builder
	sb.WriteString(r.Header())
	sb.WriteByte('\n')

	blank := strings.Repeat(" ", r.width)
	for i := 0; i < len(bids) || i < len(asks); i++ {
		left, right := blank, blank
		if i < len(bids) {
			left = r.pad(r.cell(bids[i]), false)
		}
		if i < len(asks) {
			right = r.pad(r.cell(asks[i]), true)
		}
		sb.WriteString(left)
		sb.WriteByte('|')
		sb.WriteString(right)
		sb.WriteByte('\n')
	}

	return sb.String()
}

func (r *Renderer) cell(view orderbookv1.LevelView) string {
	return fmt.Sprintf("%d@%s", view.Volume, r.codec.Format(view.Price))
}

func (r *Renderer) pad(cell string, alignRight bool) string {
	if len(cell) >= r.width {
		return cell
	}
	padding := strings.Repeat(" ", r.width-len(cell))
	if alignRight {
		return padding + cell
	}
	return cell + padding
}
