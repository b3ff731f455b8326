package engine

import (
	"bytes"
	"context"
	"strings"
	"testing"

	orderreaderv1 "github.com/VickyakaKV/market-engine/internal/domain/order-reader/v1"
	pricev1 "github.com/VickyakaKV/market-engine/internal/domain/price/v1"
	"github.com/VickyakaKV/market-engine/internal/usecase/display"
	"github.com/VickyakaKV/market-engine/internal/usecase/matching"
	orderreader "github.com/VickyakaKV/market-engine/internal/usecase/order-reader"
	"github.com/VickyakaKV/market-engine/internal/usecase/orderbook"
	"github.com/VickyakaKV/market-engine/internal/usecase/validator"
	"github.com/VickyakaKV/market-engine/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, input string) (*Engine, *bytes.Buffer) {
	t.Helper()

	codec, err := pricev1.NewCodec(1000)
	require.NoError(t, err)

	book := orderbook.NewBook()
	out := &bytes.Buffer{}
	engine := NewEngine(
		orderreader.NewReader(strings.NewReader(input)),
		validator.New(codec),
		book,
		matching.NewMatcher(book),
		display.NewRenderer(codec, 15),
		out,
		logger.NewNop(),
	)
	return engine, out
}

func TestEngine_Run_Walkthrough(t *testing.T) {
	input := strings.Join([]string{
		"B 40 10",
		"B 10 10",
		"B 50 10.2345",
		"S 50 11",
		"S 30 10.2222",
		"S 65 9.8",
	}, "\n")

	engine, out := newTestEngine(t, input)
	require.NoError(t, engine.Run(context.Background()))

	expected := strings.Join([]string{
		"Enter trades in format <Side> <Quantity> <Price>",
		// B 40 10
		"BUY            |           SELL",
		"40@10.000      |               ",
		// B 10 10 joins the same level
		"BUY            |           SELL",
		"50@10.000      |               ",
		// B 50 10.2345 truncates to 10.234
		"BUY            |           SELL",
		"50@10.234      |               ",
		"50@10.000      |               ",
		// S 50 11 rests without crossing
		"BUY            |           SELL",
		"50@10.234      |      50@11.000",
		"50@10.000      |               ",
		// S 30 10.2222 truncates to 10.222 and crosses the 10.234 bid,
		// which is earlier and sets the price
		"30@10.234",
		"BUY            |           SELL",
		"20@10.234      |      50@11.000",
		"50@10.000      |               ",
		// S 65 9.8 sweeps the remaining bids in price-time order
		"20@10.234",
		"40@10.000",
		"5@10.000",
		"BUY            |           SELL",
		"5@10.000       |      50@11.000",
		"",
	}, "\n")

	assert.Equal(t, expected, out.String())
	assert.Equal(t, int64(6), engine.Sequence())
}

func TestEngine_Process_RejectedSubmission(t *testing.T) {
	engine, out := newTestEngine(t, "")

	engine.Process(orderreaderv1.Submission{Side: "B", Quantity: "40", Price: "10"})
	before := out.String()

	engine.Process(orderreaderv1.Submission{Side: "N", Quantity: "65", Price: "9.8"})

	rejected := strings.TrimPrefix(out.String(), before)
	assert.Equal(t,
		"ERROR: Side should be either 'B' or 'S'\n"+
			"Ignoring input. Please re-enter:\n",
		rejected, "no trade lines, no book snapshot for a reject")

	// the sequence counter advances even for rejected submissions
	assert.Equal(t, int64(2), engine.Sequence())

	// book state is untouched: the next snapshot matches the pre-reject one
	engine.Process(orderreaderv1.Submission{Side: "B", Quantity: "10", Price: "10"})
	assert.Contains(t, out.String(), "50@10.000      |               \n")
	assert.Equal(t, int64(3), engine.Sequence())
}

func TestEngine_Process_EachCategory(t *testing.T) {
	cases := []struct {
		name       string
		submission orderreaderv1.Submission
		message    string
	}{
		{
			name:       "invalid side",
			submission: orderreaderv1.Submission{Side: "X", Quantity: "40", Price: "10"},
			message:    "Side should be either 'B' or 'S'",
		},
		{
			name:       "invalid quantity",
			submission: orderreaderv1.Submission{Side: "B", Quantity: "0", Price: "10"},
			message:    "Order quantity should be a positive integer",
		},
		{
			name:       "invalid price",
			submission: orderreaderv1.Submission{Side: "B", Quantity: "40", Price: "0.0001"},
			message:    "Price should be a positive value >= tick size (0.001)",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			engine, out := newTestEngine(t, "")
			engine.Process(tc.submission)
			assert.Equal(t, "ERROR: "+tc.message+"\nIgnoring input. Please re-enter:\n", out.String())
		})
	}
}

func TestEngine_Run_Cancelled(t *testing.T) {
	engine, out := newTestEngine(t, "B 40 10")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := engine.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "Enter trades in format <Side> <Quantity> <Price>\n", out.String())
}

func TestEngine_Run_TruncatedInput(t *testing.T) {
	// a stream ending mid-triple stops cleanly, like end of input
	engine, out := newTestEngine(t, "B 40 10\nS 30")

	require.NoError(t, engine.Run(context.Background()))
	assert.Equal(t,
		"Enter trades in format <Side> <Quantity> <Price>\n"+
			"BUY            |           SELL\n"+
			"40@10.000      |               \n",
		out.String())
	assert.Equal(t, int64(1), engine.Sequence(), "the partial triple is never submitted")
}

func TestEngine_Run_EmptyInput(t *testing.T) {
	engine, out := newTestEngine(t, "")

	require.NoError(t, engine.Run(context.Background()))
	assert.Equal(t, "Enter trades in format <Side> <Quantity> <Price>\n", out.String())
	assert.Equal(t, int64(0), engine.Sequence())
}
