package engine

import (
	"context"
	"fmt"
	"io"

	orderreaderv1 "github.com/VickyakaKV/market-engine/internal/domain/order-reader/v1"
	orderbookv1 "github.com/VickyakaKV/market-engine/internal/domain/orderbook/v1"
	"github.com/VickyakaKV/market-engine/internal/usecase/display"
	"github.com/VickyakaKV/market-engine/internal/usecase/matching"
	"github.com/VickyakaKV/market-engine/internal/usecase/orderbook"
	"github.com/VickyakaKV/market-engine/internal/usecase/validator"
	"github.com/VickyakaKV/market-engine/pkg/errors"
	"github.com/VickyakaKV/market-engine/pkg/logger"
	"github.com/oklog/ulid/v2"
	pkgerrors "github.com/pkg/errors"
)

const prompt = "Enter trades in format <Side> <Quantity> <Price>"

// Engine drives one submission at a time to completion: validate, insert,
// match to a fixpoint, display. Submissions never overlap, so the book
// needs no locking.
type Engine struct {
	reader    orderreaderv1.Reader
	validator *validator.Validator
	book      *orderbook.Book
	matcher   *matching.Matcher
	renderer  *display.Renderer
	out       io.Writer
	log       logger.Interface

	// sequence advances once per attempted submission, accepted or not,
	// so gaps in resting orders' sequence numbers correspond to rejects.
	sequence int64
}

// NewEngine creates an engine wired to the given collaborators. Trades,
// book snapshots and error messages are written to out; structured logs
// go to the logger.
func NewEngine(
	reader orderreaderv1.Reader,
	validator *validator.Validator,
	book *orderbook.Book,
	matcher *matching.Matcher,
	renderer *display.Renderer,
	out io.Writer,
	log logger.Interface,
) *Engine {
	return &Engine{
		reader:    reader,
		validator: validator,
		book:      book,
		matcher:   matcher,
		renderer:  renderer,
		out:       out,
		log:       log,
	}
}

// Run prints the prompt and processes submissions until the input stream
// is exhausted or the context is cancelled. Cancellation is observed
// between submissions; an accepted submission always runs to completion.
func (e *Engine) Run(ctx context.Context) error {
	fmt.Fprintln(e.out, prompt)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		submission, err := e.reader.Next()
		if err != nil {
			if pkgerrors.Is(err, io.EOF) {
				return nil
			}
			if pkgerrors.Is(err, io.ErrUnexpectedEOF) {
				// a trailing partial triple is a clean stop, not a failure
				e.log.Warn("input ended mid-submission")
				return nil
			}
			return pkgerrors.Wrap(err, "reading submission")
		}

		e.Process(submission)
	}
}

// Process handles a single submission to completion. Rejections are fully
// recovered here: an error line is printed, nothing is committed, and the
// engine is ready for the next submission.
func (e *Engine) Process(submission orderreaderv1.Submission) {
	e.sequence++
	id := ulid.Make().String()

	params, err := e.validator.Validate(submission.Side, submission.Quantity, submission.Price)
	if err != nil {
		fmt.Fprintf(e.out, "ERROR: %s\n", err.Error())
		fmt.Fprintln(e.out, "Ignoring input. Please re-enter:")
		e.log.Warn("submission rejected",
			logger.NewField("submission_id", id),
			logger.NewField("sequence", e.sequence),
			logger.NewField("reason", err.Error()),
		)
		return
	}

	order := orderbookv1.NewOrder(params.Side, params.Quantity, params.Price, e.sequence)
	if err := e.book.Insert(order); err != nil {
		// unreachable for validated input
		e.log.Error(errors.TracerFromError(err),
			logger.NewField("submission_id", id),
			logger.NewField("sequence", e.sequence),
		)
		return
	}

	trades := e.matcher.MatchCrossing()
	for _, trade := range trades {
		fmt.Fprintln(e.out, e.renderer.TradeLine(trade))
	}
	fmt.Fprint(e.out, e.renderer.RenderBook(
		e.book.Levels(orderbookv1.Buy),
		e.book.Levels(orderbookv1.Sell),
	))

	e.log.Debug("submission processed",
		logger.NewField("submission_id", id),
		logger.NewField("sequence", e.sequence),
		logger.NewField("side", params.Side.String()),
		logger.NewField("trades", len(trades)),
		logger.NewField("bid_volume", e.book.TotalVolume(orderbookv1.Buy)),
		logger.NewField("ask_volume", e.book.TotalVolume(orderbookv1.Sell)),
	)
}

// Sequence returns the number of attempted submissions so far.
func (e *Engine) Sequence() int64 {
	return e.sequence
}
