package validator

import (
	"regexp"
	"strconv"

	orderbookv1 "github.com/VickyakaKV/market-engine/internal/domain/orderbook/v1"
	pricev1 "github.com/VickyakaKV/market-engine/internal/domain/price/v1"
	"github.com/VickyakaKV/market-engine/pkg/errors"
)

// quantitySyntax accepts a positive integer in canonical form: no sign,
// no decimals, no leading zeros.
var quantitySyntax = regexp.MustCompile(`^[1-9][0-9]*$`)

// OrderParams is a normalized submission, ready to become a book order
// once the engine assigns it a sequence number.
type OrderParams struct {
	Side     orderbookv1.Side
	Quantity int64
	Price    int64 // scaled by the tick factor
}

// Validator turns raw submission tokens into order parameters or a
// categorized rejection. It is pure and never touches the book.
type Validator struct {
	codec *pricev1.Codec
}

// New creates a validator backed by the given price codec.
func New(codec *pricev1.Codec) *Validator {
	return &Validator{codec: codec}
}

// Validate checks side, then quantity, then price; only the first failure
// is reported even when several fields are invalid. The check order is
// part of the error-reporting contract.
func (v *Validator) Validate(side, quantity, price string) (OrderParams, error) {
	var params OrderParams

	switch side {
	case "B":
		params.Side = orderbookv1.Buy
	case "S":
		params.Side = orderbookv1.Sell
	default:
		return OrderParams{}, errors.NewErrorDetails(
			"Side should be either 'B' or 'S'",
			errors.InvalidSide,
			"side",
		)
	}

	if !quantitySyntax.MatchString(quantity) {
		return OrderParams{}, invalidQuantity()
	}
	qty, err := strconv.ParseInt(quantity, 10, 64)
	if err != nil {
		// syntactically canonical but out of int64 range
		return OrderParams{}, invalidQuantity()
	}
	params.Quantity = qty

	scaled, err := v.codec.Parse(price)
	if err != nil {
		return OrderParams{}, err
	}
	params.Price = scaled

	return params, nil
}

func invalidQuantity() error {
	return errors.NewErrorDetails(
		"Order quantity should be a positive integer",
		errors.InvalidQuantity,
		"quantity",
	)
}
