package pricev1

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/VickyakaKV/market-engine/pkg/errors"
)

// priceSyntax accepts an optional integer part, an optional single decimal
// point, and digits. Signs, exponents and thousands separators are out.
var priceSyntax = regexp.MustCompile(`^[0-9]*\.?[0-9]+$`)

// Codec converts decimal price strings to fixed-point integers scaled by
// the tick factor, and back for display. Every comparison, hash and
// ordering elsewhere operates on the scaled integer exclusively; floats
// never enter the pipeline.
type Codec struct {
	factor   int64
	decimals int
}

// NewCodec builds a codec for the given tick factor (the reciprocal of the
// tick size). The factor must be a positive power of ten so the display
// precision is well defined.
func NewCodec(tickFactor int64) (*Codec, error) {
	if tickFactor <= 0 {
		return nil, fmt.Errorf("tick factor must be positive, got %d", tickFactor)
	}

	decimals := 0
	for f := tickFactor; f > 1; f /= 10 {
		if f%10 != 0 {
			return nil, fmt.Errorf("tick factor must be a power of ten, got %d", tickFactor)
		}
		decimals++
	}

	return &Codec{factor: tickFactor, decimals: decimals}, nil
}

// Parse converts a decimal price string to its scaled integer form.
// Sub-tick digits are truncated, not rounded. Values below one tick are
// rejected along with anything syntactically malformed.
func (c *Codec) Parse(text string) (int64, error) {
	if !priceSyntax.MatchString(text) {
		return 0, c.invalidPrice()
	}

	intPart, fracPart, _ := strings.Cut(text, ".")

	var scaled int64
	if intPart != "" {
		v, err := strconv.ParseInt(intPart, 10, 64)
		if err != nil || v > math.MaxInt64/c.factor {
			// out of int64 range once scaled; wrapping would rest the
			// order at a wildly wrong price
			return 0, c.invalidPrice()
		}
		scaled = v * c.factor
	}

	if len(fracPart) > c.decimals {
		fracPart = fracPart[:c.decimals]
	}
	if fracPart != "" {
		padded := fracPart + strings.Repeat("0", c.decimals-len(fracPart))
		v, err := strconv.ParseInt(padded, 10, 64)
		if err != nil {
			return 0, c.invalidPrice()
		}
		if scaled > math.MaxInt64-v {
			return 0, c.invalidPrice()
		}
		scaled += v
	}

	if scaled < 1 {
		return 0, c.invalidPrice()
	}

	return scaled, nil
}

// Format renders a scaled price with exactly the tick size's decimal
// precision, e.g. 10234 -> "10.234" at tick factor 1000.
func (c *Codec) Format(scaled int64) string {
	if c.decimals == 0 {
		return strconv.FormatInt(scaled, 10)
	}
	return fmt.Sprintf("%d.%0*d", scaled/c.factor, c.decimals, scaled%c.factor)
}

// TickSize renders one tick in display form, e.g. "0.001".
func (c *Codec) TickSize() string {
	return c.Format(1)
}

func (c *Codec) invalidPrice() error {
	return errors.NewErrorDetails(
		fmt.Sprintf("Price should be a positive value >= tick size (%s)", c.TickSize()),
		errors.InvalidPrice,
		"price",
	)
}
