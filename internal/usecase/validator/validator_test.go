package validator

import (
	"testing"

	orderbookv1 "github.com/VickyakaKV/market-engine/internal/domain/orderbook/v1"
	pricev1 "github.com/VickyakaKV/market-engine/internal/domain/price/v1"
	"github.com/VickyakaKV/market-engine/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestValidator(t *testing.T) *Validator {
	t.Helper()
	codec, err := pricev1.NewCodec(1000)
	require.NoError(t, err)
	return New(codec)
}

func TestValidator_Valid(t *testing.T) {
	v := newTestValidator(t)

	t.Run("buy order", func(t *testing.T) {
		params, err := v.Validate("B", "40", "10")

		require.NoError(t, err)
		assert.Equal(t, OrderParams{Side: orderbookv1.Buy, Quantity: 40, Price: 10000}, params)
	})

	t.Run("sell order with sub-tick price truncated", func(t *testing.T) {
		params, err := v.Validate("S", "50", "10.2345")

		require.NoError(t, err)
		assert.Equal(t, OrderParams{Side: orderbookv1.Sell, Quantity: 50, Price: 10234}, params)
	})
}

func TestValidator_InvalidSide(t *testing.T) {
	v := newTestValidator(t)

	for _, side := range []string{"N", "b", "s", "BUY", "", "BS"} {
		_, err := v.Validate(side, "40", "10")

		require.Error(t, err, side)
		assert.True(t, errors.ErrorCodeEquals(err, errors.InvalidSide), side)
		assert.Equal(t, "Side should be either 'B' or 'S'", err.Error())
	}
}

func TestValidator_InvalidQuantity(t *testing.T) {
	v := newTestValidator(t)

	for _, quantity := range []string{"0", "-5", "007", "1.5", "abc", "", "+3", "99999999999999999999"} {
		_, err := v.Validate("B", quantity, "10")

		require.Error(t, err, quantity)
		assert.True(t, errors.ErrorCodeEquals(err, errors.InvalidQuantity), quantity)
		assert.Equal(t, "Order quantity should be a positive integer", err.Error())
	}
}

func TestValidator_InvalidPrice(t *testing.T) {
	v := newTestValidator(t)

	for _, price := range []string{"0", "0.0001", "abc", "-1", "1.2.3", ""} {
		_, err := v.Validate("B", "40", price)

		require.Error(t, err, price)
		assert.True(t, errors.ErrorCodeEquals(err, errors.InvalidPrice), price)
		assert.Equal(t, "Price should be a positive value >= tick size (0.001)", err.Error())
	}
}

// Side is checked first, then quantity, then price; only the first
// failure is reported.
func TestValidator_FirstFailureWins(t *testing.T) {
	v := newTestValidator(t)

	t.Run("bad side shadows bad quantity and price", func(t *testing.T) {
		_, err := v.Validate("X", "0", "abc")
		assert.True(t, errors.ErrorCodeEquals(err, errors.InvalidSide))
	})

	t.Run("bad quantity shadows bad price", func(t *testing.T) {
		_, err := v.Validate("B", "0", "abc")
		assert.True(t, errors.ErrorCodeEquals(err, errors.InvalidQuantity))
	})
}
