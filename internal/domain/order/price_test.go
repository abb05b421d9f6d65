package order

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceAmount(t *testing.T) {
	tests := []struct {
		name  string
		price string
		want  string
		err   error
	}{
		{name: "plain amount", price: "$5.50", want: "5.5"},
		{name: "spaced amount", price: "$ 11.00", want: "11"},
		{name: "thousands separator", price: "$1,050.25", want: "1050.25"},
		{name: "amount within text", price: "2 x $4.25 each", want: "4.25"},
		{name: "whole dollars", price: "$7", want: "7"},
		{name: "no amount", price: "free", err: ErrNoPrice},
		{name: "empty", price: "", err: ErrNoPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := Item{Price: tt.price}
			amount, err := it.PriceAmount()
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.True(t, amount.Equal(decimal.RequireFromString(tt.want)),
				"PriceAmount(%q) = %s, want %s", tt.price, amount, tt.want)
		})
	}
}

func TestSubtotal(t *testing.T) {
	o := Order{
		ItemList: []Item{
			{Price: "$5.50"},
			{Price: "$11.00"},
			{Price: "no charge"},
			{Price: ""},
		},
	}

	assert.True(t, o.Subtotal().Equal(decimal.RequireFromString("16.50")),
		"unparseable prices are skipped, got %s", o.Subtotal())
}

func TestSubtotalEmptyOrder(t *testing.T) {
	var o Order
	assert.True(t, o.Subtotal().IsZero())
}
