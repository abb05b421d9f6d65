package order

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrNoPrice indicates the item's price text carries no parseable amount.
var ErrNoPrice = errors.New("no price amount in item")

var priceAmountPattern = regexp.MustCompile(`\$\s*([\d,]+\.?\d*)`)

// PriceAmount extracts the first dollar amount from the item's printed price
// text. The Price field itself is display text and is never rewritten; this
// helper exists for the printing layer's subtotal line.
func (it *Item) PriceAmount() (decimal.Decimal, error) {
	match := priceAmountPattern.FindStringSubmatch(it.Price)
	if match == nil {
		return decimal.Zero, ErrNoPrice
	}
	return decimal.NewFromString(strings.ReplaceAll(match[1], ",", ""))
}

// Subtotal sums the parseable item prices of the order. Items whose price
// text is absent or unparseable are skipped; this is a best-effort figure
// for display, not an accounting total.
func (o *Order) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for i := range o.ItemList {
		amount, err := o.ItemList[i].PriceAmount()
		if err != nil {
			continue
		}
		total = total.Add(amount)
	}
	return total
}
