package order

import "fmt"

// Finalize derives the aggregate fields of an order from its completed item
// list: UniqueItemCount, OrderSize, the drink/snack counters, and each item's
// "i/total" display index. It must be called exactly once, after the parser
// has appended every item in document order.
func Finalize(o *Order) {
	o.UniqueItemCount = len(o.ItemList)

	o.OrderSize = 0
	o.NumOfDrinks = 0
	o.NumOfSnacks = 0

	for i := range o.ItemList {
		item := &o.ItemList[i]

		o.OrderSize += item.Quantity

		switch item.ItemType {
		case TypeDrink:
			o.NumOfDrinks += item.Quantity
		case TypeSnack:
			o.NumOfSnacks += item.Quantity
		}

		item.ItemCount = fmt.Sprintf("%d/%d", i+1, o.UniqueItemCount)
	}
}
