package doordash

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtchiong/order-printer/internal/domain/menu"
	"github.com/dtchiong/order-printer/internal/domain/order"
)

func TestParseOrderSingleItem(t *testing.T) {
	parser := NewParser(menu.DoorDash(), nil)
	received := time.Date(2019, time.September, 19, 20, 30, 0, 0, time.Local)

	lines := []string{
		"Order Number: 123456",
		"",
		"Bob Y Today at 09:09PM",
		"",
		"1-(855) 973-1040 Sep 19, 2019",
		"1x Popcorn Chicken (in Snack) $5.00 $5.00",
		"-Additional Toppings Spicy Salt (+ $0.50)",
		"~ End of Order ~",
	}

	o, warns := parser.ParseOrder(lines, received, "msg-101")
	assert.Empty(t, warns, "clean document should parse without warnings")

	assert.Equal(t, order.ServiceDoorDash, o.Service)
	assert.Equal(t, "msg-101", o.MessageID)
	assert.Equal(t, "123456", o.OrderNumber)
	assert.Equal(t, "Bob Y", o.CustomerName)
	assert.Equal(t, "1-(855) 973-1040", o.ContactNumber)
	assert.Equal(t, order.Pickup, o.DeliveryMethod)
	assert.Equal(t, time.Date(2019, time.September, 19, 21, 9, 0, 0, time.Local), o.PickUpTime)

	require.Len(t, o.ItemList, 1)
	item := o.ItemList[0]
	assert.Equal(t, "Popcorn Chicken", item.ItemName)
	assert.Equal(t, order.TypeSnack, item.ItemType)
	assert.Equal(t, 1, item.Quantity)
	assert.Equal(t, []string{"Spicy Salt"}, item.AddOnList)
	assert.Equal(t, "1/1", item.ItemCount)

	assert.Equal(t, 1, o.UniqueItemCount)
	assert.Equal(t, 1, o.OrderSize)
	assert.Equal(t, 1, o.NumOfSnacks)
	assert.Equal(t, 0, o.NumOfDrinks)
}

func TestParseOrderLabelDirective(t *testing.T) {
	parser := NewParser(menu.DoorDash(), nil)

	lines := []string{
		"Order Number: 777888",
		"",
		"Dana S Today at 12:30PM",
		"",
		"(555) 111-2222 Oct 2, 2019",
		"1x Classic Milk Tea (in Drink) $4.50 $4.50",
		"Please label: Dana (2 item)",
		"1x Taro Milk Tea (in Drink) $5.00 $5.00",
		"-Sugar Level 50%",
		"1x Eggpuff (in Snack) $4.25 $4.25",
		"~ End of Order ~",
	}

	o, warns := parser.ParseOrder(lines, time.Now(), "msg-102")
	assert.Empty(t, warns)

	require.Len(t, o.ItemList, 3)
	assert.Empty(t, o.ItemList[0].LabelName, "items before the directive carry no label")
	assert.Equal(t, "Dana", o.ItemList[1].LabelName)
	assert.Equal(t, "Dana", o.ItemList[2].LabelName, "the label sticks until replaced")
	assert.Equal(t, "50% S", o.ItemList[1].SugarLevel)
}

func TestParseOrderSpecialInstructions(t *testing.T) {
	parser := NewParser(menu.DoorDash(), nil)

	lines := []string{
		"Order Number: 424242",
		"",
		"Eve K Today at 03:15PM",
		"",
		"(555) 333-4444 Nov 5, 2019",
		"1x Classic Milk Tea (in Drink) $4.50 $4.50",
		"-Special Instructions",
		"“no straw please”",
		"~ End of Order ~",
	}

	o, warns := parser.ParseOrder(lines, time.Now(), "msg-103")
	assert.Empty(t, warns)

	require.Len(t, o.ItemList, 1)
	assert.Equal(t, `"no straw please"`, o.ItemList[0].SpecialInstructions,
		"typographic quotes should be normalized")
}

func TestParseOrderWrappedItemName(t *testing.T) {
	parser := NewParser(menu.DoorDash(), nil)

	lines := []string{
		"Order Number: 515151",
		"",
		"Kim L Today at 06:45PM",
		"",
		"(555) 666-7777 Dec 1, 2019",
		"1x Chicken Karaage $9.75 $9.75",
		"Bento (in Snack)",
		"~ End of Order ~",
	}

	o, warns := parser.ParseOrder(lines, time.Now(), "msg-104")
	assert.Empty(t, warns)

	require.Len(t, o.ItemList, 1)
	item := o.ItemList[0]
	assert.Equal(t, "Chicken Karaage Bento", item.ItemName)
	assert.Equal(t, order.TypeSnack, item.ItemType, "continuation should re-run classification")
}

func TestParseOrderFlushesAtEndOfInput(t *testing.T) {
	parser := NewParser(menu.DoorDash(), nil)

	// No end-of-order sentinel: the trailing item must still land.
	lines := []string{
		"Order Number: 616161",
		"",
		"Pat R Today at 01:00PM",
		"",
		"(555) 888-9999 Aug 14, 2019",
		"2x French Fries (in Snack) $3.50 $7.00",
	}

	o, warns := parser.ParseOrder(lines, time.Now(), "msg-105")
	assert.Empty(t, warns)

	require.Len(t, o.ItemList, 1)
	assert.Equal(t, "French Fries", o.ItemList[0].ItemName)
	assert.Equal(t, 2, o.ItemList[0].Quantity)
	assert.Equal(t, 2, o.OrderSize)
}

func TestParseOrderSentinelExactMatch(t *testing.T) {
	parser := NewParser(menu.DoorDash(), nil)

	// The marker embedded in other text must not end the scan.
	lines := []string{
		"Order Number: 727272",
		"",
		"Mia V Today at 04:00PM",
		"",
		"(555) 444-5555 May 8, 2019",
		"1x Classic Milk Tea (in Drink) $4.50 $4.50",
		"-Special Instructions",
		"write ~ End of Order ~ on the cup",
		"1x Takoyaki (in Snack) $6.00 $6.00",
		"~ End of Order ~",
	}

	o, warns := parser.ParseOrder(lines, time.Now(), "msg-109")
	assert.Empty(t, warns)

	require.Len(t, o.ItemList, 2)
	assert.Equal(t, `write ~ End of Order ~ on the cup`, o.ItemList[0].SpecialInstructions)
	assert.Equal(t, "Takoyaki", o.ItemList[1].ItemName)
}

func TestParseOrderUnmatchedLines(t *testing.T) {
	parser := NewParser(menu.DoorDash(), nil)

	lines := []string{
		"Order Number: 919191",
		"",
		"Sam T Today at 11:00AM",
		"",
		"(555) 000-1111 Jul 4, 2019",
		"1x Takoyaki (in Snack) $6.00 $6.00",
		"Subtotal $6.00",
		"-Mystery Option Something",
		"~ End of Order ~",
	}

	o, warns := parser.ParseOrder(lines, time.Now(), "msg-106")
	require.Len(t, o.ItemList, 1)

	require.Len(t, warns, 2)
	assert.Equal(t, "line", warns[0].Field)
	assert.Equal(t, 7, warns[0].Line)
	assert.Equal(t, "Subtotal $6.00", warns[0].Raw)
	assert.Equal(t, "add_on", warns[1].Field)
	assert.Equal(t, 8, warns[1].Line)
}

func TestParseOrderOptionBeforeItem(t *testing.T) {
	parser := NewParser(menu.DoorDash(), nil)

	lines := []string{
		"Order Number: 101010",
		"",
		"Lee W Today at 02:20PM",
		"",
		"(555) 222-3333 Jun 10, 2019",
		"-Sugar Level 30%",
		"~ End of Order ~",
	}

	o, warns := parser.ParseOrder(lines, time.Now(), "msg-107")
	assert.Empty(t, o.ItemList)
	require.Len(t, warns, 1)
	assert.Equal(t, "add_on", warns[0].Field)
}

func TestParseOrderShortDocument(t *testing.T) {
	parser := NewParser(menu.DoorDash(), nil)

	o, warns := parser.ParseOrder([]string{"Order Number: 3"}, time.Now(), "msg-108")
	assert.Equal(t, "3", o.OrderNumber)
	assert.Empty(t, o.ItemList)
	require.NotEmpty(t, warns)
	assert.Equal(t, "items", warns[len(warns)-1].Field)
}

func TestParseItemNameTruncation(t *testing.T) {
	parser := NewParser(menu.DoorDash(), nil)

	tests := []struct {
		name string
		line string
		want string
	}{
		{name: "category suffix", line: "1x Popcorn Chicken (in Snack) $5.00 $5.00", want: "Popcorn Chicken"},
		{name: "price only", line: "1x Popcorn Chicken $5.00 $5.00", want: "Popcorn Chicken"},
		{name: "off-menu name kept raw", line: "1x Secret Item (in Snack) $1.00 $1.00", want: "Secret Item"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := &order.Item{ItemType: order.TypeUnknown}
			parser.parseItemName(tt.line, item)
			assert.Equal(t, tt.want, item.ItemName)
		})
	}
}
