// Package order defines the canonical Order/Item record produced by the
// vendor parsers and consumed by the display, printing, and notification
// layers. The model is constructed once per parse and never mutated after
// the parse call that created it returns.
package order

import "time"

// Service identifies which vendor a document came from.
type Service string

const (
	ServiceGrubHub  Service = "GrubHub"
	ServiceDoorDash Service = "DoorDash"
)

// DeliveryMethod is how the customer receives the order.
type DeliveryMethod string

const (
	Pickup   DeliveryMethod = "Pickup"
	Delivery DeliveryMethod = "Delivery"
)

// ItemType classifies an item for the drink/snack counters. Items the menu
// cannot classify stay Unknown and are excluded from both counters.
type ItemType string

const (
	TypeDrink   ItemType = "Drink"
	TypeSnack   ItemType = "Snack"
	TypeUnknown ItemType = "Unknown"
)

// Order is the canonical record of one customer purchase from one vendor.
type Order struct {
	Service        Service        `json:"service"`
	MessageID      string         `json:"message_id"`
	OrderNumber    string         `json:"order_number"`
	CustomerName   string         `json:"customer_name"`
	ContactNumber  string         `json:"contact_number"`
	DeliveryMethod DeliveryMethod `json:"delivery_method"`
	DeliverAddress string         `json:"deliver_address,omitempty"`
	TimeReceived   time.Time      `json:"time_received"`
	PickUpTime     time.Time      `json:"pick_up_time"`
	ConfirmURL     string         `json:"confirm_url,omitempty"`

	ItemList []Item `json:"item_list"`

	UniqueItemCount int `json:"unique_item_count"`
	OrderSize       int `json:"order_size"`
	NumOfDrinks     int `json:"num_of_drinks"`
	NumOfSnacks     int `json:"num_of_snacks"`
}

// Item is one line entry within an Order. Price is kept as printed in the
// source document; Size, Temperature, IceLevel, SugarLevel and
// MilkSubstitution carry the unit-suffix conventions applied by the parsers.
type Item struct {
	ItemName string   `json:"item_name"`
	ItemType ItemType `json:"item_type"`
	Quantity int      `json:"quantity"`
	Price    string   `json:"price,omitempty"`

	// ItemCount is the display string "index/total", assigned by Finalize
	// once the full list is known.
	ItemCount string `json:"item_count"`

	Size             string   `json:"size,omitempty"`
	Temperature      string   `json:"temperature,omitempty"`
	IceLevel         string   `json:"ice_level,omitempty"`
	SugarLevel       string   `json:"sugar_level,omitempty"`
	MilkSubstitution string   `json:"milk_substitution,omitempty"`
	AddOnList        []string `json:"add_on_list,omitempty"`

	SpecialInstructions string `json:"special_instructions,omitempty"`

	// LabelName is a grouping hint set by a preceding directive line
	// (text vendor only) and inherited by the item.
	LabelName string `json:"label_name,omitempty"`
}
