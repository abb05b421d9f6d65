package grubhub

// GrubHub confirmation mails arrive in a small number of structural shapes:
// scheduled orders and order adjustments each insert an extra wrapping
// <table> ahead of the pickup/delivery block, pushing everything one table
// deeper. Each shape is described by a format descriptor; detection walks
// the list in priority order and takes the first descriptor whose meta-info
// query yields nodes. Supporting a future shape means appending a
// descriptor, not writing a new branch.
type format struct {
	name string

	// metaInfoPath locates the div run holding customer name, address
	// parts, and contact number. Relative to <body>.
	metaInfoPath string

	// basePath locates the table the delivery-method and pickup-time
	// paths hang off. Relative to <body>.
	basePath string

	// deliveryMethodPath and pickupTimePath are relative to basePath.
	deliveryMethodPath string
	pickupTimePath     string
}

var formats = []format{
	{
		name:               "standard",
		metaInfoPath:       "table/tbody/tr/td/table/tbody/tr/td/table[3]/tbody/tr/th[2]/table/tbody/tr/th/div/div[2]/div/div",
		basePath:           "table/tbody/tr/td/table/tbody/tr/td/table[3]",
		deliveryMethodPath: "tbody/tr/th/table/tbody/tr/th/div/div[2]/div/span/span",
		pickupTimePath:     "tbody/tr/th/table/tbody/tr/th/div/div[2]/div[2]/span",
	},
	{
		name:               "scheduled-order",
		metaInfoPath:       "table/tbody/tr/td/table/tbody/tr/td/table[4]/tbody/tr/th[2]/table/tbody/tr/th/div/div/div/div",
		basePath:           "table/tbody/tr/td/table/tbody/tr/td/table[4]",
		deliveryMethodPath: "tbody/tr/th/table/tbody/tr/th/div/div/div/span/span",
		pickupTimePath:     "tbody/tr/th/table/tbody/tr/th/div/div/div[2]/span",
	},
	{
		name:               "adjusted-order",
		metaInfoPath:       "table/tbody/tr/td/table/tbody/tr/td/table[5]/tbody/tr/th[2]/table/tbody/tr/th/div/div/div/div",
		basePath:           "table/tbody/tr/td/table/tbody/tr/td/table[5]",
		deliveryMethodPath: "tbody/tr/th/table/tbody/tr/th/div/div/div/span/span",
		pickupTimePath:     "tbody/tr/th/table/tbody/tr/th/div/div/div[2]/span",
	},
}

// orderNumberPath is shared by every format. Relative to <body>.
const orderNumberPath = "table/tbody/tr/td/table/tbody/tr/td/table[2]/tbody/tr/th/table/tbody/tr/th/div/div[4]/span[2]"

// orderSummaryClass marks the tbody whose rows hold the item list followed
// by the trailing meta rows.
const orderSummaryClass = "orderSummary__body"
