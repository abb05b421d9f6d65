// Package grubhub extracts canonical orders from GrubHub HTML confirmation
// documents. The caller owns HTML parsing; this package only queries the
// resulting tree with the vendor's structural grammar.
package grubhub

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/dtchiong/order-printer/internal/domain/menu"
	"github.com/dtchiong/order-printer/internal/domain/order"
)

// ErrFormatNotRecognized is returned when a document matches none of the
// known structural shapes. No partial order is produced in that case.
var ErrFormatNotRecognized = errors.New("order format not recognized")

// Parser extracts orders from GrubHub confirmation documents. Safe for
// concurrent use: the menu is read-only and each call keeps its own state.
type Parser struct {
	menu   *menu.Menu
	logger *slog.Logger
}

// NewParser creates a GrubHub parser. A nil logger falls back to
// slog.Default().
func NewParser(m *menu.Menu, logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{menu: m, logger: logger}
}

// ParseOrder extracts one order from a parsed confirmation document.
// Field-level failures degrade to warnings; only an unrecognized document
// shape aborts with ErrFormatNotRecognized.
func (p *Parser) ParseOrder(doc *html.Node, received time.Time, messageID string) (*order.Order, order.Warnings, error) {
	body := findBody(doc)
	if body == nil {
		return nil, nil, ErrFormatNotRecognized
	}

	var f *format
	var metaNodes []*html.Node
	for i := range formats {
		if nodes := selectAll(body, formats[i].metaInfoPath); len(nodes) > 0 {
			f = &formats[i]
			metaNodes = nodes
			break
		}
	}
	if f == nil {
		p.logger.Debug("cannot parse order, format not recognized", "message_id", messageID)
		return nil, nil, ErrFormatNotRecognized
	}
	p.logger.Debug("matched document format", "format", f.name, "message_id", messageID)

	var warns order.Warnings
	o := &order.Order{
		Service:        order.ServiceGrubHub,
		MessageID:      messageID,
		TimeReceived:   received,
		DeliveryMethod: order.Pickup,
	}

	base := selectOne(body, f.basePath)
	p.parseOrderNumber(selectOne(body, orderNumberPath), o, &warns)
	p.parsePickUpTime(selectOne(base, f.pickupTimePath), received, o, &warns)

	// The tail of the summary body is meta rows, one more of them on
	// delivery orders. The comparison is case-sensitive on purpose: the
	// vendor renders the marker in capitals and anything else is pickup.
	nonItemRows := 5
	deliveryNode := selectOne(base, f.deliveryMethodPath)
	if deliveryNode != nil && strings.TrimSpace(innerText(deliveryNode)) == "DELIVERY" {
		o.DeliveryMethod = order.Delivery
		nonItemRows = 6
		p.parseDeliverAddress(metaNodes, o)
	}

	if len(metaNodes) >= 2 {
		o.CustomerName = collapseSpace(innerText(metaNodes[1]))
	} else {
		warns.Add("customer_name", "meta info block too short", "")
	}
	o.ContactNumber = collapseSpace(innerText(metaNodes[len(metaNodes)-1]))

	p.parseItems(body, nonItemRows, o, &warns)

	order.Finalize(o)
	return o, warns, nil
}

func (p *Parser) parseOrderNumber(node *html.Node, o *order.Order, warns *order.Warnings) {
	if node == nil {
		warns.Add("order_number", "order number node not found", "")
		return
	}
	o.OrderNumber = strings.TrimSpace(innerText(node))
}

// pickupTimeLayouts are tried in order. Layouts without a date take their
// date from the received timestamp.
var pickupTimeLayouts = []struct {
	layout   string
	timeOnly bool
}{
	{"Jan 2, 2006 3:04 PM", false},
	{"Jan 2, 3:04 PM", false},
	{"1/2/2006 3:04 PM", false},
	{"3:04 PM", true},
	{"3:04PM", true},
}

func (p *Parser) parsePickUpTime(node *html.Node, received time.Time, o *order.Order, warns *order.Warnings) {
	if node == nil {
		warns.Add("pick_up_time", "pickup time node not found", "")
		return
	}
	text := collapseSpace(innerText(node))
	for _, l := range pickupTimeLayouts {
		t, err := time.Parse(l.layout, text)
		if err != nil {
			continue
		}
		if l.timeOnly {
			t = time.Date(received.Year(), received.Month(), received.Day(),
				t.Hour(), t.Minute(), 0, 0, received.Location())
		} else if t.Year() == 0 {
			t = t.AddDate(received.Year(), 0, 0)
		}
		o.PickUpTime = t
		return
	}
	warns.Add("pick_up_time", "unparseable pickup time", text)
}

// parseDeliverAddress joins the address parts between the customer name and
// the contact number in the meta info block.
func (p *Parser) parseDeliverAddress(metaNodes []*html.Node, o *order.Order) {
	last := len(metaNodes) - 3
	var parts []string
	for i := 2; i <= last; i++ {
		if part := collapseSpace(innerText(metaNodes[i])); part != "" {
			parts = append(parts, part)
		}
	}
	o.DeliverAddress = strings.Join(parts, ",")
}

func (p *Parser) parseItems(body *html.Node, nonItemRows int, o *order.Order, warns *order.Warnings) {
	summary := findByClass(body, "tbody", orderSummaryClass)
	if summary == nil {
		warns.Add("items", "order summary body not found", "")
		return
	}

	rows := elementChildren(summary, "tr")
	budget := len(rows) - nonItemRows

	for i := 0; i < budget && i < len(rows); i++ {
		tds := elementChildren(rows[i], "td")
		if len(tds) < 3 {
			break
		}

		item := order.Item{ItemType: order.TypeUnknown}

		// Quantity failing to parse is the expected end-of-items
		// signal: the row budget over-counts when the layout drifts,
		// so the first meta row ends the scan.
		qty, ok := parseQuantity(tds[0])
		if !ok {
			break
		}
		item.Quantity = qty

		p.parseItem(tds[1], &item, warns)
		item.Price = strings.TrimSpace(innerText(tds[2]))

		o.ItemList = append(o.ItemList, item)
	}
}

// parseQuantity reads the quantity from the row's first cell. The boolean is
// a control signal, not an error: false means the row is a trailing meta row.
func parseQuantity(td *html.Node) (int, bool) {
	div := firstElement(td, "div")
	if div == nil {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(innerText(div)))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// parseItem extracts the name, type, addons, and special instructions from
// the row's description cell.
func (p *Parser) parseItem(td *html.Node, item *order.Item, warns *order.Warnings) {
	divs := elementChildren(td, "div")
	if len(divs) == 0 {
		warns.Add("item_name", "item cell has no content", "")
		return
	}

	raw := collapseSpace(innerText(divs[0]))
	item.ItemName = raw
	if canonical, ok := p.menu.CanonicalItemName(raw); ok {
		item.ItemName = canonical
	}
	item.ItemType = p.menu.ItemType(raw)

	switch len(divs) {
	case 2:
		// The second block is an addon list when it contains list
		// markup, free-text special instructions when it does not.
		if ul := firstElement(divs[1], "ul"); ul != nil {
			p.parseAddOns(ul, item, warns)
		} else {
			parseSpecialInstructions(divs[1], item)
		}
	case 4:
		p.parseAddOns(firstElement(divs[1], "ul"), item, warns)
		parseSpecialInstructions(divs[3], item)
	}
}

// parseAddOns classifies each list entry through the menu and routes it to
// the matching item field. Unclassified addons stay on the addon list with a
// diagnostic; they are never a failure.
func (p *Parser) parseAddOns(ul *html.Node, item *order.Item, warns *order.Warnings) {
	if ul == nil {
		return
	}

	for _, li := range elementChildren(ul, "li") {
		raw := collapseSpace(innerText(li))
		if raw == "" {
			continue
		}

		cat, ok := p.menu.AddOnCategory(raw)
		if !ok {
			item.AddOnList = append(item.AddOnList, raw)
			warns.Add("addon", "unclassified addon", raw)
			p.logger.Debug("unidentified addon type", "addon", raw)
			continue
		}

		name := raw
		if canonical, ok := p.menu.CanonicalAddOnName(raw); ok {
			name = canonical
		}

		switch cat {
		case menu.CategoryTemperature:
			item.Temperature = name
		case menu.CategorySize:
			item.Size = name
		case menu.CategoryIce:
			item.IceLevel = name
		case menu.CategorySugar:
			item.SugarLevel = name
		case menu.CategoryTopping:
			item.AddOnList = append(item.AddOnList, name)
		case menu.CategoryMilkSubstitute:
			item.MilkSubstitution = name
		case menu.CategoryTeaFlavor:
			// Flavored teas name their base through an addon; the
			// display name swaps the generic "Tea" for it.
			item.ItemName = strings.ReplaceAll(collapseSpace(item.ItemName), "Tea", name)
		}
	}
}

func parseSpecialInstructions(node *html.Node, item *order.Item) {
	text := collapseSpace(innerText(node))
	text = strings.TrimSpace(strings.TrimPrefix(text, "Instructions: "))
	if text == "" {
		return
	}
	item.SpecialInstructions = `"` + text + `"`
}
