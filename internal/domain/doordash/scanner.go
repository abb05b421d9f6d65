// Package doordash parses DoorDash order receipts from the line-oriented
// text extracted out of the emailed PDF. The layout carries no markup, so
// the parser is a line scanner: fixed header positions followed by a rule
// chain per body line, with "~ End of Order ~" closing the item section.
package doordash

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dtchiong/order-printer/internal/domain/menu"
	"github.com/dtchiong/order-printer/internal/domain/order"
)

const (
	endOfOrderMarker     = "~ End of Order ~"
	labelDirectivePrefix = "Please label"
	specialMarkerPrefix  = "-Special"
)

var (
	itemStartPattern = regexp.MustCompile(`\d+x.`)
	quantityPattern  = regexp.MustCompile(`\d+x`)
)

type Parser struct {
	menu   *menu.Menu
	logger *slog.Logger
}

func NewParser(m *menu.Menu, logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{menu: m, logger: logger}
}

// ParseOrder scans the extracted text lines into an order. Lines that match
// no rule are recorded as warnings and skipped; a malformed line never aborts
// the whole order.
func (p *Parser) ParseOrder(lines []string, received time.Time, messageID string) (*order.Order, order.Warnings) {
	o := &order.Order{
		Service:        order.ServiceDoorDash,
		MessageID:      messageID,
		DeliveryMethod: order.Pickup,
		TimeReceived:   received,
	}
	var warns order.Warnings

	if len(lines) > orderNumberLine {
		parseOrderNumber(lines[orderNumberLine], o, &warns)
	}
	if len(lines) > customerNameLine {
		parseCustomerName(lines[customerNameLine], o, &warns)
	}
	if len(lines) > contactLine {
		parsePickUpTime(lines[customerNameLine], lines[contactLine], o, &warns)
		parseContactNumber(lines[contactLine], o, &warns)
	}
	if len(lines) <= firstOrderLine {
		warns.Add("items", "document too short to contain items", "")
		order.Finalize(o)
		return o, warns
	}

	var item *order.Item
	labelName := ""

	flush := func() {
		if item != nil {
			o.ItemList = append(o.ItemList, *item)
			item = nil
		}
	}

	for i := firstOrderLine; i < len(lines); i++ {
		line := lines[i]
		lineNum := i + 1

		switch {
		case line == endOfOrderMarker:
			flush()
			i = len(lines)
		case strings.HasPrefix(line, labelDirectivePrefix):
			if name, ok := parseLabelName(line); ok {
				labelName = name
			} else {
				warns.AddLine(lineNum, "label_name", "unmatched label directive", line)
			}
		case itemStartPattern.MatchString(line):
			flush()
			item = &order.Item{ItemType: order.TypeUnknown, LabelName: labelName}
			p.parseItemName(line, item)
			parseQuantity(line, lineNum, item, &warns)
		case strings.HasPrefix(line, "-"):
			if item == nil {
				warns.AddLine(lineNum, "add_on", "option line before any item", line)
				continue
			}
			if strings.HasPrefix(line, specialMarkerPrefix) {
				// The instruction text sits on the next line.
				if i+1 < len(lines) {
					parseSpecialInstructions(lines[i+1], item)
					i++
				} else {
					warns.AddLine(lineNum, "special_instructions", "special instructions marker at end of input", line)
				}
				continue
			}
			p.parseAddOn(line, lineNum, item, &warns)
		case strings.Contains(line, "(in"):
			if item == nil {
				warns.AddLine(lineNum, "item_name", "continuation line before any item", line)
				continue
			}
			p.parseRemainingItemName(line, item)
		case strings.TrimSpace(line) == "":
			// skip
		default:
			warns.AddLine(lineNum, "line", "unmatched line", line)
			p.logger.Debug("unmatched line", "line", lineNum, "text", line)
		}
	}
	flush()

	order.Finalize(o)
	return o, warns
}

// parseItemName strips the quantity token and everything from the category
// suffix or price columns onward:
//
//	"1x Popcorn Chicken (in Snack) $5.00 $5.00"
func (p *Parser) parseItemName(line string, item *order.Item) {
	name := line
	if loc := quantityPattern.FindStringIndex(name); loc != nil {
		name = name[:loc[0]] + name[loc[1]:]
	}
	if idx := strings.Index(name, "(in"); idx >= 0 {
		name = name[:idx]
	} else if idx := strings.Index(name, "$"); idx >= 0 {
		name = name[:idx]
	}
	name = strings.TrimSpace(name)

	if canonical, ok := p.menu.CanonicalItemName(name); ok {
		name = canonical
	}
	item.ItemName = name
	item.ItemType = p.menu.ItemType(name)
}

// parseRemainingItemName joins a wrapped item name back together. The
// continuation line repeats the category suffix, which gets stripped.
func (p *Parser) parseRemainingItemName(line string, item *order.Item) {
	remaining := line
	if idx := strings.Index(remaining, "(in"); idx >= 0 {
		remaining = remaining[:idx]
	}
	remaining = strings.TrimSpace(remaining)
	item.ItemName = strings.TrimSpace(item.ItemName + " " + remaining)

	if canonical, ok := p.menu.CanonicalItemName(item.ItemName); ok {
		item.ItemName = canonical
	}
	if item.ItemType == order.TypeUnknown {
		item.ItemType = p.menu.ItemType(item.ItemName)
	}
}

func parseQuantity(line string, lineNum int, item *order.Item, warns *order.Warnings) {
	match := quantityPattern.FindString(line)
	qty, err := strconv.Atoi(strings.TrimSuffix(match, "x"))
	if err != nil {
		warns.AddLine(lineNum, "quantity", "unparseable quantity", line)
		return
	}
	item.Quantity = qty
}

// parseSpecialInstructions normalizes the typographic quotes the PDF
// extractor emits.
func parseSpecialInstructions(line string, item *order.Item) {
	text := strings.ReplaceAll(line, "“", `"`)
	text = strings.ReplaceAll(text, "”", `"`)
	item.SpecialInstructions = strings.TrimSpace(text)
}
