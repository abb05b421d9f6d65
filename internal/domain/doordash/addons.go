package doordash

import (
	"strings"

	"github.com/dtchiong/order-printer/internal/domain/order"
)

// parseAddOn dispatches a "-" option line on its marker word. Each grammar
// branches on word count because the extracted text drops the option group
// label inconsistently between receipt revisions.
func (p *Parser) parseAddOn(line string, lineNum int, item *order.Item, warns *order.Warnings) {
	words := strings.Split(line, " ")

	switch words[0] {
	case "-Additional":
		// -Additional Toppings {topping...} (+ $x.xx)
		item.AddOnList = append(item.AddOnList, appendAddOn(words, 2))
	case "-Size":
		// -Size Choice {size} (+ $x.xx)
		if len(words) > 2 {
			item.Size = words[2]
		}
	case "-Sugar":
		parseSugar(words, item)
	case "-Ice":
		parseIce(words, item)
	case "-Style":
		p.parseStyle(words, lineNum, item, warns)
	case "-Flavor":
		if len(words) > 2 {
			switch words[1] {
			case "Choice":
				// -Flavor Choice {flavor} (+ $x.xx): swap the flavor into
				// the tea name.
				item.ItemName = strings.ReplaceAll(item.ItemName, "Tea", words[2]+" Tea")
			case "Addition":
				// -Flavor Addition {flavor} (+ $x.xx): the flavor fronts
				// the name and the "(Flavored)" placeholder drops out.
				name := strings.ReplaceAll(item.ItemName, "(Flavored)", "")
				item.ItemName = strings.TrimSpace(words[2] + " " + name)
			}
		}
	case "-Ramen":
		// -Ramen Addition {addition...} (+ $x.xx)
		item.AddOnList = append(item.AddOnList, appendAddOn(words, 2))
	case "-Rice":
		// -Rice Dish Addition {addition...} (+ $x.xx)
		item.AddOnList = append(item.AddOnList, appendAddOn(words, 3))
	case "-Snack":
		// -Snack Addition {addition...} (+ $x.xx)
		item.AddOnList = append(item.AddOnList, appendAddOn(words, 2))
	default:
		warns.AddLine(lineNum, "add_on", "unmatched option line", line)
		p.logger.Debug("unmatched option line", "line", lineNum, "text", line)
	}
}

// appendAddOn joins words from start until the price token, which always
// opens with "(".
func appendAddOn(words []string, start int) string {
	var parts []string
	for _, w := range words[start:] {
		if strings.HasPrefix(w, "(") {
			break
		}
		parts = append(parts, w)
	}
	return strings.Join(parts, " ")
}

// parseSugar handles both sugar grammars:
//
//	-Sugar Level {level} (3 words)
//	-Sugar Level Choice {level} (4 words)
func parseSugar(words []string, item *order.Item) {
	switch len(words) {
	case 3:
		item.SugarLevel = sugarValue(words[2])
	case 4:
		item.SugarLevel = sugarValue(words[3])
	}
}

func sugarValue(level string) string {
	if level == "Standard" {
		return level
	}
	return level + " S"
}

// parseIce handles the ice grammars:
//
//	-Ice Level {level}                 (3 words)
//	-Ice Level More Ice                (More Ice)
//	-Ice Level {level} (+ $x.xx)       (5 words)
func parseIce(words []string, item *order.Item) {
	switch {
	case len(words) == 3:
		if words[2] == "Standard" {
			item.IceLevel = words[2]
		} else {
			item.IceLevel = words[2] + " I"
		}
	case len(words) == 5:
		item.IceLevel = words[2] + " I"
	case len(words) > 3 && words[2] == "More" && words[3] == "Ice":
		item.IceLevel = "More Ice"
	}
}

// parseStyle handles temperature and savory style options.
func (p *Parser) parseStyle(words []string, lineNum int, item *order.Item, warns *order.Warnings) {
	if len(words) < 3 {
		warns.AddLine(lineNum, "style", "unmatched style line", strings.Join(words, " "))
		return
	}
	switch words[2] {
	case "Hot":
		item.Temperature = "Hot"
	case "Cold":
		// Drinks served hot by default get an explicit cold marker on the
		// label; everything else is already cold.
		if p.menu.IsNormallyHot(item.ItemName) {
			item.ItemName += " (Cold)"
		}
	case "Garlic", "Honey":
		item.ItemName = words[2] + " " + item.ItemName
	default:
		warns.AddLine(lineNum, "style", "unmatched style option", strings.Join(words, " "))
		p.logger.Debug("unmatched style option", "line", lineNum, "text", strings.Join(words, " "))
	}
}
