// Package menu provides the per-vendor classifier mapping raw name variants
// from order documents to canonical display names and categories. A Menu is
// built once at process start and is read-only afterwards, so independent
// parse calls can share it without locking.
package menu

import (
	"fmt"
	"strings"

	"github.com/cloudflare/ahocorasick"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/dtchiong/order-printer/internal/domain/order"
)

// Category classifies an addon entry. Items carry an order.ItemType instead.
type Category string

const (
	CategoryTemperature    Category = "Temperature"
	CategorySize           Category = "Size"
	CategoryIce            Category = "Ice"
	CategorySugar          Category = "Sugar"
	CategoryTopping        Category = "Topping"
	CategoryMilkSubstitute Category = "MilkSubstitute"
	CategoryTeaFlavor      Category = "TeaFlavor"
)

// Entry is one menu table row: a raw name variant mapped to its canonical
// name and classification. Kind selects the namespace the entry lives in.
type Entry struct {
	Kind      string // "item" or "addon"
	Raw       string
	Canonical string
	// Category holds an order.ItemType (Drink/Snack) for items and an
	// addon Category for addons.
	Category string
}

type itemEntry struct {
	canonical string
	itemType  order.ItemType
}

type addonEntry struct {
	canonical string
	category  Category
}

// Menu is the immutable raw-name lookup for one vendor.
type Menu struct {
	items      map[string]itemEntry  // keyed by normalized name
	itemsFold  map[string]itemEntry  // keyed by fold key (alnum only)
	addons     map[string]addonEntry // keyed by normalized name
	addonsFold map[string]addonEntry // keyed by fold key
	itemKeys   []string              // fold keys, for fuzzy lookup
	addonKeys  []string

	hot *ahocorasick.Matcher // markers of names that default to hot
}

// hotNameMarkers are the item-name fragments that mark a drink as served hot
// by default. An explicit "Cold" style choice on such an item must be
// surfaced in the printed name because default options are omitted from the
// vendor's export.
var hotNameMarkers = []string{"GINGER", "HOT"}

// New builds a Menu from entries. Unknown kinds or categories are rejected
// so broken tables fail at startup instead of silently misclassifying.
func New(entries []Entry) (*Menu, error) {
	m := &Menu{
		items:      make(map[string]itemEntry),
		itemsFold:  make(map[string]itemEntry),
		addons:     make(map[string]addonEntry),
		addonsFold: make(map[string]addonEntry),
	}

	for _, e := range entries {
		raw := strings.TrimSpace(e.Raw)
		if raw == "" {
			continue
		}
		canonical := strings.TrimSpace(e.Canonical)
		if canonical == "" {
			canonical = raw
		}

		switch e.Kind {
		case "item":
			typ, err := parseItemType(e.Category)
			if err != nil {
				return nil, fmt.Errorf("menu entry %q: %w", raw, err)
			}
			entry := itemEntry{canonical: canonical, itemType: typ}
			m.items[normalizeKey(raw)] = entry
			fold := foldKey(raw)
			if _, dup := m.itemsFold[fold]; !dup {
				m.itemKeys = append(m.itemKeys, fold)
			}
			m.itemsFold[fold] = entry

		case "addon":
			cat, err := parseCategory(e.Category)
			if err != nil {
				return nil, fmt.Errorf("menu entry %q: %w", raw, err)
			}
			entry := addonEntry{canonical: canonical, category: cat}
			m.addons[normalizeKey(raw)] = entry
			fold := foldKey(raw)
			if _, dup := m.addonsFold[fold]; !dup {
				m.addonKeys = append(m.addonKeys, fold)
			}
			m.addonsFold[fold] = entry

		default:
			return nil, fmt.Errorf("menu entry %q: unknown kind %q", raw, e.Kind)
		}
	}

	hotPatterns := make([][]byte, len(hotNameMarkers))
	for i, marker := range hotNameMarkers {
		hotPatterns[i] = []byte(marker)
	}
	m.hot = ahocorasick.NewMatcher(hotPatterns)

	return m, nil
}

// CanonicalItemName returns the menu-corrected display name for a raw item
// name. ok is false when the name is not on the menu; callers keep the raw
// text in that case.
func (m *Menu) CanonicalItemName(raw string) (string, bool) {
	if e, ok := m.lookupItem(raw); ok {
		return e.canonical, true
	}
	return "", false
}

// ItemType classifies a raw item name. Unmapped names are Unknown and are
// excluded from the drink/snack counters.
func (m *Menu) ItemType(raw string) order.ItemType {
	if e, ok := m.lookupItem(raw); ok {
		return e.itemType
	}
	return order.TypeUnknown
}

// AddOnCategory classifies a raw addon name.
func (m *Menu) AddOnCategory(raw string) (Category, bool) {
	if e, ok := m.lookupAddon(raw); ok {
		return e.category, true
	}
	return "", false
}

// CanonicalAddOnName returns the corrected display text for a raw addon name.
func (m *Menu) CanonicalAddOnName(raw string) (string, bool) {
	if e, ok := m.lookupAddon(raw); ok {
		return e.canonical, true
	}
	return "", false
}

// IsNormallyHot reports whether an item name carries a hot-default marker.
func (m *Menu) IsNormallyHot(name string) bool {
	return len(m.hot.Match([]byte(strings.ToUpper(name)))) > 0
}

func (m *Menu) lookupItem(raw string) (itemEntry, bool) {
	if e, ok := m.items[normalizeKey(raw)]; ok {
		return e, true
	}
	if fold, ok := matchFold(foldKey(raw), m.itemKeys); ok {
		return m.itemsFold[fold], true
	}
	return itemEntry{}, false
}

func (m *Menu) lookupAddon(raw string) (addonEntry, bool) {
	if e, ok := m.addons[normalizeKey(raw)]; ok {
		return e, true
	}
	if fold, ok := matchFold(foldKey(raw), m.addonKeys); ok {
		return m.addonsFold[fold], true
	}
	return addonEntry{}, false
}

// matchFold finds a fold key equal to the input under case folding. Only
// distance-zero ranks are accepted: the fuzzy pass exists to absorb
// punctuation and spacing drift, never to guess at unlisted names.
func matchFold(key string, keys []string) (string, bool) {
	if key == "" {
		return "", false
	}
	for _, rank := range fuzzy.RankFindFold(key, keys) {
		if rank.Distance == 0 {
			return rank.Target, true
		}
	}
	return "", false
}

// normalizeKey uppercases and collapses interior whitespace.
func normalizeKey(raw string) string {
	return strings.Join(strings.Fields(strings.ToUpper(raw)), " ")
}

// foldKey strips everything but letters and digits.
func foldKey(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(raw) {
		if r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func parseItemType(s string) (order.ItemType, error) {
	switch order.ItemType(strings.TrimSpace(s)) {
	case order.TypeDrink:
		return order.TypeDrink, nil
	case order.TypeSnack:
		return order.TypeSnack, nil
	case order.TypeUnknown, "":
		return order.TypeUnknown, nil
	}
	return "", fmt.Errorf("unknown item type %q", s)
}

func parseCategory(s string) (Category, error) {
	switch c := Category(strings.TrimSpace(s)); c {
	case CategoryTemperature, CategorySize, CategoryIce, CategorySugar,
		CategoryTopping, CategoryMilkSubstitute, CategoryTeaFlavor:
		return c, nil
	}
	return "", fmt.Errorf("unknown addon category %q", s)
}
