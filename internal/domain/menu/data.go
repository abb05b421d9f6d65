package menu

import (
	"embed"
	"fmt"
	"sync"

	"github.com/gocarina/gocsv"
)

//go:embed data/grubhub.csv data/doordash.csv
var menuData embed.FS

// menuRow is the CSV row shape shared by the embedded tables and
// operator-supplied workbooks.
type menuRow struct {
	Kind      string `csv:"kind"`
	Raw       string `csv:"raw"`
	Canonical string `csv:"canonical"`
	Category  string `csv:"category"`
}

var (
	grubhubOnce sync.Once
	grubhubMenu *Menu

	doordashOnce sync.Once
	doordashMenu *Menu
)

// GrubHub returns the process-wide GrubHub menu, built on first use.
func GrubHub() *Menu {
	grubhubOnce.Do(func() {
		grubhubMenu = mustLoadEmbedded("data/grubhub.csv")
	})
	return grubhubMenu
}

// DoorDash returns the process-wide DoorDash menu, built on first use.
func DoorDash() *Menu {
	doordashOnce.Do(func() {
		doordashMenu = mustLoadEmbedded("data/doordash.csv")
	})
	return doordashMenu
}

// mustLoadEmbedded panics on a broken embedded table. The tables ship with
// the binary, so a failure here is a build defect, not a runtime condition.
func mustLoadEmbedded(path string) *Menu {
	b, err := menuData.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("menu: reading %s: %v", path, err))
	}
	m, err := ParseCSV(b)
	if err != nil {
		panic(fmt.Sprintf("menu: parsing %s: %v", path, err))
	}
	return m
}

// ParseCSV builds a Menu from CSV bytes with a kind,raw,canonical,category
// header row.
func ParseCSV(b []byte) (*Menu, error) {
	var rows []menuRow
	if err := gocsv.UnmarshalBytes(b, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse menu CSV: %w", err)
	}

	entries := make([]Entry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, Entry{
			Kind:      r.Kind,
			Raw:       r.Raw,
			Canonical: r.Canonical,
			Category:  r.Category,
		})
	}
	return New(entries)
}
