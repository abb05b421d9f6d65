package menu

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// LoadWorkbook builds a Menu from an xlsx workbook whose first sheet carries
// the same kind,raw,canonical,category columns as the embedded CSV tables.
// Vendors maintain their menus in spreadsheets, so this is the override path
// for names added between releases.
func LoadWorkbook(r io.Reader) (*Menu, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open menu workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("menu workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return New(nil)
	}

	cols := mapColumns(rows[0])
	if cols.kind < 0 || cols.raw < 0 {
		return nil, fmt.Errorf("menu workbook sheet %s is missing kind/raw columns", sheets[0])
	}

	cell := func(row []string, idx int) string {
		if idx < 0 || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	entries := make([]Entry, 0, len(rows)-1)
	for _, row := range rows[1:] {
		raw := cell(row, cols.raw)
		if raw == "" {
			continue
		}
		entries = append(entries, Entry{
			Kind:      cell(row, cols.kind),
			Raw:       raw,
			Canonical: cell(row, cols.canonical),
			Category:  cell(row, cols.category),
		})
	}
	return New(entries)
}

type columnMap struct {
	kind, raw, canonical, category int
}

func mapColumns(headers []string) columnMap {
	cols := columnMap{kind: -1, raw: -1, canonical: -1, category: -1}
	for i, h := range headers {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "kind":
			cols.kind = i
		case "raw", "raw name":
			cols.raw = i
		case "canonical", "canonical name":
			cols.canonical = i
		case "category", "type":
			cols.category = i
		}
	}
	return cols
}
