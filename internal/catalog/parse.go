package catalog

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Column positions in a catalog row.
const (
	colID = iota
	colName
	colReference
	colDescription
	colPrice
	colImage
	colCategory
)

// Delimiter separates columns. Quoted fields are not treated specially, so a
// comma inside quotes splits the field.
const Delimiter = ","

// numericPrefix matches the leading number of a price string. Anything after
// the match is ignored ("19.99 un" parses as 19.99).
var numericPrefix = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

// Parse converts raw catalog text into products in source order.
//
// The first line is the header and is always dropped. Blank lines are skipped.
// Parse never fails: an empty or header-only text yields an empty list.
func Parse(raw string, ph Placeholders) []Product {
	ph = ph.orDefaults()

	text := strings.TrimSpace(raw)
	if text == "" {
		return []Product{}
	}

	rows := strings.Split(text, "\n")[1:]
	products := make([]Product, 0, len(rows))
	for _, row := range rows {
		row = strings.TrimRight(row, "\r")
		if strings.TrimSpace(row) == "" {
			continue
		}
		products = append(products, parseRow(row, ph))
	}
	return products
}

// parseRow maps one delimited row onto a Product. Missing trailing columns
// read as empty strings.
func parseRow(row string, ph Placeholders) Product {
	cols := strings.Split(row, Delimiter)
	col := func(i int) string {
		if i >= len(cols) {
			return ""
		}
		return cleanField(cols[i])
	}

	raw := ""
	if colPrice < len(cols) {
		raw = cols[colPrice]
	}

	return Product{
		ID:          col(colID),
		Name:        orDefault(col(colName), ph.Name),
		Reference:   col(colReference),
		Description: col(colDescription),
		Price:       ParsePrice(raw),
		Image:       orDefault(col(colImage), ph.Image),
		Category:    orDefault(col(colCategory), ph.Category),
	}
}

// cleanField trims whitespace and surrounding quote characters.
func cleanField(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"`)
	return strings.TrimSpace(s)
}

// ParsePrice reads a price column. Every quote character is removed, an empty
// value counts as "0", and anything that does not start with a number is 0.
// Negative values pass through unchanged.
func ParsePrice(s string) decimal.Decimal {
	s = strings.TrimSpace(strings.ReplaceAll(s, `"`, ""))
	if s == "" {
		s = "0"
	}

	m := numericPrefix.FindString(s)
	if m == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(strings.TrimSuffix(m, "."))
	if err != nil {
		return decimal.Zero
	}
	return d
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
