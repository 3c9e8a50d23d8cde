package cart

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ExportFormat controls the shareable text produced by [Engine.ExportText].
type ExportFormat struct {
	// Title is the first line of the message.
	Title string
	// Marker prefixes every item line.
	Marker string
	// Currency is written before every amount, including any separator.
	Currency string
	// Total is the last line; the first %s is replaced by currency+amount.
	Total string
}

// DefaultExportFormat is the stock quote-request layout.
func DefaultExportFormat() ExportFormat {
	return ExportFormat{
		Title:    "*Orçamento Solicitado*:",
		Marker:   "➤",
		Currency: "R$ ",
		Total:    "*Total: %s*",
	}
}

func (f ExportFormat) orDefaults() ExportFormat {
	d := DefaultExportFormat()
	if f.Title == "" {
		f.Title = d.Title
	}
	if f.Marker == "" {
		f.Marker = d.Marker
	}
	if f.Currency == "" {
		f.Currency = d.Currency
	}
	if f.Total == "" || !strings.Contains(f.Total, "%s") {
		f.Total = d.Total
	}
	return f
}

// Money formats an amount with exactly two decimals.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// LineSummary is the derived view of one line.
type LineSummary struct {
	Index     int             `json:"index"`
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"-"`
	Total     decimal.Decimal `json:"-"`
	PriceText string          `json:"price"`
	TotalText string          `json:"total"`
}

// Summary is recomputed on every call. Empty is set when the cart has no
// lines, which is distinct from lines that add up to zero.
type Summary struct {
	Empty          bool            `json:"empty"`
	Count          int             `json:"count"`
	Units          int             `json:"units"`
	Lines          []LineSummary   `json:"lines"`
	GrandTotal     decimal.Decimal `json:"-"`
	GrandTotalText string          `json:"grandTotal"`
}

// Summary returns line totals and the grand total.
func (e *Engine) Summary() Summary {
	e.mu.Lock()
	defer e.mu.Unlock()
	return summarize(e.lines)
}

func summarize(lines []Line) Summary {
	if len(lines) == 0 {
		return Summary{Empty: true, Lines: []LineSummary{}, GrandTotalText: Money(decimal.Zero)}
	}

	s := Summary{
		Count: len(lines),
		Lines: make([]LineSummary, len(lines)),
	}
	grand := decimal.Zero
	for i, l := range lines {
		total := l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
		grand = grand.Add(total)
		s.Units += l.Quantity
		s.Lines[i] = LineSummary{
			Index:     i,
			ID:        l.Product.ID,
			Name:      l.Product.Name,
			Quantity:  l.Quantity,
			Price:     l.Product.Price,
			Total:     total,
			PriceText: Money(l.Product.Price),
			TotalText: Money(total),
		}
	}
	s.GrandTotal = grand
	s.GrandTotalText = Money(grand)
	return s
}

// ExportText renders the cart as a plain-text quote request:
//
//	*Orçamento Solicitado*:
//
//	➤ Widget - 2 x R$ 10.00
//	➤ Gadget - 1 x R$ 5.50
//
//	*Total: R$ 25.50*
//
// It returns ErrEmptyCart when there is nothing to export.
func (e *Engine) ExportText() (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.lines) == 0 {
		return "", ErrEmptyCart
	}

	f := e.format
	s := summarize(e.lines)

	var b strings.Builder
	b.WriteString(f.Title)
	b.WriteString("\n\n")
	for i, l := range s.Lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s %s - %d x %s%s", f.Marker, l.Name, l.Quantity, f.Currency, l.PriceText)
	}
	b.WriteString("\n\n")
	b.WriteString(strings.Replace(f.Total, "%s", f.Currency+s.GrandTotalText, 1))
	return b.String(), nil
}
