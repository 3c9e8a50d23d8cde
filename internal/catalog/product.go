// Package catalog turns the flat product spreadsheet into typed product records.
//
// The source is a comma-delimited text file with a mandatory header line and
// seven positional columns:
//
//	id, name, reference, description, price, image, category
//
// Parsing is deliberately forgiving. Short rows, unparsable prices and empty
// fields never fail the parse; defaults are applied instead. Only a source
// that cannot be read at all is reported as an error (see [Load]).
package catalog

import "github.com/shopspring/decimal"

// Default placeholder values applied when a row leaves the field empty.
const (
	DefaultName     = "Sem Nome"
	DefaultImage    = "placeholder.jpg"
	DefaultCategory = "Sem Categoria"
)

// Product is one catalog entry. Values are immutable once parsed; the cart
// stores copies, never references.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Reference   string          `json:"reference"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Category    string          `json:"category"`
}

// Placeholders holds the fallbacks for name, image and category.
// Empty members fall back to the package defaults so parsed products
// always carry a non-empty value for these fields.
type Placeholders struct {
	Name     string
	Image    string
	Category string
}

// DefaultPlaceholders returns the stock fallbacks.
func DefaultPlaceholders() Placeholders {
	return Placeholders{
		Name:     DefaultName,
		Image:    DefaultImage,
		Category: DefaultCategory,
	}
}

func (p Placeholders) orDefaults() Placeholders {
	d := DefaultPlaceholders()
	if p.Name == "" {
		p.Name = d.Name
	}
	if p.Image == "" {
		p.Image = d.Image
	}
	if p.Category == "" {
		p.Category = d.Category
	}
	return p
}

// Catalog is the ordered product list for a session.
// The zero value and a nil *Catalog are both valid empty catalogs.
type Catalog struct {
	products []Product
}

// New wraps an already parsed product list.
func New(products []Product) *Catalog {
	cp := make([]Product, len(products))
	copy(cp, products)
	return &Catalog{products: cp}
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.products)
}

// At returns the product at index i in source order.
func (c *Catalog) At(i int) (Product, bool) {
	if c == nil || i < 0 || i >= len(c.products) {
		return Product{}, false
	}
	return c.products[i], true
}

// Products returns a copy of the product list.
func (c *Catalog) Products() []Product {
	if c == nil {
		return nil
	}
	cp := make([]Product, len(c.products))
	copy(cp, c.products)
	return cp
}
