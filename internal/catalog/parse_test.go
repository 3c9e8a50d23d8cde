package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
)

const header = "id,nome,referencia,descricao,valor,imagem,categoria"

func TestParse_WidgetRow(t *testing.T) {
	products := Parse(header+"\n"+`1,Widget,,,"19.99",,`, Placeholders{})
	if len(products) != 1 {
		t.Fatalf("len = %d, want 1", len(products))
	}

	p := products[0]
	if p.ID != "1" {
		t.Errorf("ID = %q, want %q", p.ID, "1")
	}
	if p.Name != "Widget" {
		t.Errorf("Name = %q, want %q", p.Name, "Widget")
	}
	if !p.Price.Equal(decimal.RequireFromString("19.99")) {
		t.Errorf("Price = %s, want 19.99", p.Price)
	}
	if p.Image != DefaultImage {
		t.Errorf("Image = %q, want %q", p.Image, DefaultImage)
	}
	if p.Category != DefaultCategory {
		t.Errorf("Category = %q, want %q", p.Category, DefaultCategory)
	}
}

func TestParse_EmptySources(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace", "  \n\t\n"},
		{"header only", header},
		{"header and blank lines", header + "\n\n  \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input, Placeholders{})
			if got == nil {
				t.Fatal("Parse returned nil, want empty slice")
			}
			if len(got) != 0 {
				t.Errorf("len = %d, want 0", len(got))
			}
		})
	}
}

func TestParse_ShortRows(t *testing.T) {
	products := Parse(header+"\n7\n8,Lamp", Placeholders{})
	if len(products) != 2 {
		t.Fatalf("len = %d, want 2", len(products))
	}

	p := products[0]
	if p.ID != "7" || p.Name != DefaultName || p.Reference != "" || p.Description != "" {
		t.Errorf("unexpected product %+v", p)
	}
	if !p.Price.IsZero() {
		t.Errorf("Price = %s, want 0", p.Price)
	}
	if products[1].Name != "Lamp" {
		t.Errorf("Name = %q, want %q", products[1].Name, "Lamp")
	}
}

func TestParse_FieldCleanup(t *testing.T) {
	row := ` "42" , "Caneca" ,REF-9,  Porcelana branca ," 12.50 ",caneca.png,"Cozinha"  ,extra,columns`
	products := Parse(header+"\r\n"+row+"\r\n", Placeholders{})
	if len(products) != 1 {
		t.Fatalf("len = %d, want 1", len(products))
	}

	want := Product{
		ID:          "42",
		Name:        "Caneca",
		Reference:   "REF-9",
		Description: "Porcelana branca",
		Price:       decimal.RequireFromString("12.5"),
		Image:       "caneca.png",
		Category:    "Cozinha",
	}
	got := products[0]
	if got.ID != want.ID || got.Name != want.Name || got.Reference != want.Reference ||
		got.Description != want.Description || got.Image != want.Image || got.Category != want.Category {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if !got.Price.Equal(want.Price) {
		t.Errorf("Price = %s, want %s", got.Price, want.Price)
	}
}

func TestParse_OrderPreserved(t *testing.T) {
	products := Parse(header+"\nb,B\na,A\nc,C", Placeholders{})
	var ids []string
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	if len(ids) != 3 || ids[0] != "b" || ids[1] != "a" || ids[2] != "c" {
		t.Errorf("ids = %v, want [b a c]", ids)
	}
}

func TestParse_QuotedCommaIsSplit(t *testing.T) {
	// Quotes do not protect the delimiter.
	products := Parse(header+"\n"+`1,"Cabo, 2m",R1,desc,5.00,img.png,Cat`, Placeholders{})
	p := products[0]
	if p.Name != "Cabo" {
		t.Errorf("Name = %q, want %q", p.Name, "Cabo")
	}
	if p.Reference != "2m" {
		t.Errorf("Reference = %q, want %q", p.Reference, "2m")
	}
}

func TestParse_CustomPlaceholders(t *testing.T) {
	ph := Placeholders{Name: "Unnamed", Image: "none.png"}
	products := Parse(header+"\n1", ph)
	p := products[0]
	if p.Name != "Unnamed" {
		t.Errorf("Name = %q, want %q", p.Name, "Unnamed")
	}
	if p.Image != "none.png" {
		t.Errorf("Image = %q, want %q", p.Image, "none.png")
	}
	if p.Category != DefaultCategory {
		t.Errorf("Category = %q, want %q", p.Category, DefaultCategory)
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", "0"},
		{`""`, "0"},
		{"   ", "0"},
		{"19.99", "19.99"},
		{`"19.99"`, "19.99"},
		{` "7" `, "7"},
		{`1"0.5`, "10.5"},
		{"abc", "0"},
		{"R$ 10", "0"},
		{"12.50 un", "12.5"},
		{"12.", "12"},
		{".5", "0.5"},
		{"-3.25", "-3.25"},
		{"1e2", "100"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParsePrice(tt.input)
			want := decimal.RequireFromString(tt.expected)
			if !got.Equal(want) {
				t.Errorf("ParsePrice(%q) = %s, want %s", tt.input, got, want)
			}
		})
	}
}

func TestCatalog_At(t *testing.T) {
	c := New([]Product{{ID: "a"}, {ID: "b"}})

	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}
	if p, ok := c.At(1); !ok || p.ID != "b" {
		t.Errorf("At(1) = %+v, %v", p, ok)
	}
	for _, i := range []int{-1, 2, 100} {
		if _, ok := c.At(i); ok {
			t.Errorf("At(%d) ok = true, want false", i)
		}
	}

	var empty *Catalog
	if empty.Len() != 0 {
		t.Errorf("nil catalog Len = %d", empty.Len())
	}
	if _, ok := empty.At(0); ok {
		t.Error("nil catalog At(0) ok = true")
	}
}

func TestHolder(t *testing.T) {
	var h Holder

	if _, err := h.Get(); err != ErrNotLoaded {
		t.Fatalf("Get() err = %v, want ErrNotLoaded", err)
	}
	if _, ok := h.At(0); ok {
		t.Error("At(0) before load should be inert")
	}

	h.Set(New([]Product{{ID: "x"}}))
	if p, ok := h.At(0); !ok || p.ID != "x" {
		t.Errorf("At(0) = %+v, %v", p, ok)
	}

	h.Fail(ErrSourceUnavailable)
	if _, err := h.Get(); err != ErrSourceUnavailable {
		t.Errorf("Get() err = %v, want ErrSourceUnavailable", err)
	}
	if _, ok := h.At(0); ok {
		t.Error("At(0) after failure should be inert")
	}
}
