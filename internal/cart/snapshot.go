package cart

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/JonMunkholm/catalogo/internal/catalog"
	"github.com/shopspring/decimal"
)

// snapshotLine is the persisted form of a Line. Price is written as a JSON
// number so the snapshot stays readable by plain JSON consumers.
type snapshotLine struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Reference   string      `json:"reference"`
	Description string      `json:"description"`
	Price       json.Number `json:"price"`
	Image       string      `json:"image"`
	Category    string      `json:"category"`
	Quantity    int         `json:"quantity"`
}

// Encode serializes lines as a JSON array in cart order.
func Encode(lines []Line) ([]byte, error) {
	out := make([]snapshotLine, len(lines))
	for i, l := range lines {
		p := l.Product
		out[i] = snapshotLine{
			ID:          p.ID,
			Name:        p.Name,
			Reference:   p.Reference,
			Description: p.Description,
			Price:       json.Number(p.Price.String()),
			Image:       p.Image,
			Category:    p.Category,
			Quantity:    l.Quantity,
		}
	}
	return json.Marshal(out)
}

// Decode parses a snapshot produced by Encode.
//
// Lines with a quantity below 1 are dropped and repeated product IDs are
// merged into the first occurrence, saturating at math.MaxInt, so a decoded
// cart always satisfies the one-line-per-product rule.
func Decode(data []byte) ([]Line, error) {
	var in []snapshotLine
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("decode cart snapshot: %w", err)
	}

	lines := make([]Line, 0, len(in))
	seen := make(map[string]int, len(in))
	for _, s := range in {
		if s.Quantity < 1 {
			continue
		}

		price := decimal.Zero
		if s.Price != "" {
			d, err := decimal.NewFromString(s.Price.String())
			if err != nil {
				return nil, fmt.Errorf("decode cart snapshot: price %q: %w", s.Price, err)
			}
			price = d
		}

		if i, ok := seen[s.ID]; ok {
			if lines[i].Quantity > math.MaxInt-s.Quantity {
				lines[i].Quantity = math.MaxInt
			} else {
				lines[i].Quantity += s.Quantity
			}
			continue
		}
		seen[s.ID] = len(lines)
		lines = append(lines, Line{
			Product: catalog.Product{
				ID:          s.ID,
				Name:        s.Name,
				Reference:   s.Reference,
				Description: s.Description,
				Price:       price,
				Image:       s.Image,
				Category:    s.Category,
			},
			Quantity: s.Quantity,
		})
	}
	return lines, nil
}
