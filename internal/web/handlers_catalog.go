package web

import (
	"fmt"
	"net/http"

	"github.com/JonMunkholm/catalogo/internal/cart"
	"github.com/JonMunkholm/catalogo/internal/catalog"
)

// productView is a product as shown on the catalog page.
type productView struct {
	Index       int    `json:"index"`
	ID          string `json:"id"`
	Name        string `json:"name"`
	Reference   string `json:"reference"`
	Description string `json:"description"`
	Price       string `json:"price"`
	PriceLabel  string `json:"priceLabel"`
	Image       string `json:"image"`
	Category    string `json:"category"`
}

func (s *Server) toProductView(i int, p catalog.Product) productView {
	price := cart.Money(p.Price)
	return productView{
		Index:       i,
		ID:          p.ID,
		Name:        p.Name,
		Reference:   p.Reference,
		Description: p.Description,
		Price:       price,
		PriceLabel:  s.cfg.Export.Currency + price,
		Image:       p.Image,
		Category:    p.Category,
	}
}

// handleListProducts returns the catalog in source order.
func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	c, err := s.catalog.Get()
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	products := c.Products()
	views := make([]productView, len(products))
	for i, p := range products {
		views[i] = s.toProductView(i, p)
	}

	writeJSON(w, map[string]any{
		"products": views,
		"count":    len(views),
	})
}

// handleGetProduct returns one product by catalog index.
func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	c, err := s.catalog.Get()
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	i, err := intParam(r, "index")
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	p, ok := c.At(i)
	if !ok {
		s.respondError(w, r, fmt.Errorf("%w: index %d", errProductNotFound, i))
		return
	}
	writeJSON(w, s.toProductView(i, p))
}
