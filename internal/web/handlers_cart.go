package web

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/JonMunkholm/catalogo/internal/cart"
)

// handleCartSummary returns the current cart with totals.
func (s *Server) handleCartSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.engine.Summary())
}

// handleAddItem adds a catalog product to the cart. Unknown products are
// ignored and the unchanged cart is returned.
func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductIndex *int            `json:"productIndex"`
		Quantity     json.RawMessage `json:"quantity"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		s.respondError(w, r, err)
		return
	}
	if req.ProductIndex == nil {
		s.respondError(w, r, fmt.Errorf("%w: productIndex is required", errInvalidRequest))
		return
	}

	qty := cart.AddQuantity(quantityText(req.Quantity))
	if err := s.engine.AddToCart(r.Context(), *req.ProductIndex, qty); err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, s.engine.Summary())
}

// handleUpdateItem replaces the quantity of a cart line. Unknown lines,
// quantities below 1 and unparsable values are rejected without changing
// the cart.
func (s *Server) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	line, err := intParam(r, "line")
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	var req struct {
		Quantity json.RawMessage `json:"quantity"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		s.respondError(w, r, err)
		return
	}

	applied := false
	if qty, ok := cart.ParseQuantity(quantityText(req.Quantity)); ok {
		applied, err = s.engine.UpdateQuantity(r.Context(), line, qty)
		if err != nil {
			s.respondError(w, r, err)
			return
		}
	}

	writeJSON(w, map[string]any{
		"applied": applied,
		"cart":    s.engine.Summary(),
	})
}

// handleRemoveItem deletes a cart line.
func (s *Server) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	line, err := intParam(r, "line")
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	removed, err := s.engine.RemoveLine(r.Context(), line)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	if !removed {
		s.respondError(w, r, fmt.Errorf("%w: line %d", errLineNotFound, line))
		return
	}
	writeJSON(w, s.engine.Summary())
}

// handleClearCart empties the cart. The client must pass confirm=true after
// asking the visitor.
func (s *Server) handleClearCart(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("confirm") != "true" {
		s.respondError(w, r, errConfirmRequired)
		return
	}

	if err := s.engine.Clear(r.Context()); err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, s.engine.Summary())
}
