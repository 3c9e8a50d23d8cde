package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/JonMunkholm/catalogo/internal/cart"
	"github.com/JonMunkholm/catalogo/internal/catalog"
	"github.com/JonMunkholm/catalogo/internal/share"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{"not loaded", catalog.ErrNotLoaded, "CAT003", http.StatusServiceUnavailable},
		{"source unavailable", fmt.Errorf("load: %w", catalog.ErrSourceUnavailable), "CAT001", http.StatusServiceUnavailable},
		{"product", fmt.Errorf("%w: index 3", errProductNotFound), "CAT002", http.StatusNotFound},
		{"empty cart", cart.ErrEmptyCart, "CART001", http.StatusConflict},
		{"line", errLineNotFound, "CART002", http.StatusNotFound},
		{"confirm", errConfirmRequired, "CART003", http.StatusBadRequest},
		{"qr too long", fmt.Errorf("%w: 5000 bytes", share.ErrTooLong), "SHARE001", http.StatusUnprocessableEntity},
		{"persist", fmt.Errorf("%w: %w", cart.ErrPersist, errors.New("redis down")), "STORE001", http.StatusServiceUnavailable},
		{"bad request", errInvalidRequest, "REQ001", http.StatusBadRequest},
		{"canceled", context.Canceled, "REQ002", statusClientClosedRequest},
		{"deadline", fmt.Errorf("save: %w", context.DeadlineExceeded), "REQ003", http.StatusGatewayTimeout},
		{"unknown", errors.New("boom"), "ERR000", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, status := MapError(tt.err)
			if msg.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", msg.Code, tt.wantCode)
			}
			if status != tt.wantStatus {
				t.Errorf("status = %d, want %d", status, tt.wantStatus)
			}
			if msg.Message == "" || msg.Action == "" {
				t.Errorf("message and action must be set: %+v", msg)
			}
		})
	}
}
