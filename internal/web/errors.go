package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/JonMunkholm/catalogo/internal/logging"
	"github.com/JonMunkholm/catalogo/internal/web/templates"
)

// ErrorResponse represents the JSON structure for API error responses.
// Includes both machine-readable (Code) and human-readable (Message, Action) fields.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
	Code    string `json:"code"`
}

// respondError logs the technical error and writes the mapped user message
// as an HTMX fragment, JSON, or plain text depending on the client.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	msg, status := MapError(err)

	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	logging.FromContext(r.Context()).Log(r.Context(), level, "request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", status,
		"error", err.Error(),
		"code", msg.Code,
	)

	switch {
	case isHTMX(r):
		renderErrorPartial(w, r, msg, status)
	case wantsJSON(r):
		respondErrorJSON(w, msg, status)
	default:
		http.Error(w, msg.Message+" ("+msg.Code+")", status)
	}
}

// respondErrorJSON writes a JSON error response.
func respondErrorJSON(w http.ResponseWriter, msg UserMessage, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error:   msg.Message,
		Message: msg.Message,
		Action:  msg.Action,
		Code:    msg.Code,
	})
}

// renderErrorPartial renders an HTMX-compatible error fragment.
func renderErrorPartial(w http.ResponseWriter, r *http.Request, msg UserMessage, status int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := templates.ErrorAlert(msg.Message, msg.Action, msg.Code).Render(r.Context(), w); err != nil {
		slog.Error("render error partial", "error", err)
	}
}

// isHTMX checks if the request is an HTMX request.
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// wantsJSON checks if the client prefers JSON response.
func wantsJSON(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		return true
	}
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		return true
	}
	// API routes default to JSON
	return strings.HasPrefix(r.URL.Path, "/api/")
}
