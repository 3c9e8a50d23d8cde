// Package templates holds the HTML fragments the server renders for HTMX clients.
package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// ErrorAlert renders a dismissible error box with the support code.
func ErrorAlert(message, action, code string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="alert alert-error" role="alert"><p class="alert-message">`); err != nil {
			return err
		}
		if _, err := io.WriteString(w, templ.EscapeString(message)); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</p>`); err != nil {
			return err
		}
		if action != "" {
			if _, err := io.WriteString(w, `<p class="alert-action">`+templ.EscapeString(action)+`</p>`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `<small class="alert-code">`+templ.EscapeString(code)+`</small></div>`)
		return err
	})
}
