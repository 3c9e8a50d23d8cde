// Package share turns the exported cart text into something a visitor can
// hand to an external messaging app: a prefilled link and its QR code.
package share

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/skip2/go-qrcode"
)

// DefaultBaseURL opens a WhatsApp chat with the text prefilled.
const DefaultBaseURL = "https://wa.me/"

// ErrTooLong is returned by QR when the link does not fit in a QR code.
var ErrTooLong = errors.New("share link too long for a QR code")

// Link appends text to base as the "text" query parameter. The text is
// percent-encoded the way browsers encode URI components, so spaces become
// %20 rather than '+'.
func Link(base, text string) (string, error) {
	if base == "" {
		base = DefaultBaseURL
	}
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse share base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("share base url %q must be absolute", base)
	}

	encoded := "text=" + EncodeComponent(text)
	if u.RawQuery != "" {
		u.RawQuery += "&" + encoded
	} else {
		u.RawQuery = encoded
	}
	return u.String(), nil
}

// componentUnescape restores the characters browsers leave bare when
// encoding a URI component.
var componentUnescape = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeComponent percent-encodes s for use inside a query value.
func EncodeComponent(s string) string {
	return componentUnescape.Replace(url.QueryEscape(s))
}

// ParseLevel maps L, M, Q or H to a QR recovery level. Anything else is M.
func ParseLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// QR renders link as a PNG QR code of size×size pixels. It returns
// ErrTooLong when the link exceeds the capacity of a QR code at level.
func QR(link string, size int, level qrcode.RecoveryLevel) ([]byte, error) {
	if size <= 0 {
		size = 256
	}
	png, err := qrcode.Encode(link, level, size)
	if err != nil {
		if strings.Contains(err.Error(), "too long") {
			return nil, fmt.Errorf("%w: %d bytes", ErrTooLong, len(link))
		}
		return nil, fmt.Errorf("encode qr code: %w", err)
	}
	return png, nil
}
