package web

// error_messages.go maps errors to user-facing messages with support codes.
//
//	CAT001   Catalog unavailable       catalog source could not be read     503
//	CAT002   Product not found         index outside the catalog            404
//	CAT003   Catalog loading           catalog load still in progress       503
//	CART001  Empty cart                export or share of an empty cart     409
//	CART002  Cart line not found       line index outside the cart          404
//	CART003  Confirmation required     clear without confirm=true           400
//	SHARE001 QR code too large         cart text exceeds QR capacity        422
//	STORE001 Cart not saved            snapshot write failed, change undone 503
//	REQ001   Invalid request           malformed body or path parameter     400
//	REQ002   Request cancelled         client went away                     499
//	REQ003   Request timeout           deadline exceeded                    504
//	ERR000   Unknown error             anything else                        500

import (
	"context"
	"errors"
	"net/http"

	"github.com/JonMunkholm/catalogo/internal/cart"
	"github.com/JonMunkholm/catalogo/internal/catalog"
	"github.com/JonMunkholm/catalogo/internal/share"
)

var (
	errProductNotFound = errors.New("product not found")
	errLineNotFound    = errors.New("cart line not found")
	errConfirmRequired = errors.New("clear requires confirmation")
	errInvalidRequest  = errors.New("invalid request")
)

// statusClientClosedRequest is the de facto status for requests the client abandoned.
const statusClientClosedRequest = 499

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

type errorMapping struct {
	target error
	status int
	msg    UserMessage
}

// errorMappings is checked in order with errors.Is; the first match wins.
var errorMappings = []errorMapping{
	{catalog.ErrNotLoaded, http.StatusServiceUnavailable, UserMessage{
		Message: "The product catalog is still loading",
		Action:  "Please try again in a few moments",
		Code:    "CAT003",
	}},
	{catalog.ErrSourceUnavailable, http.StatusServiceUnavailable, UserMessage{
		Message: "The product catalog could not be loaded",
		Action:  "Check that the catalog file is available and restart",
		Code:    "CAT001",
	}},
	{errProductNotFound, http.StatusNotFound, UserMessage{
		Message: "Product not found",
		Action:  "Refresh the catalog and pick a listed product",
		Code:    "CAT002",
	}},
	{cart.ErrEmptyCart, http.StatusConflict, UserMessage{
		Message: "Your cart is empty",
		Action:  "Add at least one product before sending the quote",
		Code:    "CART001",
	}},
	{errLineNotFound, http.StatusNotFound, UserMessage{
		Message: "That cart line no longer exists",
		Action:  "Refresh the cart and try again",
		Code:    "CART002",
	}},
	{errConfirmRequired, http.StatusBadRequest, UserMessage{
		Message: "Clearing the cart needs confirmation",
		Action:  "Confirm that you want to remove every item",
		Code:    "CART003",
	}},
	{share.ErrTooLong, http.StatusUnprocessableEntity, UserMessage{
		Message: "The cart is too large for a QR code",
		Action:  "Use the share link instead",
		Code:    "SHARE001",
	}},
	{cart.ErrPersist, http.StatusServiceUnavailable, UserMessage{
		Message: "Your cart could not be saved, the change was not applied",
		Action:  "Please try again",
		Code:    "STORE001",
	}},
	{errInvalidRequest, http.StatusBadRequest, UserMessage{
		Message: "The request was not understood",
		Action:  "Check the request parameters",
		Code:    "REQ001",
	}},
	{context.Canceled, statusClientClosedRequest, UserMessage{
		Message: "Request was cancelled",
		Action:  "Please try again",
		Code:    "REQ002",
	}},
	{context.DeadlineExceeded, http.StatusGatewayTimeout, UserMessage{
		Message: "Request timed out",
		Action:  "Please try again",
		Code:    "REQ003",
	}},
}

var unknownError = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts an error to a user message and HTTP status.
func MapError(err error) (UserMessage, int) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.msg, m.status
		}
	}
	return unknownError, http.StatusInternalServerError
}
