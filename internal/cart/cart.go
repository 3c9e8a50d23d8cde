// Package cart maintains the visitor's shopping cart on top of the catalog.
//
// A cart is an ordered list of lines, one per product ID, each holding a copy
// of the product taken when it was first added. Every mutation writes the
// full cart snapshot to a [Store] before it is committed in memory, so a
// reload always sees the last successful mutation.
package cart

import (
	"context"
	"errors"

	"github.com/JonMunkholm/catalogo/internal/catalog"
)

// DefaultKey is the store key the cart snapshot is saved under.
const DefaultKey = "cart"

var (
	// ErrEmptyCart is returned when exporting a cart with no lines.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrPersist wraps store write failures. The mutation that caused it
	// was not applied.
	ErrPersist = errors.New("cart snapshot not saved")
)

// Store is the key-value collaborator holding the serialized cart.
// Load returns an error when the key is absent; the engine treats any load
// error as an empty cart.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}

// Catalog resolves a catalog index to a product.
type Catalog interface {
	At(i int) (catalog.Product, bool)
}

// Line is one cart entry.
type Line struct {
	Product  catalog.Product
	Quantity int
}

// Config configures an [Engine].
type Config struct {
	// Key is the store key. Defaults to DefaultKey.
	Key string

	Export ExportFormat
}
