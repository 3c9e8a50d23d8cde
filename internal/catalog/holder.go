package catalog

import (
	"sync"

	"github.com/pkg/errors"
)

// ErrNotLoaded is returned by [Holder.Get] while the catalog is still loading.
var ErrNotLoaded = errors.New("catalog not loaded yet")

// Holder publishes a catalog that is loaded in the background. Lookups made
// before the load finishes, or after it failed, see an empty catalog.
type Holder struct {
	mu      sync.RWMutex
	catalog *Catalog
	err     error
}

// Set publishes a loaded catalog.
func (h *Holder) Set(c *Catalog) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.catalog = c
	h.err = nil
}

// Fail records a fatal load error.
func (h *Holder) Fail(err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.catalog = nil
	h.err = err
}

// Get returns the published catalog, the load error, or ErrNotLoaded.
func (h *Holder) Get() (*Catalog, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.err != nil {
		return nil, h.err
	}
	if h.catalog == nil {
		return nil, ErrNotLoaded
	}
	return h.catalog, nil
}

// At looks up a product by index in the published catalog.
func (h *Holder) At(i int) (Product, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.catalog.At(i)
}
