package cart

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/JonMunkholm/catalogo/internal/logging"
	"github.com/JonMunkholm/catalogo/internal/store"
)

// Engine owns the cart state. All methods are safe for concurrent use; each
// call runs to completion before the next one starts.
type Engine struct {
	mu      sync.Mutex
	store   Store
	catalog Catalog
	key     string
	format  ExportFormat
	lines   []Line
}

// NewEngine builds an engine and hydrates it from the store. A missing or
// unreadable snapshot starts an empty cart; it never fails construction.
func NewEngine(ctx context.Context, backend Store, products Catalog, cfg Config) *Engine {
	if cfg.Key == "" {
		cfg.Key = DefaultKey
	}
	e := &Engine{
		store:   backend,
		catalog: products,
		key:     cfg.Key,
		format:  cfg.Export.orDefaults(),
	}
	e.lines = e.hydrate(ctx)
	return e
}

func (e *Engine) hydrate(ctx context.Context) []Line {
	logger := logging.WithFields(ctx, "store_key", e.key)

	data, err := e.store.Load(ctx, e.key)
	if errors.Is(err, store.ErrNotFound) {
		logger.Debug("no cart snapshot, starting empty")
		return nil
	}
	if err != nil {
		logger.Warn("cart snapshot unavailable, starting empty", "error", err)
		return nil
	}

	lines, err := Decode(data)
	if err != nil {
		logger.Warn("discarding unreadable cart snapshot", "error", err)
		return nil
	}

	logger.Info("cart restored", "lines", len(lines))
	return lines
}

// AddToCart adds quantity units of the product at productIndex. An unknown
// index is ignored. A quantity below 1 counts as 1. If the product is already
// in the cart its line grows; otherwise a new line is appended. An add that
// would overflow the line quantity is ignored.
func (e *Engine) AddToCart(ctx context.Context, productIndex, quantity int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.catalog == nil {
		return nil
	}
	product, ok := e.catalog.At(productIndex)
	if !ok {
		logging.FromContext(ctx).Debug("add to cart ignored, unknown product", "index", productIndex)
		return nil
	}
	if quantity < 1 {
		quantity = 1
	}

	next := e.snapshot()
	if i := indexOf(next, product.ID); i >= 0 {
		if next[i].Quantity > math.MaxInt-quantity {
			logging.FromContext(ctx).Warn("add to cart ignored, quantity overflow",
				"index", productIndex, "quantity", quantity)
			return nil
		}
		next[i].Quantity += quantity
	} else {
		next = append(next, Line{Product: product, Quantity: quantity})
	}
	return e.commit(ctx, next)
}

// UpdateQuantity sets the quantity of the line at lineIndex. It reports
// whether the change was applied: a quantity below 1 or an unknown line is
// rejected and leaves the cart untouched.
func (e *Engine) UpdateQuantity(ctx context.Context, lineIndex, quantity int) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if quantity < 1 || !e.validLine(lineIndex) {
		return false, nil
	}

	next := e.snapshot()
	next[lineIndex].Quantity = quantity
	if err := e.commit(ctx, next); err != nil {
		return false, err
	}
	return true, nil
}

// RemoveLine deletes the line at lineIndex; later lines shift down by one.
// It reports whether a line was removed: an unknown index is ignored.
func (e *Engine) RemoveLine(ctx context.Context, lineIndex int) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.validLine(lineIndex) {
		return false, nil
	}

	next := e.snapshot()
	next = append(next[:lineIndex], next[lineIndex+1:]...)
	if err := e.commit(ctx, next); err != nil {
		return false, err
	}
	return true, nil
}

// Clear empties the cart.
func (e *Engine) Clear(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.commit(ctx, []Line{})
}

// Lines returns a copy of the cart in order.
func (e *Engine) Lines() []Line {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshot()
}

// Len returns the number of lines.
func (e *Engine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.lines)
}

// commit persists next and, only if that succeeds, makes it current.
func (e *Engine) commit(ctx context.Context, next []Line) error {
	data, err := Encode(next)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	if err := e.store.Save(ctx, e.key, data); err != nil {
		logging.WithFields(ctx, "store_key", e.key).Error("cart save failed", "error", err)
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	e.lines = next
	return nil
}

func (e *Engine) snapshot() []Line {
	cp := make([]Line, len(e.lines))
	copy(cp, e.lines)
	return cp
}

func (e *Engine) validLine(i int) bool {
	return i >= 0 && i < len(e.lines)
}

func indexOf(lines []Line, id string) int {
	for i, l := range lines {
		if l.Product.ID == id {
			return i
		}
	}
	return -1
}
