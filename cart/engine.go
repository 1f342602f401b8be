package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/perchgoods/storefront/gateway"
	"github.com/perchgoods/storefront/storage"
)

// Validation failures raised before any network call.
var (
	ErrNoAddress = errors.New("no delivery address selected")
	ErrEmptyCart = errors.New("cart is empty")
)

// ProductSnapshot freezes the product details shown for a cart line. Prices
// in the cart do not track later catalog changes.
type ProductSnapshot struct {
	Name               string  `json:"name"`
	Price              float64 `json:"price"`
	DiscountableItemID string  `json:"discountable_item_id,omitempty"`
}

// Line is one cart entry. At most one Line exists per product id.
type Line struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice float64         `json:"unit_price"`
	LineTotal float64         `json:"line_total"`
	Option    string          `json:"option,omitempty"`
	Product   ProductSnapshot `json:"product"`
}

// Added reports the outcome of an Add. Clamped is set when the requested
// quantity exceeded the per-product purchase limit and was reduced; callers
// surface that to the user rather than truncating silently.
type Added struct {
	Line    Line
	Clamped bool
}

// OrderPlacer is the slice of the gateway the engine needs for checkout.
type OrderPlacer interface {
	CreateOrder(ctx context.Context, submission gateway.OrderSubmission) (*gateway.OrderConfirmation, error)
}

// Engine maintains the device-local cart. Every mutation loads the full
// cart from storage, applies the change, and writes the whole list back;
// storage failures are fatal to the operation and surface to the caller.
type Engine struct {
	store  storage.Store
	placer OrderPlacer
	log    zerolog.Logger

	mu sync.Mutex
}

// NewEngine builds a cart engine over the given storage backend.
func NewEngine(store storage.Store, placer OrderPlacer, log zerolog.Logger) *Engine {
	return &Engine{store: store, placer: placer, log: log}
}

// Lines returns the current cart contents.
func (e *Engine) Lines() ([]Line, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.load()
}

// Contains reports whether the cart holds a line for the product.
func (e *Engine) Contains(productID string) (bool, error) {
	lines, err := e.Lines()
	if err != nil {
		return false, err
	}
	for _, line := range lines {
		if line.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

// Subtotal sums the cart's line totals.
func (e *Engine) Subtotal() (float64, error) {
	lines, err := e.Lines()
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, line := range lines {
		sum += line.LineTotal
	}
	return sum, nil
}

// Add merges a product into the cart. An existing line for the same product
// gains the new quantity; otherwise a new line is appended. The final
// quantity is clamped to limit when limit > 0 (the server's
// limited_qty_per_customer), and the clamp is reported back.
func (e *Engine) Add(productID string, quantity int, unitPrice float64, option string, snap ProductSnapshot, limit int) (Added, error) {
	if productID == "" {
		return Added{}, fmt.Errorf("product id is empty")
	}
	if quantity < 1 {
		quantity = 1
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	lines, err := e.load()
	if err != nil {
		return Added{}, err
	}

	idx := -1
	for i, line := range lines {
		if line.ProductID == productID {
			idx = i
			break
		}
	}

	requested := quantity
	if idx >= 0 {
		requested += lines[idx].Quantity
	}
	final := requested
	clamped := false
	if limit > 0 && final > limit {
		final = limit
		clamped = true
	}

	var line Line
	if idx >= 0 {
		line = lines[idx]
		line.Quantity = final
		line.UnitPrice = unitPrice
		if option != "" {
			line.Option = option
		}
		line.LineTotal = float64(final) * unitPrice
		lines[idx] = line
	} else {
		line = Line{
			ProductID: productID,
			Quantity:  final,
			UnitPrice: unitPrice,
			LineTotal: float64(final) * unitPrice,
			Option:    option,
			Product:   snap,
		}
		lines = append(lines, line)
	}

	if err := e.persist(lines); err != nil {
		return Added{}, err
	}
	return Added{Line: line, Clamped: clamped}, nil
}

// Remove deletes the line for a product. Removing an absent product is a
// no-op.
func (e *Engine) Remove(productID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	lines, err := e.load()
	if err != nil {
		return err
	}
	kept := lines[:0]
	for _, line := range lines {
		if line.ProductID != productID {
			kept = append(kept, line)
		}
	}
	return e.persist(kept)
}

// Clear empties the cart.
func (e *Engine) Clear() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.Remove(storage.KeyCart)
}

// PlaceOrder turns the cart into an order submission. It fails with
// ErrNoAddress or ErrEmptyCart before any network call. The cart is cleared
// only when the gateway accepts the order; on failure it is left intact so
// the user can retry.
func (e *Engine) PlaceOrder(ctx context.Context, addr *gateway.Address, note string) (*gateway.OrderConfirmation, error) {
	if addr == nil || addr.ID == "" {
		return nil, ErrNoAddress
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	lines, err := e.load()
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	submission := gateway.OrderSubmission{
		AddressID: addr.ID,
		Note:      note,
		Lines:     make([]gateway.OrderLine, 0, len(lines)),
	}
	for _, line := range lines {
		submission.Lines = append(submission.Lines, gateway.OrderLine{
			ProductID:          line.ProductID,
			Qty:                line.Quantity,
			UnitPrice:          line.UnitPrice,
			Option:             line.Option,
			DiscountableItemID: line.Product.DiscountableItemID,
		})
	}

	confirmation, err := e.placer.CreateOrder(ctx, submission)
	if err != nil {
		return nil, err
	}

	if err := e.store.Remove(storage.KeyCart); err != nil {
		// The order went through; a leftover cart is an annoyance, not a
		// failure of the purchase.
		e.log.Warn().Err(err).Msg("clear cart after order")
	}
	return confirmation, nil
}

// load reads the persisted cart. A never-written or unparseable cart reads
// as empty; backend failures propagate.
func (e *Engine) load() ([]Line, error) {
	bytes, err := e.store.Get(storage.KeyCart)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var lines []Line
	if err := json.Unmarshal(bytes, &lines); err != nil {
		e.log.Warn().Err(err).Msg("discarding unparseable cart")
		return nil, nil
	}
	return lines, nil
}

func (e *Engine) persist(lines []Line) error {
	encoded, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	return e.store.Set(storage.KeyCart, encoded)
}
