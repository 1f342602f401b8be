// Package cart implements the device-local cart and checkout.
//
// # Overview
//
// The cart lives entirely on the device until checkout: an ordered list of
// lines, one per product, serialized as JSON under a fixed storage key.
// Adding a product that is already present merges into its line (quantities
// sum, the line total is recomputed); it never creates a duplicate line.
//
// # Quantity Limits
//
// The server may cap purchases per customer (limited_qty_per_customer).
// Add clamps the merged quantity to that cap and reports the clamp through
// Added.Clamped so the screen can warn the user. The clamp is not an error.
//
// # Persistence
//
// Every mutation rewrites the whole serialized cart. The write is not
// atomic across a process crash; an unparseable cart reads as empty rather
// than wedging the screen. Storage backend failures, by contrast, are fatal
// to the operation and surface to the caller.
//
// # Checkout
//
// PlaceOrder validates locally first (address selected, cart non-empty),
// then submits one order line per cart line. Only a successful submission
// clears the cart; any failure leaves it intact for retry.
package cart
