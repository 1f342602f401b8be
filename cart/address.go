package cart

import "github.com/perchgoods/storefront/gateway"

// DefaultAddress picks the delivery address a checkout screen should start
// with: the server-flagged default when one exists, otherwise the first
// address in the list. The second return is false for an empty list.
//
// Callers derive the selection once when the address list first loads, not
// on every refresh, so a user's manual pick is not overridden.
func DefaultAddress(addrs []gateway.Address) (gateway.Address, bool) {
	if len(addrs) == 0 {
		return gateway.Address{}, false
	}
	for _, addr := range addrs {
		if addr.IsDefault {
			return addr, true
		}
	}
	return addrs[0], true
}
