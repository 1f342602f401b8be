package storage

import (
	"errors"
	"fmt"
)

// ErrStorage wraps every failure of the device-local storage backend.
// Callers match it with errors.Is.
var ErrStorage = errors.New("storage unavailable")

// ErrNotFound reports that a key has never been written.
var ErrNotFound = errors.New("key not found")

// Store is device-local persistent key-value storage. Values are opaque
// byte slices; callers own serialization. Set overwrites the whole value,
// it is not append-only.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Remove(key string) error
}

// Well-known keys used by the storefront core.
const (
	KeyCart     = "cart"
	KeyReadSet  = "read-notifications"
	KeyToken    = "auth-token"
	KeyDeviceID = "device-id"
)

func wrapStorage(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, ErrStorage, err)
}
