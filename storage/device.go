package storage

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// DeviceID returns the stable identifier for this device, generating and
// persisting a new one on first access. The identifier scopes device-local
// state such as the global-notification read set.
func DeviceID(store Store) (string, error) {
	bytes, err := store.Get(KeyDeviceID)
	if err == nil {
		if id := strings.TrimSpace(string(bytes)); id != "" {
			return id, nil
		}
	} else if !errors.Is(err, ErrNotFound) {
		return "", err
	}

	id := uuid.NewString()
	if err := store.Set(KeyDeviceID, []byte(id)); err != nil {
		return "", err
	}
	return id, nil
}
