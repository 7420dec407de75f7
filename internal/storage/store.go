package storage

import "context"

// Persisted key names. They match the browser localStorage keys of the
// original storefront so exported state stays compatible.
const (
	KeyCart   = "cart"
	KeyMenu   = "menu"
	KeyOrders = "orders"
)

// Store is the key-value port every aggregate persists through. Drivers hold
// raw bytes per key; the codec in this package owns the serialization format.
type Store interface {
	// Get returns the raw value at key. The boolean is false when the key has
	// never been written.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set overwrites the full value at key.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	Close(ctx context.Context) error
}
