package storage

import "context"

// Persisted snapshot keys, one JSON blob each. Every write replaces the
// whole blob for its key; there is no transaction spanning two keys.
const (
	KeyProducts = "luxe3d_products"
	KeyOrders   = "luxe3d_orders"
	KeySession  = "luxe3d_user"
	KeyRegistry = "luxe3d_registry"
)

// Snapshots is a durable key-value store of JSON-serialized state
// slices. Loaded blobs are trusted as-is; a malformed blob surfaces as
// an unmarshal error at load time.
type Snapshots interface {
	// Load unmarshals the blob stored under key into dest. It reports
	// false with a nil error when the key has never been written.
	Load(ctx context.Context, key string, dest any) (bool, error)

	// Save marshals value and overwrites the blob stored under key.
	Save(ctx context.Context, key string, value any) error

	// Delete removes the blob stored under key, if any.
	Delete(ctx context.Context, key string) error
}
