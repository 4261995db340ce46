package city

import "context"

// DefaultCity is used when no city was ever persisted
const DefaultCity = "New Delhi"

// DefaultKey is the storage key of the persisted city
const DefaultKey = "city"

type UseCase interface {
	// StoreCity persists name as the city to fall back to
	StoreCity(ctx context.Context, name string) error

	// LoadCity returns the persisted city, or the default one when none was stored or the store failed.
	// err reports a store failure; name is usable either way.
	LoadCity(ctx context.Context) (name string, isDefault bool, err error)
}
