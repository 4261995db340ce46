package storage

import (
	"context"

	"go-weather/internal/domain/model"
)

// KeyValueGateway is the local string store behind the persisted city
type KeyValueGateway interface {
	// StoreData writes value under key, replacing any previous value
	StoreData(ctx context.Context, key string, value string) error

	// GetData reads the value under key; found is false when nothing was stored
	GetData(ctx context.Context, key string) (value string, found bool, err error)

	Health(ctx context.Context) model.ComponentHealthStatus
}
