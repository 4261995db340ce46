package storage

import (
	"context"
	"strconv"
	"sync"

	"go-weather/internal/domain/model"
)

// MemoryKeyValueGateway keeps values for the lifetime of the process
type MemoryKeyValueGateway struct {
	values map[string]string
	mutex  sync.RWMutex
}

var _ KeyValueGateway = (*MemoryKeyValueGateway)(nil)

func NewMemoryKeyValueGateway() *MemoryKeyValueGateway {
	return &MemoryKeyValueGateway{values: make(map[string]string)}
}

func (gateway *MemoryKeyValueGateway) StoreData(_ context.Context, key string, value string) error {
	gateway.mutex.Lock()
	defer gateway.mutex.Unlock()
	gateway.values[key] = value
	return nil
}

func (gateway *MemoryKeyValueGateway) GetData(_ context.Context, key string) (string, bool, error) {
	gateway.mutex.RLock()
	defer gateway.mutex.RUnlock()
	value, found := gateway.values[key]
	return value, found, nil
}

func (gateway *MemoryKeyValueGateway) Health(context.Context) model.ComponentHealthStatus {
	gateway.mutex.RLock()
	defer gateway.mutex.RUnlock()
	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"backend": "memory",
			"keys":    strconv.Itoa(len(gateway.values)),
		},
	}
}
