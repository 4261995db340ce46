package city

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-weather/internal/domain/gateway/storage"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
)

var ErrCityRequired = errors.New("city is required")

type cityUseCase struct {
	store       storage.KeyValueGateway
	key         string
	defaultCity string
}

func NewCityUseCase(store storage.KeyValueGateway, key string, defaultCity string) UseCase {
	if key == "" {
		key = DefaultKey
	}
	if defaultCity == "" {
		defaultCity = DefaultCity
	}
	return &cityUseCase{
		store:       store,
		key:         key,
		defaultCity: defaultCity,
	}
}

func (uc *cityUseCase) StoreCity(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrCityRequired
	}

	if err := uc.store.StoreData(ctx, uc.key, name); err != nil {
		return fmt.Errorf("failed to persist city: %w", err)
	}

	log.Debug(msg.GetMessage("city.stored", name))
	return nil
}

func (uc *cityUseCase) LoadCity(ctx context.Context) (string, bool, error) {
	value, found, err := uc.store.GetData(ctx, uc.key)
	if err != nil {
		return uc.defaultCity, true, fmt.Errorf("failed to read persisted city: %w", err)
	}

	if !found || strings.TrimSpace(value) == "" {
		return uc.defaultCity, true, nil
	}
	return value, false, nil
}
