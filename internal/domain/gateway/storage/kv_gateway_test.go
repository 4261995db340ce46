package storage

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-weather/internal/domain/model"
	database "go-weather/internal/infra/database/gorm"
)

func newSQLiteGateway(t *testing.T) *GormKeyValueGateway {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.OpenSQLite(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	gateway, err := NewGormKeyValueGateway(db)
	require.NoError(t, err)
	return gateway
}

func gateways(t *testing.T) map[string]KeyValueGateway {
	redisGateway, _ := newMiniRedisGateway(t)
	return map[string]KeyValueGateway{
		"memory": NewMemoryKeyValueGateway(),
		"sqlite": newSQLiteGateway(t),
		"redis":  redisGateway,
	}
}

func TestKeyValueGateway_MissingKey(t *testing.T) {
	for name, gateway := range gateways(t) {
		t.Run(name, func(t *testing.T) {
			value, found, err := gateway.GetData(context.Background(), "city")

			require.NoError(t, err)
			assert.False(t, found)
			assert.Empty(t, value)
		})
	}
}

func TestKeyValueGateway_StoreReplacesValue(t *testing.T) {
	for name, gateway := range gateways(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, gateway.StoreData(ctx, "city", "London"))
			require.NoError(t, gateway.StoreData(ctx, "city", "Paris"))
			require.NoError(t, gateway.StoreData(ctx, "other", "x"))

			value, found, err := gateway.GetData(ctx, "city")

			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, "Paris", value)
		})
	}
}

func TestKeyValueGateway_Health(t *testing.T) {
	memory := NewMemoryKeyValueGateway().Health(context.Background())
	assert.Equal(t, model.StatusUp, memory.Status)
	assert.Equal(t, "memory", memory.Details["backend"])

	sqlite := newSQLiteGateway(t).Health(context.Background())
	assert.Equal(t, model.StatusUp, sqlite.Status)
	assert.Equal(t, "sqlite", sqlite.Details["backend"])
}

func TestGormKeyValueGateway_ClosedDatabase(t *testing.T) {
	gateway := newSQLiteGateway(t)
	sqlDB, err := gateway.DB.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, _, err = gateway.GetData(context.Background(), "city")
	assert.Error(t, err)
	assert.Error(t, gateway.StoreData(context.Background(), "city", "London"))
	assert.Equal(t, model.StatusDown, gateway.Health(context.Background()).Status)
}
