package main

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/gateway/storage"
	"go-weather/internal/domain/model"
	database "go-weather/internal/infra/database/gorm"
	httpclient "go-weather/pkg/http"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
	"go-weather/pkg/redis"
	"go-weather/pkg/resource"
)

// newStorageGateway opens the configured key-value backend. The returned func releases it.
func newStorageGateway(ctx context.Context) (storage.KeyValueGateway, func(), error) {
	backend := resource.GetStringOrDefault("app.storage.backend", "sqlite")

	switch backend {
	case "memory":
		return storage.NewMemoryKeyValueGateway(), func() {}, nil

	case "redis":
		config := redis.NewRedisConfig().
			WithHost(resource.GetStringOrDefault("app.storage.redis.host", "localhost")).
			WithPort(resource.GetIntOrDefault("app.storage.redis.port", 6379)).
			WithPassword(resource.GetString("app.storage.redis.password")).
			WithDatabase(resource.GetInt("app.storage.redis.database")).
			WithKeyPrefix(resource.GetString("app.storage.redis.prefix"))
		client, err := redis.NewClient(config)
		if err != nil {
			return nil, nil, err
		}
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("redis unreachable at %s: %w", config.Addr(), err)
		}
		return storage.NewRedisKeyValueGateway(client), func() { _ = client.Close() }, nil

	case "postgres", "sqlite":
		var (
			db  *gorm.DB
			err error
		)
		if backend == "postgres" {
			db, err = database.OpenPostgres(database.PostgresConfig{
				Host:     resource.GetString("app.storage.postgres.host"),
				Port:     resource.GetString("app.storage.postgres.port"),
				Username: resource.GetString("app.storage.postgres.username"),
				Password: resource.GetString("app.storage.postgres.password"),
				Database: resource.GetString("app.storage.postgres.database"),
				Schema:   resource.GetString("app.storage.postgres.schema"),
			})
		} else {
			db, err = database.OpenSQLite(resource.GetStringOrDefault("app.storage.sqlite.path", "go-weather.db"))
		}
		if err != nil {
			return nil, nil, err
		}
		gateway, err := storage.NewGormKeyValueGateway(db)
		if err != nil {
			return nil, nil, err
		}
		return gateway, func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

// newLocationGateway picks the coordinate provider: "ip", "static" or "denied"
func newLocationGateway(clientOptions httpclient.ClientOptions) api.LocationGateway {
	switch provider := resource.GetStringOrDefault("app.location.provider", "ip"); provider {
	case "static":
		return api.NewStaticLocationGateway(model.Coordinates{
			Latitude:  resource.GetFloat64("app.location.latitude"),
			Longitude: resource.GetFloat64("app.location.longitude"),
		})
	case "denied":
		return api.NewDeniedLocationGateway()
	case "ip":
		return api.NewIPLocationGateway(resource.GetString("app.location.ip-url"), clientOptions)
	default:
		log.Warn(msg.GetMessage("location.unknown-provider", provider))
		return api.NewDeniedLocationGateway()
	}
}
