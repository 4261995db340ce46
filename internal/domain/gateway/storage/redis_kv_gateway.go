package storage

import (
	"context"
	"fmt"

	"go-weather/internal/domain/model"
	"go-weather/pkg/redis"
)

// RedisKeyValueGateway stores values as plain Redis strings without expiration
type RedisKeyValueGateway struct {
	client  *redis.Client
	checker *redis.HealthChecker
}

var _ KeyValueGateway = (*RedisKeyValueGateway)(nil)

func NewRedisKeyValueGateway(client *redis.Client) *RedisKeyValueGateway {
	return &RedisKeyValueGateway{
		client:  client,
		checker: redis.NewHealthChecker(client, 0),
	}
}

func (gateway *RedisKeyValueGateway) StoreData(ctx context.Context, key string, value string) error {
	if err := gateway.client.Set(ctx, key, value, 0); err != nil {
		return fmt.Errorf("failed to store %s in redis: %w", key, err)
	}
	return nil
}

func (gateway *RedisKeyValueGateway) GetData(ctx context.Context, key string) (string, bool, error) {
	value, found, err := gateway.client.Get(ctx, key)
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s from redis: %w", key, err)
	}
	return value, found, nil
}

func (gateway *RedisKeyValueGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	check := gateway.checker.HealthCheck(ctx)
	details := map[string]string{"backend": "redis"}
	for key, value := range check.Details {
		details[key] = value
	}

	status := model.StatusDown
	if check.Status == redis.StatusUp {
		status = model.StatusUp
	}
	return model.ComponentHealthStatus{Status: status, Details: details}
}
