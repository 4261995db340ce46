package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

// HealthStatus is the coarse state reported by HealthCheck
type HealthStatus string

const (
	StatusUp   HealthStatus = "UP"
	StatusDown HealthStatus = "DOWN"
)

// RedisHealthCheck represents the health check response for Redis
type RedisHealthCheck struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthChecker provides Redis health checking functionality
type HealthChecker struct {
	client  *Client
	timeout time.Duration
}

// NewHealthChecker creates a new Redis health checker
func NewHealthChecker(client *Client, timeout time.Duration) *HealthChecker {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &HealthChecker{client: client, timeout: timeout}
}

// HealthCheck pings Redis and performs a write/read round trip on a scratch key
func (h *HealthChecker) HealthCheck(ctx context.Context) RedisHealthCheck {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	config := h.client.GetConfig()
	details := map[string]string{
		"host":     config.Host,
		"port":     strconv.Itoa(config.Port),
		"database": strconv.Itoa(config.Database),
	}

	if err := h.client.Ping(ctx); err != nil {
		details["last_error"] = fmt.Sprintf("ping failed: %v", err)
		return RedisHealthCheck{Status: StatusDown, Details: details}
	}

	if err := h.roundTrip(ctx); err != nil {
		details["last_error"] = err.Error()
		return RedisHealthCheck{Status: StatusDown, Details: details}
	}

	stats := h.client.PoolStats()
	details["total_conns"] = strconv.FormatUint(uint64(stats.TotalConns), 10)
	details["idle_conns"] = strconv.FormatUint(uint64(stats.IdleConns), 10)
	return RedisHealthCheck{Status: StatusUp, Details: details}
}

func (h *HealthChecker) roundTrip(ctx context.Context) error {
	const testKey, testValue = "health_check_test", "ok"

	if err := h.client.Set(ctx, testKey, testValue, time.Minute); err != nil {
		return fmt.Errorf("set operation failed: %w", err)
	}
	value, found, err := h.client.Get(ctx, testKey)
	if err != nil {
		return fmt.Errorf("get operation failed: %w", err)
	}
	if !found || value != testValue {
		return fmt.Errorf("value mismatch: expected %s, got %q", testValue, value)
	}
	if err := h.client.Delete(ctx, testKey); err != nil {
		return fmt.Errorf("delete operation failed: %w", err)
	}
	return nil
}
