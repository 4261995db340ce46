package resource

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_BundledDefaults(t *testing.T) {
	require.NoError(t, Init(filepath.Join(t.TempDir(), "missing.yml")))

	assert.Equal(t, "/go-weather", GetString("app.server.context-path"))
	assert.Equal(t, 8080, GetInt("app.server.port"))
	assert.Equal(t, 1200*time.Millisecond, GetDuration("app.screen.debounce"))
	assert.Equal(t, 3, GetInt("app.screen.min-query-length"))
	assert.Equal(t, "New Delhi", GetString("app.screen.default-city"))
	assert.InDelta(t, 28.61, GetFloat64("app.location.latitude"), 0.0001)
}

func TestInit_EmptyDefaultPlaceholder(t *testing.T) {
	require.NoError(t, Init(""))

	assert.True(t, IsSet("app.weather.refresh.cron"))
	assert.Equal(t, "", GetString("app.weather.refresh.cron"))
	assert.Equal(t, "fallback", GetStringOrDefault("app.weather.refresh.cron", "fallback"))
}

func TestInit_EnvironmentOverridesDefault(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "redis")
	t.Setenv("SCREEN_DEBOUNCE", "300ms")
	require.NoError(t, Init(""))
	t.Cleanup(func() { _ = Init("") })

	assert.Equal(t, "redis", GetString("app.storage.backend"))
	assert.Equal(t, 300*time.Millisecond, GetDurationOrDefault("app.screen.debounce", time.Second))
}

func TestInit_FileMergesOverBundled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "application.yml")
	content := "app:\n  mode: server\n  weather:\n    days: 3\n  custom: ${GO_WEATHER_TEST_UNSET:abc}-${GO_WEATHER_TEST_SET:x}\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("GO_WEATHER_TEST_SET", "yz")

	require.NoError(t, Init(path))
	t.Cleanup(func() { _ = Init("") })

	assert.Equal(t, "server", GetString("app.mode"))
	assert.Equal(t, 3, GetIntOrDefault("app.weather.days", 6))
	assert.Equal(t, "abc-yz", GetString("app.custom"))
	// keys absent from the file keep their bundled value
	assert.Equal(t, "city", GetString("app.screen.city-key"))
}

func TestInit_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "application.yml")
	require.NoError(t, os.WriteFile(path, []byte("app: [unclosed"), 0o600))

	assert.Error(t, Init(path))
}

func TestGetOrDefault_Fallbacks(t *testing.T) {
	require.NoError(t, Init(""))

	assert.Equal(t, 42, GetIntOrDefault("app.does.not.exist", 42))
	assert.Equal(t, time.Second, GetDurationOrDefault("app.does.not.exist", time.Second))
	assert.Equal(t, "x", GetStringOrDefault("app.does.not.exist", "x"))
}
