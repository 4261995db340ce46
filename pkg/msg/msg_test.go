package msg

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMessage_ReplacesPlaceholders(t *testing.T) {
	require.NoError(t, Init(""))

	assert.Equal(t, "Starting go-weather in server mode", GetMessage("app.start", "server"))
	assert.Equal(t, "Discarding stale search result (token 2, latest 3)",
		GetMessage("screen.stale-result", "search", uint64(2), uint64(3)))
}

func TestGetMessage_ArgumentKinds(t *testing.T) {
	require.NoError(t, Init(""))

	assert.Equal(t, "Failed to persist city London: disk full",
		GetMessage("screen.persist-failed", "London", errors.New("disk full")))
	assert.Equal(t, "Query must have at least 3 characters", GetMessage("weather.query-too-short", 3))
	assert.Equal(t, "Location unavailable: 1.5s", GetMessage("screen.location-failed", 1500*time.Millisecond))
	assert.Equal(t, `No search result at position {"i":1}`,
		GetMessage("screen.invalid-selection", map[string]int{"i": 1}))
}

func TestGetMessage_LogCatalogue(t *testing.T) {
	require.NoError(t, Init(""))

	assert.Equal(t, "Forecast request already in flight, refresh skipped", GetMessage("refresh.skipped"))
	assert.Equal(t, "Current location resolved to 51.5,-0.12", GetMessage("screen.location-resolved", "51.5,-0.12"))
	assert.Equal(t, "Unknown location provider gps, location permission will be denied",
		GetMessage("location.unknown-provider", "gps"))
	assert.Equal(t, "GET request to http://ip-api.com/xml failed: boom",
		GetMessage("http.request-failed", "GET", "http://ip-api.com/xml", errors.New("boom")))
}

func TestGetMessage_UnknownKey(t *testing.T) {
	assert.Equal(t, "Message not found: nope.nothing", GetMessage("nope.nothing"))
}

func TestInit_FileOverridesBundled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.yml")
	require.NoError(t, os.WriteFile(path, []byte("city:\n  stored: \"Cidade {0} salva\"\n"), 0o600))

	require.NoError(t, Init(path))
	t.Cleanup(func() { _ = Init("") })

	assert.Equal(t, "Cidade Recife salva", GetMessage("city.stored", "Recife"))
	assert.Equal(t, "city is required", GetMessage("city.required"))
}
