package controller

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/gateway/storage"
	"go-weather/internal/domain/usecase/health"
	httpclient "go-weather/pkg/http"
)

func newHealthServer(apiKey string) *echo.Echo {
	e := echo.New()
	weatherGateway := api.NewWeatherGateway("https://api.weatherapi.com/v1", apiKey, httpclient.ClientOptions{})
	NewHealthController(e.Group(contextPath), health.NewHealthUseCase(storage.NewMemoryKeyValueGateway(), weatherGateway)).InitHealthRoutes()
	return e
}

func TestCheckHealth_Up(t *testing.T) {
	recorder := serve(newHealthServer("key"), http.MethodGet, contextPath+"/health", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"status":"UP"`)
	assert.Contains(t, recorder.Body.String(), `"weatherApi"`)
}

func TestCheckHealth_Down(t *testing.T) {
	recorder := serve(newHealthServer(""), http.MethodGet, contextPath+"/health", "")

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "WEATHER_API_KEY is not set")
}
