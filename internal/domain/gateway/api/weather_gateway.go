package api

import (
	"context"

	"go-weather/internal/domain/model"
	"go-weather/internal/domain/model/external"
)

// WeatherGateway defines the interface for weather-related external API calls.
// Every error it returns is a *model.FetchError.
type WeatherGateway interface {
	// GetForecast gets current conditions and a multi-day forecast
	// query: a city name or a "lat,lon" pair
	// days: number of forecast days
	GetForecast(ctx context.Context, query string, days int) (*external.WeatherForecastResponse, error)

	// SearchLocations searches for locations whose name matches the partial query
	SearchLocations(ctx context.Context, query string) ([]external.SearchLocationDTO, error)

	// Health reports whether the gateway is usable (an API key is configured)
	Health() model.ComponentHealthStatus
}
