package weather

import (
	"context"

	"go-weather/internal/domain/model"
	"go-weather/internal/domain/model/external"
)

type UseCase interface {
	// FetchWeatherForecast returns current conditions and the forecast window for a city name or "lat,lon"
	FetchWeatherForecast(ctx context.Context, cityName string) model.Result[*external.WeatherForecastResponse]

	// FetchSearchList returns the locations matching a partial city name; an empty list is a success
	FetchSearchList(ctx context.Context, cityName string) model.Result[[]external.SearchLocationDTO]
}
