package weather

import (
	"context"

	"go.uber.org/zap"

	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/model/external"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
)

// DefaultForecastDays is the forecast window requested from the API
const DefaultForecastDays = 6

type weatherUseCase struct {
	apiGateway api.WeatherGateway
	days       int
}

func NewWeatherUseCase(apiGateway api.WeatherGateway, days int) UseCase {
	if days <= 0 {
		days = DefaultForecastDays
	}
	return &weatherUseCase{
		apiGateway: apiGateway,
		days:       days,
	}
}

// FetchWeatherForecast gets the forecast for the query, logging any failure
func (uc *weatherUseCase) FetchWeatherForecast(ctx context.Context, cityName string) model.Result[*external.WeatherForecastResponse] {
	forecast, err := uc.apiGateway.GetForecast(ctx, cityName, uc.days)
	result := model.ResultOf(forecast, err)
	if !result.OK {
		logFailure("forecast", cityName, result.Failure)
	}
	return result
}

// FetchSearchList searches locations by partial name, logging any failure
func (uc *weatherUseCase) FetchSearchList(ctx context.Context, cityName string) model.Result[[]external.SearchLocationDTO] {
	locations, err := uc.apiGateway.SearchLocations(ctx, cityName)
	result := model.ResultOf(locations, err)
	if !result.OK {
		logFailure("search", cityName, result.Failure)
	}
	return result
}

func logFailure(endpoint string, query string, failure *model.FetchError) {
	log.Warn(msg.GetMessage("weather.fetch-failed", endpoint, failure.Message),
		zap.String("endpoint", endpoint),
		zap.String("query", query),
		zap.String("kind", string(failure.Kind)),
		zap.Int("status", failure.Status))
}
