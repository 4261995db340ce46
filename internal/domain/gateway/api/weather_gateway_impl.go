package api

import (
	"context"
	"errors"
	"strconv"

	"go-weather/internal/domain/model"
	"go-weather/internal/domain/model/external"
	"go-weather/pkg/http"
)

// weatherGatewayImpl implements the WeatherGateway interface
type weatherGatewayImpl struct {
	httpClient *http.Client
	apiKey     string
}

// NewWeatherGateway creates a new instance of WeatherGateway with HTTP client.
// The API key travels as the "key" query parameter of every request.
func NewWeatherGateway(baseUrl string, apiKey string, clientOptions http.ClientOptions) WeatherGateway {
	clientOptions.DefaultQueryParams = map[string]string{"key": apiKey}
	if clientOptions.Logger == nil {
		clientOptions.Logger = http.ZapLogger{Name: "weather-api"}
	}

	return &weatherGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
		apiKey:     apiKey,
	}
}

// GetForecast gets the forecast for a city name or "lat,lon" pair
func (w *weatherGatewayImpl) GetForecast(ctx context.Context, query string, days int) (*external.WeatherForecastResponse, error) {
	successResp, errResp, status, err := w.httpClient.Request().
		WithContext(ctx).
		WithPath("/forecast.json").
		WithQueryParams(map[string]string{"q": query, "days": strconv.Itoa(days)}).
		WithSuccessResp(&external.WeatherForecastResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		return nil, classify(err, errResp, status)
	}

	response, ok := successResp.(*external.WeatherForecastResponse)
	if !ok || response == nil {
		return nil, model.NewFetchError(model.FailureMalformed, status, "empty forecast body", nil)
	}
	if response.Location == nil || response.Current == nil {
		return nil, model.NewFetchError(model.FailureMalformed, status, "forecast body has no location or current conditions", nil)
	}
	return response, nil
}

// SearchLocations searches for locations by partial name
func (w *weatherGatewayImpl) SearchLocations(ctx context.Context, query string) ([]external.SearchLocationDTO, error) {
	successResp, errResp, status, err := w.httpClient.Request().
		WithContext(ctx).
		WithPath("/search.json").
		WithQueryParams(map[string]string{"q": query}).
		WithSuccessResp(&[]external.SearchLocationDTO{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		return nil, classify(err, errResp, status)
	}

	response, ok := successResp.(*[]external.SearchLocationDTO)
	if !ok || response == nil || *response == nil {
		return []external.SearchLocationDTO{}, nil
	}
	return *response, nil
}

func (w *weatherGatewayImpl) Health() model.ComponentHealthStatus {
	details := map[string]string{"base_url": w.httpClient.BaseURL()}
	if w.apiKey == "" {
		details["message"] = "WEATHER_API_KEY is not set"
		return model.ComponentHealthStatus{Status: model.StatusDown, Details: details}
	}
	details["message"] = string(model.StatusUp)
	return model.ComponentHealthStatus{Status: model.StatusUp, Details: details}
}

// classify maps a pkg/http failure to the FetchError taxonomy
func classify(err error, errResp any, status int) error {
	var statusErr *http.StatusError
	if errors.As(err, &statusErr) {
		message := string(statusErr.Body)
		if apiErr, ok := errResp.(*external.APIErrorResponse); ok && apiErr.Error.Message != "" {
			message = apiErr.Error.Message
		}
		return model.NewFetchError(model.FailureStatus, statusErr.StatusCode, message, err)
	}

	var decodeErr *http.DecodeError
	if errors.As(err, &decodeErr) {
		return model.NewFetchError(model.FailureMalformed, status, "", err)
	}

	return model.NewFetchError(model.FailureNetwork, status, "", err)
}
