package screen

import (
	"context"
	"sync"

	"go-weather/internal/domain/model"
	"go-weather/internal/domain/model/external"
)

type forecastFunc func(ctx context.Context, query string) model.Result[*external.WeatherForecastResponse]

type searchFunc func(ctx context.Context, query string) model.Result[[]external.SearchLocationDTO]

// fakeWeather answers from canned functions and records every query
type fakeWeather struct {
	mu            sync.Mutex
	forecast      forecastFunc
	search        searchFunc
	forecastCalls []string
	searchCalls   []string
}

func newFakeWeather() *fakeWeather {
	return &fakeWeather{
		forecast: func(_ context.Context, query string) model.Result[*external.WeatherForecastResponse] {
			return model.Success(forecastFor(query))
		},
		search: func(_ context.Context, query string) model.Result[[]external.SearchLocationDTO] {
			return model.Success(londonResults())
		},
	}
}

func (f *fakeWeather) FetchWeatherForecast(ctx context.Context, cityName string) model.Result[*external.WeatherForecastResponse] {
	f.mu.Lock()
	f.forecastCalls = append(f.forecastCalls, cityName)
	forecast := f.forecast
	f.mu.Unlock()
	return forecast(ctx, cityName)
}

func (f *fakeWeather) FetchSearchList(ctx context.Context, cityName string) model.Result[[]external.SearchLocationDTO] {
	f.mu.Lock()
	f.searchCalls = append(f.searchCalls, cityName)
	search := f.search
	f.mu.Unlock()
	return search(ctx, cityName)
}

func (f *fakeWeather) setForecast(fn forecastFunc) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.forecast = fn
}

func (f *fakeWeather) setSearch(fn searchFunc) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.search = fn
}

func (f *fakeWeather) forecasts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.forecastCalls...)
}

func (f *fakeWeather) searches() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.searchCalls...)
}

type fakeLocation struct {
	status        model.PermissionStatus
	permissionErr error
	coordinates   model.Coordinates
	positionErr   error
}

func (f fakeLocation) RequestPermission(context.Context) (model.PermissionStatus, error) {
	return f.status, f.permissionErr
}

func (f fakeLocation) CurrentPosition(context.Context) (model.Coordinates, error) {
	return f.coordinates, f.positionErr
}

func forecastFor(name string) *external.WeatherForecastResponse {
	return &external.WeatherForecastResponse{
		Location: &external.LocationDTO{Name: name, Region: name + " Region", Country: "Country"},
		Current: &external.CurrentDTO{
			TempC:     21.5,
			Condition: external.ConditionDTO{Text: "Sunny"},
			WindKph:   9,
			Humidity:  40,
		},
		Forecast: external.ForecastDTO{ForecastDay: []external.ForecastDayDTO{
			{Date: "2024-01-15", Day: external.DayDTO{AvgtempC: 19, Condition: external.ConditionDTO{Text: "Sunny"}}, Astro: external.AstroDTO{Sunrise: "06:10 AM"}},
			{Date: "2024-01-16", Day: external.DayDTO{AvgtempC: 17.2, Condition: external.ConditionDTO{Text: "Heavy rain"}}},
		}},
	}
}

func londonResults() []external.SearchLocationDTO {
	return []external.SearchLocationDTO{
		{ID: 1, Name: "London", Region: "City of London, Greater London", Country: "United Kingdom"},
		{ID: 2, Name: "London", Region: "Ontario", Country: "Canada"},
	}
}
