package controller

import (
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/labstack/echo/v4"

	"go-weather/internal/domain/usecase/city"
	"go-weather/internal/domain/usecase/weather"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
)

// CityDTO is the body of PUT /weather/city and the answer of GET /weather/city
type CityDTO struct {
	City    string `json:"city"`
	Default bool   `json:"default,omitempty"`
}

type WeatherController struct {
	api            *echo.Group
	useCase        weather.UseCase
	cityUseCase    city.UseCase
	minQueryLength int
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase, cityUseCase city.UseCase, minQueryLength int) *WeatherController {
	return &WeatherController{
		api:            api,
		useCase:        useCase,
		cityUseCase:    cityUseCase,
		minQueryLength: minQueryLength,
	}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/weather/forecast", controller.FetchForecast)
	controller.api.GET("/weather/search", controller.SearchLocations)
	controller.api.GET("/weather/city", controller.LoadCity)
	controller.api.PUT("/weather/city", controller.StoreCity)
}

// FetchForecast answers the forecast for a city name or "lat,lon"
func (controller *WeatherController) FetchForecast(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("q"))
	if query == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("weather.query-required")})
	}

	result := controller.useCase.FetchWeatherForecast(c.Request().Context(), query)
	if !result.OK {
		return c.JSON(http.StatusBadGateway, result)
	}
	return c.JSON(http.StatusOK, result)
}

// SearchLocations answers the locations matching a partial city name
func (controller *WeatherController) SearchLocations(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("q"))
	if utf8.RuneCountInString(query) < controller.minQueryLength {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("weather.query-too-short", controller.minQueryLength)})
	}

	result := controller.useCase.FetchSearchList(c.Request().Context(), query)
	if !result.OK {
		return c.JSON(http.StatusBadGateway, result)
	}
	return c.JSON(http.StatusOK, result)
}

// LoadCity answers the persisted city, flagging the default one
func (controller *WeatherController) LoadCity(c echo.Context) error {
	name, isDefault, err := controller.cityUseCase.LoadCity(c.Request().Context())
	if err != nil {
		log.Warn(err.Error())
	}
	return c.JSON(http.StatusOK, CityDTO{City: name, Default: isDefault})
}

// StoreCity persists the city used when location permission is denied
func (controller *WeatherController) StoreCity(c echo.Context) error {
	var dto CityDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	if err := controller.cityUseCase.StoreCity(c.Request().Context(), dto.City); err != nil {
		if errors.Is(err, city.ErrCityRequired) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("city.required")})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, CityDTO{City: strings.TrimSpace(dto.City)})
}
