package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"go-weather/configs"
	"go-weather/internal/application/controller"
	"go-weather/internal/application/middleware"
	"go-weather/internal/application/schedule"
	"go-weather/internal/application/screen"
	"go-weather/internal/application/terminal"
	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/usecase/city"
	"go-weather/internal/domain/usecase/health"
	"go-weather/internal/domain/usecase/weather"
	httpclient "go-weather/pkg/http"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
	"go-weather/pkg/resource"
)

func main() {
	defer log.Sync()

	mode := resource.GetStringOrDefault("app.mode", "terminal")
	if mode == "terminal" {
		log.SetLevel(resource.GetString("app.terminal.log-level"))
	}
	log.Info(msg.GetMessage("app.start", mode))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init infra
	storageGateway, closeStorage, err := newStorageGateway(ctx)
	if err != nil {
		log.Fatal(err.Error())
	}
	defer closeStorage()

	if configs.Env.WeatherAPIKey == "" {
		log.Warn(msg.GetMessage("weather.missing-api-key"))
	}
	clientOptions := httpclient.ClientOptions{
		ConnectionTimeout: resource.GetDurationOrDefault("app.weather.connection-timeout", 10*time.Second),
		ReadTimeout:       resource.GetDurationOrDefault("app.weather.read-timeout", 15*time.Second),
	}

	// Init Gateway
	weatherGateway := api.NewWeatherGateway(configs.Env.WeatherBaseURL, configs.Env.WeatherAPIKey, clientOptions)
	locationGateway := newLocationGateway(clientOptions)

	// Init UseCase
	weatherUseCase := weather.NewWeatherUseCase(weatherGateway, resource.GetIntOrDefault("app.weather.days", weather.DefaultForecastDays))
	cityUseCase := city.NewCityUseCase(storageGateway,
		resource.GetStringOrDefault("app.screen.city-key", city.DefaultKey),
		resource.GetStringOrDefault("app.screen.default-city", city.DefaultCity))
	healthUseCase := health.NewHealthUseCase(storageGateway, weatherGateway)

	// Init Screen
	minQueryLength := resource.GetIntOrDefault("app.screen.min-query-length", screen.DefaultMinQueryLength)
	screenController := screen.NewController(weatherUseCase, cityUseCase, locationGateway, screen.Config{
		Debounce:       resource.GetDurationOrDefault("app.screen.debounce", screen.DefaultDebounce),
		MinQueryLength: minQueryLength,
	})
	defer screenController.Close()

	// Init Schedule
	refreshScheduler := schedule.NewRefreshScheduler(screenController, resource.GetString("app.weather.refresh.cron"))
	if err := refreshScheduler.InitRefreshScheduleTasks(); err != nil {
		log.Fatal(err.Error())
	}
	defer refreshScheduler.Stop()

	screenController.Mount()

	if mode == "server" {
		runServer(ctx, screenController, weatherUseCase, cityUseCase, healthUseCase, minQueryLength)
	} else {
		if err := terminal.NewSession(screenController, os.Stdin, os.Stdout).Run(ctx); err != nil {
			log.Error(err.Error())
		}
	}

	log.Info(msg.GetMessage("app.stop"))
}

func runServer(ctx context.Context, screenController *screen.Controller, weatherUseCase weather.UseCase,
	cityUseCase city.UseCase, healthUseCase health.UseCase, minQueryLength int) {
	e := echo.New()
	e.HideBanner = true
	middleware.SetupRequestLogger(e)
	group := e.Group(resource.GetString("app.server.context-path"))

	// Init Controller
	healthController := controller.NewHealthController(group, healthUseCase)
	weatherController := controller.NewWeatherController(group, weatherUseCase, cityUseCase, minQueryLength)
	screenRoutes := controller.NewScreenController(group, screenController)

	// Init Routes
	healthController.InitHealthRoutes()
	weatherController.InitWeatherRoutes()
	screenRoutes.InitScreenRoutes()

	go func() {
		if err := e.Start(":" + resource.GetStringOrDefault("app.server.port", "8080")); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err.Error())
		}
	}()
	log.Info(msg.GetMessage("app.started"))

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error(err.Error())
	}
}
