package health

import (
	"context"

	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/gateway/storage"
	"go-weather/internal/domain/model"
)

type healthUseCase struct {
	storageGateway storage.KeyValueGateway
	weatherGateway api.WeatherGateway
}

func NewHealthUseCase(storageGateway storage.KeyValueGateway, weatherGateway api.WeatherGateway) UseCase {
	return &healthUseCase{
		storageGateway: storageGateway,
		weatherGateway: weatherGateway,
	}
}

func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	storageHealth := useCase.storageGateway.Health(ctx)
	weatherHealth := useCase.weatherGateway.Health()

	overallStatus := model.StatusUp
	if storageHealth.Status != model.StatusUp || weatherHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:     overallStatus,
		Storage:    storageHealth,
		WeatherAPI: weatherHealth,
	}
}
