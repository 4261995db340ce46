package api

import (
	"context"
	"errors"
	"fmt"

	"go-weather/internal/domain/model"
	"go-weather/internal/domain/model/external"
	"go-weather/pkg/http"
)

// LocationGateway is the permission-gated coordinate provider
type LocationGateway interface {
	// RequestPermission asks for access to the device position
	RequestPermission(ctx context.Context) (model.PermissionStatus, error)

	// CurrentPosition returns the current coordinates; only meaningful after permission was granted
	CurrentPosition(ctx context.Context) (model.Coordinates, error)
}

// ErrPermissionDenied is returned by CurrentPosition when no permission was granted
var ErrPermissionDenied = model.NewFetchError(model.FailurePermissionDenied, 0, "location permission denied", nil)

type staticLocationGateway struct {
	coordinates model.Coordinates
}

// NewStaticLocationGateway always grants permission and reports the configured coordinates
func NewStaticLocationGateway(coordinates model.Coordinates) LocationGateway {
	return &staticLocationGateway{coordinates: coordinates}
}

func (g *staticLocationGateway) RequestPermission(context.Context) (model.PermissionStatus, error) {
	return model.PermissionGranted, nil
}

func (g *staticLocationGateway) CurrentPosition(context.Context) (model.Coordinates, error) {
	return g.coordinates, nil
}

type deniedLocationGateway struct{}

// NewDeniedLocationGateway always denies permission, so the persisted or default city is used
func NewDeniedLocationGateway() LocationGateway {
	return deniedLocationGateway{}
}

func (deniedLocationGateway) RequestPermission(context.Context) (model.PermissionStatus, error) {
	return model.PermissionDenied, nil
}

func (deniedLocationGateway) CurrentPosition(context.Context) (model.Coordinates, error) {
	return model.Coordinates{}, ErrPermissionDenied
}

type ipLocationGateway struct {
	httpClient *http.Client
}

// NewIPLocationGateway resolves the position from the public IP through the XML endpoint of an ip-api.com
// compatible service
func NewIPLocationGateway(baseUrl string, clientOptions http.ClientOptions) LocationGateway {
	if clientOptions.Logger == nil {
		clientOptions.Logger = http.ZapLogger{Name: "ip-location"}
	}
	return &ipLocationGateway{httpClient: http.NewHttpClient(baseUrl, clientOptions)}
}

func (g *ipLocationGateway) RequestPermission(context.Context) (model.PermissionStatus, error) {
	return model.PermissionGranted, nil
}

func (g *ipLocationGateway) CurrentPosition(ctx context.Context) (model.Coordinates, error) {
	successResp, _, status, err := g.httpClient.Get(ctx, "/xml",
		map[string]string{"fields": "status,message,country,regionName,city,lat,lon,query"},
		&external.IPLocationResponse{}, nil)
	if err != nil {
		return model.Coordinates{}, classify(err, nil, status)
	}

	response, ok := successResp.(*external.IPLocationResponse)
	if !ok || response == nil {
		return model.Coordinates{}, model.NewFetchError(model.FailureMalformed, status, "empty location body", nil)
	}
	if response.Status != "success" {
		return model.Coordinates{}, model.NewFetchError(model.FailureStatus, status,
			fmt.Sprintf("location lookup failed: %s", response.Message), errors.New(response.Status))
	}
	return model.Coordinates{Latitude: response.Lat, Longitude: response.Lon}, nil
}
