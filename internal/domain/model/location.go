package model

import "strconv"

// PermissionStatus is the answer of the location service to a permission request
type PermissionStatus string

const (
	PermissionGranted PermissionStatus = "granted"
	PermissionDenied  PermissionStatus = "denied"
)

// Coordinates is a position reported by the location service
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Query formats the coordinates the way the forecast endpoint accepts them: "lat,lon"
func (c Coordinates) Query() string {
	return strconv.FormatFloat(c.Latitude, 'f', -1, 64) + "," + strconv.FormatFloat(c.Longitude, 'f', -1, 64)
}
