package geo

import "context"

// Location is a WGS84 coordinate pair.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Geocoder resolves a place name and country to coordinates. A lookup
// that finds nothing returns (nil, nil); callers treat coordinates as
// optional and never fail on a miss.
type Geocoder interface {
	Geocode(ctx context.Context, name, country string) (*Location, error)
}
