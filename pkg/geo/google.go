package geo

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

type GoogleGeocoder struct {
	client *maps.Client
}

func NewGoogleGeocoder(apiKey string) (*GoogleGeocoder, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Maps client: %w", err)
	}

	return &GoogleGeocoder{client: client}, nil
}

func (g *GoogleGeocoder) Geocode(ctx context.Context, name, country string) (*Location, error) {
	req := &maps.GeocodingRequest{
		Address: fmt.Sprintf("%s, %s", name, country),
	}

	results, err := g.client.Geocode(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("geocoding failed: %w", err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	return &Location{
		Latitude:  results[0].Geometry.Location.Lat,
		Longitude: results[0].Geometry.Location.Lng,
	}, nil
}
