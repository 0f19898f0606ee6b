package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"weatherlookup.app/internal/core/weather"
	"weatherlookup.app/internal/ports"
	"weatherlookup.app/pkg/errors"
	"weatherlookup.app/pkg/validation"
)

const defaultIPGeolocationURL = "http://ip-api.com/json"

// IPGeolocatorParams holds parameters for creating an IP based geolocator
type IPGeolocatorParams struct {
	URL     string
	Timeout time.Duration
	Client  HTTPClient
	Logger  ports.Logger
}

// IPGeolocator resolves the host position from its public IP address
type IPGeolocator struct {
	url    string
	client HTTPClient
	logger ports.Logger
}

type ipAPIResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	City    string  `json:"city"`
}

// NewIPGeolocator creates a new IP based geolocator
func NewIPGeolocator(params IPGeolocatorParams) *IPGeolocator {
	url := params.URL
	if url == "" {
		url = defaultIPGeolocationURL
	}

	client := params.Client
	if client == nil {
		timeout := params.Timeout
		if timeout <= 0 {
			timeout = 5 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}

	return &IPGeolocator{url: url, client: client, logger: params.Logger}
}

// CurrentPosition performs one lookup; any failure is a LocationUnavailableError
func (g *IPGeolocator) CurrentPosition(ctx context.Context) (weather.Coordinates, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.url, nil)
	if err != nil {
		return weather.Coordinates{}, errors.NewLocationUnavailableError("failed to build geolocation request", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return weather.Coordinates{}, errors.NewLocationUnavailableError("geolocation service unreachable", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			g.logger.Warn("Failed to close geolocation response body", ports.F("error", closeErr))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return weather.Coordinates{}, errors.NewLocationUnavailableError(fmt.Sprintf("geolocation service returned status %d", resp.StatusCode), nil)
	}

	var body ipAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return weather.Coordinates{}, errors.NewLocationUnavailableError("failed to decode geolocation response", err)
	}

	if body.Status != "success" {
		return weather.Coordinates{}, errors.NewLocationUnavailableError(fmt.Sprintf("geolocation denied: %s", body.Message), nil)
	}

	if !validation.IsValidLatitude(body.Lat) || !validation.IsValidLongitude(body.Lon) {
		return weather.Coordinates{}, errors.NewLocationUnavailableError("geolocation returned invalid coordinates", nil)
	}

	g.logger.Debug("Resolved position from IP", ports.F("city", body.City), ports.F("lat", body.Lat), ports.F("lon", body.Lon))
	return weather.Coordinates{Lat: body.Lat, Lon: body.Lon}, nil
}
