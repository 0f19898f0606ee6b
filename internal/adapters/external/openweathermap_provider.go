package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"weatherlookup.app/internal/core/weather"
	"weatherlookup.app/internal/ports"
	"weatherlookup.app/pkg/errors"
	"weatherlookup.app/pkg/validation"
)

const (
	defaultOpenWeatherMapURL = "https://api.openweathermap.org/data/2.5"
	defaultUnits             = "metric"
	defaultRequestTimeout    = 10 * time.Second
)

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// OpenWeatherMapProviderAdapter implements WeatherProvider port for OpenWeatherMap
type OpenWeatherMapProviderAdapter struct {
	apiKey    string
	baseURL   string
	units     string
	client    HTTPClient
	validator *validator.Validate
	logger    ports.Logger
}

// OpenWeatherMapProviderParams holds parameters for creating OpenWeatherMap provider
type OpenWeatherMapProviderParams struct {
	APIKey  string
	BaseURL string
	Units   string
	Timeout time.Duration
	Client  HTTPClient
	Logger  ports.Logger
}

type owmCondition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type owmMain struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Pressure  int     `json:"pressure"`
	Humidity  int     `json:"humidity"`
}

type owmWind struct {
	Speed float64 `json:"speed"`
	Deg   int     `json:"deg"`
}

type owmClouds struct {
	All int `json:"all"`
}

type owmCoord struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// owmCurrentResponse represents the /weather payload
type owmCurrentResponse struct {
	Coord      owmCoord       `json:"coord"`
	Weather    []owmCondition `json:"weather" validate:"required,min=1"`
	Main       *owmMain       `json:"main" validate:"required"`
	Visibility int            `json:"visibility"`
	Wind       owmWind        `json:"wind"`
	Clouds     owmClouds      `json:"clouds"`
	Dt         int64          `json:"dt"`
	Sys        struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
	Timezone int    `json:"timezone"`
	Name     string `json:"name"`
}

type owmForecastItem struct {
	Dt         int64          `json:"dt"`
	Main       *owmMain       `json:"main" validate:"required"`
	Weather    []owmCondition `json:"weather" validate:"required,min=1"`
	Clouds     owmClouds      `json:"clouds"`
	Wind       owmWind        `json:"wind"`
	Visibility int            `json:"visibility"`
	Pop        float64        `json:"pop" validate:"gte=0,lte=1"`
}

// owmForecastResponse represents the /forecast payload
type owmForecastResponse struct {
	List []owmForecastItem `json:"list" validate:"required,dive"`
	City struct {
		Name     string   `json:"name"`
		Country  string   `json:"country"`
		Coord    owmCoord `json:"coord"`
		Timezone int      `json:"timezone"`
	} `json:"city"`
}

// NewOpenWeatherMapProviderAdapter creates a new OpenWeatherMap provider adapter
func NewOpenWeatherMapProviderAdapter(params OpenWeatherMapProviderParams) *OpenWeatherMapProviderAdapter {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenWeatherMapURL
	}

	units := params.Units
	if units == "" {
		units = defaultUnits
	}

	client := params.Client
	if client == nil {
		timeout := params.Timeout
		if timeout <= 0 {
			timeout = defaultRequestTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	return &OpenWeatherMapProviderAdapter{
		apiKey:    params.APIKey,
		baseURL:   strings.TrimRight(baseURL, "/"),
		units:     units,
		client:    client,
		validator: validator.New(),
		logger:    params.Logger,
	}
}

// GetCurrentByCity retrieves current conditions for a city name
func (p *OpenWeatherMapProviderAdapter) GetCurrentByCity(ctx context.Context, city string) (*weather.CurrentConditions, error) {
	query, err := cityQuery(city)
	if err != nil {
		return nil, err
	}

	var resp owmCurrentResponse
	if err := p.fetch(ctx, "weather", query, &resp, "City not found or API error: %d"); err != nil {
		return nil, err
	}
	return resp.toDomain(), nil
}

// GetForecastByCity retrieves the forecast series for a city name
func (p *OpenWeatherMapProviderAdapter) GetForecastByCity(ctx context.Context, city string) (*weather.Forecast, error) {
	query, err := cityQuery(city)
	if err != nil {
		return nil, err
	}

	var resp owmForecastResponse
	if err := p.fetch(ctx, "forecast", query, &resp, "Forecast data not available: %d"); err != nil {
		return nil, err
	}
	return resp.toDomain(), nil
}

// GetCurrentByCoords retrieves current conditions for a coordinate pair
func (p *OpenWeatherMapProviderAdapter) GetCurrentByCoords(ctx context.Context, lat, lon float64) (*weather.CurrentConditions, error) {
	query, err := coordsQuery(lat, lon)
	if err != nil {
		return nil, err
	}

	var resp owmCurrentResponse
	if err := p.fetch(ctx, "weather", query, &resp, "API error: %d"); err != nil {
		return nil, err
	}
	return resp.toDomain(), nil
}

// GetForecastByCoords retrieves the forecast series for a coordinate pair
func (p *OpenWeatherMapProviderAdapter) GetForecastByCoords(ctx context.Context, lat, lon float64) (*weather.Forecast, error) {
	query, err := coordsQuery(lat, lon)
	if err != nil {
		return nil, err
	}

	var resp owmForecastResponse
	if err := p.fetch(ctx, "forecast", query, &resp, "Forecast data not available: %d"); err != nil {
		return nil, err
	}
	return resp.toDomain(), nil
}

// GetProviderName returns the name of this weather provider
func (p *OpenWeatherMapProviderAdapter) GetProviderName() string {
	return "openweathermap"
}

func cityQuery(city string) (url.Values, error) {
	name, ok := validation.TrimAndValidate(city)
	if !ok {
		return nil, errors.NewValidationError("city cannot be empty")
	}
	return url.Values{"q": {name}}, nil
}

func coordsQuery(lat, lon float64) (url.Values, error) {
	if !validation.IsValidLatitude(lat) || !validation.IsValidLongitude(lon) {
		return nil, errors.NewValidationError(fmt.Sprintf("coordinates out of range: %f,%f", lat, lon))
	}
	return url.Values{
		"lat": {strconv.FormatFloat(lat, 'f', -1, 64)},
		"lon": {strconv.FormatFloat(lon, 'f', -1, 64)},
	}, nil
}

// fetch issues one GET against endpoint and decodes a validated payload into target.
// statusFormat renders the user-facing message for non-2xx responses.
func (p *OpenWeatherMapProviderAdapter) fetch(ctx context.Context, endpoint string, query url.Values, target interface{}, statusFormat string) error {
	query.Set("appid", p.apiKey)
	query.Set("units", p.units)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/"+endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return errors.NewProviderError("failed to build OpenWeatherMap request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.NewProviderError("failed to call OpenWeatherMap", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			p.logger.Warn("Failed to close OpenWeatherMap response body", ports.F("error", closeErr))
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.NewStatusError(fmt.Sprintf(statusFormat, resp.StatusCode), resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return errors.NewProviderError("failed to decode OpenWeatherMap response", err)
	}

	if err := p.validator.Struct(target); err != nil {
		return errors.NewProviderError("incomplete OpenWeatherMap response", err)
	}

	return nil
}

func (c owmCondition) toDomain() weather.Condition {
	return weather.Condition{
		ID:          c.ID,
		Main:        c.Main,
		Description: c.Description,
		Icon:        c.Icon,
	}
}

func measurements(main *owmMain, conditions []owmCondition, wind owmWind, clouds owmClouds, visibility int) weather.Measurements {
	return weather.Measurements{
		Temperature: main.Temp,
		FeelsLike:   main.FeelsLike,
		TempMin:     main.TempMin,
		TempMax:     main.TempMax,
		Humidity:    main.Humidity,
		Pressure:    main.Pressure,
		WindSpeed:   wind.Speed,
		WindDeg:     wind.Deg,
		Visibility:  visibility,
		Clouds:      clouds.All,
		Condition:   conditions[0].toDomain(),
	}
}

func (r *owmCurrentResponse) toDomain() *weather.CurrentConditions {
	zone := time.FixedZone("", r.Timezone)

	return &weather.CurrentConditions{
		Location: weather.Location{
			Name:    r.Name,
			Country: r.Sys.Country,
			Coords:  weather.Coordinates{Lat: r.Coord.Lat, Lon: r.Coord.Lon},
		},
		Measurements:   measurements(r.Main, r.Weather, r.Wind, r.Clouds, r.Visibility),
		Timestamp:      time.Unix(r.Dt, 0).In(zone),
		Sunrise:        time.Unix(r.Sys.Sunrise, 0).In(zone),
		Sunset:         time.Unix(r.Sys.Sunset, 0).In(zone),
		TimezoneOffset: r.Timezone,
	}
}

func (r *owmForecastResponse) toDomain() *weather.Forecast {
	zone := time.FixedZone("", r.City.Timezone)

	samples := make([]weather.ForecastSample, 0, len(r.List))
	for _, item := range r.List {
		samples = append(samples, weather.ForecastSample{
			Measurements:             measurements(item.Main, item.Weather, item.Wind, item.Clouds, item.Visibility),
			PrecipitationProbability: item.Pop,
			Time:                     time.Unix(item.Dt, 0).In(zone),
		})
	}

	return &weather.Forecast{
		Location: weather.Location{
			Name:    r.City.Name,
			Country: r.City.Country,
			Coords:  weather.Coordinates{Lat: r.City.Coord.Lat, Lon: r.City.Coord.Lon},
		},
		Samples: samples,
	}
}
