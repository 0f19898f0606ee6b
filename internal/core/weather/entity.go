package weather

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Coordinates is a geographic position in decimal degrees
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Location identifies a place the provider resolved a lookup to
type Location struct {
	Name    string      `json:"name"`
	Country string      `json:"country"`
	Coords  Coordinates `json:"coords"`
}

// Condition is the provider's primary weather condition
type Condition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Measurements holds the weather fields shared by current conditions and forecast samples.
// Units follow the provider's metric mode: °C, hPa, m/s, metres, percent.
type Measurements struct {
	Temperature float64   `json:"temperature"`
	FeelsLike   float64   `json:"feels_like"`
	TempMin     float64   `json:"temp_min"`
	TempMax     float64   `json:"temp_max"`
	Humidity    int       `json:"humidity"`
	Pressure    int       `json:"pressure"`
	WindSpeed   float64   `json:"wind_speed"`
	WindDeg     int       `json:"wind_deg"`
	Visibility  int       `json:"visibility"`
	Clouds      int       `json:"clouds"`
	Condition   Condition `json:"condition"`
}

// CurrentConditions is a snapshot for a location at a point in time
type CurrentConditions struct {
	Location Location `json:"location"`
	Measurements
	Timestamp      time.Time `json:"timestamp"`
	Sunrise        time.Time `json:"sunrise"`
	Sunset         time.Time `json:"sunset"`
	TimezoneOffset int       `json:"timezone_offset"`
}

// ForecastSample is one predicted point in time
type ForecastSample struct {
	Measurements
	PrecipitationProbability float64   `json:"precipitation_probability"`
	Time                     time.Time `json:"time"`
}

// Forecast is the ordered sample series for a location, ascending by time
type Forecast struct {
	Location Location         `json:"location"`
	Samples  []ForecastSample `json:"samples"`
}

// IsValid validates a current-conditions snapshot
func (c *CurrentConditions) IsValid() error {
	if c.Temperature < -273.15 {
		return fmt.Errorf("temperature cannot be below absolute zero")
	}
	if c.Humidity < 0 || c.Humidity > 100 {
		return fmt.Errorf("humidity must be between 0 and 100")
	}
	if c.Timestamp.IsZero() {
		return fmt.Errorf("timestamp cannot be empty")
	}
	return nil
}

// RoundedTemperature returns the temperature rounded for display
func (m Measurements) RoundedTemperature() int {
	return int(math.Round(m.Temperature))
}

// RoundedFeelsLike returns the feels-like temperature rounded for display
func (m Measurements) RoundedFeelsLike() int {
	return int(math.Round(m.FeelsLike))
}

// VisibilityKm converts visibility to kilometres with one decimal
func (m Measurements) VisibilityKm() float64 {
	return math.Round(float64(m.Visibility)/100) / 10
}

// PrecipitationPercent converts the precipitation probability to a whole percentage
func (s ForecastSample) PrecipitationPercent() int {
	return int(math.Round(s.PrecipitationProbability * 100))
}

// String returns a short human-readable form, e.g. "London, GB: 15.0°C, light rain"
func (c *CurrentConditions) String() string {
	place := c.Location.Name
	if c.Location.Country != "" {
		place = place + ", " + c.Location.Country
	}
	return fmt.Sprintf("%s: %.1f°C, %s", strings.TrimSpace(place), c.Temperature, c.Condition.Description)
}
