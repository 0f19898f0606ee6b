package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"weatherlookup.app/pkg/errors"
	"weatherlookup.app/pkg/validation"
)

const (
	maxRedisDB            = 15
	maxPortNumber         = 65535
	maxHTTPTimeoutSeconds = 120
)

// Config represents the application configuration structure
type Config struct {
	Server      ServerConfig      `split_words:"true"`
	Weather     WeatherConfig     `split_words:"true"`
	History     HistoryConfig     `split_words:"true"`
	Database    DatabaseConfig    `split_words:"true"`
	Redis       RedisConfig       `split_words:"true"`
	Geolocation GeolocationConfig `split_words:"true"`
	Log         LogConfig         `split_words:"true"`
}

type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

type WeatherConfig struct {
	APIKey                 string  `envconfig:"OPENWEATHERMAP_API_KEY"`
	BaseURL                string  `envconfig:"OPENWEATHERMAP_API_BASE_URL" default:"https://api.openweathermap.org/data/2.5"`
	Units                  string  `envconfig:"WEATHER_UNITS" default:"metric"`
	HTTPTimeoutSeconds     int     `envconfig:"WEATHER_HTTP_TIMEOUT_SECONDS" default:"10"`
	EnableLogging          bool    `envconfig:"WEATHER_ENABLE_LOGGING" default:"true"`
	LogFilePath            string  `envconfig:"WEATHER_LOG_FILE_PATH" default:"logs/weather_providers.log"`
	RateLimitRPS           float64 `envconfig:"WEATHER_RATE_LIMIT_RPS" default:"0"`
	RateLimitBurst         int     `envconfig:"WEATHER_RATE_LIMIT_BURST" default:"1"`
	CircuitBreakerEnabled  bool    `envconfig:"WEATHER_CIRCUIT_BREAKER_ENABLED" default:"true"`
	CircuitBreakerFailures int     `envconfig:"WEATHER_CIRCUIT_BREAKER_FAILURES" default:"5"`
	CircuitBreakerTimeout  int     `envconfig:"WEATHER_CIRCUIT_BREAKER_TIMEOUT_SECONDS" default:"30"`
}

// StorageType selects the history storage backend
type StorageType int

const (
	StorageTypeUnknown StorageType = iota
	StorageTypeMemory
	StorageTypeFile
	StorageTypeRedis
	StorageTypeSQLite
	StorageTypePostgres
)

var storageTypeNames = map[StorageType]string{
	StorageTypeMemory:   "memory",
	StorageTypeFile:     "file",
	StorageTypeRedis:    "redis",
	StorageTypeSQLite:   "sqlite",
	StorageTypePostgres: "postgres",
}

// String returns the string representation of storage type
func (s StorageType) String() string {
	if name, ok := storageTypeNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsValid checks if the storage type is valid
func (s StorageType) IsValid() bool {
	_, ok := storageTypeNames[s]
	return ok
}

// StorageTypeFromString converts string to StorageType enum
func StorageTypeFromString(s string) StorageType {
	value := strings.ToLower(strings.TrimSpace(s))
	for storageType, name := range storageTypeNames {
		if name == value {
			return storageType
		}
	}
	return StorageTypeUnknown
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (s *StorageType) UnmarshalText(text []byte) error {
	*s = StorageTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (s StorageType) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type HistoryConfig struct {
	StorageType StorageType `envconfig:"HISTORY_STORAGE_TYPE" default:"file"`
	Key         string      `envconfig:"HISTORY_KEY" default:"weatherSearchHistory"`
	FileDir     string      `envconfig:"HISTORY_FILE_DIR" default:"data"`
	SQLitePath  string      `envconfig:"HISTORY_SQLITE_PATH" default:"data/history.db"`
}

type DatabaseConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     int    `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name     string `envconfig:"DB_NAME" default:"weatherlookup"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	KeyPrefix    string `envconfig:"REDIS_KEY_PREFIX" default:"weatherlookup:"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

const (
	GeolocationModeNone   = "none"
	GeolocationModeIP     = "ip"
	GeolocationModeStatic = "static"
)

type GeolocationConfig struct {
	Mode           string  `envconfig:"GEOLOCATION_MODE" default:"ip"`
	IPURL          string  `envconfig:"GEOLOCATION_IP_URL" default:"http://ip-api.com/json"`
	TimeoutSeconds int     `envconfig:"GEOLOCATION_TIMEOUT_SECONDS" default:"5"`
	Lat            float64 `envconfig:"GEOLOCATION_LAT" default:"0"`
	Lon            float64 `envconfig:"GEOLOCATION_LON" default:"0"`
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Weather.Validate(); err != nil {
		return err
	}
	if err := c.History.Validate(); err != nil {
		return err
	}
	if err := c.Geolocation.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}

	switch c.History.StorageType {
	case StorageTypeRedis:
		return c.Redis.Validate()
	case StorageTypePostgres:
		return c.Database.Validate()
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (w *WeatherConfig) Validate() error {
	if !validation.IsNotEmpty(w.APIKey) {
		return errors.NewConfigurationError("OPENWEATHERMAP_API_KEY must be configured", nil)
	}
	if !isHTTPURL(w.BaseURL) {
		return errors.NewConfigurationError("OPENWEATHERMAP_API_BASE_URL must start with http:// or https://", nil)
	}

	switch w.Units {
	case "standard", "metric", "imperial":
	default:
		return errors.NewConfigurationError("WEATHER_UNITS must be one of: standard, metric, imperial", nil)
	}

	if w.HTTPTimeoutSeconds < 1 || w.HTTPTimeoutSeconds > maxHTTPTimeoutSeconds {
		return errors.NewConfigurationError("WEATHER_HTTP_TIMEOUT_SECONDS must be between 1 and 120", nil)
	}
	if w.EnableLogging && w.LogFilePath == "" {
		return errors.NewConfigurationError("WEATHER_LOG_FILE_PATH cannot be empty when WEATHER_ENABLE_LOGGING is set", nil)
	}
	if w.RateLimitRPS < 0 {
		return errors.NewConfigurationError("WEATHER_RATE_LIMIT_RPS cannot be negative", nil)
	}
	if w.RateLimitRPS > 0 && w.RateLimitBurst < 1 {
		return errors.NewConfigurationError("WEATHER_RATE_LIMIT_BURST must be at least 1", nil)
	}
	if w.CircuitBreakerEnabled {
		if w.CircuitBreakerFailures < 1 {
			return errors.NewConfigurationError("WEATHER_CIRCUIT_BREAKER_FAILURES must be at least 1", nil)
		}
		if w.CircuitBreakerTimeout < 1 {
			return errors.NewConfigurationError("WEATHER_CIRCUIT_BREAKER_TIMEOUT_SECONDS must be at least 1 second", nil)
		}
	}
	return nil
}

func (h *HistoryConfig) Validate() error {
	if !h.StorageType.IsValid() {
		return errors.NewConfigurationError("HISTORY_STORAGE_TYPE must be one of: memory, file, redis, sqlite, postgres", nil)
	}
	if !validation.IsNotEmpty(h.Key) {
		return errors.NewConfigurationError("HISTORY_KEY cannot be empty", nil)
	}
	if h.StorageType == StorageTypeFile && h.FileDir == "" {
		return errors.NewConfigurationError("HISTORY_FILE_DIR cannot be empty when using file storage", nil)
	}
	if h.StorageType == StorageTypeSQLite && h.SQLitePath == "" {
		return errors.NewConfigurationError("HISTORY_SQLITE_PATH cannot be empty when using sqlite storage", nil)
	}
	return nil
}

func (d *DatabaseConfig) Validate() error {
	if d.Host == "" {
		return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
	}
	if d.Port < 1 || d.Port > maxPortNumber {
		return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
	}
	if d.User == "" {
		return errors.NewConfigurationError("DB_USER cannot be empty", nil)
	}
	if d.Name == "" {
		return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
	}
	return d.ValidateSSLMode()
}

func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis storage", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

func (g *GeolocationConfig) Validate() error {
	switch g.Mode {
	case GeolocationModeNone:
		return nil
	case GeolocationModeIP:
		if !isHTTPURL(g.IPURL) {
			return errors.NewConfigurationError("GEOLOCATION_IP_URL must start with http:// or https://", nil)
		}
		if g.TimeoutSeconds < 1 {
			return errors.NewConfigurationError("GEOLOCATION_TIMEOUT_SECONDS must be at least 1 second", nil)
		}
		return nil
	case GeolocationModeStatic:
		if !validation.IsValidLatitude(g.Lat) || !validation.IsValidLongitude(g.Lon) {
			return errors.NewConfigurationError("GEOLOCATION_LAT and GEOLOCATION_LON must be valid coordinates", nil)
		}
		return nil
	default:
		return errors.NewConfigurationError("GEOLOCATION_MODE must be one of: none, ip, static", nil)
	}
}

func (l *LogConfig) Validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "warning", "error":
		return nil
	}
	return errors.NewConfigurationError("LOG_LEVEL must be one of: debug, info, warn, error", nil)
}

func isHTTPURL(value string) bool {
	return strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://")
}
