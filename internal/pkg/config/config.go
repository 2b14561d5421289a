package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, upstream URL, etc.)
// - default: Values common across all environments (timeouts, TTL, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	Gateway GatewayConfig
	Storage StorageConfig
	Cache   CacheConfig
	CORS    CORSConfig
	Log     LogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type GatewayConfig struct {
	BaseURL     string        `envconfig:"GATEWAY_BASE_URL" required:"true"`
	Timeout     time.Duration `envconfig:"GATEWAY_TIMEOUT" default:"10s"`
	MaxAttempts int           `envconfig:"GATEWAY_MAX_ATTEMPTS" default:"3"`
	RetryDelay  time.Duration `envconfig:"GATEWAY_RETRY_DELAY" default:"1s"`
	CallbackURL string        `envconfig:"GATEWAY_CALLBACK_URL" default:"https://myurl/callback"`
}

type StorageConfig struct {
	Path string `envconfig:"STORAGE_PATH" default:"payref.db"`
}

type CacheConfig struct {
	TTL time.Duration `envconfig:"CACHE_TTL" default:"30m"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Bogota"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-18000"` // -5*60*60
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Gateway: GatewayConfig{
			BaseURL:     "http://localhost:18080/api",
			Timeout:     2 * time.Second,
			MaxAttempts: 3,
			RetryDelay:  10 * time.Millisecond,
			CallbackURL: "https://myurl/callback",
		},
		Storage: StorageConfig{
			Path: "payref_test.db",
		},
		Cache: CacheConfig{
			TTL: 30 * time.Minute,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Bogota",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -18000,
		},
	}
}
