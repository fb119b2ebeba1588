package brunetlezine

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// StoreBackend selects which session store implementation [Builder.Build]
// constructs when no explicit store is injected.
type StoreBackend string

const (
	// BackendMemory is an exported constant or variable used by the console core.
	BackendMemory StoreBackend = "memory"
	// BackendFile is an exported constant or variable used by the console core.
	BackendFile StoreBackend = "file"
	// BackendRedis is an exported constant or variable used by the console core.
	BackendRedis StoreBackend = "redis"
)

// Config defines a public type used by the console core APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	API     APIConfig
	Routes  RoutesConfig
	Store   StoreConfig
	Metrics MetricsConfig
}

// APIConfig locates the assessment backend.
type APIConfig struct {
	BaseURL   string        `env:"BL_API_BASE_URL"`
	LoginPath string        `env:"BL_LOGIN_PATH"`
	Timeout   time.Duration `env:"BL_HTTP_TIMEOUT"`
}

// RoutesConfig names the two special destinations of the admission state
// machine: where unauthenticated sessions land, and where role-mismatched
// navigation attempts are sent.
type RoutesConfig struct {
	LoginPath string `env:"BL_ROUTE_LOGIN"`
	HomePath  string `env:"BL_ROUTE_HOME"`
}

// StoreConfig selects and parameterizes the session store backend.
type StoreConfig struct {
	Backend  StoreBackend `env:"BL_STORE_BACKEND"`
	FilePath string       `env:"BL_STORE_FILE"`

	RedisAddr     string `env:"BL_REDIS_ADDR"`
	RedisPassword string `env:"BL_REDIS_PASSWORD"`
	RedisDB       int    `env:"BL_REDIS_DB"`
	RedisPrefix   string `env:"BL_REDIS_PREFIX"`
}

// MetricsConfig defines a public type used by the console core APIs.
type MetricsConfig struct {
	Enabled bool `env:"BL_METRICS_ENABLED"`
}

func defaultConfig() Config {
	return Config{
		API: APIConfig{
			LoginPath: "/auth/login",
			Timeout:   15 * time.Second,
		},
		Routes: RoutesConfig{
			LoginPath: "/login",
			HomePath:  "/",
		},
		Store: StoreConfig{
			Backend:     BackendMemory,
			RedisPrefix: "bl",
		},
		Metrics: MetricsConfig{Enabled: true},
	}
}

// LoadFromEnv returns the default configuration overridden by BL_*
// environment variables.
func LoadFromEnv() (Config, error) {
	cfg := defaultConfig()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// Validate describes the validate operation and its observable behavior.
//
// Validate may return an error when input validation, dependency calls, or security checks fail.
// Validate does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c Config) Validate() error {
	if strings.TrimSpace(c.API.BaseURL) == "" {
		return errors.New("API base URL required")
	}
	if strings.TrimSpace(c.API.LoginPath) == "" {
		return errors.New("login path required")
	}
	if c.API.Timeout < 0 {
		return errors.New("invalid HTTP timeout")
	}
	if strings.TrimSpace(c.Routes.LoginPath) == "" || strings.TrimSpace(c.Routes.HomePath) == "" {
		return errors.New("route login and home paths required")
	}

	switch c.Store.Backend {
	case BackendMemory:
	case BackendFile:
		if strings.TrimSpace(c.Store.FilePath) == "" {
			return errors.New("file store requires a path")
		}
	case BackendRedis:
		if strings.TrimSpace(c.Store.RedisAddr) == "" {
			return errors.New("redis store requires an address")
		}
	default:
		return fmt.Errorf("unsupported store backend %q", c.Store.Backend)
	}

	return nil
}
