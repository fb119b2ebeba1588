package brunetlezine

import (
	"errors"
	"net/http"

	"github.com/Alexnarea/brunet-lezine/gateway"
	"github.com/Alexnarea/brunet-lezine/route"
	"github.com/Alexnarea/brunet-lezine/store"
	"github.com/redis/go-redis/v9"
)

// Builder defines a public type used by the console core APIs.
//
// Builder instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Builder struct {
	config     Config
	store      store.Store
	httpClient *http.Client
	redis      *redis.Client
	routes     *route.Table

	built bool
}

// New describes the new operation and its observable behavior.
//
// New does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig describes the withconfig operation and its observable behavior.
//
// WithConfig does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cfg
	return b
}

// WithStore injects a session store, overriding the backend selected by
// [StoreConfig].
func (b *Builder) WithStore(s store.Store) *Builder {
	b.store = s
	return b
}

// WithHTTPClient injects the HTTP client used by the gateway. When absent,
// a client with the configured timeout is used.
func (b *Builder) WithHTTPClient(client *http.Client) *Builder {
	b.httpClient = client
	return b
}

// WithRedis injects an existing Redis client for the redis store backend,
// instead of having Build dial one from [StoreConfig].
func (b *Builder) WithRedis(client *redis.Client) *Builder {
	b.redis = client
	return b
}

// WithRouteTable overrides the console's default route surface.
func (b *Builder) WithRouteTable(table *route.Table) *Builder {
	b.routes = table
	return b
}

// WithMetricsEnabled describes the withmetricsenabled operation and its observable behavior.
//
// WithMetricsEnabled does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// Build describes the build operation and its observable behavior.
//
// Build may return an error when input validation, dependency calls, or security checks fail.
// Build does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) Build() (*Engine, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	cfg := b.config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	sessionStore := b.store
	if sessionStore == nil {
		var err error
		sessionStore, err = b.buildStore(cfg.Store)
		if err != nil {
			return nil, err
		}
	}

	table := b.routes
	if table == nil {
		table = route.DefaultTable()
	}

	engine := &Engine{
		config:  cfg,
		store:   sessionStore,
		guard:   route.NewGuard(table, cfg.Routes.LoginPath, cfg.Routes.HomePath),
		metrics: NewMetrics(cfg.Metrics),
	}

	httpClient := b.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.API.Timeout}
	}

	// The engine is its own token source: the gateway reads the store
	// through it on every request.
	gw, err := gateway.NewClient(cfg.API.BaseURL, httpClient, engine)
	if err != nil {
		return nil, err
	}
	engine.gateway = gw

	b.built = true

	return engine, nil
}

func (b *Builder) buildStore(cfg StoreConfig) (store.Store, error) {
	switch cfg.Backend {
	case BackendMemory:
		return store.NewMemory(), nil
	case BackendFile:
		return store.NewFile(cfg.FilePath), nil
	case BackendRedis:
		client := b.redis
		if client == nil {
			client = redis.NewClient(&redis.Options{
				Addr:     cfg.RedisAddr,
				Password: cfg.RedisPassword,
				DB:       cfg.RedisDB,
			})
		}
		return store.NewRedis(client, cfg.RedisPrefix), nil
	default:
		return nil, errors.New("unsupported store backend")
	}
}
