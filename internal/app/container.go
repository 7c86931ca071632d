package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/dig"

	"mdelivery-zones/internal/config"
	"mdelivery-zones/internal/geo"
	"mdelivery-zones/internal/http/debugserver"
	"mdelivery-zones/internal/http/handlers"
	"mdelivery-zones/internal/http/middleware/ratelimit"
	"mdelivery-zones/internal/http/router"
	"mdelivery-zones/internal/logx"
	"mdelivery-zones/internal/metrics"
	"mdelivery-zones/internal/repository"
	"mdelivery-zones/internal/service/editevents"
	"mdelivery-zones/internal/service/editsession"
	"mdelivery-zones/internal/service/radius"
	"mdelivery-zones/internal/service/zone"
	"mdelivery-zones/internal/transport/kafka"
)

type dbConnectFunc func(context.Context, logx.Logger, string, int, time.Duration) (*pgxpool.Pool, error)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	dbConnect dbConnectFunc
	migrate   func(context.Context, *pgxpool.Pool) error
	logFatalf func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		dbConnect: connectDbWithRetry,
		migrate:   repository.Migrate,
		logFatalf: log.Fatalf,
	}
}

// WithDBConnect sets the database connection function
func (b *ContainerBuilder) WithDBConnect(fn dbConnectFunc) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithMigrate sets the schema migration function
func (b *ContainerBuilder) WithMigrate(fn func(context.Context, *pgxpool.Pool) error) *ContainerBuilder {
	if fn != nil {
		b.migrate = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds and returns a new dig container
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect, b.migrate); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	if err := registerKafka(container); err != nil {
		return nil, fmt.Errorf("kafka: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds and returns a new dig container
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context) error {
	return provideAll(container,
		func() context.Context { return ctx },
		config.Load,
		func(cfg *config.Config) logx.Logger { return NewLogger(os.Stdout, cfg.Log) },
		newPromRegistry,
		func(reg *prometheus.Registry) prometheus.Gatherer { return reg },
		func(reg *prometheus.Registry) *metrics.Registry { return metrics.New(reg) },
	)
}

func newPromRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func registerDb(
	container *dig.Container,
	dbConnect dbConnectFunc,
	migrate func(context.Context, *pgxpool.Pool) error,
) error {
	providerDB := func(ctx context.Context, cfg *config.Config, logger logx.Logger) (*pgxpool.Pool, error) {
		pool, err := dbConnect(ctx, logger, cfg.DB.DSN(), 10, time.Second)
		if err != nil {
			return nil, err
		}
		if err := migrate(ctx, pool); err != nil {
			if pool != nil {
				pool.Close()
			}
			return nil, fmt.Errorf("migrate: %w", err)
		}
		return pool, nil
	}
	return provideAll(container, providerDB)
}

type operationTimeout time.Duration

func registerService(container *dig.Container) error {
	return provideAll(container,
		repository.NewZoneRepo,
		repository.NewRadiusRepo,
		func() operationTimeout { return operationTimeout(3 * time.Second) },
		func(repo *repository.ZoneRepo, timeout operationTimeout, logger logx.Logger) *zone.Service {
			return zone.NewService(repo, time.Duration(timeout), logger)
		},
		func(
			repo *repository.RadiusRepo,
			zones *zone.Service,
			cfg *config.Config,
			timeout operationTimeout,
			logger logx.Logger,
		) *radius.Service {
			night := radius.NightWindow{Start: cfg.Quote.NightStart, End: cfg.Quote.NightEnd}
			return radius.NewService(repo, zones, night, time.Duration(timeout), logger)
		},
		func(zones *zone.Service, cfg *config.Config, logger logx.Logger, m *metrics.Registry) *editsession.Manager {
			return editsession.NewManager(zones, editsession.Config{
				PollInterval: cfg.Sync.PollInterval,
				Precision:    cfg.Sync.Precision,
				WriteTimeout: cfg.Sync.WriteTimeout,
				IdleTTL:      cfg.Sync.IdleTTL,
			}, logger, editsession.WithMetrics(m))
		},
		func(m *editsession.Manager, logger logx.Logger) *editevents.Processor {
			return editevents.NewProcessor(m, logger)
		},
	)
}

func viewportOptions(cfg *config.Config) geo.ViewportOptions {
	return geo.ViewportOptions{
		Margin:  cfg.Map.Margin,
		MinZoom: cfg.Map.MinZoom,
		MaxZoom: cfg.Map.MaxZoom,
	}
}

type routerIn struct {
	dig.In

	Base      *handlers.Handlers
	Zones     *handlers.ZoneHandler
	Radii     *handlers.RadiusHandler
	Sessions  *handlers.SessionHandler
	Logger    logx.Logger
	Metrics   *metrics.Registry
	Gatherer  prometheus.Gatherer
	RateLimit *ratelimit.Middleware
}

func newRouter(in routerIn) http.Handler {
	return router.New(router.Deps{
		Base:      in.Base,
		Zones:     in.Zones,
		Radii:     in.Radii,
		Sessions:  in.Sessions,
		Logger:    in.Logger,
		Metrics:   in.Metrics,
		Gatherer:  in.Gatherer,
		RateLimit: in.RateLimit,
	})
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	return provideAll(container,
		func(logger logx.Logger, pool *pgxpool.Pool) *handlers.Handlers {
			h := handlers.New(logger)
			if pool != nil {
				h.WithDB(pool)
			}
			return h
		},
		func(logger logx.Logger, svc *zone.Service, cfg *config.Config) *handlers.ZoneHandler {
			return handlers.NewZoneHandler(logger, svc, viewportOptions(cfg))
		},
		func(logger logx.Logger, svc *radius.Service) *handlers.RadiusHandler {
			return handlers.NewRadiusHandler(logger, svc)
		},
		func(logger logx.Logger, m *editsession.Manager) *handlers.SessionHandler {
			return handlers.NewSessionHandler(logger, m)
		},
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
		newRouter,
		serverProvider,
		newDebugServer,
	)
}

type debugServerOut struct {
	dig.Out

	Server *http.Server `name:"debug_server"`
}

// newDebugServer returns a nil server when the debug listener is disabled.
func newDebugServer(cfg *config.Config, sessions *editsession.Manager) debugServerOut {
	if !cfg.Debug.Enabled {
		return debugServerOut{}
	}
	return debugServerOut{Server: debugserver.New(
		cfg.Debug.Addr,
		debugserver.Config{User: cfg.Debug.User, Pass: cfg.Debug.Pass},
		sessions,
	)}
}

func registerKafka(container *dig.Container) error {
	return provideAll(container,
		func(cfg *config.Config, logger logx.Logger, p *editevents.Processor) (*kafka.Consumer, error) {
			return kafka.NewConsumer(logger, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topic, makeEditEventsHandler(p))
		},
	)
}
