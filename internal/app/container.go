package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"service-assistance/internal/config"
	"service-assistance/internal/http/handlers"
	"service-assistance/internal/http/middleware/ratelimit"
	"service-assistance/internal/http/pprofserver"
	"service-assistance/internal/http/router"
	"service-assistance/internal/logx"
	"service-assistance/internal/repository"
	"service-assistance/internal/service/dispatch"
	"service-assistance/internal/service/provider"
	"service-assistance/internal/service/request"
)

type pprofServerOut struct {
	dig.Out

	Server *http.Server `name:"pprof_server"`
}

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	dbConnect func(context.Context, logx.Logger, string, int, time.Duration) (*pgxpool.Pool, error)
	logFatalf func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		dbConnect: connectDbWithRetry,
		logFatalf: log.Fatalf,
	}
}

// WithDBConnect sets the database connection function
func (b *ContainerBuilder) WithDBConnect(
	fn func(context.Context, logx.Logger, string, int, time.Duration) (*pgxpool.Pool, error),
) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
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

// MustBuild builds the API container.
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

// MustBuildWorker builds the notification worker container.
func (b *ContainerBuilder) MustBuildWorker(ctx context.Context) *dig.Container {
	container, err := b.buildWorker(ctx)
	if err != nil {
		b.logFatalf("failed to build worker container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerOutbox(container); err != nil {
		return nil, fmt.Errorf("outbox: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

func (b *ContainerBuilder) buildWorker(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerWorker(container); err != nil {
		return nil, fmt.Errorf("worker: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds the API container with default wiring.
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

// MustBuildWorkerContainer builds the worker container with default wiring.
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuildWorker(ctx)
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
		NewLogger,
		config.Load,
		newMetrics,
	)
}

func registerDb(
	container *dig.Container,
	dbConnect func(context.Context, logx.Logger, string, int, time.Duration) (*pgxpool.Pool, error),
) error {
	providerDB := func(ctx context.Context, logger logx.Logger, cfg *config.Config) (*pgxpool.Pool, error) {
		return dbConnect(ctx, logger, cfg.DB.DSN(), 10, time.Second)
	}
	return provideAll(container, providerDB)
}

func registerService(container *dig.Container) error {
	return provideAll(container,
		repository.NewProviderRepo,
		repository.NewRequestRepo,
		repository.NewDispatchRepo,
		repository.NewOutboxRepo,
		func() time.Duration { return 3 * time.Second },
		func(repo *repository.ProviderRepo, timeout time.Duration) *provider.Service {
			return provider.NewService(repo, timeout)
		},
		func(repo *repository.RequestRepo, timeout time.Duration) *request.Service {
			return request.NewService(repo, timeout)
		},
		func(repo *repository.DispatchRepo, timeout time.Duration, logger logx.Logger) *dispatch.Service {
			return dispatch.NewService(repo, timeout, logger)
		},
	)
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	routerProvider := func(
		logger logx.Logger,
		base *handlers.Handlers,
		ph *handlers.ProviderHandler,
		rh *handlers.RequestHandler,
		dh *handlers.DispatchHandler,
		rl *ratelimit.Middleware,
	) http.Handler {
		return router.New(router.Deps{
			Logger:    logger,
			Base:      base,
			Providers: ph,
			Requests:  rh,
			Dispatch:  dh,
			RateLimit: rl,
		})
	}
	pprofProvider := func(cfg *config.Config) pprofServerOut {
		if cfg.Pprof.Port == 0 {
			return pprofServerOut{}
		}
		return pprofServerOut{Server: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Pprof.Port),
			Handler:           pprofserver.Handler(pprofserver.Config{User: cfg.Pprof.User, Pass: cfg.Pprof.Pass}),
			ReadHeaderTimeout: 5 * time.Second,
		}}
	}
	return provideAll(container,
		pprofProvider,
		handlers.New,
		handlers.NewProviderUsecase,
		handlers.NewProviderHandler,
		handlers.NewRequestUsecase,
		handlers.NewRequestHandler,
		handlers.NewDispatchUsecase,
		handlers.NewDispatchHandler,
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
		routerProvider,
		serverProvider,
	)
}
