package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"courier-dispatch/internal/auth"
	"courier-dispatch/internal/config"
	"courier-dispatch/internal/gateway/business"
	"courier-dispatch/internal/http/handlers"
	appmw "courier-dispatch/internal/http/middleware"
	"courier-dispatch/internal/http/opsserver"
	"courier-dispatch/internal/http/router"
	"courier-dispatch/internal/logx"
	"courier-dispatch/internal/repository"
	"courier-dispatch/internal/service/dispatch"
	"courier-dispatch/internal/service/intake"
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error)
	migrate   func(*pgxpool.Pool) error
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
func (b *ContainerBuilder) WithDBConnect(
	fn func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithMigrate sets the schema migration function
func (b *ContainerBuilder) WithMigrate(fn func(*pgxpool.Pool) error) *ContainerBuilder {
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

// MustBuild builds and returns the API server container
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

// MustBuildWorker builds and returns the intake worker container
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
	if err := registerDb(container, b.dbConnect, b.migrate); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := provideAll(container, provideMetrics); err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}
	if err := registerDomainServices(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
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
	if err := registerDb(container, b.dbConnect, b.migrate); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerWorker(container); err != nil {
		return nil, fmt.Errorf("worker: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds and returns the API server container
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

// MustBuildWorkerContainer builds and returns the intake worker container
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
	)
}

func registerDb(
	container *dig.Container,
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
	migrate func(*pgxpool.Pool) error,
) error {
	providerDB := func(ctx context.Context, cfg *config.Config, logger logx.Logger) (*pgxpool.Pool, error) {
		pool, err := dbConnect(ctx, cfg.DB.DSN(), 10, time.Second)
		if err != nil {
			return nil, err
		}
		if err := migrate(pool); err != nil {
			closePool(pool)
			return nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("database ready")
		return pool, nil
	}
	return provideAll(container, providerDB)
}

type directoryIn struct {
	dig.In

	Logger  logx.Logger
	Repo    *repository.BusinessRepo
	Retries prometheus.Counter `name:"directory_retries_total"`
}

func newBusinessDirectory(in directoryIn) *business.RetryingDirectory {
	return business.NewRetryingDirectory(in.Repo, in.Logger, in.Retries, business.RetryConfig{})
}

type dispatchIn struct {
	dig.In

	Cfg       *config.Config
	Logger    logx.Logger
	Orders    *repository.OrderRepo
	Directory *business.RetryingDirectory
	Settings  *repository.SettingsRepo
	Ledger    *repository.EarningsRepo
	Estimator dispatch.PickupEstimator
	Claimed   prometheus.Counter `name:"orders_claimed_total"`
	Conflicts prometheus.Counter `name:"claim_conflicts_total"`
	Settled   prometheus.Counter `name:"deliveries_settled_total"`
}

func newDispatchService(in dispatchIn) *dispatch.Service {
	svc := dispatch.NewService(
		in.Orders,
		in.Directory,
		in.Settings,
		in.Ledger,
		in.Estimator,
		dispatch.Config{
			DefaultRadiusM:   in.Cfg.Dispatch.DefaultRadiusM,
			OperationTimeout: in.Cfg.Dispatch.OperationTimeout,
			FallbackRate:     in.Cfg.Dispatch.FallbackCourierRate,
		},
		in.Logger,
	)
	return svc.WithCounters(dispatch.Counters{
		Claimed:   in.Claimed,
		Conflicts: in.Conflicts,
		Settled:   in.Settled,
	})
}

func newAuthVerifier(cfg *config.Config) (*auth.Verifier, error) {
	return auth.NewVerifier(cfg.Auth.JWTSecret)
}

func registerDomainServices(container *dig.Container) error {
	return provideAll(container,
		repository.NewOrderRepo,
		repository.NewBusinessRepo,
		repository.NewSettingsRepo,
		repository.NewEarningsRepo,
		newBusinessDirectory,
		dispatch.NewPickupEstimator,
		newDispatchService,
		newAuthVerifier,
	)
}

type opsServerOut struct {
	dig.Out

	Server *http.Server `name:"ops_server"`
}

func provideOpsServer(cfg *config.Config) opsServerOut {
	if cfg.Ops.Addr == "" {
		return opsServerOut{}
	}
	return opsServerOut{Server: &http.Server{
		Addr:              cfg.Ops.Addr,
		Handler:           opsserver.Handler(opsserver.Config{User: cfg.Ops.User, Pass: cfg.Ops.Pass}),
		ReadHeaderTimeout: 5 * time.Second,
	}}
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
	return provideAll(container,
		handlers.New,
		handlers.NewDispatchUsecase,
		handlers.NewDispatchHandler,
		func(v *auth.Verifier) appmw.TokenParser { return v },
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
		router.New,
		serverProvider,
		provideOpsServer,
	)
}

func registerWorker(container *dig.Container) error {
	return provideAll(container,
		repository.NewOrderRepo,
		func(repo *repository.OrderRepo, logger logx.Logger) *intake.Processor {
			return intake.NewProcessor(repo, logger)
		},
		makeIntakeHandler,
		newIntakeConsumer,
	)
}
