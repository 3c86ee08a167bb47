package app

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"courier-dispatch/internal/logx"
)

// Runner runs the HTTP server
type Runner struct {
	runFn  func(*dig.Container) error
	fatalf func(string, ...interface{})
}

// NewRunner returns a new Runner
func NewRunner() *Runner {
	return &Runner{runFn: run, fatalf: log.Fatalf}
}

// MustRun starts the HTTP server using the provided DI container
func (r *Runner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil {
		return
	}
	switch {
	case errors.Is(err, context.Canceled):
		logVia(container, "shutdown requested, exiting")
	case errors.Is(err, context.DeadlineExceeded):
		logVia(container, "startup aborted: startup timeout exceeded")
	default:
		fatalf := r.fatalf
		if fatalf == nil {
			fatalf = log.Fatalf
		}
		fatalf("run error: %v", err)
	}
}

func logVia(container *dig.Container, msg string) {
	if err := container.Invoke(func(logger logx.Logger) { logger.Info(msg) }); err != nil {
		log.Println(msg)
	}
}

type runIn struct {
	dig.In

	Ctx    context.Context
	Logger logx.Logger
	Pool   *pgxpool.Pool
	Main   *http.Server
	Ops    *http.Server `name:"ops_server" optional:"true"`
}

func run(container *dig.Container) error {
	return container.Invoke(func(in runIn) error {
		startServer(in.Main, "courier-dispatch", in.Logger)
		if in.Ops != nil {
			startServer(in.Ops, "ops", in.Logger)
		}
		waitForShutdown(in.Ctx, in.Logger)
		gracefulShutdown(in.Main, in.Logger, 15*time.Second)
		if in.Ops != nil {
			gracefulShutdown(in.Ops, in.Logger, time.Second)
		}
		closeResources(in.Pool, in.Main, in.Logger)
		return in.Ctx.Err()
	})
}

func startServer(server *http.Server, name string, logger logx.Logger) {
	go func() {
		logger.Info(name+" listening", logx.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen error: %v", err)
		}
	}()
}

func waitForShutdown(ctx context.Context, logger logx.Logger) {
	<-ctx.Done()
	logger.Info("shutting down courier-dispatch...")
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Error("graceful shutdown error", logx.Err(err))
	}
}

func closeResources(pool *pgxpool.Pool, server *http.Server, logger logx.Logger) {
	if err := server.Close(); err != nil {
		logger.Error("server close error", logx.Err(err))
	}
	if pool != nil {
		pool.Close()
	}
}
