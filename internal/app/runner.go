package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"mdelivery-zones/internal/logx"
	"mdelivery-zones/internal/service/editsession"
	"mdelivery-zones/internal/transport/kafka"
)

const (
	shutdownTimeout        = 15 * time.Second
	sessionShutdownTimeout = 5 * time.Second
)

// Runner runs the service from a DI container.
type Runner struct {
	runFn func(*dig.Container) error
	exit  func(int)
}

// NewRunner returns a Runner that serves HTTP, reaps idle sessions and consumes edit events.
func NewRunner() *Runner {
	return &Runner{runFn: run, exit: os.Exit}
}

// MustRun runs the service and exits the process on a fatal error.
func (r *Runner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil {
		return
	}
	logger := containerLogger(container)
	switch {
	case errors.Is(err, context.Canceled):
		logger.Info("shutdown requested, exiting")
	case errors.Is(err, context.DeadlineExceeded):
		logger.Error("startup aborted: startup timeout exceeded")
	default:
		logger.Error("run error", logx.Err(err))
		if r.exit != nil {
			r.exit(1)
		}
	}
}

func containerLogger(container *dig.Container) logx.Logger {
	var logger logx.Logger
	if err := container.Invoke(func(l logx.Logger) { logger = l }); err != nil || logger == nil {
		return logx.Nop()
	}
	return logger
}

type appDeps struct {
	dig.In

	Ctx      context.Context
	Logger   logx.Logger
	Server   *http.Server
	Pool     *pgxpool.Pool
	Sessions *editsession.Manager
	Consumer *kafka.Consumer `optional:"true"`
	Debug    *http.Server    `name:"debug_server" optional:"true"`
}

func run(container *dig.Container) error {
	return container.Invoke(appRun)
}

func appRun(d appDeps) error {
	serverErr := startServer(d.Server, d.Logger)
	startDebugServer(d.Debug, d.Logger)
	startReaperLoop(d.Ctx, d.Logger, d.Sessions, d.Sessions.Config().IdleTTL/2)
	consumerDone := startConsumer(d.Ctx, d.Logger, d.Consumer)

	err := waitForShutdown(d.Ctx, d.Logger, serverErr)

	gracefulShutdown(d.Server, d.Logger, shutdownTimeout)
	if d.Debug != nil {
		gracefulShutdown(d.Debug, d.Logger, shutdownTimeout)
	}
	shutdownSessions(d.Sessions, d.Logger, sessionShutdownTimeout)
	<-consumerDone
	closeResources(d.Pool, d.Consumer, d.Logger)
	return err
}

func startServer(server *http.Server, logger logx.Logger) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("service-zones listening", logx.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	return errCh
}

// startDebugServer serves profiling endpoints. A listen failure is logged and does not stop the service.
func startDebugServer(server *http.Server, logger logx.Logger) {
	if server == nil {
		return
	}
	go func() {
		logger.Info("debug server listening", logx.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Warn("debug server stopped", logx.Err(err))
		}
	}()
}

// startReaperLoop closes idle edit sessions every interval until ctx is done.
func startReaperLoop(ctx context.Context, logger logx.Logger, sessions *editsession.Manager, interval time.Duration) {
	if sessions == nil || interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				if n := sessions.Reap(now); n > 0 {
					logger.Info("idle edit sessions closed", logx.Int("count", n))
				}
			}
		}
	}()
}

func startConsumer(ctx context.Context, logger logx.Logger, consumer *kafka.Consumer) <-chan struct{} {
	done := make(chan struct{})
	if consumer == nil {
		close(done)
		return done
	}
	go func() {
		defer close(done)
		logger.Info("edit events consumer started")
		if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("edit events consumer stopped", logx.Err(err))
		}
	}()
	return done
}

func waitForShutdown(ctx context.Context, logger logx.Logger, serverErr <-chan error) error {
	select {
	case <-ctx.Done():
		logger.Info("shutting down service-zones...")
		return ctx.Err()
	case err := <-serverErr:
		logger.Error("listen error", logx.Err(err))
		return err
	}
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Error("graceful shutdown error", logx.Err(err))
	}
}

func shutdownSessions(sessions *editsession.Manager, logger logx.Logger, timeout time.Duration) {
	if sessions == nil {
		return
	}
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := sessions.Shutdown(shCtx); err != nil {
		logger.Error("edit sessions shutdown error", logx.Err(err))
	}
}

func closeResources(pool *pgxpool.Pool, consumer *kafka.Consumer, logger logx.Logger) {
	if consumer != nil {
		if err := consumer.Close(); err != nil {
			logger.Error("kafka close error", logx.Err(err))
		}
	}
	if pool != nil {
		pool.Close()
	}
}
