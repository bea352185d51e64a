package app

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"service-assistance/internal/logx"
	"service-assistance/internal/outbox"
	"service-assistance/internal/transport/kafka"
)

// MustRun starts the HTTP server and the outbox relay using the provided DI container
func MustRun(container *dig.Container) {
	if err := run(container); err != nil {
		switch {
		case errors.Is(err, context.Canceled):
			log.Println("shutdown requested, exiting")
			return
		case errors.Is(err, context.DeadlineExceeded):
			log.Println("startup aborted: startup timeout exceeded")
			return
		default:
			log.Fatalf("run error: %v", err)
		}
	}
}

type runIn struct {
	dig.In

	Ctx      context.Context
	Server   *http.Server
	Pprof    *http.Server `name:"pprof_server"`
	Pool     *pgxpool.Pool
	Logger   logx.Logger
	Relay    *outbox.Relay
	Producer *kafka.Producer
}

func run(container *dig.Container) error {
	return container.Invoke(func(in runIn) error {
		startRelay(in.Ctx, in.Relay, in.Logger)
		startPprof(in.Pprof, in.Logger)
		startServer(in.Server, in.Logger)
		waitForShutdown(in.Ctx, in.Logger)
		gracefulShutdown(in.Server, in.Logger, 15*time.Second)
		closeResources(in.Pool, in.Server, in.Pprof, in.Producer, in.Logger)
		return nil
	})
}

func startPprof(srv *http.Server, logger logx.Logger) {
	if srv == nil {
		return
	}
	go func() {
		logger.Info("pprof listening", logx.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("pprof listen error", logx.Any("err", err))
		}
	}()
}

func startRelay(ctx context.Context, relay *outbox.Relay, logger logx.Logger) {
	if relay == nil {
		logger.Warn("outbox relay disabled: kafka not configured")
		return
	}
	go func() {
		if err := relay.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("outbox relay stopped", logx.Any("err", err))
		}
	}()
}

func startServer(server *http.Server, logger logx.Logger) {
	go func() {
		logger.Info("service-assistance listening", logx.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen error: %v", err)
		}
	}()
}

func waitForShutdown(ctx context.Context, logger logx.Logger) {
	<-ctx.Done()
	logger.Info("shutting down service-assistance")
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Error("graceful shutdown error", logx.Any("err", err))
	}
}

func closeResources(pool *pgxpool.Pool, server, pprofSrv *http.Server, producer *kafka.Producer, logger logx.Logger) {
	if err := server.Close(); err != nil {
		logger.Error("server close error", logx.Any("err", err))
	}
	if pprofSrv != nil {
		if err := pprofSrv.Close(); err != nil {
			logger.Error("pprof close error", logx.Any("err", err))
		}
	}
	if err := producer.Close(); err != nil {
		logger.Error("kafka producer close error", logx.Any("err", err))
	}
	pool.Close()
}
