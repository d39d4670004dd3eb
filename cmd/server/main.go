// Сервис - HTTP API оценки отмены годовой платы
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	api "github.com/glkeru/cardfee/internal/api"
	"github.com/glkeru/cardfee/internal/config"
	db "github.com/glkeru/cardfee/internal/db"
	rabbit "github.com/glkeru/cardfee/internal/external/rabbitmq"
	interf "github.com/glkeru/cardfee/internal/interfaces"
	services "github.com/glkeru/cardfee/internal/services"
	"github.com/glkeru/cardfee/observability/tracing"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

func main() {
	// .env опционален
	_ = godotenv.Load()

	// config
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// log
	logger, err := newLogger(cfg.App.Environment)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// tracing
	shutdownTracer, err := tracing.InitTracer(ctx, cfg.Tracing, logger)
	if err != nil {
		logger.Error("tracer init error", zap.Error(err))
		return
	}
	defer shutdownTracer(context.Background())

	// rules
	rules, err := db.NewRulesDB(ctx, cfg.Mongo, logger)
	if err != nil {
		logger.Error("mongo connect error", zap.Error(err))
		return
	}
	defer rules.Close(context.Background())

	// database
	pool, err := db.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("postgres connect error", zap.Error(err))
		return
	}
	defer pool.Close()

	// cache
	var cache interf.SnapshotCache
	if cfg.Redis.Addr != "" {
		redis, err := db.NewCacheService(ctx, cfg.Redis)
		if err != nil {
			logger.Error("redis is unavailable, snapshots are not cached", zap.Error(err))
		} else {
			defer redis.Close()
			cache = redis
		}
	}

	// notifications
	var publisher interf.DecisionPublisher
	if cfg.Rabbit.URL != "" {
		pub, err := rabbit.NewNotificationPublisher(cfg.Rabbit)
		if err != nil {
			logger.Error("rabbit is unavailable, notifications are disabled", zap.Error(err))
		} else {
			defer pub.Close()
			publisher = pub
		}
	}

	serv := services.NewWaiverService(logger, rules, db.NewMetricsDB(pool, logger), cache,
		db.NewCardsDB(pool, logger), db.NewFeesDB(pool, logger), publisher)

	// api handlers
	r := api.NewHandler(serv, rules, logger)
	srv := &http.Server{
		Handler:      otelhttp.NewHandler(r, cfg.App.Name),
		Addr:         ":" + cfg.HTTP.Port,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
	}
	go func() {
		logger.Info("http server started", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", zap.Error(err))
			cancel()
		}
	}()

	// shutdown
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	select {
	case <-interrupt:
	case <-ctx.Done():
	}
	timeout, stop := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer stop()
	err = srv.Shutdown(timeout)
	if err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}

func newLogger(environment string) (*zap.Logger, error) {
	if environment == config.EnvironmentProduction {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
