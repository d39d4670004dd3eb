// Job - годовое выставление платы по всем активным картам
// Оценка каждой карты за год, затем разметка просроченных записей
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/glkeru/cardfee/internal/config"
	db "github.com/glkeru/cardfee/internal/db"
	rabbit "github.com/glkeru/cardfee/internal/external/rabbitmq"
	interf "github.com/glkeru/cardfee/internal/interfaces"
	services "github.com/glkeru/cardfee/internal/services"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// log
	var logger *zap.Logger
	if cfg.App.Environment == config.EnvironmentProduction {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

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

	// notifications
	var publisher interf.DecisionPublisher
	if cfg.Rabbit.URL != "" {
		pub, err := rabbit.NewNotificationPublisher(cfg.Rabbit)
		if err != nil {
			logger.Error(err.Error())
		} else {
			defer pub.Close()
			publisher = pub
		}
	}

	// снимки считаем напрямую, кэш не нужен
	serv := services.NewWaiverService(logger, rules, db.NewMetricsDB(pool, logger), nil,
		db.NewCardsDB(pool, logger), db.NewFeesDB(pool, logger), publisher)

	now := time.Now().UTC()
	report, err := serv.RunBatch(ctx, cfg.Batch.Year(now), now, cfg.Batch.Concurrency)
	if err != nil {
		logger.Error("batch error", zap.Error(err))
		return
	}
	logger.Info("Job annual fee batch is finished",
		zap.Int("fee_year", report.FeeYear),
		zap.Int("total", report.Total),
		zap.Int("waived", report.Waived),
		zap.Int("not_waived", report.NotWaived),
		zap.Int("failed", len(report.Failed)),
		zap.Bool("cancelled", report.Cancelled))
	if report.Cancelled {
		return
	}

	overdue, err := serv.MarkOverdue(ctx, now)
	if err != nil {
		logger.Error("mark overdue error", zap.Error(err))
		return
	}
	logger.Info("Job overdue marking is finished", zap.Int64("records", overdue))
}
