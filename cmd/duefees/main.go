// Job - обработка событий о наступлении годовой платы
// Опрос Kafka -> оценка карты за год -> запись о плате и уведомление
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/glkeru/cardfee/internal/config"
	db "github.com/glkeru/cardfee/internal/db"
	kafka "github.com/glkeru/cardfee/internal/external/kafka"
	rabbit "github.com/glkeru/cardfee/internal/external/rabbitmq"
	interf "github.com/glkeru/cardfee/internal/interfaces"
	services "github.com/glkeru/cardfee/internal/services"
	"github.com/glkeru/cardfee/observability/tracing"
	"github.com/joho/godotenv"
	kafkago "github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	// config
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	if err := cfg.Kafka.Validate(); err != nil {
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownTracer, err := tracing.InitTracer(ctx, cfg.Tracing, logger)
	if err != nil {
		logger.Error("tracer init error", zap.Error(err))
		return
	}
	defer shutdownTracer(context.Background())

	// kafka
	reader, err := kafka.NewFeeDueReader(cfg.Kafka)
	if err != nil {
		logger.Error("kafka reader error", zap.Error(err))
		return
	}
	defer reader.Close()

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
			logger.Error(err.Error())
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
			logger.Error(err.Error())
		} else {
			defer pub.Close()
			publisher = pub
		}
	}

	// services
	serv := services.NewWaiverService(logger, rules, db.NewMetricsDB(pool, logger), cache,
		db.NewCardsDB(pool, logger), db.NewFeesDB(pool, logger), publisher)

	// start
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-interrupt
		cancel()
	}()

	tracer := otel.Tracer("cardfee/duefees")
	wg := &sync.WaitGroup{}
	semaphore := make(chan struct{}, cfg.Kafka.Workers)

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if !errors.Is(err, context.Canceled) {
				logger.Error("kafka fetch error", zap.Error(err))
			}
			break
		}

		semaphore <- struct{}{}
		wg.Add(1)
		go func(msg kafkago.Message) {
			defer wg.Done()
			defer func() { <-semaphore }()
			// начатую карту доводим до конца даже при остановке
			work := context.WithoutCancel(ctx)
			handle(work, tracer, serv, reader, msg, logger)
		}(msg)
	}
	wg.Wait()
	logger.Info("Job fee due consumer is stopped")
}

// Битые события пропускаем с коммитом, ошибки расчета не коммитим
func handle(ctx context.Context, tracer trace.Tracer, serv *services.WaiverService, reader *kafka.FeeDueReader, msg kafkago.Message, logger *zap.Logger) {
	ctx, span := tracer.Start(ctx, "FeeDue", trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(attribute.Int64("kafka.offset", msg.Offset), attribute.Int("kafka.partition", msg.Partition)))
	defer span.End()

	event, err := kafka.ParseFeeDueEvent(msg.Value)
	if err != nil {
		logger.Warn("skip fee due event", zap.Int64("offset", msg.Offset), zap.Error(err))
		commit(ctx, reader, msg, logger)
		return
	}

	record, _, err := serv.EvaluateCard(ctx, event.CardID, event.FeeYear, time.Now().UTC())
	if err != nil {
		span.RecordError(err)
		logger.Error("fee due evaluation error",
			zap.String("card_id", event.CardID), zap.Int("fee_year", event.FeeYear), zap.Error(err))
		return
	}
	logger.Debug("fee due evaluated",
		zap.String("card_id", record.CardID), zap.Int("fee_year", record.FeeYear), zap.String("status", string(record.Status)))
	commit(ctx, reader, msg, logger)
}

func commit(ctx context.Context, reader *kafka.FeeDueReader, msg kafkago.Message, logger *zap.Logger) {
	if err := reader.Commit(ctx, msg); err != nil {
		logger.Error("kafka commit error", zap.Int64("offset", msg.Offset), zap.Error(err))
	}
}
