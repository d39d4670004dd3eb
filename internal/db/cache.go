package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/glkeru/cardfee/internal/config"
	models "github.com/glkeru/cardfee/internal/models"
	redis "github.com/redis/go-redis/v9"
)

// CacheService кэш снимков метрик в Redis
type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(ctx context.Context, cfg config.RedisConfig) (*CacheService, error) {
	db := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Username:    cfg.User,
		Password:    cfg.Password,
		DB:          cfg.DB,
		MaxRetries:  5,
		DialTimeout: 10 * time.Second,
	})
	err := db.Ping(ctx).Err()
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &CacheService{db, cfg.TTL}, nil
}

func (c *CacheService) Close() error {
	return c.client.Close()
}

func snapshotKey(cardID string, feeYear int, kind models.Period) string {
	return fmt.Sprintf("snapshot:%s:%d:%s", cardID, feeYear, kind)
}

func (c *CacheService) GetSnapshot(ctx context.Context, cardID string, kind models.Period, feeYear int) (models.MetricsSnapshot, error) {
	val, err := c.client.Get(ctx, snapshotKey(cardID, feeYear, kind)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.MetricsSnapshot{}, fmt.Errorf("snapshot %w", models.ErrNotFound)
	} else if err != nil {
		return models.MetricsSnapshot{}, err
	}

	var snapshot models.MetricsSnapshot
	if err := json.Unmarshal(val, &snapshot); err != nil {
		return models.MetricsSnapshot{}, err
	}
	return snapshot, nil
}

func (c *CacheService) SetSnapshot(ctx context.Context, feeYear int, snapshot models.MetricsSnapshot) error {
	val, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, snapshotKey(snapshot.CardID, feeYear, snapshot.PeriodKind), val, c.ttl).Err()
}

// Удаляем снимки всех периодов
func (c *CacheService) InvalidateSnapshots(ctx context.Context, cardID string, feeYear int) error {
	return c.client.Del(ctx,
		snapshotKey(cardID, feeYear, models.PeriodMonthly),
		snapshotKey(cardID, feeYear, models.PeriodQuarterly),
		snapshotKey(cardID, feeYear, models.PeriodYearly),
	).Err()
}
