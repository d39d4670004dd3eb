package db

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	models "github.com/glkeru/cardfee/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// MetricsDB собирает снимки метрик из таблицы transactions
type MetricsDB struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewMetricsDB(pool *pgxpool.Pool, logger *zap.Logger) *MetricsDB {
	return &MetricsDB{pool, logger}
}

// Окно [start, end): год, последний квартал или последний месяц
func PeriodWindow(kind models.Period, feeYear int) (start time.Time, end time.Time, err error) {
	end = time.Date(feeYear+1, time.January, 1, 0, 0, 0, 0, time.UTC)
	switch kind {
	case models.PeriodYearly:
		start = time.Date(feeYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	case models.PeriodQuarterly:
		start = time.Date(feeYear, time.October, 1, 0, 0, 0, 0, time.UTC)
	case models.PeriodMonthly:
		start = time.Date(feeYear, time.December, 1, 0, 0, 0, 0, time.UTC)
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("%w: period kind %q", models.ErrInvalidInput, kind)
	}
	return start, end, nil
}

func totalsQuery(cardID string, start, end time.Time) sq.SelectBuilder {
	return sq.Select("COALESCE(SUM(amount), 0)::text", "COUNT(*)", "COALESCE(SUM(points_redeemed), 0)::text").
		From("transactions").
		Where(sq.Eq{"card_id": cardID}).
		Where(sq.GtOrEq{"occurred_at": start}).
		Where(sq.Lt{"occurred_at": end}).
		PlaceholderFormat(sq.Dollar)
}

func categoryQuery(cardID string, start, end time.Time) sq.SelectBuilder {
	return sq.Select("category", "SUM(amount)::text").
		From("transactions").
		Where(sq.Eq{"card_id": cardID}).
		Where(sq.NotEq{"category": nil}).
		Where(sq.GtOrEq{"occurred_at": start}).
		Where(sq.Lt{"occurred_at": end}).
		GroupBy("category").
		OrderBy("category").
		PlaceholderFormat(sq.Dollar)
}

func (m *MetricsDB) GetSnapshot(ctx context.Context, cardID string, kind models.Period, feeYear int) (models.MetricsSnapshot, error) {
	start, end, err := PeriodWindow(kind, feeYear)
	if err != nil {
		return models.MetricsSnapshot{}, err
	}
	snapshot := models.MetricsSnapshot{
		CardID:        cardID,
		PeriodStart:   start,
		PeriodEnd:     end,
		PeriodKind:    kind,
		CategorySpend: make(map[string]decimal.Decimal),
	}

	conn, err := m.pool.Acquire(ctx)
	if err != nil {
		m.logger.Error("Get connection error", zap.Error(err), zap.String("service", "GetSnapshot"))
		return models.MetricsSnapshot{}, err
	}
	defer conn.Release()

	// итоги за период
	sql, args, err := totalsQuery(cardID, start, end).ToSql()
	if err != nil {
		return models.MetricsSnapshot{}, err
	}
	var spend, points string
	err = conn.QueryRow(ctx, sql, args...).Scan(&spend, &snapshot.TransactionCount, &points)
	if err != nil {
		m.logger.Error("SQL error",
			zap.Error(err),
			zap.String("query", sql),
			zap.Any("args", args),
		)
		return models.MetricsSnapshot{}, err
	}
	if snapshot.TotalSpend, err = decimal.NewFromString(spend); err != nil {
		return models.MetricsSnapshot{}, err
	}
	if snapshot.PointsRedeemed, err = decimal.NewFromString(points); err != nil {
		return models.MetricsSnapshot{}, err
	}

	// траты по категориям
	sql, args, err = categoryQuery(cardID, start, end).ToSql()
	if err != nil {
		return models.MetricsSnapshot{}, err
	}
	rows, err := conn.Query(ctx, sql, args...)
	if err != nil {
		m.logger.Error("SQL error",
			zap.Error(err),
			zap.String("query", sql),
			zap.Any("args", args),
		)
		return models.MetricsSnapshot{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var category, amount string
		if err := rows.Scan(&category, &amount); err != nil {
			return models.MetricsSnapshot{}, err
		}
		v, err := decimal.NewFromString(amount)
		if err != nil {
			return models.MetricsSnapshot{}, err
		}
		snapshot.CategorySpend[category] = v
	}
	if err := rows.Err(); err != nil {
		return models.MetricsSnapshot{}, err
	}
	return snapshot, nil
}
