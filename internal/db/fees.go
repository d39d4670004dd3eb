package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	models "github.com/glkeru/cardfee/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// FeesDB записи о годовой плате, одна на (card_id, fee_year)
type FeesDB struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewFeesDB(pool *pgxpool.Pool, logger *zap.Logger) *FeesDB {
	return &FeesDB{pool, logger}
}

var feeColumns = []string{
	"id", "card_id", "fee_year", "base_fee::text", "waiver_amount::text", "actual_fee::text",
	"status", "applied_rule_ids", "explanation", "due_date", "evaluated_at", "paid_at",
}

// upsert, обновляется только pending
func saveRecordQuery(record models.FeeRecord) sq.InsertBuilder {
	return sq.Insert("fee_records").
		Columns("id", "card_id", "fee_year", "base_fee", "waiver_amount", "actual_fee",
			"status", "applied_rule_ids", "explanation", "due_date", "evaluated_at").
		Values(record.ID, record.CardID, record.FeeYear, record.BaseFee, record.WaiverAmount, record.ActualFee,
			string(record.Status), ruleIDStrings(record.AppliedRuleIDs), record.Explanation, record.DueDate, record.EvaluatedAt).
		Suffix(`ON CONFLICT (card_id, fee_year) DO UPDATE SET
			base_fee = EXCLUDED.base_fee,
			waiver_amount = EXCLUDED.waiver_amount,
			actual_fee = EXCLUDED.actual_fee,
			status = EXCLUDED.status,
			applied_rule_ids = EXCLUDED.applied_rule_ids,
			explanation = EXCLUDED.explanation,
			due_date = EXCLUDED.due_date,
			evaluated_at = EXCLUDED.evaluated_at
			WHERE fee_records.status = 'pending'
			RETURNING id`).
		PlaceholderFormat(sq.Dollar)
}

func getRecordQuery(cardID string, feeYear int) sq.SelectBuilder {
	return sq.Select(feeColumns...).
		From("fee_records").
		Where(sq.Eq{"card_id": cardID, "fee_year": feeYear}).
		PlaceholderFormat(sq.Dollar)
}

// переход только из текущего статуса
func updateStatusQuery(recordID uuid.UUID, from, to models.FeeStatus, at time.Time) sq.UpdateBuilder {
	q := sq.Update("fee_records").
		Set("status", string(to)).
		Where(sq.Eq{"id": recordID, "status": string(from)}).
		PlaceholderFormat(sq.Dollar)
	if to == models.FeeStatusPaid {
		q = q.Set("paid_at", at)
	}
	return q
}

func markOverdueQuery(asOf time.Time) sq.UpdateBuilder {
	return sq.Update("fee_records").
		Set("status", string(models.FeeStatusOverdue)).
		Where(sq.Eq{"status": string(models.FeeStatusPending)}).
		Where(sq.Lt{"due_date": asOf}).
		PlaceholderFormat(sq.Dollar)
}

func (f *FeesDB) SaveRecord(ctx context.Context, record models.FeeRecord) (models.FeeRecord, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	sql, args, err := saveRecordQuery(record).ToSql()
	if err != nil {
		return models.FeeRecord{}, err
	}

	var id pgtype.UUID
	err = f.pool.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.FeeRecord{}, fmt.Errorf("%w: fee record of card %s for %d is already settled",
				models.ErrInvalidTransition, record.CardID, record.FeeYear)
		}
		f.logger.Error("SQL error",
			zap.Error(err),
			zap.String("query", sql),
			zap.Any("args", args),
		)
		return models.FeeRecord{}, err
	}
	record.ID, _ = uuid.FromBytes(id.Bytes[:])
	return record, nil
}

func (f *FeesDB) GetRecord(ctx context.Context, cardID string, feeYear int) (models.FeeRecord, error) {
	sql, args, err := getRecordQuery(cardID, feeYear).ToSql()
	if err != nil {
		return models.FeeRecord{}, err
	}

	var (
		record             models.FeeRecord
		id                 pgtype.UUID
		base, waiver, fee  string
		status             string
		ruleIDs            []string
		paidAt             pgtype.Timestamptz
	)
	err = f.pool.QueryRow(ctx, sql, args...).Scan(&id, &record.CardID, &record.FeeYear, &base, &waiver, &fee,
		&status, &ruleIDs, &record.Explanation, &record.DueDate, &record.EvaluatedAt, &paidAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.FeeRecord{}, fmt.Errorf("fee record %w", models.ErrNotFound)
		}
		f.logger.Error("SQL error",
			zap.Error(err),
			zap.String("query", sql),
			zap.Any("args", args),
		)
		return models.FeeRecord{}, err
	}

	record.ID, _ = uuid.FromBytes(id.Bytes[:])
	record.Status = models.FeeStatus(status)
	if record.BaseFee, err = decimal.NewFromString(base); err != nil {
		return models.FeeRecord{}, err
	}
	if record.WaiverAmount, err = decimal.NewFromString(waiver); err != nil {
		return models.FeeRecord{}, err
	}
	if record.ActualFee, err = decimal.NewFromString(fee); err != nil {
		return models.FeeRecord{}, err
	}
	if record.AppliedRuleIDs, err = parseRuleIDs(ruleIDs); err != nil {
		return models.FeeRecord{}, err
	}
	if paidAt.Status == pgtype.Present {
		t := paidAt.Time
		record.PaidAt = &t
	}
	return record, nil
}

func (f *FeesDB) UpdateStatus(ctx context.Context, recordID uuid.UUID, from models.FeeStatus, to models.FeeStatus, at time.Time) error {
	if !from.CanTransition(to) {
		return fmt.Errorf("%w: %s -> %s", models.ErrInvalidTransition, from, to)
	}
	sql, args, err := updateStatusQuery(recordID, from, to, at).ToSql()
	if err != nil {
		return err
	}
	tag, err := f.pool.Exec(ctx, sql, args...)
	if err != nil {
		f.logger.Error("SQL error",
			zap.Error(err),
			zap.String("query", sql),
			zap.Any("args", args),
		)
		return err
	}
	// статус успели изменить
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: record %s is no longer %s", models.ErrInvalidTransition, recordID, from)
	}
	return nil
}

func (f *FeesDB) MarkOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	sql, args, err := markOverdueQuery(asOf).ToSql()
	if err != nil {
		return 0, err
	}
	tag, err := f.pool.Exec(ctx, sql, args...)
	if err != nil {
		f.logger.Error("SQL error",
			zap.Error(err),
			zap.String("query", sql),
			zap.Any("args", args),
		)
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func ruleIDStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}

func parseRuleIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("applied rule id %q: %w", s, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
