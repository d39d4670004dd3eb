package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	interf "github.com/glkeru/cardfee/internal/interfaces"
	models "github.com/glkeru/cardfee/internal/models"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("cardfee/waiver")

// Сервис: загрузка данных, расчет, запись о плате, уведомление
type WaiverService struct {
	engine    *WaiverEngine
	logger    *zap.Logger
	rules     interf.RuleStorage
	metrics   interf.MetricsProvider
	cache     interf.SnapshotCache
	cards     interf.CardStorage
	fees      interf.FeeRecordStorage
	publisher interf.DecisionPublisher
	now       func() time.Time
}

// cache и publisher могут быть nil
func NewWaiverService(logger *zap.Logger, rules interf.RuleStorage, metrics interf.MetricsProvider, cache interf.SnapshotCache,
	cards interf.CardStorage, fees interf.FeeRecordStorage, publisher interf.DecisionPublisher) *WaiverService {
	return &WaiverService{
		engine:    NewWaiverEngine(logger),
		logger:    logger,
		rules:     rules,
		metrics:   metrics,
		cache:     cache,
		cards:     cards,
		fees:      fees,
		publisher: publisher,
		now:       time.Now,
	}
}

// Расчет по переданным данным
func (s *WaiverService) Evaluate(rules []models.WaiverRule, snapshots []models.MetricsSnapshot, baseFee decimal.Decimal, evaluationDate time.Time) (models.WaiverDecision, error) {
	decision, err := s.engine.Evaluate(rules, snapshots, baseFee, evaluationDate)
	if err != nil {
		return decision, err
	}
	observeDecision(decision)
	return decision, nil
}

// Предварительный расчет без сохранения
func (s *WaiverService) Preview(ctx context.Context, cardID string, feeYear int, evaluationDate time.Time) (models.WaiverDecision, error) {
	ctx, span := tracer.Start(ctx, "Preview")
	defer span.End()
	span.SetAttributes(attribute.String("card_id", cardID), attribute.Int("fee_year", feeYear))

	decision, err := s.decide(ctx, cardID, feeYear, evaluationDate)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return models.WaiverDecision{}, err
	}
	return decision, nil
}

// Расчет карты за год с сохранением. Закрытая запись возвращается без изменений
func (s *WaiverService) EvaluateCard(ctx context.Context, cardID string, feeYear int, evaluationDate time.Time) (models.FeeRecord, models.WaiverDecision, error) {
	ctx, span := tracer.Start(ctx, "EvaluateCard")
	defer span.End()
	span.SetAttributes(attribute.String("card_id", cardID), attribute.Int("fee_year", feeYear))

	fail := func(err error) (models.FeeRecord, models.WaiverDecision, error) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return models.FeeRecord{}, models.WaiverDecision{}, err
	}

	decision, err := s.decide(ctx, cardID, feeYear, evaluationDate)
	if err != nil {
		return fail(err)
	}

	existing, err := s.fees.GetRecord(ctx, cardID, feeYear)
	switch {
	case err == nil && existing.Status != models.FeeStatusPending:
		s.logger.Info("fee record already settled",
			zap.String("card_id", cardID),
			zap.Int("fee_year", feeYear),
			zap.String("status", string(existing.Status)),
		)
		return existing, decision, nil
	case err != nil && !errors.Is(err, models.ErrNotFound):
		return fail(fmt.Errorf("get fee record: %w", err))
	}

	record := models.NewFeeRecord(cardID, feeYear, decision, s.now())
	if err == nil {
		record.ID = existing.ID
	}
	record, err = s.fees.SaveRecord(ctx, record)
	if err != nil {
		return fail(fmt.Errorf("save fee record: %w", err))
	}
	observeDecision(decision)

	if s.publisher != nil {
		err = s.publisher.Publish(ctx, models.FeeNotification{
			CardID:       cardID,
			FeeYear:      feeYear,
			IsWaived:     decision.IsWaived,
			WaiverAmount: decision.WaiverAmount,
			ActualFee:    decision.ActualFee,
			Explanation:  decision.Explanation,
		})
		if err != nil {
			s.logger.Error("publish fee notification",
				zap.String("card_id", cardID),
				zap.Int("fee_year", feeYear),
				zap.Error(err),
			)
		}
	}
	return record, decision, nil
}

// Оплата
func (s *WaiverService) MarkPaid(ctx context.Context, cardID string, feeYear int, paidAt time.Time) (models.FeeRecord, error) {
	record, err := s.fees.GetRecord(ctx, cardID, feeYear)
	if err != nil {
		return models.FeeRecord{}, err
	}
	if !record.Status.CanTransition(models.FeeStatusPaid) {
		return models.FeeRecord{}, fmt.Errorf("%w: %s -> %s", models.ErrInvalidTransition, record.Status, models.FeeStatusPaid)
	}
	err = s.fees.UpdateStatus(ctx, record.ID, record.Status, models.FeeStatusPaid, paidAt)
	if err != nil {
		return models.FeeRecord{}, err
	}
	record.Status = models.FeeStatusPaid
	record.PaidAt = &paidAt
	return record, nil
}

// Разметка просроченных
func (s *WaiverService) MarkOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	n, err := s.fees.MarkOverdue(ctx, asOf)
	if err != nil {
		return 0, err
	}
	s.logger.Info("fee records marked overdue", zap.Int64("count", n), zap.Time("as_of", asOf))
	return n, nil
}

// Сброс кэша снимков карты
func (s *WaiverService) InvalidateSnapshots(ctx context.Context, cardID string, feeYear int) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.InvalidateSnapshots(ctx, cardID, feeYear)
}

// карта, правила, снимки -> решение
func (s *WaiverService) decide(ctx context.Context, cardID string, feeYear int, evaluationDate time.Time) (models.WaiverDecision, error) {
	card, err := s.cards.GetCard(ctx, cardID)
	if err != nil {
		return models.WaiverDecision{}, fmt.Errorf("get card %s: %w", cardID, err)
	}
	rules, err := s.rules.GetRules(ctx, cardID)
	if err != nil {
		return models.WaiverDecision{}, fmt.Errorf("get rules for card %s: %w", cardID, err)
	}

	periods := RequiredPeriods(rules, evaluationDate)
	snapshots := make([]models.MetricsSnapshot, 0, len(periods))
	for _, kind := range periods {
		snapshot, err := s.snapshot(ctx, cardID, kind, feeYear)
		if err != nil {
			return models.WaiverDecision{}, fmt.Errorf("get %s snapshot for card %s: %w", kind, cardID, err)
		}
		snapshots = append(snapshots, snapshot)
	}

	return s.engine.Evaluate(rules, snapshots, card.AnnualFee, evaluationDate)
}

// снимок: кэш, затем БД
func (s *WaiverService) snapshot(ctx context.Context, cardID string, kind models.Period, feeYear int) (models.MetricsSnapshot, error) {
	if s.cache != nil {
		snapshot, err := s.cache.GetSnapshot(ctx, cardID, kind, feeYear)
		if err == nil {
			return snapshot, nil
		}
		if !errors.Is(err, models.ErrNotFound) {
			s.logger.Warn("snapshot cache", zap.String("card_id", cardID), zap.Error(err))
		}
	}

	snapshot, err := s.metrics.GetSnapshot(ctx, cardID, kind, feeYear)
	if err != nil {
		return models.MetricsSnapshot{}, err
	}
	if s.cache != nil {
		if err := s.cache.SetSnapshot(ctx, feeYear, snapshot); err != nil {
			s.logger.Warn("snapshot cache", zap.String("card_id", cardID), zap.Error(err))
		}
	}
	return snapshot, nil
}
