package interfaces

import (
	"context"
	"time"

	models "github.com/glkeru/cardfee/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=./../services/mock_waiver_test.go -package=services . RuleStorage,MetricsProvider,SnapshotCache,CardStorage,FeeRecordStorage,DecisionPublisher
//go:generate mockgen -destination=./../api/mock_waiver_test.go -package=api . WaiverService,RuleStorage

type WaiverService interface {
	Evaluate(rules []models.WaiverRule, snapshots []models.MetricsSnapshot, baseFee decimal.Decimal, evaluationDate time.Time) (models.WaiverDecision, error)
	EvaluateCard(ctx context.Context, cardID string, feeYear int, evaluationDate time.Time) (models.FeeRecord, models.WaiverDecision, error)
	Preview(ctx context.Context, cardID string, feeYear int, evaluationDate time.Time) (models.WaiverDecision, error)
	MarkPaid(ctx context.Context, cardID string, feeYear int, paidAt time.Time) (models.FeeRecord, error)
	InvalidateSnapshots(ctx context.Context, cardID string, feeYear int) error
}

// Правила карты
type RuleStorage interface {
	GetRules(ctx context.Context, cardID string) ([]models.WaiverRule, error)
	GetRule(ctx context.Context, ruleID uuid.UUID) (models.WaiverRule, error)
	SaveRule(ctx context.Context, rule models.WaiverRule) (models.WaiverRule, error)
}

// Агрегаты по транзакциям карты за период
type MetricsProvider interface {
	GetSnapshot(ctx context.Context, cardID string, kind models.Period, feeYear int) (models.MetricsSnapshot, error)
}

type SnapshotCache interface {
	GetSnapshot(ctx context.Context, cardID string, kind models.Period, feeYear int) (models.MetricsSnapshot, error)
	SetSnapshot(ctx context.Context, feeYear int, snapshot models.MetricsSnapshot) error
	InvalidateSnapshots(ctx context.Context, cardID string, feeYear int) error
}

type CardStorage interface {
	GetCard(ctx context.Context, cardID string) (models.Card, error)
	ListActiveCards(ctx context.Context) ([]models.Card, error)
}

// Записи о годовой плате
type FeeRecordStorage interface {
	SaveRecord(ctx context.Context, record models.FeeRecord) (models.FeeRecord, error)
	GetRecord(ctx context.Context, cardID string, feeYear int) (models.FeeRecord, error)
	UpdateStatus(ctx context.Context, recordID uuid.UUID, from models.FeeStatus, to models.FeeStatus, at time.Time) error
	MarkOverdue(ctx context.Context, asOf time.Time) (int64, error)
}

type DecisionPublisher interface {
	Publish(ctx context.Context, notification models.FeeNotification) error
}
