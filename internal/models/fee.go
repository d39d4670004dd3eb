package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Статус записи о годовом обслуживании
type FeeStatus string

const (
	FeeStatusPending FeeStatus = "pending"
	FeeStatusWaived  FeeStatus = "waived"
	FeeStatusPaid    FeeStatus = "paid"
	FeeStatusOverdue FeeStatus = "overdue"
)

// Допустимые переходы статуса
func (s FeeStatus) CanTransition(next FeeStatus) bool {
	switch s {
	case FeeStatusPending:
		return next == FeeStatusWaived || next == FeeStatusPaid || next == FeeStatusOverdue
	case FeeStatusOverdue:
		return next == FeeStatusPaid
	}
	return false
}

// Card карта с годовой платой
type Card struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	AnnualFee decimal.Decimal `json:"annual_fee"`
	Active    bool            `json:"active"`
}

// Запись о годовой плате (карта, год)
type FeeRecord struct {
	ID             uuid.UUID       `json:"id"`
	CardID         string          `json:"card_id"`
	FeeYear        int             `json:"fee_year"`
	BaseFee        decimal.Decimal `json:"base_fee"`
	WaiverAmount   decimal.Decimal `json:"waiver_amount"`
	ActualFee      decimal.Decimal `json:"actual_fee"`
	Status         FeeStatus       `json:"status"`
	AppliedRuleIDs []uuid.UUID     `json:"applied_rule_ids"`
	Explanation    string          `json:"explanation"`
	DueDate        time.Time       `json:"due_date"`
	EvaluatedAt    time.Time       `json:"evaluated_at"`
	PaidAt         *time.Time      `json:"paid_at,omitempty"`
}

// Срок оплаты за год
func DueDate(feeYear int) time.Time {
	return time.Date(feeYear+1, time.January, 31, 0, 0, 0, 0, time.UTC)
}

// Запись по решению: отмена сразу waived, иначе pending
func NewFeeRecord(cardID string, feeYear int, decision WaiverDecision, evaluatedAt time.Time) FeeRecord {
	status := FeeStatusPending
	if decision.IsWaived {
		status = FeeStatusWaived
	}
	return FeeRecord{
		ID:             uuid.New(),
		CardID:         cardID,
		FeeYear:        feeYear,
		BaseFee:        decision.BaseFee,
		WaiverAmount:   decision.WaiverAmount,
		ActualFee:      decision.ActualFee,
		Status:         status,
		AppliedRuleIDs: decision.AppliedRuleIDs,
		Explanation:    decision.Explanation,
		DueDate:        DueDate(feeYear),
		EvaluatedAt:    evaluatedAt,
	}
}

// FeeNotification сообщение о решении для уведомлений
type FeeNotification struct {
	CardID       string          `json:"cardId"`
	FeeYear      int             `json:"feeYear"`
	IsWaived     bool            `json:"isWaived"`
	WaiverAmount decimal.Decimal `json:"waiverAmount"`
	ActualFee    decimal.Decimal `json:"actualFee"`
	Explanation  string          `json:"explanation"`
}

// FeeDueEvent событие о наступлении даты списания годовой платы
type FeeDueEvent struct {
	CardID  string `json:"cardId"`
	FeeYear int    `json:"feeYear"`
}
