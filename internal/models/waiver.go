package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Тип условия
type ConditionType string

const (
	ConditionSpendingAmount   ConditionType = "spending_amount"
	ConditionTransactionCount ConditionType = "transaction_count"
	ConditionPointsRedeem     ConditionType = "points_redeem"
	ConditionSpecificCategory ConditionType = "specific_category"
)

// Период агрегации
type Period string

const (
	PeriodMonthly   Period = "monthly"
	PeriodQuarterly Period = "quarterly"
	PeriodYearly    Period = "yearly"
)

func (p Period) Valid() bool {
	switch p {
	case PeriodMonthly, PeriodQuarterly, PeriodYearly:
		return true
	}
	return false
}

type LogicalOperator string

const (
	OperatorAND  LogicalOperator = "AND"
	OperatorOR   LogicalOperator = "OR"
	OperatorNone LogicalOperator = ""
)

// Правило отмены, как хранится; нужное поле порога зависит от ConditionType
type WaiverRule struct {
	ID                uuid.UUID           `json:"id"`
	CardID            string              `json:"card_id"`
	RuleGroupID       string              `json:"rule_group_id,omitempty"`
	ConditionType     ConditionType       `json:"condition_type"`
	ConditionValue    decimal.NullDecimal `json:"condition_value"`
	ConditionCount    *int64              `json:"condition_count,omitempty"`
	ConditionCategory string              `json:"condition_category,omitempty"`
	ConditionPeriod   Period              `json:"condition_period"`
	LogicalOperator   LogicalOperator     `json:"logical_operator,omitempty"`
	Priority          int                 `json:"priority"`
	IsEnabled         bool                `json:"is_enabled"`
	EffectiveFrom     *time.Time          `json:"effective_from,omitempty"`
	EffectiveTo       *time.Time          `json:"effective_to,omitempty"`
	CreatedAt         time.Time           `json:"created_at"`
}

// Правило в группе
func (r WaiverRule) Grouped() bool {
	return r.RuleGroupID != ""
}

// Снимок активности карты за период
type MetricsSnapshot struct {
	CardID           string                     `json:"card_id"`
	PeriodStart      time.Time                  `json:"period_start"`
	PeriodEnd        time.Time                  `json:"period_end"`
	PeriodKind       Period                     `json:"period_kind"`
	TotalSpend       decimal.Decimal            `json:"total_spend"`
	TransactionCount int64                      `json:"transaction_count"`
	PointsRedeemed   decimal.Decimal            `json:"points_redeemed"`
	CategorySpend    map[string]decimal.Decimal `json:"category_spend"`
}

// Результат одного правила
type RuleEvaluationResult struct {
	RuleID               uuid.UUID       `json:"rule_id"`
	GroupKey             string          `json:"group_key"`
	ConditionType        ConditionType   `json:"condition_type"`
	Met                  bool            `json:"met"`
	CurrentProgress      decimal.Decimal `json:"current_progress"`
	RequiredTarget       decimal.Decimal `json:"required_target"`
	CompletionPercentage decimal.Decimal `json:"completion_percentage"`
}

type DiagnosticKind string

const (
	DiagnosticExcluded           DiagnosticKind = "excluded"
	DiagnosticConfigurationError DiagnosticKind = "configuration_error"
)

type DiagnosticReason string

const (
	ReasonDisabled             DiagnosticReason = "disabled"
	ReasonOutsideWindow        DiagnosticReason = "outside_window"
	ReasonUnknownConditionType DiagnosticReason = "unknown_condition_type"
	ReasonMixedOperators       DiagnosticReason = "mixed_operators"
	ReasonMissingOperator      DiagnosticReason = "missing_operator"
	ReasonMissingSnapshot      DiagnosticReason = "missing_snapshot"
	ReasonInvalidThreshold     DiagnosticReason = "invalid_threshold"
	ReasonInvalidPeriod        DiagnosticReason = "invalid_period"
	ReasonInvalidOperator      DiagnosticReason = "invalid_operator"
	ReasonGroupExcluded        DiagnosticReason = "group_excluded"
)

// Почему правило не участвовало в решении
type Diagnostic struct {
	RuleID   uuid.UUID        `json:"rule_id"`
	GroupKey string           `json:"group_key"`
	Kind     DiagnosticKind   `json:"kind"`
	Reason   DiagnosticReason `json:"reason"`
	Detail   string           `json:"detail,omitempty"`
}

// Решение
type WaiverDecision struct {
	IsWaived       bool                   `json:"is_waived"`
	BaseFee        decimal.Decimal        `json:"base_fee"`
	WaiverAmount   decimal.Decimal        `json:"waiver_amount"`
	ActualFee      decimal.Decimal        `json:"actual_fee"`
	AppliedGroup   string                 `json:"applied_group,omitempty"`
	AppliedRuleIDs []uuid.UUID            `json:"applied_rule_ids"`
	PerRuleResults []RuleEvaluationResult `json:"per_rule_results"`
	Diagnostics    []Diagnostic           `json:"diagnostics"`
	Explanation    string                 `json:"explanation"`
}
