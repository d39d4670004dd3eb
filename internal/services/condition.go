package services

import (
	"fmt"

	models "github.com/glkeru/cardfee/internal/models"
	"github.com/shopspring/decimal"
)

var (
	hundred       = decimal.NewFromInt(100)
	maxCompletion = decimal.NewFromInt(999)
)

// Условие правила, по одному типу на вид условия
type Condition interface {
	Type() models.ConditionType
	Period() models.Period
	// факт и порог в одних единицах
	Measure(snapshot models.MetricsSnapshot) (progress decimal.Decimal, target decimal.Decimal)
}

type SpendingAmount struct {
	Window models.Period
	Min    decimal.Decimal
}

func (c SpendingAmount) Type() models.ConditionType { return models.ConditionSpendingAmount }
func (c SpendingAmount) Period() models.Period      { return c.Window }
func (c SpendingAmount) Measure(s models.MetricsSnapshot) (decimal.Decimal, decimal.Decimal) {
	return s.TotalSpend, c.Min
}

type TransactionCount struct {
	Window models.Period
	Min    int64
}

func (c TransactionCount) Type() models.ConditionType { return models.ConditionTransactionCount }
func (c TransactionCount) Period() models.Period      { return c.Window }
func (c TransactionCount) Measure(s models.MetricsSnapshot) (decimal.Decimal, decimal.Decimal) {
	return decimal.NewFromInt(s.TransactionCount), decimal.NewFromInt(c.Min)
}

type PointsRedeem struct {
	Window models.Period
	Min    decimal.Decimal
}

func (c PointsRedeem) Type() models.ConditionType { return models.ConditionPointsRedeem }
func (c PointsRedeem) Period() models.Period      { return c.Window }
func (c PointsRedeem) Measure(s models.MetricsSnapshot) (decimal.Decimal, decimal.Decimal) {
	return s.PointsRedeemed, c.Min
}

// нет категории в снимке - траты 0
type CategorySpend struct {
	Window   models.Period
	Category string
	Min      decimal.Decimal
}

func (c CategorySpend) Type() models.ConditionType { return models.ConditionSpecificCategory }
func (c CategorySpend) Period() models.Period      { return c.Window }
func (c CategorySpend) Measure(s models.MetricsSnapshot) (decimal.Decimal, decimal.Decimal) {
	spend, ok := s.CategorySpend[c.Category]
	if !ok {
		return decimal.Zero, c.Min
	}
	return spend, c.Min
}

// Компиляция правила в условие
func CompileCondition(rule models.WaiverRule) (Condition, error) {
	invalid := func(reason models.DiagnosticReason, format string, args ...any) error {
		return &models.InvalidRuleConfigurationError{
			RuleID:   rule.ID,
			GroupKey: groupKey(rule),
			Reason:   reason,
			Detail:   fmt.Sprintf(format, args...),
		}
	}

	if !rule.ConditionPeriod.Valid() {
		return nil, invalid(models.ReasonInvalidPeriod, "unknown condition period %q", rule.ConditionPeriod)
	}

	// порог в деньгах/баллах
	amount := func() (decimal.Decimal, error) {
		if !rule.ConditionValue.Valid {
			return decimal.Zero, invalid(models.ReasonInvalidThreshold, "%s requires condition_value", rule.ConditionType)
		}
		if rule.ConditionValue.Decimal.IsNegative() {
			return decimal.Zero, invalid(models.ReasonInvalidThreshold, "condition_value %s is negative", rule.ConditionValue.Decimal)
		}
		return rule.ConditionValue.Decimal, nil
	}

	switch rule.ConditionType {
	case models.ConditionSpendingAmount:
		threshold, err := amount()
		if err != nil {
			return nil, err
		}
		return SpendingAmount{Window: rule.ConditionPeriod, Min: threshold}, nil
	case models.ConditionTransactionCount:
		if rule.ConditionCount == nil {
			return nil, invalid(models.ReasonInvalidThreshold, "transaction_count requires condition_count")
		}
		if *rule.ConditionCount < 0 {
			return nil, invalid(models.ReasonInvalidThreshold, "condition_count %d is negative", *rule.ConditionCount)
		}
		return TransactionCount{Window: rule.ConditionPeriod, Min: *rule.ConditionCount}, nil
	case models.ConditionPointsRedeem:
		threshold, err := amount()
		if err != nil {
			return nil, err
		}
		return PointsRedeem{Window: rule.ConditionPeriod, Min: threshold}, nil
	case models.ConditionSpecificCategory:
		if rule.ConditionCategory == "" {
			return nil, invalid(models.ReasonInvalidThreshold, "specific_category requires a category label")
		}
		threshold, err := amount()
		if err != nil {
			return nil, err
		}
		return CategorySpend{Window: rule.ConditionPeriod, Category: rule.ConditionCategory, Min: threshold}, nil
	}
	return nil, invalid(models.ReasonUnknownConditionType, "unknown condition type %q", rule.ConditionType)
}

// Расчет одного правила: >= по исходным значениям, процент только для отображения
func evaluateRule(rule models.WaiverRule, cond Condition, snapshot models.MetricsSnapshot) models.RuleEvaluationResult {
	progress, target := cond.Measure(snapshot)
	met := progress.GreaterThanOrEqual(target)
	return models.RuleEvaluationResult{
		RuleID:               rule.ID,
		GroupKey:             groupKey(rule),
		ConditionType:        cond.Type(),
		Met:                  met,
		CurrentProgress:      progress,
		RequiredTarget:       target,
		CompletionPercentage: completion(progress, target, met),
	}
}

func completion(progress, target decimal.Decimal, met bool) decimal.Decimal {
	if !target.IsPositive() {
		if met {
			return hundred
		}
		return decimal.Zero
	}
	pct := progress.Div(target).Mul(hundred).Round(2)
	switch {
	case pct.IsNegative():
		return decimal.Zero
	case pct.GreaterThan(maxCompletion):
		return maxCompletion
	}
	return pct
}
