package services

import (
	"fmt"
	"time"

	models "github.com/glkeru/cardfee/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Движок отмены годовой платы, без состояния
type WaiverEngine struct {
	logger *zap.Logger
}

func NewWaiverEngine(logger *zap.Logger) *WaiverEngine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WaiverEngine{logger}
}

// Расчет решения. Ошибки конфигурации уходят в Diagnostics, ошибка возвращается только для неверного входа или нарушения инварианта
func (e *WaiverEngine) Evaluate(rules []models.WaiverRule, snapshots []models.MetricsSnapshot, baseFee decimal.Decimal, evaluationDate time.Time) (models.WaiverDecision, error) {
	if baseFee.IsNegative() {
		return models.WaiverDecision{}, fmt.Errorf("%w: base fee %s is negative", models.ErrInvalidInput, baseFee)
	}
	set, err := IndexSnapshots(snapshots)
	if err != nil {
		return models.WaiverDecision{}, err
	}

	plan, err := CompilePlan(rules, set, evaluationDate)
	if err != nil {
		e.Log(err)
		return models.WaiverDecision{}, err
	}

	// все пути вычисляются полностью, применяется первый выполненный
	applied := -1
	outcomes := make([]pathOutcome, 0, len(plan.Paths))
	results := make([]models.RuleEvaluationResult, 0, len(rules))
	for _, path := range plan.Paths {
		ok, res := path.Clause.Evaluate(set)
		if ok && applied < 0 {
			applied = len(outcomes)
		}
		outcomes = append(outcomes, pathOutcome{path, ok, res})
		results = append(results, res...)
	}

	waiver, actual, err := CalculateWaiver(baseFee, applied >= 0)
	if err != nil {
		e.Log(err)
		return models.WaiverDecision{}, err
	}

	decision := models.WaiverDecision{
		IsWaived:       applied >= 0,
		BaseFee:        baseFee,
		WaiverAmount:   waiver,
		ActualFee:      actual,
		AppliedRuleIDs: []uuid.UUID{},
		PerRuleResults: results,
		Diagnostics:    plan.Diagnostics,
	}
	if decision.Diagnostics == nil {
		decision.Diagnostics = []models.Diagnostic{}
	}
	if applied >= 0 {
		decision.AppliedGroup = outcomes[applied].path.Key
		for _, r := range outcomes[applied].results {
			if r.Met {
				decision.AppliedRuleIDs = append(decision.AppliedRuleIDs, r.RuleID)
			}
		}
	}
	decision.Explanation = Explain(outcomes, applied, baseFee, waiver, actual, decision.Diagnostics)

	for _, d := range plan.Diagnostics {
		if d.Kind == models.DiagnosticConfigurationError {
			e.logger.Warn("waiver rule excluded",
				zap.String("rule_id", d.RuleID.String()),
				zap.String("group", d.GroupKey),
				zap.String("reason", string(d.Reason)),
				zap.String("detail", d.Detail),
			)
		}
	}
	return decision, nil
}

// Снимки по периодам, два снимка одного периода - ошибка
func IndexSnapshots(snapshots []models.MetricsSnapshot) (SnapshotSet, error) {
	set := make(SnapshotSet, len(snapshots))
	for _, s := range snapshots {
		if !s.PeriodKind.Valid() {
			return nil, fmt.Errorf("%w: snapshot period kind %q", models.ErrInvalidInput, s.PeriodKind)
		}
		if _, ok := set[s.PeriodKind]; ok {
			return nil, fmt.Errorf("%w: duplicate %s snapshot", models.ErrInvalidInput, s.PeriodKind)
		}
		set[s.PeriodKind] = s
	}
	return set, nil
}

// log
func (e *WaiverEngine) Log(err error) {
	e.logger.Error("Waiver Engine",
		zap.String("service", "Evaluate"),
		zap.Error(err),
	)
}

// Периоды, снимки которых нужны действующим правилам
func RequiredPeriods(rules []models.WaiverRule, on time.Time) []models.Period {
	need := make(map[models.Period]bool)
	for _, r := range rules {
		if r.IsEnabled && inWindow(r, on) && r.ConditionPeriod.Valid() {
			need[r.ConditionPeriod] = true
		}
	}
	var periods []models.Period
	for _, p := range []models.Period{models.PeriodMonthly, models.PeriodQuarterly, models.PeriodYearly} {
		if need[p] {
			periods = append(periods, p)
		}
	}
	return periods
}
