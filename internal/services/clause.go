package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	models "github.com/glkeru/cardfee/internal/models"
)

// Снимки по периодам
type SnapshotSet map[models.Period]models.MetricsSnapshot

// Узел дерева условий: Leaf | And | Or. Всегда обходит все листья
type Clause interface {
	Evaluate(snapshots SnapshotSet) (bool, []models.RuleEvaluationResult)
}

type Leaf struct {
	Rule      models.WaiverRule
	Condition Condition
}

func (l Leaf) Evaluate(snapshots SnapshotSet) (bool, []models.RuleEvaluationResult) {
	res := evaluateRule(l.Rule, l.Condition, snapshots[l.Condition.Period()])
	return res.Met, []models.RuleEvaluationResult{res}
}

type And []Clause

func (a And) Evaluate(snapshots SnapshotSet) (bool, []models.RuleEvaluationResult) {
	ok := len(a) > 0
	var results []models.RuleEvaluationResult
	for _, c := range a {
		met, res := c.Evaluate(snapshots)
		ok = ok && met
		results = append(results, res...)
	}
	return ok, results
}

type Or []Clause

func (o Or) Evaluate(snapshots SnapshotSet) (bool, []models.RuleEvaluationResult) {
	ok := false
	var results []models.RuleEvaluationResult
	for _, c := range o {
		met, res := c.Evaluate(snapshots)
		ok = ok || met
		results = append(results, res...)
	}
	return ok, results
}

// Путь к отмене: группа или одиночное правило
type Path struct {
	Key      string
	Operator models.LogicalOperator
	Priority int
	Clause   Clause

	createdAt time.Time
	position  int
}

// Скомпилированные правила карты
type Plan struct {
	Paths       []Path
	Diagnostics []models.Diagnostic
}

func groupKey(rule models.WaiverRule) string {
	if rule.Grouped() {
		return rule.RuleGroupID
	}
	return "rule:" + rule.ID.String()
}

// календарная дата
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Период действия правила, границы включительно
func inWindow(rule models.WaiverRule, on time.Time) bool {
	day := civilDate(on)
	if rule.EffectiveFrom != nil && day.Before(civilDate(*rule.EffectiveFrom)) {
		return false
	}
	if rule.EffectiveTo != nil && day.After(civilDate(*rule.EffectiveTo)) {
		return false
	}
	return true
}

// ключ корзины: группы и одиночные правила не пересекаются
type bucket struct {
	grouped  bool
	groupID  string
	position int
}

type member struct {
	rule     models.WaiverRule
	position int
}

// Отбор, проверка и группировка правил; пути по приоритету, затем по времени создания
func CompilePlan(rules []models.WaiverRule, snapshots SnapshotSet, on time.Time) (Plan, error) {
	var plan Plan

	var keys []bucket
	groups := make(map[bucket][]member)
	for i, rule := range rules {
		// одиночное правило всегда в своей корзине, даже с повторным id
		key := bucket{grouped: true, groupID: rule.RuleGroupID}
		if !rule.Grouped() {
			key = bucket{position: i}
		}
		switch {
		case !rule.IsEnabled:
			plan.Diagnostics = append(plan.Diagnostics, excluded(rule, models.ReasonDisabled, "rule is disabled"))
			continue
		case !inWindow(rule, on):
			plan.Diagnostics = append(plan.Diagnostics, excluded(rule, models.ReasonOutsideWindow,
				fmt.Sprintf("not in effect on %s", civilDate(on).Format(time.DateOnly))))
			continue
		}
		if _, ok := groups[key]; !ok {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], member{rule, i})
	}

	for _, key := range keys {
		path, diags, err := compilePath(groups[key], snapshots)
		if err != nil {
			return Plan{}, err
		}
		if len(diags) > 0 {
			plan.Diagnostics = append(plan.Diagnostics, diags...)
			continue
		}
		plan.Paths = append(plan.Paths, path)
	}

	sort.SliceStable(plan.Paths, func(i, j int) bool {
		a, b := plan.Paths[i], plan.Paths[j]
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		if !a.createdAt.Equal(b.createdAt) {
			return a.createdAt.Before(b.createdAt)
		}
		return a.position < b.position
	})
	return plan, nil
}

// Группа целиком: одно ошибочное правило исключает всю группу
func compilePath(members []member, snapshots SnapshotSet) (Path, []models.Diagnostic, error) {
	key := groupKey(members[0].rule)
	grouped := members[0].rule.Grouped()

	op := models.OperatorNone
	if grouped {
		var reason models.DiagnosticReason
		op, reason = groupOperator(members)
		if reason != "" {
			detail := fmt.Sprintf("group %s has no single valid logical operator", key)
			diags := make([]models.Diagnostic, 0, len(members))
			for _, m := range members {
				diags = append(diags, configError(m.rule, reason, detail))
			}
			return Path{}, diags, nil
		}
	}

	var (
		leaves   []Clause
		failures = make(map[int]models.Diagnostic)
	)
	for i, m := range members {
		cond, err := CompileCondition(m.rule)
		if err != nil {
			var cfgErr *models.InvalidRuleConfigurationError
			if !errors.As(err, &cfgErr) {
				return Path{}, nil, err
			}
			failures[i] = cfgErr.Diagnostic()
			continue
		}
		if _, ok := snapshots[cond.Period()]; !ok {
			failures[i] = configError(m.rule, models.ReasonMissingSnapshot,
				fmt.Sprintf("no %s snapshot supplied", cond.Period()))
			continue
		}
		leaves = append(leaves, Leaf{Rule: m.rule, Condition: cond})
	}
	if len(failures) > 0 {
		diags := make([]models.Diagnostic, 0, len(members))
		for i, m := range members {
			if d, ok := failures[i]; ok {
				diags = append(diags, d)
				continue
			}
			diags = append(diags, configError(m.rule, models.ReasonGroupExcluded,
				fmt.Sprintf("group %s excluded by an invalid member", key)))
		}
		return Path{}, diags, nil
	}

	clause, err := newClause(op, leaves)
	if err != nil {
		return Path{}, nil, err
	}

	path := Path{
		Key:       key,
		Operator:  op,
		Priority:  members[0].rule.Priority,
		Clause:    clause,
		createdAt: members[0].rule.CreatedAt,
		position:  members[0].position,
	}
	for _, m := range members[1:] {
		if m.rule.Priority < path.Priority {
			path.Priority = m.rule.Priority
		}
		if m.rule.CreatedAt.Before(path.createdAt) {
			path.createdAt = m.rule.CreatedAt
		}
	}
	return path, nil, nil
}

// Общий оператор группы или причина ошибки
func groupOperator(members []member) (models.LogicalOperator, models.DiagnosticReason) {
	op := members[0].rule.LogicalOperator
	for _, m := range members {
		switch m.rule.LogicalOperator {
		case models.OperatorNone:
			return "", models.ReasonMissingOperator
		case models.OperatorAND, models.OperatorOR:
		default:
			return "", models.ReasonInvalidOperator
		}
	}
	for _, m := range members[1:] {
		if m.rule.LogicalOperator != op {
			return "", models.ReasonMixedOperators
		}
	}
	return op, ""
}

func newClause(op models.LogicalOperator, leaves []Clause) (Clause, error) {
	switch op {
	case models.OperatorNone:
		if len(leaves) != 1 {
			return nil, &models.InvariantViolationError{
				Detail: fmt.Sprintf("ungrouped path with %d rules", len(leaves)),
			}
		}
		return leaves[0], nil
	case models.OperatorAND:
		return And(leaves), nil
	case models.OperatorOR:
		return Or(leaves), nil
	}
	return nil, &models.InvariantViolationError{
		Detail: fmt.Sprintf("logical operator %q reached the combinator", op),
	}
}

func excluded(rule models.WaiverRule, reason models.DiagnosticReason, detail string) models.Diagnostic {
	return models.Diagnostic{
		RuleID:   rule.ID,
		GroupKey: groupKey(rule),
		Kind:     models.DiagnosticExcluded,
		Reason:   reason,
		Detail:   detail,
	}
}

func configError(rule models.WaiverRule, reason models.DiagnosticReason, detail string) models.Diagnostic {
	return models.Diagnostic{
		RuleID:   rule.ID,
		GroupKey: groupKey(rule),
		Kind:     models.DiagnosticConfigurationError,
		Reason:   reason,
		Detail:   detail,
	}
}
