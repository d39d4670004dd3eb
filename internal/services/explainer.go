package services

import (
	"fmt"
	"strings"

	models "github.com/glkeru/cardfee/internal/models"
	"github.com/shopspring/decimal"
)

// результат одного пути
type pathOutcome struct {
	path      Path
	satisfied bool
	results   []models.RuleEvaluationResult
}

// Текст решения, зависит только от аргументов
func Explain(outcomes []pathOutcome, applied int, baseFee, waiver, actual decimal.Decimal, diags []models.Diagnostic) string {
	var b strings.Builder

	if applied >= 0 {
		fmt.Fprintf(&b, "annual fee waived: %s of %s, actual fee %s\n",
			waiver.StringFixed(2), baseFee.StringFixed(2), actual.StringFixed(2))
	} else {
		fmt.Fprintf(&b, "annual fee not waived: no rule group satisfied, actual fee %s\n", actual.StringFixed(2))
	}

	for i, o := range outcomes {
		status := "not satisfied"
		switch {
		case i == applied:
			status = "applied"
		case o.satisfied:
			status = "satisfied"
		}
		op := string(o.path.Operator)
		if op == "" {
			op = "SINGLE"
		}
		fmt.Fprintf(&b, "group %s (%s, priority %d): %s\n", o.path.Key, op, o.path.Priority, status)
		for _, r := range o.results {
			met := "not met"
			if r.Met {
				met = "met"
			}
			fmt.Fprintf(&b, "  rule %s %s: %s / %s (%s%%) %s\n", r.RuleID, r.ConditionType,
				r.CurrentProgress.String(), r.RequiredTarget.String(), r.CompletionPercentage.StringFixed(2), met)
		}
	}

	for _, d := range diags {
		fmt.Fprintf(&b, "rule %s %s: %s", d.RuleID, d.Kind, d.Reason)
		if d.Detail != "" {
			fmt.Fprintf(&b, " (%s)", d.Detail)
		}
		b.WriteByte('\n')
	}

	return strings.TrimSuffix(b.String(), "\n")
}
