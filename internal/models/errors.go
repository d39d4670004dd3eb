package models

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrNotFound                 = errors.New("not found")
	ErrInvalidInput             = errors.New("invalid input")
	ErrInvalidTransition        = errors.New("invalid fee status transition")
	ErrInvalidRuleConfiguration = errors.New("invalid rule configuration")
	ErrInvariantViolation       = errors.New("invariant violation")
)

// Ошибка конфигурации правила, группа исключается
type InvalidRuleConfigurationError struct {
	RuleID   uuid.UUID
	GroupKey string
	Reason   DiagnosticReason
	Detail   string
}

func (e *InvalidRuleConfigurationError) Error() string {
	return fmt.Sprintf("rule %s (group %s): %s: %s", e.RuleID, e.GroupKey, e.Reason, e.Detail)
}

func (e *InvalidRuleConfigurationError) Unwrap() error {
	return ErrInvalidRuleConfiguration
}

// для аудита
func (e *InvalidRuleConfigurationError) Diagnostic() Diagnostic {
	return Diagnostic{
		RuleID:   e.RuleID,
		GroupKey: e.GroupKey,
		Kind:     DiagnosticConfigurationError,
		Reason:   e.Reason,
		Detail:   e.Detail,
	}
}

// Нарушение инварианта, решения нет
type InvariantViolationError struct {
	Detail string
}

func (e *InvariantViolationError) Error() string {
	return "invariant violation: " + e.Detail
}

func (e *InvariantViolationError) Unwrap() error {
	return ErrInvariantViolation
}
