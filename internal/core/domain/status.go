package domain

import (
	"strings"

	"daes-settlement-engine/pkg/apperror"
)

// SettlementStatus represents the lifecycle state of a settlement instruction.
type SettlementStatus string

const (
	StatusPending   SettlementStatus = "PENDING"
	StatusSent      SettlementStatus = "SENT"
	StatusCompleted SettlementStatus = "COMPLETED"
	StatusFailed    SettlementStatus = "FAILED"
)

// allowedTransitions is the single source of truth for transition legality.
// COMPLETED and FAILED are terminal.
var allowedTransitions = map[SettlementStatus][]SettlementStatus{
	StatusPending:   {StatusSent, StatusCompleted, StatusFailed},
	StatusSent:      {StatusCompleted, StatusFailed},
	StatusCompleted: {},
	StatusFailed:    {},
}

// ParseSettlementStatus validates a status string against the enumeration.
func ParseSettlementStatus(value string) (SettlementStatus, error) {
	s := SettlementStatus(strings.ToUpper(strings.TrimSpace(value)))
	if _, ok := allowedTransitions[s]; !ok {
		return "", apperror.ErrInvalidStatus(value)
	}
	return s, nil
}

// CanTransitionTo reports whether the transition to target is legal.
func (s SettlementStatus) CanTransitionTo(target SettlementStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsTerminal returns true when no outgoing transition exists.
func (s SettlementStatus) IsTerminal() bool {
	return len(allowedTransitions[s]) == 0
}

func (s SettlementStatus) String() string {
	return string(s)
}
