package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited settlement action.
type AuditAction string

const (
	AuditActionCreateInstruction AuditAction = "CREATE_INSTRUCTION"
	AuditActionUpdateStatus      AuditAction = "UPDATE_STATUS"
	AuditActionMarkAsSent        AuditAction = "MARK_AS_SENT"
	AuditActionMarkAsCompleted   AuditAction = "MARK_AS_COMPLETED"
	AuditActionMarkAsFailed      AuditAction = "MARK_AS_FAILED"
	AuditActionViewInstruction   AuditAction = "VIEW_INSTRUCTION"
	AuditActionGenerateReport    AuditAction = "GENERATE_REPORT"
)

// AuditSettlementIDReport is the sentinel settlement id for report-generation
// events that are not tied to one instruction.
const AuditSettlementIDReport = "REPORT"

// AuditLog is an immutable, append-only record of an action taken on a
// settlement instruction. Owned exclusively by the use case that creates it;
// entities never append their own audit trail.
type AuditLog struct {
	ID             uuid.UUID         `json:"id"`
	SettlementID   string            `json:"settlement_id"`
	Action         AuditAction       `json:"action"`
	PerformedBy    string            `json:"performed_by"`
	PreviousStatus *SettlementStatus `json:"previous_status,omitempty"`
	NewStatus      *SettlementStatus `json:"new_status,omitempty"`
	Metadata       map[string]string `json:"metadata,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
}

// NewAuditLog constructs an audit entry stamped with the current time.
func NewAuditLog(settlementID string, action AuditAction, performedBy string) *AuditLog {
	return &AuditLog{
		ID:           uuid.New(),
		SettlementID: settlementID,
		Action:       action,
		PerformedBy:  performedBy,
		Metadata:     map[string]string{},
		CreatedAt:    time.Now().UTC(),
	}
}

// WithStatusChange records the previous and new status snapshots.
func (a *AuditLog) WithStatusChange(prev, next SettlementStatus) *AuditLog {
	a.PreviousStatus = &prev
	a.NewStatus = &next
	return a
}

// WithMetadata adds a free-form metadata entry.
func (a *AuditLog) WithMetadata(key, value string) *AuditLog {
	a.Metadata[key] = value
	return a
}
