package domain

import (
	"time"

	"daes-settlement-engine/pkg/apperror"

	"github.com/google/uuid"
)

// BankSettlementInstruction is the aggregate root of the settlement engine: a
// record of intent to wire treasury funds to an external bank account,
// tracked from PENDING through a terminal outcome. Beneficiary details are
// copied from the resolved bank destination at creation time so later config
// changes never retroactively alter a historical instruction. Instructions
// are never deleted; terminal states are a permanent audit trail.
type BankSettlementInstruction struct {
	ID              uuid.UUID
	DaesReferenceID string
	BankCode        string
	Amount          Amount
	Currency        Currency
	BeneficiaryName string
	BeneficiaryIBAN string
	SwiftCode       string
	Reference       string // optional free text supplied by the requester
	LedgerDebitID   string // proof of the upstream treasury debit
	Status          SettlementStatus
	CreatedBy       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Version         int64 // optimistic-locking counter, bumped on every Update

	// Post-confirmation fields.
	BankTransactionRef string // set only when transitioning into COMPLETED
	FailureReason      string // set only when transitioning into FAILED
	ExecutedBy         string
	ExecutedAt         *time.Time
}

// NewInstructionParams carries everything the factory needs to build a
// PENDING instruction after a successful ledger debit.
type NewInstructionParams struct {
	DaesReferenceID string
	BankCode        string
	Amount          Amount
	Currency        Currency
	BeneficiaryName string
	BeneficiaryIBAN IBAN
	SwiftCode       string
	Reference       string
	LedgerDebitID   string
	CreatedBy       string
}

// NewBankSettlementInstruction constructs an instruction in PENDING state.
func NewBankSettlementInstruction(p NewInstructionParams) *BankSettlementInstruction {
	now := time.Now().UTC()
	return &BankSettlementInstruction{
		ID:              uuid.New(),
		DaesReferenceID: p.DaesReferenceID,
		BankCode:        p.BankCode,
		Amount:          p.Amount,
		Currency:        p.Currency,
		BeneficiaryName: p.BeneficiaryName,
		BeneficiaryIBAN: p.BeneficiaryIBAN.String(),
		SwiftCode:       p.SwiftCode,
		Reference:       p.Reference,
		LedgerDebitID:   p.LedgerDebitID,
		Status:          StatusPending,
		CreatedBy:       p.CreatedBy,
		CreatedAt:       now,
		UpdatedAt:       now,
		Version:         1,
	}
}

// ConfirmParams carries the outcome of an externally executed wire.
type ConfirmParams struct {
	Status             SettlementStatus
	BankTransactionRef string // recorded only on COMPLETED
	FailureReason      string // recorded only on FAILED
	ExecutedBy         string
}

// Confirm is the single mutation entry point of the aggregate. Transition
// legality is checked before any field changes, so an illegal confirmation
// can never leave the instruction half-updated.
func (i *BankSettlementInstruction) Confirm(p ConfirmParams) error {
	if !i.Status.CanTransitionTo(p.Status) {
		return apperror.ErrInvalidStatusTransition(i.Status.String(), p.Status.String())
	}

	now := time.Now().UTC()
	i.Status = p.Status
	i.ExecutedBy = p.ExecutedBy
	i.ExecutedAt = &now
	i.UpdatedAt = now

	if p.Status == StatusCompleted && p.BankTransactionRef != "" {
		i.BankTransactionRef = p.BankTransactionRef
	}
	if p.Status == StatusFailed && p.FailureReason != "" {
		i.FailureReason = p.FailureReason
	}
	return nil
}

// MarkAsSent records that the wire was handed to the bank.
func (i *BankSettlementInstruction) MarkAsSent(executedBy string) error {
	return i.Confirm(ConfirmParams{Status: StatusSent, ExecutedBy: executedBy})
}

// MarkAsCompleted records a successful execution with the bank's reference.
func (i *BankSettlementInstruction) MarkAsCompleted(executedBy, bankTransactionRef string) error {
	return i.Confirm(ConfirmParams{
		Status:             StatusCompleted,
		BankTransactionRef: bankTransactionRef,
		ExecutedBy:         executedBy,
	})
}

// MarkAsFailed records a failed execution with the bank's reason.
func (i *BankSettlementInstruction) MarkAsFailed(executedBy, reason string) error {
	return i.Confirm(ConfirmParams{
		Status:        StatusFailed,
		FailureReason: reason,
		ExecutedBy:    executedBy,
	})
}

// InstructionSnapshot is the flat, wire-safe projection of an instruction
// used for API responses and persistence equally.
type InstructionSnapshot struct {
	ID                 string  `json:"id"`
	DaesReferenceID    string  `json:"daes_reference_id"`
	BankCode           string  `json:"bank_code"`
	Amount             string  `json:"amount"`
	Currency           string  `json:"currency"`
	BeneficiaryName    string  `json:"beneficiary_name"`
	BeneficiaryIBAN    string  `json:"beneficiary_iban"`
	SwiftCode          string  `json:"swift_code"`
	Reference          string  `json:"reference,omitempty"`
	LedgerDebitID      string  `json:"ledger_debit_id"`
	Status             string  `json:"status"`
	CreatedBy          string  `json:"created_by"`
	CreatedAt          string  `json:"created_at"`
	UpdatedAt          string  `json:"updated_at"`
	BankTransactionRef string  `json:"bank_transaction_ref,omitempty"`
	FailureReason      string  `json:"failure_reason,omitempty"`
	ExecutedBy         string  `json:"executed_by,omitempty"`
	ExecutedAt         *string `json:"executed_at,omitempty"`
}

// Snapshot unwraps value objects to primitives and formats dates as ISO-8601.
func (i *BankSettlementInstruction) Snapshot() InstructionSnapshot {
	s := InstructionSnapshot{
		ID:                 i.ID.String(),
		DaesReferenceID:    i.DaesReferenceID,
		BankCode:           i.BankCode,
		Amount:             i.Amount.StringFixed(),
		Currency:           i.Currency.Code(),
		BeneficiaryName:    i.BeneficiaryName,
		BeneficiaryIBAN:    i.BeneficiaryIBAN,
		SwiftCode:          i.SwiftCode,
		Reference:          i.Reference,
		LedgerDebitID:      i.LedgerDebitID,
		Status:             i.Status.String(),
		CreatedBy:          i.CreatedBy,
		CreatedAt:          i.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          i.UpdatedAt.Format(time.RFC3339),
		BankTransactionRef: i.BankTransactionRef,
		FailureReason:      i.FailureReason,
		ExecutedBy:         i.ExecutedBy,
	}
	if i.ExecutedAt != nil {
		at := i.ExecutedAt.Format(time.RFC3339)
		s.ExecutedAt = &at
	}
	return s
}

// PaymentOrder is the execution projection handed to bank operations: only
// what is needed to execute the wire, without internal ids or ledger refs.
type PaymentOrder struct {
	DaesReferenceID string `json:"daes_reference_id"`
	BankName        string `json:"bank_name,omitempty"`
	BeneficiaryName string `json:"beneficiary_name"`
	BeneficiaryIBAN string `json:"beneficiary_iban"`
	SwiftCode       string `json:"swift_code"`
	Amount          string `json:"amount"`
	Currency        string `json:"currency"`
	Reference       string `json:"reference,omitempty"`
}

// PaymentOrder builds the execution projection for this instruction.
func (i *BankSettlementInstruction) PaymentOrder() PaymentOrder {
	return PaymentOrder{
		DaesReferenceID: i.DaesReferenceID,
		BeneficiaryName: i.BeneficiaryName,
		BeneficiaryIBAN: i.BeneficiaryIBAN,
		SwiftCode:       i.SwiftCode,
		Amount:          i.Amount.StringFixed(),
		Currency:        i.Currency.Code(),
		Reference:       i.Reference,
	}
}

// IsTerminal reports whether the instruction reached a final state.
func (i *BankSettlementInstruction) IsTerminal() bool {
	return i.Status.IsTerminal()
}
