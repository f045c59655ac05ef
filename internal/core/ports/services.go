package ports

import (
	"context"
	"time"

	"daes-settlement-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerResult is the outcome of a treasury ledger operation.
type LedgerResult struct {
	Success           bool
	LedgerEntryID     string
	BalanceAfter      decimal.Decimal
	FailureReason     string // populated when Success is false
	InsufficientFunds bool   // true when the failure is a balance shortfall
}

// LedgerService is the external treasury balance system, consumed through a
// narrow debit/credit contract. Debit MUST be idempotent keyed on the
// reference string: a retried call with the same reference returns the
// original entry instead of debiting twice.
type LedgerService interface {
	DebitTreasuryAccount(ctx context.Context, currency domain.Currency, amount domain.Amount, reference, requestedBy string) (*LedgerResult, error)
	CreditTreasuryAccount(ctx context.Context, currency domain.Currency, amount domain.Amount, reference, requestedBy string) (*LedgerResult, error)
	GetAvailableBalance(ctx context.Context, currency domain.Currency) (decimal.Decimal, error)
}

// InstructionLocker serializes confirmations per instruction id. Acquire
// blocks until the lock is held or ctx expires; the returned func releases it.
type InstructionLocker interface {
	Acquire(ctx context.Context, instructionID string, ttl time.Duration) (release func(), err error)
}

// EventPublisher publishes settlement lifecycle events for downstream
// reconciliation consumers. Publishing is best-effort; use cases log and
// continue on failure.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, body interface{}) error
	Close()
}

// AuditService records audit entries (fire-and-forget).
type AuditService interface {
	Record(ctx context.Context, entry *domain.AuditLog)
}

// HealthChecker verifies an external dependency for the health endpoint.
type HealthChecker interface {
	Ping(ctx context.Context) error
	Name() string
}

// ---- Settlement use cases ----

// CreateInstructionRequest is the already-validated input DTO for creating
// a settlement instruction.
type CreateInstructionRequest struct {
	Amount      float64
	Currency    string
	Reference   string
	BankCode    string // empty selects the configured default bank
	RequestedBy string
}

// CreateInstructionResponse is the creation result DTO.
type CreateInstructionResponse struct {
	ID              string `json:"id"`
	DaesReferenceID string `json:"daes_reference_id"`
	Amount          string `json:"amount"`
	Currency        string `json:"currency"`
	BankCode        string `json:"bank_code"`
	BeneficiaryName string `json:"beneficiary_name"`
	BeneficiaryIBAN string `json:"beneficiary_iban"`
	SwiftCode       string `json:"swift_code"`
	Status          string `json:"status"`
	LedgerDebitID   string `json:"ledger_debit_id"`
	CreatedBy       string `json:"created_by"`
	CreatedAt       string `json:"created_at"`
}

// ConfirmInstructionRequest is the input DTO for recording the outcome of an
// externally executed wire.
type ConfirmInstructionRequest struct {
	SettlementID       string
	Status             string
	BankTransactionRef string
	FailureReason      string
	ExecutedBy         string
}

// ConfirmInstructionResponse is the confirmation result DTO.
type ConfirmInstructionResponse struct {
	ID                 string `json:"id"`
	Status             string `json:"status"`
	BankTransactionRef string `json:"bank_transaction_ref,omitempty"`
	FailureReason      string `json:"failure_reason,omitempty"`
	ExecutedBy         string `json:"executed_by"`
	ExecutedAt         string `json:"executed_at"`
}

// SettlementService orchestrates instruction creation and confirmation.
type SettlementService interface {
	CreateInstruction(ctx context.Context, req CreateInstructionRequest) (*CreateInstructionResponse, error)
	ConfirmInstruction(ctx context.Context, req ConfirmInstructionRequest) (*ConfirmInstructionResponse, error)
	GetInstruction(ctx context.Context, id string, viewedBy string) (*domain.InstructionSnapshot, error)
	GetPaymentOrder(ctx context.Context, id string, viewedBy string) (*domain.PaymentOrder, error)
}

// ---- Daily report use case ----

// ReportFormat enumerates supported report renderings.
type ReportFormat string

const (
	ReportFormatJSON ReportFormat = "json"
	ReportFormatCSV  ReportFormat = "csv"
)

// DailyReportRequest asks for all instructions executed on a UTC day.
type DailyReportRequest struct {
	Date        string // YYYY-MM-DD
	Format      ReportFormat
	RequestedBy string
}

// ReportRow is one flattened instruction in the daily report.
type ReportRow struct {
	DaesReferenceID    string `json:"daes_reference_id"`
	Currency           string `json:"currency"`
	Amount             string `json:"amount"`
	BeneficiaryIBAN    string `json:"beneficiary_iban"`
	BankTransactionRef string `json:"bank_transaction_ref,omitempty"`
	Status             string `json:"status"`
	ExecutedBy         string `json:"executed_by,omitempty"`
	ExecutedAt         string `json:"executed_at,omitempty"`
	CreatedAt          string `json:"created_at"`
	Reference          string `json:"reference,omitempty"`
}

// ReportStatusCounts buckets instructions by outcome. Pending covers every
// instruction in the window that is neither completed nor failed.
type ReportStatusCounts struct {
	Completed int `json:"completed"`
	Failed    int `json:"failed"`
	Pending   int `json:"pending"`
}

// DailyReport is the aggregate over one UTC execution day.
type DailyReport struct {
	Date             string             `json:"date"`
	GeneratedAt      string             `json:"generated_at"`
	TotalCount       int                `json:"total_count"`
	TotalsByCurrency map[string]string  `json:"totals_by_currency"` // completed amounts only
	StatusCounts     ReportStatusCounts `json:"status_counts"`
	Settlements      []ReportRow        `json:"settlements"`
}

// ReportService generates and renders the daily settlement report.
type ReportService interface {
	GenerateDailyReport(ctx context.Context, req DailyReportRequest) (*DailyReport, error)
	RenderCSV(report *DailyReport) (string, error)
}

// ---- Authentication ----

// TokenClaims is the validated identity carried by a bearer token.
type TokenClaims struct {
	OperatorID uuid.UUID
	Username   string
	Role       string
}

// TokenService issues and validates operator bearer tokens.
type TokenService interface {
	Generate(operatorID uuid.UUID, username, role string) (token string, expiresAt int64, err error)
	Validate(token string) (*TokenClaims, error)
}

// HashService hashes and verifies operator passwords.
type HashService interface {
	Hash(password string) (string, error)
	Verify(password, encodedHash string) (bool, error)
}

// AuthService authenticates settlement operators.
type AuthService interface {
	Register(ctx context.Context, username, password string, role domain.OperatorRole) (*domain.Operator, error)
	Login(ctx context.Context, username, password string) (token string, expiresAt int64, err error)
}
