package ports

import (
	"context"
	"errors"
	"time"

	"daes-settlement-engine/internal/core/domain"

	"github.com/google/uuid"
)

// Repository sentinel errors. Adapters return these; services translate them
// into the apperror taxonomy.
var (
	// ErrNotFound is returned by Update when the instruction id is unknown.
	ErrNotFound = errors.New("record not found")
	// ErrVersionConflict is returned by Update when the stored version does
	// not match the version the caller read (lost-update protection).
	ErrVersionConflict = errors.New("version conflict")
	// ErrDuplicate is returned by Save on a unique-key collision.
	ErrDuplicate = errors.New("duplicate record")
)

// SettlementRepository defines persistence operations for settlement
// instructions. Find methods return (nil, nil) when no row matches.
//
// Update is a compare-and-swap keyed on the instruction id and the Version
// the caller read: it fails with ErrVersionConflict instead of silently
// overwriting a concurrent confirmation, and bumps Version on success.
type SettlementRepository interface {
	Save(ctx context.Context, instruction *domain.BankSettlementInstruction) error
	Update(ctx context.Context, instruction *domain.BankSettlementInstruction) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.BankSettlementInstruction, error)
	FindByDaesReferenceID(ctx context.Context, daesReferenceID string) (*domain.BankSettlementInstruction, error)
	FindByStatus(ctx context.Context, status domain.SettlementStatus) ([]*domain.BankSettlementInstruction, error)
	FindByExecutionDate(ctx context.Context, start, end time.Time) ([]*domain.BankSettlementInstruction, error)
	FindAll(ctx context.Context, limit, offset int) ([]*domain.BankSettlementInstruction, error)
}

// AuditLogRepository defines persistence for the append-only audit trail.
type AuditLogRepository interface {
	Save(ctx context.Context, entry *domain.AuditLog) error
	FindBySettlementID(ctx context.Context, settlementID string) ([]*domain.AuditLog, error)
	FindByDateRange(ctx context.Context, start, end time.Time) ([]*domain.AuditLog, error)
	FindByUser(ctx context.Context, performedBy string) ([]*domain.AuditLog, error)
}

// BankConfigRepository defines lookups for bank destination reference data.
type BankConfigRepository interface {
	FindByBankCode(ctx context.Context, bankCode string) (*domain.BankDestinationConfig, error)
	FindAllActive(ctx context.Context) ([]*domain.BankDestinationConfig, error)
	Save(ctx context.Context, cfg *domain.BankDestinationConfig) error
}

// OperatorRepository defines persistence operations for ops users.
type OperatorRepository interface {
	Create(ctx context.Context, operator *domain.Operator) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Operator, error)
	GetByUsername(ctx context.Context, username string) (*domain.Operator, error)
}
