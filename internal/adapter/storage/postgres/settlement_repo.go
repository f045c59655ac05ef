package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"daes-settlement-engine/internal/core/domain"
	"daes-settlement-engine/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// SettlementRepo implements ports.SettlementRepository.
type SettlementRepo struct {
	pool Pool
}

// NewSettlementRepo creates a new SettlementRepo.
func NewSettlementRepo(pool Pool) *SettlementRepo {
	return &SettlementRepo{pool: pool}
}

const settlementColumns = `id, daes_reference_id, bank_code, amount, currency,
	beneficiary_name, beneficiary_iban, swift_code, reference, ledger_debit_id,
	status, created_by, created_at, updated_at, version,
	bank_transaction_ref, failure_reason, executed_by, executed_at`

// Save inserts a new settlement instruction.
func (r *SettlementRepo) Save(ctx context.Context, instr *domain.BankSettlementInstruction) error {
	query := `INSERT INTO settlement_instructions (` + settlementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`

	_, err := r.pool.Exec(ctx, query,
		instr.ID, instr.DaesReferenceID, instr.BankCode,
		instr.Amount.Decimal(), instr.Currency.Code(),
		instr.BeneficiaryName, instr.BeneficiaryIBAN, instr.SwiftCode,
		instr.Reference, instr.LedgerDebitID,
		instr.Status.String(), instr.CreatedBy, instr.CreatedAt, instr.UpdatedAt, instr.Version,
		instr.BankTransactionRef, instr.FailureReason, instr.ExecutedBy, instr.ExecutedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ports.ErrDuplicate
		}
		return fmt.Errorf("insert settlement instruction: %w", err)
	}
	return nil
}

// Update writes the instruction back, guarded by the version the caller read.
// The WHERE clause on version is the optimistic lock: zero rows affected with
// an existing id means someone else updated first.
func (r *SettlementRepo) Update(ctx context.Context, instr *domain.BankSettlementInstruction) error {
	query := `UPDATE settlement_instructions SET
		status = $1, updated_at = $2, version = version + 1,
		bank_transaction_ref = $3, failure_reason = $4, executed_by = $5, executed_at = $6
		WHERE id = $7 AND version = $8`

	tag, err := r.pool.Exec(ctx, query,
		instr.Status.String(), instr.UpdatedAt,
		instr.BankTransactionRef, instr.FailureReason, instr.ExecutedBy, instr.ExecutedAt,
		instr.ID, instr.Version,
	)
	if err != nil {
		return fmt.Errorf("update settlement instruction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := r.pool.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM settlement_instructions WHERE id = $1)`, instr.ID,
		).Scan(&exists); err != nil {
			return fmt.Errorf("check settlement exists: %w", err)
		}
		if exists {
			return ports.ErrVersionConflict
		}
		return ports.ErrNotFound
	}
	instr.Version++
	return nil
}

// FindByID fetches an instruction by UUID.
func (r *SettlementRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.BankSettlementInstruction, error) {
	query := `SELECT ` + settlementColumns + ` FROM settlement_instructions WHERE id = $1`
	return r.scanInstruction(r.pool.QueryRow(ctx, query, id))
}

// FindByDaesReferenceID fetches an instruction by its external DAES reference.
func (r *SettlementRepo) FindByDaesReferenceID(ctx context.Context, daesReferenceID string) (*domain.BankSettlementInstruction, error) {
	query := `SELECT ` + settlementColumns + ` FROM settlement_instructions WHERE daes_reference_id = $1`
	return r.scanInstruction(r.pool.QueryRow(ctx, query, daesReferenceID))
}

// FindByStatus fetches all instructions in a given lifecycle state.
func (r *SettlementRepo) FindByStatus(ctx context.Context, status domain.SettlementStatus) ([]*domain.BankSettlementInstruction, error) {
	query := `SELECT ` + settlementColumns + ` FROM settlement_instructions
		WHERE status = $1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, status.String())
	if err != nil {
		return nil, fmt.Errorf("find by status: %w", err)
	}
	return r.collectInstructions(rows)
}

// FindByExecutionDate fetches all instructions executed inside [start, end].
func (r *SettlementRepo) FindByExecutionDate(ctx context.Context, start, end time.Time) ([]*domain.BankSettlementInstruction, error) {
	query := `SELECT ` + settlementColumns + ` FROM settlement_instructions
		WHERE executed_at >= $1 AND executed_at <= $2 ORDER BY executed_at`

	rows, err := r.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("find by execution date: %w", err)
	}
	return r.collectInstructions(rows)
}

// FindAll fetches instructions newest first with limit/offset pagination.
func (r *SettlementRepo) FindAll(ctx context.Context, limit, offset int) ([]*domain.BankSettlementInstruction, error) {
	query := `SELECT ` + settlementColumns + ` FROM settlement_instructions
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("find all settlements: %w", err)
	}
	return r.collectInstructions(rows)
}

func (r *SettlementRepo) collectInstructions(rows pgx.Rows) ([]*domain.BankSettlementInstruction, error) {
	defer rows.Close()

	var instructions []*domain.BankSettlementInstruction
	for rows.Next() {
		instr, err := scanInstructionRow(rows)
		if err != nil {
			return nil, err
		}
		instructions = append(instructions, instr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate settlement rows: %w", err)
	}
	return instructions, nil
}

func (r *SettlementRepo) scanInstruction(row pgx.Row) (*domain.BankSettlementInstruction, error) {
	instr, err := scanInstructionRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return instr, nil
}

// scanInstructionRow rebuilds the aggregate from a row, reconstructing the
// Amount and Currency value objects through their factories.
func scanInstructionRow(row pgx.Row) (*domain.BankSettlementInstruction, error) {
	var (
		instr       domain.BankSettlementInstruction
		amount      decimal.Decimal
		currency    string
		status      string
		executedAt  *time.Time
		executedBy  *string
		bankTxnRef  *string
		failureText *string
	)

	err := row.Scan(
		&instr.ID, &instr.DaesReferenceID, &instr.BankCode, &amount, &currency,
		&instr.BeneficiaryName, &instr.BeneficiaryIBAN, &instr.SwiftCode,
		&instr.Reference, &instr.LedgerDebitID,
		&status, &instr.CreatedBy, &instr.CreatedAt, &instr.UpdatedAt, &instr.Version,
		&bankTxnRef, &failureText, &executedBy, &executedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, fmt.Errorf("scan settlement instruction: %w", err)
	}

	amt, err := domain.NewAmountFromString(amount.String())
	if err != nil {
		return nil, fmt.Errorf("stored amount invalid: %w", err)
	}
	cur, err := domain.NewCurrency(currency)
	if err != nil {
		return nil, fmt.Errorf("stored currency invalid: %w", err)
	}
	st, err := domain.ParseSettlementStatus(status)
	if err != nil {
		return nil, fmt.Errorf("stored status invalid: %w", err)
	}

	instr.Amount = amt
	instr.Currency = cur
	instr.Status = st
	instr.ExecutedAt = executedAt
	if executedBy != nil {
		instr.ExecutedBy = *executedBy
	}
	if bankTxnRef != nil {
		instr.BankTransactionRef = *bankTxnRef
	}
	if failureText != nil {
		instr.FailureReason = *failureText
	}
	return &instr, nil
}
