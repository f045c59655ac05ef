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
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	entryTypeDebit  = "DEBIT"
	entryTypeCredit = "CREDIT"
)

// TreasuryLedger implements ports.LedgerService on the treasury_accounts and
// ledger_entries tables. Each operation runs in its own transaction: the
// account row is locked FOR UPDATE, the balance mutated, and an immutable
// entry appended. A unique index on ledger_entries.reference makes debits
// idempotent per reference.
type TreasuryLedger struct {
	pool Pool
	log  zerolog.Logger
}

// NewTreasuryLedger creates a new TreasuryLedger.
func NewTreasuryLedger(pool Pool, log zerolog.Logger) *TreasuryLedger {
	return &TreasuryLedger{pool: pool, log: log}
}

// DebitTreasuryAccount removes funds from the treasury balance for the given
// currency. A repeated call with the same reference returns the original entry
// without debiting twice.
func (l *TreasuryLedger) DebitTreasuryAccount(ctx context.Context, currency domain.Currency, amount domain.Amount, reference, requestedBy string) (*ports.LedgerResult, error) {
	return l.apply(ctx, entryTypeDebit, currency, amount, reference, requestedBy)
}

// CreditTreasuryAccount returns funds to the treasury balance, used to reverse
// a debit whose instruction could not be recorded.
func (l *TreasuryLedger) CreditTreasuryAccount(ctx context.Context, currency domain.Currency, amount domain.Amount, reference, requestedBy string) (*ports.LedgerResult, error) {
	return l.apply(ctx, entryTypeCredit, currency, amount, reference, requestedBy)
}

// GetAvailableBalance reads the current balance without locking.
func (l *TreasuryLedger) GetAvailableBalance(ctx context.Context, currency domain.Currency) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := l.pool.QueryRow(ctx,
		`SELECT balance FROM treasury_accounts WHERE currency = $1`, currency.Code(),
	).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, fmt.Errorf("no treasury account for %s", currency.Code())
		}
		return decimal.Zero, fmt.Errorf("get treasury balance: %w", err)
	}
	return balance, nil
}

func (l *TreasuryLedger) apply(ctx context.Context, entryType string, currency domain.Currency, amount domain.Amount, reference, requestedBy string) (*ports.LedgerResult, error) {
	tx, err := l.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin ledger tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// Idempotency: a prior entry with this reference wins.
	var (
		existingID      uuid.UUID
		existingBalance decimal.Decimal
	)
	err = tx.QueryRow(ctx,
		`SELECT id, balance_after FROM ledger_entries WHERE reference = $1 AND entry_type = $2`,
		reference, entryType,
	).Scan(&existingID, &existingBalance)
	switch {
	case err == nil:
		l.log.Info().
			Str("reference", reference).
			Str("entry_type", entryType).
			Msg("ledger operation replayed, returning original entry")
		return &ports.LedgerResult{
			Success:       true,
			LedgerEntryID: existingID.String(),
			BalanceAfter:  existingBalance,
		}, nil
	case errors.Is(err, pgx.ErrNoRows):
		// First time through.
	default:
		return nil, fmt.Errorf("check ledger reference: %w", err)
	}

	var balance decimal.Decimal
	err = tx.QueryRow(ctx,
		`SELECT balance FROM treasury_accounts WHERE currency = $1 FOR UPDATE`, currency.Code(),
	).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("no treasury account for %s", currency.Code())
		}
		return nil, fmt.Errorf("lock treasury account: %w", err)
	}

	value := amount.Decimal()
	var balanceAfter decimal.Decimal
	if entryType == entryTypeDebit {
		balanceAfter = balance.Sub(value)
		if balanceAfter.IsNegative() {
			return &ports.LedgerResult{
				Success:           false,
				InsufficientFunds: true,
				FailureReason: fmt.Sprintf("insufficient %s balance: available %s, requested %s",
					currency.Code(), balance.StringFixed(2), value.StringFixed(2)),
			}, nil
		}
	} else {
		balanceAfter = balance.Add(value)
	}

	entryID := uuid.New()
	_, err = tx.Exec(ctx,
		`INSERT INTO ledger_entries (id, account_currency, entry_type, amount, balance_after, reference, requested_by, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		entryID, currency.Code(), entryType, value, balanceAfter, reference, requestedBy, time.Now().UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("insert ledger entry: %w", err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE treasury_accounts SET balance = $1, updated_at = NOW() WHERE currency = $2`,
		balanceAfter, currency.Code(),
	)
	if err != nil {
		return nil, fmt.Errorf("update treasury balance: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit ledger tx: %w", err)
	}

	l.log.Info().
		Str("entry_type", entryType).
		Str("currency", currency.Code()).
		Str("amount", value.StringFixed(2)).
		Str("balance_after", balanceAfter.StringFixed(2)).
		Str("reference", reference).
		Msg("treasury ledger entry recorded")

	return &ports.LedgerResult{
		Success:       true,
		LedgerEntryID: entryID.String(),
		BalanceAfter:  balanceAfter,
	}, nil
}
