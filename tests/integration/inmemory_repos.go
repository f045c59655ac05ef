package integration

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"daes-settlement-engine/internal/core/domain"
	"daes-settlement-engine/internal/core/ports"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- In-Memory Settlement Repo ---

type inMemorySettlementRepo struct {
	mu           sync.RWMutex
	instructions map[uuid.UUID]*domain.BankSettlementInstruction
}

func newInMemorySettlementRepo() *inMemorySettlementRepo {
	return &inMemorySettlementRepo{instructions: make(map[uuid.UUID]*domain.BankSettlementInstruction)}
}

func (r *inMemorySettlementRepo) Save(ctx context.Context, instr *domain.BankSettlementInstruction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.instructions {
		if existing.DaesReferenceID == instr.DaesReferenceID {
			return ports.ErrDuplicate
		}
	}
	cp := *instr
	r.instructions[instr.ID] = &cp
	return nil
}

// Update mirrors the postgres repo's compare-and-swap: the stored version
// must match the version the caller read, and the stored version is bumped.
func (r *inMemorySettlementRepo) Update(ctx context.Context, instr *domain.BankSettlementInstruction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.instructions[instr.ID]
	if !ok {
		return ports.ErrNotFound
	}
	if stored.Version != instr.Version {
		return ports.ErrVersionConflict
	}
	cp := *instr
	cp.Version++
	r.instructions[instr.ID] = &cp
	instr.Version++
	return nil
}

func (r *inMemorySettlementRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.BankSettlementInstruction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	instr, ok := r.instructions[id]
	if !ok {
		return nil, nil
	}
	cp := *instr
	return &cp, nil
}

func (r *inMemorySettlementRepo) FindByDaesReferenceID(ctx context.Context, daesReferenceID string) (*domain.BankSettlementInstruction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, instr := range r.instructions {
		if instr.DaesReferenceID == daesReferenceID {
			cp := *instr
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemorySettlementRepo) FindByStatus(ctx context.Context, status domain.SettlementStatus) ([]*domain.BankSettlementInstruction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*domain.BankSettlementInstruction
	for _, instr := range r.instructions {
		if instr.Status == status {
			cp := *instr
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *inMemorySettlementRepo) FindByExecutionDate(ctx context.Context, start, end time.Time) ([]*domain.BankSettlementInstruction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*domain.BankSettlementInstruction
	for _, instr := range r.instructions {
		if instr.ExecutedAt == nil {
			continue
		}
		at := instr.ExecutedAt.UTC()
		if at.Before(start) || at.After(end) {
			continue
		}
		cp := *instr
		out = append(out, &cp)
	}
	return out, nil
}

func (r *inMemorySettlementRepo) FindAll(ctx context.Context, limit, offset int) ([]*domain.BankSettlementInstruction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*domain.BankSettlementInstruction
	for _, instr := range r.instructions {
		cp := *instr
		out = append(out, &cp)
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

// --- In-Memory Audit Log Repo ---

type inMemoryAuditRepo struct {
	mu      sync.RWMutex
	entries []*domain.AuditLog
}

func newInMemoryAuditRepo() *inMemoryAuditRepo {
	return &inMemoryAuditRepo{}
}

func (r *inMemoryAuditRepo) Save(ctx context.Context, entry *domain.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *entry
	r.entries = append(r.entries, &cp)
	return nil
}

func (r *inMemoryAuditRepo) FindBySettlementID(ctx context.Context, settlementID string) ([]*domain.AuditLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*domain.AuditLog
	for _, e := range r.entries {
		if e.SettlementID == settlementID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *inMemoryAuditRepo) FindByDateRange(ctx context.Context, start, end time.Time) ([]*domain.AuditLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*domain.AuditLog
	for _, e := range r.entries {
		if !e.CreatedAt.Before(start) && !e.CreatedAt.After(end) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *inMemoryAuditRepo) FindByUser(ctx context.Context, performedBy string) ([]*domain.AuditLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*domain.AuditLog
	for _, e := range r.entries {
		if e.PerformedBy == performedBy {
			out = append(out, e)
		}
	}
	return out, nil
}

// count returns how many entries carry the given action.
func (r *inMemoryAuditRepo) count(action domain.AuditAction) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, e := range r.entries {
		if e.Action == action {
			n++
		}
	}
	return n
}

// --- In-Memory Bank Config Repo ---

type inMemoryBankConfigRepo struct {
	mu    sync.RWMutex
	banks map[string]*domain.BankDestinationConfig
}

func newInMemoryBankConfigRepo() *inMemoryBankConfigRepo {
	return &inMemoryBankConfigRepo{banks: make(map[string]*domain.BankDestinationConfig)}
}

func (r *inMemoryBankConfigRepo) Save(ctx context.Context, cfg *domain.BankDestinationConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *cfg
	r.banks[strings.ToUpper(cfg.BankCode)] = &cp
	return nil
}

func (r *inMemoryBankConfigRepo) FindByBankCode(ctx context.Context, bankCode string) (*domain.BankDestinationConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cfg, ok := r.banks[strings.ToUpper(bankCode)]
	if !ok {
		return nil, nil
	}
	cp := *cfg
	return &cp, nil
}

func (r *inMemoryBankConfigRepo) FindAllActive(ctx context.Context) ([]*domain.BankDestinationConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*domain.BankDestinationConfig
	for _, cfg := range r.banks {
		if cfg.Active {
			cp := *cfg
			out = append(out, &cp)
		}
	}
	return out, nil
}

// --- In-Memory Operator Repo ---

type inMemoryOperatorRepo struct {
	mu        sync.RWMutex
	operators map[uuid.UUID]*domain.Operator
}

func newInMemoryOperatorRepo() *inMemoryOperatorRepo {
	return &inMemoryOperatorRepo{operators: make(map[uuid.UUID]*domain.Operator)}
}

func (r *inMemoryOperatorRepo) Create(ctx context.Context, op *domain.Operator) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.operators {
		if existing.Username == op.Username {
			return ports.ErrDuplicate
		}
	}
	cp := *op
	r.operators[op.ID] = &cp
	return nil
}

func (r *inMemoryOperatorRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Operator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	op, ok := r.operators[id]
	if !ok {
		return nil, nil
	}
	cp := *op
	return &cp, nil
}

func (r *inMemoryOperatorRepo) GetByUsername(ctx context.Context, username string) (*domain.Operator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, op := range r.operators {
		if op.Username == username {
			cp := *op
			return &cp, nil
		}
	}
	return nil, nil
}

// --- In-Memory Treasury Ledger ---

// inMemoryLedger mimics the treasury ledger adapter: per-currency balances,
// debit idempotency keyed on (reference, entry type), insufficient funds as
// an unsuccessful result rather than an error.
type inMemoryLedger struct {
	mu       sync.Mutex
	balances map[string]decimal.Decimal
	entries  map[string]ledgerEntry // "TYPE:reference" -> entry
}

type ledgerEntry struct {
	id           string
	balanceAfter decimal.Decimal
}

func newInMemoryLedger(balances map[string]string) *inMemoryLedger {
	l := &inMemoryLedger{
		balances: make(map[string]decimal.Decimal),
		entries:  make(map[string]ledgerEntry),
	}
	for currency, bal := range balances {
		l.balances[currency] = decimal.RequireFromString(bal)
	}
	return l
}

func (l *inMemoryLedger) DebitTreasuryAccount(ctx context.Context, currency domain.Currency, amount domain.Amount, reference, requestedBy string) (*ports.LedgerResult, error) {
	return l.apply(currency, amount.Decimal().Neg(), "DEBIT:"+reference)
}

func (l *inMemoryLedger) CreditTreasuryAccount(ctx context.Context, currency domain.Currency, amount domain.Amount, reference, requestedBy string) (*ports.LedgerResult, error) {
	return l.apply(currency, amount.Decimal(), "CREDIT:"+reference)
}

func (l *inMemoryLedger) apply(currency domain.Currency, delta decimal.Decimal, key string) (*ports.LedgerResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if entry, ok := l.entries[key]; ok {
		return &ports.LedgerResult{Success: true, LedgerEntryID: entry.id, BalanceAfter: entry.balanceAfter}, nil
	}

	balance, ok := l.balances[currency.Code()]
	if !ok {
		return nil, fmt.Errorf("no treasury account for %s", currency.Code())
	}
	after := balance.Add(delta)
	if after.IsNegative() {
		return &ports.LedgerResult{
			Success:           false,
			InsufficientFunds: true,
			BalanceAfter:      balance,
			FailureReason:     fmt.Sprintf("insufficient %s balance", currency.Code()),
		}, nil
	}

	entry := ledgerEntry{id: uuid.NewString(), balanceAfter: after}
	l.balances[currency.Code()] = after
	l.entries[key] = entry
	return &ports.LedgerResult{Success: true, LedgerEntryID: entry.id, BalanceAfter: after}, nil
}

func (l *inMemoryLedger) GetAvailableBalance(ctx context.Context, currency domain.Currency) (decimal.Decimal, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	balance, ok := l.balances[currency.Code()]
	if !ok {
		return decimal.Zero, fmt.Errorf("no treasury account for %s", currency.Code())
	}
	return balance, nil
}
