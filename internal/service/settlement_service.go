package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"daes-settlement-engine/internal/core/domain"
	"daes-settlement-engine/internal/core/ports"
	"daes-settlement-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	defaultConfirmLockTTL = 10 * time.Second

	eventInstructionCreated   = "settlement.created"
	eventInstructionConfirmed = "settlement.confirmed"
)

// SettlementServiceImpl implements ports.SettlementService.
type SettlementServiceImpl struct {
	settlementRepo ports.SettlementRepository
	bankRepo       ports.BankConfigRepository
	ledger         ports.LedgerService
	locker         ports.InstructionLocker
	auditSvc       ports.AuditService
	events         ports.EventPublisher
	defaultBank    string
	lockTTL        time.Duration
	log            zerolog.Logger
}

// NewSettlementService creates a new SettlementServiceImpl. A non-positive
// lockTTL falls back to the built-in default.
func NewSettlementService(
	settlementRepo ports.SettlementRepository,
	bankRepo ports.BankConfigRepository,
	ledger ports.LedgerService,
	locker ports.InstructionLocker,
	auditSvc ports.AuditService,
	events ports.EventPublisher,
	defaultBank string,
	lockTTL time.Duration,
	log zerolog.Logger,
) *SettlementServiceImpl {
	if lockTTL <= 0 {
		lockTTL = defaultConfirmLockTTL
	}
	return &SettlementServiceImpl{
		settlementRepo: settlementRepo,
		bankRepo:       bankRepo,
		ledger:         ledger,
		locker:         locker,
		auditSvc:       auditSvc,
		events:         events,
		defaultBank:    defaultBank,
		lockTTL:        lockTTL,
		log:            log,
	}
}

// CreateInstruction turns an internal treasury debit into a recorded,
// externally-executable bank wire. The ledger debit is the critical side
// effect: it runs before persistence, and on debit failure nothing is
// recorded. The ledger deduplicates by the DAES reference, so a retry after
// a crash between debit and persistence cannot double-debit.
func (s *SettlementServiceImpl) CreateInstruction(ctx context.Context, req ports.CreateInstructionRequest) (*ports.CreateInstructionResponse, error) {
	// Step 1: value-object validation, before any I/O.
	amount, err := domain.NewAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	currency, err := domain.NewCurrency(req.Currency)
	if err != nil {
		return nil, err
	}

	// Step 2: resolve the destination bank.
	bankCode := strings.ToUpper(strings.TrimSpace(req.BankCode))
	if bankCode == "" {
		bankCode = s.defaultBank
	}
	bank, err := s.bankRepo.FindByBankCode(ctx, bankCode)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find bank config: %w", err))
	}
	if bank == nil {
		return nil, apperror.ErrBankConfigNotFound(bankCode)
	}
	if !bank.IsActive() {
		return nil, apperror.ErrBankInactive(bankCode)
	}

	// Step 3: bank-scoped currency check, distinct from the enumeration check.
	if !bank.SupportsCurrency(currency) {
		return nil, apperror.ErrBankUnsupportedCurrency(currency.Code(), bank.SupportedCurrencies())
	}

	// Step 4: resolve and re-validate the destination IBAN.
	rawIBAN, _ := bank.IBANFor(currency)
	iban, err := domain.NewIBAN(rawIBAN)
	if err != nil {
		return nil, err
	}

	// Step 5: external correlation reference, generated before the debit so
	// the ledger can deduplicate on it.
	daesRef := domain.NewDaesReference(time.Now())

	// Step 6: debit the treasury account.
	debit, err := s.ledger.DebitTreasuryAccount(ctx, currency, amount, daesRef, req.RequestedBy)
	if err != nil {
		return nil, apperror.ErrLedgerDebitFailed(err.Error())
	}
	if !debit.Success {
		if debit.InsufficientFunds {
			return nil, apperror.ErrInsufficientFunds(currency.Code())
		}
		return nil, apperror.ErrLedgerDebitFailed(debit.FailureReason)
	}

	// Steps 7-8: construct in PENDING and persist.
	instruction := domain.NewBankSettlementInstruction(domain.NewInstructionParams{
		DaesReferenceID: daesRef,
		BankCode:        bank.BankCode,
		Amount:          amount,
		Currency:        currency,
		BeneficiaryName: bank.BeneficiaryName,
		BeneficiaryIBAN: iban,
		SwiftCode:       bank.SwiftCode,
		Reference:       req.Reference,
		LedgerDebitID:   debit.LedgerEntryID,
		CreatedBy:       req.RequestedBy,
	})
	if err := s.settlementRepo.Save(ctx, instruction); err != nil {
		// The treasury is already debited; the idempotent reference makes
		// this recoverable by retrying with the same DAES reference.
		s.log.Error().Err(err).
			Str("daes_reference", daesRef).
			Str("ledger_debit_id", debit.LedgerEntryID).
			Msg("instruction persisted after successful debit failed")
		return nil, apperror.InternalError(fmt.Errorf("save instruction: %w", err))
	}

	// Step 9: audit.
	s.auditSvc.Record(ctx, domain.NewAuditLog(instruction.ID.String(), domain.AuditActionCreateInstruction, req.RequestedBy).
		WithMetadata("daes_reference", daesRef).
		WithMetadata("amount", amount.StringFixed()).
		WithMetadata("currency", currency.Code()).
		WithMetadata("ledger_debit_id", debit.LedgerEntryID).
		WithMetadata("balance_after", debit.BalanceAfter.StringFixed(2)))

	s.publish(ctx, eventInstructionCreated, instruction.Snapshot())

	s.log.Info().
		Str("settlement_id", instruction.ID.String()).
		Str("daes_reference", daesRef).
		Str("amount", amount.StringFixed()).
		Str("currency", currency.Code()).
		Str("bank_code", bank.BankCode).
		Msg("settlement instruction created")

	return &ports.CreateInstructionResponse{
		ID:              instruction.ID.String(),
		DaesReferenceID: instruction.DaesReferenceID,
		Amount:          instruction.Amount.StringFixed(),
		Currency:        instruction.Currency.Code(),
		BankCode:        instruction.BankCode,
		BeneficiaryName: instruction.BeneficiaryName,
		BeneficiaryIBAN: instruction.BeneficiaryIBAN,
		SwiftCode:       instruction.SwiftCode,
		Status:          instruction.Status.String(),
		LedgerDebitID:   instruction.LedgerDebitID,
		CreatedBy:       instruction.CreatedBy,
		CreatedAt:       instruction.CreatedAt.Format(time.RFC3339),
	}, nil
}

// ConfirmInstruction transitions an instruction after the wire was executed
// (or rejected) externally. Confirmations for the same instruction are
// serialized by a per-id lock, and the repository update is a
// compare-and-swap, so racing confirms cannot silently overwrite each other.
func (s *SettlementServiceImpl) ConfirmInstruction(ctx context.Context, req ports.ConfirmInstructionRequest) (*ports.ConfirmInstructionResponse, error) {
	targetStatus, err := domain.ParseSettlementStatus(req.Status)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(req.SettlementID)
	if err != nil {
		return nil, apperror.ErrSettlementNotFound(req.SettlementID)
	}

	release, err := s.locker.Acquire(ctx, req.SettlementID, s.lockTTL)
	if err != nil {
		return nil, apperror.ErrLockTimeout(err)
	}
	defer release()

	instruction, err := s.settlementRepo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find settlement: %w", err))
	}
	if instruction == nil {
		return nil, apperror.ErrSettlementNotFound(req.SettlementID)
	}

	// Pre-check, redundant with the entity's own guard but with a use-case
	// level message distinguishing final from merely disallowed.
	previousStatus := instruction.Status
	if !previousStatus.CanTransitionTo(targetStatus) {
		if previousStatus.IsTerminal() {
			return nil, apperror.ErrInstructionFinal(previousStatus.String())
		}
		return nil, apperror.ErrInvalidStatusTransition(previousStatus.String(), targetStatus.String())
	}

	if err := instruction.Confirm(domain.ConfirmParams{
		Status:             targetStatus,
		BankTransactionRef: req.BankTransactionRef,
		FailureReason:      req.FailureReason,
		ExecutedBy:         req.ExecutedBy,
	}); err != nil {
		return nil, err
	}

	if err := s.settlementRepo.Update(ctx, instruction); err != nil {
		switch {
		case errors.Is(err, ports.ErrNotFound):
			return nil, apperror.ErrSettlementNotFound(req.SettlementID)
		case errors.Is(err, ports.ErrVersionConflict):
			return nil, apperror.ErrConcurrentUpdate(req.SettlementID)
		default:
			return nil, apperror.InternalError(fmt.Errorf("update settlement: %w", err))
		}
	}

	entry := domain.NewAuditLog(instruction.ID.String(), domain.AuditActionUpdateStatus, req.ExecutedBy).
		WithStatusChange(previousStatus, targetStatus)
	if req.BankTransactionRef != "" {
		entry.WithMetadata("bank_transaction_ref", req.BankTransactionRef)
	}
	if req.FailureReason != "" {
		entry.WithMetadata("failure_reason", req.FailureReason)
	}
	s.auditSvc.Record(ctx, entry)

	s.publish(ctx, eventInstructionConfirmed, instruction.Snapshot())

	s.log.Info().
		Str("settlement_id", instruction.ID.String()).
		Str("from_status", previousStatus.String()).
		Str("to_status", targetStatus.String()).
		Str("executed_by", req.ExecutedBy).
		Msg("settlement instruction confirmed")

	resp := &ports.ConfirmInstructionResponse{
		ID:                 instruction.ID.String(),
		Status:             instruction.Status.String(),
		BankTransactionRef: instruction.BankTransactionRef,
		FailureReason:      instruction.FailureReason,
		ExecutedBy:         instruction.ExecutedBy,
	}
	if instruction.ExecutedAt != nil {
		resp.ExecutedAt = instruction.ExecutedAt.Format(time.RFC3339)
	}
	return resp, nil
}

// GetInstruction fetches one instruction by internal id or DAES reference and
// records a view audit entry.
func (s *SettlementServiceImpl) GetInstruction(ctx context.Context, id string, viewedBy string) (*domain.InstructionSnapshot, error) {
	instruction, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, domain.NewAuditLog(instruction.ID.String(), domain.AuditActionViewInstruction, viewedBy))

	snapshot := instruction.Snapshot()
	return &snapshot, nil
}

// GetPaymentOrder builds the execution projection handed to bank operations.
func (s *SettlementServiceImpl) GetPaymentOrder(ctx context.Context, id string, viewedBy string) (*domain.PaymentOrder, error) {
	instruction, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, domain.NewAuditLog(instruction.ID.String(), domain.AuditActionViewInstruction, viewedBy).
		WithMetadata("projection", "payment_order"))

	order := instruction.PaymentOrder()
	if bank, err := s.bankRepo.FindByBankCode(ctx, instruction.BankCode); err == nil && bank != nil {
		order.BankName = bank.BankName
	}
	return &order, nil
}

func (s *SettlementServiceImpl) find(ctx context.Context, id string) (*domain.BankSettlementInstruction, error) {
	var (
		instruction *domain.BankSettlementInstruction
		err         error
	)
	if domain.DaesReferencePattern.MatchString(id) {
		instruction, err = s.settlementRepo.FindByDaesReferenceID(ctx, id)
	} else {
		parsed, parseErr := uuid.Parse(id)
		if parseErr != nil {
			return nil, apperror.ErrSettlementNotFound(id)
		}
		instruction, err = s.settlementRepo.FindByID(ctx, parsed)
	}
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find settlement: %w", err))
	}
	if instruction == nil {
		return nil, apperror.ErrSettlementNotFound(id)
	}
	return instruction, nil
}

// publish is best-effort: event delivery never fails a settlement operation.
func (s *SettlementServiceImpl) publish(ctx context.Context, routingKey string, body interface{}) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, routingKey, body); err != nil {
		s.log.Warn().Err(err).Str("routing_key", routingKey).Msg("failed to publish settlement event")
	}
}
