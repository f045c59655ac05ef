package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"daes-settlement-engine/internal/core/domain"
	"daes-settlement-engine/internal/core/ports"
	"daes-settlement-engine/internal/core/ports/mocks"
	"daes-settlement-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type settlementTestDeps struct {
	svc      *SettlementServiceImpl
	repo     *mocks.MockSettlementRepository
	bankRepo *mocks.MockBankConfigRepository
	ledger   *mocks.MockLedgerService
	locker   *mocks.MockInstructionLocker
	audit    *mocks.MockAuditService
	events   *mocks.MockEventPublisher
}

func setupSettlementService(t *testing.T) *settlementTestDeps {
	ctrl := gomock.NewController(t)
	d := &settlementTestDeps{
		repo:     mocks.NewMockSettlementRepository(ctrl),
		bankRepo: mocks.NewMockBankConfigRepository(ctrl),
		ledger:   mocks.NewMockLedgerService(ctrl),
		locker:   mocks.NewMockInstructionLocker(ctrl),
		audit:    mocks.NewMockAuditService(ctrl),
		events:   mocks.NewMockEventPublisher(ctrl),
	}
	d.svc = NewSettlementService(d.repo, d.bankRepo, d.ledger, d.locker, d.audit, d.events, "ENBD", 10*time.Second, zerolog.Nop())
	return d
}

func testBankConfig(t *testing.T) *domain.BankDestinationConfig {
	t.Helper()
	bank, err := domain.NewBankDestinationConfig(
		"ENBD", "Emirates NBD", "DAES Exchange LLC", "EBILAEAD",
		map[string]string{
			"AED": "AE070331234567890123456",
			"USD": "AE070339876543210987654",
		},
		true,
	)
	require.NoError(t, err)
	return bank
}

func requireAppCode(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
}

func successfulDebit() *ports.LedgerResult {
	return &ports.LedgerResult{
		Success:       true,
		LedgerEntryID: "led-0001",
		BalanceAfter:  decimal.NewFromInt(1_000_000),
	}
}

func TestCreateInstruction_Success(t *testing.T) {
	d := setupSettlementService(t)
	ctx := context.Background()

	d.bankRepo.EXPECT().FindByBankCode(ctx, "ENBD").Return(testBankConfig(t), nil)

	var debitRef string
	d.ledger.EXPECT().
		DebitTreasuryAccount(ctx, gomock.Any(), gomock.Any(), gomock.Any(), "treasury.ops").
		DoAndReturn(func(_ context.Context, currency domain.Currency, amount domain.Amount, reference, _ string) (*ports.LedgerResult, error) {
			assert.Equal(t, "AED", currency.Code())
			assert.Equal(t, "250000.00", amount.StringFixed())
			assert.Regexp(t, domain.DaesReferencePattern, reference)
			debitRef = reference
			return successfulDebit(), nil
		})

	var saved *domain.BankSettlementInstruction
	d.repo.EXPECT().Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, instr *domain.BankSettlementInstruction) error {
			saved = instr
			return nil
		})
	d.audit.EXPECT().Record(ctx, gomock.Any())
	d.events.EXPECT().Publish(ctx, "settlement.created", gomock.Any()).Return(nil)

	resp, err := d.svc.CreateInstruction(ctx, ports.CreateInstructionRequest{
		Amount:      250000,
		Currency:    "aed",
		Reference:   "Daily AED settlement",
		RequestedBy: "treasury.ops",
	})
	require.NoError(t, err)
	require.NotNil(t, saved)

	assert.Equal(t, domain.StatusPending, saved.Status)
	assert.Equal(t, int64(1), saved.Version)
	assert.Equal(t, debitRef, saved.DaesReferenceID)

	assert.Equal(t, saved.ID.String(), resp.ID)
	assert.Equal(t, "250000.00", resp.Amount)
	assert.Equal(t, "AED", resp.Currency)
	assert.Equal(t, "ENBD", resp.BankCode)
	assert.Equal(t, "DAES Exchange LLC", resp.BeneficiaryName)
	assert.Equal(t, "AE070331234567890123456", resp.BeneficiaryIBAN)
	assert.Equal(t, "PENDING", resp.Status)
	assert.Equal(t, "led-0001", resp.LedgerDebitID)
}

func TestCreateInstruction_ValidationFailsBeforeAnyCall(t *testing.T) {
	d := setupSettlementService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		req      ports.CreateInstructionRequest
		wantCode string
	}{
		{
			name:     "negative amount",
			req:      ports.CreateInstructionRequest{Amount: -5, Currency: "AED", RequestedBy: "ops"},
			wantCode: "SET_001",
		},
		{
			name:     "zero amount",
			req:      ports.CreateInstructionRequest{Amount: 0, Currency: "AED", RequestedBy: "ops"},
			wantCode: "SET_001",
		},
		{
			name:     "unsupported currency",
			req:      ports.CreateInstructionRequest{Amount: 100, Currency: "GBP", RequestedBy: "ops"},
			wantCode: "SET_002",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := d.svc.CreateInstruction(ctx, tt.req)
			assert.Nil(t, resp)
			requireAppCode(t, err, tt.wantCode)
		})
	}
}

func TestCreateInstruction_BankNotFound(t *testing.T) {
	d := setupSettlementService(t)
	ctx := context.Background()

	d.bankRepo.EXPECT().FindByBankCode(ctx, "MYSTERY").Return(nil, nil)

	resp, err := d.svc.CreateInstruction(ctx, ports.CreateInstructionRequest{
		Amount: 100, Currency: "AED", BankCode: "mystery", RequestedBy: "ops",
	})
	assert.Nil(t, resp)
	requireAppCode(t, err, "SET_006")
}

func TestCreateInstruction_BankInactive(t *testing.T) {
	d := setupSettlementService(t)
	ctx := context.Background()

	bank := testBankConfig(t)
	bank.Active = false
	d.bankRepo.EXPECT().FindByBankCode(ctx, "ENBD").Return(bank, nil)

	resp, err := d.svc.CreateInstruction(ctx, ports.CreateInstructionRequest{
		Amount: 100, Currency: "AED", RequestedBy: "ops",
	})
	assert.Nil(t, resp)
	requireAppCode(t, err, "SET_007")
}

func TestCreateInstruction_BankDoesNotCarryCurrency(t *testing.T) {
	d := setupSettlementService(t)
	ctx := context.Background()

	// EUR is a supported currency but this bank only has AED and USD accounts.
	d.bankRepo.EXPECT().FindByBankCode(ctx, "ENBD").Return(testBankConfig(t), nil)

	resp, err := d.svc.CreateInstruction(ctx, ports.CreateInstructionRequest{
		Amount: 100, Currency: "EUR", RequestedBy: "ops",
	})
	assert.Nil(t, resp)
	requireAppCode(t, err, "SET_008")
}

func TestCreateInstruction_InsufficientFunds(t *testing.T) {
	d := setupSettlementService(t)
	ctx := context.Background()

	d.bankRepo.EXPECT().FindByBankCode(ctx, "ENBD").Return(testBankConfig(t), nil)
	d.ledger.EXPECT().
		DebitTreasuryAccount(ctx, gomock.Any(), gomock.Any(), gomock.Any(), "ops").
		Return(&ports.LedgerResult{
			Success:           false,
			InsufficientFunds: true,
			FailureReason:     "insufficient AED balance: available 50.00, requested 100.00",
		}, nil)

	// Save, Record and Publish have no expectations: nothing may be persisted.
	resp, err := d.svc.CreateInstruction(ctx, ports.CreateInstructionRequest{
		Amount: 100, Currency: "AED", RequestedBy: "ops",
	})
	assert.Nil(t, resp)
	requireAppCode(t, err, "LED_002")
}

func TestCreateInstruction_DebitDeclined(t *testing.T) {
	d := setupSettlementService(t)
	ctx := context.Background()

	d.bankRepo.EXPECT().FindByBankCode(ctx, "ENBD").Return(testBankConfig(t), nil)
	d.ledger.EXPECT().
		DebitTreasuryAccount(ctx, gomock.Any(), gomock.Any(), gomock.Any(), "ops").
		Return(&ports.LedgerResult{Success: false, FailureReason: "account frozen"}, nil)

	resp, err := d.svc.CreateInstruction(ctx, ports.CreateInstructionRequest{
		Amount: 100, Currency: "AED", RequestedBy: "ops",
	})
	assert.Nil(t, resp)
	requireAppCode(t, err, "LED_001")
	assert.Contains(t, err.Error(), "account frozen")
}

func TestCreateInstruction_DebitTransportError(t *testing.T) {
	d := setupSettlementService(t)
	ctx := context.Background()

	d.bankRepo.EXPECT().FindByBankCode(ctx, "ENBD").Return(testBankConfig(t), nil)
	d.ledger.EXPECT().
		DebitTreasuryAccount(ctx, gomock.Any(), gomock.Any(), gomock.Any(), "ops").
		Return(nil, errors.New("ledger unreachable"))

	resp, err := d.svc.CreateInstruction(ctx, ports.CreateInstructionRequest{
		Amount: 100, Currency: "AED", RequestedBy: "ops",
	})
	assert.Nil(t, resp)
	requireAppCode(t, err, "LED_001")
}

func TestCreateInstruction_SaveFailureAfterDebit(t *testing.T) {
	d := setupSettlementService(t)
	ctx := context.Background()

	d.bankRepo.EXPECT().FindByBankCode(ctx, "ENBD").Return(testBankConfig(t), nil)
	d.ledger.EXPECT().
		DebitTreasuryAccount(ctx, gomock.Any(), gomock.Any(), gomock.Any(), "ops").
		Return(successfulDebit(), nil)
	d.repo.EXPECT().Save(ctx, gomock.Any()).Return(errors.New("connection reset"))

	resp, err := d.svc.CreateInstruction(ctx, ports.CreateInstructionRequest{
		Amount: 100, Currency: "AED", RequestedBy: "ops",
	})
	assert.Nil(t, resp)
	requireAppCode(t, err, "SYS_001")
}

func pendingInstruction(t *testing.T) *domain.BankSettlementInstruction {
	t.Helper()
	amount, err := domain.NewAmount(250000)
	require.NoError(t, err)
	currency, err := domain.NewCurrency("AED")
	require.NoError(t, err)
	iban, err := domain.NewIBAN("AE070331234567890123456")
	require.NoError(t, err)
	return domain.NewBankSettlementInstruction(domain.NewInstructionParams{
		DaesReferenceID: "DAES-SET-20260315-A1B2C3",
		BankCode:        "ENBD",
		Amount:          amount,
		Currency:        currency,
		BeneficiaryName: "DAES Exchange LLC",
		BeneficiaryIBAN: iban,
		SwiftCode:       "EBILAEAD",
		Reference:       "Daily AED settlement",
		LedgerDebitID:   "led-0001",
		CreatedBy:       "treasury.ops",
	})
}

func TestConfirmInstruction_Completed(t *testing.T) {
	d := setupSettlementService(t)
	ctx := context.Background()

	instr := pendingInstruction(t)
	released := false

	d.locker.EXPECT().Acquire(ctx, instr.ID.String(), gomock.Any()).
		Return(func() { released = true }, nil)
	d.repo.EXPECT().FindByID(ctx, instr.ID).Return(instr, nil)
	d.repo.EXPECT().Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, updated *domain.BankSettlementInstruction) error {
			assert.Equal(t, domain.StatusCompleted, updated.Status)
			assert.Equal(t, "ENBD-TXN-998877", updated.BankTransactionRef)
			return nil
		})
	d.audit.EXPECT().Record(ctx, gomock.Any()).
		Do(func(_ context.Context, entry *domain.AuditLog) {
			assert.Equal(t, domain.AuditActionUpdateStatus, entry.Action)
			require.NotNil(t, entry.PreviousStatus)
			require.NotNil(t, entry.NewStatus)
			assert.Equal(t, domain.StatusPending, *entry.PreviousStatus)
			assert.Equal(t, domain.StatusCompleted, *entry.NewStatus)
		})
	d.events.EXPECT().Publish(ctx, "settlement.confirmed", gomock.Any()).Return(nil)

	resp, err := d.svc.ConfirmInstruction(ctx, ports.ConfirmInstructionRequest{
		SettlementID:       instr.ID.String(),
		Status:             "COMPLETED",
		BankTransactionRef: "ENBD-TXN-998877",
		ExecutedBy:         "bank.ops",
	})
	require.NoError(t, err)

	assert.Equal(t, "COMPLETED", resp.Status)
	assert.Equal(t, "ENBD-TXN-998877", resp.BankTransactionRef)
	assert.Equal(t, "bank.ops", resp.ExecutedBy)
	assert.NotEmpty(t, resp.ExecutedAt)
	assert.True(t, released, "lock must be released")
}

func TestConfirmInstruction_FailedKeepsReason(t *testing.T) {
	d := setupSettlementService(t)
	ctx := context.Background()

	instr := pendingInstruction(t)
	require.NoError(t, instr.MarkAsSent("bank.ops"))

	d.locker.EXPECT().Acquire(ctx, instr.ID.String(), gomock.Any()).Return(func() {}, nil)
	d.repo.EXPECT().FindByID(ctx, instr.ID).Return(instr, nil)
	d.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)
	d.audit.EXPECT().Record(ctx, gomock.Any())
	d.events.EXPECT().Publish(ctx, "settlement.confirmed", gomock.Any()).Return(nil)

	resp, err := d.svc.ConfirmInstruction(ctx, ports.ConfirmInstructionRequest{
		SettlementID:  instr.ID.String(),
		Status:        "FAILED",
		FailureReason: "beneficiary account closed",
		ExecutedBy:    "bank.ops",
	})
	require.NoError(t, err)
	assert.Equal(t, "FAILED", resp.Status)
	assert.Equal(t, "beneficiary account closed", resp.FailureReason)
	assert.Empty(t, resp.BankTransactionRef)
}

func TestConfirmInstruction_UsesConfiguredLockTTL(t *testing.T) {
	d := setupSettlementService(t)
	ctx := context.Background()

	svc := NewSettlementService(d.repo, d.bankRepo, d.ledger, d.locker, d.audit, d.events, "ENBD", 3*time.Second, zerolog.Nop())

	instr := pendingInstruction(t)
	d.locker.EXPECT().Acquire(ctx, instr.ID.String(), 3*time.Second).Return(func() {}, nil)
	d.repo.EXPECT().FindByID(ctx, instr.ID).Return(instr, nil)
	d.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)
	d.audit.EXPECT().Record(ctx, gomock.Any())
	d.events.EXPECT().Publish(ctx, "settlement.confirmed", gomock.Any()).Return(nil)

	_, err := svc.ConfirmInstruction(ctx, ports.ConfirmInstructionRequest{
		SettlementID: instr.ID.String(),
		Status:       "SENT",
		ExecutedBy:   "bank.ops",
	})
	require.NoError(t, err)
}

func TestConfirmInstruction_ZeroLockTTLFallsBack(t *testing.T) {
	d := setupSettlementService(t)
	ctx := context.Background()

	svc := NewSettlementService(d.repo, d.bankRepo, d.ledger, d.locker, d.audit, d.events, "ENBD", 0, zerolog.Nop())

	instr := pendingInstruction(t)
	d.locker.EXPECT().Acquire(ctx, instr.ID.String(), defaultConfirmLockTTL).Return(func() {}, nil)
	d.repo.EXPECT().FindByID(ctx, instr.ID).Return(instr, nil)
	d.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)
	d.audit.EXPECT().Record(ctx, gomock.Any())
	d.events.EXPECT().Publish(ctx, "settlement.confirmed", gomock.Any()).Return(nil)

	_, err := svc.ConfirmInstruction(ctx, ports.ConfirmInstructionRequest{
		SettlementID: instr.ID.String(),
		Status:       "SENT",
		ExecutedBy:   "bank.ops",
	})
	require.NoError(t, err)
}

func TestConfirmInstruction_UnknownStatus(t *testing.T) {
	d := setupSettlementService(t)

	resp, err := d.svc.ConfirmInstruction(context.Background(), ports.ConfirmInstructionRequest{
		SettlementID: uuid.NewString(),
		Status:       "SHIPPED",
		ExecutedBy:   "bank.ops",
	})
	assert.Nil(t, resp)
	requireAppCode(t, err, "SET_004")
}

func TestConfirmInstruction_MalformedID(t *testing.T) {
	d := setupSettlementService(t)

	resp, err := d.svc.ConfirmInstruction(context.Background(), ports.ConfirmInstructionRequest{
		SettlementID: "not-a-uuid",
		Status:       "COMPLETED",
		ExecutedBy:   "bank.ops",
	})
	assert.Nil(t, resp)
	requireAppCode(t, err, "SET_005")
}

func TestConfirmInstruction_NotFound(t *testing.T) {
	d := setupSettlementService(t)
	ctx := context.Background()
	id := uuid.New()

	d.locker.EXPECT().Acquire(ctx, id.String(), gomock.Any()).Return(func() {}, nil)
	d.repo.EXPECT().FindByID(ctx, id).Return(nil, nil)

	resp, err := d.svc.ConfirmInstruction(ctx, ports.ConfirmInstructionRequest{
		SettlementID: id.String(),
		Status:       "COMPLETED",
		ExecutedBy:   "bank.ops",
	})
	assert.Nil(t, resp)
	requireAppCode(t, err, "SET_005")
}

func TestConfirmInstruction_TerminalInstruction(t *testing.T) {
	d := setupSettlementService(t)
	ctx := context.Background()

	instr := pendingInstruction(t)
	require.NoError(t, instr.MarkAsCompleted("bank.ops", "ENBD-TXN-1"))

	d.locker.EXPECT().Acquire(ctx, instr.ID.String(), gomock.Any()).Return(func() {}, nil)
	d.repo.EXPECT().FindByID(ctx, instr.ID).Return(instr, nil)

	resp, err := d.svc.ConfirmInstruction(ctx, ports.ConfirmInstructionRequest{
		SettlementID: instr.ID.String(),
		Status:       "FAILED",
		ExecutedBy:   "bank.ops",
	})
	assert.Nil(t, resp)
	requireAppCode(t, err, "SET_010")
}

func TestConfirmInstruction_IllegalTransition(t *testing.T) {
	d := setupSettlementService(t)
	ctx := context.Background()

	instr := pendingInstruction(t)
	require.NoError(t, instr.MarkAsSent("bank.ops"))

	d.locker.EXPECT().Acquire(ctx, instr.ID.String(), gomock.Any()).Return(func() {}, nil)
	d.repo.EXPECT().FindByID(ctx, instr.ID).Return(instr, nil)

	resp, err := d.svc.ConfirmInstruction(ctx, ports.ConfirmInstructionRequest{
		SettlementID: instr.ID.String(),
		Status:       "PENDING",
		ExecutedBy:   "bank.ops",
	})
	assert.Nil(t, resp)
	requireAppCode(t, err, "SET_009")
	assert.Equal(t, domain.StatusSent, instr.Status, "illegal confirm must not mutate")
}

func TestConfirmInstruction_VersionConflict(t *testing.T) {
	d := setupSettlementService(t)
	ctx := context.Background()

	instr := pendingInstruction(t)

	d.locker.EXPECT().Acquire(ctx, instr.ID.String(), gomock.Any()).Return(func() {}, nil)
	d.repo.EXPECT().FindByID(ctx, instr.ID).Return(instr, nil)
	d.repo.EXPECT().Update(ctx, gomock.Any()).Return(ports.ErrVersionConflict)

	resp, err := d.svc.ConfirmInstruction(ctx, ports.ConfirmInstructionRequest{
		SettlementID: instr.ID.String(),
		Status:       "SENT",
		ExecutedBy:   "bank.ops",
	})
	assert.Nil(t, resp)
	requireAppCode(t, err, "SET_011")
}

func TestConfirmInstruction_LockTimeout(t *testing.T) {
	d := setupSettlementService(t)
	ctx := context.Background()
	id := uuid.New()

	d.locker.EXPECT().Acquire(ctx, id.String(), gomock.Any()).
		Return(nil, errors.New("lock held"))

	resp, err := d.svc.ConfirmInstruction(ctx, ports.ConfirmInstructionRequest{
		SettlementID: id.String(),
		Status:       "COMPLETED",
		ExecutedBy:   "bank.ops",
	})
	assert.Nil(t, resp)
	requireAppCode(t, err, "SYS_002")
}

func TestGetInstruction_ByDaesReference(t *testing.T) {
	d := setupSettlementService(t)
	ctx := context.Background()

	instr := pendingInstruction(t)
	d.repo.EXPECT().FindByDaesReferenceID(ctx, instr.DaesReferenceID).Return(instr, nil)
	d.audit.EXPECT().Record(ctx, gomock.Any()).
		Do(func(_ context.Context, entry *domain.AuditLog) {
			assert.Equal(t, domain.AuditActionViewInstruction, entry.Action)
			assert.Equal(t, "auditor", entry.PerformedBy)
		})

	snapshot, err := d.svc.GetInstruction(ctx, instr.DaesReferenceID, "auditor")
	require.NoError(t, err)
	assert.Equal(t, instr.ID.String(), snapshot.ID)
	assert.Equal(t, "250000.00", snapshot.Amount)
	assert.Equal(t, "PENDING", snapshot.Status)
}

func TestGetInstruction_NotFound(t *testing.T) {
	d := setupSettlementService(t)
	ctx := context.Background()
	id := uuid.New()

	d.repo.EXPECT().FindByID(ctx, id).Return(nil, nil)

	snapshot, err := d.svc.GetInstruction(ctx, id.String(), "auditor")
	assert.Nil(t, snapshot)
	requireAppCode(t, err, "SET_005")
}

func TestGetPaymentOrder_ExcludesInternalFields(t *testing.T) {
	d := setupSettlementService(t)
	ctx := context.Background()

	instr := pendingInstruction(t)
	d.repo.EXPECT().FindByID(ctx, instr.ID).Return(instr, nil)
	d.bankRepo.EXPECT().FindByBankCode(ctx, "ENBD").Return(testBankConfig(t), nil)
	d.audit.EXPECT().Record(ctx, gomock.Any())

	order, err := d.svc.GetPaymentOrder(ctx, instr.ID.String(), "bank.ops")
	require.NoError(t, err)
	assert.Equal(t, instr.DaesReferenceID, order.DaesReferenceID)
	assert.Equal(t, "Emirates NBD", order.BankName)
	assert.Equal(t, "DAES Exchange LLC", order.BeneficiaryName)
	assert.Equal(t, "AE070331234567890123456", order.BeneficiaryIBAN)
	assert.Equal(t, "250000.00", order.Amount)
	assert.Equal(t, "AED", order.Currency)
}
