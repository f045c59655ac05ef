package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"daes-settlement-engine/internal/core/domain"
	"daes-settlement-engine/internal/core/ports"
	"daes-settlement-engine/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type reportTestDeps struct {
	svc   ports.ReportService
	repo  *mocks.MockSettlementRepository
	audit *mocks.MockAuditService
}

func setupReportService(t *testing.T) *reportTestDeps {
	ctrl := gomock.NewController(t)
	d := &reportTestDeps{
		repo:  mocks.NewMockSettlementRepository(ctrl),
		audit: mocks.NewMockAuditService(ctrl),
	}
	d.svc = NewReportService(d.repo, d.audit, zerolog.Nop())
	return d
}

func reportInstruction(t *testing.T, daesRef, currency string, amount float64) *domain.BankSettlementInstruction {
	t.Helper()
	amt, err := domain.NewAmount(amount)
	require.NoError(t, err)
	cur, err := domain.NewCurrency(currency)
	require.NoError(t, err)
	iban, err := domain.NewIBAN("AE070331234567890123456")
	require.NoError(t, err)
	return domain.NewBankSettlementInstruction(domain.NewInstructionParams{
		DaesReferenceID: daesRef,
		BankCode:        "ENBD",
		Amount:          amt,
		Currency:        cur,
		BeneficiaryName: "DAES Exchange LLC",
		BeneficiaryIBAN: iban,
		SwiftCode:       "EBILAEAD",
		Reference:       "March 15th settlement, morning batch",
		LedgerDebitID:   "led-0001",
		CreatedBy:       "treasury.ops",
	})
}

func TestGenerateDailyReport_AggregatesByStatusAndCurrency(t *testing.T) {
	d := setupReportService(t)
	ctx := context.Background()

	completed := reportInstruction(t, "DAES-SET-20260315-AAAAAA", "AED", 250000)
	require.NoError(t, completed.MarkAsCompleted("bank.ops", "ENBD-TXN-1"))

	completedUSD := reportInstruction(t, "DAES-SET-20260315-BBBBBB", "USD", 10000.50)
	require.NoError(t, completedUSD.MarkAsCompleted("bank.ops", "ENBD-TXN-2"))

	failed := reportInstruction(t, "DAES-SET-20260315-CCCCCC", "AED", 5000)
	require.NoError(t, failed.MarkAsFailed("bank.ops", "account closed"))

	sent := reportInstruction(t, "DAES-SET-20260315-DDDDDD", "AED", 750)
	require.NoError(t, sent.MarkAsSent("bank.ops"))

	d.repo.EXPECT().
		FindByExecutionDate(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, start, end time.Time) ([]*domain.BankSettlementInstruction, error) {
			assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), start)
			assert.Equal(t, time.UTC, end.Location())
			assert.True(t, end.Before(time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)))
			return []*domain.BankSettlementInstruction{completed, completedUSD, failed, sent}, nil
		})
	d.audit.EXPECT().Record(ctx, gomock.Any()).
		Do(func(_ context.Context, entry *domain.AuditLog) {
			assert.Equal(t, domain.AuditSettlementIDReport, entry.SettlementID)
			assert.Equal(t, domain.AuditActionGenerateReport, entry.Action)
			assert.Equal(t, "2026-03-15", entry.Metadata["report_date"])
		})

	report, err := d.svc.GenerateDailyReport(ctx, ports.DailyReportRequest{
		Date:        "2026-03-15",
		RequestedBy: "reporting.ops",
	})
	require.NoError(t, err)

	assert.Equal(t, 4, report.TotalCount)
	assert.Equal(t, 2, report.StatusCounts.Completed)
	assert.Equal(t, 1, report.StatusCounts.Failed)
	assert.Equal(t, 1, report.StatusCounts.Pending)

	// Completed amounts only: the failed AED 5000 and in-flight AED 750 are
	// excluded from the totals.
	assert.Equal(t, "250000.00", report.TotalsByCurrency["AED"])
	assert.Equal(t, "10000.50", report.TotalsByCurrency["USD"])
	assert.Len(t, report.Settlements, 4)
}

func TestGenerateDailyReport_EmptyDay(t *testing.T) {
	d := setupReportService(t)
	ctx := context.Background()

	d.repo.EXPECT().
		FindByExecutionDate(ctx, gomock.Any(), gomock.Any()).
		Return(nil, nil)
	d.audit.EXPECT().Record(ctx, gomock.Any())

	report, err := d.svc.GenerateDailyReport(ctx, ports.DailyReportRequest{
		Date:        "2026-03-16",
		RequestedBy: "reporting.ops",
	})
	require.NoError(t, err)

	assert.Equal(t, 0, report.TotalCount)
	assert.Empty(t, report.Settlements)
	assert.Empty(t, report.TotalsByCurrency)
	assert.Equal(t, ports.ReportStatusCounts{}, report.StatusCounts)
}

func TestGenerateDailyReport_RejectsBadInput(t *testing.T) {
	d := setupReportService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		req      ports.DailyReportRequest
		wantCode string
	}{
		{
			name:     "malformed date",
			req:      ports.DailyReportRequest{Date: "15/03/2026"},
			wantCode: "SET_012",
		},
		{
			name:     "nonexistent date",
			req:      ports.DailyReportRequest{Date: "2026-02-30"},
			wantCode: "SET_012",
		},
		{
			name:     "unknown format",
			req:      ports.DailyReportRequest{Date: "2026-03-15", Format: "xlsx"},
			wantCode: "SET_001",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := d.svc.GenerateDailyReport(ctx, tt.req)
			assert.Nil(t, report)
			requireAppCode(t, err, tt.wantCode)
		})
	}
}

func TestRenderCSV(t *testing.T) {
	d := setupReportService(t)

	report := &ports.DailyReport{
		Date: "2026-03-15",
		Settlements: []ports.ReportRow{
			{
				DaesReferenceID:    "DAES-SET-20260315-BBBBBB",
				Currency:           "USD",
				Amount:             "10000.50",
				BeneficiaryIBAN:    "AE070339876543210987654",
				BankTransactionRef: "ENBD-TXN-2",
				Status:             "COMPLETED",
				ExecutedBy:         "bank.ops",
				ExecutedAt:         "2026-03-15T14:30:00Z",
				CreatedAt:          "2026-03-15T09:00:00Z",
				Reference:          "morning batch, USD leg",
			},
			{
				DaesReferenceID:    "DAES-SET-20260315-AAAAAA",
				Currency:           "AED",
				Amount:             "250000.00",
				BeneficiaryIBAN:    "AE070331234567890123456",
				BankTransactionRef: "ENBD-TXN-1",
				Status:             "COMPLETED",
				ExecutedBy:         "bank.ops",
				ExecutedAt:         "2026-03-15T14:00:00Z",
				CreatedAt:          "2026-03-15T08:00:00Z",
			},
		},
	}

	out, err := d.svc.RenderCSV(report)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "DAES Reference,Currency,Amount,IBAN,ENBD Ref,Status,Executed By,Executed At,Created At,Reference Text", lines[0])

	// Rows come out sorted by DAES reference regardless of input order.
	assert.True(t, strings.HasPrefix(lines[1], "DAES-SET-20260315-AAAAAA,AED,250000.00,"))
	assert.Contains(t, lines[1], "ENBD-TXN-1")
	// The free-text reference contains a comma and must be quoted.
	assert.Contains(t, lines[2], `"morning batch, USD leg"`)
}

func TestRenderCSV_EmptyReport(t *testing.T) {
	d := setupReportService(t)

	out, err := d.svc.RenderCSV(&ports.DailyReport{Date: "2026-03-16"})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "DAES Reference")
}
