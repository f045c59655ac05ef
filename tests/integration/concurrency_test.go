package integration

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"daes-settlement-engine/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentConfirms fires racing confirmations at one PENDING
// instruction. The per-instruction redis lock plus the version CAS in the
// repository must let exactly one SENT transition through.
func TestConcurrentConfirms(t *testing.T) {
	app := newTestApp(t, map[string]string{"AED": "1000000"})
	treasuryToken := app.register(t, "treasury1", "TREASURY")
	bankOpsToken := app.register(t, "bankops1", "BANK_OPS")

	resp, body := app.do(t, http.MethodPost, "/api/v1/settlements", treasuryToken, map[string]interface{}{
		"amount":   250000,
		"currency": "AED",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := body["data"].(map[string]interface{})["id"].(string)

	concurrency := 20
	var successes, conflicts int64
	var wg sync.WaitGroup
	start := make(chan struct{})

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			resp, _ := app.do(t, http.MethodPost, "/api/v1/settlements/"+id+"/confirm", bankOpsToken, map[string]interface{}{
				"status": "SENT",
			})
			switch resp.StatusCode {
			case http.StatusOK:
				atomic.AddInt64(&successes, 1)
			case http.StatusConflict:
				atomic.AddInt64(&conflicts, 1)
			}
		}()
	}

	close(start)
	wg.Wait()

	assert.Equal(t, int64(1), successes, "exactly one confirmation may win")
	assert.Equal(t, int64(concurrency-1), conflicts)

	stored, err := app.settlementRepo.FindByDaesReferenceID(context.Background(),
		body["data"].(map[string]interface{})["daes_reference_id"].(string))
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, domain.StatusSent, stored.Status)
}

// TestConcurrentCreates_BalanceNeverOverdrawn runs racing creations against a
// treasury balance that only covers half of them. The ledger must never go
// negative and the number of persisted instructions must match the number of
// successful debits.
func TestConcurrentCreates_BalanceNeverOverdrawn(t *testing.T) {
	// 500,000 AED covers exactly 5 instructions of 100,000.
	app := newTestApp(t, map[string]string{"AED": "500000"})
	treasuryToken := app.register(t, "treasury1", "TREASURY")

	concurrency := 10
	var successes, rejections int64
	var wg sync.WaitGroup
	start := make(chan struct{})

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			resp, _ := app.do(t, http.MethodPost, "/api/v1/settlements", treasuryToken, map[string]interface{}{
				"amount":   100000,
				"currency": "AED",
			})
			switch resp.StatusCode {
			case http.StatusCreated:
				atomic.AddInt64(&successes, 1)
			case http.StatusPaymentRequired:
				atomic.AddInt64(&rejections, 1)
			}
		}()
	}

	close(start)
	wg.Wait()

	assert.Equal(t, int64(5), successes)
	assert.Equal(t, int64(5), rejections)

	balance, err := app.ledger.GetAvailableBalance(context.Background(), mustCurrency(t, "AED"))
	require.NoError(t, err)
	assert.Equal(t, "0", balance.String())

	all, err := app.settlementRepo.FindAll(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}
