package handler

import (
	"daes-settlement-engine/internal/adapter/http/dto"
	"daes-settlement-engine/internal/adapter/http/middleware"
	"daes-settlement-engine/internal/core/ports"
	"daes-settlement-engine/pkg/apperror"
	"daes-settlement-engine/pkg/response"

	"github.com/gin-gonic/gin"
)

// SettlementHandler handles settlement instruction endpoints.
type SettlementHandler struct {
	settlementSvc ports.SettlementService
}

// NewSettlementHandler creates a new SettlementHandler.
func NewSettlementHandler(settlementSvc ports.SettlementService) *SettlementHandler {
	return &SettlementHandler{settlementSvc: settlementSvc}
}

// Create handles POST /api/v1/settlements.
func (h *SettlementHandler) Create(c *gin.Context) {
	var req dto.CreateSettlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.settlementSvc.CreateInstruction(c.Request.Context(), ports.CreateInstructionRequest{
		Amount:      req.Amount,
		Currency:    req.Currency,
		Reference:   req.Reference,
		BankCode:    req.BankCode,
		RequestedBy: middleware.Username(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// Confirm handles POST /api/v1/settlements/:id/confirm.
func (h *SettlementHandler) Confirm(c *gin.Context) {
	var req dto.ConfirmSettlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.settlementSvc.ConfirmInstruction(c.Request.Context(), ports.ConfirmInstructionRequest{
		SettlementID:       c.Param("id"),
		Status:             req.Status,
		BankTransactionRef: req.BankTransactionRef,
		FailureReason:      req.FailureReason,
		ExecutedBy:         middleware.Username(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}

// Get handles GET /api/v1/settlements/:id.
func (h *SettlementHandler) Get(c *gin.Context) {
	snapshot, err := h.settlementSvc.GetInstruction(c.Request.Context(), c.Param("id"), middleware.Username(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, snapshot)
}

// GetPaymentOrder handles GET /api/v1/settlements/:id/payment-order.
func (h *SettlementHandler) GetPaymentOrder(c *gin.Context) {
	order, err := h.settlementSvc.GetPaymentOrder(c.Request.Context(), c.Param("id"), middleware.Username(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, order)
}
