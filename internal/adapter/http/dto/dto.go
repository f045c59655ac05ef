package dto

// RegisterRequest is the request body for operator registration.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50,safe_id"`
	Password string `json:"password" binding:"required,min=8,max=128"`
	Role     string `json:"role" binding:"required,oneof=TREASURY BANK_OPS ADMIN"`
}

// LoginRequest is the request body for operator login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterResponse is the response body for successful registration.
type RegisterResponse struct {
	OperatorID string `json:"operator_id"`
	Username   string `json:"username"`
	Role       string `json:"role"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// CreateSettlementRequest is the request body for creating an instruction.
type CreateSettlementRequest struct {
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	Currency  string  `json:"currency" binding:"required,len=3"`
	Reference string  `json:"reference" binding:"max=255"`
	BankCode  string  `json:"bank_code" binding:"omitempty,max=20,safe_id"`
}

// ConfirmSettlementRequest is the request body for recording a wire outcome.
type ConfirmSettlementRequest struct {
	Status             string `json:"status" binding:"required,oneof=PENDING SENT COMPLETED FAILED"`
	BankTransactionRef string `json:"bank_transaction_ref" binding:"omitempty,max=100"`
	FailureReason      string `json:"failure_reason" binding:"omitempty,max=255"`
}

// DailyReportQuery binds the daily report query parameters.
type DailyReportQuery struct {
	Date   string `form:"date" binding:"required"`
	Format string `form:"format" binding:"omitempty,oneof=json csv"`
}
