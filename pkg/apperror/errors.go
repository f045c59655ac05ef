package apperror

import (
	"fmt"
	"net/http"
	"strings"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Settlement Validation (SET 001-004) ----

func ErrInvalidAmount(reason string) *AppError {
	return New("SET_001", fmt.Sprintf("Invalid amount: %s", reason), http.StatusBadRequest)
}

func ErrUnsupportedCurrency(given string, supported []string) *AppError {
	return New("SET_002",
		fmt.Sprintf("Unsupported currency %q, supported: %s", given, strings.Join(supported, ", ")),
		http.StatusBadRequest)
}

func ErrInvalidIBAN(value string, reason string) *AppError {
	return New("SET_003", fmt.Sprintf("Invalid IBAN %q: %s", value, reason), http.StatusBadRequest)
}

func ErrInvalidStatus(given string) *AppError {
	return New("SET_004", fmt.Sprintf("Invalid settlement status %q", given), http.StatusBadRequest)
}

// ---- Settlement Lookup (SET 005-006) ----

func ErrSettlementNotFound(id string) *AppError {
	return New("SET_005", fmt.Sprintf("Settlement instruction %s not found", id), http.StatusNotFound)
}

func ErrBankConfigNotFound(bankCode string) *AppError {
	return New("SET_006", fmt.Sprintf("Bank configuration %q not found", bankCode), http.StatusNotFound)
}

// ---- Settlement Conflicts (SET 007-012) ----

func ErrBankInactive(bankCode string) *AppError {
	return New("SET_007", fmt.Sprintf("Bank %q is not active", bankCode), http.StatusUnprocessableEntity)
}

// ErrBankUnsupportedCurrency is the bank-scoped currency check, distinct from the
// SET_002 enumeration check: the currency itself is valid but the destination bank
// has no IBAN configured for it.
func ErrBankUnsupportedCurrency(currency string, supported []string) *AppError {
	return New("SET_008",
		fmt.Sprintf("Bank does not support currency %s, supported: %s", currency, strings.Join(supported, ", ")),
		http.StatusConflict)
}

func ErrInvalidStatusTransition(from, to string) *AppError {
	return New("SET_009", fmt.Sprintf("Cannot transition settlement from %s to %s", from, to), http.StatusConflict)
}

func ErrInstructionFinal(status string) *AppError {
	return New("SET_010", fmt.Sprintf("Settlement is %s and cannot be changed", status), http.StatusConflict)
}

func ErrConcurrentUpdate(id string) *AppError {
	return New("SET_011", fmt.Sprintf("Settlement %s was modified concurrently, retry", id), http.StatusConflict)
}

func ErrInvalidReportDate(given string) *AppError {
	return New("SET_012", fmt.Sprintf("Invalid report date %q, expected YYYY-MM-DD", given), http.StatusBadRequest)
}

// ---- Treasury Ledger (LED) ----

func ErrLedgerDebitFailed(reason string) *AppError {
	return New("LED_001", fmt.Sprintf("Treasury ledger debit failed: %s", reason), http.StatusBadGateway)
}

func ErrInsufficientFunds(currency string) *AppError {
	return New("LED_002", fmt.Sprintf("Insufficient treasury balance for %s", currency), http.StatusPaymentRequired)
}

// ---- Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrUsernameExists() *AppError {
	return New("AUTH_002", "Username already exists", http.StatusConflict)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrLockTimeout(err error) *AppError {
	return Wrap("SYS_002", "Lock acquisition timeout", http.StatusServiceUnavailable, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a SET_001-style validation error with a custom message.
func Validation(message string) *AppError {
	return New("SET_001", message, http.StatusBadRequest)
}
