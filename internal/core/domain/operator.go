package domain

import (
	"time"

	"github.com/google/uuid"
)

// OperatorRole distinguishes who may create vs confirm instructions.
type OperatorRole string

const (
	OperatorRoleTreasury OperatorRole = "TREASURY"
	OperatorRoleBankOps  OperatorRole = "BANK_OPS"
	OperatorRoleAdmin    OperatorRole = "ADMIN"
)

// Operator is an internal ops user acting on settlement instructions. The
// operator id supplies the requested_by / executed_by identities on
// instructions and audit entries.
type Operator struct {
	ID           uuid.UUID    `json:"id"`
	Username     string       `json:"username"`
	PasswordHash string       `json:"-"` // argon2id encoded hash, never exposed
	Role         OperatorRole `json:"role"`
	CreatedAt    time.Time    `json:"created_at"`
}
