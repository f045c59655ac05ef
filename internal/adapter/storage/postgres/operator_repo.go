package postgres

import (
	"context"
	"errors"
	"fmt"

	"daes-settlement-engine/internal/core/domain"
	"daes-settlement-engine/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// OperatorRepo implements ports.OperatorRepository.
type OperatorRepo struct {
	pool Pool
}

// NewOperatorRepo creates a new OperatorRepo.
func NewOperatorRepo(pool Pool) *OperatorRepo {
	return &OperatorRepo{pool: pool}
}

// Create inserts a new operator account.
func (r *OperatorRepo) Create(ctx context.Context, operator *domain.Operator) error {
	query := `INSERT INTO operators (id, username, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, query,
		operator.ID, operator.Username, operator.PasswordHash, string(operator.Role), operator.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ports.ErrDuplicate
		}
		return fmt.Errorf("insert operator: %w", err)
	}
	return nil
}

// GetByID fetches an operator by UUID.
func (r *OperatorRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Operator, error) {
	query := `SELECT id, username, password_hash, role, created_at FROM operators WHERE id = $1`
	return r.scanOperator(r.pool.QueryRow(ctx, query, id))
}

// GetByUsername fetches an operator by username.
func (r *OperatorRepo) GetByUsername(ctx context.Context, username string) (*domain.Operator, error) {
	query := `SELECT id, username, password_hash, role, created_at FROM operators WHERE username = $1`
	return r.scanOperator(r.pool.QueryRow(ctx, query, username))
}

func (r *OperatorRepo) scanOperator(row pgx.Row) (*domain.Operator, error) {
	var (
		op   domain.Operator
		role string
	)
	err := row.Scan(&op.ID, &op.Username, &op.PasswordHash, &role, &op.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan operator: %w", err)
	}
	op.Role = domain.OperatorRole(role)
	return &op, nil
}
