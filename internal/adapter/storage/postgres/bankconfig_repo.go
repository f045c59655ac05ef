package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"daes-settlement-engine/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// BankConfigRepo implements ports.BankConfigRepository.
type BankConfigRepo struct {
	pool Pool
}

// NewBankConfigRepo creates a new BankConfigRepo.
func NewBankConfigRepo(pool Pool) *BankConfigRepo {
	return &BankConfigRepo{pool: pool}
}

// Save upserts a bank destination keyed by bank code.
func (r *BankConfigRepo) Save(ctx context.Context, cfg *domain.BankDestinationConfig) error {
	ibans, err := json.Marshal(cfg.IBANsByCurrency)
	if err != nil {
		return fmt.Errorf("marshal bank ibans: %w", err)
	}

	query := `INSERT INTO bank_configs (bank_code, bank_name, beneficiary_name, swift_code, ibans_by_currency, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (bank_code) DO UPDATE SET
			bank_name = EXCLUDED.bank_name,
			beneficiary_name = EXCLUDED.beneficiary_name,
			swift_code = EXCLUDED.swift_code,
			ibans_by_currency = EXCLUDED.ibans_by_currency,
			active = EXCLUDED.active,
			updated_at = EXCLUDED.updated_at`

	_, err = r.pool.Exec(ctx, query,
		cfg.BankCode, cfg.BankName, cfg.BeneficiaryName, cfg.SwiftCode,
		ibans, cfg.Active, cfg.CreatedAt, cfg.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert bank config: %w", err)
	}
	return nil
}

// FindByBankCode fetches one bank destination, or (nil, nil) when unknown.
func (r *BankConfigRepo) FindByBankCode(ctx context.Context, bankCode string) (*domain.BankDestinationConfig, error) {
	query := `SELECT bank_code, bank_name, beneficiary_name, swift_code, ibans_by_currency, active, created_at, updated_at
		FROM bank_configs WHERE bank_code = $1`

	cfg, err := scanBankConfig(r.pool.QueryRow(ctx, query, bankCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return cfg, nil
}

// FindAllActive fetches every destination currently accepting instructions.
func (r *BankConfigRepo) FindAllActive(ctx context.Context) ([]*domain.BankDestinationConfig, error) {
	query := `SELECT bank_code, bank_name, beneficiary_name, swift_code, ibans_by_currency, active, created_at, updated_at
		FROM bank_configs WHERE active ORDER BY bank_code`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("find active bank configs: %w", err)
	}
	defer rows.Close()

	var configs []*domain.BankDestinationConfig
	for rows.Next() {
		cfg, err := scanBankConfig(rows)
		if err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bank config rows: %w", err)
	}
	return configs, nil
}

func scanBankConfig(row pgx.Row) (*domain.BankDestinationConfig, error) {
	var (
		cfg   domain.BankDestinationConfig
		ibans []byte
	)
	err := row.Scan(&cfg.BankCode, &cfg.BankName, &cfg.BeneficiaryName, &cfg.SwiftCode,
		&ibans, &cfg.Active, &cfg.CreatedAt, &cfg.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, fmt.Errorf("scan bank config: %w", err)
	}
	if err := json.Unmarshal(ibans, &cfg.IBANsByCurrency); err != nil {
		return nil, fmt.Errorf("unmarshal bank ibans: %w", err)
	}
	return &cfg, nil
}
