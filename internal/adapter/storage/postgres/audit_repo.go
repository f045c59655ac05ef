package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"daes-settlement-engine/internal/core/domain"
)

// AuditLogRepo implements ports.AuditLogRepository over an append-only table.
type AuditLogRepo struct {
	pool Pool
}

// NewAuditLogRepo creates a new AuditLogRepo.
func NewAuditLogRepo(pool Pool) *AuditLogRepo {
	return &AuditLogRepo{pool: pool}
}

// Save appends an audit entry. Entries are never updated or deleted.
func (r *AuditLogRepo) Save(ctx context.Context, entry *domain.AuditLog) error {
	metadata, err := json.Marshal(entry.Metadata)
	if err != nil {
		return fmt.Errorf("marshal audit metadata: %w", err)
	}

	var prev, next *string
	if entry.PreviousStatus != nil {
		s := entry.PreviousStatus.String()
		prev = &s
	}
	if entry.NewStatus != nil {
		s := entry.NewStatus.String()
		next = &s
	}

	query := `INSERT INTO audit_logs (id, settlement_id, action, performed_by, previous_status, new_status, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err = r.pool.Exec(ctx, query,
		entry.ID, entry.SettlementID, string(entry.Action), entry.PerformedBy,
		prev, next, metadata, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

// FindBySettlementID returns the full trail for one instruction, oldest first.
func (r *AuditLogRepo) FindBySettlementID(ctx context.Context, settlementID string) ([]*domain.AuditLog, error) {
	query := `SELECT id, settlement_id, action, performed_by, previous_status, new_status, metadata, created_at
		FROM audit_logs WHERE settlement_id = $1 ORDER BY created_at`
	return r.query(ctx, query, settlementID)
}

// FindByDateRange returns all entries recorded inside [start, end].
func (r *AuditLogRepo) FindByDateRange(ctx context.Context, start, end time.Time) ([]*domain.AuditLog, error) {
	query := `SELECT id, settlement_id, action, performed_by, previous_status, new_status, metadata, created_at
		FROM audit_logs WHERE created_at >= $1 AND created_at <= $2 ORDER BY created_at`
	return r.query(ctx, query, start, end)
}

// FindByUser returns all entries recorded by one operator, oldest first.
func (r *AuditLogRepo) FindByUser(ctx context.Context, performedBy string) ([]*domain.AuditLog, error) {
	query := `SELECT id, settlement_id, action, performed_by, previous_status, new_status, metadata, created_at
		FROM audit_logs WHERE performed_by = $1 ORDER BY created_at`
	return r.query(ctx, query, performedBy)
}

func (r *AuditLogRepo) query(ctx context.Context, query string, args ...any) ([]*domain.AuditLog, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query audit logs: %w", err)
	}
	defer rows.Close()

	var entries []*domain.AuditLog
	for rows.Next() {
		var (
			entry    domain.AuditLog
			action   string
			prev     *string
			next     *string
			metadata []byte
		)
		if err := rows.Scan(&entry.ID, &entry.SettlementID, &action, &entry.PerformedBy,
			&prev, &next, &metadata, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit log: %w", err)
		}
		entry.Action = domain.AuditAction(action)
		if prev != nil {
			s := domain.SettlementStatus(*prev)
			entry.PreviousStatus = &s
		}
		if next != nil {
			s := domain.SettlementStatus(*next)
			entry.NewStatus = &s
		}
		if len(metadata) > 0 {
			if err := json.Unmarshal(metadata, &entry.Metadata); err != nil {
				return nil, fmt.Errorf("unmarshal audit metadata: %w", err)
			}
		}
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit rows: %w", err)
	}
	return entries, nil
}
