package service

import (
	"context"

	"daes-settlement-engine/internal/core/domain"
	"daes-settlement-engine/internal/core/ports"

	"github.com/rs/zerolog"
)

type auditService struct {
	repo ports.AuditLogRepository
	log  zerolog.Logger
}

// NewAuditService creates a new audit service.
// If repo is nil, audit entries are only written to the logger.
func NewAuditService(repo ports.AuditLogRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Record persists an audit entry asynchronously (fire-and-forget).
func (s *auditService) Record(ctx context.Context, entry *domain.AuditLog) {
	go func() {
		evt := s.log.Info().
			Str("settlement_id", entry.SettlementID).
			Str("action", string(entry.Action)).
			Str("performed_by", entry.PerformedBy)
		if entry.PreviousStatus != nil && entry.NewStatus != nil {
			evt = evt.
				Str("previous_status", entry.PreviousStatus.String()).
				Str("new_status", entry.NewStatus.String())
		}
		evt.Msg("audit")

		if s.repo != nil {
			if err := s.repo.Save(context.Background(), entry); err != nil {
				s.log.Warn().Err(err).Str("action", string(entry.Action)).Msg("failed to persist audit entry")
			}
		}
	}()
}
