package services

import (
	"context"

	"agrihero-admin/internal/adapters/persistence/models"
	"agrihero-admin/internal/adapters/persistence/repositories"
)

// AuditService serves the append-only audit trail. Writes happen inside the
// owning services' transactions; this only reads.
type AuditService struct {
	store repositories.Storage
}

// NewAuditService creates a new audit service
func NewAuditService(store repositories.Storage) *AuditService {
	return &AuditService{store: store}
}

// ListAuditLogs lists audit entries matching the filter
func (s *AuditService) ListAuditLogs(ctx context.Context, filter repositories.AuditLogFilter) ([]*models.AuditLog, error) {
	return s.store.ListAuditLogs(ctx, filter)
}
