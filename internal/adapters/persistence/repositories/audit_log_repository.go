package repositories

import (
	"context"

	"agrihero-admin/internal/adapters/persistence/models"
)

// CreateAuditLog appends an audit entry. Entries are immutable once written;
// no update or delete operation exists for them.
func (s *storage) CreateAuditLog(ctx context.Context, log *models.AuditLog) error {
	return translateErr(s.db.WithContext(ctx).Create(log).Error)
}

// ListAuditLogs lists audit entries matching the filter, in insertion order
func (s *storage) ListAuditLogs(ctx context.Context, filter AuditLogFilter) ([]*models.AuditLog, error) {
	q := s.db.WithContext(ctx).Model(&models.AuditLog{})
	if filter.Action != "" {
		q = q.Where("action = ?", filter.Action)
	}
	if filter.AdminID != nil {
		q = q.Where("admin_id = ?", *filter.AdminID)
	}

	var logs []*models.AuditLog
	if err := q.Order("id ASC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
