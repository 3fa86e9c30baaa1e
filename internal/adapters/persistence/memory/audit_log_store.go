package memory

import (
	"context"
	"time"

	"agrihero-admin/internal/adapters/persistence/models"
	"agrihero-admin/internal/adapters/persistence/repositories"
)

func cloneAuditLog(l *models.AuditLog) *models.AuditLog {
	c := *l
	if l.AdminID != nil {
		adminID := *l.AdminID
		c.AdminID = &adminID
	}
	meta := make(models.JSONMap, len(l.Metadata))
	for k, v := range l.Metadata {
		meta[k] = v
	}
	c.Metadata = meta
	return &c
}

// CreateAuditLog appends an audit entry, stamping Timestamp. Entries are
// immutable once written.
func (s *Storage) CreateAuditLog(ctx context.Context, log *models.AuditLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.auditCounter++
	log.ID = s.auditCounter
	log.Timestamp = time.Now()

	s.auditLogs[log.ID] = cloneAuditLog(log)
	s.auditLogIDs = append(s.auditLogIDs, log.ID)
	return nil
}

// ListAuditLogs lists audit entries matching the filter, in insertion order
func (s *Storage) ListAuditLogs(ctx context.Context, filter repositories.AuditLogFilter) ([]*models.AuditLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.AuditLog, 0, len(s.auditLogIDs))
	for _, id := range s.auditLogIDs {
		l := s.auditLogs[id]
		if filter.Action != "" && l.Action != filter.Action {
			continue
		}
		if filter.AdminID != nil {
			if l.AdminID == nil || *l.AdminID != *filter.AdminID {
				continue
			}
		}
		result = append(result, cloneAuditLog(l))
	}
	return result, nil
}
