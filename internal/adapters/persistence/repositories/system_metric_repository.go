package repositories

import (
	"context"

	"agrihero-admin/internal/adapters/persistence/models"
)

// CreateSystemMetric records a metric snapshot. Snapshot rows are
// write-once; there is no update operation.
func (s *storage) CreateSystemMetric(ctx context.Context, metric *models.SystemMetric) error {
	return translateErr(s.db.WithContext(ctx).Create(metric).Error)
}

// ListSystemMetrics lists metrics matching the filter, in insertion order
func (s *storage) ListSystemMetrics(ctx context.Context, filter SystemMetricFilter) ([]*models.SystemMetric, error) {
	q := s.db.WithContext(ctx).Model(&models.SystemMetric{})
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}

	var metrics []*models.SystemMetric
	if err := q.Order("id ASC").Find(&metrics).Error; err != nil {
		return nil, err
	}
	return metrics, nil
}
