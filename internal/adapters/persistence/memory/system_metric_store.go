package memory

import (
	"context"
	"time"

	"agrihero-admin/internal/adapters/persistence/models"
	"agrihero-admin/internal/adapters/persistence/repositories"
)

func cloneMetric(m *models.SystemMetric) *models.SystemMetric {
	c := *m
	return &c
}

// CreateSystemMetric records a metric snapshot, stamping Timestamp.
// Snapshot rows are write-once; there is no update operation.
func (s *Storage) CreateSystemMetric(ctx context.Context, metric *models.SystemMetric) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.metricCounter++
	metric.ID = s.metricCounter
	metric.Timestamp = time.Now()

	s.metrics[metric.ID] = cloneMetric(metric)
	s.metricIDs = append(s.metricIDs, metric.ID)
	return nil
}

// ListSystemMetrics lists metrics matching the filter, in insertion order
func (s *Storage) ListSystemMetrics(ctx context.Context, filter repositories.SystemMetricFilter) ([]*models.SystemMetric, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.SystemMetric, 0, len(s.metricIDs))
	for _, id := range s.metricIDs {
		m := s.metrics[id]
		if filter.Type != "" && m.Type != filter.Type {
			continue
		}
		result = append(result, cloneMetric(m))
	}
	return result, nil
}
