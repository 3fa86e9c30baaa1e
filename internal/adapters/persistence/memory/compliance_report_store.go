package memory

import (
	"context"
	"time"

	"agrihero-admin/internal/adapters/persistence/models"
	"agrihero-admin/internal/adapters/persistence/repositories"
	"agrihero-admin/internal/core/domain"
)

func cloneReport(r *models.ComplianceReport) *models.ComplianceReport {
	c := *r
	return &c
}

// GetComplianceReport gets a compliance report by ID
func (s *Storage) GetComplianceReport(ctx context.Context, id uint) (*models.ComplianceReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	report, ok := s.reports[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneReport(report), nil
}

// CreateComplianceReport creates a new report, stamping LastGenerated
func (s *Storage) CreateComplianceReport(ctx context.Context, report *models.ComplianceReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reportCounter++
	report.ID = s.reportCounter
	report.LastGenerated = time.Now()

	s.reports[report.ID] = cloneReport(report)
	s.reportIDs = append(s.reportIDs, report.ID)
	return nil
}

// UpdateComplianceReport merges the patch onto the stored record.
// LastGenerated changes only when the patch carries it.
func (s *Storage) UpdateComplianceReport(ctx context.Context, id uint, patch *repositories.ComplianceReportPatch) (*models.ComplianceReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	report, ok := s.reports[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	if patch.Title != nil {
		report.Title = *patch.Title
	}
	if patch.Description != nil {
		report.Description = *patch.Description
	}
	if patch.Type != nil {
		report.Type = *patch.Type
	}
	if patch.Frequency != nil {
		report.Frequency = *patch.Frequency
	}
	if patch.Status != nil {
		report.Status = *patch.Status
	}
	if patch.PendingActions != nil {
		report.PendingActions = *patch.PendingActions
	}
	if patch.Region != nil {
		report.Region = *patch.Region
	}
	if patch.LastGenerated != nil {
		report.LastGenerated = *patch.LastGenerated
	}
	return cloneReport(report), nil
}

// ListComplianceReports lists reports matching the filter, in insertion order
func (s *Storage) ListComplianceReports(ctx context.Context, filter repositories.ComplianceReportFilter) ([]*models.ComplianceReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.ComplianceReport, 0, len(s.reportIDs))
	for _, id := range s.reportIDs {
		r := s.reports[id]
		if filter.Type != "" && r.Type != filter.Type {
			continue
		}
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		if filter.Region != "" && r.Region != filter.Region {
			continue
		}
		result = append(result, cloneReport(r))
	}
	return result, nil
}
