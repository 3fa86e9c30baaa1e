package repositories

import (
	"context"

	"agrihero-admin/internal/adapters/persistence/models"
)

// GetComplianceReport gets a compliance report by ID
func (s *storage) GetComplianceReport(ctx context.Context, id uint) (*models.ComplianceReport, error) {
	var report models.ComplianceReport
	if err := s.db.WithContext(ctx).First(&report, id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &report, nil
}

// CreateComplianceReport creates a new compliance report
func (s *storage) CreateComplianceReport(ctx context.Context, report *models.ComplianceReport) error {
	return translateErr(s.db.WithContext(ctx).Create(report).Error)
}

// UpdateComplianceReport applies a partial update. LastGenerated changes
// only when the patch carries it; the generate operation passes it
// explicitly rather than the store re-stamping on every update.
func (s *storage) UpdateComplianceReport(ctx context.Context, id uint, patch *ComplianceReportPatch) (*models.ComplianceReport, error) {
	report, err := s.GetComplianceReport(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Type != nil {
		updates["type"] = *patch.Type
	}
	if patch.Frequency != nil {
		updates["frequency"] = *patch.Frequency
	}
	if patch.Status != nil {
		updates["status"] = *patch.Status
	}
	if patch.PendingActions != nil {
		updates["pending_actions"] = *patch.PendingActions
	}
	if patch.Region != nil {
		updates["region"] = *patch.Region
	}
	if patch.LastGenerated != nil {
		updates["last_generated"] = *patch.LastGenerated
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(report).Updates(updates).Error; err != nil {
			return nil, translateErr(err)
		}
	}
	return report, nil
}

// ListComplianceReports lists reports matching the filter, in insertion order
func (s *storage) ListComplianceReports(ctx context.Context, filter ComplianceReportFilter) ([]*models.ComplianceReport, error) {
	q := s.db.WithContext(ctx).Model(&models.ComplianceReport{})
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Region != "" {
		q = q.Where("region = ?", filter.Region)
	}

	var reports []*models.ComplianceReport
	if err := q.Order("id ASC").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}
