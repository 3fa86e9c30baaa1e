package services

import (
	"context"
	"time"

	"agrihero-admin/internal/adapters/persistence/models"
	"agrihero-admin/internal/adapters/persistence/repositories"
	"agrihero-admin/internal/core/domain"
)

// ComplianceService handles compliance report business logic
type ComplianceService struct {
	store repositories.Storage
}

// NewComplianceService creates a new compliance service
func NewComplianceService(store repositories.Storage) *ComplianceService {
	return &ComplianceService{store: store}
}

// GetReport gets a compliance report by ID
func (s *ComplianceService) GetReport(ctx context.Context, id uint) (*models.ComplianceReport, error) {
	return s.store.GetComplianceReport(ctx, id)
}

// ListReports lists compliance reports matching the filter
func (s *ComplianceService) ListReports(ctx context.Context, filter repositories.ComplianceReportFilter) ([]*models.ComplianceReport, error) {
	return s.store.ListComplianceReports(ctx, filter)
}

// GenerateReport refreshes a report's lastGenerated timestamp and records the
// audit entry atomically. Report content itself is produced out of band;
// generation here only restamps the report.
func (s *ComplianceService) GenerateReport(ctx context.Context, adminID, id uint) (*models.ComplianceReport, error) {
	report, err := s.store.GetComplianceReport(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var updated *models.ComplianceReport
	err = s.store.Transaction(ctx, func(tx repositories.Storage) error {
		var txErr error
		updated, txErr = tx.UpdateComplianceReport(ctx, id, &repositories.ComplianceReportPatch{
			LastGenerated: &now,
		})
		if txErr != nil {
			return txErr
		}
		return tx.CreateAuditLog(ctx, &models.AuditLog{
			AdminID: &adminID,
			Action:  domain.ActionReportGeneration,
			Metadata: models.JSONMap{
				"reportId":   id,
				"reportType": report.Type,
			},
		})
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
