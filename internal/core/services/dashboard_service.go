package services

import (
	"context"

	"agrihero-admin/internal/adapters/persistence/models"
	"agrihero-admin/internal/adapters/persistence/repositories"
	"agrihero-admin/internal/core/domain"
)

// DashboardService aggregates live counts for the dashboard landing page
// and serves system metric snapshots.
type DashboardService struct {
	store repositories.Storage
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(store repositories.Storage) *DashboardService {
	return &DashboardService{store: store}
}

// DashboardStats represents the dashboard overview numbers
type DashboardStats struct {
	TotalUsers            int `json:"totalUsers"`
	ActiveUsers           int `json:"activeUsers"`
	PendingContent        int `json:"pendingContent"`
	ReportedContent       int `json:"reportedContent"`
	EnabledFlags          int `json:"enabledFlags"`
	OpenComplianceActions int `json:"openComplianceActions"`
}

// GetStats computes live dashboard counts from the store
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	users, err := s.store.ListUsers(ctx, repositories.UserFilter{})
	if err != nil {
		return nil, err
	}

	active := 0
	for _, u := range users {
		if u.Status == domain.UserStatusActive {
			active++
		}
	}

	pending, err := s.store.ListContents(ctx, repositories.ContentFilter{
		Status: domain.ContentStatusPending,
	})
	if err != nil {
		return nil, err
	}

	reported := true
	reportedContents, err := s.store.ListContents(ctx, repositories.ContentFilter{
		Reported: &reported,
	})
	if err != nil {
		return nil, err
	}

	enabled := true
	enabledFlags, err := s.store.ListFeatureFlags(ctx, repositories.FeatureFlagFilter{
		Enabled: &enabled,
	})
	if err != nil {
		return nil, err
	}

	openReports, err := s.store.ListComplianceReports(ctx, repositories.ComplianceReportFilter{
		Status: domain.ReportStatusPendingAction,
	})
	if err != nil {
		return nil, err
	}
	openActions := 0
	for _, r := range openReports {
		openActions += r.PendingActions
	}

	return &DashboardStats{
		TotalUsers:            len(users),
		ActiveUsers:           active,
		PendingContent:        len(pending),
		ReportedContent:       len(reportedContents),
		EnabledFlags:          len(enabledFlags),
		OpenComplianceActions: openActions,
	}, nil
}

// ListMetrics lists system metric snapshots matching the filter
func (s *DashboardService) ListMetrics(ctx context.Context, filter repositories.SystemMetricFilter) ([]*models.SystemMetric, error) {
	return s.store.ListSystemMetrics(ctx, filter)
}
