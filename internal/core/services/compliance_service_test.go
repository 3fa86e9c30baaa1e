package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"agrihero-admin/internal/adapters/persistence/memory"
	"agrihero-admin/internal/adapters/persistence/models"
	"agrihero-admin/internal/adapters/persistence/repositories"
	"agrihero-admin/internal/core/domain"
)

func TestGenerateReportRestampsAndAudits(t *testing.T) {
	store := memory.New()
	svc := NewComplianceService(store)
	ctx := context.Background()

	report := &models.ComplianceReport{
		Title:     "Crop Yield Report",
		Type:      domain.ReportTypeCropYield,
		Frequency: "weekly",
		Status:    domain.ReportStatusGenerated,
	}
	if err := store.CreateComplianceReport(ctx, report); err != nil {
		t.Fatalf("CreateComplianceReport: %v", err)
	}
	before := report.LastGenerated

	time.Sleep(5 * time.Millisecond)
	generated, err := svc.GenerateReport(ctx, 1, report.ID)
	if err != nil {
		t.Fatalf("GenerateReport: %v", err)
	}
	if !generated.LastGenerated.After(before) {
		t.Errorf("LastGenerated %v not after %v", generated.LastGenerated, before)
	}

	logs, _ := store.ListAuditLogs(ctx, repositories.AuditLogFilter{Action: domain.ActionReportGeneration})
	if len(logs) != 1 {
		t.Fatalf("%d audit entries, want 1", len(logs))
	}
	meta := logs[0].Metadata
	if meta["reportId"] != report.ID || meta["reportType"] != domain.ReportTypeCropYield {
		t.Errorf("audit metadata = %v", meta)
	}
}

func TestGenerateReportNotFound(t *testing.T) {
	svc := NewComplianceService(memory.New())
	if _, err := svc.GenerateReport(context.Background(), 1, 55); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
