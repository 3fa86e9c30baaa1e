package services

import (
	"context"
	"errors"
	"testing"

	"agrihero-admin/internal/adapters/persistence/memory"
	"agrihero-admin/internal/adapters/persistence/repositories"
	"agrihero-admin/internal/core/domain"
)

func TestCreateFeatureFlagDefaults(t *testing.T) {
	store := memory.New()
	svc := NewFeatureFlagService(store)
	ctx := context.Background()

	flag, err := svc.CreateFeatureFlag(ctx, 1, &CreateFeatureFlagInput{
		Name:        "Marketplace Enabled",
		Description: "Toggles the produce marketplace",
	})
	if err != nil {
		t.Fatalf("CreateFeatureFlag: %v", err)
	}
	if !flag.Enabled {
		t.Error("expected flag enabled by default")
	}
	if flag.Scope != domain.FlagScopeGlobal {
		t.Errorf("scope = %q, want global", flag.Scope)
	}
	if flag.UpdatedBy != 1 {
		t.Errorf("UpdatedBy = %d, want 1", flag.UpdatedBy)
	}
	if flag.LastUpdated.IsZero() {
		t.Error("expected LastUpdated stamped")
	}

	logs, _ := store.ListAuditLogs(ctx, repositories.AuditLogFilter{Action: domain.ActionFeatureFlagCreation})
	if len(logs) != 1 {
		t.Fatalf("%d audit entries, want 1", len(logs))
	}
	if logs[0].Metadata["flagName"] != "Marketplace Enabled" {
		t.Errorf("audit metadata = %v", logs[0].Metadata)
	}
}

func TestCreateFeatureFlagDuplicateName(t *testing.T) {
	svc := NewFeatureFlagService(memory.New())
	ctx := context.Background()

	if _, err := svc.CreateFeatureFlag(ctx, 1, &CreateFeatureFlagInput{Name: "IoT Device Sync"}); err != nil {
		t.Fatalf("CreateFeatureFlag: %v", err)
	}
	_, err := svc.CreateFeatureFlag(ctx, 1, &CreateFeatureFlagInput{Name: "IoT Device Sync"})
	if !errors.Is(err, ErrFlagNameTaken) {
		t.Errorf("err = %v, want ErrFlagNameTaken", err)
	}
}

func TestUpdateFeatureFlagAuditsToggle(t *testing.T) {
	store := memory.New()
	svc := NewFeatureFlagService(store)
	ctx := context.Background()

	flag, err := svc.CreateFeatureFlag(ctx, 1, &CreateFeatureFlagInput{Name: "Beta: Crop Prediction"})
	if err != nil {
		t.Fatalf("CreateFeatureFlag: %v", err)
	}

	enabled := false
	updated, err := svc.UpdateFeatureFlag(ctx, 9, flag.ID, &UpdateFeatureFlagInput{Enabled: &enabled})
	if err != nil {
		t.Fatalf("UpdateFeatureFlag: %v", err)
	}
	if updated.Enabled {
		t.Error("expected flag disabled")
	}
	if updated.UpdatedBy != 9 {
		t.Errorf("UpdatedBy = %d, want the acting admin 9", updated.UpdatedBy)
	}

	logs, _ := store.ListAuditLogs(ctx, repositories.AuditLogFilter{Action: domain.ActionFeatureFlagUpdate})
	if len(logs) != 1 {
		t.Fatalf("%d audit entries, want 1", len(logs))
	}
	meta := logs[0].Metadata
	if meta["oldEnabled"] != true || meta["newEnabled"] != false {
		t.Errorf("toggle metadata = %v", meta)
	}
	if meta["flagName"] != "Beta: Crop Prediction" {
		t.Errorf("flagName = %v", meta["flagName"])
	}
}

func TestUpdateFeatureFlagNotFound(t *testing.T) {
	svc := NewFeatureFlagService(memory.New())
	enabled := true
	_, err := svc.UpdateFeatureFlag(context.Background(), 1, 404, &UpdateFeatureFlagInput{Enabled: &enabled})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
