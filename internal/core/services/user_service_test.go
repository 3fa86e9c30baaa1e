package services

import (
	"context"
	"errors"
	"testing"

	"agrihero-admin/internal/adapters/persistence/memory"
	"agrihero-admin/internal/adapters/persistence/repositories"
	"agrihero-admin/internal/core/domain"
	"agrihero-admin/internal/pkg/password"
)

func TestCreateUserHashesPasswordAndAudits(t *testing.T) {
	store := memory.New()
	svc := NewUserService(store)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, 1, &CreateUserInput{
		Username: "wanjiku",
		Password: "plaintext-secret",
		Email:    "wanjiku@agrihero6.com",
		FullName: "Wanjiku Kamau",
		Role:     "farmer",
		Region:   "Kenya",
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if user.Password == "plaintext-secret" {
		t.Error("password stored in plaintext")
	}
	if !password.Verify("plaintext-secret", user.Password) {
		t.Error("stored hash does not verify against original password")
	}
	if user.Status != domain.UserStatusActive {
		t.Errorf("default status = %q, want active", user.Status)
	}

	logs, err := store.ListAuditLogs(ctx, repositories.AuditLogFilter{Action: domain.ActionUserCreation})
	if err != nil {
		t.Fatalf("ListAuditLogs: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("%d audit entries, want 1", len(logs))
	}
	meta := logs[0].Metadata
	if meta["userId"] != user.ID || meta["userRole"] != "farmer" {
		t.Errorf("audit metadata = %v", meta)
	}
	if *logs[0].AdminID != 1 {
		t.Errorf("audit adminID = %d, want 1", *logs[0].AdminID)
	}
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	svc := NewUserService(memory.New())

	_, err := svc.CreateUser(context.Background(), 1, &CreateUserInput{
		Username: "bob",
		Password: "secret1",
		Email:    "bob@agrihero6.com",
		FullName: "Bob",
		Role:     "overlord",
	})
	if !errors.Is(err, ErrInvalidRole) {
		t.Errorf("err = %v, want ErrInvalidRole", err)
	}
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	svc := NewUserService(memory.New())
	ctx := context.Background()

	input := &CreateUserInput{
		Username: "bob",
		Password: "secret1",
		Email:    "bob@agrihero6.com",
		FullName: "Bob",
		Role:     "farmer",
	}
	if _, err := svc.CreateUser(ctx, 1, input); err != nil {
		t.Fatalf("first CreateUser: %v", err)
	}
	if _, err := svc.CreateUser(ctx, 1, input); !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("second CreateUser = %v, want ErrUsernameTaken", err)
	}
}

func TestUpdateUserAuditsChangedFields(t *testing.T) {
	store := memory.New()
	svc := NewUserService(store)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, 1, &CreateUserInput{
		Username: "bob",
		Password: "secret1",
		Email:    "bob@agrihero6.com",
		FullName: "Bob",
		Role:     "farmer",
		Region:   "Kenya",
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	status := "suspended"
	region := "India"
	updated, err := svc.UpdateUser(ctx, 2, user.ID, &UpdateUserInput{
		Status: &status,
		Region: &region,
	})
	if err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
	if updated.Status != "suspended" || updated.Region != "India" {
		t.Errorf("update not applied: %+v", updated)
	}

	logs, _ := store.ListAuditLogs(ctx, repositories.AuditLogFilter{Action: domain.ActionUserUpdate})
	if len(logs) != 1 {
		t.Fatalf("%d update audit entries, want 1", len(logs))
	}
	updates, ok := logs[0].Metadata["updates"].([]string)
	if !ok {
		t.Fatalf("updates metadata has type %T", logs[0].Metadata["updates"])
	}
	want := map[string]bool{"status": true, "region": true}
	if len(updates) != 2 || !want[updates[0]] || !want[updates[1]] {
		t.Errorf("updates = %v, want status and region", updates)
	}
}

func TestDeleteUserGuardsSelf(t *testing.T) {
	store := memory.New()
	svc := NewUserService(store)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, 1, &CreateUserInput{
		Username: "admin2",
		Password: "secret1",
		Email:    "admin2@agrihero6.com",
		FullName: "Second Admin",
		Role:     "super_admin",
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	if err := svc.DeleteUser(ctx, user.ID, user.ID); !errors.Is(err, ErrCannotDeleteSelf) {
		t.Errorf("self delete = %v, want ErrCannotDeleteSelf", err)
	}
	if _, err := svc.GetUser(ctx, user.ID); err != nil {
		t.Errorf("user removed by refused delete: %v", err)
	}

	if err := svc.DeleteUser(ctx, 999, user.ID); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}

	logs, _ := store.ListAuditLogs(ctx, repositories.AuditLogFilter{Action: domain.ActionUserDeletion})
	if len(logs) != 1 {
		t.Fatalf("%d deletion audit entries, want 1", len(logs))
	}
	meta := logs[0].Metadata
	if meta["userEmail"] != "admin2@agrihero6.com" || meta["userRole"] != "super_admin" {
		t.Errorf("deletion metadata = %v", meta)
	}
}

func TestDeleteUserNotFound(t *testing.T) {
	svc := NewUserService(memory.New())
	if err := svc.DeleteUser(context.Background(), 1, 42); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
