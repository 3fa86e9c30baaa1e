package services

import (
	"context"
	"errors"
	"testing"

	"agrihero-admin/internal/adapters/persistence/memory"
	"agrihero-admin/internal/adapters/persistence/models"
	"agrihero-admin/internal/config"
	"agrihero-admin/internal/pkg/password"
)

func testAuthConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-access-secret"
	cfg.JWT.RefreshSecret = "test-refresh-secret"
	cfg.JWT.AccessTokenMins = 15
	cfg.JWT.RefreshTokenDays = 7
	return cfg
}

func seedAdmin(t *testing.T, store *memory.Storage, username, plain, status string) *models.User {
	t.Helper()
	hashed, err := password.Hash(plain)
	if err != nil {
		t.Fatalf("password.Hash: %v", err)
	}
	user := &models.User{
		Username: username,
		Password: hashed,
		Email:    username + "@agrihero6.com",
		FullName: "Test " + username,
		Role:     "super_admin",
		Region:   "global",
		Status:   status,
	}
	if err := store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	return user
}

func TestLogin(t *testing.T) {
	store := memory.New()
	svc := NewAuthService(store, testAuthConfig())
	ctx := context.Background()

	admin := seedAdmin(t, store, "superadmin", "correct-horse", "active")
	before := admin.LastActive

	resp, err := svc.Login(ctx, &LoginInput{Username: "superadmin", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Error("expected both tokens issued")
	}
	if resp.User.Username != "superadmin" {
		t.Errorf("user = %q", resp.User.Username)
	}

	claims, err := svc.ValidateAccessToken(resp.AccessToken)
	if err != nil {
		t.Fatalf("ValidateAccessToken: %v", err)
	}
	if claims.UserID != admin.ID || claims.Role != "super_admin" {
		t.Errorf("claims = %+v", claims)
	}

	// Login stamps lastActive
	refreshed, _ := store.GetUser(ctx, admin.ID)
	if !refreshed.LastActive.After(before) {
		t.Errorf("LastActive %v not after %v", refreshed.LastActive, before)
	}
}

func TestLoginFailures(t *testing.T) {
	store := memory.New()
	svc := NewAuthService(store, testAuthConfig())
	ctx := context.Background()

	seedAdmin(t, store, "superadmin", "correct-horse", "active")
	seedAdmin(t, store, "banned", "correct-horse", "suspended")

	tests := []struct {
		name    string
		input   LoginInput
		wantErr error
	}{
		{"unknown username", LoginInput{Username: "ghost", Password: "correct-horse"}, ErrInvalidCredentials},
		{"wrong password", LoginInput{Username: "superadmin", Password: "wrong"}, ErrInvalidCredentials},
		{"suspended account", LoginInput{Username: "banned", Password: "correct-horse"}, ErrUserSuspended},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Login(ctx, &tt.input); !errors.Is(err, tt.wantErr) {
				t.Errorf("Login = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRefreshTokenRotation(t *testing.T) {
	store := memory.New()
	svc := NewAuthService(store, testAuthConfig())
	ctx := context.Background()

	seedAdmin(t, store, "superadmin", "correct-horse", "active")

	login, err := svc.Login(ctx, &LoginInput{Username: "superadmin", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	rotated, err := svc.RefreshToken(ctx, login.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshToken: %v", err)
	}
	if rotated.RefreshToken == login.RefreshToken {
		t.Error("refresh token not rotated")
	}

	// The consumed token is revoked and cannot be replayed
	if _, err := svc.RefreshToken(ctx, login.RefreshToken); !errors.Is(err, ErrTokenRevoked) {
		t.Errorf("replay = %v, want ErrTokenRevoked", err)
	}

	// The replacement still works
	if _, err := svc.RefreshToken(ctx, rotated.RefreshToken); err != nil {
		t.Errorf("rotated token refused: %v", err)
	}
}

func TestRefreshTokenInvalid(t *testing.T) {
	svc := NewAuthService(memory.New(), testAuthConfig())

	if _, err := svc.RefreshToken(context.Background(), "not-a-jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	store := memory.New()
	svc := NewAuthService(store, testAuthConfig())
	ctx := context.Background()

	seedAdmin(t, store, "superadmin", "correct-horse", "active")

	login, err := svc.Login(ctx, &LoginInput{Username: "superadmin", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := svc.Logout(ctx, login.RefreshToken); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, err := svc.RefreshToken(ctx, login.RefreshToken); !errors.Is(err, ErrTokenRevoked) {
		t.Errorf("refresh after logout = %v, want ErrTokenRevoked", err)
	}
}

func TestLogoutAllRevokesEverySession(t *testing.T) {
	store := memory.New()
	svc := NewAuthService(store, testAuthConfig())
	ctx := context.Background()

	admin := seedAdmin(t, store, "superadmin", "correct-horse", "active")

	first, _ := svc.Login(ctx, &LoginInput{Username: "superadmin", Password: "correct-horse"})
	second, _ := svc.Login(ctx, &LoginInput{Username: "superadmin", Password: "correct-horse"})

	if err := svc.LogoutAll(ctx, admin.ID); err != nil {
		t.Fatalf("LogoutAll: %v", err)
	}
	for _, token := range []string{first.RefreshToken, second.RefreshToken} {
		if _, err := svc.RefreshToken(ctx, token); !errors.Is(err, ErrTokenRevoked) {
			t.Errorf("refresh after LogoutAll = %v, want ErrTokenRevoked", err)
		}
	}
}
