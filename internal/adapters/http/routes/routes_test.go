package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"

	"agrihero-admin/internal/adapters/http/middleware"
	"agrihero-admin/internal/adapters/persistence/memory"
	"agrihero-admin/internal/adapters/persistence/models"
	"agrihero-admin/internal/adapters/persistence/repositories"
	"agrihero-admin/internal/config"
	"agrihero-admin/internal/core/domain"
	"agrihero-admin/internal/pkg/jwt"
	"agrihero-admin/internal/pkg/password"
)

func newTestApp(t *testing.T) (*fiber.App, *memory.Storage, *config.Config) {
	t.Helper()

	cfg := &config.Config{AppMode: "dev"}
	cfg.JWT.Secret = "test-access-secret"
	cfg.JWT.RefreshSecret = "test-refresh-secret"
	cfg.JWT.AccessTokenMins = 15
	cfg.JWT.RefreshTokenDays = 7
	cfg.Cookie.SameSite = "lax"
	config.AppConfig = cfg

	store := memory.New()
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.CustomErrorHandler,
	})
	Setup(app, store, cfg)
	return app, store, cfg
}

func seedUser(t *testing.T, store *memory.Storage, username, role string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Password: "not-a-real-hash",
		Email:    username + "@agrihero6.com",
		FullName: "Test " + username,
		Role:     role,
		Region:   "global",
		Status:   domain.UserStatusActive,
	}
	if err := store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("CreateUser(%s): %v", username, err)
	}
	return user
}

func bearerToken(t *testing.T, cfg *config.Config, user *models.User) string {
	t.Helper()
	token, err := jwt.GenerateAccessToken(user.ID, user.Username, user.Role, cfg.JWT.Secret, cfg.JWT.AccessTokenMins)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	return token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, 10000)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

func TestHealthEndpoints(t *testing.T) {
	app, _, _ := newTestApp(t)

	for _, path := range []string{"/", "/health"} {
		resp := doJSON(t, app, http.MethodGet, path, "", nil)
		if resp.StatusCode != http.StatusOK {
			t.Errorf("GET %s = %d, want 200", path, resp.StatusCode)
		}
		resp.Body.Close()
	}
}

func TestLoginFlow(t *testing.T) {
	app, store, _ := newTestApp(t)

	hashed, err := password.Hash("correct-horse")
	if err != nil {
		t.Fatalf("password.Hash: %v", err)
	}
	admin := seedUser(t, store, "superadmin", "super_admin")
	if _, err := store.UpdateUser(context.Background(), admin.ID, &repositories.UserPatch{Password: &hashed}); err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"username": "superadmin",
		"password": "correct-horse",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login = %d, want 200", resp.StatusCode)
	}

	var accessCookie, refreshCookie bool
	for _, c := range resp.Cookies() {
		switch c.Name {
		case "access_token":
			accessCookie = c.HttpOnly
		case "refresh_token":
			refreshCookie = c.HttpOnly
		}
	}
	if !accessCookie || !refreshCookie {
		t.Error("expected HTTPOnly access_token and refresh_token cookies")
	}

	body := decodeBody(t, resp)
	if body["access_token"] == "" || body["access_token"] == nil {
		t.Error("missing access_token in body")
	}
	user, ok := body["user"].(map[string]interface{})
	if !ok {
		t.Fatalf("user field = %v", body["user"])
	}
	if user["username"] != "superadmin" {
		t.Errorf("user.username = %v", user["username"])
	}
	if _, leaked := user["password"]; leaked {
		t.Error("password leaked in login response")
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app, store, _ := newTestApp(t)

	hashed, _ := password.Hash("correct-horse")
	admin := seedUser(t, store, "superadmin", "super_admin")
	store.UpdateUser(context.Background(), admin.ID, &repositories.UserPatch{Password: &hashed})

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"username": "superadmin",
		"password": "wrong",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("login with wrong password = %d, want 401", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["message"] == nil {
		t.Error("expected message in error body")
	}
}

func TestRequiresAuthentication(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/users", "", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("unauthenticated GET /api/users = %d, want 401", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestRejectsNonAdminRole(t *testing.T) {
	app, store, cfg := newTestApp(t)

	farmer := seedUser(t, store, "wanjiku", "farmer")
	resp := doJSON(t, app, http.MethodGet, "/api/users", bearerToken(t, cfg, farmer), nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("farmer GET /api/users = %d, want 403", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestCreateAndGetUser(t *testing.T) {
	app, store, cfg := newTestApp(t)

	agent := seedUser(t, store, "agent", "support_agent")
	token := bearerToken(t, cfg, agent)

	resp := doJSON(t, app, http.MethodPost, "/api/users", token, fiber.Map{
		"username": "newfarmer",
		"password": "secret-123",
		"email":    "newfarmer@agrihero6.com",
		"fullName": "New Farmer",
		"role":     "farmer",
		"region":   "Kenya",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create user = %d, want 201", resp.StatusCode)
	}
	created := decodeBody(t, resp)
	if created["username"] != "newfarmer" || created["status"] != "active" {
		t.Errorf("created = %v", created)
	}
	if _, leaked := created["password"]; leaked {
		t.Error("password leaked in create response")
	}

	id := int(created["id"].(float64))
	resp = doJSON(t, app, http.MethodGet, "/api/users/"+strconv.Itoa(id), token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get user = %d, want 200", resp.StatusCode)
	}
	got := decodeBody(t, resp)
	if got["username"] != "newfarmer" {
		t.Errorf("readback = %v", got)
	}
}

func TestCreateUserValidation(t *testing.T) {
	app, store, cfg := newTestApp(t)

	agent := seedUser(t, store, "agent", "support_agent")
	resp := doJSON(t, app, http.MethodPost, "/api/users", bearerToken(t, cfg, agent), fiber.Map{
		"username": "ab",
		"password": "123",
		"email":    "not-an-email",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("invalid create = %d, want 400", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	fields, ok := body["errors"].(map[string]interface{})
	if !ok {
		t.Fatalf("errors field = %v", body["errors"])
	}
	for _, field := range []string{"username", "password", "email", "fullName", "role"} {
		if fields[field] == nil {
			t.Errorf("missing validation message for %q", field)
		}
	}
}

func TestDeleteUserRequiresSuperAdmin(t *testing.T) {
	app, store, cfg := newTestApp(t)

	regional := seedUser(t, store, "regional", "regional_admin")
	super := seedUser(t, store, "superadmin", "super_admin")
	victim := seedUser(t, store, "victim", "farmer")

	resp := doJSON(t, app, http.MethodDelete, "/api/users/"+strconv.Itoa(int(victim.ID)), bearerToken(t, cfg, regional), nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("regional_admin delete = %d, want 403", resp.StatusCode)
	}
	resp.Body.Close()
	if _, err := store.GetUser(context.Background(), victim.ID); err != nil {
		t.Fatal("user removed by refused delete")
	}

	resp = doJSON(t, app, http.MethodDelete, "/api/users/"+strconv.Itoa(int(victim.ID)), bearerToken(t, cfg, super), nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("super_admin delete = %d, want 204", resp.StatusCode)
	}
	resp.Body.Close()
	if _, err := store.GetUser(context.Background(), victim.ID); err != domain.ErrNotFound {
		t.Errorf("user survived delete: %v", err)
	}
}

func TestModerateContent(t *testing.T) {
	app, store, cfg := newTestApp(t)

	agent := seedUser(t, store, "agent", "support_agent")
	content := &models.Content{
		Title:  "Maize seed listing",
		Type:   domain.ContentTypeMarketplace,
		Status: domain.ContentStatusPending,
		Region: "Kenya",
	}
	if err := store.CreateContent(context.Background(), content); err != nil {
		t.Fatalf("CreateContent: %v", err)
	}

	resp := doJSON(t, app, http.MethodPut, "/api/contents/"+strconv.Itoa(int(content.ID))+"/moderate",
		bearerToken(t, cfg, agent), fiber.Map{"status": "approved"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("moderate = %d, want 200", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["status"] != "approved" {
		t.Errorf("status = %v, want approved", body["status"])
	}

	logs, _ := store.ListAuditLogs(context.Background(), repositories.AuditLogFilter{Action: domain.ActionContentModeration})
	if len(logs) != 1 {
		t.Errorf("%d audit entries, want 1", len(logs))
	}
}

func TestFeatureFlagWriteRequiresSuperAdmin(t *testing.T) {
	app, store, cfg := newTestApp(t)

	regional := seedUser(t, store, "regional", "regional_admin")
	super := seedUser(t, store, "superadmin", "super_admin")

	resp := doJSON(t, app, http.MethodPost, "/api/feature-flags", bearerToken(t, cfg, regional),
		fiber.Map{"name": "Marketplace Enabled"})
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("regional_admin create flag = %d, want 403", resp.StatusCode)
	}
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/feature-flags", bearerToken(t, cfg, super),
		fiber.Map{"name": "Marketplace Enabled"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("super_admin create flag = %d, want 201", resp.StatusCode)
	}
	created := decodeBody(t, resp)
	id := int(created["id"].(float64))

	resp = doJSON(t, app, http.MethodPut, "/api/feature-flags/"+strconv.Itoa(id), bearerToken(t, cfg, super),
		fiber.Map{"enabled": false})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("toggle flag = %d, want 200", resp.StatusCode)
	}
	toggled := decodeBody(t, resp)
	if toggled["enabled"] != false {
		t.Errorf("enabled = %v, want false", toggled["enabled"])
	}
	if toggled["updatedBy"] != float64(super.ID) {
		t.Errorf("updatedBy = %v, want %d", toggled["updatedBy"], super.ID)
	}
}

func TestAuditLogsSuperAdminOnly(t *testing.T) {
	app, store, cfg := newTestApp(t)

	regional := seedUser(t, store, "regional", "regional_admin")
	super := seedUser(t, store, "superadmin", "super_admin")

	resp := doJSON(t, app, http.MethodGet, "/api/audit-logs", bearerToken(t, cfg, regional), nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("regional_admin audit read = %d, want 403", resp.StatusCode)
	}
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/audit-logs", bearerToken(t, cfg, super), nil)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("super_admin audit read = %d, want 200", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestDashboardStats(t *testing.T) {
	app, store, cfg := newTestApp(t)

	agent := seedUser(t, store, "agent", "support_agent")
	resp := doJSON(t, app, http.MethodGet, "/api/dashboard/stats", bearerToken(t, cfg, agent), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("dashboard stats = %d, want 200", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["totalUsers"] != float64(1) {
		t.Errorf("totalUsers = %v, want 1", body["totalUsers"])
	}
}

func TestProduceMarketLifecycle(t *testing.T) {
	app, store, cfg := newTestApp(t)

	super := seedUser(t, store, "superadmin", "super_admin")
	token := bearerToken(t, cfg, super)

	resp := doJSON(t, app, http.MethodPost, "/api/produce-markets", token, fiber.Map{
		"produceName":   "Maize",
		"category":      "Grains",
		"price":         "32.50",
		"previousPrice": "30.00",
		"region":        "Kenya",
		"date":          "2026-08-01",
		"source":        "Nairobi Commodity Exchange",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create market entry = %d, want 201", resp.StatusCode)
	}
	created := decodeBody(t, resp)
	if created["change"] != "2.50" || created["status"] != "rising" {
		t.Errorf("derived fields = change %v, status %v", created["change"], created["status"])
	}

	id := int(created["id"].(float64))
	resp = doJSON(t, app, http.MethodDelete, "/api/produce-markets/"+strconv.Itoa(id), token, nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("delete market entry = %d, want 204", resp.StatusCode)
	}
	resp.Body.Close()
}
