package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/lumenarts/school-be/internal/auth"
	"github.com/lumenarts/school-be/internal/storage/postgres"
)

// TestAuthIntegration exercises the register/login endpoints against a live
// Postgres instance.
func TestAuthIntegration(t *testing.T) {
	if os.Getenv("RUN_AUTH_INTEGRATION") != "true" {
		t.Skip("set RUN_AUTH_INTEGRATION=true to run this integration test")
	}

	loadDotEnv()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Fatal("DATABASE_URL is required")
	}
	secret := mustGetEnv(t, "JWT_SECRET")

	ctx := context.Background()
	store, err := postgres.NewAccountStore(ctx, dbURL)
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	defer store.Close()

	tokens := auth.NewTokenManager(secret, "school-backend-integration", 240*time.Hour)
	svc := auth.NewService(store, tokens, 10)

	mux := http.NewServeMux()
	NewAuthHandler(svc, zap.NewNop()).Register(mux)

	ts := httptest.NewServer(mux)
	defer ts.Close()

	username := fmt.Sprintf("apitest_%d", time.Now().UnixNano())
	email := fmt.Sprintf("%s@example.com", username)
	password := fmt.Sprintf("Pass!%d", time.Now().UnixNano())

	status, _ := doPost(t, ts.URL+"/auth/register", map[string]any{
		"username":  username,
		"email":     email,
		"password":  password,
		"firstName": "Api",
		"lastName":  "Test",
		"phone":     "555-0100",
		"centre":    "delhi",
		"level":     "undergraduate",
	})
	if status != http.StatusCreated {
		t.Fatalf("register status = %d", status)
	}

	status, body := doPost(t, ts.URL+"/auth/login", map[string]any{
		"email":    email,
		"password": password,
	})
	if status != http.StatusOK {
		t.Fatalf("login status = %d", status)
	}
	data, _ := body["data"].(map[string]any)
	token, _ := data["token"].(string)
	if strings.TrimSpace(token) == "" {
		t.Fatal("login response missing token")
	}

	status, _ = doPost(t, ts.URL+"/auth/login", map[string]any{
		"email":    email,
		"password": "definitely-wrong",
	})
	if status != http.StatusBadRequest {
		t.Fatalf("wrong-password login status = %d", status)
	}

	status, _ = doPost(t, ts.URL+"/auth/register", map[string]any{
		"username":  username + "_two",
		"email":     email,
		"password":  password,
		"firstName": "Api",
		"lastName":  "Test",
		"phone":     "555-0100",
	})
	if status != http.StatusBadRequest {
		t.Fatalf("duplicate register status = %d", status)
	}

	t.Logf("created account %s and exercised login/duplicate paths", username)
}

func doPost(t *testing.T, url string, payload map[string]any) (int, map[string]any) {
	t.Helper()
	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("request %s failed: %v", url, err)
	}
	defer resp.Body.Close()

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode, body
}

func mustGetEnv(t *testing.T, key string) string {
	t.Helper()
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		t.Fatalf("%s is required", key)
	}
	return val
}

func loadDotEnv() {
	paths := []string{
		".env",
		"../.env",
		"../../.env",
		"../../../.env",
		"../../../../.env",
	}
	for _, path := range paths {
		_ = godotenv.Overload(path)
	}
}
