package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"oneiro/internal/ai"
	"oneiro/internal/config"
	"oneiro/internal/database"
	"oneiro/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// testEncryptionKey is 64 hex chars (32 bytes).
var testEncryptionKey = strings.Repeat("0123456789abcdef", 4)

type stubInterpreter struct {
	fn func(description string) (string, error)
}

func (s *stubInterpreter) Interpret(_ context.Context, description string) (string, error) {
	return s.fn(description)
}

type stubIllustrator struct {
	fn func(description, style string) (string, error)
}

func (s *stubIllustrator) Illustrate(_ context.Context, description, style string) (string, error) {
	return s.fn(description, style)
}

func defaultInterpreter() ai.Interpreter {
	return &stubInterpreter{fn: func(string) (string, error) { return "an interpretation", nil }}
}

func defaultIllustrator() ai.Illustrator {
	return &stubIllustrator{fn: func(string, string) (string, error) { return "https://img.example/d.png", nil }}
}

// setupTestServer builds a full server over an in-memory sqlite database with
// stubbed AI collaborators and no Redis.
func setupTestServer(t *testing.T, interpreter ai.Interpreter, illustrator ai.Illustrator) (*Server, *fiber.App, *gorm.DB) {
	t.Helper()
	t.Setenv("APP_ENV", "test")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		Port:          "0",
		Env:           "test",
		JWTSecret:     "test-secret-0123456789abcdef0123456789",
		EncryptionKey: testEncryptionKey,
	}

	if interpreter == nil {
		interpreter = defaultInterpreter()
	}
	if illustrator == nil {
		illustrator = defaultIllustrator()
	}

	srv, err := NewServerWithDeps(cfg, db, nil, interpreter, illustrator)
	require.NoError(t, err)

	app := fiber.New()
	srv.SetupRoutes(app)

	return srv, app, db
}

// signupTestUser inserts a user directly and returns it with a bearer token.
func signupTestUser(t *testing.T, srv *Server, db *gorm.DB, name string) (*models.User, string) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("SecurePass12!@"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{Name: name, Email: name + "@example.com", Password: string(hashed)}
	require.NoError(t, db.Create(user).Error)

	token, err := srv.generateToken(user.ID, user.Name)
	require.NoError(t, err)

	return user, "Bearer " + token
}

// doJSON performs a request with an optional JSON body and bearer token and
// decodes the JSON response into a map.
func doJSON(t *testing.T, app *fiber.App, method, path, bearer string, body any) (int, map[string]any) {
	t.Helper()
	return doJSONWithHeaders(t, app, method, path, bearer, body, nil)
}

func doJSONWithHeaders(t *testing.T, app *fiber.App, method, path, bearer string, body any, headers map[string]string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", bearer)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	payload := map[string]any{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &payload), string(raw))
	}

	return resp.StatusCode, payload
}

func requireStatus(t *testing.T, got int, want int, payload map[string]any) {
	t.Helper()
	if got != want {
		t.Fatalf("expected status %d, got %d (payload: %v)", want, got, payload)
	}
}
