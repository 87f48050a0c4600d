package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"inkwell/internal/cache"
	"inkwell/internal/config"
	"inkwell/internal/database"
	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// setupTestServer builds a Server backed by a fresh in-memory SQLite
// database, with routes registered. Each test gets its own named shared
// memory DSN so parallel packages do not leak state into each other.
func setupTestServer(t *testing.T) (*Server, *fiber.App) {
	t.Helper()

	cache.SetClient(nil)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.NewReplacer("/", "_", " ", "_").Replace(t.Name()))
	db, err := database.ConnectSQLite(dsn)
	require.NoError(t, err)

	cfg := &config.Config{
		JWTSecret:    "test_secret",
		Env:          "test",
		FeatureFlags: "generate_post=on,generate_tag=on",
	}

	s, err := NewServerWithDeps(cfg, db, nil)
	require.NoError(t, err)

	return s, newTestApp(s)
}

// newTestApp registers routes on a bare app, skipping the middleware stack.
func newTestApp(s *Server) *fiber.App {
	app := fiber.New()
	s.SetupRoutes(app)
	return app
}

// createTestUser inserts a user with its profile and returns the user and a
// valid token.
func createTestUser(t *testing.T, s *Server, username, email, role string) (*models.User, string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("Sup3r-Secret-Pass!"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Username: username,
		Email:    email,
		Password: string(hash),
		Role:     role,
	}
	require.NoError(t, s.db.Create(user).Error)
	require.NoError(t, s.db.Create(&models.Profile{UserID: user.ID}).Error)

	token, err := s.generateToken(user)
	require.NoError(t, err)
	return user, token
}

// doJSON performs a request with an optional JSON body and bearer token.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
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
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decodeBody decodes the response body into dest.
func decodeBody(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

func TestParseID(t *testing.T) {
	_, app := setupTestServer(t)

	resp := doJSON(t, app, http.MethodGet, "/api/posts/not-a-number", "", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	require.Equal(t, "Invalid ID", body["error"])
}
