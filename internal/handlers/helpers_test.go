package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ozgurkara/todo-backend/internal/auth"
	"github.com/ozgurkara/todo-backend/internal/config"
	"github.com/ozgurkara/todo-backend/internal/database"
	"github.com/ozgurkara/todo-backend/internal/handlers"
	"github.com/ozgurkara/todo-backend/internal/routes"
	"github.com/ozgurkara/todo-backend/internal/services"
)

const testSecret = "test_secret_key_12345"

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:    testSecret,
		JWTAlgorithm: "HS256",
		TokenTTL:     30 * time.Minute,
	}
}

// newTestApp wires the full application against a throwaway SQLite database.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := testConfig()
	tokens, err := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTAlgorithm, cfg.TokenTTL)
	require.NoError(t, err)

	authService := services.NewAuthService(db, tokens)
	userService := services.NewUserService(db)
	todoService := services.NewTodoService(db)

	app := fiber.New()
	routes.Setup(app, cfg,
		handlers.NewAuthHandler(authService),
		handlers.NewUsersHandler(userService),
		handlers.NewTodosHandler(todoService),
		handlers.NewAdminHandler(todoService),
		handlers.NewHealthHandler(db),
	)
	return app
}

// doJSON performs a JSON request against the app, attaching the bearer
// token when provided.
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

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// registerUser creates an account through POST /auth/.
func registerUser(t *testing.T, app *fiber.App, username, password, role string) {
	t.Helper()

	resp := doJSON(t, app, http.MethodPost, "/auth/", "", map[string]any{
		"email":        username + "@example.com",
		"username":     username,
		"first_name":   "Eric",
		"last_name":    "Roby",
		"password":     password,
		"role":         role,
		"phone_number": "(111)-111-1111",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}

// login exchanges form-encoded credentials for a bearer token.
func login(t *testing.T, app *fiber.App, username, password string) string {
	t.Helper()

	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	decodeBody(t, resp, &body)
	require.Equal(t, "bearer", body.TokenType)
	require.NotEmpty(t, body.AccessToken)
	return body.AccessToken
}

func detailOf(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body struct {
		Detail string `json:"detail"`
	}
	decodeBody(t, resp, &body)
	return body.Detail
}
