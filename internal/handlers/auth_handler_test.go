package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozgurkara/todo-backend/internal/auth"
)

func TestRegisterThenLogin(t *testing.T) {
	app := newTestApp(t)

	registerUser(t, app, "roby", "pw1", "user")

	token := login(t, app, "roby", "pw1")
	assert.NotEmpty(t, token)
}

func TestLogin_WrongPassword(t *testing.T) {
	app := newTestApp(t)
	registerUser(t, app, "roby", "pw1", "user")

	form := url.Values{}
	form.Set("username", "roby")
	form.Set("password", "wrong")

	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Incorrect username or password", detailOf(t, resp))
}

func TestProtectedRoute_MissingToken(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/todos/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Could not validate credentials.", detailOf(t, resp))
}

func TestProtectedRoute_GarbageToken(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/todos/", "not.a.jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Could not validate credentials.", detailOf(t, resp))
}

func TestProtectedRoute_ExpiredToken(t *testing.T) {
	app := newTestApp(t)

	expired, err := auth.NewTokenManager(testSecret, "HS256", -time.Minute)
	require.NoError(t, err)
	token, err := expired.Issue("roby", 1, "user")
	require.NoError(t, err)

	resp := doJSON(t, app, http.MethodGet, "/todos/", token, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Could not validate credentials.", detailOf(t, resp))
}
