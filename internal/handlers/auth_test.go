package handlers

import (
	"net/http"
	"testing"

	"github.com/borsibaar/barpos/internal/dto"
	apierrors "github.com/borsibaar/barpos/internal/errors"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Signup(t *testing.T) {
	env := setupTestEnv(t)
	c := env.anonymous(t)

	w := c.do(http.MethodPost, "/api/auth/signup", map[string]string{
		"email":    "Alice@Example.com",
		"name":     "Alice",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.UserDTO
	decode(t, w, &response)
	require.Equal(t, "alice@example.com", response.Email)
	require.Nil(t, response.OrganizationID)
	require.Nil(t, response.Role)

	w = c.do(http.MethodPost, "/api/auth/signup", map[string]string{
		"email":    "alice@example.com",
		"name":     "Alice again",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusConflict, w.Code)

	w = c.do(http.MethodPost, "/api/auth/signup", map[string]string{
		"email":    "bob@example.com",
		"name":     "Bob",
		"password": "short",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = c.do(http.MethodPost, "/api/auth/signup", map[string]string{
		"email":    "not-an-email",
		"name":     "Bob",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, apierrors.ErrCodeInvalidInput, errorCode(t, w))
}

func TestAuthHandler_Login(t *testing.T) {
	env := setupTestEnv(t)
	env.signup(t, "existing@example.com", "Existing")

	c := env.anonymous(t)
	w := c.do(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "existing@example.com",
		"password": "wrong-password",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, apierrors.ErrCodeInvalidCredentials, errorCode(t, w))

	w = c.do(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "existing@example.com",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, w.Result().Cookies(), "expected session cookie to be set")

	w = c.do(http.MethodGet, "/api/account", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestAuthHandler_Logout(t *testing.T) {
	env := setupTestEnv(t)
	c := env.signup(t, "leaving@example.com", "Leaving")

	w := c.do(http.MethodPost, "/api/auth/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = c.do(http.MethodGet, "/api/account", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoutes_RequireSession(t *testing.T) {
	env := setupTestEnv(t)
	c := env.anonymous(t)

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/api/account"},
		{http.MethodPost, "/api/account/onboarding"},
		{http.MethodGet, "/api/organizations"},
		{http.MethodGet, "/api/bar-stations/user"},
		{http.MethodGet, "/api/products"},
		{http.MethodGet, "/api/sales"},
	} {
		w := c.do(route.method, route.path, nil)
		require.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)
		require.Equal(t, apierrors.ErrCodeUnauthorized, errorCode(t, w))
	}

	w := c.do(http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
