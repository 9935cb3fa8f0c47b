package httpserver

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techmarket/storefront/internal/tokens"
)

func TestSignupLoginFlow(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/v1/api/user/signup", "", map[string]string{
		"full_name": "Jordan Blake",
		"email":     "jordan@example.com",
		"password":  "secret123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var signup struct {
		Message string `json:"message"`
		User    struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
	}
	decodeJSON(t, rec, &signup)
	assert.Equal(t, "User registered", signup.Message)
	assert.Equal(t, "jordan@example.com", signup.User.Email)
	assert.Equal(t, "customer", signup.User.Role)
	assert.NotContains(t, rec.Body.String(), "password_hash")

	login := env.login("jordan@example.com", "secret123")
	assert.Equal(t, "customer", login.Role)
	assert.Equal(t, tokens.AccessTTLLabel, login.ExpiresIn)
	assert.NotZero(t, login.ExpiresAt)
}

func TestSignupDuplicateEmail(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	body := map[string]string{
		"full_name": "Jordan",
		"email":     "dup@example.com",
		"password":  "pw",
	}
	rec := env.do(http.MethodPost, "/v1/api/user/signup", "", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(http.MethodPost, "/v1/api/user/signup", "", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "user already exists")
}

func TestLoginInvalidCredentials(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	env.signupAndLogin("known@example.com", "rightpw")

	rec := env.do(http.MethodPost, "/v1/api/user/login", "", map[string]string{
		"email":    "known@example.com",
		"password": "wrongpw",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid credentials")

	rec = env.do(http.MethodPost, "/v1/api/user/login", "", map[string]string{
		"email":    "unknown@example.com",
		"password": "rightpw",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid credentials")
}

func TestRefreshTokenFromBody(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	login := env.signupAndLogin("refresh@example.com", "pw")

	rec := env.do(http.MethodPost, "/v1/api/user/refresh-token", "", map[string]string{
		"refresh_token": login.RefreshToken,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   string `json:"expires_in"`
	}
	decodeJSON(t, rec, &resp)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, tokens.AccessTTLLabel, resp.ExpiresIn)

	// Missing token in the body is unauthenticated, not a bad request.
	rec = env.do(http.MethodPost, "/v1/api/user/refresh-token", "", map[string]string{})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(http.MethodPost, "/v1/api/user/refresh-token", "", map[string]string{
		"refresh_token": "garbage",
	})
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestLogoutInvalidatesSession(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	login := env.signupAndLogin("logout@example.com", "pw")

	rec := env.do(http.MethodPost, "/v1/api/user/logout", "", map[string]string{
		"refresh_token": login.RefreshToken,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Logged out successfully")

	rec = env.do(http.MethodPost, "/v1/api/user/refresh-token", "", map[string]string{
		"refresh_token": login.RefreshToken,
	})
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCustomerAdminEndpointsGuarded(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	customer := env.signupAndLogin("customer@example.com", "pw")

	rec := env.do(http.MethodGet, "/v1/api/user", customer.AccessToken, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(http.MethodGet, "/v1/api/user", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	admin := env.loginAdmin()
	rec = env.do(http.MethodGet, "/v1/api/user", admin.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var customers []struct {
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	decodeJSON(t, rec, &customers)
	require.Len(t, customers, 1)
	assert.Equal(t, "customer@example.com", customers[0].Email)
}

func TestDeleteUserValidation(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	admin := env.loginAdmin()

	rec := env.do(http.MethodDelete, "/v1/api/user/delete-user/not-a-uuid", admin.AccessToken, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(http.MethodDelete, "/v1/api/user/delete-user/7f8b2c3d-0000-1111-2222-333344445555", admin.AccessToken, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
