package v1

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rifaapp/rifa-api/internal/api/handler/v1/response"
	"github.com/rifaapp/rifa-api/internal/pkg/jwthelper"
)

func TestHandleSignup(t *testing.T) {
	env := newTestEnv(t)
	body := map[string]string{
		"email":            "new@example.com",
		"password":         "rifa2026",
		"confirm_password": "rifa2026",
		"name":             "New Organizer",
	}

	w := env.do(t, http.MethodPost, "/api/v1/auth/signup", body, "")
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body["email"] = "org@example.com"
	w = env.do(t, http.MethodPost, "/api/v1/auth/signup", body, "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandleLogin(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "org@example.com",
		"password": "rifa2026",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var body response.LoginResponse
	decode(t, w, &body)
	userID, err := jwthelper.ParseToken([]byte(testSigningKey), body.Token)
	require.NoError(t, err)
	assert.Equal(t, env.auth.user.ID, userID)

	w = env.do(t, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "org@example.com",
		"password": "wrong",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHealthHandler(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/version", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var body response.VersionResponse
	decode(t, w, &body)
	assert.Equal(t, "1.2.3", body.Version)
}
