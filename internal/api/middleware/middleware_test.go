package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rifaapp/rifa-api/internal/pkg/jwthelper"
)

const signingKey = "0123456789abcdef0123456789abcdef"

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func TestVerifyJWT(t *testing.T) {
	userID := uuid.New()
	token, err := jwthelper.GenerateToken([]byte(signingKey), userID, "", time.Hour)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/", NewAuthenticator(signingKey).VerifyJWT(), func(ctx *gin.Context) {
		id, ok := UserID(ctx)
		require.True(t, ok)
		ctx.String(http.StatusOK, id.String())
	})

	w := serve(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID.String(), w.Body.String())

	assert.Equal(t, http.StatusUnauthorized, serve(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(r, "Token "+token).Code)
	assert.Equal(t, http.StatusUnauthorized, serve(r, "Bearer garbage").Code)
}

type guard struct {
	calls int
	err   error
}

func (g *guard) EnsureReady(context.Context) error {
	g.calls++
	return g.err
}

func TestEnsureSchema(t *testing.T) {
	g := &guard{}
	r := gin.New()
	r.GET("/", EnsureSchema(g), func(ctx *gin.Context) {
		ctx.Status(http.StatusNoContent)
	})

	assert.Equal(t, http.StatusNoContent, serve(r, "").Code)
	assert.Equal(t, 1, g.calls)

	g.err = errors.New("relation does not exist")
	assert.Equal(t, http.StatusInternalServerError, serve(r, "").Code)
}

func TestUserID_Missing(t *testing.T) {
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := UserID(ctx)
	assert.False(t, ok)
}
