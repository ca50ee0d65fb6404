package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/pinora-app/pinora-backend/api/controller"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "access_token_secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func protectedEngine() *gin.Engine {
	r := gin.New()
	r.GET("/me", JwtAuthMiddleware(testSecret), func(c *gin.Context) {
		c.String(http.StatusOK, controller.CurrentUserID(c))
	})
	return r
}

func callWithAuth(r *gin.Engine, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJwtAuthMiddleware(t *testing.T) {
	valid := jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}

	t.Run("valid token", func(t *testing.T) {
		token, err := CreateAccessToken("65f1a2b3c4d5e6f708091a2b", testSecret, valid)
		require.NoError(t, err)

		w := callWithAuth(protectedEngine(), "Bearer "+token)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "65f1a2b3c4d5e6f708091a2b", w.Body.String())
	})

	t.Run("missing header", func(t *testing.T) {
		w := callWithAuth(protectedEngine(), "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		w := callWithAuth(protectedEngine(), "Basic abc")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := CreateAccessToken("65f1a2b3c4d5e6f708091a2b", "other", valid)
		require.NoError(t, err)

		w := callWithAuth(protectedEngine(), "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute))}
		token, err := CreateAccessToken("65f1a2b3c4d5e6f708091a2b", testSecret, expired)
		require.NoError(t, err)

		w := callWithAuth(protectedEngine(), "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestExtractIDFromTokenRequiresUserID(t *testing.T) {
	token, err := CreateAccessToken("", testSecret, jwt.RegisteredClaims{})
	require.NoError(t, err)

	_, err = ExtractIDFromToken(token, testSecret)
	assert.Error(t, err)

	_, err = ExtractIDFromToken(token, "")
	assert.Error(t, err)
}
