package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fueldash/fuel-order-service/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-jwt-secret"

func signToken(t *testing.T, secret, subject, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func authRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	authed := r.Group("/", JWTAuth(testSecret))
	authed.GET("/whoami", func(c *gin.Context) {
		actor := ActorFrom(c)
		c.JSON(http.StatusOK, gin.H{"userId": actor.UserID, "role": string(actor.Role)})
	})
	admin := authed.Group("/", RequireAdmin())
	admin.GET("/admin-only", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func get(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuth(t *testing.T) {
	r := authRouter()

	t.Run("valid token passes actor through", func(t *testing.T) {
		w := get(r, "/whoami", signToken(t, testSecret, "customer-1", string(domain.RoleCustomer)))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "customer-1")
	})

	t.Run("missing token", func(t *testing.T) {
		w := get(r, "/whoami", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		w := get(r, "/whoami", signToken(t, "other-secret", "customer-1", string(domain.RoleCustomer)))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub":  "customer-1",
			"role": "customer",
			"exp":  time.Now().Add(-time.Hour).Unix(),
		})
		signed, err := token.SignedString([]byte(testSecret))
		require.NoError(t, err)
		w := get(r, "/whoami", signed)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing subject", func(t *testing.T) {
		w := get(r, "/whoami", signToken(t, testSecret, "", "customer"))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	r := authRouter()

	t.Run("admin allowed", func(t *testing.T) {
		w := get(r, "/admin-only", signToken(t, testSecret, "admin-1", string(domain.RoleAdmin)))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("customer forbidden", func(t *testing.T) {
		w := get(r, "/admin-only", signToken(t, testSecret, "customer-1", string(domain.RoleCustomer)))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("driver forbidden", func(t *testing.T) {
		w := get(r, "/admin-only", signToken(t, testSecret, "driver-1", string(domain.RoleDriver)))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
