package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sellos/internal/metrics"
	"sellos/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func sign(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func operatorToken(t *testing.T, role string) string {
	return sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{
		"sub":  "op-17",
		"role": role,
		"iss":  "sellos-id",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
}

func protectedRouter(v *middleware.TokenVerifier, roles ...string) *gin.Engine {
	r := gin.New()
	r.GET("/protected", v.RequireRole(roles...), func(c *gin.Context) {
		c.String(http.StatusOK, middleware.OperatorID(c))
	})
	return r
}

func TestRequireRole(t *testing.T) {
	v := middleware.NewTokenVerifier(secret, "sellos-id")
	r := protectedRouter(v, middleware.RoleAdmin, middleware.RoleOperator)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"valid operator", "Bearer " + operatorToken(t, middleware.RoleOperator), http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Token " + operatorToken(t, middleware.RoleOperator), http.StatusUnauthorized},
		{"role not allowed", "Bearer " + operatorToken(t, "auditor"), http.StatusForbidden},
		{"no role claim", "Bearer " + sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{"sub": "x", "iss": "sellos-id"}), http.StatusForbidden},
		{"wrong secret", "Bearer " + sign(t, jwt.SigningMethodHS256, []byte("other"), jwt.MapClaims{"sub": "x", "role": "admin", "iss": "sellos-id"}), http.StatusUnauthorized},
		{"wrong algorithm", "Bearer " + sign(t, jwt.SigningMethodHS512, []byte(secret), jwt.MapClaims{"sub": "x", "role": "admin", "iss": "sellos-id"}), http.StatusUnauthorized},
		{"wrong issuer", "Bearer " + sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{"sub": "x", "role": "admin", "iss": "elsewhere"}), http.StatusUnauthorized},
		{"expired", "Bearer " + sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{"sub": "x", "role": "admin", "iss": "sellos-id", "exp": time.Now().Add(-time.Minute).Unix()}), http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, "op-17", w.Body.String())
			}
		})
	}
}

func TestVerify(t *testing.T) {
	v := middleware.NewTokenVerifier(secret, "")

	op, err := v.Verify(operatorToken(t, middleware.RoleAdmin))
	require.NoError(t, err)
	assert.Equal(t, middleware.Operator{ID: "op-17", Role: middleware.RoleAdmin}, op)

	_, err = v.Verify("")
	assert.ErrorIs(t, err, middleware.ErrMissingToken)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(middleware.ContextRequestID))
	})

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		id := w.Header().Get("X-Request-ID")
		assert.Len(t, id, 36)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
		assert.Equal(t, "abc-123", w.Body.String())
	})
}

func TestMetricsUsesRouteTemplate(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	r := gin.New()
	r.Use(middleware.Metrics(m), middleware.Logger())
	r.GET("/api/sellos/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	for _, id := range []string{"a", "b", "c"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/sellos/"+id, nil))
	}
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, 3.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/api/sellos/:id", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "unmatched", "404")))
}
