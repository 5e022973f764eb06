package middleware

import (
	"errors"
	"net/http"
	"strings"

	"sellos/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Roles carried in the "role" claim of operator tokens
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
)

// Context keys set by RequireRole
const (
	ContextOperatorID = "operatorID"
	ContextRole       = "operatorRole"
)

var (
	ErrMissingToken = errors.New("authorization is missing")
	ErrMissingRole  = errors.New("role not found in token")
)

// Operator is the identity extracted from a verified token.
type Operator struct {
	ID   string
	Role string
}

// TokenVerifier checks HS256 operator tokens issued by the identity service.
// It never issues tokens itself.
type TokenVerifier struct {
	secret []byte
	issuer string
}

func NewTokenVerifier(secret, issuer string) *TokenVerifier {
	return &TokenVerifier{secret: []byte(secret), issuer: issuer}
}

// Verify parses raw and returns the operator it names.
func (v *TokenVerifier) Verify(raw string) (Operator, error) {
	if raw == "" {
		return Operator{}, ErrMissingToken
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	token, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return Operator{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Operator{}, jwt.ErrTokenInvalidClaims
	}

	role, _ := claims["role"].(string)
	if role == "" {
		return Operator{}, ErrMissingRole
	}
	sub, _ := claims.GetSubject()

	return Operator{ID: sub, Role: role}, nil
}

// RequireRole validates the bearer token and checks that its role is one of
// allowedRoles.
func (v *TokenVerifier) RequireRole(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Authorization is missing"))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Invalid authorization format. Expected 'Bearer <token>'"))
			return
		}

		operator, err := v.Verify(parts[1])
		if err != nil {
			status := http.StatusUnauthorized
			if errors.Is(err, ErrMissingRole) {
				status = http.StatusForbidden
			}
			c.AbortWithStatusJSON(status, response.Error(status, "Invalid token: "+err.Error()))
			return
		}

		if !hasRole(operator.Role, allowedRoles) {
			c.AbortWithStatusJSON(http.StatusForbidden, response.Error(http.StatusForbidden, "Access denied: insufficient permissions"))
			return
		}

		c.Set(ContextOperatorID, operator.ID)
		c.Set(ContextRole, operator.Role)

		c.Next()
	}
}

// OperatorID returns the token subject stored by RequireRole.
func OperatorID(c *gin.Context) string {
	return c.GetString(ContextOperatorID)
}

func hasRole(role string, allowed []string) bool {
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}
