package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"resort-engine/internal/domain/customer"
	"resort-engine/internal/handler/httperr"
	"resort-engine/internal/pkg/jwt"
	"resort-engine/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

type AuthMiddleware struct {
	tokenValidator TokenValidator
}

const (
	ctxActorKey  = "actor"
	ctxLocaleKey = "locale"
)

var (
	errTokenRequired = errors.New("access token required")
	errStaffOnly     = errors.New("staff role required")
	errNoActor       = errors.New("no authenticated actor in context")
)

func NewAuthMiddleware(tokenValidator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errTokenRequired, "Access token required", nil)
			return
		}

		claims, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		SetActor(c, shared.Actor{ID: claims.CustomerID, Role: customer.Role(claims.Role)})
		c.Next()
	}
}

// RequireStaff must run after RequireAuth.
func (m *AuthMiddleware) RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, errNoActor, "Internal server error", nil)
			return
		}
		if !actor.IsStaff() {
			httperr.AbortWithError(c, http.StatusForbidden, errStaffOnly, "Insufficient permissions", nil)
			return
		}
		c.Next()
	}
}

// Locale stores the preferred supported language of the request.
func Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ctxLocaleKey, customer.NegotiateLocale(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

func SetActor(c *gin.Context, actor shared.Actor) {
	c.Set(ctxActorKey, actor)
}

func GetActor(c *gin.Context) (shared.Actor, bool) {
	v, exists := c.Get(ctxActorKey)
	if !exists {
		return shared.Actor{}, false
	}
	actor, ok := v.(shared.Actor)
	return actor, ok
}

func GetLocale(c *gin.Context) customer.Locale {
	if v, exists := c.Get(ctxLocaleKey); exists {
		if l, ok := v.(customer.Locale); ok {
			return l
		}
	}
	return customer.LocaleEN
}
