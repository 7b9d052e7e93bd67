package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"content-platform/internal/domain"
	"content-platform/internal/logger"
)

const (
	// PrincipalIDHeader carries the authenticated principal id set by the session gateway.
	PrincipalIDHeader = "X-Principal-ID"
	// PrincipalKindHeader carries the principal kind, local or external.
	PrincipalKindHeader = "X-Principal-Kind"
	// PrincipalKey is the context key for the resolved principal.
	PrincipalKey = "principal"
)

// PrincipalResolver loads a principal by reference. Absent principals are (nil, nil).
type PrincipalResolver interface {
	Resolve(ctx context.Context, ref domain.PrincipalRef) (*domain.Principal, error)
}

// Authenticate resolves the forwarded principal headers. Requests without
// headers, with an unknown kind or a malformed id, or naming an unknown or
// inactive principal continue anonymously.
func Authenticate(resolver PrincipalResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(PrincipalIDHeader)
		if id == "" {
			c.Next()
			return
		}

		kind, err := domain.ParsePrincipalKind(c.GetHeader(PrincipalKindHeader))
		if err != nil {
			logger.Debug("ignoring principal with unknown kind", "request_id", GetRequestID(c), "kind", c.GetHeader(PrincipalKindHeader))
			c.Next()
			return
		}

		parsed, err := uuid.Parse(id)
		if err != nil {
			logger.Debug("ignoring malformed principal id", "request_id", GetRequestID(c), "principal_id", id)
			c.Next()
			return
		}
		id = parsed.String()

		principal, err := resolver.Resolve(c.Request.Context(), domain.PrincipalRef{ID: id, Kind: kind})
		if err != nil {
			logger.ErrorContext(c.Request.Context(), "failed to resolve principal",
				"request_id", GetRequestID(c), "principal_id", id, "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		if principal != nil && principal.Active {
			c.Set(PrincipalKey, principal)
		}
		c.Next()
	}
}

// RequireAuth rejects anonymous requests with 401.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetPrincipal(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Next()
	}
}

// RequireAdmin rejects anonymous requests with 401 and non-admins with 403.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		p := GetPrincipal(c)
		switch {
		case p == nil:
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		case !p.IsAdmin():
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

// GetPrincipal returns the authenticated principal, or nil for anonymous requests.
func GetPrincipal(c *gin.Context) *domain.Principal {
	v, ok := c.Get(PrincipalKey)
	if !ok {
		return nil
	}
	p, _ := v.(*domain.Principal)
	return p
}
