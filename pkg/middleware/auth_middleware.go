package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"reviewhub/pkg/auth"
	"reviewhub/pkg/utils"
)

const identityKey = "identity"

// SessionCookie carries the token for browser sessions; API clients use the
// Authorization header instead.
const SessionCookie = "reviewhub_session"

// IdentityMiddleware resolves the caller's identity from a bearer token or the
// session cookie. It never rejects: a missing or invalid token just leaves the
// request anonymous, and the route-level gates decide what that means.
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(identityKey, resolveIdentity(c))
		c.Next()
	}
}

// RequireAuthenticated aborts anonymous requests with 401.
func RequireAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentIdentity(c).Authenticated {
			utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin aborts with 401 for anonymous callers and 403 for
// authenticated callers without the admin role, so clients can tell
// re-authentication apart from permanent denial.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := CurrentIdentity(c)
		if !identity.Authenticated {
			utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}
		if !identity.IsAdmin() {
			utils.RespondError(c, http.StatusForbidden, "Admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentIdentity returns the caller resolved for this request, anonymous if
// IdentityMiddleware has not run.
func CurrentIdentity(c *gin.Context) auth.Identity {
	if value, ok := c.Get(identityKey); ok {
		if identity, ok := value.(auth.Identity); ok {
			return identity
		}
	}
	return auth.Anonymous()
}

// SetIdentity overrides the request identity. Used by tests to simulate
// callers without minting tokens.
func SetIdentity(c *gin.Context, identity auth.Identity) {
	c.Set(identityKey, identity)
}

func resolveIdentity(c *gin.Context) auth.Identity {
	tokenString := ""
	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
		tokenString = strings.TrimPrefix(header, "Bearer ")
	} else if cookie, err := c.Cookie(SessionCookie); err == nil {
		tokenString = cookie
	}
	if tokenString == "" {
		return auth.Anonymous()
	}

	claims, err := utils.ValidateToken(tokenString)
	if err != nil || claims == nil {
		return auth.Anonymous()
	}

	return auth.Identity{
		UserID:        claims.Subject,
		Role:          claims.Role,
		Authenticated: true,
	}
}
