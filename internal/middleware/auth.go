package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"museum-review/internal/auth"
	"museum-review/internal/domain"
	"museum-review/internal/logger"
)

// SessionKey is the gin context key holding the reviewer session.
const SessionKey = "session"

// RequireSession resolves the bearer token to a reviewer session and aborts
// with 401 when it is missing or unknown. Role checks happen per stage in the
// services.
func RequireSession(authenticator auth.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		session, err := authenticator.Authenticate(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, domain.ErrUnauthorized) {
				logger.WithRequestID(GetRequestID(c)).Error("Session lookup failed", "error", err)
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		c.Set(SessionKey, session)
		c.Next()
	}
}

// GetSession returns the session set by RequireSession, or nil.
func GetSession(c *gin.Context) *auth.Session {
	if v, exists := c.Get(SessionKey); exists {
		if session, ok := v.(*auth.Session); ok {
			return session
		}
	}
	return nil
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
