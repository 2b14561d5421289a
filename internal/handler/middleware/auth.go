package middleware

import (
	"log/slog"
	"net/http"

	"payref-console/internal/handler/httperr"
	"payref-console/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	sessionValidator usecase.SessionValidator
}

func NewAuthMiddleware(sessionValidator usecase.SessionValidator) *AuthMiddleware {
	return &AuthMiddleware{
		sessionValidator: sessionValidator,
	}
}

// RequireSession gates every console route except login and health: the
// stored session token must exist and must not be past its expiry claim.
// The gateway still re-checks (and refreshes) before each upstream call.
func (m *AuthMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := m.sessionValidator.Validate(); err != nil {
			slog.Warn("session validation failed", "path", c.Request.URL.Path, "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Session expired, please log in again", nil)
			return
		}
		c.Next()
	}
}
