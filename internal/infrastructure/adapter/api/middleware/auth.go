package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/raffle-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/raffle-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/security"
)

// ActorIDKey is the gin context key holding the authenticated admin id
const ActorIDKey = "actor_id"

// TokenParser validates bearer tokens
type TokenParser interface {
	Parse(tokenString string) (*security.AdminClaims, error)
}

// AdminAuth rejects requests without a valid admin bearer token
func AdminAuth(tokens TokenParser, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			RespondError(c, logger, domainerr.ErrUnauthorized)
			return
		}

		claims, err := tokens.Parse(strings.TrimSpace(token))
		if err != nil {
			logger.Warn("Rejected admin token", map[string]any{
				"error":      err.Error(),
				"path":       c.Request.URL.Path,
				"request_id": c.GetString(RequestIDKey),
			})
			RespondError(c, logger, err)
			return
		}

		c.Set(ActorIDKey, claims.ActorID())
		c.Next()
	}
}

// ActorID returns the authenticated admin id of the request
func ActorID(c *gin.Context) string {
	return c.GetString(ActorIDKey)
}
