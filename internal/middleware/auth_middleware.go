package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"sitzy/internal/i18n"
	"sitzy/internal/models"
	"sitzy/internal/utils"
)

const (
	ContextUserKey   = "user"
	ContextUserIDKey = "user_id"
)

// Authenticator resolves a bearer credential to a user identity.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

// AuthRequired validates the bearer token, loads the user and stores it in
// the gin context for handlers.
func AuthRequired(auth Authenticator, loc *i18n.Localizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.UnauthorizedResponse(c, loc.Message("invalid_token", Lang(c)))
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader {
			utils.UnauthorizedResponse(c, loc.Message("invalid_token", Lang(c)))
			c.Abort()
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			utils.UnauthorizedResponse(c, loc.Message("invalid_token", Lang(c)))
			c.Abort()
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextUserIDKey, user.ID)

		c.Next()
	}
}

// CurrentUser returns the authenticated user set by AuthRequired.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}
