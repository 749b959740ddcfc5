package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domainerrors "talenthub.backend/internal/domain/errors"
	"talenthub.backend/internal/interfaces/http/response"
	"talenthub.backend/internal/usecases"
	"talenthub.backend/pkg/logger"
)

// APIKeyContextKey is the gin context key holding the authenticated key.
const APIKeyContextKey = "api_key"

// RequireAPIKey guards a route group with the X-Api-Key header. The
// presented key must be active, unexpired, and carry the given
// permission; its last-used stamp is updated on every accepted request.
func RequireAPIKey(uc *usecases.APIKeyUsecase, permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		presented := c.GetHeader("X-Api-Key")
		if presented == "" {
			response.Error(c, domainerrors.Unauthorized("missing api key"))
			c.Abort()
			return
		}

		key, err := uc.ValidateAPIKey(c.Request.Context(), presented, permission)
		if err != nil {
			logger.Warn(c.Request.Context(), "api key rejected",
				zap.String("permission", permission),
				zap.Error(err))
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set(APIKeyContextKey, key)
		c.Next()
	}
}
