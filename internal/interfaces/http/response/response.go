package response

import (
	"errors"

	"github.com/gin-gonic/gin"

	domainerrors "talenthub.backend/internal/domain/errors"
	"talenthub.backend/pkg/utils"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// List sends a collection with pagination metadata.
func List(c *gin.Context, status int, key string, items interface{}, meta utils.PaginationMeta) {
	c.JSON(status, gin.H{key: items, "meta": meta})
}

// Error sends an error response. Bare sentinel errors are mapped onto
// their usual HTTP statuses; anything unrecognized is a 500.
func Error(c *gin.Context, err error) {
	appErr := toAppError(err)
	c.JSON(appErr.Status, gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
	})
}

func toAppError(err error) *domainerrors.AppError {
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		return domainerrors.NotFound("resource not found")
	case errors.Is(err, domainerrors.ErrAlreadyExists):
		return domainerrors.Conflict("resource already exists")
	case errors.Is(err, domainerrors.ErrInvalidInput):
		return domainerrors.BadRequest("invalid input")
	case errors.Is(err, domainerrors.ErrKeyExpired):
		return domainerrors.Unauthorized("api key expired")
	case errors.Is(err, domainerrors.ErrKeyInactive):
		return domainerrors.Unauthorized("api key inactive")
	case errors.Is(err, domainerrors.ErrUnauthorized):
		return domainerrors.Unauthorized("unauthorized")
	case errors.Is(err, domainerrors.ErrForbidden):
		return domainerrors.Forbidden("forbidden")
	default:
		return domainerrors.InternalError(err)
	}
}
