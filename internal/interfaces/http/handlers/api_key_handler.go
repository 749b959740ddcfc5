package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"talenthub.backend/internal/domain/entities"
	domainerrors "talenthub.backend/internal/domain/errors"
	"talenthub.backend/internal/interfaces/http/response"
	"talenthub.backend/internal/usecases"
)

// APIKeyHandler handles API key administration endpoints
type APIKeyHandler struct {
	apiKeyUsecase *usecases.APIKeyUsecase
}

// NewAPIKeyHandler creates a new API key handler
func NewAPIKeyHandler(apiKeyUsecase *usecases.APIKeyUsecase) *APIKeyHandler {
	return &APIKeyHandler{apiKeyUsecase: apiKeyUsecase}
}

// List lists keys in masked form
// GET /api/v1/admin/keys
func (h *APIKeyHandler) List(c *gin.Context) {
	keys, err := h.apiKeyUsecase.ListAPIKeys(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if keys == nil {
		keys = []*entities.APIKey{}
	}
	response.Success(c, http.StatusOK, gin.H{"keys": keys})
}

// Create issues a key; the plaintext appears in this response only
// POST /api/v1/admin/keys
func (h *APIKeyHandler) Create(c *gin.Context) {
	var input entities.CreateAPIKeyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	resp, err := h.apiKeyUsecase.CreateAPIKey(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp)
}

// Deactivate revokes a key
// DELETE /api/v1/admin/keys/:id
func (h *APIKeyHandler) Deactivate(c *gin.Context) {
	if err := h.apiKeyUsecase.DeactivateAPIKey(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "key deactivated"})
}
