package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"talenthub.backend/internal/interfaces/http/response"
	"talenthub.backend/internal/refdata"
)

// MetaHandler serves static reference data
type MetaHandler struct{}

// NewMetaHandler creates a new meta handler
func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

// JobTags returns the controlled tag vocabulary the admin UI offers
// GET /api/v1/meta/job-tags
func (h *MetaHandler) JobTags(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"tags": refdata.JobTags})
}
