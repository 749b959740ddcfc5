package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/volatiletech/null/v8"

	"talenthub.backend/internal/domain/entities"
	domainerrors "talenthub.backend/internal/domain/errors"
	"talenthub.backend/internal/domain/repositories"
	"talenthub.backend/internal/interfaces/http/response"
	"talenthub.backend/pkg/redis"
	"talenthub.backend/pkg/utils"
)

// CandidateHandler handles talent pool endpoints
type CandidateHandler struct {
	candidateRepo repositories.CandidateRepository
	cache         *redis.ListCache
}

// NewCandidateHandler creates a new candidate handler
func NewCandidateHandler(candidateRepo repositories.CandidateRepository, cache *redis.ListCache) *CandidateHandler {
	return &CandidateHandler{candidateRepo: candidateRepo, cache: cache}
}

func (h *CandidateHandler) filter(c *gin.Context) repositories.CandidateFilter {
	filter := repositories.CandidateFilter{
		Search:   strQuery(c, "q"),
		Featured: boolQuery(c, "featured"),
	}
	if v := c.Query("availability"); v != "" {
		a := entities.Availability(v)
		filter.Availability = &a
	}
	return filter
}

// List lists candidates. The admin surface sees real names and aliases.
// GET /api/v1/admin/candidates
func (h *CandidateHandler) List(c *gin.Context) {
	params := pagination(c)
	candidates, total, err := h.candidateRepo.List(c.Request.Context(), h.filter(c), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	if candidates == nil {
		candidates = []*entities.Candidate{}
	}
	response.List(c, http.StatusOK, "candidates", candidates, utils.CalculateMeta(total, params.Page, params.Limit))
}

// Get returns one candidate by id
// GET /api/v1/admin/candidates/:id
func (h *CandidateHandler) Get(c *gin.Context) {
	candidate, err := h.candidateRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, candidate)
}

type candidateInput struct {
	Name           string   `json:"name" binding:"required"`
	AnonymousAlias string   `json:"anonymousAlias"`
	IsPublic       bool     `json:"isPublic"`
	Title          string   `json:"title" binding:"required"`
	Location       string   `json:"location"`
	Summary        string   `json:"summary"`
	Skills         []string `json:"skills"`
	Experience     string   `json:"experience"`
	Availability   string   `json:"availability" binding:"required,oneof=looking open not-looking"`
	LinkedIn       string   `json:"linkedin"`
	GitHub         string   `json:"github"`
	Twitter        string   `json:"twitter"`
	Featured       bool     `json:"featured"`
	CVURL          string   `json:"cvUrl"`
}

func (in candidateInput) toEntity(id string) *entities.Candidate {
	now := time.Now()
	return &entities.Candidate{
		ID:             id,
		Name:           in.Name,
		AnonymousAlias: in.AnonymousAlias,
		IsPublic:       in.IsPublic,
		Title:          in.Title,
		Location:       in.Location,
		Summary:        in.Summary,
		Skills:         in.Skills,
		Experience:     in.Experience,
		Availability:   entities.Availability(in.Availability),
		LinkedIn:       null.NewString(in.LinkedIn, in.LinkedIn != ""),
		GitHub:         null.NewString(in.GitHub, in.GitHub != ""),
		Twitter:        null.NewString(in.Twitter, in.Twitter != ""),
		Featured:       in.Featured,
		CVURL:          null.NewString(in.CVURL, in.CVURL != ""),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Create creates a candidate
// POST /api/v1/admin/candidates
func (h *CandidateHandler) Create(c *gin.Context) {
	var input candidateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	if !input.IsPublic && input.AnonymousAlias == "" {
		response.Error(c, domainerrors.BadRequest("non-public profiles need an anonymousAlias"))
		return
	}

	candidate := input.toEntity(utils.Slugify(input.Name))
	if err := h.candidateRepo.Create(c.Request.Context(), candidate); err != nil {
		response.Error(c, err)
		return
	}

	h.invalidate(c)
	response.Success(c, http.StatusCreated, candidate)
}

// Update replaces a candidate's mutable fields
// PUT /api/v1/admin/candidates/:id
func (h *CandidateHandler) Update(c *gin.Context) {
	var input candidateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	candidate := input.toEntity(c.Param("id"))
	if err := h.candidateRepo.Update(c.Request.Context(), candidate); err != nil {
		response.Error(c, err)
		return
	}

	h.invalidate(c)
	response.Success(c, http.StatusOK, candidate)
}

// Delete removes a candidate
// DELETE /api/v1/admin/candidates/:id
func (h *CandidateHandler) Delete(c *gin.Context) {
	if err := h.candidateRepo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	h.invalidate(c)
	response.Success(c, http.StatusOK, gin.H{"message": "candidate deleted"})
}

func (h *CandidateHandler) invalidate(c *gin.Context) {
	if h.cache != nil {
		_ = h.cache.Invalidate(c.Request.Context(), "candidates")
	}
}
