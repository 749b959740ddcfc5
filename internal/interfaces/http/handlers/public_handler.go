package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"talenthub.backend/internal/domain/entities"
	"talenthub.backend/internal/domain/repositories"
	"talenthub.backend/internal/interfaces/http/response"
	"talenthub.backend/pkg/logger"
	"talenthub.backend/pkg/redis"
	"talenthub.backend/pkg/utils"
)

// PublicHandler serves the unauthenticated read endpoints. Listings are
// cached in Redis keyed by the raw query string; any admin write to the
// same entity drops the cached variants.
type PublicHandler struct {
	jobRepo       repositories.JobRepository
	candidateRepo repositories.CandidateRepository
	cache         *redis.ListCache
}

// NewPublicHandler creates a new public handler
func NewPublicHandler(jobRepo repositories.JobRepository, candidateRepo repositories.CandidateRepository, cache *redis.ListCache) *PublicHandler {
	return &PublicHandler{jobRepo: jobRepo, candidateRepo: candidateRepo, cache: cache}
}

func cacheVariant(c *gin.Context) string {
	if raw := c.Request.URL.RawQuery; raw != "" {
		return raw
	}
	return "all"
}

func (h *PublicHandler) serveCached(c *gin.Context, entity string) bool {
	if h.cache == nil {
		return false
	}
	payload, err := h.cache.Get(c.Request.Context(), entity, cacheVariant(c))
	if err != nil {
		if err != redis.ErrCacheMiss {
			logger.Warn(c.Request.Context(), "list cache read failed",
				zap.String("entity", entity), zap.Error(err))
		}
		return false
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
	return true
}

func (h *PublicHandler) storeCached(c *gin.Context, entity string, body interface{}) {
	if h.cache == nil {
		return
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return
	}
	if err := h.cache.Set(c.Request.Context(), entity, cacheVariant(c), payload); err != nil {
		logger.Warn(c.Request.Context(), "list cache write failed",
			zap.String("entity", entity), zap.Error(err))
	}
}

// ListJobs lists open positions
// GET /api/v1/jobs
func (h *PublicHandler) ListJobs(c *gin.Context) {
	if h.serveCached(c, "jobs") {
		return
	}

	filter := repositories.JobFilter{
		Search:   strQuery(c, "q"),
		Featured: boolQuery(c, "featured"),
	}
	if v := c.Query("category"); v != "" {
		cat := entities.JobCategory(v)
		filter.Category = &cat
	}

	params := pagination(c)
	jobs, total, err := h.jobRepo.List(c.Request.Context(), filter, params)
	if err != nil {
		response.Error(c, err)
		return
	}
	if jobs == nil {
		jobs = []*entities.Job{}
	}

	body := gin.H{"jobs": jobs, "meta": utils.CalculateMeta(total, params.Page, params.Limit)}
	h.storeCached(c, "jobs", body)
	response.Success(c, http.StatusOK, body)
}

// publicCandidate is the talent-pool view shown without authentication.
// Real names never leave the server for anonymous profiles; social links
// are withheld too since they would defeat the alias.
type publicCandidate struct {
	ID           string   `json:"id"`
	DisplayName  string   `json:"displayName"`
	Title        string   `json:"title"`
	Location     string   `json:"location"`
	Summary      string   `json:"summary"`
	Skills       []string `json:"skills"`
	Experience   string   `json:"experience"`
	Availability string   `json:"availability"`
	LinkedIn     string   `json:"linkedin,omitempty"`
	GitHub       string   `json:"github,omitempty"`
	Twitter      string   `json:"twitter,omitempty"`
	Featured     bool     `json:"featured"`
}

func toPublicCandidate(c *entities.Candidate) publicCandidate {
	pub := publicCandidate{
		ID:           c.ID,
		DisplayName:  c.DisplayName(),
		Title:        c.Title,
		Location:     c.Location,
		Summary:      c.Summary,
		Skills:       c.Skills,
		Experience:   c.Experience,
		Availability: string(c.Availability),
		Featured:     c.Featured,
	}
	if c.IsPublic {
		pub.LinkedIn = c.LinkedIn.String
		pub.GitHub = c.GitHub.String
		pub.Twitter = c.Twitter.String
	}
	return pub
}

// ListCandidates lists the talent pool with display names resolved
// GET /api/v1/candidates
func (h *PublicHandler) ListCandidates(c *gin.Context) {
	if h.serveCached(c, "candidates") {
		return
	}

	filter := repositories.CandidateFilter{
		Search:   strQuery(c, "q"),
		Featured: boolQuery(c, "featured"),
	}
	if v := c.Query("availability"); v != "" {
		a := entities.Availability(v)
		filter.Availability = &a
	}

	params := pagination(c)
	candidates, total, err := h.candidateRepo.List(c.Request.Context(), filter, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	view := make([]publicCandidate, 0, len(candidates))
	for _, cand := range candidates {
		view = append(view, toPublicCandidate(cand))
	}

	body := gin.H{"candidates": view, "meta": utils.CalculateMeta(total, params.Page, params.Limit)}
	h.storeCached(c, "candidates", body)
	response.Success(c, http.StatusOK, body)
}
