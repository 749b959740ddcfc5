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

// JobHandler handles job catalog endpoints
type JobHandler struct {
	jobRepo repositories.JobRepository
	cache   *redis.ListCache
}

// NewJobHandler creates a new job handler
func NewJobHandler(jobRepo repositories.JobRepository, cache *redis.ListCache) *JobHandler {
	return &JobHandler{jobRepo: jobRepo, cache: cache}
}

func (h *JobHandler) filter(c *gin.Context) repositories.JobFilter {
	filter := repositories.JobFilter{
		Search:   strQuery(c, "q"),
		Featured: boolQuery(c, "featured"),
	}
	if v := c.Query("category"); v != "" {
		cat := entities.JobCategory(v)
		filter.Category = &cat
	}
	return filter
}

// List lists jobs with optional search/category/featured filters
// GET /api/v1/admin/jobs
func (h *JobHandler) List(c *gin.Context) {
	params := pagination(c)
	jobs, total, err := h.jobRepo.List(c.Request.Context(), h.filter(c), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	if jobs == nil {
		jobs = []*entities.Job{}
	}
	response.List(c, http.StatusOK, "jobs", jobs, utils.CalculateMeta(total, params.Page, params.Limit))
}

// Get returns one job by id
// GET /api/v1/admin/jobs/:id
func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.jobRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, job)
}

type jobInput struct {
	Title           string   `json:"title" binding:"required"`
	Company         string   `json:"company" binding:"required"`
	CompanyLogo     string   `json:"companyLogo"`
	CompanyWebsite  string   `json:"companyWebsite"`
	CompanyTwitter  string   `json:"companyTwitter"`
	CompanyLinkedIn string   `json:"companyLinkedin"`
	Link            string   `json:"link" binding:"required"`
	Location        string   `json:"location" binding:"required"`
	RemoteMode      string   `json:"remoteMode" binding:"required,oneof=onsite hybrid remote"`
	EmploymentType  string   `json:"employmentType" binding:"required"`
	Salary          string   `json:"salary"`
	Department      string   `json:"department"`
	Tags            []string `json:"tags"`
	Category        string   `json:"category" binding:"required,oneof=portfolio network"`
	Featured        bool     `json:"featured"`
	Description     string   `json:"description"`
}

func (in jobInput) toEntity(id string) *entities.Job {
	now := time.Now()
	return &entities.Job{
		ID:              id,
		Title:           in.Title,
		Company:         in.Company,
		CompanyLogo:     null.NewString(in.CompanyLogo, in.CompanyLogo != ""),
		CompanyWebsite:  null.NewString(in.CompanyWebsite, in.CompanyWebsite != ""),
		CompanyTwitter:  null.NewString(in.CompanyTwitter, in.CompanyTwitter != ""),
		CompanyLinkedIn: null.NewString(in.CompanyLinkedIn, in.CompanyLinkedIn != ""),
		Link:            in.Link,
		Location:        in.Location,
		RemoteMode:      entities.RemoteMode(in.RemoteMode),
		EmploymentType:  in.EmploymentType,
		Salary:          null.NewString(in.Salary, in.Salary != ""),
		Department:      null.NewString(in.Department, in.Department != ""),
		Tags:            in.Tags,
		Category:        entities.JobCategory(in.Category),
		Featured:        in.Featured,
		Description:     in.Description,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// Create creates a job; the id is a slug of the title
// POST /api/v1/admin/jobs
func (h *JobHandler) Create(c *gin.Context) {
	var input jobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	job := input.toEntity(utils.Slugify(input.Company + " " + input.Title))
	if err := h.jobRepo.Create(c.Request.Context(), job); err != nil {
		response.Error(c, err)
		return
	}

	h.invalidate(c)
	response.Success(c, http.StatusCreated, job)
}

// Update replaces a job's mutable fields
// PUT /api/v1/admin/jobs/:id
func (h *JobHandler) Update(c *gin.Context) {
	var input jobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	job := input.toEntity(c.Param("id"))
	if err := h.jobRepo.Update(c.Request.Context(), job); err != nil {
		response.Error(c, err)
		return
	}

	h.invalidate(c)
	response.Success(c, http.StatusOK, job)
}

// Delete removes a job
// DELETE /api/v1/admin/jobs/:id
func (h *JobHandler) Delete(c *gin.Context) {
	if err := h.jobRepo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	h.invalidate(c)
	response.Success(c, http.StatusOK, gin.H{"message": "job deleted"})
}

func (h *JobHandler) invalidate(c *gin.Context) {
	if h.cache != nil {
		_ = h.cache.Invalidate(c.Request.Context(), "jobs")
	}
}
