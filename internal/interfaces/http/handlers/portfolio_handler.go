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
	"talenthub.backend/pkg/utils"
)

// InvestmentHandler handles portfolio investment endpoints
type InvestmentHandler struct {
	invRepo repositories.InvestmentRepository
}

// NewInvestmentHandler creates a new investment handler
func NewInvestmentHandler(invRepo repositories.InvestmentRepository) *InvestmentHandler {
	return &InvestmentHandler{invRepo: invRepo}
}

func (h *InvestmentHandler) filter(c *gin.Context) repositories.InvestmentFilter {
	filter := repositories.InvestmentFilter{
		Search:   strQuery(c, "q"),
		Tier:     strQuery(c, "tier"),
		Featured: boolQuery(c, "featured"),
	}
	if v := c.Query("status"); v != "" {
		s := entities.InvestmentStatus(v)
		filter.Status = &s
	}
	return filter
}

// List lists investments
// GET /api/v1/admin/investments
func (h *InvestmentHandler) List(c *gin.Context) {
	params := pagination(c)
	items, total, err := h.invRepo.List(c.Request.Context(), h.filter(c), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	if items == nil {
		items = []*entities.Investment{}
	}
	response.List(c, http.StatusOK, "investments", items, utils.CalculateMeta(total, params.Page, params.Limit))
}

// Get returns one investment by id
// GET /api/v1/admin/investments/:id
func (h *InvestmentHandler) Get(c *gin.Context) {
	inv, err := h.invRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, inv)
}

type investmentInput struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	LogoURL     string   `json:"logoUrl"`
	Tier        string   `json:"tier" binding:"required,oneof=1 2 3 4"`
	Featured    bool     `json:"featured"`
	Status      string   `json:"status" binding:"required,oneof=active inactive acquired"`
	Categories  []string `json:"categories"`
	Website     string   `json:"website"`
	Twitter     string   `json:"twitter"`
	LinkedIn    string   `json:"linkedin"`
}

func (in investmentInput) toEntity(id string) *entities.Investment {
	now := time.Now()
	return &entities.Investment{
		ID:          id,
		Title:       in.Title,
		Description: in.Description,
		LogoURL:     in.LogoURL,
		Tier:        in.Tier,
		Featured:    in.Featured,
		Status:      entities.InvestmentStatus(in.Status),
		Categories:  in.Categories,
		Website:     null.NewString(in.Website, in.Website != ""),
		Twitter:     null.NewString(in.Twitter, in.Twitter != ""),
		LinkedIn:    null.NewString(in.LinkedIn, in.LinkedIn != ""),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Create creates an investment
// POST /api/v1/admin/investments
func (h *InvestmentHandler) Create(c *gin.Context) {
	var input investmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	inv := input.toEntity(utils.Slugify(input.Title))
	if err := h.invRepo.Create(c.Request.Context(), inv); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, inv)
}

// Update replaces an investment's mutable fields
// PUT /api/v1/admin/investments/:id
func (h *InvestmentHandler) Update(c *gin.Context) {
	var input investmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	inv := input.toEntity(c.Param("id"))
	if err := h.invRepo.Update(c.Request.Context(), inv); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, inv)
}

// Delete removes an investment
// DELETE /api/v1/admin/investments/:id
func (h *InvestmentHandler) Delete(c *gin.Context) {
	if err := h.invRepo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "investment deleted"})
}

// AffiliationHandler handles affiliation endpoints
type AffiliationHandler struct {
	affRepo repositories.AffiliationRepository
}

// NewAffiliationHandler creates a new affiliation handler
func NewAffiliationHandler(affRepo repositories.AffiliationRepository) *AffiliationHandler {
	return &AffiliationHandler{affRepo: affRepo}
}

// List lists affiliations
// GET /api/v1/admin/affiliations
func (h *AffiliationHandler) List(c *gin.Context) {
	params := pagination(c)
	items, total, err := h.affRepo.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	if items == nil {
		items = []*entities.Affiliation{}
	}
	response.List(c, http.StatusOK, "affiliations", items, utils.CalculateMeta(total, params.Page, params.Limit))
}

// Get returns one affiliation by id
// GET /api/v1/admin/affiliations/:id
func (h *AffiliationHandler) Get(c *gin.Context) {
	aff, err := h.affRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, aff)
}

type affiliationInput struct {
	Title       string `json:"title" binding:"required"`
	Role        string `json:"role" binding:"required"`
	BeginDate   string `json:"beginDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
	LogoURL     string `json:"logoUrl"`
}

func (in affiliationInput) toEntity(id string) *entities.Affiliation {
	now := time.Now()
	return &entities.Affiliation{
		ID:          id,
		Title:       in.Title,
		Role:        in.Role,
		BeginDate:   in.BeginDate,
		EndDate:     in.EndDate,
		Description: in.Description,
		LogoURL:     in.LogoURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Create creates an affiliation
// POST /api/v1/admin/affiliations
func (h *AffiliationHandler) Create(c *gin.Context) {
	var input affiliationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	aff := input.toEntity(utils.Slugify(input.Title))
	if err := h.affRepo.Create(c.Request.Context(), aff); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, aff)
}

// Update replaces an affiliation's mutable fields
// PUT /api/v1/admin/affiliations/:id
func (h *AffiliationHandler) Update(c *gin.Context) {
	var input affiliationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	aff := input.toEntity(c.Param("id"))
	if err := h.affRepo.Update(c.Request.Context(), aff); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, aff)
}

// Delete removes an affiliation
// DELETE /api/v1/admin/affiliations/:id
func (h *AffiliationHandler) Delete(c *gin.Context) {
	if err := h.affRepo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "affiliation deleted"})
}
