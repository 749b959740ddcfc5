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

// newsFilter reads the shared curated-link/announcement query params:
// free-text search, category and platform multi-select, publish-date
// sort (newest first unless sort=oldest).
func newsFilter(c *gin.Context) repositories.NewsFilter {
	filter := repositories.NewsFilter{
		Search:      strQuery(c, "q"),
		Categories:  c.QueryArray("category"),
		Featured:    boolQuery(c, "featured"),
		OldestFirst: c.Query("sort") == "oldest",
	}
	for _, p := range c.QueryArray("platform") {
		filter.Platforms = append(filter.Platforms, entities.Platform(p))
	}
	return filter
}

// CuratedLinkHandler handles curated link endpoints
type CuratedLinkHandler struct {
	linkRepo repositories.CuratedLinkRepository
}

// NewCuratedLinkHandler creates a new curated link handler
func NewCuratedLinkHandler(linkRepo repositories.CuratedLinkRepository) *CuratedLinkHandler {
	return &CuratedLinkHandler{linkRepo: linkRepo}
}

// List lists curated links
// GET /api/v1/admin/links
func (h *CuratedLinkHandler) List(c *gin.Context) {
	params := pagination(c)
	links, total, err := h.linkRepo.List(c.Request.Context(), newsFilter(c), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	if links == nil {
		links = []*entities.CuratedLink{}
	}
	response.List(c, http.StatusOK, "links", links, utils.CalculateMeta(total, params.Page, params.Limit))
}

// Get returns one curated link by id
// GET /api/v1/admin/links/:id
func (h *CuratedLinkHandler) Get(c *gin.Context) {
	link, err := h.linkRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, link)
}

type curatedLinkInput struct {
	Title       string    `json:"title" binding:"required"`
	URL         string    `json:"url" binding:"required,url"`
	Source      string    `json:"source" binding:"required"`
	PublishedAt time.Time `json:"publishedAt" binding:"required"`
	Category    string    `json:"category"`
	Featured    bool      `json:"featured"`
}

func (in curatedLinkInput) toEntity(id string) *entities.CuratedLink {
	now := time.Now()
	return &entities.CuratedLink{
		ID:          id,
		Title:       in.Title,
		URL:         in.URL,
		Source:      in.Source,
		PublishedAt: in.PublishedAt,
		Category:    in.Category,
		Featured:    in.Featured,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Create creates a curated link
// POST /api/v1/admin/links
func (h *CuratedLinkHandler) Create(c *gin.Context) {
	var input curatedLinkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	link := input.toEntity(utils.Slugify(input.Title))
	if err := h.linkRepo.Create(c.Request.Context(), link); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, link)
}

// Update replaces a curated link's mutable fields
// PUT /api/v1/admin/links/:id
func (h *CuratedLinkHandler) Update(c *gin.Context) {
	var input curatedLinkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	link := input.toEntity(c.Param("id"))
	if err := h.linkRepo.Update(c.Request.Context(), link); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, link)
}

// Delete removes a curated link
// DELETE /api/v1/admin/links/:id
func (h *CuratedLinkHandler) Delete(c *gin.Context) {
	if err := h.linkRepo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "link deleted"})
}

// AnnouncementHandler handles announcement endpoints
type AnnouncementHandler struct {
	annRepo repositories.AnnouncementRepository
}

// NewAnnouncementHandler creates a new announcement handler
func NewAnnouncementHandler(annRepo repositories.AnnouncementRepository) *AnnouncementHandler {
	return &AnnouncementHandler{annRepo: annRepo}
}

// List lists announcements
// GET /api/v1/admin/announcements
func (h *AnnouncementHandler) List(c *gin.Context) {
	params := pagination(c)
	items, total, err := h.annRepo.List(c.Request.Context(), newsFilter(c), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	if items == nil {
		items = []*entities.Announcement{}
	}
	response.List(c, http.StatusOK, "announcements", items, utils.CalculateMeta(total, params.Page, params.Limit))
}

// Get returns one announcement by id
// GET /api/v1/admin/announcements/:id
func (h *AnnouncementHandler) Get(c *gin.Context) {
	a, err := h.annRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, a)
}

type announcementInput struct {
	Title       string    `json:"title" binding:"required"`
	URL         string    `json:"url" binding:"required,url"`
	Company     string    `json:"company" binding:"required"`
	CompanyLogo string    `json:"companyLogo"`
	Platform    string    `json:"platform" binding:"required,oneof=x blog discord github other"`
	PublishedAt time.Time `json:"publishedAt" binding:"required"`
	Category    string    `json:"category"`
	Featured    bool      `json:"featured"`
}

func (in announcementInput) toEntity(id string) *entities.Announcement {
	now := time.Now()
	return &entities.Announcement{
		ID:          id,
		Title:       in.Title,
		URL:         in.URL,
		Company:     in.Company,
		CompanyLogo: null.NewString(in.CompanyLogo, in.CompanyLogo != ""),
		Platform:    entities.Platform(in.Platform),
		PublishedAt: in.PublishedAt,
		Category:    in.Category,
		Featured:    in.Featured,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Create creates an announcement
// POST /api/v1/admin/announcements
func (h *AnnouncementHandler) Create(c *gin.Context) {
	var input announcementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	a := input.toEntity(utils.Slugify(input.Company + " " + input.Title))
	if err := h.annRepo.Create(c.Request.Context(), a); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, a)
}

// Update replaces an announcement's mutable fields
// PUT /api/v1/admin/announcements/:id
func (h *AnnouncementHandler) Update(c *gin.Context) {
	var input announcementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	a := input.toEntity(c.Param("id"))
	if err := h.annRepo.Update(c.Request.Context(), a); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, a)
}

// Delete removes an announcement
// DELETE /api/v1/admin/announcements/:id
func (h *AnnouncementHandler) Delete(c *gin.Context) {
	if err := h.annRepo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "announcement deleted"})
}
