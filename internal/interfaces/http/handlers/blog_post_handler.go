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

// BlogPostHandler handles blog post endpoints
type BlogPostHandler struct {
	postRepo repositories.BlogPostRepository
}

// NewBlogPostHandler creates a new blog post handler
func NewBlogPostHandler(postRepo repositories.BlogPostRepository) *BlogPostHandler {
	return &BlogPostHandler{postRepo: postRepo}
}

// List lists blog posts, drafts included on the admin surface
// GET /api/v1/admin/posts
func (h *BlogPostHandler) List(c *gin.Context) {
	params := pagination(c)
	filter := repositories.BlogPostFilter{
		Search:        strQuery(c, "q"),
		Featured:      boolQuery(c, "featured"),
		PublishedOnly: c.Query("published") == "true",
	}
	posts, total, err := h.postRepo.List(c.Request.Context(), filter, params)
	if err != nil {
		response.Error(c, err)
		return
	}
	if posts == nil {
		posts = []*entities.BlogPost{}
	}
	response.List(c, http.StatusOK, "posts", posts, utils.CalculateMeta(total, params.Page, params.Limit))
}

// Get returns one blog post by id
// GET /api/v1/admin/posts/:id
func (h *BlogPostHandler) Get(c *gin.Context) {
	post, err := h.postRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, post)
}

type blogPostInput struct {
	Title       string     `json:"title" binding:"required"`
	Summary     string     `json:"summary"`
	Body        string     `json:"body" binding:"required"`
	CoverImage  string     `json:"coverImage"`
	PublishedAt *time.Time `json:"publishedAt"`
	Featured    bool       `json:"featured"`
}

func (in blogPostInput) toEntity(id string) *entities.BlogPost {
	now := time.Now()
	post := &entities.BlogPost{
		ID:         id,
		Title:      in.Title,
		Summary:    in.Summary,
		Body:       in.Body,
		CoverImage: null.NewString(in.CoverImage, in.CoverImage != ""),
		Featured:   in.Featured,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if in.PublishedAt != nil {
		post.PublishedAt = null.TimeFrom(*in.PublishedAt)
	}
	return post
}

// Create creates a blog post; a missing publishedAt leaves it a draft
// POST /api/v1/admin/posts
func (h *BlogPostHandler) Create(c *gin.Context) {
	var input blogPostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	post := input.toEntity(utils.Slugify(input.Title))
	if err := h.postRepo.Create(c.Request.Context(), post); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, post)
}

// Update replaces a blog post's mutable fields
// PUT /api/v1/admin/posts/:id
func (h *BlogPostHandler) Update(c *gin.Context) {
	var input blogPostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	post := input.toEntity(c.Param("id"))
	if err := h.postRepo.Update(c.Request.Context(), post); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, post)
}

// Delete removes a blog post
// DELETE /api/v1/admin/posts/:id
func (h *BlogPostHandler) Delete(c *gin.Context) {
	if err := h.postRepo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "post deleted"})
}
