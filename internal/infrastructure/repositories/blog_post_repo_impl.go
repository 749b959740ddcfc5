package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/volatiletech/null/v8"
	"talenthub.backend/internal/domain/entities"
	domainerrors "talenthub.backend/internal/domain/errors"
	"talenthub.backend/internal/domain/repositories"
	"talenthub.backend/internal/infrastructure/models"
	"talenthub.backend/pkg/utils"
)

var blogPostUpdatableColumns = map[string]bool{
	"cover_image": true,
	"summary":     true,
}

// blogPostRepo implements repositories.BlogPostRepository
type blogPostRepo struct {
	db *gorm.DB
}

// NewBlogPostRepository creates a new blog post repository
func NewBlogPostRepository(db *gorm.DB) repositories.BlogPostRepository {
	return &blogPostRepo{db: db}
}

func (r *blogPostRepo) GetByID(ctx context.Context, id string) (*entities.BlogPost, error) {
	var m models.BlogPost
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *blogPostRepo) List(ctx context.Context, filter repositories.BlogPostFilter, pagination utils.PaginationParams) ([]*entities.BlogPost, int64, error) {
	var ms []models.BlogPost
	var totalCount int64

	query := r.db.WithContext(ctx).Model(&models.BlogPost{})

	if filter.Search != nil && *filter.Search != "" {
		term := searchTerm(*filter.Search)
		query = query.Where("lower(title) LIKE ? OR lower(summary) LIKE ?", term, term)
	}
	if filter.Featured != nil {
		query = query.Where("featured = ?", *filter.Featured)
	}
	if filter.PublishedOnly {
		query = query.Where("published_at IS NOT NULL")
	}

	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("published_at DESC")
	if pagination.Limit > 0 {
		query = query.Limit(pagination.Limit).Offset(pagination.CalculateOffset())
	}

	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	posts := make([]*entities.BlogPost, 0, len(ms))
	for i := range ms {
		posts = append(posts, r.toEntity(&ms[i]))
	}
	return posts, totalCount, nil
}

func (r *blogPostRepo) Create(ctx context.Context, post *entities.BlogPost) error {
	m := &models.BlogPost{
		ID:          post.ID,
		Title:       post.Title,
		Summary:     post.Summary,
		Body:        post.Body,
		CoverImage:  post.CoverImage.Ptr(),
		PublishedAt: post.PublishedAt.Ptr(),
		Featured:    post.Featured,
		CreatedAt:   post.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateCreateErr(err)
	}
	return nil
}

func (r *blogPostRepo) Update(ctx context.Context, post *entities.BlogPost) error {
	updates := map[string]interface{}{
		"title":        post.Title,
		"summary":      post.Summary,
		"body":         post.Body,
		"cover_image":  post.CoverImage.Ptr(),
		"published_at": post.PublishedAt.Ptr(),
		"featured":     post.Featured,
	}

	result := r.db.WithContext(ctx).Model(&models.BlogPost{}).Where("id = ?", post.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *blogPostRepo) UpdateField(ctx context.Context, id, field, value string) error {
	if !blogPostUpdatableColumns[field] {
		return domainerrors.ErrInvalidInput
	}
	result := r.db.WithContext(ctx).Model(&models.BlogPost{}).Where("id = ?", id).Update(field, value)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *blogPostRepo) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.BlogPost{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *blogPostRepo) DeleteByIDPrefix(ctx context.Context, prefix string) (int64, error) {
	result := r.db.WithContext(ctx).Unscoped().Where("id LIKE ?", prefix+"%").Delete(&models.BlogPost{})
	return result.RowsAffected, result.Error
}

func (r *blogPostRepo) ListImageRefs(ctx context.Context) ([]repositories.ImageRef, error) {
	var ms []models.BlogPost
	if err := r.db.WithContext(ctx).Select("id", "cover_image").Where("cover_image IS NOT NULL AND cover_image != ''").Find(&ms).Error; err != nil {
		return nil, err
	}
	refs := make([]repositories.ImageRef, 0, len(ms))
	for i := range ms {
		refs = append(refs, repositories.ImageRef{ID: ms[i].ID, Field: "cover_image", Value: *ms[i].CoverImage})
	}
	return refs, nil
}

func (r *blogPostRepo) toEntity(m *models.BlogPost) *entities.BlogPost {
	return &entities.BlogPost{
		ID:          m.ID,
		Title:       m.Title,
		Summary:     m.Summary,
		Body:        m.Body,
		CoverImage:  null.StringFromPtr(m.CoverImage),
		PublishedAt: null.TimeFromPtr(m.PublishedAt),
		Featured:    m.Featured,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
