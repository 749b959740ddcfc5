package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"talenthub.backend/internal/domain/entities"
	domainerrors "talenthub.backend/internal/domain/errors"
	"talenthub.backend/internal/domain/repositories"
	"talenthub.backend/internal/infrastructure/models"
	"talenthub.backend/pkg/utils"
)

// curatedLinkRepo implements repositories.CuratedLinkRepository
type curatedLinkRepo struct {
	db *gorm.DB
}

// NewCuratedLinkRepository creates a new curated link repository
func NewCuratedLinkRepository(db *gorm.DB) repositories.CuratedLinkRepository {
	return &curatedLinkRepo{db: db}
}

func (r *curatedLinkRepo) GetByID(ctx context.Context, id string) (*entities.CuratedLink, error) {
	var m models.CuratedLink
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *curatedLinkRepo) List(ctx context.Context, filter repositories.NewsFilter, pagination utils.PaginationParams) ([]*entities.CuratedLink, int64, error) {
	var ms []models.CuratedLink
	var totalCount int64

	query := r.db.WithContext(ctx).Model(&models.CuratedLink{})

	if filter.Search != nil && *filter.Search != "" {
		term := searchTerm(*filter.Search)
		query = query.Where("lower(title) LIKE ? OR lower(source) LIKE ?", term, term)
	}
	if len(filter.Categories) > 0 {
		query = query.Where("category IN ?", filter.Categories)
	}
	if filter.Featured != nil {
		query = query.Where("featured = ?", *filter.Featured)
	}

	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	order := "published_at DESC"
	if filter.OldestFirst {
		order = "published_at ASC"
	}
	query = query.Order(order)
	if pagination.Limit > 0 {
		query = query.Limit(pagination.Limit).Offset(pagination.CalculateOffset())
	}

	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	links := make([]*entities.CuratedLink, 0, len(ms))
	for i := range ms {
		links = append(links, r.toEntity(&ms[i]))
	}
	return links, totalCount, nil
}

func (r *curatedLinkRepo) Create(ctx context.Context, link *entities.CuratedLink) error {
	m := &models.CuratedLink{
		ID:          link.ID,
		Title:       link.Title,
		URL:         link.URL,
		Source:      link.Source,
		PublishedAt: link.PublishedAt,
		Category:    link.Category,
		Featured:    link.Featured,
		CreatedAt:   link.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateCreateErr(err)
	}
	return nil
}

func (r *curatedLinkRepo) Update(ctx context.Context, link *entities.CuratedLink) error {
	updates := map[string]interface{}{
		"title":        link.Title,
		"url":          link.URL,
		"source":       link.Source,
		"published_at": link.PublishedAt,
		"category":     link.Category,
		"featured":     link.Featured,
	}

	result := r.db.WithContext(ctx).Model(&models.CuratedLink{}).Where("id = ?", link.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *curatedLinkRepo) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.CuratedLink{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *curatedLinkRepo) DeleteByIDPrefix(ctx context.Context, prefix string) (int64, error) {
	result := r.db.WithContext(ctx).Unscoped().Where("id LIKE ?", prefix+"%").Delete(&models.CuratedLink{})
	return result.RowsAffected, result.Error
}

func (r *curatedLinkRepo) toEntity(m *models.CuratedLink) *entities.CuratedLink {
	return &entities.CuratedLink{
		ID:          m.ID,
		Title:       m.Title,
		URL:         m.URL,
		Source:      m.Source,
		PublishedAt: m.PublishedAt,
		Category:    m.Category,
		Featured:    m.Featured,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
