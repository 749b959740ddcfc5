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

var announcementUpdatableColumns = map[string]bool{
	"company_logo": true,
}

// announcementRepo implements repositories.AnnouncementRepository
type announcementRepo struct {
	db *gorm.DB
}

// NewAnnouncementRepository creates a new announcement repository
func NewAnnouncementRepository(db *gorm.DB) repositories.AnnouncementRepository {
	return &announcementRepo{db: db}
}

func (r *announcementRepo) GetByID(ctx context.Context, id string) (*entities.Announcement, error) {
	var m models.Announcement
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *announcementRepo) List(ctx context.Context, filter repositories.NewsFilter, pagination utils.PaginationParams) ([]*entities.Announcement, int64, error) {
	var ms []models.Announcement
	var totalCount int64

	query := r.db.WithContext(ctx).Model(&models.Announcement{})

	if filter.Search != nil && *filter.Search != "" {
		term := searchTerm(*filter.Search)
		query = query.Where("lower(title) LIKE ? OR lower(company) LIKE ?", term, term)
	}
	if len(filter.Platforms) > 0 {
		platforms := make([]string, 0, len(filter.Platforms))
		for _, p := range filter.Platforms {
			platforms = append(platforms, string(p))
		}
		query = query.Where("platform IN ?", platforms)
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

	announcements := make([]*entities.Announcement, 0, len(ms))
	for i := range ms {
		announcements = append(announcements, r.toEntity(&ms[i]))
	}
	return announcements, totalCount, nil
}

func (r *announcementRepo) Create(ctx context.Context, a *entities.Announcement) error {
	m := &models.Announcement{
		ID:          a.ID,
		Title:       a.Title,
		URL:         a.URL,
		Company:     a.Company,
		CompanyLogo: a.CompanyLogo.Ptr(),
		Platform:    string(a.Platform),
		PublishedAt: a.PublishedAt,
		Category:    a.Category,
		Featured:    a.Featured,
		CreatedAt:   a.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateCreateErr(err)
	}
	return nil
}

func (r *announcementRepo) Update(ctx context.Context, a *entities.Announcement) error {
	updates := map[string]interface{}{
		"title":        a.Title,
		"url":          a.URL,
		"company":      a.Company,
		"company_logo": a.CompanyLogo.Ptr(),
		"platform":     string(a.Platform),
		"published_at": a.PublishedAt,
		"category":     a.Category,
		"featured":     a.Featured,
	}

	result := r.db.WithContext(ctx).Model(&models.Announcement{}).Where("id = ?", a.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *announcementRepo) UpdateField(ctx context.Context, id, field, value string) error {
	if !announcementUpdatableColumns[field] {
		return domainerrors.ErrInvalidInput
	}
	result := r.db.WithContext(ctx).Model(&models.Announcement{}).Where("id = ?", id).Update(field, value)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *announcementRepo) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Announcement{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *announcementRepo) DeleteByIDPrefix(ctx context.Context, prefix string) (int64, error) {
	result := r.db.WithContext(ctx).Unscoped().Where("id LIKE ?", prefix+"%").Delete(&models.Announcement{})
	return result.RowsAffected, result.Error
}

func (r *announcementRepo) ListImageRefs(ctx context.Context) ([]repositories.ImageRef, error) {
	var ms []models.Announcement
	if err := r.db.WithContext(ctx).Select("id", "company_logo").Where("company_logo IS NOT NULL AND company_logo != ''").Find(&ms).Error; err != nil {
		return nil, err
	}
	refs := make([]repositories.ImageRef, 0, len(ms))
	for i := range ms {
		refs = append(refs, repositories.ImageRef{ID: ms[i].ID, Field: "company_logo", Value: *ms[i].CompanyLogo})
	}
	return refs, nil
}

func (r *announcementRepo) toEntity(m *models.Announcement) *entities.Announcement {
	return &entities.Announcement{
		ID:          m.ID,
		Title:       m.Title,
		URL:         m.URL,
		Company:     m.Company,
		CompanyLogo: null.StringFromPtr(m.CompanyLogo),
		Platform:    entities.Platform(m.Platform),
		PublishedAt: m.PublishedAt,
		Category:    m.Category,
		Featured:    m.Featured,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
