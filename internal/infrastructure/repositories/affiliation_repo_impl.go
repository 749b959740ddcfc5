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

var affiliationUpdatableColumns = map[string]bool{
	"description": true,
	"logo_url":    true,
}

// affiliationRepo implements repositories.AffiliationRepository
type affiliationRepo struct {
	db *gorm.DB
}

// NewAffiliationRepository creates a new affiliation repository
func NewAffiliationRepository(db *gorm.DB) repositories.AffiliationRepository {
	return &affiliationRepo{db: db}
}

func (r *affiliationRepo) GetByID(ctx context.Context, id string) (*entities.Affiliation, error) {
	var m models.Affiliation
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *affiliationRepo) List(ctx context.Context, pagination utils.PaginationParams) ([]*entities.Affiliation, int64, error) {
	var ms []models.Affiliation
	var totalCount int64

	query := r.db.WithContext(ctx).Model(&models.Affiliation{})
	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("begin_date DESC, title ASC")
	if pagination.Limit > 0 {
		query = query.Limit(pagination.Limit).Offset(pagination.CalculateOffset())
	}

	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	affiliations := make([]*entities.Affiliation, 0, len(ms))
	for i := range ms {
		affiliations = append(affiliations, r.toEntity(&ms[i]))
	}
	return affiliations, totalCount, nil
}

func (r *affiliationRepo) Create(ctx context.Context, aff *entities.Affiliation) error {
	m := &models.Affiliation{
		ID:          aff.ID,
		Title:       aff.Title,
		Role:        aff.Role,
		BeginDate:   aff.BeginDate,
		EndDate:     aff.EndDate,
		Description: aff.Description,
		LogoURL:     aff.LogoURL,
		CreatedAt:   aff.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateCreateErr(err)
	}
	return nil
}

func (r *affiliationRepo) Update(ctx context.Context, aff *entities.Affiliation) error {
	updates := map[string]interface{}{
		"title":       aff.Title,
		"role":        aff.Role,
		"begin_date":  aff.BeginDate,
		"end_date":    aff.EndDate,
		"description": aff.Description,
		"logo_url":    aff.LogoURL,
	}

	result := r.db.WithContext(ctx).Model(&models.Affiliation{}).Where("id = ?", aff.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *affiliationRepo) UpdateField(ctx context.Context, id, field, value string) error {
	if !affiliationUpdatableColumns[field] {
		return domainerrors.ErrInvalidInput
	}
	result := r.db.WithContext(ctx).Model(&models.Affiliation{}).Where("id = ?", id).Update(field, value)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *affiliationRepo) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Affiliation{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *affiliationRepo) DeleteByIDPrefix(ctx context.Context, prefix string) (int64, error) {
	result := r.db.WithContext(ctx).Unscoped().Where("id LIKE ?", prefix+"%").Delete(&models.Affiliation{})
	return result.RowsAffected, result.Error
}

func (r *affiliationRepo) ListImageRefs(ctx context.Context) ([]repositories.ImageRef, error) {
	var ms []models.Affiliation
	if err := r.db.WithContext(ctx).Select("id", "logo_url").Where("logo_url != ''").Find(&ms).Error; err != nil {
		return nil, err
	}
	refs := make([]repositories.ImageRef, 0, len(ms))
	for i := range ms {
		refs = append(refs, repositories.ImageRef{ID: ms[i].ID, Field: "logo_url", Value: ms[i].LogoURL})
	}
	return refs, nil
}

func (r *affiliationRepo) toEntity(m *models.Affiliation) *entities.Affiliation {
	return &entities.Affiliation{
		ID:          m.ID,
		Title:       m.Title,
		Role:        m.Role,
		BeginDate:   m.BeginDate,
		EndDate:     m.EndDate,
		Description: m.Description,
		LogoURL:     m.LogoURL,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
