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

var investmentUpdatableColumns = map[string]bool{
	"description": true,
	"logo_url":    true,
	"status":      true,
}

// investmentRepo implements repositories.InvestmentRepository
type investmentRepo struct {
	db *gorm.DB
}

// NewInvestmentRepository creates a new investment repository
func NewInvestmentRepository(db *gorm.DB) repositories.InvestmentRepository {
	return &investmentRepo{db: db}
}

func (r *investmentRepo) GetByID(ctx context.Context, id string) (*entities.Investment, error) {
	var m models.Investment
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByTitle matches an investment by exact title. Job rows reference
// investments by company name only, so logo backfills go through here.
func (r *investmentRepo) GetByTitle(ctx context.Context, title string) (*entities.Investment, error) {
	var m models.Investment
	if err := r.db.WithContext(ctx).Where("title = ?", title).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *investmentRepo) List(ctx context.Context, filter repositories.InvestmentFilter, pagination utils.PaginationParams) ([]*entities.Investment, int64, error) {
	var ms []models.Investment
	var totalCount int64

	query := r.db.WithContext(ctx).Model(&models.Investment{})

	if filter.Search != nil && *filter.Search != "" {
		term := searchTerm(*filter.Search)
		query = query.Where("lower(title) LIKE ? OR lower(description) LIKE ?", term, term)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.Tier != nil {
		query = query.Where("tier = ?", *filter.Tier)
	}
	if filter.Featured != nil {
		query = query.Where("featured = ?", *filter.Featured)
	}

	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("tier ASC, title ASC")
	if pagination.Limit > 0 {
		query = query.Limit(pagination.Limit).Offset(pagination.CalculateOffset())
	}

	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	investments := make([]*entities.Investment, 0, len(ms))
	for i := range ms {
		investments = append(investments, r.toEntity(&ms[i]))
	}
	return investments, totalCount, nil
}

func (r *investmentRepo) Create(ctx context.Context, inv *entities.Investment) error {
	m := &models.Investment{
		ID:          inv.ID,
		Title:       inv.Title,
		Description: inv.Description,
		LogoURL:     inv.LogoURL,
		Tier:        inv.Tier,
		Featured:    inv.Featured,
		Status:      string(inv.Status),
		Categories:  encodeStringSlice(inv.Categories),
		Website:     inv.Website.Ptr(),
		Twitter:     inv.Twitter.Ptr(),
		Linkedin:    inv.LinkedIn.Ptr(),
		CreatedAt:   inv.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateCreateErr(err)
	}
	return nil
}

func (r *investmentRepo) Update(ctx context.Context, inv *entities.Investment) error {
	updates := map[string]interface{}{
		"title":       inv.Title,
		"description": inv.Description,
		"logo_url":    inv.LogoURL,
		"tier":        inv.Tier,
		"featured":    inv.Featured,
		"status":      string(inv.Status),
		"categories":  encodeStringSlice(inv.Categories),
		"website":     inv.Website.Ptr(),
		"twitter":     inv.Twitter.Ptr(),
		"linkedin":    inv.LinkedIn.Ptr(),
	}

	result := r.db.WithContext(ctx).Model(&models.Investment{}).Where("id = ?", inv.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *investmentRepo) UpdateField(ctx context.Context, id, field, value string) error {
	if !investmentUpdatableColumns[field] {
		return domainerrors.ErrInvalidInput
	}
	result := r.db.WithContext(ctx).Model(&models.Investment{}).Where("id = ?", id).Update(field, value)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *investmentRepo) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Investment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *investmentRepo) DeleteByIDPrefix(ctx context.Context, prefix string) (int64, error) {
	result := r.db.WithContext(ctx).Unscoped().Where("id LIKE ?", prefix+"%").Delete(&models.Investment{})
	return result.RowsAffected, result.Error
}

func (r *investmentRepo) ListImageRefs(ctx context.Context) ([]repositories.ImageRef, error) {
	var ms []models.Investment
	if err := r.db.WithContext(ctx).Select("id", "logo_url").Where("logo_url != ''").Find(&ms).Error; err != nil {
		return nil, err
	}
	refs := make([]repositories.ImageRef, 0, len(ms))
	for i := range ms {
		refs = append(refs, repositories.ImageRef{ID: ms[i].ID, Field: "logo_url", Value: ms[i].LogoURL})
	}
	return refs, nil
}

func (r *investmentRepo) toEntity(m *models.Investment) *entities.Investment {
	return &entities.Investment{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		LogoURL:     m.LogoURL,
		Tier:        m.Tier,
		Featured:    m.Featured,
		Status:      entities.InvestmentStatus(m.Status),
		Categories:  decodeStringSlice(m.Categories),
		Website:     null.StringFromPtr(m.Website),
		Twitter:     null.StringFromPtr(m.Twitter),
		LinkedIn:    null.StringFromPtr(m.Linkedin),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
