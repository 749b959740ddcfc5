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

var candidateUpdatableColumns = map[string]bool{
	"summary": true,
	"cv_url":  true,
}

// candidateRepo implements repositories.CandidateRepository
type candidateRepo struct {
	db *gorm.DB
}

// NewCandidateRepository creates a new candidate repository
func NewCandidateRepository(db *gorm.DB) repositories.CandidateRepository {
	return &candidateRepo{db: db}
}

func (r *candidateRepo) GetByID(ctx context.Context, id string) (*entities.Candidate, error) {
	var m models.Candidate
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *candidateRepo) List(ctx context.Context, filter repositories.CandidateFilter, pagination utils.PaginationParams) ([]*entities.Candidate, int64, error) {
	var ms []models.Candidate
	var totalCount int64

	query := r.db.WithContext(ctx).Model(&models.Candidate{})

	if filter.Search != nil && *filter.Search != "" {
		term := searchTerm(*filter.Search)
		query = query.Where("lower(title) LIKE ? OR lower(location) LIKE ? OR lower(summary) LIKE ?", term, term, term)
	}
	if filter.Availability != nil {
		query = query.Where("availability = ?", string(*filter.Availability))
	}
	if filter.Featured != nil {
		query = query.Where("featured = ?", *filter.Featured)
	}

	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("featured DESC, created_at DESC")
	if pagination.Limit > 0 {
		query = query.Limit(pagination.Limit).Offset(pagination.CalculateOffset())
	}

	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	candidates := make([]*entities.Candidate, 0, len(ms))
	for i := range ms {
		candidates = append(candidates, r.toEntity(&ms[i]))
	}
	return candidates, totalCount, nil
}

func (r *candidateRepo) Create(ctx context.Context, candidate *entities.Candidate) error {
	m := &models.Candidate{
		ID:             candidate.ID,
		Name:           candidate.Name,
		AnonymousAlias: candidate.AnonymousAlias,
		IsPublic:       candidate.IsPublic,
		Title:          candidate.Title,
		Location:       candidate.Location,
		Summary:        candidate.Summary,
		Skills:         encodeStringSlice(candidate.Skills),
		Experience:     candidate.Experience,
		Availability:   string(candidate.Availability),
		Linkedin:       candidate.LinkedIn.Ptr(),
		Github:         candidate.GitHub.Ptr(),
		Twitter:        candidate.Twitter.Ptr(),
		Featured:       candidate.Featured,
		CvURL:          candidate.CVURL.Ptr(),
		CreatedAt:      candidate.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateCreateErr(err)
	}
	return nil
}

func (r *candidateRepo) Update(ctx context.Context, candidate *entities.Candidate) error {
	updates := map[string]interface{}{
		"name":            candidate.Name,
		"anonymous_alias": candidate.AnonymousAlias,
		"is_public":       candidate.IsPublic,
		"title":           candidate.Title,
		"location":        candidate.Location,
		"summary":         candidate.Summary,
		"skills":          encodeStringSlice(candidate.Skills),
		"experience":      candidate.Experience,
		"availability":    string(candidate.Availability),
		"linkedin":        candidate.LinkedIn.Ptr(),
		"github":          candidate.GitHub.Ptr(),
		"twitter":         candidate.Twitter.Ptr(),
		"featured":        candidate.Featured,
		"cv_url":          candidate.CVURL.Ptr(),
	}

	result := r.db.WithContext(ctx).Model(&models.Candidate{}).Where("id = ?", candidate.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *candidateRepo) UpdateField(ctx context.Context, id, field, value string) error {
	if !candidateUpdatableColumns[field] {
		return domainerrors.ErrInvalidInput
	}
	result := r.db.WithContext(ctx).Model(&models.Candidate{}).Where("id = ?", id).Update(field, value)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *candidateRepo) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Candidate{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *candidateRepo) DeleteByIDPrefix(ctx context.Context, prefix string) (int64, error) {
	result := r.db.WithContext(ctx).Unscoped().Where("id LIKE ?", prefix+"%").Delete(&models.Candidate{})
	return result.RowsAffected, result.Error
}

func (r *candidateRepo) toEntity(m *models.Candidate) *entities.Candidate {
	return &entities.Candidate{
		ID:             m.ID,
		Name:           m.Name,
		AnonymousAlias: m.AnonymousAlias,
		IsPublic:       m.IsPublic,
		Title:          m.Title,
		Location:       m.Location,
		Summary:        m.Summary,
		Skills:         decodeStringSlice(m.Skills),
		Experience:     m.Experience,
		Availability:   entities.Availability(m.Availability),
		LinkedIn:       null.StringFromPtr(m.Linkedin),
		GitHub:         null.StringFromPtr(m.Github),
		Twitter:        null.StringFromPtr(m.Twitter),
		Featured:       m.Featured,
		CVURL:          null.StringFromPtr(m.CvURL),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
