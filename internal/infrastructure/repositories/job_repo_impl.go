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

// jobUpdatableColumns are the columns UpdateField may touch.
var jobUpdatableColumns = map[string]bool{
	"description":  true,
	"company_logo": true,
	"salary":       true,
}

// jobRepo implements repositories.JobRepository
type jobRepo struct {
	db *gorm.DB
}

// NewJobRepository creates a new job repository
func NewJobRepository(db *gorm.DB) repositories.JobRepository {
	return &jobRepo{db: db}
}

// GetByID gets a job by ID
func (r *jobRepo) GetByID(ctx context.Context, id string) (*entities.Job, error) {
	var m models.Job
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// List lists jobs matching the filter
func (r *jobRepo) List(ctx context.Context, filter repositories.JobFilter, pagination utils.PaginationParams) ([]*entities.Job, int64, error) {
	var ms []models.Job
	var totalCount int64

	query := r.db.WithContext(ctx).Model(&models.Job{})

	if filter.Search != nil && *filter.Search != "" {
		term := searchTerm(*filter.Search)
		query = query.Where("lower(title) LIKE ? OR lower(company) LIKE ? OR lower(location) LIKE ?", term, term, term)
	}
	if filter.Category != nil {
		query = query.Where("category = ?", string(*filter.Category))
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

	jobs := make([]*entities.Job, 0, len(ms))
	for i := range ms {
		jobs = append(jobs, r.toEntity(&ms[i]))
	}
	return jobs, totalCount, nil
}

// Create creates a new job
func (r *jobRepo) Create(ctx context.Context, job *entities.Job) error {
	m := r.toModel(job)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateCreateErr(err)
	}
	return nil
}

// Update updates every mutable column of a job
func (r *jobRepo) Update(ctx context.Context, job *entities.Job) error {
	updates := map[string]interface{}{
		"title":            job.Title,
		"company":          job.Company,
		"company_logo":     job.CompanyLogo.Ptr(),
		"company_website":  job.CompanyWebsite.Ptr(),
		"company_twitter":  job.CompanyTwitter.Ptr(),
		"company_linkedin": job.CompanyLinkedIn.Ptr(),
		"link":             job.Link,
		"location":         job.Location,
		"remote_mode":      string(job.RemoteMode),
		"employment_type":  job.EmploymentType,
		"salary":           job.Salary.Ptr(),
		"department":       job.Department.Ptr(),
		"tags":             encodeStringSlice(job.Tags),
		"category":         string(job.Category),
		"featured":         job.Featured,
		"description":      job.Description,
	}

	result := r.db.WithContext(ctx).Model(&models.Job{}).Where("id = ?", job.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpdateField updates one whitelisted column by primary key. Zero rows
// affected reports ErrNotFound so backfills can tally missing ids.
func (r *jobRepo) UpdateField(ctx context.Context, id, field, value string) error {
	if !jobUpdatableColumns[field] {
		return domainerrors.ErrInvalidInput
	}
	result := r.db.WithContext(ctx).Model(&models.Job{}).Where("id = ?", id).Update(field, value)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete deletes a job
func (r *jobRepo) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Job{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// DeleteByIDPrefix hard-deletes rows whose id starts with prefix.
// Used only by the test-fixture cleaner; hard delete so re-seeding the
// same ids does not collide with soft-deleted rows.
func (r *jobRepo) DeleteByIDPrefix(ctx context.Context, prefix string) (int64, error) {
	result := r.db.WithContext(ctx).Unscoped().Where("id LIKE ?", prefix+"%").Delete(&models.Job{})
	return result.RowsAffected, result.Error
}

// ListImageRefs enumerates jobs with a company logo set
func (r *jobRepo) ListImageRefs(ctx context.Context) ([]repositories.ImageRef, error) {
	var ms []models.Job
	if err := r.db.WithContext(ctx).Select("id", "company_logo").Where("company_logo IS NOT NULL AND company_logo != ''").Find(&ms).Error; err != nil {
		return nil, err
	}
	refs := make([]repositories.ImageRef, 0, len(ms))
	for i := range ms {
		refs = append(refs, repositories.ImageRef{ID: ms[i].ID, Field: "company_logo", Value: *ms[i].CompanyLogo})
	}
	return refs, nil
}

func (r *jobRepo) toModel(e *entities.Job) *models.Job {
	return &models.Job{
		ID:              e.ID,
		Title:           e.Title,
		Company:         e.Company,
		CompanyLogo:     e.CompanyLogo.Ptr(),
		CompanyWebsite:  e.CompanyWebsite.Ptr(),
		CompanyTwitter:  e.CompanyTwitter.Ptr(),
		CompanyLinkedin: e.CompanyLinkedIn.Ptr(),
		Link:            e.Link,
		Location:        e.Location,
		RemoteMode:      string(e.RemoteMode),
		EmploymentType:  e.EmploymentType,
		Salary:          e.Salary.Ptr(),
		Department:      e.Department.Ptr(),
		Tags:            encodeStringSlice(e.Tags),
		Category:        string(e.Category),
		Featured:        e.Featured,
		Description:     e.Description,
		CreatedAt:       e.CreatedAt,
	}
}

func (r *jobRepo) toEntity(m *models.Job) *entities.Job {
	return &entities.Job{
		ID:              m.ID,
		Title:           m.Title,
		Company:         m.Company,
		CompanyLogo:     null.StringFromPtr(m.CompanyLogo),
		CompanyWebsite:  null.StringFromPtr(m.CompanyWebsite),
		CompanyTwitter:  null.StringFromPtr(m.CompanyTwitter),
		CompanyLinkedIn: null.StringFromPtr(m.CompanyLinkedin),
		Link:            m.Link,
		Location:        m.Location,
		RemoteMode:      entities.RemoteMode(m.RemoteMode),
		EmploymentType:  m.EmploymentType,
		Salary:          null.StringFromPtr(m.Salary),
		Department:      null.StringFromPtr(m.Department),
		Tags:            decodeStringSlice(m.Tags),
		Category:        entities.JobCategory(m.Category),
		Featured:        m.Featured,
		Description:     m.Description,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
