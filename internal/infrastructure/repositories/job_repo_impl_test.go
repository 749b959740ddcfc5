package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"talenthub.backend/internal/domain/entities"
	domainerrors "talenthub.backend/internal/domain/errors"
	"talenthub.backend/internal/domain/repositories"
	"talenthub.backend/pkg/utils"
)

func newJob(id, title, company string, category entities.JobCategory) *entities.Job {
	return &entities.Job{
		ID:             id,
		Title:          title,
		Company:        company,
		Link:           "https://jobs.example.com/" + id,
		Location:       "Berlin",
		RemoteMode:     entities.RemoteModeRemote,
		EmploymentType: "full-time",
		Tags:           []string{"engineering", "golang"},
		Category:       category,
		Description:    "initial description",
	}
}

func TestJobRepository_BasicCRUD(t *testing.T) {
	db := newTestDB(t)
	createJobTable(t, db)
	repo := NewJobRepository(db)
	ctx := context.Background()

	job := newJob("world-brand-designer", "Brand Designer", "World", entities.JobCategoryPortfolio)
	job.Salary = null.StringFrom("$90k-$120k")
	require.NoError(t, repo.Create(ctx, job))

	got, err := repo.GetByID(ctx, "world-brand-designer")
	require.NoError(t, err)
	require.Equal(t, "Brand Designer", got.Title)
	require.Equal(t, []string{"engineering", "golang"}, got.Tags)
	require.Equal(t, "$90k-$120k", got.Salary.String)

	got.Title = "Senior Brand Designer"
	got.Featured = true
	require.NoError(t, repo.Update(ctx, got))

	updated, err := repo.GetByID(ctx, got.ID)
	require.NoError(t, err)
	require.Equal(t, "Senior Brand Designer", updated.Title)
	require.True(t, updated.Featured)

	require.NoError(t, repo.Delete(ctx, got.ID))
	_, err = repo.GetByID(ctx, got.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestJobRepository_CreateDuplicateReportsAlreadyExists(t *testing.T) {
	db := newTestDB(t)
	createJobTable(t, db)
	repo := NewJobRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newJob("dup-id", "A", "X", entities.JobCategoryNetwork)))
	err := repo.Create(ctx, newJob("dup-id", "B", "Y", entities.JobCategoryNetwork))
	require.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
}

func TestJobRepository_UpdateField(t *testing.T) {
	db := newTestDB(t)
	createJobTable(t, db)
	repo := NewJobRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newJob("world-brand-designer", "Brand Designer", "World", entities.JobCategoryPortfolio)))

	require.NoError(t, repo.UpdateField(ctx, "world-brand-designer", "description", "a new description"))

	got, err := repo.GetByID(ctx, "world-brand-designer")
	require.NoError(t, err)
	require.Equal(t, "a new description", got.Description)
	// Only the named field changes.
	require.Equal(t, "Brand Designer", got.Title)
	require.Equal(t, "World", got.Company)

	err = repo.UpdateField(ctx, "nonexistent-id", "description", "x")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = repo.UpdateField(ctx, "world-brand-designer", "title", "nope")
	require.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestJobRepository_ListFilters(t *testing.T) {
	db := newTestDB(t)
	createJobTable(t, db)
	repo := NewJobRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newJob("j1", "Backend Engineer", "World", entities.JobCategoryPortfolio)))
	require.NoError(t, repo.Create(ctx, newJob("j2", "Designer", "Acme", entities.JobCategoryNetwork)))
	featured := newJob("j3", "Platform Engineer", "World", entities.JobCategoryPortfolio)
	featured.Featured = true
	require.NoError(t, repo.Create(ctx, featured))

	all, total, err := repo.List(ctx, repositories.JobFilter{}, utils.PaginationParams{})
	require.NoError(t, err)
	require.Equal(t, int64(3), total)
	require.Len(t, all, 3)

	cat := entities.JobCategoryPortfolio
	portfolio, total, err := repo.List(ctx, repositories.JobFilter{Category: &cat}, utils.PaginationParams{})
	require.NoError(t, err)
	require.Equal(t, int64(2), total)
	require.Len(t, portfolio, 2)

	isFeatured := true
	feat, _, err := repo.List(ctx, repositories.JobFilter{Featured: &isFeatured}, utils.PaginationParams{})
	require.NoError(t, err)
	require.Len(t, feat, 1)
	require.Equal(t, "j3", feat[0].ID)

	search := "engineer"
	matches, _, err := repo.List(ctx, repositories.JobFilter{Search: &search}, utils.PaginationParams{})
	require.NoError(t, err)
	require.Len(t, matches, 2)
}

func TestJobRepository_DeleteByIDPrefix(t *testing.T) {
	db := newTestDB(t)
	createJobTable(t, db)
	repo := NewJobRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newJob("test-job-1", "Senior Software Engineer", "Test Company Alpha", entities.JobCategoryPortfolio)))
	require.NoError(t, repo.Create(ctx, newJob("test-job-2", "Data Engineer", "Test Company Beta", entities.JobCategoryPortfolio)))
	require.NoError(t, repo.Create(ctx, newJob("real-job", "Designer", "World", entities.JobCategoryPortfolio)))

	n, err := repo.DeleteByIDPrefix(ctx, "test-")
	require.NoError(t, err)
	require.Equal(t, int64(2), n)

	// Production rows survive.
	_, err = repo.GetByID(ctx, "real-job")
	require.NoError(t, err)
	_, err = repo.GetByID(ctx, "test-job-1")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	// Hard delete: the same ids can be seeded again.
	require.NoError(t, repo.Create(ctx, newJob("test-job-1", "Senior Software Engineer", "Test Company Alpha", entities.JobCategoryPortfolio)))
}

func TestJobRepository_ListImageRefs(t *testing.T) {
	db := newTestDB(t)
	createJobTable(t, db)
	repo := NewJobRepository(db)
	ctx := context.Background()

	withLogo := newJob("j1", "A", "World", entities.JobCategoryPortfolio)
	withLogo.CompanyLogo = null.StringFrom("/images/companies/world.png")
	require.NoError(t, repo.Create(ctx, withLogo))
	require.NoError(t, repo.Create(ctx, newJob("j2", "B", "Acme", entities.JobCategoryNetwork)))

	refs, err := repo.ListImageRefs(ctx)
	require.NoError(t, err)
	require.Len(t, refs, 1)
	require.Equal(t, "j1", refs[0].ID)
	require.Equal(t, "company_logo", refs[0].Field)
	require.Equal(t, "/images/companies/world.png", refs[0].Value)
}
