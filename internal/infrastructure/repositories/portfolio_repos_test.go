package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"talenthub.backend/internal/domain/entities"
	domainerrors "talenthub.backend/internal/domain/errors"
	"talenthub.backend/internal/domain/repositories"
	"talenthub.backend/pkg/utils"
)

func TestInvestmentRepository_CRUDAndGetByTitle(t *testing.T) {
	db := newTestDB(t)
	createInvestmentTable(t, db)
	repo := NewInvestmentRepository(db)
	ctx := context.Background()

	inv := &entities.Investment{
		ID:          "world",
		Title:       "World",
		Description: "identity network",
		LogoURL:     "/images/companies/world.png",
		Tier:        "1",
		Status:      entities.InvestmentStatusActive,
		Categories:  []string{"identity", "infrastructure"},
	}
	require.NoError(t, repo.Create(ctx, inv))

	// Duplicate seed run reports already-exists.
	require.ErrorIs(t, repo.Create(ctx, inv), domainerrors.ErrAlreadyExists)

	byTitle, err := repo.GetByTitle(ctx, "World")
	require.NoError(t, err)
	require.Equal(t, "world", byTitle.ID)
	require.Equal(t, []string{"identity", "infrastructure"}, byTitle.Categories)

	_, err = repo.GetByTitle(ctx, "Missing Co")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	require.NoError(t, repo.UpdateField(ctx, "world", "status", string(entities.InvestmentStatusAcquired)))
	got, err := repo.GetByID(ctx, "world")
	require.NoError(t, err)
	require.Equal(t, entities.InvestmentStatusAcquired, got.Status)
}

func TestInvestmentRepository_StatusAndTierFilters(t *testing.T) {
	db := newTestDB(t)
	createInvestmentTable(t, db)
	repo := NewInvestmentRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entities.Investment{ID: "a", Title: "A", Tier: "1", Status: entities.InvestmentStatusActive}))
	require.NoError(t, repo.Create(ctx, &entities.Investment{ID: "b", Title: "B", Tier: "2", Status: entities.InvestmentStatusInactive}))
	require.NoError(t, repo.Create(ctx, &entities.Investment{ID: "c", Title: "C", Tier: "1", Status: entities.InvestmentStatusActive}))

	active := entities.InvestmentStatusActive
	got, total, err := repo.List(ctx, repositories.InvestmentFilter{Status: &active}, utils.PaginationParams{})
	require.NoError(t, err)
	require.Equal(t, int64(2), total)
	require.Len(t, got, 2)

	tier := "2"
	got, _, err = repo.List(ctx, repositories.InvestmentFilter{Tier: &tier}, utils.PaginationParams{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "b", got[0].ID)
}

func TestAffiliationRepository_CRUDAndImageRefs(t *testing.T) {
	db := newTestDB(t)
	createAffiliationTable(t, db)
	repo := NewAffiliationRepository(db)
	ctx := context.Background()

	aff := &entities.Affiliation{
		ID:        "aff-1",
		Title:     "Founders Program",
		Role:      "Mentor",
		BeginDate: "2019",
		EndDate:   "2022",
		LogoURL:   "/images/affiliations/founders.png",
	}
	require.NoError(t, repo.Create(ctx, aff))

	all, total, err := repo.List(ctx, utils.PaginationParams{})
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Equal(t, "Founders Program", all[0].Title)

	refs, err := repo.ListImageRefs(ctx)
	require.NoError(t, err)
	require.Len(t, refs, 1)
	require.Equal(t, "logo_url", refs[0].Field)

	require.NoError(t, repo.UpdateField(ctx, "aff-1", "logo_url", "https://assets.example.com/affiliations/founders.png"))
	got, err := repo.GetByID(ctx, "aff-1")
	require.NoError(t, err)
	require.Equal(t, "https://assets.example.com/affiliations/founders.png", got.LogoURL)

	require.NoError(t, repo.Delete(ctx, "aff-1"))
	require.ErrorIs(t, repo.Delete(ctx, "aff-1"), domainerrors.ErrNotFound)
}
