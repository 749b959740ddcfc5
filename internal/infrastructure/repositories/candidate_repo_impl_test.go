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

func newCandidate(id, name string, availability entities.Availability) *entities.Candidate {
	return &entities.Candidate{
		ID:             id,
		Name:           name,
		AnonymousAlias: "Senior Engineer in Berlin",
		Title:          "Software Engineer",
		Location:       "Berlin",
		Summary:        "ten years of backend work",
		Skills:         []string{"go", "postgres"},
		Experience:     "8-10",
		Availability:   availability,
	}
}

func TestCandidateRepository_CRUDAndAliasRoundTrip(t *testing.T) {
	db := newTestDB(t)
	createCandidateTable(t, db)
	repo := NewCandidateRepository(db)
	ctx := context.Background()

	c := newCandidate("cand-1", "Dana Schmidt", entities.AvailabilityLooking)
	require.NoError(t, repo.Create(ctx, c))

	got, err := repo.GetByID(ctx, "cand-1")
	require.NoError(t, err)
	require.Equal(t, "Dana Schmidt", got.Name)
	require.False(t, got.IsPublic)
	require.Equal(t, "Senior Engineer in Berlin", got.DisplayName())

	got.IsPublic = true
	require.NoError(t, repo.Update(ctx, got))

	updated, err := repo.GetByID(ctx, "cand-1")
	require.NoError(t, err)
	require.Equal(t, "Dana Schmidt", updated.DisplayName())

	require.NoError(t, repo.Delete(ctx, "cand-1"))
	_, err = repo.GetByID(ctx, "cand-1")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCandidateRepository_AvailabilityFilter(t *testing.T) {
	db := newTestDB(t)
	createCandidateTable(t, db)
	repo := NewCandidateRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newCandidate("c1", "A", entities.AvailabilityLooking)))
	require.NoError(t, repo.Create(ctx, newCandidate("c2", "B", entities.AvailabilityOpen)))
	require.NoError(t, repo.Create(ctx, newCandidate("c3", "C", entities.AvailabilityNotLooking)))

	looking := entities.AvailabilityLooking
	got, total, err := repo.List(ctx, repositories.CandidateFilter{Availability: &looking}, utils.PaginationParams{})
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Equal(t, "c1", got[0].ID)
}

func TestCandidateRepository_UpdateFieldAndPrefixDelete(t *testing.T) {
	db := newTestDB(t)
	createCandidateTable(t, db)
	repo := NewCandidateRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newCandidate("test-cand-1", "A", entities.AvailabilityOpen)))
	require.NoError(t, repo.Create(ctx, newCandidate("c2", "B", entities.AvailabilityOpen)))

	require.NoError(t, repo.UpdateField(ctx, "c2", "summary", "rewritten"))
	got, err := repo.GetByID(ctx, "c2")
	require.NoError(t, err)
	require.Equal(t, "rewritten", got.Summary)

	require.ErrorIs(t, repo.UpdateField(ctx, "missing", "summary", "x"), domainerrors.ErrNotFound)
	require.ErrorIs(t, repo.UpdateField(ctx, "c2", "name", "x"), domainerrors.ErrInvalidInput)

	n, err := repo.DeleteByIDPrefix(ctx, "test-")
	require.NoError(t, err)
	require.Equal(t, int64(1), n)
	_, err = repo.GetByID(ctx, "c2")
	require.NoError(t, err)
}
