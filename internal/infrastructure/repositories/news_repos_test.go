package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"talenthub.backend/internal/domain/entities"
	domainerrors "talenthub.backend/internal/domain/errors"
	"talenthub.backend/internal/domain/repositories"
	"talenthub.backend/pkg/utils"
)

func day(n int) time.Time {
	return time.Date(2025, time.January, n, 0, 0, 0, 0, time.UTC)
}

func TestCuratedLinkRepository_CRUDAndSort(t *testing.T) {
	db := newTestDB(t)
	createCuratedLinkTable(t, db)
	repo := NewCuratedLinkRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entities.CuratedLink{
		ID: "l1", Title: "Hiring in 2025", URL: "https://press.example.com/a",
		Source: "TechCrunch", PublishedAt: day(1), Category: "press",
	}))
	require.NoError(t, repo.Create(ctx, &entities.CuratedLink{
		ID: "l2", Title: "Portfolio roundup", URL: "https://press.example.com/b",
		Source: "Forbes", PublishedAt: day(5), Category: "analysis",
	}))

	newest, total, err := repo.List(ctx, repositories.NewsFilter{}, utils.PaginationParams{})
	require.NoError(t, err)
	require.Equal(t, int64(2), total)
	require.Equal(t, "l2", newest[0].ID)

	oldest, _, err := repo.List(ctx, repositories.NewsFilter{OldestFirst: true}, utils.PaginationParams{})
	require.NoError(t, err)
	require.Equal(t, "l1", oldest[0].ID)

	press, _, err := repo.List(ctx, repositories.NewsFilter{Categories: []string{"press"}}, utils.PaginationParams{})
	require.NoError(t, err)
	require.Len(t, press, 1)

	got, err := repo.GetByID(ctx, "l1")
	require.NoError(t, err)
	got.Featured = true
	require.NoError(t, repo.Update(ctx, got))

	require.NoError(t, repo.Delete(ctx, "l1"))
	_, err = repo.GetByID(ctx, "l1")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestAnnouncementRepository_PlatformFilterAndImageRefs(t *testing.T) {
	db := newTestDB(t)
	createAnnouncementTable(t, db)
	repo := NewAnnouncementRepository(db)
	ctx := context.Background()

	logo := "/images/companies/world.png"
	require.NoError(t, repo.Create(ctx, &entities.Announcement{
		ID: "a1", Title: "Series B", URL: "https://x.com/world/1", Company: "World",
		CompanyLogo: null.StringFrom(logo), Platform: entities.PlatformX, PublishedAt: day(2),
	}))
	require.NoError(t, repo.Create(ctx, &entities.Announcement{
		ID: "a2", Title: "Launch week", URL: "https://blog.example.com/launch", Company: "Acme",
		Platform: entities.PlatformBlog, PublishedAt: day(3),
	}))

	xOnly, _, err := repo.List(ctx, repositories.NewsFilter{Platforms: []entities.Platform{entities.PlatformX}}, utils.PaginationParams{})
	require.NoError(t, err)
	require.Len(t, xOnly, 1)
	require.Equal(t, "a1", xOnly[0].ID)

	both, _, err := repo.List(ctx, repositories.NewsFilter{
		Platforms: []entities.Platform{entities.PlatformX, entities.PlatformBlog},
	}, utils.PaginationParams{})
	require.NoError(t, err)
	require.Len(t, both, 2)

	refs, err := repo.ListImageRefs(ctx)
	require.NoError(t, err)
	require.Len(t, refs, 1)
	require.Equal(t, logo, refs[0].Value)

	require.NoError(t, repo.UpdateField(ctx, "a1", "company_logo", "https://assets.example.com/companies/world.png"))
	got, err := repo.GetByID(ctx, "a1")
	require.NoError(t, err)
	require.Equal(t, "https://assets.example.com/companies/world.png", got.CompanyLogo.String)
}
