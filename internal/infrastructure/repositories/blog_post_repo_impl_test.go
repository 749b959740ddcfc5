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

func TestBlogPostRepository_PublishedFilter(t *testing.T) {
	db := newTestDB(t)
	createBlogPostTable(t, db)
	repo := NewBlogPostRepository(db)
	ctx := context.Background()

	published := &entities.BlogPost{
		ID:          "shipping-our-new-jobs-board",
		Title:       "Shipping Our New Jobs Board",
		Summary:     "What changed and why",
		Body:        "Long form body.",
		CoverImage:  null.StringFrom("/assets/covers/jobs-board.webp"),
		PublishedAt: null.TimeFrom(time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)),
		Featured:    true,
	}
	draft := &entities.BlogPost{
		ID:      "hiring-market-notes",
		Title:   "Hiring Market Notes",
		Summary: "Unfinished draft",
		Body:    "wip",
	}
	require.NoError(t, repo.Create(ctx, published))
	require.NoError(t, repo.Create(ctx, draft))

	got, total, err := repo.List(ctx, repositories.BlogPostFilter{}, utils.PaginationParams{})
	require.NoError(t, err)
	require.Equal(t, int64(2), total)
	require.Len(t, got, 2)

	got, total, err = repo.List(ctx, repositories.BlogPostFilter{PublishedOnly: true}, utils.PaginationParams{})
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Equal(t, "shipping-our-new-jobs-board", got[0].ID)
	require.True(t, got[0].PublishedAt.Valid)

	featured := true
	got, _, err = repo.List(ctx, repositories.BlogPostFilter{Featured: &featured}, utils.PaginationParams{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "shipping-our-new-jobs-board", got[0].ID)
}

func TestBlogPostRepository_UpdateAndImageRefs(t *testing.T) {
	db := newTestDB(t)
	createBlogPostTable(t, db)
	repo := NewBlogPostRepository(db)
	ctx := context.Background()

	post := &entities.BlogPost{
		ID:         "post-1",
		Title:      "First",
		CoverImage: null.StringFrom("/assets/covers/first.png"),
	}
	require.NoError(t, repo.Create(ctx, post))
	require.ErrorIs(t, repo.Create(ctx, post), domainerrors.ErrAlreadyExists)

	refs, err := repo.ListImageRefs(ctx)
	require.NoError(t, err)
	require.Len(t, refs, 1)
	require.Equal(t, "cover_image", refs[0].Field)
	require.Equal(t, "/assets/covers/first.png", refs[0].Value)

	require.NoError(t, repo.UpdateField(ctx, "post-1", "cover_image", "https://cdn.example.com/covers/first.png"))
	require.ErrorIs(t, repo.UpdateField(ctx, "post-1", "title", "nope"), domainerrors.ErrInvalidInput)
	require.ErrorIs(t, repo.UpdateField(ctx, "missing", "cover_image", "x"), domainerrors.ErrNotFound)

	got, err := repo.GetByID(ctx, "post-1")
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example.com/covers/first.png", got.CoverImage.String)

	post.Title = "First, Revised"
	post.PublishedAt = null.TimeFrom(time.Now().UTC())
	require.NoError(t, repo.Update(ctx, post))

	got, err = repo.GetByID(ctx, "post-1")
	require.NoError(t, err)
	require.Equal(t, "First, Revised", got.Title)
}

func TestBlogPostRepository_DeleteByIDPrefix(t *testing.T) {
	db := newTestDB(t)
	createBlogPostTable(t, db)
	repo := NewBlogPostRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entities.BlogPost{ID: "test-post-1", Title: "Fixture"}))
	require.NoError(t, repo.Create(ctx, &entities.BlogPost{ID: "real-post", Title: "Keep"}))

	n, err := repo.DeleteByIDPrefix(ctx, "test-")
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	_, err = repo.GetByID(ctx, "test-post-1")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
	_, err = repo.GetByID(ctx, "real-post")
	require.NoError(t, err)
}
