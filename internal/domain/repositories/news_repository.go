package repositories

import (
	"context"

	"talenthub.backend/internal/domain/entities"
	"talenthub.backend/pkg/utils"
)

// NewsFilter narrows curated-link and announcement listings. Empty
// slices and nil members are ignored. NewestFirst defaults to true in
// the handlers; repositories honor whatever they are handed.
type NewsFilter struct {
	Search      *string
	Categories  []string
	Platforms   []entities.Platform
	Featured    *bool
	OldestFirst bool
}

// CuratedLinkRepository defines curated link data operations
type CuratedLinkRepository interface {
	GetByID(ctx context.Context, id string) (*entities.CuratedLink, error)
	List(ctx context.Context, filter NewsFilter, pagination utils.PaginationParams) ([]*entities.CuratedLink, int64, error)
	Create(ctx context.Context, link *entities.CuratedLink) error
	Update(ctx context.Context, link *entities.CuratedLink) error
	Delete(ctx context.Context, id string) error
	DeleteByIDPrefix(ctx context.Context, prefix string) (int64, error)
}

// AnnouncementRepository defines announcement data operations
type AnnouncementRepository interface {
	GetByID(ctx context.Context, id string) (*entities.Announcement, error)
	List(ctx context.Context, filter NewsFilter, pagination utils.PaginationParams) ([]*entities.Announcement, int64, error)
	Create(ctx context.Context, a *entities.Announcement) error
	Update(ctx context.Context, a *entities.Announcement) error
	UpdateField(ctx context.Context, id, field, value string) error
	Delete(ctx context.Context, id string) error
	DeleteByIDPrefix(ctx context.Context, prefix string) (int64, error)
	ListImageRefs(ctx context.Context) ([]ImageRef, error)
}
