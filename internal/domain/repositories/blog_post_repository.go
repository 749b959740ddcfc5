package repositories

import (
	"context"

	"talenthub.backend/internal/domain/entities"
	"talenthub.backend/pkg/utils"
)

// BlogPostFilter narrows a blog post listing. PublishedOnly hides drafts.
type BlogPostFilter struct {
	Search        *string
	Featured      *bool
	PublishedOnly bool
}

// BlogPostRepository defines blog post data operations
type BlogPostRepository interface {
	GetByID(ctx context.Context, id string) (*entities.BlogPost, error)
	List(ctx context.Context, filter BlogPostFilter, pagination utils.PaginationParams) ([]*entities.BlogPost, int64, error)
	Create(ctx context.Context, post *entities.BlogPost) error
	Update(ctx context.Context, post *entities.BlogPost) error
	UpdateField(ctx context.Context, id, field, value string) error
	Delete(ctx context.Context, id string) error
	DeleteByIDPrefix(ctx context.Context, prefix string) (int64, error)
	ListImageRefs(ctx context.Context) ([]ImageRef, error)
}
