package repositories

import (
	"context"

	"talenthub.backend/internal/domain/entities"
	"talenthub.backend/pkg/utils"
)

// JobFilter narrows a job listing. Nil members are ignored.
type JobFilter struct {
	Search   *string
	Category *entities.JobCategory
	Featured *bool
}

// JobRepository defines job data operations
type JobRepository interface {
	GetByID(ctx context.Context, id string) (*entities.Job, error)
	List(ctx context.Context, filter JobFilter, pagination utils.PaginationParams) ([]*entities.Job, int64, error)
	Create(ctx context.Context, job *entities.Job) error
	Update(ctx context.Context, job *entities.Job) error
	UpdateField(ctx context.Context, id, field, value string) error
	Delete(ctx context.Context, id string) error
	DeleteByIDPrefix(ctx context.Context, prefix string) (int64, error)
	ListImageRefs(ctx context.Context) ([]ImageRef, error)
}
