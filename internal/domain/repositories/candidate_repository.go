package repositories

import (
	"context"

	"talenthub.backend/internal/domain/entities"
	"talenthub.backend/pkg/utils"
)

// CandidateFilter narrows a candidate listing. Nil members are ignored.
type CandidateFilter struct {
	Search       *string
	Availability *entities.Availability
	Featured     *bool
}

// CandidateRepository defines candidate data operations
type CandidateRepository interface {
	GetByID(ctx context.Context, id string) (*entities.Candidate, error)
	List(ctx context.Context, filter CandidateFilter, pagination utils.PaginationParams) ([]*entities.Candidate, int64, error)
	Create(ctx context.Context, candidate *entities.Candidate) error
	Update(ctx context.Context, candidate *entities.Candidate) error
	UpdateField(ctx context.Context, id, field, value string) error
	Delete(ctx context.Context, id string) error
	DeleteByIDPrefix(ctx context.Context, prefix string) (int64, error)
}
