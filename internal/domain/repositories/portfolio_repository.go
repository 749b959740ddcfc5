package repositories

import (
	"context"

	"talenthub.backend/internal/domain/entities"
	"talenthub.backend/pkg/utils"
)

// InvestmentFilter narrows an investment listing. Nil members are ignored.
type InvestmentFilter struct {
	Search   *string
	Status   *entities.InvestmentStatus
	Tier     *string
	Featured *bool
}

// InvestmentRepository defines investment data operations
type InvestmentRepository interface {
	GetByID(ctx context.Context, id string) (*entities.Investment, error)
	GetByTitle(ctx context.Context, title string) (*entities.Investment, error)
	List(ctx context.Context, filter InvestmentFilter, pagination utils.PaginationParams) ([]*entities.Investment, int64, error)
	Create(ctx context.Context, inv *entities.Investment) error
	Update(ctx context.Context, inv *entities.Investment) error
	UpdateField(ctx context.Context, id, field, value string) error
	Delete(ctx context.Context, id string) error
	DeleteByIDPrefix(ctx context.Context, prefix string) (int64, error)
	ListImageRefs(ctx context.Context) ([]ImageRef, error)
}

// AffiliationRepository defines affiliation data operations
type AffiliationRepository interface {
	GetByID(ctx context.Context, id string) (*entities.Affiliation, error)
	List(ctx context.Context, pagination utils.PaginationParams) ([]*entities.Affiliation, int64, error)
	Create(ctx context.Context, aff *entities.Affiliation) error
	Update(ctx context.Context, aff *entities.Affiliation) error
	UpdateField(ctx context.Context, id, field, value string) error
	Delete(ctx context.Context, id string) error
	DeleteByIDPrefix(ctx context.Context, prefix string) (int64, error)
	ListImageRefs(ctx context.Context) ([]ImageRef, error)
}
