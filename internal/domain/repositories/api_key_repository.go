package repositories

import (
	"context"
	"time"

	"talenthub.backend/internal/domain/entities"
)

// APIKeyRepository defines API key data operations
type APIKeyRepository interface {
	GetByHash(ctx context.Context, keyHash string) (*entities.APIKey, error)
	List(ctx context.Context) ([]*entities.APIKey, error)
	Create(ctx context.Context, key *entities.APIKey) error
	TouchLastUsed(ctx context.Context, id string, at time.Time) error
	Deactivate(ctx context.Context, id string) error
}
