// Package usecases holds the application services between the HTTP
// layer and the repositories.
package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"talenthub.backend/internal/domain/entities"
	domainerrors "talenthub.backend/internal/domain/errors"
	"talenthub.backend/internal/domain/repositories"
	"talenthub.backend/pkg/crypto"
)

// APIKeyUsecase issues and validates admin API keys.
type APIKeyUsecase struct {
	apiKeyRepo repositories.APIKeyRepository
}

func NewAPIKeyUsecase(apiKeyRepo repositories.APIKeyRepository) *APIKeyUsecase {
	return &APIKeyUsecase{apiKeyRepo: apiKeyRepo}
}

// CreateAPIKey generates a key, stores its hash and metadata, and
// returns the plaintext exactly once.
func (u *APIKeyUsecase) CreateAPIKey(ctx context.Context, input *entities.CreateAPIKeyInput) (*entities.CreateAPIKeyResponse, error) {
	if input.Name == "" || len(input.Permissions) == 0 {
		return nil, domainerrors.BadRequest("name and permissions are required")
	}
	for _, p := range input.Permissions {
		switch p {
		case entities.PermCatalogRead, entities.PermCatalogWrite, entities.PermAdmin:
		default:
			return nil, domainerrors.BadRequest("unknown permission: " + p)
		}
	}

	plaintext, prefix, err := crypto.GenerateAPIKey()
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	now := time.Now()
	key := &entities.APIKey{
		ID:          uuid.NewString(),
		Name:        input.Name,
		KeyPrefix:   prefix,
		KeyHash:     crypto.HashAPIKey(plaintext),
		KeyMasked:   crypto.MaskAPIKey(plaintext),
		Permissions: input.Permissions,
		IsActive:    true,
		ExpiresAt:   input.ExpiresAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := u.apiKeyRepo.Create(ctx, key); err != nil {
		return nil, err
	}

	return &entities.CreateAPIKeyResponse{Key: *key, Secret: plaintext}, nil
}

// ValidateAPIKey resolves a presented key to its stored record and
// checks that it is active, unexpired, and carries the permission. The
// last-used stamp is updated best effort; a failed stamp never rejects
// an otherwise valid key.
func (u *APIKeyUsecase) ValidateAPIKey(ctx context.Context, presented, permission string) (*entities.APIKey, error) {
	if crypto.KeyPrefixOf(presented) == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	key, err := u.apiKeyRepo.GetByHash(ctx, crypto.HashAPIKey(presented))
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrUnauthorized
		}
		return nil, err
	}
	if !key.IsActive {
		return nil, domainerrors.ErrKeyInactive
	}
	if key.ExpiresAt != nil && key.ExpiresAt.Before(time.Now()) {
		return nil, domainerrors.ErrKeyExpired
	}
	if !key.HasPermission(permission) {
		return nil, domainerrors.ErrForbidden
	}

	_ = u.apiKeyRepo.TouchLastUsed(ctx, key.ID, time.Now())
	return key, nil
}

// ListAPIKeys returns every stored key in its masked form.
func (u *APIKeyUsecase) ListAPIKeys(ctx context.Context) ([]*entities.APIKey, error) {
	return u.apiKeyRepo.List(ctx)
}

// DeactivateAPIKey revokes a key by id.
func (u *APIKeyUsecase) DeactivateAPIKey(ctx context.Context, id string) error {
	return u.apiKeyRepo.Deactivate(ctx, id)
}
