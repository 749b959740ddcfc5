package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"talenthub.backend/internal/domain/entities"
	domainerrors "talenthub.backend/internal/domain/errors"
	"talenthub.backend/internal/domain/repositories"
	"talenthub.backend/internal/infrastructure/models"
)

// apiKeyRepo implements repositories.APIKeyRepository
type apiKeyRepo struct {
	db *gorm.DB
}

// NewAPIKeyRepository creates a new API key repository
func NewAPIKeyRepository(db *gorm.DB) repositories.APIKeyRepository {
	return &apiKeyRepo{db: db}
}

// GetByHash looks up a key by the SHA-256 digest of its full plaintext.
func (r *apiKeyRepo) GetByHash(ctx context.Context, keyHash string) (*entities.APIKey, error) {
	var m models.ApiKey
	if err := r.db.WithContext(ctx).Where("key_hash = ?", keyHash).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *apiKeyRepo) List(ctx context.Context) ([]*entities.APIKey, error) {
	var ms []models.ApiKey
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}
	keys := make([]*entities.APIKey, 0, len(ms))
	for i := range ms {
		keys = append(keys, r.toEntity(&ms[i]))
	}
	return keys, nil
}

func (r *apiKeyRepo) Create(ctx context.Context, key *entities.APIKey) error {
	m := &models.ApiKey{
		ID:          key.ID,
		Name:        key.Name,
		KeyPrefix:   key.KeyPrefix,
		KeyHash:     key.KeyHash,
		KeyMasked:   key.KeyMasked,
		Permissions: encodeStringSlice(key.Permissions),
		IsActive:    key.IsActive,
		LastUsedAt:  key.LastUsedAt,
		ExpiresAt:   key.ExpiresAt,
		CreatedAt:   key.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateCreateErr(err)
	}
	return nil
}

// TouchLastUsed stamps last_used_at; missing ids are ignored so auth
// never fails on the bookkeeping write.
func (r *apiKeyRepo) TouchLastUsed(ctx context.Context, id string, at time.Time) error {
	return r.db.WithContext(ctx).Model(&models.ApiKey{}).Where("id = ?", id).Update("last_used_at", at).Error
}

func (r *apiKeyRepo) Deactivate(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Model(&models.ApiKey{}).Where("id = ?", id).Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *apiKeyRepo) toEntity(m *models.ApiKey) *entities.APIKey {
	return &entities.APIKey{
		ID:          m.ID,
		Name:        m.Name,
		KeyPrefix:   m.KeyPrefix,
		KeyHash:     m.KeyHash,
		KeyMasked:   m.KeyMasked,
		Permissions: decodeStringSlice(m.Permissions),
		IsActive:    m.IsActive,
		LastUsedAt:  m.LastUsedAt,
		ExpiresAt:   m.ExpiresAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
