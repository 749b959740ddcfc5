package usecases

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"talenthub.backend/internal/domain/entities"
	domainerrors "talenthub.backend/internal/domain/errors"
	"talenthub.backend/pkg/crypto"
)

type fakeAPIKeyRepo struct {
	byHash  map[string]*entities.APIKey
	touched []string
}

func newFakeAPIKeyRepo() *fakeAPIKeyRepo {
	return &fakeAPIKeyRepo{byHash: map[string]*entities.APIKey{}}
}

func (r *fakeAPIKeyRepo) GetByHash(_ context.Context, hash string) (*entities.APIKey, error) {
	if k, ok := r.byHash[hash]; ok {
		return k, nil
	}
	return nil, domainerrors.ErrNotFound
}

func (r *fakeAPIKeyRepo) List(context.Context) ([]*entities.APIKey, error) {
	var keys []*entities.APIKey
	for _, k := range r.byHash {
		keys = append(keys, k)
	}
	return keys, nil
}

func (r *fakeAPIKeyRepo) Create(_ context.Context, key *entities.APIKey) error {
	if _, ok := r.byHash[key.KeyHash]; ok {
		return domainerrors.ErrAlreadyExists
	}
	r.byHash[key.KeyHash] = key
	return nil
}

func (r *fakeAPIKeyRepo) TouchLastUsed(_ context.Context, id string, at time.Time) error {
	r.touched = append(r.touched, id)
	for _, k := range r.byHash {
		if k.ID == id {
			k.LastUsedAt = &at
		}
	}
	return nil
}

func (r *fakeAPIKeyRepo) Deactivate(_ context.Context, id string) error {
	for _, k := range r.byHash {
		if k.ID == id {
			k.IsActive = false
			return nil
		}
	}
	return domainerrors.ErrNotFound
}

func TestCreateAPIKey_IssuesUsableKey(t *testing.T) {
	repo := newFakeAPIKeyRepo()
	uc := NewAPIKeyUsecase(repo)
	ctx := context.Background()

	resp, err := uc.CreateAPIKey(ctx, &entities.CreateAPIKeyInput{
		Name:        "ci pipeline",
		Permissions: []string{entities.PermCatalogWrite},
	})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(resp.Secret, "th_"))
	require.Equal(t, crypto.HashAPIKey(resp.Secret), resp.Key.KeyHash)
	require.Equal(t, "****"+resp.Secret[len(resp.Secret)-4:], resp.Key.KeyMasked)
	require.True(t, resp.Key.IsActive)

	// The plaintext round-trips through validation.
	key, err := uc.ValidateAPIKey(ctx, resp.Secret, entities.PermCatalogWrite)
	require.NoError(t, err)
	require.Equal(t, resp.Key.ID, key.ID)
	require.Contains(t, repo.touched, resp.Key.ID)
}

func TestCreateAPIKey_RejectsBadInput(t *testing.T) {
	uc := NewAPIKeyUsecase(newFakeAPIKeyRepo())
	ctx := context.Background()

	_, err := uc.CreateAPIKey(ctx, &entities.CreateAPIKeyInput{Name: "", Permissions: []string{entities.PermAdmin}})
	require.Error(t, err)

	_, err = uc.CreateAPIKey(ctx, &entities.CreateAPIKeyInput{Name: "x", Permissions: nil})
	require.Error(t, err)

	_, err = uc.CreateAPIKey(ctx, &entities.CreateAPIKeyInput{Name: "x", Permissions: []string{"catalog:delete"}})
	require.Error(t, err)
}

func TestValidateAPIKey_Rejections(t *testing.T) {
	repo := newFakeAPIKeyRepo()
	uc := NewAPIKeyUsecase(repo)
	ctx := context.Background()

	resp, err := uc.CreateAPIKey(ctx, &entities.CreateAPIKeyInput{
		Name:        "read only",
		Permissions: []string{entities.PermCatalogRead},
	})
	require.NoError(t, err)

	_, err = uc.ValidateAPIKey(ctx, "not-a-key", entities.PermCatalogRead)
	require.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	_, err = uc.ValidateAPIKey(ctx, "th_00000000_deadbeef", entities.PermCatalogRead)
	require.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	_, err = uc.ValidateAPIKey(ctx, resp.Secret, entities.PermCatalogWrite)
	require.ErrorIs(t, err, domainerrors.ErrForbidden)

	past := time.Now().Add(-time.Hour)
	resp.Key.ExpiresAt = &past
	repo.byHash[resp.Key.KeyHash] = &resp.Key
	_, err = uc.ValidateAPIKey(ctx, resp.Secret, entities.PermCatalogRead)
	require.ErrorIs(t, err, domainerrors.ErrKeyExpired)

	resp.Key.ExpiresAt = nil
	resp.Key.IsActive = false
	_, err = uc.ValidateAPIKey(ctx, resp.Secret, entities.PermCatalogRead)
	require.ErrorIs(t, err, domainerrors.ErrKeyInactive)
}

func TestValidateAPIKey_AdminImpliesAll(t *testing.T) {
	uc := NewAPIKeyUsecase(newFakeAPIKeyRepo())
	ctx := context.Background()

	resp, err := uc.CreateAPIKey(ctx, &entities.CreateAPIKeyInput{
		Name:        "root",
		Permissions: []string{entities.PermAdmin},
	})
	require.NoError(t, err)

	for _, perm := range []string{entities.PermCatalogRead, entities.PermCatalogWrite, entities.PermAdmin} {
		_, err := uc.ValidateAPIKey(ctx, resp.Secret, perm)
		require.NoError(t, err)
	}
}
