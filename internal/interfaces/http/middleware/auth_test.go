package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"talenthub.backend/internal/domain/entities"
	domainerrors "talenthub.backend/internal/domain/errors"
	"talenthub.backend/internal/usecases"
	"talenthub.backend/pkg/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Init("development")
	m.Run()
}

type stubKeyRepo struct {
	byHash map[string]*entities.APIKey
}

func (r *stubKeyRepo) GetByHash(_ context.Context, hash string) (*entities.APIKey, error) {
	if k, ok := r.byHash[hash]; ok {
		return k, nil
	}
	return nil, domainerrors.ErrNotFound
}

func (r *stubKeyRepo) List(context.Context) ([]*entities.APIKey, error) { return nil, nil }

func (r *stubKeyRepo) Create(_ context.Context, key *entities.APIKey) error {
	if r.byHash == nil {
		r.byHash = map[string]*entities.APIKey{}
	}
	r.byHash[key.KeyHash] = key
	return nil
}

func (r *stubKeyRepo) TouchLastUsed(context.Context, string, time.Time) error { return nil }
func (r *stubKeyRepo) Deactivate(context.Context, string) error               { return nil }

func authRouter(uc *usecases.APIKeyUsecase, perm string) *gin.Engine {
	r := gin.New()
	r.GET("/guarded", RequireAPIKey(uc, perm), func(c *gin.Context) {
		key := c.MustGet(APIKeyContextKey).(*entities.APIKey)
		c.JSON(http.StatusOK, gin.H{"keyName": key.Name})
	})
	return r
}

func TestRequireAPIKey(t *testing.T) {
	repo := &stubKeyRepo{}
	uc := usecases.NewAPIKeyUsecase(repo)
	resp, err := uc.CreateAPIKey(context.Background(), &entities.CreateAPIKeyInput{
		Name:        "writer",
		Permissions: []string{entities.PermCatalogWrite},
	})
	require.NoError(t, err)

	router := authRouter(uc, entities.PermCatalogWrite)

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown key", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		req.Header.Set("X-Api-Key", "th_00000000_nope")
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid key", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		req.Header.Set("X-Api-Key", resp.Secret)
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "writer")
	})

	t.Run("insufficient permission", func(t *testing.T) {
		adminOnly := authRouter(uc, entities.PermAdmin)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		req.Header.Set("X-Api-Key", resp.Secret)
		adminOnly.ServeHTTP(w, req)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}
