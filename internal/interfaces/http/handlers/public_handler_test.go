package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"talenthub.backend/internal/domain/entities"
	domainerrors "talenthub.backend/internal/domain/errors"
	"talenthub.backend/internal/domain/repositories"
	"talenthub.backend/pkg/redis"
	"talenthub.backend/pkg/utils"
)

type fakeCandidateRepo struct {
	candidates []*entities.Candidate
	listCalls  int
}

func (r *fakeCandidateRepo) GetByID(_ context.Context, id string) (*entities.Candidate, error) {
	for _, c := range r.candidates {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (r *fakeCandidateRepo) List(_ context.Context, filter repositories.CandidateFilter, _ utils.PaginationParams) ([]*entities.Candidate, int64, error) {
	r.listCalls++
	var out []*entities.Candidate
	for _, c := range r.candidates {
		if filter.Availability != nil && c.Availability != *filter.Availability {
			continue
		}
		out = append(out, c)
	}
	return out, int64(len(out)), nil
}

func (r *fakeCandidateRepo) Create(context.Context, *entities.Candidate) error { return nil }
func (r *fakeCandidateRepo) Update(context.Context, *entities.Candidate) error { return nil }
func (r *fakeCandidateRepo) UpdateField(context.Context, string, string, string) error {
	return nil
}
func (r *fakeCandidateRepo) Delete(context.Context, string) error { return nil }
func (r *fakeCandidateRepo) DeleteByIDPrefix(context.Context, string) (int64, error) {
	return 0, nil
}

func publicRouter(candRepo repositories.CandidateRepository, cache *redis.ListCache) *gin.Engine {
	r := gin.New()
	h := NewPublicHandler(newFakeJobRepo(), candRepo, cache)
	r.GET("/candidates", h.ListCandidates)
	r.GET("/jobs", h.ListJobs)
	return r
}

func anonymizedPool() *fakeCandidateRepo {
	return &fakeCandidateRepo{candidates: []*entities.Candidate{
		{
			ID:           "mika-tanaka",
			Name:         "Mika Tanaka",
			IsPublic:     true,
			Title:        "Staff Frontend Engineer",
			Availability: entities.AvailabilityOpen,
			GitHub:       null.StringFrom("https://github.com/mikatanaka"),
		},
		{
			ID:             "candidate-sre-0042",
			Name:           "Jordan Avery",
			AnonymousAlias: "Reliability engineer",
			IsPublic:       false,
			Title:          "Site Reliability Engineer",
			Availability:   entities.AvailabilityLooking,
			LinkedIn:       null.StringFrom("https://linkedin.com/in/javery"),
		},
	}}
}

func TestPublicCandidates_AnonymizesNonPublicProfiles(t *testing.T) {
	router := publicRouter(anonymizedPool(), nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/candidates", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	require.Contains(t, body, "Mika Tanaka")
	require.Contains(t, body, "Reliability engineer")
	require.NotContains(t, body, "Jordan Avery")
	// Social links of an anonymous profile would identify it.
	require.NotContains(t, body, "javery")
	require.Contains(t, body, "mikatanaka")
}

func TestPublicCandidates_DisplayNameShape(t *testing.T) {
	router := publicRouter(anonymizedPool(), nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/candidates?availability=looking", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Candidates []map[string]any `json:"candidates"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Candidates, 1)
	require.Equal(t, "Reliability engineer", resp.Candidates[0]["displayName"])
	_, hasName := resp.Candidates[0]["name"]
	require.False(t, hasName)
}

func TestPublicCandidates_ListCacheRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	redis.SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	defer redis.SetClient(nil)

	repo := anonymizedPool()
	cache := redis.NewListCache(time.Minute)
	router := publicRouter(repo, cache)

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/candidates", nil))
	require.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/candidates", nil))
	require.Equal(t, http.StatusOK, second.Code)
	require.JSONEq(t, first.Body.String(), second.Body.String())
	require.Equal(t, 1, repo.listCalls)

	// A different query string is a different cache variant.
	third := httptest.NewRecorder()
	router.ServeHTTP(third, httptest.NewRequest(http.MethodGet, "/candidates?availability=looking", nil))
	require.Equal(t, http.StatusOK, third.Code)
	require.Equal(t, 2, repo.listCalls)

	// Invalidation drops every variant for the entity.
	require.NoError(t, cache.Invalidate(context.Background(), "candidates"))
	fourth := httptest.NewRecorder()
	router.ServeHTTP(fourth, httptest.NewRequest(http.MethodGet, "/candidates", nil))
	require.Equal(t, http.StatusOK, fourth.Code)
	require.Equal(t, 3, repo.listCalls)
}

func TestPublicJobs_List(t *testing.T) {
	router := publicRouter(&fakeCandidateRepo{}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/jobs", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, strings.Contains(w.Body.String(), `"jobs"`))
}
