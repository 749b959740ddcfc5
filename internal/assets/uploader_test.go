package assets

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	existing map[string]bool
	failing  map[string]error
	puts     []string
	checks   []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{existing: map[string]bool{}, failing: map[string]error{}}
}

func (s *fakeStore) Exists(_ context.Context, key string) (bool, error) {
	s.checks = append(s.checks, key)
	return s.existing[key], nil
}

func (s *fakeStore) Put(_ context.Context, key, _, _ string) error {
	if err := s.failing[key]; err != nil {
		return err
	}
	s.puts = append(s.puts, key)
	s.existing[key] = true
	return nil
}

func (s *fakeStore) PublicURL(key string) string {
	return "https://cdn.example.com/" + key
}

func TestUploader_SkipsExistingButRecordsURL(t *testing.T) {
	store := newFakeStore()
	store.existing["logos/acme.png"] = true
	u := NewUploader(store)

	url, err := u.Upload(context.Background(), LocalFile{Key: "logos/acme.png", Path: "/tmp/acme.png"})
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example.com/logos/acme.png", url)
	require.Empty(t, store.puts)
}

func TestUploader_MemoAvoidsRepeatChecks(t *testing.T) {
	store := newFakeStore()
	u := NewUploader(store)
	f := LocalFile{Key: "logos/acme.png", Path: "/tmp/acme.png", ContentType: "image/png"}

	for i := 0; i < 3; i++ {
		url, err := u.Upload(context.Background(), f)
		require.NoError(t, err)
		require.Equal(t, "https://cdn.example.com/logos/acme.png", url)
	}
	require.Len(t, store.checks, 1)
	require.Len(t, store.puts, 1)
}

func TestUploader_UploadAllIsolatesFailures(t *testing.T) {
	store := newFakeStore()
	store.failing["covers/bad.png"] = errors.New("access denied")
	u := NewUploader(store)

	mapping := u.UploadAll(context.Background(), []LocalFile{
		{Key: "logos/a.png"},
		{Key: "covers/bad.png"},
		{Key: "logos/b.png"},
	})
	require.Len(t, mapping, 2)
	require.Contains(t, mapping, "logos/a.png")
	require.Contains(t, mapping, "logos/b.png")
	require.NotContains(t, mapping, "covers/bad.png")
}
