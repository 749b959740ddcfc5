package assets

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"talenthub.backend/internal/domain/repositories"
)

type fakeTable struct {
	refs    []repositories.ImageRef
	listErr error
	failing map[string]error
	updates map[string]string
}

func (f *fakeTable) ListImageRefs(context.Context) ([]repositories.ImageRef, error) {
	return f.refs, f.listErr
}

func (f *fakeTable) UpdateField(_ context.Context, id, _, value string) error {
	if err := f.failing[id]; err != nil {
		return err
	}
	if f.updates == nil {
		f.updates = map[string]string{}
	}
	f.updates[id] = value
	return nil
}

func TestRewrite_UpdatesOnlyChangedRows(t *testing.T) {
	table := &fakeTable{refs: []repositories.ImageRef{
		{ID: "acme", Field: "logo_url", Value: "/logos/acme.png"},
		{ID: "done", Field: "logo_url", Value: "https://cdn.example.com/logos/done.png"},
		{ID: "empty", Field: "logo_url", Value: ""},
	}}
	mapper := NewMapper(map[string]string{
		"logos/acme.png": "https://cdn.example.com/logos/acme.png",
	}, "/assets", "https://cdn.example.com")

	summary := Rewrite(context.Background(), mapper, []Table{
		{Entity: "investments", Lister: table, Updater: table},
	})
	require.Equal(t, RewriteSummary{Scanned: 3, Updated: 1}, summary)
	require.Equal(t, map[string]string{"acme": "https://cdn.example.com/logos/acme.png"}, table.updates)
}

func TestRewrite_CountsFailuresAndContinues(t *testing.T) {
	table := &fakeTable{
		refs: []repositories.ImageRef{
			{ID: "a", Field: "logo_url", Value: "/logos/a.png"},
			{ID: "b", Field: "logo_url", Value: "/logos/b.png"},
		},
		failing: map[string]error{"a": errors.New("deadlock")},
	}
	mapper := NewMapper(map[string]string{
		"logos/a.png": "https://cdn.example.com/logos/a.png",
		"logos/b.png": "https://cdn.example.com/logos/b.png",
	}, "/assets", "https://cdn.example.com")

	summary := Rewrite(context.Background(), mapper, []Table{
		{Entity: "investments", Lister: table, Updater: table},
	})
	require.Equal(t, RewriteSummary{Scanned: 2, Updated: 1, Failed: 1}, summary)
	require.Equal(t, "https://cdn.example.com/logos/b.png", table.updates["b"])
}

func TestRewrite_ListFailureSkipsTable(t *testing.T) {
	broken := &fakeTable{listErr: errors.New("relation missing")}
	healthy := &fakeTable{refs: []repositories.ImageRef{
		{ID: "x", Field: "company_logo", Value: "/logos/x.png"},
	}}
	mapper := NewMapper(map[string]string{
		"logos/x.png": "https://cdn.example.com/logos/x.png",
	}, "/assets", "https://cdn.example.com")

	summary := Rewrite(context.Background(), mapper, []Table{
		{Entity: "announcements", Lister: broken, Updater: broken},
		{Entity: "jobs", Lister: healthy, Updater: healthy},
	})
	require.Equal(t, RewriteSummary{Scanned: 1, Updated: 1, Failed: 1}, summary)
}
