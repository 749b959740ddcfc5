package repositories

import "context"

// FieldUpdater updates a single named column on the row with the given
// primary key. Implementations return domainerrors.ErrNotFound when no
// row matches, so batch callers can tally missing keys without failing.
type FieldUpdater interface {
	UpdateField(ctx context.Context, id, field, value string) error
}

// ImageRef is one stored image-like reference: the row it lives on, the
// column it lives in, and its current value. The asset migration rewrites
// these in place.
type ImageRef struct {
	ID    string
	Field string
	Value string
}

// ImageRefLister enumerates every image-like reference in a table.
type ImageRefLister interface {
	ListImageRefs(ctx context.Context) ([]ImageRef, error)
}
