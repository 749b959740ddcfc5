package assets

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"talenthub.backend/pkg/logger"
)

// Mapper converts stored local asset references into object-store URLs.
// It is built once per run from the uploader's key -> URL mapping.
type Mapper struct {
	mapping     map[string]string
	localPrefix string
	publicBase  string
}

// NewMapper builds a mapper. localPrefix is the on-disk prefix old
// references carry (e.g. "/assets"); publicBase is the read-side domain
// uploaded files are served from.
func NewMapper(mapping map[string]string, localPrefix, publicBase string) *Mapper {
	return &Mapper{
		mapping:     mapping,
		localPrefix: strings.TrimSuffix(localPrefix, "/"),
		publicBase:  strings.TrimSuffix(publicBase, "/"),
	}
}

// Resolve maps one stored reference to its object-store URL.
// Precedence: a fully-qualified http(s) URL is returned unchanged; then
// an exact mapping lookup of the reference and its variant without the
// leading slash; finally a fallback that strips the known local prefix
// and joins the remainder onto the public base. The fallback URL is not
// checked against the store, so it is logged in case the guess is wrong.
func (m *Mapper) Resolve(ref string) string {
	if ref == "" {
		return ref
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}

	if url, ok := m.mapping[ref]; ok {
		return url
	}
	trimmed := strings.TrimPrefix(ref, "/")
	if url, ok := m.mapping[trimmed]; ok {
		return url
	}

	key := strings.TrimPrefix(ref, "/")
	if prefix := strings.TrimPrefix(m.localPrefix, "/"); prefix != "" {
		key = strings.TrimPrefix(key, prefix+"/")
	}
	url := m.publicBase + "/" + key
	logger.Warn(context.Background(), "asset reference not in upload set, using constructed url",
		zap.String("ref", ref),
		zap.String("url", url))
	return url
}
