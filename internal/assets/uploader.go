package assets

import (
	"context"

	"go.uber.org/zap"

	"talenthub.backend/pkg/logger"
)

// ObjectStore is the slice of an S3-compatible API the migration needs.
type ObjectStore interface {
	Exists(ctx context.Context, key string) (bool, error)
	Put(ctx context.Context, key, localPath, contentType string) error
	PublicURL(key string) string
}

// Uploader pushes local files into the object store. A per-run memo of
// key -> public URL skips repeat existence checks when several records
// reference the same file.
type Uploader struct {
	store ObjectStore
	memo  map[string]string
}

func NewUploader(store ObjectStore) *Uploader {
	return &Uploader{store: store, memo: map[string]string{}}
}

// Upload stores one file unless it already exists remotely. The public
// URL is returned either way, since the path mapping needs it even for
// skipped transfers.
func (u *Uploader) Upload(ctx context.Context, f LocalFile) (string, error) {
	if url, ok := u.memo[f.Key]; ok {
		return url, nil
	}

	exists, err := u.store.Exists(ctx, f.Key)
	if err != nil {
		return "", err
	}
	if exists {
		logger.Info(ctx, "asset already uploaded, skipping transfer",
			zap.String("key", f.Key))
	} else {
		if err := u.store.Put(ctx, f.Key, f.Path, f.ContentType); err != nil {
			return "", err
		}
		logger.Info(ctx, "asset uploaded",
			zap.String("key", f.Key),
			zap.String("content_type", f.ContentType))
	}

	url := u.store.PublicURL(f.Key)
	u.memo[f.Key] = url
	return url, nil
}

// UploadAll uploads every file and returns the key -> public URL map for
// the ones that succeeded. One file's failure is logged with its name
// and does not stop the rest of the walk.
func (u *Uploader) UploadAll(ctx context.Context, files []LocalFile) map[string]string {
	mapping := make(map[string]string, len(files))
	for _, f := range files {
		url, err := u.Upload(ctx, f)
		if err != nil {
			logger.Error(ctx, "asset upload failed",
				zap.String("key", f.Key),
				zap.String("path", f.Path),
				zap.Error(err))
			continue
		}
		mapping[f.Key] = url
	}
	return mapping
}
