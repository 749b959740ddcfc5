// Package assets migrates locally stored image files into S3-compatible
// object storage and rewrites the datastore references that pointed at
// the old local paths.
package assets

import (
	"os"
	"path"
	"path/filepath"
	"strings"
)

// imageMIMETypes maps file extensions to upload content types. Files
// with any other extension are not assets and are skipped.
var imageMIMETypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
	".ico":  "image/x-icon",
	".avif": "image/avif",
}

// LocalFile is one image found on disk, with the object key it will be
// stored under. Keys keep the relative folder structure and always use
// forward slashes.
type LocalFile struct {
	Path        string
	Key         string
	ContentType string
}

// Walk lists the image files in the named subdirectories of root. Only
// the given directories are read, one level deep; nested directories
// are ignored.
func Walk(root string, subdirs []string) ([]LocalFile, error) {
	var files []LocalFile
	for _, sub := range subdirs {
		entries, err := os.ReadDir(filepath.Join(root, sub))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			contentType, ok := imageMIMETypes[strings.ToLower(filepath.Ext(entry.Name()))]
			if !ok {
				continue
			}
			files = append(files, LocalFile{
				Path:        filepath.Join(root, sub, entry.Name()),
				Key:         path.Join(sub, entry.Name()),
				ContentType: contentType,
			})
		}
	}
	return files, nil
}
