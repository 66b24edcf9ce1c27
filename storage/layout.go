package storage

import (
	"os"
	"path/filepath"
)

// ThumbnailsDirName is the per-user subdirectory holding derived thumbnails.
// It is reserved: gallery listing skips it and it never appears as a slug.
const ThumbnailsDirName = "thumbnails"

// Layout maps submitter slugs to their directory pair under the uploads root:
// <root>/<slug>/ for originals and <root>/<slug>/thumbnails/ for thumbnails.
type Layout struct {
	Root string
}

func (l Layout) UserDir(slug string) string {
	return filepath.Join(l.Root, slug)
}

func (l Layout) ThumbnailDir(slug string) string {
	return filepath.Join(l.Root, slug, ThumbnailsDirName)
}

func (l Layout) OriginalPath(slug, filename string) string {
	return filepath.Join(l.Root, slug, filename)
}

func (l Layout) ThumbnailPath(slug, filename string) string {
	return filepath.Join(l.Root, slug, ThumbnailsDirName, filename)
}

// EnsureUserDirs guarantees the slug's directory pair exists before any write.
// MkdirAll creates missing parents and succeeds when the tree is already
// present, so the call is idempotent and safe under concurrent requests.
func (l Layout) EnsureUserDirs(slug string) error {
	return os.MkdirAll(l.ThumbnailDir(slug), 0o755)
}
