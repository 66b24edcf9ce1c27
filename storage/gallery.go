package storage

import (
	"fmt"
	"os"

	"github.com/fevooduck/upload-photo/models"
)

// ListImages walks the uploads tree and returns one entry per stored
// original, paired with its thumbnail URL by filename convention. A missing
// root means nothing was uploaded yet and yields an empty listing. A
// per-user directory that cannot be read is logged and skipped; only a root
// read failure propagates to the caller.
//
// os.ReadDir returns entries sorted by name, so the listing order is
// deterministic: slug ascending, then filename ascending.
func (s *Store) ListImages() ([]models.GalleryImage, error) {
	users, err := os.ReadDir(s.Layout.Root)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.GalleryImage{}, nil
		}
		return nil, fmt.Errorf("read uploads root: %w", err)
	}

	images := []models.GalleryImage{}
	for _, u := range users {
		if !u.IsDir() {
			continue
		}
		slug := u.Name()
		files, err := os.ReadDir(s.Layout.UserDir(slug))
		if err != nil {
			s.log.Warnw("skipping unreadable user dir", "slug", slug, "error", err)
			continue
		}
		for _, f := range files {
			// Skips the thumbnails subdirectory and anything else non-regular.
			if f.IsDir() || !f.Type().IsRegular() {
				continue
			}
			images = append(images, models.GalleryImage{
				User:         slug,
				OriginalURL:  s.OriginalURL(slug, f.Name()),
				ThumbnailURL: s.ThumbnailURL(slug, f.Name()),
			})
		}
	}
	return images, nil
}
