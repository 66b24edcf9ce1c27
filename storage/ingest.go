package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/fevooduck/upload-photo/models"
)

// PublicPrefix is the URL prefix under which the uploads root is served.
const PublicPrefix = "/uploads"

// fieldName prefixes generated filenames, matching the multipart field the
// photos arrive under.
const fieldName = "photos"

// Store persists uploaded photos and their thumbnails under a local uploads
// root. It keeps no state between requests; the directory tree is the only
// source of truth.
type Store struct {
	Layout     Layout
	ThumbWidth int
	BaseURL    string

	log *zap.SugaredLogger
}

// New builds a Store rooted at root. URLs in results are absolute, based on
// baseURL. A nil logger falls back to a no-op logger.
func New(root, baseURL string, thumbWidth int, log *zap.SugaredLogger) *Store {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Store{
		Layout:     Layout{Root: root},
		ThumbWidth: thumbWidth,
		BaseURL:    strings.TrimRight(baseURL, "/"),
		log:        log,
	}
}

// FileResult records the outcome for a single file of a batch.
type FileResult struct {
	File models.UploadedFile
	Err  error
}

// IngestBatch persists every file of the batch under the slug's folder and
// derives its thumbnail. Files are processed concurrently; results come back
// in arrival order. The returned error is the first per-file failure, at
// which point remaining files are cancelled. Files persisted before a
// failure stay on disk.
func (s *Store) IngestBatch(ctx context.Context, slug string, files []*multipart.FileHeader) ([]FileResult, error) {
	if err := s.Layout.EnsureUserDirs(slug); err != nil {
		return nil, fmt.Errorf("ensure user dirs: %w", err)
	}

	results := make([]FileResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	for i := range files {
		i, fh := i, files[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i].Err = err
				return err
			}
			file, err := s.ingestOne(slug, fh)
			if err != nil {
				s.log.Errorw("ingest failed", "slug", slug, "filename", fh.Filename, "error", err)
				results[i].Err = err
				return err
			}
			results[i].File = file
			return nil
		})
	}
	err := g.Wait()
	return results, err
}

// ingestOne persists a single uploaded file and its thumbnail.
func (s *Store) ingestOne(slug string, fh *multipart.FileHeader) (models.UploadedFile, error) {
	name := newFilename(fh.Filename)
	dst := s.Layout.OriginalPath(slug, name)

	if err := saveUploadedFile(fh, dst); err != nil {
		return models.UploadedFile{}, fmt.Errorf("persist %s: %w", fh.Filename, err)
	}
	if err := createThumbnail(dst, s.Layout.ThumbnailPath(slug, name), s.ThumbWidth); err != nil {
		return models.UploadedFile{}, fmt.Errorf("thumbnail %s: %w", fh.Filename, err)
	}

	return models.UploadedFile{
		Filename:     name,
		OriginalURL:  s.OriginalURL(slug, name),
		ThumbnailURL: s.ThumbnailURL(slug, name),
	}, nil
}

// OriginalURL builds the public URL for a stored original.
func (s *Store) OriginalURL(slug, filename string) string {
	return s.BaseURL + PublicPrefix + "/" + slug + "/" + filename
}

// ThumbnailURL builds the public URL for a stored thumbnail.
func (s *Store) ThumbnailURL(slug, filename string) string {
	return s.BaseURL + PublicPrefix + "/" + slug + "/" + ThumbnailsDirName + "/" + filename
}

// newFilename generates a collision resistant name preserving the original
// extension: photos-<unix ms>-<uuid><ext>. Randomness stands in for any
// cross-request coordination; concurrent submissions under the same slug
// cannot collide in practice.
func newFilename(original string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(original)))
	return fmt.Sprintf("%s-%d-%s%s", fieldName, time.Now().UnixMilli(), uuid.NewString(), ext)
}

func saveUploadedFile(fh *multipart.FileHeader, dst string) error {
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	return out.Close()
}
