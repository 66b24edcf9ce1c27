package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "PUBLIC_BASE_URL", "UPLOADS_DIR", "THUMBNAIL_WIDTH", "MAX_UPLOAD_FILES", "MAX_FILE_SIZE_MB", "ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}
	Reset()
	t.Cleanup(Reset)

	cfg := Load()

	if cfg.AppPort != "4000" {
		t.Errorf("AppPort = %q, want 4000", cfg.AppPort)
	}
	if cfg.PublicBaseURL != "http://localhost:4000" {
		t.Errorf("PublicBaseURL = %q", cfg.PublicBaseURL)
	}
	if cfg.UploadsDir != "uploads" {
		t.Errorf("UploadsDir = %q", cfg.UploadsDir)
	}
	if cfg.ThumbnailWidth != 400 {
		t.Errorf("ThumbnailWidth = %d", cfg.ThumbnailWidth)
	}
	if cfg.MaxUploadFiles != 10 {
		t.Errorf("MaxUploadFiles = %d", cfg.MaxUploadFiles)
	}
	if cfg.MaxFileSizeMB != 15 {
		t.Errorf("MaxFileSizeMB = %d", cfg.MaxFileSizeMB)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "*" {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("PUBLIC_BASE_URL", "https://fotos.example.com/")
	t.Setenv("UPLOADS_DIR", "/srv/fotos")
	t.Setenv("THUMBNAIL_WIDTH", "320")
	t.Setenv("MAX_UPLOAD_FILES", "5")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")

	Reset()
	t.Cleanup(Reset)

	cfg := Load()

	if cfg.AppPort != "8081" {
		t.Errorf("AppPort = %q", cfg.AppPort)
	}
	if cfg.PublicBaseURL != "https://fotos.example.com" {
		t.Errorf("PublicBaseURL = %q, trailing slash should be trimmed", cfg.PublicBaseURL)
	}
	if cfg.UploadsDir != "/srv/fotos" {
		t.Errorf("UploadsDir = %q", cfg.UploadsDir)
	}
	if cfg.ThumbnailWidth != 320 {
		t.Errorf("ThumbnailWidth = %d", cfg.ThumbnailWidth)
	}
	if cfg.MaxUploadFiles != 5 {
		t.Errorf("MaxUploadFiles = %d", cfg.MaxUploadFiles)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example.com" {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
}

func TestLoadNonNumericIntKeptAtDefault(t *testing.T) {
	t.Setenv("THUMBNAIL_WIDTH", "abc")
	t.Setenv("MAX_UPLOAD_FILES", "4,5")
	t.Setenv("MAX_FILE_SIZE_MB", "")
	Reset()
	t.Cleanup(Reset)

	cfg := Load()

	if cfg.ThumbnailWidth != 400 {
		t.Errorf("ThumbnailWidth = %d, want default 400 for a non-numeric value", cfg.ThumbnailWidth)
	}
	if cfg.MaxUploadFiles != 10 {
		t.Errorf("MaxUploadFiles = %d, want default 10 for a non-numeric value", cfg.MaxUploadFiles)
	}
	if cfg.MaxFileSizeMB != 15 {
		t.Errorf("MaxFileSizeMB = %d, want default 15 for a blank value", cfg.MaxFileSizeMB)
	}
}

func TestGetCaches(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	first := Get()
	second := Get()
	if second.AppPort != first.AppPort || second.UploadsDir != first.UploadsDir {
		t.Errorf("Get not cached: %+v vs %+v", first, second)
	}
}
