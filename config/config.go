package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// AppConfig holds environment driven configuration values.
type AppConfig struct {
	AppPort       string
	PublicBaseURL string

	// Upload storage
	UploadsDir     string
	ThumbnailWidth int
	MaxUploadFiles int
	MaxFileSizeMB  int

	RateLimitPerMinute int
	AllowedOrigins     []string

	// Gin framework configuration
	GinMode string
	GinPath string

	// Logging configuration
	LogLevel      string
	LogPath       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
	LogCompress   bool
}

var cfg AppConfig
var loaded bool

// Load loads the application configuration. It should be called once during boot.
// Precedence: config/config.json -> defaults -> environment variable overrides.
func Load() AppConfig {
	if loaded {
		return cfg
	}

	_ = godotenv.Load()

	_ = loadJSONConfig(filepath.Join("config", "config.json"), &cfg)

	applyDefaults(&cfg)

	applyEnvOverrides(&cfg)

	if cfg.PublicBaseURL == "" {
		cfg.PublicBaseURL = "http://localhost:" + cfg.AppPort
	}
	cfg.PublicBaseURL = strings.TrimRight(cfg.PublicBaseURL, "/")

	loaded = true
	return cfg
}

// Get returns the cached configuration, loading it if necessary.
func Get() AppConfig {
	if !loaded {
		return Load()
	}
	return cfg
}

// Reset clears the cached configuration so the next Load starts fresh.
// Intended for tests.
func Reset() {
	cfg = AppConfig{}
	loaded = false
}

// jsonConfig mirrors AppConfig with pointer fields so absent keys are
// distinguishable from zero values.
type jsonConfig struct {
	AppPort            *string  `json:"app_port"`
	PublicBaseURL      *string  `json:"public_base_url"`
	UploadsDir         *string  `json:"uploads_dir"`
	ThumbnailWidth     *int     `json:"thumbnail_width"`
	MaxUploadFiles     *int     `json:"max_upload_files"`
	MaxFileSizeMB      *int     `json:"max_file_size_mb"`
	RateLimitPerMinute *int     `json:"rate_limit_per_minute"`
	AllowedOrigins     []string `json:"allowed_origins"`
	GinMode            *string  `json:"gin_mode"`
	GinPath            *string  `json:"gin_path"`
	LogLevel           *string  `json:"log_level"`
	LogPath            *string  `json:"log_path"`
	LogMaxSizeMB       *int     `json:"log_max_size_mb"`
	LogMaxBackups      *int     `json:"log_max_backups"`
	LogMaxAgeDays      *int     `json:"log_max_age_days"`
	LogCompress        *bool    `json:"log_compress"`
}

func loadJSONConfig(path string, out *AppConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return err
	}
	if jc.AppPort != nil {
		out.AppPort = *jc.AppPort
	}
	if jc.PublicBaseURL != nil {
		out.PublicBaseURL = *jc.PublicBaseURL
	}
	if jc.UploadsDir != nil {
		out.UploadsDir = *jc.UploadsDir
	}
	if jc.ThumbnailWidth != nil {
		out.ThumbnailWidth = *jc.ThumbnailWidth
	}
	if jc.MaxUploadFiles != nil {
		out.MaxUploadFiles = *jc.MaxUploadFiles
	}
	if jc.MaxFileSizeMB != nil {
		out.MaxFileSizeMB = *jc.MaxFileSizeMB
	}
	if jc.RateLimitPerMinute != nil {
		out.RateLimitPerMinute = *jc.RateLimitPerMinute
	}
	if len(jc.AllowedOrigins) > 0 {
		out.AllowedOrigins = jc.AllowedOrigins
	}
	if jc.GinMode != nil {
		out.GinMode = *jc.GinMode
	}
	if jc.GinPath != nil {
		out.GinPath = *jc.GinPath
	}
	if jc.LogLevel != nil {
		out.LogLevel = *jc.LogLevel
	}
	if jc.LogPath != nil {
		out.LogPath = *jc.LogPath
	}
	if jc.LogMaxSizeMB != nil {
		out.LogMaxSizeMB = *jc.LogMaxSizeMB
	}
	if jc.LogMaxBackups != nil {
		out.LogMaxBackups = *jc.LogMaxBackups
	}
	if jc.LogMaxAgeDays != nil {
		out.LogMaxAgeDays = *jc.LogMaxAgeDays
	}
	if jc.LogCompress != nil {
		out.LogCompress = *jc.LogCompress
	}
	return nil
}

func applyDefaults(c *AppConfig) {
	if c.AppPort == "" {
		c.AppPort = "4000"
	}
	if c.UploadsDir == "" {
		c.UploadsDir = "uploads"
	}
	if c.ThumbnailWidth <= 0 {
		c.ThumbnailWidth = 400
	}
	if c.MaxUploadFiles <= 0 {
		c.MaxUploadFiles = 10
	}
	if c.MaxFileSizeMB <= 0 {
		c.MaxFileSizeMB = 15
	}
	if c.RateLimitPerMinute <= 0 {
		c.RateLimitPerMinute = 60
	}
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = []string{"*"}
	}
	if c.GinMode == "" {
		c.GinMode = "release"
	}
	if c.GinPath == "" {
		c.GinPath = "logs/gin.log"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogPath == "" {
		c.LogPath = "logs/app.log"
	}
	if c.LogMaxSizeMB == 0 {
		c.LogMaxSizeMB = 100
	}
	if c.LogMaxBackups == 0 {
		c.LogMaxBackups = 3
	}
	if c.LogMaxAgeDays == 0 {
		c.LogMaxAgeDays = 7
	}
}

func applyEnvOverrides(c *AppConfig) {
	c.AppPort = getEnv("PORT", c.AppPort)
	c.PublicBaseURL = getEnv("PUBLIC_BASE_URL", c.PublicBaseURL)
	c.UploadsDir = getEnv("UPLOADS_DIR", c.UploadsDir)
	c.ThumbnailWidth = getIntEnv("THUMBNAIL_WIDTH", c.ThumbnailWidth)
	c.MaxUploadFiles = getIntEnv("MAX_UPLOAD_FILES", c.MaxUploadFiles)
	c.MaxFileSizeMB = getIntEnv("MAX_FILE_SIZE_MB", c.MaxFileSizeMB)
	c.RateLimitPerMinute = getIntEnv("RATE_LIMIT_PER_MINUTE", c.RateLimitPerMinute)
	c.AllowedOrigins = readListEnv("ALLOWED_ORIGINS", c.AllowedOrigins)
	c.GinMode = getEnv("GIN_MODE", c.GinMode)
	c.GinPath = getEnv("GIN_PATH", c.GinPath)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.LogPath = getEnv("LOG_PATH", c.LogPath)
	c.LogMaxSizeMB = getIntEnv("LOG_MAX_SIZE_MB", c.LogMaxSizeMB)
	c.LogMaxBackups = getIntEnv("LOG_MAX_BACKUPS", c.LogMaxBackups)
	c.LogMaxAgeDays = getIntEnv("LOG_MAX_AGE_DAYS", c.LogMaxAgeDays)
	if v := os.Getenv("LOG_COMPRESS"); v != "" {
		c.LogCompress = v == "1" || strings.EqualFold(v, "true")
	}
}

func getEnv(key, defaultVal string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return defaultVal
}

// getIntEnv parses an integer environment variable, keeping the current value
// when the variable is unset, blank, or not a number.
func getIntEnv(key string, defaultVal int) int {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return defaultVal
	}
	return n
}

func readListEnv(key string, defaults []string) []string {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return defaults
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaults
	}
	return out
}
