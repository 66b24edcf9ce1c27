package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/fevooduck/upload-photo/config"
	"github.com/fevooduck/upload-photo/controllers"
	"github.com/fevooduck/upload-photo/middleware"
	"github.com/fevooduck/upload-photo/storage"
	"github.com/fevooduck/upload-photo/utils"
)

// SetupRouter wires routes, middlewares, and controllers. It never starts a
// listener; the caller decides whether to serve (main does, tests don't).
func SetupRouter(store *storage.Store) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.MaxMultipartMemory = 32 << 20

	// Replace default console logger with file-based zap logger
	gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
	if err == nil {
		r.Use(utils.Ginzap(gl, time.RFC3339, true))
		r.Use(utils.RecoveryWithZap(gl, false))
	} else {
		// fallback to default recovery if logger failed to init
		if utils.Sugar != nil {
			utils.Sugar.Errorw("access logger init failed, requests will not be logged", "path", cfg.GinPath, "error", err)
		}
		r.Use(gin.Recovery())
	}

	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
		corsCfg.AllowCredentials = true
	}
	r.Use(cors.New(corsCfg))

	// Read-only passthrough of the whole uploads tree
	r.Static(storage.PublicPrefix, cfg.UploadsDir)

	r.GET("/health", func(ctx *gin.Context) {
		utils.Success(ctx, gin.H{"status": "ok"})
	})

	uploadController := controllers.NewUploadController(store, cfg.MaxUploadFiles, cfg.MaxFileSizeMB)
	galleryController := controllers.NewGalleryController(store)

	api := r.Group("/api")
	api.GET("", uploadController.APIInfo)
	api.POST("/upload", middleware.RateLimitMiddleware(), uploadController.Upload)
	api.GET("/images", galleryController.ListImages)

	r.NoRoute(func(ctx *gin.Context) {
		if strings.HasPrefix(ctx.Request.URL.Path, "/api/") {
			utils.Error(ctx, http.StatusNotFound, "api route not found")
			return
		}
		ctx.JSON(http.StatusNotFound, gin.H{"message": "not found"})
	})

	return r
}
