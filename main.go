package main

import (
	"os"

	"github.com/fevooduck/upload-photo/config"
	"github.com/fevooduck/upload-photo/routes"
	"github.com/fevooduck/upload-photo/storage"
	"github.com/fevooduck/upload-photo/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	// The uploads root must exist before the static route and first upload
	if err := os.MkdirAll(cfg.UploadsDir, 0o755); err != nil {
		utils.Sugar.Fatalf("create uploads dir %s: %v", cfg.UploadsDir, err)
	}

	store := storage.New(cfg.UploadsDir, cfg.PublicBaseURL, cfg.ThumbnailWidth, utils.Sugar)
	r := routes.SetupRouter(store)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
