package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fevooduck/upload-photo/storage"
	"github.com/fevooduck/upload-photo/utils"
)

// GalleryController serves the flat listing of every stored image.
type GalleryController struct {
	Store *storage.Store
}

func NewGalleryController(store *storage.Store) *GalleryController {
	return &GalleryController{Store: store}
}

// ListImages returns all stored images as a flat JSON array. The listing is
// derived from the directory tree on every call; there is no index.
func (g *GalleryController) ListImages(ctx *gin.Context) {
	images, err := g.Store.ListImages()
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "Erro ao listar as imagens.")
		return
	}
	ctx.JSON(http.StatusOK, images)
}
