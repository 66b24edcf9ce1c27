package controllers

import (
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fevooduck/upload-photo/models"
	"github.com/fevooduck/upload-photo/storage"
	"github.com/fevooduck/upload-photo/utils"
)

// Client-visible messages. The empty-batch error and the success message are
// part of the API contract and must not change.
const (
	MsgAPIRunning      = "API de upload de fotos funcionando!"
	MsgUploadSuccess   = "Upload realizado com sucesso!"
	MsgNoFiles         = "Nenhum arquivo foi enviado."
	MsgProcessingError = "Erro ao processar o upload."
)

// UploadController handles photo submissions.
type UploadController struct {
	Store    *storage.Store
	MaxFiles int
	MaxBytes int64
}

func NewUploadController(store *storage.Store, maxFiles, maxFileSizeMB int) *UploadController {
	return &UploadController{
		Store:    store,
		MaxFiles: maxFiles,
		MaxBytes: int64(maxFileSizeMB) << 20,
	}
}

// APIInfo answers the health/info route.
func (u *UploadController) APIInfo(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": MsgAPIRunning})
}

// Upload receives a multipart batch: a free-text "name" field and up to
// MaxFiles "photos" parts. The batch is validated before anything touches
// the filesystem. Processing is all-or-nothing: one failed file turns the
// whole batch into a 500 with no partial results in the response.
func (u *UploadController) Upload(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, MsgNoFiles)
		return
	}

	files := form.File["photos"]
	if len(files) == 0 {
		utils.Error(ctx, http.StatusBadRequest, MsgNoFiles)
		return
	}
	if len(files) > u.MaxFiles {
		utils.Error(ctx, http.StatusBadRequest,
			fmt.Sprintf("Número máximo de arquivos por envio: %d.", u.MaxFiles))
		return
	}
	if name, ok := u.oversizeFile(files); ok {
		utils.Error(ctx, http.StatusBadRequest,
			fmt.Sprintf("O arquivo %s excede o limite de %d MB.", name, u.MaxBytes>>20))
		return
	}

	slug := utils.Slugify(ctx.PostForm("name"))

	results, err := u.Store.IngestBatch(ctx.Request.Context(), slug, files)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, MsgProcessingError)
		return
	}

	stored := make([]models.UploadedFile, 0, len(results))
	for _, r := range results {
		stored = append(stored, r.File)
	}
	ctx.JSON(http.StatusOK, gin.H{
		"message": MsgUploadSuccess,
		"files":   stored,
	})
}

func (u *UploadController) oversizeFile(files []*multipart.FileHeader) (string, bool) {
	for _, fh := range files {
		if fh.Size > u.MaxBytes {
			return fh.Filename, true
		}
	}
	return "", false
}
