package handler

import (
	"net/http"
	"path/filepath"
	"strings"

	"inventario/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxUploadSize = 10 << 20 // 10 MiB

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".pdf":  true,
}

type UploadHandler struct {
	uploadDir string
}

func NewUploadHandler(uploadDir string) *UploadHandler {
	return &UploadHandler{uploadDir: uploadDir}
}

func (h *UploadHandler) RegisterRoutes(router *gin.RouterGroup, auth gin.HandlerFunc) {
	router.POST("/api/upload", auth, h.Upload)
}

// Upload stores a multipart file and returns the path it is served from
// @Summary      Upload file
// @Tags         upload
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "File (jpg, jpeg, png, webp, pdf; max 10 MiB)"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /api/upload [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "No se envió ningún archivo"))
		return
	}

	if file.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "El archivo supera el tamaño máximo de 10 MiB"))
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Tipo de archivo no permitido"))
		return
	}

	// uuid filename prevents collisions and path traversal via the original name
	name := uuid.NewString() + ext
	if err := c.SaveUploadedFile(file, filepath.Join(h.uploadDir, name)); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"file_path": "/files/" + name}))
}
