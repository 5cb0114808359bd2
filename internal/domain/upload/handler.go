package upload

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"roomrental/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// UploadImage handles POST /rooms/upload-image (multipart field "images").
func (h *Handler) UploadImage(c *gin.Context) {
	h.upload(c, "images", KindImage, "Image uploaded successfully")
}

// UploadVideo handles POST /rooms/upload-video (multipart field "videos").
func (h *Handler) UploadVideo(c *gin.Context) {
	h.upload(c, "videos", KindVideo, "Video uploaded successfully")
}

func (h *Handler) upload(c *gin.Context, field string, kind Kind, okMessage string) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Please upload a file in the "+field+" field")
		return
	}

	filename, err := h.service.Save(fileHeader, kind)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    filename,
		"message": okMessage,
	})
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNoFile),
		errors.Is(err, ErrFileTooLarge),
		errors.Is(err, ErrBadFileType):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Upload failed")
	}
}
