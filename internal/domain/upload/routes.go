package upload

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the media upload endpoints on the protected group.
func RegisterRoutes(protected *gin.RouterGroup, h *Handler) {
	protected.POST("/rooms/upload-image", h.UploadImage)
	protected.POST("/rooms/upload-video", h.UploadVideo)
}
