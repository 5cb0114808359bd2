package roomtype

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the taxonomy endpoints. Reads are public;
// mutations are registered on the admin-guarded group.
func RegisterRoutes(public, admin *gin.RouterGroup, h *Handler) {
	public.GET("/roomTypes", h.List)
	public.GET("/roomTypes/:id", h.GetByID)

	admin.POST("/roomTypes", h.Create)
	admin.PUT("/roomTypes/:id", h.Update)
	admin.DELETE("/roomTypes/:id", h.Delete)
}
