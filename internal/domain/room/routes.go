package room

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the listing endpoints. Reads are public; create,
// update and delete require an authenticated caller.
func RegisterRoutes(public, protected *gin.RouterGroup, h *Handler) {
	public.GET("/rooms", h.List)
	public.GET("/rooms/:id", h.GetByID)
	public.GET("/owners/:ownerId/rooms", h.ListByOwner)

	protected.POST("/rooms", h.Create)
	protected.PUT("/rooms/:id", h.Update)
	protected.DELETE("/rooms/:id", h.Delete)
}
