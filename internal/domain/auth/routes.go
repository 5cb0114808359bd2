package auth

import "github.com/gin-gonic/gin"

func RegisterRoutes(public, protected *gin.RouterGroup, h *Handler) {
	public.POST("/users/register", h.Register)
	public.POST("/users/login", h.Login)

	protected.GET("/users/me", h.Me)
}
