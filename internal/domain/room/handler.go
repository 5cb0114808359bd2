package room

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"roomrental/internal/middleware"
	"roomrental/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create handles POST /rooms
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	room, err := h.service.Create(c.Request.Context(), middleware.CurrentUserID(c), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, room)
}

// List handles GET /rooms with optional filters and pagination.
func (h *Handler) List(c *gin.Context) {
	var q ListQuery
	q.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	q.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))

	q.OwnerID = c.Query("ownerId")
	q.ApprovalStatus = c.Query("approvalStatus")
	if raw := c.Query("isAvailable"); raw != "" {
		avail := raw == "true"
		q.IsAvailable = &avail
	}
	q.Normalize()

	rooms, total, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Page(c, http.StatusOK, rooms, len(rooms), total, q.Page, Pages(total, q.Limit))
}

// GetByID handles GET /rooms/:id
func (h *Handler) GetByID(c *gin.Context) {
	details, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, details)
}

// ListByOwner handles GET /owners/:ownerId/rooms
func (h *Handler) ListByOwner(c *gin.Context) {
	details, err := h.service.ListByOwner(c.Request.Context(), c.Param("ownerId"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.List(c, http.StatusOK, details, len(details))
}

// Update handles PUT /rooms/:id
func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	room, err := h.service.Update(c.Request.Context(), c.Param("id"), middleware.CurrentUserID(c), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, room)
}

// Delete handles DELETE /rooms/:id
func (h *Handler) Delete(c *gin.Context) {
	err := h.service.Delete(c.Request.Context(), c.Param("id"), middleware.CurrentUserID(c))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Room deleted successfully")
}

func handleError(c *gin.Context, err error) {
	var vErr *ValidationError
	switch {
	case errors.As(err, &vErr):
		if len(vErr.Fields) > 0 {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", vErr.Message, vErr.Fields)
			return
		}
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", vErr.Message)
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
	case errors.Is(err, ErrNotOwner):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
	}
}
