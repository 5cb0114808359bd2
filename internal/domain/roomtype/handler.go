package roomtype

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

type createRequest struct {
	TypeName string `json:"typeName"`
	Status   Status `json:"status"`
}

type updateRequest struct {
	TypeName string `json:"typeName"`
	Status   Status `json:"status"`
}

// Create handles POST /roomTypes
func (h *Handler) Create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Room type name is required")
		return
	}

	t, err := h.service.Create(c.Request.Context(), req.TypeName, req.Status)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, t)
}

// List handles GET /roomTypes
func (h *Handler) List(c *gin.Context) {
	types, err := h.service.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, types)
}

// GetByID handles GET /roomTypes/:id
func (h *Handler) GetByID(c *gin.Context) {
	t, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, t)
}

// Update handles PUT /roomTypes/:id
func (h *Handler) Update(c *gin.Context) {
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	t, err := h.service.Update(c.Request.Context(), c.Param("id"), UpdateInput{
		TypeName: req.TypeName,
		Status:   req.Status,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, t)
}

// Delete handles DELETE /roomTypes/:id
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Room type deleted successfully")
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room type not found")
	case errors.Is(err, ErrNameTaken):
		response.Error(c, http.StatusConflict, "CONFLICT", err.Error())
	case errors.Is(err, ErrNameRequired),
		errors.Is(err, ErrInvalidName),
		errors.Is(err, ErrInvalidStatus):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
	}
}
