package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brushline/estimator-backend/internal/logger"
	"github.com/brushline/estimator-backend/internal/services"
)

type SurfaceHandler struct {
	log     *logger.Logger
	catalog services.CatalogService
}

func NewSurfaceHandler(log *logger.Logger, catalog services.CatalogService) *SurfaceHandler {
	return &SurfaceHandler{
		log:     log.With("handler", "SurfaceHandler"),
		catalog: catalog,
	}
}

// GET /api/surfaces?projectTypeId=
func (h *SurfaceHandler) List(c *gin.Context) {
	projectTypeID, ok := requireQueryID(c, "projectTypeId")
	if !ok {
		return
	}
	surfaces, err := h.catalog.ListSurfaces(c.Request.Context(), nil, projectTypeID)
	if err != nil {
		h.log.Error("List surfaces failed", "error", err, "project_type_id", projectTypeID)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"surfaces": surfaces})
}

type createSurfaceRequest struct {
	ProjectTypeID string `json:"projectTypeId"`
	Name          string `json:"name"`
	DisplayName   string `json:"displayName"`
}

// POST /api/surfaces
func (h *SurfaceHandler) Create(c *gin.Context) {
	var req createSurfaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err)
		return
	}
	projectTypeID, err := optionalID(req.ProjectTypeID)
	if err != nil {
		RespondError(c, http.StatusBadRequest, err)
		return
	}
	surface, err := h.catalog.CreateSurface(c.Request.Context(), nil, projectTypeID, req.Name, req.DisplayName)
	if err != nil {
		h.log.Error("Create surface failed", "error", err)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"surface": surface})
}

// DELETE /api/surfaces?id=
func (h *SurfaceHandler) Delete(c *gin.Context) {
	id, ok := requireQueryID(c, "id")
	if !ok {
		return
	}
	deleted, err := h.catalog.DeleteSurface(c.Request.Context(), nil, id)
	if err != nil {
		h.log.Error("Delete surface failed", "error", err, "id", id)
		RespondServiceError(c, err)
		return
	}
	if !deleted {
		RespondError(c, http.StatusNotFound, errNotFound("Surface"))
		return
	}
	RespondOK(c, gin.H{"success": true})
}
