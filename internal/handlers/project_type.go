package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brushline/estimator-backend/internal/logger"
	"github.com/brushline/estimator-backend/internal/services"
)

type ProjectTypeHandler struct {
	log     *logger.Logger
	catalog services.CatalogService
}

func NewProjectTypeHandler(log *logger.Logger, catalog services.CatalogService) *ProjectTypeHandler {
	return &ProjectTypeHandler{
		log:     log.With("handler", "ProjectTypeHandler"),
		catalog: catalog,
	}
}

// GET /api/project-types
func (h *ProjectTypeHandler) List(c *gin.Context) {
	projectTypes, err := h.catalog.ListProjectTypes(c.Request.Context(), nil)
	if err != nil {
		h.log.Error("List project types failed", "error", err)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"projectTypes": projectTypes})
}

type createProjectTypeRequest struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
}

// POST /api/project-types
func (h *ProjectTypeHandler) Create(c *gin.Context) {
	var req createProjectTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err)
		return
	}
	projectType, err := h.catalog.CreateProjectType(c.Request.Context(), nil, req.Name, req.DisplayName)
	if err != nil {
		h.log.Error("Create project type failed", "error", err)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"projectType": projectType})
}

// DELETE /api/project-types?id=
func (h *ProjectTypeHandler) Delete(c *gin.Context) {
	id, ok := requireQueryID(c, "id")
	if !ok {
		return
	}
	deleted, err := h.catalog.DeleteProjectType(c.Request.Context(), nil, id)
	if err != nil {
		h.log.Error("Delete project type failed", "error", err, "id", id)
		RespondServiceError(c, err)
		return
	}
	if !deleted {
		RespondError(c, http.StatusNotFound, errNotFound("Project type"))
		return
	}
	RespondOK(c, gin.H{"success": true})
}
