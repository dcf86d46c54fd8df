package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brushline/estimator-backend/internal/logger"
	"github.com/brushline/estimator-backend/internal/services"
)

type MaterialHandler struct {
	log     *logger.Logger
	catalog services.CatalogService
}

func NewMaterialHandler(log *logger.Logger, catalog services.CatalogService) *MaterialHandler {
	return &MaterialHandler{
		log:     log.With("handler", "MaterialHandler"),
		catalog: catalog,
	}
}

// GET /api/materials
func (h *MaterialHandler) List(c *gin.Context) {
	materials, err := h.catalog.ListMaterials(c.Request.Context(), nil)
	if err != nil {
		h.log.Error("List materials failed", "error", err)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"materials": materials})
}

type createMaterialRequest struct {
	Name        string   `json:"name"`
	DisplayName string   `json:"displayName"`
	Unit        string   `json:"unit"`
	CostPerUnit *float64 `json:"costPerUnit"`
}

// POST /api/materials
func (h *MaterialHandler) Create(c *gin.Context) {
	var req createMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err)
		return
	}
	material, err := h.catalog.CreateMaterial(c.Request.Context(), nil, req.Name, req.DisplayName, req.Unit, req.CostPerUnit)
	if err != nil {
		h.log.Error("Create material failed", "error", err)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"material": material})
}

// DELETE /api/materials?id=
func (h *MaterialHandler) Delete(c *gin.Context) {
	id, ok := requireQueryID(c, "id")
	if !ok {
		return
	}
	deleted, err := h.catalog.DeleteMaterial(c.Request.Context(), nil, id)
	if err != nil {
		h.log.Error("Delete material failed", "error", err, "id", id)
		RespondServiceError(c, err)
		return
	}
	if !deleted {
		RespondError(c, http.StatusNotFound, errNotFound("Material"))
		return
	}
	RespondOK(c, gin.H{"success": true})
}
