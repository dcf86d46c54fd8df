package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brushline/estimator-backend/internal/logger"
	"github.com/brushline/estimator-backend/internal/services"
)

type ScenarioHandler struct {
	log     *logger.Logger
	catalog services.CatalogService
}

func NewScenarioHandler(log *logger.Logger, catalog services.CatalogService) *ScenarioHandler {
	return &ScenarioHandler{
		log:     log.With("handler", "ScenarioHandler"),
		catalog: catalog,
	}
}

// GET /api/scenarios?surfaceId=
func (h *ScenarioHandler) List(c *gin.Context) {
	surfaceID, ok := requireQueryID(c, "surfaceId")
	if !ok {
		return
	}
	scenarios, err := h.catalog.ListScenarios(c.Request.Context(), nil, surfaceID)
	if err != nil {
		h.log.Error("List scenarios failed", "error", err, "surface_id", surfaceID)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"scenarios": scenarios})
}

type createScenarioRequest struct {
	SurfaceID   string `json:"surfaceId"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
}

// POST /api/scenarios
func (h *ScenarioHandler) Create(c *gin.Context) {
	var req createScenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err)
		return
	}
	surfaceID, err := optionalID(req.SurfaceID)
	if err != nil {
		RespondError(c, http.StatusBadRequest, err)
		return
	}
	scenario, err := h.catalog.CreateScenario(c.Request.Context(), nil, surfaceID, req.Name, req.DisplayName)
	if err != nil {
		h.log.Error("Create scenario failed", "error", err)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"scenario": scenario})
}

// DELETE /api/scenarios?id=
func (h *ScenarioHandler) Delete(c *gin.Context) {
	id, ok := requireQueryID(c, "id")
	if !ok {
		return
	}
	deleted, err := h.catalog.DeleteScenario(c.Request.Context(), nil, id)
	if err != nil {
		h.log.Error("Delete scenario failed", "error", err, "id", id)
		RespondServiceError(c, err)
		return
	}
	if !deleted {
		RespondError(c, http.StatusNotFound, errNotFound("Scenario"))
		return
	}
	RespondOK(c, gin.H{"success": true})
}
