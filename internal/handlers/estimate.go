package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brushline/estimator-backend/internal/export"
	"github.com/brushline/estimator-backend/internal/logger"
	"github.com/brushline/estimator-backend/internal/services"
)

type EstimateHandler struct {
	log       *logger.Logger
	estimates services.EstimateService
}

func NewEstimateHandler(log *logger.Logger, estimates services.EstimateService) *EstimateHandler {
	return &EstimateHandler{
		log:       log.With("handler", "EstimateHandler"),
		estimates: estimates,
	}
}

// GET /api/estimates
func (h *EstimateHandler) List(c *gin.Context) {
	estimates, err := h.estimates.ListEstimates(c.Request.Context(), nil)
	if err != nil {
		h.log.Error("List estimates failed", "error", err)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"estimates": estimates})
}

type createEstimateRequest struct {
	Name *string `json:"name"`
}

// POST /api/estimates
func (h *EstimateHandler) Create(c *gin.Context) {
	var req createEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err)
		return
	}
	estimate, err := h.estimates.CreateEstimate(c.Request.Context(), nil, req.Name)
	if err != nil {
		h.log.Error("Create estimate failed", "error", err)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"estimate": estimate})
}

// GET /api/estimates/:id
func (h *EstimateHandler) Get(c *gin.Context) {
	id, ok := requireParamID(c, "id")
	if !ok {
		return
	}
	estimate, err := h.estimates.GetEstimateWithItems(c.Request.Context(), nil, id)
	if err != nil {
		h.log.Error("Get estimate failed", "error", err, "id", id)
		RespondServiceError(c, err)
		return
	}
	if estimate == nil {
		RespondError(c, http.StatusNotFound, errNotFound("Estimate"))
		return
	}
	RespondOK(c, gin.H{"estimate": estimate})
}

// GET /api/estimates/:id/export
// Streams the Builder Trend CSV as a file download.
func (h *EstimateHandler) Export(c *gin.Context) {
	id, ok := requireParamID(c, "id")
	if !ok {
		return
	}
	estimate, err := h.estimates.GetEstimateWithItems(c.Request.Context(), nil, id)
	if err != nil {
		h.log.Error("Export estimate failed", "error", err, "id", id)
		RespondServiceError(c, err)
		return
	}
	if estimate == nil {
		RespondError(c, http.StatusNotFound, errNotFound("Estimate"))
		return
	}
	doc := export.EstimateCSV(estimate)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(estimate.ID.String())))
	c.Data(http.StatusOK, "text/csv", []byte(doc))
}

type createEstimateItemRequest struct {
	EstimateID    string                   `json:"estimateId"`
	ProjectTypeID string                   `json:"projectTypeId"`
	SurfaceID     string                   `json:"surfaceId"`
	ScenarioID    string                   `json:"scenarioId"`
	Size          *float64                 `json:"size"`
	CostCode      *string                  `json:"costCode"`
	Materials     []estimateItemMaterialIn `json:"materials"`
}

type estimateItemMaterialIn struct {
	MaterialID string  `json:"materialId"`
	Quantity   float64 `json:"quantity"`
}

// POST /api/estimate-items
func (h *EstimateHandler) CreateItem(c *gin.Context) {
	var req createEstimateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err)
		return
	}
	input := services.CreateEstimateItemInput{
		Size:     req.Size,
		CostCode: req.CostCode,
	}
	var err error
	if input.EstimateID, err = optionalID(req.EstimateID); err != nil {
		RespondError(c, http.StatusBadRequest, err)
		return
	}
	if input.ProjectTypeID, err = optionalID(req.ProjectTypeID); err != nil {
		RespondError(c, http.StatusBadRequest, err)
		return
	}
	if input.SurfaceID, err = optionalID(req.SurfaceID); err != nil {
		RespondError(c, http.StatusBadRequest, err)
		return
	}
	if input.ScenarioID, err = optionalID(req.ScenarioID); err != nil {
		RespondError(c, http.StatusBadRequest, err)
		return
	}
	for _, usage := range req.Materials {
		materialID, err := optionalID(usage.MaterialID)
		if err != nil {
			RespondError(c, http.StatusBadRequest, err)
			return
		}
		input.Materials = append(input.Materials, services.MaterialUsage{
			MaterialID: materialID,
			Quantity:   usage.Quantity,
		})
	}
	item, err := h.estimates.CreateItem(c.Request.Context(), nil, input)
	if err != nil {
		h.log.Error("Create estimate item failed", "error", err)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"item": item})
}

type addItemMaterialRequest struct {
	EstimateItemID string   `json:"estimateItemId"`
	MaterialID     string   `json:"materialId"`
	Quantity       *float64 `json:"quantity"`
}

// POST /api/estimate-item-materials
// Upsert: posting the same (item, material) pair again replaces the quantity.
func (h *EstimateHandler) AddItemMaterial(c *gin.Context) {
	var req addItemMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err)
		return
	}
	estimateItemID, err := optionalID(req.EstimateItemID)
	if err != nil {
		RespondError(c, http.StatusBadRequest, err)
		return
	}
	materialID, err := optionalID(req.MaterialID)
	if err != nil {
		RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Quantity == nil {
		RespondError(c, http.StatusBadRequest, fmt.Errorf("quantity is required"))
		return
	}
	eim, err := h.estimates.AddMaterialToItem(c.Request.Context(), nil, estimateItemID, materialID, *req.Quantity)
	if err != nil {
		h.log.Error("Add estimate item material failed", "error", err)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"estimateItemMaterial": eim})
}
