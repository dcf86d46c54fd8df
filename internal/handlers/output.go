package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brushline/estimator-backend/internal/logger"
	"github.com/brushline/estimator-backend/internal/services"
	"github.com/brushline/estimator-backend/internal/validation"
)

type OutputHandler struct {
	log     *logger.Logger
	outputs services.OutputService
}

func NewOutputHandler(log *logger.Logger, outputs services.OutputService) *OutputHandler {
	return &OutputHandler{
		log:     log.With("handler", "OutputHandler"),
		outputs: outputs,
	}
}

// GET /api/outputs?scenarioId=
// The output field is null when the scenario has no rate configured yet.
func (h *OutputHandler) Get(c *gin.Context) {
	scenarioID, ok := requireQueryID(c, "scenarioId")
	if !ok {
		return
	}
	output, err := h.outputs.Resolve(c.Request.Context(), nil, scenarioID)
	if err != nil {
		h.log.Error("Resolve output failed", "error", err, "scenario_id", scenarioID)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"output": output})
}

type createOutputRequest struct {
	ScenarioID  string   `json:"scenarioId"`
	OutputValue *float64 `json:"outputValue"`
	OutputUnit  string   `json:"outputUnit"`
}

// POST /api/outputs
// Acts as an upsert: a second post for the same scenario replaces the rate.
func (h *OutputHandler) CreateOrUpdate(c *gin.Context) {
	var req createOutputRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err)
		return
	}
	scenarioID, err := optionalID(req.ScenarioID)
	if err != nil {
		RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.OutputValue == nil {
		RespondError(c, http.StatusBadRequest, &validation.Error{Entity: "output", Fields: []string{"outputValue"}})
		return
	}
	output, err := h.outputs.CreateOrUpdate(c.Request.Context(), nil, scenarioID, *req.OutputValue, req.OutputUnit)
	if err != nil {
		h.log.Error("CreateOrUpdate output failed", "error", err)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"output": output})
}

// DELETE /api/outputs?id=
func (h *OutputHandler) Delete(c *gin.Context) {
	id, ok := requireQueryID(c, "id")
	if !ok {
		return
	}
	deleted, err := h.outputs.Delete(c.Request.Context(), nil, id)
	if err != nil {
		h.log.Error("Delete output failed", "error", err, "id", id)
		RespondServiceError(c, err)
		return
	}
	if !deleted {
		RespondError(c, http.StatusNotFound, errNotFound("Output"))
		return
	}
	RespondOK(c, gin.H{"success": true})
}
