package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brushline/estimator-backend/internal/services"
	"github.com/brushline/estimator-backend/internal/validation"
)

type ErrorEnvelope struct {
	Error string `json:"error"`
}

func RespondError(c *gin.Context, status int, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{Error: msg})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func errNotFound(entity string) error {
	return errors.New(entity + " not found")
}

// RespondServiceError maps service failures onto statuses: bad input is the
// caller's fault, anything else is the storage backend's.
func RespondServiceError(c *gin.Context, err error) {
	switch {
	case validation.IsValidation(err):
		RespondError(c, http.StatusBadRequest, err)
	case errors.Is(err, services.ErrScenarioNotConfigured):
		RespondError(c, http.StatusBadRequest, err)
	default:
		RespondError(c, http.StatusInternalServerError, err)
	}
}
