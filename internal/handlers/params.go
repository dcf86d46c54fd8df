package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requireQueryID parses a required uuid query parameter, answering 400 itself
// when it is absent or malformed.
func requireQueryID(c *gin.Context, name string) (uuid.UUID, bool) {
	raw := c.Query(name)
	if raw == "" {
		RespondError(c, http.StatusBadRequest, fmt.Errorf("%s is required", name))
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		RespondError(c, http.StatusBadRequest, fmt.Errorf("%s is not a valid id", name))
		return uuid.Nil, false
	}
	return id, true
}

func requireParamID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		RespondError(c, http.StatusBadRequest, fmt.Errorf("%s is not a valid id", name))
		return uuid.Nil, false
	}
	return id, true
}

// optionalID maps "" to uuid.Nil so the validation rules report the field as
// missing instead of the parser rejecting the request.
func optionalID(raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.New("invalid id: " + raw)
	}
	return id, nil
}
