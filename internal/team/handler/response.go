package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	teamModel "github.com/footballdb/football-db/internal/team/model"
)

// ErrorResponse represents the error envelope returned by every endpoint.
type ErrorResponse struct {
	Error struct {
		Code    string                 `json:"code"`
		Message string                 `json:"message"`
		Details []teamModel.FieldError `json:"details,omitempty"`
	} `json:"error"`
}

// errorResponse writes the error envelope with the given code and status.
func errorResponse(c *gin.Context, code string, message string, statusCode int) {
	resp := ErrorResponse{}
	resp.Error.Code = code
	resp.Error.Message = message
	c.JSON(statusCode, resp)
}

// validationResponse writes a 400 with one entry per violated field.
func validationResponse(c *gin.Context, errs teamModel.ValidationErrors) {
	resp := ErrorResponse{}
	resp.Error.Code = "VALIDATION_FAILED"
	resp.Error.Message = "request validation failed"
	resp.Error.Details = errs
	c.JSON(http.StatusBadRequest, resp)
}

// respondError maps service errors onto HTTP responses.
func (h *Handler) respondError(c *gin.Context, err error, logMessage string, id uuid.UUID) {
	var verrs teamModel.ValidationErrors
	if errors.As(err, &verrs) {
		validationResponse(c, verrs)
		return
	}
	if errors.Is(err, teamModel.ErrTeamNotFound) {
		errorResponse(c, "NOT_FOUND", "team not found", http.StatusNotFound)
		return
	}

	if id != uuid.Nil {
		h.logger.Errorw(logMessage, "team_id", id, "error", err)
	} else {
		h.logger.Errorw(logMessage, "error", err)
	}
	errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
}
