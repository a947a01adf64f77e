// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	teamModel "github.com/footballdb/football-db/internal/team/model"
	"github.com/footballdb/football-db/internal/team/service"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Handler handles HTTP requests for team endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new team handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// ListTeams handles GET /api/v1/teams requests.
// Accepts zero-based page and page_size query parameters.
func (h *Handler) ListTeams(c *gin.Context) {
	page, ok := queryInt(c, "page", 0)
	if !ok {
		errorResponse(c, "INVALID_REQUEST", "page must be a non-negative integer", http.StatusBadRequest)
		return
	}
	pageSize, ok := queryInt(c, "page_size", defaultPageSize)
	if !ok {
		errorResponse(c, "INVALID_REQUEST", "page_size must be a non-negative integer", http.StatusBadRequest)
		return
	}
	if pageSize == 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	resp, err := h.service.ListTeams(c.Request.Context(), page, pageSize)
	if err != nil {
		h.logger.Errorw("error listing teams", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetTeam handles GET /api/v1/teams/:id requests.
func (h *Handler) GetTeam(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	resp, err := h.service.GetTeam(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "error getting team", id)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateTeam handles POST /api/v1/teams requests.
func (h *Handler) CreateTeam(c *gin.Context) {
	var req teamModel.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.CreateTeam(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err, "error creating team", uuid.Nil)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// UpdateTeam handles PUT /api/v1/teams/:id requests.
func (h *Handler) UpdateTeam(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req teamModel.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.UpdateTeam(c.Request.Context(), id, &req)
	if err != nil {
		h.respondError(c, err, "error updating team", id)
		return
	}

	c.JSON(http.StatusAccepted, resp)
}

// DeleteTeam handles DELETE /api/v1/teams/:id requests.
func (h *Handler) DeleteTeam(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteTeam(c.Request.Context(), id); err != nil {
		h.respondError(c, err, "error deleting team", id)
		return
	}

	c.Status(http.StatusNoContent)
}

// pathID parses the :id path parameter, writing a client error on failure.
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errorResponse(c, "INVALID_REQUEST", "id must be a valid UUID", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

// queryInt parses a non-negative integer query parameter.
func queryInt(c *gin.Context, name string, defaultValue int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return defaultValue, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, false
	}
	return value, true
}
