package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/exec-consultation-api/internal/dto"
	"github.com/noah-isme/exec-consultation-api/internal/models"
	appErrors "github.com/noah-isme/exec-consultation-api/pkg/errors"
	"github.com/noah-isme/exec-consultation-api/pkg/response"
)

type statusCheckService interface {
	Create(ctx context.Context, req dto.CreateStatusCheckRequest) (*models.StatusCheck, error)
	List(ctx context.Context) ([]models.StatusCheck, error)
}

// StatusCheckHandler exposes the diagnostic status check endpoints.
type StatusCheckHandler struct {
	service statusCheckService
}

// NewStatusCheckHandler builds a new handler.
func NewStatusCheckHandler(service statusCheckService) *StatusCheckHandler {
	return &StatusCheckHandler{service: service}
}

// Create godoc
// @Summary Record a status check
// @Tags Status
// @Accept json
// @Produce json
// @Param payload body dto.CreateStatusCheckRequest true "Status check"
// @Success 200 {object} models.StatusCheck
// @Failure 400 {object} response.ErrorEnvelope
// @Router /status [post]
func (h *StatusCheckHandler) Create(c *gin.Context) {
	var req dto.CreateStatusCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid request body"))
		return
	}
	check, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, check)
}

// List godoc
// @Summary List status checks
// @Tags Status
// @Produce json
// @Success 200 {array} models.StatusCheck
// @Router /status [get]
func (h *StatusCheckHandler) List(c *gin.Context) {
	checks, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if checks == nil {
		checks = []models.StatusCheck{}
	}
	response.OK(c, checks)
}
