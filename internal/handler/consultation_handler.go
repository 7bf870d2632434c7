package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/exec-consultation-api/internal/dto"
	"github.com/noah-isme/exec-consultation-api/internal/models"
	"github.com/noah-isme/exec-consultation-api/internal/service"
	"github.com/noah-isme/exec-consultation-api/internal/validation"
	appErrors "github.com/noah-isme/exec-consultation-api/pkg/errors"
	"github.com/noah-isme/exec-consultation-api/pkg/response"
)

// Messages returned by the submit endpoint.
const (
	SubmitSuccessMessage    = "Your consultation request has been submitted successfully!"
	SubmitValidationMessage = "Please check the submitted fields"
	SubmitFailureMessage    = "We could not submit your request. Please try again later."
)

type consultationService interface {
	Submit(ctx context.Context, req dto.CreateConsultationRequest) (*models.Consultation, error)
	List(ctx context.Context, query dto.ConsultationListQuery) ([]models.Consultation, error)
	Get(ctx context.Context, id string) (*models.Consultation, error)
	Export(ctx context.Context, query dto.ConsultationListQuery, format string) (*service.ExportFile, error)
}

// ConsultationHandler exposes the consultation form and review endpoints.
type ConsultationHandler struct {
	service consultationService
}

// NewConsultationHandler builds a new handler.
func NewConsultationHandler(service consultationService) *ConsultationHandler {
	return &ConsultationHandler{service: service}
}

// Submit godoc
// @Summary Submit a consultation request
// @Tags Consultations
// @Accept json
// @Produce json
// @Param payload body dto.CreateConsultationRequest true "Consultation form"
// @Success 200 {object} dto.ConsultationSubmitResponse
// @Router /consultation [post]
func (h *ConsultationHandler) Submit(c *gin.Context) {
	var req dto.CreateConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		response.OK(c, dto.ConsultationSubmitResponse{Success: false, Message: SubmitValidationMessage})
		return
	}

	consultation, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		resp := dto.ConsultationSubmitResponse{Success: false, Message: SubmitFailureMessage}
		if errors.Is(err, appErrors.ErrValidation) {
			resp.Message = SubmitValidationMessage
			resp.Errors = validation.ViolationsOf(err)
		}
		response.OK(c, resp)
		return
	}

	eta := dto.EstimatedResponseTime
	response.OK(c, dto.ConsultationSubmitResponse{
		Success:               true,
		Message:               SubmitSuccessMessage,
		ConsultationID:        &consultation.ID,
		EstimatedResponseTime: &eta,
	})
}

// List godoc
// @Summary List consultations
// @Description Newest first, at most 100. Unknown status or store failure yields an empty list.
// @Tags Consultations
// @Produce json
// @Param status query string false "Status filter"
// @Success 200 {array} models.Consultation
// @Router /consultations [get]
func (h *ConsultationHandler) List(c *gin.Context) {
	var query dto.ConsultationListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		_ = c.Error(err)
		response.OK(c, []models.Consultation{})
		return
	}
	items, err := h.service.List(c.Request.Context(), query)
	if err != nil || items == nil {
		if err != nil {
			_ = c.Error(err)
		}
		items = []models.Consultation{}
	}
	response.OK(c, items)
}

// Get godoc
// @Summary Get a consultation
// @Tags Consultations
// @Produce json
// @Param id path string true "Consultation ID"
// @Success 200 {object} models.Consultation
// @Failure 404 {object} response.ErrorEnvelope
// @Router /consultation/{id} [get]
func (h *ConsultationHandler) Get(c *gin.Context) {
	item, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if !errors.Is(err, appErrors.ErrNotFound) {
			err = genericFailure(err)
		}
		response.Error(c, err)
		return
	}
	response.OK(c, item)
}

// Export godoc
// @Summary Export consultations
// @Tags Consultations
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv or pdf" default(csv)
// @Param status query string false "Status filter"
// @Success 200 {file} file
// @Failure 400 {object} response.ErrorEnvelope
// @Router /consultations/export [get]
func (h *ConsultationHandler) Export(c *gin.Context) {
	var query dto.ConsultationListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid query"))
		return
	}
	file, err := h.service.Export(c.Request.Context(), query, c.DefaultQuery("format", service.ExportFormatCSV))
	if err != nil {
		if !errors.Is(err, appErrors.ErrValidation) {
			err = genericFailure(err)
		}
		response.Error(c, err)
		return
	}
	response.Attachment(c, file.Filename, file.ContentType, file.Data)
}

// genericFailure hides store detail behind a 500 while keeping the cause for logs.
func genericFailure(err error) error {
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
}
