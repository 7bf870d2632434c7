package dto

import (
	"strings"

	"github.com/noah-isme/exec-consultation-api/internal/models"
	"github.com/noah-isme/exec-consultation-api/internal/validation"
)

// EstimatedResponseTime is quoted back to every successful submitter.
const EstimatedResponseTime = "24 hours"

// CreateConsultationRequest is the form payload accepted from the public site.
type CreateConsultationRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Company     string `json:"company" validate:"required,min=2,max=100"`
	Title       string `json:"title" validate:"required,min=2,max=100"`
	InquiryType string `json:"inquiry_type" validate:"required,inquiry_type"`
	Message     string `json:"message" validate:"required,min=10,max=2000"`
}

// Normalize trims free text and lower-cases the email before validation.
// inquiry_type is matched exactly against the enumeration and left untouched.
func (r *CreateConsultationRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Company = strings.TrimSpace(r.Company)
	r.Title = strings.TrimSpace(r.Title)
	r.Message = strings.TrimSpace(r.Message)
}

// ConsultationSubmitResponse is returned by the submit endpoint for both outcomes.
type ConsultationSubmitResponse struct {
	Success               bool                        `json:"success"`
	Message               string                      `json:"message"`
	ConsultationID        *string                     `json:"consultation_id"`
	EstimatedResponseTime *string                     `json:"estimated_response_time"`
	Errors                []validation.FieldViolation `json:"errors,omitempty"`
}

// ConsultationListQuery carries the optional status filter from the query string.
type ConsultationListQuery struct {
	Status string `form:"status" validate:"omitempty,consultation_status"`
}

// Filter converts the query into a repository filter.
func (q ConsultationListQuery) Filter() models.ConsultationFilter {
	filter := models.ConsultationFilter{Limit: models.ConsultationListLimit}
	if q.Status != "" {
		status := models.ConsultationStatus(q.Status)
		filter.Status = &status
	}
	return filter
}

// CreateStatusCheckRequest registers a diagnostic status check.
type CreateStatusCheckRequest struct {
	ClientName string `json:"client_name" validate:"required,min=1,max=100"`
}

// Normalize trims the client name so blank names fail validation.
func (r *CreateStatusCheckRequest) Normalize() {
	r.ClientName = strings.TrimSpace(r.ClientName)
}
