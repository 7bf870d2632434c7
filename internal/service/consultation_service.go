package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/exec-consultation-api/internal/dto"
	"github.com/noah-isme/exec-consultation-api/internal/models"
	"github.com/noah-isme/exec-consultation-api/internal/repository"
	"github.com/noah-isme/exec-consultation-api/internal/validation"
	appErrors "github.com/noah-isme/exec-consultation-api/pkg/errors"
	"github.com/noah-isme/exec-consultation-api/pkg/export"
)

type consultationRepository interface {
	Insert(ctx context.Context, consultation *models.Consultation) error
	List(ctx context.Context, filter models.ConsultationFilter) ([]models.Consultation, error)
	FindByID(ctx context.Context, id string) (*models.Consultation, error)
}

type submissionNotifier interface {
	ConsultationSubmitted(ctx context.Context, consultation models.Consultation)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// Export formats.
const (
	ExportFormatCSV = "csv"
	ExportFormatPDF = "pdf"
)

// ExportFile is a rendered consultation export.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ConsultationService handles consultation submissions and admin review.
type ConsultationService struct {
	repo      consultationRepository
	validator *validator.Validate
	notifier  submissionNotifier
	metrics   *MetricsService
	logger    *zap.Logger
	csv       csvRenderer
	pdf       pdfRenderer

	now   func() time.Time
	newID func() string
}

// NewConsultationService constructs the consultation service. notifier and metrics may be nil.
func NewConsultationService(repo consultationRepository, validate *validator.Validate, notifier submissionNotifier, metrics *MetricsService, logger *zap.Logger) *ConsultationService {
	if validate == nil {
		validate = validation.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConsultationService{
		repo:      repo,
		validator: validate,
		notifier:  notifier,
		metrics:   metrics,
		logger:    logger,
		csv:       export.NewCSVExporter(),
		pdf:       export.NewPDFExporter(),
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
	}
}

// Submit validates the form and stores a new consultation with status "new".
func (s *ConsultationService) Submit(ctx context.Context, req dto.CreateConsultationRequest) (*models.Consultation, error) {
	req.Normalize()
	if err := validation.Check(s.validator, req, "invalid consultation payload"); err != nil {
		s.metrics.RecordSubmissionFailure("validation")
		return nil, err
	}

	consultation := &models.Consultation{
		ID:          s.newID(),
		Name:        req.Name,
		Email:       req.Email,
		Company:     req.Company,
		Title:       req.Title,
		InquiryType: models.InquiryType(req.InquiryType),
		Message:     req.Message,
		Status:      models.ConsultationStatusNew,
		// The document store keeps millisecond precision.
		SubmittedAt: s.now().Truncate(time.Millisecond),
	}

	start := time.Now()
	err := s.repo.Insert(ctx, consultation)
	s.metrics.ObserveStoreQuery("consultations.insert", time.Since(start), err)
	if err != nil {
		s.metrics.RecordSubmissionFailure("storage")
		s.logger.Error("store consultation", zap.String("consultation_id", consultation.ID), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrStorage.Code, appErrors.ErrStorage.Status, "failed to store consultation")
	}

	s.metrics.RecordSubmission(string(consultation.InquiryType))
	s.logger.Info("consultation submitted",
		zap.String("consultation_id", consultation.ID),
		zap.String("inquiry_type", string(consultation.InquiryType)),
	)
	if s.notifier != nil {
		s.notifier.ConsultationSubmitted(ctx, *consultation)
	}
	return consultation, nil
}

// List returns up to 100 consultations newest first, optionally filtered by status.
func (s *ConsultationService) List(ctx context.Context, query dto.ConsultationListQuery) ([]models.Consultation, error) {
	if err := validation.Check(s.validator, query, "invalid status filter"); err != nil {
		return nil, err
	}

	start := time.Now()
	items, err := s.repo.List(ctx, query.Filter())
	s.metrics.ObserveStoreQuery("consultations.list", time.Since(start), err)
	if err != nil {
		s.logger.Error("list consultations", zap.String("status", query.Status), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrStorage.Code, appErrors.ErrStorage.Status, "failed to list consultations")
	}
	return items, nil
}

// Get returns a single consultation by id.
func (s *ConsultationService) Get(ctx context.Context, id string) (*models.Consultation, error) {
	start := time.Now()
	item, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		s.metrics.ObserveStoreQuery("consultations.get", time.Since(start), nil)
		return nil, appErrors.Clone(appErrors.ErrNotFound, "consultation not found")
	}
	s.metrics.ObserveStoreQuery("consultations.get", time.Since(start), err)
	if err != nil {
		s.logger.Error("load consultation", zap.String("consultation_id", id), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrStorage.Code, appErrors.ErrStorage.Status, "failed to load consultation")
	}
	return item, nil
}

// Export renders the listed consultations as CSV or PDF.
func (s *ConsultationService) Export(ctx context.Context, query dto.ConsultationListQuery, format string) (*ExportFile, error) {
	if format == "" {
		format = ExportFormatCSV
	}
	if format != ExportFormatCSV && format != ExportFormatPDF {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}

	items, err := s.List(ctx, query)
	if err != nil {
		return nil, err
	}
	dataset := consultationDataset(items)
	stamp := s.now().Format("20060102-150405")

	var data []byte
	file := &ExportFile{}
	switch format {
	case ExportFormatPDF:
		data, err = s.pdf.Render(dataset, "Consultations")
		file.Filename = fmt.Sprintf("consultations-%s.pdf", stamp)
		file.ContentType = "application/pdf"
	default:
		data, err = s.csv.Render(dataset)
		file.Filename = fmt.Sprintf("consultations-%s.csv", stamp)
		file.ContentType = "text/csv; charset=utf-8"
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}
	file.Data = data
	return file, nil
}

var exportHeaders = []string{"id", "submitted_at", "status", "inquiry_type", "name", "email", "company", "title", "message"}

func consultationDataset(items []models.Consultation) export.Dataset {
	rows := make([]map[string]string, 0, len(items))
	for _, c := range items {
		rows = append(rows, map[string]string{
			"id":           c.ID,
			"submitted_at": c.SubmittedAt.UTC().Format(time.RFC3339),
			"status":       string(c.Status),
			"inquiry_type": string(c.InquiryType),
			"name":         c.Name,
			"email":        c.Email,
			"company":      c.Company,
			"title":        c.Title,
			"message":      c.Message,
		})
	}
	return export.Dataset{Headers: exportHeaders, Rows: rows}
}
