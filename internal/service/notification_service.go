package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/exec-consultation-api/internal/models"
	"github.com/noah-isme/exec-consultation-api/pkg/jobs"
)

// JobTypeConsultationSubmitted identifies submission notification jobs.
const JobTypeConsultationSubmitted = "consultation.submitted"

type publisher interface {
	Publish(ctx context.Context, payload []byte) (int64, error)
}

type jobQueue interface {
	TryEnqueue(job jobs.Job) error
}

// SubmissionEvent is the message published for each stored consultation.
type SubmissionEvent struct {
	Event       string             `json:"event"`
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Email       string             `json:"email"`
	Company     string             `json:"company"`
	Title       string             `json:"title"`
	InquiryType models.InquiryType `json:"inquiry_type"`
	SubmittedAt time.Time          `json:"submitted_at"`
}

// NotificationService fans stored consultations out to staff through a Redis channel.
// Publishing runs on a background queue so a slow broker never delays a form response.
type NotificationService struct {
	queue     jobQueue
	publisher publisher
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewNotificationService constructs the service. Call AttachQueue before use.
func NewNotificationService(pub publisher, metrics *MetricsService, logger *zap.Logger) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{publisher: pub, metrics: metrics, logger: logger}
}

// AttachQueue sets the queue jobs are dispatched on. The queue's handler should be s.Handle.
func (s *NotificationService) AttachQueue(q jobQueue) {
	s.queue = q
}

// ConsultationSubmitted schedules a notification. Failures are logged and swallowed.
func (s *NotificationService) ConsultationSubmitted(ctx context.Context, consultation models.Consultation) {
	if s == nil || s.queue == nil {
		return
	}
	event := SubmissionEvent{
		Event:       JobTypeConsultationSubmitted,
		ID:          consultation.ID,
		Name:        consultation.Name,
		Email:       consultation.Email,
		Company:     consultation.Company,
		Title:       consultation.Title,
		InquiryType: consultation.InquiryType,
		SubmittedAt: consultation.SubmittedAt,
	}
	err := s.queue.TryEnqueue(jobs.Job{ID: consultation.ID, Type: JobTypeConsultationSubmitted, Payload: event})
	if err != nil {
		s.metrics.RecordNotification("dropped")
		s.logger.Warn("notification not queued", zap.String("consultation_id", consultation.ID), zap.Error(err))
	}
}

// Handle publishes one queued submission event.
func (s *NotificationService) Handle(ctx context.Context, job jobs.Job) error {
	event, ok := job.Payload.(SubmissionEvent)
	if !ok {
		return fmt.Errorf("unexpected payload %T for job %s", job.Payload, job.ID)
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal submission event: %w", err)
	}
	receivers, err := s.publisher.Publish(ctx, payload)
	if err != nil {
		return err
	}
	s.metrics.RecordNotification("published")
	s.logger.Debug("submission event published", zap.String("consultation_id", event.ID), zap.Int64("receivers", receivers))
	return nil
}

// GiveUp records a notification abandoned after retries.
func (s *NotificationService) GiveUp(job jobs.Job, err error) {
	s.metrics.RecordNotification("failed")
	s.logger.Error("submission notification abandoned", zap.String("consultation_id", job.ID), zap.Error(err))
}
