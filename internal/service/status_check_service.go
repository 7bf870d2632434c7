package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/exec-consultation-api/internal/dto"
	"github.com/noah-isme/exec-consultation-api/internal/models"
	"github.com/noah-isme/exec-consultation-api/internal/validation"
	appErrors "github.com/noah-isme/exec-consultation-api/pkg/errors"
)

type statusCheckRepository interface {
	Insert(ctx context.Context, check *models.StatusCheck) error
	List(ctx context.Context, limit int) ([]models.StatusCheck, error)
}

// StatusCheckService records and lists diagnostic status checks.
type StatusCheckService struct {
	repo      statusCheckRepository
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
	now       func() time.Time
}

// NewStatusCheckService constructs a StatusCheckService.
func NewStatusCheckService(repo statusCheckRepository, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *StatusCheckService {
	if validate == nil {
		validate = validation.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatusCheckService{
		repo:      repo,
		validator: validate,
		metrics:   metrics,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Create stores a status check for the given client.
func (s *StatusCheckService) Create(ctx context.Context, req dto.CreateStatusCheckRequest) (*models.StatusCheck, error) {
	req.Normalize()
	if err := validation.Check(s.validator, req, "invalid status check payload"); err != nil {
		return nil, err
	}
	check := &models.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: req.ClientName,
		Timestamp:  s.now().Truncate(time.Millisecond),
	}

	start := time.Now()
	err := s.repo.Insert(ctx, check)
	s.metrics.ObserveStoreQuery("status_checks.insert", time.Since(start), err)
	if err != nil {
		s.logger.Error("store status check", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrStorage.Code, appErrors.ErrStorage.Status, "failed to store status check")
	}
	return check, nil
}

// List returns up to 1000 status checks.
func (s *StatusCheckService) List(ctx context.Context) ([]models.StatusCheck, error) {
	start := time.Now()
	checks, err := s.repo.List(ctx, models.StatusCheckListLimit)
	s.metrics.ObserveStoreQuery("status_checks.list", time.Since(start), err)
	if err != nil {
		s.logger.Error("list status checks", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrStorage.Code, appErrors.ErrStorage.Status, "failed to list status checks")
	}
	return checks, nil
}
