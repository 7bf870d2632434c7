package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/exec-consultation-api/internal/models"
)

// PostgresStatusCheckRepository persists status checks in the status_checks table.
type PostgresStatusCheckRepository struct {
	db *sqlx.DB
}

// NewPostgresStatusCheckRepository constructs a PostgresStatusCheckRepository.
func NewPostgresStatusCheckRepository(db *sqlx.DB) *PostgresStatusCheckRepository {
	return &PostgresStatusCheckRepository{db: db}
}

// Insert stores a status check.
func (r *PostgresStatusCheckRepository) Insert(ctx context.Context, check *models.StatusCheck) error {
	query := `INSERT INTO status_checks (id, client_name, timestamp) VALUES ($1, $2, $3)`
	if _, err := r.db.ExecContext(ctx, query, check.ID, check.ClientName, check.Timestamp); err != nil {
		return fmt.Errorf("insert status check: %w", err)
	}
	return nil
}

// List returns up to limit status checks in natural order.
func (r *PostgresStatusCheckRepository) List(ctx context.Context, limit int) ([]models.StatusCheck, error) {
	query := fmt.Sprintf("SELECT id, client_name, timestamp FROM status_checks LIMIT %d", listLimit(limit, models.StatusCheckListLimit))
	checks := make([]models.StatusCheck, 0)
	if err := r.db.SelectContext(ctx, &checks, query); err != nil {
		return nil, fmt.Errorf("list status checks: %w", err)
	}
	return checks, nil
}
