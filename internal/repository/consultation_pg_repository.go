package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/noah-isme/exec-consultation-api/internal/models"
)

// invalid_text_representation: raised when a malformed id is compared against a UUID column.
const pqInvalidTextRepresentation = "22P02"

const consultationColumns = "id, name, email, company, title, inquiry_type, message, status, submitted_at, contacted_at, notes, priority"

// PostgresConsultationRepository persists consultations in the consultations table.
type PostgresConsultationRepository struct {
	db *sqlx.DB
}

// NewPostgresConsultationRepository constructs a PostgresConsultationRepository.
func NewPostgresConsultationRepository(db *sqlx.DB) *PostgresConsultationRepository {
	return &PostgresConsultationRepository{db: db}
}

// Insert stores a new consultation row.
func (r *PostgresConsultationRepository) Insert(ctx context.Context, consultation *models.Consultation) error {
	query := `INSERT INTO consultations (` + consultationColumns + `)
        VALUES (:id, :name, :email, :company, :title, :inquiry_type, :message, :status, :submitted_at, :contacted_at, :notes, :priority)`
	if _, err := r.db.NamedExecContext(ctx, query, consultation); err != nil {
		return fmt.Errorf("insert consultation: %w", err)
	}
	return nil
}

// List returns consultations newest first, optionally filtered by exact status.
func (r *PostgresConsultationRepository) List(ctx context.Context, filter models.ConsultationFilter) ([]models.Consultation, error) {
	query := "SELECT " + consultationColumns + " FROM consultations"
	args := []interface{}{}
	if filter.Status != nil {
		query += " WHERE status = $1"
		args = append(args, string(*filter.Status))
	}
	query = fmt.Sprintf("%s ORDER BY submitted_at DESC LIMIT %d", query, listLimit(filter.Limit, models.ConsultationListLimit))

	consultations := make([]models.Consultation, 0)
	if err := r.db.SelectContext(ctx, &consultations, query, args...); err != nil {
		return nil, fmt.Errorf("list consultations: %w", err)
	}
	return consultations, nil
}

// FindByID fetches a consultation by id.
func (r *PostgresConsultationRepository) FindByID(ctx context.Context, id string) (*models.Consultation, error) {
	query := "SELECT " + consultationColumns + " FROM consultations WHERE id = $1"
	var consultation models.Consultation
	if err := r.db.GetContext(ctx, &consultation, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidID(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find consultation %s: %w", id, err)
	}
	return &consultation, nil
}

// isInvalidID reports whether err is Postgres rejecting the id literal itself, meaning no row can match.
func isInvalidID(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqInvalidTextRepresentation
}
