package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/noah-isme/exec-consultation-api/internal/models"
)

// ConsultationRepository persists consultations in a MongoDB collection.
type ConsultationRepository struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewConsultationRepository constructs a ConsultationRepository. A zero timeout leaves calls
// bounded only by the caller's context.
func NewConsultationRepository(coll *mongo.Collection, timeout time.Duration) *ConsultationRepository {
	return &ConsultationRepository{coll: coll, timeout: timeout}
}

// EnsureIndexes creates the indexes used by list queries.
func (r *ConsultationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "submitted_at", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "submitted_at", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("create consultation indexes: %w", err)
	}
	return nil
}

// Insert stores a new consultation document.
func (r *ConsultationRepository) Insert(ctx context.Context, consultation *models.Consultation) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, consultation); err != nil {
		return fmt.Errorf("insert consultation: %w", err)
	}
	return nil
}

// List returns consultations newest first, optionally filtered by exact status.
func (r *ConsultationRepository) List(ctx context.Context, filter models.ConsultationFilter) ([]models.Consultation, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	query := bson.D{}
	if filter.Status != nil {
		query = append(query, bson.E{Key: "status", Value: string(*filter.Status)})
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "submitted_at", Value: -1}}).
		SetLimit(int64(listLimit(filter.Limit, models.ConsultationListLimit)))

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("find consultations: %w", err)
	}
	defer cursor.Close(ctx) //nolint:errcheck

	consultations := make([]models.Consultation, 0)
	if err := cursor.All(ctx, &consultations); err != nil {
		return nil, fmt.Errorf("decode consultations: %w", err)
	}
	return consultations, nil
}

// FindByID fetches a consultation by id.
func (r *ConsultationRepository) FindByID(ctx context.Context, id string) (*models.Consultation, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var consultation models.Consultation
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&consultation)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find consultation %s: %w", id, err)
	}
	return &consultation, nil
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

func listLimit(requested, max int) int {
	if requested <= 0 || requested > max {
		return max
	}
	return requested
}
