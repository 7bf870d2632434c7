package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/noah-isme/exec-consultation-api/internal/models"
)

// StatusCheckRepository persists diagnostic status checks in MongoDB.
type StatusCheckRepository struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewStatusCheckRepository constructs a StatusCheckRepository.
func NewStatusCheckRepository(coll *mongo.Collection, timeout time.Duration) *StatusCheckRepository {
	return &StatusCheckRepository{coll: coll, timeout: timeout}
}

// Insert stores a status check.
func (r *StatusCheckRepository) Insert(ctx context.Context, check *models.StatusCheck) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, check); err != nil {
		return fmt.Errorf("insert status check: %w", err)
	}
	return nil
}

// List returns up to limit status checks in natural order.
func (r *StatusCheckRepository) List(ctx context.Context, limit int) ([]models.StatusCheck, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	opts := options.Find().SetLimit(int64(listLimit(limit, models.StatusCheckListLimit)))
	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find status checks: %w", err)
	}
	defer cursor.Close(ctx) //nolint:errcheck

	checks := make([]models.StatusCheck, 0)
	if err := cursor.All(ctx, &checks); err != nil {
		return nil, fmt.Errorf("decode status checks: %w", err)
	}
	return checks, nil
}
