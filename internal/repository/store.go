package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/noah-isme/exec-consultation-api/internal/models"
	"github.com/noah-isme/exec-consultation-api/pkg/config"
	"github.com/noah-isme/exec-consultation-api/pkg/database"
)

// ConsultationStore is implemented by every consultation repository.
type ConsultationStore interface {
	Insert(ctx context.Context, consultation *models.Consultation) error
	List(ctx context.Context, filter models.ConsultationFilter) ([]models.Consultation, error)
	FindByID(ctx context.Context, id string) (*models.Consultation, error)
}

// StatusCheckStore is implemented by every status check repository.
type StatusCheckStore interface {
	Insert(ctx context.Context, check *models.StatusCheck) error
	List(ctx context.Context, limit int) ([]models.StatusCheck, error)
}

// Store bundles the repositories backed by the single long-lived store connection.
type Store struct {
	Driver        string
	Consultations ConsultationStore
	StatusChecks  StatusCheckStore

	ping  func(ctx context.Context) error
	close func(ctx context.Context) error
}

// Open connects to the configured driver and builds its repositories.
func Open(ctx context.Context, cfg *config.Config) (*Store, error) {
	switch cfg.Store.Driver {
	case config.StoreMongo:
		client, err := database.NewMongo(ctx, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		db := client.Database(cfg.Mongo.DBName)
		consultations := NewConsultationRepository(db.Collection(cfg.Mongo.ConsultationCollection), cfg.Mongo.OperationTimeout)
		if err := consultations.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		return &Store{
			Driver:        config.StoreMongo,
			Consultations: consultations,
			StatusChecks:  NewStatusCheckRepository(db.Collection(cfg.Mongo.StatusCheckCollection), cfg.Mongo.OperationTimeout),
			ping:          func(ctx context.Context) error { return client.Ping(ctx, readpref.Primary()) },
			close:         client.Disconnect,
		}, nil
	case config.StorePostgres:
		db, err := database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		return &Store{
			Driver:        config.StorePostgres,
			Consultations: NewPostgresConsultationRepository(db),
			StatusChecks:  NewPostgresStatusCheckRepository(db),
			ping:          db.PingContext,
			close:         func(context.Context) error { return db.Close() },
		}, nil
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}
}

// Ping verifies the store is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if s == nil || s.ping == nil {
		return fmt.Errorf("store not initialised")
	}
	return s.ping(ctx)
}

// Close releases the store connection.
func (s *Store) Close(ctx context.Context) error {
	if s == nil || s.close == nil {
		return nil
	}
	return s.close(ctx)
}
