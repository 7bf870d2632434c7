package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/noah-isme/exec-consultation-api/internal/models"
)

func namespace(mt *mtest.T) string {
	return mt.Coll.Database().Name() + "." + mt.Coll.Name()
}

func consultationDoc(id, status string, submitted time.Time) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "name", Value: "Jane Doe"},
		{Key: "email", Value: "jane@ex.com"},
		{Key: "company", Value: "Acme"},
		{Key: "title", Value: "CEO"},
		{Key: "inquiry_type", Value: "advisory"},
		{Key: "message", Value: "Need strategic advisory support for Q3 planning"},
		{Key: "status", Value: status},
		{Key: "submitted_at", Value: submitted},
	}
}

func TestConsultationRepositoryMongo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("insert", func(mt *mtest.T) {
		repo := NewConsultationRepository(mt.Coll, time.Second)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := repo.Insert(context.Background(), &models.Consultation{ID: "c-1", Name: "Jane Doe", Status: models.ConsultationStatusNew, SubmittedAt: time.Now().UTC()})
		require.NoError(mt, err)
	})

	mt.Run("insert write error", func(mt *mtest.T) {
		repo := NewConsultationRepository(mt.Coll, time.Second)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key"}))

		err := repo.Insert(context.Background(), &models.Consultation{ID: "c-1"})
		require.Error(mt, err)
	})

	mt.Run("list decodes documents", func(mt *mtest.T) {
		repo := NewConsultationRepository(mt.Coll, time.Second)
		newer := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
		older := newer.Add(-time.Hour)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch,
			consultationDoc("c-2", "new", newer),
			consultationDoc("c-1", "new", older),
		))

		items, err := repo.List(context.Background(), models.ConsultationFilter{})
		require.NoError(mt, err)
		require.Len(mt, items, 2)
		assert.Equal(mt, "c-2", items[0].ID)
		assert.Equal(mt, models.InquiryAdvisory, items[0].InquiryType)
		assert.True(mt, items[0].SubmittedAt.Equal(newer))
		assert.Nil(mt, items[1].Notes)
	})

	mt.Run("list decodes object id keys as hex", func(mt *mtest.T) {
		repo := NewConsultationRepository(mt.Coll, time.Second)
		oid := primitive.NewObjectID()
		doc := consultationDoc("", "new", time.Now().UTC())
		doc[0] = bson.E{Key: "_id", Value: oid}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch,
			doc,
			consultationDoc("c-1", "new", time.Now().UTC()),
		))

		items, err := repo.List(context.Background(), models.ConsultationFilter{})
		require.NoError(mt, err)
		require.Len(mt, items, 2)
		assert.Equal(mt, oid.Hex(), items[0].ID)
		assert.Equal(mt, "c-1", items[1].ID)
	})

	mt.Run("list empty is non-nil", func(mt *mtest.T) {
		repo := NewConsultationRepository(mt.Coll, time.Second)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))

		status := models.ConsultationStatusClosed
		items, err := repo.List(context.Background(), models.ConsultationFilter{Status: &status})
		require.NoError(mt, err)
		assert.NotNil(mt, items)
		assert.Empty(mt, items)
	})

	mt.Run("list command error", func(mt *mtest.T) {
		repo := NewConsultationRepository(mt.Coll, time.Second)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 13, Name: "Unauthorized", Message: "not authorized"}))

		_, err := repo.List(context.Background(), models.ConsultationFilter{})
		require.Error(mt, err)
	})

	mt.Run("find by id", func(mt *mtest.T) {
		repo := NewConsultationRepository(mt.Coll, time.Second)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch, consultationDoc("c-1", "in_progress", time.Now().UTC())))

		item, err := repo.FindByID(context.Background(), "c-1")
		require.NoError(mt, err)
		assert.Equal(mt, "c-1", item.ID)
		assert.Equal(mt, models.ConsultationStatusInProgress, item.Status)
	})

	mt.Run("find by id missing", func(mt *mtest.T) {
		repo := NewConsultationRepository(mt.Coll, time.Second)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))

		_, err := repo.FindByID(context.Background(), "missing")
		assert.ErrorIs(mt, err, ErrNotFound)
	})
}

func TestStatusCheckRepositoryMongo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("insert and list", func(mt *mtest.T) {
		repo := NewStatusCheckRepository(mt.Coll, time.Second)
		now := time.Now().UTC().Truncate(time.Millisecond)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch, bson.D{
				{Key: "_id", Value: "s-1"},
				{Key: "client_name", Value: "uptime-monitor"},
				{Key: "timestamp", Value: now},
			}),
		)

		require.NoError(mt, repo.Insert(context.Background(), &models.StatusCheck{ID: "s-1", ClientName: "uptime-monitor", Timestamp: now}))
		checks, err := repo.List(context.Background(), 0)
		require.NoError(mt, err)
		require.Len(mt, checks, 1)
		assert.Equal(mt, "uptime-monitor", checks[0].ClientName)
		assert.True(mt, checks[0].Timestamp.Equal(now))
	})
}

func TestListLimit(t *testing.T) {
	assert.Equal(t, 100, listLimit(0, 100))
	assert.Equal(t, 100, listLimit(1000, 100))
	assert.Equal(t, 10, listLimit(10, 100))
}
