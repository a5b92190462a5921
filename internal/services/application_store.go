package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aabb-jequie/app-inscricao/internal/logging"
	"github.com/aabb-jequie/app-inscricao/internal/models"
	"github.com/aabb-jequie/app-inscricao/internal/observability"
	"github.com/aabb-jequie/app-inscricao/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// ApplicationStore persists membership applications.
type ApplicationStore interface {
	Insert(ctx context.Context, rec *models.ApplicationRecord) error
	Get(ctx context.Context, id string) (*models.ApplicationRecord, error)
	List(ctx context.Context, filter models.ListFilter) ([]models.ApplicationRecord, error)
	Update(ctx context.Context, rec *models.ApplicationRecord) error
	Delete(ctx context.Context, id string) error
}

// MongoApplicationStore keeps applications in a MongoDB collection.
type MongoApplicationStore struct {
	collection *mongo.Collection
	timeout    time.Duration
	logger     *logging.SafeLogger
}

// NewMongoApplicationStore creates a store over the named collection.
func NewMongoApplicationStore(database *mongo.Database, collection string, logger *logging.SafeLogger) *MongoApplicationStore {
	return &MongoApplicationStore{
		collection: database.Collection(collection),
		timeout:    utils.DefaultQueryTimeout,
		logger:     logger,
	}
}

func recordDBOperation(operation string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	observability.DatabaseOperations.WithLabelValues(operation, status).Inc()
}

// Insert stores a new record. Any driver error is reported as
// models.ErrPersistence.
func (s *MongoApplicationStore) Insert(ctx context.Context, rec *models.ApplicationRecord) error {
	ctx, span := utils.TraceDatabaseOperation(ctx, "insert", s.collection.Name())
	defer span.End()

	_, err := utils.InsertOneWithTimeout(ctx, s.collection, rec, s.timeout)
	recordDBOperation("insert", err)
	if err != nil {
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"application_id": rec.ID})
		s.logger.Error("failed to insert application",
			zap.String("application_id", rec.ID),
			zap.String("cpf", observability.MaskCPF(rec.CPF)),
			zap.Error(err))
		return fmt.Errorf("%w: %v", models.ErrPersistence, err)
	}
	return nil
}

// Get loads a record by id.
func (s *MongoApplicationStore) Get(ctx context.Context, id string) (*models.ApplicationRecord, error) {
	ctx, span := utils.TraceDatabaseOperation(ctx, "find_one", s.collection.Name())
	defer span.End()

	var rec models.ApplicationRecord
	err := utils.FindOneWithTimeout(ctx, s.collection, bson.M{"_id": id}, &rec, s.timeout)
	// A missing document is not a database failure
	if errors.Is(err, mongo.ErrNoDocuments) {
		recordDBOperation("find_one", nil)
		return nil, models.ErrApplicationNotFound
	}
	recordDBOperation("find_one", err)
	if err != nil {
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"application_id": id})
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return &rec, nil
}

// List returns the records created inside the filter range, newest first.
func (s *MongoApplicationStore) List(ctx context.Context, filter models.ListFilter) ([]models.ApplicationRecord, error) {
	ctx, span := utils.TraceDatabaseOperation(ctx, "find", s.collection.Name())
	defer span.End()

	// Build date range filter
	query := bson.M{}
	createdAt := bson.M{}
	if filter.Start != nil {
		createdAt["$gte"] = *filter.Start
	}
	if filter.End != nil {
		createdAt["$lte"] = *filter.End
	}
	if len(createdAt) > 0 {
		query["created_at"] = createdAt
	}

	// Newest first
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	records := []models.ApplicationRecord{}
	err := utils.FindAllWithTimeout(ctx, s.collection, query, opts, &records, s.timeout)
	recordDBOperation("find", err)
	if err != nil {
		utils.RecordErrorInSpan(span, err, nil)
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	// Add result count to span attributes
	utils.AddSpanAttribute(span, "results", len(records))
	return records, nil
}

// Update replaces a stored record with rec.
func (s *MongoApplicationStore) Update(ctx context.Context, rec *models.ApplicationRecord) error {
	ctx, span := utils.TraceDatabaseOperation(ctx, "replace", s.collection.Name())
	defer span.End()

	res, err := utils.ReplaceOneWithTimeout(ctx, s.collection, bson.M{"_id": rec.ID}, rec, s.timeout)
	recordDBOperation("replace", err)
	if err != nil {
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"application_id": rec.ID})
		return fmt.Errorf("%w: %v", models.ErrPersistence, err)
	}
	if res.MatchedCount == 0 {
		return models.ErrApplicationNotFound
	}
	return nil
}

// Delete removes a record.
func (s *MongoApplicationStore) Delete(ctx context.Context, id string) error {
	ctx, span := utils.TraceDatabaseOperation(ctx, "delete", s.collection.Name())
	defer span.End()

	res, err := utils.DeleteOneWithTimeout(ctx, s.collection, bson.M{"_id": id}, s.timeout)
	recordDBOperation("delete", err)
	if err != nil {
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"application_id": id})
		return fmt.Errorf("%w: %v", models.ErrPersistence, err)
	}
	if res.DeletedCount == 0 {
		return models.ErrApplicationNotFound
	}
	return nil
}
