package repository

import (
	"context"
	"errors"
	"fmt"

	"visitpazar/infras/mongo"
	"visitpazar/infras/otel"
	"visitpazar/shared/constant"
	"visitpazar/shared/dto"
	"visitpazar/shared/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	errUnexpectedID = errors.New("unexpected inserted id type")
)

// Repository is the generic access layer over one collection. Every entity
// repository embeds it; records are T values carrying bson tags.
type Repository[T any] struct {
	db         *mongo.Connection
	otel       otel.Otel
	collection string
	entity     string
}

func NewRepository[T any](entityName, collectionName string, dbConnection *mongo.Connection, otl otel.Otel) Repository[T] {
	return Repository[T]{
		db:         dbConnection,
		otel:       otl,
		collection: collectionName,
		entity:     entityName,
	}
}

// Insert appends one record to the collection and returns its generated id.
// No deduplication is done.
func (repo *Repository[T]) Insert(ctx context.Context, model T) (id string, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Insert", constant.OtelRepositoryScopeName, repo.entity))
	defer scope.End()

	scope.SetAttribute(constant.OtelCollectionAttributeKey, repo.collection)

	coll, err := repo.db.Collection(repo.collection)
	if err != nil {
		scope.TraceError(err)

		return constant.Empty, fmt.Errorf("failed to insert data (%s): %w", repo.entity, err)
	}

	ctx, cancel := repo.db.WithTimeout(ctx)
	defer cancel()

	result, err := coll.InsertOne(ctx, model)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return constant.Empty, fmt.Errorf("failed to insert data (%s): %w", repo.entity, err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		scope.TraceError(errUnexpectedID)

		return fmt.Sprintf("%v", result.InsertedID), nil
	}

	return oid.Hex(), nil
}

// Find returns at most limit records matching filter, in storage order.
// A non-positive limit means no limit.
func (repo *Repository[T]) Find(ctx context.Context, filter dto.FilterGroup, limit int) ([]T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Find", constant.OtelRepositoryScopeName, repo.entity))
	defer scope.End()

	query := filter.ToBSON()

	scope.SetAttribute(constant.OtelCollectionAttributeKey, repo.collection)
	scope.SetAttribute(constant.OtelQueryAttributeKey, queryString(query))

	models := []T{}

	coll, err := repo.db.Collection(repo.collection)
	if err != nil {
		scope.TraceError(err)

		return models, fmt.Errorf("failed to get all data (%s): %w", repo.entity, err)
	}

	ctx, cancel := repo.db.WithTimeout(ctx)
	defer cancel()

	findOptions := options.Find()
	if limit > 0 {
		findOptions.SetLimit(int64(limit))
	}

	cursor, err := coll.Find(ctx, query, findOptions)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return models, fmt.Errorf("failed to get all data (%s): %w", repo.entity, err)
	}

	if err = cursor.All(ctx, &models); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return []T{}, fmt.Errorf("failed to decode data (%s): %w", repo.entity, err)
	}

	return models, nil
}

func queryString(query bson.D) string {
	raw, err := bson.MarshalExtJSON(query, false, false)
	if err != nil {
		return fmt.Sprintf("%v", query)
	}

	return string(raw)
}
