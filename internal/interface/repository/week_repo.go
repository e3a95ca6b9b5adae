package repository

import (
	"context"
	"errors"
	"fmt"

	"shavtzak-service/internal/domain/entity"
	"shavtzak-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoWeekRepository implements WeekRepository over the weekData
// collection: one document per canonical week number, keyed
// "week_<n>".
type MongoWeekRepository struct {
	collection *mongo.Collection
}

// NewMongoWeekRepository creates a new week document repository
func NewMongoWeekRepository(db *mongo.Database) repository.WeekRepository {
	return &MongoWeekRepository{
		collection: db.Collection("weekData"),
	}
}

type weekDocument struct {
	ID                   string `bson:"_id"`
	entity.WeekContainer `bson:",inline"`
}

func weekKey(weekNumber int) string {
	return fmt.Sprintf("week_%d", weekNumber)
}

// Load fetches the stored container for weekNumber. A week that was
// never saved yields entity.ErrNotFound; any driver failure is wrapped
// as a StoreError.
func (r *MongoWeekRepository) Load(ctx context.Context, weekNumber int) (*entity.WeekContainer, error) {
	var doc weekDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": weekKey(weekNumber)}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, &entity.StoreError{Op: "load week", Err: err}
	}

	container := doc.WeekContainer
	container.Normalize()
	return &container, nil
}

// Save persists the container as a full-document overwrite, creating
// it when absent. Last writer wins; there is no concurrency check.
func (r *MongoWeekRepository) Save(ctx context.Context, container *entity.WeekContainer) error {
	doc := weekDocument{
		ID:            weekKey(container.WeekNumber),
		WeekContainer: *container,
	}
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, opts)
	if err != nil {
		return &entity.StoreError{Op: "save week", Err: err}
	}
	return nil
}
