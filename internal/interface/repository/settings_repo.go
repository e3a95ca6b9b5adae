package repository

import (
	"context"
	"errors"

	"shavtzak-service/internal/domain/entity"
	"shavtzak-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSettingsRepository implements SettingsRepository over the
// settings collection: one document per fixed key, wrapped so the
// stored value can be any JSON-compatible shape, scalars included.
type MongoSettingsRepository struct {
	collection *mongo.Collection
}

// NewMongoSettingsRepository creates a new settings repository
func NewMongoSettingsRepository(db *mongo.Database) repository.SettingsRepository {
	return &MongoSettingsRepository{
		collection: db.Collection("settings"),
	}
}

type settingDocument struct {
	ID    string      `bson:"_id"`
	Value interface{} `bson:"value"`
}

// Get decodes the stored value for key into out.
func (r *MongoSettingsRepository) Get(ctx context.Context, key entity.SettingKey, out interface{}) error {
	var doc struct {
		Value bson.RawValue `bson:"value"`
	}
	err := r.collection.FindOne(ctx, bson.M{"_id": string(key)}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return entity.ErrNotFound
	}
	if err != nil {
		return &entity.StoreError{Op: "get setting", Err: err}
	}
	if err := doc.Value.Unmarshal(out); err != nil {
		return &entity.StoreError{Op: "decode setting", Err: err}
	}
	return nil
}

// Set overwrites the stored value for key.
func (r *MongoSettingsRepository) Set(ctx context.Context, key entity.SettingKey, value interface{}) error {
	doc := settingDocument{ID: string(key), Value: value}
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, opts)
	if err != nil {
		return &entity.StoreError{Op: "set setting", Err: err}
	}
	return nil
}
