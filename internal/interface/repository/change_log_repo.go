package repository

import (
	"context"
	"time"

	"airline-service/internal/domain/entity"
	"airline-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoChangeLogRepository implements ChangeLogRepository
type MongoChangeLogRepository struct {
	collection *mongo.Collection
}

// NewMongoChangeLogRepository creates a new change log repository
func NewMongoChangeLogRepository(db *mongo.Database) repository.ChangeLogRepository {
	collection := db.Collection("changeLogs")

	ctx := context.Background()

	// Lookups are always by entity, newest first
	entityIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "entity", Value: 1},
			{Key: "entityId", Value: 1},
			{Key: "createdAt", Value: -1},
		},
	}

	createdAtIndex := mongo.IndexModel{
		Keys: bson.M{"createdAt": -1},
	}

	collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		entityIndex,
		createdAtIndex,
	})

	return &MongoChangeLogRepository{
		collection: collection,
	}
}

// Record inserts a change log entry
func (r *MongoChangeLogRepository) Record(ctx context.Context, entry *entity.ChangeLog) error {
	if entry.ID == "" {
		entry.ID = primitive.NewObjectID().Hex()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, entry)
	return err
}

// FindByEntity returns the latest entries for one entity, newest first
func (r *MongoChangeLogRepository) FindByEntity(ctx context.Context, kind string, entityID uint, limit int) ([]*entity.ChangeLog, error) {
	filter := bson.M{
		"entity":   kind,
		"entityId": entityID,
	}

	limit64 := int64(limit)
	cursor, err := r.collection.Find(ctx, filter, &options.FindOptions{
		Limit: &limit64,
		Sort:  bson.D{{Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := []*entity.ChangeLog{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}

// NopChangeLogRepository discards every entry. It is used when MongoDB is
// not configured.
type NopChangeLogRepository struct{}

// NewNopChangeLogRepository creates a change log repository that stores nothing
func NewNopChangeLogRepository() repository.ChangeLogRepository {
	return NopChangeLogRepository{}
}

// Record implements ChangeLogRepository
func (NopChangeLogRepository) Record(context.Context, *entity.ChangeLog) error {
	return nil
}

// FindByEntity implements ChangeLogRepository
func (NopChangeLogRepository) FindByEntity(context.Context, string, uint, int) ([]*entity.ChangeLog, error) {
	return []*entity.ChangeLog{}, nil
}
