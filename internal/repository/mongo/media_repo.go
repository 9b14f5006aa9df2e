package mongo

import (
	"context"
	"errors"
	"time"

	"fitnesshub/internal/domain"
	"fitnesshub/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mediaCollectionName = "plan_media"

// mongoMediaRepository implements repository.MediaRepository.
type mongoMediaRepository struct {
	collection *mongo.Collection
}

// NewMongoMediaRepository creates a new plan media repository backed by MongoDB.
func NewMongoMediaRepository(db *mongo.Database) repository.MediaRepository {
	return &mongoMediaRepository{
		collection: db.Collection(mediaCollectionName),
	}
}

// Create records metadata for a plan media object living in S3.
func (r *mongoMediaRepository) Create(ctx context.Context, media *domain.PlanMedia) (primitive.ObjectID, error) {
	if media.TrainerID == primitive.NilObjectID || media.PlanID == primitive.NilObjectID || media.S3ObjectKey == "" {
		return primitive.NilObjectID, errors.New("media trainer ID, plan ID and object key are required")
	}

	media.ID = primitive.NewObjectID()
	media.UploadedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, media)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByID retrieves plan media metadata by its ID.
func (r *mongoMediaRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.PlanMedia, error) {
	var media domain.PlanMedia
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&media)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &media, nil
}

// GetByPlanID retrieves all media attached to a plan, newest first.
func (r *mongoMediaRepository) GetByPlanID(ctx context.Context, planID primitive.ObjectID) ([]domain.PlanMedia, error) {
	filter := bson.M{"planId": planID}
	findOptions := options.Find().SetSort(bson.D{{Key: "uploadedAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var media []domain.PlanMedia
	if err = cursor.All(ctx, &media); err != nil {
		return nil, err
	}
	return media, nil
}

// EnsureMediaIndexes creates indexes for the plan_media collection.
func EnsureMediaIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "planId", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "trainerId", Value: 1}},
			Options: options.Index(),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
