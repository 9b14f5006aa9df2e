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

const subscriptionCollectionName = "subscriptions"

// mongoSubscriptionRepository implements repository.SubscriptionRepository.
type mongoSubscriptionRepository struct {
	collection *mongo.Collection
}

// NewMongoSubscriptionRepository creates a new subscription ledger backed by MongoDB.
func NewMongoSubscriptionRepository(db *mongo.Database) repository.SubscriptionRepository {
	return &mongoSubscriptionRepository{
		collection: db.Collection(subscriptionCollectionName),
	}
}

// Create inserts a new subscription record. This is the only mutation the
// ledger supports; all workflow validation happens before this call.
func (r *mongoSubscriptionRepository) Create(ctx context.Context, sub *domain.Subscription) (primitive.ObjectID, error) {
	if sub.UserID == primitive.NilObjectID || sub.TrainerID == primitive.NilObjectID ||
		sub.SubscriptionPlanID == primitive.NilObjectID || sub.TransactionID == "" {
		return primitive.NilObjectID, errors.New("subscription user, trainer, plan and transaction ID are required")
	}

	sub.ID = primitive.NewObjectID()
	sub.CreatedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, sub)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByID retrieves a subscription by its ID.
func (r *mongoSubscriptionRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Subscription, error) {
	var sub domain.Subscription
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&sub)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &sub, nil
}

// GetByUserID retrieves all of a member's subscriptions, newest first.
func (r *mongoSubscriptionRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Subscription, error) {
	filter := bson.M{"userId": userID}
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var subs []domain.Subscription
	if err = cursor.All(ctx, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// GetCompletedByTrainerID retrieves a trainer's paid subscriptions, newest first.
func (r *mongoSubscriptionRepository) GetCompletedByTrainerID(ctx context.Context, trainerID primitive.ObjectID) ([]domain.Subscription, error) {
	filter := bson.M{"trainerId": trainerID, "paymentStatus": domain.PaymentCompleted}
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var subs []domain.Subscription
	if err = cursor.All(ctx, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// CountCompletedByTrainerID counts a trainer's paid subscriptions at query time.
func (r *mongoSubscriptionRepository) CountCompletedByTrainerID(ctx context.Context, trainerID primitive.ObjectID) (int64, error) {
	filter := bson.M{"trainerId": trainerID, "paymentStatus": domain.PaymentCompleted}
	return r.collection.CountDocuments(ctx, filter)
}

// EnsureSubscriptionIndexes creates indexes for the subscriptions collection.
func EnsureSubscriptionIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "transactionId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "trainerId", Value: 1}, {Key: "paymentStatus", Value: 1}},
			Options: options.Index(),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
