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

const subscriptionPlanCollectionName = "subscription_plans"

// mongoSubscriptionPlanRepository implements repository.SubscriptionPlanRepository.
type mongoSubscriptionPlanRepository struct {
	collection *mongo.Collection
}

// NewMongoSubscriptionPlanRepository creates a new subscription plan repository.
func NewMongoSubscriptionPlanRepository(db *mongo.Database) repository.SubscriptionPlanRepository {
	return &mongoSubscriptionPlanRepository{
		collection: db.Collection(subscriptionPlanCollectionName),
	}
}

// Create inserts a new subscription plan.
func (r *mongoSubscriptionPlanRepository) Create(ctx context.Context, plan *domain.SubscriptionPlan) (primitive.ObjectID, error) {
	if plan.Name == "" || plan.Duration <= 0 {
		return primitive.NilObjectID, errors.New("plan name and a positive duration are required")
	}

	plan.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	plan.CreatedAt = now
	plan.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, plan)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByID retrieves a subscription plan by its ID.
func (r *mongoSubscriptionPlanRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.SubscriptionPlan, error) {
	var plan domain.SubscriptionPlan
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&plan)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// GetAll returns subscription plans, optionally restricted to active ones.
func (r *mongoSubscriptionPlanRepository) GetAll(ctx context.Context, activeOnly bool) ([]domain.SubscriptionPlan, error) {
	filter := bson.M{}
	if activeOnly {
		filter["isActive"] = true
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "price", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var plans []domain.SubscriptionPlan
	if err = cursor.All(ctx, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// Update modifies an existing plan. Existing subscriptions are unaffected:
// they carry their own price and date snapshots.
func (r *mongoSubscriptionPlanRepository) Update(ctx context.Context, plan *domain.SubscriptionPlan) error {
	if plan.ID == primitive.NilObjectID {
		return errors.New("plan ID is required for update")
	}

	update := bson.M{"$set": bson.M{
		"name":        plan.Name,
		"description": plan.Description,
		"duration":    plan.Duration,
		"price":       plan.Price,
		"features":    plan.Features,
		"planType":    plan.PlanType,
		"isActive":    plan.IsActive,
		"updatedAt":   time.Now().UTC(),
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": plan.ID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Deactivate soft-deletes a plan so existing subscriptions keep a valid reference.
func (r *mongoSubscriptionPlanRepository) Deactivate(ctx context.Context, id primitive.ObjectID) error {
	update := bson.M{"$set": bson.M{
		"isActive":  false,
		"updatedAt": time.Now().UTC(),
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureSubscriptionPlanIndexes creates indexes for the subscription_plans collection.
func EnsureSubscriptionPlanIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "isActive", Value: 1}},
			Options: options.Index(),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
