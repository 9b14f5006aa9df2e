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

const userCollectionName = "users"

// mongoUserRepository implements repository.UserRepository using MongoDB.
type mongoUserRepository struct {
	collection *mongo.Collection
}

// NewMongoUserRepository creates a new user repository backed by MongoDB.
func NewMongoUserRepository(db *mongo.Database) repository.UserRepository {
	return &mongoUserRepository{
		collection: db.Collection(userCollectionName),
	}
}

// Create inserts a new user into the database.
func (r *mongoUserRepository) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	if user.Email == "" || user.PasswordHash == "" || user.Role == "" {
		return primitive.NilObjectID, errors.New("user email, password hash, and role are required")
	}

	user.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, repository.ErrDuplicateEmail
		}
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByEmail retrieves a user by their email address.
func (r *mongoUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetByID retrieves a user by their MongoDB ObjectID.
func (r *mongoUserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	var user domain.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindTrainers returns approved, active trainers. An optional search term
// matches name or specialization, an optional specialization term matches
// specialization only; both are case-insensitive substring matches.
func (r *mongoUserRepository) FindTrainers(ctx context.Context, search, specialization string) ([]domain.User, error) {
	filter := bson.M{
		"role":       domain.RoleTrainer,
		"isApproved": true,
		"isActive":   true,
	}
	if search != "" {
		filter["$or"] = bson.A{
			bson.M{"name": bson.M{"$regex": search, "$options": "i"}},
			bson.M{"specialization": bson.M{"$regex": search, "$options": "i"}},
		}
	}
	if specialization != "" {
		filter["specialization"] = bson.M{"$regex": specialization, "$options": "i"}
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var trainers []domain.User
	if err = cursor.All(ctx, &trainers); err != nil {
		return nil, err
	}
	return trainers, nil
}

// FindPendingTrainers returns trainers still awaiting admin approval.
func (r *mongoUserRepository) FindPendingTrainers(ctx context.Context) ([]domain.User, error) {
	filter := bson.M{"role": domain.RoleTrainer, "isApproved": false}
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var trainers []domain.User
	if err = cursor.All(ctx, &trainers); err != nil {
		return nil, err
	}
	return trainers, nil
}

// List returns users for the admin overview, optionally filtered by role
// and by a case-insensitive name/email search.
func (r *mongoUserRepository) List(ctx context.Context, role domain.Role, search string) ([]domain.User, error) {
	filter := bson.M{}
	if role != "" {
		filter["role"] = role
	}
	if search != "" {
		filter["$or"] = bson.A{
			bson.M{"name": bson.M{"$regex": search, "$options": "i"}},
			bson.M{"email": bson.M{"$regex": search, "$options": "i"}},
		}
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []domain.User
	if err = cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// SetApproved flips the approval flag on a trainer account.
func (r *mongoUserRepository) SetApproved(ctx context.Context, trainerID primitive.ObjectID) error {
	filter := bson.M{"_id": trainerID, "role": domain.RoleTrainer}
	update := bson.M{"$set": bson.M{
		"isApproved": true,
		"updatedAt":  time.Now().UTC(),
	}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// SetActive toggles the soft-deactivation flag. Accounts are never
// hard-deleted in the normal flow.
func (r *mongoUserRepository) SetActive(ctx context.Context, userID primitive.ObjectID, active bool) error {
	update := bson.M{"$set": bson.M{
		"isActive":  active,
		"updatedAt": time.Now().UTC(),
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Update modifies the mutable profile fields of a user. Email, role and
// password hash are intentionally not touched here.
func (r *mongoUserRepository) Update(ctx context.Context, user *domain.User) error {
	if user.ID == primitive.NilObjectID {
		return errors.New("user ID is required for update")
	}

	update := bson.M{"$set": bson.M{
		"name":           user.Name,
		"isActive":       user.IsActive,
		"specialization": user.Specialization,
		"experience":     user.Experience,
		"updatedAt":      time.Now().UTC(),
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": user.ID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// CountStatistics derives the admin report counters with a series of counts.
// Volumes are small; counting on read keeps the documents free of
// incrementally-maintained fields.
func (r *mongoUserRepository) CountStatistics(ctx context.Context) (*domain.PlatformStats, error) {
	stats := &domain.PlatformStats{}

	counts := []struct {
		filter bson.M
		dest   *int64
	}{
		{bson.M{"role": domain.RoleUser}, &stats.TotalUsers},
		{bson.M{"role": domain.RoleTrainer}, &stats.TotalTrainers},
		{bson.M{"role": domain.RoleTrainer, "isApproved": true}, &stats.ApprovedTrainers},
		{bson.M{"role": domain.RoleTrainer, "isApproved": false}, &stats.PendingTrainers},
		{bson.M{"isActive": true}, &stats.ActiveUsers},
		{bson.M{"isActive": false}, &stats.InactiveUsers},
	}
	for _, c := range counts {
		n, err := r.collection.CountDocuments(ctx, c.filter)
		if err != nil {
			return nil, err
		}
		*c.dest = n
	}
	return stats, nil
}

// EnsureUserIndexes creates indexes for the users collection.
// Call once during application startup.
func EnsureUserIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "role", Value: 1}},
			Options: options.Index(),
		},
		{
			// Covers the member-facing trainer listing filter.
			Keys:    bson.D{{Key: "role", Value: 1}, {Key: "isApproved", Value: 1}, {Key: "isActive", Value: 1}},
			Options: options.Index(),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
