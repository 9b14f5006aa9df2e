package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TargetAudience describes who a trainer-authored plan is aimed at.
type TargetAudience string

const (
	AudienceWeightLoss     TargetAudience = "weight_loss"
	AudienceMuscleGain     TargetAudience = "muscle_gain"
	AudienceMaintenance    TargetAudience = "maintenance"
	AudienceGeneralFitness TargetAudience = "general_fitness"
)

// MealType identifies a meal slot within a diet plan day.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// Meal is a single entry in a diet plan. Order within the slice is the
// order the trainer authored.
type Meal struct {
	MealType    MealType `bson:"mealType" json:"mealType"`
	Description string   `bson:"description" json:"description"`
	Calories    int      `bson:"calories" json:"calories"`
}

// DietPlan is trainer-authored nutrition content, owned by exactly one trainer.
type DietPlan struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TrainerID      primitive.ObjectID `bson:"trainerId" json:"trainerId"`
	Title          string             `bson:"title" json:"title"`
	Description    string             `bson:"description,omitempty" json:"description,omitempty"`
	Duration       int                `bson:"duration" json:"duration"` // weeks
	CaloriesPerDay int                `bson:"caloriesPerDay" json:"caloriesPerDay"`
	TargetAudience TargetAudience     `bson:"targetAudience" json:"targetAudience"`
	Price          float64            `bson:"price" json:"price"`
	Meals          []Meal             `bson:"meals" json:"meals"`
	IsActive       bool               `bson:"isActive" json:"isActive"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}
