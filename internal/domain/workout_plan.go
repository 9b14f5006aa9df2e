package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Difficulty grades a workout plan.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Exercise is a single entry in a workout plan, in authored order.
type Exercise struct {
	Name        string `bson:"name" json:"name"`
	Sets        int    `bson:"sets" json:"sets"`
	Reps        int    `bson:"reps" json:"reps"`
	RestTime    int    `bson:"restTime" json:"restTime"` // seconds between sets
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

// WorkoutPlan is trainer-authored training content, owned by exactly one trainer.
type WorkoutPlan struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TrainerID      primitive.ObjectID `bson:"trainerId" json:"trainerId"`
	Title          string             `bson:"title" json:"title"`
	Description    string             `bson:"description,omitempty" json:"description,omitempty"`
	Duration       int                `bson:"duration" json:"duration"` // weeks
	Difficulty     Difficulty         `bson:"difficulty" json:"difficulty"`
	TargetAudience TargetAudience     `bson:"targetAudience" json:"targetAudience"`
	Price          float64            `bson:"price" json:"price"`
	Exercises      []Exercise         `bson:"exercises" json:"exercises"`
	IsActive       bool               `bson:"isActive" json:"isActive"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}
