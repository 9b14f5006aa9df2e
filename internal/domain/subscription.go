package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentStatus of a subscription. No real gateway is integrated; the
// workflow records every payment as completed.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// SubscriptionStatus is the lifecycle state of a subscription.
type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionExpired   SubscriptionStatus = "expired"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

// Subscription links a member to a trainer through a commercial plan,
// optionally bundling one of the trainer's diet and workout plans.
//
// Amount and EndDate are snapshots taken at creation time: later edits to
// the referenced SubscriptionPlan never alter an existing subscription.
type Subscription struct {
	ID                 primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID             primitive.ObjectID  `bson:"userId" json:"userId"`
	TrainerID          primitive.ObjectID  `bson:"trainerId" json:"trainerId"`
	SubscriptionPlanID primitive.ObjectID  `bson:"subscriptionPlanId" json:"subscriptionPlanId"`
	DietPlanID         *primitive.ObjectID `bson:"dietPlanId,omitempty" json:"dietPlanId,omitempty"`
	WorkoutPlanID      *primitive.ObjectID `bson:"workoutPlanId,omitempty" json:"workoutPlanId,omitempty"`
	StartDate          time.Time           `bson:"startDate" json:"startDate"`
	EndDate            time.Time           `bson:"endDate" json:"endDate"` // StartDate + plan duration days
	Amount             float64             `bson:"amount" json:"amount"`   // price snapshot
	PaymentStatus      PaymentStatus       `bson:"paymentStatus" json:"paymentStatus"`
	Status             SubscriptionStatus  `bson:"status" json:"status"`
	TransactionID      string              `bson:"transactionId" json:"transactionId"` // unique index
	CreatedAt          time.Time           `bson:"createdAt" json:"createdAt"`
}
