package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlanType is the commercial tier of a subscription plan.
type PlanType string

const (
	PlanTypeBasic   PlanType = "basic"
	PlanTypePremium PlanType = "premium"
	PlanTypeVIP     PlanType = "vip"
	PlanTypeCustom  PlanType = "custom"
)

// SubscriptionPlan is an admin-defined commercial tier. Plans belong to the
// platform, not to any trainer. They are never hard-deleted: deactivation
// keeps references from existing subscriptions intact.
type SubscriptionPlan struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Duration    int                `bson:"duration" json:"duration"` // days
	Price       float64            `bson:"price" json:"price"`
	Features    []string           `bson:"features" json:"features"`
	PlanType    PlanType           `bson:"planType" json:"planType"`
	IsActive    bool               `bson:"isActive" json:"isActive"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ValidPlanType reports whether t is one of the defined tiers.
func ValidPlanType(t PlanType) bool {
	switch t {
	case PlanTypeBasic, PlanTypePremium, PlanTypeVIP, PlanTypeCustom:
		return true
	}
	return false
}
