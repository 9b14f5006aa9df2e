package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role distinguishes the three account types on the platform.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTrainer Role = "trainer"
	RoleUser    Role = "user"
)

// User represents any account on the platform: a member, a trainer or an admin.
// Trainer accounts carry the approval flag and profile fields; members and
// admins leave them at their zero values.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"` // unique index
	PasswordHash string             `bson:"passwordHash" json:"-"`
	Role         Role               `bson:"role" json:"role"`
	IsActive     bool               `bson:"isActive" json:"isActive"`

	// --- Trainer-specific ---
	// A trainer is invisible to members until an admin flips IsApproved.
	IsApproved     bool   `bson:"isApproved" json:"isApproved"`
	Specialization string `bson:"specialization,omitempty" json:"specialization,omitempty"`
	Experience     int    `bson:"experience,omitempty" json:"experience,omitempty"` // years

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (u *User) IsTrainer() bool {
	return u.Role == RoleTrainer
}

// Subscribable reports whether members may subscribe to this user.
// The same policy gates the trainer listing.
func (u *User) Subscribable() bool {
	return u.Role == RoleTrainer && u.IsApproved && u.IsActive
}

// PlatformStats holds the admin report counters. All values are derived
// by counting at query time, never stored.
type PlatformStats struct {
	TotalUsers       int64 `json:"totalUsers"`
	TotalTrainers    int64 `json:"totalTrainers"`
	ApprovedTrainers int64 `json:"approvedTrainers"`
	PendingTrainers  int64 `json:"pendingTrainers"`
	ActiveUsers      int64 `json:"activeUsers"`
	InactiveUsers    int64 `json:"inactiveUsers"`
}
