package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlanKind identifies which plan collection a media attachment belongs to.
type PlanKind string

const (
	PlanKindDiet    PlanKind = "diet"
	PlanKindWorkout PlanKind = "workout"
)

// PlanMedia stores metadata about a file a trainer attached to one of their
// plans (an intro video, a meal photo, ...). The file itself lives in S3;
// clients up- and download it through presigned URLs.
type PlanMedia struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TrainerID   primitive.ObjectID `bson:"trainerId" json:"trainerId"`
	PlanID      primitive.ObjectID `bson:"planId" json:"planId"`
	PlanKind    PlanKind           `bson:"planKind" json:"planKind"`
	S3ObjectKey string             `bson:"s3ObjectKey" json:"-"` // bucket key, internal use only
	FileName    string             `bson:"fileName" json:"fileName"`
	ContentType string             `bson:"contentType" json:"contentType"`
	Size        int64              `bson:"size" json:"size"`
	UploadedAt  time.Time          `bson:"uploadedAt" json:"uploadedAt"`
}
