package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AssignmentStatus type for assignment lifecycle.
type AssignmentStatus string

const (
	AssignmentActive    AssignmentStatus = "active"
	AssignmentCompleted AssignmentStatus = "completed"
	AssignmentCancelled AssignmentStatus = "cancelled"
	AssignmentExpired   AssignmentStatus = "expired"
)

// AssignmentType categorizes what a trainer is assigning.
type AssignmentType string

const (
	AssignmentExercise   AssignmentType = "exercise"
	AssignmentNutrition  AssignmentType = "nutrition"
	AssignmentAssessment AssignmentType = "assessment"
)

// Assignment is a task a trainer hands out, either to one member or to all
// members when MemberID is nil.
type Assignment struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Title        string              `bson:"title" json:"title"`
	Description  string              `bson:"description,omitempty" json:"description,omitempty"`
	TrainerID    primitive.ObjectID  `bson:"trainerId" json:"trainerId"`
	MemberID     *primitive.ObjectID `bson:"memberId,omitempty" json:"memberId,omitempty"`
	DueDate      *time.Time          `bson:"dueDate,omitempty" json:"dueDate,omitempty"`
	Status       AssignmentStatus    `bson:"status" json:"status"`
	Type         AssignmentType      `bson:"type" json:"type"`
	Instructions string              `bson:"instructions,omitempty" json:"instructions,omitempty"`
	Points       int                 `bson:"points,omitempty" json:"points,omitempty"`
	IsPublic     bool                `bson:"isPublic" json:"isPublic"`
	Media        []AssignmentMedia   `bson:"media,omitempty" json:"media,omitempty"`
	CreatedAt    time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time           `bson:"updatedAt" json:"updatedAt"`
	DeletedAt    *time.Time          `bson:"deletedAt,omitempty" json:"-"`
}

// AssignmentMedia is metadata for a file (video, image) attached to an
// assignment. The file itself lives in object storage under ObjectKey.
type AssignmentMedia struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ObjectKey        string             `bson:"objectKey" json:"-"`
	OriginalFileName string             `bson:"originalFileName" json:"originalFileName"`
	ContentType      string             `bson:"contentType" json:"contentType"`
	FileSize         int64              `bson:"fileSize,omitempty" json:"fileSize,omitempty"`
	Description      string             `bson:"description,omitempty" json:"description,omitempty"`
	UploadedAt       time.Time          `bson:"uploadedAt" json:"uploadedAt"`
}
