package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TrainerStatus tracks whether a trainer is currently working.
type TrainerStatus string

const (
	TrainerActive   TrainerStatus = "active"
	TrainerInactive TrainerStatus = "inactive"
	TrainerOnLeave  TrainerStatus = "on_leave"
)

// Trainer represents a personal trainer employed by the gym.
type Trainer struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName      string             `bson:"firstName" json:"firstName"`
	LastName       string             `bson:"lastName" json:"lastName"`
	Email          string             `bson:"email" json:"email"` // Should be unique
	PhoneNumber    string             `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	Specialization string             `bson:"specialization,omitempty" json:"specialization,omitempty"`
	Certification  string             `bson:"certification,omitempty" json:"certification,omitempty"`
	HireDate       time.Time          `bson:"hireDate" json:"hireDate"`
	Status         TrainerStatus      `bson:"status" json:"status"`
	HourlyRate     float64            `bson:"hourlyRate,omitempty" json:"hourlyRate,omitempty"`
	Bio            string             `bson:"bio,omitempty" json:"bio,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
	DeletedAt      *time.Time         `bson:"deletedAt,omitempty" json:"-"`
}

// FullName returns the trainer's display name.
func (t *Trainer) FullName() string {
	return t.FirstName + " " + t.LastName
}
