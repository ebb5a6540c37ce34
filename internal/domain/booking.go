package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookingType distinguishes what is being reserved.
type BookingType string

const (
	BookingPersonalTraining BookingType = "personal_training"
	BookingEquipment        BookingType = "equipment"
	BookingGroupClass       BookingType = "group_class"
)

// BookingStatus tracks the lifecycle of a booking.
type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingPending   BookingStatus = "pending"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
	BookingNoShow    BookingStatus = "no_show"
)

// Booking reserves a trainer session or a piece of equipment for a member.
// TrainerID and EquipmentID are optional depending on the booking type.
type Booking struct {
	ID                 primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	MemberID           primitive.ObjectID  `bson:"memberId" json:"memberId"`
	TrainerID          *primitive.ObjectID `bson:"trainerId,omitempty" json:"trainerId,omitempty"`
	EquipmentID        *primitive.ObjectID `bson:"equipmentId,omitempty" json:"equipmentId,omitempty"`
	StartTime          time.Time           `bson:"startTime" json:"startTime"`
	EndTime            time.Time           `bson:"endTime" json:"endTime"`
	Type               BookingType         `bson:"type" json:"type"`
	Status             BookingStatus       `bson:"status" json:"status"`
	Notes              string              `bson:"notes,omitempty" json:"notes,omitempty"`
	CancellationDate   *time.Time          `bson:"cancellationDate,omitempty" json:"cancellationDate,omitempty"`
	CancellationReason string              `bson:"cancellationReason,omitempty" json:"cancellationReason,omitempty"`
	CreatedAt          time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time           `bson:"updatedAt" json:"updatedAt"`
	DeletedAt          *time.Time          `bson:"deletedAt,omitempty" json:"-"`
}
