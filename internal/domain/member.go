package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MembershipStatus tracks the lifecycle of a gym membership.
type MembershipStatus string

const (
	MembershipActive    MembershipStatus = "active"
	MembershipInactive  MembershipStatus = "inactive"
	MembershipSuspended MembershipStatus = "suspended"
	MembershipCancelled MembershipStatus = "cancelled"
	MembershipExpired   MembershipStatus = "expired"
)

// Member represents a gym member.
type Member struct {
	ID                    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName             string             `bson:"firstName" json:"firstName"`
	LastName              string             `bson:"lastName" json:"lastName"`
	Email                 string             `bson:"email" json:"email"` // Should be unique
	PhoneNumber           string             `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	DateOfBirth           time.Time          `bson:"dateOfBirth" json:"dateOfBirth"`
	Gender                Gender             `bson:"gender" json:"gender"`
	JoinDate              time.Time          `bson:"joinDate" json:"joinDate"`
	Status                MembershipStatus   `bson:"status" json:"status"`
	EmergencyContactName  string             `bson:"emergencyContactName,omitempty" json:"emergencyContactName,omitempty"`
	EmergencyContactPhone string             `bson:"emergencyContactPhone,omitempty" json:"emergencyContactPhone,omitempty"`
	CreatedAt             time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt             time.Time          `bson:"updatedAt" json:"updatedAt"`

	// Soft delete: records are never removed, only filtered out.
	DeletedAt *time.Time `bson:"deletedAt,omitempty" json:"-"`
}

// FullName returns the member's display name.
func (m *Member) FullName() string {
	return m.FirstName + " " + m.LastName
}
