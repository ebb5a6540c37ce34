package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role type to distinguish between user roles.
type Role string

const (
	RoleTrainer Role = "trainer"
	RoleMember  Role = "member"
)

// User is a login account for the API. A user is linked to a Member or
// Trainer record through ProfileID depending on its role.
type User struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name         string              `bson:"name" json:"name"`
	Email        string              `bson:"email" json:"email"`    // Should be unique
	PasswordHash string              `bson:"passwordHash" json:"-"` // Never expose this via JSON
	Role         Role                `bson:"role" json:"role"`
	ProfileID    *primitive.ObjectID `bson:"profileId,omitempty" json:"profileId,omitempty"`
	CreatedAt    time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time           `bson:"updatedAt" json:"updatedAt"`
}

func (u *User) IsTrainer() bool {
	return u.Role == RoleTrainer
}
