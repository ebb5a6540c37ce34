package repository

import (
	"context"

	"gym-api/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with login accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
}

// MemberRepository defines the interface for interacting with member data.
// Delete is a soft delete; reads never return deleted records.
type MemberRepository interface {
	Create(ctx context.Context, member *domain.Member) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Member, error)
	GetAll(ctx context.Context) ([]domain.Member, error)
	Update(ctx context.Context, member *domain.Member) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// TrainerRepository defines the interface for interacting with trainer data.
type TrainerRepository interface {
	Create(ctx context.Context, trainer *domain.Trainer) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Trainer, error)
	GetAll(ctx context.Context) ([]domain.Trainer, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// EquipmentRepository defines the interface for interacting with equipment data.
type EquipmentRepository interface {
	Create(ctx context.Context, equipment *domain.Equipment) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Equipment, error)
	GetAll(ctx context.Context) ([]domain.Equipment, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// AssignmentRepository defines the interface for interacting with assignment data.
type AssignmentRepository interface {
	Create(ctx context.Context, assignment *domain.Assignment) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Assignment, error)
	GetAll(ctx context.Context) ([]domain.Assignment, error)
	GetByTrainerID(ctx context.Context, trainerID primitive.ObjectID) ([]domain.Assignment, error)
	AddMedia(ctx context.Context, assignmentID primitive.ObjectID, media domain.AssignmentMedia) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// BookingRepository defines the interface for interacting with booking data.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Booking, error)
	GetByMemberID(ctx context.Context, memberID primitive.ObjectID) ([]domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
}
