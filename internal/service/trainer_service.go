package service

import (
	"context"
	"errors"

	"gym-api/internal/domain"
	"gym-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrTrainerNotFound = errors.New("trainer not found")

// TrainerService exposes create/read/list operations over trainers.
type TrainerService interface {
	CreateTrainer(ctx context.Context, trainer *domain.Trainer) (*domain.Trainer, error)
	GetTrainerByID(ctx context.Context, trainerID primitive.ObjectID) (*domain.Trainer, error)
	GetTrainers(ctx context.Context) ([]domain.Trainer, error)
	DeleteTrainer(ctx context.Context, trainerID primitive.ObjectID) error
}

// trainerService implements the TrainerService interface.
type trainerService struct {
	trainerRepo repository.TrainerRepository
}

// NewTrainerService creates a new instance of trainerService.
func NewTrainerService(trainerRepo repository.TrainerRepository) TrainerService {
	return &trainerService{trainerRepo: trainerRepo}
}

// CreateTrainer registers a new trainer.
func (s *trainerService) CreateTrainer(ctx context.Context, trainer *domain.Trainer) (*domain.Trainer, error) {
	if trainer.FirstName == "" || trainer.LastName == "" || trainer.Email == "" {
		return nil, ErrValidationFailed
	}

	trainerID, err := s.trainerRepo.Create(ctx, trainer)
	if err != nil {
		return nil, err
	}
	return s.trainerRepo.GetByID(ctx, trainerID)
}

// GetTrainerByID retrieves a single trainer.
func (s *trainerService) GetTrainerByID(ctx context.Context, trainerID primitive.ObjectID) (*domain.Trainer, error) {
	trainer, err := s.trainerRepo.GetByID(ctx, trainerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}
	return trainer, nil
}

// GetTrainers retrieves all trainers.
func (s *trainerService) GetTrainers(ctx context.Context) ([]domain.Trainer, error) {
	return s.trainerRepo.GetAll(ctx)
}

// DeleteTrainer soft-deletes a trainer.
func (s *trainerService) DeleteTrainer(ctx context.Context, trainerID primitive.ObjectID) error {
	err := s.trainerRepo.Delete(ctx, trainerID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrTrainerNotFound
	}
	return err
}
