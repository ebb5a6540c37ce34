package service

import (
	"context"
	"errors"

	"gym-api/internal/domain"
	"gym-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrEquipmentNotFound = errors.New("equipment not found")

// EquipmentService exposes create/read/list operations over gym equipment.
type EquipmentService interface {
	CreateEquipment(ctx context.Context, equipment *domain.Equipment) (*domain.Equipment, error)
	GetEquipmentByID(ctx context.Context, equipmentID primitive.ObjectID) (*domain.Equipment, error)
	GetEquipment(ctx context.Context) ([]domain.Equipment, error)
	DeleteEquipment(ctx context.Context, equipmentID primitive.ObjectID) error
}

// equipmentService implements the EquipmentService interface.
type equipmentService struct {
	equipmentRepo repository.EquipmentRepository
}

// NewEquipmentService creates a new instance of equipmentService.
func NewEquipmentService(equipmentRepo repository.EquipmentRepository) EquipmentService {
	return &equipmentService{equipmentRepo: equipmentRepo}
}

// CreateEquipment registers a new piece of equipment.
func (s *equipmentService) CreateEquipment(ctx context.Context, equipment *domain.Equipment) (*domain.Equipment, error) {
	if equipment.Name == "" {
		return nil, ErrValidationFailed
	}

	equipmentID, err := s.equipmentRepo.Create(ctx, equipment)
	if err != nil {
		return nil, err
	}
	return s.equipmentRepo.GetByID(ctx, equipmentID)
}

// GetEquipmentByID retrieves a single piece of equipment.
func (s *equipmentService) GetEquipmentByID(ctx context.Context, equipmentID primitive.ObjectID) (*domain.Equipment, error) {
	equipment, err := s.equipmentRepo.GetByID(ctx, equipmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEquipmentNotFound
		}
		return nil, err
	}
	return equipment, nil
}

// GetEquipment retrieves all equipment.
func (s *equipmentService) GetEquipment(ctx context.Context) ([]domain.Equipment, error) {
	return s.equipmentRepo.GetAll(ctx)
}

// DeleteEquipment soft-deletes a piece of equipment.
func (s *equipmentService) DeleteEquipment(ctx context.Context, equipmentID primitive.ObjectID) error {
	err := s.equipmentRepo.Delete(ctx, equipmentID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrEquipmentNotFound
	}
	return err
}
