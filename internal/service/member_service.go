package service

import (
	"context"
	"errors"

	"gym-api/internal/domain"
	"gym-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrMemberNotFound   = errors.New("member not found")
	ErrValidationFailed = errors.New("validation failed")
)

// MemberService exposes create/read/list operations over gym members.
type MemberService interface {
	CreateMember(ctx context.Context, member *domain.Member) (*domain.Member, error)
	GetMemberByID(ctx context.Context, memberID primitive.ObjectID) (*domain.Member, error)
	GetMembers(ctx context.Context) ([]domain.Member, error)
	DeleteMember(ctx context.Context, memberID primitive.ObjectID) error
}

// memberService implements the MemberService interface.
type memberService struct {
	memberRepo repository.MemberRepository
}

// NewMemberService creates a new instance of memberService.
func NewMemberService(memberRepo repository.MemberRepository) MemberService {
	return &memberService{memberRepo: memberRepo}
}

// CreateMember handles the registration of a new gym member.
func (s *memberService) CreateMember(ctx context.Context, member *domain.Member) (*domain.Member, error) {
	if member.FirstName == "" || member.LastName == "" || member.Email == "" {
		return nil, ErrValidationFailed
	}

	memberID, err := s.memberRepo.Create(ctx, member)
	if err != nil {
		return nil, err
	}
	// Fetch again to return the timestamps stamped by the repository.
	return s.memberRepo.GetByID(ctx, memberID)
}

// GetMemberByID retrieves a single member.
func (s *memberService) GetMemberByID(ctx context.Context, memberID primitive.ObjectID) (*domain.Member, error) {
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return member, nil
}

// GetMembers retrieves all active members.
func (s *memberService) GetMembers(ctx context.Context) ([]domain.Member, error) {
	return s.memberRepo.GetAll(ctx)
}

// DeleteMember soft-deletes a member.
func (s *memberService) DeleteMember(ctx context.Context, memberID primitive.ObjectID) error {
	err := s.memberRepo.Delete(ctx, memberID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrMemberNotFound
	}
	return err
}
