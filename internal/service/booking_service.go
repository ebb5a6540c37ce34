package service

import (
	"context"
	"errors"
	"time"

	"gym-api/internal/domain"
	"gym-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrBookingNotFound         = errors.New("booking not found")
	ErrBookingAlreadyCancelled = errors.New("booking is already cancelled")
	ErrInvalidBookingWindow    = errors.New("booking end time must be after start time")
)

// BookingService exposes booking creation, lookup and cancellation.
type BookingService interface {
	CreateBooking(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetBookingByID(ctx context.Context, bookingID primitive.ObjectID) (*domain.Booking, error)
	GetBookingsForMember(ctx context.Context, memberID primitive.ObjectID) ([]domain.Booking, error)
	CancelBooking(ctx context.Context, bookingID primitive.ObjectID, reason string) (*domain.Booking, error)
}

// bookingService implements the BookingService interface.
type bookingService struct {
	bookingRepo repository.BookingRepository
	memberRepo  repository.MemberRepository
}

// NewBookingService creates a new instance of bookingService.
func NewBookingService(bookingRepo repository.BookingRepository, memberRepo repository.MemberRepository) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		memberRepo:  memberRepo,
	}
}

// CreateBooking reserves a trainer session or piece of equipment.
func (s *bookingService) CreateBooking(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if booking.MemberID == primitive.NilObjectID {
		return nil, ErrValidationFailed
	}
	if !booking.EndTime.After(booking.StartTime) {
		return nil, ErrInvalidBookingWindow
	}

	if _, err := s.memberRepo.GetByID(ctx, booking.MemberID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	bookingID, err := s.bookingRepo.Create(ctx, booking)
	if err != nil {
		return nil, err
	}
	return s.bookingRepo.GetByID(ctx, bookingID)
}

// GetBookingByID retrieves a single booking.
func (s *bookingService) GetBookingByID(ctx context.Context, bookingID primitive.ObjectID) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}

// GetBookingsForMember retrieves all bookings made by a member.
func (s *bookingService) GetBookingsForMember(ctx context.Context, memberID primitive.ObjectID) ([]domain.Booking, error) {
	return s.bookingRepo.GetByMemberID(ctx, memberID)
}

// CancelBooking marks a booking as cancelled with a reason.
func (s *bookingService) CancelBooking(ctx context.Context, bookingID primitive.ObjectID, reason string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if booking.Status == domain.BookingCancelled {
		return nil, ErrBookingAlreadyCancelled
	}

	now := time.Now().UTC()
	booking.Status = domain.BookingCancelled
	booking.CancellationDate = &now
	booking.CancellationReason = reason

	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}
