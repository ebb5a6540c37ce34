package service

import (
	"context"
	"testing"
	"time"

	"gym-api/internal/domain"
	"gym-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeBookingRepo is an in-memory BookingRepository.
type fakeBookingRepo struct {
	bookings map[primitive.ObjectID]*domain.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[primitive.ObjectID]*domain.Booking)}
}

func (r *fakeBookingRepo) Create(ctx context.Context, booking *domain.Booking) (primitive.ObjectID, error) {
	booking.ID = primitive.NewObjectID()
	if booking.Status == "" {
		booking.Status = domain.BookingPending
	}
	now := time.Now().UTC()
	booking.CreatedAt = now
	booking.UpdatedAt = now
	copied := *booking
	r.bookings[booking.ID] = &copied
	return booking.ID, nil
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Booking, error) {
	booking, ok := r.bookings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *booking
	return &copied, nil
}

func (r *fakeBookingRepo) GetByMemberID(ctx context.Context, memberID primitive.ObjectID) ([]domain.Booking, error) {
	var result []domain.Booking
	for _, b := range r.bookings {
		if b.MemberID == memberID {
			result = append(result, *b)
		}
	}
	return result, nil
}

func (r *fakeBookingRepo) Update(ctx context.Context, booking *domain.Booking) error {
	if _, ok := r.bookings[booking.ID]; !ok {
		return repository.ErrNotFound
	}
	copied := *booking
	r.bookings[booking.ID] = &copied
	return nil
}

// fakeMemberRepo holds a fixed set of members.
type fakeMemberRepo struct {
	members map[primitive.ObjectID]*domain.Member
}

func (r *fakeMemberRepo) Create(ctx context.Context, member *domain.Member) (primitive.ObjectID, error) {
	member.ID = primitive.NewObjectID()
	r.members[member.ID] = member
	return member.ID, nil
}

func (r *fakeMemberRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Member, error) {
	member, ok := r.members[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return member, nil
}

func (r *fakeMemberRepo) GetAll(ctx context.Context) ([]domain.Member, error) {
	var result []domain.Member
	for _, m := range r.members {
		result = append(result, *m)
	}
	return result, nil
}

func (r *fakeMemberRepo) Update(ctx context.Context, member *domain.Member) error { return nil }

func (r *fakeMemberRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := r.members[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.members, id)
	return nil
}

func setupBookingService(t *testing.T) (BookingService, *fakeBookingRepo, primitive.ObjectID) {
	t.Helper()
	memberID := primitive.NewObjectID()
	memberRepo := &fakeMemberRepo{members: map[primitive.ObjectID]*domain.Member{
		memberID: {ID: memberID, FirstName: "Ada", LastName: "Lovelace"},
	}}
	bookingRepo := newFakeBookingRepo()
	return NewBookingService(bookingRepo, memberRepo), bookingRepo, memberID
}

func validBooking(memberID primitive.ObjectID) *domain.Booking {
	start := time.Now().Add(24 * time.Hour)
	return &domain.Booking{
		MemberID:  memberID,
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Type:      domain.BookingPersonalTraining,
	}
}

func TestCreateBooking_Success(t *testing.T) {
	svc, _, memberID := setupBookingService(t)

	booking, err := svc.CreateBooking(context.Background(), validBooking(memberID))

	require.NoError(t, err)
	assert.False(t, booking.ID.IsZero())
	assert.Equal(t, domain.BookingPending, booking.Status)
}

func TestCreateBooking_InvalidWindow(t *testing.T) {
	svc, _, memberID := setupBookingService(t)

	booking := validBooking(memberID)
	booking.EndTime = booking.StartTime.Add(-time.Hour)

	_, err := svc.CreateBooking(context.Background(), booking)
	assert.ErrorIs(t, err, ErrInvalidBookingWindow)
}

func TestCreateBooking_UnknownMember(t *testing.T) {
	svc, _, _ := setupBookingService(t)

	_, err := svc.CreateBooking(context.Background(), validBooking(primitive.NewObjectID()))
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestCancelBooking(t *testing.T) {
	svc, _, memberID := setupBookingService(t)

	created, err := svc.CreateBooking(context.Background(), validBooking(memberID))
	require.NoError(t, err)

	cancelled, err := svc.CancelBooking(context.Background(), created.ID, "schedule conflict")
	require.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, cancelled.Status)
	assert.Equal(t, "schedule conflict", cancelled.CancellationReason)
	require.NotNil(t, cancelled.CancellationDate)

	// A second cancellation is rejected.
	_, err = svc.CancelBooking(context.Background(), created.ID, "again")
	assert.ErrorIs(t, err, ErrBookingAlreadyCancelled)
}

func TestCancelBooking_NotFound(t *testing.T) {
	svc, _, _ := setupBookingService(t)

	_, err := svc.CancelBooking(context.Background(), primitive.NewObjectID(), "reason")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetBookingsForMember(t *testing.T) {
	svc, _, memberID := setupBookingService(t)

	_, err := svc.CreateBooking(context.Background(), validBooking(memberID))
	require.NoError(t, err)
	_, err = svc.CreateBooking(context.Background(), validBooking(memberID))
	require.NoError(t, err)

	bookings, err := svc.GetBookingsForMember(context.Background(), memberID)
	require.NoError(t, err)
	assert.Len(t, bookings, 2)
}
