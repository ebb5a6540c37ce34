package service

import (
	"context"
	"testing"

	"gym-api/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newMemberService() (MemberService, *fakeMemberRepo) {
	repo := &fakeMemberRepo{members: make(map[primitive.ObjectID]*domain.Member)}
	return NewMemberService(repo), repo
}

func TestCreateMember(t *testing.T) {
	svc, _ := newMemberService()

	member, err := svc.CreateMember(context.Background(), &domain.Member{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
		Gender:    domain.GenderFemale,
	})

	require.NoError(t, err)
	assert.False(t, member.ID.IsZero())
	assert.Equal(t, "Grace Hopper", member.FullName())
}

func TestCreateMember_MissingFields(t *testing.T) {
	svc, _ := newMemberService()

	_, err := svc.CreateMember(context.Background(), &domain.Member{FirstName: "Grace"})
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestGetMemberByID_NotFound(t *testing.T) {
	svc, _ := newMemberService()

	_, err := svc.GetMemberByID(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestDeleteMember(t *testing.T) {
	svc, _ := newMemberService()

	member, err := svc.CreateMember(context.Background(), &domain.Member{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteMember(context.Background(), member.ID))
	assert.ErrorIs(t, svc.DeleteMember(context.Background(), member.ID), ErrMemberNotFound)
}
