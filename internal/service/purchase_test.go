package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rifaapp/rifa-api/internal/domain"
)

func TestPurchaseService_RegisterParticipant_Normalizes(t *testing.T) {
	repo := &fakePurchaseRepo{}
	s := NewPurchaseService(repo)

	p, err := s.RegisterParticipant(context.Background(), domain.ParticipantInfo{
		Name:  " Luis ",
		Email: strPtr(" LUIS@Example.com"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Luis", p.Name)
	assert.Equal(t, "luis@example.com", *p.Email)
}

func TestPurchaseService_GetParticipant(t *testing.T) {
	known := domain.Participant{ID: uuid.New(), Name: "Luis"}
	repo := &fakePurchaseRepo{participants: map[uuid.UUID]domain.Participant{known.ID: known}}
	s := NewPurchaseService(repo)

	got, err := s.GetParticipant(context.Background(), known.ID)
	require.NoError(t, err)
	assert.Equal(t, known, got)

	_, err = s.GetParticipant(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPurchaseService_ListPurchases(t *testing.T) {
	s := NewPurchaseService(&fakePurchaseRepo{})
	id := uuid.New()

	purchases, err := s.ListPurchases(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, purchases, 1)
	assert.Equal(t, id, purchases[0].ParticipantID)
}
