package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rifaapp/rifa-api/internal/domain"
	"github.com/rifaapp/rifa-api/internal/repository"
)

var ErrParticipantNotFound = repository.ErrParticipantNotFound

type PurchaseRepository interface {
	ListByParticipant(ctx context.Context, participantID uuid.UUID) ([]domain.PurchaseView, error)
	ResolveParticipant(ctx context.Context, info domain.ParticipantInfo, now time.Time) (domain.Participant, error)
	FindParticipant(ctx context.Context, id uuid.UUID) (domain.Participant, error)
}

type PurchaseService struct {
	repo PurchaseRepository
	now  func() time.Time
}

func NewPurchaseService(repo PurchaseRepository) *PurchaseService {
	return &PurchaseService{
		repo: repo,
		now:  time.Now,
	}
}

func (s *PurchaseService) ListPurchases(ctx context.Context, participantID uuid.UUID) ([]domain.PurchaseView, error) {
	purchases, err := s.repo.ListByParticipant(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListByParticipant -> %w", err)
	}

	return purchases, nil
}

// RegisterParticipant resolves a participant by email or creates a new one.
func (s *PurchaseService) RegisterParticipant(ctx context.Context, info domain.ParticipantInfo) (domain.Participant, error) {
	participant, err := s.repo.ResolveParticipant(ctx, normalizeParticipant(info), s.now().UTC())
	if err != nil {
		return domain.Participant{}, fmt.Errorf("s.repo.ResolveParticipant -> %w", err)
	}

	return participant, nil
}

func (s *PurchaseService) GetParticipant(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	participant, err := s.repo.FindParticipant(ctx, id)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("s.repo.FindParticipant -> %w", err)
	}

	return participant, nil
}
