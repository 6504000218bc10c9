package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rifaapp/rifa-api/internal/domain"
	"github.com/rifaapp/rifa-api/internal/repository"
)

var (
	ErrRaffleNotFound     = repository.ErrRaffleNotFound
	ErrNotRaffleOwner     = repository.ErrNotRaffleOwner
	ErrTransactionAborted = repository.ErrTransactionAborted
)

type RaffleRepository interface {
	Create(ctx context.Context, raffle domain.Raffle) (domain.Raffle, error)
	FindByID(ctx context.Context, id uuid.UUID, now time.Time) (domain.RaffleSummary, error)
	List(ctx context.Context, status *domain.RaffleStatus, now time.Time) ([]domain.RaffleSummary, error)
	Update(ctx context.Context, id, ownerID uuid.UUID, update domain.RaffleUpdate, now time.Time) (domain.Raffle, error)
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
	ListNumbers(ctx context.Context, raffle domain.Raffle, offset, limit int, now time.Time) ([]domain.Number, error)
}

// CreateRaffleInput is a raffle to create. Status is raw user input and is normalized.
type CreateRaffleInput struct {
	Raffle domain.Raffle
	Status string
}

type RaffleService struct {
	repo      RaffleRepository
	publisher EventPublisher
	now       func() time.Time
}

func NewRaffleService(repo RaffleRepository, publisher EventPublisher) *RaffleService {
	return &RaffleService{
		repo:      repo,
		publisher: publisher,
		now:       time.Now,
	}
}

func (s *RaffleService) CreateRaffle(ctx context.Context, in CreateRaffleInput) (domain.RaffleSummary, error) {
	status, err := domain.ParseRaffleStatus(in.Status)
	if err != nil {
		return domain.RaffleSummary{}, err
	}

	now := s.now().UTC()
	raffle := in.Raffle
	raffle.ID = uuid.New()
	raffle.Status = status
	raffle.Currency = strings.ToUpper(strings.TrimSpace(raffle.Currency))
	raffle.WinnerTicketID = nil
	raffle.CreatedAt = now
	raffle.UpdatedAt = now

	if err = raffle.Validate(); err != nil {
		return domain.RaffleSummary{}, err
	}

	created, err := s.repo.Create(ctx, raffle)
	if err != nil {
		return domain.RaffleSummary{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	zap.L().Info("raffle created",
		zap.String("raffle_id", created.ID.String()),
		zap.Int("total_tickets", created.TotalTickets),
		zap.String("status", string(created.Status)),
	)
	publish(ctx, s.publisher, domain.Event{Type: domain.EventRaffleCreated, RaffleID: created.ID, At: now})

	return domain.NewRaffleSummary(created, 0, 0), nil
}

// ListRaffles lists raffles newest first. An empty status lists all of them.
func (s *RaffleService) ListRaffles(ctx context.Context, status string) ([]domain.RaffleSummary, error) {
	var filter *domain.RaffleStatus
	if strings.TrimSpace(status) != "" {
		parsed, err := domain.ParseRaffleStatus(status)
		if err != nil {
			return nil, err
		}
		filter = &parsed
	}

	raffles, err := s.repo.List(ctx, filter, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return raffles, nil
}

func (s *RaffleService) GetRaffle(ctx context.Context, id uuid.UUID) (domain.RaffleSummary, error) {
	raffle, err := s.repo.FindByID(ctx, id, s.now().UTC())
	if err != nil {
		return domain.RaffleSummary{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return raffle, nil
}

// UpdateRaffle applies the present fields of update. Only the raffle owner may edit it.
func (s *RaffleService) UpdateRaffle(ctx context.Context, id, ownerID uuid.UUID, update domain.RaffleUpdate) (domain.RaffleSummary, error) {
	if update.IsEmpty() {
		return domain.RaffleSummary{}, domain.ErrNoFieldsToUpdate
	}

	if update.Status != nil {
		status, err := domain.ParseRaffleStatus(string(*update.Status))
		if err != nil {
			return domain.RaffleSummary{}, err
		}
		update.Status = &status
	}

	now := s.now().UTC()
	if _, err := s.repo.Update(ctx, id, ownerID, update, now); err != nil {
		return domain.RaffleSummary{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	summary, err := s.repo.FindByID(ctx, id, now)
	if err != nil {
		return domain.RaffleSummary{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	publish(ctx, s.publisher, domain.Event{Type: domain.EventRaffleUpdated, RaffleID: id, At: now, Payload: summary})

	return summary, nil
}

func (s *RaffleService) DeleteRaffle(ctx context.Context, id, ownerID uuid.UUID) error {
	if err := s.repo.Delete(ctx, id, ownerID); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	zap.L().Info("raffle deleted", zap.String("raffle_id", id.String()))
	publish(ctx, s.publisher, domain.Event{Type: domain.EventRaffleDeleted, RaffleID: id, At: s.now().UTC()})

	return nil
}

// ListNumbers returns numbers [offset, offset+limit) of the raffle range. A nil
// limit lists the whole range. Counts always cover the whole raffle.
func (s *RaffleService) ListNumbers(ctx context.Context, id uuid.UUID, offset int, limit *int) (domain.NumberPage, error) {
	if offset < 0 {
		return domain.NumberPage{}, domain.ErrInvalidOffset
	}
	if limit != nil && *limit <= 0 {
		return domain.NumberPage{}, domain.ErrInvalidLimit
	}

	now := s.now().UTC()
	summary, err := s.repo.FindByID(ctx, id, now)
	if err != nil {
		return domain.NumberPage{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	size := summary.TotalTickets
	if limit != nil {
		size = *limit
	}

	var numbers []domain.Number
	if offset < summary.TotalTickets {
		numbers, err = s.repo.ListNumbers(ctx, summary.Raffle, offset, size, now)
		if err != nil {
			return domain.NumberPage{}, fmt.Errorf("s.repo.ListNumbers -> %w", err)
		}
	}

	return domain.NewNumberPage(summary, offset, size, numbers), nil
}
