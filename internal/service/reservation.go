package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rifaapp/rifa-api/internal/domain"
)

type ReservationRepository interface {
	Reserve(ctx context.Context, in domain.ReserveInput, now, expiresAt time.Time) (domain.Reservation, []int, error)
	Release(ctx context.Context, raffleID, reservationID uuid.UUID) ([]int, error)
	Confirm(ctx context.Context, in domain.ConfirmInput, now time.Time) (domain.Purchase, bool, error)
	Draw(ctx context.Context, raffleID uuid.UUID, pick func(n int) (int, error), now time.Time) (domain.DrawResult, bool, error)
	SweepExpired(ctx context.Context, now time.Time) (map[uuid.UUID][]int, error)
}

type ReservationService struct {
	repo      ReservationRepository
	publisher EventPublisher
	now       func() time.Time
	pick      func(n int) (int, error)
}

func NewReservationService(repo ReservationRepository, publisher EventPublisher) *ReservationService {
	return &ReservationService{
		repo:      repo,
		publisher: publisher,
		now:       time.Now,
		pick:      cryptoPick,
	}
}

// Reserve holds all requested numbers for the participant or none of them.
// The TTL is clamped to domain.MaxReservationMinutes.
func (s *ReservationService) Reserve(ctx context.Context, in domain.ReserveInput) (domain.Reservation, error) {
	numbers, err := domain.CheckNumbers(in.Numbers)
	if err != nil {
		return domain.Reservation{}, err
	}
	in.Numbers = numbers
	in.Participant = normalizeParticipant(in.Participant)

	now := s.now().UTC()
	expiresAt := now.Add(time.Duration(domain.ClampTTL(in.TTLMinutes)) * time.Minute)

	reservation, reclaimed, err := s.repo.Reserve(ctx, in, now, expiresAt)
	if err != nil {
		var conflict *domain.ConflictError
		if errors.As(err, &conflict) {
			zap.L().Info("reservation conflict",
				zap.String("raffle_id", in.RaffleID.String()),
				zap.Ints("numbers", conflict.Numbers),
			)
		}

		return domain.Reservation{}, fmt.Errorf("s.repo.Reserve -> %w", err)
	}

	if len(reclaimed) > 0 {
		publish(ctx, s.publisher, domain.Event{
			Type:     domain.EventReservationsExpired,
			RaffleID: in.RaffleID,
			Numbers:  reclaimed,
			At:       now,
		})
	}
	publish(ctx, s.publisher, domain.Event{
		Type:     domain.EventNumbersReserved,
		RaffleID: in.RaffleID,
		Numbers:  reservation.Numbers,
		At:       now,
		Payload:  map[string]interface{}{"reservation_id": reservation.ReservationID, "expires_at": reservation.ExpiresAt},
	})

	return reservation, nil
}

// Release drops a reservation. Unknown or already released reservations release nothing.
func (s *ReservationService) Release(ctx context.Context, raffleID, reservationID uuid.UUID) (int, error) {
	numbers, err := s.repo.Release(ctx, raffleID, reservationID)
	if err != nil {
		return 0, fmt.Errorf("s.repo.Release -> %w", err)
	}

	if len(numbers) > 0 {
		publish(ctx, s.publisher, domain.Event{
			Type:     domain.EventNumbersReleased,
			RaffleID: raffleID,
			Numbers:  numbers,
			At:       s.now().UTC(),
		})
	}

	return len(numbers), nil
}

// Confirm turns a live reservation of the referenced participant into a purchase.
func (s *ReservationService) Confirm(ctx context.Context, in domain.ConfirmInput) (domain.Purchase, error) {
	if err := in.Participant.Validate(); err != nil {
		return domain.Purchase{}, err
	}
	if in.Participant.Info != nil {
		info := normalizeParticipant(*in.Participant.Info)
		in.Participant.Info = &info
	}

	in.PaymentMethod = strings.TrimSpace(in.PaymentMethod)
	if in.PaymentMethod == "" {
		in.PaymentMethod = domain.DefaultPaymentMethod
	}

	now := s.now().UTC()
	purchase, closed, err := s.repo.Confirm(ctx, in, now)
	if err != nil {
		return domain.Purchase{}, fmt.Errorf("s.repo.Confirm -> %w", err)
	}

	zap.L().Info("purchase confirmed",
		zap.String("raffle_id", in.RaffleID.String()),
		zap.String("purchase_id", purchase.ID.String()),
		zap.Ints("numbers", purchase.Numbers),
		zap.String("total_price", purchase.TotalPrice.StringFixed(2)),
	)
	publish(ctx, s.publisher, domain.Event{
		Type:     domain.EventNumbersSold,
		RaffleID: in.RaffleID,
		Numbers:  purchase.Numbers,
		At:       now,
		Payload:  map[string]interface{}{"purchase_id": purchase.ID},
	})

	if closed {
		zap.L().Info("raffle sold out", zap.String("raffle_id", in.RaffleID.String()))
		publish(ctx, s.publisher, domain.Event{Type: domain.EventRaffleClosed, RaffleID: in.RaffleID, At: now})
	}

	return purchase, nil
}

// Draw selects the winner once. Later calls return the recorded winner.
func (s *ReservationService) Draw(ctx context.Context, raffleID uuid.UUID) (domain.DrawResult, error) {
	now := s.now().UTC()
	result, alreadyDrawn, err := s.repo.Draw(ctx, raffleID, s.pick, now)
	if err != nil {
		return domain.DrawResult{}, fmt.Errorf("s.repo.Draw -> %w", err)
	}

	if !alreadyDrawn {
		zap.L().Info("raffle drawn",
			zap.String("raffle_id", raffleID.String()),
			zap.String("winner_ticket_id", result.WinnerTicketID.String()),
			zap.Int("winning_number", result.WinningNumber),
		)
		publish(ctx, s.publisher, domain.Event{
			Type:     domain.EventRaffleDrawn,
			RaffleID: raffleID,
			Numbers:  []int{result.WinningNumber},
			At:       now,
			Payload:  result,
		})
	}

	return result, nil
}

// SweepExpired reclaims every expired hold and returns how many numbers were freed.
func (s *ReservationService) SweepExpired(ctx context.Context) (int, error) {
	now := s.now().UTC()
	swept, err := s.repo.SweepExpired(ctx, now)

	total := 0
	for raffleID, numbers := range swept {
		total += len(numbers)
		publish(ctx, s.publisher, domain.Event{
			Type:     domain.EventReservationsExpired,
			RaffleID: raffleID,
			Numbers:  numbers,
			At:       now,
		})
	}

	if err != nil {
		return total, fmt.Errorf("s.repo.SweepExpired -> %w", err)
	}

	return total, nil
}

func normalizeParticipant(info domain.ParticipantInfo) domain.ParticipantInfo {
	info.Name = strings.TrimSpace(info.Name)
	if info.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*info.Email))
		if email == "" {
			info.Email = nil
		} else {
			info.Email = &email
		}
	}

	return info
}
