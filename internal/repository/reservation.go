package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rifaapp/rifa-api/internal/domain"
	"github.com/rifaapp/rifa-api/internal/repository/dao"
)

type ReservationDAO interface {
	Reserve(ctx context.Context, p dao.ReserveParams) (dao.ReserveResult, error)
	Release(ctx context.Context, raffleID, reservationID uuid.UUID) ([]int, error)
	Confirm(ctx context.Context, p dao.ConfirmParams) (dao.ConfirmResult, error)
	Draw(ctx context.Context, raffleID uuid.UUID, pick dao.Picker, now time.Time) (dao.DrawResult, error)
	SweepExpired(ctx context.Context, now time.Time) (map[uuid.UUID][]int, error)
}

type ReservationRepository struct {
	dao ReservationDAO
}

func NewReservationRepository(dao ReservationDAO) *ReservationRepository {
	return &ReservationRepository{
		dao: dao,
	}
}

// Reserve returns the reservation and the expired numbers it reclaimed on the way.
func (r *ReservationRepository) Reserve(ctx context.Context, in domain.ReserveInput, now, expiresAt time.Time) (domain.Reservation, []int, error) {
	res, err := r.dao.Reserve(ctx, dao.ReserveParams{
		RaffleID:         in.RaffleID,
		ParticipantName:  in.Participant.Name,
		ParticipantEmail: in.Participant.Email,
		Numbers:          in.Numbers,
		Now:              now,
		ExpiresAt:        expiresAt,
	})
	if err != nil {
		return domain.Reservation{}, nil, fmt.Errorf("r.dao.Reserve -> %w", err)
	}

	return domain.Reservation{
		ReservationID: res.ReservationID,
		ParticipantID: res.ParticipantID,
		RaffleID:      res.Raffle.ID,
		Numbers:       in.Numbers,
		ExpiresAt:     expiresAt,
		TicketPrice:   res.Raffle.TicketPrice,
		Currency:      res.Raffle.Currency,
		TotalPrice:    domain.TotalPrice(res.Raffle.TicketPrice, len(in.Numbers)),
	}, res.Reclaimed, nil
}

func (r *ReservationRepository) Release(ctx context.Context, raffleID, reservationID uuid.UUID) ([]int, error) {
	numbers, err := r.dao.Release(ctx, raffleID, reservationID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.Release -> %w", err)
	}

	return numbers, nil
}

// Confirm returns the purchase and whether it sold out the raffle.
func (r *ReservationRepository) Confirm(ctx context.Context, in domain.ConfirmInput, now time.Time) (domain.Purchase, bool, error) {
	params := dao.ConfirmParams{
		RaffleID:      in.RaffleID,
		ReservationID: in.ReservationID,
		ParticipantID: in.Participant.ID,
		PaymentMethod: in.PaymentMethod,
		Now:           now,
	}
	if in.Participant.Info != nil {
		params.ParticipantName = in.Participant.Info.Name
		params.ParticipantEmail = in.Participant.Info.Email
	}

	res, err := r.dao.Confirm(ctx, params)
	if err != nil {
		return domain.Purchase{}, false, fmt.Errorf("r.dao.Confirm -> %w", err)
	}

	return purchaseDaoToDomain(res.Purchase, res.Numbers), res.Closed, nil
}

// Draw returns the winner and whether it had already been drawn before this call.
func (r *ReservationRepository) Draw(ctx context.Context, raffleID uuid.UUID, pick func(n int) (int, error), now time.Time) (domain.DrawResult, bool, error) {
	res, err := r.dao.Draw(ctx, raffleID, pick, now)
	if err != nil {
		return domain.DrawResult{}, false, fmt.Errorf("r.dao.Draw -> %w", err)
	}

	return domain.DrawResult{
		RaffleID:            raffleID,
		WinnerTicketID:      res.Ticket.ID,
		WinnerParticipantID: res.Ticket.ParticipantID,
		WinningNumber:       res.Ticket.Number,
	}, res.AlreadyDrawn, nil
}

func (r *ReservationRepository) SweepExpired(ctx context.Context, now time.Time) (map[uuid.UUID][]int, error) {
	swept, err := r.dao.SweepExpired(ctx, now)
	if err != nil {
		return swept, fmt.Errorf("r.dao.SweepExpired -> %w", err)
	}

	return swept, nil
}
