package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rifaapp/rifa-api/internal/domain"
	"github.com/rifaapp/rifa-api/internal/repository/dao"
)

var (
	ErrRaffleNotFound     = dao.ErrRaffleNotFound
	ErrNotRaffleOwner     = dao.ErrNotRaffleOwner
	ErrTransactionAborted = dao.ErrTransactionAborted
)

type RaffleDAO interface {
	Insert(ctx context.Context, raffle dao.Raffle) (dao.Raffle, error)
	FindByID(ctx context.Context, id uuid.UUID, now time.Time) (dao.RaffleWithCounts, error)
	List(ctx context.Context, status *string, now time.Time) ([]dao.RaffleWithCounts, error)
	Update(ctx context.Context, id, ownerID uuid.UUID, columns map[string]interface{}, now time.Time) (dao.Raffle, error)
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
	ListNumbers(ctx context.Context, raffleID uuid.UUID, offset, limit int) ([]dao.NumberRow, error)
}

type RaffleRepository struct {
	dao RaffleDAO
}

func NewRaffleRepository(dao RaffleDAO) *RaffleRepository {
	return &RaffleRepository{
		dao: dao,
	}
}

func (r *RaffleRepository) Create(ctx context.Context, raffle domain.Raffle) (domain.Raffle, error) {
	created, err := r.dao.Insert(ctx, raffleDomainToDao(raffle))
	if err != nil {
		return domain.Raffle{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return raffleDaoToDomain(created), nil
}

func (r *RaffleRepository) FindByID(ctx context.Context, id uuid.UUID, now time.Time) (domain.RaffleSummary, error) {
	row, err := r.dao.FindByID(ctx, id, now)
	if err != nil {
		return domain.RaffleSummary{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return summaryDaoToDomain(row), nil
}

func (r *RaffleRepository) List(ctx context.Context, status *domain.RaffleStatus, now time.Time) ([]domain.RaffleSummary, error) {
	var filter *string
	if status != nil {
		s := string(*status)
		filter = &s
	}

	rows, err := r.dao.List(ctx, filter, now)
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	summaries := make([]domain.RaffleSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, summaryDaoToDomain(row))
	}

	return summaries, nil
}

func (r *RaffleRepository) Update(ctx context.Context, id, ownerID uuid.UUID, update domain.RaffleUpdate, now time.Time) (domain.Raffle, error) {
	updated, err := r.dao.Update(ctx, id, ownerID, update.Columns(), now)
	if err != nil {
		return domain.Raffle{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return raffleDaoToDomain(updated), nil
}

func (r *RaffleRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	if err := r.dao.Delete(ctx, id, ownerID); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

// ListNumbers projects a window of the raffle inventory at now.
func (r *RaffleRepository) ListNumbers(ctx context.Context, raffle domain.Raffle, offset, limit int, now time.Time) ([]domain.Number, error) {
	rows, err := r.dao.ListNumbers(ctx, raffle.ID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListNumbers -> %w", err)
	}

	numbers := make([]domain.Number, 0, len(rows))
	for _, row := range rows {
		label := row.Label
		if label == "" {
			label = raffle.Label(row.Number)
		}

		var ticket *domain.Ticket
		if row.TicketStatus != nil {
			ticket = &domain.Ticket{
				RaffleID:      raffle.ID,
				Number:        row.Number,
				Status:        domain.TicketStatus(*row.TicketStatus),
				ReservedUntil: row.ReservedUntil,
			}
		}

		numbers = append(numbers, domain.ProjectNumber(row.Number, label, ticket, now))
	}

	return numbers, nil
}

func raffleDomainToDao(r domain.Raffle) dao.Raffle {
	return dao.Raffle{
		ID:             r.ID,
		Title:          r.Title,
		Description:    r.Description,
		TicketPrice:    r.TicketPrice,
		Currency:       r.Currency,
		TotalTickets:   r.TotalTickets,
		Status:         string(r.Status),
		DrawAt:         r.DrawAt,
		WinnerTicketID: r.WinnerTicketID,
		NumberStart:    r.NumberStart,
		NumberPadding:  r.NumberPadding,
		OwnerID:        r.OwnerID,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func raffleDaoToDomain(r dao.Raffle) domain.Raffle {
	return domain.Raffle{
		ID:             r.ID,
		Title:          r.Title,
		Description:    r.Description,
		TicketPrice:    r.TicketPrice,
		Currency:       r.Currency,
		TotalTickets:   r.TotalTickets,
		Status:         domain.RaffleStatus(r.Status),
		DrawAt:         r.DrawAt,
		WinnerTicketID: r.WinnerTicketID,
		NumberStart:    r.NumberStart,
		NumberPadding:  r.NumberPadding,
		OwnerID:        r.OwnerID,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func summaryDaoToDomain(row dao.RaffleWithCounts) domain.RaffleSummary {
	return domain.NewRaffleSummary(raffleDaoToDomain(row.Raffle), row.TicketsSold, row.TicketsReserved)
}
