package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rifaapp/rifa-api/internal/domain"
	"github.com/rifaapp/rifa-api/internal/repository/dao"
)

var ErrParticipantNotFound = dao.ErrParticipantNotFound

type PurchaseDAO interface {
	ListByParticipant(ctx context.Context, participantID uuid.UUID) ([]dao.PurchaseRow, error)
}

type ParticipantDAO interface {
	ResolveOrCreate(ctx context.Context, name string, email *string, now time.Time) (dao.Participant, error)
	FindByID(ctx context.Context, id uuid.UUID) (dao.Participant, error)
}

type PurchaseRepository struct {
	dao  PurchaseDAO
	pDAO ParticipantDAO
}

func NewPurchaseRepository(dao PurchaseDAO, pDAO ParticipantDAO) *PurchaseRepository {
	return &PurchaseRepository{
		dao:  dao,
		pDAO: pDAO,
	}
}

func (r *PurchaseRepository) ListByParticipant(ctx context.Context, participantID uuid.UUID) ([]domain.PurchaseView, error) {
	rows, err := r.dao.ListByParticipant(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListByParticipant -> %w", err)
	}

	views := make([]domain.PurchaseView, 0, len(rows))
	for _, row := range rows {
		views = append(views, domain.PurchaseView{
			Purchase:     purchaseDaoToDomain(row.Purchase, row.Numbers),
			RaffleTitle:  row.RaffleTitle,
			RaffleStatus: domain.RaffleStatus(row.RaffleStatus),
		})
	}

	return views, nil
}

func (r *PurchaseRepository) ResolveParticipant(ctx context.Context, info domain.ParticipantInfo, now time.Time) (domain.Participant, error) {
	p, err := r.pDAO.ResolveOrCreate(ctx, info.Name, info.Email, now)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("r.pDAO.ResolveOrCreate -> %w", err)
	}

	return participantDaoToDomain(p), nil
}

func (r *PurchaseRepository) FindParticipant(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	p, err := r.pDAO.FindByID(ctx, id)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("r.pDAO.FindByID -> %w", err)
	}

	return participantDaoToDomain(p), nil
}

func purchaseDaoToDomain(p dao.Purchase, numbers []int) domain.Purchase {
	return domain.Purchase{
		ID:            p.ID,
		RaffleID:      p.RaffleID,
		ParticipantID: p.ParticipantID,
		Numbers:       numbers,
		TotalPrice:    p.TotalPrice,
		Currency:      p.Currency,
		Status:        p.Status,
		PaymentMethod: p.PaymentMethod,
		CreatedAt:     p.CreatedAt,
	}
}

func participantDaoToDomain(p dao.Participant) domain.Participant {
	return domain.Participant{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		CreatedAt: p.CreatedAt,
	}
}
