package dao

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PurchaseDAO struct {
	db *gorm.DB
}

func NewPurchaseDAO(db *gorm.DB) *PurchaseDAO {
	return &PurchaseDAO{
		db: db,
	}
}

// ListByParticipant returns the participant's purchases newest first, each with its numbers.
func (d *PurchaseDAO) ListByParticipant(ctx context.Context, participantID uuid.UUID) ([]PurchaseRow, error) {
	var rows []PurchaseRow

	result := d.db.WithContext(ctx).
		Table("purchases AS p").
		Select("p.*, r.title AS raffle_title, r.status AS raffle_status").
		Joins("JOIN raffles r ON r.id = p.raffle_id").
		Where("p.participant_id = ?", participantID).
		Order("p.created_at DESC").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	if len(rows) == 0 {
		return rows, nil
	}

	purchaseIDs := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		purchaseIDs = append(purchaseIDs, row.ID)
	}

	var tickets []Ticket
	result = d.db.WithContext(ctx).
		Select("purchase_id", "number").
		Where("purchase_id IN ?", purchaseIDs).
		Order("number").
		Find(&tickets)
	if result.Error != nil {
		return nil, result.Error
	}

	numbers := make(map[uuid.UUID][]int, len(rows))
	for _, t := range tickets {
		if t.PurchaseID != nil {
			numbers[*t.PurchaseID] = append(numbers[*t.PurchaseID], t.Number)
		}
	}

	for i := range rows {
		rows[i].Numbers = numbers[rows[i].ID]
		if rows[i].Numbers == nil {
			rows[i].Numbers = []int{}
		}
	}

	return rows, nil
}
