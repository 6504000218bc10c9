package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const seedNumbersSQL = `
INSERT INTO raffle_numbers (raffle_id, number, label)
SELECT @raffle_id, n,
       CASE WHEN @padding::int IS NULL OR length(n::text) >= @padding::int
            THEN n::text
            ELSE lpad(n::text, @padding::int, '0')
       END
FROM generate_series(@number_start::int, @number_end::int) AS n`

const ticketCountsSQL = `
SELECT raffle_id,
       COUNT(*) FILTER (WHERE status = 'sold') AS sold,
       COUNT(*) FILTER (WHERE status = 'reserved' AND reserved_until > ?) AS reserved
FROM tickets
GROUP BY raffle_id`

type RaffleDAO struct {
	db *gorm.DB
}

func NewRaffleDAO(db *gorm.DB) *RaffleDAO {
	return &RaffleDAO{
		db: db,
	}
}

// Insert creates the raffle and seeds one inventory row per number in the same transaction.
// The returned raffle is the stored row, with the price at column scale.
func (d *RaffleDAO) Insert(ctx context.Context, raffle Raffle) (Raffle, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Clauses(clause.Returning{}).Create(&raffle).Error; err != nil {
			return err
		}

		return tx.Exec(seedNumbersSQL, map[string]interface{}{
			"raffle_id":    raffle.ID,
			"padding":      raffle.NumberPadding,
			"number_start": raffle.NumberStart,
			"number_end":   raffle.NumberStart + raffle.TotalTickets - 1,
		}).Error
	})
	if err != nil {
		return Raffle{}, classify(err)
	}

	return raffle, nil
}

func (d *RaffleDAO) FindByID(ctx context.Context, id uuid.UUID, now time.Time) (RaffleWithCounts, error) {
	var rows []RaffleWithCounts

	result := d.withCounts(ctx, now).Where("r.id = ?", id).Limit(1).Scan(&rows)
	if result.Error != nil {
		return RaffleWithCounts{}, result.Error
	}

	if len(rows) == 0 {
		return RaffleWithCounts{}, ErrRaffleNotFound
	}

	return rows[0], nil
}

// List returns raffles newest first, optionally filtered by status.
func (d *RaffleDAO) List(ctx context.Context, status *string, now time.Time) ([]RaffleWithCounts, error) {
	var rows []RaffleWithCounts

	query := d.withCounts(ctx, now)
	if status != nil {
		query = query.Where("r.status = ?", *status)
	}

	if err := query.Order("r.created_at DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

func (d *RaffleDAO) withCounts(ctx context.Context, now time.Time) *gorm.DB {
	return d.db.WithContext(ctx).
		Table("raffles AS r").
		Select("r.*, COALESCE(c.sold, 0) AS tickets_sold, COALESCE(c.reserved, 0) AS tickets_reserved").
		Joins("LEFT JOIN ("+ticketCountsSQL+") c ON c.raffle_id = r.id", now)
}

// Update applies columns to the raffle when ownerID owns it.
func (d *RaffleDAO) Update(ctx context.Context, id, ownerID uuid.UUID, columns map[string]interface{}, now time.Time) (Raffle, error) {
	var raffle Raffle

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		raffle, err = lockRaffle(tx, id)
		if err != nil {
			return err
		}

		if raffle.OwnerID == nil || *raffle.OwnerID != ownerID {
			return ErrNotRaffleOwner
		}

		assignments := make(map[string]interface{}, len(columns)+1)
		for column, value := range columns {
			assignments[column] = value
		}
		assignments["updated_at"] = now

		if err = tx.Model(&raffle).Omit(clause.Associations).Updates(assignments).Error; err != nil {
			return err
		}

		return tx.First(&raffle, "id = ?", id).Error
	})
	if err != nil {
		return Raffle{}, classify(err)
	}

	return raffle, nil
}

// Delete removes the raffle with its tickets, purchases and inventory rows.
func (d *RaffleDAO) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		raffle, err := lockRaffle(tx, id)
		if err != nil {
			return err
		}

		if raffle.OwnerID == nil || *raffle.OwnerID != ownerID {
			return ErrNotRaffleOwner
		}

		return tx.Delete(&Raffle{}, "id = ?", id).Error
	})

	return classify(err)
}

// CountTickets counts the sold tickets and live reservations of a raffle.
func (d *RaffleDAO) CountTickets(ctx context.Context, raffleID uuid.UUID, now time.Time) (TicketCounts, error) {
	var counts TicketCounts

	result := d.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FILTER (WHERE status = ?) AS sold,
		       COUNT(*) FILTER (WHERE status = ? AND reserved_until > ?) AS reserved
		FROM tickets
		WHERE raffle_id = ?`,
		ticketStatusSold, ticketStatusReserved, now, raffleID).Scan(&counts)
	if result.Error != nil {
		return TicketCounts{}, result.Error
	}

	return counts, nil
}

// ListNumbers returns a window of seeded numbers in ascending order joined with their tickets.
func (d *RaffleDAO) ListNumbers(ctx context.Context, raffleID uuid.UUID, offset, limit int) ([]NumberRow, error) {
	var rows []NumberRow

	result := d.db.WithContext(ctx).
		Table("raffle_numbers AS n").
		Select("n.number, n.label, t.status AS ticket_status, t.reserved_until").
		Joins("LEFT JOIN tickets t ON t.raffle_id = n.raffle_id AND t.number = n.number").
		Where("n.raffle_id = ?", raffleID).
		Order("n.number").
		Offset(offset).
		Limit(limit).
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

func (d *RaffleDAO) FindTicket(ctx context.Context, id uuid.UUID) (Ticket, error) {
	var ticket Ticket

	result := d.db.WithContext(ctx).First(&ticket, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Ticket{}, ErrWinningTicketNotFound
		}

		return Ticket{}, result.Error
	}

	return ticket, nil
}
