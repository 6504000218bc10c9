package dao

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// lockRaffle takes the row lock that serializes every writer of a raffle.
func lockRaffle(tx *gorm.DB, raffleID uuid.UUID) (Raffle, error) {
	var raffle Raffle

	result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&raffle, "id = ?", raffleID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Raffle{}, ErrRaffleNotFound
		}

		return Raffle{}, result.Error
	}

	return raffle, nil
}

// reclaimExpired deletes the reserved tickets of a raffle whose hold ended at or before now.
// The raffle row must already be locked by tx.
func reclaimExpired(tx *gorm.DB, raffleID uuid.UUID, now time.Time) ([]int, error) {
	var expired []Ticket

	result := tx.Clauses(clause.Returning{Columns: []clause.Column{{Name: "number"}}}).
		Where("raffle_id = ? AND status = ? AND reserved_until IS NOT NULL AND reserved_until <= ?",
			raffleID, ticketStatusReserved, now).
		Delete(&expired)
	if result.Error != nil {
		return nil, result.Error
	}

	return ticketNumbers(expired), nil
}

type insertOutcome int

const (
	inserted insertOutcome = iota
	alreadyHeld
)

// insertReservedTicket inserts ticket unless (raffle_id, number) is taken.
// A taken number is reported as alreadyHeld, not as an error, so the
// transaction stays usable.
func insertReservedTicket(tx *gorm.DB, ticket *Ticket) (insertOutcome, error) {
	result := tx.Omit(clause.Associations).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "raffle_id"}, {Name: "number"}},
		DoNothing: true,
	}).Create(ticket)
	if result.Error != nil {
		return 0, result.Error
	}

	if result.RowsAffected == 0 {
		return alreadyHeld, nil
	}

	return inserted, nil
}

func ticketNumbers(tickets []Ticket) []int {
	numbers := make([]int, 0, len(tickets))
	for _, t := range tickets {
		numbers = append(numbers, t.Number)
	}

	return numbers
}
