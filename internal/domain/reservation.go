package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ParticipantInfo identifies a buyer by name and optional email.
type ParticipantInfo struct {
	Name  string  `json:"name"`
	Email *string `json:"email,omitempty"`
}

// ParticipantRef is either a known participant id or inline info to resolve.
type ParticipantRef struct {
	ID   *uuid.UUID
	Info *ParticipantInfo
}

func (p ParticipantRef) Validate() error {
	switch {
	case p.ID != nil && p.Info != nil:
		return ErrParticipantAmbiguous
	case p.ID == nil && p.Info == nil:
		return ErrParticipantRequired
	}

	return nil
}

type Participant struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type ReserveInput struct {
	RaffleID    uuid.UUID
	Participant ParticipantInfo
	Numbers     []int
	TTLMinutes  int
}

type Reservation struct {
	ReservationID uuid.UUID       `json:"reservation_id"`
	ParticipantID uuid.UUID       `json:"participant_id"`
	RaffleID      uuid.UUID       `json:"raffle_id"`
	Numbers       []int           `json:"numbers"`
	ExpiresAt     time.Time       `json:"expires_at"`
	TicketPrice   decimal.Decimal `json:"ticket_price"`
	Currency      string          `json:"currency"`
	TotalPrice    decimal.Decimal `json:"total_price"`
}

// ClampTTL bounds a reservation TTL to [1, MaxReservationMinutes].
func ClampTTL(minutes int) int {
	if minutes < 1 {
		return 1
	}
	if minutes > MaxReservationMinutes {
		return MaxReservationMinutes
	}

	return minutes
}

// CheckNumbers rejects empty and duplicated number sets and returns a sorted copy.
func CheckNumbers(numbers []int) ([]int, error) {
	if len(numbers) == 0 {
		return nil, ErrNoNumbers
	}

	seen := make(map[int]struct{}, len(numbers))
	for _, n := range numbers {
		if _, ok := seen[n]; ok {
			return nil, ErrDuplicateNumbers
		}
		seen[n] = struct{}{}
	}

	sorted := append([]int(nil), numbers...)
	sort.Ints(sorted)

	return sorted, nil
}

// TotalPrice is unitPrice times count, computed exactly.
func TotalPrice(unitPrice decimal.Decimal, count int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(count)))
}
