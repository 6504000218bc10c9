package domain

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventRaffleCreated       EventType = "raffle.created"
	EventRaffleUpdated       EventType = "raffle.updated"
	EventRaffleDeleted       EventType = "raffle.deleted"
	EventRaffleClosed        EventType = "raffle.closed"
	EventRaffleDrawn         EventType = "raffle.drawn"
	EventNumbersReserved     EventType = "numbers.reserved"
	EventNumbersReleased     EventType = "numbers.released"
	EventNumbersSold         EventType = "numbers.sold"
	EventReservationsExpired EventType = "reservations.expired"
)

// Event describes a committed change to a raffle's inventory or lifecycle.
type Event struct {
	Type     EventType   `json:"type"`
	RaffleID uuid.UUID   `json:"raffle_id"`
	Numbers  []int       `json:"numbers,omitempty"`
	At       time.Time   `json:"at"`
	Payload  interface{} `json:"payload,omitempty"`
}
