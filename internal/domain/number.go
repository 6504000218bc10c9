package domain

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type NumberState string

const (
	NumberAvailable NumberState = "available"
	NumberReserved  NumberState = "reserved"
	NumberSold      NumberState = "sold"
)

type TicketStatus string

const (
	TicketReserved TicketStatus = "reserved"
	TicketSold     TicketStatus = "sold"
)

// Ticket is the persisted allocation of one number.
type Ticket struct {
	ID            uuid.UUID    `json:"id"`
	RaffleID      uuid.UUID    `json:"raffle_id"`
	ParticipantID uuid.UUID    `json:"participant_id"`
	Number        int          `json:"number"`
	Status        TicketStatus `json:"status"`
	ReservedAt    *time.Time   `json:"reserved_at"`
	ReservedUntil *time.Time   `json:"reserved_until"`
	ReservationID *uuid.UUID   `json:"reservation_id"`
	PurchaseID    *uuid.UUID   `json:"purchase_id"`
	PurchasedAt   *time.Time   `json:"purchased_at"`
}

// IsExpired reports whether a reserved ticket is past its hold at now.
func (t Ticket) IsExpired(now time.Time) bool {
	return t.Status == TicketReserved && t.ReservedUntil != nil && !t.ReservedUntil.After(now)
}

// StateOf projects an optional ticket row onto the number state at now.
// A missing row or an expired hold is available.
func StateOf(t *Ticket, now time.Time) NumberState {
	if t == nil {
		return NumberAvailable
	}

	switch t.Status {
	case TicketSold:
		return NumberSold
	case TicketReserved:
		if t.IsExpired(now) {
			return NumberAvailable
		}
		return NumberReserved
	default:
		return NumberAvailable
	}
}

// FormatLabel zero-pads number to padding digits, or prints it plainly when padding is nil.
func FormatLabel(number int, padding *int) string {
	if padding == nil || *padding <= 0 {
		return strconv.Itoa(number)
	}

	return fmt.Sprintf("%0*d", *padding, number)
}

type Number struct {
	Number        int         `json:"number"`
	Label         string      `json:"label"`
	Status        NumberState `json:"status"`
	ReservedUntil *time.Time  `json:"reserved_until,omitempty"`
}

type NumberCounts struct {
	Available int `json:"available"`
	Reserved  int `json:"reserved"`
	Sold      int `json:"sold"`
}

// NumberPage is a window of a raffle's inventory.
type NumberPage struct {
	NumberStart   int          `json:"number_start"`
	NumberEnd     int          `json:"number_end"`
	NumberPadding *int         `json:"number_padding"`
	TotalNumbers  int          `json:"total_numbers"`
	Offset        int          `json:"offset"`
	Limit         int          `json:"limit"`
	Counts        NumberCounts `json:"counts"`
	Numbers       []Number     `json:"numbers"`
}

// NewNumberPage wraps a window of numbers with the raffle range and the
// counts of the whole raffle, independent of the window.
func NewNumberPage(s RaffleSummary, offset, limit int, numbers []Number) NumberPage {
	if numbers == nil {
		numbers = []Number{}
	}

	return NumberPage{
		NumberStart:   s.NumberStart,
		NumberEnd:     s.Raffle.NumberEnd(),
		NumberPadding: s.NumberPadding,
		TotalNumbers:  s.TotalTickets,
		Offset:        offset,
		Limit:         limit,
		Counts: NumberCounts{
			Available: s.TicketsAvailable,
			Reserved:  s.TicketsReserved,
			Sold:      s.TicketsSold,
		},
		Numbers: numbers,
	}
}

// ProjectNumber builds the listed view of one number from its optional ticket.
func ProjectNumber(number int, label string, t *Ticket, now time.Time) Number {
	n := Number{
		Number: number,
		Label:  label,
		Status: StateOf(t, now),
	}
	if n.Status == NumberReserved {
		n.ReservedUntil = t.ReservedUntil
	}

	return n
}
