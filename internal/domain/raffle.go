package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// MaxReservationMinutes caps every reservation TTL regardless of what the caller asks for.
	MaxReservationMinutes = 30
	DefaultNumberStart    = 1
	MaxNumberPadding      = 6
)

type RaffleStatus string

const (
	RaffleStatusDraft     RaffleStatus = "draft"
	RaffleStatusOpen      RaffleStatus = "open"
	RaffleStatusClosed    RaffleStatus = "closed"
	RaffleStatusCancelled RaffleStatus = "cancelled"
	RaffleStatusDrawn     RaffleStatus = "drawn"

	// raffleStatusPublished is a legacy alias of open accepted on input.
	raffleStatusPublished RaffleStatus = "published"
)

var raffleStatuses = []RaffleStatus{
	RaffleStatusDraft,
	RaffleStatusOpen,
	RaffleStatusClosed,
	RaffleStatusCancelled,
	RaffleStatusDrawn,
}

// ParseRaffleStatus normalizes user input into one of the five valid statuses.
// An empty value defaults to open.
func ParseRaffleStatus(s string) (RaffleStatus, error) {
	normalized := RaffleStatus(strings.ToLower(strings.TrimSpace(s)))
	switch normalized {
	case "":
		return RaffleStatusOpen, nil
	case raffleStatusPublished:
		return RaffleStatusOpen, nil
	}

	for _, status := range raffleStatuses {
		if normalized == status {
			return status, nil
		}
	}

	return "", ErrInvalidRaffleStatus
}

// IsOpen reports whether reservations and purchases are accepted.
func (s RaffleStatus) IsOpen() bool {
	return s == RaffleStatusOpen || s == raffleStatusPublished
}

// IsDrawable reports whether a winner may be selected.
func (s RaffleStatus) IsDrawable() bool {
	return s.IsOpen() || s == RaffleStatusClosed || s == RaffleStatusDrawn
}

type Raffle struct {
	ID             uuid.UUID       `json:"id"`
	Title          string          `json:"title"`
	Description    *string         `json:"description"`
	TicketPrice    decimal.Decimal `json:"ticket_price"`
	Currency       string          `json:"currency"`
	TotalTickets   int             `json:"total_tickets"`
	Status         RaffleStatus    `json:"status"`
	DrawAt         *time.Time      `json:"draw_at"`
	WinnerTicketID *uuid.UUID      `json:"winner_ticket_id"`
	NumberStart    int             `json:"number_start"`
	NumberPadding  *int            `json:"number_padding"`
	OwnerID        *uuid.UUID      `json:"owner_id"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// NumberEnd is always derived from NumberStart and TotalTickets.
func (r Raffle) NumberEnd() int {
	return r.NumberStart + r.TotalTickets - 1
}

func (r Raffle) Contains(number int) bool {
	return number >= r.NumberStart && number <= r.NumberEnd()
}

func (r Raffle) IsOwnedBy(userID uuid.UUID) bool {
	return r.OwnerID != nil && *r.OwnerID == userID
}

// Label formats a number for display using the raffle padding.
func (r Raffle) Label(number int) string {
	return FormatLabel(number, r.NumberPadding)
}

// RaffleSummary is a raffle with its live ticket counts.
type RaffleSummary struct {
	Raffle
	NumberEnd        int `json:"number_end"`
	TicketsSold      int `json:"tickets_sold"`
	TicketsReserved  int `json:"tickets_reserved"`
	TicketsAvailable int `json:"tickets_available"`
}

func NewRaffleSummary(r Raffle, sold, reserved int) RaffleSummary {
	available := r.TotalTickets - sold - reserved
	if available < 0 {
		available = 0
	}

	return RaffleSummary{
		Raffle:           r,
		NumberEnd:        r.NumberEnd(),
		TicketsSold:      sold,
		TicketsReserved:  reserved,
		TicketsAvailable: available,
	}
}

// RaffleUpdate carries the mutable raffle fields. Nil means "leave unchanged".
type RaffleUpdate struct {
	Title       *string
	Description *string
	DrawAt      *time.Time
	Status      *RaffleStatus
}

func (u RaffleUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.DrawAt == nil && u.Status == nil
}

// Columns returns the column assignments for the present fields only.
func (u RaffleUpdate) Columns() map[string]interface{} {
	columns := make(map[string]interface{})
	if u.Title != nil {
		columns["title"] = *u.Title
	}
	if u.Description != nil {
		columns["description"] = *u.Description
	}
	if u.DrawAt != nil {
		columns["draw_at"] = *u.DrawAt
	}
	if u.Status != nil {
		columns["status"] = string(*u.Status)
	}

	return columns
}

const MaxTotalTickets = 100000

// PriceScale is the number of decimal places a price column keeps.
const PriceScale = 2

// MaxTicketPrice is the largest price a numeric(12,2) column holds.
var MaxTicketPrice = decimal.New(1, 10).Sub(decimal.New(1, -PriceScale))

// CheckTicketPrice rejects prices the store would round or overflow.
func CheckTicketPrice(price decimal.Decimal) error {
	switch {
	case !price.IsPositive():
		return NewError(ErrInvalidArgument, "ticket_price must be greater than 0")
	case !price.Equal(price.Round(PriceScale)):
		return NewError(ErrInvalidArgument, "ticket_price must have at most 2 decimal places")
	case price.GreaterThan(MaxTicketPrice):
		return NewError(ErrInvalidArgument, "ticket_price is too large")
	}

	return nil
}

// Validate checks the invariants a raffle must satisfy before it is seeded.
func (r Raffle) Validate() error {
	if err := CheckTicketPrice(r.TicketPrice); err != nil {
		return err
	}

	switch {
	case r.TotalTickets <= 0 || r.TotalTickets > MaxTotalTickets:
		return NewError(ErrInvalidArgument, "total_tickets must be between 1 and 100000")
	case r.NumberStart < 0:
		return NewError(ErrInvalidArgument, "number_start must be >= 0")
	case r.NumberPadding != nil && (*r.NumberPadding < 1 || *r.NumberPadding > MaxNumberPadding):
		return NewError(ErrInvalidArgument, "number_padding must be between 1 and 6")
	case len(r.Currency) != 3:
		return NewError(ErrInvalidArgument, "currency must be a 3-letter code")
	}

	return nil
}
