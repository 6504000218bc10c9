package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	PurchaseStatusConfirmed = "confirmed"
	DefaultPaymentMethod    = "demo"
)

type ConfirmInput struct {
	RaffleID      uuid.UUID
	ReservationID uuid.UUID
	Participant   ParticipantRef
	PaymentMethod string
}

type Purchase struct {
	ID            uuid.UUID       `json:"purchase_id"`
	RaffleID      uuid.UUID       `json:"raffle_id"`
	ParticipantID uuid.UUID       `json:"participant_id"`
	Numbers       []int           `json:"numbers"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	Currency      string          `json:"currency"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"payment_method"`
	CreatedAt     time.Time       `json:"created_at"`
}

// PurchaseView is a purchase listed for a participant, with its raffle context.
type PurchaseView struct {
	Purchase
	RaffleTitle  string       `json:"raffle_title"`
	RaffleStatus RaffleStatus `json:"raffle_status"`
}

type DrawResult struct {
	RaffleID            uuid.UUID `json:"raffle_id"`
	WinnerTicketID      uuid.UUID `json:"winner_ticket_id"`
	WinnerParticipantID uuid.UUID `json:"winner_participant_id"`
	WinningNumber       int       `json:"winning_number"`
}
