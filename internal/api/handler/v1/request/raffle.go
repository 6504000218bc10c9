package request

import (
	"errors"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rifaapp/rifa-api/internal/domain"
)

const (
	defaultCurrency    = "COP"
	maxNumbersPerHold  = 50
	maxRequestedTTLMin = 60
)

var (
	errNonPositivePrice = errors.New("must be greater than 0")
	errPriceScale       = errors.New("must have at most 2 decimal places")
	errPriceTooLarge    = errors.New("is too large")
)

func ticketPrice(value interface{}) error {
	d, _ := value.(decimal.Decimal)
	switch {
	case !d.IsPositive():
		return errNonPositivePrice
	case !d.Equal(d.Round(domain.PriceScale)):
		return errPriceScale
	case d.GreaterThan(domain.MaxTicketPrice):
		return errPriceTooLarge
	}

	return nil
}

type CreateRaffleRequest struct {
	Title         string          `json:"title"`
	Description   *string         `json:"description"`
	TicketPrice   decimal.Decimal `json:"ticket_price" swaggertype:"string" example:"5000.00"`
	Currency      string          `json:"currency" example:"COP"`
	TotalTickets  int             `json:"total_tickets" example:"100"`
	DrawAt        *time.Time      `json:"draw_at"`
	NumberStart   *int            `json:"number_start" example:"1"`
	NumberPadding *int            `json:"number_padding" example:"3"`
	Status        string          `json:"status" example:"open"`
}

func (req *CreateRaffleRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(3, 120)),
		validation.Field(&req.Description, validation.Length(0, 1000)),
		validation.Field(&req.TicketPrice, validation.By(ticketPrice)),
		validation.Field(&req.Currency, validation.Length(3, 3), is.Alpha),
		validation.Field(&req.TotalTickets, validation.Required, validation.Min(1), validation.Max(domain.MaxTotalTickets)),
		validation.Field(&req.NumberStart, validation.Min(0)),
		validation.Field(&req.NumberPadding, validation.Min(1), validation.Max(domain.MaxNumberPadding)),
		validation.Field(&req.Status, validation.Length(0, 20)),
	)
}

func (req *CreateRaffleRequest) ToDomain(ownerID *uuid.UUID) domain.Raffle {
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = defaultCurrency
	}

	numberStart := domain.DefaultNumberStart
	if req.NumberStart != nil {
		numberStart = *req.NumberStart
	}

	return domain.Raffle{
		Title:         strings.TrimSpace(req.Title),
		Description:   req.Description,
		TicketPrice:   req.TicketPrice,
		Currency:      currency,
		TotalTickets:  req.TotalTickets,
		DrawAt:        req.DrawAt,
		NumberStart:   numberStart,
		NumberPadding: req.NumberPadding,
		OwnerID:       ownerID,
	}
}

type UpdateRaffleRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	DrawAt      *time.Time `json:"draw_at"`
	Status      *string    `json:"status"`
}

func (req *UpdateRaffleRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.NilOrNotEmpty, validation.Length(3, 120)),
		validation.Field(&req.Description, validation.Length(0, 1000)),
		validation.Field(&req.Status, validation.NilOrNotEmpty, validation.Length(1, 20)),
	)
}

func (req *UpdateRaffleRequest) ToDomain() domain.RaffleUpdate {
	update := domain.RaffleUpdate{
		Title:       req.Title,
		Description: req.Description,
		DrawAt:      req.DrawAt,
	}
	if req.Status != nil {
		status := domain.RaffleStatus(*req.Status)
		update.Status = &status
	}

	return update
}

type ParticipantRequest struct {
	Name  string  `json:"name" example:"Ana"`
	Email *string `json:"email" example:"ana@example.com"`
}

func (req ParticipantRequest) Validate() error {
	return validation.ValidateStruct(
		&req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 120)),
		validation.Field(&req.Email, is.Email),
	)
}

func (req ParticipantRequest) ToDomain() domain.ParticipantInfo {
	return domain.ParticipantInfo{
		Name:  req.Name,
		Email: req.Email,
	}
}

type ReserveRequest struct {
	Participant ParticipantRequest `json:"participant"`
	Numbers     []int              `json:"numbers" example:"1,2"`
	TTLMinutes  *int               `json:"ttl_minutes" example:"10"`
}

func (req *ReserveRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Participant),
		validation.Field(&req.Numbers, validation.Required, validation.Length(1, maxNumbersPerHold)),
		validation.Field(&req.TTLMinutes, validation.Min(1), validation.Max(maxRequestedTTLMin)),
	)
}

func (req *ReserveRequest) ToDomain(raffleID uuid.UUID, defaultTTL int) domain.ReserveInput {
	ttl := defaultTTL
	if req.TTLMinutes != nil {
		ttl = *req.TTLMinutes
	}

	return domain.ReserveInput{
		RaffleID:    raffleID,
		Participant: req.Participant.ToDomain(),
		Numbers:     req.Numbers,
		TTLMinutes:  ttl,
	}
}

type ConfirmRequest struct {
	ReservationID string              `json:"reservation_id"`
	ParticipantID *string             `json:"participant_id"`
	Participant   *ParticipantRequest `json:"participant"`
	PaymentMethod string              `json:"payment_method" example:"demo"`
}

func (req *ConfirmRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ReservationID, validation.Required, is.UUID),
		validation.Field(&req.ParticipantID, validation.NilOrNotEmpty, is.UUID),
		validation.Field(&req.Participant),
		validation.Field(&req.PaymentMethod, validation.Length(0, 30)),
	)
}

// ToDomain assumes Validate passed.
func (req *ConfirmRequest) ToDomain(raffleID uuid.UUID) domain.ConfirmInput {
	in := domain.ConfirmInput{
		RaffleID:      raffleID,
		ReservationID: uuid.MustParse(req.ReservationID),
		PaymentMethod: req.PaymentMethod,
	}

	if req.ParticipantID != nil {
		id := uuid.MustParse(*req.ParticipantID)
		in.Participant.ID = &id
	}
	if req.Participant != nil {
		info := req.Participant.ToDomain()
		in.Participant.Info = &info
	}

	return in
}
