package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func TestParseRaffleStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    RaffleStatus
		wantErr bool
	}{
		{in: "", want: RaffleStatusOpen},
		{in: "published", want: RaffleStatusOpen},
		{in: " Open ", want: RaffleStatusOpen},
		{in: "DRAFT", want: RaffleStatusDraft},
		{in: "closed", want: RaffleStatusClosed},
		{in: "cancelled", want: RaffleStatusCancelled},
		{in: "drawn", want: RaffleStatusDrawn},
		{in: "archived", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRaffleStatus(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidArgument)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRaffleStatus_Predicates(t *testing.T) {
	assert.True(t, RaffleStatusOpen.IsOpen())
	assert.True(t, raffleStatusPublished.IsOpen())
	assert.False(t, RaffleStatusClosed.IsOpen())

	for _, s := range []RaffleStatus{RaffleStatusOpen, raffleStatusPublished, RaffleStatusClosed, RaffleStatusDrawn} {
		assert.True(t, s.IsDrawable(), s)
	}
	for _, s := range []RaffleStatus{RaffleStatusDraft, RaffleStatusCancelled} {
		assert.False(t, s.IsDrawable(), s)
	}
}

func TestRaffle_Range(t *testing.T) {
	r := Raffle{NumberStart: 0, TotalTickets: 100}

	assert.Equal(t, 99, r.NumberEnd())
	assert.True(t, r.Contains(0))
	assert.True(t, r.Contains(99))
	assert.False(t, r.Contains(100))
	assert.False(t, r.Contains(-1))
}

func TestRaffle_IsOwnedBy(t *testing.T) {
	owner := uuid.New()

	assert.True(t, Raffle{OwnerID: &owner}.IsOwnedBy(owner))
	assert.False(t, Raffle{OwnerID: &owner}.IsOwnedBy(uuid.New()))
	assert.False(t, Raffle{}.IsOwnedBy(owner))
}

func TestRaffle_Validate(t *testing.T) {
	valid := Raffle{
		TicketPrice:  decimal.RequireFromString("5000"),
		Currency:     "COP",
		TotalTickets: 100,
		NumberStart:  0,
	}
	require.NoError(t, valid.Validate())

	tests := map[string]func(r *Raffle){
		"zero price":        func(r *Raffle) { r.TicketPrice = decimal.Zero },
		"sub-cent price":    func(r *Raffle) { r.TicketPrice = decimal.RequireFromString("0.004") },
		"three decimals":    func(r *Raffle) { r.TicketPrice = decimal.RequireFromString("2500.005") },
		"price overflow":    func(r *Raffle) { r.TicketPrice = decimal.RequireFromString("10000000000") },
		"no tickets":        func(r *Raffle) { r.TotalTickets = 0 },
		"too many tickets":  func(r *Raffle) { r.TotalTickets = MaxTotalTickets + 1 },
		"negative start":    func(r *Raffle) { r.NumberStart = -1 },
		"padding too wide":  func(r *Raffle) { r.NumberPadding = intPtr(7) },
		"padding too small": func(r *Raffle) { r.NumberPadding = intPtr(0) },
		"bad currency":      func(r *Raffle) { r.Currency = "PESOS" },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			r := valid
			mutate(&r)
			assert.ErrorIs(t, r.Validate(), ErrInvalidArgument)
		})
	}
}

func TestCheckTicketPrice(t *testing.T) {
	for _, price := range []string{"0.01", "2500", "2500.5", "2500.50", "2500.500", "9999999999.99"} {
		assert.NoError(t, CheckTicketPrice(decimal.RequireFromString(price)), price)
	}

	err := CheckTicketPrice(decimal.RequireFromString("2500.005"))
	require.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, "ticket_price must have at most 2 decimal places", err.Error())
}

func TestNewRaffleSummary(t *testing.T) {
	r := Raffle{NumberStart: 1, TotalTickets: 10}

	s := NewRaffleSummary(r, 3, 2)
	assert.Equal(t, 10, s.NumberEnd)
	assert.Equal(t, 3, s.TicketsSold)
	assert.Equal(t, 2, s.TicketsReserved)
	assert.Equal(t, 5, s.TicketsAvailable)

	assert.Equal(t, 0, NewRaffleSummary(r, 8, 5).TicketsAvailable)
}

func TestRaffleUpdate_Columns(t *testing.T) {
	assert.True(t, RaffleUpdate{}.IsEmpty())
	assert.Empty(t, RaffleUpdate{}.Columns())

	title := "Rifa navideña"
	status := RaffleStatusClosed
	drawAt := time.Date(2026, 12, 24, 20, 0, 0, 0, time.UTC)
	u := RaffleUpdate{Title: &title, Status: &status, DrawAt: &drawAt}

	assert.False(t, u.IsEmpty())
	assert.Equal(t, map[string]interface{}{
		"title":   "Rifa navideña",
		"status":  "closed",
		"draw_at": drawAt,
	}, u.Columns())
}

func TestErrors_Kinds(t *testing.T) {
	assert.ErrorIs(t, ErrRaffleNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrReservationInvalid, ErrInvalidState)
	assert.ErrorIs(t, ErrNotRaffleOwner, ErrForbidden)

	conflict := NewConflictError([]int{7, 3, 5})
	assert.ErrorIs(t, conflict, ErrConflict)
	assert.Equal(t, []int{3, 5, 7}, conflict.Numbers)

	var target *ConflictError
	wrapped := errors.Join(errors.New("context"), conflict)
	require.True(t, errors.As(wrapped, &target))
	assert.Equal(t, []int{3, 5, 7}, target.Numbers)
}
