package request

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rifaapp/rifa-api/internal/domain"
)

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

func TestCreateRaffleRequest_Validate(t *testing.T) {
	valid := CreateRaffleRequest{
		Title:        "Rifa escolar",
		TicketPrice:  decimal.RequireFromString("5000"),
		TotalTickets: 100,
		NumberStart:  intPtr(0),
	}
	require.NoError(t, valid.Validate())

	tests := map[string]func(r *CreateRaffleRequest){
		"missing title":    func(r *CreateRaffleRequest) { r.Title = "" },
		"zero price":       func(r *CreateRaffleRequest) { r.TicketPrice = decimal.Zero },
		"negative price":   func(r *CreateRaffleRequest) { r.TicketPrice = decimal.NewFromInt(-1) },
		"sub-cent price":   func(r *CreateRaffleRequest) { r.TicketPrice = decimal.RequireFromString("0.004") },
		"three decimals":   func(r *CreateRaffleRequest) { r.TicketPrice = decimal.RequireFromString("2500.005") },
		"price overflow":   func(r *CreateRaffleRequest) { r.TicketPrice = decimal.RequireFromString("12345678901.00") },
		"no tickets":       func(r *CreateRaffleRequest) { r.TotalTickets = 0 },
		"too many tickets": func(r *CreateRaffleRequest) { r.TotalTickets = domain.MaxTotalTickets + 1 },
		"negative start":   func(r *CreateRaffleRequest) { r.NumberStart = intPtr(-1) },
		"wide padding":     func(r *CreateRaffleRequest) { r.NumberPadding = intPtr(9) },
		"bad currency":     func(r *CreateRaffleRequest) { r.Currency = "US" },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			req := valid
			mutate(&req)
			assert.Error(t, req.Validate())
		})
	}
}

func TestCreateRaffleRequest_TicketPriceScale(t *testing.T) {
	req := CreateRaffleRequest{Title: "Rifa escolar", TicketPrice: decimal.RequireFromString("2500.50"), TotalTickets: 10}
	require.NoError(t, req.Validate())

	req.TicketPrice = decimal.RequireFromString("2500.500")
	require.NoError(t, req.Validate())

	req.TicketPrice = decimal.RequireFromString("2500.005")
	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ticket_price: must have at most 2 decimal places")
}

func TestCreateRaffleRequest_ToDomain_Defaults(t *testing.T) {
	owner := uuid.New()
	req := CreateRaffleRequest{Title: "  Rifa  ", TicketPrice: decimal.NewFromInt(10), TotalTickets: 5}

	r := req.ToDomain(&owner)
	assert.Equal(t, "Rifa", r.Title)
	assert.Equal(t, "COP", r.Currency)
	assert.Equal(t, domain.DefaultNumberStart, r.NumberStart)
	assert.Equal(t, &owner, r.OwnerID)

	req.Currency = "usd"
	req.NumberStart = intPtr(0)
	r = req.ToDomain(nil)
	assert.Equal(t, "USD", r.Currency)
	assert.Equal(t, 0, r.NumberStart)
}

func TestUpdateRaffleRequest(t *testing.T) {
	req := UpdateRaffleRequest{Status: strPtr("closed")}
	require.NoError(t, req.Validate())

	u := req.ToDomain()
	require.NotNil(t, u.Status)
	assert.Equal(t, domain.RaffleStatusClosed, *u.Status)
	assert.Nil(t, u.Title)

	req = UpdateRaffleRequest{Title: strPtr("")}
	assert.Error(t, req.Validate())
}

func TestReserveRequest(t *testing.T) {
	req := ReserveRequest{
		Participant: ParticipantRequest{Name: "Ana", Email: strPtr("ana@example.com")},
		Numbers:     []int{1, 2},
	}
	require.NoError(t, req.Validate())

	raffleID := uuid.New()
	in := req.ToDomain(raffleID, 10)
	assert.Equal(t, raffleID, in.RaffleID)
	assert.Equal(t, 10, in.TTLMinutes)
	assert.Equal(t, "Ana", in.Participant.Name)

	req.TTLMinutes = intPtr(20)
	assert.Equal(t, 20, req.ToDomain(raffleID, 10).TTLMinutes)

	req.TTLMinutes = intPtr(0)
	assert.Error(t, req.Validate())

	bad := ReserveRequest{Participant: ParticipantRequest{Name: "Ana", Email: strPtr("not-an-email")}, Numbers: []int{1}}
	assert.Error(t, bad.Validate())

	empty := ReserveRequest{Participant: ParticipantRequest{Name: "Ana"}}
	assert.Error(t, empty.Validate())
}

func TestConfirmRequest(t *testing.T) {
	reservationID := uuid.New()
	participantID := uuid.New()

	req := ConfirmRequest{
		ReservationID: reservationID.String(),
		ParticipantID: strPtr(participantID.String()),
	}
	require.NoError(t, req.Validate())

	in := req.ToDomain(uuid.New())
	assert.Equal(t, reservationID, in.ReservationID)
	require.NotNil(t, in.Participant.ID)
	assert.Equal(t, participantID, *in.Participant.ID)
	assert.Nil(t, in.Participant.Info)

	req = ConfirmRequest{
		ReservationID: reservationID.String(),
		Participant:   &ParticipantRequest{Name: "Ana"},
	}
	require.NoError(t, req.Validate())
	assert.NotNil(t, req.ToDomain(uuid.New()).Participant.Info)

	assert.Error(t, (&ConfirmRequest{ReservationID: "nope"}).Validate())
	assert.Error(t, (&ConfirmRequest{ReservationID: reservationID.String(), ParticipantID: strPtr("x")}).Validate())
}
