package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStateOf(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	later := now.Add(time.Minute)
	earlier := now.Add(-time.Minute)

	tests := []struct {
		name   string
		ticket *Ticket
		want   NumberState
	}{
		{name: "no ticket", ticket: nil, want: NumberAvailable},
		{name: "sold", ticket: &Ticket{Status: TicketSold}, want: NumberSold},
		{name: "live hold", ticket: &Ticket{Status: TicketReserved, ReservedUntil: &later}, want: NumberReserved},
		{name: "expired hold", ticket: &Ticket{Status: TicketReserved, ReservedUntil: &earlier}, want: NumberAvailable},
		{name: "hold ending now", ticket: &Ticket{Status: TicketReserved, ReservedUntil: &now}, want: NumberAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StateOf(tt.ticket, now))
		})
	}
}

func TestFormatLabel(t *testing.T) {
	assert.Equal(t, "7", FormatLabel(7, nil))
	assert.Equal(t, "007", FormatLabel(7, intPtr(3)))
	assert.Equal(t, "1234", FormatLabel(1234, intPtr(2)))
	assert.Equal(t, "000000", FormatLabel(0, intPtr(6)))
}

func TestProjectNumber(t *testing.T) {
	now := time.Now()
	until := now.Add(10 * time.Minute)

	n := ProjectNumber(5, "05", &Ticket{Status: TicketReserved, ReservedUntil: &until}, now)
	assert.Equal(t, NumberReserved, n.Status)
	assert.Equal(t, &until, n.ReservedUntil)

	n = ProjectNumber(6, "06", nil, now)
	assert.Equal(t, NumberAvailable, n.Status)
	assert.Nil(t, n.ReservedUntil)
}

func TestNewNumberPage(t *testing.T) {
	s := NewRaffleSummary(Raffle{NumberStart: 0, TotalTickets: 100, NumberPadding: intPtr(2)}, 10, 5)

	page := NewNumberPage(s, 200, 50, nil)
	assert.Equal(t, 0, page.NumberStart)
	assert.Equal(t, 99, page.NumberEnd)
	assert.Equal(t, 100, page.TotalNumbers)
	assert.Equal(t, NumberCounts{Available: 85, Reserved: 5, Sold: 10}, page.Counts)
	assert.NotNil(t, page.Numbers)
	assert.Empty(t, page.Numbers)
}
