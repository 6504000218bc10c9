package dao

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type User struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	Email    string `gorm:"unique;not null"`
	Password string `gorm:"not null"`
	Name     string `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type Participant struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:120;not null"`
	Email     *string   `gorm:"unique"` // anonymous participants have no email and are never deduplicated
	CreatedAt time.Time `gorm:"not null"`
}

type Raffle struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Title          string          `gorm:"size:120;not null"`
	Description    *string         `gorm:"size:1000"`
	TicketPrice    decimal.Decimal `gorm:"type:numeric(12,2);not null;check:chk_raffles_ticket_price,ticket_price > 0"`
	Currency       string          `gorm:"size:3;not null"`
	TotalTickets   int             `gorm:"not null;check:chk_raffles_total_tickets,total_tickets > 0"`
	Status         string          `gorm:"size:20;not null;index"`
	DrawAt         *time.Time
	WinnerTicketID *uuid.UUID `gorm:"type:uuid"`
	NumberStart    int        `gorm:"not null"`
	NumberPadding  *int
	OwnerID        *uuid.UUID `gorm:"type:uuid;index"`
	Owner          *User      `gorm:"foreignKey:OwnerID;constraint:OnDelete:SET NULL"`
	CreatedAt      time.Time  `gorm:"not null"`
	UpdatedAt      time.Time  `gorm:"not null"`
}

// RaffleNumber is the read-side inventory row seeded once per number at raffle creation.
type RaffleNumber struct {
	RaffleID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Raffle   *Raffle   `gorm:"constraint:OnDelete:CASCADE"`
	Number   int       `gorm:"primaryKey;autoIncrement:false"`
	Label    string    `gorm:"not null"`
}

type Purchase struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RaffleID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Raffle        *Raffle         `gorm:"constraint:OnDelete:CASCADE"`
	ParticipantID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Participant   *Participant    `gorm:"constraint:OnDelete:RESTRICT"`
	Status        string          `gorm:"size:20;not null"`
	TotalPrice    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Currency      string          `gorm:"size:3;not null"`
	PaymentMethod string          `gorm:"size:30;not null"`
	CreatedAt     time.Time       `gorm:"not null"`
}

const (
	ticketStatusReserved = "reserved"
	ticketStatusSold     = "sold"
)

// Ticket is one allocated number. (raffle_id, number) is unique: that index is
// what detects two reservers racing for the same number.
type Ticket struct {
	ID            uuid.UUID    `gorm:"type:uuid;primaryKey"`
	RaffleID      uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:idx_tickets_raffle_number,priority:1;index:idx_tickets_reservation,priority:1"`
	Raffle        *Raffle      `gorm:"constraint:OnDelete:CASCADE"`
	ParticipantID uuid.UUID    `gorm:"type:uuid;not null;index"`
	Participant   *Participant `gorm:"constraint:OnDelete:RESTRICT"`
	Number        int          `gorm:"not null;uniqueIndex:idx_tickets_raffle_number,priority:2"`
	Status        string       `gorm:"size:20;not null"`
	ReservedAt    *time.Time
	ReservedUntil *time.Time `gorm:"index"`
	ReservationID *uuid.UUID `gorm:"type:uuid;index:idx_tickets_reservation,priority:2"`
	PurchaseID    *uuid.UUID `gorm:"type:uuid;index"`
	Purchase      *Purchase  `gorm:"constraint:OnDelete:SET NULL"`
	PurchasedAt   *time.Time
}

// RaffleWithCounts is a raffle row joined with its live ticket counts.
type RaffleWithCounts struct {
	Raffle          `gorm:"embedded"`
	TicketsSold     int
	TicketsReserved int
}

// TicketCounts counts sold tickets and reservations still live at the query time.
type TicketCounts struct {
	Sold     int
	Reserved int
}

// NumberRow is a seeded number joined with its ticket, if any.
type NumberRow struct {
	Number        int
	Label         string
	TicketStatus  *string
	ReservedUntil *time.Time
}

// PurchaseRow is a purchase joined with its raffle.
type PurchaseRow struct {
	Purchase     `gorm:"embedded"`
	RaffleTitle  string
	RaffleStatus string
	Numbers      []int `gorm:"-"`
}
