package dao

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rifaapp/rifa-api/internal/domain"
)

type ReserveParams struct {
	RaffleID         uuid.UUID
	ParticipantName  string
	ParticipantEmail *string
	Numbers          []int
	Now              time.Time
	ExpiresAt        time.Time
}

type ReserveResult struct {
	Raffle        Raffle
	ParticipantID uuid.UUID
	ReservationID uuid.UUID
	Reclaimed     []int
}

type ConfirmParams struct {
	RaffleID         uuid.UUID
	ReservationID    uuid.UUID
	ParticipantID    *uuid.UUID
	ParticipantName  string
	ParticipantEmail *string
	PaymentMethod    string
	Now              time.Time
}

type ConfirmResult struct {
	Purchase Purchase
	Numbers  []int
	Closed   bool
}

type DrawResult struct {
	Ticket       Ticket
	AlreadyDrawn bool
}

// Picker returns an index in [0, n).
type Picker func(n int) (int, error)

type ReservationDAO struct {
	db *gorm.DB
}

func NewReservationDAO(db *gorm.DB) *ReservationDAO {
	return &ReservationDAO{
		db: db,
	}
}

// Reserve holds every requested number under one new reservation, or none of them.
// On conflict the transaction is rolled back and a *domain.ConflictError lists the taken numbers.
func (d *ReservationDAO) Reserve(ctx context.Context, p ReserveParams) (ReserveResult, error) {
	var res ReserveResult

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		raffle, err := lockRaffle(tx, p.RaffleID)
		if err != nil {
			return err
		}

		if !domain.RaffleStatus(raffle.Status).IsOpen() {
			return ErrRaffleNotOpen
		}

		numberEnd := raffle.NumberStart + raffle.TotalTickets - 1
		for _, n := range p.Numbers {
			if n < raffle.NumberStart || n > numberEnd {
				return ErrNumberOutOfRange
			}
		}

		reclaimed, err := reclaimExpired(tx, raffle.ID, p.Now)
		if err != nil {
			return err
		}

		participant, err := resolveParticipant(tx, p.ParticipantName, p.ParticipantEmail, p.Now)
		if err != nil {
			return err
		}

		reservationID := uuid.New()
		var conflicts []int
		for _, n := range p.Numbers {
			ticket := Ticket{
				ID:            uuid.New(),
				RaffleID:      raffle.ID,
				ParticipantID: participant.ID,
				Number:        n,
				Status:        ticketStatusReserved,
				ReservedAt:    &p.Now,
				ReservedUntil: &p.ExpiresAt,
				ReservationID: &reservationID,
			}

			outcome, err := insertReservedTicket(tx, &ticket)
			if err != nil {
				return err
			}
			if outcome == alreadyHeld {
				conflicts = append(conflicts, n)
			}
		}

		if len(conflicts) > 0 {
			return domain.NewConflictError(conflicts)
		}

		res = ReserveResult{
			Raffle:        raffle,
			ParticipantID: participant.ID,
			ReservationID: reservationID,
			Reclaimed:     reclaimed,
		}

		return nil
	})
	if err != nil {
		return ReserveResult{}, classify(err)
	}

	return res, nil
}

// Release deletes the still reserved tickets of a reservation regardless of TTL.
// Releasing an unknown or already released reservation, or one on an unknown
// raffle, returns no numbers.
func (d *ReservationDAO) Release(ctx context.Context, raffleID, reservationID uuid.UUID) ([]int, error) {
	var released []Ticket

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := lockRaffle(tx, raffleID); err != nil {
			if errors.Is(err, ErrRaffleNotFound) {
				return nil
			}
			return err
		}

		return tx.Clauses(clause.Returning{Columns: []clause.Column{{Name: "number"}}}).
			Where("raffle_id = ? AND reservation_id = ? AND status = ?", raffleID, reservationID, ticketStatusReserved).
			Delete(&released).Error
	})
	if err != nil {
		return nil, classify(err)
	}

	numbers := ticketNumbers(released)
	sort.Ints(numbers)

	return numbers, nil
}

// Confirm turns a live reservation into a purchase and closes the raffle on sell-out,
// all under the raffle row lock.
func (d *ReservationDAO) Confirm(ctx context.Context, p ConfirmParams) (ConfirmResult, error) {
	var res ConfirmResult

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		raffle, err := lockRaffle(tx, p.RaffleID)
		if err != nil {
			return err
		}

		if !domain.RaffleStatus(raffle.Status).IsOpen() {
			return ErrRaffleNotPurchasable
		}

		var participantID uuid.UUID
		if p.ParticipantID != nil {
			participantID = *p.ParticipantID
		} else {
			participant, err := resolveParticipant(tx, p.ParticipantName, p.ParticipantEmail, p.Now)
			if err != nil {
				return err
			}
			participantID = participant.ID
		}

		var tickets []Ticket
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("raffle_id = ? AND reservation_id = ? AND participant_id = ? AND status = ? AND reserved_until > ?",
				raffle.ID, p.ReservationID, participantID, ticketStatusReserved, p.Now).
			Order("number").
			Find(&tickets)
		if result.Error != nil {
			return result.Error
		}

		if len(tickets) == 0 {
			return ErrReservationInvalid
		}

		purchase := Purchase{
			ID:            uuid.New(),
			RaffleID:      raffle.ID,
			ParticipantID: participantID,
			Status:        domain.PurchaseStatusConfirmed,
			TotalPrice:    raffle.TicketPrice.Mul(decimal.NewFromInt(int64(len(tickets)))),
			Currency:      raffle.Currency,
			PaymentMethod: p.PaymentMethod,
			CreatedAt:     p.Now,
		}
		if err = tx.Omit(clause.Associations).Create(&purchase).Error; err != nil {
			return err
		}

		ticketIDs := make([]uuid.UUID, 0, len(tickets))
		for _, t := range tickets {
			ticketIDs = append(ticketIDs, t.ID)
		}

		result = tx.Model(&Ticket{}).Where("id IN ?", ticketIDs).Updates(map[string]interface{}{
			"status":         ticketStatusSold,
			"purchased_at":   p.Now,
			"reserved_until": nil,
			"reservation_id": nil,
			"purchase_id":    purchase.ID,
		})
		if result.Error != nil {
			return result.Error
		}

		var sold int64
		if err = tx.Model(&Ticket{}).Where("raffle_id = ? AND status = ?", raffle.ID, ticketStatusSold).Count(&sold).Error; err != nil {
			return err
		}

		closed := false
		if int(sold) >= raffle.TotalTickets {
			result = tx.Model(&Raffle{}).Where("id = ?", raffle.ID).Updates(map[string]interface{}{
				"status":     string(domain.RaffleStatusClosed),
				"updated_at": p.Now,
			})
			if result.Error != nil {
				return result.Error
			}
			closed = true
		}

		res = ConfirmResult{
			Purchase: purchase,
			Numbers:  ticketNumbers(tickets),
			Closed:   closed,
		}

		return nil
	})
	if err != nil {
		return ConfirmResult{}, classify(err)
	}

	return res, nil
}

// Draw records one sold ticket, chosen by pick, as the winner. A raffle that
// already has a winner returns it unchanged.
func (d *ReservationDAO) Draw(ctx context.Context, raffleID uuid.UUID, pick Picker, now time.Time) (DrawResult, error) {
	var res DrawResult

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		raffle, err := lockRaffle(tx, raffleID)
		if err != nil {
			return err
		}

		status := domain.RaffleStatus(raffle.Status)
		if status == domain.RaffleStatusDrawn && raffle.WinnerTicketID != nil {
			var winner Ticket
			if err = tx.First(&winner, "id = ?", *raffle.WinnerTicketID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrWinningTicketNotFound
				}
				return err
			}

			res = DrawResult{Ticket: winner, AlreadyDrawn: true}
			return nil
		}

		if !status.IsDrawable() {
			return ErrRaffleNotDrawable
		}

		sold := tx.Model(&Ticket{}).
			Where("raffle_id = ? AND status = ?", raffle.ID, ticketStatusSold).
			Session(&gorm.Session{})

		var count int64
		if err = sold.Count(&count).Error; err != nil {
			return err
		}

		if count == 0 {
			return ErrNoTicketsSold
		}

		idx, err := pick(int(count))
		if err != nil {
			return err
		}

		var winner Ticket
		if err = sold.Order("number").Offset(idx).Limit(1).Take(&winner).Error; err != nil {
			return err
		}

		result := tx.Model(&Raffle{}).Where("id = ?", raffle.ID).Updates(map[string]interface{}{
			"status":           string(domain.RaffleStatusDrawn),
			"winner_ticket_id": winner.ID,
			"updated_at":       now,
		})
		if result.Error != nil {
			return result.Error
		}

		res = DrawResult{Ticket: winner}
		return nil
	})
	if err != nil {
		return DrawResult{}, classify(err)
	}

	return res, nil
}

// SweepExpired reclaims expired holds on every raffle, one raffle lock at a time.
func (d *ReservationDAO) SweepExpired(ctx context.Context, now time.Time) (map[uuid.UUID][]int, error) {
	var raffleIDs []uuid.UUID

	result := d.db.WithContext(ctx).Model(&Ticket{}).
		Where("status = ? AND reserved_until IS NOT NULL AND reserved_until <= ?", ticketStatusReserved, now).
		Distinct().
		Pluck("raffle_id", &raffleIDs)
	if result.Error != nil {
		return nil, result.Error
	}

	swept := make(map[uuid.UUID][]int)
	for _, raffleID := range raffleIDs {
		var numbers []int
		err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if _, err := lockRaffle(tx, raffleID); err != nil {
				return err
			}

			var err error
			numbers, err = reclaimExpired(tx, raffleID, now)
			return err
		})
		if errors.Is(err, ErrRaffleNotFound) {
			continue
		}
		if err != nil {
			return swept, classify(err)
		}

		if len(numbers) > 0 {
			sort.Ints(numbers)
			swept[raffleID] = numbers
		}
	}

	return swept, nil
}
