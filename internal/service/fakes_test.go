package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rifaapp/rifa-api/internal/domain"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event domain.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) types() []domain.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()

	types := make([]domain.EventType, 0, len(p.events))
	for _, e := range p.events {
		types = append(types, e.Type)
	}
	return types
}

type fakeRaffleRepo struct {
	raffles map[uuid.UUID]domain.RaffleSummary

	created    []domain.Raffle
	updates    []domain.RaffleUpdate
	listFilter *domain.RaffleStatus
	numbersArg struct {
		called        bool
		offset, limit int
	}

	updateErr error
	deleteErr error
}

func newFakeRaffleRepo() *fakeRaffleRepo {
	return &fakeRaffleRepo{raffles: make(map[uuid.UUID]domain.RaffleSummary)}
}

func (r *fakeRaffleRepo) Create(_ context.Context, raffle domain.Raffle) (domain.Raffle, error) {
	r.created = append(r.created, raffle)
	r.raffles[raffle.ID] = domain.NewRaffleSummary(raffle, 0, 0)
	return raffle, nil
}

func (r *fakeRaffleRepo) FindByID(_ context.Context, id uuid.UUID, _ time.Time) (domain.RaffleSummary, error) {
	s, ok := r.raffles[id]
	if !ok {
		return domain.RaffleSummary{}, domain.ErrRaffleNotFound
	}
	return s, nil
}

func (r *fakeRaffleRepo) List(_ context.Context, status *domain.RaffleStatus, _ time.Time) ([]domain.RaffleSummary, error) {
	r.listFilter = status

	var out []domain.RaffleSummary
	for _, s := range r.raffles {
		if status == nil || s.Status == *status {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeRaffleRepo) Update(_ context.Context, id, _ uuid.UUID, update domain.RaffleUpdate, _ time.Time) (domain.Raffle, error) {
	if r.updateErr != nil {
		return domain.Raffle{}, r.updateErr
	}

	r.updates = append(r.updates, update)
	s := r.raffles[id]
	if update.Title != nil {
		s.Title = *update.Title
	}
	if update.Status != nil {
		s.Status = *update.Status
	}
	r.raffles[id] = s
	return s.Raffle, nil
}

func (r *fakeRaffleRepo) Delete(_ context.Context, id, _ uuid.UUID) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	delete(r.raffles, id)
	return nil
}

func (r *fakeRaffleRepo) ListNumbers(_ context.Context, raffle domain.Raffle, offset, limit int, _ time.Time) ([]domain.Number, error) {
	r.numbersArg.called = true
	r.numbersArg.offset = offset
	r.numbersArg.limit = limit

	var out []domain.Number
	for i := offset; i < offset+limit && i < raffle.TotalTickets; i++ {
		n := raffle.NumberStart + i
		out = append(out, domain.Number{Number: n, Label: raffle.Label(n), Status: domain.NumberAvailable})
	}
	return out, nil
}

type fakeReservationRepo struct {
	reserveIn        domain.ReserveInput
	reserveNow       time.Time
	reserveExpiresAt time.Time
	reclaimed        []int
	reserveErr       error

	released   []int
	releaseErr error

	confirmIn  domain.ConfirmInput
	closed     bool
	confirmErr error

	drawn      bool
	drawPicked int
	drawErr    error

	swept    map[uuid.UUID][]int
	sweepErr error
}

func (r *fakeReservationRepo) Reserve(_ context.Context, in domain.ReserveInput, now, expiresAt time.Time) (domain.Reservation, []int, error) {
	r.reserveIn = in
	r.reserveNow = now
	r.reserveExpiresAt = expiresAt
	if r.reserveErr != nil {
		return domain.Reservation{}, nil, r.reserveErr
	}

	return domain.Reservation{
		ReservationID: uuid.New(),
		ParticipantID: uuid.New(),
		RaffleID:      in.RaffleID,
		Numbers:       in.Numbers,
		ExpiresAt:     expiresAt,
	}, r.reclaimed, nil
}

func (r *fakeReservationRepo) Release(context.Context, uuid.UUID, uuid.UUID) ([]int, error) {
	if r.releaseErr != nil {
		return nil, r.releaseErr
	}

	released := r.released
	r.released = nil
	return released, nil
}

func (r *fakeReservationRepo) Confirm(_ context.Context, in domain.ConfirmInput, _ time.Time) (domain.Purchase, bool, error) {
	r.confirmIn = in
	if r.confirmErr != nil {
		return domain.Purchase{}, false, r.confirmErr
	}

	return domain.Purchase{
		ID:            uuid.New(),
		RaffleID:      in.RaffleID,
		Numbers:       []int{1, 2},
		Status:        domain.PurchaseStatusConfirmed,
		PaymentMethod: in.PaymentMethod,
	}, r.closed, nil
}

func (r *fakeReservationRepo) Draw(_ context.Context, raffleID uuid.UUID, pick func(n int) (int, error), _ time.Time) (domain.DrawResult, bool, error) {
	if r.drawErr != nil {
		return domain.DrawResult{}, false, r.drawErr
	}

	if r.drawn {
		return domain.DrawResult{RaffleID: raffleID, WinningNumber: r.drawPicked}, true, nil
	}

	idx, err := pick(10)
	if err != nil {
		return domain.DrawResult{}, false, err
	}
	r.drawn = true
	r.drawPicked = idx

	return domain.DrawResult{RaffleID: raffleID, WinnerTicketID: uuid.New(), WinningNumber: idx}, false, nil
}

func (r *fakeReservationRepo) SweepExpired(context.Context, time.Time) (map[uuid.UUID][]int, error) {
	return r.swept, r.sweepErr
}

type fakePurchaseRepo struct {
	participants map[uuid.UUID]domain.Participant
	resolved     []domain.ParticipantInfo
}

func (r *fakePurchaseRepo) ListByParticipant(_ context.Context, participantID uuid.UUID) ([]domain.PurchaseView, error) {
	return []domain.PurchaseView{{Purchase: domain.Purchase{ParticipantID: participantID}}}, nil
}

func (r *fakePurchaseRepo) ResolveParticipant(_ context.Context, info domain.ParticipantInfo, now time.Time) (domain.Participant, error) {
	r.resolved = append(r.resolved, info)
	return domain.Participant{ID: uuid.New(), Name: info.Name, Email: info.Email, CreatedAt: now}, nil
}

func (r *fakePurchaseRepo) FindParticipant(_ context.Context, id uuid.UUID) (domain.Participant, error) {
	p, ok := r.participants[id]
	if !ok {
		return domain.Participant{}, ErrParticipantNotFound
	}
	return p, nil
}

type fakeUserRepo struct {
	byEmail map[string]domain.User
}

func (r *fakeUserRepo) Create(_ context.Context, user domain.User) (domain.User, error) {
	if _, ok := r.byEmail[user.Email]; ok {
		return domain.User{}, ErrUserEmailExists
	}
	r.byEmail[user.Email] = user
	return user, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (domain.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.User{}, ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return domain.User{}, ErrUserNotFound
	}
	return u, nil
}
