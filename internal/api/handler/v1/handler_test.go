package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/rifaapp/rifa-api/internal/api/middleware"
	"github.com/rifaapp/rifa-api/internal/config"
	"github.com/rifaapp/rifa-api/internal/domain"
	"github.com/rifaapp/rifa-api/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeRaffleService struct {
	raffles map[uuid.UUID]domain.RaffleSummary

	createdWith service.CreateRaffleInput
	updateErr   error
	deleteErr   error
	numbersArgs struct {
		offset int
		limit  *int
	}
}

func (s *fakeRaffleService) CreateRaffle(_ context.Context, in service.CreateRaffleInput) (domain.RaffleSummary, error) {
	s.createdWith = in
	r := in.Raffle
	r.ID = uuid.New()
	return domain.NewRaffleSummary(r, 0, 0), nil
}

func (s *fakeRaffleService) ListRaffles(_ context.Context, status string) ([]domain.RaffleSummary, error) {
	if status == "bogus" {
		return nil, domain.ErrInvalidRaffleStatus
	}

	var out []domain.RaffleSummary
	for _, r := range s.raffles {
		out = append(out, r)
	}
	return out, nil
}

func (s *fakeRaffleService) GetRaffle(_ context.Context, id uuid.UUID) (domain.RaffleSummary, error) {
	r, ok := s.raffles[id]
	if !ok {
		return domain.RaffleSummary{}, domain.ErrRaffleNotFound
	}
	return r, nil
}

func (s *fakeRaffleService) UpdateRaffle(_ context.Context, id, _ uuid.UUID, _ domain.RaffleUpdate) (domain.RaffleSummary, error) {
	if s.updateErr != nil {
		return domain.RaffleSummary{}, s.updateErr
	}
	return s.raffles[id], nil
}

func (s *fakeRaffleService) DeleteRaffle(context.Context, uuid.UUID, uuid.UUID) error {
	return s.deleteErr
}

func (s *fakeRaffleService) ListNumbers(_ context.Context, id uuid.UUID, offset int, limit *int) (domain.NumberPage, error) {
	s.numbersArgs.offset = offset
	s.numbersArgs.limit = limit
	if offset < 0 {
		return domain.NumberPage{}, domain.ErrInvalidOffset
	}
	return domain.NewNumberPage(s.raffles[id], offset, 0, nil), nil
}

type fakeReservationService struct {
	reserveIn  domain.ReserveInput
	reserveErr error
	confirmIn  domain.ConfirmInput
	confirmErr error
	released   int
	drawErr    error
}

func (s *fakeReservationService) Reserve(_ context.Context, in domain.ReserveInput) (domain.Reservation, error) {
	s.reserveIn = in
	if s.reserveErr != nil {
		return domain.Reservation{}, s.reserveErr
	}
	return domain.Reservation{ReservationID: uuid.New(), RaffleID: in.RaffleID, Numbers: in.Numbers}, nil
}

func (s *fakeReservationService) Release(context.Context, uuid.UUID, uuid.UUID) (int, error) {
	n := s.released
	s.released = 0
	return n, nil
}

func (s *fakeReservationService) Confirm(_ context.Context, in domain.ConfirmInput) (domain.Purchase, error) {
	s.confirmIn = in
	if s.confirmErr != nil {
		return domain.Purchase{}, s.confirmErr
	}
	return domain.Purchase{ID: uuid.New(), RaffleID: in.RaffleID, Status: domain.PurchaseStatusConfirmed}, nil
}

func (s *fakeReservationService) Draw(_ context.Context, raffleID uuid.UUID) (domain.DrawResult, error) {
	if s.drawErr != nil {
		return domain.DrawResult{}, s.drawErr
	}
	return domain.DrawResult{RaffleID: raffleID, WinningNumber: 42}, nil
}

type fakeAuthService struct {
	user domain.User
}

func (s *fakeAuthService) Signup(_ context.Context, user domain.User) (domain.User, error) {
	if user.Email == s.user.Email {
		return domain.User{}, service.ErrUserEmailExists
	}
	user.ID = uuid.New()
	return user, nil
}

func (s *fakeAuthService) Login(_ context.Context, email, password string) (domain.User, error) {
	if email != s.user.Email {
		return domain.User{}, service.ErrUserNotFound
	}
	if password != "rifa2026" {
		return domain.User{}, service.ErrWrongPassword
	}
	return s.user, nil
}

const testSigningKey = "0123456789abcdef0123456789abcdef"

type testEnv struct {
	router       *gin.Engine
	raffles      *fakeRaffleService
	reservations *fakeReservationService
	auth         *fakeAuthService
	conf         *config.APIConfig
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		router:       gin.New(),
		raffles:      &fakeRaffleService{raffles: map[uuid.UUID]domain.RaffleSummary{}},
		reservations: &fakeReservationService{},
		auth:         &fakeAuthService{user: domain.User{ID: uuid.New(), Email: "org@example.com"}},
		conf: &config.APIConfig{
			ServiceName:   "rifa-api",
			Version:       "1.2.3",
			JWTSigningKey: testSigningKey,
			JWTTTL:        time.Hour,
		},
	}

	raffleHandler := NewRaffleHandler(env.raffles)
	reservationHandler := NewReservationHandler(env.reservations, 10)
	authHandler := NewAuthHandler(env.conf, env.auth)
	healthHandler := NewHealthHandler(env.conf, nil)

	api := env.router.Group("/api/v1")
	api.POST("/auth/signup", authHandler.HandleSignup)
	api.POST("/auth/login", authHandler.HandleLogin)
	api.GET("/raffles", raffleHandler.HandleListRaffles)
	api.GET("/raffles/:raffleID", raffleHandler.HandleGetRaffle)
	api.GET("/raffles/:raffleID/numbers", raffleHandler.HandleListNumbers)
	api.POST("/raffles/:raffleID/reservations", reservationHandler.HandleReserve)
	api.DELETE("/raffles/:raffleID/reservations/:reservationID", reservationHandler.HandleRelease)
	api.POST("/raffles/:raffleID/purchases", reservationHandler.HandleConfirm)
	api.POST("/raffles/:raffleID/draw", reservationHandler.HandleDraw)

	owned := api.Group("", middleware.NewAuthenticator(testSigningKey).VerifyJWT())
	owned.POST("/raffles", raffleHandler.HandleCreateRaffle)
	owned.PATCH("/raffles/:raffleID", raffleHandler.HandleUpdateRaffle)
	owned.DELETE("/raffles/:raffleID", raffleHandler.HandleDeleteRaffle)

	env.router.GET("/health", healthHandler.HandleHealth)
	env.router.GET("/version", healthHandler.HandleVersion)

	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}
