package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rifaapp/rifa-api/internal/domain"
)

func TestHub_StreamsRaffleEvents(t *testing.T) {
	raffleID := uuid.New()
	otherID := uuid.New()
	svc := &fakeRaffleService{raffles: map[uuid.UUID]domain.RaffleSummary{
		raffleID: {},
		otherID:  {},
	}}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(svc)
	go hub.Run(ctx)

	r := gin.New()
	r.GET("/raffles/:raffleID/feed", hub.HandleFeed)
	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/raffles/" + raffleID.String() + "/feed"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.Watchers(raffleID) == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, hub.Publish(ctx, domain.Event{Type: domain.EventNumbersSold, RaffleID: otherID, Numbers: []int{9}}))
	require.NoError(t, hub.Publish(ctx, domain.Event{Type: domain.EventNumbersReserved, RaffleID: raffleID, Numbers: []int{1, 2}}))

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var event domain.Event
	require.NoError(t, conn.ReadJSON(&event))

	assert.Equal(t, domain.EventNumbersReserved, event.Type)
	assert.Equal(t, []int{1, 2}, event.Numbers)
}

func TestHub_UnknownRaffle(t *testing.T) {
	hub := NewHub(&fakeRaffleService{raffles: map[uuid.UUID]domain.RaffleSummary{}})

	r := gin.New()
	r.GET("/raffles/:raffleID/feed", hub.HandleFeed)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/raffles/"+uuid.NewString()+"/feed", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHub_PublishAfterShutdown(t *testing.T) {
	hub := NewHub(&fakeRaffleService{})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(done)
	}()
	cancel()
	<-done

	for i := 0; i < 300; i++ {
		assert.NoError(t, hub.Publish(context.Background(), domain.Event{RaffleID: uuid.New()}))
	}
}
