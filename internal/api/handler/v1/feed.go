package v1

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/rifaapp/rifa-api/internal/api/handler/v1/response"
	"github.com/rifaapp/rifa-api/internal/domain"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBufferSize = 64
)

var ErrFeedBacklogFull = errors.New("feed backlog full")

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type feedClient struct {
	conn     *websocket.Conn
	send     chan []byte
	raffleID uuid.UUID
}

// Hub pushes raffle events to the websocket clients watching that raffle.
type Hub struct {
	svc RaffleService

	clients      map[uuid.UUID]map[*feedClient]struct{}
	clientsMutex sync.RWMutex
	broadcast    chan domain.Event
	register     chan *feedClient
	unregister   chan *feedClient
	done         chan struct{}
}

func NewHub(svc RaffleService) *Hub {
	return &Hub{
		svc:        svc,
		clients:    make(map[uuid.UUID]map[*feedClient]struct{}),
		broadcast:  make(chan domain.Event, 256),
		register:   make(chan *feedClient),
		unregister: make(chan *feedClient),
		done:       make(chan struct{}),
	}
}

// Run dispatches events until ctx is cancelled, then disconnects every client.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			h.clientsMutex.Lock()
			for raffleID, set := range h.clients {
				for client := range set {
					close(client.send)
				}
				delete(h.clients, raffleID)
			}
			h.clientsMutex.Unlock()
			return
		case client := <-h.register:
			h.clientsMutex.Lock()
			set, ok := h.clients[client.raffleID]
			if !ok {
				set = make(map[*feedClient]struct{})
				h.clients[client.raffleID] = set
			}
			set[client] = struct{}{}
			h.clientsMutex.Unlock()
		case client := <-h.unregister:
			h.clientsMutex.Lock()
			h.remove(client)
			h.clientsMutex.Unlock()
		case event := <-h.broadcast:
			message, err := json.Marshal(event)
			if err != nil {
				zap.L().Error("failed to encode feed event", zap.Error(err))
				continue
			}

			h.clientsMutex.Lock()
			for client := range h.clients[event.RaffleID] {
				select {
				case client.send <- message:
				default:
					h.remove(client)
				}
			}
			h.clientsMutex.Unlock()
		}
	}
}

// remove must be called with clientsMutex held.
func (h *Hub) remove(client *feedClient) {
	set, ok := h.clients[client.raffleID]
	if !ok {
		return
	}
	if _, ok := set[client]; !ok {
		return
	}

	delete(set, client)
	close(client.send)
	if len(set) == 0 {
		delete(h.clients, client.raffleID)
	}
}

// Publish queues event for the raffle's watchers. It never blocks on slow clients.
func (h *Hub) Publish(ctx context.Context, event domain.Event) error {
	select {
	case h.broadcast <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-h.done:
		return nil
	default:
		return ErrFeedBacklogFull
	}
}

// Watchers returns how many clients follow raffleID.
func (h *Hub) Watchers(raffleID uuid.UUID) int {
	h.clientsMutex.RLock()
	defer h.clientsMutex.RUnlock()

	return len(h.clients[raffleID])
}

// HandleFeed godoc
// @Summary      Live raffle feed
// @Description  Upgrades to a websocket that streams reservation, sale and draw events of the raffle.
// @Tags         raffles
// @Produce      json
// @Param        raffleID  path      string  true  "Raffle ID"
// @Success      101       {string}  string  "Switching Protocols to WebSocket"
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Router       /raffles/{raffleID}/feed [get]
func (h *Hub) HandleFeed(ctx *gin.Context) {
	raffleID, respErr := parseUUIDParam(ctx, "raffleID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if _, err := h.svc.GetRaffle(ctx.Request.Context(), raffleID); err != nil {
		response.RenderErr(ctx, response.FromDomain(fmt.Errorf("HandleFeed -> h.svc.GetRaffle -> %w", err)))
		return
	}

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		zap.L().Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	client := &feedClient{
		conn:     conn,
		send:     make(chan []byte, sendBufferSize),
		raffleID: raffleID,
	}
	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump(h)
}

func (c *feedClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump only drains control frames; the feed is one-way.
func (c *feedClient) readPump(h *Hub) {
	defer func() {
		select {
		case h.unregister <- c:
		case <-h.done:
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				zap.L().Debug("feed client closed", zap.String("raffle_id", c.raffleID.String()), zap.Error(err))
			}
			return
		}
	}
}
