package events

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rifaapp/rifa-api/internal/domain"
)

func TestNewKafkaPublisher(t *testing.T) {
	p := NewKafkaPublisher([]string{"kafka:9092"}, "raffle-events", 2*time.Second)
	t.Cleanup(func() { _ = p.Close() })

	assert.Equal(t, "raffle-events", p.Writer.Topic)
	assert.LessOrEqual(t, p.Writer.BatchTimeout, 10*time.Millisecond)
	assert.Equal(t, kafkaMaxAttempts, p.Writer.MaxAttempts)
	assert.Equal(t, 2*time.Second, p.Timeout)
}

// silentBroker accepts connections and never answers, like a broker stuck in an outage.
func silentBroker(t *testing.T) string {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	var (
		mu    sync.Mutex
		conns []net.Conn
	)
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			mu.Lock()
			conns = append(conns, conn)
			mu.Unlock()
		}
	}()

	t.Cleanup(func() {
		_ = ln.Close()
		mu.Lock()
		defer mu.Unlock()
		for _, conn := range conns {
			_ = conn.Close()
		}
	})

	return ln.Addr().String()
}

func TestKafkaPublisher_PublishIsBounded(t *testing.T) {
	p := NewKafkaPublisher([]string{silentBroker(t)}, "raffle-events", 200*time.Millisecond)
	t.Cleanup(func() { _ = p.Close() })

	event := domain.Event{Type: domain.EventNumbersReserved, RaffleID: uuid.New(), Numbers: []int{4}, At: time.Now()}

	start := time.Now()
	err := p.Publish(context.Background(), event)
	elapsed := time.Since(start)

	assert.Error(t, err)
	assert.Less(t, elapsed, 2*time.Second)
}
