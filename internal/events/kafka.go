package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/rifaapp/rifa-api/internal/domain"
)

const (
	// Publish runs on the request goroutine after commit.
	kafkaBatchTimeout = 10 * time.Millisecond
	kafkaMaxAttempts  = 3
)

// KafkaPublisher writes raffle events to a topic keyed by raffle id, so the
// events of one raffle stay ordered within a partition.
type KafkaPublisher struct {
	Writer  *kafka.Writer
	Timeout time.Duration
}

// NewKafkaPublisher builds a publisher whose Publish gives up after timeout.
// A zero timeout leaves the caller's context as the only bound.
func NewKafkaPublisher(brokers []string, topic string, timeout time.Duration) *KafkaPublisher {
	return &KafkaPublisher{
		Writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			BatchTimeout: kafkaBatchTimeout,
			MaxAttempts:  kafkaMaxAttempts,
			WriteTimeout: timeout,
		},
		Timeout: timeout,
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event domain.Event) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("json.Marshal -> %w", err)
	}

	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}

	err = p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.RaffleID.String()),
		Value: value,
		Time:  event.At,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(event.Type)},
		},
	})
	if err != nil {
		return fmt.Errorf("p.Writer.WriteMessages -> %w", err)
	}

	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.Writer.Close()
}
