package events

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/rifaapp/rifa-api/internal/domain"
)

type recordingPublisher struct {
	events []domain.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event domain.Event) error {
	p.events = append(p.events, event)
	return p.err
}

func TestFanout_Publish(t *testing.T) {
	event := domain.Event{Type: domain.EventNumbersReserved, RaffleID: uuid.New(), Numbers: []int{1, 2}}

	t.Run("delivers to every publisher", func(t *testing.T) {
		a, b := &recordingPublisher{}, &recordingPublisher{}

		err := Fanout{a, b, Nop{}}.Publish(context.Background(), event)

		assert.NoError(t, err)
		assert.Equal(t, []domain.Event{event}, a.events)
		assert.Equal(t, []domain.Event{event}, b.events)
	})

	t.Run("keeps delivering after a failure", func(t *testing.T) {
		failing := &recordingPublisher{err: errors.New("broker down")}
		ok := &recordingPublisher{}

		err := Fanout{failing, ok}.Publish(context.Background(), event)

		assert.ErrorContains(t, err, "broker down")
		assert.Len(t, ok.events, 1)
	})
}
