package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/rifaapp/rifa-api/internal/domain"
)

type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

// publish never fails the caller: the change it describes is already committed.
func publish(ctx context.Context, p EventPublisher, event domain.Event) {
	if p == nil {
		return
	}

	if err := p.Publish(ctx, event); err != nil {
		zap.L().Warn("failed to publish event",
			zap.String("type", string(event.Type)),
			zap.String("raffle_id", event.RaffleID.String()),
			zap.Error(err),
		)
	}
}
