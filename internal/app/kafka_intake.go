package app

import (
	"context"
	"errors"

	"courier-dispatch/internal/apperr"
	"courier-dispatch/internal/config"
	"courier-dispatch/internal/logx"
	"courier-dispatch/internal/service/intake"
	"courier-dispatch/internal/transport/kafka"
)

// makeIntakeHandler adapts the intake processor to the consumer loop.
// Validation failures are permanent: retrying a malformed event would wedge
// the partition, so the consumer marks it and moves on.
func makeIntakeHandler(p *intake.Processor) kafka.HandleFunc {
	return func(ctx context.Context, event intake.Event) error {
		err := p.Handle(ctx, event)
		if err != nil && errors.Is(err, apperr.ErrInvalid) {
			return kafka.Permanent(err)
		}
		return err
	}
}

func newIntakeConsumer(cfg *config.Config, logger logx.Logger, h kafka.HandleFunc) (*kafka.Consumer, error) {
	return kafka.NewConsumer(logger, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topic, h)
}
