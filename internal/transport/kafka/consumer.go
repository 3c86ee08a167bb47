package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/IBM/sarama"

	"courier-dispatch/internal/logx"
	"courier-dispatch/internal/service/intake"
)

// HandleFunc processes a single intake.Event from Kafka.
type HandleFunc func(context.Context, intake.Event) error

// newConsumerGroup is a seam for tests.
var newConsumerGroup = sarama.NewConsumerGroup

// Consumer wraps a Sarama consumer group and dispatches events to a handler.
type Consumer struct {
	group   sarama.ConsumerGroup
	topic   string
	handler HandleFunc
	logger  logx.Logger
}

// NewConsumer creates a new Kafka consumer. With no brokers, topic or group
// configured it returns nil: the service runs without an intake feed.
func NewConsumer(logger logx.Logger, brokers []string, groupID, topic string, h HandleFunc) (*Consumer, error) {
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" || strings.TrimSpace(groupID) == "" {
		logger.Warn("kafka intake disabled, incomplete config")
		return nil, nil
	}

	cfg := sarama.NewConfig()
	cfg.Consumer.Offsets.Initial = sarama.OffsetOldest

	group, err := newConsumerGroup(brokers, groupID, cfg)
	if err != nil {
		return nil, err
	}

	return &Consumer{
		group:   group,
		topic:   topic,
		handler: h,
		logger:  logger,
	}, nil
}

// Run starts the consumer loop until ctx is canceled.
func (c *Consumer) Run(ctx context.Context) error {
	if c == nil {
		return nil
	}

	h := &groupHandler{c: c}

	for {
		if err := c.group.Consume(ctx, []string{c.topic}, h); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.logger.Error("kafka consume failed", logx.Err(err))
			time.Sleep(time.Second)
			continue
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

func (c *Consumer) Close() error {
	if c == nil {
		return nil
	}
	return c.group.Close()
}

type groupHandler struct{ c *Consumer }

func (h *groupHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *groupHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *groupHandler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log := h.c.logger
	for msg := range claim.Messages() {
		var dto EventDTO
		if err := json.Unmarshal(msg.Value, &dto); err != nil {
			log.Warn("kafka bad json", logx.Err(err))
			sess.MarkMessage(msg, "")
			continue
		}

		ev := ToDomain(dto)
		if ev.OrderID == "" {
			log.Warn("kafka empty order_id")
			sess.MarkMessage(msg, "")
			continue
		}

		if err := h.c.handler(sess.Context(), ev); err != nil {
			var perm PermanentError
			if errors.As(err, &perm) {
				log.Warn("kafka handle failed, skipping message",
					logx.String("order_id", ev.OrderID),
					logx.String("status", ev.Status),
					logx.Err(err),
				)
				sess.MarkMessage(msg, "")
				continue
			}
			log.Error("kafka handle failed, will retry",
				logx.String("order_id", ev.OrderID),
				logx.String("status", ev.Status),
				logx.Err(err),
			)
			return err
		}

		sess.MarkMessage(msg, "")
	}
	return nil
}
