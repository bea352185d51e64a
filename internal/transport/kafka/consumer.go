package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/IBM/sarama"

	"service-assistance/internal/logx"
	"service-assistance/internal/notify"
)

// HandleFunc processes a single notification job from Kafka
type HandleFunc func(context.Context, notify.Job) error

// newConsumerGroup is swapped in tests
var newConsumerGroup = sarama.NewConsumerGroup

// Consumer wraps a Sarama consumer group and dispatches notification jobs to a handler
type Consumer struct {
	logger  logx.Logger
	group   sarama.ConsumerGroup
	topic   string
	handler HandleFunc
}

// NewConsumer creates a new Kafka consumer. Returns nil when Kafka is not configured.
func NewConsumer(logger logx.Logger, brokers []string, groupID, topic string, h HandleFunc) (*Consumer, error) {
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" || strings.TrimSpace(groupID) == "" {
		return nil, nil
	}

	cfg := sarama.NewConfig()
	cfg.Consumer.Offsets.Initial = sarama.OffsetOldest

	group, err := newConsumerGroup(brokers, groupID, cfg)
	if err != nil {
		return nil, err
	}

	return &Consumer{
		logger:  logger,
		group:   group,
		topic:   topic,
		handler: h,
	}, nil
}

// Run starts the consumer
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
			c.logger.Error("kafka consume error", logx.Any("error", err))
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
	for msg := range claim.Messages() {
		var dto JobDTO
		if err := json.Unmarshal(msg.Value, &dto); err != nil {
			h.c.logger.Warn("kafka bad json", logx.Any("error", err))
			sess.MarkMessage(msg, "")
			continue
		}
		if dto.RequestID <= 0 {
			h.c.logger.Warn("kafka invalid request_id", logx.Int64("request_id", dto.RequestID))
			sess.MarkMessage(msg, "")
			continue
		}

		if err := h.c.handler(sess.Context(), ToDomain(dto)); err != nil {
			var perm PermanentError
			if errors.As(err, &perm) {
				// already escalated by the handler; redelivery cannot fix it
				h.c.logger.Error("kafka permanent failure, dropping message",
					logx.Int64("request_id", dto.RequestID),
					logx.Any("error", err),
				)
				sess.MarkMessage(msg, "")
				continue
			}
			h.c.logger.Warn("kafka handle failed, message will be redelivered",
				logx.Int64("request_id", dto.RequestID),
				logx.Any("error", err),
			)
			return err
		}

		sess.MarkMessage(msg, "")
	}
	return nil
}
