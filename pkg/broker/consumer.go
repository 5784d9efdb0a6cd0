package broker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/segmentio/kafka-go"
)

// MessageHandler processes one user event. A returned error is logged and the message
// is committed anyway so a malformed event cannot stall the partition.
type MessageHandler func(ctx context.Context, msg kafka.Message) error

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// UserEventsConsumer feeds events published by the users service to their handlers.
// Offsets are committed after the handler returns.
type UserEventsConsumer struct {
	l        *slog.Logger
	r        messageReader
	wg       sync.WaitGroup
	handlers map[string]MessageHandler
}

func NewUserEventsConsumer(l *slog.Logger, brokers []string, groupID string, topics ...string) *UserEventsConsumer {
	l = l.WithGroup("kafka").With("group_id", groupID)

	return newUserEventsConsumer(l, kafka.NewReader(kafka.ReaderConfig{
		Brokers:     brokers,
		GroupID:     groupID,
		GroupTopics: topics,
		Logger:      kafkaLogger{l: l, level: slog.LevelDebug},
		ErrorLogger: kafkaLogger{l: l, level: slog.LevelError},
	}))
}

func newUserEventsConsumer(l *slog.Logger, r messageReader) *UserEventsConsumer {
	return &UserEventsConsumer{
		l:        l,
		r:        r,
		handlers: make(map[string]MessageHandler),
	}
}

// On registers h for topic. Call it before Start.
func (c *UserEventsConsumer) On(topic string, h MessageHandler) *UserEventsConsumer {
	c.handlers[topic] = h
	return c
}

// Start reads in the background until ctx is done or the consumer is closed.
func (c *UserEventsConsumer) Start(ctx context.Context) {
	c.wg.Add(1)

	go func() {
		defer c.wg.Done()

		c.run(ctx)
	}()
}

func (c *UserEventsConsumer) run(ctx context.Context) {
	for {
		msg, err := c.r.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				c.l.DebugContext(ctx, "user events consumer stopped")
				return
			}

			c.l.ErrorContext(ctx, "fetch user event", "error", err)

			continue
		}

		err = c.dispatch(ctx, msg)
		if err != nil {
			c.l.ErrorContext(ctx, "handle user event",
				"topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset, "error", err)
		}

		err = c.r.CommitMessages(ctx, msg)
		if err != nil && ctx.Err() == nil {
			c.l.ErrorContext(ctx, "commit user event", "topic", msg.Topic, "offset", msg.Offset, "error", err)
		}
	}
}

func (c *UserEventsConsumer) dispatch(ctx context.Context, msg kafka.Message) error {
	h, ok := c.handlers[msg.Topic]
	if !ok {
		c.l.WarnContext(ctx, "no handler for user event topic", "topic", msg.Topic)
		return nil
	}

	return h(ctx, msg)
}

func (c *UserEventsConsumer) Close() {
	err := c.r.Close()
	if err != nil {
		c.l.Error("close kafka reader", "error", err)
	}

	c.wg.Wait()
}
