package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"

	"github.com/samandr77/microservices/access/internal/entity"
)

type Producer struct {
	l                *slog.Logger
	w                *kafka.Writer
	roleChangedTopic string
}

func NewProducer(l *slog.Logger, brokers []string, topic string) *Producer {
	l = l.WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  "",
		Balancer:               &kafka.LeastBytes{},
		Async:                  true,
		Compression:            0,
		Logger:                 kafkaLogger{l: l, level: slog.LevelDebug},
		ErrorLogger:            kafkaLogger{l: l, level: slog.LevelError},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:                l,
		w:                w,
		roleChangedTopic: topic,
	}
}

type RoleChangedEvent struct {
	UserID    uuid.UUID `json:"user_id"`
	OldRole   string    `json:"old_role"`
	NewRole   string    `json:"new_role"`
	ChangedBy uuid.UUID `json:"changed_by"`
	ChangedAt time.Time `json:"changed_at"`
}

func (p *Producer) SendRoleChanged(ctx context.Context, change entity.RoleChange) {
	event := RoleChangedEvent{
		UserID:    change.UserID,
		OldRole:   change.OldRole.String(),
		NewRole:   change.NewRole.String(),
		ChangedBy: change.ChangedBy,
		ChangedAt: change.ChangedAt,
	}

	b, err := json.Marshal(event)
	if err != nil {
		p.l.Error(fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(change.UserID.String()),
		Value: b,
		Topic: p.roleChangedTopic,
	})
	if err != nil {
		p.l.Error(fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}
