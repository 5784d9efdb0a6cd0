package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"

	"github.com/samandr77/microservices/access/internal/entity"
)

type Service interface {
	RegisterUser(ctx context.Context, u entity.User) error
}

type EventHandler struct {
	s Service
}

func NewEventHandler(s Service) *EventHandler {
	return &EventHandler{s: s}
}

type OnUserCreatedEvent struct {
	UserID     uuid.UUID `json:"user_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Department string    `json:"department"`
}

// OnUserCreated stores the new user. A role the service does not know is passed on as
// unknown and ends up as the default role.
func (h *EventHandler) OnUserCreated(ctx context.Context, msg kafka.Message) error {
	var event OnUserCreatedEvent

	err := json.Unmarshal(msg.Value, &event)
	if err != nil {
		return fmt.Errorf("unmarshal event: %w", err)
	}

	if event.UserID.IsNil() {
		return nil
	}

	err = h.s.RegisterUser(ctx, entity.User{
		ID:         event.UserID,
		Name:       event.Name,
		Email:      event.Email,
		Role:       entity.ParseRole(event.Role),
		Department: event.Department,
	})
	if err != nil {
		return fmt.Errorf("register user: %w", err)
	}

	return nil
}
