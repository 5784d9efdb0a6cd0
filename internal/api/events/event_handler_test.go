package events_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/access/internal/api/events"
	"github.com/samandr77/microservices/access/internal/entity"
)

type registerFunc func(ctx context.Context, u entity.User) error

func (f registerFunc) RegisterUser(ctx context.Context, u entity.User) error {
	return f(ctx, u)
}

func TestEventHandler_OnUserCreated(t *testing.T) {
	t.Parallel()

	userID := uuid.Must(uuid.NewV4())

	for _, tt := range []struct {
		name     string
		role     string
		wantRole entity.Role
	}{
		{name: "known role", role: "counsellor", wantRole: entity.RoleCounsellor},
		{name: "wrong case", role: "HOD", wantRole: entity.RoleUnknown},
		{name: "missing role", role: "", wantRole: entity.RoleUnknown},
	} {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got entity.User

			h := events.NewEventHandler(registerFunc(func(_ context.Context, u entity.User) error {
				got = u
				return nil
			}))

			msg := kafka.Message{Value: []byte(`{"user_id":"` + userID.String() +
				`","name":"Radha","email":"radha@example.com","role":"` + tt.role + `","department":"kitchen"}`)}

			require.NoError(t, h.OnUserCreated(context.Background(), msg))
			require.Equal(t, userID, got.ID)
			require.Equal(t, "Radha", got.Name)
			require.Equal(t, "kitchen", got.Department)
			require.Equal(t, tt.wantRole, got.Role)
		})
	}
}

func TestEventHandler_OnUserCreated_Errors(t *testing.T) {
	t.Parallel()

	called := false
	h := events.NewEventHandler(registerFunc(func(context.Context, entity.User) error {
		called = true
		return errors.New("db down")
	}))

	err := h.OnUserCreated(context.Background(), kafka.Message{Value: []byte("{")})
	require.Error(t, err)
	require.False(t, called)

	err = h.OnUserCreated(context.Background(), kafka.Message{Value: []byte(`{"name":"no id"}`)})
	require.NoError(t, err)
	require.False(t, called)

	err = h.OnUserCreated(context.Background(),
		kafka.Message{Value: []byte(`{"user_id":"` + uuid.Must(uuid.NewV4()).String() + `"}`)})
	require.Error(t, err)
	require.True(t, called)
}
