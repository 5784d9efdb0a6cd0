package users_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/access/internal/clients/users"
	"github.com/samandr77/microservices/access/internal/entity"
	"github.com/samandr77/microservices/access/pkg/config"
)

func TestClient_User(t *testing.T) {
	t.Parallel()

	userID := uuid.Must(uuid.NewV4())

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/internal/users/"+userID.String(), r.URL.Path)
		require.Equal(t, "seva-access", r.Header.Get("X-Service-Name"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"user_id":"` + userID.String() + `","first_name":"Radha","last_name":"Devi",` +
			`"email":"radha@example.com","role_name":"hod","department":"kitchen"}`))
	}))
	t.Cleanup(server.Close)

	c := users.NewClient(config.UsersServiceConfig{URL: server.URL + "/", Timeout: time.Second})

	got, err := c.User(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, entity.User{
		ID:         userID,
		Name:       "Radha Devi",
		Email:      "radha@example.com",
		Role:       entity.RoleHOD,
		Department: "kitchen",
	}, got)
}

func TestClient_User_UnknownRoleDefaults(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"role_name":"superuser"}`))
	}))
	t.Cleanup(server.Close)

	c := users.NewClient(config.UsersServiceConfig{URL: server.URL, Timeout: time.Second})

	userID := uuid.Must(uuid.NewV4())

	got, err := c.User(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, userID, got.ID)
	require.Equal(t, entity.RoleDevotee, got.Role)
}

func TestClient_User_OtherUserRejected(t *testing.T) {
	t.Parallel()

	other := uuid.Must(uuid.NewV4())

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"user_id":"` + other.String() + `","role_name":"temple_president"}`))
	}))
	t.Cleanup(server.Close)

	c := users.NewClient(config.UsersServiceConfig{URL: server.URL, Timeout: time.Second})

	_, err := c.User(context.Background(), uuid.Must(uuid.NewV4()))
	require.ErrorContains(t, err, other.String())
}

func TestClient_User_NotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	c := users.NewClient(config.UsersServiceConfig{URL: server.URL, Timeout: time.Second})

	_, err := c.User(context.Background(), uuid.Must(uuid.NewV4()))
	require.ErrorIs(t, err, entity.ErrUserNotFound)
}

func TestClient_User_RetriesServerErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}

		_, _ = w.Write([]byte(`{"role_name":"inmate"}`))
	}))
	t.Cleanup(server.Close)

	c := users.NewClient(config.UsersServiceConfig{URL: server.URL, Timeout: time.Second, RetryAttempts: 2})

	got, err := c.User(context.Background(), uuid.Must(uuid.NewV4()))
	require.NoError(t, err)
	require.Equal(t, entity.RoleInmate, got.Role)
	require.Equal(t, int32(2), calls.Load())
}
