package users

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/samandr77/microservices/access/internal/entity"
	"github.com/samandr77/microservices/access/pkg/config"
	"github.com/samandr77/microservices/access/pkg/transport"
)

const defaultRetryWaitMax = 3 * time.Second

// Client looks up users the access service has not seen on the users topic yet.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(cfg config.UsersServiceConfig) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.RetryAttempts
	retryClient.RetryWaitMin = 100 * time.Millisecond
	retryClient.RetryWaitMax = defaultRetryWaitMax
	retryClient.HTTPClient.Timeout = cfg.Timeout
	retryClient.HTTPClient.Transport = transport.NewRequestIDRoundTripper(http.DefaultTransport)
	retryClient.Logger = nil

	return &Client{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		http:    retryClient.StandardClient(),
	}
}

type userResponse struct {
	UserID     uuid.UUID `json:"user_id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	RoleName   string    `json:"role_name"`
	Department string    `json:"department"`
}

func (c *Client) User(ctx context.Context, userID uuid.UUID) (entity.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/internal/users/"+userID.String(), nil)
	if err != nil {
		return entity.User{}, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("X-Service-Name", "seva-access")

	resp, err := c.http.Do(req)
	if err != nil {
		return entity.User{}, fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return entity.User{}, entity.ErrUserNotFound
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return entity.User{}, fmt.Errorf("unexpected status code: %d\nbody: %s", resp.StatusCode, body)
	}

	var data userResponse

	err = json.NewDecoder(resp.Body).Decode(&data)
	if err != nil {
		return entity.User{}, fmt.Errorf("decode response: %w", err)
	}

	if data.UserID.IsNil() {
		data.UserID = userID
	}

	if data.UserID != userID {
		return entity.User{}, fmt.Errorf("requested user %s, got %s", userID, data.UserID)
	}

	role := entity.ParseRole(data.RoleName)
	if role == entity.RoleUnknown {
		role = entity.DefaultRole
	}

	return entity.User{
		ID:         data.UserID,
		Name:       strings.TrimSpace(data.FirstName + " " + data.LastName),
		Email:      data.Email,
		Role:       role,
		Department: data.Department,
	}, nil
}
