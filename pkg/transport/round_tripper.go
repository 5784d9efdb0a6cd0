package transport

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/samandr77/microservices/access/pkg/logger"
)

// RequestIDRoundTripper forwards the request ID from context and logs outgoing calls.
type RequestIDRoundTripper struct {
	Transport http.RoundTripper
}

func NewRequestIDRoundTripper(transport http.RoundTripper) *RequestIDRoundTripper {
	return &RequestIDRoundTripper{Transport: transport}
}

func (j *RequestIDRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	ctx := r.Context()

	reqID := logger.RequestIDFromContext(ctx)
	if reqID != "" {
		r.Header.Set("X-Request-Id", reqID)
	}

	slog.InfoContext(ctx, "outgoing request", "request", fmt.Sprintf("%s %s", r.Method, r.URL.Redacted()))

	resp, err := j.Transport.RoundTrip(r)
	if err != nil {
		return nil, fmt.Errorf("round trip: %w", err)
	}

	slog.InfoContext(ctx, "incoming response", "response", fmt.Sprintf("%s %s", r.Method, r.URL.Redacted()), "status", resp.StatusCode)

	return resp, nil
}
