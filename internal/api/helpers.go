package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/access/internal/entity"
)

type ResponseError struct {
	Message string `json:"message"`
}

func sendErr(ctx context.Context, w http.ResponseWriter, code int, err error, msg string) {
	if code >= http.StatusInternalServerError {
		slog.ErrorContext(ctx, "Request failed", "status", code, "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(ResponseError{Message: msg}); err != nil {
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}

func sendJSON(_ context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// sendServiceErr maps service errors to a status code and a message safe to show.
func sendServiceErr(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrUnauthorized):
		sendErr(ctx, w, http.StatusUnauthorized, err, entity.ErrMsgUnauthorized)
	case errors.Is(err, entity.ErrUserBlocked):
		sendErr(ctx, w, http.StatusForbidden, err, entity.ErrMsgUserBlocked)
	case errors.Is(err, entity.ErrPermissionDenied), errors.Is(err, entity.ErrForbidden):
		sendErr(ctx, w, http.StatusForbidden, err, entity.ErrMsgForbidden)
	case errors.Is(err, entity.ErrUserNotFound):
		sendErr(ctx, w, http.StatusNotFound, err, entity.ErrMsgUserNotFound)
	case errors.Is(err, entity.ErrNotFound):
		sendErr(ctx, w, http.StatusNotFound, err, entity.ErrMsgNotFound)
	case errors.Is(err, entity.ErrAlreadyAssigned):
		sendErr(ctx, w, http.StatusConflict, err, entity.ErrMsgAlreadyAssigned)
	case errors.Is(err, entity.ErrRoleConflict):
		sendErr(ctx, w, http.StatusConflict, err, entity.ErrMsgRoleConflict)
	case errors.Is(err, entity.ErrNotCounsellor):
		sendErr(ctx, w, http.StatusUnprocessableEntity, err, entity.ErrMsgNotCounsellor)
	case errors.Is(err, entity.ErrSelfTransfer):
		sendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgSelfTransfer)
	case errors.Is(err, entity.ErrInvalidArgument):
		sendErr(ctx, w, http.StatusBadRequest, err, getValidationMessage(err))
	default:
		sendErr(ctx, w, http.StatusInternalServerError, err, entity.ErrMsgInternal)
	}
}

// getValidationMessage drops the sentinel prefix from "invalid argument: detail".
func getValidationMessage(err error) string {
	msg := err.Error()
	prefix := entity.ErrInvalidArgument.Error() + ": "

	if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
		return msg[len(prefix):]
	}

	return entity.ErrMsgBadRequest
}

func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return uuid.Nil, errors.New(name + " is required")
	}

	return uuid.FromString(raw)
}
