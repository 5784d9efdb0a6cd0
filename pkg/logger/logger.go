package logger

import (
	"context"
	"log/slog"
	"os"
)

type ctxKey uint8

const (
	ctxKeyRequestID ctxKey = iota
	ctxKeyUserID
	ctxKeyCallerService
	ctxKeyMethod
	ctxKeyLogType
	ctxKeyIP
	ctxKeyURL
)

const originService = "seva-access"

type Handler struct {
	slog.Handler
}

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	if v, ok := ctx.Value(ctxKeyRequestID).(string); ok && v != "" {
		record.Add("request_id", v)
	}

	if v, ok := ctx.Value(ctxKeyUserID).(string); ok && v != "" {
		record.Add("user_id", v)
	}

	if v, ok := ctx.Value(ctxKeyIP).(string); ok && v != "" {
		record.Add("ip", v)
	}

	if v, ok := ctx.Value(ctxKeyMethod).(string); ok && v != "" {
		record.Add("method", v)
	}

	if v, ok := ctx.Value(ctxKeyURL).(string); ok && v != "" {
		record.Add("url", v)
	}

	if v, ok := ctx.Value(ctxKeyLogType).(string); ok && v != "" {
		record.Add("type", v)
	}

	if v, ok := ctx.Value(ctxKeyCallerService).(string); ok && v != "" {
		record.Add("caller_service", v)
	}

	record.Add("origin_service", originService)

	return h.Handler.Handle(ctx, record)
}

// WithAttrs and WithGroup keep the wrapper so derived loggers still get context fields.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{h.Handler.WithAttrs(attrs)}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{h.Handler.WithGroup(name)}
}

func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func New(level slog.Level) *slog.Logger {
	return slog.New(&Handler{slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})})
}

func SetRequestID(ctx context.Context, reqID string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, reqID)
}

func RequestIDFromContext(ctx context.Context) string {
	v, _ := ctx.Value(ctxKeyRequestID).(string)
	return v
}

func SetUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ctxKeyUserID, userID)
}

func SetCallerService(ctx context.Context, callerService string) context.Context {
	return context.WithValue(ctx, ctxKeyCallerService, callerService)
}

func SetMethod(ctx context.Context, method string) context.Context {
	return context.WithValue(ctx, ctxKeyMethod, method)
}

func SetLogType(ctx context.Context, logType string) context.Context {
	return context.WithValue(ctx, ctxKeyLogType, logType)
}

func SetIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, ctxKeyIP, ip)
}

func SetURL(ctx context.Context, url string) context.Context {
	return context.WithValue(ctx, ctxKeyURL, url)
}
