package api

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5/request"

	"github.com/samandr77/microservices/access/internal/entity"
	"github.com/samandr77/microservices/access/pkg/logger"
)

type Middleware struct {
	tokens TokenValidator
}

func NewMiddleware(tokens TokenValidator) *Middleware {
	return &Middleware{
		tokens: tokens,
	}
}

func (m *Middleware) Cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}

		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Origin, Accept, X-Service-Name, X-Request-Id")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) Log(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-Id")
		if reqID == "" {
			reqID = uuid.Must(uuid.NewV4()).String()
		}

		ctx := logger.SetRequestID(r.Context(), reqID)

		caller := r.Header.Get("X-Service-Name")
		if caller == "" {
			caller = "unknown"
		}

		ctx = logger.SetCallerService(ctx, caller)

		if ip, ok := ctx.Value(entity.CtxKeyIP{}).(string); ok && ip != "" {
			ctx = logger.SetIP(ctx, ip)
		}

		ctx = logger.SetURL(ctx, r.URL.String())
		ctx = logger.SetMethod(ctx, r.Method)
		ctx = logger.SetLogType(ctx, "webrequest")

		slog.InfoContext(ctx, "incoming request")

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func(ctx context.Context) {
			err := recover()
			if err != nil {
				slog.ErrorContext(ctx, "panic", "error", err, "stack", string(debug.Stack()))
				w.WriteHeader(http.StatusInternalServerError)
			}
		}(r.Context())
		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) WithIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var ip string

		if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
			ips := strings.Split(forwarded, ",")
			ip = strings.TrimSpace(ips[0])
		}

		if ip == "" {
			if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
				ip = strings.TrimSpace(realIP)
			}
		}

		if ip == "" {
			var err error

			ip, _, err = net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
		}

		ctx := context.WithValue(r.Context(), entity.CtxKeyIP{}, ip)
		ctx = logger.SetIP(ctx, ip)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Auth validates the bearer token locally and puts its subject into the context.
func (m *Middleware) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.SetLogType(r.Context(), "auth")

		token, err := request.BearerExtractor{}.ExtractToken(r)
		if err != nil {
			slog.WarnContext(ctx, "auth: bearer token extract failed")
			sendErr(ctx, w, http.StatusUnauthorized, err, entity.ErrMsgMissingTokenText)

			return
		}

		user, err := m.tokens.Validate(token)
		if err != nil {
			if errors.Is(err, entity.ErrInvalidToken) || errors.Is(err, entity.ErrTokenExpired) {
				slog.WarnContext(ctx, "auth: token rejected", "error", err)
				sendErr(ctx, w, http.StatusUnauthorized, err, entity.ErrMsgUnauthorized)
			} else {
				sendErr(ctx, w, http.StatusInternalServerError, err, entity.ErrMsgInternal)
			}

			return
		}

		if user.IsBlocked {
			slog.WarnContext(ctx, "auth: blocked user", "user_id", user.ID)
			sendErr(ctx, w, http.StatusForbidden, entity.ErrUserBlocked, entity.ErrMsgUserBlocked)

			return
		}

		ctx = logger.SetUserID(ctx, user.ID.String())
		ctx = entity.SetUserIDToContext(ctx, user.ID)
		ctx = entity.SetTokenToContext(ctx, token)

		ctx = logger.SetLogType(ctx, "webrequest")

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
