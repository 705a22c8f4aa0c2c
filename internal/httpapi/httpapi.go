// Package httpapi holds the JSON response helpers, error mapping and request
// logging shared by every API handler.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/georgemunganga/storeadmin/internal/db"
	"github.com/georgemunganga/storeadmin/internal/validation"
)

var (
	// ErrUnauthorized means the request carries no valid session.
	ErrUnauthorized = errors.New("unauthenticated")
	// ErrForbidden means the caller does not own the addressed store.
	ErrForbidden = errors.New("forbidden")
)

// ErrorBody is the JSON shape of every non-2xx API response.
type ErrorBody struct {
	Error  string            `json:"error"`
	Code   string            `json:"code"`
	Fields validation.Errors `json:"fields,omitempty"`
}

// WriteJSON marshals v as JSON and writes it with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes a structured JSON error response.
func WriteError(w http.ResponseWriter, status int, code, message string) {
	WriteJSON(w, status, ErrorBody{Error: message, Code: code})
}

// DecodeJSON decodes the request body into v.
func DecodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// DecodeOrReject decodes the body into v and writes a 400 on failure.
func DecodeOrReject(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := DecodeJSON(r, v); err != nil {
		WriteError(w, http.StatusBadRequest, "INVALID_JSON", "malformed request body")
		return false
	}
	return true
}

// ParseUUID extracts and validates a UUID path parameter.
func ParseUUID(w http.ResponseWriter, r *http.Request, paramName string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, paramName)
	id, err := uuid.Parse(raw)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "INVALID_ID", "invalid id: "+raw)
		return uuid.Nil, false
	}
	return id, true
}

// WriteServiceError maps service and repository errors to HTTP responses.
// Only unexpected errors are logged.
func WriteServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		WriteJSON(w, http.StatusBadRequest, ErrorBody{Error: "validation failed", Code: "VALIDATION_ERROR", Fields: verrs})
	case errors.Is(err, ErrUnauthorized):
		WriteError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "unauthenticated")
	case errors.Is(err, ErrForbidden):
		WriteError(w, http.StatusForbidden, "FORBIDDEN", "forbidden")
	case errors.Is(err, db.ErrNotFound):
		WriteError(w, http.StatusNotFound, "NOT_FOUND", "not found")
	case errors.Is(err, db.ErrReferenced):
		WriteError(w, http.StatusConflict, "REFERENCED", "record is still referenced by other records")
	case errors.Is(err, db.ErrDuplicate):
		WriteError(w, http.StatusConflict, "DUPLICATE", "record already exists")
	default:
		Logger(r.Context()).Error("internal error", zap.Error(err))
		WriteError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

type (
	loggerKey struct{}
	userKey   struct{}
)

// UserID returns the authenticated user id stored by the auth middleware.
func UserID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userKey{}).(uuid.UUID)
	return id, ok
}

// WithUserID returns a copy of ctx carrying the authenticated user id.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userKey{}, id)
}

// Logger returns the request-scoped logger, or a no-op logger outside a
// request.
func Logger(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*zap.Logger); ok {
		return l
	}
	return zap.NewNop()
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// RequestLogger logs one line per request and exposes a logger tagged with
// the chi request id to downstream handlers.
func RequestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqLogger := logger
			if id := middleware.GetReqID(r.Context()); id != "" {
				reqLogger = logger.With(zap.String("request_id", id))
			}
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(WithLogger(r.Context(), reqLogger)))
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			reqLogger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", status),
				zap.Int64("duration_ms", time.Since(start).Milliseconds()),
			)
		})
	}
}
