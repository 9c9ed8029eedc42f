// Package httputil holds the JSON envelope helpers shared by every handler.
//
// Successful responses carry "success": true plus handler specific fields.
// Failures always have the shape {"success": false, "message": ..., "error": code}.
package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	dErrors "museum/pkg/domain-errors"
	"museum/pkg/requestcontext"
)

// maxBodyBytes caps decoded request bodies.
const maxBodyBytes = 1 << 20

// ErrorResponse is the failure envelope.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Validatable is implemented by request DTOs that normalize and check themselves.
type Validatable interface {
	Validate() error
}

// WriteJSON encodes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError maps a domain error onto a status code and the failure envelope.
// Errors without a code are treated as internal and their text is not exposed.
func WriteError(w http.ResponseWriter, err error) {
	status, code, msg := http.StatusInternalServerError, dErrors.CodeInternal, "Internal server error"
	if de, ok := dErrors.As(err); ok {
		status = StatusFor(de.Code)
		code = de.Code
		if status != http.StatusInternalServerError {
			msg = de.Message
		}
	}
	WriteJSON(w, status, ErrorResponse{Success: false, Message: msg, Error: string(code)})
}

// StatusFor returns the HTTP status for a domain error code.
func StatusFor(code dErrors.Code) int {
	switch code {
	case dErrors.CodeBadRequest, dErrors.CodeValidation, dErrors.CodeInvalidInput:
		return http.StatusBadRequest
	case dErrors.CodeUnauthorized:
		return http.StatusUnauthorized
	case dErrors.CodeForbidden:
		return http.StatusForbidden
	case dErrors.CodeNotFound:
		return http.StatusNotFound
	case dErrors.CodeConflict:
		return http.StatusConflict
	case dErrors.CodeTooManyRequests:
		return http.StatusTooManyRequests
	case dErrors.CodeBadGateway:
		return http.StatusBadGateway
	case dErrors.CodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// DecodeJSON reads a JSON body into dst, rejecting oversized or malformed input.
func DecodeJSON(r *http.Request, dst any) error {
	body := http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return dErrors.New(dErrors.CodeBadRequest, "request body is required")
		}
		return dErrors.New(dErrors.CodeBadRequest, "invalid JSON payload")
	}
	return nil
}

// DecodeAndPrepare decodes the body into a T and runs its Validate method when
// *T implements Validatable. On failure it writes the error response and
// returns false.
func DecodeAndPrepare[T any](w http.ResponseWriter, r *http.Request, logger *slog.Logger, ctx context.Context, requestID string) (*T, bool) {
	var req T
	if err := DecodeJSON(r, &req); err != nil {
		logger.WarnContext(ctx, "failed to decode request",
			"error", err,
			"request_id", requestID,
		)
		WriteError(w, err)
		return nil, false
	}
	if v, ok := any(&req).(Validatable); ok {
		if err := v.Validate(); err != nil {
			logger.WarnContext(ctx, "request validation failed",
				"error", err,
				"request_id", requestID,
			)
			WriteError(w, err)
			return nil, false
		}
	}
	return &req, true
}

// WriteServiceError logs a failed operation at Warn for client errors and at
// Error otherwise, then writes the failure envelope.
func WriteServiceError(w http.ResponseWriter, logger *slog.Logger, ctx context.Context, op string, err error) {
	requestID := requestcontext.RequestID(ctx)
	if de, ok := dErrors.As(err); ok && StatusFor(de.Code) < http.StatusInternalServerError {
		logger.WarnContext(ctx, op+" rejected",
			"error", err,
			"request_id", requestID,
		)
	} else {
		logger.ErrorContext(ctx, op+" failed",
			"error", err,
			"request_id", requestID,
		)
	}
	WriteError(w, err)
}
