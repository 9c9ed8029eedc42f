// Package auth reads the session cookie, validates it and exposes the user id
// to handlers through requestcontext.
package auth

import (
	"log/slog"
	"net/http"
	"time"

	dErrors "museum/pkg/domain-errors"
	"museum/pkg/platform/httputil"
	"museum/pkg/requestcontext"
)

// CookieName is the session cookie the front end already relies on.
const CookieName = "token"

// SessionValidator resolves a cookie value to a user id.
type SessionValidator interface {
	ValidateSession(token string) (int64, error)
}

// Cookie describes how the session cookie is written. In production the
// front end lives on another origin, so the cookie must be Secure with
// SameSite=None; elsewhere SameSite=Strict.
type Cookie struct {
	Domain     string
	Production bool
	MaxAge     time.Duration
}

func (c Cookie) base() *http.Cookie {
	sameSite := http.SameSiteStrictMode
	if c.Production {
		sameSite = http.SameSiteNoneMode
	}
	return &http.Cookie{
		Name:     CookieName,
		Path:     "/",
		Domain:   c.Domain,
		HttpOnly: true,
		Secure:   c.Production,
		SameSite: sameSite,
	}
}

// Set writes the session cookie carrying token.
func (c Cookie) Set(w http.ResponseWriter, token string, now time.Time) {
	cookie := c.base()
	cookie.Value = token
	cookie.MaxAge = int(c.MaxAge.Seconds())
	cookie.Expires = now.Add(c.MaxAge)
	http.SetCookie(w, cookie)
}

// Clear expires the session cookie.
func (c Cookie) Clear(w http.ResponseWriter) {
	cookie := c.base()
	cookie.MaxAge = -1
	cookie.Expires = time.Unix(0, 0)
	http.SetCookie(w, cookie)
}

// RequireSession rejects requests without a valid session cookie with 401.
func RequireSession(validator SessionValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			requestID := requestcontext.RequestID(ctx)

			cookie, err := r.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				logger.WarnContext(ctx, "unauthorized access - missing session cookie",
					"request_id", requestID,
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "Unauthorized Login Again"))
				return
			}

			userID, err := validator.ValidateSession(cookie.Value)
			if err != nil {
				logger.WarnContext(ctx, "unauthorized access - invalid session",
					"error", err,
					"request_id", requestID,
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "Unauthorized Login Again"))
				return
			}

			next.ServeHTTP(w, r.WithContext(requestcontext.WithUserID(ctx, userID)))
		})
	}
}

// OptionalSession attaches the user id when a valid cookie is present and
// otherwise passes the request through untouched.
func OptionalSession(validator SessionValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
				if userID, err := validator.ValidateSession(cookie.Value); err == nil {
					r = r.WithContext(requestcontext.WithUserID(r.Context(), userID))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
