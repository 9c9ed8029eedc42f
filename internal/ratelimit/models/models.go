package models

import (
	"net/http"
	"strings"
	"time"
)

// Class groups endpoints that share a limit.
type Class string

const (
	// ClassGeneral covers every public route.
	ClassGeneral Class = "general"
	// ClassAuth covers /api/auth/*, where guessing passwords and OTPs is the threat.
	ClassAuth Class = "auth"
)

// ClassFor picks the class for a request path.
func ClassFor(r *http.Request) Class {
	if r.URL.Path == "/api/auth" || strings.HasPrefix(r.URL.Path, "/api/auth/") {
		return ClassAuth
	}
	return ClassGeneral
}

// Limit is the number of requests admitted per sliding window.
type Limit struct {
	Requests int
	Window   time.Duration
}

// Result is the outcome of one check.
type Result struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetAt    time.Time
	RetryAfter int // seconds, set when not allowed
	Degraded   bool
}

// Key scopes a counter to a class and client address.
func Key(class Class, ip string) string {
	return "ratelimit:" + string(class) + ":" + ip
}

// ExceededResponse is the 429 body.
type ExceededResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Error      string `json:"error"`
	RetryAfter int    `json:"retry_after"`
}
