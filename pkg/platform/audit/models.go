// Package audit records account and payment actions that matter for security
// review. Events are appended to a Store, synchronously or through a bounded
// buffer drained in the background.
package audit

import (
	"context"
	"time"
)

// Category classifies events by purpose.
type Category string

const (
	// CategoryCompliance covers account lifecycle changes.
	CategoryCompliance Category = "compliance"
	// CategorySecurity covers failed or rejected attempts.
	CategorySecurity Category = "security"
	// CategoryOperations covers routine activity.
	CategoryOperations Category = "operations"
)

type Action string

const (
	ActionUserRegistered  Action = "user_registered"
	ActionAccountVerified Action = "account_verified"
	ActionPasswordReset   Action = "password_reset"
	ActionLoginSucceeded  Action = "login_succeeded"
	ActionAuthFailed      Action = "auth_failed"
	ActionOTPIssued       Action = "otp_issued"
	ActionWebhookRejected Action = "webhook_rejected"
	ActionPaymentSettled  Action = "payment_settled"
)

var actionCategories = map[Action]Category{
	ActionUserRegistered:  CategoryCompliance,
	ActionAccountVerified: CategoryCompliance,
	ActionPasswordReset:   CategorySecurity,
	ActionAuthFailed:      CategorySecurity,
	ActionWebhookRejected: CategorySecurity,
	ActionLoginSucceeded:  CategoryOperations,
	ActionOTPIssued:       CategoryOperations,
	ActionPaymentSettled:  CategoryOperations,
}

// Category returns the category for a. Unknown actions are operational.
func (a Action) Category() Category {
	if c, ok := actionCategories[a]; ok {
		return c
	}
	return CategoryOperations
}

// Event is one recorded action. UserID is zero when no account is known,
// e.g. a login attempt for an unregistered email.
type Event struct {
	Category  Category
	Action    Action
	Timestamp time.Time
	UserID    int64
	Email     string
	// Subject names the thing acted on when it is not the user, such as a
	// payment reference.
	Subject   string
	Reason    string
	RequestID string
	ClientIP  string
	// Device summarizes the client's user agent, e.g. "Chrome on Windows 10".
	Device string
}

// Store persists events.
type Store interface {
	Append(ctx context.Context, event Event) error
}
