package models

// Kind tells donations and shop payments apart. It is sent to the gateway as
// metadata.transaction_type so webhooks can be routed back.
type Kind string

const (
	KindDonation Kind = "donation"
	KindPayment  Kind = "payment"
)

func (k Kind) IsValid() bool {
	return k == KindDonation || k == KindPayment
}

// Status is the lifecycle of a payment record. Records start pending and only
// move through gateway verification.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusFailed, StatusCancelled:
		return true
	}
	return false
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed || s == StatusCancelled
}

// StatusFromGateway maps a Paystack transaction status onto a record status.
// Anything the gateway still considers in flight stays pending.
func StatusFromGateway(gatewayStatus string) Status {
	switch gatewayStatus {
	case "success":
		return StatusCompleted
	case "failed":
		return StatusFailed
	case "abandoned":
		return StatusCancelled
	default:
		return StatusPending
	}
}
