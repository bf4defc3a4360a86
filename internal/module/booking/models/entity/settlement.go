package entity

import "fmt"

type SettlementStage string

const (
	StageVerify  SettlementStage = "verify"
	StageBooking SettlementStage = "booking"
)

type FailureKind string

const (
	// FailureRejected means the backend refused the payment signature.
	FailureRejected FailureKind = "rejected"
	// FailureBookingMissing means the payment verified but no booking exists.
	FailureBookingMissing FailureKind = "booking_missing"
	// FailureTransport means a stage got no answer from the backend.
	FailureTransport FailureKind = "transport"
)

// SettlementError classifies how settling a signed payment failed.
type SettlementError struct {
	Stage  SettlementStage
	Kind   FailureKind
	Reason string
	Err    error
}

func (e *SettlementError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("settlement %s %s: %s: %v", e.Stage, e.Kind, e.Reason, e.Err)
	}
	return fmt.Sprintf("settlement %s %s: %s", e.Stage, e.Kind, e.Reason)
}

func (e *SettlementError) Unwrap() error {
	return e.Err
}

// Severe is true once money has moved: any failure after verification
// succeeded leaves a captured payment without a booking.
func (e *SettlementError) Severe() bool {
	return e.Stage == StageBooking
}

// UserMessage is the wording shown to the customer for this failure.
func (e *SettlementError) UserMessage() string {
	switch {
	case e.Severe():
		return "Payment verified but booking failed. Please contact support."
	case e.Kind == FailureRejected:
		return "Payment verification failed. Please contact support."
	default:
		return "Payment verification failed. Please try again or contact support."
	}
}
