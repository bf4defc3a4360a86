package entity

import "fmt"

var ErrIllegalTransition = fmt.Errorf("illegal booking state transition")

// BookingState is the position of a customer in the booking flow.
type BookingState string

const (
	StateIdle              BookingState = "idle"
	StateOfferingsSelected BookingState = "offerings_selected"
	StateTicketsLoaded     BookingState = "tickets_loaded"
	StateBookingOpen       BookingState = "booking_open"
	StatePaymentInFlight   BookingState = "payment_in_flight"
	StateConfirmed         BookingState = "confirmed"
	StateCancelled         BookingState = "cancelled"
	StateFailed            BookingState = "failed"
)

var transitions = map[BookingState][]BookingState{
	StateIdle:              {StateOfferingsSelected},
	StateOfferingsSelected: {StateIdle, StateTicketsLoaded},
	StateTicketsLoaded:     {StateOfferingsSelected, StateBookingOpen},
	StateBookingOpen:       {StateTicketsLoaded, StatePaymentInFlight, StateFailed},
	StatePaymentInFlight:   {StateConfirmed, StateCancelled, StateFailed},
}

func (s BookingState) CanTransition(to BookingState) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition returns to, or ErrIllegalTransition when the table forbids it.
func (s BookingState) Transition(to BookingState) (BookingState, error) {
	if !s.CanTransition(to) {
		return s, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, s, to)
	}
	return to, nil
}

func (s BookingState) Terminal() bool {
	switch s {
	case StateConfirmed, StateCancelled, StateFailed:
		return true
	}
	return false
}
