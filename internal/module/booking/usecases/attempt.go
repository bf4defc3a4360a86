package usecases

import (
	"fmt"
	"sync"
	"time"

	"booking-portal/internal/module/booking/models/entity"
	"booking-portal/internal/module/booking/models/request"
	"booking-portal/internal/module/booking/models/response"
)

// Attempt is one submission of a cart, from order creation to a terminal
// state. done is closed when the attempt becomes terminal.
type Attempt struct {
	ID       string
	Cart     entity.Cart
	Customer request.Customer

	mu        sync.Mutex
	state     entity.BookingState
	order     response.PaymentResponse
	opened    bool
	bookingID string
	message   string
	severe    bool
	createdAt time.Time
	updatedAt time.Time
	done      chan struct{}
}

func newAttempt(id string, cart entity.Cart, customer request.Customer, now time.Time) *Attempt {
	return &Attempt{
		ID:        id,
		Cart:      cart,
		Customer:  customer,
		state:     entity.StateBookingOpen,
		createdAt: now,
		updatedAt: now,
		done:      make(chan struct{}),
	}
}

func (a *Attempt) Done() <-chan struct{} {
	return a.done
}

func (a *Attempt) State() entity.BookingState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

func (a *Attempt) transition(to entity.BookingState, message string, now time.Time) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	next, err := a.state.Transition(to)
	if err != nil {
		return fmt.Errorf("attempt %s: %w", a.ID, err)
	}

	a.state = next
	a.message = message
	a.updatedAt = now
	if next.Terminal() {
		close(a.done)
	}
	return nil
}

func (a *Attempt) paymentInFlight(order response.PaymentResponse, now time.Time) error {
	a.mu.Lock()
	a.order = order
	a.opened = true
	a.mu.Unlock()
	return a.transition(entity.StatePaymentInFlight, "", now)
}

func (a *Attempt) confirm(bookingID string, now time.Time) error {
	a.mu.Lock()
	a.bookingID = bookingID
	a.mu.Unlock()
	return a.transition(entity.StateConfirmed, "Payment verified and booking confirmed!", now)
}

func (a *Attempt) fail(message string, severe bool, now time.Time) error {
	a.mu.Lock()
	a.severe = severe
	a.mu.Unlock()
	return a.transition(entity.StateFailed, message, now)
}

func (a *Attempt) BookingID() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.bookingID
}

func (a *Attempt) orderID() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.order.RazorpayOrderID
}

func (a *Attempt) expired(now time.Time, retention time.Duration) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state.Terminal() && now.Sub(a.updatedAt) > retention
}

// View renders the attempt for the browser, including the widget options
// while payment is in flight.
func (a *Attempt) View() response.Attempt {
	a.mu.Lock()
	defer a.mu.Unlock()

	view := response.Attempt{
		AttemptID:   a.ID,
		State:       string(a.state),
		GrandTotal:  a.Cart.GrandTotal(),
		Tax:         a.Cart.Tax(),
		TotalAmount: a.Cart.Total(),
		BookingID:   a.bookingID,
		Message:     a.message,
		Severe:      a.severe,
		CreatedAt:   a.createdAt,
		UpdatedAt:   a.updatedAt,
	}

	if a.state == entity.StatePaymentInFlight && a.opened {
		view.Checkout = &response.CheckoutOptions{
			Key:         a.order.KeyID,
			Amount:      a.order.Amount.Shift(2).IntPart(),
			Currency:    a.order.Currency,
			Name:        "Eco Tourism Booking",
			Description: "Ticket Booking Payment",
			OrderID:     a.order.RazorpayOrderID,
			Prefill: response.Prefill{
				Name:    a.Customer.Name,
				Email:   a.Customer.Email,
				Contact: a.Customer.Phone,
			},
		}
	}

	if a.bookingID != "" {
		view.DownloadURL = fmt.Sprintf("/api/v1/checkout/%s/tickets.pdf", a.ID)
	}

	return view
}

// attempts keeps recent attempts so the browser can poll them. Terminal
// attempts are dropped after the retention period.
type attempts struct {
	mu        sync.Mutex
	byID      map[string]*Attempt
	retention time.Duration
}

func newAttempts(retention time.Duration) *attempts {
	return &attempts{byID: map[string]*Attempt{}, retention: retention}
}

func (r *attempts) add(a *Attempt, now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, old := range r.byID {
		if old.expired(now, r.retention) {
			delete(r.byID, id)
		}
	}
	r.byID[a.ID] = a
}

func (r *attempts) get(id string) (*Attempt, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.byID[id]
	return a, ok
}
