package usecases

import (
	"context"
	"fmt"
	"sync"

	"booking-portal/internal/module/booking/models/entity"
)

var (
	ErrCheckoutCancelled = fmt.Errorf("payment cancelled by user")
	ErrCheckoutClosed    = fmt.Errorf("checkout already resolved")
	ErrCheckoutNotFound  = fmt.Errorf("checkout not found")
	ErrCheckoutExists    = fmt.Errorf("checkout already open")
	ErrOrderMismatch     = fmt.Errorf("payment result does not belong to this order")
	ErrCoordinatorClosed = fmt.Errorf("checkout coordinator shut down")
)

type outcome struct {
	payment entity.SignedPaymentResult
	err     error
}

type checkout struct {
	orderID  string
	result   chan outcome
	resolved bool
}

// Coordinator bridges the browser-hosted payment widget to the goroutine
// settling an attempt. Every checkout resolves exactly once, either with a
// signed result or with ErrCheckoutCancelled. There is no timeout.
type Coordinator struct {
	mu      sync.Mutex
	pending map[string]*checkout
	closed  bool
}

func NewCoordinator() *Coordinator {
	return &Coordinator{pending: map[string]*checkout{}}
}

// Open registers a checkout for the gateway order orderID under id.
func (c *Coordinator) Open(id, orderID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrCoordinatorClosed
	}
	if _, ok := c.pending[id]; ok {
		return ErrCheckoutExists
	}

	c.pending[id] = &checkout{orderID: orderID, result: make(chan outcome, 1)}
	return nil
}

// Complete delivers the widget's completion callback.
func (c *Coordinator) Complete(id string, payment entity.SignedPaymentResult) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	co, err := c.open(id)
	if err != nil {
		return err
	}
	if payment.RazorpayOrderID != co.orderID {
		return ErrOrderMismatch
	}

	co.resolve(outcome{payment: payment})
	return nil
}

// Dismiss delivers the widget's dismissal.
func (c *Coordinator) Dismiss(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	co, err := c.open(id)
	if err != nil {
		return err
	}

	co.resolve(outcome{err: ErrCheckoutCancelled})
	return nil
}

// Discard forgets a checkout nobody will wait on.
func (c *Coordinator) Discard(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.pending, id)
}

func (c *Coordinator) open(id string) (*checkout, error) {
	co, ok := c.pending[id]
	if !ok {
		return nil, ErrCheckoutNotFound
	}
	if co.resolved {
		return nil, ErrCheckoutClosed
	}
	return co, nil
}

// Wait blocks until the checkout resolves or ctx ends. The checkout is
// forgotten once Wait returns.
func (c *Coordinator) Wait(ctx context.Context, id string) (entity.SignedPaymentResult, error) {
	c.mu.Lock()
	co, ok := c.pending[id]
	c.mu.Unlock()
	if !ok {
		return entity.SignedPaymentResult{}, ErrCheckoutNotFound
	}

	defer func() {
		c.mu.Lock()
		delete(c.pending, id)
		c.mu.Unlock()
	}()

	select {
	case out := <-co.result:
		return out.payment, out.err
	case <-ctx.Done():
		return entity.SignedPaymentResult{}, ctx.Err()
	}
}

// Close resolves every open checkout with ErrCoordinatorClosed and refuses
// new ones.
func (c *Coordinator) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	for _, co := range c.pending {
		if !co.resolved {
			co.resolve(outcome{err: ErrCoordinatorClosed})
		}
	}
}

// resolve is called with the coordinator lock held.
func (co *checkout) resolve(out outcome) {
	co.resolved = true
	co.result <- out
}
