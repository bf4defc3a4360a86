package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lithammer/shortuuid/v3"

	"booking-portal/internal/module/booking/models/entity"
	"booking-portal/internal/module/booking/models/request"
	"booking-portal/internal/module/booking/models/response"
	"booking-portal/internal/pkg/errors"
	"booking-portal/internal/pkg/guard"
	"booking-portal/internal/pkg/messagestream"
	"booking-portal/internal/pkg/metrics"
)

func guardKey(customer request.Customer) string {
	return "checkout:" + customer.Phone
}

// StartCheckout creates the gateway order for a cart and opens the checkout
// the browser widget reports back to. Settlement continues in the
// background once the widget completes.
func (u *usecase) StartCheckout(ctx context.Context, req *request.Checkout) (response.Attempt, error) {
	if err := u.validate.Struct(req); err != nil {
		return response.Attempt{}, errors.BadRequest(err.Error())
	}

	cart := req.Cart()
	if err := cart.Validate(); err != nil {
		return response.Attempt{}, errors.BadRequest(err.Error())
	}

	release, err := u.guard.Acquire(ctx, guardKey(req.Customer))
	if err != nil {
		if errors.Is(err, guard.ErrInFlight) {
			return response.Attempt{}, errors.Conflict("a payment for this customer is already in progress")
		}
		u.log.Ctx(ctx).Error(fmt.Sprintf("error acquire checkout guard: %v", err))
		return response.Attempt{}, errors.InternalServerError("Payment could not be started. Please try again.")
	}

	attempt := newAttempt(uuid.NewString(), cart, req.Customer, u.opts.Now())
	u.attempts.add(attempt, u.opts.Now())

	order, err := u.initiate(ctx, cart, req.Customer)
	if err != nil {
		_ = attempt.fail(errors.Message(err), false, u.opts.Now())
		release()
		metrics.CheckoutOutcomes.WithLabelValues("order_failed").Inc()
		return attempt.View(), err
	}

	if err := u.coordinator.Open(attempt.ID, order.RazorpayOrderID); err != nil {
		_ = attempt.fail("Payment failed. Please try again.", false, u.opts.Now())
		release()
		return attempt.View(), errors.InternalServerError(fmt.Sprintf("error open checkout: %v", err))
	}

	if err := attempt.paymentInFlight(order, u.opts.Now()); err != nil {
		u.coordinator.Discard(attempt.ID)
		release()
		return attempt.View(), errors.InternalServerError(err.Error())
	}

	// the request ends long before the customer finishes paying
	go u.run(context.WithoutCancel(ctx), attempt, release)

	return attempt.View(), nil
}

// initiate builds a fresh order for the cart and submits it. It never talks
// to the gateway.
func (u *usecase) initiate(ctx context.Context, cart entity.Cart, customer request.Customer) (response.PaymentResponse, error) {
	order := request.OrderRequest{
		Amount:        cart.Total(),
		Currency:      u.opts.Currency,
		Receipt:       fmt.Sprintf("booking_%d_%s", u.opts.Now().UnixMilli(), shortuuid.New()),
		Notes:         "Ticket booking payment",
		CustomerID:    customer.Phone,
		CustomerEmail: customer.Email,
		CustomerPhone: customer.Phone,
	}

	resp, err := u.repo.CreateOrder(ctx, order)
	if err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error create payment order %s: %v", order.Receipt, err))
		if errors.IsTransport(err) {
			return response.PaymentResponse{}, errors.BadGateway("Payment failed. Please try again.")
		}
		return response.PaymentResponse{}, errors.UnprocessableEntity(errors.Message(err))
	}

	if !resp.Success {
		msg := resp.Message
		if msg == "" {
			msg = "Failed to create payment order"
		}
		u.log.Ctx(ctx).Warn(fmt.Sprintf("payment order %s refused: %s", order.Receipt, msg))
		return response.PaymentResponse{}, errors.UnprocessableEntity(msg)
	}

	return resp, nil
}

func (u *usecase) run(ctx context.Context, attempt *Attempt, release func()) {
	defer release()

	payment, err := u.coordinator.Wait(ctx, attempt.ID)
	if err != nil {
		if errors.Is(err, ErrCheckoutCancelled) {
			_ = attempt.transition(entity.StateCancelled, "Payment cancelled by user", u.opts.Now())
			metrics.CheckoutOutcomes.WithLabelValues("cancelled").Inc()
			return
		}
		u.log.Ctx(ctx).Warn(fmt.Sprintf("checkout %s abandoned: %v", attempt.ID, err))
		_ = attempt.fail("Payment failed. Please try again.", false, u.opts.Now())
		metrics.CheckoutOutcomes.WithLabelValues("abandoned").Inc()
		return
	}

	booking, err := u.settle(ctx, attempt.Cart, attempt.Customer, payment)
	if err != nil {
		var se *entity.SettlementError
		if !errors.As(err, &se) {
			se = &entity.SettlementError{Stage: entity.StageVerify, Kind: entity.FailureTransport, Reason: "unexpected failure", Err: err}
		}
		u.log.Ctx(ctx).Error(fmt.Sprintf("settlement of attempt %s failed: %v", attempt.ID, se))
		_ = attempt.fail(se.UserMessage(), se.Severe(), u.opts.Now())
		metrics.CheckoutOutcomes.WithLabelValues(string(se.Stage) + "_" + string(se.Kind)).Inc()
		u.reportIncident(ctx, attempt, payment, se)
		return
	}

	if err := attempt.confirm(booking.ID, u.opts.Now()); err != nil {
		u.log.Ctx(ctx).Error(err.Error())
	}
	metrics.CheckoutOutcomes.WithLabelValues("confirmed").Inc()

	u.announce(ctx, attempt, payment, booking)
}

func (u *usecase) announce(ctx context.Context, attempt *Attempt, payment entity.SignedPaymentResult, booking entity.BookingResult) {
	event := request.BookingConfirmed{
		AttemptID:         attempt.ID,
		BookingID:         booking.ID,
		RazorpayOrderID:   payment.RazorpayOrderID,
		RazorpayPaymentID: payment.RazorpayPaymentID,
		CustomerPhone:     attempt.Customer.Phone,
		TotalAmount:       attempt.Cart.Total(),
		OccurredAt:        u.opts.Now(),
	}
	if err := messagestream.PublishJSON(u.publish, messagestream.TopicBookingConfirmed, event); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error publish booking confirmed %s: %v", booking.ID, err))
	}

	if err := u.enqueuePrefetch(ctx, booking.ID); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error enqueue ticket prefetch %s: %v", booking.ID, err))
	}
}

func (u *usecase) reportIncident(ctx context.Context, attempt *Attempt, payment entity.SignedPaymentResult, se *entity.SettlementError) {
	incident := request.SettlementIncident{
		AttemptID:         attempt.ID,
		Stage:             string(se.Stage),
		Kind:              string(se.Kind),
		Reason:            se.Reason,
		RazorpayOrderID:   payment.RazorpayOrderID,
		RazorpayPaymentID: payment.RazorpayPaymentID,
		CustomerName:      attempt.Customer.Name,
		CustomerPhone:     attempt.Customer.Phone,
		Amount:            attempt.Cart.Total(),
		OccurredAt:        u.opts.Now(),
	}
	if err := messagestream.PublishJSON(u.publish, messagestream.TopicSettlementIncident, incident); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error publish settlement incident %s: %v", attempt.ID, err))
	}
}

func (u *usecase) GetAttempt(ctx context.Context, attemptID string) (response.Attempt, error) {
	attempt, ok := u.attempts.get(attemptID)
	if !ok {
		return response.Attempt{}, errors.NotFound("checkout attempt not found")
	}
	return attempt.View(), nil
}

func (u *usecase) CompleteCheckout(ctx context.Context, attemptID string, payment *entity.SignedPaymentResult) error {
	if err := u.validate.Struct(payment); err != nil {
		return errors.BadRequest(err.Error())
	}
	return u.callback(attemptID, func() error {
		return u.coordinator.Complete(attemptID, *payment)
	})
}

func (u *usecase) DismissCheckout(ctx context.Context, attemptID string) error {
	return u.callback(attemptID, func() error {
		return u.coordinator.Dismiss(attemptID)
	})
}

func (u *usecase) callback(attemptID string, deliver func() error) error {
	if _, ok := u.attempts.get(attemptID); !ok {
		return errors.NotFound("checkout attempt not found")
	}

	err := deliver()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrOrderMismatch):
		return errors.BadRequest(err.Error())
	case errors.Is(err, ErrCheckoutClosed), errors.Is(err, ErrCheckoutNotFound):
		// the attempt exists, so its checkout already resolved
		return errors.Conflict(ErrCheckoutClosed.Error())
	default:
		return errors.InternalServerError(err.Error())
	}
}
