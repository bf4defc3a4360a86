package usecases

import (
	"context"
	"fmt"

	"booking-portal/internal/module/booking/models/entity"
	"booking-portal/internal/module/booking/models/request"
	"booking-portal/internal/pkg/errors"
)

// VerifiedPayment proves the backend accepted a payment signature. Only
// verify can produce one, so a booking request cannot carry payment ids
// that were never verified.
type VerifiedPayment struct {
	payment entity.SignedPaymentResult
}

func (u *usecase) verify(ctx context.Context, payment entity.SignedPaymentResult) (VerifiedPayment, error) {
	resp, err := u.repo.VerifyPayment(ctx, payment)
	if err != nil {
		return VerifiedPayment{}, &entity.SettlementError{
			Stage:  entity.StageVerify,
			Kind:   entity.FailureTransport,
			Reason: errors.Message(err),
			Err:    err,
		}
	}

	if !resp.Success {
		reason := resp.Message
		if reason == "" {
			reason = "payment verification failed"
		}
		return VerifiedPayment{}, &entity.SettlementError{
			Stage:  entity.StageVerify,
			Kind:   entity.FailureRejected,
			Reason: reason,
		}
	}

	return VerifiedPayment{payment: payment}, nil
}

// BuildBookingRequest derives the booking for a verified payment.
func BuildBookingRequest(cart entity.Cart, customer request.Customer, proof VerifiedPayment) request.CreateBooking {
	return request.CreateBooking{
		CustomerName:      customer.Name,
		CustomerPhone:     customer.Phone,
		CustomerEmail:     customer.Email,
		BookingItems:      cart.Items,
		TotalAmount:       cart.Total(),
		TaxAmount:         cart.Tax(),
		TotalCount:        cart.TotalCount(),
		BookingStatus:     entity.BookingConfirmed,
		PaymentStatus:     "PAID",
		PaymentMethod:     "razorpay",
		RazorpayPaymentID: proof.payment.RazorpayPaymentID,
		RazorpayOrderID:   proof.payment.RazorpayOrderID,
		VisitDate:         cart.VisitDate,
		ValidFrom:         cart.VisitDate,
		ValidTo:           cart.VisitDate,
		CreatedBy:         "online-customer",
	}
}

// settle verifies the payment and, only when the backend accepted it,
// creates the booking. Failures come back as *entity.SettlementError.
func (u *usecase) settle(ctx context.Context, cart entity.Cart, customer request.Customer, payment entity.SignedPaymentResult) (entity.BookingResult, error) {
	proof, err := u.verify(ctx, payment)
	if err != nil {
		return entity.BookingResult{}, err
	}

	record, err := u.repo.CreateBooking(ctx, BuildBookingRequest(cart, customer, proof))
	if err != nil {
		kind := entity.FailureBookingMissing
		if errors.IsTransport(err) {
			kind = entity.FailureTransport
		}
		return entity.BookingResult{}, &entity.SettlementError{
			Stage:  entity.StageBooking,
			Kind:   kind,
			Reason: errors.Message(err),
			Err:    err,
		}
	}

	booking, ok := record.Normalize()
	if !ok {
		return entity.BookingResult{}, &entity.SettlementError{
			Stage:  entity.StageBooking,
			Kind:   entity.FailureBookingMissing,
			Reason: fmt.Sprintf("booking for order %s carried no id", payment.RazorpayOrderID),
		}
	}

	return booking, nil
}
