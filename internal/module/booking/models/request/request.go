package request

import (
	"time"

	"github.com/shopspring/decimal"

	"booking-portal/internal/module/booking/models/entity"
)

type Customer struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
}

// Checkout is the cart a customer submits for payment.
type Checkout struct {
	Items     []entity.LineItem `json:"items" validate:"required,min=1,dive"`
	VisitDate string            `json:"visit_date" validate:"required,datetime=2006-01-02"`
	Customer  Customer          `json:"customer" validate:"required"`
}

func (c Checkout) Cart() entity.Cart {
	return entity.Cart{Items: c.Items, VisitDate: c.VisitDate}
}

// OrderRequest asks the backend for a gateway order. A fresh receipt is
// generated for every attempt.
type OrderRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Receipt       string          `json:"receipt"`
	Notes         string          `json:"notes,omitempty"`
	CustomerID    string          `json:"customerId,omitempty"`
	CustomerEmail string          `json:"customerEmail,omitempty"`
	CustomerPhone string          `json:"customerPhone,omitempty"`
}

type CreateBooking struct {
	CustomerName      string            `json:"customerName"`
	CustomerPhone     string            `json:"customerPhone"`
	CustomerEmail     string            `json:"customerEmail,omitempty"`
	BookingItems      []entity.LineItem `json:"booking_items"`
	TotalAmount       decimal.Decimal   `json:"totalAmount"`
	TaxAmount         decimal.Decimal   `json:"tax_amount"`
	TotalCount        int               `json:"totalCount"`
	BookingStatus     string            `json:"bookingStatus"`
	PaymentStatus     string            `json:"paymentStatus"`
	PaymentMethod     string            `json:"payment_method"`
	RazorpayPaymentID string            `json:"razorpay_payment_id"`
	RazorpayOrderID   string            `json:"razorpay_order_id"`
	VisitDate         string            `json:"visitDate"`
	ValidFrom         string            `json:"validFrom"`
	ValidTo           string            `json:"validTo"`
	CreatedBy         string            `json:"createdBy"`
}

type Reschedule struct {
	NewVisitDate string `json:"new_visit_date" validate:"required,datetime=2006-01-02"`
}

type RescheduleBody struct {
	NewVisitDate string `json:"newVisitDate"`
	UpdatedBy    string `json:"updatedBy"`
}

type PrefetchTickets struct {
	BookingID string `json:"booking_id" validate:"required"`
}

type BookingConfirmed struct {
	AttemptID         string          `json:"attempt_id"`
	BookingID         string          `json:"booking_id"`
	RazorpayOrderID   string          `json:"razorpay_order_id"`
	RazorpayPaymentID string          `json:"razorpay_payment_id"`
	CustomerPhone     string          `json:"customer_phone"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	OccurredAt        time.Time       `json:"occurred_at"`
}

type SettlementIncident struct {
	AttemptID         string          `json:"attempt_id" validate:"required"`
	Stage             string          `json:"stage" validate:"required,oneof=verify booking"`
	Kind              string          `json:"kind" validate:"required"`
	Reason            string          `json:"reason"`
	RazorpayOrderID   string          `json:"razorpay_order_id"`
	RazorpayPaymentID string          `json:"razorpay_payment_id"`
	CustomerName      string          `json:"customer_name"`
	CustomerPhone     string          `json:"customer_phone"`
	Amount            decimal.Decimal `json:"amount"`
	OccurredAt        time.Time       `json:"occurred_at" validate:"required"`
}

type PoisonedQueue struct {
	TopicTarget string      `json:"topic_target" validate:"required"`
	ErrorMsg    string      `json:"error_msg" validate:"required"`
	Payload     interface{} `json:"payload" validate:"required"`
}
