package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// the backend expects plain JSON numbers for money
	decimal.MarshalJSONWithoutQuotes = true
}

// TaxRate is applied to the cart total when an order is submitted.
var TaxRate = decimal.RequireFromString("0.18")

var (
	ErrEmptyCart       = fmt.Errorf("cart is empty")
	ErrNonPositiveCart = fmt.Errorf("cart total must be greater than zero")
)

type LineItem struct {
	OfferingID   int64           `json:"offering_id" validate:"required"`
	CategoryID   int64           `json:"category_id" validate:"required"`
	TicketTypeID int64           `json:"ticket_type_id" validate:"required"`
	Quantity     int             `json:"quantity" validate:"gt=0"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
}

func (l LineItem) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is built by the customer and consumed once by a checkout attempt.
type Cart struct {
	Items     []LineItem
	VisitDate string
}

func (c Cart) GrandTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Tax is rounded to whole currency units, half away from zero.
func (c Cart) Tax() decimal.Decimal {
	return c.GrandTotal().Mul(TaxRate).Round(0)
}

func (c Cart) Total() decimal.Decimal {
	return c.GrandTotal().Add(c.Tax())
}

func (c Cart) TotalCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

func (c Cart) Validate() error {
	if len(c.Items) == 0 {
		return ErrEmptyCart
	}
	for _, item := range c.Items {
		if item.Quantity <= 0 || item.UnitPrice.IsNegative() {
			return fmt.Errorf("invalid line item for ticket type %d", item.TicketTypeID)
		}
	}
	if !c.GrandTotal().IsPositive() {
		return ErrNonPositiveCart
	}
	return nil
}

// SignedPaymentResult is what the checkout widget hands back on completion.
// It is also the body of the verification call.
type SignedPaymentResult struct {
	RazorpayOrderID   string `json:"razorpay_order_id" validate:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" validate:"required"`
	RazorpaySignature string `json:"razorpay_signature" validate:"required"`
}

// BookingResult is the one shape a booking takes inside the portal, whatever
// field names the backend used.
type BookingResult struct {
	ID            string          `json:"id"`
	CustomerName  string          `json:"customer_name"`
	CustomerPhone string          `json:"customer_phone"`
	CustomerEmail string          `json:"customer_email,omitempty"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	TaxAmount     decimal.Decimal `json:"tax_amount"`
	TotalCount    int             `json:"total_count"`
	BookingStatus string          `json:"booking_status"`
	PaymentStatus string          `json:"payment_status"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	VisitDate     string          `json:"visit_date"`
	ValidFrom     string          `json:"valid_from,omitempty"`
	ValidTo       string          `json:"valid_to,omitempty"`
	CreatedBy     string          `json:"created_by,omitempty"`
}

const (
	BookingPending   = "PENDING"
	BookingConfirmed = "CONFIRMED"
	BookingCancelled = "CANCELLED"
	BookingCompleted = "COMPLETED"
)

// Incident is a settlement failure kept for support follow-up.
type Incident struct {
	ID                int64           `db:"id"`
	AttemptID         string          `db:"attempt_id"`
	RazorpayOrderID   string          `db:"razorpay_order_id"`
	RazorpayPaymentID string          `db:"razorpay_payment_id"`
	CustomerName      string          `db:"customer_name"`
	CustomerPhone     string          `db:"customer_phone"`
	Amount            decimal.Decimal `db:"amount"`
	Stage             string          `db:"stage"`
	Kind              string          `db:"kind"`
	Reason            string          `db:"reason"`
	OccurredAt        time.Time       `db:"occurred_at"`
	CreatedAt         *time.Time      `db:"created_at"`
}
