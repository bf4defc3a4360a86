package response

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"booking-portal/internal/module/booking/models/entity"
)

type PaymentResponse struct {
	Success         bool            `json:"success"`
	KeyID           string          `json:"keyId"`
	RazorpayOrderID string          `json:"razorpayOrderId"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	OrderID         string          `json:"orderId"`
	Receipt         string          `json:"receipt"`
	Status          string          `json:"status"`
	Message         string          `json:"message"`
}

type VerifyPayment struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// FlexID accepts an id sent either as a JSON number or a string.
type FlexID string

func (f *FlexID) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = ""
		return nil
	}
	*f = FlexID(strings.Trim(s, `"`))
	return nil
}

// BookingRecord is a booking as the backend returns it. Call sites of the
// backend disagree on the id and tax field names, so all variants are read
// and Normalize picks whichever is present.
type BookingRecord struct {
	BookingID     FlexID           `json:"bookingId"`
	ID            FlexID           `json:"id"`
	BookingIDAlt  FlexID           `json:"booking_id"`
	CustomerName  string           `json:"customerName"`
	CustomerPhone string           `json:"customerPhone"`
	CustomerEmail string           `json:"customerEmail"`
	TotalAmount   decimal.Decimal  `json:"totalAmount"`
	TaxAmount     *decimal.Decimal `json:"taxAmount"`
	TaxAmountAlt  *decimal.Decimal `json:"tax_amount"`
	TotalCount    int              `json:"totalCount"`
	BookingStatus string           `json:"bookingStatus"`
	PaymentStatus string           `json:"paymentStatus"`
	PaymentMethod string           `json:"paymentMethod"`
	PaymentAlt    string           `json:"payment_method"`
	VisitDate     string           `json:"visitDate"`
	ValidFrom     string           `json:"validFrom"`
	ValidTo       string           `json:"validTo"`
	CreatedBy     string           `json:"createdBy"`
}

// Normalize reports false when the record carries no id under any name.
func (r BookingRecord) Normalize() (entity.BookingResult, bool) {
	id := firstNonEmpty(string(r.BookingID), string(r.ID), string(r.BookingIDAlt))

	tax := decimal.Zero
	switch {
	case r.TaxAmount != nil:
		tax = *r.TaxAmount
	case r.TaxAmountAlt != nil:
		tax = *r.TaxAmountAlt
	}

	return entity.BookingResult{
		ID:            id,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		CustomerEmail: r.CustomerEmail,
		TotalAmount:   r.TotalAmount,
		TaxAmount:     tax,
		TotalCount:    r.TotalCount,
		BookingStatus: r.BookingStatus,
		PaymentStatus: r.PaymentStatus,
		PaymentMethod: firstNonEmpty(r.PaymentMethod, r.PaymentAlt),
		VisitDate:     r.VisitDate,
		ValidFrom:     r.ValidFrom,
		ValidTo:       r.ValidTo,
		CreatedBy:     r.CreatedBy,
	}, id != ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

type Prefill struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
}

// CheckoutOptions configures the browser-hosted payment widget. Amount is in
// the smallest currency unit.
type CheckoutOptions struct {
	Key         string  `json:"key"`
	Amount      int64   `json:"amount"`
	Currency    string  `json:"currency"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	OrderID     string  `json:"order_id"`
	Prefill     Prefill `json:"prefill"`
}

type Attempt struct {
	AttemptID   string           `json:"attempt_id"`
	State       string           `json:"state"`
	GrandTotal  decimal.Decimal  `json:"grand_total"`
	Tax         decimal.Decimal  `json:"tax"`
	TotalAmount decimal.Decimal  `json:"total_amount"`
	Checkout    *CheckoutOptions `json:"checkout,omitempty"`
	BookingID   string           `json:"booking_id,omitempty"`
	DownloadURL string           `json:"download_url,omitempty"`
	Message     string           `json:"message,omitempty"`
	Severe      bool             `json:"severe,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}
