package entity

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// Status is the backend's verdict on a scanned ticket.
type Status string

const (
	StatusValid       Status = "VALID"
	StatusExpired     Status = "EXPIRED"
	StatusAlreadyUsed Status = "ALREADY_USED"
	StatusNotFound    Status = "NOT_FOUND"
	StatusInactive    Status = "INACTIVE"
	StatusWrongDate   Status = "WRONG_DATE"
	StatusSystemError Status = "SYSTEM_ERROR"
)

func (s Status) Known() bool {
	switch s {
	case StatusValid, StatusExpired, StatusAlreadyUsed, StatusNotFound,
		StatusInactive, StatusWrongDate, StatusSystemError:
		return true
	}
	return false
}

type TicketDetails struct {
	TicketID      int64           `json:"ticketId"`
	TicketCode    string          `json:"ticketCode"`
	CustomerName  string          `json:"customerName"`
	CustomerEmail string          `json:"customerEmail"`
	CustomerPhone string          `json:"customerPhone"`
	VisitDate     string          `json:"visitDate"`
	CategoryName  string          `json:"categoryName"`
	OfferingName  string          `json:"offeringName"`
	TicketPrice   decimal.Decimal `json:"ticketPrice"`
	BookedAt      string          `json:"bookedAt"`
	Used          bool            `json:"used"`
	LastUsedAt    string          `json:"lastUsedAt,omitempty"`
	BookingID     int64           `json:"bookingId"`
}

// ValidationResult can only be built by NewValidationResult, so CanEnter
// always agrees with Status.
type ValidationResult struct {
	status   Status
	message  string
	canEnter bool
	details  *TicketDetails
}

// NewValidationResult admits only when the backend both says VALID and
// allows entry. Any disagreement between the two fails closed.
func NewValidationResult(status Status, canEnter bool, message string, details *TicketDetails) ValidationResult {
	switch {
	case !status.Known():
		return ValidationResult{
			status:  StatusSystemError,
			message: fmt.Sprintf("unrecognised validation status %q", status),
			details: details,
		}
	case status == StatusValid && !canEnter:
		return ValidationResult{
			status:  StatusSystemError,
			message: "validation response is inconsistent, entry refused",
			details: details,
		}
	}

	return ValidationResult{
		status:   status,
		message:  message,
		canEnter: status == StatusValid,
		details:  details,
	}
}

func (r ValidationResult) Status() Status          { return r.status }
func (r ValidationResult) Message() string         { return r.message }
func (r ValidationResult) CanEnter() bool          { return r.canEnter }
func (r ValidationResult) Details() *TicketDetails { return r.details }

type validationJSON struct {
	Status        Status         `json:"status"`
	Message       string         `json:"message"`
	CanEnter      bool           `json:"canEnter"`
	TicketDetails *TicketDetails `json:"ticketDetails,omitempty"`
}

func (r ValidationResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(validationJSON{
		Status:        r.status,
		Message:       r.message,
		CanEnter:      r.canEnter,
		TicketDetails: r.details,
	})
}

// ScanState is the position of a gate scanner.
type ScanState string

const (
	ScanIdle       ScanState = "idle"
	ScanDecoding   ScanState = "decoding"
	ScanValidating ScanState = "validating"
	ScanAdmitted   ScanState = "admitted"
	ScanRejected   ScanState = "rejected"
)

// ScanOutcome is what a gate shows after a scan.
type ScanOutcome struct {
	Gate       string            `json:"gate"`
	State      ScanState         `json:"state"`
	TicketCode string            `json:"ticket_code,omitempty"`
	Reason     string            `json:"reason,omitempty"`
	Result     *ValidationResult `json:"result,omitempty"`
}

type EntryResult struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	TicketCode string `json:"ticketCode"`
	EntryTime  string `json:"entryTime,omitempty"`
	GateNumber string `json:"gateNumber,omitempty"`
	StaffID    string `json:"staffId,omitempty"`
}
