package response

import (
	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"booking-portal/internal/module/ticket/models/entity"
)

// Validation is the backend's raw answer, turned into an
// entity.ValidationResult before anything acts on it.
type Validation struct {
	Status        entity.Status         `json:"status"`
	Message       string                `json:"message"`
	CanEnter      bool                  `json:"canEnter"`
	TicketDetails *entity.TicketDetails `json:"ticketDetails"`
}

func (v Validation) Result() entity.ValidationResult {
	return entity.NewValidationResult(v.Status, v.CanEnter, v.Message, v.TicketDetails)
}

type TicketType struct {
	TypeID       int64           `json:"type_id"`
	CategoryID   int64           `json:"category_id"`
	CategoryName string          `json:"category_name"`
	OfferingID   int64           `json:"offering_id"`
	OfferingName string          `json:"offering_name"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	IsActive     bool            `json:"is_active"`
}

type Ticket struct {
	TicketID   int64           `json:"ticketId"`
	TicketCode string          `json:"ticketCode"`
	Booking    json.RawMessage `json:"booking,omitempty"`
	TicketType *TicketType     `json:"ticketType,omitempty"`
	QRCode     string          `json:"qrCode"`
	CreateDate string          `json:"createDate"`
	IsActive   bool            `json:"isActive"`
	CreatedBy  string          `json:"createdBy"`
}
