package request

import "time"

type Scan struct {
	// Raw is the scanned text as read. Empty input is rejected by the
	// scanner like any other undecodable code.
	Raw string `json:"raw"`
}

type Search struct {
	TicketCode    string `query:"ticketCode"`
	CustomerName  string `query:"customerName"`
	CustomerEmail string `query:"customerEmail" validate:"omitempty,email"`
	CustomerPhone string `query:"customerPhone"`
	BookingID     string `query:"bookingId" validate:"omitempty,numeric"`
}

func (s Search) Empty() bool {
	return s.TicketCode == "" && s.CustomerName == "" && s.CustomerEmail == "" &&
		s.CustomerPhone == "" && s.BookingID == ""
}

type TicketEntryRecorded struct {
	TicketCode string    `json:"ticket_code"`
	Gate       string    `json:"gate"`
	StaffID    string    `json:"staff_id"`
	EntryTime  string    `json:"entry_time,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
