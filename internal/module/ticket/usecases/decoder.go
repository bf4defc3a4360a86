package usecases

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/goccy/go-json"
)

const (
	ticketMarker  = "TKT-"
	ticketSegment = "TICKET:"
)

var (
	ErrInvalidQR = fmt.Errorf("invalid QR code")

	ticketPattern = regexp.MustCompile(`TKT-[a-zA-Z0-9\-]+`)
)

type qrPayload struct {
	TicketCode      string `json:"ticketCode"`
	TicketCodeSnake string `json:"ticket_code"`
}

// DecodeTicketCode extracts a ticket code from scanned text. Accepted shapes,
// in order: a bare code, a pipe-delimited KEY:value payload with a TICKET
// segment, a JSON object with ticketCode or ticket_code, and finally any
// TKT- code found in the text. A JSON object without a code is not searched
// further.
func DecodeTicketCode(raw string) (string, error) {
	data := strings.TrimSpace(raw)

	if strings.HasPrefix(data, ticketMarker) {
		return data, nil
	}

	if strings.Contains(data, ticketSegment) && strings.Contains(data, "|") {
		for _, part := range strings.Split(data, "|") {
			if strings.HasPrefix(part, ticketSegment) {
				code := strings.TrimSpace(strings.TrimPrefix(part, ticketSegment))
				if code == "" {
					return "", ErrInvalidQR
				}
				return code, nil
			}
		}
	}

	if strings.HasPrefix(data, "{") && strings.HasSuffix(data, "}") {
		var payload qrPayload
		if err := json.Unmarshal([]byte(data), &payload); err != nil {
			return "", ErrInvalidQR
		}
		switch {
		case payload.TicketCode != "":
			return payload.TicketCode, nil
		case payload.TicketCodeSnake != "":
			return payload.TicketCodeSnake, nil
		}
		return "", ErrInvalidQR
	}

	if code := ticketPattern.FindString(data); code != "" {
		return code, nil
	}

	return "", ErrInvalidQR
}
