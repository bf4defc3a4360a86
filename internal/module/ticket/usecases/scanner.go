package usecases

import (
	"context"
	"fmt"
	"sync"
	"time"

	"booking-portal/internal/module/ticket/models/entity"
	"booking-portal/internal/pkg/errors"
)

var (
	ErrScanInProgress = fmt.Errorf("a scan is already being validated at this gate")
	ErrNotAdmitted    = fmt.Errorf("no admitted ticket at this gate")
)

const (
	reasonInvalidQR       = "Unable to extract ticket information from QR code"
	reasonValidationError = "Failed to validate ticket. Please try again."
	reasonRejected        = "Ticket validation failed"
)

// Checker is the backend side of a scan.
type Checker interface {
	ValidateTicket(ctx context.Context, ticketCode, staffID string) (entity.ValidationResult, error)
	RecordEntry(ctx context.Context, ticketCode, gate, staffID string) (entity.EntryResult, error)
}

// Scanner is the state machine of one gate:
// idle -> decoding -> validating -> admitted | rejected -> idle.
// Nothing survives a return to idle, so every admission is a fresh check.
type Scanner struct {
	gate       string
	checker    Checker
	rearmDelay time.Duration

	mu         sync.Mutex
	state      entity.ScanState
	code       string
	reason     string
	result     *entity.ValidationResult
	generation uint64
}

func NewScanner(gate string, checker Checker, rearmDelay time.Duration) *Scanner {
	return &Scanner{
		gate:       gate,
		checker:    checker,
		rearmDelay: rearmDelay,
		state:      entity.ScanIdle,
	}
}

// Scan decodes raw and asks the backend whether the ticket may enter.
// Decode failures are rejected without a backend call.
func (s *Scanner) Scan(ctx context.Context, raw, staffID string) (entity.ScanOutcome, error) {
	s.mu.Lock()
	if s.state == entity.ScanDecoding || s.state == entity.ScanValidating {
		s.mu.Unlock()
		return entity.ScanOutcome{}, ErrScanInProgress
	}
	s.clear()
	s.generation++
	gen := s.generation
	s.state = entity.ScanDecoding
	s.mu.Unlock()

	code, err := DecodeTicketCode(raw)
	if err != nil {
		return s.reject(gen, "", reasonInvalidQR, nil), nil
	}

	s.mu.Lock()
	s.state = entity.ScanValidating
	s.code = code
	s.mu.Unlock()

	result, err := s.checker.ValidateTicket(ctx, code, staffID)
	if err != nil {
		reason := reasonValidationError
		if !errors.IsTransport(err) {
			reason = errors.Message(err)
		}
		return s.reject(gen, code, reason, nil), nil
	}

	if !result.CanEnter() {
		reason := result.Message()
		if reason == "" {
			reason = reasonRejected
		}
		return s.reject(gen, code, reason, &result), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != gen {
		return s.outcome(), nil
	}
	s.state = entity.ScanAdmitted
	s.result = &result
	return s.outcome(), nil
}

func (s *Scanner) reject(gen uint64, code, reason string, result *entity.ValidationResult) entity.ScanOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generation != gen {
		return s.outcome()
	}
	s.state = entity.ScanRejected
	s.code = code
	s.reason = reason
	s.result = result

	if s.rearmDelay > 0 {
		time.AfterFunc(s.rearmDelay, func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if s.generation == gen && s.state == entity.ScanRejected {
				s.clear()
			}
		})
	}

	return s.outcome()
}

// RecordEntry records the admitted ticket's entry. The gate returns to idle
// whatever the backend answers; a failed entry needs a new scan.
func (s *Scanner) RecordEntry(ctx context.Context, staffID string) (entity.EntryResult, error) {
	s.mu.Lock()
	if s.state != entity.ScanAdmitted {
		s.mu.Unlock()
		return entity.EntryResult{}, ErrNotAdmitted
	}
	code := s.code
	if details := s.result.Details(); details != nil && details.TicketCode != "" {
		code = details.TicketCode
	}
	s.clear()
	s.generation++
	s.mu.Unlock()

	return s.checker.RecordEntry(ctx, code, s.gate, staffID)
}

// Reset re-arms the gate by hand.
func (s *Scanner) Reset() entity.ScanOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == entity.ScanAdmitted || s.state == entity.ScanRejected {
		s.clear()
		s.generation++
	}
	return s.outcome()
}

func (s *Scanner) Status() entity.ScanOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outcome()
}

// clear and outcome are called with s.mu held.
func (s *Scanner) clear() {
	s.state = entity.ScanIdle
	s.code = ""
	s.reason = ""
	s.result = nil
}

func (s *Scanner) outcome() entity.ScanOutcome {
	return entity.ScanOutcome{
		Gate:       s.gate,
		State:      s.state,
		TicketCode: s.code,
		Reason:     s.reason,
		Result:     s.result,
	}
}

// gates holds one scanner per gate, created on first use.
type gates struct {
	mu       sync.Mutex
	scanners map[string]*Scanner
	checker  Checker
	delay    time.Duration
}

func newGates(checker Checker, delay time.Duration) *gates {
	return &gates{scanners: map[string]*Scanner{}, checker: checker, delay: delay}
}

func (g *gates) get(gate string) *Scanner {
	g.mu.Lock()
	defer g.mu.Unlock()

	s, ok := g.scanners[gate]
	if !ok {
		s = NewScanner(gate, g.checker, g.delay)
		g.scanners[gate] = s
	}
	return s
}
