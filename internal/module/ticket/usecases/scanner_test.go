package usecases_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booking-portal/internal/module/ticket/models/entity"
	"booking-portal/internal/module/ticket/usecases"
	"booking-portal/internal/pkg/errors"
)

type fakeChecker struct {
	mu        sync.Mutex
	validated []string
	entries   []string
	result    entity.ValidationResult
	err       error
	entryErr  error
	// block, when set, holds ValidateTicket until closed.
	block chan struct{}
}

func (f *fakeChecker) ValidateTicket(ctx context.Context, ticketCode, staffID string) (entity.ValidationResult, error) {
	f.mu.Lock()
	f.validated = append(f.validated, ticketCode)
	block := f.block
	f.mu.Unlock()

	if block != nil {
		<-block
	}
	return f.result, f.err
}

func (f *fakeChecker) RecordEntry(ctx context.Context, ticketCode, gate, staffID string) (entity.EntryResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, ticketCode+"@"+gate)
	if f.entryErr != nil {
		return entity.EntryResult{}, f.entryErr
	}
	return entity.EntryResult{Success: true, Message: "Entry recorded", TicketCode: ticketCode, GateNumber: gate, StaffID: staffID}, nil
}

func (f *fakeChecker) Validated() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.validated...)
}

func valid(code string) entity.ValidationResult {
	return entity.NewValidationResult(entity.StatusValid, true, "Ticket is valid", &entity.TicketDetails{TicketCode: code})
}

func TestScannerUndecodableQR(t *testing.T) {
	checker := &fakeChecker{result: valid("TKT-1")}
	s := usecases.NewScanner("GATE001", checker, 0)

	outcome, err := s.Scan(context.Background(), "hello world", "staff")

	require.NoError(t, err)
	assert.Equal(t, entity.ScanRejected, outcome.State)
	assert.Equal(t, "Unable to extract ticket information from QR code", outcome.Reason)
	assert.Empty(t, checker.Validated())
}

func TestScannerEmptyInput(t *testing.T) {
	checker := &fakeChecker{result: valid("TKT-1")}
	s := usecases.NewScanner("GATE001", checker, 0)

	outcome, err := s.Scan(context.Background(), "   ", "staff")

	require.NoError(t, err)
	assert.Equal(t, entity.ScanRejected, outcome.State)
	assert.Equal(t, "Unable to extract ticket information from QR code", outcome.Reason)
	assert.Empty(t, checker.Validated())
}

func TestScannerAdmitThenEnter(t *testing.T) {
	checker := &fakeChecker{result: valid("TKT-ABC-123")}
	s := usecases.NewScanner("GATE001", checker, 0)
	ctx := context.Background()

	outcome, err := s.Scan(ctx, `{"ticketCode":"TKT-ABC-123"}`, "staff")
	require.NoError(t, err)
	assert.Equal(t, entity.ScanAdmitted, outcome.State)
	assert.Equal(t, "TKT-ABC-123", outcome.TicketCode)
	require.NotNil(t, outcome.Result)
	assert.True(t, outcome.Result.CanEnter())

	entry, err := s.RecordEntry(ctx, "staff")
	require.NoError(t, err)
	assert.True(t, entry.Success)
	assert.Equal(t, []string{"TKT-ABC-123@GATE001"}, checker.entries)

	assert.Equal(t, entity.ScanIdle, s.Status().State)

	_, err = s.RecordEntry(ctx, "staff")
	assert.ErrorIs(t, err, usecases.ErrNotAdmitted)
}

func TestScannerRejections(t *testing.T) {
	tests := []struct {
		name   string
		result entity.ValidationResult
		err    error
		reason string
	}{
		{
			name:   "already used",
			result: entity.NewValidationResult(entity.StatusAlreadyUsed, false, "Ticket already used", nil),
			reason: "Ticket already used",
		},
		{
			name:   "inconsistent answer fails closed",
			result: entity.NewValidationResult(entity.StatusValid, false, "", nil),
			reason: "validation response is inconsistent, entry refused",
		},
		{
			name:   "transport failure",
			err:    errors.Transport(context.DeadlineExceeded),
			reason: "Failed to validate ticket. Please try again.",
		},
		{
			name:   "backend refusal",
			err:    errors.NotFound("Ticket not found"),
			reason: "Ticket not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := usecases.NewScanner("GATE002", &fakeChecker{result: tt.result, err: tt.err}, 0)

			outcome, err := s.Scan(context.Background(), "TICKET:TKT-9", "staff")

			require.NoError(t, err)
			assert.Equal(t, entity.ScanRejected, outcome.State)
			assert.Equal(t, tt.reason, outcome.Reason)
			if outcome.Result != nil {
				assert.False(t, outcome.Result.CanEnter())
			}

			_, err = s.RecordEntry(context.Background(), "staff")
			assert.ErrorIs(t, err, usecases.ErrNotAdmitted)
		})
	}
}

func TestScannerRearmsAfterRejection(t *testing.T) {
	s := usecases.NewScanner("GATE003", &fakeChecker{}, 20*time.Millisecond)

	outcome, _ := s.Scan(context.Background(), "", "staff")
	assert.Equal(t, entity.ScanRejected, outcome.State)

	assert.Eventually(t, func() bool {
		return s.Status().State == entity.ScanIdle
	}, time.Second, 5*time.Millisecond)
}

func TestScannerReset(t *testing.T) {
	s := usecases.NewScanner("GATE004", &fakeChecker{result: valid("TKT-1")}, 0)

	outcome, _ := s.Scan(context.Background(), "TKT-1", "staff")
	require.Equal(t, entity.ScanAdmitted, outcome.State)

	assert.Equal(t, entity.ScanIdle, s.Reset().State)
	assert.Empty(t, s.Status().TicketCode)
}

func TestScannerRefusesOverlappingScans(t *testing.T) {
	checker := &fakeChecker{result: valid("TKT-1"), block: make(chan struct{})}
	s := usecases.NewScanner("GATE005", checker, 0)

	done := make(chan entity.ScanOutcome)
	go func() {
		outcome, _ := s.Scan(context.Background(), "TKT-1", "staff")
		done <- outcome
	}()

	assert.Eventually(t, func() bool {
		return s.Status().State == entity.ScanValidating
	}, time.Second, time.Millisecond)

	_, err := s.Scan(context.Background(), "TKT-2", "staff")
	assert.ErrorIs(t, err, usecases.ErrScanInProgress)

	close(checker.block)
	assert.Equal(t, entity.ScanAdmitted, (<-done).State)
	assert.Equal(t, []string{"TKT-1"}, checker.Validated())
}
