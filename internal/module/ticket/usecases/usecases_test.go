package usecases_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"booking-portal/internal/module/ticket/mocks"
	"booking-portal/internal/module/ticket/models/entity"
	"booking-portal/internal/module/ticket/models/request"
	"booking-portal/internal/module/ticket/models/response"
	"booking-portal/internal/module/ticket/usecases"
	"booking-portal/internal/pkg/errors"
	log_internal "booking-portal/internal/pkg/log"
	"booking-portal/internal/pkg/messagestream"
)

var (
	uc       usecases.Usecase
	repoMock *mocks.Repositories
	p        *mockPublisher
)

type mockPublisher struct {
	mu     sync.Mutex
	topics []string
}

// Close implements message.Publisher.
func (m *mockPublisher) Close() error {
	return nil
}

// Publish implements message.Publisher.
func (m *mockPublisher) Publish(topic string, messages ...*message.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.topics = append(m.topics, topic)
	return nil
}

func setup() {
	repoMock = new(mocks.Repositories)
	p = &mockPublisher{}
	uc = usecases.New(repoMock, log_internal.Nop(), p, usecases.Options{
		DefaultGate: "GATE001",
		Now:         func() time.Time { return time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC) },
	})
}

func teardown() {
	uc = nil
	repoMock = nil
	p = nil
}

func TestScanAndEnter(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	repoMock.On("ValidateTicket", mock.Anything, "TKT-42-A", "ranger").
		Return(entity.NewValidationResult(entity.StatusValid, true, "Ticket is valid", &entity.TicketDetails{TicketCode: "TKT-42-A"}), nil).Once()
	repoMock.On("RecordEntry", mock.Anything, "TKT-42-A", "GATE001", "ranger").
		Return(entity.EntryResult{Success: true, Message: "Entry recorded", TicketCode: "TKT-42-A", EntryTime: "2026-10-15T09:30:00"}, nil).Once()

	outcome, err := uc.Scan(ctx, "", &request.Scan{Raw: "BOOKING:42|TICKET:TKT-42-A|DATE:2026-10-15"}, "ranger")
	require.NoError(t, err)
	assert.Equal(t, "GATE001", outcome.Gate)
	assert.Equal(t, entity.ScanAdmitted, outcome.State)

	assert.Equal(t, entity.ScanAdmitted, uc.GateStatus(ctx, "default").State)

	entry, err := uc.RecordEntry(ctx, "gate001", "ranger")
	require.NoError(t, err)
	assert.True(t, entry.Success)
	assert.Equal(t, []string{messagestream.TopicTicketEntryRecorded}, p.topics)

	_, err = uc.RecordEntry(ctx, "GATE001", "ranger")
	assert.Equal(t, 409, errors.Code(err))

	repoMock.AssertExpectations(t)
}

func TestGatesAreIndependent(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	repoMock.On("ValidateTicket", mock.Anything, "TKT-1", "").
		Return(entity.NewValidationResult(entity.StatusValid, true, "", nil), nil)

	_, err := uc.Scan(ctx, "GATE001", &request.Scan{Raw: "TKT-1"}, "")
	require.NoError(t, err)

	assert.Equal(t, entity.ScanAdmitted, uc.GateStatus(ctx, "GATE001").State)
	assert.Equal(t, entity.ScanIdle, uc.GateStatus(ctx, "GATE002").State)
	assert.Equal(t, entity.ScanIdle, uc.ResetGate(ctx, "GATE001").State)
}

func TestRecordEntryFailures(t *testing.T) {
	tests := []struct {
		name    string
		result  entity.EntryResult
		err     error
		code    int
		message string
	}{
		{
			name:    "refused",
			result:  entity.EntryResult{Success: false, Message: "Ticket already used"},
			code:    422,
			message: "Ticket already used",
		},
		{
			name:    "transport",
			err:     errors.Transport(context.DeadlineExceeded),
			code:    502,
			message: "Failed to record entry. Please try again.",
		},
		{
			name:    "backend error",
			err:     errors.UnprocessableEntity("Ticket is not for today"),
			code:    422,
			message: "Ticket is not for today",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup()
			defer teardown()

			ctx := context.Background()
			repoMock.On("ValidateTicket", mock.Anything, "TKT-5", "ranger").
				Return(entity.NewValidationResult(entity.StatusValid, true, "", nil), nil)
			repoMock.On("RecordEntry", mock.Anything, "TKT-5", "GATE001", "ranger").Return(tt.result, tt.err)

			_, err := uc.Scan(ctx, "GATE001", &request.Scan{Raw: "TKT-5"}, "ranger")
			require.NoError(t, err)

			_, err = uc.RecordEntry(ctx, "GATE001", "ranger")
			assert.Equal(t, tt.code, errors.Code(err))
			assert.Equal(t, tt.message, errors.Message(err))
			assert.Empty(t, p.topics)
			assert.Equal(t, entity.ScanIdle, uc.GateStatus(ctx, "GATE001").State)
		})
	}
}

func TestSearchTickets(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()

	_, err := uc.SearchTickets(ctx, &request.Search{})
	assert.Equal(t, 400, errors.Code(err))

	repoMock.On("SearchTickets", mock.Anything, request.Search{CustomerPhone: "9000000000"}).Return(nil, nil)

	tickets, err := uc.SearchTickets(ctx, &request.Search{CustomerPhone: "9000000000"})
	require.NoError(t, err)
	assert.NotNil(t, tickets)
	assert.Empty(t, tickets)
}

func TestTicketsByBooking(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	repoMock.On("FindTicketsByBooking", mock.Anything, "42").
		Return([]response.Ticket{{TicketID: 1, TicketCode: "TKT-42-A"}}, nil)

	tickets, err := uc.TicketsByBooking(ctx, "42")
	require.NoError(t, err)
	assert.Len(t, tickets, 1)

	_, err = uc.TicketsByBooking(ctx, "")
	assert.Equal(t, 400, errors.Code(err))
}

func TestDownloadTicket(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	repoMock.On("DownloadTicketPDF", mock.Anything, "7").Return([]byte("%PDF"), nil)
	repoMock.On("DownloadTicketPDF", mock.Anything, "8").Return(nil, errors.Transport(context.Canceled))
	repoMock.On("DownloadTicketPDF", mock.Anything, "9").Return(nil, errors.NotFound("Ticket not found"))

	pdf, err := uc.DownloadTicket(ctx, "7")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), pdf)

	_, err = uc.DownloadTicket(ctx, "8")
	assert.Equal(t, 502, errors.Code(err))

	_, err = uc.DownloadTicket(ctx, "9")
	assert.Equal(t, 404, errors.Code(err))
}
