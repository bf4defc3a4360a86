package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	"booking-portal/internal/module/ticket/models/entity"
	"booking-portal/internal/module/ticket/models/request"
	"booking-portal/internal/module/ticket/models/response"
	"booking-portal/internal/module/ticket/repositories"
	"booking-portal/internal/pkg/errors"
	"booking-portal/internal/pkg/messagestream"
	"booking-portal/internal/pkg/metrics"
)

type Options struct {
	DefaultGate string
	RearmDelay  time.Duration
	// Now defaults to time.Now.
	Now func() time.Time
}

type usecase struct {
	repo    repositories.Repositories
	log     *otelzap.Logger
	publish message.Publisher
	gates   *gates
	opts    Options
}

type Usecase interface {
	// scanner
	Scan(ctx context.Context, gate string, req *request.Scan, staffID string) (entity.ScanOutcome, error)
	RecordEntry(ctx context.Context, gate, staffID string) (entity.EntryResult, error)
	ResetGate(ctx context.Context, gate string) entity.ScanOutcome
	GateStatus(ctx context.Context, gate string) entity.ScanOutcome
	// lookup
	SearchTickets(ctx context.Context, req *request.Search) ([]response.Ticket, error)
	TicketsByBooking(ctx context.Context, bookingID string) ([]response.Ticket, error)
	DownloadTicket(ctx context.Context, ticketID string) ([]byte, error)
}

func New(repo repositories.Repositories, log *otelzap.Logger, publish message.Publisher, opts Options) Usecase {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &usecase{
		repo:    repo,
		log:     log,
		publish: publish,
		gates:   newGates(repo, opts.RearmDelay),
		opts:    opts,
	}
}

func (u *usecase) gate(gate string) string {
	gate = strings.TrimSpace(gate)
	if gate == "" || strings.EqualFold(gate, "default") {
		return u.opts.DefaultGate
	}
	return strings.ToUpper(gate)
}

func (u *usecase) Scan(ctx context.Context, gate string, req *request.Scan, staffID string) (entity.ScanOutcome, error) {
	gate = u.gate(gate)

	outcome, err := u.gates.get(gate).Scan(ctx, req.Raw, staffID)
	if err != nil {
		return entity.ScanOutcome{}, errors.Conflict(err.Error())
	}

	status := ""
	if outcome.Result != nil {
		status = string(outcome.Result.Status())
	}
	metrics.ScanOutcomes.WithLabelValues(gate, string(outcome.State), status).Inc()

	if outcome.State == entity.ScanRejected {
		u.log.Ctx(ctx).Info(fmt.Sprintf("gate %s rejected %q: %s", gate, outcome.TicketCode, outcome.Reason))
	}
	return outcome, nil
}

func (u *usecase) RecordEntry(ctx context.Context, gate, staffID string) (entity.EntryResult, error) {
	gate = u.gate(gate)

	result, err := u.gates.get(gate).RecordEntry(ctx, staffID)
	if err != nil {
		if errors.Is(err, ErrNotAdmitted) {
			return entity.EntryResult{}, errors.Conflict(err.Error())
		}
		u.log.Ctx(ctx).Error(fmt.Sprintf("error record entry at gate %s: %v", gate, err))
		metrics.EntriesRecorded.WithLabelValues(gate, "error").Inc()
		if errors.IsTransport(err) {
			return entity.EntryResult{}, errors.BadGateway("Failed to record entry. Please try again.")
		}
		return entity.EntryResult{}, err
	}

	if !result.Success {
		metrics.EntriesRecorded.WithLabelValues(gate, "refused").Inc()
		msg := result.Message
		if msg == "" {
			msg = "Failed to record entry"
		}
		return result, errors.UnprocessableEntity(msg)
	}

	metrics.EntriesRecorded.WithLabelValues(gate, "recorded").Inc()

	event := request.TicketEntryRecorded{
		TicketCode: result.TicketCode,
		Gate:       gate,
		StaffID:    staffID,
		EntryTime:  result.EntryTime,
		OccurredAt: u.opts.Now(),
	}
	if err := messagestream.PublishJSON(u.publish, messagestream.TopicTicketEntryRecorded, event); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error publish entry of %s: %v", result.TicketCode, err))
	}

	return result, nil
}

func (u *usecase) ResetGate(ctx context.Context, gate string) entity.ScanOutcome {
	return u.gates.get(u.gate(gate)).Reset()
}

func (u *usecase) GateStatus(ctx context.Context, gate string) entity.ScanOutcome {
	return u.gates.get(u.gate(gate)).Status()
}

func (u *usecase) SearchTickets(ctx context.Context, req *request.Search) ([]response.Ticket, error) {
	if req.Empty() {
		return nil, errors.BadRequest("Please enter at least one search criterion")
	}

	tickets, err := u.repo.SearchTickets(ctx, *req)
	if err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error search tickets: %v", err))
		return nil, err
	}
	if tickets == nil {
		tickets = []response.Ticket{}
	}
	return tickets, nil
}

func (u *usecase) TicketsByBooking(ctx context.Context, bookingID string) ([]response.Ticket, error) {
	if bookingID == "" {
		return nil, errors.BadRequest("bookingId is required")
	}

	tickets, err := u.repo.FindTicketsByBooking(ctx, bookingID)
	if err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error find tickets for booking %s: %v", bookingID, err))
		return nil, err
	}
	if tickets == nil {
		tickets = []response.Ticket{}
	}
	return tickets, nil
}

func (u *usecase) DownloadTicket(ctx context.Context, ticketID string) ([]byte, error) {
	pdf, err := u.repo.DownloadTicketPDF(ctx, ticketID)
	if err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error download ticket %s: %v", ticketID, err))
		if errors.IsTransport(err) {
			return nil, errors.BadGateway("Failed to download ticket")
		}
		return nil, err
	}
	return pdf, nil
}
