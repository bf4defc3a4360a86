package repositories

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	"booking-portal/internal/module/ticket/models/entity"
	"booking-portal/internal/module/ticket/models/request"
	"booking-portal/internal/module/ticket/models/response"
	"booking-portal/internal/pkg/httpclient"
)

type repositories struct {
	log        *otelzap.Logger
	httpClient *httpclient.Client
}

type Repositories interface {
	// http
	ValidateTicket(ctx context.Context, ticketCode, staffID string) (entity.ValidationResult, error)
	RecordEntry(ctx context.Context, ticketCode, gate, staffID string) (entity.EntryResult, error)
	SearchTickets(ctx context.Context, params request.Search) ([]response.Ticket, error)
	FindTicketsByBooking(ctx context.Context, bookingID string) ([]response.Ticket, error)
	DownloadTicketPDF(ctx context.Context, ticketID string) ([]byte, error)
}

func New(log *otelzap.Logger, httpClient *httpclient.Client) Repositories {
	return &repositories{
		log:        log,
		httpClient: httpClient,
	}
}

// ValidateTicket implements Repositories.
func (r *repositories) ValidateTicket(ctx context.Context, ticketCode, staffID string) (entity.ValidationResult, error) {
	query := url.Values{}
	if staffID != "" {
		query.Set("staffId", staffID)
	}

	var resp response.Validation
	path := fmt.Sprintf("/api/v1/tickets/validate/%s", url.PathEscape(ticketCode))
	if err := r.httpClient.Do(ctx, http.MethodPost, path, query, struct{}{}, &resp); err != nil {
		return entity.ValidationResult{}, err
	}

	return resp.Result(), nil
}

// RecordEntry implements Repositories.
func (r *repositories) RecordEntry(ctx context.Context, ticketCode, gate, staffID string) (entity.EntryResult, error) {
	query := url.Values{}
	if gate != "" {
		query.Set("gateNumber", gate)
	}
	if staffID != "" {
		query.Set("staffId", staffID)
	}

	var resp entity.EntryResult
	path := fmt.Sprintf("/api/v1/tickets/entry/%s", url.PathEscape(ticketCode))
	if err := r.httpClient.Do(ctx, http.MethodPost, path, query, struct{}{}, &resp); err != nil {
		return entity.EntryResult{}, err
	}

	return resp, nil
}

// SearchTickets implements Repositories.
func (r *repositories) SearchTickets(ctx context.Context, params request.Search) ([]response.Ticket, error) {
	query := url.Values{}
	for key, value := range map[string]string{
		"ticketCode":    params.TicketCode,
		"customerName":  params.CustomerName,
		"customerEmail": params.CustomerEmail,
		"customerPhone": params.CustomerPhone,
		"bookingId":     params.BookingID,
	} {
		if value != "" {
			query.Set(key, value)
		}
	}

	var resp []response.Ticket
	if err := r.httpClient.Do(ctx, http.MethodGet, "/api/v1/tickets/search", query, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// FindTicketsByBooking implements Repositories.
func (r *repositories) FindTicketsByBooking(ctx context.Context, bookingID string) ([]response.Ticket, error) {
	var resp []response.Ticket
	query := url.Values{"bookingId": {bookingID}}
	if err := r.httpClient.Do(ctx, http.MethodGet, "/api/v1/tickets", query, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// DownloadTicketPDF implements Repositories.
func (r *repositories) DownloadTicketPDF(ctx context.Context, ticketID string) ([]byte, error) {
	return r.httpClient.Download(ctx, fmt.Sprintf("/api/v1/tickets/ticket/%s/pdf", url.PathEscape(ticketID)))
}
