package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"

	"booking-portal/internal/module/booking/models/entity"
	"booking-portal/internal/module/booking/models/request"
	"booking-portal/internal/pkg/errors"
	"booking-portal/internal/pkg/scheduler"
)

func (u *usecase) enqueuePrefetch(ctx context.Context, bookingID string) error {
	payload, err := json.Marshal(request.PrefetchTickets{BookingID: bookingID})
	if err != nil {
		return err
	}

	task := asynq.NewTask(scheduler.TypePrefetchTicketPDF, payload)
	_, err = u.scheduler.EnqueueContext(ctx, task,
		asynq.MaxRetry(3),
		asynq.Timeout(time.Minute),
		asynq.TaskID("prefetch:"+bookingID),
	)
	return err
}

// PrefetchTicketPDF warms the PDF cache right after a booking is confirmed.
func (u *usecase) PrefetchTicketPDF(ctx context.Context, req *request.PrefetchTickets) error {
	pdf, err := u.repo.DownloadBookingPDF(ctx, req.BookingID)
	if err != nil {
		return fmt.Errorf("download tickets for booking %s: %w", req.BookingID, err)
	}
	return u.repo.CacheBookingPDF(ctx, req.BookingID, pdf)
}

// DownloadTickets serves the cached PDF, fetching it live on a miss.
func (u *usecase) DownloadTickets(ctx context.Context, bookingID string) ([]byte, error) {
	pdf, err := u.repo.GetCachedBookingPDF(ctx, bookingID)
	if err != nil {
		u.log.Ctx(ctx).Warn(fmt.Sprintf("ticket pdf cache unavailable for booking %s: %v", bookingID, err))
	}
	if len(pdf) > 0 {
		return pdf, nil
	}

	pdf, err = u.repo.DownloadBookingPDF(ctx, bookingID)
	if err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error download tickets for booking %s: %v", bookingID, err))
		if errors.IsTransport(err) {
			return nil, errors.BadGateway("Failed to download tickets")
		}
		return nil, err
	}

	if err := u.repo.CacheBookingPDF(ctx, bookingID, pdf); err != nil {
		u.log.Ctx(ctx).Warn(fmt.Sprintf("error cache tickets for booking %s: %v", bookingID, err))
	}
	return pdf, nil
}

// DownloadCheckoutTickets serves the tickets of the booking an attempt
// confirmed. The attempt id is the customer's only handle on the booking.
func (u *usecase) DownloadCheckoutTickets(ctx context.Context, attemptID string) (string, []byte, error) {
	attempt, ok := u.attempts.get(attemptID)
	if !ok {
		return "", nil, errors.NotFound("checkout attempt not found")
	}

	bookingID := attempt.BookingID()
	if bookingID == "" {
		return "", nil, errors.Conflict("tickets are available once the booking is confirmed")
	}

	pdf, err := u.DownloadTickets(ctx, bookingID)
	if err != nil {
		return "", nil, err
	}
	return bookingID, pdf, nil
}

// RecordIncident stores a settlement failure for support follow-up.
func (u *usecase) RecordIncident(ctx context.Context, req *request.SettlementIncident) error {
	if err := u.validate.Struct(req); err != nil {
		return errors.BadRequest(err.Error())
	}

	return u.repo.InsertIncident(ctx, entity.Incident{
		AttemptID:         req.AttemptID,
		RazorpayOrderID:   req.RazorpayOrderID,
		RazorpayPaymentID: req.RazorpayPaymentID,
		CustomerName:      req.CustomerName,
		CustomerPhone:     req.CustomerPhone,
		Amount:            req.Amount,
		Stage:             req.Stage,
		Kind:              req.Kind,
		Reason:            req.Reason,
		OccurredAt:        req.OccurredAt,
	})
}
