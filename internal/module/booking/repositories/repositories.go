package repositories

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	"booking-portal/internal/module/booking/models/entity"
	"booking-portal/internal/module/booking/models/request"
	"booking-portal/internal/module/booking/models/response"
	"booking-portal/internal/pkg/errors"
	"booking-portal/internal/pkg/httpclient"
)

type repositories struct {
	db          *sqlx.DB
	log         *otelzap.Logger
	httpClient  *httpclient.Client
	redisClient *redis.Client
	pdfTTL      time.Duration
}

type Repositories interface {
	// http
	CreateOrder(ctx context.Context, req request.OrderRequest) (response.PaymentResponse, error)
	VerifyPayment(ctx context.Context, req entity.SignedPaymentResult) (response.VerifyPayment, error)
	CreateBooking(ctx context.Context, req request.CreateBooking) (response.BookingRecord, error)
	FindBookingByID(ctx context.Context, bookingID string) (response.BookingRecord, error)
	RescheduleBooking(ctx context.Context, bookingID string, req request.RescheduleBody) (response.BookingRecord, error)
	DownloadBookingPDF(ctx context.Context, bookingID string) ([]byte, error)
	// redis
	GetCachedBookingPDF(ctx context.Context, bookingID string) ([]byte, error)
	CacheBookingPDF(ctx context.Context, bookingID string, pdf []byte) error
	// db
	InsertIncident(ctx context.Context, incident entity.Incident) error
}

func New(db *sqlx.DB, log *otelzap.Logger, httpClient *httpclient.Client, redisClient *redis.Client, pdfTTL time.Duration) Repositories {
	return &repositories{
		db:          db,
		log:         log,
		httpClient:  httpClient,
		redisClient: redisClient,
		pdfTTL:      pdfTTL,
	}
}

// CreateOrder implements Repositories.
func (r *repositories) CreateOrder(ctx context.Context, req request.OrderRequest) (response.PaymentResponse, error) {
	var resp response.PaymentResponse
	if err := r.httpClient.Do(ctx, http.MethodPost, "/api/v1/payments/orders", nil, req, &resp); err != nil {
		return response.PaymentResponse{}, err
	}
	return resp, nil
}

// VerifyPayment implements Repositories.
func (r *repositories) VerifyPayment(ctx context.Context, req entity.SignedPaymentResult) (response.VerifyPayment, error) {
	var resp response.VerifyPayment
	if err := r.httpClient.Do(ctx, http.MethodPost, "/api/v1/payments/verify", nil, req, &resp); err != nil {
		return response.VerifyPayment{}, err
	}
	return resp, nil
}

// CreateBooking implements Repositories.
func (r *repositories) CreateBooking(ctx context.Context, req request.CreateBooking) (response.BookingRecord, error) {
	var resp response.BookingRecord
	if err := r.httpClient.Do(ctx, http.MethodPost, "/api/v1/bookings", nil, req, &resp); err != nil {
		return response.BookingRecord{}, err
	}
	return resp, nil
}

// FindBookingByID implements Repositories.
func (r *repositories) FindBookingByID(ctx context.Context, bookingID string) (response.BookingRecord, error) {
	var resp response.BookingRecord
	path := fmt.Sprintf("/api/v1/bookings/%s", url.PathEscape(bookingID))
	if err := r.httpClient.Do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return response.BookingRecord{}, err
	}
	return resp, nil
}

// RescheduleBooking implements Repositories.
func (r *repositories) RescheduleBooking(ctx context.Context, bookingID string, req request.RescheduleBody) (response.BookingRecord, error) {
	var resp response.BookingRecord
	path := fmt.Sprintf("/api/v1/bookings/%s/reschedule", url.PathEscape(bookingID))
	if err := r.httpClient.Do(ctx, http.MethodPatch, path, nil, req, &resp); err != nil {
		return response.BookingRecord{}, err
	}
	return resp, nil
}

// DownloadBookingPDF implements Repositories.
func (r *repositories) DownloadBookingPDF(ctx context.Context, bookingID string) ([]byte, error) {
	return r.httpClient.Download(ctx, fmt.Sprintf("/api/v1/tickets/booking/%s/pdf", url.PathEscape(bookingID)))
}

func pdfKey(bookingID string) string {
	return fmt.Sprintf("booking:%s:tickets.pdf", bookingID)
}

// GetCachedBookingPDF implements Repositories. A miss returns nil, nil.
func (r *repositories) GetCachedBookingPDF(ctx context.Context, bookingID string) ([]byte, error) {
	data, err := r.redisClient.Get(ctx, pdfKey(bookingID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, errors.InternalServerError("error get cached tickets pdf")
	}
	return data, nil
}

// CacheBookingPDF implements Repositories.
func (r *repositories) CacheBookingPDF(ctx context.Context, bookingID string, pdf []byte) error {
	if err := r.redisClient.Set(ctx, pdfKey(bookingID), pdf, r.pdfTTL).Err(); err != nil {
		return errors.InternalServerError("error cache tickets pdf")
	}
	return nil
}

// InsertIncident implements Repositories. Redelivered incidents are ignored.
func (r *repositories) InsertIncident(ctx context.Context, incident entity.Incident) error {
	query := `
		INSERT INTO settlement_incidents
			(attempt_id, razorpay_order_id, razorpay_payment_id, customer_name, customer_phone, amount, stage, kind, reason, occurred_at)
		VALUES
			(:attempt_id, :razorpay_order_id, :razorpay_payment_id, :customer_name, :customer_phone, :amount, :stage, :kind, :reason, :occurred_at)
		ON CONFLICT (attempt_id) DO NOTHING`

	if _, err := r.db.NamedExecContext(ctx, query, incident); err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error insert incident %s: %v", incident.AttemptID, err))
		return errors.InternalServerError("error insert settlement incident")
	}
	return nil
}
