package repositories_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	sqlxmock "github.com/zhashkevych/go-sqlxmock"

	"booking-portal/config"
	"booking-portal/internal/module/booking/models/entity"
	"booking-portal/internal/module/booking/models/request"
	"booking-portal/internal/module/booking/repositories"
	"booking-portal/internal/pkg/errors"
	"booking-portal/internal/pkg/httpclient"
	log_internal "booking-portal/internal/pkg/log"
)

var (
	mock    sqlxmock.Sqlmock
	dbx     *sqlx.DB
	logMock *otelzap.Logger
)

func setup() {
	dbx, mock, _ = sqlxmock.Newx()
	logMock = log_internal.Nop()
}

func newHttpClient(baseURL string) *httpclient.Client {
	cfg := &config.HttpClientConfig{Timeout: time.Second, Threshold: 5}
	cb := httpclient.InitCircuitBreaker(cfg, cfg.Type)
	return httpclient.New(httpclient.InitHttpClient(cfg, cb, nil), baseURL)
}

func TestInsertIncident(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock, nil, nil, time.Hour)

	incident := entity.Incident{
		AttemptID:         "att-1",
		RazorpayOrderID:   "order_1",
		RazorpayPaymentID: "pay_1",
		CustomerName:      "Asha",
		CustomerPhone:     "9000000000",
		Amount:            decimal.NewFromInt(1180),
		Stage:             string(entity.StageBooking),
		Kind:              string(entity.FailureBookingMissing),
		Reason:            "booking response carried no id",
		OccurredAt:        time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC),
	}

	testCases := []struct {
		name          string
		execErr       error
		expectedError error
	}{
		{
			name:          "inserted",
			execErr:       nil,
			expectedError: nil,
		},
		{
			name:          "database error",
			execErr:       fmt.Errorf("connection reset"),
			expectedError: errors.InternalServerError("error insert settlement incident"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			exec := mock.ExpectExec("INSERT INTO settlement_incidents").
				WithArgs(incident.AttemptID, incident.RazorpayOrderID, incident.RazorpayPaymentID,
					incident.CustomerName, incident.CustomerPhone, sqlxmock.AnyArg(),
					incident.Stage, incident.Kind, incident.Reason, incident.OccurredAt)
			if tc.execErr != nil {
				exec.WillReturnError(tc.execErr)
			} else {
				exec.WillReturnResult(sqlxmock.NewResult(1, 1))
			}

			err := repo.InsertIncident(context.Background(), incident)

			assert.Equal(t, tc.expectedError, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestBackendCalls(t *testing.T) {
	setup()

	var lastBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		lastBody = string(body)

		switch r.Method + " " + r.URL.Path {
		case "POST /api/v1/payments/orders":
			w.Write([]byte(`{"success":true,"keyId":"rzp_key","razorpayOrderId":"order_1","amount":"1180","currency":"INR","orderId":"7"}`))
		case "POST /api/v1/payments/verify":
			w.Write([]byte(`{"success":false,"message":"signature mismatch"}`))
		case "POST /api/v1/bookings":
			w.Write([]byte(`{"booking_id":42,"tax_amount":180,"totalAmount":1180}`))
		case "GET /api/v1/bookings/42":
			w.Write([]byte(`{"id":"42","bookingStatus":"CONFIRMED","visitDate":"2026-10-20"}`))
		case "PATCH /api/v1/bookings/42/reschedule":
			w.Write([]byte(`{"bookingId":42,"visitDate":"2026-10-21"}`))
		case "GET /api/v1/tickets/booking/42/pdf":
			w.Write([]byte("%PDF"))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"Booking not found"}`))
		}
	}))
	defer srv.Close()

	repo := repositories.New(dbx, logMock, newHttpClient(srv.URL), nil, time.Hour)
	ctx := context.Background()

	t.Run("create order", func(t *testing.T) {
		resp, err := repo.CreateOrder(ctx, request.OrderRequest{Amount: decimal.NewFromInt(1180), Currency: "INR", Receipt: "booking_1"})
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, "order_1", resp.RazorpayOrderID)
		assert.True(t, resp.Amount.Equal(decimal.NewFromInt(1180)))
		assert.JSONEq(t, `{"amount":1180,"currency":"INR","receipt":"booking_1"}`, lastBody)
	})

	t.Run("verify payment", func(t *testing.T) {
		resp, err := repo.VerifyPayment(ctx, entity.SignedPaymentResult{RazorpayOrderID: "order_1", RazorpayPaymentID: "pay_1", RazorpaySignature: "sig"})
		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.JSONEq(t, `{"razorpay_order_id":"order_1","razorpay_payment_id":"pay_1","razorpay_signature":"sig"}`, lastBody)
	})

	t.Run("create booking", func(t *testing.T) {
		record, err := repo.CreateBooking(ctx, request.CreateBooking{CustomerName: "Asha"})
		require.NoError(t, err)
		result, ok := record.Normalize()
		assert.True(t, ok)
		assert.Equal(t, "42", result.ID)
	})

	t.Run("find and reschedule", func(t *testing.T) {
		record, err := repo.FindBookingByID(ctx, "42")
		require.NoError(t, err)
		result, _ := record.Normalize()
		assert.Equal(t, entity.BookingConfirmed, result.BookingStatus)

		record, err = repo.RescheduleBooking(ctx, "42", request.RescheduleBody{NewVisitDate: "2026-10-21", UpdatedBy: "STAFF"})
		require.NoError(t, err)
		result, _ = record.Normalize()
		assert.Equal(t, "2026-10-21", result.VisitDate)
		assert.JSONEq(t, `{"newVisitDate":"2026-10-21","updatedBy":"STAFF"}`, lastBody)
	})

	t.Run("missing booking keeps status", func(t *testing.T) {
		_, err := repo.FindBookingByID(ctx, "404")
		assert.Equal(t, http.StatusNotFound, errors.Code(err))
	})

	t.Run("download pdf", func(t *testing.T) {
		pdf, err := repo.DownloadBookingPDF(ctx, "42")
		require.NoError(t, err)
		assert.Equal(t, []byte("%PDF"), pdf)
	})
}
