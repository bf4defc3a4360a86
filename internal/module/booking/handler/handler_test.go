package handler_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"booking-portal/internal/module/booking/handler"
	"booking-portal/internal/module/booking/mocks"
	"booking-portal/internal/module/booking/models/entity"
	"booking-portal/internal/module/booking/models/request"
	"booking-portal/internal/module/booking/models/response"
	"booking-portal/internal/pkg/errors"
	"booking-portal/internal/pkg/helpers"
	log_internal "booking-portal/internal/pkg/log"
	"booking-portal/internal/pkg/messagestream"
	"booking-portal/internal/pkg/scheduler"
)

var (
	h   *handler.BookingHandler
	ucm *mocks.Usecase
	app *fiber.App
	p   *mockPublisher
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
	ucm = &mocks.Usecase{}
	p = &mockPublisher{}
	h = &handler.BookingHandler{
		Log:       log_internal.Nop(),
		Validator: validator.New(),
		Usecase:   ucm,
		Publish:   p,
	}

	app = fiber.New()
	app.Post("/api/v1/checkout", h.StartCheckout)
	app.Get("/api/v1/checkout/:attemptId", h.GetAttempt)
	app.Post("/api/v1/checkout/:attemptId/complete", h.CompleteCheckout)
	app.Post("/api/v1/checkout/:attemptId/dismiss", h.DismissCheckout)
	app.Get("/api/v1/checkout/:attemptId/tickets.pdf", h.DownloadCheckoutTickets)
	app.Get("/api/v1/staff/bookings/:id/tickets.pdf", h.DownloadTickets)
	app.Get("/api/v1/staff/bookings/:id", h.FindBooking)
	app.Patch("/api/v1/staff/bookings/:id/reschedule", h.RescheduleBooking)
}

func teardown() {
	ucm = nil
	p = nil
	h = nil
	app = nil
}

func do(t *testing.T, method, path string, body interface{}) (*http.Response, helpers.Response) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var envelope helpers.Response
	if resp.Header.Get("Content-Type") == "application/json" {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	}
	return resp, envelope
}

func TestStartCheckout(t *testing.T) {
	payload := request.Checkout{
		Items: []entity.LineItem{
			{OfferingID: 1, CategoryID: 2, TicketTypeID: 3, Quantity: 2, UnitPrice: decimal.NewFromInt(500)},
		},
		VisitDate: "2026-10-20",
		Customer:  request.Customer{Name: "Asha", Phone: "9000000000"},
	}

	t.Run("created", func(t *testing.T) {
		setup()
		defer teardown()

		ucm.On("StartCheckout", mock.Anything, mock.MatchedBy(func(req *request.Checkout) bool {
			return req.Customer.Phone == "9000000000" && req.Items[0].UnitPrice.Equal(decimal.NewFromInt(500))
		})).Return(response.Attempt{AttemptID: "att-1", State: string(entity.StatePaymentInFlight)}, nil)

		resp, envelope := do(t, http.MethodPost, "/api/v1/checkout", payload)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, "att-1", envelope.Data.(map[string]interface{})["attempt_id"])
	})

	t.Run("invalid body", func(t *testing.T) {
		setup()
		defer teardown()

		bad := payload
		bad.Customer.Phone = ""
		resp, _ := do(t, http.MethodPost, "/api/v1/checkout", bad)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		ucm.AssertNotCalled(t, "StartCheckout", mock.Anything, mock.Anything)
	})

	t.Run("order refused keeps attempt", func(t *testing.T) {
		setup()
		defer teardown()

		ucm.On("StartCheckout", mock.Anything, mock.Anything).
			Return(response.Attempt{AttemptID: "att-2", State: string(entity.StateFailed)}, errors.UnprocessableEntity("Gateway unavailable"))

		resp, envelope := do(t, http.MethodPost, "/api/v1/checkout", payload)

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Equal(t, "Gateway unavailable", envelope.Message)
		assert.Equal(t, "failed", envelope.Data.(map[string]interface{})["state"])
	})
}

func TestCheckoutCallbacks(t *testing.T) {
	setup()
	defer teardown()

	signed := entity.SignedPaymentResult{RazorpayOrderID: "order_1", RazorpayPaymentID: "pay_1", RazorpaySignature: "sig"}
	ucm.On("CompleteCheckout", mock.Anything, "att-1", &signed).Return(nil)
	ucm.On("DismissCheckout", mock.Anything, "att-2").Return(nil)
	ucm.On("DismissCheckout", mock.Anything, "att-1").Return(errors.Conflict("checkout already resolved"))

	resp, _ := do(t, http.MethodPost, "/api/v1/checkout/att-1/complete", signed)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, envelope := do(t, http.MethodPost, "/api/v1/checkout/att-2/dismiss", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Payment cancelled by user", envelope.Message)

	resp, _ = do(t, http.MethodPost, "/api/v1/checkout/att-1/dismiss", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, _ = do(t, http.MethodPost, "/api/v1/checkout/att-1/complete", entity.SignedPaymentResult{RazorpayOrderID: "order_1"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetAttempt(t *testing.T) {
	setup()
	defer teardown()

	ucm.On("GetAttempt", mock.Anything, "att-1").Return(response.Attempt{
		AttemptID:   "att-1",
		State:       string(entity.StateConfirmed),
		BookingID:   "42",
		DownloadURL: "/api/v1/checkout/att-1/tickets.pdf",
	}, nil)
	ucm.On("GetAttempt", mock.Anything, "nope").Return(response.Attempt{}, errors.NotFound("checkout attempt not found"))

	resp, envelope := do(t, http.MethodGet, "/api/v1/checkout/att-1", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	data := envelope.Data.(map[string]interface{})
	assert.Equal(t, "confirmed", data["state"])
	assert.Equal(t, "42", data["booking_id"])

	resp, _ = do(t, http.MethodGet, "/api/v1/checkout/nope", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDownloadTickets(t *testing.T) {
	setup()
	defer teardown()

	ucm.On("DownloadTickets", mock.Anything, "42").Return([]byte("%PDF-1.4"), nil)

	resp, _ := do(t, http.MethodGet, "/api/v1/staff/bookings/42/tickets.pdf", nil)
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "booking-42-tickets.pdf")
	assert.Equal(t, "%PDF-1.4", string(body))
}

func TestDownloadCheckoutTickets(t *testing.T) {
	setup()
	defer teardown()

	ucm.On("DownloadCheckoutTickets", mock.Anything, "att-1").Return("42", []byte("%PDF-1.4"), nil)
	ucm.On("DownloadCheckoutTickets", mock.Anything, "att-2").
		Return("", nil, errors.Conflict("tickets are available once the booking is confirmed"))

	resp, _ := do(t, http.MethodGet, "/api/v1/checkout/att-1/tickets.pdf", nil)
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "booking-42-tickets.pdf")
	assert.Equal(t, "%PDF-1.4", string(body))

	resp, _ = do(t, http.MethodGet, "/api/v1/checkout/att-2/tickets.pdf", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestRescheduleBooking(t *testing.T) {
	setup()
	defer teardown()

	ucm.On("RescheduleBooking", mock.Anything, "42", &request.Reschedule{NewVisitDate: "2026-10-25"}).
		Return(entity.BookingResult{ID: "42", VisitDate: "2026-10-25"}, nil)
	ucm.On("RescheduleBooking", mock.Anything, "43", &request.Reschedule{NewVisitDate: "2026-10-25"}).
		Return(entity.BookingResult{}, errors.UnprocessableEntity("Cannot reschedule a cancelled booking"))

	resp, _ := do(t, http.MethodPatch, "/api/v1/staff/bookings/42/reschedule", request.Reschedule{NewVisitDate: "2026-10-25"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, envelope := do(t, http.MethodPatch, "/api/v1/staff/bookings/43/reschedule", request.Reschedule{NewVisitDate: "2026-10-25"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "Cannot reschedule a cancelled booking", envelope.Message)

	resp, _ = do(t, http.MethodPatch, "/api/v1/staff/bookings/42/reschedule", request.Reschedule{NewVisitDate: "next week"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestConsumeSettlementIncident(t *testing.T) {
	t.Run("recorded", func(t *testing.T) {
		setup()
		defer teardown()

		payload := request.SettlementIncident{AttemptID: "att-1", Stage: "booking", Kind: "booking_missing"}
		jsonData, _ := json.Marshal(payload)
		msg := message.NewMessage("123", jsonData)

		ucm.On("RecordIncident", mock.Anything, mock.MatchedBy(func(req *request.SettlementIncident) bool {
			return req.AttemptID == "att-1"
		})).Return(nil)

		err := h.ConsumeSettlementIncident(msg)

		assert.NoError(t, err)
		assert.Empty(t, p.topics)
	})

	t.Run("malformed goes to poison queue", func(t *testing.T) {
		setup()
		defer teardown()

		err := h.ConsumeSettlementIncident(message.NewMessage("123", []byte("{not json")))

		assert.NoError(t, err)
		assert.Equal(t, []string{messagestream.TopicPoisoned}, p.topics)
		ucm.AssertNotCalled(t, "RecordIncident", mock.Anything, mock.Anything)
	})

	t.Run("store failure is retried", func(t *testing.T) {
		setup()
		defer teardown()

		jsonData, _ := json.Marshal(request.SettlementIncident{AttemptID: "att-1"})
		ucm.On("RecordIncident", mock.Anything, mock.Anything).Return(errors.InternalServerError("db down"))

		err := h.ConsumeSettlementIncident(message.NewMessage("123", jsonData))

		assert.Error(t, err)
	})
}

func TestPrefetchTicketPDF(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	ucm.On("PrefetchTicketPDF", ctx, &request.PrefetchTickets{BookingID: "42"}).Return(nil)

	err := h.PrefetchTicketPDF(ctx, asynq.NewTask(scheduler.TypePrefetchTicketPDF, []byte(`{"booking_id":"42"}`)))
	assert.NoError(t, err)

	err = h.PrefetchTicketPDF(ctx, asynq.NewTask(scheduler.TypePrefetchTicketPDF, []byte(`{}`)))
	assert.ErrorIs(t, err, asynq.SkipRetry)

	err = h.PrefetchTicketPDF(ctx, asynq.NewTask(scheduler.TypePrefetchTicketPDF, []byte(`nope`)))
	assert.True(t, errors.Is(err, asynq.SkipRetry), fmt.Sprint(err))
}
