package repositories_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booking-portal/config"
	"booking-portal/internal/module/ticket/models/entity"
	"booking-portal/internal/module/ticket/models/request"
	"booking-portal/internal/module/ticket/repositories"
	"booking-portal/internal/pkg/httpclient"
	log_internal "booking-portal/internal/pkg/log"
)

func newRepo(t *testing.T, handler http.HandlerFunc) repositories.Repositories {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.HttpClientConfig{Timeout: time.Second, Threshold: 5}
	cb := httpclient.InitCircuitBreaker(cfg, cfg.Type)
	return repositories.New(log_internal.Nop(), httpclient.New(httpclient.InitHttpClient(cfg, cb, nil), srv.URL))
}

func TestValidateTicket(t *testing.T) {
	testCases := []struct {
		name     string
		body     string
		status   entity.Status
		canEnter bool
	}{
		{"valid", `{"status":"VALID","canEnter":true,"message":"ok","ticketDetails":{"ticketCode":"TKT-1"}}`, entity.StatusValid, true},
		{"already used", `{"status":"ALREADY_USED","canEnter":false,"message":"Ticket already used"}`, entity.StatusAlreadyUsed, false},
		{"contradiction fails closed", `{"status":"VALID","canEnter":false}`, entity.StatusSystemError, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/api/v1/tickets/validate/TKT-1", r.URL.Path)
				assert.Equal(t, "gatekeeper", r.URL.Query().Get("staffId"))
				w.Write([]byte(tc.body))
			})

			result, err := repo.ValidateTicket(context.Background(), "TKT-1", "gatekeeper")

			require.NoError(t, err)
			assert.Equal(t, tc.status, result.Status())
			assert.Equal(t, tc.canEnter, result.CanEnter())
		})
	}
}

func TestRecordEntry(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/tickets/entry/TKT-1", r.URL.Path)
		assert.Equal(t, "GATE001", r.URL.Query().Get("gateNumber"))
		w.Write([]byte(`{"success":true,"message":"Entry recorded","ticketCode":"TKT-1","gateNumber":"GATE001"}`))
	})

	result, err := repo.RecordEntry(context.Background(), "TKT-1", "GATE001", "gatekeeper")

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "GATE001", result.GateNumber)
}

func TestSearchTickets(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/tickets/search":
			assert.Equal(t, "Asha", r.URL.Query().Get("customerName"))
			assert.False(t, r.URL.Query().Has("customerEmail"))
		case "/api/v1/tickets":
			assert.Equal(t, "42", r.URL.Query().Get("bookingId"))
		}
		w.Write([]byte(`[{"ticketId":1,"ticketCode":"TKT-1","booking":{"bookingId":42},"isActive":true}]`))
	})

	tickets, err := repo.SearchTickets(context.Background(), request.Search{CustomerName: "Asha"})
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, "TKT-1", tickets[0].TicketCode)
	assert.JSONEq(t, `{"bookingId":42}`, string(tickets[0].Booking))

	tickets, err = repo.FindTicketsByBooking(context.Background(), "42")
	require.NoError(t, err)
	assert.Len(t, tickets, 1)
}
