package httpclient_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booking-portal/config"
	"booking-portal/internal/pkg/errors"
	"booking-portal/internal/pkg/httpclient"
)

func newClient(baseURL string) *httpclient.Client {
	cfg := &config.HttpClientConfig{Timeout: time.Second, Threshold: 5}
	cb := httpclient.InitCircuitBreaker(cfg, "consecutive")
	return httpclient.New(httpclient.InitHttpClient(cfg, cb, nil), baseURL)
}

func TestDo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/echo":
			body, _ := io.ReadAll(r.Body)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.Equal(t, "1", r.URL.Query().Get("page"))
			w.Write(body)
		case "/api/v1/missing":
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"Booking not found"}`))
		case "/api/v1/garbage":
			w.Write([]byte(`not json`))
		}
	}))
	defer srv.Close()

	client := newClient(srv.URL + "/")
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		var out map[string]string
		err := client.Do(ctx, http.MethodPost, "/api/v1/echo", url.Values{"page": {"1"}}, map[string]string{"a": "b"}, &out)
		require.NoError(t, err)
		assert.Equal(t, "b", out["a"])
	})

	t.Run("backend status is kept", func(t *testing.T) {
		err := client.Do(ctx, http.MethodGet, "/api/v1/missing", nil, nil, nil)
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, errors.Code(err))
		assert.Equal(t, "Booking not found", errors.Message(err))
		assert.False(t, errors.IsTransport(err))
	})

	t.Run("undecodable body", func(t *testing.T) {
		var out map[string]string
		err := client.Do(ctx, http.MethodGet, "/api/v1/garbage", nil, nil, &out)
		assert.Equal(t, http.StatusBadGateway, errors.Code(err))
		assert.False(t, errors.IsTransport(err))
	})
}

func TestDoTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := srv.URL
	srv.Close()

	err := newClient(baseURL).Do(context.Background(), http.MethodGet, "/api/v1/offerings", nil, nil, nil)

	assert.True(t, errors.IsTransport(err))
}

func TestDownload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF-1.4"))
	}))
	defer srv.Close()

	pdf, err := newClient(srv.URL).Download(context.Background(), "/api/v1/tickets/booking/42/pdf")

	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4"), pdf)
}
