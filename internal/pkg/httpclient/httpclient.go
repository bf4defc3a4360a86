package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/goccy/go-json"
	circuit "github.com/rubyist/circuitbreaker"

	"booking-portal/config"
	"booking-portal/internal/pkg/errors"
)

func InitCircuitBreaker(cfg *config.HttpClientConfig, cbType string) *circuit.Breaker {
	switch cbType {
	case "threshold":
		return circuit.NewThresholdBreaker(cfg.Threshold)
	case "rate":
		return circuit.NewRateBreaker(cfg.Rate, cfg.MinSamples)
	default:
		return circuit.NewConsecutiveBreaker(cfg.Threshold)
	}
}

// InitHttpClient wraps transport in a breaker. A nil transport means the
// default one.
func InitHttpClient(cfg *config.HttpClientConfig, cb *circuit.Breaker, transport http.RoundTripper) *circuit.HTTPClient {
	client := &http.Client{
		Timeout:   cfg.Timeout,
		Transport: transport,
	}
	return circuit.NewHTTPClientWithBreaker(cb, cfg.Timeout, client)
}

// Doer is satisfied by *circuit.HTTPClient and *http.Client.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client speaks JSON to the backend REST API rooted at baseURL.
type Client struct {
	doer    Doer
	baseURL string
}

func New(doer Doer, baseURL string) *Client {
	return &Client{
		doer:    doer,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

type backendError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Do sends body as JSON (when non-nil) and decodes a 2xx answer into out
// (when non-nil). Transport failures come back wrapped with
// errors.ErrTransport; non-2xx answers keep the backend's status code.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	payload, err := c.send(ctx, method, path, query, body)
	if err != nil {
		return err
	}

	if out == nil || len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return errors.BadGateway(fmt.Sprintf("invalid response from %s %s", method, path))
	}

	return nil
}

// Download returns the raw body of a binary endpoint.
func (c *Client) Download(ctx context.Context, path string) ([]byte, error) {
	return c.send(ctx, http.MethodGet, path, nil, nil)
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, body interface{}) ([]byte, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, errors.InternalServerError(fmt.Sprintf("error marshal request: %v", err))
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, errors.InternalServerError(fmt.Sprintf("error build request: %v", err))
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return nil, errors.Transport(err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Transport(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var be backendError
		_ = json.Unmarshal(payload, &be)
		msg := be.Message
		if msg == "" {
			msg = be.Error
		}
		return nil, errors.Status(resp.StatusCode, msg)
	}

	return payload, nil
}
