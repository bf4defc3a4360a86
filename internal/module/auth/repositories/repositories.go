package repositories

import (
	"context"
	"net/http"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	"booking-portal/internal/module/auth/models/request"
	"booking-portal/internal/module/auth/models/response"
	"booking-portal/internal/pkg/httpclient"
)

type repositories struct {
	log        *otelzap.Logger
	httpClient *httpclient.Client
}

type Repositories interface {
	// http
	ExchangeCode(ctx context.Context, req request.Callback) (response.AuthResponse, error)
	RefreshToken(ctx context.Context, req request.Refresh) (response.AuthResponse, error)
}

// New takes a client without the session transport; these calls issue
// credentials and must not recurse into a refresh.
func New(log *otelzap.Logger, httpClient *httpclient.Client) Repositories {
	return &repositories{
		log:        log,
		httpClient: httpClient,
	}
}

// ExchangeCode implements Repositories.
func (r *repositories) ExchangeCode(ctx context.Context, req request.Callback) (response.AuthResponse, error) {
	var resp response.AuthResponse
	if err := r.httpClient.Do(ctx, http.MethodPost, "/api/v1/auth/callback", nil, req, &resp); err != nil {
		return response.AuthResponse{}, err
	}
	return resp, nil
}

// RefreshToken implements Repositories.
func (r *repositories) RefreshToken(ctx context.Context, req request.Refresh) (response.AuthResponse, error) {
	var resp response.AuthResponse
	if err := r.httpClient.Do(ctx, http.MethodPost, "/api/v1/auth/refresh", nil, req, &resp); err != nil {
		return response.AuthResponse{}, err
	}
	return resp, nil
}
