package repositories

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	"booking-portal/internal/module/catalog/models/entity"
	"booking-portal/internal/module/catalog/models/request"
	"booking-portal/internal/pkg/errors"
	"booking-portal/internal/pkg/httpclient"
)

// List cache keys. Each is a hash with one field per list variant, so a
// single DEL drops every cached variant of a resource.
const (
	KeyOfferings   = "catalog:offerings"
	KeyCategories  = "catalog:ticket-categories"
	KeyTicketTypes = "catalog:ticket-types"
)

type repositories struct {
	log         *otelzap.Logger
	httpClient  *httpclient.Client
	redisClient *redis.Client
	cacheTTL    time.Duration
}

type Repositories interface {
	// http
	ListOfferings(ctx context.Context) ([]entity.Offering, error)
	CreateOffering(ctx context.Context, req request.Offering) (entity.Offering, error)
	UpdateOffering(ctx context.Context, id int64, req request.Offering) (entity.Offering, error)
	DeleteOffering(ctx context.Context, id int64) error
	ListCategories(ctx context.Context) ([]entity.Category, error)
	CreateCategory(ctx context.Context, req request.Category) (entity.Category, error)
	UpdateCategory(ctx context.Context, id int64, req request.Category) (entity.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
	ListTicketTypes(ctx context.Context) ([]entity.TicketType, error)
	ActiveTicketTypesByOfferings(ctx context.Context, offeringIDs []int64) ([]entity.TicketType, error)
	CreateTicketType(ctx context.Context, req request.TicketType) (entity.TicketType, error)
	DeleteTicketType(ctx context.Context, id int64) error
	ListSettings(ctx context.Context) ([]entity.Setting, error)
	CreateSetting(ctx context.Context, req request.Setting) (entity.Setting, error)
	UpdateSetting(ctx context.Context, id int64, req request.Setting) (entity.Setting, error)
	DeleteSetting(ctx context.Context, id int64) error
	ListSpecialDays(ctx context.Context) ([]entity.SpecialDay, error)
	FindSpecialDay(ctx context.Context, date string) (entity.SpecialDay, error)
	CreateSpecialDay(ctx context.Context, req request.CreateSpecialDay) (entity.SpecialDay, error)
	UpdateSpecialDay(ctx context.Context, date string, req request.UpdateSpecialDay) (entity.SpecialDay, error)
	ToggleSpecialDay(ctx context.Context, date string) (entity.SpecialDay, error)
	DeleteSpecialDay(ctx context.Context, date string) error
	ListUsers(ctx context.Context) ([]entity.User, error)
	CreateUser(ctx context.Context, req request.User) (entity.User, error)
	DeleteUser(ctx context.Context, username string) error
	// redis
	GetCachedList(ctx context.Context, key, variant string, dst interface{}) (bool, error)
	CacheList(ctx context.Context, key, variant string, list interface{}) error
	InvalidateLists(ctx context.Context, keys ...string) error
}

func New(log *otelzap.Logger, httpClient *httpclient.Client, redisClient *redis.Client, cacheTTL time.Duration) Repositories {
	return &repositories{
		log:         log,
		httpClient:  httpClient,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

func path(resource string, id interface{}) string {
	return fmt.Sprintf("/api/v1/%s/%s", resource, url.PathEscape(fmt.Sprint(id)))
}

// ListOfferings implements Repositories.
func (r *repositories) ListOfferings(ctx context.Context) ([]entity.Offering, error) {
	var resp []entity.Offering
	if err := r.httpClient.Do(ctx, http.MethodGet, "/api/v1/offerings", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// CreateOffering implements Repositories.
func (r *repositories) CreateOffering(ctx context.Context, req request.Offering) (entity.Offering, error) {
	var resp entity.Offering
	if err := r.httpClient.Do(ctx, http.MethodPost, "/api/v1/offerings", nil, req, &resp); err != nil {
		return entity.Offering{}, err
	}
	return resp, nil
}

// UpdateOffering implements Repositories.
func (r *repositories) UpdateOffering(ctx context.Context, id int64, req request.Offering) (entity.Offering, error) {
	var resp entity.Offering
	if err := r.httpClient.Do(ctx, http.MethodPut, path("offerings", id), nil, req, &resp); err != nil {
		return entity.Offering{}, err
	}
	return resp, nil
}

// DeleteOffering implements Repositories.
func (r *repositories) DeleteOffering(ctx context.Context, id int64) error {
	return r.httpClient.Do(ctx, http.MethodDelete, path("offerings", id), nil, nil, nil)
}

// ListCategories implements Repositories.
func (r *repositories) ListCategories(ctx context.Context) ([]entity.Category, error) {
	var resp []entity.Category
	if err := r.httpClient.Do(ctx, http.MethodGet, "/api/v1/ticket-categories", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// CreateCategory implements Repositories.
func (r *repositories) CreateCategory(ctx context.Context, req request.Category) (entity.Category, error) {
	var resp entity.Category
	if err := r.httpClient.Do(ctx, http.MethodPost, "/api/v1/ticket-categories", nil, req, &resp); err != nil {
		return entity.Category{}, err
	}
	return resp, nil
}

// UpdateCategory implements Repositories.
func (r *repositories) UpdateCategory(ctx context.Context, id int64, req request.Category) (entity.Category, error) {
	var resp entity.Category
	if err := r.httpClient.Do(ctx, http.MethodPut, path("ticket-categories", id), nil, req, &resp); err != nil {
		return entity.Category{}, err
	}
	return resp, nil
}

// DeleteCategory implements Repositories.
func (r *repositories) DeleteCategory(ctx context.Context, id int64) error {
	return r.httpClient.Do(ctx, http.MethodDelete, path("ticket-categories", id), nil, nil, nil)
}

// ListTicketTypes implements Repositories.
func (r *repositories) ListTicketTypes(ctx context.Context) ([]entity.TicketType, error) {
	var resp []entity.TicketType
	if err := r.httpClient.Do(ctx, http.MethodGet, "/api/v1/ticket-types", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// ActiveTicketTypesByOfferings implements Repositories.
func (r *repositories) ActiveTicketTypesByOfferings(ctx context.Context, offeringIDs []int64) ([]entity.TicketType, error) {
	ids := make([]string, 0, len(offeringIDs))
	for _, id := range offeringIDs {
		ids = append(ids, strconv.FormatInt(id, 10))
	}
	query := url.Values{"offeringIds": {strings.Join(ids, ",")}}

	var resp []entity.TicketType
	if err := r.httpClient.Do(ctx, http.MethodGet, "/api/v1/ticket-types/active/by-offerings", query, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// CreateTicketType implements Repositories.
func (r *repositories) CreateTicketType(ctx context.Context, req request.TicketType) (entity.TicketType, error) {
	var resp entity.TicketType
	if err := r.httpClient.Do(ctx, http.MethodPost, "/api/v1/ticket-types", nil, req, &resp); err != nil {
		return entity.TicketType{}, err
	}
	return resp, nil
}

// DeleteTicketType implements Repositories.
func (r *repositories) DeleteTicketType(ctx context.Context, id int64) error {
	return r.httpClient.Do(ctx, http.MethodDelete, path("ticket-types", id), nil, nil, nil)
}

// ListSettings implements Repositories.
func (r *repositories) ListSettings(ctx context.Context) ([]entity.Setting, error) {
	var resp []entity.Setting
	if err := r.httpClient.Do(ctx, http.MethodGet, "/api/v1/settings", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// CreateSetting implements Repositories.
func (r *repositories) CreateSetting(ctx context.Context, req request.Setting) (entity.Setting, error) {
	var resp entity.Setting
	if err := r.httpClient.Do(ctx, http.MethodPost, "/api/v1/settings", nil, req, &resp); err != nil {
		return entity.Setting{}, err
	}
	return resp, nil
}

// UpdateSetting implements Repositories.
func (r *repositories) UpdateSetting(ctx context.Context, id int64, req request.Setting) (entity.Setting, error) {
	var resp entity.Setting
	if err := r.httpClient.Do(ctx, http.MethodPut, path("settings", id), nil, req, &resp); err != nil {
		return entity.Setting{}, err
	}
	return resp, nil
}

// DeleteSetting implements Repositories.
func (r *repositories) DeleteSetting(ctx context.Context, id int64) error {
	return r.httpClient.Do(ctx, http.MethodDelete, path("settings", id), nil, nil, nil)
}

// ListSpecialDays implements Repositories.
func (r *repositories) ListSpecialDays(ctx context.Context) ([]entity.SpecialDay, error) {
	var resp []entity.SpecialDay
	if err := r.httpClient.Do(ctx, http.MethodGet, "/api/v1/special-days", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// FindSpecialDay implements Repositories.
func (r *repositories) FindSpecialDay(ctx context.Context, date string) (entity.SpecialDay, error) {
	var resp entity.SpecialDay
	if err := r.httpClient.Do(ctx, http.MethodGet, path("special-days", date), nil, nil, &resp); err != nil {
		return entity.SpecialDay{}, err
	}
	return resp, nil
}

// CreateSpecialDay implements Repositories.
func (r *repositories) CreateSpecialDay(ctx context.Context, req request.CreateSpecialDay) (entity.SpecialDay, error) {
	var resp entity.SpecialDay
	if err := r.httpClient.Do(ctx, http.MethodPost, "/api/v1/special-days", nil, req, &resp); err != nil {
		return entity.SpecialDay{}, err
	}
	return resp, nil
}

// UpdateSpecialDay implements Repositories.
func (r *repositories) UpdateSpecialDay(ctx context.Context, date string, req request.UpdateSpecialDay) (entity.SpecialDay, error) {
	var resp entity.SpecialDay
	if err := r.httpClient.Do(ctx, http.MethodPut, path("special-days", date), nil, req, &resp); err != nil {
		return entity.SpecialDay{}, err
	}
	return resp, nil
}

// ToggleSpecialDay implements Repositories.
func (r *repositories) ToggleSpecialDay(ctx context.Context, date string) (entity.SpecialDay, error) {
	var resp entity.SpecialDay
	if err := r.httpClient.Do(ctx, http.MethodPatch, path("special-days", date)+"/toggle-status", nil, struct{}{}, &resp); err != nil {
		return entity.SpecialDay{}, err
	}
	return resp, nil
}

// DeleteSpecialDay implements Repositories.
func (r *repositories) DeleteSpecialDay(ctx context.Context, date string) error {
	return r.httpClient.Do(ctx, http.MethodDelete, path("special-days", date), nil, nil, nil)
}

// ListUsers implements Repositories.
func (r *repositories) ListUsers(ctx context.Context) ([]entity.User, error) {
	var resp []entity.User
	if err := r.httpClient.Do(ctx, http.MethodGet, "/api/v1/users", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// CreateUser implements Repositories.
func (r *repositories) CreateUser(ctx context.Context, req request.User) (entity.User, error) {
	var resp entity.User
	if err := r.httpClient.Do(ctx, http.MethodPost, "/api/v1/users", nil, req, &resp); err != nil {
		return entity.User{}, err
	}
	return resp, nil
}

// DeleteUser implements Repositories.
func (r *repositories) DeleteUser(ctx context.Context, username string) error {
	return r.httpClient.Do(ctx, http.MethodDelete, path("users", username), nil, nil, nil)
}

// GetCachedList implements Repositories. A miss returns false, nil.
func (r *repositories) GetCachedList(ctx context.Context, key, variant string, dst interface{}) (bool, error) {
	data, err := r.redisClient.HGet(ctx, key, variant).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, errors.InternalServerError(fmt.Sprintf("error get cached %s: %v", key, err))
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return false, errors.InternalServerError(fmt.Sprintf("error decode cached %s: %v", key, err))
	}
	return true, nil
}

// CacheList implements Repositories. The TTL applies to the whole key.
func (r *repositories) CacheList(ctx context.Context, key, variant string, list interface{}) error {
	data, err := json.Marshal(list)
	if err != nil {
		return errors.InternalServerError(fmt.Sprintf("error encode %s: %v", key, err))
	}

	_, err = r.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, variant, data)
		pipe.Expire(ctx, key, r.cacheTTL)
		return nil
	})
	if err != nil {
		return errors.InternalServerError(fmt.Sprintf("error cache %s: %v", key, err))
	}
	return nil
}

// InvalidateLists implements Repositories.
func (r *repositories) InvalidateLists(ctx context.Context, keys ...string) error {
	if err := r.redisClient.Del(ctx, keys...).Err(); err != nil {
		return errors.InternalServerError(fmt.Sprintf("error invalidate %v: %v", keys, err))
	}
	return nil
}
