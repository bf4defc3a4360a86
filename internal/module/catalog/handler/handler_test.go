package handler_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"booking-portal/internal/module/catalog/handler"
	"booking-portal/internal/module/catalog/mocks"
	"booking-portal/internal/module/catalog/models/entity"
	"booking-portal/internal/module/catalog/models/request"
	"booking-portal/internal/pkg/errors"
	"booking-portal/internal/pkg/helpers"
	log_internal "booking-portal/internal/pkg/log"
)

var (
	h   *handler.CatalogHandler
	ucm *mocks.Usecase
	app *fiber.App
)

func setup() {
	ucm = &mocks.Usecase{}
	h = &handler.CatalogHandler{
		Log:       log_internal.Nop(),
		Validator: validator.New(),
		Usecase:   ucm,
	}

	app = fiber.New()
	app.Get("/api/v1/catalog/offerings", h.Offerings)
	app.Get("/api/v1/catalog/ticket-types", h.TicketTypes)
	app.Post("/api/v1/admin/offerings", h.CreateOffering)
	app.Put("/api/v1/admin/offerings/:id", h.UpdateOffering)
	app.Delete("/api/v1/admin/offerings/:id", h.DeleteOffering)
	app.Patch("/api/v1/admin/special-days/:date/toggle-status", h.ToggleSpecialDay)
	app.Post("/api/v1/admin/users", h.CreateUser)
}

func teardown() {
	ucm = nil
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
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp, envelope
}

func TestPublicCatalog(t *testing.T) {
	setup()
	defer teardown()

	ucm.On("ActiveOfferings", mock.Anything).Return([]entity.Offering{{OfferingID: 1, Name: "Jungle Safari", IsActive: true}}, nil)
	ucm.On("ActiveTicketTypes", mock.Anything, "1,2").
		Return([]entity.TicketType{{TypeID: 7, UnitPrice: decimal.NewFromInt(500)}}, nil)
	ucm.On("ActiveTicketTypes", mock.Anything, "").Return(nil, errors.BadRequest("Please select at least one offering"))

	resp, envelope := do(t, http.MethodGet, "/api/v1/catalog/offerings", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, envelope.Data, 1)

	resp, _ = do(t, http.MethodGet, "/api/v1/catalog/ticket-types?offeringIds=1,2", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, envelope = do(t, http.MethodGet, "/api/v1/catalog/ticket-types", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Please select at least one offering", envelope.Message)
}

func TestOfferingWrites(t *testing.T) {
	setup()
	defer teardown()

	ucm.On("SaveOffering", mock.Anything, int64(0), &request.Offering{Name: "Trek"}).Return(entity.Offering{OfferingID: 3}, nil)
	ucm.On("SaveOffering", mock.Anything, int64(3), &request.Offering{Name: "Night Trek"}).Return(entity.Offering{OfferingID: 3}, nil)
	ucm.On("DeleteOffering", mock.Anything, int64(3)).Return(nil)

	resp, _ := do(t, http.MethodPost, "/api/v1/admin/offerings", request.Offering{Name: "Trek"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = do(t, http.MethodPost, "/api/v1/admin/offerings", request.Offering{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = do(t, http.MethodPut, "/api/v1/admin/offerings/3", request.Offering{Name: "Night Trek"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = do(t, http.MethodPut, "/api/v1/admin/offerings/abc", request.Offering{Name: "Night Trek"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, envelope := do(t, http.MethodDelete, "/api/v1/admin/offerings/3", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Offering deleted successfully", envelope.Message)

	ucm.AssertExpectations(t)
}

func TestToggleSpecialDay(t *testing.T) {
	setup()
	defer teardown()

	ucm.On("ToggleSpecialDay", mock.Anything, "2026-12-25").Return(entity.SpecialDay{Date: "2026-12-25", Status: true}, nil)

	resp, envelope := do(t, http.MethodPatch, "/api/v1/admin/special-days/2026-12-25/toggle-status", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, envelope.Data.(map[string]interface{})["status"])
}

func TestCreateUser(t *testing.T) {
	testCases := []struct {
		name string
		user request.User
		code int
	}{
		{
			name: "valid",
			user: request.User{Username: "ranger", Email: "r@park.in", Phone: "+919000000000", TempPassword: "Temp#1234", UserGroup: "STAFF"},
			code: http.StatusCreated,
		},
		{
			name: "unknown group",
			user: request.User{Username: "ranger", Email: "r@park.in", Phone: "+919000000000", TempPassword: "Temp#1234", UserGroup: "ROOT"},
			code: http.StatusBadRequest,
		},
		{
			name: "short password",
			user: request.User{Username: "ranger", Email: "r@park.in", Phone: "+919000000000", TempPassword: "short", UserGroup: "ADMIN"},
			code: http.StatusBadRequest,
		},
		{
			name: "local phone",
			user: request.User{Username: "ranger", Email: "r@park.in", Phone: "9000000000", TempPassword: "Temp#1234", UserGroup: "ADMIN"},
			code: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setup()
			defer teardown()

			ucm.On("CreateUser", mock.Anything, mock.Anything).Return(entity.User{Username: "ranger", UserGroup: "STAFF"}, nil)

			resp, _ := do(t, http.MethodPost, "/api/v1/admin/users", tc.user)

			assert.Equal(t, tc.code, resp.StatusCode)
		})
	}
}
