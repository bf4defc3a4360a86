package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	log_internal "booking-portal/internal/pkg/log"
	"booking-portal/internal/pkg/middleware"
	"booking-portal/internal/pkg/session"
)

type stubStore map[string]session.Session

func (s stubStore) Get(ctx context.Context, id string) (session.Session, error) {
	v, ok := s[id]
	if !ok {
		return session.Session{}, session.ErrNotFound
	}
	return v, nil
}

func (s stubStore) Save(ctx context.Context, v session.Session) error { s[v.ID] = v; return nil }

func (s stubStore) Delete(ctx context.Context, id string) error { delete(s, id); return nil }

func setup() *fiber.App {
	m := middleware.Middleware{
		Log: log_internal.Nop(),
		Sessions: stubStore{
			"staff": {ID: "staff", Username: "gatekeeper", Groups: []string{session.GroupStaff}},
			"admin": {ID: "admin", Username: "root", Groups: []string{session.GroupAdmin}},
		},
	}

	app := fiber.New()
	app.Use(m.LoadSession)
	app.Get("/staff", m.RequireGroups(session.GroupStaff, session.GroupAdmin), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("username").(string))
	})
	app.Get("/admin", m.RequireGroups(session.GroupAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})
	return app
}

func TestRequireGroups(t *testing.T) {
	app := setup()

	testCases := []struct {
		name   string
		path   string
		cookie string
		status int
	}{
		{"anonymous", "/staff", "", http.StatusUnauthorized},
		{"unknown session", "/staff", "ghost", http.StatusUnauthorized},
		{"staff on staff route", "/staff", "staff", http.StatusOK},
		{"admin on staff route", "/staff", "admin", http.StatusOK},
		{"staff on admin route", "/admin", "staff", http.StatusForbidden},
		{"admin on admin route", "/admin", "admin", http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: tc.cookie})
			}

			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}
