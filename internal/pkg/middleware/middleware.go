package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	"booking-portal/internal/pkg/errors"
	"booking-portal/internal/pkg/helpers"
	"booking-portal/internal/pkg/session"
)

const SessionCookie = "session_id"

type Middleware struct {
	Log      *otelzap.Logger
	Sessions session.Store
}

// LoadSession puts the caller's session, if any, into the user context so
// outgoing backend calls carry its token. Anonymous callers pass through.
func (m *Middleware) LoadSession(ctx *fiber.Ctx) error {
	id := ctx.Cookies(SessionCookie)
	if id == "" {
		return ctx.Next()
	}

	s, err := m.Sessions.Get(ctx.UserContext(), id)
	if err != nil {
		if !errors.Is(err, session.ErrNotFound) {
			m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error load session: %v", err))
		}
		return ctx.Next()
	}

	ctx.SetUserContext(session.WithContext(ctx.UserContext(), s))
	ctx.Locals("user_id", s.UserID)
	ctx.Locals("username", s.Username)

	return ctx.Next()
}

// RequireGroups admits only sessions in one of groups.
func (m *Middleware) RequireGroups(groups ...string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		s, ok := session.FromContext(ctx.UserContext())
		if !ok {
			return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("login required"))
		}

		if !s.HasGroup(groups...) {
			m.Log.Ctx(ctx.UserContext()).Warn(fmt.Sprintf("user %s denied, groups %v", s.Username, s.Groups))
			return helpers.RespError(ctx, m.Log, errors.Forbidden("insufficient permissions"))
		}

		return ctx.Next()
	}
}
