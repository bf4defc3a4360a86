package handler

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	"booking-portal/internal/module/auth/usecases"
	"booking-portal/internal/pkg/errors"
	"booking-portal/internal/pkg/helpers"
	"booking-portal/internal/pkg/middleware"
)

type AuthHandler struct {
	Log          *otelzap.Logger
	Usecase      usecases.Usecase
	SessionTTL   time.Duration
	CookieSecure bool
}

func (h *AuthHandler) Login(ctx *fiber.Ctx) error {
	return ctx.Redirect(h.Usecase.LoginURL(), fiber.StatusFound)
}

// Callback is where the hosted login sends the browser back with a code.
func (h *AuthHandler) Callback(ctx *fiber.Ctx) error {
	if reason := ctx.Query("error"); reason != "" {
		h.Log.Ctx(ctx.UserContext()).Warn(fmt.Sprintf("login refused: %s %s", reason, ctx.Query("error_description")))
		return helpers.RespError(ctx, h.Log, errors.UnauthorizedError("Authentication failed. Please sign in again."))
	}

	s, err := h.Usecase.Callback(ctx.UserContext(), ctx.Query("code"))
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	ctx.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    s.ID,
		Path:     "/",
		Expires:  time.Now().Add(h.SessionTTL),
		Secure:   h.CookieSecure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return ctx.Redirect("/", fiber.StatusFound)
}

func (h *AuthHandler) Logout(ctx *fiber.Ctx) error {
	if err := h.Usecase.Logout(ctx.UserContext(), ctx.Cookies(middleware.SessionCookie)); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	ctx.ClearCookie(middleware.SessionCookie)
	return ctx.Redirect(h.Usecase.LogoutURL(), fiber.StatusSeeOther)
}

func (h *AuthHandler) Me(ctx *fiber.Ctx) error {
	user, err := h.Usecase.CurrentUser(ctx.UserContext())
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespSuccess(ctx, h.Log, user, "success get user")
}
