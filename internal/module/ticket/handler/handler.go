package handler

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	"booking-portal/internal/module/ticket/models/request"
	"booking-portal/internal/module/ticket/usecases"
	"booking-portal/internal/pkg/errors"
	"booking-portal/internal/pkg/helpers"
	"booking-portal/internal/pkg/session"
)

type TicketHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

// staffID names the signed-in gate operator for the backend's audit trail.
func staffID(ctx *fiber.Ctx) string {
	if s, ok := session.FromContext(ctx.UserContext()); ok {
		if s.Username != "" {
			return s.Username
		}
		return s.UserID
	}
	return ""
}

func (h *TicketHandler) Scan(ctx *fiber.Ctx) error {
	var req request.Scan
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	outcome, err := h.Usecase.Scan(ctx.UserContext(), ctx.Params("gate"), &req, staffID(ctx))
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, outcome, string(outcome.State))
}

func (h *TicketHandler) RecordEntry(ctx *fiber.Ctx) error {
	gate := ctx.Params("gate")
	result, err := h.Usecase.RecordEntry(ctx.UserContext(), gate, staffID(ctx))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error record entry at %s: %v", gate, err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, result, "Entry recorded successfully")
}

func (h *TicketHandler) ResetGate(ctx *fiber.Ctx) error {
	return helpers.RespSuccess(ctx, h.Log, h.Usecase.ResetGate(ctx.UserContext(), ctx.Params("gate")), "ready to scan")
}

func (h *TicketHandler) GateStatus(ctx *fiber.Ctx) error {
	outcome := h.Usecase.GateStatus(ctx.UserContext(), ctx.Params("gate"))
	return helpers.RespSuccess(ctx, h.Log, outcome, string(outcome.State))
}

func (h *TicketHandler) SearchTickets(ctx *fiber.Ctx) error {
	var req request.Search
	if err := ctx.QueryParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse query: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse query"))
	}

	if err := h.Validator.Struct(req); err != nil {
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	tickets, err := h.Usecase.SearchTickets(ctx.UserContext(), &req)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, tickets, fmt.Sprintf("%d ticket(s) found", len(tickets)))
}

func (h *TicketHandler) TicketsByBooking(ctx *fiber.Ctx) error {
	tickets, err := h.Usecase.TicketsByBooking(ctx.UserContext(), ctx.Query("bookingId"))
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, tickets, "success get tickets")
}

func (h *TicketHandler) DownloadTicket(ctx *fiber.Ctx) error {
	ticketID := ctx.Params("id")
	pdf, err := h.Usecase.DownloadTicket(ctx.UserContext(), ticketID)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespPDF(ctx, fmt.Sprintf("ticket-%s.pdf", ticketID), pdf)
}
