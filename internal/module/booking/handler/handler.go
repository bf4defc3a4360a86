package handler

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	"booking-portal/internal/module/booking/models/entity"
	"booking-portal/internal/module/booking/models/request"
	"booking-portal/internal/module/booking/usecases"
	"booking-portal/internal/pkg/errors"
	"booking-portal/internal/pkg/helpers"
	"booking-portal/internal/pkg/messagestream"
)

type BookingHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
	Publish   message.Publisher
}

func (h *BookingHandler) StartCheckout(ctx *fiber.Ctx) error {
	var req request.Checkout
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	resp, err := h.Usecase.StartCheckout(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error start checkout: %v", err))
		if resp.AttemptID != "" {
			return helpers.RespErrorWithData(ctx, h.Log, err, resp)
		}
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "payment order created")
}

func (h *BookingHandler) GetAttempt(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.GetAttempt(ctx.UserContext(), ctx.Params("attemptId"))
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get checkout")
}

// CompleteCheckout receives the payment widget's completion callback.
func (h *BookingHandler) CompleteCheckout(ctx *fiber.Ctx) error {
	var req entity.SignedPaymentResult
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	attemptID := ctx.Params("attemptId")
	if err := h.Usecase.CompleteCheckout(ctx.UserContext(), attemptID, &req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error complete checkout %s: %v", attemptID, err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "payment received, verifying")
}

// DismissCheckout receives the payment widget's dismissal.
func (h *BookingHandler) DismissCheckout(ctx *fiber.Ctx) error {
	attemptID := ctx.Params("attemptId")
	if err := h.Usecase.DismissCheckout(ctx.UserContext(), attemptID); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error dismiss checkout %s: %v", attemptID, err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "Payment cancelled by user")
}

func (h *BookingHandler) DownloadTickets(ctx *fiber.Ctx) error {
	bookingID := ctx.Params("id")
	pdf, err := h.Usecase.DownloadTickets(ctx.UserContext(), bookingID)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespPDF(ctx, fmt.Sprintf("booking-%s-tickets.pdf", bookingID), pdf)
}

// DownloadCheckoutTickets lets the customer fetch the tickets of the
// booking their checkout confirmed.
func (h *BookingHandler) DownloadCheckoutTickets(ctx *fiber.Ctx) error {
	attemptID := ctx.Params("attemptId")
	bookingID, pdf, err := h.Usecase.DownloadCheckoutTickets(ctx.UserContext(), attemptID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error download tickets for checkout %s: %v", attemptID, err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespPDF(ctx, fmt.Sprintf("booking-%s-tickets.pdf", bookingID), pdf)
}

func (h *BookingHandler) FindBooking(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.FindBooking(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "Booking found")
}

func (h *BookingHandler) RescheduleBooking(ctx *fiber.Ctx) error {
	var req request.Reschedule
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("Please select a new visit date"))
	}

	resp, err := h.Usecase.RescheduleBooking(ctx.UserContext(), ctx.Params("id"), &req)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "Booking rescheduled successfully")
}

func (h *BookingHandler) ConsumeSettlementIncident(msg *message.Message) error {
	var req request.SettlementIncident
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error unmarshal message: %v", err))

		reqPoisoned := request.PoisonedQueue{
			TopicTarget: messagestream.TopicSettlementIncident,
			ErrorMsg:    err.Error(),
			Payload:     string(msg.Payload),
		}
		if err := messagestream.PublishJSON(h.Publish, messagestream.TopicPoisoned, reqPoisoned); err != nil {
			h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error publish to poison queue: %v", err))
			return err
		}

		// a malformed payload will never decode, retrying is pointless
		return nil
	}

	if err := h.Usecase.RecordIncident(msg.Context(), &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error record settlement incident %s: %v", req.AttemptID, err))
		return err
	}

	return nil
}

func (h *BookingHandler) PrefetchTicketPDF(ctx context.Context, t *asynq.Task) error {
	var req request.PrefetchTickets
	if err := json.Unmarshal(t.Payload(), &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error unmarshal payload: %v", err))
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error validate payload: %v", err))
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}

	if err := h.Usecase.PrefetchTicketPDF(ctx, &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error prefetch ticket pdf: %v", err))
		return err
	}

	return nil
}
