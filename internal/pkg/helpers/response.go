package helpers

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	"booking-portal/internal/pkg/errors"
)

type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func RespSuccess(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, message string) error {
	return ctx.Status(http.StatusOK).JSON(Response{
		Code:    http.StatusOK,
		Message: message,
		Data:    data,
	})
}

func RespCreated(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, message string) error {
	return ctx.Status(http.StatusCreated).JSON(Response{
		Code:    http.StatusCreated,
		Message: message,
		Data:    data,
	})
}

func RespError(ctx *fiber.Ctx, log *otelzap.Logger, err error) error {
	code := errors.Code(err)
	if code >= http.StatusInternalServerError {
		log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("%s %s: %v", ctx.Method(), ctx.Path(), err))
	}

	return ctx.Status(code).JSON(Response{
		Code:    code,
		Message: errors.Message(err),
		Data:    nil,
	})
}

// RespErrorWithData is used when the caller still has state worth showing,
// e.g. the failed checkout attempt.
func RespErrorWithData(ctx *fiber.Ctx, log *otelzap.Logger, err error, data interface{}) error {
	code := errors.Code(err)
	if code >= http.StatusInternalServerError {
		log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("%s %s: %v", ctx.Method(), ctx.Path(), err))
	}

	return ctx.Status(code).JSON(Response{
		Code:    code,
		Message: errors.Message(err),
		Data:    data,
	})
}

// RespPDF streams a ticket document as an attachment.
func RespPDF(ctx *fiber.Ctx, filename string, pdf []byte) error {
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return ctx.Status(http.StatusOK).Send(pdf)
}
