package handler

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	"booking-portal/internal/module/catalog/models/request"
	"booking-portal/internal/module/catalog/usecases"
	"booking-portal/internal/pkg/errors"
	"booking-portal/internal/pkg/helpers"
)

type CatalogHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

// bind parses and validates a request body.
func bind[T any](h *CatalogHandler, ctx *fiber.Ctx) (*T, error) {
	req := new(T)
	if err := ctx.BodyParser(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return nil, errors.BadRequest("error parse request")
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return nil, errors.BadRequest(err.Error())
	}

	return req, nil
}

func paramID(ctx *fiber.Ctx) (int64, error) {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, errors.BadRequest(fmt.Sprintf("invalid id %q", ctx.Params("id")))
	}
	return int64(id), nil
}

// public catalog

func (h *CatalogHandler) Offerings(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.ActiveOfferings(ctx.UserContext())
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespSuccess(ctx, h.Log, resp, "success get offerings")
}

func (h *CatalogHandler) Categories(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.ActiveCategories(ctx.UserContext())
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespSuccess(ctx, h.Log, resp, "success get categories")
}

func (h *CatalogHandler) TicketTypes(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.ActiveTicketTypes(ctx.UserContext(), ctx.Query("offeringIds"))
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespSuccess(ctx, h.Log, resp, "success get ticket types")
}

// admin: offerings

func (h *CatalogHandler) ListOfferings(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.Offerings(ctx.UserContext())
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespSuccess(ctx, h.Log, resp, "success get offerings")
}

func (h *CatalogHandler) CreateOffering(ctx *fiber.Ctx) error {
	req, err := bind[request.Offering](h, ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.SaveOffering(ctx.UserContext(), 0, req)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespCreated(ctx, h.Log, resp, "Offering added successfully")
}

func (h *CatalogHandler) UpdateOffering(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	req, err := bind[request.Offering](h, ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.SaveOffering(ctx.UserContext(), id, req)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespSuccess(ctx, h.Log, resp, "Offering updated successfully")
}

func (h *CatalogHandler) DeleteOffering(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	if err := h.Usecase.DeleteOffering(ctx.UserContext(), id); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespSuccess(ctx, h.Log, nil, "Offering deleted successfully")
}

// admin: ticket categories

func (h *CatalogHandler) ListCategories(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.Categories(ctx.UserContext())
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespSuccess(ctx, h.Log, resp, "success get categories")
}

func (h *CatalogHandler) CreateCategory(ctx *fiber.Ctx) error {
	req, err := bind[request.Category](h, ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.SaveCategory(ctx.UserContext(), 0, req)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespCreated(ctx, h.Log, resp, "Category added successfully")
}

func (h *CatalogHandler) UpdateCategory(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	req, err := bind[request.Category](h, ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.SaveCategory(ctx.UserContext(), id, req)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespSuccess(ctx, h.Log, resp, "Category updated successfully")
}

func (h *CatalogHandler) DeleteCategory(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	if err := h.Usecase.DeleteCategory(ctx.UserContext(), id); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespSuccess(ctx, h.Log, nil, "Category deleted successfully")
}

// admin: ticket types

func (h *CatalogHandler) ListTicketTypes(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.TicketTypes(ctx.UserContext())
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespSuccess(ctx, h.Log, resp, "success get ticket types")
}

func (h *CatalogHandler) CreateTicketType(ctx *fiber.Ctx) error {
	req, err := bind[request.TicketType](h, ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.CreateTicketType(ctx.UserContext(), req)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespCreated(ctx, h.Log, resp, "Ticket type added successfully")
}

func (h *CatalogHandler) DeleteTicketType(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	if err := h.Usecase.DeleteTicketType(ctx.UserContext(), id); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespSuccess(ctx, h.Log, nil, "Ticket type deleted successfully")
}

// admin: settings

func (h *CatalogHandler) ListSettings(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.Settings(ctx.UserContext())
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespSuccess(ctx, h.Log, resp, "success get settings")
}

func (h *CatalogHandler) CreateSetting(ctx *fiber.Ctx) error {
	req, err := bind[request.Setting](h, ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.SaveSetting(ctx.UserContext(), 0, req)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespCreated(ctx, h.Log, resp, "Setting added successfully")
}

func (h *CatalogHandler) UpdateSetting(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	req, err := bind[request.Setting](h, ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.SaveSetting(ctx.UserContext(), id, req)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespSuccess(ctx, h.Log, resp, "Setting updated successfully")
}

func (h *CatalogHandler) DeleteSetting(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	if err := h.Usecase.DeleteSetting(ctx.UserContext(), id); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespSuccess(ctx, h.Log, nil, "Setting deleted successfully")
}

// admin: special days, addressed by date

func (h *CatalogHandler) ListSpecialDays(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.SpecialDays(ctx.UserContext())
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespSuccess(ctx, h.Log, resp, "success get special days")
}

func (h *CatalogHandler) GetSpecialDay(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.SpecialDay(ctx.UserContext(), ctx.Params("date"))
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespSuccess(ctx, h.Log, resp, "success get special day")
}

func (h *CatalogHandler) CreateSpecialDay(ctx *fiber.Ctx) error {
	req, err := bind[request.CreateSpecialDay](h, ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.CreateSpecialDay(ctx.UserContext(), req)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespCreated(ctx, h.Log, resp, "Special day added successfully")
}

func (h *CatalogHandler) UpdateSpecialDay(ctx *fiber.Ctx) error {
	req, err := bind[request.UpdateSpecialDay](h, ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.UpdateSpecialDay(ctx.UserContext(), ctx.Params("date"), req)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespSuccess(ctx, h.Log, resp, "Special day updated successfully")
}

func (h *CatalogHandler) ToggleSpecialDay(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.ToggleSpecialDay(ctx.UserContext(), ctx.Params("date"))
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespSuccess(ctx, h.Log, resp, "Special day status updated")
}

func (h *CatalogHandler) DeleteSpecialDay(ctx *fiber.Ctx) error {
	if err := h.Usecase.DeleteSpecialDay(ctx.UserContext(), ctx.Params("date")); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespSuccess(ctx, h.Log, nil, "Special day deleted successfully")
}

// admin: users

func (h *CatalogHandler) ListUsers(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.Users(ctx.UserContext())
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespSuccess(ctx, h.Log, resp, "success get users")
}

func (h *CatalogHandler) CreateUser(ctx *fiber.Ctx) error {
	req, err := bind[request.User](h, ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.CreateUser(ctx.UserContext(), req)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespCreated(ctx, h.Log, resp, "User created successfully")
}

func (h *CatalogHandler) DeleteUser(ctx *fiber.Ctx) error {
	if err := h.Usecase.DeleteUser(ctx.UserContext(), ctx.Params("username")); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespSuccess(ctx, h.Log, nil, "User deleted successfully")
}
