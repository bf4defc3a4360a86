package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	authHandler "booking-portal/internal/module/auth/handler"
	bookingHandler "booking-portal/internal/module/booking/handler"
	catalogHandler "booking-portal/internal/module/catalog/handler"
	ticketHandler "booking-portal/internal/module/ticket/handler"
	"booking-portal/internal/pkg/middleware"
	"booking-portal/internal/pkg/session"
)

type Handlers struct {
	Auth    *authHandler.AuthHandler
	Booking *bookingHandler.BookingHandler
	Catalog *catalogHandler.CatalogHandler
	Ticket  *ticketHandler.TicketHandler
}

func Initialize(app *fiber.App, h Handlers, m *middleware.Middleware) *fiber.App {

	// health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("OK")
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Use(m.LoadSession)

	// session
	app.Get("/auth/login", h.Auth.Login)
	app.Get("/callback", h.Auth.Callback)
	app.Post("/auth/logout", h.Auth.Logout)
	app.Get("/auth/me", h.Auth.Me)

	v1 := app.Group("/api/v1")

	// public routes
	catalog := v1.Group("/catalog")
	catalog.Get("/offerings", h.Catalog.Offerings)
	catalog.Get("/categories", h.Catalog.Categories)
	catalog.Get("/ticket-types", h.Catalog.TicketTypes)

	v1.Post("/checkout", h.Booking.StartCheckout)
	v1.Get("/checkout/:attemptId", h.Booking.GetAttempt)
	v1.Post("/checkout/:attemptId/complete", h.Booking.CompleteCheckout)
	v1.Post("/checkout/:attemptId/dismiss", h.Booking.DismissCheckout)
	v1.Get("/checkout/:attemptId/tickets.pdf", h.Booking.DownloadCheckoutTickets)

	// staff routes
	staff := v1.Group("/staff", m.RequireGroups(session.GroupStaff, session.GroupAdmin))
	staff.Get("/bookings/:id", h.Booking.FindBooking)
	staff.Patch("/bookings/:id/reschedule", h.Booking.RescheduleBooking)
	staff.Get("/bookings/:id/tickets.pdf", h.Booking.DownloadTickets)
	staff.Get("/tickets/search", h.Ticket.SearchTickets)
	staff.Get("/tickets", h.Ticket.TicketsByBooking)
	staff.Get("/tickets/:id/pdf", h.Ticket.DownloadTicket)
	staff.Get("/gates/:gate", h.Ticket.GateStatus)
	staff.Post("/gates/:gate/scan", h.Ticket.Scan)
	staff.Post("/gates/:gate/entry", h.Ticket.RecordEntry)
	staff.Post("/gates/:gate/reset", h.Ticket.ResetGate)

	// admin routes
	admin := v1.Group("/admin", m.RequireGroups(session.GroupAdmin))
	admin.Get("/offerings", h.Catalog.ListOfferings)
	admin.Post("/offerings", h.Catalog.CreateOffering)
	admin.Put("/offerings/:id", h.Catalog.UpdateOffering)
	admin.Delete("/offerings/:id", h.Catalog.DeleteOffering)

	admin.Get("/ticket-categories", h.Catalog.ListCategories)
	admin.Post("/ticket-categories", h.Catalog.CreateCategory)
	admin.Put("/ticket-categories/:id", h.Catalog.UpdateCategory)
	admin.Delete("/ticket-categories/:id", h.Catalog.DeleteCategory)

	admin.Get("/ticket-types", h.Catalog.ListTicketTypes)
	admin.Post("/ticket-types", h.Catalog.CreateTicketType)
	admin.Delete("/ticket-types/:id", h.Catalog.DeleteTicketType)

	admin.Get("/settings", h.Catalog.ListSettings)
	admin.Post("/settings", h.Catalog.CreateSetting)
	admin.Put("/settings/:id", h.Catalog.UpdateSetting)
	admin.Delete("/settings/:id", h.Catalog.DeleteSetting)

	admin.Get("/special-days", h.Catalog.ListSpecialDays)
	admin.Post("/special-days", h.Catalog.CreateSpecialDay)
	admin.Get("/special-days/:date", h.Catalog.GetSpecialDay)
	admin.Put("/special-days/:date", h.Catalog.UpdateSpecialDay)
	admin.Patch("/special-days/:date/toggle-status", h.Catalog.ToggleSpecialDay)
	admin.Delete("/special-days/:date", h.Catalog.DeleteSpecialDay)

	admin.Get("/users", h.Catalog.ListUsers)
	admin.Post("/users", h.Catalog.CreateUser)
	admin.Delete("/users/:username", h.Catalog.DeleteUser)

	return app

}
