package http

import (
	"log"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func SetupHttpEngine() *fiber.App {
	app := fiber.New(fiber.Config{
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())

	return app
}

func StartHttpServer(app *fiber.App, port string) {
	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
