package routes

import (
	"github.com/gofiber/fiber/v2"
)

// InitRoutes mounts every module's routes under /api.
func InitRoutes(app *fiber.App) {
	api := app.Group("/api")

	authRoutes(api)
	airtableRoutes(api)
	formRoutes(api)
	submissionRoutes(api)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("API is running...")
	})
}
