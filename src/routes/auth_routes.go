package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Atuba426/Airtable-assignment/src/controllers"
	"github.com/Atuba426/Airtable-assignment/src/middleware"
)

// authRoutes wires the Airtable OAuth flow.
func authRoutes(router fiber.Router) {
	auth := router.Group("/auth/airtable")

	auth.Get("/login", controllers.AirtableLogin)
	auth.Get("/callback", controllers.AirtableCallback)
	auth.Get("/me", middleware.AuthJWT, controllers.Me)
}
