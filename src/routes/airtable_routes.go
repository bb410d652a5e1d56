package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Atuba426/Airtable-assignment/src/controllers"
	"github.com/Atuba426/Airtable-assignment/src/middleware"
)

// airtableRoutes wires field discovery against the connected Airtable
// account. All of it needs a logged-in owner.
func airtableRoutes(router fiber.Router) {
	at := router.Group("/airtable", middleware.AuthJWT)

	at.Get("/bases", controllers.GetBases)
	at.Get("/bases/:baseId/tables", controllers.GetTables)
	at.Get("/bases/:baseId/tables/:tableId/fields", controllers.GetTableFields)
}
