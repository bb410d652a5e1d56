package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Atuba426/Airtable-assignment/src/controllers"
	"github.com/Atuba426/Airtable-assignment/src/middleware"
)

// formRoutes wires form authoring (owner only) and the public schema
// endpoint renderers fetch.
func formRoutes(router fiber.Router) {
	forms := router.Group("/forms")

	forms.Get("/:id/schema", controllers.GetFormSchema)

	forms.Post("/", middleware.AuthJWT, controllers.CreateForm)
	forms.Get("/", middleware.AuthJWT, controllers.GetAllForms)
	forms.Get("/:id", middleware.AuthJWT, controllers.GetFormByID)
	forms.Put("/:id", middleware.AuthJWT, controllers.UpdateForm)
	forms.Patch("/:id", middleware.AuthJWT, controllers.UpdateForm)
	forms.Delete("/:id", middleware.AuthJWT, controllers.DeleteForm)
}
