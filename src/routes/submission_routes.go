package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Atuba426/Airtable-assignment/src/controllers"
	"github.com/Atuba426/Airtable-assignment/src/middleware"
)

// submissionRoutes wires the public submit/validate endpoints, the
// owner-only response listing, and the Airtable webhook.
func submissionRoutes(router fiber.Router) {
	router.Post("/forms/:formId/submissions", controllers.SubmitForm)
	router.Post("/forms/:formId/submissions/validate", controllers.CheckSubmission)
	router.Get("/forms/:formId/responses", middleware.AuthJWT, controllers.ListResponses)

	router.Post("/webhooks/airtable", controllers.AirtableWebhook)
}
