package controllers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Atuba426/Airtable-assignment/src/models"
	"github.com/Atuba426/Airtable-assignment/src/services/forms"
	"github.com/Atuba426/Airtable-assignment/src/services/schema"
	submissionSvc "github.com/Atuba426/Airtable-assignment/src/services/submission"
	"github.com/Atuba426/Airtable-assignment/src/utils"
)

// SubmitForm godoc
// @Summary      Submit answers to a form
// @Description  Validates against the currently visible fields, writes the record back to Airtable, and persists the submission. Public.
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Param        formId  path  string          true  "Form ID"
// @Param        body    body  map[string]any  true  "Answers keyed by field id"
// @Success      201  {object}  models.Submission
// @Failure      400  {object}  models.ValidationResult
// @Failure      404  {object}  models.ErrorResponse
// @Router       /forms/{formId}/submissions [post]
func SubmitForm(c *fiber.Ctx) error {
	formID, err := primitive.ObjectIDFromHex(c.Params("formId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid form ID"})
	}

	var answers map[string]any
	if err := c.BodyParser(&answers); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	created, result, err := submissionSvc.Submit(c.Context(), formID, answers)
	if err != nil {
		return formError(c, err)
	}
	if !result.Accepted {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": result.Errors})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Submission saved", "submission": created})
}

// CheckSubmission godoc
// @Summary      Dry-run validation of answers
// @Description  Same validation as submit, nothing persisted and no write-back. Public.
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Param        formId  path  string          true  "Form ID"
// @Param        body    body  map[string]any  true  "Answers keyed by field id"
// @Success      200  {object}  models.ValidationResult
// @Failure      404  {object}  models.ErrorResponse
// @Router       /forms/{formId}/submissions/validate [post]
func CheckSubmission(c *fiber.Ctx) error {
	formID, err := primitive.ObjectIDFromHex(c.Params("formId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid form ID"})
	}

	var answers map[string]any
	if err := c.BodyParser(&answers); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	form, err := forms.GetFormByID(c.Context(), formID)
	if err != nil {
		return formError(c, err)
	}

	return c.JSON(schema.ValidateSubmission(form, answers))
}

// ListResponses godoc
// @Summary      List a form's submissions
// @Tags         submissions
// @Produce      json
// @Param        formId  path  string  true  "Form ID"
// @Success      200  {array}  models.Submission
// @Failure      404  {object}  models.ErrorResponse
// @Router       /forms/{formId}/responses [get]
func ListResponses(c *fiber.Ctx) error {
	owner, err := ownerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user id"})
	}
	formID, err := primitive.ObjectIDFromHex(c.Params("formId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid form ID"})
	}

	if _, err := forms.GetOwnedForm(c.Context(), formID, owner); err != nil {
		return formError(c, err)
	}

	subs, err := submissionSvc.GetByFormID(c.Context(), formID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"responses": subs})
}

// AirtableWebhook godoc
// @Summary      Inbound Airtable change notification
// @Description  record.updated overwrites stored answers, record.deleted flags the submission
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        body  body  models.WebhookEvent  true  "Event"
// @Success      200  {object}  models.ErrorResponse
// @Failure      400  {object}  models.ErrorResponse
// @Router       /webhooks/airtable [post]
func AirtableWebhook(c *fiber.Ctx) error {
	var event models.WebhookEvent
	if err := c.BodyParser(&event); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid webhook payload"})
	}
	if msgs := utils.ValidateStruct(&event); msgs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid webhook payload", "errors": msgs})
	}

	matched, err := submissionSvc.ApplyWebhook(c.Context(), &event)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Webhook processed", "matched": matched})
}
