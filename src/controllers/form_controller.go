package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Atuba426/Airtable-assignment/src/models"
	"github.com/Atuba426/Airtable-assignment/src/services/forms"
	"github.com/Atuba426/Airtable-assignment/src/services/schema"
	"github.com/Atuba426/Airtable-assignment/src/utils"
)

func formError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, forms.ErrFormNotFound):
		return utils.HandleError(c, fiber.StatusNotFound, "Form not found")
	case errors.Is(err, forms.ErrNotOwner):
		return utils.HandleError(c, fiber.StatusForbidden, "Form belongs to another user")
	default:
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
}

// CreateForm godoc
// @Summary      Create a form from selected Airtable fields
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        body  body  models.CreateFormRequest  true  "Form definition"
// @Success      201  {object}  models.Form
// @Failure      400  {object}  models.ErrorResponse
// @Router       /forms [post]
func CreateForm(c *fiber.Ctx) error {
	owner, err := ownerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user id"})
	}

	var req models.CreateFormRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if msgs := utils.ValidateStruct(&req); msgs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body", "errors": msgs})
	}

	form, err := forms.CreateForm(c.Context(), owner, &req)
	if err != nil {
		// Authoring-shape violations (duplicate ids, self-referencing
		// rules, unsupported types) are client errors.
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Form created", "form": form})
}

// GetAllForms godoc
// @Summary      List the caller's forms
// @Tags         forms
// @Produce      json
// @Success      200  {array}  models.FormSummary
// @Router       /forms [get]
func GetAllForms(c *fiber.Ctx) error {
	owner, err := ownerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user id"})
	}

	summaries, err := forms.GetForms(c.Context(), owner)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(summaries)
}

// GetFormByID godoc
// @Summary      Get one of the caller's forms
// @Tags         forms
// @Produce      json
// @Param        id  path  string  true  "Form ID"
// @Success      200  {object}  models.Form
// @Failure      404  {object}  models.ErrorResponse
// @Router       /forms/{id} [get]
func GetFormByID(c *fiber.Ctx) error {
	owner, err := ownerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user id"})
	}
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid form ID"})
	}

	form, err := forms.GetOwnedForm(c.Context(), id, owner)
	if err != nil {
		return formError(c, err)
	}
	return c.JSON(form)
}

// UpdateForm godoc
// @Summary      Update a form's title or fields
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "Form ID"
// @Param        body  body  models.UpdateFormRequest  true  "Changes"
// @Success      200  {object}  models.Form
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /forms/{id} [put]
func UpdateForm(c *fiber.Ctx) error {
	owner, err := ownerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user id"})
	}
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid form ID"})
	}

	var req models.UpdateFormRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	form, err := forms.UpdateForm(c.Context(), id, owner, &req)
	if err != nil {
		if errors.Is(err, forms.ErrFormNotFound) || errors.Is(err, forms.ErrNotOwner) {
			return formError(c, err)
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(form)
}

// DeleteForm godoc
// @Summary      Delete a form and its submissions
// @Tags         forms
// @Param        id  path  string  true  "Form ID"
// @Success      200  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /forms/{id} [delete]
func DeleteForm(c *fiber.Ctx) error {
	owner, err := ownerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user id"})
	}
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid form ID"})
	}

	if err := forms.DeleteForm(c.Context(), id, owner); err != nil {
		return formError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Form deleted"})
}

// GetFormSchema godoc
// @Summary      Get the public rendering schema of a form
// @Description  Field list with visibility rules as data; no auth required
// @Tags         forms
// @Produce      json
// @Param        id  path  string  true  "Form ID"
// @Success      200  {object}  models.FormSchema
// @Failure      404  {object}  models.ErrorResponse
// @Router       /forms/{id}/schema [get]
func GetFormSchema(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid form ID"})
	}

	form, err := forms.GetFormByID(c.Context(), id)
	if err != nil {
		return formError(c, err)
	}
	return c.JSON(schema.ProjectSchema(form))
}
