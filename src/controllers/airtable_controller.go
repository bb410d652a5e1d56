package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Atuba426/Airtable-assignment/src/services/airtable"
	"github.com/Atuba426/Airtable-assignment/src/services/auth"
	"github.com/Atuba426/Airtable-assignment/src/utils"
)

// clientForCaller builds an Airtable client from the caller's stored
// access token. The fiber error it returns is already a sent response.
func clientForCaller(c *fiber.Ctx) (*airtable.Client, error) {
	userID, _ := c.Locals("userId").(string)
	user, err := auth.FindUserByID(c.Context(), userID)
	if err != nil {
		return nil, utils.HandleError(c, fiber.StatusUnauthorized, "User not found")
	}
	if user.AccessToken == "" {
		return nil, utils.HandleError(c, fiber.StatusUnauthorized, "No Airtable access token. Please login with Airtable again")
	}
	return airtable.NewClient(user.AccessToken), nil
}

// upstreamError distinguishes an expired token ("re-authenticate") from
// other Airtable failures.
func upstreamError(c *fiber.Ctx, err error) error {
	if errors.Is(err, airtable.ErrUnauthorized) {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Airtable token expired. Please login with Airtable again")
	}
	if errors.Is(err, airtable.ErrNotFound) {
		return utils.HandleError(c, fiber.StatusNotFound, err.Error())
	}
	return utils.HandleError(c, fiber.StatusBadGateway, "Airtable request failed")
}

// GetBases godoc
// @Summary      List the caller's Airtable bases
// @Tags         airtable
// @Produce      json
// @Success      200  {object}  airtable.BasesResponse
// @Failure      401  {object}  models.ErrorResponse
// @Router       /airtable/bases [get]
func GetBases(c *fiber.Ctx) error {
	client, errResp := clientForCaller(c)
	if client == nil {
		return errResp
	}

	bases, err := client.ListBases(c.Context())
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(bases)
}

// GetTables godoc
// @Summary      List tables of a base
// @Tags         airtable
// @Produce      json
// @Param        baseId  path  string  true  "Base ID"
// @Success      200  {object}  airtable.TablesResponse
// @Failure      401  {object}  models.ErrorResponse
// @Router       /airtable/bases/{baseId}/tables [get]
func GetTables(c *fiber.Ctx) error {
	client, errResp := clientForCaller(c)
	if client == nil {
		return errResp
	}

	tables, err := client.ListTables(c.Context(), c.Params("baseId"))
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(tables)
}

// GetTableFields godoc
// @Summary      Get the field descriptors of a table
// @Tags         airtable
// @Produce      json
// @Param        baseId   path  string  true  "Base ID"
// @Param        tableId  path  string  true  "Table ID"
// @Success      200  {object}  airtable.Table
// @Failure      401  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /airtable/bases/{baseId}/tables/{tableId}/fields [get]
func GetTableFields(c *fiber.Ctx) error {
	client, errResp := clientForCaller(c)
	if client == nil {
		return errResp
	}

	baseID := c.Params("baseId")
	tableID := c.Params("tableId")
	if baseID == "" || tableID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":    "Missing parameters",
			"required": []string{"baseId", "tableId"},
		})
	}

	table, err := client.GetTableFields(c.Context(), baseID, tableID)
	if err != nil {
		return upstreamError(c, err)
	}

	return c.JSON(fiber.Map{
		"tableId":   table.ID,
		"tableName": table.Name,
		"fields":    table.Fields,
	})
}
