package controllers

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Atuba426/Airtable-assignment/src/services/auth"
)

func frontendURL() string {
	if url := os.Getenv("FRONTEND_URL"); url != "" {
		return url
	}
	return "http://localhost:5173"
}

// ownerID reads the authenticated user id set by the JWT middleware.
func ownerID(c *fiber.Ctx) (primitive.ObjectID, error) {
	userID, _ := c.Locals("userId").(string)
	return primitive.ObjectIDFromHex(userID)
}

// AirtableLogin godoc
// @Summary      Start the Airtable OAuth login
// @Description  Redirects the browser to Airtable's consent screen (PKCE)
// @Tags         auth
// @Success      302
// @Failure      500  {object}  models.ErrorResponse
// @Router       /auth/airtable/login [get]
func AirtableLogin(c *fiber.Ctx) error {
	authURL, err := auth.StartLogin(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not start login"})
	}
	return c.Redirect(authURL, fiber.StatusFound)
}

// AirtableCallback godoc
// @Summary      Airtable OAuth callback
// @Description  Exchanges the authorization code and redirects to the frontend with a bearer token
// @Tags         auth
// @Param        code   query  string  true   "Authorization code"
// @Param        state  query  string  true   "OAuth state"
// @Success      302
// @Failure      400  {object}  models.ErrorResponse
// @Router       /auth/airtable/callback [get]
func AirtableCallback(c *fiber.Ctx) error {
	if oauthErr := c.Query("error"); oauthErr != "" {
		desc := c.Query("error_description")
		if desc == "" {
			desc = oauthErr
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "OAuth error: " + desc})
	}

	state := c.Query("state")
	code := c.Query("code")
	if state == "" || code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing code or state"})
	}

	_, token, err := auth.CompleteLogin(c.Context(), state, code)
	if err != nil {
		if err == auth.ErrInvalidState {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid OAuth state"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "OAuth callback failed"})
	}

	return c.Redirect(frontendURL()+"/dashboard?token="+token, fiber.StatusFound)
}

// Me godoc
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  models.User
// @Failure      401  {object}  models.ErrorResponse
// @Router       /auth/airtable/me [get]
func Me(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)
	user, err := auth.FindUserByID(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
	}
	return c.JSON(user)
}
