package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// handleError answers json below /api and renders the error page anywhere
// else.
func handleError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Something went wrong."

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}

	if code >= fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Msg("An error occurred when handling request...")
		message = "Something went wrong."
	}

	if strings.HasPrefix(c.Path(), "/api") {
		return c.Status(code).JSON(fiber.Map{"error": message})
	}

	if rerr := c.Status(code).Render("error", fiber.Map{
		"PageTitle": message,
		"Code":      code,
		"Message":   message,
	}, "layout"); rerr != nil {
		return c.Status(code).SendString(message)
	}
	return nil
}
