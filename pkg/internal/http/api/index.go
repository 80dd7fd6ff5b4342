package api

import (
	"git.solsynth.dev/hypernet/skypoll/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func MapControllers(app *fiber.App, baseURL string, clock services.Clock) {
	app.Get("/", redirectToLatestPoll)
	app.Get("/create", newPollForm(clock))
	app.Post("/create", createPoll)

	app.Get("/poll/:slug", getPoll(clock))
	app.Post("/poll/:slug/vote", votePoll)

	api := app.Group(baseURL)
	{
		api.Get("/polls/:slug", getPollGrid)
	}
}
