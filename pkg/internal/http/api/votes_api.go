package api

import (
	"git.solsynth.dev/hypernet/skypoll/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/skypoll/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func votePoll(c *fiber.Ctx) error {
	poll, err := getPollBySlug(c)
	if err != nil {
		return err
	}

	days, err := services.ListPollDays(poll)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	cookie, _ := exts.GetParticipantCookie(c)
	statuses := services.ParseVoteStatuses(days, func(key string) string {
		return c.FormValue(key)
	})

	if _, _, err := services.SubmitVote(poll.Slug, services.VoteSubmission{
		Cookie:   cookie,
		Nickname: c.FormValue("nickname"),
		Statuses: statuses,
	}); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	exts.SetParticipantCookie(c, cookie)

	return c.Redirect("/poll/"+poll.Slug, fiber.StatusSeeOther)
}
