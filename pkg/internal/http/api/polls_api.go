package api

import (
	"errors"
	"time"

	"git.solsynth.dev/hypernet/skypoll/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/skypoll/pkg/internal/models"
	"git.solsynth.dev/hypernet/skypoll/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

type pollForm struct {
	Title       string `form:"title" validate:"required,max=200"`
	Organizer   string `form:"organizer" validate:"required,max=200"`
	Description string `form:"description" validate:"max=200"`
	DateFrom    string `form:"date_from" validate:"required,datetime=2006-01-02"`
	DateTo      string `form:"date_to" validate:"required,datetime=2006-01-02"`
}

func renderPollForm(c *fiber.Ctx, status int, form pollForm, errs map[string]string) error {
	return c.Status(status).Render("poll_form", fiber.Map{
		"PageTitle": "New poll",
		"Form":      form,
		"Errors":    errs,
	}, "layout")
}

func redirectToLatestPoll(c *fiber.Ctx) error {
	poll, err := services.GetLatestPoll()
	if errors.Is(err, services.ErrPollNotFound) {
		return c.Redirect("/create")
	} else if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Redirect("/poll/" + poll.Slug)
}

func newPollForm(clock services.Clock) fiber.Handler {
	return func(c *fiber.Ctx) error {
		draft := services.NewPollDraft(clock)
		return renderPollForm(c, fiber.StatusOK, pollForm{
			Title:    draft.Title,
			DateFrom: draft.DateFrom.Format(models.DateLayout),
			DateTo:   draft.DateTo.Format(models.DateLayout),
		}, nil)
	}
}

func createPoll(c *fiber.Ctx) error {
	var form pollForm
	errs, err := exts.BindForm(c, &form)
	if err != nil {
		return err
	}
	if len(errs) > 0 {
		return renderPollForm(c, fiber.StatusUnprocessableEntity, form, errs)
	}

	dateFrom, _ := time.Parse(models.DateLayout, form.DateFrom)
	dateTo, _ := time.Parse(models.DateLayout, form.DateTo)

	poll, err := services.NewPoll(services.PollDraft{
		Title:       form.Title,
		Organizer:   form.Organizer,
		Description: form.Description,
		DateFrom:    dateFrom,
		DateTo:      dateTo,
	})
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		return renderPollForm(c, fiber.StatusUnprocessableEntity, form, verr.Fields)
	} else if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Redirect("/poll/"+poll.Slug, fiber.StatusSeeOther)
}

func getPollBySlug(c *fiber.Ctx) (models.Poll, error) {
	poll, err := services.GetPollBySlug(c.Params("slug"))
	if errors.Is(err, services.ErrPollNotFound) {
		return poll, fiber.NewError(fiber.StatusNotFound, err.Error())
	} else if err != nil {
		return poll, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return poll, nil
}

func getPoll(clock services.Clock) fiber.Handler {
	return func(c *fiber.Ctx) error {
		poll, err := getPollBySlug(c)
		if err != nil {
			return err
		}

		grid, err := services.BuildPollGrid(poll)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		cookie, fresh := exts.GetParticipantCookie(c)
		editor, err := services.GetBallotEditor(poll, grid.Days, cookie)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if fresh {
			exts.SetParticipantCookie(c, cookie)
			log.Debug().Str("slug", poll.Slug).Msg("Issued a new participant cookie.")
		}

		return c.Render("poll_detail", fiber.Map{
			"PageTitle": poll.Title,
			"Poll":      poll,
			"Open":      poll.IsOpen(clock.Now()),
			"Grid":      grid,
			"Editor":    editor,
		}, "layout")
	}
}

func getPollGrid(c *fiber.Ctx) error {
	poll, err := getPollBySlug(c)
	if err != nil {
		return err
	}

	grid, err := services.BuildPollGrid(poll)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(grid)
}
