package http

import (
	"embed"
	"io/fs"
	stdhttp "net/http"

	"git.solsynth.dev/hypernet/skypoll/pkg/internal/models"
	"git.solsynth.dev/hypernet/skypoll/pkg/internal/services"
	"github.com/gofiber/template/html/v2"
)

//go:embed views/*.html
var viewFS embed.FS

func NewViewEngine() *html.Engine {
	views, err := fs.Sub(viewFS, "views")
	if err != nil {
		panic(err)
	}

	engine := html.NewFileSystem(stdhttp.FS(views), ".html")
	engine.AddFunc("choices", func() []models.VoteChoice { return models.VoteChoices })
	engine.AddFunc("choiceLabel", func(v models.VoteChoice) string {
		return v.Label()
	})
	engine.AddFunc("cellLabel", func(v *models.VoteChoice) string {
		if v == nil {
			return ""
		}
		return v.Label()
	})
	engine.AddFunc("cellClass", func(v *models.VoteChoice) string {
		if v == nil {
			return "unset"
		}
		switch *v {
		case models.VoteChoiceYes:
			return "yes"
		case models.VoteChoiceMaybe:
			return "maybe"
		default:
			return "no"
		}
	})
	engine.AddFunc("formatDay", func(day models.PollDay) string {
		return day.Time().Format("Mon 02.01")
	})
	engine.AddFunc("formatDate", func(day models.PollDay) string {
		return day.String()
	})
	engine.AddFunc("dayField", services.DayFieldName)

	return engine
}
