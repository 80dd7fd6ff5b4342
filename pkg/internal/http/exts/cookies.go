package exts

import (
	"time"

	"git.solsynth.dev/hypernet/skypoll/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/spf13/viper"
)

const (
	defaultCookieName   = "user_id"
	defaultCookieMaxAge = 365 * 24 * time.Hour
)

func ParticipantCookieName() string {
	if name := viper.GetString("cookie.name"); len(name) > 0 {
		return name
	}
	return defaultCookieName
}

// GetParticipantCookie returns the participant identity of the request. A
// missing or unusable cookie is replaced by a new identity and fresh is true,
// the caller is expected to send it back with SetParticipantCookie.
func GetParticipantCookie(c *fiber.Ctx) (value string, fresh bool) {
	value = utils.CopyString(c.Cookies(ParticipantCookieName()))
	if services.IsUsableUserCookie(value) {
		return value, false
	}
	return services.GenerateParticipantID(), true
}

func SetParticipantCookie(c *fiber.Ctx, value string) {
	maxAge := viper.GetDuration("cookie.max_age")
	if maxAge <= 0 {
		maxAge = defaultCookieMaxAge
	}

	c.Cookie(&fiber.Cookie{
		Name:     ParticipantCookieName(),
		Value:    value,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		Expires:  time.Now().Add(maxAge),
		Secure:   viper.GetBool("cookie.secure"),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
