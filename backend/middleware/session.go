package middleware

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"giftbox/backend/config"
	"giftbox/backend/session"
	"giftbox/backend/utils"
)

const sessionLocal = "session"

// SessionMiddleware resolves the caller's session from the session cookie or a bearer token.
// Unknown, expired or missing tokens start a fresh session and set a new cookie.
func SessionMiddleware(registry *session.Registry, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if id, err := utils.ExtractSessionID(sessionToken(c), cfg); err == nil {
			if s, ok := registry.Get(id); ok {
				c.Locals(sessionLocal, s)
				return c.Next()
			}
		}

		s := registry.Create()
		token, err := utils.GenerateSessionToken(s.ID, cfg)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not start session")
		}

		cookie := &fiber.Cookie{
			Name:     utils.SessionCookie,
			Value:    token,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		}
		if cfg.SessionTTL > 0 {
			cookie.Expires = time.Now().Add(cfg.SessionTTL)
		}
		c.Cookie(cookie)

		c.Locals(sessionLocal, s)
		return c.Next()
	}
}

func sessionToken(c *fiber.Ctx) string {
	if token := c.Cookies(utils.SessionCookie); token != "" {
		return token
	}
	return strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
}

// CurrentSession returns the session resolved by SessionMiddleware.
func CurrentSession(c *fiber.Ctx) *session.Session {
	s, _ := c.Locals(sessionLocal).(*session.Session)
	return s
}
