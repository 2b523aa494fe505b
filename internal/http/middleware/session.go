package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"resumebuilder/internal/session"
)

const (
	// SessionCookie names the cookie holding the opaque session id.
	SessionCookie = "rb_session"
	// SessionLocalKey is the fiber locals key holding the *session.Session.
	SessionLocalKey = "session"
)

// Session attaches a *session.Session to every request. Unknown or missing
// cookies get a fresh session and a new cookie.
func Session(store *session.Store, maxAge time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, created := store.GetOrCreate(c.Cookies(SessionCookie))
		if created {
			c.Cookie(&fiber.Cookie{
				Name:     SessionCookie,
				Value:    sess.ID,
				Path:     "/",
				MaxAge:   int(maxAge.Seconds()),
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}
		c.Locals(SessionLocalKey, sess)
		return c.Next()
	}
}

// SessionFromCtx returns the session stored by Session, or nil.
func SessionFromCtx(c *fiber.Ctx) *session.Session {
	s, _ := c.Locals(SessionLocalKey).(*session.Session)
	return s
}
