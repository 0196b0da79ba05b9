package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// SessionCookie names the guest session cookie. Cart, favorites, and
// tracking dedupe state are all keyed by its value.
const SessionCookie = "amader_session"

const sessionContextKey = "guestSessionID"

// GuestSession assigns a session ID to every visitor, issuing a cookie on
// first contact. A tampered or foreign cookie value is replaced rather
// than rejected.
func GuestSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Cookies(SessionCookie)
		if _, err := uuid.Parse(sessionID); err != nil {
			sessionID = uuid.NewString()
			c.Cookie(&fiber.Cookie{
				Name:     SessionCookie,
				Value:    sessionID,
				Expires:  time.Now().Add(30 * 24 * time.Hour),
				HTTPOnly: true,
				SameSite: "Lax",
				Path:     "/",
			})
		}

		c.Locals(sessionContextKey, sessionID)
		return c.Next()
	}
}

// GetSessionID extracts the guest session ID from context.
func GetSessionID(c *fiber.Ctx) string {
	if id, ok := c.Locals(sessionContextKey).(string); ok {
		return id
	}
	return ""
}
