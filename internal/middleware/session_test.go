package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionTestApp(captured *string) *fiber.App {
	app := fiber.New()
	app.Use(GuestSession())
	app.Get("/probe", func(c *fiber.Ctx) error {
		*captured = GetSessionID(c)
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, cookie := range resp.Cookies() {
		if cookie.Name == SessionCookie {
			return cookie
		}
	}
	return nil
}

func TestGuestSessionIssuesCookie(t *testing.T) {
	var sessionID string
	app := sessionTestApp(&sessionID)

	resp, err := app.Test(httptest.NewRequest("GET", "/probe", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	cookie := sessionCookie(resp)
	require.NotNil(t, cookie)
	assert.Equal(t, sessionID, cookie.Value)
	assert.True(t, cookie.HttpOnly)

	_, err = uuid.Parse(sessionID)
	assert.NoError(t, err)
}

func TestGuestSessionReusesValidCookie(t *testing.T) {
	var sessionID string
	app := sessionTestApp(&sessionID)

	existing := uuid.NewString()
	req := httptest.NewRequest("GET", "/probe", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: existing})

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, existing, sessionID)
	assert.Nil(t, sessionCookie(resp))
}

func TestGuestSessionReplacesTamperedCookie(t *testing.T) {
	var sessionID string
	app := sessionTestApp(&sessionID)

	req := httptest.NewRequest("GET", "/probe", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "not-a-session"})

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.NotEqual(t, "not-a-session", sessionID)
	require.NotNil(t, sessionCookie(resp))
}
