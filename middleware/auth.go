package middleware

import (
	"net/http"

	"github.com/Nycksionia/atende50/db"
	"github.com/Nycksionia/atende50/models"
	"github.com/Nycksionia/atende50/services"
	"github.com/labstack/echo/v4"
)

const (
	// SessionCookieName is the name of the session cookie
	SessionCookieName = "atende50_session"
	// ContextKeySession is the context key for the session
	ContextKeySession = "session"
	// ContextKeyAdmin is the context key for the authenticated admin
	ContextKeyAdmin = "admin"
)

// RequireAuth is middleware that requires an authenticated admin session
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil {
				return c.Redirect(http.StatusSeeOther, "/login")
			}

			session, err := services.GetSession(db.DB, cookie.Value)
			if err != nil {
				ClearSessionCookie(c)
				return c.Redirect(http.StatusSeeOther, "/login")
			}

			if !services.IsAuthenticated(session) {
				return c.Redirect(http.StatusSeeOther, "/login")
			}

			c.Set(ContextKeySession, session)
			c.Set(ContextKeyAdmin, session.Admin)

			return next(c)
		}
	}
}

// GetCurrentSession retrieves the current session from context
func GetCurrentSession(c echo.Context) *models.Session {
	session, ok := c.Get(ContextKeySession).(*models.Session)
	if !ok {
		return nil
	}
	return session
}

// GetCurrentAdmin retrieves the current admin from context
func GetCurrentAdmin(c echo.Context) *models.Admin {
	admin, ok := c.Get(ContextKeyAdmin).(*models.Admin)
	if !ok {
		return nil
	}
	return admin
}

// SetSessionCookie writes the session token cookie
func SetSessionCookie(c echo.Context, token string, isProduction bool) {
	cookie := &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(services.DefaultSessionDuration.Seconds()),
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: http.SameSiteLaxMode,
	}
	c.SetCookie(cookie)
}

// ClearSessionCookie clears the session cookie
func ClearSessionCookie(c echo.Context) {
	cookie := &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	c.SetCookie(cookie)
}
