package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/Nycksionia/atende50/config"
	"github.com/Nycksionia/atende50/db"
	"github.com/Nycksionia/atende50/middleware"
	"github.com/Nycksionia/atende50/services"
	"github.com/labstack/echo/v4"
)

// LoginPageHandler serves the login surface. Viewing it guarantees the
// browser a session row with the attempt counter initialized, so the
// throttle has something to count against before the first POST.
func LoginPageHandler(c echo.Context) error {
	token := ""
	if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil {
		token = cookie.Value
	}

	session, err := services.EnsureSession(db.DB, token, c.RealIP(), c.Request().UserAgent())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to prepare session")
	}

	if session.Token != token {
		cfg := c.Get("config").(*config.Config)
		middleware.SetSessionCookie(c, session.Token, cfg.Environment == "production")
	}

	resp := map[string]interface{}{
		"authenticated": session.Authenticated,
		"attempts":      session.FailedAttempts,
		"threshold":     services.LockoutThreshold,
	}
	if msg := c.QueryParam("message"); msg != "" {
		resp["message"] = msg
	}
	return c.JSON(http.StatusOK, resp)
}

// LoginPostHandler handles the login form submission. Failed attempts
// run through the session throttle: the first two failures send the
// browser back to the login page with an "attempt N of 3" message, the
// third ejects it to the landing page with the counter reset.
func LoginPostHandler(c echo.Context) error {
	username := strings.TrimSpace(c.FormValue("username"))
	password := c.FormValue("password")

	token := ""
	if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil {
		token = cookie.Value
	}

	session, err := services.EnsureSession(db.DB, token, c.RealIP(), c.Request().UserAgent())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to prepare session")
	}

	cfg := c.Get("config").(*config.Config)
	if session.Token != token {
		middleware.SetSessionCookie(c, session.Token, cfg.Environment == "production")
	}

	if username == "" || password == "" {
		return c.Redirect(http.StatusSeeOther, "/login?message="+url.QueryEscape(loginFailureMessage(0, false)))
	}

	admin, ok := services.Authenticate(db.DB, username, password)
	if !ok {
		attempts, err := services.RecordFailure(db.DB, session)
		if err != nil {
			if errors.Is(err, services.ErrLockedOut) {
				// Soft throttle: eject to the landing page, counter
				// already reset for future attempts.
				return c.Redirect(http.StatusSeeOther, "/")
			}
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to record attempt")
		}
		return c.Redirect(http.StatusSeeOther, "/login?message="+url.QueryEscape(loginFailureMessage(attempts, true)))
	}

	if err := services.RecordSuccess(db.DB, session, admin.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create session")
	}

	return c.Redirect(http.StatusSeeOther, "/admin")
}

// LogoutHandler clears the session and its cookie
func LogoutHandler(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil {
		if session, err := services.GetSession(db.DB, cookie.Value); err == nil {
			services.Logout(db.DB, session)
		}
	}

	middleware.ClearSessionCookie(c)
	return c.Redirect(http.StatusSeeOther, "/")
}

// RestrictedAreaHandler confirms access to the restricted area
func RestrictedAreaHandler(c echo.Context) error {
	admin := middleware.GetCurrentAdmin(c)
	if admin == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	}
	return c.JSON(http.StatusOK, map[string]string{"username": admin.Username})
}

// loginFailureMessage never reveals whether the username or the secret
// was wrong.
func loginFailureMessage(attempt int, counted bool) string {
	if !counted {
		return "Username and password are required"
	}
	return fmt.Sprintf("Invalid username or password. Attempt %d of %d.", attempt, services.LockoutThreshold)
}
