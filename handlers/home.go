package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// LandingHandler serves the public landing surface. Rendering proper is
// handled by the presentation layer; the API answers with service info.
func LandingHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"service": "atende50",
		"message": "Local services marketplace operations console",
	})
}
