package handlers

import (
	"net/http"

	"github.com/Nycksionia/atende50/db"
	"github.com/Nycksionia/atende50/services"
	"github.com/labstack/echo/v4"
)

// DashboardHandler returns the aggregate counters for the admin dashboard
func DashboardHandler(c echo.Context) error {
	summary, err := services.ComputeDashboard(db.DB)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to compute dashboard")
	}
	return c.JSON(http.StatusOK, summary)
}
