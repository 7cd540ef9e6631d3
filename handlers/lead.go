package handlers

import (
	"errors"
	"net/http"

	"github.com/Nycksionia/atende50/db"
	"github.com/Nycksionia/atende50/services"
	"github.com/labstack/echo/v4"
)

// SubmitServiceRequestHandler handles the public service request form.
// The lead and its case are created together; a failure leaves neither.
func SubmitServiceRequestHandler(c echo.Context) error {
	input := services.ServiceRequestInput{
		Name:     c.FormValue("name"),
		Document: c.FormValue("document"),
		Phone:    c.FormValue("phone"),
		Address:  c.FormValue("address"),
		Problem:  c.FormValue("problem"),
	}

	lead, opened, err := services.SubmitServiceRequest(db.DB, input)
	if err != nil {
		if errors.Is(err, services.ErrMissingRequiredFields) {
			return echo.NewHTTPError(http.StatusBadRequest, "Name, document, phone and problem description are required")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to submit request")
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"lead": lead,
		"case": opened,
	})
}

// ListLeadsHandler returns all leads, newest first
func ListLeadsHandler(c echo.Context) error {
	leads, err := services.ListLeads(db.DB)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch leads")
	}
	return c.JSON(http.StatusOK, leads)
}
