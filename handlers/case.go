package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/Nycksionia/atende50/db"
	"github.com/Nycksionia/atende50/services"
	"github.com/labstack/echo/v4"
)

// ListCasesHandler returns the admin worklist, newest case first
func ListCasesHandler(c echo.Context) error {
	cases, err := services.ListCases(db.DB)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch cases")
	}
	return c.JSON(http.StatusOK, cases)
}

// AssignProfessionalHandler binds a professional and a billed value to a
// case. The billed value is parsed and validated here, before the ledger
// sees it: malformed or negative input is rejected, never coerced.
func AssignProfessionalHandler(c echo.Context) error {
	caseID := c.Param("id")

	var payload struct {
		ProfessionalID string `json:"professional_id" form:"professional_id"`
		BilledValue    string `json:"billed_value" form:"billed_value"`
	}
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	billedValue := 0.0
	if raw := strings.TrimSpace(payload.BilledValue); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Billed value must be a number")
		}
		billedValue = parsed
	}

	updated, err := services.AssignProfessional(db.DB, caseID, payload.ProfessionalID, billedValue)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProfessionalRequired):
			return echo.NewHTTPError(http.StatusBadRequest, "A professional must be selected")
		case errors.Is(err, services.ErrNegativeBilledValue):
			return echo.NewHTTPError(http.StatusBadRequest, "Billed value must not be negative")
		case errors.Is(err, services.ErrCaseNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Case not found")
		case errors.Is(err, services.ErrProfessionalNotFound):
			return echo.NewHTTPError(http.StatusBadRequest, "Selected professional does not exist")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to assign professional")
		}
	}

	return c.JSON(http.StatusOK, updated)
}

// UpdateCaseStatusHandler sets a case status from the closed status set
func UpdateCaseStatusHandler(c echo.Context) error {
	caseID := c.Param("id")

	var payload struct {
		Status string `json:"status" form:"status"`
	}
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	updated, err := services.UpdateCaseStatus(db.DB, caseID, strings.TrimSpace(payload.Status))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid status")
		case errors.Is(err, services.ErrCaseNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Case not found")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update status")
		}
	}

	return c.JSON(http.StatusOK, updated)
}
