package handlers

import (
	"errors"
	"net/http"

	"github.com/Nycksionia/atende50/db"
	"github.com/Nycksionia/atende50/services"
	"github.com/labstack/echo/v4"
)

// RegisterProfessionalHandler handles the public professional
// registration form
func RegisterProfessionalHandler(c echo.Context) error {
	params, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form data")
	}

	input := services.ProfessionalInput{
		Name:     c.FormValue("name"),
		Nickname: c.FormValue("nickname"),
		Document: c.FormValue("document"),
		Phone:    c.FormValue("phone"),
		Address:  c.FormValue("address"),
		City:     c.FormValue("city"),
		Skills:   params["skills"],
	}

	professional, err := services.RegisterProfessional(db.DB, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingRequiredFields):
			return echo.NewHTTPError(http.StatusBadRequest, "Name, document and phone are required")
		case errors.Is(err, services.ErrDuplicateDocument):
			return echo.NewHTTPError(http.StatusBadRequest, "A professional with this document is already registered")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to register professional")
		}
	}

	return c.JSON(http.StatusCreated, professional)
}

// ListProfessionalsHandler returns all registered professionals
func ListProfessionalsHandler(c echo.Context) error {
	professionals, err := services.ListProfessionals(db.DB)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch professionals")
	}
	return c.JSON(http.StatusOK, professionals)
}

// DeleteProfessionalHandler removes a professional that no case references
func DeleteProfessionalHandler(c echo.Context) error {
	id := c.Param("id")

	if err := services.DeleteProfessional(db.DB, id); err != nil {
		switch {
		case errors.Is(err, services.ErrProfessionalNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Professional not found")
		case errors.Is(err, services.ErrProfessionalInUse):
			return echo.NewHTTPError(http.StatusConflict, "Professional is assigned to existing cases")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete professional")
		}
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Professional deleted successfully"})
}
