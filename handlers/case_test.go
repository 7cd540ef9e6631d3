package handlers

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/Nycksionia/atende50/models"
	"github.com/Nycksionia/atende50/services"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func seedCase(t *testing.T, db *gorm.DB) (*models.Case, *models.Professional) {
	_, opened, err := services.SubmitServiceRequest(db, services.ServiceRequestInput{
		Name: "Duda", Document: "4", Phone: "4", Problem: "chuveiro frio",
	})
	assert.NoError(t, err)

	prof, err := services.RegisterProfessional(db, services.ProfessionalInput{
		Name: "Edson", Document: "5", Phone: "5", Skills: []string{"eletricista"},
	})
	assert.NoError(t, err)

	return opened, prof
}

func TestListCasesHandler(t *testing.T) {
	db := setupTestDB(t)
	seedCase(t, db)

	_, c, rec := setupEcho(http.MethodGet, "/admin/cases", nil)

	err := ListCasesHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Duda")
}

func TestAssignProfessionalHandler(t *testing.T) {
	postAssign := func(t *testing.T, caseID string, form url.Values) (*echo.HTTPError, int, string) {
		_, c, rec := setupEcho(http.MethodPost, "/admin/cases/"+caseID+"/assign", strings.NewReader(form.Encode()))
		c.Request().Header.Set("Content-Type", "application/x-www-form-urlencoded")
		c.SetParamNames("id")
		c.SetParamValues(caseID)

		err := AssignProfessionalHandler(c)
		if err != nil {
			httpErr, ok := err.(*echo.HTTPError)
			assert.True(t, ok)
			return httpErr, rec.Code, rec.Body.String()
		}
		return nil, rec.Code, rec.Body.String()
	}

	t.Run("Successful assignment", func(t *testing.T) {
		db := setupTestDB(t)
		opened, prof := seedCase(t, db)

		f := url.Values{}
		f.Add("professional_id", prof.ID)
		f.Add("billed_value", "150.50")

		httpErr, code, body := postAssign(t, opened.ID, f)
		assert.Nil(t, httpErr)
		assert.Equal(t, http.StatusOK, code)
		assert.Contains(t, body, models.CaseStatusInProgress)
		assert.Contains(t, body, "150.5")
	})

	t.Run("Malformed billed value", func(t *testing.T) {
		db := setupTestDB(t)
		opened, prof := seedCase(t, db)

		f := url.Values{}
		f.Add("professional_id", prof.ID)
		f.Add("billed_value", "abc")

		httpErr, _, _ := postAssign(t, opened.ID, f)
		assert.NotNil(t, httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})

	t.Run("Negative billed value", func(t *testing.T) {
		db := setupTestDB(t)
		opened, prof := seedCase(t, db)

		f := url.Values{}
		f.Add("professional_id", prof.ID)
		f.Add("billed_value", "-10")

		httpErr, _, _ := postAssign(t, opened.ID, f)
		assert.NotNil(t, httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})

	t.Run("Empty professional leaves case unchanged", func(t *testing.T) {
		db := setupTestDB(t)
		opened, _ := seedCase(t, db)

		f := url.Values{}
		f.Add("professional_id", "")
		f.Add("billed_value", "100")

		httpErr, _, _ := postAssign(t, opened.ID, f)
		assert.NotNil(t, httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)

		after, err := services.GetCaseByID(db, opened.ID)
		assert.NoError(t, err)
		assert.Equal(t, models.CaseStatusPending, after.Status)
		assert.Equal(t, 0.0, after.BilledValue)
		assert.Nil(t, after.ProfessionalID)
	})

	t.Run("Unknown case", func(t *testing.T) {
		db := setupTestDB(t)
		_, prof := seedCase(t, db)

		f := url.Values{}
		f.Add("professional_id", prof.ID)
		f.Add("billed_value", "100")

		httpErr, _, _ := postAssign(t, "no-such-case", f)
		assert.NotNil(t, httpErr)
		assert.Equal(t, http.StatusNotFound, httpErr.Code)
	})
}

func TestUpdateCaseStatusHandler(t *testing.T) {
	putStatus := func(t *testing.T, caseID, status string) (*echo.HTTPError, int, string) {
		f := url.Values{}
		f.Add("status", status)

		_, c, rec := setupEcho(http.MethodPut, "/admin/cases/"+caseID+"/status", strings.NewReader(f.Encode()))
		c.Request().Header.Set("Content-Type", "application/x-www-form-urlencoded")
		c.SetParamNames("id")
		c.SetParamValues(caseID)

		err := UpdateCaseStatusHandler(c)
		if err != nil {
			httpErr, ok := err.(*echo.HTTPError)
			assert.True(t, ok)
			return httpErr, rec.Code, rec.Body.String()
		}
		return nil, rec.Code, rec.Body.String()
	}

	t.Run("Valid status", func(t *testing.T) {
		db := setupTestDB(t)
		opened, _ := seedCase(t, db)

		httpErr, code, body := putStatus(t, opened.ID, models.CaseStatusCancelled)
		assert.Nil(t, httpErr)
		assert.Equal(t, http.StatusOK, code)
		assert.Contains(t, body, models.CaseStatusCancelled)
	})

	t.Run("Invalid status", func(t *testing.T) {
		db := setupTestDB(t)
		opened, _ := seedCase(t, db)

		httpErr, _, _ := putStatus(t, opened.ID, "NOT_A_STATUS")
		assert.NotNil(t, httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})

	t.Run("Unknown case", func(t *testing.T) {
		db := setupTestDB(t)
		seedCase(t, db)

		httpErr, _, _ := putStatus(t, "no-such-case", models.CaseStatusCompleted)
		assert.NotNil(t, httpErr)
		assert.Equal(t, http.StatusNotFound, httpErr.Code)
	})
}
