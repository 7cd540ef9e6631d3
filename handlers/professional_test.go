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
)

func TestRegisterProfessionalHandler(t *testing.T) {
	t.Run("Successful registration", func(t *testing.T) {
		db := setupTestDB(t)

		f := url.Values{}
		f.Add("name", "João Silva")
		f.Add("nickname", "João")
		f.Add("document", "123.456.789-00")
		f.Add("phone", "5511999999999")
		f.Add("city", "São Paulo")
		f.Add("skills", "encanador")
		f.Add("skills", "eletricista")

		_, c, rec := setupEcho(http.MethodPost, "/professionals", strings.NewReader(f.Encode()))
		c.Request().Header.Set("Content-Type", "application/x-www-form-urlencoded")

		err := RegisterProfessionalHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), "encanador, eletricista")

		var count int64
		db.Model(&models.Professional{}).Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("Duplicate document", func(t *testing.T) {
		db := setupTestDB(t)
		_, err := services.RegisterProfessional(db, services.ProfessionalInput{
			Name: "Original", Document: "111", Phone: "5511111111",
		})
		assert.NoError(t, err)

		f := url.Values{}
		f.Add("name", "Clone")
		f.Add("document", "111")
		f.Add("phone", "5522222222")

		_, c, _ := setupEcho(http.MethodPost, "/professionals", strings.NewReader(f.Encode()))
		c.Request().Header.Set("Content-Type", "application/x-www-form-urlencoded")

		err = RegisterProfessionalHandler(c)
		assert.Error(t, err)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)

		// First record unchanged
		var original models.Professional
		assert.NoError(t, db.Where("document = ?", "111").First(&original).Error)
		assert.Equal(t, "Original", original.Name)
	})

	t.Run("Missing required fields", func(t *testing.T) {
		_ = setupTestDB(t)

		f := url.Values{}
		f.Add("name", "Só Nome")

		_, c, _ := setupEcho(http.MethodPost, "/professionals", strings.NewReader(f.Encode()))
		c.Request().Header.Set("Content-Type", "application/x-www-form-urlencoded")

		err := RegisterProfessionalHandler(c)
		assert.Error(t, err)
	})
}

func TestListProfessionalsHandler(t *testing.T) {
	db := setupTestDB(t)
	_, err := services.RegisterProfessional(db, services.ProfessionalInput{
		Name: "Beto", Document: "1", Phone: "1",
	})
	assert.NoError(t, err)

	_, c, rec := setupEcho(http.MethodGet, "/admin/professionals", nil)

	err = ListProfessionalsHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Beto")
}

func TestDeleteProfessionalHandler(t *testing.T) {
	db := setupTestDB(t)

	prof, err := services.RegisterProfessional(db, services.ProfessionalInput{
		Name: "Carla", Document: "2", Phone: "2",
	})
	assert.NoError(t, err)

	t.Run("Not found", func(t *testing.T) {
		_, c, _ := setupEcho(http.MethodDelete, "/admin/professionals/missing", nil)
		c.SetParamNames("id")
		c.SetParamValues("missing")

		err := DeleteProfessionalHandler(c)
		assert.Error(t, err)
	})

	t.Run("Deletes unreferenced professional", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodDelete, "/admin/professionals/"+prof.ID, nil)
		c.SetParamNames("id")
		c.SetParamValues(prof.ID)

		err := DeleteProfessionalHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
