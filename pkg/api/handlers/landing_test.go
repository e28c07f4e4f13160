package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/estatedesk/backend/ent"
	"github.com/estatedesk/backend/ent/enttest"
	"github.com/estatedesk/backend/ent/property"
	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLandingTest(t *testing.T) (*ent.Client, *LandingHandler) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })
	return client, NewLandingHandler(client)
}

func createLandingProperty(t *testing.T, client *ent.Client, slug string, published bool, status property.Status) {
	_, err := client.Property.Create().
		SetTitle("Modern Downtown Loft").
		SetSlug(slug).
		SetAddress("123 Main Street").
		SetCity("New York").
		SetCountry("USA").
		SetPrice(850000).
		SetPublished(published).
		SetStatus(status).
		SetMainImageURL("https://img.example/main.jpg").
		SetGallery("https://img.example/a.jpg,https://img.example/b.jpg").
		Save(context.Background())
	require.NoError(t, err)
}

func getBySlug(e *echo.Echo, handler *LandingHandler, slug string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/landing-page/properties/"+slug, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/v1/landing-page/properties/:slug")
	c.SetParamNames("slug")
	c.SetParamValues(slug)
	_ = handler.GetProperty(c)
	return rec
}

func TestGetLandingProperty(t *testing.T) {
	client, handler := setupLandingTest(t)
	e := echo.New()

	createLandingProperty(t, client, "published-loft", true, property.StatusActive)
	createLandingProperty(t, client, "hidden-loft", false, property.StatusActive)
	createLandingProperty(t, client, "off-market-loft", true, property.StatusOffMarket)
	createLandingProperty(t, client, "under-contract-loft", true, property.StatusUnderContract)

	t.Run("Success - Published active property", func(t *testing.T) {
		rec := getBySlug(e, handler, "published-loft")

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "published-loft", resp["slug"])

		gallery := resp["gallery"].([]interface{})
		assert.Len(t, gallery, 2)
	})

	t.Run("Success - Under contract is still visible", func(t *testing.T) {
		rec := getBySlug(e, handler, "under-contract-loft")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Error - Unpublished property hidden", func(t *testing.T) {
		rec := getBySlug(e, handler, "hidden-loft")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Error - Off-market property hidden", func(t *testing.T) {
		rec := getBySlug(e, handler, "off-market-loft")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Error - Unknown slug", func(t *testing.T) {
		rec := getBySlug(e, handler, "no-such-property")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
