package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/estatedesk/backend/ent"
	"github.com/estatedesk/backend/ent/enttest"
	"github.com/estatedesk/backend/ent/lead"
	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSubmissionTest(t *testing.T) (*ent.Client, *SubmissionHandler, *ent.Property) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })

	property, err := client.Property.Create().
		SetTitle("Modern Downtown Loft").
		SetSlug("modern-downtown-loft").
		SetAddress("123 Main Street").
		SetCity("New York").
		SetCountry("USA").
		SetPrice(850000).
		SetPublished(true).
		Save(context.Background())
	require.NoError(t, err)

	return client, NewSubmissionHandler(client, testMetrics), property
}

func TestSubmit(t *testing.T) {
	client, handler, property := setupSubmissionTest(t)
	e := echo.New()

	t.Run("Success - New visitor creates a lead", func(t *testing.T) {
		body := fmt.Sprintf(
			`{"property_id":%d,"full_name":"John Smith","email":"john.smith@email.com","phone":"+1 555-0101","message":"I would love a viewing!"}`,
			property.ID)
		c, rec := postJSON(e, "/api/v1/landing-page/submissions", body)

		err := handler.Submit(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, true, resp["success"])

		submission := resp["submission"].(map[string]interface{})
		assert.Equal(t, "john.smith@email.com", submission["email"])
		assert.NotZero(t, submission["lead_id"])

		created, err := client.Lead.Query().
			Where(lead.EmailEQ("john.smith@email.com")).
			Only(context.Background())
		require.NoError(t, err)
		assert.Equal(t, lead.SourceLandingPage, created.Source)
		assert.Equal(t, lead.StatusNew, created.Status)
	})

	t.Run("Success - Repeat visitor reuses the lead", func(t *testing.T) {
		body := fmt.Sprintf(
			`{"property_id":%d,"full_name":"John Smith","email":"john.smith@email.com","message":"Still interested."}`,
			property.ID)
		c, rec := postJSON(e, "/api/v1/landing-page/submissions", body)

		err := handler.Submit(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)

		count, err := client.Lead.Query().
			Where(lead.EmailEQ("john.smith@email.com")).
			Count(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		submissions, err := client.FormSubmission.Query().Count(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, submissions)
	})

	t.Run("Error - Invalid email rejected before persistence", func(t *testing.T) {
		body := fmt.Sprintf(
			`{"property_id":%d,"full_name":"Bad Email","email":"not-an-email"}`,
			property.ID)
		c, rec := postJSON(e, "/api/v1/landing-page/submissions", body)

		err := handler.Submit(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Error - Missing required fields", func(t *testing.T) {
		c, rec := postJSON(e, "/api/v1/landing-page/submissions", `{"email":"a@b.com"}`)

		err := handler.Submit(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Error - Unknown property", func(t *testing.T) {
		c, rec := postJSON(e, "/api/v1/landing-page/submissions",
			`{"property_id":99999,"full_name":"Ghost","email":"ghost@email.com"}`)

		err := handler.Submit(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
