package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/estatedesk/backend/ent"
	"github.com/estatedesk/backend/ent/enttest"
	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupActivityTest(t *testing.T) (*ent.Client, *ActivityHandler) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })
	return client, NewActivityHandler(client)
}

func listActivities(e *echo.Echo, handler *ActivityHandler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = handler.ListActivities(c)
	return rec
}

func TestListActivitiesCap(t *testing.T) {
	client, handler := setupActivityTest(t)
	e := echo.New()
	ctx := context.Background()

	agent, err := client.User.Create().
		SetName("Sarah Johnson").
		SetEmail("sarah@demo.com").
		SetPasswordHash("hashed_password").
		Save(ctx)
	require.NoError(t, err)

	for i := 0; i < 120; i++ {
		_, err := client.Activity.Create().
			SetUserID(agent.ID).
			SetType("note").
			SetContent(fmt.Sprintf("Note %d", i)).
			Save(ctx)
		require.NoError(t, err)
	}

	decode := func(t *testing.T, rec *httptest.ResponseRecorder) []interface{} {
		var rows []interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
		return rows
	}

	t.Run("Success - No limit param returns at most 100", func(t *testing.T) {
		rec := listActivities(e, handler, "/api/v1/activities")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode(t, rec), 100)
	})

	t.Run("Success - Lower limit is honored", func(t *testing.T) {
		rec := listActivities(e, handler, "/api/v1/activities?limit=10")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode(t, rec), 10)
	})

	t.Run("Success - Oversized limit is capped", func(t *testing.T) {
		rec := listActivities(e, handler, "/api/v1/activities?limit=500")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode(t, rec), 100)
	})

	t.Run("Error - Non-numeric limit", func(t *testing.T) {
		rec := listActivities(e, handler, "/api/v1/activities?limit=ten")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Error - Zero limit", func(t *testing.T) {
		rec := listActivities(e, handler, "/api/v1/activities?limit=0")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
