package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/estatedesk/backend/ent/deal"
	"github.com/estatedesk/backend/ent/enttest"
	"github.com/estatedesk/backend/ent/lead"
	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDashboard(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })

	ctx := context.Background()

	agent, err := client.User.Create().
		SetName("Sarah Johnson").
		SetEmail("sarah@demo.com").
		SetPasswordHash("hashed_password").
		Save(ctx)
	require.NoError(t, err)

	property, err := client.Property.Create().
		SetTitle("Modern Downtown Loft").
		SetSlug("modern-downtown-loft").
		SetAddress("123 Main Street").
		SetCity("New York").
		SetCountry("USA").
		SetPrice(850000).
		Save(ctx)
	require.NoError(t, err)

	john, err := client.Lead.Create().
		SetFullName("John Smith").
		SetEmail("john@email.com").
		SetStatus(lead.StatusNew).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Lead.Create().
		SetFullName("Jennifer Lee").
		SetEmail("jennifer@email.com").
		SetStatus(lead.StatusLost).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Deal.Create().
		SetLeadID(john.ID).
		SetPropertyID(property.ID).
		SetStage(deal.StageNegotiation).
		SetOfferPrice(840000).
		SetCommissionRate(0.03).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Activity.Create().
		SetUserID(agent.ID).
		SetLeadID(john.ID).
		SetType("call").
		SetContent("Initial qualification call.").
		Save(ctx)
	require.NoError(t, err)

	handler := NewDashboardHandler(client)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err = handler.GetDashboard(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, 2.0, resp["total_leads"])
	assert.Equal(t, 1.0, resp["active_leads"])
	assert.InDelta(t, 25200.0, resp["total_pipeline_value"], 0.001) // 840000 * 0.03
	assert.Equal(t, 0.0, resp["closed_this_month"])

	leadsByStatus := resp["leads_by_status"].(map[string]interface{})
	assert.Equal(t, 1.0, leadsByStatus["new"])
	assert.Equal(t, 1.0, leadsByStatus["lost"])

	recent := resp["recent_activities"].([]interface{})
	require.Len(t, recent, 1)
	first := recent[0].(map[string]interface{})
	assert.Equal(t, "call", first["type"])
	assert.Equal(t, "Sarah Johnson", first["user_name"])
}
