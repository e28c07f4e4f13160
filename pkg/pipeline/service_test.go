package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/estatedesk/backend/ent"
	"github.com/estatedesk/backend/ent/deal"
	"github.com/estatedesk/backend/ent/enttest"
	"github.com/estatedesk/backend/ent/lead"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	return client, func() { client.Close() }
}

func createTestLead(t *testing.T, client *ent.Client, email string, status lead.Status) *ent.Lead {
	l, err := client.Lead.
		Create().
		SetFullName("Test Lead").
		SetEmail(email).
		SetStatus(status).
		Save(context.Background())
	require.NoError(t, err)
	return l
}

func createTestProperty(t *testing.T, client *ent.Client, slug string) *ent.Property {
	p, err := client.Property.
		Create().
		SetTitle("Test Property").
		SetSlug(slug).
		SetAddress("1 Test Street").
		SetCity("Austin").
		SetCountry("USA").
		SetPrice(500000).
		Save(context.Background())
	require.NoError(t, err)
	return p
}

func TestTotalPipelineValue(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client)
	property := createTestProperty(t, client, "value-test")

	l1 := createTestLead(t, client, "a@email.com", lead.StatusNew)
	l2 := createTestLead(t, client, "b@email.com", lead.StatusContacted)
	l3 := createTestLead(t, client, "c@email.com", lead.StatusOfferMade)
	l4 := createTestLead(t, client, "d@email.com", lead.StatusClosed)

	// 500000 * 0.03 = 15000 (no stored rate, default applies)
	_, err := client.Deal.Create().
		SetLeadID(l1.ID).SetPropertyID(property.ID).
		SetStage(deal.StageNegotiation).
		SetOfferPrice(500000).
		Save(ctx)
	require.NoError(t, err)

	// 800000 * 0.03 = 24000
	_, err = client.Deal.Create().
		SetLeadID(l2.ID).SetPropertyID(property.ID).
		SetStage(deal.StageUnderContract).
		SetOfferPrice(800000).
		SetCommissionRate(0.03).
		Save(ctx)
	require.NoError(t, err)

	// No offer yet, contributes nothing
	_, err = client.Deal.Create().
		SetLeadID(l3.ID).SetPropertyID(property.ID).
		SetStage(deal.StageNegotiation).
		Save(ctx)
	require.NoError(t, err)

	// Closed deals are excluded even with an offer
	_, err = client.Deal.Create().
		SetLeadID(l4.ID).SetPropertyID(property.ID).
		SetStage(deal.StageClosed).
		SetOfferPrice(1000000).
		SetClosedPrice(990000).
		SetCommissionRate(0.03).
		Save(ctx)
	require.NoError(t, err)

	summary, err := service.Summarize(ctx)

	require.NoError(t, err)
	assert.InDelta(t, 39000.0, summary.TotalPipelineValue, 0.001)
}

func TestClosedThisMonth(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client)
	property := createTestProperty(t, client, "closed-test")

	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	monthStart := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	l1 := createTestLead(t, client, "e@email.com", lead.StatusClosed)
	l2 := createTestLead(t, client, "f@email.com", lead.StatusClosed)
	l3 := createTestLead(t, client, "g@email.com", lead.StatusClosed)

	// Closed on the first instant of the month: inside the window
	d1, err := client.Deal.Create().
		SetLeadID(l1.ID).SetPropertyID(property.ID).
		SetStage(deal.StageClosed).
		Save(ctx)
	require.NoError(t, err)
	err = client.Deal.UpdateOneID(d1.ID).SetUpdatedAt(monthStart).Exec(ctx)
	require.NoError(t, err)

	// Closed a second before the month started: outside
	d2, err := client.Deal.Create().
		SetLeadID(l2.ID).SetPropertyID(property.ID).
		SetStage(deal.StageClosed).
		Save(ctx)
	require.NoError(t, err)
	err = client.Deal.UpdateOneID(d2.ID).SetUpdatedAt(monthStart.Add(-time.Second)).Exec(ctx)
	require.NoError(t, err)

	// Fallthrough deal updated this month: stage excludes it
	d3, err := client.Deal.Create().
		SetLeadID(l3.ID).SetPropertyID(property.ID).
		SetStage(deal.StageFallthrough).
		Save(ctx)
	require.NoError(t, err)
	err = client.Deal.UpdateOneID(d3.ID).SetUpdatedAt(now).Exec(ctx)
	require.NoError(t, err)

	count, err := service.closedThisMonth(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSummarizeCounts(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client)
	property := createTestProperty(t, client, "counts-test")

	createTestLead(t, client, "h@email.com", lead.StatusNew)
	createTestLead(t, client, "i@email.com", lead.StatusNew)
	contacted := createTestLead(t, client, "j@email.com", lead.StatusContacted)
	createTestLead(t, client, "k@email.com", lead.StatusLost)

	_, err := client.Deal.Create().
		SetLeadID(contacted.ID).SetPropertyID(property.ID).
		SetStage(deal.StageNegotiation).
		Save(ctx)
	require.NoError(t, err)

	summary, err := service.Summarize(ctx)

	require.NoError(t, err)
	assert.Equal(t, 4, summary.TotalLeads)
	assert.Equal(t, 3, summary.ActiveLeads) // lost lead excluded

	assert.Equal(t, map[string]int{
		"new":       2,
		"contacted": 1,
		"lost":      1,
	}, summary.LeadsByStatus)

	assert.Equal(t, map[string]int{
		"negotiation": 1,
	}, summary.DealsByStage)
}

func TestSummarizeEmptyStore(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(client)

	summary, err := service.Summarize(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, summary.TotalLeads)
	assert.Equal(t, 0, summary.ActiveLeads)
	assert.Zero(t, summary.TotalPipelineValue)
	assert.Equal(t, 0, summary.ClosedThisMonth)
	assert.Empty(t, summary.LeadsByStatus)
	assert.Empty(t, summary.DealsByStage)
}
