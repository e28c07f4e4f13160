package deals

import (
	"context"
	"testing"

	"github.com/estatedesk/backend/ent"
	"github.com/estatedesk/backend/ent/enttest"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	return client, func() { client.Close() }
}

func createTestLead(t *testing.T, client *ent.Client, email string) *ent.Lead {
	l, err := client.Lead.
		Create().
		SetFullName("John Smith").
		SetEmail(email).
		Save(context.Background())
	require.NoError(t, err)
	return l
}

func createTestProperty(t *testing.T, client *ent.Client, slug string) *ent.Property {
	p, err := client.Property.
		Create().
		SetTitle("Modern Downtown Loft").
		SetSlug(slug).
		SetAddress("123 Main Street").
		SetCity("New York").
		SetCountry("USA").
		SetPrice(850000).
		Save(context.Background())
	require.NoError(t, err)
	return p
}

func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

func TestCreateDeal(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client)
	lead := createTestLead(t, client, "john@email.com")
	property := createTestProperty(t, client, "loft")

	t.Run("Success - Create with defaults", func(t *testing.T) {
		deal, err := service.CreateDeal(ctx, CreateDealRequest{
			LeadID:     lead.ID,
			PropertyID: property.ID,
			OfferPrice: floatPtr(840000),
		})

		require.NoError(t, err)
		assert.NotZero(t, deal.ID)
		assert.Equal(t, "negotiation", deal.Stage) // schema default
		require.NotNil(t, deal.OfferPrice)
		assert.Equal(t, 840000.0, *deal.OfferPrice)
		assert.Nil(t, deal.CommissionRate) // never defaulted at write time
		assert.Equal(t, "John Smith", deal.LeadName)
		assert.Equal(t, "Modern Downtown Loft", deal.PropertyTitle)
	})

	t.Run("Success - Expected close date parsed", func(t *testing.T) {
		deal, err := service.CreateDeal(ctx, CreateDealRequest{
			LeadID:            lead.ID,
			PropertyID:        property.ID,
			Stage:             "under_contract",
			ExpectedCloseDate: strPtr("2026-01-15"),
		})

		require.NoError(t, err)
		require.NotNil(t, deal.ExpectedCloseDate)
		assert.Equal(t, 2026, deal.ExpectedCloseDate.Year())
		assert.Equal(t, "under_contract", deal.Stage)
	})

	t.Run("Error - Dangling lead reference", func(t *testing.T) {
		deal, err := service.CreateDeal(ctx, CreateDealRequest{
			LeadID:     99999,
			PropertyID: property.ID,
		})

		assert.Error(t, err)
		assert.Nil(t, deal)
	})

	t.Run("Error - Malformed close date", func(t *testing.T) {
		deal, err := service.CreateDeal(ctx, CreateDealRequest{
			LeadID:            lead.ID,
			PropertyID:        property.ID,
			ExpectedCloseDate: strPtr("15/01/2026"),
		})

		assert.Error(t, err)
		assert.Nil(t, deal)
		assert.Contains(t, err.Error(), "invalid expected close date")
	})
}

func TestUpdateDeal(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client)
	lead := createTestLead(t, client, "emily@email.com")
	property := createTestProperty(t, client, "family-home")

	created, err := service.CreateDeal(ctx, CreateDealRequest{
		LeadID:     lead.ID,
		PropertyID: property.ID,
		OfferPrice: floatPtr(665000),
	})
	require.NoError(t, err)

	t.Run("Success - Moving to closed reports justClosed", func(t *testing.T) {
		deal, justClosed, err := service.UpdateDeal(ctx, created.ID, UpdateDealRequest{
			Stage:       strPtr("closed"),
			ClosedPrice: floatPtr(660000),
		})

		require.NoError(t, err)
		assert.True(t, justClosed)
		assert.Equal(t, "closed", deal.Stage)
		require.NotNil(t, deal.ClosedPrice)
		assert.Equal(t, 660000.0, *deal.ClosedPrice)
	})

	t.Run("Success - Updating an already closed deal does not re-report", func(t *testing.T) {
		_, justClosed, err := service.UpdateDeal(ctx, created.ID, UpdateDealRequest{
			ClosedPrice: floatPtr(661000),
		})

		require.NoError(t, err)
		assert.False(t, justClosed)
	})

	t.Run("Success - Reopening a closed deal", func(t *testing.T) {
		deal, justClosed, err := service.UpdateDeal(ctx, created.ID, UpdateDealRequest{
			Stage: strPtr("negotiation"),
		})

		require.NoError(t, err)
		assert.False(t, justClosed)
		assert.Equal(t, "negotiation", deal.Stage)
	})

	t.Run("Error - Not found", func(t *testing.T) {
		deal, justClosed, err := service.UpdateDeal(ctx, 99999, UpdateDealRequest{
			Stage: strPtr("closed"),
		})

		assert.Error(t, err)
		assert.False(t, justClosed)
		assert.Nil(t, deal)
		assert.Contains(t, err.Error(), "deal not found")
	})
}

func TestListDeals(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client)
	lead := createTestLead(t, client, "michael@email.com")
	property := createTestProperty(t, client, "condo")

	for i := 0; i < 3; i++ {
		_, err := service.CreateDeal(ctx, CreateDealRequest{
			LeadID:     lead.ID,
			PropertyID: property.ID,
		})
		require.NoError(t, err)
	}

	rows, err := service.ListDeals(ctx)

	require.NoError(t, err)
	require.Len(t, rows, 3)
	for _, d := range rows {
		assert.Equal(t, "John Smith", d.LeadName)
		assert.Equal(t, "Modern Downtown Loft", d.PropertyTitle)
	}
	assert.GreaterOrEqual(t, rows[0].ID, rows[1].ID)
}

func TestDeleteDeal(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client)
	lead := createTestLead(t, client, "sarah@email.com")
	property := createTestProperty(t, client, "cabin")

	created, err := service.CreateDeal(ctx, CreateDealRequest{
		LeadID:     lead.ID,
		PropertyID: property.ID,
	})
	require.NoError(t, err)

	err = service.DeleteDeal(ctx, created.ID)
	require.NoError(t, err)

	err = service.DeleteDeal(ctx, created.ID)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "deal not found")
}
