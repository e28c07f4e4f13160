package leads

import (
	"context"
	"testing"

	"github.com/estatedesk/backend/ent"
	"github.com/estatedesk/backend/ent/enttest"
	"github.com/estatedesk/backend/ent/user"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	return client, func() { client.Close() }
}

func createTestAgent(t *testing.T, client *ent.Client, email string) *ent.User {
	u, err := client.User.
		Create().
		SetName("Sarah Johnson").
		SetEmail(email).
		SetPasswordHash("hashed_password").
		SetRole(user.RoleAgent).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

func TestCreateLead(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client)
	agent := createTestAgent(t, client, "agent@demo.com")

	t.Run("Success - Create lead with assignee", func(t *testing.T) {
		req := CreateLeadRequest{
			FullName:     "John Smith",
			Email:        "john.smith@email.com",
			Phone:        "+1 555-0101",
			Source:       "manual",
			Status:       "new",
			BudgetMin:    floatPtr(800000),
			BudgetMax:    floatPtr(900000),
			Notes:        "Works in finance.",
			AssignedToID: &agent.ID,
		}

		lead, err := service.CreateLead(ctx, req)

		require.NoError(t, err)
		assert.NotZero(t, lead.ID)
		assert.Equal(t, "John Smith", lead.FullName)
		assert.Equal(t, "manual", lead.Source)
		assert.Equal(t, "new", lead.Status)
		require.NotNil(t, lead.BudgetMin)
		assert.Equal(t, 800000.0, *lead.BudgetMin)
		require.NotNil(t, lead.AssignedToID)
		assert.Equal(t, agent.ID, *lead.AssignedToID)
	})

	t.Run("Error - Duplicate email", func(t *testing.T) {
		lead, err := service.CreateLead(ctx, CreateLeadRequest{
			FullName: "John Clone",
			Email:    "john.smith@email.com",
			Source:   "manual",
			Status:   "new",
		})

		assert.Error(t, err)
		assert.Nil(t, lead)
		assert.Contains(t, err.Error(), "already in use")
	})
}

func TestGetLeadByID(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client)
	agent := createTestAgent(t, client, "agent@demo.com")

	created, err := service.CreateLead(ctx, CreateLeadRequest{
		FullName:     "Emily Rodriguez",
		Email:        "emily.r@email.com",
		Source:       "referral",
		Status:       "contacted",
		AssignedToID: &agent.ID,
	})
	require.NoError(t, err)

	t.Run("Success - Get with assignee name", func(t *testing.T) {
		lead, err := service.GetLeadByID(ctx, created.ID)

		require.NoError(t, err)
		assert.Equal(t, created.ID, lead.ID)
		assert.Equal(t, "Sarah Johnson", lead.AssigneeName)
	})

	t.Run("Error - Not found", func(t *testing.T) {
		lead, err := service.GetLeadByID(ctx, 99999)

		assert.Error(t, err)
		assert.Nil(t, lead)
		assert.Contains(t, err.Error(), "lead not found")
	})
}

func TestListLeads(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client)

	for _, email := range []string{"a@email.com", "b@email.com", "c@email.com"} {
		_, err := service.CreateLead(ctx, CreateLeadRequest{
			FullName: "Lead " + email,
			Email:    email,
			Source:   "manual",
			Status:   "new",
		})
		require.NoError(t, err)
	}

	rows, err := service.ListLeads(ctx)

	require.NoError(t, err)
	require.Len(t, rows, 3)
	// Newest first
	assert.GreaterOrEqual(t, rows[0].ID, rows[1].ID)
	assert.GreaterOrEqual(t, rows[1].ID, rows[2].ID)
}

func TestUpdateLead(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client)

	created, err := service.CreateLead(ctx, CreateLeadRequest{
		FullName: "Michael Chen",
		Email:    "michael.chen@email.com",
		Source:   "manual",
		Status:   "new",
		Notes:    "High-end buyer.",
	})
	require.NoError(t, err)

	t.Run("Success - Partial update leaves other fields alone", func(t *testing.T) {
		updated, err := service.UpdateLead(ctx, created.ID, UpdateLeadRequest{
			Status:    strPtr("viewing_scheduled"),
			BudgetMax: floatPtr(1500000),
		})

		require.NoError(t, err)
		assert.Equal(t, "viewing_scheduled", updated.Status)
		require.NotNil(t, updated.BudgetMax)
		assert.Equal(t, 1500000.0, *updated.BudgetMax)
		assert.Equal(t, "Michael Chen", updated.FullName)
		assert.Equal(t, "High-end buyer.", updated.Notes)
	})

	t.Run("Success - Any status transition allowed", func(t *testing.T) {
		updated, err := service.UpdateLead(ctx, created.ID, UpdateLeadRequest{
			Status: strPtr("closed"),
		})
		require.NoError(t, err)
		assert.Equal(t, "closed", updated.Status)

		updated, err = service.UpdateLead(ctx, created.ID, UpdateLeadRequest{
			Status: strPtr("new"),
		})
		require.NoError(t, err)
		assert.Equal(t, "new", updated.Status)
	})

	t.Run("Error - Not found", func(t *testing.T) {
		updated, err := service.UpdateLead(ctx, 99999, UpdateLeadRequest{
			Status: strPtr("contacted"),
		})

		assert.Error(t, err)
		assert.Nil(t, updated)
		assert.Contains(t, err.Error(), "lead not found")
	})

	t.Run("Error - Email collides with another lead", func(t *testing.T) {
		other, err := service.CreateLead(ctx, CreateLeadRequest{
			FullName: "Other Lead",
			Email:    "other@email.com",
			Source:   "manual",
			Status:   "new",
		})
		require.NoError(t, err)

		updated, err := service.UpdateLead(ctx, other.ID, UpdateLeadRequest{
			Email: strPtr("michael.chen@email.com"),
		})

		assert.Error(t, err)
		assert.Nil(t, updated)
		assert.Contains(t, err.Error(), "already in use")
	})
}

func TestDeleteLead(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client)

	created, err := service.CreateLead(ctx, CreateLeadRequest{
		FullName: "David Brown",
		Email:    "david.brown@email.com",
		Source:   "other",
		Status:   "closed",
	})
	require.NoError(t, err)

	t.Run("Success - Delete", func(t *testing.T) {
		err := service.DeleteLead(ctx, created.ID)
		require.NoError(t, err)

		_, err = service.GetLeadByID(ctx, created.ID)
		assert.Error(t, err)
	})

	t.Run("Error - Already gone", func(t *testing.T) {
		err := service.DeleteLead(ctx, created.ID)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "lead not found")
	})
}
