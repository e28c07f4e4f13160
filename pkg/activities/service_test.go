package activities

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

func createTestUser(t *testing.T, client *ent.Client, email, name string) *ent.User {
	u, err := client.User.
		Create().
		SetName(name).
		SetEmail(email).
		SetPasswordHash("hashed_password").
		Save(context.Background())
	require.NoError(t, err)
	return u
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

func TestCreateActivity(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client)
	agent := createTestUser(t, client, "agent@demo.com", "Sarah Johnson")
	lead := createTestLead(t, client, "john@email.com")

	t.Run("Success - Log call against a lead", func(t *testing.T) {
		activity, err := service.CreateActivity(ctx, agent.ID, CreateActivityRequest{
			Type:    "call",
			Content: "Initial qualification call. Budget confirmed.",
			LeadID:  &lead.ID,
		})

		require.NoError(t, err)
		assert.NotZero(t, activity.ID)
		assert.Equal(t, "call", activity.Type)
		assert.Equal(t, agent.ID, activity.UserID)
		assert.Equal(t, "Sarah Johnson", activity.UserName)
		require.NotNil(t, activity.LeadID)
		assert.Equal(t, lead.ID, *activity.LeadID)
		assert.Equal(t, "John Smith", activity.LeadName)
		assert.NotZero(t, activity.CreatedAt)
	})

	t.Run("Success - Note with no references", func(t *testing.T) {
		activity, err := service.CreateActivity(ctx, agent.ID, CreateActivityRequest{
			Type:    "note",
			Content: "General market research for the week.",
		})

		require.NoError(t, err)
		assert.Nil(t, activity.LeadID)
		assert.Nil(t, activity.PropertyID)
		assert.Nil(t, activity.DealID)
	})

	t.Run("Error - Dangling lead reference", func(t *testing.T) {
		missing := 99999
		activity, err := service.CreateActivity(ctx, agent.ID, CreateActivityRequest{
			Type:    "note",
			Content: "This should fail.",
			LeadID:  &missing,
		})

		assert.Error(t, err)
		assert.Nil(t, activity)
	})

	t.Run("Error - Dangling author", func(t *testing.T) {
		activity, err := service.CreateActivity(ctx, 99999, CreateActivityRequest{
			Type:    "note",
			Content: "No such user.",
		})

		assert.Error(t, err)
		assert.Nil(t, activity)
	})
}

func TestListActivities(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client)
	agent := createTestUser(t, client, "agent@demo.com", "Sarah Johnson")

	for i := 0; i < 5; i++ {
		_, err := service.CreateActivity(ctx, agent.ID, CreateActivityRequest{
			Type:    "note",
			Content: "Entry",
		})
		require.NoError(t, err)
	}

	t.Run("Success - Unlimited returns everything newest first", func(t *testing.T) {
		rows, err := service.ListActivities(ctx, 0)

		require.NoError(t, err)
		require.Len(t, rows, 5)
		assert.GreaterOrEqual(t, rows[0].ID, rows[1].ID)
	})

	t.Run("Success - Limit caps the feed", func(t *testing.T) {
		rows, err := service.ListActivities(ctx, 2)

		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})
}

func TestListForLead(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client)
	agent := createTestUser(t, client, "agent@demo.com", "Sarah Johnson")
	lead := createTestLead(t, client, "john@email.com")
	other := createTestLead(t, client, "emily@email.com")

	_, err := service.CreateActivity(ctx, agent.ID, CreateActivityRequest{
		Type: "call", Content: "Call with John.", LeadID: &lead.ID,
	})
	require.NoError(t, err)
	_, err = service.CreateActivity(ctx, agent.ID, CreateActivityRequest{
		Type: "email", Content: "Email to Emily.", LeadID: &other.ID,
	})
	require.NoError(t, err)

	rows, err := service.ListForLead(ctx, lead.ID)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Call with John.", rows[0].Content)
}
