package intake

import (
	"context"
	"testing"

	"github.com/estatedesk/backend/ent"
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

func createTestProperty(t *testing.T, client *ent.Client, slug string) *ent.Property {
	p, err := client.Property.
		Create().
		SetTitle("Modern Downtown Loft").
		SetSlug(slug).
		SetAddress("123 Main Street").
		SetCity("New York").
		SetCountry("USA").
		SetPrice(850000).
		SetPublished(true).
		Save(context.Background())
	require.NoError(t, err)
	return p
}

func TestSubmit(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client)
	property := createTestProperty(t, client, "modern-downtown-loft")

	t.Run("Success - New email creates lead and submission", func(t *testing.T) {
		req := SubmitRequest{
			PropertyID: property.ID,
			FullName:   "John Smith",
			Email:      "john.smith@email.com",
			Phone:      "+1 555-0101",
			Message:    "I would love a viewing!",
		}

		result, err := service.Submit(ctx, req)

		require.NoError(t, err)
		assert.True(t, result.LeadCreated)
		assert.NotZero(t, result.Submission.ID)
		assert.Equal(t, property.ID, result.Submission.PropertyID)
		assert.Equal(t, req.Email, result.Submission.Email)
		assert.NotZero(t, result.Submission.CreatedAt)

		created, err := client.Lead.Query().Where(lead.EmailEQ(req.Email)).Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, "John Smith", created.FullName)
		assert.Equal(t, lead.SourceLandingPage, created.Source)
		assert.Equal(t, lead.StatusNew, created.Status)
		assert.Equal(t, created.ID, result.Submission.LeadID)
	})

	t.Run("Success - Existing email reuses lead untouched", func(t *testing.T) {
		existing, err := client.Lead.
			Create().
			SetFullName("Emily Rodriguez").
			SetEmail("emily.r@email.com").
			SetPhone("+1 555-0102").
			SetSource(lead.SourceReferral).
			SetStatus(lead.StatusContacted).
			Save(ctx)
		require.NoError(t, err)

		// Submission carries a different name and phone; the lead keeps its own.
		result, err := service.Submit(ctx, SubmitRequest{
			PropertyID: property.ID,
			FullName:   "Emilia R.",
			Email:      "emily.r@email.com",
			Phone:      "+1 555-9999",
		})

		require.NoError(t, err)
		assert.False(t, result.LeadCreated)
		assert.Equal(t, existing.ID, result.Submission.LeadID)
		assert.Equal(t, "Emilia R.", result.Submission.FullName)

		reloaded, err := client.Lead.Get(ctx, existing.ID)
		require.NoError(t, err)
		assert.Equal(t, "Emily Rodriguez", reloaded.FullName)
		assert.Equal(t, "+1 555-0102", reloaded.Phone)
		assert.Equal(t, lead.SourceReferral, reloaded.Source)
		assert.Equal(t, lead.StatusContacted, reloaded.Status)
	})

	t.Run("Success - Repeat submission adds a second row for same lead", func(t *testing.T) {
		first, err := service.Submit(ctx, SubmitRequest{
			PropertyID: property.ID,
			FullName:   "Michael Chen",
			Email:      "michael.chen@email.com",
		})
		require.NoError(t, err)
		require.True(t, first.LeadCreated)

		second, err := service.Submit(ctx, SubmitRequest{
			PropertyID: property.ID,
			FullName:   "Michael Chen",
			Email:      "michael.chen@email.com",
			Message:    "Following up on my earlier message.",
		})

		require.NoError(t, err)
		assert.False(t, second.LeadCreated)
		assert.Equal(t, first.Submission.LeadID, second.Submission.LeadID)
		assert.NotEqual(t, first.Submission.ID, second.Submission.ID)

		count, err := client.FormSubmission.Query().Count(ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, count, 2)
	})

	t.Run("Error - Missing property", func(t *testing.T) {
		result, err := service.Submit(ctx, SubmitRequest{
			PropertyID: 99999,
			FullName:   "Ghost Buyer",
			Email:      "ghost@email.com",
		})

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestSubmitInsertRace(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client)
	property := createTestProperty(t, client, "race-loft")

	// A mutation hook slips a competing lead in between the lookup miss
	// and the insert, the way a concurrent submission would. The flag
	// keeps the hook from firing on its own insert.
	raced := false
	client.Lead.Use(func(next ent.Mutator) ent.Mutator {
		return ent.MutateFunc(func(ctx context.Context, m ent.Mutation) (ent.Value, error) {
			if !raced && m.Op().Is(ent.OpCreate) {
				raced = true
				_, err := client.Lead.
					Create().
					SetFullName("First Submitter").
					SetEmail("race@email.com").
					SetSource(lead.SourceLandingPage).
					SetStatus(lead.StatusNew).
					Save(ctx)
				require.NoError(t, err)
			}
			return next.Mutate(ctx, m)
		})
	})

	result, err := service.Submit(ctx, SubmitRequest{
		PropertyID: property.ID,
		FullName:   "Second Submitter",
		Email:      "race@email.com",
	})

	require.NoError(t, err)
	assert.False(t, result.LeadCreated)

	// The losing insert resolved to the winner's lead.
	winner, err := client.Lead.Query().Where(lead.EmailEQ("race@email.com")).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "First Submitter", winner.FullName)
	assert.Equal(t, winner.ID, result.Submission.LeadID)

	count, err := client.Lead.Query().Where(lead.EmailEQ("race@email.com")).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
