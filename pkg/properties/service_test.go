package properties

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

func strPtr(v string) *string { return &v }
func boolPtr(v bool) *bool    { return &v }

func baseCreateRequest(slug string) CreatePropertyRequest {
	return CreatePropertyRequest{
		Title:   "Modern Downtown Loft",
		Slug:    slug,
		Address: "123 Main Street, Unit 501",
		City:    "New York",
		Country: "USA",
		Price:   850000,
	}
}

func TestGallery(t *testing.T) {
	t.Run("Comma-delimited gallery is split and trimmed", func(t *testing.T) {
		p := &ent.Property{
			MainImageURL: "https://img.example/main.jpg",
			Gallery:      "https://img.example/a.jpg, https://img.example/b.jpg ,https://img.example/c.jpg",
		}

		images := Gallery(p)

		assert.Equal(t, []string{
			"https://img.example/a.jpg",
			"https://img.example/b.jpg",
			"https://img.example/c.jpg",
		}, images)
	})

	t.Run("Empty gallery falls back to main image", func(t *testing.T) {
		p := &ent.Property{
			MainImageURL: "https://img.example/main.jpg",
			Gallery:      "",
		}

		assert.Equal(t, []string{"https://img.example/main.jpg"}, Gallery(p))
	})

	t.Run("Gallery of only separators falls back to main image", func(t *testing.T) {
		p := &ent.Property{
			MainImageURL: "https://img.example/main.jpg",
			Gallery:      " , ,",
		}

		assert.Equal(t, []string{"https://img.example/main.jpg"}, Gallery(p))
	})
}

func TestCreateProperty(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client)

	t.Run("Success - Create listing", func(t *testing.T) {
		req := baseCreateRequest("modern-downtown-loft")
		req.Published = true
		req.Gallery = "https://img.example/a.jpg,https://img.example/b.jpg"

		property, err := service.CreateProperty(ctx, req)

		require.NoError(t, err)
		assert.NotZero(t, property.ID)
		assert.Equal(t, "modern-downtown-loft", property.Slug)
		assert.Equal(t, "active", property.Status) // schema default
		assert.True(t, property.Published)
		assert.Len(t, property.Gallery, 2)
	})

	t.Run("Error - Duplicate slug", func(t *testing.T) {
		property, err := service.CreateProperty(ctx, baseCreateRequest("modern-downtown-loft"))

		assert.Error(t, err)
		assert.Nil(t, property)
		assert.Contains(t, err.Error(), "slug already in use")
	})
}

func TestGetPublishedBySlug(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client)

	published := baseCreateRequest("published-loft")
	published.Published = true
	_, err := service.CreateProperty(ctx, published)
	require.NoError(t, err)

	unpublished := baseCreateRequest("hidden-loft")
	unpublished.Published = false
	_, err = service.CreateProperty(ctx, unpublished)
	require.NoError(t, err)

	offMarket := baseCreateRequest("off-market-loft")
	offMarket.Published = true
	offMarket.Status = "off_market"
	_, err = service.CreateProperty(ctx, offMarket)
	require.NoError(t, err)

	t.Run("Success - Published property is visible", func(t *testing.T) {
		property, err := service.GetPublishedBySlug(ctx, "published-loft")

		require.NoError(t, err)
		assert.Equal(t, "published-loft", property.Slug)
	})

	t.Run("Error - Unpublished reads as not found", func(t *testing.T) {
		property, err := service.GetPublishedBySlug(ctx, "hidden-loft")

		assert.Error(t, err)
		assert.Nil(t, property)
		assert.Contains(t, err.Error(), "property not found")
	})

	t.Run("Error - Off-market reads as not found", func(t *testing.T) {
		property, err := service.GetPublishedBySlug(ctx, "off-market-loft")

		assert.Error(t, err)
		assert.Nil(t, property)
		assert.Contains(t, err.Error(), "property not found")
	})

	t.Run("Error - Unknown slug", func(t *testing.T) {
		property, err := service.GetPublishedBySlug(ctx, "no-such-property")

		assert.Error(t, err)
		assert.Nil(t, property)
	})
}

func TestUpdateProperty(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client)

	created, err := service.CreateProperty(ctx, baseCreateRequest("update-me"))
	require.NoError(t, err)

	t.Run("Success - Partial update", func(t *testing.T) {
		updated, err := service.UpdateProperty(ctx, created.ID, UpdatePropertyRequest{
			Status:    strPtr("under_contract"),
			Published: boolPtr(true),
		})

		require.NoError(t, err)
		assert.Equal(t, "under_contract", updated.Status)
		assert.True(t, updated.Published)
		assert.Equal(t, created.Title, updated.Title)
		assert.Equal(t, created.Price, updated.Price)
	})

	t.Run("Error - Not found", func(t *testing.T) {
		updated, err := service.UpdateProperty(ctx, 99999, UpdatePropertyRequest{
			Status: strPtr("sold"),
		})

		assert.Error(t, err)
		assert.Nil(t, updated)
		assert.Contains(t, err.Error(), "property not found")
	})

	t.Run("Error - Slug collides with another listing", func(t *testing.T) {
		_, err := service.CreateProperty(ctx, baseCreateRequest("taken-slug"))
		require.NoError(t, err)

		updated, err := service.UpdateProperty(ctx, created.ID, UpdatePropertyRequest{
			Slug: strPtr("taken-slug"),
		})

		assert.Error(t, err)
		assert.Nil(t, updated)
		assert.Contains(t, err.Error(), "slug already in use")
	})
}

func TestDeleteProperty(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client)

	created, err := service.CreateProperty(ctx, baseCreateRequest("delete-me"))
	require.NoError(t, err)

	err = service.DeleteProperty(ctx, created.ID)
	require.NoError(t, err)

	err = service.DeleteProperty(ctx, created.ID)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "property not found")
}
