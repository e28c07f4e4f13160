package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Property holds the schema definition for the Property entity.
type Property struct {
	ent.Schema
}

// Fields of the Property.
func (Property) Fields() []ent.Field {
	return []ent.Field{
		field.String("title").
			NotEmpty().
			Comment("Listing title"),
		field.String("slug").
			Unique().
			NotEmpty().
			Comment("URL slug, the only public lookup key for the landing page"),
		field.String("address").
			NotEmpty().
			Comment("Street address"),
		field.String("city").
			NotEmpty().
			Comment("City name"),
		field.String("country").
			NotEmpty().
			Comment("Country name"),
		field.Float("price").
			Comment("Asking price"),
		field.Enum("status").
			Values("active", "under_contract", "sold", "off_market").
			Default("active").
			Comment("Listing status"),
		field.Bool("published").
			Default(false).
			Comment("Whether the public landing page is visible"),
		field.String("main_image_url").
			Optional().
			Comment("Primary listing image"),
		field.Text("gallery").
			Optional().
			Comment("Comma-delimited image URLs in display order"),
		field.Int("beds").
			Optional().
			Nillable().
			Comment("Number of bedrooms"),
		field.Int("baths").
			Optional().
			Nillable().
			Comment("Number of bathrooms"),
		field.Float("area_sqm").
			Optional().
			Nillable().
			Comment("Living area in square meters"),
		field.Text("description").
			Optional().
			Comment("Listing description"),
		field.String("hero_title").
			Optional().
			Comment("Landing page hero headline"),
		field.String("hero_subtitle").
			Optional().
			Comment("Landing page hero subheadline"),
		field.String("cta_text").
			Optional().
			Comment("Landing page call-to-action label"),
		field.String("meta_title").
			Optional().
			Comment("SEO meta title"),
		field.String("meta_description").
			Optional().
			Comment("SEO meta description"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last update timestamp"),
	}
}

// Edges of the Property.
func (Property) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("deals", Deal.Type).
			Comment("Deals involving this property"),
		edge.To("activities", Activity.Type).
			Comment("Activities referencing this property"),
		edge.To("submissions", FormSubmission.Type).
			Comment("Landing-page submissions for this property"),
	}
}

// Indexes of the Property.
func (Property) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("slug").Unique(),
		index.Fields("status"),
		index.Fields("published"),
		index.Fields("city"),
		index.Fields("created_at"),
	}
}
