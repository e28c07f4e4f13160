package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Deal holds the schema definition for the Deal entity.
type Deal struct {
	ent.Schema
}

// Fields of the Deal.
func (Deal) Fields() []ent.Field {
	return []ent.Field{
		field.Int("lead_id").
			Positive().
			Comment("ID of the lead this deal belongs to"),
		field.Int("property_id").
			Positive().
			Comment("ID of the property this deal is for"),
		field.Enum("stage").
			Values("negotiation", "under_contract", "closed", "fallthrough").
			Default("negotiation").
			Comment("Deal stage"),
		field.Float("offer_price").
			Optional().
			Nillable().
			Comment("Current offer price"),
		field.Float("closed_price").
			Optional().
			Nillable().
			Comment("Final price when the deal closed"),
		field.Float("commission_rate").
			Optional().
			Nillable().
			Comment("Commission fraction; no schema default, projections fall back to 0.03 at read time"),
		field.Time("expected_close_date").
			Optional().
			Nillable().
			Comment("Expected closing date"),
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

// Edges of the Deal.
func (Deal) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("lead", Lead.Type).
			Ref("deals").
			Field("lead_id").
			Unique().
			Required().
			Comment("Lead this deal belongs to"),
		edge.From("property", Property.Type).
			Ref("deals").
			Field("property_id").
			Unique().
			Required().
			Comment("Property this deal is for"),
		edge.To("activities", Activity.Type).
			Comment("Activities referencing this deal"),
	}
}

// Indexes of the Deal.
func (Deal) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lead_id"),
		index.Fields("property_id"),
		index.Fields("stage"),
		index.Fields("stage", "updated_at"),
		index.Fields("created_at"),
	}
}
