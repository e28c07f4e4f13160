package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Activity holds the schema definition for the Activity entity.
// Activities are append-only: the API exposes no update or delete.
type Activity struct {
	ent.Schema
}

// Fields of the Activity.
func (Activity) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("type").
			Values("call", "email", "meeting", "viewing", "note").
			Comment("Kind of interaction recorded"),
		field.Text("content").
			NotEmpty().
			Comment("Activity description"),
		field.Int("user_id").
			Positive().
			Comment("ID of the authoring user"),
		field.Int("lead_id").
			Optional().
			Nillable().
			Comment("Optional lead reference"),
		field.Int("property_id").
			Optional().
			Nillable().
			Comment("Optional property reference"),
		field.Int("deal_id").
			Optional().
			Nillable().
			Comment("Optional deal reference"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
	}
}

// Edges of the Activity.
func (Activity) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("activities").
			Field("user_id").
			Unique().
			Required().
			Comment("User who recorded this activity"),
		edge.From("lead", Lead.Type).
			Ref("activities").
			Field("lead_id").
			Unique().
			Comment("Lead this activity refers to"),
		edge.From("property", Property.Type).
			Ref("activities").
			Field("property_id").
			Unique().
			Comment("Property this activity refers to"),
		edge.From("deal", Deal.Type).
			Ref("activities").
			Field("deal_id").
			Unique().
			Comment("Deal this activity refers to"),
	}
}

// Indexes of the Activity.
func (Activity) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
		index.Fields("user_id", "created_at"),
		index.Fields("lead_id", "created_at"),
	}
}
