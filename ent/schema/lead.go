package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Lead holds the schema definition for the Lead entity.
type Lead struct {
	ent.Schema
}

// Fields of the Lead.
func (Lead) Fields() []ent.Field {
	return []ent.Field{
		field.String("full_name").
			NotEmpty().
			Comment("Contact full name"),
		field.String("email").
			NotEmpty().
			Comment("Contact email, deduplication key for landing-page intake"),
		field.String("phone").
			Optional().
			Comment("Phone number"),
		field.Enum("source").
			Values("landing_page", "manual", "referral", "other").
			Default("manual").
			Comment("How this lead entered the system"),
		field.Enum("status").
			Values("new", "contacted", "viewing_scheduled", "offer_made", "closed", "lost").
			Default("new").
			Comment("Lead lifecycle status"),
		field.Float("budget_min").
			Optional().
			Nillable().
			Comment("Lower bound of stated budget"),
		field.Float("budget_max").
			Optional().
			Nillable().
			Comment("Upper bound of stated budget"),
		field.Text("notes").
			Optional().
			Comment("Free-form notes"),
		field.Int("assigned_to_id").
			Optional().
			Nillable().
			Comment("ID of the user this lead is assigned to"),
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

// Edges of the Lead.
func (Lead) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("assignee", User.Type).
			Ref("assigned_leads").
			Field("assigned_to_id").
			Unique().
			Comment("User this lead is assigned to"),
		edge.To("deals", Deal.Type).
			Comment("Deals opened for this lead"),
		edge.To("activities", Activity.Type).
			Comment("Activities referencing this lead"),
		edge.To("submissions", FormSubmission.Type).
			Comment("Landing-page submissions resolved to this lead"),
	}
}

// Indexes of the Lead.
func (Lead) Indexes() []ent.Index {
	return []ent.Index{
		// Unique so concurrent intake submissions cannot create duplicates;
		// the intake service keys its conditional insert on this constraint.
		index.Fields("email").Unique(),
		index.Fields("status"),
		index.Fields("source"),
		index.Fields("assigned_to_id"),
		index.Fields("created_at"),
	}
}
