package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FormSubmission holds the schema definition for a landing-page contact
// form submission. Append-only.
type FormSubmission struct {
	ent.Schema
}

// Fields of the FormSubmission.
func (FormSubmission) Fields() []ent.Field {
	return []ent.Field{
		field.Int("property_id").
			Positive().
			Comment("ID of the property the form was submitted for"),
		field.String("full_name").
			NotEmpty().
			Comment("Submitted contact name"),
		field.String("email").
			NotEmpty().
			Comment("Submitted contact email"),
		field.String("phone").
			Optional().
			Comment("Submitted phone number"),
		field.Text("message").
			Optional().
			Comment("Submitted message"),
		field.Int("lead_id").
			Positive().
			Comment("ID of the lead this submission was resolved to"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
	}
}

// Edges of the FormSubmission.
func (FormSubmission) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("property", Property.Type).
			Ref("submissions").
			Field("property_id").
			Unique().
			Required().
			Comment("Property the form was submitted for"),
		edge.From("lead", Lead.Type).
			Ref("submissions").
			Field("lead_id").
			Unique().
			Required().
			Comment("Lead this submission was resolved to"),
	}
}

// Indexes of the FormSubmission.
func (FormSubmission) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("property_id", "created_at"),
		index.Fields("lead_id"),
		index.Fields("email"),
	}
}
