// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/estatedesk/backend/ent/formsubmission"
	"github.com/estatedesk/backend/ent/lead"
	"github.com/estatedesk/backend/ent/property"
)

// FormSubmission is the model entity for the FormSubmission schema.
type FormSubmission struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ID of the property the form was submitted for
	PropertyID int `json:"property_id,omitempty"`
	// Submitted contact name
	FullName string `json:"full_name,omitempty"`
	// Submitted contact email
	Email string `json:"email,omitempty"`
	// Submitted phone number
	Phone string `json:"phone,omitempty"`
	// Submitted message
	Message string `json:"message,omitempty"`
	// ID of the lead this submission was resolved to
	LeadID int `json:"lead_id,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FormSubmissionQuery when eager-loading is set.
	Edges        FormSubmissionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FormSubmissionEdges holds the relations/edges for other nodes in the graph.
type FormSubmissionEdges struct {
	// Property the form was submitted for
	Property *Property `json:"property,omitempty"`
	// Lead this submission was resolved to
	Lead *Lead `json:"lead,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// PropertyOrErr returns the Property value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FormSubmissionEdges) PropertyOrErr() (*Property, error) {
	if e.Property != nil {
		return e.Property, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: property.Label}
	}
	return nil, &NotLoadedError{edge: "property"}
}

// LeadOrErr returns the Lead value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FormSubmissionEdges) LeadOrErr() (*Lead, error) {
	if e.Lead != nil {
		return e.Lead, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: lead.Label}
	}
	return nil, &NotLoadedError{edge: "lead"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FormSubmission) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case formsubmission.FieldID, formsubmission.FieldPropertyID, formsubmission.FieldLeadID:
			values[i] = new(sql.NullInt64)
		case formsubmission.FieldFullName, formsubmission.FieldEmail, formsubmission.FieldPhone, formsubmission.FieldMessage:
			values[i] = new(sql.NullString)
		case formsubmission.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FormSubmission fields.
func (_m *FormSubmission) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case formsubmission.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case formsubmission.FieldPropertyID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field property_id", values[i])
			} else if value.Valid {
				_m.PropertyID = int(value.Int64)
			}
		case formsubmission.FieldFullName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field full_name", values[i])
			} else if value.Valid {
				_m.FullName = value.String
			}
		case formsubmission.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case formsubmission.FieldPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone", values[i])
			} else if value.Valid {
				_m.Phone = value.String
			}
		case formsubmission.FieldMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message", values[i])
			} else if value.Valid {
				_m.Message = value.String
			}
		case formsubmission.FieldLeadID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field lead_id", values[i])
			} else if value.Valid {
				_m.LeadID = int(value.Int64)
			}
		case formsubmission.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FormSubmission.
// This includes values selected through modifiers, order, etc.
func (_m *FormSubmission) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProperty queries the "property" edge of the FormSubmission entity.
func (_m *FormSubmission) QueryProperty() *PropertyQuery {
	return NewFormSubmissionClient(_m.config).QueryProperty(_m)
}

// QueryLead queries the "lead" edge of the FormSubmission entity.
func (_m *FormSubmission) QueryLead() *LeadQuery {
	return NewFormSubmissionClient(_m.config).QueryLead(_m)
}

// Update returns a builder for updating this FormSubmission.
// Note that you need to call FormSubmission.Unwrap() before calling this method if this FormSubmission
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FormSubmission) Update() *FormSubmissionUpdateOne {
	return NewFormSubmissionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FormSubmission entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FormSubmission) Unwrap() *FormSubmission {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FormSubmission is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FormSubmission) String() string {
	var builder strings.Builder
	builder.WriteString("FormSubmission(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("property_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PropertyID))
	builder.WriteString(", ")
	builder.WriteString("full_name=")
	builder.WriteString(_m.FullName)
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("phone=")
	builder.WriteString(_m.Phone)
	builder.WriteString(", ")
	builder.WriteString("message=")
	builder.WriteString(_m.Message)
	builder.WriteString(", ")
	builder.WriteString("lead_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.LeadID))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// FormSubmissions is a parsable slice of FormSubmission.
type FormSubmissions []*FormSubmission
