// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/estatedesk/backend/ent/deal"
	"github.com/estatedesk/backend/ent/lead"
	"github.com/estatedesk/backend/ent/property"
)

// Deal is the model entity for the Deal schema.
type Deal struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ID of the lead this deal belongs to
	LeadID int `json:"lead_id,omitempty"`
	// ID of the property this deal is for
	PropertyID int `json:"property_id,omitempty"`
	// Deal stage
	Stage deal.Stage `json:"stage,omitempty"`
	// Current offer price
	OfferPrice *float64 `json:"offer_price,omitempty"`
	// Final price when the deal closed
	ClosedPrice *float64 `json:"closed_price,omitempty"`
	// Commission fraction; no schema default, projections fall back to 0.03 at read time
	CommissionRate *float64 `json:"commission_rate,omitempty"`
	// Expected closing date
	ExpectedCloseDate *time.Time `json:"expected_close_date,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DealQuery when eager-loading is set.
	Edges        DealEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DealEdges holds the relations/edges for other nodes in the graph.
type DealEdges struct {
	// Lead this deal belongs to
	Lead *Lead `json:"lead,omitempty"`
	// Property this deal is for
	Property *Property `json:"property,omitempty"`
	// Activities referencing this deal
	Activities []*Activity `json:"activities,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// LeadOrErr returns the Lead value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DealEdges) LeadOrErr() (*Lead, error) {
	if e.Lead != nil {
		return e.Lead, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: lead.Label}
	}
	return nil, &NotLoadedError{edge: "lead"}
}

// PropertyOrErr returns the Property value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DealEdges) PropertyOrErr() (*Property, error) {
	if e.Property != nil {
		return e.Property, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: property.Label}
	}
	return nil, &NotLoadedError{edge: "property"}
}

// ActivitiesOrErr returns the Activities value or an error if the edge
// was not loaded in eager-loading.
func (e DealEdges) ActivitiesOrErr() ([]*Activity, error) {
	if e.loadedTypes[2] {
		return e.Activities, nil
	}
	return nil, &NotLoadedError{edge: "activities"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Deal) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case deal.FieldOfferPrice, deal.FieldClosedPrice, deal.FieldCommissionRate:
			values[i] = new(sql.NullFloat64)
		case deal.FieldID, deal.FieldLeadID, deal.FieldPropertyID:
			values[i] = new(sql.NullInt64)
		case deal.FieldStage:
			values[i] = new(sql.NullString)
		case deal.FieldExpectedCloseDate, deal.FieldCreatedAt, deal.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Deal fields.
func (_m *Deal) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case deal.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case deal.FieldLeadID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field lead_id", values[i])
			} else if value.Valid {
				_m.LeadID = int(value.Int64)
			}
		case deal.FieldPropertyID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field property_id", values[i])
			} else if value.Valid {
				_m.PropertyID = int(value.Int64)
			}
		case deal.FieldStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage", values[i])
			} else if value.Valid {
				_m.Stage = deal.Stage(value.String)
			}
		case deal.FieldOfferPrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field offer_price", values[i])
			} else if value.Valid {
				_m.OfferPrice = new(float64)
				*_m.OfferPrice = value.Float64
			}
		case deal.FieldClosedPrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field closed_price", values[i])
			} else if value.Valid {
				_m.ClosedPrice = new(float64)
				*_m.ClosedPrice = value.Float64
			}
		case deal.FieldCommissionRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field commission_rate", values[i])
			} else if value.Valid {
				_m.CommissionRate = new(float64)
				*_m.CommissionRate = value.Float64
			}
		case deal.FieldExpectedCloseDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expected_close_date", values[i])
			} else if value.Valid {
				_m.ExpectedCloseDate = new(time.Time)
				*_m.ExpectedCloseDate = value.Time
			}
		case deal.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case deal.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Deal.
// This includes values selected through modifiers, order, etc.
func (_m *Deal) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLead queries the "lead" edge of the Deal entity.
func (_m *Deal) QueryLead() *LeadQuery {
	return NewDealClient(_m.config).QueryLead(_m)
}

// QueryProperty queries the "property" edge of the Deal entity.
func (_m *Deal) QueryProperty() *PropertyQuery {
	return NewDealClient(_m.config).QueryProperty(_m)
}

// QueryActivities queries the "activities" edge of the Deal entity.
func (_m *Deal) QueryActivities() *ActivityQuery {
	return NewDealClient(_m.config).QueryActivities(_m)
}

// Update returns a builder for updating this Deal.
// Note that you need to call Deal.Unwrap() before calling this method if this Deal
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Deal) Update() *DealUpdateOne {
	return NewDealClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Deal entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Deal) Unwrap() *Deal {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Deal is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Deal) String() string {
	var builder strings.Builder
	builder.WriteString("Deal(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("lead_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.LeadID))
	builder.WriteString(", ")
	builder.WriteString("property_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PropertyID))
	builder.WriteString(", ")
	builder.WriteString("stage=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stage))
	builder.WriteString(", ")
	if v := _m.OfferPrice; v != nil {
		builder.WriteString("offer_price=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ClosedPrice; v != nil {
		builder.WriteString("closed_price=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CommissionRate; v != nil {
		builder.WriteString("commission_rate=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ExpectedCloseDate; v != nil {
		builder.WriteString("expected_close_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Deals is a parsable slice of Deal.
type Deals []*Deal
