// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/estatedesk/backend/ent/property"
)

// Property is the model entity for the Property schema.
type Property struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Listing title
	Title string `json:"title,omitempty"`
	// URL slug, the only public lookup key for the landing page
	Slug string `json:"slug,omitempty"`
	// Street address
	Address string `json:"address,omitempty"`
	// City name
	City string `json:"city,omitempty"`
	// Country name
	Country string `json:"country,omitempty"`
	// Asking price
	Price float64 `json:"price,omitempty"`
	// Listing status
	Status property.Status `json:"status,omitempty"`
	// Whether the public landing page is visible
	Published bool `json:"published,omitempty"`
	// Primary listing image
	MainImageURL string `json:"main_image_url,omitempty"`
	// Comma-delimited image URLs in display order
	Gallery string `json:"gallery,omitempty"`
	// Number of bedrooms
	Beds *int `json:"beds,omitempty"`
	// Number of bathrooms
	Baths *int `json:"baths,omitempty"`
	// Living area in square meters
	AreaSqm *float64 `json:"area_sqm,omitempty"`
	// Listing description
	Description string `json:"description,omitempty"`
	// Landing page hero headline
	HeroTitle string `json:"hero_title,omitempty"`
	// Landing page hero subheadline
	HeroSubtitle string `json:"hero_subtitle,omitempty"`
	// Landing page call-to-action label
	CtaText string `json:"cta_text,omitempty"`
	// SEO meta title
	MetaTitle string `json:"meta_title,omitempty"`
	// SEO meta description
	MetaDescription string `json:"meta_description,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PropertyQuery when eager-loading is set.
	Edges        PropertyEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PropertyEdges holds the relations/edges for other nodes in the graph.
type PropertyEdges struct {
	// Deals involving this property
	Deals []*Deal `json:"deals,omitempty"`
	// Activities referencing this property
	Activities []*Activity `json:"activities,omitempty"`
	// Landing-page submissions for this property
	Submissions []*FormSubmission `json:"submissions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// DealsOrErr returns the Deals value or an error if the edge
// was not loaded in eager-loading.
func (e PropertyEdges) DealsOrErr() ([]*Deal, error) {
	if e.loadedTypes[0] {
		return e.Deals, nil
	}
	return nil, &NotLoadedError{edge: "deals"}
}

// ActivitiesOrErr returns the Activities value or an error if the edge
// was not loaded in eager-loading.
func (e PropertyEdges) ActivitiesOrErr() ([]*Activity, error) {
	if e.loadedTypes[1] {
		return e.Activities, nil
	}
	return nil, &NotLoadedError{edge: "activities"}
}

// SubmissionsOrErr returns the Submissions value or an error if the edge
// was not loaded in eager-loading.
func (e PropertyEdges) SubmissionsOrErr() ([]*FormSubmission, error) {
	if e.loadedTypes[2] {
		return e.Submissions, nil
	}
	return nil, &NotLoadedError{edge: "submissions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Property) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case property.FieldPublished:
			values[i] = new(sql.NullBool)
		case property.FieldPrice, property.FieldAreaSqm:
			values[i] = new(sql.NullFloat64)
		case property.FieldID, property.FieldBeds, property.FieldBaths:
			values[i] = new(sql.NullInt64)
		case property.FieldTitle, property.FieldSlug, property.FieldAddress, property.FieldCity, property.FieldCountry, property.FieldStatus, property.FieldMainImageURL, property.FieldGallery, property.FieldDescription, property.FieldHeroTitle, property.FieldHeroSubtitle, property.FieldCtaText, property.FieldMetaTitle, property.FieldMetaDescription:
			values[i] = new(sql.NullString)
		case property.FieldCreatedAt, property.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Property fields.
func (_m *Property) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case property.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case property.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case property.FieldSlug:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field slug", values[i])
			} else if value.Valid {
				_m.Slug = value.String
			}
		case property.FieldAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field address", values[i])
			} else if value.Valid {
				_m.Address = value.String
			}
		case property.FieldCity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field city", values[i])
			} else if value.Valid {
				_m.City = value.String
			}
		case property.FieldCountry:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field country", values[i])
			} else if value.Valid {
				_m.Country = value.String
			}
		case property.FieldPrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field price", values[i])
			} else if value.Valid {
				_m.Price = value.Float64
			}
		case property.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = property.Status(value.String)
			}
		case property.FieldPublished:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field published", values[i])
			} else if value.Valid {
				_m.Published = value.Bool
			}
		case property.FieldMainImageURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field main_image_url", values[i])
			} else if value.Valid {
				_m.MainImageURL = value.String
			}
		case property.FieldGallery:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field gallery", values[i])
			} else if value.Valid {
				_m.Gallery = value.String
			}
		case property.FieldBeds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field beds", values[i])
			} else if value.Valid {
				_m.Beds = new(int)
				*_m.Beds = int(value.Int64)
			}
		case property.FieldBaths:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field baths", values[i])
			} else if value.Valid {
				_m.Baths = new(int)
				*_m.Baths = int(value.Int64)
			}
		case property.FieldAreaSqm:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field area_sqm", values[i])
			} else if value.Valid {
				_m.AreaSqm = new(float64)
				*_m.AreaSqm = value.Float64
			}
		case property.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case property.FieldHeroTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hero_title", values[i])
			} else if value.Valid {
				_m.HeroTitle = value.String
			}
		case property.FieldHeroSubtitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hero_subtitle", values[i])
			} else if value.Valid {
				_m.HeroSubtitle = value.String
			}
		case property.FieldCtaText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cta_text", values[i])
			} else if value.Valid {
				_m.CtaText = value.String
			}
		case property.FieldMetaTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field meta_title", values[i])
			} else if value.Valid {
				_m.MetaTitle = value.String
			}
		case property.FieldMetaDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field meta_description", values[i])
			} else if value.Valid {
				_m.MetaDescription = value.String
			}
		case property.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case property.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Property.
// This includes values selected through modifiers, order, etc.
func (_m *Property) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDeals queries the "deals" edge of the Property entity.
func (_m *Property) QueryDeals() *DealQuery {
	return NewPropertyClient(_m.config).QueryDeals(_m)
}

// QueryActivities queries the "activities" edge of the Property entity.
func (_m *Property) QueryActivities() *ActivityQuery {
	return NewPropertyClient(_m.config).QueryActivities(_m)
}

// QuerySubmissions queries the "submissions" edge of the Property entity.
func (_m *Property) QuerySubmissions() *FormSubmissionQuery {
	return NewPropertyClient(_m.config).QuerySubmissions(_m)
}

// Update returns a builder for updating this Property.
// Note that you need to call Property.Unwrap() before calling this method if this Property
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Property) Update() *PropertyUpdateOne {
	return NewPropertyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Property entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Property) Unwrap() *Property {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Property is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Property) String() string {
	var builder strings.Builder
	builder.WriteString("Property(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("slug=")
	builder.WriteString(_m.Slug)
	builder.WriteString(", ")
	builder.WriteString("address=")
	builder.WriteString(_m.Address)
	builder.WriteString(", ")
	builder.WriteString("city=")
	builder.WriteString(_m.City)
	builder.WriteString(", ")
	builder.WriteString("country=")
	builder.WriteString(_m.Country)
	builder.WriteString(", ")
	builder.WriteString("price=")
	builder.WriteString(fmt.Sprintf("%v", _m.Price))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("published=")
	builder.WriteString(fmt.Sprintf("%v", _m.Published))
	builder.WriteString(", ")
	builder.WriteString("main_image_url=")
	builder.WriteString(_m.MainImageURL)
	builder.WriteString(", ")
	builder.WriteString("gallery=")
	builder.WriteString(_m.Gallery)
	builder.WriteString(", ")
	if v := _m.Beds; v != nil {
		builder.WriteString("beds=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Baths; v != nil {
		builder.WriteString("baths=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.AreaSqm; v != nil {
		builder.WriteString("area_sqm=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("hero_title=")
	builder.WriteString(_m.HeroTitle)
	builder.WriteString(", ")
	builder.WriteString("hero_subtitle=")
	builder.WriteString(_m.HeroSubtitle)
	builder.WriteString(", ")
	builder.WriteString("cta_text=")
	builder.WriteString(_m.CtaText)
	builder.WriteString(", ")
	builder.WriteString("meta_title=")
	builder.WriteString(_m.MetaTitle)
	builder.WriteString(", ")
	builder.WriteString("meta_description=")
	builder.WriteString(_m.MetaDescription)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Properties is a parsable slice of Property.
type Properties []*Property
