// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/estatedesk/backend/ent/activity"
	"github.com/estatedesk/backend/ent/deal"
	"github.com/estatedesk/backend/ent/formsubmission"
	"github.com/estatedesk/backend/ent/predicate"
	"github.com/estatedesk/backend/ent/property"
)

// PropertyUpdate is the builder for updating Property entities.
type PropertyUpdate struct {
	config
	hooks    []Hook
	mutation *PropertyMutation
}

// Where appends a list predicates to the PropertyUpdate builder.
func (_u *PropertyUpdate) Where(ps ...predicate.Property) *PropertyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *PropertyUpdate) SetTitle(v string) *PropertyUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PropertyUpdate) SetNillableTitle(v *string) *PropertyUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *PropertyUpdate) SetSlug(v string) *PropertyUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *PropertyUpdate) SetNillableSlug(v *string) *PropertyUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetAddress sets the "address" field.
func (_u *PropertyUpdate) SetAddress(v string) *PropertyUpdate {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *PropertyUpdate) SetNillableAddress(v *string) *PropertyUpdate {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// SetCity sets the "city" field.
func (_u *PropertyUpdate) SetCity(v string) *PropertyUpdate {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *PropertyUpdate) SetNillableCity(v *string) *PropertyUpdate {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// SetCountry sets the "country" field.
func (_u *PropertyUpdate) SetCountry(v string) *PropertyUpdate {
	_u.mutation.SetCountry(v)
	return _u
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_u *PropertyUpdate) SetNillableCountry(v *string) *PropertyUpdate {
	if v != nil {
		_u.SetCountry(*v)
	}
	return _u
}

// SetPrice sets the "price" field.
func (_u *PropertyUpdate) SetPrice(v float64) *PropertyUpdate {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *PropertyUpdate) SetNillablePrice(v *float64) *PropertyUpdate {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *PropertyUpdate) AddPrice(v float64) *PropertyUpdate {
	_u.mutation.AddPrice(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *PropertyUpdate) SetStatus(v property.Status) *PropertyUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PropertyUpdate) SetNillableStatus(v *property.Status) *PropertyUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPublished sets the "published" field.
func (_u *PropertyUpdate) SetPublished(v bool) *PropertyUpdate {
	_u.mutation.SetPublished(v)
	return _u
}

// SetNillablePublished sets the "published" field if the given value is not nil.
func (_u *PropertyUpdate) SetNillablePublished(v *bool) *PropertyUpdate {
	if v != nil {
		_u.SetPublished(*v)
	}
	return _u
}

// SetMainImageURL sets the "main_image_url" field.
func (_u *PropertyUpdate) SetMainImageURL(v string) *PropertyUpdate {
	_u.mutation.SetMainImageURL(v)
	return _u
}

// SetNillableMainImageURL sets the "main_image_url" field if the given value is not nil.
func (_u *PropertyUpdate) SetNillableMainImageURL(v *string) *PropertyUpdate {
	if v != nil {
		_u.SetMainImageURL(*v)
	}
	return _u
}

// ClearMainImageURL clears the value of the "main_image_url" field.
func (_u *PropertyUpdate) ClearMainImageURL() *PropertyUpdate {
	_u.mutation.ClearMainImageURL()
	return _u
}

// SetGallery sets the "gallery" field.
func (_u *PropertyUpdate) SetGallery(v string) *PropertyUpdate {
	_u.mutation.SetGallery(v)
	return _u
}

// SetNillableGallery sets the "gallery" field if the given value is not nil.
func (_u *PropertyUpdate) SetNillableGallery(v *string) *PropertyUpdate {
	if v != nil {
		_u.SetGallery(*v)
	}
	return _u
}

// ClearGallery clears the value of the "gallery" field.
func (_u *PropertyUpdate) ClearGallery() *PropertyUpdate {
	_u.mutation.ClearGallery()
	return _u
}

// SetBeds sets the "beds" field.
func (_u *PropertyUpdate) SetBeds(v int) *PropertyUpdate {
	_u.mutation.ResetBeds()
	_u.mutation.SetBeds(v)
	return _u
}

// SetNillableBeds sets the "beds" field if the given value is not nil.
func (_u *PropertyUpdate) SetNillableBeds(v *int) *PropertyUpdate {
	if v != nil {
		_u.SetBeds(*v)
	}
	return _u
}

// AddBeds adds value to the "beds" field.
func (_u *PropertyUpdate) AddBeds(v int) *PropertyUpdate {
	_u.mutation.AddBeds(v)
	return _u
}

// ClearBeds clears the value of the "beds" field.
func (_u *PropertyUpdate) ClearBeds() *PropertyUpdate {
	_u.mutation.ClearBeds()
	return _u
}

// SetBaths sets the "baths" field.
func (_u *PropertyUpdate) SetBaths(v int) *PropertyUpdate {
	_u.mutation.ResetBaths()
	_u.mutation.SetBaths(v)
	return _u
}

// SetNillableBaths sets the "baths" field if the given value is not nil.
func (_u *PropertyUpdate) SetNillableBaths(v *int) *PropertyUpdate {
	if v != nil {
		_u.SetBaths(*v)
	}
	return _u
}

// AddBaths adds value to the "baths" field.
func (_u *PropertyUpdate) AddBaths(v int) *PropertyUpdate {
	_u.mutation.AddBaths(v)
	return _u
}

// ClearBaths clears the value of the "baths" field.
func (_u *PropertyUpdate) ClearBaths() *PropertyUpdate {
	_u.mutation.ClearBaths()
	return _u
}

// SetAreaSqm sets the "area_sqm" field.
func (_u *PropertyUpdate) SetAreaSqm(v float64) *PropertyUpdate {
	_u.mutation.ResetAreaSqm()
	_u.mutation.SetAreaSqm(v)
	return _u
}

// SetNillableAreaSqm sets the "area_sqm" field if the given value is not nil.
func (_u *PropertyUpdate) SetNillableAreaSqm(v *float64) *PropertyUpdate {
	if v != nil {
		_u.SetAreaSqm(*v)
	}
	return _u
}

// AddAreaSqm adds value to the "area_sqm" field.
func (_u *PropertyUpdate) AddAreaSqm(v float64) *PropertyUpdate {
	_u.mutation.AddAreaSqm(v)
	return _u
}

// ClearAreaSqm clears the value of the "area_sqm" field.
func (_u *PropertyUpdate) ClearAreaSqm() *PropertyUpdate {
	_u.mutation.ClearAreaSqm()
	return _u
}

// SetDescription sets the "description" field.
func (_u *PropertyUpdate) SetDescription(v string) *PropertyUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PropertyUpdate) SetNillableDescription(v *string) *PropertyUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *PropertyUpdate) ClearDescription() *PropertyUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetHeroTitle sets the "hero_title" field.
func (_u *PropertyUpdate) SetHeroTitle(v string) *PropertyUpdate {
	_u.mutation.SetHeroTitle(v)
	return _u
}

// SetNillableHeroTitle sets the "hero_title" field if the given value is not nil.
func (_u *PropertyUpdate) SetNillableHeroTitle(v *string) *PropertyUpdate {
	if v != nil {
		_u.SetHeroTitle(*v)
	}
	return _u
}

// ClearHeroTitle clears the value of the "hero_title" field.
func (_u *PropertyUpdate) ClearHeroTitle() *PropertyUpdate {
	_u.mutation.ClearHeroTitle()
	return _u
}

// SetHeroSubtitle sets the "hero_subtitle" field.
func (_u *PropertyUpdate) SetHeroSubtitle(v string) *PropertyUpdate {
	_u.mutation.SetHeroSubtitle(v)
	return _u
}

// SetNillableHeroSubtitle sets the "hero_subtitle" field if the given value is not nil.
func (_u *PropertyUpdate) SetNillableHeroSubtitle(v *string) *PropertyUpdate {
	if v != nil {
		_u.SetHeroSubtitle(*v)
	}
	return _u
}

// ClearHeroSubtitle clears the value of the "hero_subtitle" field.
func (_u *PropertyUpdate) ClearHeroSubtitle() *PropertyUpdate {
	_u.mutation.ClearHeroSubtitle()
	return _u
}

// SetCtaText sets the "cta_text" field.
func (_u *PropertyUpdate) SetCtaText(v string) *PropertyUpdate {
	_u.mutation.SetCtaText(v)
	return _u
}

// SetNillableCtaText sets the "cta_text" field if the given value is not nil.
func (_u *PropertyUpdate) SetNillableCtaText(v *string) *PropertyUpdate {
	if v != nil {
		_u.SetCtaText(*v)
	}
	return _u
}

// ClearCtaText clears the value of the "cta_text" field.
func (_u *PropertyUpdate) ClearCtaText() *PropertyUpdate {
	_u.mutation.ClearCtaText()
	return _u
}

// SetMetaTitle sets the "meta_title" field.
func (_u *PropertyUpdate) SetMetaTitle(v string) *PropertyUpdate {
	_u.mutation.SetMetaTitle(v)
	return _u
}

// SetNillableMetaTitle sets the "meta_title" field if the given value is not nil.
func (_u *PropertyUpdate) SetNillableMetaTitle(v *string) *PropertyUpdate {
	if v != nil {
		_u.SetMetaTitle(*v)
	}
	return _u
}

// ClearMetaTitle clears the value of the "meta_title" field.
func (_u *PropertyUpdate) ClearMetaTitle() *PropertyUpdate {
	_u.mutation.ClearMetaTitle()
	return _u
}

// SetMetaDescription sets the "meta_description" field.
func (_u *PropertyUpdate) SetMetaDescription(v string) *PropertyUpdate {
	_u.mutation.SetMetaDescription(v)
	return _u
}

// SetNillableMetaDescription sets the "meta_description" field if the given value is not nil.
func (_u *PropertyUpdate) SetNillableMetaDescription(v *string) *PropertyUpdate {
	if v != nil {
		_u.SetMetaDescription(*v)
	}
	return _u
}

// ClearMetaDescription clears the value of the "meta_description" field.
func (_u *PropertyUpdate) ClearMetaDescription() *PropertyUpdate {
	_u.mutation.ClearMetaDescription()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PropertyUpdate) SetUpdatedAt(v time.Time) *PropertyUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddDealIDs adds the "deals" edge to the Deal entity by IDs.
func (_u *PropertyUpdate) AddDealIDs(ids ...int) *PropertyUpdate {
	_u.mutation.AddDealIDs(ids...)
	return _u
}

// AddDeals adds the "deals" edges to the Deal entity.
func (_u *PropertyUpdate) AddDeals(v ...*Deal) *PropertyUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDealIDs(ids...)
}

// AddActivityIDs adds the "activities" edge to the Activity entity by IDs.
func (_u *PropertyUpdate) AddActivityIDs(ids ...int) *PropertyUpdate {
	_u.mutation.AddActivityIDs(ids...)
	return _u
}

// AddActivities adds the "activities" edges to the Activity entity.
func (_u *PropertyUpdate) AddActivities(v ...*Activity) *PropertyUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddActivityIDs(ids...)
}

// AddSubmissionIDs adds the "submissions" edge to the FormSubmission entity by IDs.
func (_u *PropertyUpdate) AddSubmissionIDs(ids ...int) *PropertyUpdate {
	_u.mutation.AddSubmissionIDs(ids...)
	return _u
}

// AddSubmissions adds the "submissions" edges to the FormSubmission entity.
func (_u *PropertyUpdate) AddSubmissions(v ...*FormSubmission) *PropertyUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubmissionIDs(ids...)
}

// Mutation returns the PropertyMutation object of the builder.
func (_u *PropertyUpdate) Mutation() *PropertyMutation {
	return _u.mutation
}

// ClearDeals clears all "deals" edges to the Deal entity.
func (_u *PropertyUpdate) ClearDeals() *PropertyUpdate {
	_u.mutation.ClearDeals()
	return _u
}

// RemoveDealIDs removes the "deals" edge to Deal entities by IDs.
func (_u *PropertyUpdate) RemoveDealIDs(ids ...int) *PropertyUpdate {
	_u.mutation.RemoveDealIDs(ids...)
	return _u
}

// RemoveDeals removes "deals" edges to Deal entities.
func (_u *PropertyUpdate) RemoveDeals(v ...*Deal) *PropertyUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDealIDs(ids...)
}

// ClearActivities clears all "activities" edges to the Activity entity.
func (_u *PropertyUpdate) ClearActivities() *PropertyUpdate {
	_u.mutation.ClearActivities()
	return _u
}

// RemoveActivityIDs removes the "activities" edge to Activity entities by IDs.
func (_u *PropertyUpdate) RemoveActivityIDs(ids ...int) *PropertyUpdate {
	_u.mutation.RemoveActivityIDs(ids...)
	return _u
}

// RemoveActivities removes "activities" edges to Activity entities.
func (_u *PropertyUpdate) RemoveActivities(v ...*Activity) *PropertyUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveActivityIDs(ids...)
}

// ClearSubmissions clears all "submissions" edges to the FormSubmission entity.
func (_u *PropertyUpdate) ClearSubmissions() *PropertyUpdate {
	_u.mutation.ClearSubmissions()
	return _u
}

// RemoveSubmissionIDs removes the "submissions" edge to FormSubmission entities by IDs.
func (_u *PropertyUpdate) RemoveSubmissionIDs(ids ...int) *PropertyUpdate {
	_u.mutation.RemoveSubmissionIDs(ids...)
	return _u
}

// RemoveSubmissions removes "submissions" edges to FormSubmission entities.
func (_u *PropertyUpdate) RemoveSubmissions(v ...*FormSubmission) *PropertyUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubmissionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PropertyUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PropertyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PropertyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PropertyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PropertyUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := property.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PropertyUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := property.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Property.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := property.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Property.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Address(); ok {
		if err := property.AddressValidator(v); err != nil {
			return &ValidationError{Name: "address", err: fmt.Errorf(`ent: validator failed for field "Property.address": %w`, err)}
		}
	}
	if v, ok := _u.mutation.City(); ok {
		if err := property.CityValidator(v); err != nil {
			return &ValidationError{Name: "city", err: fmt.Errorf(`ent: validator failed for field "Property.city": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Country(); ok {
		if err := property.CountryValidator(v); err != nil {
			return &ValidationError{Name: "country", err: fmt.Errorf(`ent: validator failed for field "Property.country": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := property.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Property.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PropertyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(property.Table, property.Columns, sqlgraph.NewFieldSpec(property.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(property.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(property.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(property.FieldAddress, field.TypeString, value)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(property.FieldCity, field.TypeString, value)
	}
	if value, ok := _u.mutation.Country(); ok {
		_spec.SetField(property.FieldCountry, field.TypeString, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(property.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(property.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(property.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Published(); ok {
		_spec.SetField(property.FieldPublished, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MainImageURL(); ok {
		_spec.SetField(property.FieldMainImageURL, field.TypeString, value)
	}
	if _u.mutation.MainImageURLCleared() {
		_spec.ClearField(property.FieldMainImageURL, field.TypeString)
	}
	if value, ok := _u.mutation.Gallery(); ok {
		_spec.SetField(property.FieldGallery, field.TypeString, value)
	}
	if _u.mutation.GalleryCleared() {
		_spec.ClearField(property.FieldGallery, field.TypeString)
	}
	if value, ok := _u.mutation.Beds(); ok {
		_spec.SetField(property.FieldBeds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBeds(); ok {
		_spec.AddField(property.FieldBeds, field.TypeInt, value)
	}
	if _u.mutation.BedsCleared() {
		_spec.ClearField(property.FieldBeds, field.TypeInt)
	}
	if value, ok := _u.mutation.Baths(); ok {
		_spec.SetField(property.FieldBaths, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBaths(); ok {
		_spec.AddField(property.FieldBaths, field.TypeInt, value)
	}
	if _u.mutation.BathsCleared() {
		_spec.ClearField(property.FieldBaths, field.TypeInt)
	}
	if value, ok := _u.mutation.AreaSqm(); ok {
		_spec.SetField(property.FieldAreaSqm, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAreaSqm(); ok {
		_spec.AddField(property.FieldAreaSqm, field.TypeFloat64, value)
	}
	if _u.mutation.AreaSqmCleared() {
		_spec.ClearField(property.FieldAreaSqm, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(property.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(property.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.HeroTitle(); ok {
		_spec.SetField(property.FieldHeroTitle, field.TypeString, value)
	}
	if _u.mutation.HeroTitleCleared() {
		_spec.ClearField(property.FieldHeroTitle, field.TypeString)
	}
	if value, ok := _u.mutation.HeroSubtitle(); ok {
		_spec.SetField(property.FieldHeroSubtitle, field.TypeString, value)
	}
	if _u.mutation.HeroSubtitleCleared() {
		_spec.ClearField(property.FieldHeroSubtitle, field.TypeString)
	}
	if value, ok := _u.mutation.CtaText(); ok {
		_spec.SetField(property.FieldCtaText, field.TypeString, value)
	}
	if _u.mutation.CtaTextCleared() {
		_spec.ClearField(property.FieldCtaText, field.TypeString)
	}
	if value, ok := _u.mutation.MetaTitle(); ok {
		_spec.SetField(property.FieldMetaTitle, field.TypeString, value)
	}
	if _u.mutation.MetaTitleCleared() {
		_spec.ClearField(property.FieldMetaTitle, field.TypeString)
	}
	if value, ok := _u.mutation.MetaDescription(); ok {
		_spec.SetField(property.FieldMetaDescription, field.TypeString, value)
	}
	if _u.mutation.MetaDescriptionCleared() {
		_spec.ClearField(property.FieldMetaDescription, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(property.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DealsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   property.DealsTable,
			Columns: []string{property.DealsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deal.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDealsIDs(); len(nodes) > 0 && !_u.mutation.DealsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   property.DealsTable,
			Columns: []string{property.DealsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deal.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DealsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   property.DealsTable,
			Columns: []string{property.DealsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deal.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ActivitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   property.ActivitiesTable,
			Columns: []string{property.ActivitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(activity.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedActivitiesIDs(); len(nodes) > 0 && !_u.mutation.ActivitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   property.ActivitiesTable,
			Columns: []string{property.ActivitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(activity.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ActivitiesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   property.ActivitiesTable,
			Columns: []string{property.ActivitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(activity.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SubmissionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   property.SubmissionsTable,
			Columns: []string{property.SubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(formsubmission.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubmissionsIDs(); len(nodes) > 0 && !_u.mutation.SubmissionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   property.SubmissionsTable,
			Columns: []string{property.SubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(formsubmission.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubmissionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   property.SubmissionsTable,
			Columns: []string{property.SubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(formsubmission.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{property.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PropertyUpdateOne is the builder for updating a single Property entity.
type PropertyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PropertyMutation
}

// SetTitle sets the "title" field.
func (_u *PropertyUpdateOne) SetTitle(v string) *PropertyUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PropertyUpdateOne) SetNillableTitle(v *string) *PropertyUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *PropertyUpdateOne) SetSlug(v string) *PropertyUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *PropertyUpdateOne) SetNillableSlug(v *string) *PropertyUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetAddress sets the "address" field.
func (_u *PropertyUpdateOne) SetAddress(v string) *PropertyUpdateOne {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *PropertyUpdateOne) SetNillableAddress(v *string) *PropertyUpdateOne {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// SetCity sets the "city" field.
func (_u *PropertyUpdateOne) SetCity(v string) *PropertyUpdateOne {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *PropertyUpdateOne) SetNillableCity(v *string) *PropertyUpdateOne {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// SetCountry sets the "country" field.
func (_u *PropertyUpdateOne) SetCountry(v string) *PropertyUpdateOne {
	_u.mutation.SetCountry(v)
	return _u
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_u *PropertyUpdateOne) SetNillableCountry(v *string) *PropertyUpdateOne {
	if v != nil {
		_u.SetCountry(*v)
	}
	return _u
}

// SetPrice sets the "price" field.
func (_u *PropertyUpdateOne) SetPrice(v float64) *PropertyUpdateOne {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *PropertyUpdateOne) SetNillablePrice(v *float64) *PropertyUpdateOne {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *PropertyUpdateOne) AddPrice(v float64) *PropertyUpdateOne {
	_u.mutation.AddPrice(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *PropertyUpdateOne) SetStatus(v property.Status) *PropertyUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PropertyUpdateOne) SetNillableStatus(v *property.Status) *PropertyUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPublished sets the "published" field.
func (_u *PropertyUpdateOne) SetPublished(v bool) *PropertyUpdateOne {
	_u.mutation.SetPublished(v)
	return _u
}

// SetNillablePublished sets the "published" field if the given value is not nil.
func (_u *PropertyUpdateOne) SetNillablePublished(v *bool) *PropertyUpdateOne {
	if v != nil {
		_u.SetPublished(*v)
	}
	return _u
}

// SetMainImageURL sets the "main_image_url" field.
func (_u *PropertyUpdateOne) SetMainImageURL(v string) *PropertyUpdateOne {
	_u.mutation.SetMainImageURL(v)
	return _u
}

// SetNillableMainImageURL sets the "main_image_url" field if the given value is not nil.
func (_u *PropertyUpdateOne) SetNillableMainImageURL(v *string) *PropertyUpdateOne {
	if v != nil {
		_u.SetMainImageURL(*v)
	}
	return _u
}

// ClearMainImageURL clears the value of the "main_image_url" field.
func (_u *PropertyUpdateOne) ClearMainImageURL() *PropertyUpdateOne {
	_u.mutation.ClearMainImageURL()
	return _u
}

// SetGallery sets the "gallery" field.
func (_u *PropertyUpdateOne) SetGallery(v string) *PropertyUpdateOne {
	_u.mutation.SetGallery(v)
	return _u
}

// SetNillableGallery sets the "gallery" field if the given value is not nil.
func (_u *PropertyUpdateOne) SetNillableGallery(v *string) *PropertyUpdateOne {
	if v != nil {
		_u.SetGallery(*v)
	}
	return _u
}

// ClearGallery clears the value of the "gallery" field.
func (_u *PropertyUpdateOne) ClearGallery() *PropertyUpdateOne {
	_u.mutation.ClearGallery()
	return _u
}

// SetBeds sets the "beds" field.
func (_u *PropertyUpdateOne) SetBeds(v int) *PropertyUpdateOne {
	_u.mutation.ResetBeds()
	_u.mutation.SetBeds(v)
	return _u
}

// SetNillableBeds sets the "beds" field if the given value is not nil.
func (_u *PropertyUpdateOne) SetNillableBeds(v *int) *PropertyUpdateOne {
	if v != nil {
		_u.SetBeds(*v)
	}
	return _u
}

// AddBeds adds value to the "beds" field.
func (_u *PropertyUpdateOne) AddBeds(v int) *PropertyUpdateOne {
	_u.mutation.AddBeds(v)
	return _u
}

// ClearBeds clears the value of the "beds" field.
func (_u *PropertyUpdateOne) ClearBeds() *PropertyUpdateOne {
	_u.mutation.ClearBeds()
	return _u
}

// SetBaths sets the "baths" field.
func (_u *PropertyUpdateOne) SetBaths(v int) *PropertyUpdateOne {
	_u.mutation.ResetBaths()
	_u.mutation.SetBaths(v)
	return _u
}

// SetNillableBaths sets the "baths" field if the given value is not nil.
func (_u *PropertyUpdateOne) SetNillableBaths(v *int) *PropertyUpdateOne {
	if v != nil {
		_u.SetBaths(*v)
	}
	return _u
}

// AddBaths adds value to the "baths" field.
func (_u *PropertyUpdateOne) AddBaths(v int) *PropertyUpdateOne {
	_u.mutation.AddBaths(v)
	return _u
}

// ClearBaths clears the value of the "baths" field.
func (_u *PropertyUpdateOne) ClearBaths() *PropertyUpdateOne {
	_u.mutation.ClearBaths()
	return _u
}

// SetAreaSqm sets the "area_sqm" field.
func (_u *PropertyUpdateOne) SetAreaSqm(v float64) *PropertyUpdateOne {
	_u.mutation.ResetAreaSqm()
	_u.mutation.SetAreaSqm(v)
	return _u
}

// SetNillableAreaSqm sets the "area_sqm" field if the given value is not nil.
func (_u *PropertyUpdateOne) SetNillableAreaSqm(v *float64) *PropertyUpdateOne {
	if v != nil {
		_u.SetAreaSqm(*v)
	}
	return _u
}

// AddAreaSqm adds value to the "area_sqm" field.
func (_u *PropertyUpdateOne) AddAreaSqm(v float64) *PropertyUpdateOne {
	_u.mutation.AddAreaSqm(v)
	return _u
}

// ClearAreaSqm clears the value of the "area_sqm" field.
func (_u *PropertyUpdateOne) ClearAreaSqm() *PropertyUpdateOne {
	_u.mutation.ClearAreaSqm()
	return _u
}

// SetDescription sets the "description" field.
func (_u *PropertyUpdateOne) SetDescription(v string) *PropertyUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PropertyUpdateOne) SetNillableDescription(v *string) *PropertyUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *PropertyUpdateOne) ClearDescription() *PropertyUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetHeroTitle sets the "hero_title" field.
func (_u *PropertyUpdateOne) SetHeroTitle(v string) *PropertyUpdateOne {
	_u.mutation.SetHeroTitle(v)
	return _u
}

// SetNillableHeroTitle sets the "hero_title" field if the given value is not nil.
func (_u *PropertyUpdateOne) SetNillableHeroTitle(v *string) *PropertyUpdateOne {
	if v != nil {
		_u.SetHeroTitle(*v)
	}
	return _u
}

// ClearHeroTitle clears the value of the "hero_title" field.
func (_u *PropertyUpdateOne) ClearHeroTitle() *PropertyUpdateOne {
	_u.mutation.ClearHeroTitle()
	return _u
}

// SetHeroSubtitle sets the "hero_subtitle" field.
func (_u *PropertyUpdateOne) SetHeroSubtitle(v string) *PropertyUpdateOne {
	_u.mutation.SetHeroSubtitle(v)
	return _u
}

// SetNillableHeroSubtitle sets the "hero_subtitle" field if the given value is not nil.
func (_u *PropertyUpdateOne) SetNillableHeroSubtitle(v *string) *PropertyUpdateOne {
	if v != nil {
		_u.SetHeroSubtitle(*v)
	}
	return _u
}

// ClearHeroSubtitle clears the value of the "hero_subtitle" field.
func (_u *PropertyUpdateOne) ClearHeroSubtitle() *PropertyUpdateOne {
	_u.mutation.ClearHeroSubtitle()
	return _u
}

// SetCtaText sets the "cta_text" field.
func (_u *PropertyUpdateOne) SetCtaText(v string) *PropertyUpdateOne {
	_u.mutation.SetCtaText(v)
	return _u
}

// SetNillableCtaText sets the "cta_text" field if the given value is not nil.
func (_u *PropertyUpdateOne) SetNillableCtaText(v *string) *PropertyUpdateOne {
	if v != nil {
		_u.SetCtaText(*v)
	}
	return _u
}

// ClearCtaText clears the value of the "cta_text" field.
func (_u *PropertyUpdateOne) ClearCtaText() *PropertyUpdateOne {
	_u.mutation.ClearCtaText()
	return _u
}

// SetMetaTitle sets the "meta_title" field.
func (_u *PropertyUpdateOne) SetMetaTitle(v string) *PropertyUpdateOne {
	_u.mutation.SetMetaTitle(v)
	return _u
}

// SetNillableMetaTitle sets the "meta_title" field if the given value is not nil.
func (_u *PropertyUpdateOne) SetNillableMetaTitle(v *string) *PropertyUpdateOne {
	if v != nil {
		_u.SetMetaTitle(*v)
	}
	return _u
}

// ClearMetaTitle clears the value of the "meta_title" field.
func (_u *PropertyUpdateOne) ClearMetaTitle() *PropertyUpdateOne {
	_u.mutation.ClearMetaTitle()
	return _u
}

// SetMetaDescription sets the "meta_description" field.
func (_u *PropertyUpdateOne) SetMetaDescription(v string) *PropertyUpdateOne {
	_u.mutation.SetMetaDescription(v)
	return _u
}

// SetNillableMetaDescription sets the "meta_description" field if the given value is not nil.
func (_u *PropertyUpdateOne) SetNillableMetaDescription(v *string) *PropertyUpdateOne {
	if v != nil {
		_u.SetMetaDescription(*v)
	}
	return _u
}

// ClearMetaDescription clears the value of the "meta_description" field.
func (_u *PropertyUpdateOne) ClearMetaDescription() *PropertyUpdateOne {
	_u.mutation.ClearMetaDescription()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PropertyUpdateOne) SetUpdatedAt(v time.Time) *PropertyUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddDealIDs adds the "deals" edge to the Deal entity by IDs.
func (_u *PropertyUpdateOne) AddDealIDs(ids ...int) *PropertyUpdateOne {
	_u.mutation.AddDealIDs(ids...)
	return _u
}

// AddDeals adds the "deals" edges to the Deal entity.
func (_u *PropertyUpdateOne) AddDeals(v ...*Deal) *PropertyUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDealIDs(ids...)
}

// AddActivityIDs adds the "activities" edge to the Activity entity by IDs.
func (_u *PropertyUpdateOne) AddActivityIDs(ids ...int) *PropertyUpdateOne {
	_u.mutation.AddActivityIDs(ids...)
	return _u
}

// AddActivities adds the "activities" edges to the Activity entity.
func (_u *PropertyUpdateOne) AddActivities(v ...*Activity) *PropertyUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddActivityIDs(ids...)
}

// AddSubmissionIDs adds the "submissions" edge to the FormSubmission entity by IDs.
func (_u *PropertyUpdateOne) AddSubmissionIDs(ids ...int) *PropertyUpdateOne {
	_u.mutation.AddSubmissionIDs(ids...)
	return _u
}

// AddSubmissions adds the "submissions" edges to the FormSubmission entity.
func (_u *PropertyUpdateOne) AddSubmissions(v ...*FormSubmission) *PropertyUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubmissionIDs(ids...)
}

// Mutation returns the PropertyMutation object of the builder.
func (_u *PropertyUpdateOne) Mutation() *PropertyMutation {
	return _u.mutation
}

// ClearDeals clears all "deals" edges to the Deal entity.
func (_u *PropertyUpdateOne) ClearDeals() *PropertyUpdateOne {
	_u.mutation.ClearDeals()
	return _u
}

// RemoveDealIDs removes the "deals" edge to Deal entities by IDs.
func (_u *PropertyUpdateOne) RemoveDealIDs(ids ...int) *PropertyUpdateOne {
	_u.mutation.RemoveDealIDs(ids...)
	return _u
}

// RemoveDeals removes "deals" edges to Deal entities.
func (_u *PropertyUpdateOne) RemoveDeals(v ...*Deal) *PropertyUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDealIDs(ids...)
}

// ClearActivities clears all "activities" edges to the Activity entity.
func (_u *PropertyUpdateOne) ClearActivities() *PropertyUpdateOne {
	_u.mutation.ClearActivities()
	return _u
}

// RemoveActivityIDs removes the "activities" edge to Activity entities by IDs.
func (_u *PropertyUpdateOne) RemoveActivityIDs(ids ...int) *PropertyUpdateOne {
	_u.mutation.RemoveActivityIDs(ids...)
	return _u
}

// RemoveActivities removes "activities" edges to Activity entities.
func (_u *PropertyUpdateOne) RemoveActivities(v ...*Activity) *PropertyUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveActivityIDs(ids...)
}

// ClearSubmissions clears all "submissions" edges to the FormSubmission entity.
func (_u *PropertyUpdateOne) ClearSubmissions() *PropertyUpdateOne {
	_u.mutation.ClearSubmissions()
	return _u
}

// RemoveSubmissionIDs removes the "submissions" edge to FormSubmission entities by IDs.
func (_u *PropertyUpdateOne) RemoveSubmissionIDs(ids ...int) *PropertyUpdateOne {
	_u.mutation.RemoveSubmissionIDs(ids...)
	return _u
}

// RemoveSubmissions removes "submissions" edges to FormSubmission entities.
func (_u *PropertyUpdateOne) RemoveSubmissions(v ...*FormSubmission) *PropertyUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubmissionIDs(ids...)
}

// Where appends a list predicates to the PropertyUpdate builder.
func (_u *PropertyUpdateOne) Where(ps ...predicate.Property) *PropertyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PropertyUpdateOne) Select(field string, fields ...string) *PropertyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Property entity.
func (_u *PropertyUpdateOne) Save(ctx context.Context) (*Property, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PropertyUpdateOne) SaveX(ctx context.Context) *Property {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PropertyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PropertyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PropertyUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := property.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PropertyUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := property.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Property.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := property.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Property.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Address(); ok {
		if err := property.AddressValidator(v); err != nil {
			return &ValidationError{Name: "address", err: fmt.Errorf(`ent: validator failed for field "Property.address": %w`, err)}
		}
	}
	if v, ok := _u.mutation.City(); ok {
		if err := property.CityValidator(v); err != nil {
			return &ValidationError{Name: "city", err: fmt.Errorf(`ent: validator failed for field "Property.city": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Country(); ok {
		if err := property.CountryValidator(v); err != nil {
			return &ValidationError{Name: "country", err: fmt.Errorf(`ent: validator failed for field "Property.country": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := property.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Property.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PropertyUpdateOne) sqlSave(ctx context.Context) (_node *Property, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(property.Table, property.Columns, sqlgraph.NewFieldSpec(property.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Property.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, property.FieldID)
		for _, f := range fields {
			if !property.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != property.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(property.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(property.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(property.FieldAddress, field.TypeString, value)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(property.FieldCity, field.TypeString, value)
	}
	if value, ok := _u.mutation.Country(); ok {
		_spec.SetField(property.FieldCountry, field.TypeString, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(property.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(property.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(property.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Published(); ok {
		_spec.SetField(property.FieldPublished, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MainImageURL(); ok {
		_spec.SetField(property.FieldMainImageURL, field.TypeString, value)
	}
	if _u.mutation.MainImageURLCleared() {
		_spec.ClearField(property.FieldMainImageURL, field.TypeString)
	}
	if value, ok := _u.mutation.Gallery(); ok {
		_spec.SetField(property.FieldGallery, field.TypeString, value)
	}
	if _u.mutation.GalleryCleared() {
		_spec.ClearField(property.FieldGallery, field.TypeString)
	}
	if value, ok := _u.mutation.Beds(); ok {
		_spec.SetField(property.FieldBeds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBeds(); ok {
		_spec.AddField(property.FieldBeds, field.TypeInt, value)
	}
	if _u.mutation.BedsCleared() {
		_spec.ClearField(property.FieldBeds, field.TypeInt)
	}
	if value, ok := _u.mutation.Baths(); ok {
		_spec.SetField(property.FieldBaths, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBaths(); ok {
		_spec.AddField(property.FieldBaths, field.TypeInt, value)
	}
	if _u.mutation.BathsCleared() {
		_spec.ClearField(property.FieldBaths, field.TypeInt)
	}
	if value, ok := _u.mutation.AreaSqm(); ok {
		_spec.SetField(property.FieldAreaSqm, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAreaSqm(); ok {
		_spec.AddField(property.FieldAreaSqm, field.TypeFloat64, value)
	}
	if _u.mutation.AreaSqmCleared() {
		_spec.ClearField(property.FieldAreaSqm, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(property.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(property.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.HeroTitle(); ok {
		_spec.SetField(property.FieldHeroTitle, field.TypeString, value)
	}
	if _u.mutation.HeroTitleCleared() {
		_spec.ClearField(property.FieldHeroTitle, field.TypeString)
	}
	if value, ok := _u.mutation.HeroSubtitle(); ok {
		_spec.SetField(property.FieldHeroSubtitle, field.TypeString, value)
	}
	if _u.mutation.HeroSubtitleCleared() {
		_spec.ClearField(property.FieldHeroSubtitle, field.TypeString)
	}
	if value, ok := _u.mutation.CtaText(); ok {
		_spec.SetField(property.FieldCtaText, field.TypeString, value)
	}
	if _u.mutation.CtaTextCleared() {
		_spec.ClearField(property.FieldCtaText, field.TypeString)
	}
	if value, ok := _u.mutation.MetaTitle(); ok {
		_spec.SetField(property.FieldMetaTitle, field.TypeString, value)
	}
	if _u.mutation.MetaTitleCleared() {
		_spec.ClearField(property.FieldMetaTitle, field.TypeString)
	}
	if value, ok := _u.mutation.MetaDescription(); ok {
		_spec.SetField(property.FieldMetaDescription, field.TypeString, value)
	}
	if _u.mutation.MetaDescriptionCleared() {
		_spec.ClearField(property.FieldMetaDescription, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(property.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DealsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   property.DealsTable,
			Columns: []string{property.DealsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deal.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDealsIDs(); len(nodes) > 0 && !_u.mutation.DealsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   property.DealsTable,
			Columns: []string{property.DealsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deal.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DealsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   property.DealsTable,
			Columns: []string{property.DealsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deal.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ActivitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   property.ActivitiesTable,
			Columns: []string{property.ActivitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(activity.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedActivitiesIDs(); len(nodes) > 0 && !_u.mutation.ActivitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   property.ActivitiesTable,
			Columns: []string{property.ActivitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(activity.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ActivitiesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   property.ActivitiesTable,
			Columns: []string{property.ActivitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(activity.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SubmissionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   property.SubmissionsTable,
			Columns: []string{property.SubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(formsubmission.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubmissionsIDs(); len(nodes) > 0 && !_u.mutation.SubmissionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   property.SubmissionsTable,
			Columns: []string{property.SubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(formsubmission.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubmissionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   property.SubmissionsTable,
			Columns: []string{property.SubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(formsubmission.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Property{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{property.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
