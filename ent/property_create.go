// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/estatedesk/backend/ent/activity"
	"github.com/estatedesk/backend/ent/deal"
	"github.com/estatedesk/backend/ent/formsubmission"
	"github.com/estatedesk/backend/ent/property"
)

// PropertyCreate is the builder for creating a Property entity.
type PropertyCreate struct {
	config
	mutation *PropertyMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (_c *PropertyCreate) SetTitle(v string) *PropertyCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetSlug sets the "slug" field.
func (_c *PropertyCreate) SetSlug(v string) *PropertyCreate {
	_c.mutation.SetSlug(v)
	return _c
}

// SetAddress sets the "address" field.
func (_c *PropertyCreate) SetAddress(v string) *PropertyCreate {
	_c.mutation.SetAddress(v)
	return _c
}

// SetCity sets the "city" field.
func (_c *PropertyCreate) SetCity(v string) *PropertyCreate {
	_c.mutation.SetCity(v)
	return _c
}

// SetCountry sets the "country" field.
func (_c *PropertyCreate) SetCountry(v string) *PropertyCreate {
	_c.mutation.SetCountry(v)
	return _c
}

// SetPrice sets the "price" field.
func (_c *PropertyCreate) SetPrice(v float64) *PropertyCreate {
	_c.mutation.SetPrice(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PropertyCreate) SetStatus(v property.Status) *PropertyCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PropertyCreate) SetNillableStatus(v *property.Status) *PropertyCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPublished sets the "published" field.
func (_c *PropertyCreate) SetPublished(v bool) *PropertyCreate {
	_c.mutation.SetPublished(v)
	return _c
}

// SetNillablePublished sets the "published" field if the given value is not nil.
func (_c *PropertyCreate) SetNillablePublished(v *bool) *PropertyCreate {
	if v != nil {
		_c.SetPublished(*v)
	}
	return _c
}

// SetMainImageURL sets the "main_image_url" field.
func (_c *PropertyCreate) SetMainImageURL(v string) *PropertyCreate {
	_c.mutation.SetMainImageURL(v)
	return _c
}

// SetNillableMainImageURL sets the "main_image_url" field if the given value is not nil.
func (_c *PropertyCreate) SetNillableMainImageURL(v *string) *PropertyCreate {
	if v != nil {
		_c.SetMainImageURL(*v)
	}
	return _c
}

// SetGallery sets the "gallery" field.
func (_c *PropertyCreate) SetGallery(v string) *PropertyCreate {
	_c.mutation.SetGallery(v)
	return _c
}

// SetNillableGallery sets the "gallery" field if the given value is not nil.
func (_c *PropertyCreate) SetNillableGallery(v *string) *PropertyCreate {
	if v != nil {
		_c.SetGallery(*v)
	}
	return _c
}

// SetBeds sets the "beds" field.
func (_c *PropertyCreate) SetBeds(v int) *PropertyCreate {
	_c.mutation.SetBeds(v)
	return _c
}

// SetNillableBeds sets the "beds" field if the given value is not nil.
func (_c *PropertyCreate) SetNillableBeds(v *int) *PropertyCreate {
	if v != nil {
		_c.SetBeds(*v)
	}
	return _c
}

// SetBaths sets the "baths" field.
func (_c *PropertyCreate) SetBaths(v int) *PropertyCreate {
	_c.mutation.SetBaths(v)
	return _c
}

// SetNillableBaths sets the "baths" field if the given value is not nil.
func (_c *PropertyCreate) SetNillableBaths(v *int) *PropertyCreate {
	if v != nil {
		_c.SetBaths(*v)
	}
	return _c
}

// SetAreaSqm sets the "area_sqm" field.
func (_c *PropertyCreate) SetAreaSqm(v float64) *PropertyCreate {
	_c.mutation.SetAreaSqm(v)
	return _c
}

// SetNillableAreaSqm sets the "area_sqm" field if the given value is not nil.
func (_c *PropertyCreate) SetNillableAreaSqm(v *float64) *PropertyCreate {
	if v != nil {
		_c.SetAreaSqm(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *PropertyCreate) SetDescription(v string) *PropertyCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *PropertyCreate) SetNillableDescription(v *string) *PropertyCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetHeroTitle sets the "hero_title" field.
func (_c *PropertyCreate) SetHeroTitle(v string) *PropertyCreate {
	_c.mutation.SetHeroTitle(v)
	return _c
}

// SetNillableHeroTitle sets the "hero_title" field if the given value is not nil.
func (_c *PropertyCreate) SetNillableHeroTitle(v *string) *PropertyCreate {
	if v != nil {
		_c.SetHeroTitle(*v)
	}
	return _c
}

// SetHeroSubtitle sets the "hero_subtitle" field.
func (_c *PropertyCreate) SetHeroSubtitle(v string) *PropertyCreate {
	_c.mutation.SetHeroSubtitle(v)
	return _c
}

// SetNillableHeroSubtitle sets the "hero_subtitle" field if the given value is not nil.
func (_c *PropertyCreate) SetNillableHeroSubtitle(v *string) *PropertyCreate {
	if v != nil {
		_c.SetHeroSubtitle(*v)
	}
	return _c
}

// SetCtaText sets the "cta_text" field.
func (_c *PropertyCreate) SetCtaText(v string) *PropertyCreate {
	_c.mutation.SetCtaText(v)
	return _c
}

// SetNillableCtaText sets the "cta_text" field if the given value is not nil.
func (_c *PropertyCreate) SetNillableCtaText(v *string) *PropertyCreate {
	if v != nil {
		_c.SetCtaText(*v)
	}
	return _c
}

// SetMetaTitle sets the "meta_title" field.
func (_c *PropertyCreate) SetMetaTitle(v string) *PropertyCreate {
	_c.mutation.SetMetaTitle(v)
	return _c
}

// SetNillableMetaTitle sets the "meta_title" field if the given value is not nil.
func (_c *PropertyCreate) SetNillableMetaTitle(v *string) *PropertyCreate {
	if v != nil {
		_c.SetMetaTitle(*v)
	}
	return _c
}

// SetMetaDescription sets the "meta_description" field.
func (_c *PropertyCreate) SetMetaDescription(v string) *PropertyCreate {
	_c.mutation.SetMetaDescription(v)
	return _c
}

// SetNillableMetaDescription sets the "meta_description" field if the given value is not nil.
func (_c *PropertyCreate) SetNillableMetaDescription(v *string) *PropertyCreate {
	if v != nil {
		_c.SetMetaDescription(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PropertyCreate) SetCreatedAt(v time.Time) *PropertyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PropertyCreate) SetNillableCreatedAt(v *time.Time) *PropertyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PropertyCreate) SetUpdatedAt(v time.Time) *PropertyCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PropertyCreate) SetNillableUpdatedAt(v *time.Time) *PropertyCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// AddDealIDs adds the "deals" edge to the Deal entity by IDs.
func (_c *PropertyCreate) AddDealIDs(ids ...int) *PropertyCreate {
	_c.mutation.AddDealIDs(ids...)
	return _c
}

// AddDeals adds the "deals" edges to the Deal entity.
func (_c *PropertyCreate) AddDeals(v ...*Deal) *PropertyCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDealIDs(ids...)
}

// AddActivityIDs adds the "activities" edge to the Activity entity by IDs.
func (_c *PropertyCreate) AddActivityIDs(ids ...int) *PropertyCreate {
	_c.mutation.AddActivityIDs(ids...)
	return _c
}

// AddActivities adds the "activities" edges to the Activity entity.
func (_c *PropertyCreate) AddActivities(v ...*Activity) *PropertyCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddActivityIDs(ids...)
}

// AddSubmissionIDs adds the "submissions" edge to the FormSubmission entity by IDs.
func (_c *PropertyCreate) AddSubmissionIDs(ids ...int) *PropertyCreate {
	_c.mutation.AddSubmissionIDs(ids...)
	return _c
}

// AddSubmissions adds the "submissions" edges to the FormSubmission entity.
func (_c *PropertyCreate) AddSubmissions(v ...*FormSubmission) *PropertyCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSubmissionIDs(ids...)
}

// Mutation returns the PropertyMutation object of the builder.
func (_c *PropertyCreate) Mutation() *PropertyMutation {
	return _c.mutation
}

// Save creates the Property in the database.
func (_c *PropertyCreate) Save(ctx context.Context) (*Property, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PropertyCreate) SaveX(ctx context.Context) *Property {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PropertyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PropertyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PropertyCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := property.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Published(); !ok {
		v := property.DefaultPublished
		_c.mutation.SetPublished(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := property.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := property.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PropertyCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Property.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := property.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Property.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`ent: missing required field "Property.slug"`)}
	}
	if v, ok := _c.mutation.Slug(); ok {
		if err := property.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Property.slug": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Address(); !ok {
		return &ValidationError{Name: "address", err: errors.New(`ent: missing required field "Property.address"`)}
	}
	if v, ok := _c.mutation.Address(); ok {
		if err := property.AddressValidator(v); err != nil {
			return &ValidationError{Name: "address", err: fmt.Errorf(`ent: validator failed for field "Property.address": %w`, err)}
		}
	}
	if _, ok := _c.mutation.City(); !ok {
		return &ValidationError{Name: "city", err: errors.New(`ent: missing required field "Property.city"`)}
	}
	if v, ok := _c.mutation.City(); ok {
		if err := property.CityValidator(v); err != nil {
			return &ValidationError{Name: "city", err: fmt.Errorf(`ent: validator failed for field "Property.city": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Country(); !ok {
		return &ValidationError{Name: "country", err: errors.New(`ent: missing required field "Property.country"`)}
	}
	if v, ok := _c.mutation.Country(); ok {
		if err := property.CountryValidator(v); err != nil {
			return &ValidationError{Name: "country", err: fmt.Errorf(`ent: validator failed for field "Property.country": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Price(); !ok {
		return &ValidationError{Name: "price", err: errors.New(`ent: missing required field "Property.price"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Property.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := property.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Property.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Published(); !ok {
		return &ValidationError{Name: "published", err: errors.New(`ent: missing required field "Property.published"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Property.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Property.updated_at"`)}
	}
	return nil
}

func (_c *PropertyCreate) sqlSave(ctx context.Context) (*Property, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PropertyCreate) createSpec() (*Property, *sqlgraph.CreateSpec) {
	var (
		_node = &Property{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(property.Table, sqlgraph.NewFieldSpec(property.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(property.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Slug(); ok {
		_spec.SetField(property.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := _c.mutation.Address(); ok {
		_spec.SetField(property.FieldAddress, field.TypeString, value)
		_node.Address = value
	}
	if value, ok := _c.mutation.City(); ok {
		_spec.SetField(property.FieldCity, field.TypeString, value)
		_node.City = value
	}
	if value, ok := _c.mutation.Country(); ok {
		_spec.SetField(property.FieldCountry, field.TypeString, value)
		_node.Country = value
	}
	if value, ok := _c.mutation.Price(); ok {
		_spec.SetField(property.FieldPrice, field.TypeFloat64, value)
		_node.Price = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(property.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Published(); ok {
		_spec.SetField(property.FieldPublished, field.TypeBool, value)
		_node.Published = value
	}
	if value, ok := _c.mutation.MainImageURL(); ok {
		_spec.SetField(property.FieldMainImageURL, field.TypeString, value)
		_node.MainImageURL = value
	}
	if value, ok := _c.mutation.Gallery(); ok {
		_spec.SetField(property.FieldGallery, field.TypeString, value)
		_node.Gallery = value
	}
	if value, ok := _c.mutation.Beds(); ok {
		_spec.SetField(property.FieldBeds, field.TypeInt, value)
		_node.Beds = &value
	}
	if value, ok := _c.mutation.Baths(); ok {
		_spec.SetField(property.FieldBaths, field.TypeInt, value)
		_node.Baths = &value
	}
	if value, ok := _c.mutation.AreaSqm(); ok {
		_spec.SetField(property.FieldAreaSqm, field.TypeFloat64, value)
		_node.AreaSqm = &value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(property.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.HeroTitle(); ok {
		_spec.SetField(property.FieldHeroTitle, field.TypeString, value)
		_node.HeroTitle = value
	}
	if value, ok := _c.mutation.HeroSubtitle(); ok {
		_spec.SetField(property.FieldHeroSubtitle, field.TypeString, value)
		_node.HeroSubtitle = value
	}
	if value, ok := _c.mutation.CtaText(); ok {
		_spec.SetField(property.FieldCtaText, field.TypeString, value)
		_node.CtaText = value
	}
	if value, ok := _c.mutation.MetaTitle(); ok {
		_spec.SetField(property.FieldMetaTitle, field.TypeString, value)
		_node.MetaTitle = value
	}
	if value, ok := _c.mutation.MetaDescription(); ok {
		_spec.SetField(property.FieldMetaDescription, field.TypeString, value)
		_node.MetaDescription = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(property.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(property.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.DealsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ActivitiesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SubmissionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PropertyCreateBulk is the builder for creating many Property entities in bulk.
type PropertyCreateBulk struct {
	config
	err      error
	builders []*PropertyCreate
}

// Save creates the Property entities in the database.
func (_c *PropertyCreateBulk) Save(ctx context.Context) ([]*Property, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Property, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PropertyMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PropertyCreateBulk) SaveX(ctx context.Context) []*Property {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PropertyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PropertyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
