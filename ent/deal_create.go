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
	"github.com/estatedesk/backend/ent/lead"
	"github.com/estatedesk/backend/ent/property"
)

// DealCreate is the builder for creating a Deal entity.
type DealCreate struct {
	config
	mutation *DealMutation
	hooks    []Hook
}

// SetLeadID sets the "lead_id" field.
func (_c *DealCreate) SetLeadID(v int) *DealCreate {
	_c.mutation.SetLeadID(v)
	return _c
}

// SetPropertyID sets the "property_id" field.
func (_c *DealCreate) SetPropertyID(v int) *DealCreate {
	_c.mutation.SetPropertyID(v)
	return _c
}

// SetStage sets the "stage" field.
func (_c *DealCreate) SetStage(v deal.Stage) *DealCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_c *DealCreate) SetNillableStage(v *deal.Stage) *DealCreate {
	if v != nil {
		_c.SetStage(*v)
	}
	return _c
}

// SetOfferPrice sets the "offer_price" field.
func (_c *DealCreate) SetOfferPrice(v float64) *DealCreate {
	_c.mutation.SetOfferPrice(v)
	return _c
}

// SetNillableOfferPrice sets the "offer_price" field if the given value is not nil.
func (_c *DealCreate) SetNillableOfferPrice(v *float64) *DealCreate {
	if v != nil {
		_c.SetOfferPrice(*v)
	}
	return _c
}

// SetClosedPrice sets the "closed_price" field.
func (_c *DealCreate) SetClosedPrice(v float64) *DealCreate {
	_c.mutation.SetClosedPrice(v)
	return _c
}

// SetNillableClosedPrice sets the "closed_price" field if the given value is not nil.
func (_c *DealCreate) SetNillableClosedPrice(v *float64) *DealCreate {
	if v != nil {
		_c.SetClosedPrice(*v)
	}
	return _c
}

// SetCommissionRate sets the "commission_rate" field.
func (_c *DealCreate) SetCommissionRate(v float64) *DealCreate {
	_c.mutation.SetCommissionRate(v)
	return _c
}

// SetNillableCommissionRate sets the "commission_rate" field if the given value is not nil.
func (_c *DealCreate) SetNillableCommissionRate(v *float64) *DealCreate {
	if v != nil {
		_c.SetCommissionRate(*v)
	}
	return _c
}

// SetExpectedCloseDate sets the "expected_close_date" field.
func (_c *DealCreate) SetExpectedCloseDate(v time.Time) *DealCreate {
	_c.mutation.SetExpectedCloseDate(v)
	return _c
}

// SetNillableExpectedCloseDate sets the "expected_close_date" field if the given value is not nil.
func (_c *DealCreate) SetNillableExpectedCloseDate(v *time.Time) *DealCreate {
	if v != nil {
		_c.SetExpectedCloseDate(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DealCreate) SetCreatedAt(v time.Time) *DealCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DealCreate) SetNillableCreatedAt(v *time.Time) *DealCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DealCreate) SetUpdatedAt(v time.Time) *DealCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DealCreate) SetNillableUpdatedAt(v *time.Time) *DealCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetLead sets the "lead" edge to the Lead entity.
func (_c *DealCreate) SetLead(v *Lead) *DealCreate {
	return _c.SetLeadID(v.ID)
}

// SetProperty sets the "property" edge to the Property entity.
func (_c *DealCreate) SetProperty(v *Property) *DealCreate {
	return _c.SetPropertyID(v.ID)
}

// AddActivityIDs adds the "activities" edge to the Activity entity by IDs.
func (_c *DealCreate) AddActivityIDs(ids ...int) *DealCreate {
	_c.mutation.AddActivityIDs(ids...)
	return _c
}

// AddActivities adds the "activities" edges to the Activity entity.
func (_c *DealCreate) AddActivities(v ...*Activity) *DealCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddActivityIDs(ids...)
}

// Mutation returns the DealMutation object of the builder.
func (_c *DealCreate) Mutation() *DealMutation {
	return _c.mutation
}

// Save creates the Deal in the database.
func (_c *DealCreate) Save(ctx context.Context) (*Deal, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DealCreate) SaveX(ctx context.Context) *Deal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DealCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DealCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DealCreate) defaults() {
	if _, ok := _c.mutation.Stage(); !ok {
		v := deal.DefaultStage
		_c.mutation.SetStage(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := deal.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := deal.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DealCreate) check() error {
	if _, ok := _c.mutation.LeadID(); !ok {
		return &ValidationError{Name: "lead_id", err: errors.New(`ent: missing required field "Deal.lead_id"`)}
	}
	if v, ok := _c.mutation.LeadID(); ok {
		if err := deal.LeadIDValidator(v); err != nil {
			return &ValidationError{Name: "lead_id", err: fmt.Errorf(`ent: validator failed for field "Deal.lead_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PropertyID(); !ok {
		return &ValidationError{Name: "property_id", err: errors.New(`ent: missing required field "Deal.property_id"`)}
	}
	if v, ok := _c.mutation.PropertyID(); ok {
		if err := deal.PropertyIDValidator(v); err != nil {
			return &ValidationError{Name: "property_id", err: fmt.Errorf(`ent: validator failed for field "Deal.property_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "Deal.stage"`)}
	}
	if v, ok := _c.mutation.Stage(); ok {
		if err := deal.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "Deal.stage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Deal.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Deal.updated_at"`)}
	}
	if len(_c.mutation.LeadIDs()) == 0 {
		return &ValidationError{Name: "lead", err: errors.New(`ent: missing required edge "Deal.lead"`)}
	}
	if len(_c.mutation.PropertyIDs()) == 0 {
		return &ValidationError{Name: "property", err: errors.New(`ent: missing required edge "Deal.property"`)}
	}
	return nil
}

func (_c *DealCreate) sqlSave(ctx context.Context) (*Deal, error) {
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

func (_c *DealCreate) createSpec() (*Deal, *sqlgraph.CreateSpec) {
	var (
		_node = &Deal{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(deal.Table, sqlgraph.NewFieldSpec(deal.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(deal.FieldStage, field.TypeEnum, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.OfferPrice(); ok {
		_spec.SetField(deal.FieldOfferPrice, field.TypeFloat64, value)
		_node.OfferPrice = &value
	}
	if value, ok := _c.mutation.ClosedPrice(); ok {
		_spec.SetField(deal.FieldClosedPrice, field.TypeFloat64, value)
		_node.ClosedPrice = &value
	}
	if value, ok := _c.mutation.CommissionRate(); ok {
		_spec.SetField(deal.FieldCommissionRate, field.TypeFloat64, value)
		_node.CommissionRate = &value
	}
	if value, ok := _c.mutation.ExpectedCloseDate(); ok {
		_spec.SetField(deal.FieldExpectedCloseDate, field.TypeTime, value)
		_node.ExpectedCloseDate = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(deal.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(deal.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.LeadIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   deal.LeadTable,
			Columns: []string{deal.LeadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.LeadID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PropertyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   deal.PropertyTable,
			Columns: []string{deal.PropertyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(property.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PropertyID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ActivitiesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   deal.ActivitiesTable,
			Columns: []string{deal.ActivitiesColumn},
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
	return _node, _spec
}

// DealCreateBulk is the builder for creating many Deal entities in bulk.
type DealCreateBulk struct {
	config
	err      error
	builders []*DealCreate
}

// Save creates the Deal entities in the database.
func (_c *DealCreateBulk) Save(ctx context.Context) ([]*Deal, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Deal, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DealMutation)
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
func (_c *DealCreateBulk) SaveX(ctx context.Context) []*Deal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DealCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DealCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
