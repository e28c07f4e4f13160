// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/estatedesk/backend/ent/formsubmission"
	"github.com/estatedesk/backend/ent/lead"
	"github.com/estatedesk/backend/ent/property"
)

// FormSubmissionCreate is the builder for creating a FormSubmission entity.
type FormSubmissionCreate struct {
	config
	mutation *FormSubmissionMutation
	hooks    []Hook
}

// SetPropertyID sets the "property_id" field.
func (_c *FormSubmissionCreate) SetPropertyID(v int) *FormSubmissionCreate {
	_c.mutation.SetPropertyID(v)
	return _c
}

// SetFullName sets the "full_name" field.
func (_c *FormSubmissionCreate) SetFullName(v string) *FormSubmissionCreate {
	_c.mutation.SetFullName(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *FormSubmissionCreate) SetEmail(v string) *FormSubmissionCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetPhone sets the "phone" field.
func (_c *FormSubmissionCreate) SetPhone(v string) *FormSubmissionCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *FormSubmissionCreate) SetNillablePhone(v *string) *FormSubmissionCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetMessage sets the "message" field.
func (_c *FormSubmissionCreate) SetMessage(v string) *FormSubmissionCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_c *FormSubmissionCreate) SetNillableMessage(v *string) *FormSubmissionCreate {
	if v != nil {
		_c.SetMessage(*v)
	}
	return _c
}

// SetLeadID sets the "lead_id" field.
func (_c *FormSubmissionCreate) SetLeadID(v int) *FormSubmissionCreate {
	_c.mutation.SetLeadID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FormSubmissionCreate) SetCreatedAt(v time.Time) *FormSubmissionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FormSubmissionCreate) SetNillableCreatedAt(v *time.Time) *FormSubmissionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetProperty sets the "property" edge to the Property entity.
func (_c *FormSubmissionCreate) SetProperty(v *Property) *FormSubmissionCreate {
	return _c.SetPropertyID(v.ID)
}

// SetLead sets the "lead" edge to the Lead entity.
func (_c *FormSubmissionCreate) SetLead(v *Lead) *FormSubmissionCreate {
	return _c.SetLeadID(v.ID)
}

// Mutation returns the FormSubmissionMutation object of the builder.
func (_c *FormSubmissionCreate) Mutation() *FormSubmissionMutation {
	return _c.mutation
}

// Save creates the FormSubmission in the database.
func (_c *FormSubmissionCreate) Save(ctx context.Context) (*FormSubmission, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FormSubmissionCreate) SaveX(ctx context.Context) *FormSubmission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FormSubmissionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FormSubmissionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FormSubmissionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := formsubmission.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FormSubmissionCreate) check() error {
	if _, ok := _c.mutation.PropertyID(); !ok {
		return &ValidationError{Name: "property_id", err: errors.New(`ent: missing required field "FormSubmission.property_id"`)}
	}
	if v, ok := _c.mutation.PropertyID(); ok {
		if err := formsubmission.PropertyIDValidator(v); err != nil {
			return &ValidationError{Name: "property_id", err: fmt.Errorf(`ent: validator failed for field "FormSubmission.property_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FullName(); !ok {
		return &ValidationError{Name: "full_name", err: errors.New(`ent: missing required field "FormSubmission.full_name"`)}
	}
	if v, ok := _c.mutation.FullName(); ok {
		if err := formsubmission.FullNameValidator(v); err != nil {
			return &ValidationError{Name: "full_name", err: fmt.Errorf(`ent: validator failed for field "FormSubmission.full_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "FormSubmission.email"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := formsubmission.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "FormSubmission.email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LeadID(); !ok {
		return &ValidationError{Name: "lead_id", err: errors.New(`ent: missing required field "FormSubmission.lead_id"`)}
	}
	if v, ok := _c.mutation.LeadID(); ok {
		if err := formsubmission.LeadIDValidator(v); err != nil {
			return &ValidationError{Name: "lead_id", err: fmt.Errorf(`ent: validator failed for field "FormSubmission.lead_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FormSubmission.created_at"`)}
	}
	if len(_c.mutation.PropertyIDs()) == 0 {
		return &ValidationError{Name: "property", err: errors.New(`ent: missing required edge "FormSubmission.property"`)}
	}
	if len(_c.mutation.LeadIDs()) == 0 {
		return &ValidationError{Name: "lead", err: errors.New(`ent: missing required edge "FormSubmission.lead"`)}
	}
	return nil
}

func (_c *FormSubmissionCreate) sqlSave(ctx context.Context) (*FormSubmission, error) {
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

func (_c *FormSubmissionCreate) createSpec() (*FormSubmission, *sqlgraph.CreateSpec) {
	var (
		_node = &FormSubmission{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(formsubmission.Table, sqlgraph.NewFieldSpec(formsubmission.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.FullName(); ok {
		_spec.SetField(formsubmission.FieldFullName, field.TypeString, value)
		_node.FullName = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(formsubmission.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(formsubmission.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(formsubmission.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(formsubmission.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.PropertyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   formsubmission.PropertyTable,
			Columns: []string{formsubmission.PropertyColumn},
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
	if nodes := _c.mutation.LeadIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   formsubmission.LeadTable,
			Columns: []string{formsubmission.LeadColumn},
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
	return _node, _spec
}

// FormSubmissionCreateBulk is the builder for creating many FormSubmission entities in bulk.
type FormSubmissionCreateBulk struct {
	config
	err      error
	builders []*FormSubmissionCreate
}

// Save creates the FormSubmission entities in the database.
func (_c *FormSubmissionCreateBulk) Save(ctx context.Context) ([]*FormSubmission, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FormSubmission, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FormSubmissionMutation)
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
func (_c *FormSubmissionCreateBulk) SaveX(ctx context.Context) []*FormSubmission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FormSubmissionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FormSubmissionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
