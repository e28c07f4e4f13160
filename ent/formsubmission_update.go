// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/estatedesk/backend/ent/formsubmission"
	"github.com/estatedesk/backend/ent/lead"
	"github.com/estatedesk/backend/ent/predicate"
	"github.com/estatedesk/backend/ent/property"
)

// FormSubmissionUpdate is the builder for updating FormSubmission entities.
type FormSubmissionUpdate struct {
	config
	hooks    []Hook
	mutation *FormSubmissionMutation
}

// Where appends a list predicates to the FormSubmissionUpdate builder.
func (_u *FormSubmissionUpdate) Where(ps ...predicate.FormSubmission) *FormSubmissionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPropertyID sets the "property_id" field.
func (_u *FormSubmissionUpdate) SetPropertyID(v int) *FormSubmissionUpdate {
	_u.mutation.SetPropertyID(v)
	return _u
}

// SetNillablePropertyID sets the "property_id" field if the given value is not nil.
func (_u *FormSubmissionUpdate) SetNillablePropertyID(v *int) *FormSubmissionUpdate {
	if v != nil {
		_u.SetPropertyID(*v)
	}
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *FormSubmissionUpdate) SetFullName(v string) *FormSubmissionUpdate {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *FormSubmissionUpdate) SetNillableFullName(v *string) *FormSubmissionUpdate {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *FormSubmissionUpdate) SetEmail(v string) *FormSubmissionUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *FormSubmissionUpdate) SetNillableEmail(v *string) *FormSubmissionUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *FormSubmissionUpdate) SetPhone(v string) *FormSubmissionUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *FormSubmissionUpdate) SetNillablePhone(v *string) *FormSubmissionUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *FormSubmissionUpdate) ClearPhone() *FormSubmissionUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetMessage sets the "message" field.
func (_u *FormSubmissionUpdate) SetMessage(v string) *FormSubmissionUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *FormSubmissionUpdate) SetNillableMessage(v *string) *FormSubmissionUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// ClearMessage clears the value of the "message" field.
func (_u *FormSubmissionUpdate) ClearMessage() *FormSubmissionUpdate {
	_u.mutation.ClearMessage()
	return _u
}

// SetLeadID sets the "lead_id" field.
func (_u *FormSubmissionUpdate) SetLeadID(v int) *FormSubmissionUpdate {
	_u.mutation.SetLeadID(v)
	return _u
}

// SetNillableLeadID sets the "lead_id" field if the given value is not nil.
func (_u *FormSubmissionUpdate) SetNillableLeadID(v *int) *FormSubmissionUpdate {
	if v != nil {
		_u.SetLeadID(*v)
	}
	return _u
}

// SetProperty sets the "property" edge to the Property entity.
func (_u *FormSubmissionUpdate) SetProperty(v *Property) *FormSubmissionUpdate {
	return _u.SetPropertyID(v.ID)
}

// SetLead sets the "lead" edge to the Lead entity.
func (_u *FormSubmissionUpdate) SetLead(v *Lead) *FormSubmissionUpdate {
	return _u.SetLeadID(v.ID)
}

// Mutation returns the FormSubmissionMutation object of the builder.
func (_u *FormSubmissionUpdate) Mutation() *FormSubmissionMutation {
	return _u.mutation
}

// ClearProperty clears the "property" edge to the Property entity.
func (_u *FormSubmissionUpdate) ClearProperty() *FormSubmissionUpdate {
	_u.mutation.ClearProperty()
	return _u
}

// ClearLead clears the "lead" edge to the Lead entity.
func (_u *FormSubmissionUpdate) ClearLead() *FormSubmissionUpdate {
	_u.mutation.ClearLead()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FormSubmissionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FormSubmissionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FormSubmissionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FormSubmissionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FormSubmissionUpdate) check() error {
	if v, ok := _u.mutation.PropertyID(); ok {
		if err := formsubmission.PropertyIDValidator(v); err != nil {
			return &ValidationError{Name: "property_id", err: fmt.Errorf(`ent: validator failed for field "FormSubmission.property_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FullName(); ok {
		if err := formsubmission.FullNameValidator(v); err != nil {
			return &ValidationError{Name: "full_name", err: fmt.Errorf(`ent: validator failed for field "FormSubmission.full_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := formsubmission.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "FormSubmission.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LeadID(); ok {
		if err := formsubmission.LeadIDValidator(v); err != nil {
			return &ValidationError{Name: "lead_id", err: fmt.Errorf(`ent: validator failed for field "FormSubmission.lead_id": %w`, err)}
		}
	}
	if _u.mutation.PropertyCleared() && len(_u.mutation.PropertyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FormSubmission.property"`)
	}
	if _u.mutation.LeadCleared() && len(_u.mutation.LeadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FormSubmission.lead"`)
	}
	return nil
}

func (_u *FormSubmissionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(formsubmission.Table, formsubmission.Columns, sqlgraph.NewFieldSpec(formsubmission.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(formsubmission.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(formsubmission.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(formsubmission.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(formsubmission.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(formsubmission.FieldMessage, field.TypeString, value)
	}
	if _u.mutation.MessageCleared() {
		_spec.ClearField(formsubmission.FieldMessage, field.TypeString)
	}
	if _u.mutation.PropertyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PropertyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LeadCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LeadIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{formsubmission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FormSubmissionUpdateOne is the builder for updating a single FormSubmission entity.
type FormSubmissionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FormSubmissionMutation
}

// SetPropertyID sets the "property_id" field.
func (_u *FormSubmissionUpdateOne) SetPropertyID(v int) *FormSubmissionUpdateOne {
	_u.mutation.SetPropertyID(v)
	return _u
}

// SetNillablePropertyID sets the "property_id" field if the given value is not nil.
func (_u *FormSubmissionUpdateOne) SetNillablePropertyID(v *int) *FormSubmissionUpdateOne {
	if v != nil {
		_u.SetPropertyID(*v)
	}
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *FormSubmissionUpdateOne) SetFullName(v string) *FormSubmissionUpdateOne {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *FormSubmissionUpdateOne) SetNillableFullName(v *string) *FormSubmissionUpdateOne {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *FormSubmissionUpdateOne) SetEmail(v string) *FormSubmissionUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *FormSubmissionUpdateOne) SetNillableEmail(v *string) *FormSubmissionUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *FormSubmissionUpdateOne) SetPhone(v string) *FormSubmissionUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *FormSubmissionUpdateOne) SetNillablePhone(v *string) *FormSubmissionUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *FormSubmissionUpdateOne) ClearPhone() *FormSubmissionUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetMessage sets the "message" field.
func (_u *FormSubmissionUpdateOne) SetMessage(v string) *FormSubmissionUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *FormSubmissionUpdateOne) SetNillableMessage(v *string) *FormSubmissionUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// ClearMessage clears the value of the "message" field.
func (_u *FormSubmissionUpdateOne) ClearMessage() *FormSubmissionUpdateOne {
	_u.mutation.ClearMessage()
	return _u
}

// SetLeadID sets the "lead_id" field.
func (_u *FormSubmissionUpdateOne) SetLeadID(v int) *FormSubmissionUpdateOne {
	_u.mutation.SetLeadID(v)
	return _u
}

// SetNillableLeadID sets the "lead_id" field if the given value is not nil.
func (_u *FormSubmissionUpdateOne) SetNillableLeadID(v *int) *FormSubmissionUpdateOne {
	if v != nil {
		_u.SetLeadID(*v)
	}
	return _u
}

// SetProperty sets the "property" edge to the Property entity.
func (_u *FormSubmissionUpdateOne) SetProperty(v *Property) *FormSubmissionUpdateOne {
	return _u.SetPropertyID(v.ID)
}

// SetLead sets the "lead" edge to the Lead entity.
func (_u *FormSubmissionUpdateOne) SetLead(v *Lead) *FormSubmissionUpdateOne {
	return _u.SetLeadID(v.ID)
}

// Mutation returns the FormSubmissionMutation object of the builder.
func (_u *FormSubmissionUpdateOne) Mutation() *FormSubmissionMutation {
	return _u.mutation
}

// ClearProperty clears the "property" edge to the Property entity.
func (_u *FormSubmissionUpdateOne) ClearProperty() *FormSubmissionUpdateOne {
	_u.mutation.ClearProperty()
	return _u
}

// ClearLead clears the "lead" edge to the Lead entity.
func (_u *FormSubmissionUpdateOne) ClearLead() *FormSubmissionUpdateOne {
	_u.mutation.ClearLead()
	return _u
}

// Where appends a list predicates to the FormSubmissionUpdate builder.
func (_u *FormSubmissionUpdateOne) Where(ps ...predicate.FormSubmission) *FormSubmissionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FormSubmissionUpdateOne) Select(field string, fields ...string) *FormSubmissionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FormSubmission entity.
func (_u *FormSubmissionUpdateOne) Save(ctx context.Context) (*FormSubmission, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FormSubmissionUpdateOne) SaveX(ctx context.Context) *FormSubmission {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FormSubmissionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FormSubmissionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FormSubmissionUpdateOne) check() error {
	if v, ok := _u.mutation.PropertyID(); ok {
		if err := formsubmission.PropertyIDValidator(v); err != nil {
			return &ValidationError{Name: "property_id", err: fmt.Errorf(`ent: validator failed for field "FormSubmission.property_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FullName(); ok {
		if err := formsubmission.FullNameValidator(v); err != nil {
			return &ValidationError{Name: "full_name", err: fmt.Errorf(`ent: validator failed for field "FormSubmission.full_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := formsubmission.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "FormSubmission.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LeadID(); ok {
		if err := formsubmission.LeadIDValidator(v); err != nil {
			return &ValidationError{Name: "lead_id", err: fmt.Errorf(`ent: validator failed for field "FormSubmission.lead_id": %w`, err)}
		}
	}
	if _u.mutation.PropertyCleared() && len(_u.mutation.PropertyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FormSubmission.property"`)
	}
	if _u.mutation.LeadCleared() && len(_u.mutation.LeadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FormSubmission.lead"`)
	}
	return nil
}

func (_u *FormSubmissionUpdateOne) sqlSave(ctx context.Context) (_node *FormSubmission, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(formsubmission.Table, formsubmission.Columns, sqlgraph.NewFieldSpec(formsubmission.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FormSubmission.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, formsubmission.FieldID)
		for _, f := range fields {
			if !formsubmission.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != formsubmission.FieldID {
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
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(formsubmission.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(formsubmission.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(formsubmission.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(formsubmission.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(formsubmission.FieldMessage, field.TypeString, value)
	}
	if _u.mutation.MessageCleared() {
		_spec.ClearField(formsubmission.FieldMessage, field.TypeString)
	}
	if _u.mutation.PropertyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PropertyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LeadCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LeadIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &FormSubmission{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{formsubmission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
