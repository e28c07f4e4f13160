// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/estatedesk/backend/ent/activity"
	"github.com/estatedesk/backend/ent/deal"
	"github.com/estatedesk/backend/ent/lead"
	"github.com/estatedesk/backend/ent/predicate"
	"github.com/estatedesk/backend/ent/property"
	"github.com/estatedesk/backend/ent/user"
)

// ActivityUpdate is the builder for updating Activity entities.
type ActivityUpdate struct {
	config
	hooks    []Hook
	mutation *ActivityMutation
}

// Where appends a list predicates to the ActivityUpdate builder.
func (_u *ActivityUpdate) Where(ps ...predicate.Activity) *ActivityUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetType sets the "type" field.
func (_u *ActivityUpdate) SetType(v activity.Type) *ActivityUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *ActivityUpdate) SetNillableType(v *activity.Type) *ActivityUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ActivityUpdate) SetContent(v string) *ActivityUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ActivityUpdate) SetNillableContent(v *string) *ActivityUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ActivityUpdate) SetUserID(v int) *ActivityUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ActivityUpdate) SetNillableUserID(v *int) *ActivityUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetLeadID sets the "lead_id" field.
func (_u *ActivityUpdate) SetLeadID(v int) *ActivityUpdate {
	_u.mutation.SetLeadID(v)
	return _u
}

// SetNillableLeadID sets the "lead_id" field if the given value is not nil.
func (_u *ActivityUpdate) SetNillableLeadID(v *int) *ActivityUpdate {
	if v != nil {
		_u.SetLeadID(*v)
	}
	return _u
}

// ClearLeadID clears the value of the "lead_id" field.
func (_u *ActivityUpdate) ClearLeadID() *ActivityUpdate {
	_u.mutation.ClearLeadID()
	return _u
}

// SetPropertyID sets the "property_id" field.
func (_u *ActivityUpdate) SetPropertyID(v int) *ActivityUpdate {
	_u.mutation.SetPropertyID(v)
	return _u
}

// SetNillablePropertyID sets the "property_id" field if the given value is not nil.
func (_u *ActivityUpdate) SetNillablePropertyID(v *int) *ActivityUpdate {
	if v != nil {
		_u.SetPropertyID(*v)
	}
	return _u
}

// ClearPropertyID clears the value of the "property_id" field.
func (_u *ActivityUpdate) ClearPropertyID() *ActivityUpdate {
	_u.mutation.ClearPropertyID()
	return _u
}

// SetDealID sets the "deal_id" field.
func (_u *ActivityUpdate) SetDealID(v int) *ActivityUpdate {
	_u.mutation.SetDealID(v)
	return _u
}

// SetNillableDealID sets the "deal_id" field if the given value is not nil.
func (_u *ActivityUpdate) SetNillableDealID(v *int) *ActivityUpdate {
	if v != nil {
		_u.SetDealID(*v)
	}
	return _u
}

// ClearDealID clears the value of the "deal_id" field.
func (_u *ActivityUpdate) ClearDealID() *ActivityUpdate {
	_u.mutation.ClearDealID()
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *ActivityUpdate) SetUser(v *User) *ActivityUpdate {
	return _u.SetUserID(v.ID)
}

// SetLead sets the "lead" edge to the Lead entity.
func (_u *ActivityUpdate) SetLead(v *Lead) *ActivityUpdate {
	return _u.SetLeadID(v.ID)
}

// SetProperty sets the "property" edge to the Property entity.
func (_u *ActivityUpdate) SetProperty(v *Property) *ActivityUpdate {
	return _u.SetPropertyID(v.ID)
}

// SetDeal sets the "deal" edge to the Deal entity.
func (_u *ActivityUpdate) SetDeal(v *Deal) *ActivityUpdate {
	return _u.SetDealID(v.ID)
}

// Mutation returns the ActivityMutation object of the builder.
func (_u *ActivityUpdate) Mutation() *ActivityMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *ActivityUpdate) ClearUser() *ActivityUpdate {
	_u.mutation.ClearUser()
	return _u
}

// ClearLead clears the "lead" edge to the Lead entity.
func (_u *ActivityUpdate) ClearLead() *ActivityUpdate {
	_u.mutation.ClearLead()
	return _u
}

// ClearProperty clears the "property" edge to the Property entity.
func (_u *ActivityUpdate) ClearProperty() *ActivityUpdate {
	_u.mutation.ClearProperty()
	return _u
}

// ClearDeal clears the "deal" edge to the Deal entity.
func (_u *ActivityUpdate) ClearDeal() *ActivityUpdate {
	_u.mutation.ClearDeal()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ActivityUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivityUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ActivityUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivityUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActivityUpdate) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := activity.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Activity.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Content(); ok {
		if err := activity.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "Activity.content": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := activity.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Activity.user_id": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Activity.user"`)
	}
	return nil
}

func (_u *ActivityUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(activity.Table, activity.Columns, sqlgraph.NewFieldSpec(activity.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(activity.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(activity.FieldContent, field.TypeString, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   activity.UserTable,
			Columns: []string{activity.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   activity.UserTable,
			Columns: []string{activity.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
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
			Table:   activity.LeadTable,
			Columns: []string{activity.LeadColumn},
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
			Table:   activity.LeadTable,
			Columns: []string{activity.LeadColumn},
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
	if _u.mutation.PropertyCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   activity.PropertyTable,
			Columns: []string{activity.PropertyColumn},
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
			Table:   activity.PropertyTable,
			Columns: []string{activity.PropertyColumn},
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
	if _u.mutation.DealCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   activity.DealTable,
			Columns: []string{activity.DealColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deal.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DealIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   activity.DealTable,
			Columns: []string{activity.DealColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ActivityUpdateOne is the builder for updating a single Activity entity.
type ActivityUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ActivityMutation
}

// SetType sets the "type" field.
func (_u *ActivityUpdateOne) SetType(v activity.Type) *ActivityUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *ActivityUpdateOne) SetNillableType(v *activity.Type) *ActivityUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ActivityUpdateOne) SetContent(v string) *ActivityUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ActivityUpdateOne) SetNillableContent(v *string) *ActivityUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ActivityUpdateOne) SetUserID(v int) *ActivityUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ActivityUpdateOne) SetNillableUserID(v *int) *ActivityUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetLeadID sets the "lead_id" field.
func (_u *ActivityUpdateOne) SetLeadID(v int) *ActivityUpdateOne {
	_u.mutation.SetLeadID(v)
	return _u
}

// SetNillableLeadID sets the "lead_id" field if the given value is not nil.
func (_u *ActivityUpdateOne) SetNillableLeadID(v *int) *ActivityUpdateOne {
	if v != nil {
		_u.SetLeadID(*v)
	}
	return _u
}

// ClearLeadID clears the value of the "lead_id" field.
func (_u *ActivityUpdateOne) ClearLeadID() *ActivityUpdateOne {
	_u.mutation.ClearLeadID()
	return _u
}

// SetPropertyID sets the "property_id" field.
func (_u *ActivityUpdateOne) SetPropertyID(v int) *ActivityUpdateOne {
	_u.mutation.SetPropertyID(v)
	return _u
}

// SetNillablePropertyID sets the "property_id" field if the given value is not nil.
func (_u *ActivityUpdateOne) SetNillablePropertyID(v *int) *ActivityUpdateOne {
	if v != nil {
		_u.SetPropertyID(*v)
	}
	return _u
}

// ClearPropertyID clears the value of the "property_id" field.
func (_u *ActivityUpdateOne) ClearPropertyID() *ActivityUpdateOne {
	_u.mutation.ClearPropertyID()
	return _u
}

// SetDealID sets the "deal_id" field.
func (_u *ActivityUpdateOne) SetDealID(v int) *ActivityUpdateOne {
	_u.mutation.SetDealID(v)
	return _u
}

// SetNillableDealID sets the "deal_id" field if the given value is not nil.
func (_u *ActivityUpdateOne) SetNillableDealID(v *int) *ActivityUpdateOne {
	if v != nil {
		_u.SetDealID(*v)
	}
	return _u
}

// ClearDealID clears the value of the "deal_id" field.
func (_u *ActivityUpdateOne) ClearDealID() *ActivityUpdateOne {
	_u.mutation.ClearDealID()
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *ActivityUpdateOne) SetUser(v *User) *ActivityUpdateOne {
	return _u.SetUserID(v.ID)
}

// SetLead sets the "lead" edge to the Lead entity.
func (_u *ActivityUpdateOne) SetLead(v *Lead) *ActivityUpdateOne {
	return _u.SetLeadID(v.ID)
}

// SetProperty sets the "property" edge to the Property entity.
func (_u *ActivityUpdateOne) SetProperty(v *Property) *ActivityUpdateOne {
	return _u.SetPropertyID(v.ID)
}

// SetDeal sets the "deal" edge to the Deal entity.
func (_u *ActivityUpdateOne) SetDeal(v *Deal) *ActivityUpdateOne {
	return _u.SetDealID(v.ID)
}

// Mutation returns the ActivityMutation object of the builder.
func (_u *ActivityUpdateOne) Mutation() *ActivityMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *ActivityUpdateOne) ClearUser() *ActivityUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// ClearLead clears the "lead" edge to the Lead entity.
func (_u *ActivityUpdateOne) ClearLead() *ActivityUpdateOne {
	_u.mutation.ClearLead()
	return _u
}

// ClearProperty clears the "property" edge to the Property entity.
func (_u *ActivityUpdateOne) ClearProperty() *ActivityUpdateOne {
	_u.mutation.ClearProperty()
	return _u
}

// ClearDeal clears the "deal" edge to the Deal entity.
func (_u *ActivityUpdateOne) ClearDeal() *ActivityUpdateOne {
	_u.mutation.ClearDeal()
	return _u
}

// Where appends a list predicates to the ActivityUpdate builder.
func (_u *ActivityUpdateOne) Where(ps ...predicate.Activity) *ActivityUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ActivityUpdateOne) Select(field string, fields ...string) *ActivityUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Activity entity.
func (_u *ActivityUpdateOne) Save(ctx context.Context) (*Activity, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivityUpdateOne) SaveX(ctx context.Context) *Activity {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ActivityUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivityUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActivityUpdateOne) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := activity.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Activity.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Content(); ok {
		if err := activity.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "Activity.content": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := activity.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Activity.user_id": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Activity.user"`)
	}
	return nil
}

func (_u *ActivityUpdateOne) sqlSave(ctx context.Context) (_node *Activity, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(activity.Table, activity.Columns, sqlgraph.NewFieldSpec(activity.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Activity.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, activity.FieldID)
		for _, f := range fields {
			if !activity.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != activity.FieldID {
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
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(activity.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(activity.FieldContent, field.TypeString, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   activity.UserTable,
			Columns: []string{activity.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   activity.UserTable,
			Columns: []string{activity.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
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
			Table:   activity.LeadTable,
			Columns: []string{activity.LeadColumn},
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
			Table:   activity.LeadTable,
			Columns: []string{activity.LeadColumn},
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
	if _u.mutation.PropertyCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   activity.PropertyTable,
			Columns: []string{activity.PropertyColumn},
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
			Table:   activity.PropertyTable,
			Columns: []string{activity.PropertyColumn},
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
	if _u.mutation.DealCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   activity.DealTable,
			Columns: []string{activity.DealColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deal.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DealIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   activity.DealTable,
			Columns: []string{activity.DealColumn},
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
	_node = &Activity{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
