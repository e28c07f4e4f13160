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
	"github.com/estatedesk/backend/ent/lead"
	"github.com/estatedesk/backend/ent/predicate"
	"github.com/estatedesk/backend/ent/property"
)

// DealUpdate is the builder for updating Deal entities.
type DealUpdate struct {
	config
	hooks    []Hook
	mutation *DealMutation
}

// Where appends a list predicates to the DealUpdate builder.
func (_u *DealUpdate) Where(ps ...predicate.Deal) *DealUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLeadID sets the "lead_id" field.
func (_u *DealUpdate) SetLeadID(v int) *DealUpdate {
	_u.mutation.SetLeadID(v)
	return _u
}

// SetNillableLeadID sets the "lead_id" field if the given value is not nil.
func (_u *DealUpdate) SetNillableLeadID(v *int) *DealUpdate {
	if v != nil {
		_u.SetLeadID(*v)
	}
	return _u
}

// SetPropertyID sets the "property_id" field.
func (_u *DealUpdate) SetPropertyID(v int) *DealUpdate {
	_u.mutation.SetPropertyID(v)
	return _u
}

// SetNillablePropertyID sets the "property_id" field if the given value is not nil.
func (_u *DealUpdate) SetNillablePropertyID(v *int) *DealUpdate {
	if v != nil {
		_u.SetPropertyID(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *DealUpdate) SetStage(v deal.Stage) *DealUpdate {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *DealUpdate) SetNillableStage(v *deal.Stage) *DealUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetOfferPrice sets the "offer_price" field.
func (_u *DealUpdate) SetOfferPrice(v float64) *DealUpdate {
	_u.mutation.ResetOfferPrice()
	_u.mutation.SetOfferPrice(v)
	return _u
}

// SetNillableOfferPrice sets the "offer_price" field if the given value is not nil.
func (_u *DealUpdate) SetNillableOfferPrice(v *float64) *DealUpdate {
	if v != nil {
		_u.SetOfferPrice(*v)
	}
	return _u
}

// AddOfferPrice adds value to the "offer_price" field.
func (_u *DealUpdate) AddOfferPrice(v float64) *DealUpdate {
	_u.mutation.AddOfferPrice(v)
	return _u
}

// ClearOfferPrice clears the value of the "offer_price" field.
func (_u *DealUpdate) ClearOfferPrice() *DealUpdate {
	_u.mutation.ClearOfferPrice()
	return _u
}

// SetClosedPrice sets the "closed_price" field.
func (_u *DealUpdate) SetClosedPrice(v float64) *DealUpdate {
	_u.mutation.ResetClosedPrice()
	_u.mutation.SetClosedPrice(v)
	return _u
}

// SetNillableClosedPrice sets the "closed_price" field if the given value is not nil.
func (_u *DealUpdate) SetNillableClosedPrice(v *float64) *DealUpdate {
	if v != nil {
		_u.SetClosedPrice(*v)
	}
	return _u
}

// AddClosedPrice adds value to the "closed_price" field.
func (_u *DealUpdate) AddClosedPrice(v float64) *DealUpdate {
	_u.mutation.AddClosedPrice(v)
	return _u
}

// ClearClosedPrice clears the value of the "closed_price" field.
func (_u *DealUpdate) ClearClosedPrice() *DealUpdate {
	_u.mutation.ClearClosedPrice()
	return _u
}

// SetCommissionRate sets the "commission_rate" field.
func (_u *DealUpdate) SetCommissionRate(v float64) *DealUpdate {
	_u.mutation.ResetCommissionRate()
	_u.mutation.SetCommissionRate(v)
	return _u
}

// SetNillableCommissionRate sets the "commission_rate" field if the given value is not nil.
func (_u *DealUpdate) SetNillableCommissionRate(v *float64) *DealUpdate {
	if v != nil {
		_u.SetCommissionRate(*v)
	}
	return _u
}

// AddCommissionRate adds value to the "commission_rate" field.
func (_u *DealUpdate) AddCommissionRate(v float64) *DealUpdate {
	_u.mutation.AddCommissionRate(v)
	return _u
}

// ClearCommissionRate clears the value of the "commission_rate" field.
func (_u *DealUpdate) ClearCommissionRate() *DealUpdate {
	_u.mutation.ClearCommissionRate()
	return _u
}

// SetExpectedCloseDate sets the "expected_close_date" field.
func (_u *DealUpdate) SetExpectedCloseDate(v time.Time) *DealUpdate {
	_u.mutation.SetExpectedCloseDate(v)
	return _u
}

// SetNillableExpectedCloseDate sets the "expected_close_date" field if the given value is not nil.
func (_u *DealUpdate) SetNillableExpectedCloseDate(v *time.Time) *DealUpdate {
	if v != nil {
		_u.SetExpectedCloseDate(*v)
	}
	return _u
}

// ClearExpectedCloseDate clears the value of the "expected_close_date" field.
func (_u *DealUpdate) ClearExpectedCloseDate() *DealUpdate {
	_u.mutation.ClearExpectedCloseDate()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DealUpdate) SetUpdatedAt(v time.Time) *DealUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetLead sets the "lead" edge to the Lead entity.
func (_u *DealUpdate) SetLead(v *Lead) *DealUpdate {
	return _u.SetLeadID(v.ID)
}

// SetProperty sets the "property" edge to the Property entity.
func (_u *DealUpdate) SetProperty(v *Property) *DealUpdate {
	return _u.SetPropertyID(v.ID)
}

// AddActivityIDs adds the "activities" edge to the Activity entity by IDs.
func (_u *DealUpdate) AddActivityIDs(ids ...int) *DealUpdate {
	_u.mutation.AddActivityIDs(ids...)
	return _u
}

// AddActivities adds the "activities" edges to the Activity entity.
func (_u *DealUpdate) AddActivities(v ...*Activity) *DealUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddActivityIDs(ids...)
}

// Mutation returns the DealMutation object of the builder.
func (_u *DealUpdate) Mutation() *DealMutation {
	return _u.mutation
}

// ClearLead clears the "lead" edge to the Lead entity.
func (_u *DealUpdate) ClearLead() *DealUpdate {
	_u.mutation.ClearLead()
	return _u
}

// ClearProperty clears the "property" edge to the Property entity.
func (_u *DealUpdate) ClearProperty() *DealUpdate {
	_u.mutation.ClearProperty()
	return _u
}

// ClearActivities clears all "activities" edges to the Activity entity.
func (_u *DealUpdate) ClearActivities() *DealUpdate {
	_u.mutation.ClearActivities()
	return _u
}

// RemoveActivityIDs removes the "activities" edge to Activity entities by IDs.
func (_u *DealUpdate) RemoveActivityIDs(ids ...int) *DealUpdate {
	_u.mutation.RemoveActivityIDs(ids...)
	return _u
}

// RemoveActivities removes "activities" edges to Activity entities.
func (_u *DealUpdate) RemoveActivities(v ...*Activity) *DealUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveActivityIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DealUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DealUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DealUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DealUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DealUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := deal.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DealUpdate) check() error {
	if v, ok := _u.mutation.LeadID(); ok {
		if err := deal.LeadIDValidator(v); err != nil {
			return &ValidationError{Name: "lead_id", err: fmt.Errorf(`ent: validator failed for field "Deal.lead_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PropertyID(); ok {
		if err := deal.PropertyIDValidator(v); err != nil {
			return &ValidationError{Name: "property_id", err: fmt.Errorf(`ent: validator failed for field "Deal.property_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stage(); ok {
		if err := deal.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "Deal.stage": %w`, err)}
		}
	}
	if _u.mutation.LeadCleared() && len(_u.mutation.LeadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Deal.lead"`)
	}
	if _u.mutation.PropertyCleared() && len(_u.mutation.PropertyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Deal.property"`)
	}
	return nil
}

func (_u *DealUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(deal.Table, deal.Columns, sqlgraph.NewFieldSpec(deal.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(deal.FieldStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OfferPrice(); ok {
		_spec.SetField(deal.FieldOfferPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOfferPrice(); ok {
		_spec.AddField(deal.FieldOfferPrice, field.TypeFloat64, value)
	}
	if _u.mutation.OfferPriceCleared() {
		_spec.ClearField(deal.FieldOfferPrice, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ClosedPrice(); ok {
		_spec.SetField(deal.FieldClosedPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedClosedPrice(); ok {
		_spec.AddField(deal.FieldClosedPrice, field.TypeFloat64, value)
	}
	if _u.mutation.ClosedPriceCleared() {
		_spec.ClearField(deal.FieldClosedPrice, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CommissionRate(); ok {
		_spec.SetField(deal.FieldCommissionRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCommissionRate(); ok {
		_spec.AddField(deal.FieldCommissionRate, field.TypeFloat64, value)
	}
	if _u.mutation.CommissionRateCleared() {
		_spec.ClearField(deal.FieldCommissionRate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ExpectedCloseDate(); ok {
		_spec.SetField(deal.FieldExpectedCloseDate, field.TypeTime, value)
	}
	if _u.mutation.ExpectedCloseDateCleared() {
		_spec.ClearField(deal.FieldExpectedCloseDate, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(deal.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.LeadCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LeadIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PropertyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PropertyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ActivitiesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedActivitiesIDs(); len(nodes) > 0 && !_u.mutation.ActivitiesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ActivitiesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DealUpdateOne is the builder for updating a single Deal entity.
type DealUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DealMutation
}

// SetLeadID sets the "lead_id" field.
func (_u *DealUpdateOne) SetLeadID(v int) *DealUpdateOne {
	_u.mutation.SetLeadID(v)
	return _u
}

// SetNillableLeadID sets the "lead_id" field if the given value is not nil.
func (_u *DealUpdateOne) SetNillableLeadID(v *int) *DealUpdateOne {
	if v != nil {
		_u.SetLeadID(*v)
	}
	return _u
}

// SetPropertyID sets the "property_id" field.
func (_u *DealUpdateOne) SetPropertyID(v int) *DealUpdateOne {
	_u.mutation.SetPropertyID(v)
	return _u
}

// SetNillablePropertyID sets the "property_id" field if the given value is not nil.
func (_u *DealUpdateOne) SetNillablePropertyID(v *int) *DealUpdateOne {
	if v != nil {
		_u.SetPropertyID(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *DealUpdateOne) SetStage(v deal.Stage) *DealUpdateOne {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *DealUpdateOne) SetNillableStage(v *deal.Stage) *DealUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetOfferPrice sets the "offer_price" field.
func (_u *DealUpdateOne) SetOfferPrice(v float64) *DealUpdateOne {
	_u.mutation.ResetOfferPrice()
	_u.mutation.SetOfferPrice(v)
	return _u
}

// SetNillableOfferPrice sets the "offer_price" field if the given value is not nil.
func (_u *DealUpdateOne) SetNillableOfferPrice(v *float64) *DealUpdateOne {
	if v != nil {
		_u.SetOfferPrice(*v)
	}
	return _u
}

// AddOfferPrice adds value to the "offer_price" field.
func (_u *DealUpdateOne) AddOfferPrice(v float64) *DealUpdateOne {
	_u.mutation.AddOfferPrice(v)
	return _u
}

// ClearOfferPrice clears the value of the "offer_price" field.
func (_u *DealUpdateOne) ClearOfferPrice() *DealUpdateOne {
	_u.mutation.ClearOfferPrice()
	return _u
}

// SetClosedPrice sets the "closed_price" field.
func (_u *DealUpdateOne) SetClosedPrice(v float64) *DealUpdateOne {
	_u.mutation.ResetClosedPrice()
	_u.mutation.SetClosedPrice(v)
	return _u
}

// SetNillableClosedPrice sets the "closed_price" field if the given value is not nil.
func (_u *DealUpdateOne) SetNillableClosedPrice(v *float64) *DealUpdateOne {
	if v != nil {
		_u.SetClosedPrice(*v)
	}
	return _u
}

// AddClosedPrice adds value to the "closed_price" field.
func (_u *DealUpdateOne) AddClosedPrice(v float64) *DealUpdateOne {
	_u.mutation.AddClosedPrice(v)
	return _u
}

// ClearClosedPrice clears the value of the "closed_price" field.
func (_u *DealUpdateOne) ClearClosedPrice() *DealUpdateOne {
	_u.mutation.ClearClosedPrice()
	return _u
}

// SetCommissionRate sets the "commission_rate" field.
func (_u *DealUpdateOne) SetCommissionRate(v float64) *DealUpdateOne {
	_u.mutation.ResetCommissionRate()
	_u.mutation.SetCommissionRate(v)
	return _u
}

// SetNillableCommissionRate sets the "commission_rate" field if the given value is not nil.
func (_u *DealUpdateOne) SetNillableCommissionRate(v *float64) *DealUpdateOne {
	if v != nil {
		_u.SetCommissionRate(*v)
	}
	return _u
}

// AddCommissionRate adds value to the "commission_rate" field.
func (_u *DealUpdateOne) AddCommissionRate(v float64) *DealUpdateOne {
	_u.mutation.AddCommissionRate(v)
	return _u
}

// ClearCommissionRate clears the value of the "commission_rate" field.
func (_u *DealUpdateOne) ClearCommissionRate() *DealUpdateOne {
	_u.mutation.ClearCommissionRate()
	return _u
}

// SetExpectedCloseDate sets the "expected_close_date" field.
func (_u *DealUpdateOne) SetExpectedCloseDate(v time.Time) *DealUpdateOne {
	_u.mutation.SetExpectedCloseDate(v)
	return _u
}

// SetNillableExpectedCloseDate sets the "expected_close_date" field if the given value is not nil.
func (_u *DealUpdateOne) SetNillableExpectedCloseDate(v *time.Time) *DealUpdateOne {
	if v != nil {
		_u.SetExpectedCloseDate(*v)
	}
	return _u
}

// ClearExpectedCloseDate clears the value of the "expected_close_date" field.
func (_u *DealUpdateOne) ClearExpectedCloseDate() *DealUpdateOne {
	_u.mutation.ClearExpectedCloseDate()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DealUpdateOne) SetUpdatedAt(v time.Time) *DealUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetLead sets the "lead" edge to the Lead entity.
func (_u *DealUpdateOne) SetLead(v *Lead) *DealUpdateOne {
	return _u.SetLeadID(v.ID)
}

// SetProperty sets the "property" edge to the Property entity.
func (_u *DealUpdateOne) SetProperty(v *Property) *DealUpdateOne {
	return _u.SetPropertyID(v.ID)
}

// AddActivityIDs adds the "activities" edge to the Activity entity by IDs.
func (_u *DealUpdateOne) AddActivityIDs(ids ...int) *DealUpdateOne {
	_u.mutation.AddActivityIDs(ids...)
	return _u
}

// AddActivities adds the "activities" edges to the Activity entity.
func (_u *DealUpdateOne) AddActivities(v ...*Activity) *DealUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddActivityIDs(ids...)
}

// Mutation returns the DealMutation object of the builder.
func (_u *DealUpdateOne) Mutation() *DealMutation {
	return _u.mutation
}

// ClearLead clears the "lead" edge to the Lead entity.
func (_u *DealUpdateOne) ClearLead() *DealUpdateOne {
	_u.mutation.ClearLead()
	return _u
}

// ClearProperty clears the "property" edge to the Property entity.
func (_u *DealUpdateOne) ClearProperty() *DealUpdateOne {
	_u.mutation.ClearProperty()
	return _u
}

// ClearActivities clears all "activities" edges to the Activity entity.
func (_u *DealUpdateOne) ClearActivities() *DealUpdateOne {
	_u.mutation.ClearActivities()
	return _u
}

// RemoveActivityIDs removes the "activities" edge to Activity entities by IDs.
func (_u *DealUpdateOne) RemoveActivityIDs(ids ...int) *DealUpdateOne {
	_u.mutation.RemoveActivityIDs(ids...)
	return _u
}

// RemoveActivities removes "activities" edges to Activity entities.
func (_u *DealUpdateOne) RemoveActivities(v ...*Activity) *DealUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveActivityIDs(ids...)
}

// Where appends a list predicates to the DealUpdate builder.
func (_u *DealUpdateOne) Where(ps ...predicate.Deal) *DealUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DealUpdateOne) Select(field string, fields ...string) *DealUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Deal entity.
func (_u *DealUpdateOne) Save(ctx context.Context) (*Deal, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DealUpdateOne) SaveX(ctx context.Context) *Deal {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DealUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DealUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DealUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := deal.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DealUpdateOne) check() error {
	if v, ok := _u.mutation.LeadID(); ok {
		if err := deal.LeadIDValidator(v); err != nil {
			return &ValidationError{Name: "lead_id", err: fmt.Errorf(`ent: validator failed for field "Deal.lead_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PropertyID(); ok {
		if err := deal.PropertyIDValidator(v); err != nil {
			return &ValidationError{Name: "property_id", err: fmt.Errorf(`ent: validator failed for field "Deal.property_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stage(); ok {
		if err := deal.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "Deal.stage": %w`, err)}
		}
	}
	if _u.mutation.LeadCleared() && len(_u.mutation.LeadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Deal.lead"`)
	}
	if _u.mutation.PropertyCleared() && len(_u.mutation.PropertyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Deal.property"`)
	}
	return nil
}

func (_u *DealUpdateOne) sqlSave(ctx context.Context) (_node *Deal, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(deal.Table, deal.Columns, sqlgraph.NewFieldSpec(deal.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Deal.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, deal.FieldID)
		for _, f := range fields {
			if !deal.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != deal.FieldID {
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
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(deal.FieldStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OfferPrice(); ok {
		_spec.SetField(deal.FieldOfferPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOfferPrice(); ok {
		_spec.AddField(deal.FieldOfferPrice, field.TypeFloat64, value)
	}
	if _u.mutation.OfferPriceCleared() {
		_spec.ClearField(deal.FieldOfferPrice, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ClosedPrice(); ok {
		_spec.SetField(deal.FieldClosedPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedClosedPrice(); ok {
		_spec.AddField(deal.FieldClosedPrice, field.TypeFloat64, value)
	}
	if _u.mutation.ClosedPriceCleared() {
		_spec.ClearField(deal.FieldClosedPrice, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CommissionRate(); ok {
		_spec.SetField(deal.FieldCommissionRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCommissionRate(); ok {
		_spec.AddField(deal.FieldCommissionRate, field.TypeFloat64, value)
	}
	if _u.mutation.CommissionRateCleared() {
		_spec.ClearField(deal.FieldCommissionRate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ExpectedCloseDate(); ok {
		_spec.SetField(deal.FieldExpectedCloseDate, field.TypeTime, value)
	}
	if _u.mutation.ExpectedCloseDateCleared() {
		_spec.ClearField(deal.FieldExpectedCloseDate, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(deal.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.LeadCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LeadIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PropertyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PropertyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ActivitiesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedActivitiesIDs(); len(nodes) > 0 && !_u.mutation.ActivitiesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ActivitiesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Deal{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
