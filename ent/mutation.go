// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/estatedesk/backend/ent/activity"
	"github.com/estatedesk/backend/ent/deal"
	"github.com/estatedesk/backend/ent/formsubmission"
	"github.com/estatedesk/backend/ent/lead"
	"github.com/estatedesk/backend/ent/predicate"
	"github.com/estatedesk/backend/ent/property"
	"github.com/estatedesk/backend/ent/user"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeActivity       = "Activity"
	TypeDeal           = "Deal"
	TypeFormSubmission = "FormSubmission"
	TypeLead           = "Lead"
	TypeProperty       = "Property"
	TypeUser           = "User"
)

// ActivityMutation represents an operation that mutates the Activity nodes in the graph.
type ActivityMutation struct {
	config
	op              Op
	typ             string
	id              *int
	_type           *activity.Type
	content         *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	user            *int
	cleareduser     bool
	lead            *int
	clearedlead     bool
	property        *int
	clearedproperty bool
	deal            *int
	cleareddeal     bool
	done            bool
	oldValue        func(context.Context) (*Activity, error)
	predicates      []predicate.Activity
}

var _ ent.Mutation = (*ActivityMutation)(nil)

// activityOption allows management of the mutation configuration using functional options.
type activityOption func(*ActivityMutation)

// newActivityMutation creates new mutation for the Activity entity.
func newActivityMutation(c config, op Op, opts ...activityOption) *ActivityMutation {
	m := &ActivityMutation{
		config:        c,
		op:            op,
		typ:           TypeActivity,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withActivityID sets the ID field of the mutation.
func withActivityID(id int) activityOption {
	return func(m *ActivityMutation) {
		var (
			err   error
			once  sync.Once
			value *Activity
		)
		m.oldValue = func(ctx context.Context) (*Activity, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Activity.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withActivity sets the old Activity of the mutation.
func withActivity(node *Activity) activityOption {
	return func(m *ActivityMutation) {
		m.oldValue = func(context.Context) (*Activity, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ActivityMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ActivityMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ActivityMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ActivityMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Activity.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetType sets the "type" field.
func (m *ActivityMutation) SetType(a activity.Type) {
	m._type = &a
}

// GetType returns the value of the "type" field in the mutation.
func (m *ActivityMutation) GetType() (r activity.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Activity entity.
// If the Activity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityMutation) OldType(ctx context.Context) (v activity.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *ActivityMutation) ResetType() {
	m._type = nil
}

// SetContent sets the "content" field.
func (m *ActivityMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ActivityMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Activity entity.
// If the Activity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *ActivityMutation) ResetContent() {
	m.content = nil
}

// SetUserID sets the "user_id" field.
func (m *ActivityMutation) SetUserID(i int) {
	m.user = &i
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ActivityMutation) UserID() (r int, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Activity entity.
// If the Activity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ActivityMutation) ResetUserID() {
	m.user = nil
}

// SetLeadID sets the "lead_id" field.
func (m *ActivityMutation) SetLeadID(i int) {
	m.lead = &i
}

// LeadID returns the value of the "lead_id" field in the mutation.
func (m *ActivityMutation) LeadID() (r int, exists bool) {
	v := m.lead
	if v == nil {
		return
	}
	return *v, true
}

// OldLeadID returns the old "lead_id" field's value of the Activity entity.
// If the Activity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityMutation) OldLeadID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeadID: %w", err)
	}
	return oldValue.LeadID, nil
}

// ClearLeadID clears the value of the "lead_id" field.
func (m *ActivityMutation) ClearLeadID() {
	m.lead = nil
	m.clearedFields[activity.FieldLeadID] = struct{}{}
}

// LeadIDCleared returns if the "lead_id" field was cleared in this mutation.
func (m *ActivityMutation) LeadIDCleared() bool {
	_, ok := m.clearedFields[activity.FieldLeadID]
	return ok
}

// ResetLeadID resets all changes to the "lead_id" field.
func (m *ActivityMutation) ResetLeadID() {
	m.lead = nil
	delete(m.clearedFields, activity.FieldLeadID)
}

// SetPropertyID sets the "property_id" field.
func (m *ActivityMutation) SetPropertyID(i int) {
	m.property = &i
}

// PropertyID returns the value of the "property_id" field in the mutation.
func (m *ActivityMutation) PropertyID() (r int, exists bool) {
	v := m.property
	if v == nil {
		return
	}
	return *v, true
}

// OldPropertyID returns the old "property_id" field's value of the Activity entity.
// If the Activity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityMutation) OldPropertyID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPropertyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPropertyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPropertyID: %w", err)
	}
	return oldValue.PropertyID, nil
}

// ClearPropertyID clears the value of the "property_id" field.
func (m *ActivityMutation) ClearPropertyID() {
	m.property = nil
	m.clearedFields[activity.FieldPropertyID] = struct{}{}
}

// PropertyIDCleared returns if the "property_id" field was cleared in this mutation.
func (m *ActivityMutation) PropertyIDCleared() bool {
	_, ok := m.clearedFields[activity.FieldPropertyID]
	return ok
}

// ResetPropertyID resets all changes to the "property_id" field.
func (m *ActivityMutation) ResetPropertyID() {
	m.property = nil
	delete(m.clearedFields, activity.FieldPropertyID)
}

// SetDealID sets the "deal_id" field.
func (m *ActivityMutation) SetDealID(i int) {
	m.deal = &i
}

// DealID returns the value of the "deal_id" field in the mutation.
func (m *ActivityMutation) DealID() (r int, exists bool) {
	v := m.deal
	if v == nil {
		return
	}
	return *v, true
}

// OldDealID returns the old "deal_id" field's value of the Activity entity.
// If the Activity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityMutation) OldDealID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDealID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDealID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDealID: %w", err)
	}
	return oldValue.DealID, nil
}

// ClearDealID clears the value of the "deal_id" field.
func (m *ActivityMutation) ClearDealID() {
	m.deal = nil
	m.clearedFields[activity.FieldDealID] = struct{}{}
}

// DealIDCleared returns if the "deal_id" field was cleared in this mutation.
func (m *ActivityMutation) DealIDCleared() bool {
	_, ok := m.clearedFields[activity.FieldDealID]
	return ok
}

// ResetDealID resets all changes to the "deal_id" field.
func (m *ActivityMutation) ResetDealID() {
	m.deal = nil
	delete(m.clearedFields, activity.FieldDealID)
}

// SetCreatedAt sets the "created_at" field.
func (m *ActivityMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ActivityMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Activity entity.
// If the Activity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ActivityMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *ActivityMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[activity.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *ActivityMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *ActivityMutation) UserIDs() (ids []int) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *ActivityMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// ClearLead clears the "lead" edge to the Lead entity.
func (m *ActivityMutation) ClearLead() {
	m.clearedlead = true
	m.clearedFields[activity.FieldLeadID] = struct{}{}
}

// LeadCleared reports if the "lead" edge to the Lead entity was cleared.
func (m *ActivityMutation) LeadCleared() bool {
	return m.LeadIDCleared() || m.clearedlead
}

// LeadIDs returns the "lead" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LeadID instead. It exists only for internal usage by the builders.
func (m *ActivityMutation) LeadIDs() (ids []int) {
	if id := m.lead; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLead resets all changes to the "lead" edge.
func (m *ActivityMutation) ResetLead() {
	m.lead = nil
	m.clearedlead = false
}

// ClearProperty clears the "property" edge to the Property entity.
func (m *ActivityMutation) ClearProperty() {
	m.clearedproperty = true
	m.clearedFields[activity.FieldPropertyID] = struct{}{}
}

// PropertyCleared reports if the "property" edge to the Property entity was cleared.
func (m *ActivityMutation) PropertyCleared() bool {
	return m.PropertyIDCleared() || m.clearedproperty
}

// PropertyIDs returns the "property" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PropertyID instead. It exists only for internal usage by the builders.
func (m *ActivityMutation) PropertyIDs() (ids []int) {
	if id := m.property; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProperty resets all changes to the "property" edge.
func (m *ActivityMutation) ResetProperty() {
	m.property = nil
	m.clearedproperty = false
}

// ClearDeal clears the "deal" edge to the Deal entity.
func (m *ActivityMutation) ClearDeal() {
	m.cleareddeal = true
	m.clearedFields[activity.FieldDealID] = struct{}{}
}

// DealCleared reports if the "deal" edge to the Deal entity was cleared.
func (m *ActivityMutation) DealCleared() bool {
	return m.DealIDCleared() || m.cleareddeal
}

// DealIDs returns the "deal" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DealID instead. It exists only for internal usage by the builders.
func (m *ActivityMutation) DealIDs() (ids []int) {
	if id := m.deal; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDeal resets all changes to the "deal" edge.
func (m *ActivityMutation) ResetDeal() {
	m.deal = nil
	m.cleareddeal = false
}

// Where appends a list predicates to the ActivityMutation builder.
func (m *ActivityMutation) Where(ps ...predicate.Activity) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ActivityMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ActivityMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Activity, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ActivityMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ActivityMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Activity).
func (m *ActivityMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ActivityMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m._type != nil {
		fields = append(fields, activity.FieldType)
	}
	if m.content != nil {
		fields = append(fields, activity.FieldContent)
	}
	if m.user != nil {
		fields = append(fields, activity.FieldUserID)
	}
	if m.lead != nil {
		fields = append(fields, activity.FieldLeadID)
	}
	if m.property != nil {
		fields = append(fields, activity.FieldPropertyID)
	}
	if m.deal != nil {
		fields = append(fields, activity.FieldDealID)
	}
	if m.created_at != nil {
		fields = append(fields, activity.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ActivityMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case activity.FieldType:
		return m.GetType()
	case activity.FieldContent:
		return m.Content()
	case activity.FieldUserID:
		return m.UserID()
	case activity.FieldLeadID:
		return m.LeadID()
	case activity.FieldPropertyID:
		return m.PropertyID()
	case activity.FieldDealID:
		return m.DealID()
	case activity.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ActivityMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case activity.FieldType:
		return m.OldType(ctx)
	case activity.FieldContent:
		return m.OldContent(ctx)
	case activity.FieldUserID:
		return m.OldUserID(ctx)
	case activity.FieldLeadID:
		return m.OldLeadID(ctx)
	case activity.FieldPropertyID:
		return m.OldPropertyID(ctx)
	case activity.FieldDealID:
		return m.OldDealID(ctx)
	case activity.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Activity field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActivityMutation) SetField(name string, value ent.Value) error {
	switch name {
	case activity.FieldType:
		v, ok := value.(activity.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case activity.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case activity.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case activity.FieldLeadID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeadID(v)
		return nil
	case activity.FieldPropertyID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPropertyID(v)
		return nil
	case activity.FieldDealID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDealID(v)
		return nil
	case activity.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Activity field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ActivityMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ActivityMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActivityMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Activity numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ActivityMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(activity.FieldLeadID) {
		fields = append(fields, activity.FieldLeadID)
	}
	if m.FieldCleared(activity.FieldPropertyID) {
		fields = append(fields, activity.FieldPropertyID)
	}
	if m.FieldCleared(activity.FieldDealID) {
		fields = append(fields, activity.FieldDealID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ActivityMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ActivityMutation) ClearField(name string) error {
	switch name {
	case activity.FieldLeadID:
		m.ClearLeadID()
		return nil
	case activity.FieldPropertyID:
		m.ClearPropertyID()
		return nil
	case activity.FieldDealID:
		m.ClearDealID()
		return nil
	}
	return fmt.Errorf("unknown Activity nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ActivityMutation) ResetField(name string) error {
	switch name {
	case activity.FieldType:
		m.ResetType()
		return nil
	case activity.FieldContent:
		m.ResetContent()
		return nil
	case activity.FieldUserID:
		m.ResetUserID()
		return nil
	case activity.FieldLeadID:
		m.ResetLeadID()
		return nil
	case activity.FieldPropertyID:
		m.ResetPropertyID()
		return nil
	case activity.FieldDealID:
		m.ResetDealID()
		return nil
	case activity.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Activity field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ActivityMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.user != nil {
		edges = append(edges, activity.EdgeUser)
	}
	if m.lead != nil {
		edges = append(edges, activity.EdgeLead)
	}
	if m.property != nil {
		edges = append(edges, activity.EdgeProperty)
	}
	if m.deal != nil {
		edges = append(edges, activity.EdgeDeal)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ActivityMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case activity.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	case activity.EdgeLead:
		if id := m.lead; id != nil {
			return []ent.Value{*id}
		}
	case activity.EdgeProperty:
		if id := m.property; id != nil {
			return []ent.Value{*id}
		}
	case activity.EdgeDeal:
		if id := m.deal; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ActivityMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ActivityMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ActivityMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.cleareduser {
		edges = append(edges, activity.EdgeUser)
	}
	if m.clearedlead {
		edges = append(edges, activity.EdgeLead)
	}
	if m.clearedproperty {
		edges = append(edges, activity.EdgeProperty)
	}
	if m.cleareddeal {
		edges = append(edges, activity.EdgeDeal)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ActivityMutation) EdgeCleared(name string) bool {
	switch name {
	case activity.EdgeUser:
		return m.cleareduser
	case activity.EdgeLead:
		return m.clearedlead
	case activity.EdgeProperty:
		return m.clearedproperty
	case activity.EdgeDeal:
		return m.cleareddeal
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ActivityMutation) ClearEdge(name string) error {
	switch name {
	case activity.EdgeUser:
		m.ClearUser()
		return nil
	case activity.EdgeLead:
		m.ClearLead()
		return nil
	case activity.EdgeProperty:
		m.ClearProperty()
		return nil
	case activity.EdgeDeal:
		m.ClearDeal()
		return nil
	}
	return fmt.Errorf("unknown Activity unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ActivityMutation) ResetEdge(name string) error {
	switch name {
	case activity.EdgeUser:
		m.ResetUser()
		return nil
	case activity.EdgeLead:
		m.ResetLead()
		return nil
	case activity.EdgeProperty:
		m.ResetProperty()
		return nil
	case activity.EdgeDeal:
		m.ResetDeal()
		return nil
	}
	return fmt.Errorf("unknown Activity edge %s", name)
}

// DealMutation represents an operation that mutates the Deal nodes in the graph.
type DealMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	stage               *deal.Stage
	offer_price         *float64
	addoffer_price      *float64
	closed_price        *float64
	addclosed_price     *float64
	commission_rate     *float64
	addcommission_rate  *float64
	expected_close_date *time.Time
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	lead                *int
	clearedlead         bool
	property            *int
	clearedproperty     bool
	activities          map[int]struct{}
	removedactivities   map[int]struct{}
	clearedactivities   bool
	done                bool
	oldValue            func(context.Context) (*Deal, error)
	predicates          []predicate.Deal
}

var _ ent.Mutation = (*DealMutation)(nil)

// dealOption allows management of the mutation configuration using functional options.
type dealOption func(*DealMutation)

// newDealMutation creates new mutation for the Deal entity.
func newDealMutation(c config, op Op, opts ...dealOption) *DealMutation {
	m := &DealMutation{
		config:        c,
		op:            op,
		typ:           TypeDeal,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDealID sets the ID field of the mutation.
func withDealID(id int) dealOption {
	return func(m *DealMutation) {
		var (
			err   error
			once  sync.Once
			value *Deal
		)
		m.oldValue = func(ctx context.Context) (*Deal, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Deal.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDeal sets the old Deal of the mutation.
func withDeal(node *Deal) dealOption {
	return func(m *DealMutation) {
		m.oldValue = func(context.Context) (*Deal, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DealMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DealMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DealMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DealMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Deal.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLeadID sets the "lead_id" field.
func (m *DealMutation) SetLeadID(i int) {
	m.lead = &i
}

// LeadID returns the value of the "lead_id" field in the mutation.
func (m *DealMutation) LeadID() (r int, exists bool) {
	v := m.lead
	if v == nil {
		return
	}
	return *v, true
}

// OldLeadID returns the old "lead_id" field's value of the Deal entity.
// If the Deal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DealMutation) OldLeadID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeadID: %w", err)
	}
	return oldValue.LeadID, nil
}

// ResetLeadID resets all changes to the "lead_id" field.
func (m *DealMutation) ResetLeadID() {
	m.lead = nil
}

// SetPropertyID sets the "property_id" field.
func (m *DealMutation) SetPropertyID(i int) {
	m.property = &i
}

// PropertyID returns the value of the "property_id" field in the mutation.
func (m *DealMutation) PropertyID() (r int, exists bool) {
	v := m.property
	if v == nil {
		return
	}
	return *v, true
}

// OldPropertyID returns the old "property_id" field's value of the Deal entity.
// If the Deal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DealMutation) OldPropertyID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPropertyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPropertyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPropertyID: %w", err)
	}
	return oldValue.PropertyID, nil
}

// ResetPropertyID resets all changes to the "property_id" field.
func (m *DealMutation) ResetPropertyID() {
	m.property = nil
}

// SetStage sets the "stage" field.
func (m *DealMutation) SetStage(d deal.Stage) {
	m.stage = &d
}

// Stage returns the value of the "stage" field in the mutation.
func (m *DealMutation) Stage() (r deal.Stage, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the Deal entity.
// If the Deal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DealMutation) OldStage(ctx context.Context) (v deal.Stage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// ResetStage resets all changes to the "stage" field.
func (m *DealMutation) ResetStage() {
	m.stage = nil
}

// SetOfferPrice sets the "offer_price" field.
func (m *DealMutation) SetOfferPrice(f float64) {
	m.offer_price = &f
	m.addoffer_price = nil
}

// OfferPrice returns the value of the "offer_price" field in the mutation.
func (m *DealMutation) OfferPrice() (r float64, exists bool) {
	v := m.offer_price
	if v == nil {
		return
	}
	return *v, true
}

// OldOfferPrice returns the old "offer_price" field's value of the Deal entity.
// If the Deal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DealMutation) OldOfferPrice(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOfferPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOfferPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOfferPrice: %w", err)
	}
	return oldValue.OfferPrice, nil
}

// AddOfferPrice adds f to the "offer_price" field.
func (m *DealMutation) AddOfferPrice(f float64) {
	if m.addoffer_price != nil {
		*m.addoffer_price += f
	} else {
		m.addoffer_price = &f
	}
}

// AddedOfferPrice returns the value that was added to the "offer_price" field in this mutation.
func (m *DealMutation) AddedOfferPrice() (r float64, exists bool) {
	v := m.addoffer_price
	if v == nil {
		return
	}
	return *v, true
}

// ClearOfferPrice clears the value of the "offer_price" field.
func (m *DealMutation) ClearOfferPrice() {
	m.offer_price = nil
	m.addoffer_price = nil
	m.clearedFields[deal.FieldOfferPrice] = struct{}{}
}

// OfferPriceCleared returns if the "offer_price" field was cleared in this mutation.
func (m *DealMutation) OfferPriceCleared() bool {
	_, ok := m.clearedFields[deal.FieldOfferPrice]
	return ok
}

// ResetOfferPrice resets all changes to the "offer_price" field.
func (m *DealMutation) ResetOfferPrice() {
	m.offer_price = nil
	m.addoffer_price = nil
	delete(m.clearedFields, deal.FieldOfferPrice)
}

// SetClosedPrice sets the "closed_price" field.
func (m *DealMutation) SetClosedPrice(f float64) {
	m.closed_price = &f
	m.addclosed_price = nil
}

// ClosedPrice returns the value of the "closed_price" field in the mutation.
func (m *DealMutation) ClosedPrice() (r float64, exists bool) {
	v := m.closed_price
	if v == nil {
		return
	}
	return *v, true
}

// OldClosedPrice returns the old "closed_price" field's value of the Deal entity.
// If the Deal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DealMutation) OldClosedPrice(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClosedPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClosedPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClosedPrice: %w", err)
	}
	return oldValue.ClosedPrice, nil
}

// AddClosedPrice adds f to the "closed_price" field.
func (m *DealMutation) AddClosedPrice(f float64) {
	if m.addclosed_price != nil {
		*m.addclosed_price += f
	} else {
		m.addclosed_price = &f
	}
}

// AddedClosedPrice returns the value that was added to the "closed_price" field in this mutation.
func (m *DealMutation) AddedClosedPrice() (r float64, exists bool) {
	v := m.addclosed_price
	if v == nil {
		return
	}
	return *v, true
}

// ClearClosedPrice clears the value of the "closed_price" field.
func (m *DealMutation) ClearClosedPrice() {
	m.closed_price = nil
	m.addclosed_price = nil
	m.clearedFields[deal.FieldClosedPrice] = struct{}{}
}

// ClosedPriceCleared returns if the "closed_price" field was cleared in this mutation.
func (m *DealMutation) ClosedPriceCleared() bool {
	_, ok := m.clearedFields[deal.FieldClosedPrice]
	return ok
}

// ResetClosedPrice resets all changes to the "closed_price" field.
func (m *DealMutation) ResetClosedPrice() {
	m.closed_price = nil
	m.addclosed_price = nil
	delete(m.clearedFields, deal.FieldClosedPrice)
}

// SetCommissionRate sets the "commission_rate" field.
func (m *DealMutation) SetCommissionRate(f float64) {
	m.commission_rate = &f
	m.addcommission_rate = nil
}

// CommissionRate returns the value of the "commission_rate" field in the mutation.
func (m *DealMutation) CommissionRate() (r float64, exists bool) {
	v := m.commission_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldCommissionRate returns the old "commission_rate" field's value of the Deal entity.
// If the Deal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DealMutation) OldCommissionRate(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommissionRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommissionRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommissionRate: %w", err)
	}
	return oldValue.CommissionRate, nil
}

// AddCommissionRate adds f to the "commission_rate" field.
func (m *DealMutation) AddCommissionRate(f float64) {
	if m.addcommission_rate != nil {
		*m.addcommission_rate += f
	} else {
		m.addcommission_rate = &f
	}
}

// AddedCommissionRate returns the value that was added to the "commission_rate" field in this mutation.
func (m *DealMutation) AddedCommissionRate() (r float64, exists bool) {
	v := m.addcommission_rate
	if v == nil {
		return
	}
	return *v, true
}

// ClearCommissionRate clears the value of the "commission_rate" field.
func (m *DealMutation) ClearCommissionRate() {
	m.commission_rate = nil
	m.addcommission_rate = nil
	m.clearedFields[deal.FieldCommissionRate] = struct{}{}
}

// CommissionRateCleared returns if the "commission_rate" field was cleared in this mutation.
func (m *DealMutation) CommissionRateCleared() bool {
	_, ok := m.clearedFields[deal.FieldCommissionRate]
	return ok
}

// ResetCommissionRate resets all changes to the "commission_rate" field.
func (m *DealMutation) ResetCommissionRate() {
	m.commission_rate = nil
	m.addcommission_rate = nil
	delete(m.clearedFields, deal.FieldCommissionRate)
}

// SetExpectedCloseDate sets the "expected_close_date" field.
func (m *DealMutation) SetExpectedCloseDate(t time.Time) {
	m.expected_close_date = &t
}

// ExpectedCloseDate returns the value of the "expected_close_date" field in the mutation.
func (m *DealMutation) ExpectedCloseDate() (r time.Time, exists bool) {
	v := m.expected_close_date
	if v == nil {
		return
	}
	return *v, true
}

// OldExpectedCloseDate returns the old "expected_close_date" field's value of the Deal entity.
// If the Deal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DealMutation) OldExpectedCloseDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpectedCloseDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpectedCloseDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpectedCloseDate: %w", err)
	}
	return oldValue.ExpectedCloseDate, nil
}

// ClearExpectedCloseDate clears the value of the "expected_close_date" field.
func (m *DealMutation) ClearExpectedCloseDate() {
	m.expected_close_date = nil
	m.clearedFields[deal.FieldExpectedCloseDate] = struct{}{}
}

// ExpectedCloseDateCleared returns if the "expected_close_date" field was cleared in this mutation.
func (m *DealMutation) ExpectedCloseDateCleared() bool {
	_, ok := m.clearedFields[deal.FieldExpectedCloseDate]
	return ok
}

// ResetExpectedCloseDate resets all changes to the "expected_close_date" field.
func (m *DealMutation) ResetExpectedCloseDate() {
	m.expected_close_date = nil
	delete(m.clearedFields, deal.FieldExpectedCloseDate)
}

// SetCreatedAt sets the "created_at" field.
func (m *DealMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DealMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Deal entity.
// If the Deal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DealMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DealMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DealMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DealMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Deal entity.
// If the Deal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DealMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DealMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearLead clears the "lead" edge to the Lead entity.
func (m *DealMutation) ClearLead() {
	m.clearedlead = true
	m.clearedFields[deal.FieldLeadID] = struct{}{}
}

// LeadCleared reports if the "lead" edge to the Lead entity was cleared.
func (m *DealMutation) LeadCleared() bool {
	return m.clearedlead
}

// LeadIDs returns the "lead" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LeadID instead. It exists only for internal usage by the builders.
func (m *DealMutation) LeadIDs() (ids []int) {
	if id := m.lead; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLead resets all changes to the "lead" edge.
func (m *DealMutation) ResetLead() {
	m.lead = nil
	m.clearedlead = false
}

// ClearProperty clears the "property" edge to the Property entity.
func (m *DealMutation) ClearProperty() {
	m.clearedproperty = true
	m.clearedFields[deal.FieldPropertyID] = struct{}{}
}

// PropertyCleared reports if the "property" edge to the Property entity was cleared.
func (m *DealMutation) PropertyCleared() bool {
	return m.clearedproperty
}

// PropertyIDs returns the "property" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PropertyID instead. It exists only for internal usage by the builders.
func (m *DealMutation) PropertyIDs() (ids []int) {
	if id := m.property; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProperty resets all changes to the "property" edge.
func (m *DealMutation) ResetProperty() {
	m.property = nil
	m.clearedproperty = false
}

// AddActivityIDs adds the "activities" edge to the Activity entity by ids.
func (m *DealMutation) AddActivityIDs(ids ...int) {
	if m.activities == nil {
		m.activities = make(map[int]struct{})
	}
	for i := range ids {
		m.activities[ids[i]] = struct{}{}
	}
}

// ClearActivities clears the "activities" edge to the Activity entity.
func (m *DealMutation) ClearActivities() {
	m.clearedactivities = true
}

// ActivitiesCleared reports if the "activities" edge to the Activity entity was cleared.
func (m *DealMutation) ActivitiesCleared() bool {
	return m.clearedactivities
}

// RemoveActivityIDs removes the "activities" edge to the Activity entity by IDs.
func (m *DealMutation) RemoveActivityIDs(ids ...int) {
	if m.removedactivities == nil {
		m.removedactivities = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.activities, ids[i])
		m.removedactivities[ids[i]] = struct{}{}
	}
}

// RemovedActivities returns the removed IDs of the "activities" edge to the Activity entity.
func (m *DealMutation) RemovedActivitiesIDs() (ids []int) {
	for id := range m.removedactivities {
		ids = append(ids, id)
	}
	return
}

// ActivitiesIDs returns the "activities" edge IDs in the mutation.
func (m *DealMutation) ActivitiesIDs() (ids []int) {
	for id := range m.activities {
		ids = append(ids, id)
	}
	return
}

// ResetActivities resets all changes to the "activities" edge.
func (m *DealMutation) ResetActivities() {
	m.activities = nil
	m.clearedactivities = false
	m.removedactivities = nil
}

// Where appends a list predicates to the DealMutation builder.
func (m *DealMutation) Where(ps ...predicate.Deal) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DealMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DealMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Deal, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DealMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DealMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Deal).
func (m *DealMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DealMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.lead != nil {
		fields = append(fields, deal.FieldLeadID)
	}
	if m.property != nil {
		fields = append(fields, deal.FieldPropertyID)
	}
	if m.stage != nil {
		fields = append(fields, deal.FieldStage)
	}
	if m.offer_price != nil {
		fields = append(fields, deal.FieldOfferPrice)
	}
	if m.closed_price != nil {
		fields = append(fields, deal.FieldClosedPrice)
	}
	if m.commission_rate != nil {
		fields = append(fields, deal.FieldCommissionRate)
	}
	if m.expected_close_date != nil {
		fields = append(fields, deal.FieldExpectedCloseDate)
	}
	if m.created_at != nil {
		fields = append(fields, deal.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, deal.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DealMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case deal.FieldLeadID:
		return m.LeadID()
	case deal.FieldPropertyID:
		return m.PropertyID()
	case deal.FieldStage:
		return m.Stage()
	case deal.FieldOfferPrice:
		return m.OfferPrice()
	case deal.FieldClosedPrice:
		return m.ClosedPrice()
	case deal.FieldCommissionRate:
		return m.CommissionRate()
	case deal.FieldExpectedCloseDate:
		return m.ExpectedCloseDate()
	case deal.FieldCreatedAt:
		return m.CreatedAt()
	case deal.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DealMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case deal.FieldLeadID:
		return m.OldLeadID(ctx)
	case deal.FieldPropertyID:
		return m.OldPropertyID(ctx)
	case deal.FieldStage:
		return m.OldStage(ctx)
	case deal.FieldOfferPrice:
		return m.OldOfferPrice(ctx)
	case deal.FieldClosedPrice:
		return m.OldClosedPrice(ctx)
	case deal.FieldCommissionRate:
		return m.OldCommissionRate(ctx)
	case deal.FieldExpectedCloseDate:
		return m.OldExpectedCloseDate(ctx)
	case deal.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case deal.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Deal field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DealMutation) SetField(name string, value ent.Value) error {
	switch name {
	case deal.FieldLeadID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeadID(v)
		return nil
	case deal.FieldPropertyID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPropertyID(v)
		return nil
	case deal.FieldStage:
		v, ok := value.(deal.Stage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case deal.FieldOfferPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOfferPrice(v)
		return nil
	case deal.FieldClosedPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClosedPrice(v)
		return nil
	case deal.FieldCommissionRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommissionRate(v)
		return nil
	case deal.FieldExpectedCloseDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpectedCloseDate(v)
		return nil
	case deal.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case deal.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Deal field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DealMutation) AddedFields() []string {
	var fields []string
	if m.addoffer_price != nil {
		fields = append(fields, deal.FieldOfferPrice)
	}
	if m.addclosed_price != nil {
		fields = append(fields, deal.FieldClosedPrice)
	}
	if m.addcommission_rate != nil {
		fields = append(fields, deal.FieldCommissionRate)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DealMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case deal.FieldOfferPrice:
		return m.AddedOfferPrice()
	case deal.FieldClosedPrice:
		return m.AddedClosedPrice()
	case deal.FieldCommissionRate:
		return m.AddedCommissionRate()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DealMutation) AddField(name string, value ent.Value) error {
	switch name {
	case deal.FieldOfferPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOfferPrice(v)
		return nil
	case deal.FieldClosedPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddClosedPrice(v)
		return nil
	case deal.FieldCommissionRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCommissionRate(v)
		return nil
	}
	return fmt.Errorf("unknown Deal numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DealMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(deal.FieldOfferPrice) {
		fields = append(fields, deal.FieldOfferPrice)
	}
	if m.FieldCleared(deal.FieldClosedPrice) {
		fields = append(fields, deal.FieldClosedPrice)
	}
	if m.FieldCleared(deal.FieldCommissionRate) {
		fields = append(fields, deal.FieldCommissionRate)
	}
	if m.FieldCleared(deal.FieldExpectedCloseDate) {
		fields = append(fields, deal.FieldExpectedCloseDate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DealMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DealMutation) ClearField(name string) error {
	switch name {
	case deal.FieldOfferPrice:
		m.ClearOfferPrice()
		return nil
	case deal.FieldClosedPrice:
		m.ClearClosedPrice()
		return nil
	case deal.FieldCommissionRate:
		m.ClearCommissionRate()
		return nil
	case deal.FieldExpectedCloseDate:
		m.ClearExpectedCloseDate()
		return nil
	}
	return fmt.Errorf("unknown Deal nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DealMutation) ResetField(name string) error {
	switch name {
	case deal.FieldLeadID:
		m.ResetLeadID()
		return nil
	case deal.FieldPropertyID:
		m.ResetPropertyID()
		return nil
	case deal.FieldStage:
		m.ResetStage()
		return nil
	case deal.FieldOfferPrice:
		m.ResetOfferPrice()
		return nil
	case deal.FieldClosedPrice:
		m.ResetClosedPrice()
		return nil
	case deal.FieldCommissionRate:
		m.ResetCommissionRate()
		return nil
	case deal.FieldExpectedCloseDate:
		m.ResetExpectedCloseDate()
		return nil
	case deal.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case deal.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Deal field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DealMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.lead != nil {
		edges = append(edges, deal.EdgeLead)
	}
	if m.property != nil {
		edges = append(edges, deal.EdgeProperty)
	}
	if m.activities != nil {
		edges = append(edges, deal.EdgeActivities)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DealMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case deal.EdgeLead:
		if id := m.lead; id != nil {
			return []ent.Value{*id}
		}
	case deal.EdgeProperty:
		if id := m.property; id != nil {
			return []ent.Value{*id}
		}
	case deal.EdgeActivities:
		ids := make([]ent.Value, 0, len(m.activities))
		for id := range m.activities {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DealMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedactivities != nil {
		edges = append(edges, deal.EdgeActivities)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DealMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case deal.EdgeActivities:
		ids := make([]ent.Value, 0, len(m.removedactivities))
		for id := range m.removedactivities {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DealMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedlead {
		edges = append(edges, deal.EdgeLead)
	}
	if m.clearedproperty {
		edges = append(edges, deal.EdgeProperty)
	}
	if m.clearedactivities {
		edges = append(edges, deal.EdgeActivities)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DealMutation) EdgeCleared(name string) bool {
	switch name {
	case deal.EdgeLead:
		return m.clearedlead
	case deal.EdgeProperty:
		return m.clearedproperty
	case deal.EdgeActivities:
		return m.clearedactivities
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DealMutation) ClearEdge(name string) error {
	switch name {
	case deal.EdgeLead:
		m.ClearLead()
		return nil
	case deal.EdgeProperty:
		m.ClearProperty()
		return nil
	}
	return fmt.Errorf("unknown Deal unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DealMutation) ResetEdge(name string) error {
	switch name {
	case deal.EdgeLead:
		m.ResetLead()
		return nil
	case deal.EdgeProperty:
		m.ResetProperty()
		return nil
	case deal.EdgeActivities:
		m.ResetActivities()
		return nil
	}
	return fmt.Errorf("unknown Deal edge %s", name)
}

// FormSubmissionMutation represents an operation that mutates the FormSubmission nodes in the graph.
type FormSubmissionMutation struct {
	config
	op              Op
	typ             string
	id              *int
	full_name       *string
	email           *string
	phone           *string
	message         *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	property        *int
	clearedproperty bool
	lead            *int
	clearedlead     bool
	done            bool
	oldValue        func(context.Context) (*FormSubmission, error)
	predicates      []predicate.FormSubmission
}

var _ ent.Mutation = (*FormSubmissionMutation)(nil)

// formsubmissionOption allows management of the mutation configuration using functional options.
type formsubmissionOption func(*FormSubmissionMutation)

// newFormSubmissionMutation creates new mutation for the FormSubmission entity.
func newFormSubmissionMutation(c config, op Op, opts ...formsubmissionOption) *FormSubmissionMutation {
	m := &FormSubmissionMutation{
		config:        c,
		op:            op,
		typ:           TypeFormSubmission,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFormSubmissionID sets the ID field of the mutation.
func withFormSubmissionID(id int) formsubmissionOption {
	return func(m *FormSubmissionMutation) {
		var (
			err   error
			once  sync.Once
			value *FormSubmission
		)
		m.oldValue = func(ctx context.Context) (*FormSubmission, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FormSubmission.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFormSubmission sets the old FormSubmission of the mutation.
func withFormSubmission(node *FormSubmission) formsubmissionOption {
	return func(m *FormSubmissionMutation) {
		m.oldValue = func(context.Context) (*FormSubmission, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FormSubmissionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FormSubmissionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FormSubmissionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FormSubmissionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FormSubmission.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPropertyID sets the "property_id" field.
func (m *FormSubmissionMutation) SetPropertyID(i int) {
	m.property = &i
}

// PropertyID returns the value of the "property_id" field in the mutation.
func (m *FormSubmissionMutation) PropertyID() (r int, exists bool) {
	v := m.property
	if v == nil {
		return
	}
	return *v, true
}

// OldPropertyID returns the old "property_id" field's value of the FormSubmission entity.
// If the FormSubmission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FormSubmissionMutation) OldPropertyID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPropertyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPropertyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPropertyID: %w", err)
	}
	return oldValue.PropertyID, nil
}

// ResetPropertyID resets all changes to the "property_id" field.
func (m *FormSubmissionMutation) ResetPropertyID() {
	m.property = nil
}

// SetFullName sets the "full_name" field.
func (m *FormSubmissionMutation) SetFullName(s string) {
	m.full_name = &s
}

// FullName returns the value of the "full_name" field in the mutation.
func (m *FormSubmissionMutation) FullName() (r string, exists bool) {
	v := m.full_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFullName returns the old "full_name" field's value of the FormSubmission entity.
// If the FormSubmission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FormSubmissionMutation) OldFullName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullName: %w", err)
	}
	return oldValue.FullName, nil
}

// ResetFullName resets all changes to the "full_name" field.
func (m *FormSubmissionMutation) ResetFullName() {
	m.full_name = nil
}

// SetEmail sets the "email" field.
func (m *FormSubmissionMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *FormSubmissionMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the FormSubmission entity.
// If the FormSubmission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FormSubmissionMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *FormSubmissionMutation) ResetEmail() {
	m.email = nil
}

// SetPhone sets the "phone" field.
func (m *FormSubmissionMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *FormSubmissionMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the FormSubmission entity.
// If the FormSubmission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FormSubmissionMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *FormSubmissionMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[formsubmission.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *FormSubmissionMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[formsubmission.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *FormSubmissionMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, formsubmission.FieldPhone)
}

// SetMessage sets the "message" field.
func (m *FormSubmissionMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *FormSubmissionMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the FormSubmission entity.
// If the FormSubmission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FormSubmissionMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ClearMessage clears the value of the "message" field.
func (m *FormSubmissionMutation) ClearMessage() {
	m.message = nil
	m.clearedFields[formsubmission.FieldMessage] = struct{}{}
}

// MessageCleared returns if the "message" field was cleared in this mutation.
func (m *FormSubmissionMutation) MessageCleared() bool {
	_, ok := m.clearedFields[formsubmission.FieldMessage]
	return ok
}

// ResetMessage resets all changes to the "message" field.
func (m *FormSubmissionMutation) ResetMessage() {
	m.message = nil
	delete(m.clearedFields, formsubmission.FieldMessage)
}

// SetLeadID sets the "lead_id" field.
func (m *FormSubmissionMutation) SetLeadID(i int) {
	m.lead = &i
}

// LeadID returns the value of the "lead_id" field in the mutation.
func (m *FormSubmissionMutation) LeadID() (r int, exists bool) {
	v := m.lead
	if v == nil {
		return
	}
	return *v, true
}

// OldLeadID returns the old "lead_id" field's value of the FormSubmission entity.
// If the FormSubmission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FormSubmissionMutation) OldLeadID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeadID: %w", err)
	}
	return oldValue.LeadID, nil
}

// ResetLeadID resets all changes to the "lead_id" field.
func (m *FormSubmissionMutation) ResetLeadID() {
	m.lead = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *FormSubmissionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FormSubmissionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FormSubmission entity.
// If the FormSubmission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FormSubmissionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FormSubmissionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearProperty clears the "property" edge to the Property entity.
func (m *FormSubmissionMutation) ClearProperty() {
	m.clearedproperty = true
	m.clearedFields[formsubmission.FieldPropertyID] = struct{}{}
}

// PropertyCleared reports if the "property" edge to the Property entity was cleared.
func (m *FormSubmissionMutation) PropertyCleared() bool {
	return m.clearedproperty
}

// PropertyIDs returns the "property" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PropertyID instead. It exists only for internal usage by the builders.
func (m *FormSubmissionMutation) PropertyIDs() (ids []int) {
	if id := m.property; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProperty resets all changes to the "property" edge.
func (m *FormSubmissionMutation) ResetProperty() {
	m.property = nil
	m.clearedproperty = false
}

// ClearLead clears the "lead" edge to the Lead entity.
func (m *FormSubmissionMutation) ClearLead() {
	m.clearedlead = true
	m.clearedFields[formsubmission.FieldLeadID] = struct{}{}
}

// LeadCleared reports if the "lead" edge to the Lead entity was cleared.
func (m *FormSubmissionMutation) LeadCleared() bool {
	return m.clearedlead
}

// LeadIDs returns the "lead" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LeadID instead. It exists only for internal usage by the builders.
func (m *FormSubmissionMutation) LeadIDs() (ids []int) {
	if id := m.lead; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLead resets all changes to the "lead" edge.
func (m *FormSubmissionMutation) ResetLead() {
	m.lead = nil
	m.clearedlead = false
}

// Where appends a list predicates to the FormSubmissionMutation builder.
func (m *FormSubmissionMutation) Where(ps ...predicate.FormSubmission) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FormSubmissionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FormSubmissionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FormSubmission, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FormSubmissionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FormSubmissionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FormSubmission).
func (m *FormSubmissionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FormSubmissionMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.property != nil {
		fields = append(fields, formsubmission.FieldPropertyID)
	}
	if m.full_name != nil {
		fields = append(fields, formsubmission.FieldFullName)
	}
	if m.email != nil {
		fields = append(fields, formsubmission.FieldEmail)
	}
	if m.phone != nil {
		fields = append(fields, formsubmission.FieldPhone)
	}
	if m.message != nil {
		fields = append(fields, formsubmission.FieldMessage)
	}
	if m.lead != nil {
		fields = append(fields, formsubmission.FieldLeadID)
	}
	if m.created_at != nil {
		fields = append(fields, formsubmission.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FormSubmissionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case formsubmission.FieldPropertyID:
		return m.PropertyID()
	case formsubmission.FieldFullName:
		return m.FullName()
	case formsubmission.FieldEmail:
		return m.Email()
	case formsubmission.FieldPhone:
		return m.Phone()
	case formsubmission.FieldMessage:
		return m.Message()
	case formsubmission.FieldLeadID:
		return m.LeadID()
	case formsubmission.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FormSubmissionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case formsubmission.FieldPropertyID:
		return m.OldPropertyID(ctx)
	case formsubmission.FieldFullName:
		return m.OldFullName(ctx)
	case formsubmission.FieldEmail:
		return m.OldEmail(ctx)
	case formsubmission.FieldPhone:
		return m.OldPhone(ctx)
	case formsubmission.FieldMessage:
		return m.OldMessage(ctx)
	case formsubmission.FieldLeadID:
		return m.OldLeadID(ctx)
	case formsubmission.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FormSubmission field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FormSubmissionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case formsubmission.FieldPropertyID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPropertyID(v)
		return nil
	case formsubmission.FieldFullName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullName(v)
		return nil
	case formsubmission.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case formsubmission.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case formsubmission.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case formsubmission.FieldLeadID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeadID(v)
		return nil
	case formsubmission.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FormSubmission field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FormSubmissionMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FormSubmissionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FormSubmissionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown FormSubmission numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FormSubmissionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(formsubmission.FieldPhone) {
		fields = append(fields, formsubmission.FieldPhone)
	}
	if m.FieldCleared(formsubmission.FieldMessage) {
		fields = append(fields, formsubmission.FieldMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FormSubmissionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FormSubmissionMutation) ClearField(name string) error {
	switch name {
	case formsubmission.FieldPhone:
		m.ClearPhone()
		return nil
	case formsubmission.FieldMessage:
		m.ClearMessage()
		return nil
	}
	return fmt.Errorf("unknown FormSubmission nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FormSubmissionMutation) ResetField(name string) error {
	switch name {
	case formsubmission.FieldPropertyID:
		m.ResetPropertyID()
		return nil
	case formsubmission.FieldFullName:
		m.ResetFullName()
		return nil
	case formsubmission.FieldEmail:
		m.ResetEmail()
		return nil
	case formsubmission.FieldPhone:
		m.ResetPhone()
		return nil
	case formsubmission.FieldMessage:
		m.ResetMessage()
		return nil
	case formsubmission.FieldLeadID:
		m.ResetLeadID()
		return nil
	case formsubmission.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown FormSubmission field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FormSubmissionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.property != nil {
		edges = append(edges, formsubmission.EdgeProperty)
	}
	if m.lead != nil {
		edges = append(edges, formsubmission.EdgeLead)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FormSubmissionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case formsubmission.EdgeProperty:
		if id := m.property; id != nil {
			return []ent.Value{*id}
		}
	case formsubmission.EdgeLead:
		if id := m.lead; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FormSubmissionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FormSubmissionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FormSubmissionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedproperty {
		edges = append(edges, formsubmission.EdgeProperty)
	}
	if m.clearedlead {
		edges = append(edges, formsubmission.EdgeLead)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FormSubmissionMutation) EdgeCleared(name string) bool {
	switch name {
	case formsubmission.EdgeProperty:
		return m.clearedproperty
	case formsubmission.EdgeLead:
		return m.clearedlead
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FormSubmissionMutation) ClearEdge(name string) error {
	switch name {
	case formsubmission.EdgeProperty:
		m.ClearProperty()
		return nil
	case formsubmission.EdgeLead:
		m.ClearLead()
		return nil
	}
	return fmt.Errorf("unknown FormSubmission unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FormSubmissionMutation) ResetEdge(name string) error {
	switch name {
	case formsubmission.EdgeProperty:
		m.ResetProperty()
		return nil
	case formsubmission.EdgeLead:
		m.ResetLead()
		return nil
	}
	return fmt.Errorf("unknown FormSubmission edge %s", name)
}

// LeadMutation represents an operation that mutates the Lead nodes in the graph.
type LeadMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	full_name          *string
	email              *string
	phone              *string
	source             *lead.Source
	status             *lead.Status
	budget_min         *float64
	addbudget_min      *float64
	budget_max         *float64
	addbudget_max      *float64
	notes              *string
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	assignee           *int
	clearedassignee    bool
	deals              map[int]struct{}
	removeddeals       map[int]struct{}
	cleareddeals       bool
	activities         map[int]struct{}
	removedactivities  map[int]struct{}
	clearedactivities  bool
	submissions        map[int]struct{}
	removedsubmissions map[int]struct{}
	clearedsubmissions bool
	done               bool
	oldValue           func(context.Context) (*Lead, error)
	predicates         []predicate.Lead
}

var _ ent.Mutation = (*LeadMutation)(nil)

// leadOption allows management of the mutation configuration using functional options.
type leadOption func(*LeadMutation)

// newLeadMutation creates new mutation for the Lead entity.
func newLeadMutation(c config, op Op, opts ...leadOption) *LeadMutation {
	m := &LeadMutation{
		config:        c,
		op:            op,
		typ:           TypeLead,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLeadID sets the ID field of the mutation.
func withLeadID(id int) leadOption {
	return func(m *LeadMutation) {
		var (
			err   error
			once  sync.Once
			value *Lead
		)
		m.oldValue = func(ctx context.Context) (*Lead, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Lead.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLead sets the old Lead of the mutation.
func withLead(node *Lead) leadOption {
	return func(m *LeadMutation) {
		m.oldValue = func(context.Context) (*Lead, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LeadMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LeadMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LeadMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LeadMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Lead.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFullName sets the "full_name" field.
func (m *LeadMutation) SetFullName(s string) {
	m.full_name = &s
}

// FullName returns the value of the "full_name" field in the mutation.
func (m *LeadMutation) FullName() (r string, exists bool) {
	v := m.full_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFullName returns the old "full_name" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldFullName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullName: %w", err)
	}
	return oldValue.FullName, nil
}

// ResetFullName resets all changes to the "full_name" field.
func (m *LeadMutation) ResetFullName() {
	m.full_name = nil
}

// SetEmail sets the "email" field.
func (m *LeadMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *LeadMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *LeadMutation) ResetEmail() {
	m.email = nil
}

// SetPhone sets the "phone" field.
func (m *LeadMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *LeadMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *LeadMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[lead.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *LeadMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[lead.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *LeadMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, lead.FieldPhone)
}

// SetSource sets the "source" field.
func (m *LeadMutation) SetSource(l lead.Source) {
	m.source = &l
}

// Source returns the value of the "source" field in the mutation.
func (m *LeadMutation) Source() (r lead.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldSource(ctx context.Context) (v lead.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *LeadMutation) ResetSource() {
	m.source = nil
}

// SetStatus sets the "status" field.
func (m *LeadMutation) SetStatus(l lead.Status) {
	m.status = &l
}

// Status returns the value of the "status" field in the mutation.
func (m *LeadMutation) Status() (r lead.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldStatus(ctx context.Context) (v lead.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *LeadMutation) ResetStatus() {
	m.status = nil
}

// SetBudgetMin sets the "budget_min" field.
func (m *LeadMutation) SetBudgetMin(f float64) {
	m.budget_min = &f
	m.addbudget_min = nil
}

// BudgetMin returns the value of the "budget_min" field in the mutation.
func (m *LeadMutation) BudgetMin() (r float64, exists bool) {
	v := m.budget_min
	if v == nil {
		return
	}
	return *v, true
}

// OldBudgetMin returns the old "budget_min" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldBudgetMin(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBudgetMin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBudgetMin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBudgetMin: %w", err)
	}
	return oldValue.BudgetMin, nil
}

// AddBudgetMin adds f to the "budget_min" field.
func (m *LeadMutation) AddBudgetMin(f float64) {
	if m.addbudget_min != nil {
		*m.addbudget_min += f
	} else {
		m.addbudget_min = &f
	}
}

// AddedBudgetMin returns the value that was added to the "budget_min" field in this mutation.
func (m *LeadMutation) AddedBudgetMin() (r float64, exists bool) {
	v := m.addbudget_min
	if v == nil {
		return
	}
	return *v, true
}

// ClearBudgetMin clears the value of the "budget_min" field.
func (m *LeadMutation) ClearBudgetMin() {
	m.budget_min = nil
	m.addbudget_min = nil
	m.clearedFields[lead.FieldBudgetMin] = struct{}{}
}

// BudgetMinCleared returns if the "budget_min" field was cleared in this mutation.
func (m *LeadMutation) BudgetMinCleared() bool {
	_, ok := m.clearedFields[lead.FieldBudgetMin]
	return ok
}

// ResetBudgetMin resets all changes to the "budget_min" field.
func (m *LeadMutation) ResetBudgetMin() {
	m.budget_min = nil
	m.addbudget_min = nil
	delete(m.clearedFields, lead.FieldBudgetMin)
}

// SetBudgetMax sets the "budget_max" field.
func (m *LeadMutation) SetBudgetMax(f float64) {
	m.budget_max = &f
	m.addbudget_max = nil
}

// BudgetMax returns the value of the "budget_max" field in the mutation.
func (m *LeadMutation) BudgetMax() (r float64, exists bool) {
	v := m.budget_max
	if v == nil {
		return
	}
	return *v, true
}

// OldBudgetMax returns the old "budget_max" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldBudgetMax(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBudgetMax is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBudgetMax requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBudgetMax: %w", err)
	}
	return oldValue.BudgetMax, nil
}

// AddBudgetMax adds f to the "budget_max" field.
func (m *LeadMutation) AddBudgetMax(f float64) {
	if m.addbudget_max != nil {
		*m.addbudget_max += f
	} else {
		m.addbudget_max = &f
	}
}

// AddedBudgetMax returns the value that was added to the "budget_max" field in this mutation.
func (m *LeadMutation) AddedBudgetMax() (r float64, exists bool) {
	v := m.addbudget_max
	if v == nil {
		return
	}
	return *v, true
}

// ClearBudgetMax clears the value of the "budget_max" field.
func (m *LeadMutation) ClearBudgetMax() {
	m.budget_max = nil
	m.addbudget_max = nil
	m.clearedFields[lead.FieldBudgetMax] = struct{}{}
}

// BudgetMaxCleared returns if the "budget_max" field was cleared in this mutation.
func (m *LeadMutation) BudgetMaxCleared() bool {
	_, ok := m.clearedFields[lead.FieldBudgetMax]
	return ok
}

// ResetBudgetMax resets all changes to the "budget_max" field.
func (m *LeadMutation) ResetBudgetMax() {
	m.budget_max = nil
	m.addbudget_max = nil
	delete(m.clearedFields, lead.FieldBudgetMax)
}

// SetNotes sets the "notes" field.
func (m *LeadMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *LeadMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *LeadMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[lead.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *LeadMutation) NotesCleared() bool {
	_, ok := m.clearedFields[lead.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *LeadMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, lead.FieldNotes)
}

// SetAssignedToID sets the "assigned_to_id" field.
func (m *LeadMutation) SetAssignedToID(i int) {
	m.assignee = &i
}

// AssignedToID returns the value of the "assigned_to_id" field in the mutation.
func (m *LeadMutation) AssignedToID() (r int, exists bool) {
	v := m.assignee
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedToID returns the old "assigned_to_id" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldAssignedToID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedToID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedToID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedToID: %w", err)
	}
	return oldValue.AssignedToID, nil
}

// ClearAssignedToID clears the value of the "assigned_to_id" field.
func (m *LeadMutation) ClearAssignedToID() {
	m.assignee = nil
	m.clearedFields[lead.FieldAssignedToID] = struct{}{}
}

// AssignedToIDCleared returns if the "assigned_to_id" field was cleared in this mutation.
func (m *LeadMutation) AssignedToIDCleared() bool {
	_, ok := m.clearedFields[lead.FieldAssignedToID]
	return ok
}

// ResetAssignedToID resets all changes to the "assigned_to_id" field.
func (m *LeadMutation) ResetAssignedToID() {
	m.assignee = nil
	delete(m.clearedFields, lead.FieldAssignedToID)
}

// SetCreatedAt sets the "created_at" field.
func (m *LeadMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LeadMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LeadMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LeadMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LeadMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LeadMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetAssigneeID sets the "assignee" edge to the User entity by id.
func (m *LeadMutation) SetAssigneeID(id int) {
	m.assignee = &id
}

// ClearAssignee clears the "assignee" edge to the User entity.
func (m *LeadMutation) ClearAssignee() {
	m.clearedassignee = true
	m.clearedFields[lead.FieldAssignedToID] = struct{}{}
}

// AssigneeCleared reports if the "assignee" edge to the User entity was cleared.
func (m *LeadMutation) AssigneeCleared() bool {
	return m.AssignedToIDCleared() || m.clearedassignee
}

// AssigneeID returns the "assignee" edge ID in the mutation.
func (m *LeadMutation) AssigneeID() (id int, exists bool) {
	if m.assignee != nil {
		return *m.assignee, true
	}
	return
}

// AssigneeIDs returns the "assignee" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AssigneeID instead. It exists only for internal usage by the builders.
func (m *LeadMutation) AssigneeIDs() (ids []int) {
	if id := m.assignee; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAssignee resets all changes to the "assignee" edge.
func (m *LeadMutation) ResetAssignee() {
	m.assignee = nil
	m.clearedassignee = false
}

// AddDealIDs adds the "deals" edge to the Deal entity by ids.
func (m *LeadMutation) AddDealIDs(ids ...int) {
	if m.deals == nil {
		m.deals = make(map[int]struct{})
	}
	for i := range ids {
		m.deals[ids[i]] = struct{}{}
	}
}

// ClearDeals clears the "deals" edge to the Deal entity.
func (m *LeadMutation) ClearDeals() {
	m.cleareddeals = true
}

// DealsCleared reports if the "deals" edge to the Deal entity was cleared.
func (m *LeadMutation) DealsCleared() bool {
	return m.cleareddeals
}

// RemoveDealIDs removes the "deals" edge to the Deal entity by IDs.
func (m *LeadMutation) RemoveDealIDs(ids ...int) {
	if m.removeddeals == nil {
		m.removeddeals = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.deals, ids[i])
		m.removeddeals[ids[i]] = struct{}{}
	}
}

// RemovedDeals returns the removed IDs of the "deals" edge to the Deal entity.
func (m *LeadMutation) RemovedDealsIDs() (ids []int) {
	for id := range m.removeddeals {
		ids = append(ids, id)
	}
	return
}

// DealsIDs returns the "deals" edge IDs in the mutation.
func (m *LeadMutation) DealsIDs() (ids []int) {
	for id := range m.deals {
		ids = append(ids, id)
	}
	return
}

// ResetDeals resets all changes to the "deals" edge.
func (m *LeadMutation) ResetDeals() {
	m.deals = nil
	m.cleareddeals = false
	m.removeddeals = nil
}

// AddActivityIDs adds the "activities" edge to the Activity entity by ids.
func (m *LeadMutation) AddActivityIDs(ids ...int) {
	if m.activities == nil {
		m.activities = make(map[int]struct{})
	}
	for i := range ids {
		m.activities[ids[i]] = struct{}{}
	}
}

// ClearActivities clears the "activities" edge to the Activity entity.
func (m *LeadMutation) ClearActivities() {
	m.clearedactivities = true
}

// ActivitiesCleared reports if the "activities" edge to the Activity entity was cleared.
func (m *LeadMutation) ActivitiesCleared() bool {
	return m.clearedactivities
}

// RemoveActivityIDs removes the "activities" edge to the Activity entity by IDs.
func (m *LeadMutation) RemoveActivityIDs(ids ...int) {
	if m.removedactivities == nil {
		m.removedactivities = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.activities, ids[i])
		m.removedactivities[ids[i]] = struct{}{}
	}
}

// RemovedActivities returns the removed IDs of the "activities" edge to the Activity entity.
func (m *LeadMutation) RemovedActivitiesIDs() (ids []int) {
	for id := range m.removedactivities {
		ids = append(ids, id)
	}
	return
}

// ActivitiesIDs returns the "activities" edge IDs in the mutation.
func (m *LeadMutation) ActivitiesIDs() (ids []int) {
	for id := range m.activities {
		ids = append(ids, id)
	}
	return
}

// ResetActivities resets all changes to the "activities" edge.
func (m *LeadMutation) ResetActivities() {
	m.activities = nil
	m.clearedactivities = false
	m.removedactivities = nil
}

// AddSubmissionIDs adds the "submissions" edge to the FormSubmission entity by ids.
func (m *LeadMutation) AddSubmissionIDs(ids ...int) {
	if m.submissions == nil {
		m.submissions = make(map[int]struct{})
	}
	for i := range ids {
		m.submissions[ids[i]] = struct{}{}
	}
}

// ClearSubmissions clears the "submissions" edge to the FormSubmission entity.
func (m *LeadMutation) ClearSubmissions() {
	m.clearedsubmissions = true
}

// SubmissionsCleared reports if the "submissions" edge to the FormSubmission entity was cleared.
func (m *LeadMutation) SubmissionsCleared() bool {
	return m.clearedsubmissions
}

// RemoveSubmissionIDs removes the "submissions" edge to the FormSubmission entity by IDs.
func (m *LeadMutation) RemoveSubmissionIDs(ids ...int) {
	if m.removedsubmissions == nil {
		m.removedsubmissions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.submissions, ids[i])
		m.removedsubmissions[ids[i]] = struct{}{}
	}
}

// RemovedSubmissions returns the removed IDs of the "submissions" edge to the FormSubmission entity.
func (m *LeadMutation) RemovedSubmissionsIDs() (ids []int) {
	for id := range m.removedsubmissions {
		ids = append(ids, id)
	}
	return
}

// SubmissionsIDs returns the "submissions" edge IDs in the mutation.
func (m *LeadMutation) SubmissionsIDs() (ids []int) {
	for id := range m.submissions {
		ids = append(ids, id)
	}
	return
}

// ResetSubmissions resets all changes to the "submissions" edge.
func (m *LeadMutation) ResetSubmissions() {
	m.submissions = nil
	m.clearedsubmissions = false
	m.removedsubmissions = nil
}

// Where appends a list predicates to the LeadMutation builder.
func (m *LeadMutation) Where(ps ...predicate.Lead) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LeadMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LeadMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Lead, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LeadMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LeadMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Lead).
func (m *LeadMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LeadMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.full_name != nil {
		fields = append(fields, lead.FieldFullName)
	}
	if m.email != nil {
		fields = append(fields, lead.FieldEmail)
	}
	if m.phone != nil {
		fields = append(fields, lead.FieldPhone)
	}
	if m.source != nil {
		fields = append(fields, lead.FieldSource)
	}
	if m.status != nil {
		fields = append(fields, lead.FieldStatus)
	}
	if m.budget_min != nil {
		fields = append(fields, lead.FieldBudgetMin)
	}
	if m.budget_max != nil {
		fields = append(fields, lead.FieldBudgetMax)
	}
	if m.notes != nil {
		fields = append(fields, lead.FieldNotes)
	}
	if m.assignee != nil {
		fields = append(fields, lead.FieldAssignedToID)
	}
	if m.created_at != nil {
		fields = append(fields, lead.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, lead.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LeadMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lead.FieldFullName:
		return m.FullName()
	case lead.FieldEmail:
		return m.Email()
	case lead.FieldPhone:
		return m.Phone()
	case lead.FieldSource:
		return m.Source()
	case lead.FieldStatus:
		return m.Status()
	case lead.FieldBudgetMin:
		return m.BudgetMin()
	case lead.FieldBudgetMax:
		return m.BudgetMax()
	case lead.FieldNotes:
		return m.Notes()
	case lead.FieldAssignedToID:
		return m.AssignedToID()
	case lead.FieldCreatedAt:
		return m.CreatedAt()
	case lead.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LeadMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lead.FieldFullName:
		return m.OldFullName(ctx)
	case lead.FieldEmail:
		return m.OldEmail(ctx)
	case lead.FieldPhone:
		return m.OldPhone(ctx)
	case lead.FieldSource:
		return m.OldSource(ctx)
	case lead.FieldStatus:
		return m.OldStatus(ctx)
	case lead.FieldBudgetMin:
		return m.OldBudgetMin(ctx)
	case lead.FieldBudgetMax:
		return m.OldBudgetMax(ctx)
	case lead.FieldNotes:
		return m.OldNotes(ctx)
	case lead.FieldAssignedToID:
		return m.OldAssignedToID(ctx)
	case lead.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case lead.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Lead field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeadMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lead.FieldFullName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullName(v)
		return nil
	case lead.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case lead.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case lead.FieldSource:
		v, ok := value.(lead.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case lead.FieldStatus:
		v, ok := value.(lead.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case lead.FieldBudgetMin:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBudgetMin(v)
		return nil
	case lead.FieldBudgetMax:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBudgetMax(v)
		return nil
	case lead.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case lead.FieldAssignedToID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedToID(v)
		return nil
	case lead.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case lead.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Lead field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LeadMutation) AddedFields() []string {
	var fields []string
	if m.addbudget_min != nil {
		fields = append(fields, lead.FieldBudgetMin)
	}
	if m.addbudget_max != nil {
		fields = append(fields, lead.FieldBudgetMax)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LeadMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case lead.FieldBudgetMin:
		return m.AddedBudgetMin()
	case lead.FieldBudgetMax:
		return m.AddedBudgetMax()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeadMutation) AddField(name string, value ent.Value) error {
	switch name {
	case lead.FieldBudgetMin:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBudgetMin(v)
		return nil
	case lead.FieldBudgetMax:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBudgetMax(v)
		return nil
	}
	return fmt.Errorf("unknown Lead numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LeadMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(lead.FieldPhone) {
		fields = append(fields, lead.FieldPhone)
	}
	if m.FieldCleared(lead.FieldBudgetMin) {
		fields = append(fields, lead.FieldBudgetMin)
	}
	if m.FieldCleared(lead.FieldBudgetMax) {
		fields = append(fields, lead.FieldBudgetMax)
	}
	if m.FieldCleared(lead.FieldNotes) {
		fields = append(fields, lead.FieldNotes)
	}
	if m.FieldCleared(lead.FieldAssignedToID) {
		fields = append(fields, lead.FieldAssignedToID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LeadMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LeadMutation) ClearField(name string) error {
	switch name {
	case lead.FieldPhone:
		m.ClearPhone()
		return nil
	case lead.FieldBudgetMin:
		m.ClearBudgetMin()
		return nil
	case lead.FieldBudgetMax:
		m.ClearBudgetMax()
		return nil
	case lead.FieldNotes:
		m.ClearNotes()
		return nil
	case lead.FieldAssignedToID:
		m.ClearAssignedToID()
		return nil
	}
	return fmt.Errorf("unknown Lead nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LeadMutation) ResetField(name string) error {
	switch name {
	case lead.FieldFullName:
		m.ResetFullName()
		return nil
	case lead.FieldEmail:
		m.ResetEmail()
		return nil
	case lead.FieldPhone:
		m.ResetPhone()
		return nil
	case lead.FieldSource:
		m.ResetSource()
		return nil
	case lead.FieldStatus:
		m.ResetStatus()
		return nil
	case lead.FieldBudgetMin:
		m.ResetBudgetMin()
		return nil
	case lead.FieldBudgetMax:
		m.ResetBudgetMax()
		return nil
	case lead.FieldNotes:
		m.ResetNotes()
		return nil
	case lead.FieldAssignedToID:
		m.ResetAssignedToID()
		return nil
	case lead.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case lead.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Lead field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LeadMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.assignee != nil {
		edges = append(edges, lead.EdgeAssignee)
	}
	if m.deals != nil {
		edges = append(edges, lead.EdgeDeals)
	}
	if m.activities != nil {
		edges = append(edges, lead.EdgeActivities)
	}
	if m.submissions != nil {
		edges = append(edges, lead.EdgeSubmissions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LeadMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case lead.EdgeAssignee:
		if id := m.assignee; id != nil {
			return []ent.Value{*id}
		}
	case lead.EdgeDeals:
		ids := make([]ent.Value, 0, len(m.deals))
		for id := range m.deals {
			ids = append(ids, id)
		}
		return ids
	case lead.EdgeActivities:
		ids := make([]ent.Value, 0, len(m.activities))
		for id := range m.activities {
			ids = append(ids, id)
		}
		return ids
	case lead.EdgeSubmissions:
		ids := make([]ent.Value, 0, len(m.submissions))
		for id := range m.submissions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LeadMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removeddeals != nil {
		edges = append(edges, lead.EdgeDeals)
	}
	if m.removedactivities != nil {
		edges = append(edges, lead.EdgeActivities)
	}
	if m.removedsubmissions != nil {
		edges = append(edges, lead.EdgeSubmissions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LeadMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case lead.EdgeDeals:
		ids := make([]ent.Value, 0, len(m.removeddeals))
		for id := range m.removeddeals {
			ids = append(ids, id)
		}
		return ids
	case lead.EdgeActivities:
		ids := make([]ent.Value, 0, len(m.removedactivities))
		for id := range m.removedactivities {
			ids = append(ids, id)
		}
		return ids
	case lead.EdgeSubmissions:
		ids := make([]ent.Value, 0, len(m.removedsubmissions))
		for id := range m.removedsubmissions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LeadMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedassignee {
		edges = append(edges, lead.EdgeAssignee)
	}
	if m.cleareddeals {
		edges = append(edges, lead.EdgeDeals)
	}
	if m.clearedactivities {
		edges = append(edges, lead.EdgeActivities)
	}
	if m.clearedsubmissions {
		edges = append(edges, lead.EdgeSubmissions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LeadMutation) EdgeCleared(name string) bool {
	switch name {
	case lead.EdgeAssignee:
		return m.clearedassignee
	case lead.EdgeDeals:
		return m.cleareddeals
	case lead.EdgeActivities:
		return m.clearedactivities
	case lead.EdgeSubmissions:
		return m.clearedsubmissions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LeadMutation) ClearEdge(name string) error {
	switch name {
	case lead.EdgeAssignee:
		m.ClearAssignee()
		return nil
	}
	return fmt.Errorf("unknown Lead unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LeadMutation) ResetEdge(name string) error {
	switch name {
	case lead.EdgeAssignee:
		m.ResetAssignee()
		return nil
	case lead.EdgeDeals:
		m.ResetDeals()
		return nil
	case lead.EdgeActivities:
		m.ResetActivities()
		return nil
	case lead.EdgeSubmissions:
		m.ResetSubmissions()
		return nil
	}
	return fmt.Errorf("unknown Lead edge %s", name)
}

// PropertyMutation represents an operation that mutates the Property nodes in the graph.
type PropertyMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	title              *string
	slug               *string
	address            *string
	city               *string
	country            *string
	price              *float64
	addprice           *float64
	status             *property.Status
	published          *bool
	main_image_url     *string
	gallery            *string
	beds               *int
	addbeds            *int
	baths              *int
	addbaths           *int
	area_sqm           *float64
	addarea_sqm        *float64
	description        *string
	hero_title         *string
	hero_subtitle      *string
	cta_text           *string
	meta_title         *string
	meta_description   *string
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	deals              map[int]struct{}
	removeddeals       map[int]struct{}
	cleareddeals       bool
	activities         map[int]struct{}
	removedactivities  map[int]struct{}
	clearedactivities  bool
	submissions        map[int]struct{}
	removedsubmissions map[int]struct{}
	clearedsubmissions bool
	done               bool
	oldValue           func(context.Context) (*Property, error)
	predicates         []predicate.Property
}

var _ ent.Mutation = (*PropertyMutation)(nil)

// propertyOption allows management of the mutation configuration using functional options.
type propertyOption func(*PropertyMutation)

// newPropertyMutation creates new mutation for the Property entity.
func newPropertyMutation(c config, op Op, opts ...propertyOption) *PropertyMutation {
	m := &PropertyMutation{
		config:        c,
		op:            op,
		typ:           TypeProperty,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPropertyID sets the ID field of the mutation.
func withPropertyID(id int) propertyOption {
	return func(m *PropertyMutation) {
		var (
			err   error
			once  sync.Once
			value *Property
		)
		m.oldValue = func(ctx context.Context) (*Property, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Property.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProperty sets the old Property of the mutation.
func withProperty(node *Property) propertyOption {
	return func(m *PropertyMutation) {
		m.oldValue = func(context.Context) (*Property, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PropertyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PropertyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PropertyMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PropertyMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Property.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *PropertyMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *PropertyMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Property entity.
// If the Property object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PropertyMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *PropertyMutation) ResetTitle() {
	m.title = nil
}

// SetSlug sets the "slug" field.
func (m *PropertyMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *PropertyMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the Property entity.
// If the Property object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PropertyMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *PropertyMutation) ResetSlug() {
	m.slug = nil
}

// SetAddress sets the "address" field.
func (m *PropertyMutation) SetAddress(s string) {
	m.address = &s
}

// Address returns the value of the "address" field in the mutation.
func (m *PropertyMutation) Address() (r string, exists bool) {
	v := m.address
	if v == nil {
		return
	}
	return *v, true
}

// OldAddress returns the old "address" field's value of the Property entity.
// If the Property object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PropertyMutation) OldAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddress: %w", err)
	}
	return oldValue.Address, nil
}

// ResetAddress resets all changes to the "address" field.
func (m *PropertyMutation) ResetAddress() {
	m.address = nil
}

// SetCity sets the "city" field.
func (m *PropertyMutation) SetCity(s string) {
	m.city = &s
}

// City returns the value of the "city" field in the mutation.
func (m *PropertyMutation) City() (r string, exists bool) {
	v := m.city
	if v == nil {
		return
	}
	return *v, true
}

// OldCity returns the old "city" field's value of the Property entity.
// If the Property object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PropertyMutation) OldCity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCity: %w", err)
	}
	return oldValue.City, nil
}

// ResetCity resets all changes to the "city" field.
func (m *PropertyMutation) ResetCity() {
	m.city = nil
}

// SetCountry sets the "country" field.
func (m *PropertyMutation) SetCountry(s string) {
	m.country = &s
}

// Country returns the value of the "country" field in the mutation.
func (m *PropertyMutation) Country() (r string, exists bool) {
	v := m.country
	if v == nil {
		return
	}
	return *v, true
}

// OldCountry returns the old "country" field's value of the Property entity.
// If the Property object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PropertyMutation) OldCountry(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCountry is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCountry requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCountry: %w", err)
	}
	return oldValue.Country, nil
}

// ResetCountry resets all changes to the "country" field.
func (m *PropertyMutation) ResetCountry() {
	m.country = nil
}

// SetPrice sets the "price" field.
func (m *PropertyMutation) SetPrice(f float64) {
	m.price = &f
	m.addprice = nil
}

// Price returns the value of the "price" field in the mutation.
func (m *PropertyMutation) Price() (r float64, exists bool) {
	v := m.price
	if v == nil {
		return
	}
	return *v, true
}

// OldPrice returns the old "price" field's value of the Property entity.
// If the Property object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PropertyMutation) OldPrice(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrice: %w", err)
	}
	return oldValue.Price, nil
}

// AddPrice adds f to the "price" field.
func (m *PropertyMutation) AddPrice(f float64) {
	if m.addprice != nil {
		*m.addprice += f
	} else {
		m.addprice = &f
	}
}

// AddedPrice returns the value that was added to the "price" field in this mutation.
func (m *PropertyMutation) AddedPrice() (r float64, exists bool) {
	v := m.addprice
	if v == nil {
		return
	}
	return *v, true
}

// ResetPrice resets all changes to the "price" field.
func (m *PropertyMutation) ResetPrice() {
	m.price = nil
	m.addprice = nil
}

// SetStatus sets the "status" field.
func (m *PropertyMutation) SetStatus(pr property.Status) {
	m.status = &pr
}

// Status returns the value of the "status" field in the mutation.
func (m *PropertyMutation) Status() (r property.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Property entity.
// If the Property object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PropertyMutation) OldStatus(ctx context.Context) (v property.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PropertyMutation) ResetStatus() {
	m.status = nil
}

// SetPublished sets the "published" field.
func (m *PropertyMutation) SetPublished(b bool) {
	m.published = &b
}

// Published returns the value of the "published" field in the mutation.
func (m *PropertyMutation) Published() (r bool, exists bool) {
	v := m.published
	if v == nil {
		return
	}
	return *v, true
}

// OldPublished returns the old "published" field's value of the Property entity.
// If the Property object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PropertyMutation) OldPublished(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublished is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublished requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublished: %w", err)
	}
	return oldValue.Published, nil
}

// ResetPublished resets all changes to the "published" field.
func (m *PropertyMutation) ResetPublished() {
	m.published = nil
}

// SetMainImageURL sets the "main_image_url" field.
func (m *PropertyMutation) SetMainImageURL(s string) {
	m.main_image_url = &s
}

// MainImageURL returns the value of the "main_image_url" field in the mutation.
func (m *PropertyMutation) MainImageURL() (r string, exists bool) {
	v := m.main_image_url
	if v == nil {
		return
	}
	return *v, true
}

// OldMainImageURL returns the old "main_image_url" field's value of the Property entity.
// If the Property object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PropertyMutation) OldMainImageURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMainImageURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMainImageURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMainImageURL: %w", err)
	}
	return oldValue.MainImageURL, nil
}

// ClearMainImageURL clears the value of the "main_image_url" field.
func (m *PropertyMutation) ClearMainImageURL() {
	m.main_image_url = nil
	m.clearedFields[property.FieldMainImageURL] = struct{}{}
}

// MainImageURLCleared returns if the "main_image_url" field was cleared in this mutation.
func (m *PropertyMutation) MainImageURLCleared() bool {
	_, ok := m.clearedFields[property.FieldMainImageURL]
	return ok
}

// ResetMainImageURL resets all changes to the "main_image_url" field.
func (m *PropertyMutation) ResetMainImageURL() {
	m.main_image_url = nil
	delete(m.clearedFields, property.FieldMainImageURL)
}

// SetGallery sets the "gallery" field.
func (m *PropertyMutation) SetGallery(s string) {
	m.gallery = &s
}

// Gallery returns the value of the "gallery" field in the mutation.
func (m *PropertyMutation) Gallery() (r string, exists bool) {
	v := m.gallery
	if v == nil {
		return
	}
	return *v, true
}

// OldGallery returns the old "gallery" field's value of the Property entity.
// If the Property object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PropertyMutation) OldGallery(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGallery is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGallery requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGallery: %w", err)
	}
	return oldValue.Gallery, nil
}

// ClearGallery clears the value of the "gallery" field.
func (m *PropertyMutation) ClearGallery() {
	m.gallery = nil
	m.clearedFields[property.FieldGallery] = struct{}{}
}

// GalleryCleared returns if the "gallery" field was cleared in this mutation.
func (m *PropertyMutation) GalleryCleared() bool {
	_, ok := m.clearedFields[property.FieldGallery]
	return ok
}

// ResetGallery resets all changes to the "gallery" field.
func (m *PropertyMutation) ResetGallery() {
	m.gallery = nil
	delete(m.clearedFields, property.FieldGallery)
}

// SetBeds sets the "beds" field.
func (m *PropertyMutation) SetBeds(i int) {
	m.beds = &i
	m.addbeds = nil
}

// Beds returns the value of the "beds" field in the mutation.
func (m *PropertyMutation) Beds() (r int, exists bool) {
	v := m.beds
	if v == nil {
		return
	}
	return *v, true
}

// OldBeds returns the old "beds" field's value of the Property entity.
// If the Property object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PropertyMutation) OldBeds(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBeds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBeds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBeds: %w", err)
	}
	return oldValue.Beds, nil
}

// AddBeds adds i to the "beds" field.
func (m *PropertyMutation) AddBeds(i int) {
	if m.addbeds != nil {
		*m.addbeds += i
	} else {
		m.addbeds = &i
	}
}

// AddedBeds returns the value that was added to the "beds" field in this mutation.
func (m *PropertyMutation) AddedBeds() (r int, exists bool) {
	v := m.addbeds
	if v == nil {
		return
	}
	return *v, true
}

// ClearBeds clears the value of the "beds" field.
func (m *PropertyMutation) ClearBeds() {
	m.beds = nil
	m.addbeds = nil
	m.clearedFields[property.FieldBeds] = struct{}{}
}

// BedsCleared returns if the "beds" field was cleared in this mutation.
func (m *PropertyMutation) BedsCleared() bool {
	_, ok := m.clearedFields[property.FieldBeds]
	return ok
}

// ResetBeds resets all changes to the "beds" field.
func (m *PropertyMutation) ResetBeds() {
	m.beds = nil
	m.addbeds = nil
	delete(m.clearedFields, property.FieldBeds)
}

// SetBaths sets the "baths" field.
func (m *PropertyMutation) SetBaths(i int) {
	m.baths = &i
	m.addbaths = nil
}

// Baths returns the value of the "baths" field in the mutation.
func (m *PropertyMutation) Baths() (r int, exists bool) {
	v := m.baths
	if v == nil {
		return
	}
	return *v, true
}

// OldBaths returns the old "baths" field's value of the Property entity.
// If the Property object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PropertyMutation) OldBaths(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBaths is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBaths requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBaths: %w", err)
	}
	return oldValue.Baths, nil
}

// AddBaths adds i to the "baths" field.
func (m *PropertyMutation) AddBaths(i int) {
	if m.addbaths != nil {
		*m.addbaths += i
	} else {
		m.addbaths = &i
	}
}

// AddedBaths returns the value that was added to the "baths" field in this mutation.
func (m *PropertyMutation) AddedBaths() (r int, exists bool) {
	v := m.addbaths
	if v == nil {
		return
	}
	return *v, true
}

// ClearBaths clears the value of the "baths" field.
func (m *PropertyMutation) ClearBaths() {
	m.baths = nil
	m.addbaths = nil
	m.clearedFields[property.FieldBaths] = struct{}{}
}

// BathsCleared returns if the "baths" field was cleared in this mutation.
func (m *PropertyMutation) BathsCleared() bool {
	_, ok := m.clearedFields[property.FieldBaths]
	return ok
}

// ResetBaths resets all changes to the "baths" field.
func (m *PropertyMutation) ResetBaths() {
	m.baths = nil
	m.addbaths = nil
	delete(m.clearedFields, property.FieldBaths)
}

// SetAreaSqm sets the "area_sqm" field.
func (m *PropertyMutation) SetAreaSqm(f float64) {
	m.area_sqm = &f
	m.addarea_sqm = nil
}

// AreaSqm returns the value of the "area_sqm" field in the mutation.
func (m *PropertyMutation) AreaSqm() (r float64, exists bool) {
	v := m.area_sqm
	if v == nil {
		return
	}
	return *v, true
}

// OldAreaSqm returns the old "area_sqm" field's value of the Property entity.
// If the Property object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PropertyMutation) OldAreaSqm(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAreaSqm is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAreaSqm requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAreaSqm: %w", err)
	}
	return oldValue.AreaSqm, nil
}

// AddAreaSqm adds f to the "area_sqm" field.
func (m *PropertyMutation) AddAreaSqm(f float64) {
	if m.addarea_sqm != nil {
		*m.addarea_sqm += f
	} else {
		m.addarea_sqm = &f
	}
}

// AddedAreaSqm returns the value that was added to the "area_sqm" field in this mutation.
func (m *PropertyMutation) AddedAreaSqm() (r float64, exists bool) {
	v := m.addarea_sqm
	if v == nil {
		return
	}
	return *v, true
}

// ClearAreaSqm clears the value of the "area_sqm" field.
func (m *PropertyMutation) ClearAreaSqm() {
	m.area_sqm = nil
	m.addarea_sqm = nil
	m.clearedFields[property.FieldAreaSqm] = struct{}{}
}

// AreaSqmCleared returns if the "area_sqm" field was cleared in this mutation.
func (m *PropertyMutation) AreaSqmCleared() bool {
	_, ok := m.clearedFields[property.FieldAreaSqm]
	return ok
}

// ResetAreaSqm resets all changes to the "area_sqm" field.
func (m *PropertyMutation) ResetAreaSqm() {
	m.area_sqm = nil
	m.addarea_sqm = nil
	delete(m.clearedFields, property.FieldAreaSqm)
}

// SetDescription sets the "description" field.
func (m *PropertyMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *PropertyMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Property entity.
// If the Property object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PropertyMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *PropertyMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[property.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *PropertyMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[property.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *PropertyMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, property.FieldDescription)
}

// SetHeroTitle sets the "hero_title" field.
func (m *PropertyMutation) SetHeroTitle(s string) {
	m.hero_title = &s
}

// HeroTitle returns the value of the "hero_title" field in the mutation.
func (m *PropertyMutation) HeroTitle() (r string, exists bool) {
	v := m.hero_title
	if v == nil {
		return
	}
	return *v, true
}

// OldHeroTitle returns the old "hero_title" field's value of the Property entity.
// If the Property object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PropertyMutation) OldHeroTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeroTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeroTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeroTitle: %w", err)
	}
	return oldValue.HeroTitle, nil
}

// ClearHeroTitle clears the value of the "hero_title" field.
func (m *PropertyMutation) ClearHeroTitle() {
	m.hero_title = nil
	m.clearedFields[property.FieldHeroTitle] = struct{}{}
}

// HeroTitleCleared returns if the "hero_title" field was cleared in this mutation.
func (m *PropertyMutation) HeroTitleCleared() bool {
	_, ok := m.clearedFields[property.FieldHeroTitle]
	return ok
}

// ResetHeroTitle resets all changes to the "hero_title" field.
func (m *PropertyMutation) ResetHeroTitle() {
	m.hero_title = nil
	delete(m.clearedFields, property.FieldHeroTitle)
}

// SetHeroSubtitle sets the "hero_subtitle" field.
func (m *PropertyMutation) SetHeroSubtitle(s string) {
	m.hero_subtitle = &s
}

// HeroSubtitle returns the value of the "hero_subtitle" field in the mutation.
func (m *PropertyMutation) HeroSubtitle() (r string, exists bool) {
	v := m.hero_subtitle
	if v == nil {
		return
	}
	return *v, true
}

// OldHeroSubtitle returns the old "hero_subtitle" field's value of the Property entity.
// If the Property object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PropertyMutation) OldHeroSubtitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeroSubtitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeroSubtitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeroSubtitle: %w", err)
	}
	return oldValue.HeroSubtitle, nil
}

// ClearHeroSubtitle clears the value of the "hero_subtitle" field.
func (m *PropertyMutation) ClearHeroSubtitle() {
	m.hero_subtitle = nil
	m.clearedFields[property.FieldHeroSubtitle] = struct{}{}
}

// HeroSubtitleCleared returns if the "hero_subtitle" field was cleared in this mutation.
func (m *PropertyMutation) HeroSubtitleCleared() bool {
	_, ok := m.clearedFields[property.FieldHeroSubtitle]
	return ok
}

// ResetHeroSubtitle resets all changes to the "hero_subtitle" field.
func (m *PropertyMutation) ResetHeroSubtitle() {
	m.hero_subtitle = nil
	delete(m.clearedFields, property.FieldHeroSubtitle)
}

// SetCtaText sets the "cta_text" field.
func (m *PropertyMutation) SetCtaText(s string) {
	m.cta_text = &s
}

// CtaText returns the value of the "cta_text" field in the mutation.
func (m *PropertyMutation) CtaText() (r string, exists bool) {
	v := m.cta_text
	if v == nil {
		return
	}
	return *v, true
}

// OldCtaText returns the old "cta_text" field's value of the Property entity.
// If the Property object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PropertyMutation) OldCtaText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCtaText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCtaText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCtaText: %w", err)
	}
	return oldValue.CtaText, nil
}

// ClearCtaText clears the value of the "cta_text" field.
func (m *PropertyMutation) ClearCtaText() {
	m.cta_text = nil
	m.clearedFields[property.FieldCtaText] = struct{}{}
}

// CtaTextCleared returns if the "cta_text" field was cleared in this mutation.
func (m *PropertyMutation) CtaTextCleared() bool {
	_, ok := m.clearedFields[property.FieldCtaText]
	return ok
}

// ResetCtaText resets all changes to the "cta_text" field.
func (m *PropertyMutation) ResetCtaText() {
	m.cta_text = nil
	delete(m.clearedFields, property.FieldCtaText)
}

// SetMetaTitle sets the "meta_title" field.
func (m *PropertyMutation) SetMetaTitle(s string) {
	m.meta_title = &s
}

// MetaTitle returns the value of the "meta_title" field in the mutation.
func (m *PropertyMutation) MetaTitle() (r string, exists bool) {
	v := m.meta_title
	if v == nil {
		return
	}
	return *v, true
}

// OldMetaTitle returns the old "meta_title" field's value of the Property entity.
// If the Property object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PropertyMutation) OldMetaTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetaTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetaTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetaTitle: %w", err)
	}
	return oldValue.MetaTitle, nil
}

// ClearMetaTitle clears the value of the "meta_title" field.
func (m *PropertyMutation) ClearMetaTitle() {
	m.meta_title = nil
	m.clearedFields[property.FieldMetaTitle] = struct{}{}
}

// MetaTitleCleared returns if the "meta_title" field was cleared in this mutation.
func (m *PropertyMutation) MetaTitleCleared() bool {
	_, ok := m.clearedFields[property.FieldMetaTitle]
	return ok
}

// ResetMetaTitle resets all changes to the "meta_title" field.
func (m *PropertyMutation) ResetMetaTitle() {
	m.meta_title = nil
	delete(m.clearedFields, property.FieldMetaTitle)
}

// SetMetaDescription sets the "meta_description" field.
func (m *PropertyMutation) SetMetaDescription(s string) {
	m.meta_description = &s
}

// MetaDescription returns the value of the "meta_description" field in the mutation.
func (m *PropertyMutation) MetaDescription() (r string, exists bool) {
	v := m.meta_description
	if v == nil {
		return
	}
	return *v, true
}

// OldMetaDescription returns the old "meta_description" field's value of the Property entity.
// If the Property object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PropertyMutation) OldMetaDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetaDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetaDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetaDescription: %w", err)
	}
	return oldValue.MetaDescription, nil
}

// ClearMetaDescription clears the value of the "meta_description" field.
func (m *PropertyMutation) ClearMetaDescription() {
	m.meta_description = nil
	m.clearedFields[property.FieldMetaDescription] = struct{}{}
}

// MetaDescriptionCleared returns if the "meta_description" field was cleared in this mutation.
func (m *PropertyMutation) MetaDescriptionCleared() bool {
	_, ok := m.clearedFields[property.FieldMetaDescription]
	return ok
}

// ResetMetaDescription resets all changes to the "meta_description" field.
func (m *PropertyMutation) ResetMetaDescription() {
	m.meta_description = nil
	delete(m.clearedFields, property.FieldMetaDescription)
}

// SetCreatedAt sets the "created_at" field.
func (m *PropertyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PropertyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Property entity.
// If the Property object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PropertyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PropertyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PropertyMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PropertyMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Property entity.
// If the Property object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PropertyMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PropertyMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddDealIDs adds the "deals" edge to the Deal entity by ids.
func (m *PropertyMutation) AddDealIDs(ids ...int) {
	if m.deals == nil {
		m.deals = make(map[int]struct{})
	}
	for i := range ids {
		m.deals[ids[i]] = struct{}{}
	}
}

// ClearDeals clears the "deals" edge to the Deal entity.
func (m *PropertyMutation) ClearDeals() {
	m.cleareddeals = true
}

// DealsCleared reports if the "deals" edge to the Deal entity was cleared.
func (m *PropertyMutation) DealsCleared() bool {
	return m.cleareddeals
}

// RemoveDealIDs removes the "deals" edge to the Deal entity by IDs.
func (m *PropertyMutation) RemoveDealIDs(ids ...int) {
	if m.removeddeals == nil {
		m.removeddeals = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.deals, ids[i])
		m.removeddeals[ids[i]] = struct{}{}
	}
}

// RemovedDeals returns the removed IDs of the "deals" edge to the Deal entity.
func (m *PropertyMutation) RemovedDealsIDs() (ids []int) {
	for id := range m.removeddeals {
		ids = append(ids, id)
	}
	return
}

// DealsIDs returns the "deals" edge IDs in the mutation.
func (m *PropertyMutation) DealsIDs() (ids []int) {
	for id := range m.deals {
		ids = append(ids, id)
	}
	return
}

// ResetDeals resets all changes to the "deals" edge.
func (m *PropertyMutation) ResetDeals() {
	m.deals = nil
	m.cleareddeals = false
	m.removeddeals = nil
}

// AddActivityIDs adds the "activities" edge to the Activity entity by ids.
func (m *PropertyMutation) AddActivityIDs(ids ...int) {
	if m.activities == nil {
		m.activities = make(map[int]struct{})
	}
	for i := range ids {
		m.activities[ids[i]] = struct{}{}
	}
}

// ClearActivities clears the "activities" edge to the Activity entity.
func (m *PropertyMutation) ClearActivities() {
	m.clearedactivities = true
}

// ActivitiesCleared reports if the "activities" edge to the Activity entity was cleared.
func (m *PropertyMutation) ActivitiesCleared() bool {
	return m.clearedactivities
}

// RemoveActivityIDs removes the "activities" edge to the Activity entity by IDs.
func (m *PropertyMutation) RemoveActivityIDs(ids ...int) {
	if m.removedactivities == nil {
		m.removedactivities = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.activities, ids[i])
		m.removedactivities[ids[i]] = struct{}{}
	}
}

// RemovedActivities returns the removed IDs of the "activities" edge to the Activity entity.
func (m *PropertyMutation) RemovedActivitiesIDs() (ids []int) {
	for id := range m.removedactivities {
		ids = append(ids, id)
	}
	return
}

// ActivitiesIDs returns the "activities" edge IDs in the mutation.
func (m *PropertyMutation) ActivitiesIDs() (ids []int) {
	for id := range m.activities {
		ids = append(ids, id)
	}
	return
}

// ResetActivities resets all changes to the "activities" edge.
func (m *PropertyMutation) ResetActivities() {
	m.activities = nil
	m.clearedactivities = false
	m.removedactivities = nil
}

// AddSubmissionIDs adds the "submissions" edge to the FormSubmission entity by ids.
func (m *PropertyMutation) AddSubmissionIDs(ids ...int) {
	if m.submissions == nil {
		m.submissions = make(map[int]struct{})
	}
	for i := range ids {
		m.submissions[ids[i]] = struct{}{}
	}
}

// ClearSubmissions clears the "submissions" edge to the FormSubmission entity.
func (m *PropertyMutation) ClearSubmissions() {
	m.clearedsubmissions = true
}

// SubmissionsCleared reports if the "submissions" edge to the FormSubmission entity was cleared.
func (m *PropertyMutation) SubmissionsCleared() bool {
	return m.clearedsubmissions
}

// RemoveSubmissionIDs removes the "submissions" edge to the FormSubmission entity by IDs.
func (m *PropertyMutation) RemoveSubmissionIDs(ids ...int) {
	if m.removedsubmissions == nil {
		m.removedsubmissions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.submissions, ids[i])
		m.removedsubmissions[ids[i]] = struct{}{}
	}
}

// RemovedSubmissions returns the removed IDs of the "submissions" edge to the FormSubmission entity.
func (m *PropertyMutation) RemovedSubmissionsIDs() (ids []int) {
	for id := range m.removedsubmissions {
		ids = append(ids, id)
	}
	return
}

// SubmissionsIDs returns the "submissions" edge IDs in the mutation.
func (m *PropertyMutation) SubmissionsIDs() (ids []int) {
	for id := range m.submissions {
		ids = append(ids, id)
	}
	return
}

// ResetSubmissions resets all changes to the "submissions" edge.
func (m *PropertyMutation) ResetSubmissions() {
	m.submissions = nil
	m.clearedsubmissions = false
	m.removedsubmissions = nil
}

// Where appends a list predicates to the PropertyMutation builder.
func (m *PropertyMutation) Where(ps ...predicate.Property) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PropertyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PropertyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Property, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PropertyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PropertyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Property).
func (m *PropertyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PropertyMutation) Fields() []string {
	fields := make([]string, 0, 21)
	if m.title != nil {
		fields = append(fields, property.FieldTitle)
	}
	if m.slug != nil {
		fields = append(fields, property.FieldSlug)
	}
	if m.address != nil {
		fields = append(fields, property.FieldAddress)
	}
	if m.city != nil {
		fields = append(fields, property.FieldCity)
	}
	if m.country != nil {
		fields = append(fields, property.FieldCountry)
	}
	if m.price != nil {
		fields = append(fields, property.FieldPrice)
	}
	if m.status != nil {
		fields = append(fields, property.FieldStatus)
	}
	if m.published != nil {
		fields = append(fields, property.FieldPublished)
	}
	if m.main_image_url != nil {
		fields = append(fields, property.FieldMainImageURL)
	}
	if m.gallery != nil {
		fields = append(fields, property.FieldGallery)
	}
	if m.beds != nil {
		fields = append(fields, property.FieldBeds)
	}
	if m.baths != nil {
		fields = append(fields, property.FieldBaths)
	}
	if m.area_sqm != nil {
		fields = append(fields, property.FieldAreaSqm)
	}
	if m.description != nil {
		fields = append(fields, property.FieldDescription)
	}
	if m.hero_title != nil {
		fields = append(fields, property.FieldHeroTitle)
	}
	if m.hero_subtitle != nil {
		fields = append(fields, property.FieldHeroSubtitle)
	}
	if m.cta_text != nil {
		fields = append(fields, property.FieldCtaText)
	}
	if m.meta_title != nil {
		fields = append(fields, property.FieldMetaTitle)
	}
	if m.meta_description != nil {
		fields = append(fields, property.FieldMetaDescription)
	}
	if m.created_at != nil {
		fields = append(fields, property.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, property.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PropertyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case property.FieldTitle:
		return m.Title()
	case property.FieldSlug:
		return m.Slug()
	case property.FieldAddress:
		return m.Address()
	case property.FieldCity:
		return m.City()
	case property.FieldCountry:
		return m.Country()
	case property.FieldPrice:
		return m.Price()
	case property.FieldStatus:
		return m.Status()
	case property.FieldPublished:
		return m.Published()
	case property.FieldMainImageURL:
		return m.MainImageURL()
	case property.FieldGallery:
		return m.Gallery()
	case property.FieldBeds:
		return m.Beds()
	case property.FieldBaths:
		return m.Baths()
	case property.FieldAreaSqm:
		return m.AreaSqm()
	case property.FieldDescription:
		return m.Description()
	case property.FieldHeroTitle:
		return m.HeroTitle()
	case property.FieldHeroSubtitle:
		return m.HeroSubtitle()
	case property.FieldCtaText:
		return m.CtaText()
	case property.FieldMetaTitle:
		return m.MetaTitle()
	case property.FieldMetaDescription:
		return m.MetaDescription()
	case property.FieldCreatedAt:
		return m.CreatedAt()
	case property.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PropertyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case property.FieldTitle:
		return m.OldTitle(ctx)
	case property.FieldSlug:
		return m.OldSlug(ctx)
	case property.FieldAddress:
		return m.OldAddress(ctx)
	case property.FieldCity:
		return m.OldCity(ctx)
	case property.FieldCountry:
		return m.OldCountry(ctx)
	case property.FieldPrice:
		return m.OldPrice(ctx)
	case property.FieldStatus:
		return m.OldStatus(ctx)
	case property.FieldPublished:
		return m.OldPublished(ctx)
	case property.FieldMainImageURL:
		return m.OldMainImageURL(ctx)
	case property.FieldGallery:
		return m.OldGallery(ctx)
	case property.FieldBeds:
		return m.OldBeds(ctx)
	case property.FieldBaths:
		return m.OldBaths(ctx)
	case property.FieldAreaSqm:
		return m.OldAreaSqm(ctx)
	case property.FieldDescription:
		return m.OldDescription(ctx)
	case property.FieldHeroTitle:
		return m.OldHeroTitle(ctx)
	case property.FieldHeroSubtitle:
		return m.OldHeroSubtitle(ctx)
	case property.FieldCtaText:
		return m.OldCtaText(ctx)
	case property.FieldMetaTitle:
		return m.OldMetaTitle(ctx)
	case property.FieldMetaDescription:
		return m.OldMetaDescription(ctx)
	case property.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case property.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Property field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PropertyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case property.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case property.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case property.FieldAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddress(v)
		return nil
	case property.FieldCity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCity(v)
		return nil
	case property.FieldCountry:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCountry(v)
		return nil
	case property.FieldPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrice(v)
		return nil
	case property.FieldStatus:
		v, ok := value.(property.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case property.FieldPublished:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublished(v)
		return nil
	case property.FieldMainImageURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMainImageURL(v)
		return nil
	case property.FieldGallery:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGallery(v)
		return nil
	case property.FieldBeds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBeds(v)
		return nil
	case property.FieldBaths:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBaths(v)
		return nil
	case property.FieldAreaSqm:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAreaSqm(v)
		return nil
	case property.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case property.FieldHeroTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeroTitle(v)
		return nil
	case property.FieldHeroSubtitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeroSubtitle(v)
		return nil
	case property.FieldCtaText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCtaText(v)
		return nil
	case property.FieldMetaTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetaTitle(v)
		return nil
	case property.FieldMetaDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetaDescription(v)
		return nil
	case property.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case property.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Property field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PropertyMutation) AddedFields() []string {
	var fields []string
	if m.addprice != nil {
		fields = append(fields, property.FieldPrice)
	}
	if m.addbeds != nil {
		fields = append(fields, property.FieldBeds)
	}
	if m.addbaths != nil {
		fields = append(fields, property.FieldBaths)
	}
	if m.addarea_sqm != nil {
		fields = append(fields, property.FieldAreaSqm)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PropertyMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case property.FieldPrice:
		return m.AddedPrice()
	case property.FieldBeds:
		return m.AddedBeds()
	case property.FieldBaths:
		return m.AddedBaths()
	case property.FieldAreaSqm:
		return m.AddedAreaSqm()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PropertyMutation) AddField(name string, value ent.Value) error {
	switch name {
	case property.FieldPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPrice(v)
		return nil
	case property.FieldBeds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBeds(v)
		return nil
	case property.FieldBaths:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBaths(v)
		return nil
	case property.FieldAreaSqm:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAreaSqm(v)
		return nil
	}
	return fmt.Errorf("unknown Property numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PropertyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(property.FieldMainImageURL) {
		fields = append(fields, property.FieldMainImageURL)
	}
	if m.FieldCleared(property.FieldGallery) {
		fields = append(fields, property.FieldGallery)
	}
	if m.FieldCleared(property.FieldBeds) {
		fields = append(fields, property.FieldBeds)
	}
	if m.FieldCleared(property.FieldBaths) {
		fields = append(fields, property.FieldBaths)
	}
	if m.FieldCleared(property.FieldAreaSqm) {
		fields = append(fields, property.FieldAreaSqm)
	}
	if m.FieldCleared(property.FieldDescription) {
		fields = append(fields, property.FieldDescription)
	}
	if m.FieldCleared(property.FieldHeroTitle) {
		fields = append(fields, property.FieldHeroTitle)
	}
	if m.FieldCleared(property.FieldHeroSubtitle) {
		fields = append(fields, property.FieldHeroSubtitle)
	}
	if m.FieldCleared(property.FieldCtaText) {
		fields = append(fields, property.FieldCtaText)
	}
	if m.FieldCleared(property.FieldMetaTitle) {
		fields = append(fields, property.FieldMetaTitle)
	}
	if m.FieldCleared(property.FieldMetaDescription) {
		fields = append(fields, property.FieldMetaDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PropertyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PropertyMutation) ClearField(name string) error {
	switch name {
	case property.FieldMainImageURL:
		m.ClearMainImageURL()
		return nil
	case property.FieldGallery:
		m.ClearGallery()
		return nil
	case property.FieldBeds:
		m.ClearBeds()
		return nil
	case property.FieldBaths:
		m.ClearBaths()
		return nil
	case property.FieldAreaSqm:
		m.ClearAreaSqm()
		return nil
	case property.FieldDescription:
		m.ClearDescription()
		return nil
	case property.FieldHeroTitle:
		m.ClearHeroTitle()
		return nil
	case property.FieldHeroSubtitle:
		m.ClearHeroSubtitle()
		return nil
	case property.FieldCtaText:
		m.ClearCtaText()
		return nil
	case property.FieldMetaTitle:
		m.ClearMetaTitle()
		return nil
	case property.FieldMetaDescription:
		m.ClearMetaDescription()
		return nil
	}
	return fmt.Errorf("unknown Property nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PropertyMutation) ResetField(name string) error {
	switch name {
	case property.FieldTitle:
		m.ResetTitle()
		return nil
	case property.FieldSlug:
		m.ResetSlug()
		return nil
	case property.FieldAddress:
		m.ResetAddress()
		return nil
	case property.FieldCity:
		m.ResetCity()
		return nil
	case property.FieldCountry:
		m.ResetCountry()
		return nil
	case property.FieldPrice:
		m.ResetPrice()
		return nil
	case property.FieldStatus:
		m.ResetStatus()
		return nil
	case property.FieldPublished:
		m.ResetPublished()
		return nil
	case property.FieldMainImageURL:
		m.ResetMainImageURL()
		return nil
	case property.FieldGallery:
		m.ResetGallery()
		return nil
	case property.FieldBeds:
		m.ResetBeds()
		return nil
	case property.FieldBaths:
		m.ResetBaths()
		return nil
	case property.FieldAreaSqm:
		m.ResetAreaSqm()
		return nil
	case property.FieldDescription:
		m.ResetDescription()
		return nil
	case property.FieldHeroTitle:
		m.ResetHeroTitle()
		return nil
	case property.FieldHeroSubtitle:
		m.ResetHeroSubtitle()
		return nil
	case property.FieldCtaText:
		m.ResetCtaText()
		return nil
	case property.FieldMetaTitle:
		m.ResetMetaTitle()
		return nil
	case property.FieldMetaDescription:
		m.ResetMetaDescription()
		return nil
	case property.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case property.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Property field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PropertyMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.deals != nil {
		edges = append(edges, property.EdgeDeals)
	}
	if m.activities != nil {
		edges = append(edges, property.EdgeActivities)
	}
	if m.submissions != nil {
		edges = append(edges, property.EdgeSubmissions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PropertyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case property.EdgeDeals:
		ids := make([]ent.Value, 0, len(m.deals))
		for id := range m.deals {
			ids = append(ids, id)
		}
		return ids
	case property.EdgeActivities:
		ids := make([]ent.Value, 0, len(m.activities))
		for id := range m.activities {
			ids = append(ids, id)
		}
		return ids
	case property.EdgeSubmissions:
		ids := make([]ent.Value, 0, len(m.submissions))
		for id := range m.submissions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PropertyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removeddeals != nil {
		edges = append(edges, property.EdgeDeals)
	}
	if m.removedactivities != nil {
		edges = append(edges, property.EdgeActivities)
	}
	if m.removedsubmissions != nil {
		edges = append(edges, property.EdgeSubmissions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PropertyMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case property.EdgeDeals:
		ids := make([]ent.Value, 0, len(m.removeddeals))
		for id := range m.removeddeals {
			ids = append(ids, id)
		}
		return ids
	case property.EdgeActivities:
		ids := make([]ent.Value, 0, len(m.removedactivities))
		for id := range m.removedactivities {
			ids = append(ids, id)
		}
		return ids
	case property.EdgeSubmissions:
		ids := make([]ent.Value, 0, len(m.removedsubmissions))
		for id := range m.removedsubmissions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PropertyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.cleareddeals {
		edges = append(edges, property.EdgeDeals)
	}
	if m.clearedactivities {
		edges = append(edges, property.EdgeActivities)
	}
	if m.clearedsubmissions {
		edges = append(edges, property.EdgeSubmissions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PropertyMutation) EdgeCleared(name string) bool {
	switch name {
	case property.EdgeDeals:
		return m.cleareddeals
	case property.EdgeActivities:
		return m.clearedactivities
	case property.EdgeSubmissions:
		return m.clearedsubmissions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PropertyMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Property unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PropertyMutation) ResetEdge(name string) error {
	switch name {
	case property.EdgeDeals:
		m.ResetDeals()
		return nil
	case property.EdgeActivities:
		m.ResetActivities()
		return nil
	case property.EdgeSubmissions:
		m.ResetSubmissions()
		return nil
	}
	return fmt.Errorf("unknown Property edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	name                  *string
	email                 *string
	password_hash         *string
	role                  *user.Role
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	assigned_leads        map[int]struct{}
	removedassigned_leads map[int]struct{}
	clearedassigned_leads bool
	activities            map[int]struct{}
	removedactivities     map[int]struct{}
	clearedactivities     bool
	done                  bool
	oldValue              func(context.Context) (*User, error)
	predicates            []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id int) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *UserMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *UserMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *UserMutation) ResetName() {
	m.name = nil
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *UserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *UserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *UserMutation) ResetPasswordHash() {
	m.password_hash = nil
}

// SetRole sets the "role" field.
func (m *UserMutation) SetRole(u user.Role) {
	m.role = &u
}

// Role returns the value of the "role" field in the mutation.
func (m *UserMutation) Role() (r user.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldRole(ctx context.Context) (v user.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *UserMutation) ResetRole() {
	m.role = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddAssignedLeadIDs adds the "assigned_leads" edge to the Lead entity by ids.
func (m *UserMutation) AddAssignedLeadIDs(ids ...int) {
	if m.assigned_leads == nil {
		m.assigned_leads = make(map[int]struct{})
	}
	for i := range ids {
		m.assigned_leads[ids[i]] = struct{}{}
	}
}

// ClearAssignedLeads clears the "assigned_leads" edge to the Lead entity.
func (m *UserMutation) ClearAssignedLeads() {
	m.clearedassigned_leads = true
}

// AssignedLeadsCleared reports if the "assigned_leads" edge to the Lead entity was cleared.
func (m *UserMutation) AssignedLeadsCleared() bool {
	return m.clearedassigned_leads
}

// RemoveAssignedLeadIDs removes the "assigned_leads" edge to the Lead entity by IDs.
func (m *UserMutation) RemoveAssignedLeadIDs(ids ...int) {
	if m.removedassigned_leads == nil {
		m.removedassigned_leads = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.assigned_leads, ids[i])
		m.removedassigned_leads[ids[i]] = struct{}{}
	}
}

// RemovedAssignedLeads returns the removed IDs of the "assigned_leads" edge to the Lead entity.
func (m *UserMutation) RemovedAssignedLeadsIDs() (ids []int) {
	for id := range m.removedassigned_leads {
		ids = append(ids, id)
	}
	return
}

// AssignedLeadsIDs returns the "assigned_leads" edge IDs in the mutation.
func (m *UserMutation) AssignedLeadsIDs() (ids []int) {
	for id := range m.assigned_leads {
		ids = append(ids, id)
	}
	return
}

// ResetAssignedLeads resets all changes to the "assigned_leads" edge.
func (m *UserMutation) ResetAssignedLeads() {
	m.assigned_leads = nil
	m.clearedassigned_leads = false
	m.removedassigned_leads = nil
}

// AddActivityIDs adds the "activities" edge to the Activity entity by ids.
func (m *UserMutation) AddActivityIDs(ids ...int) {
	if m.activities == nil {
		m.activities = make(map[int]struct{})
	}
	for i := range ids {
		m.activities[ids[i]] = struct{}{}
	}
}

// ClearActivities clears the "activities" edge to the Activity entity.
func (m *UserMutation) ClearActivities() {
	m.clearedactivities = true
}

// ActivitiesCleared reports if the "activities" edge to the Activity entity was cleared.
func (m *UserMutation) ActivitiesCleared() bool {
	return m.clearedactivities
}

// RemoveActivityIDs removes the "activities" edge to the Activity entity by IDs.
func (m *UserMutation) RemoveActivityIDs(ids ...int) {
	if m.removedactivities == nil {
		m.removedactivities = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.activities, ids[i])
		m.removedactivities[ids[i]] = struct{}{}
	}
}

// RemovedActivities returns the removed IDs of the "activities" edge to the Activity entity.
func (m *UserMutation) RemovedActivitiesIDs() (ids []int) {
	for id := range m.removedactivities {
		ids = append(ids, id)
	}
	return
}

// ActivitiesIDs returns the "activities" edge IDs in the mutation.
func (m *UserMutation) ActivitiesIDs() (ids []int) {
	for id := range m.activities {
		ids = append(ids, id)
	}
	return
}

// ResetActivities resets all changes to the "activities" edge.
func (m *UserMutation) ResetActivities() {
	m.activities = nil
	m.clearedactivities = false
	m.removedactivities = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.name != nil {
		fields = append(fields, user.FieldName)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.password_hash != nil {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.role != nil {
		fields = append(fields, user.FieldRole)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldName:
		return m.Name()
	case user.FieldEmail:
		return m.Email()
	case user.FieldPasswordHash:
		return m.PasswordHash()
	case user.FieldRole:
		return m.Role()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldName:
		return m.OldName(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case user.FieldRole:
		return m.OldRole(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case user.FieldRole:
		v, ok := value.(user.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldName:
		m.ResetName()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case user.FieldRole:
		m.ResetRole()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.assigned_leads != nil {
		edges = append(edges, user.EdgeAssignedLeads)
	}
	if m.activities != nil {
		edges = append(edges, user.EdgeActivities)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeAssignedLeads:
		ids := make([]ent.Value, 0, len(m.assigned_leads))
		for id := range m.assigned_leads {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeActivities:
		ids := make([]ent.Value, 0, len(m.activities))
		for id := range m.activities {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedassigned_leads != nil {
		edges = append(edges, user.EdgeAssignedLeads)
	}
	if m.removedactivities != nil {
		edges = append(edges, user.EdgeActivities)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeAssignedLeads:
		ids := make([]ent.Value, 0, len(m.removedassigned_leads))
		for id := range m.removedassigned_leads {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeActivities:
		ids := make([]ent.Value, 0, len(m.removedactivities))
		for id := range m.removedactivities {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedassigned_leads {
		edges = append(edges, user.EdgeAssignedLeads)
	}
	if m.clearedactivities {
		edges = append(edges, user.EdgeActivities)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeAssignedLeads:
		return m.clearedassigned_leads
	case user.EdgeActivities:
		return m.clearedactivities
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeAssignedLeads:
		m.ResetAssignedLeads()
		return nil
	case user.EdgeActivities:
		m.ResetActivities()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}
