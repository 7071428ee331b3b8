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
	"github.com/cuisinehq/mercuriale/gen/ent/catalogentry"
	"github.com/cuisinehq/mercuriale/gen/ent/importfile"
	"github.com/cuisinehq/mercuriale/gen/ent/importjob"
	"github.com/cuisinehq/mercuriale/gen/ent/predicate"
	"github.com/cuisinehq/mercuriale/gen/ent/recipesheet"
	"github.com/cuisinehq/mercuriale/gen/ent/stockmovement"
	"github.com/cuisinehq/mercuriale/internal/entity"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCatalogEntry  = "CatalogEntry"
	TypeImportFile    = "ImportFile"
	TypeImportJob     = "ImportJob"
	TypeRecipeSheet   = "RecipeSheet"
	TypeStockMovement = "StockMovement"
)

// CatalogEntryMutation represents an operation that mutates the CatalogEntry nodes in the graph.
type CatalogEntryMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	name              *string
	unit              *string
	unit_price        *float64
	addunit_price     *float64
	allergens         *[]string
	appendallergens   []string
	current_stock     *float64
	addcurrent_stock  *float64
	min_stock         *float64
	addmin_stock      *float64
	critical_stock    *float64
	addcritical_stock *float64
	max_stock         *float64
	addmax_stock      *float64
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*CatalogEntry, error)
	predicates        []predicate.CatalogEntry
}

var _ ent.Mutation = (*CatalogEntryMutation)(nil)

// catalogentryOption allows management of the mutation configuration using functional options.
type catalogentryOption func(*CatalogEntryMutation)

// newCatalogEntryMutation creates new mutation for the CatalogEntry entity.
func newCatalogEntryMutation(c config, op Op, opts ...catalogentryOption) *CatalogEntryMutation {
	m := &CatalogEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeCatalogEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCatalogEntryID sets the ID field of the mutation.
func withCatalogEntryID(id uuid.UUID) catalogentryOption {
	return func(m *CatalogEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *CatalogEntry
		)
		m.oldValue = func(ctx context.Context) (*CatalogEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CatalogEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCatalogEntry sets the old CatalogEntry of the mutation.
func withCatalogEntry(node *CatalogEntry) catalogentryOption {
	return func(m *CatalogEntryMutation) {
		m.oldValue = func(context.Context) (*CatalogEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CatalogEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CatalogEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CatalogEntry entities.
func (m *CatalogEntryMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CatalogEntryMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CatalogEntryMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CatalogEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *CatalogEntryMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CatalogEntryMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the CatalogEntry entity.
// If the CatalogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CatalogEntryMutation) OldName(ctx context.Context) (v string, err error) {
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
func (m *CatalogEntryMutation) ResetName() {
	m.name = nil
}

// SetUnit sets the "unit" field.
func (m *CatalogEntryMutation) SetUnit(s string) {
	m.unit = &s
}

// Unit returns the value of the "unit" field in the mutation.
func (m *CatalogEntryMutation) Unit() (r string, exists bool) {
	v := m.unit
	if v == nil {
		return
	}
	return *v, true
}

// OldUnit returns the old "unit" field's value of the CatalogEntry entity.
// If the CatalogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CatalogEntryMutation) OldUnit(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnit: %w", err)
	}
	return oldValue.Unit, nil
}

// ResetUnit resets all changes to the "unit" field.
func (m *CatalogEntryMutation) ResetUnit() {
	m.unit = nil
}

// SetUnitPrice sets the "unit_price" field.
func (m *CatalogEntryMutation) SetUnitPrice(f float64) {
	m.unit_price = &f
	m.addunit_price = nil
}

// UnitPrice returns the value of the "unit_price" field in the mutation.
func (m *CatalogEntryMutation) UnitPrice() (r float64, exists bool) {
	v := m.unit_price
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitPrice returns the old "unit_price" field's value of the CatalogEntry entity.
// If the CatalogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CatalogEntryMutation) OldUnitPrice(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitPrice: %w", err)
	}
	return oldValue.UnitPrice, nil
}

// AddUnitPrice adds f to the "unit_price" field.
func (m *CatalogEntryMutation) AddUnitPrice(f float64) {
	if m.addunit_price != nil {
		*m.addunit_price += f
	} else {
		m.addunit_price = &f
	}
}

// AddedUnitPrice returns the value that was added to the "unit_price" field in this mutation.
func (m *CatalogEntryMutation) AddedUnitPrice() (r float64, exists bool) {
	v := m.addunit_price
	if v == nil {
		return
	}
	return *v, true
}

// ResetUnitPrice resets all changes to the "unit_price" field.
func (m *CatalogEntryMutation) ResetUnitPrice() {
	m.unit_price = nil
	m.addunit_price = nil
}

// SetAllergens sets the "allergens" field.
func (m *CatalogEntryMutation) SetAllergens(s []string) {
	m.allergens = &s
	m.appendallergens = nil
}

// Allergens returns the value of the "allergens" field in the mutation.
func (m *CatalogEntryMutation) Allergens() (r []string, exists bool) {
	v := m.allergens
	if v == nil {
		return
	}
	return *v, true
}

// OldAllergens returns the old "allergens" field's value of the CatalogEntry entity.
// If the CatalogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CatalogEntryMutation) OldAllergens(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAllergens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAllergens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAllergens: %w", err)
	}
	return oldValue.Allergens, nil
}

// AppendAllergens adds s to the "allergens" field.
func (m *CatalogEntryMutation) AppendAllergens(s []string) {
	m.appendallergens = append(m.appendallergens, s...)
}

// AppendedAllergens returns the list of values that were appended to the "allergens" field in this mutation.
func (m *CatalogEntryMutation) AppendedAllergens() ([]string, bool) {
	if len(m.appendallergens) == 0 {
		return nil, false
	}
	return m.appendallergens, true
}

// ClearAllergens clears the value of the "allergens" field.
func (m *CatalogEntryMutation) ClearAllergens() {
	m.allergens = nil
	m.appendallergens = nil
	m.clearedFields[catalogentry.FieldAllergens] = struct{}{}
}

// AllergensCleared returns if the "allergens" field was cleared in this mutation.
func (m *CatalogEntryMutation) AllergensCleared() bool {
	_, ok := m.clearedFields[catalogentry.FieldAllergens]
	return ok
}

// ResetAllergens resets all changes to the "allergens" field.
func (m *CatalogEntryMutation) ResetAllergens() {
	m.allergens = nil
	m.appendallergens = nil
	delete(m.clearedFields, catalogentry.FieldAllergens)
}

// SetCurrentStock sets the "current_stock" field.
func (m *CatalogEntryMutation) SetCurrentStock(f float64) {
	m.current_stock = &f
	m.addcurrent_stock = nil
}

// CurrentStock returns the value of the "current_stock" field in the mutation.
func (m *CatalogEntryMutation) CurrentStock() (r float64, exists bool) {
	v := m.current_stock
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentStock returns the old "current_stock" field's value of the CatalogEntry entity.
// If the CatalogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CatalogEntryMutation) OldCurrentStock(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentStock is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentStock requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentStock: %w", err)
	}
	return oldValue.CurrentStock, nil
}

// AddCurrentStock adds f to the "current_stock" field.
func (m *CatalogEntryMutation) AddCurrentStock(f float64) {
	if m.addcurrent_stock != nil {
		*m.addcurrent_stock += f
	} else {
		m.addcurrent_stock = &f
	}
}

// AddedCurrentStock returns the value that was added to the "current_stock" field in this mutation.
func (m *CatalogEntryMutation) AddedCurrentStock() (r float64, exists bool) {
	v := m.addcurrent_stock
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentStock resets all changes to the "current_stock" field.
func (m *CatalogEntryMutation) ResetCurrentStock() {
	m.current_stock = nil
	m.addcurrent_stock = nil
}

// SetMinStock sets the "min_stock" field.
func (m *CatalogEntryMutation) SetMinStock(f float64) {
	m.min_stock = &f
	m.addmin_stock = nil
}

// MinStock returns the value of the "min_stock" field in the mutation.
func (m *CatalogEntryMutation) MinStock() (r float64, exists bool) {
	v := m.min_stock
	if v == nil {
		return
	}
	return *v, true
}

// OldMinStock returns the old "min_stock" field's value of the CatalogEntry entity.
// If the CatalogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CatalogEntryMutation) OldMinStock(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMinStock is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMinStock requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMinStock: %w", err)
	}
	return oldValue.MinStock, nil
}

// AddMinStock adds f to the "min_stock" field.
func (m *CatalogEntryMutation) AddMinStock(f float64) {
	if m.addmin_stock != nil {
		*m.addmin_stock += f
	} else {
		m.addmin_stock = &f
	}
}

// AddedMinStock returns the value that was added to the "min_stock" field in this mutation.
func (m *CatalogEntryMutation) AddedMinStock() (r float64, exists bool) {
	v := m.addmin_stock
	if v == nil {
		return
	}
	return *v, true
}

// ResetMinStock resets all changes to the "min_stock" field.
func (m *CatalogEntryMutation) ResetMinStock() {
	m.min_stock = nil
	m.addmin_stock = nil
}

// SetCriticalStock sets the "critical_stock" field.
func (m *CatalogEntryMutation) SetCriticalStock(f float64) {
	m.critical_stock = &f
	m.addcritical_stock = nil
}

// CriticalStock returns the value of the "critical_stock" field in the mutation.
func (m *CatalogEntryMutation) CriticalStock() (r float64, exists bool) {
	v := m.critical_stock
	if v == nil {
		return
	}
	return *v, true
}

// OldCriticalStock returns the old "critical_stock" field's value of the CatalogEntry entity.
// If the CatalogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CatalogEntryMutation) OldCriticalStock(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCriticalStock is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCriticalStock requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCriticalStock: %w", err)
	}
	return oldValue.CriticalStock, nil
}

// AddCriticalStock adds f to the "critical_stock" field.
func (m *CatalogEntryMutation) AddCriticalStock(f float64) {
	if m.addcritical_stock != nil {
		*m.addcritical_stock += f
	} else {
		m.addcritical_stock = &f
	}
}

// AddedCriticalStock returns the value that was added to the "critical_stock" field in this mutation.
func (m *CatalogEntryMutation) AddedCriticalStock() (r float64, exists bool) {
	v := m.addcritical_stock
	if v == nil {
		return
	}
	return *v, true
}

// ResetCriticalStock resets all changes to the "critical_stock" field.
func (m *CatalogEntryMutation) ResetCriticalStock() {
	m.critical_stock = nil
	m.addcritical_stock = nil
}

// SetMaxStock sets the "max_stock" field.
func (m *CatalogEntryMutation) SetMaxStock(f float64) {
	m.max_stock = &f
	m.addmax_stock = nil
}

// MaxStock returns the value of the "max_stock" field in the mutation.
func (m *CatalogEntryMutation) MaxStock() (r float64, exists bool) {
	v := m.max_stock
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxStock returns the old "max_stock" field's value of the CatalogEntry entity.
// If the CatalogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CatalogEntryMutation) OldMaxStock(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxStock is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxStock requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxStock: %w", err)
	}
	return oldValue.MaxStock, nil
}

// AddMaxStock adds f to the "max_stock" field.
func (m *CatalogEntryMutation) AddMaxStock(f float64) {
	if m.addmax_stock != nil {
		*m.addmax_stock += f
	} else {
		m.addmax_stock = &f
	}
}

// AddedMaxStock returns the value that was added to the "max_stock" field in this mutation.
func (m *CatalogEntryMutation) AddedMaxStock() (r float64, exists bool) {
	v := m.addmax_stock
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxStock resets all changes to the "max_stock" field.
func (m *CatalogEntryMutation) ResetMaxStock() {
	m.max_stock = nil
	m.addmax_stock = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CatalogEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CatalogEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CatalogEntry entity.
// If the CatalogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CatalogEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *CatalogEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CatalogEntryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CatalogEntryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CatalogEntry entity.
// If the CatalogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CatalogEntryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *CatalogEntryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the CatalogEntryMutation builder.
func (m *CatalogEntryMutation) Where(ps ...predicate.CatalogEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CatalogEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CatalogEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CatalogEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CatalogEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CatalogEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CatalogEntry).
func (m *CatalogEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CatalogEntryMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.name != nil {
		fields = append(fields, catalogentry.FieldName)
	}
	if m.unit != nil {
		fields = append(fields, catalogentry.FieldUnit)
	}
	if m.unit_price != nil {
		fields = append(fields, catalogentry.FieldUnitPrice)
	}
	if m.allergens != nil {
		fields = append(fields, catalogentry.FieldAllergens)
	}
	if m.current_stock != nil {
		fields = append(fields, catalogentry.FieldCurrentStock)
	}
	if m.min_stock != nil {
		fields = append(fields, catalogentry.FieldMinStock)
	}
	if m.critical_stock != nil {
		fields = append(fields, catalogentry.FieldCriticalStock)
	}
	if m.max_stock != nil {
		fields = append(fields, catalogentry.FieldMaxStock)
	}
	if m.created_at != nil {
		fields = append(fields, catalogentry.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, catalogentry.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CatalogEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case catalogentry.FieldName:
		return m.Name()
	case catalogentry.FieldUnit:
		return m.Unit()
	case catalogentry.FieldUnitPrice:
		return m.UnitPrice()
	case catalogentry.FieldAllergens:
		return m.Allergens()
	case catalogentry.FieldCurrentStock:
		return m.CurrentStock()
	case catalogentry.FieldMinStock:
		return m.MinStock()
	case catalogentry.FieldCriticalStock:
		return m.CriticalStock()
	case catalogentry.FieldMaxStock:
		return m.MaxStock()
	case catalogentry.FieldCreatedAt:
		return m.CreatedAt()
	case catalogentry.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CatalogEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case catalogentry.FieldName:
		return m.OldName(ctx)
	case catalogentry.FieldUnit:
		return m.OldUnit(ctx)
	case catalogentry.FieldUnitPrice:
		return m.OldUnitPrice(ctx)
	case catalogentry.FieldAllergens:
		return m.OldAllergens(ctx)
	case catalogentry.FieldCurrentStock:
		return m.OldCurrentStock(ctx)
	case catalogentry.FieldMinStock:
		return m.OldMinStock(ctx)
	case catalogentry.FieldCriticalStock:
		return m.OldCriticalStock(ctx)
	case catalogentry.FieldMaxStock:
		return m.OldMaxStock(ctx)
	case catalogentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case catalogentry.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CatalogEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CatalogEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case catalogentry.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case catalogentry.FieldUnit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnit(v)
		return nil
	case catalogentry.FieldUnitPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitPrice(v)
		return nil
	case catalogentry.FieldAllergens:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAllergens(v)
		return nil
	case catalogentry.FieldCurrentStock:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentStock(v)
		return nil
	case catalogentry.FieldMinStock:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMinStock(v)
		return nil
	case catalogentry.FieldCriticalStock:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCriticalStock(v)
		return nil
	case catalogentry.FieldMaxStock:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxStock(v)
		return nil
	case catalogentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case catalogentry.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CatalogEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CatalogEntryMutation) AddedFields() []string {
	var fields []string
	if m.addunit_price != nil {
		fields = append(fields, catalogentry.FieldUnitPrice)
	}
	if m.addcurrent_stock != nil {
		fields = append(fields, catalogentry.FieldCurrentStock)
	}
	if m.addmin_stock != nil {
		fields = append(fields, catalogentry.FieldMinStock)
	}
	if m.addcritical_stock != nil {
		fields = append(fields, catalogentry.FieldCriticalStock)
	}
	if m.addmax_stock != nil {
		fields = append(fields, catalogentry.FieldMaxStock)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CatalogEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case catalogentry.FieldUnitPrice:
		return m.AddedUnitPrice()
	case catalogentry.FieldCurrentStock:
		return m.AddedCurrentStock()
	case catalogentry.FieldMinStock:
		return m.AddedMinStock()
	case catalogentry.FieldCriticalStock:
		return m.AddedCriticalStock()
	case catalogentry.FieldMaxStock:
		return m.AddedMaxStock()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CatalogEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case catalogentry.FieldUnitPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUnitPrice(v)
		return nil
	case catalogentry.FieldCurrentStock:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentStock(v)
		return nil
	case catalogentry.FieldMinStock:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMinStock(v)
		return nil
	case catalogentry.FieldCriticalStock:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCriticalStock(v)
		return nil
	case catalogentry.FieldMaxStock:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxStock(v)
		return nil
	}
	return fmt.Errorf("unknown CatalogEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CatalogEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(catalogentry.FieldAllergens) {
		fields = append(fields, catalogentry.FieldAllergens)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CatalogEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CatalogEntryMutation) ClearField(name string) error {
	switch name {
	case catalogentry.FieldAllergens:
		m.ClearAllergens()
		return nil
	}
	return fmt.Errorf("unknown CatalogEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CatalogEntryMutation) ResetField(name string) error {
	switch name {
	case catalogentry.FieldName:
		m.ResetName()
		return nil
	case catalogentry.FieldUnit:
		m.ResetUnit()
		return nil
	case catalogentry.FieldUnitPrice:
		m.ResetUnitPrice()
		return nil
	case catalogentry.FieldAllergens:
		m.ResetAllergens()
		return nil
	case catalogentry.FieldCurrentStock:
		m.ResetCurrentStock()
		return nil
	case catalogentry.FieldMinStock:
		m.ResetMinStock()
		return nil
	case catalogentry.FieldCriticalStock:
		m.ResetCriticalStock()
		return nil
	case catalogentry.FieldMaxStock:
		m.ResetMaxStock()
		return nil
	case catalogentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case catalogentry.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown CatalogEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CatalogEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CatalogEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CatalogEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CatalogEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CatalogEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CatalogEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CatalogEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CatalogEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CatalogEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CatalogEntry edge %s", name)
}

// ImportFileMutation represents an operation that mutates the ImportFile nodes in the graph.
type ImportFileMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	source_path   *string
	content_hash  *[]byte
	filename      *string
	file_ext      *string
	file_size     *int64
	addfile_size  *int64
	uploaded_at   *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ImportFile, error)
	predicates    []predicate.ImportFile
}

var _ ent.Mutation = (*ImportFileMutation)(nil)

// importfileOption allows management of the mutation configuration using functional options.
type importfileOption func(*ImportFileMutation)

// newImportFileMutation creates new mutation for the ImportFile entity.
func newImportFileMutation(c config, op Op, opts ...importfileOption) *ImportFileMutation {
	m := &ImportFileMutation{
		config:        c,
		op:            op,
		typ:           TypeImportFile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withImportFileID sets the ID field of the mutation.
func withImportFileID(id uuid.UUID) importfileOption {
	return func(m *ImportFileMutation) {
		var (
			err   error
			once  sync.Once
			value *ImportFile
		)
		m.oldValue = func(ctx context.Context) (*ImportFile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ImportFile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withImportFile sets the old ImportFile of the mutation.
func withImportFile(node *ImportFile) importfileOption {
	return func(m *ImportFileMutation) {
		m.oldValue = func(context.Context) (*ImportFile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ImportFileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ImportFileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ImportFile entities.
func (m *ImportFileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ImportFileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ImportFileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ImportFile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSourcePath sets the "source_path" field.
func (m *ImportFileMutation) SetSourcePath(s string) {
	m.source_path = &s
}

// SourcePath returns the value of the "source_path" field in the mutation.
func (m *ImportFileMutation) SourcePath() (r string, exists bool) {
	v := m.source_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePath returns the old "source_path" field's value of the ImportFile entity.
// If the ImportFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportFileMutation) OldSourcePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePath: %w", err)
	}
	return oldValue.SourcePath, nil
}

// ResetSourcePath resets all changes to the "source_path" field.
func (m *ImportFileMutation) ResetSourcePath() {
	m.source_path = nil
}

// SetContentHash sets the "content_hash" field.
func (m *ImportFileMutation) SetContentHash(b []byte) {
	m.content_hash = &b
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *ImportFileMutation) ContentHash() (r []byte, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the ImportFile entity.
// If the ImportFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportFileMutation) OldContentHash(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *ImportFileMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetFilename sets the "filename" field.
func (m *ImportFileMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *ImportFileMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the ImportFile entity.
// If the ImportFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportFileMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *ImportFileMutation) ResetFilename() {
	m.filename = nil
}

// SetFileExt sets the "file_ext" field.
func (m *ImportFileMutation) SetFileExt(s string) {
	m.file_ext = &s
}

// FileExt returns the value of the "file_ext" field in the mutation.
func (m *ImportFileMutation) FileExt() (r string, exists bool) {
	v := m.file_ext
	if v == nil {
		return
	}
	return *v, true
}

// OldFileExt returns the old "file_ext" field's value of the ImportFile entity.
// If the ImportFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportFileMutation) OldFileExt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileExt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileExt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileExt: %w", err)
	}
	return oldValue.FileExt, nil
}

// ResetFileExt resets all changes to the "file_ext" field.
func (m *ImportFileMutation) ResetFileExt() {
	m.file_ext = nil
}

// SetFileSize sets the "file_size" field.
func (m *ImportFileMutation) SetFileSize(i int64) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *ImportFileMutation) FileSize() (r int64, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the ImportFile entity.
// If the ImportFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportFileMutation) OldFileSize(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *ImportFileMutation) AddFileSize(i int64) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *ImportFileMutation) AddedFileSize() (r int64, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *ImportFileMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *ImportFileMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *ImportFileMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the ImportFile entity.
// If the ImportFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportFileMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *ImportFileMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// Where appends a list predicates to the ImportFileMutation builder.
func (m *ImportFileMutation) Where(ps ...predicate.ImportFile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ImportFileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ImportFileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ImportFile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ImportFileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ImportFileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ImportFile).
func (m *ImportFileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ImportFileMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.source_path != nil {
		fields = append(fields, importfile.FieldSourcePath)
	}
	if m.content_hash != nil {
		fields = append(fields, importfile.FieldContentHash)
	}
	if m.filename != nil {
		fields = append(fields, importfile.FieldFilename)
	}
	if m.file_ext != nil {
		fields = append(fields, importfile.FieldFileExt)
	}
	if m.file_size != nil {
		fields = append(fields, importfile.FieldFileSize)
	}
	if m.uploaded_at != nil {
		fields = append(fields, importfile.FieldUploadedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ImportFileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case importfile.FieldSourcePath:
		return m.SourcePath()
	case importfile.FieldContentHash:
		return m.ContentHash()
	case importfile.FieldFilename:
		return m.Filename()
	case importfile.FieldFileExt:
		return m.FileExt()
	case importfile.FieldFileSize:
		return m.FileSize()
	case importfile.FieldUploadedAt:
		return m.UploadedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ImportFileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case importfile.FieldSourcePath:
		return m.OldSourcePath(ctx)
	case importfile.FieldContentHash:
		return m.OldContentHash(ctx)
	case importfile.FieldFilename:
		return m.OldFilename(ctx)
	case importfile.FieldFileExt:
		return m.OldFileExt(ctx)
	case importfile.FieldFileSize:
		return m.OldFileSize(ctx)
	case importfile.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ImportFile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ImportFileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case importfile.FieldSourcePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePath(v)
		return nil
	case importfile.FieldContentHash:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case importfile.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case importfile.FieldFileExt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileExt(v)
		return nil
	case importfile.FieldFileSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case importfile.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ImportFile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ImportFileMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, importfile.FieldFileSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ImportFileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case importfile.FieldFileSize:
		return m.AddedFileSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ImportFileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case importfile.FieldFileSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	}
	return fmt.Errorf("unknown ImportFile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ImportFileMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ImportFileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ImportFileMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ImportFile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ImportFileMutation) ResetField(name string) error {
	switch name {
	case importfile.FieldSourcePath:
		m.ResetSourcePath()
		return nil
	case importfile.FieldContentHash:
		m.ResetContentHash()
		return nil
	case importfile.FieldFilename:
		m.ResetFilename()
		return nil
	case importfile.FieldFileExt:
		m.ResetFileExt()
		return nil
	case importfile.FieldFileSize:
		m.ResetFileSize()
		return nil
	case importfile.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	}
	return fmt.Errorf("unknown ImportFile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ImportFileMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ImportFileMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ImportFileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ImportFileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ImportFileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ImportFileMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ImportFileMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ImportFile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ImportFileMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ImportFile edge %s", name)
}

// ImportJobMutation represents an operation that mutates the ImportJob nodes in the graph.
type ImportJobMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	file_id        *uuid.UUID
	format         *string
	mode           *string
	status         *string
	started_at     *time.Time
	finished_at    *time.Time
	error_message  *string
	extracted_text *string
	method         *string
	confidence     *float32
	addconfidence  *float32
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*ImportJob, error)
	predicates     []predicate.ImportJob
}

var _ ent.Mutation = (*ImportJobMutation)(nil)

// importjobOption allows management of the mutation configuration using functional options.
type importjobOption func(*ImportJobMutation)

// newImportJobMutation creates new mutation for the ImportJob entity.
func newImportJobMutation(c config, op Op, opts ...importjobOption) *ImportJobMutation {
	m := &ImportJobMutation{
		config:        c,
		op:            op,
		typ:           TypeImportJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withImportJobID sets the ID field of the mutation.
func withImportJobID(id uuid.UUID) importjobOption {
	return func(m *ImportJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ImportJob
		)
		m.oldValue = func(ctx context.Context) (*ImportJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ImportJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withImportJob sets the old ImportJob of the mutation.
func withImportJob(node *ImportJob) importjobOption {
	return func(m *ImportJobMutation) {
		m.oldValue = func(context.Context) (*ImportJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ImportJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ImportJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ImportJob entities.
func (m *ImportJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ImportJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ImportJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ImportJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFileID sets the "file_id" field.
func (m *ImportJobMutation) SetFileID(u uuid.UUID) {
	m.file_id = &u
}

// FileID returns the value of the "file_id" field in the mutation.
func (m *ImportJobMutation) FileID() (r uuid.UUID, exists bool) {
	v := m.file_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFileID returns the old "file_id" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldFileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileID: %w", err)
	}
	return oldValue.FileID, nil
}

// ResetFileID resets all changes to the "file_id" field.
func (m *ImportJobMutation) ResetFileID() {
	m.file_id = nil
}

// SetFormat sets the "format" field.
func (m *ImportJobMutation) SetFormat(s string) {
	m.format = &s
}

// Format returns the value of the "format" field in the mutation.
func (m *ImportJobMutation) Format() (r string, exists bool) {
	v := m.format
	if v == nil {
		return
	}
	return *v, true
}

// OldFormat returns the old "format" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormat: %w", err)
	}
	return oldValue.Format, nil
}

// ResetFormat resets all changes to the "format" field.
func (m *ImportJobMutation) ResetFormat() {
	m.format = nil
}

// SetMode sets the "mode" field.
func (m *ImportJobMutation) SetMode(s string) {
	m.mode = &s
}

// Mode returns the value of the "mode" field in the mutation.
func (m *ImportJobMutation) Mode() (r string, exists bool) {
	v := m.mode
	if v == nil {
		return
	}
	return *v, true
}

// OldMode returns the old "mode" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldMode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMode: %w", err)
	}
	return oldValue.Mode, nil
}

// ResetMode resets all changes to the "mode" field.
func (m *ImportJobMutation) ResetMode() {
	m.mode = nil
}

// SetStatus sets the "status" field.
func (m *ImportJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ImportJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldStatus(ctx context.Context) (v string, err error) {
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
func (m *ImportJobMutation) ResetStatus() {
	m.status = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ImportJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ImportJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ImportJobMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *ImportJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ImportJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *ImportJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[importjob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ImportJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[importjob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ImportJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, importjob.FieldFinishedAt)
}

// SetErrorMessage sets the "error_message" field.
func (m *ImportJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ImportJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ImportJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[importjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ImportJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[importjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ImportJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, importjob.FieldErrorMessage)
}

// SetExtractedText sets the "extracted_text" field.
func (m *ImportJobMutation) SetExtractedText(s string) {
	m.extracted_text = &s
}

// ExtractedText returns the value of the "extracted_text" field in the mutation.
func (m *ImportJobMutation) ExtractedText() (r string, exists bool) {
	v := m.extracted_text
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedText returns the old "extracted_text" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldExtractedText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedText: %w", err)
	}
	return oldValue.ExtractedText, nil
}

// ClearExtractedText clears the value of the "extracted_text" field.
func (m *ImportJobMutation) ClearExtractedText() {
	m.extracted_text = nil
	m.clearedFields[importjob.FieldExtractedText] = struct{}{}
}

// ExtractedTextCleared returns if the "extracted_text" field was cleared in this mutation.
func (m *ImportJobMutation) ExtractedTextCleared() bool {
	_, ok := m.clearedFields[importjob.FieldExtractedText]
	return ok
}

// ResetExtractedText resets all changes to the "extracted_text" field.
func (m *ImportJobMutation) ResetExtractedText() {
	m.extracted_text = nil
	delete(m.clearedFields, importjob.FieldExtractedText)
}

// SetMethod sets the "method" field.
func (m *ImportJobMutation) SetMethod(s string) {
	m.method = &s
}

// Method returns the value of the "method" field in the mutation.
func (m *ImportJobMutation) Method() (r string, exists bool) {
	v := m.method
	if v == nil {
		return
	}
	return *v, true
}

// OldMethod returns the old "method" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldMethod(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMethod: %w", err)
	}
	return oldValue.Method, nil
}

// ClearMethod clears the value of the "method" field.
func (m *ImportJobMutation) ClearMethod() {
	m.method = nil
	m.clearedFields[importjob.FieldMethod] = struct{}{}
}

// MethodCleared returns if the "method" field was cleared in this mutation.
func (m *ImportJobMutation) MethodCleared() bool {
	_, ok := m.clearedFields[importjob.FieldMethod]
	return ok
}

// ResetMethod resets all changes to the "method" field.
func (m *ImportJobMutation) ResetMethod() {
	m.method = nil
	delete(m.clearedFields, importjob.FieldMethod)
}

// SetConfidence sets the "confidence" field.
func (m *ImportJobMutation) SetConfidence(f float32) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *ImportJobMutation) Confidence() (r float32, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldConfidence(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *ImportJobMutation) AddConfidence(f float32) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *ImportJobMutation) AddedConfidence() (r float32, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidence clears the value of the "confidence" field.
func (m *ImportJobMutation) ClearConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	m.clearedFields[importjob.FieldConfidence] = struct{}{}
}

// ConfidenceCleared returns if the "confidence" field was cleared in this mutation.
func (m *ImportJobMutation) ConfidenceCleared() bool {
	_, ok := m.clearedFields[importjob.FieldConfidence]
	return ok
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *ImportJobMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	delete(m.clearedFields, importjob.FieldConfidence)
}

// Where appends a list predicates to the ImportJobMutation builder.
func (m *ImportJobMutation) Where(ps ...predicate.ImportJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ImportJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ImportJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ImportJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ImportJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ImportJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ImportJob).
func (m *ImportJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ImportJobMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.file_id != nil {
		fields = append(fields, importjob.FieldFileID)
	}
	if m.format != nil {
		fields = append(fields, importjob.FieldFormat)
	}
	if m.mode != nil {
		fields = append(fields, importjob.FieldMode)
	}
	if m.status != nil {
		fields = append(fields, importjob.FieldStatus)
	}
	if m.started_at != nil {
		fields = append(fields, importjob.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, importjob.FieldFinishedAt)
	}
	if m.error_message != nil {
		fields = append(fields, importjob.FieldErrorMessage)
	}
	if m.extracted_text != nil {
		fields = append(fields, importjob.FieldExtractedText)
	}
	if m.method != nil {
		fields = append(fields, importjob.FieldMethod)
	}
	if m.confidence != nil {
		fields = append(fields, importjob.FieldConfidence)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ImportJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case importjob.FieldFileID:
		return m.FileID()
	case importjob.FieldFormat:
		return m.Format()
	case importjob.FieldMode:
		return m.Mode()
	case importjob.FieldStatus:
		return m.Status()
	case importjob.FieldStartedAt:
		return m.StartedAt()
	case importjob.FieldFinishedAt:
		return m.FinishedAt()
	case importjob.FieldErrorMessage:
		return m.ErrorMessage()
	case importjob.FieldExtractedText:
		return m.ExtractedText()
	case importjob.FieldMethod:
		return m.Method()
	case importjob.FieldConfidence:
		return m.Confidence()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ImportJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case importjob.FieldFileID:
		return m.OldFileID(ctx)
	case importjob.FieldFormat:
		return m.OldFormat(ctx)
	case importjob.FieldMode:
		return m.OldMode(ctx)
	case importjob.FieldStatus:
		return m.OldStatus(ctx)
	case importjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case importjob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case importjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case importjob.FieldExtractedText:
		return m.OldExtractedText(ctx)
	case importjob.FieldMethod:
		return m.OldMethod(ctx)
	case importjob.FieldConfidence:
		return m.OldConfidence(ctx)
	}
	return nil, fmt.Errorf("unknown ImportJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ImportJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case importjob.FieldFileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileID(v)
		return nil
	case importjob.FieldFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormat(v)
		return nil
	case importjob.FieldMode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMode(v)
		return nil
	case importjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case importjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case importjob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case importjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case importjob.FieldExtractedText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedText(v)
		return nil
	case importjob.FieldMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMethod(v)
		return nil
	case importjob.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown ImportJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ImportJobMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, importjob.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ImportJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case importjob.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ImportJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case importjob.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown ImportJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ImportJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(importjob.FieldFinishedAt) {
		fields = append(fields, importjob.FieldFinishedAt)
	}
	if m.FieldCleared(importjob.FieldErrorMessage) {
		fields = append(fields, importjob.FieldErrorMessage)
	}
	if m.FieldCleared(importjob.FieldExtractedText) {
		fields = append(fields, importjob.FieldExtractedText)
	}
	if m.FieldCleared(importjob.FieldMethod) {
		fields = append(fields, importjob.FieldMethod)
	}
	if m.FieldCleared(importjob.FieldConfidence) {
		fields = append(fields, importjob.FieldConfidence)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ImportJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ImportJobMutation) ClearField(name string) error {
	switch name {
	case importjob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case importjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case importjob.FieldExtractedText:
		m.ClearExtractedText()
		return nil
	case importjob.FieldMethod:
		m.ClearMethod()
		return nil
	case importjob.FieldConfidence:
		m.ClearConfidence()
		return nil
	}
	return fmt.Errorf("unknown ImportJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ImportJobMutation) ResetField(name string) error {
	switch name {
	case importjob.FieldFileID:
		m.ResetFileID()
		return nil
	case importjob.FieldFormat:
		m.ResetFormat()
		return nil
	case importjob.FieldMode:
		m.ResetMode()
		return nil
	case importjob.FieldStatus:
		m.ResetStatus()
		return nil
	case importjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case importjob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case importjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case importjob.FieldExtractedText:
		m.ResetExtractedText()
		return nil
	case importjob.FieldMethod:
		m.ResetMethod()
		return nil
	case importjob.FieldConfidence:
		m.ResetConfidence()
		return nil
	}
	return fmt.Errorf("unknown ImportJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ImportJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ImportJobMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ImportJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ImportJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ImportJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ImportJobMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ImportJobMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ImportJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ImportJobMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ImportJob edge %s", name)
}

// RecipeSheetMutation represents an operation that mutates the RecipeSheet nodes in the graph.
type RecipeSheetMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	name          *string
	portions      *int
	addportions   *int
	category      *recipesheet.Category
	lines         *[]entity.RecipeLine
	appendlines   []entity.RecipeLine
	instructions  *string
	cost          *float64
	addcost       *float64
	sale_price    *float64
	addsale_price *float64
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*RecipeSheet, error)
	predicates    []predicate.RecipeSheet
}

var _ ent.Mutation = (*RecipeSheetMutation)(nil)

// recipesheetOption allows management of the mutation configuration using functional options.
type recipesheetOption func(*RecipeSheetMutation)

// newRecipeSheetMutation creates new mutation for the RecipeSheet entity.
func newRecipeSheetMutation(c config, op Op, opts ...recipesheetOption) *RecipeSheetMutation {
	m := &RecipeSheetMutation{
		config:        c,
		op:            op,
		typ:           TypeRecipeSheet,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRecipeSheetID sets the ID field of the mutation.
func withRecipeSheetID(id uuid.UUID) recipesheetOption {
	return func(m *RecipeSheetMutation) {
		var (
			err   error
			once  sync.Once
			value *RecipeSheet
		)
		m.oldValue = func(ctx context.Context) (*RecipeSheet, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RecipeSheet.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRecipeSheet sets the old RecipeSheet of the mutation.
func withRecipeSheet(node *RecipeSheet) recipesheetOption {
	return func(m *RecipeSheetMutation) {
		m.oldValue = func(context.Context) (*RecipeSheet, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RecipeSheetMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RecipeSheetMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RecipeSheet entities.
func (m *RecipeSheetMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RecipeSheetMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RecipeSheetMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RecipeSheet.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *RecipeSheetMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *RecipeSheetMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the RecipeSheet entity.
// If the RecipeSheet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecipeSheetMutation) OldName(ctx context.Context) (v string, err error) {
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
func (m *RecipeSheetMutation) ResetName() {
	m.name = nil
}

// SetPortions sets the "portions" field.
func (m *RecipeSheetMutation) SetPortions(i int) {
	m.portions = &i
	m.addportions = nil
}

// Portions returns the value of the "portions" field in the mutation.
func (m *RecipeSheetMutation) Portions() (r int, exists bool) {
	v := m.portions
	if v == nil {
		return
	}
	return *v, true
}

// OldPortions returns the old "portions" field's value of the RecipeSheet entity.
// If the RecipeSheet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecipeSheetMutation) OldPortions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPortions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPortions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPortions: %w", err)
	}
	return oldValue.Portions, nil
}

// AddPortions adds i to the "portions" field.
func (m *RecipeSheetMutation) AddPortions(i int) {
	if m.addportions != nil {
		*m.addportions += i
	} else {
		m.addportions = &i
	}
}

// AddedPortions returns the value that was added to the "portions" field in this mutation.
func (m *RecipeSheetMutation) AddedPortions() (r int, exists bool) {
	v := m.addportions
	if v == nil {
		return
	}
	return *v, true
}

// ResetPortions resets all changes to the "portions" field.
func (m *RecipeSheetMutation) ResetPortions() {
	m.portions = nil
	m.addportions = nil
}

// SetCategory sets the "category" field.
func (m *RecipeSheetMutation) SetCategory(r recipesheet.Category) {
	m.category = &r
}

// Category returns the value of the "category" field in the mutation.
func (m *RecipeSheetMutation) Category() (r recipesheet.Category, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the RecipeSheet entity.
// If the RecipeSheet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecipeSheetMutation) OldCategory(ctx context.Context) (v recipesheet.Category, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *RecipeSheetMutation) ResetCategory() {
	m.category = nil
}

// SetLines sets the "lines" field.
func (m *RecipeSheetMutation) SetLines(el []entity.RecipeLine) {
	m.lines = &el
	m.appendlines = nil
}

// Lines returns the value of the "lines" field in the mutation.
func (m *RecipeSheetMutation) Lines() (r []entity.RecipeLine, exists bool) {
	v := m.lines
	if v == nil {
		return
	}
	return *v, true
}

// OldLines returns the old "lines" field's value of the RecipeSheet entity.
// If the RecipeSheet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecipeSheetMutation) OldLines(ctx context.Context) (v []entity.RecipeLine, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLines is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLines requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLines: %w", err)
	}
	return oldValue.Lines, nil
}

// AppendLines adds el to the "lines" field.
func (m *RecipeSheetMutation) AppendLines(el []entity.RecipeLine) {
	m.appendlines = append(m.appendlines, el...)
}

// AppendedLines returns the list of values that were appended to the "lines" field in this mutation.
func (m *RecipeSheetMutation) AppendedLines() ([]entity.RecipeLine, bool) {
	if len(m.appendlines) == 0 {
		return nil, false
	}
	return m.appendlines, true
}

// ClearLines clears the value of the "lines" field.
func (m *RecipeSheetMutation) ClearLines() {
	m.lines = nil
	m.appendlines = nil
	m.clearedFields[recipesheet.FieldLines] = struct{}{}
}

// LinesCleared returns if the "lines" field was cleared in this mutation.
func (m *RecipeSheetMutation) LinesCleared() bool {
	_, ok := m.clearedFields[recipesheet.FieldLines]
	return ok
}

// ResetLines resets all changes to the "lines" field.
func (m *RecipeSheetMutation) ResetLines() {
	m.lines = nil
	m.appendlines = nil
	delete(m.clearedFields, recipesheet.FieldLines)
}

// SetInstructions sets the "instructions" field.
func (m *RecipeSheetMutation) SetInstructions(s string) {
	m.instructions = &s
}

// Instructions returns the value of the "instructions" field in the mutation.
func (m *RecipeSheetMutation) Instructions() (r string, exists bool) {
	v := m.instructions
	if v == nil {
		return
	}
	return *v, true
}

// OldInstructions returns the old "instructions" field's value of the RecipeSheet entity.
// If the RecipeSheet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecipeSheetMutation) OldInstructions(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstructions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstructions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstructions: %w", err)
	}
	return oldValue.Instructions, nil
}

// ClearInstructions clears the value of the "instructions" field.
func (m *RecipeSheetMutation) ClearInstructions() {
	m.instructions = nil
	m.clearedFields[recipesheet.FieldInstructions] = struct{}{}
}

// InstructionsCleared returns if the "instructions" field was cleared in this mutation.
func (m *RecipeSheetMutation) InstructionsCleared() bool {
	_, ok := m.clearedFields[recipesheet.FieldInstructions]
	return ok
}

// ResetInstructions resets all changes to the "instructions" field.
func (m *RecipeSheetMutation) ResetInstructions() {
	m.instructions = nil
	delete(m.clearedFields, recipesheet.FieldInstructions)
}

// SetCost sets the "cost" field.
func (m *RecipeSheetMutation) SetCost(f float64) {
	m.cost = &f
	m.addcost = nil
}

// Cost returns the value of the "cost" field in the mutation.
func (m *RecipeSheetMutation) Cost() (r float64, exists bool) {
	v := m.cost
	if v == nil {
		return
	}
	return *v, true
}

// OldCost returns the old "cost" field's value of the RecipeSheet entity.
// If the RecipeSheet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecipeSheetMutation) OldCost(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCost: %w", err)
	}
	return oldValue.Cost, nil
}

// AddCost adds f to the "cost" field.
func (m *RecipeSheetMutation) AddCost(f float64) {
	if m.addcost != nil {
		*m.addcost += f
	} else {
		m.addcost = &f
	}
}

// AddedCost returns the value that was added to the "cost" field in this mutation.
func (m *RecipeSheetMutation) AddedCost() (r float64, exists bool) {
	v := m.addcost
	if v == nil {
		return
	}
	return *v, true
}

// ResetCost resets all changes to the "cost" field.
func (m *RecipeSheetMutation) ResetCost() {
	m.cost = nil
	m.addcost = nil
}

// SetSalePrice sets the "sale_price" field.
func (m *RecipeSheetMutation) SetSalePrice(f float64) {
	m.sale_price = &f
	m.addsale_price = nil
}

// SalePrice returns the value of the "sale_price" field in the mutation.
func (m *RecipeSheetMutation) SalePrice() (r float64, exists bool) {
	v := m.sale_price
	if v == nil {
		return
	}
	return *v, true
}

// OldSalePrice returns the old "sale_price" field's value of the RecipeSheet entity.
// If the RecipeSheet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecipeSheetMutation) OldSalePrice(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSalePrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSalePrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSalePrice: %w", err)
	}
	return oldValue.SalePrice, nil
}

// AddSalePrice adds f to the "sale_price" field.
func (m *RecipeSheetMutation) AddSalePrice(f float64) {
	if m.addsale_price != nil {
		*m.addsale_price += f
	} else {
		m.addsale_price = &f
	}
}

// AddedSalePrice returns the value that was added to the "sale_price" field in this mutation.
func (m *RecipeSheetMutation) AddedSalePrice() (r float64, exists bool) {
	v := m.addsale_price
	if v == nil {
		return
	}
	return *v, true
}

// ResetSalePrice resets all changes to the "sale_price" field.
func (m *RecipeSheetMutation) ResetSalePrice() {
	m.sale_price = nil
	m.addsale_price = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RecipeSheetMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RecipeSheetMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RecipeSheet entity.
// If the RecipeSheet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecipeSheetMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *RecipeSheetMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RecipeSheetMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RecipeSheetMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the RecipeSheet entity.
// If the RecipeSheet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecipeSheetMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *RecipeSheetMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the RecipeSheetMutation builder.
func (m *RecipeSheetMutation) Where(ps ...predicate.RecipeSheet) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RecipeSheetMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RecipeSheetMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RecipeSheet, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RecipeSheetMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RecipeSheetMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RecipeSheet).
func (m *RecipeSheetMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RecipeSheetMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.name != nil {
		fields = append(fields, recipesheet.FieldName)
	}
	if m.portions != nil {
		fields = append(fields, recipesheet.FieldPortions)
	}
	if m.category != nil {
		fields = append(fields, recipesheet.FieldCategory)
	}
	if m.lines != nil {
		fields = append(fields, recipesheet.FieldLines)
	}
	if m.instructions != nil {
		fields = append(fields, recipesheet.FieldInstructions)
	}
	if m.cost != nil {
		fields = append(fields, recipesheet.FieldCost)
	}
	if m.sale_price != nil {
		fields = append(fields, recipesheet.FieldSalePrice)
	}
	if m.created_at != nil {
		fields = append(fields, recipesheet.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, recipesheet.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RecipeSheetMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case recipesheet.FieldName:
		return m.Name()
	case recipesheet.FieldPortions:
		return m.Portions()
	case recipesheet.FieldCategory:
		return m.Category()
	case recipesheet.FieldLines:
		return m.Lines()
	case recipesheet.FieldInstructions:
		return m.Instructions()
	case recipesheet.FieldCost:
		return m.Cost()
	case recipesheet.FieldSalePrice:
		return m.SalePrice()
	case recipesheet.FieldCreatedAt:
		return m.CreatedAt()
	case recipesheet.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RecipeSheetMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case recipesheet.FieldName:
		return m.OldName(ctx)
	case recipesheet.FieldPortions:
		return m.OldPortions(ctx)
	case recipesheet.FieldCategory:
		return m.OldCategory(ctx)
	case recipesheet.FieldLines:
		return m.OldLines(ctx)
	case recipesheet.FieldInstructions:
		return m.OldInstructions(ctx)
	case recipesheet.FieldCost:
		return m.OldCost(ctx)
	case recipesheet.FieldSalePrice:
		return m.OldSalePrice(ctx)
	case recipesheet.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case recipesheet.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RecipeSheet field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecipeSheetMutation) SetField(name string, value ent.Value) error {
	switch name {
	case recipesheet.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case recipesheet.FieldPortions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPortions(v)
		return nil
	case recipesheet.FieldCategory:
		v, ok := value.(recipesheet.Category)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case recipesheet.FieldLines:
		v, ok := value.([]entity.RecipeLine)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLines(v)
		return nil
	case recipesheet.FieldInstructions:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstructions(v)
		return nil
	case recipesheet.FieldCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCost(v)
		return nil
	case recipesheet.FieldSalePrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSalePrice(v)
		return nil
	case recipesheet.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case recipesheet.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RecipeSheet field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RecipeSheetMutation) AddedFields() []string {
	var fields []string
	if m.addportions != nil {
		fields = append(fields, recipesheet.FieldPortions)
	}
	if m.addcost != nil {
		fields = append(fields, recipesheet.FieldCost)
	}
	if m.addsale_price != nil {
		fields = append(fields, recipesheet.FieldSalePrice)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RecipeSheetMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case recipesheet.FieldPortions:
		return m.AddedPortions()
	case recipesheet.FieldCost:
		return m.AddedCost()
	case recipesheet.FieldSalePrice:
		return m.AddedSalePrice()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecipeSheetMutation) AddField(name string, value ent.Value) error {
	switch name {
	case recipesheet.FieldPortions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPortions(v)
		return nil
	case recipesheet.FieldCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCost(v)
		return nil
	case recipesheet.FieldSalePrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSalePrice(v)
		return nil
	}
	return fmt.Errorf("unknown RecipeSheet numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RecipeSheetMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(recipesheet.FieldLines) {
		fields = append(fields, recipesheet.FieldLines)
	}
	if m.FieldCleared(recipesheet.FieldInstructions) {
		fields = append(fields, recipesheet.FieldInstructions)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RecipeSheetMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RecipeSheetMutation) ClearField(name string) error {
	switch name {
	case recipesheet.FieldLines:
		m.ClearLines()
		return nil
	case recipesheet.FieldInstructions:
		m.ClearInstructions()
		return nil
	}
	return fmt.Errorf("unknown RecipeSheet nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RecipeSheetMutation) ResetField(name string) error {
	switch name {
	case recipesheet.FieldName:
		m.ResetName()
		return nil
	case recipesheet.FieldPortions:
		m.ResetPortions()
		return nil
	case recipesheet.FieldCategory:
		m.ResetCategory()
		return nil
	case recipesheet.FieldLines:
		m.ResetLines()
		return nil
	case recipesheet.FieldInstructions:
		m.ResetInstructions()
		return nil
	case recipesheet.FieldCost:
		m.ResetCost()
		return nil
	case recipesheet.FieldSalePrice:
		m.ResetSalePrice()
		return nil
	case recipesheet.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case recipesheet.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown RecipeSheet field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RecipeSheetMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RecipeSheetMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RecipeSheetMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RecipeSheetMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RecipeSheetMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RecipeSheetMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RecipeSheetMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RecipeSheet unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RecipeSheetMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RecipeSheet edge %s", name)
}

// StockMovementMutation represents an operation that mutates the StockMovement nodes in the graph.
type StockMovementMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	entry_id      *uuid.UUID
	direction     *stockmovement.Direction
	quantity      *float64
	addquantity   *float64
	reason        *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*StockMovement, error)
	predicates    []predicate.StockMovement
}

var _ ent.Mutation = (*StockMovementMutation)(nil)

// stockmovementOption allows management of the mutation configuration using functional options.
type stockmovementOption func(*StockMovementMutation)

// newStockMovementMutation creates new mutation for the StockMovement entity.
func newStockMovementMutation(c config, op Op, opts ...stockmovementOption) *StockMovementMutation {
	m := &StockMovementMutation{
		config:        c,
		op:            op,
		typ:           TypeStockMovement,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStockMovementID sets the ID field of the mutation.
func withStockMovementID(id uuid.UUID) stockmovementOption {
	return func(m *StockMovementMutation) {
		var (
			err   error
			once  sync.Once
			value *StockMovement
		)
		m.oldValue = func(ctx context.Context) (*StockMovement, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StockMovement.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStockMovement sets the old StockMovement of the mutation.
func withStockMovement(node *StockMovement) stockmovementOption {
	return func(m *StockMovementMutation) {
		m.oldValue = func(context.Context) (*StockMovement, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StockMovementMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StockMovementMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StockMovement entities.
func (m *StockMovementMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StockMovementMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StockMovementMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StockMovement.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEntryID sets the "entry_id" field.
func (m *StockMovementMutation) SetEntryID(u uuid.UUID) {
	m.entry_id = &u
}

// EntryID returns the value of the "entry_id" field in the mutation.
func (m *StockMovementMutation) EntryID() (r uuid.UUID, exists bool) {
	v := m.entry_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntryID returns the old "entry_id" field's value of the StockMovement entity.
// If the StockMovement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StockMovementMutation) OldEntryID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntryID: %w", err)
	}
	return oldValue.EntryID, nil
}

// ResetEntryID resets all changes to the "entry_id" field.
func (m *StockMovementMutation) ResetEntryID() {
	m.entry_id = nil
}

// SetDirection sets the "direction" field.
func (m *StockMovementMutation) SetDirection(s stockmovement.Direction) {
	m.direction = &s
}

// Direction returns the value of the "direction" field in the mutation.
func (m *StockMovementMutation) Direction() (r stockmovement.Direction, exists bool) {
	v := m.direction
	if v == nil {
		return
	}
	return *v, true
}

// OldDirection returns the old "direction" field's value of the StockMovement entity.
// If the StockMovement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StockMovementMutation) OldDirection(ctx context.Context) (v stockmovement.Direction, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDirection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDirection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDirection: %w", err)
	}
	return oldValue.Direction, nil
}

// ResetDirection resets all changes to the "direction" field.
func (m *StockMovementMutation) ResetDirection() {
	m.direction = nil
}

// SetQuantity sets the "quantity" field.
func (m *StockMovementMutation) SetQuantity(f float64) {
	m.quantity = &f
	m.addquantity = nil
}

// Quantity returns the value of the "quantity" field in the mutation.
func (m *StockMovementMutation) Quantity() (r float64, exists bool) {
	v := m.quantity
	if v == nil {
		return
	}
	return *v, true
}

// OldQuantity returns the old "quantity" field's value of the StockMovement entity.
// If the StockMovement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StockMovementMutation) OldQuantity(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuantity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuantity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuantity: %w", err)
	}
	return oldValue.Quantity, nil
}

// AddQuantity adds f to the "quantity" field.
func (m *StockMovementMutation) AddQuantity(f float64) {
	if m.addquantity != nil {
		*m.addquantity += f
	} else {
		m.addquantity = &f
	}
}

// AddedQuantity returns the value that was added to the "quantity" field in this mutation.
func (m *StockMovementMutation) AddedQuantity() (r float64, exists bool) {
	v := m.addquantity
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuantity resets all changes to the "quantity" field.
func (m *StockMovementMutation) ResetQuantity() {
	m.quantity = nil
	m.addquantity = nil
}

// SetReason sets the "reason" field.
func (m *StockMovementMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *StockMovementMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the StockMovement entity.
// If the StockMovement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StockMovementMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ResetReason resets all changes to the "reason" field.
func (m *StockMovementMutation) ResetReason() {
	m.reason = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *StockMovementMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StockMovementMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StockMovement entity.
// If the StockMovement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StockMovementMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *StockMovementMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the StockMovementMutation builder.
func (m *StockMovementMutation) Where(ps ...predicate.StockMovement) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StockMovementMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StockMovementMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StockMovement, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StockMovementMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StockMovementMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StockMovement).
func (m *StockMovementMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StockMovementMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.entry_id != nil {
		fields = append(fields, stockmovement.FieldEntryID)
	}
	if m.direction != nil {
		fields = append(fields, stockmovement.FieldDirection)
	}
	if m.quantity != nil {
		fields = append(fields, stockmovement.FieldQuantity)
	}
	if m.reason != nil {
		fields = append(fields, stockmovement.FieldReason)
	}
	if m.created_at != nil {
		fields = append(fields, stockmovement.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StockMovementMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stockmovement.FieldEntryID:
		return m.EntryID()
	case stockmovement.FieldDirection:
		return m.Direction()
	case stockmovement.FieldQuantity:
		return m.Quantity()
	case stockmovement.FieldReason:
		return m.Reason()
	case stockmovement.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StockMovementMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stockmovement.FieldEntryID:
		return m.OldEntryID(ctx)
	case stockmovement.FieldDirection:
		return m.OldDirection(ctx)
	case stockmovement.FieldQuantity:
		return m.OldQuantity(ctx)
	case stockmovement.FieldReason:
		return m.OldReason(ctx)
	case stockmovement.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StockMovement field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StockMovementMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stockmovement.FieldEntryID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntryID(v)
		return nil
	case stockmovement.FieldDirection:
		v, ok := value.(stockmovement.Direction)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDirection(v)
		return nil
	case stockmovement.FieldQuantity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuantity(v)
		return nil
	case stockmovement.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case stockmovement.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StockMovement field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StockMovementMutation) AddedFields() []string {
	var fields []string
	if m.addquantity != nil {
		fields = append(fields, stockmovement.FieldQuantity)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StockMovementMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case stockmovement.FieldQuantity:
		return m.AddedQuantity()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StockMovementMutation) AddField(name string, value ent.Value) error {
	switch name {
	case stockmovement.FieldQuantity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuantity(v)
		return nil
	}
	return fmt.Errorf("unknown StockMovement numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StockMovementMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StockMovementMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StockMovementMutation) ClearField(name string) error {
	return fmt.Errorf("unknown StockMovement nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StockMovementMutation) ResetField(name string) error {
	switch name {
	case stockmovement.FieldEntryID:
		m.ResetEntryID()
		return nil
	case stockmovement.FieldDirection:
		m.ResetDirection()
		return nil
	case stockmovement.FieldQuantity:
		m.ResetQuantity()
		return nil
	case stockmovement.FieldReason:
		m.ResetReason()
		return nil
	case stockmovement.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown StockMovement field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StockMovementMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StockMovementMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StockMovementMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StockMovementMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StockMovementMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StockMovementMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StockMovementMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StockMovement unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StockMovementMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StockMovement edge %s", name)
}
