// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/curaline/curaline_backend/internal/repo/calendarcredential"
	"github.com/curaline/curaline_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// CalendarCredentialUpdate is the builder for updating CalendarCredential entities.
type CalendarCredentialUpdate struct {
	config
	hooks    []Hook
	mutation *CalendarCredentialMutation
}

// Where appends a list predicates to the CalendarCredentialUpdate builder.
func (_u *CalendarCredentialUpdate) Where(ps ...predicate.CalendarCredential) *CalendarCredentialUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CalendarCredentialUpdate) SetUpdatedAt(v time.Time) *CalendarCredentialUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *CalendarCredentialUpdate) SetDoctorID(v uuid.UUID) *CalendarCredentialUpdate {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *CalendarCredentialUpdate) SetNillableDoctorID(v *uuid.UUID) *CalendarCredentialUpdate {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *CalendarCredentialUpdate) SetProvider(v string) *CalendarCredentialUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *CalendarCredentialUpdate) SetNillableProvider(v *string) *CalendarCredentialUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetRefreshToken sets the "refresh_token" field.
func (_u *CalendarCredentialUpdate) SetRefreshToken(v string) *CalendarCredentialUpdate {
	_u.mutation.SetRefreshToken(v)
	return _u
}

// SetNillableRefreshToken sets the "refresh_token" field if the given value is not nil.
func (_u *CalendarCredentialUpdate) SetNillableRefreshToken(v *string) *CalendarCredentialUpdate {
	if v != nil {
		_u.SetRefreshToken(*v)
	}
	return _u
}

// SetProviderEmail sets the "provider_email" field.
func (_u *CalendarCredentialUpdate) SetProviderEmail(v string) *CalendarCredentialUpdate {
	_u.mutation.SetProviderEmail(v)
	return _u
}

// SetNillableProviderEmail sets the "provider_email" field if the given value is not nil.
func (_u *CalendarCredentialUpdate) SetNillableProviderEmail(v *string) *CalendarCredentialUpdate {
	if v != nil {
		_u.SetProviderEmail(*v)
	}
	return _u
}

// ClearProviderEmail clears the value of the "provider_email" field.
func (_u *CalendarCredentialUpdate) ClearProviderEmail() *CalendarCredentialUpdate {
	_u.mutation.ClearProviderEmail()
	return _u
}

// Mutation returns the CalendarCredentialMutation object of the builder.
func (_u *CalendarCredentialUpdate) Mutation() *CalendarCredentialMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CalendarCredentialUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CalendarCredentialUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CalendarCredentialUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CalendarCredentialUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CalendarCredentialUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := calendarcredential.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CalendarCredentialUpdate) check() error {
	if v, ok := _u.mutation.Provider(); ok {
		if err := calendarcredential.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`repo: validator failed for field "CalendarCredential.provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProviderEmail(); ok {
		if err := calendarcredential.ProviderEmailValidator(v); err != nil {
			return &ValidationError{Name: "provider_email", err: fmt.Errorf(`repo: validator failed for field "CalendarCredential.provider_email": %w`, err)}
		}
	}
	return nil
}

func (_u *CalendarCredentialUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(calendarcredential.Table, calendarcredential.Columns, sqlgraph.NewFieldSpec(calendarcredential.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(calendarcredential.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(calendarcredential.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(calendarcredential.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.RefreshToken(); ok {
		_spec.SetField(calendarcredential.FieldRefreshToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProviderEmail(); ok {
		_spec.SetField(calendarcredential.FieldProviderEmail, field.TypeString, value)
	}
	if _u.mutation.ProviderEmailCleared() {
		_spec.ClearField(calendarcredential.FieldProviderEmail, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{calendarcredential.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CalendarCredentialUpdateOne is the builder for updating a single CalendarCredential entity.
type CalendarCredentialUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CalendarCredentialMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CalendarCredentialUpdateOne) SetUpdatedAt(v time.Time) *CalendarCredentialUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *CalendarCredentialUpdateOne) SetDoctorID(v uuid.UUID) *CalendarCredentialUpdateOne {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *CalendarCredentialUpdateOne) SetNillableDoctorID(v *uuid.UUID) *CalendarCredentialUpdateOne {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *CalendarCredentialUpdateOne) SetProvider(v string) *CalendarCredentialUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *CalendarCredentialUpdateOne) SetNillableProvider(v *string) *CalendarCredentialUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetRefreshToken sets the "refresh_token" field.
func (_u *CalendarCredentialUpdateOne) SetRefreshToken(v string) *CalendarCredentialUpdateOne {
	_u.mutation.SetRefreshToken(v)
	return _u
}

// SetNillableRefreshToken sets the "refresh_token" field if the given value is not nil.
func (_u *CalendarCredentialUpdateOne) SetNillableRefreshToken(v *string) *CalendarCredentialUpdateOne {
	if v != nil {
		_u.SetRefreshToken(*v)
	}
	return _u
}

// SetProviderEmail sets the "provider_email" field.
func (_u *CalendarCredentialUpdateOne) SetProviderEmail(v string) *CalendarCredentialUpdateOne {
	_u.mutation.SetProviderEmail(v)
	return _u
}

// SetNillableProviderEmail sets the "provider_email" field if the given value is not nil.
func (_u *CalendarCredentialUpdateOne) SetNillableProviderEmail(v *string) *CalendarCredentialUpdateOne {
	if v != nil {
		_u.SetProviderEmail(*v)
	}
	return _u
}

// ClearProviderEmail clears the value of the "provider_email" field.
func (_u *CalendarCredentialUpdateOne) ClearProviderEmail() *CalendarCredentialUpdateOne {
	_u.mutation.ClearProviderEmail()
	return _u
}

// Mutation returns the CalendarCredentialMutation object of the builder.
func (_u *CalendarCredentialUpdateOne) Mutation() *CalendarCredentialMutation {
	return _u.mutation
}

// Where appends a list predicates to the CalendarCredentialUpdate builder.
func (_u *CalendarCredentialUpdateOne) Where(ps ...predicate.CalendarCredential) *CalendarCredentialUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CalendarCredentialUpdateOne) Select(field string, fields ...string) *CalendarCredentialUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CalendarCredential entity.
func (_u *CalendarCredentialUpdateOne) Save(ctx context.Context) (*CalendarCredential, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CalendarCredentialUpdateOne) SaveX(ctx context.Context) *CalendarCredential {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CalendarCredentialUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CalendarCredentialUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CalendarCredentialUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := calendarcredential.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CalendarCredentialUpdateOne) check() error {
	if v, ok := _u.mutation.Provider(); ok {
		if err := calendarcredential.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`repo: validator failed for field "CalendarCredential.provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProviderEmail(); ok {
		if err := calendarcredential.ProviderEmailValidator(v); err != nil {
			return &ValidationError{Name: "provider_email", err: fmt.Errorf(`repo: validator failed for field "CalendarCredential.provider_email": %w`, err)}
		}
	}
	return nil
}

func (_u *CalendarCredentialUpdateOne) sqlSave(ctx context.Context) (_node *CalendarCredential, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(calendarcredential.Table, calendarcredential.Columns, sqlgraph.NewFieldSpec(calendarcredential.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "CalendarCredential.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, calendarcredential.FieldID)
		for _, f := range fields {
			if !calendarcredential.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != calendarcredential.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(calendarcredential.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(calendarcredential.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(calendarcredential.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.RefreshToken(); ok {
		_spec.SetField(calendarcredential.FieldRefreshToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProviderEmail(); ok {
		_spec.SetField(calendarcredential.FieldProviderEmail, field.TypeString, value)
	}
	if _u.mutation.ProviderEmailCleared() {
		_spec.ClearField(calendarcredential.FieldProviderEmail, field.TypeString)
	}
	_node = &CalendarCredential{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{calendarcredential.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
