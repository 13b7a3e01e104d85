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
	"github.com/curaline/curaline_backend/internal/repo/doctorrating"
	"github.com/curaline/curaline_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// DoctorRatingUpdate is the builder for updating DoctorRating entities.
type DoctorRatingUpdate struct {
	config
	hooks    []Hook
	mutation *DoctorRatingMutation
}

// Where appends a list predicates to the DoctorRatingUpdate builder.
func (_u *DoctorRatingUpdate) Where(ps ...predicate.DoctorRating) *DoctorRatingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DoctorRatingUpdate) SetUpdatedAt(v time.Time) *DoctorRatingUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *DoctorRatingUpdate) SetDoctorID(v uuid.UUID) *DoctorRatingUpdate {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *DoctorRatingUpdate) SetNillableDoctorID(v *uuid.UUID) *DoctorRatingUpdate {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *DoctorRatingUpdate) SetPatientID(v uuid.UUID) *DoctorRatingUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *DoctorRatingUpdate) SetNillablePatientID(v *uuid.UUID) *DoctorRatingUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetRating sets the "rating" field.
func (_u *DoctorRatingUpdate) SetRating(v int) *DoctorRatingUpdate {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *DoctorRatingUpdate) SetNillableRating(v *int) *DoctorRatingUpdate {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *DoctorRatingUpdate) AddRating(v int) *DoctorRatingUpdate {
	_u.mutation.AddRating(v)
	return _u
}

// SetReview sets the "review" field.
func (_u *DoctorRatingUpdate) SetReview(v string) *DoctorRatingUpdate {
	_u.mutation.SetReview(v)
	return _u
}

// SetNillableReview sets the "review" field if the given value is not nil.
func (_u *DoctorRatingUpdate) SetNillableReview(v *string) *DoctorRatingUpdate {
	if v != nil {
		_u.SetReview(*v)
	}
	return _u
}

// ClearReview clears the value of the "review" field.
func (_u *DoctorRatingUpdate) ClearReview() *DoctorRatingUpdate {
	_u.mutation.ClearReview()
	return _u
}

// Mutation returns the DoctorRatingMutation object of the builder.
func (_u *DoctorRatingUpdate) Mutation() *DoctorRatingMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DoctorRatingUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DoctorRatingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DoctorRatingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DoctorRatingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DoctorRatingUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := doctorrating.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DoctorRatingUpdate) check() error {
	if v, ok := _u.mutation.Rating(); ok {
		if err := doctorrating.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`repo: validator failed for field "DoctorRating.rating": %w`, err)}
		}
	}
	return nil
}

func (_u *DoctorRatingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(doctorrating.Table, doctorrating.Columns, sqlgraph.NewFieldSpec(doctorrating.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(doctorrating.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(doctorrating.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(doctorrating.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(doctorrating.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(doctorrating.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Review(); ok {
		_spec.SetField(doctorrating.FieldReview, field.TypeString, value)
	}
	if _u.mutation.ReviewCleared() {
		_spec.ClearField(doctorrating.FieldReview, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{doctorrating.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DoctorRatingUpdateOne is the builder for updating a single DoctorRating entity.
type DoctorRatingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DoctorRatingMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DoctorRatingUpdateOne) SetUpdatedAt(v time.Time) *DoctorRatingUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *DoctorRatingUpdateOne) SetDoctorID(v uuid.UUID) *DoctorRatingUpdateOne {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *DoctorRatingUpdateOne) SetNillableDoctorID(v *uuid.UUID) *DoctorRatingUpdateOne {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *DoctorRatingUpdateOne) SetPatientID(v uuid.UUID) *DoctorRatingUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *DoctorRatingUpdateOne) SetNillablePatientID(v *uuid.UUID) *DoctorRatingUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetRating sets the "rating" field.
func (_u *DoctorRatingUpdateOne) SetRating(v int) *DoctorRatingUpdateOne {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *DoctorRatingUpdateOne) SetNillableRating(v *int) *DoctorRatingUpdateOne {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *DoctorRatingUpdateOne) AddRating(v int) *DoctorRatingUpdateOne {
	_u.mutation.AddRating(v)
	return _u
}

// SetReview sets the "review" field.
func (_u *DoctorRatingUpdateOne) SetReview(v string) *DoctorRatingUpdateOne {
	_u.mutation.SetReview(v)
	return _u
}

// SetNillableReview sets the "review" field if the given value is not nil.
func (_u *DoctorRatingUpdateOne) SetNillableReview(v *string) *DoctorRatingUpdateOne {
	if v != nil {
		_u.SetReview(*v)
	}
	return _u
}

// ClearReview clears the value of the "review" field.
func (_u *DoctorRatingUpdateOne) ClearReview() *DoctorRatingUpdateOne {
	_u.mutation.ClearReview()
	return _u
}

// Mutation returns the DoctorRatingMutation object of the builder.
func (_u *DoctorRatingUpdateOne) Mutation() *DoctorRatingMutation {
	return _u.mutation
}

// Where appends a list predicates to the DoctorRatingUpdate builder.
func (_u *DoctorRatingUpdateOne) Where(ps ...predicate.DoctorRating) *DoctorRatingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DoctorRatingUpdateOne) Select(field string, fields ...string) *DoctorRatingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DoctorRating entity.
func (_u *DoctorRatingUpdateOne) Save(ctx context.Context) (*DoctorRating, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DoctorRatingUpdateOne) SaveX(ctx context.Context) *DoctorRating {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DoctorRatingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DoctorRatingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DoctorRatingUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := doctorrating.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DoctorRatingUpdateOne) check() error {
	if v, ok := _u.mutation.Rating(); ok {
		if err := doctorrating.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`repo: validator failed for field "DoctorRating.rating": %w`, err)}
		}
	}
	return nil
}

func (_u *DoctorRatingUpdateOne) sqlSave(ctx context.Context) (_node *DoctorRating, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(doctorrating.Table, doctorrating.Columns, sqlgraph.NewFieldSpec(doctorrating.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "DoctorRating.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, doctorrating.FieldID)
		for _, f := range fields {
			if !doctorrating.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != doctorrating.FieldID {
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
		_spec.SetField(doctorrating.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(doctorrating.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(doctorrating.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(doctorrating.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(doctorrating.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Review(); ok {
		_spec.SetField(doctorrating.FieldReview, field.TypeString, value)
	}
	if _u.mutation.ReviewCleared() {
		_spec.ClearField(doctorrating.FieldReview, field.TypeString)
	}
	_node = &DoctorRating{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{doctorrating.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
