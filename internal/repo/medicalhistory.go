// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/curaline/curaline_backend/internal/repo/medicalhistory"
	"github.com/google/uuid"
)

// MedicalHistory is the model entity for the MedicalHistory schema.
type MedicalHistory struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Authoring doctor
	DoctorID uuid.UUID `json:"doctor_id,omitempty"`
	// Patient the entry belongs to
	PatientID uuid.UUID `json:"patient_id,omitempty"`
	// Condition holds the value of the "condition" field.
	Condition string `json:"condition,omitempty"`
	// Diagnosis holds the value of the "diagnosis" field.
	Diagnosis *string `json:"diagnosis,omitempty"`
	// DiagnosedAt holds the value of the "diagnosed_at" field.
	DiagnosedAt *time.Time `json:"diagnosed_at,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes        *string `json:"notes,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MedicalHistory) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case medicalhistory.FieldCondition, medicalhistory.FieldDiagnosis, medicalhistory.FieldNotes:
			values[i] = new(sql.NullString)
		case medicalhistory.FieldCreatedAt, medicalhistory.FieldUpdatedAt, medicalhistory.FieldDeletedAt, medicalhistory.FieldDiagnosedAt:
			values[i] = new(sql.NullTime)
		case medicalhistory.FieldID, medicalhistory.FieldDoctorID, medicalhistory.FieldPatientID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MedicalHistory fields.
func (_m *MedicalHistory) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case medicalhistory.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case medicalhistory.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case medicalhistory.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case medicalhistory.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		case medicalhistory.FieldDoctorID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field doctor_id", values[i])
			} else if value != nil {
				_m.DoctorID = *value
			}
		case medicalhistory.FieldPatientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value != nil {
				_m.PatientID = *value
			}
		case medicalhistory.FieldCondition:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field condition", values[i])
			} else if value.Valid {
				_m.Condition = value.String
			}
		case medicalhistory.FieldDiagnosis:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field diagnosis", values[i])
			} else if value.Valid {
				_m.Diagnosis = new(string)
				*_m.Diagnosis = value.String
			}
		case medicalhistory.FieldDiagnosedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field diagnosed_at", values[i])
			} else if value.Valid {
				_m.DiagnosedAt = new(time.Time)
				*_m.DiagnosedAt = value.Time
			}
		case medicalhistory.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = new(string)
				*_m.Notes = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MedicalHistory.
// This includes values selected through modifiers, order, etc.
func (_m *MedicalHistory) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MedicalHistory.
// Note that you need to call MedicalHistory.Unwrap() before calling this method if this MedicalHistory
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MedicalHistory) Update() *MedicalHistoryUpdateOne {
	return NewMedicalHistoryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MedicalHistory entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MedicalHistory) Unwrap() *MedicalHistory {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: MedicalHistory is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MedicalHistory) String() string {
	var builder strings.Builder
	builder.WriteString("MedicalHistory(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("doctor_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DoctorID))
	builder.WriteString(", ")
	builder.WriteString("patient_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatientID))
	builder.WriteString(", ")
	builder.WriteString("condition=")
	builder.WriteString(_m.Condition)
	builder.WriteString(", ")
	if v := _m.Diagnosis; v != nil {
		builder.WriteString("diagnosis=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DiagnosedAt; v != nil {
		builder.WriteString("diagnosed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.Notes; v != nil {
		builder.WriteString("notes=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// MedicalHistories is a parsable slice of MedicalHistory.
type MedicalHistories []*MedicalHistory
