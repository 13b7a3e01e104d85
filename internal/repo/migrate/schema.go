// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AppointmentsColumns holds the columns for the "appointments" table.
	AppointmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "appointment_type", Type: field.TypeString, Size: 32, Default: "video"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "confirmed", "completed", "cancelled", "no_show"}, Default: "pending"},
		{Name: "reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "scheduled_start", Type: field.TypeTime},
		{Name: "scheduled_end", Type: field.TypeTime},
		{Name: "cancelled_by", Type: field.TypeEnum, Nullable: true, Enums: []string{"patient", "doctor", "admin"}},
		{Name: "cancelled_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "availability_id", Type: field.TypeUUID},
	}
	// AppointmentsTable holds the schema information for the "appointments" table.
	AppointmentsTable = &schema.Table{
		Name:       "appointments",
		Columns:    AppointmentsColumns,
		PrimaryKey: []*schema.Column{AppointmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "appointments_availability_slots_availability",
				Columns:    []*schema.Column{AppointmentsColumns[14]},
				RefColumns: []*schema.Column{AvailabilitySlotsColumns[0]},
				OnDelete:   schema.Restrict,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "appointment_doctor_id_status_scheduled_start",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[5], AppointmentsColumns[7], AppointmentsColumns[9]},
			},
			{
				Name:    "appointment_patient_id_status",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[4], AppointmentsColumns[7]},
			},
			{
				Name:    "appointment_availability_id",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[14]},
			},
		},
	}
	// AppointmentEventsColumns holds the columns for the "appointment_events" table.
	AppointmentEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "appointment_id", Type: field.TypeUUID},
		{Name: "old_status", Type: field.TypeEnum, Nullable: true, Enums: []string{"pending", "confirmed", "completed", "cancelled", "no_show"}},
		{Name: "new_status", Type: field.TypeEnum, Enums: []string{"pending", "confirmed", "completed", "cancelled", "no_show"}},
		{Name: "changed_by", Type: field.TypeUUID},
		{Name: "actor_role", Type: field.TypeString, Size: 32},
		{Name: "note", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// AppointmentEventsTable holds the schema information for the "appointment_events" table.
	AppointmentEventsTable = &schema.Table{
		Name:       "appointment_events",
		Columns:    AppointmentEventsColumns,
		PrimaryKey: []*schema.Column{AppointmentEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "appointmentevent_appointment_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AppointmentEventsColumns[2], AppointmentEventsColumns[1]},
			},
		},
	}
	// AppointmentMeetingsColumns holds the columns for the "appointment_meetings" table.
	AppointmentMeetingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "appointment_id", Type: field.TypeUUID, Nullable: true},
		{Name: "meet_link", Type: field.TypeString, Size: 512},
		{Name: "calendar_event_id", Type: field.TypeString, Nullable: true, Size: 255},
	}
	// AppointmentMeetingsTable holds the schema information for the "appointment_meetings" table.
	AppointmentMeetingsTable = &schema.Table{
		Name:       "appointment_meetings",
		Columns:    AppointmentMeetingsColumns,
		PrimaryKey: []*schema.Column{AppointmentMeetingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "appointmentmeeting_appointment_id",
				Unique:  true,
				Columns: []*schema.Column{AppointmentMeetingsColumns[3]},
			},
		},
	}
	// AppointmentReschedulesColumns holds the columns for the "appointment_reschedules" table.
	AppointmentReschedulesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "appointment_id", Type: field.TypeUUID},
		{Name: "old_availability_id", Type: field.TypeUUID},
		{Name: "new_availability_id", Type: field.TypeUUID},
		{Name: "requested_by", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"requested", "approved"}, Default: "requested"},
	}
	// AppointmentReschedulesTable holds the schema information for the "appointment_reschedules" table.
	AppointmentReschedulesTable = &schema.Table{
		Name:       "appointment_reschedules",
		Columns:    AppointmentReschedulesColumns,
		PrimaryKey: []*schema.Column{AppointmentReschedulesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "appointmentreschedule_appointment_id_status",
				Unique:  false,
				Columns: []*schema.Column{AppointmentReschedulesColumns[3], AppointmentReschedulesColumns[7]},
			},
		},
	}
	// AvailabilitySlotsColumns holds the columns for the "availability_slots" table.
	AvailabilitySlotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "end_time", Type: field.TypeTime},
		{Name: "is_booked", Type: field.TypeBool, Default: false},
	}
	// AvailabilitySlotsTable holds the schema information for the "availability_slots" table.
	AvailabilitySlotsTable = &schema.Table{
		Name:       "availability_slots",
		Columns:    AvailabilitySlotsColumns,
		PrimaryKey: []*schema.Column{AvailabilitySlotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "availabilityslot_doctor_id_start_time",
				Unique:  false,
				Columns: []*schema.Column{AvailabilitySlotsColumns[3], AvailabilitySlotsColumns[4]},
			},
			{
				Name:    "availabilityslot_doctor_id_is_booked_start_time",
				Unique:  false,
				Columns: []*schema.Column{AvailabilitySlotsColumns[3], AvailabilitySlotsColumns[6], AvailabilitySlotsColumns[4]},
			},
		},
	}
	// CalendarCredentialsColumns holds the columns for the "calendar_credentials" table.
	CalendarCredentialsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "provider", Type: field.TypeString, Size: 32, Default: "google"},
		{Name: "refresh_token", Type: field.TypeString},
		{Name: "provider_email", Type: field.TypeString, Nullable: true, Size: 255},
	}
	// CalendarCredentialsTable holds the schema information for the "calendar_credentials" table.
	CalendarCredentialsTable = &schema.Table{
		Name:       "calendar_credentials",
		Columns:    CalendarCredentialsColumns,
		PrimaryKey: []*schema.Column{CalendarCredentialsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "calendarcredential_doctor_id",
				Unique:  true,
				Columns: []*schema.Column{CalendarCredentialsColumns[3]},
			},
		},
	}
	// ConversationsColumns holds the columns for the "conversations" table.
	ConversationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "last_message_at", Type: field.TypeTime, Nullable: true},
	}
	// ConversationsTable holds the schema information for the "conversations" table.
	ConversationsTable = &schema.Table{
		Name:       "conversations",
		Columns:    ConversationsColumns,
		PrimaryKey: []*schema.Column{ConversationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "conversation_doctor_id_patient_id",
				Unique:  true,
				Columns: []*schema.Column{ConversationsColumns[2], ConversationsColumns[3]},
			},
			{
				Name:    "conversation_doctor_id",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[2]},
			},
			{
				Name:    "conversation_patient_id",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[3]},
			},
		},
	}
	// DoctorPatientsColumns holds the columns for the "doctor_patients" table.
	DoctorPatientsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "patient_id", Type: field.TypeUUID},
	}
	// DoctorPatientsTable holds the schema information for the "doctor_patients" table.
	DoctorPatientsTable = &schema.Table{
		Name:       "doctor_patients",
		Columns:    DoctorPatientsColumns,
		PrimaryKey: []*schema.Column{DoctorPatientsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "doctorpatient_doctor_id_patient_id",
				Unique:  true,
				Columns: []*schema.Column{DoctorPatientsColumns[2], DoctorPatientsColumns[3]},
			},
			{
				Name:    "doctorpatient_patient_id",
				Unique:  false,
				Columns: []*schema.Column{DoctorPatientsColumns[3]},
			},
		},
	}
	// DoctorRatingsColumns holds the columns for the "doctor_ratings" table.
	DoctorRatingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "rating", Type: field.TypeInt},
		{Name: "review", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// DoctorRatingsTable holds the schema information for the "doctor_ratings" table.
	DoctorRatingsTable = &schema.Table{
		Name:       "doctor_ratings",
		Columns:    DoctorRatingsColumns,
		PrimaryKey: []*schema.Column{DoctorRatingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "doctorrating_doctor_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{DoctorRatingsColumns[3], DoctorRatingsColumns[1]},
			},
			{
				Name:    "doctorrating_patient_id",
				Unique:  false,
				Columns: []*schema.Column{DoctorRatingsColumns[4]},
			},
		},
	}
	// LabReportsColumns holds the columns for the "lab_reports" table.
	LabReportsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "result", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "file_url", Type: field.TypeString, Nullable: true, Size: 512},
		{Name: "reported_at", Type: field.TypeTime, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// LabReportsTable holds the schema information for the "lab_reports" table.
	LabReportsTable = &schema.Table{
		Name:       "lab_reports",
		Columns:    LabReportsColumns,
		PrimaryKey: []*schema.Column{LabReportsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "labreport_patient_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{LabReportsColumns[5], LabReportsColumns[1]},
			},
			{
				Name:    "labreport_doctor_id",
				Unique:  false,
				Columns: []*schema.Column{LabReportsColumns[4]},
			},
		},
	}
	// MedicalHistoriesColumns holds the columns for the "medical_histories" table.
	MedicalHistoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "condition", Type: field.TypeString, Size: 255},
		{Name: "diagnosis", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "diagnosed_at", Type: field.TypeTime, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// MedicalHistoriesTable holds the schema information for the "medical_histories" table.
	MedicalHistoriesTable = &schema.Table{
		Name:       "medical_histories",
		Columns:    MedicalHistoriesColumns,
		PrimaryKey: []*schema.Column{MedicalHistoriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "medicalhistory_patient_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MedicalHistoriesColumns[5], MedicalHistoriesColumns[1]},
			},
			{
				Name:    "medicalhistory_doctor_id",
				Unique:  false,
				Columns: []*schema.Column{MedicalHistoriesColumns[4]},
			},
		},
	}
	// MedicationsColumns holds the columns for the "medications" table.
	MedicationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "dosage", Type: field.TypeString, Nullable: true, Size: 120},
		{Name: "frequency", Type: field.TypeString, Nullable: true, Size: 120},
		{Name: "start_date", Type: field.TypeTime, Nullable: true},
		{Name: "end_date", Type: field.TypeTime, Nullable: true},
		{Name: "instructions", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// MedicationsTable holds the schema information for the "medications" table.
	MedicationsTable = &schema.Table{
		Name:       "medications",
		Columns:    MedicationsColumns,
		PrimaryKey: []*schema.Column{MedicationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "medication_patient_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MedicationsColumns[5], MedicationsColumns[1]},
			},
			{
				Name:    "medication_doctor_id",
				Unique:  false,
				Columns: []*schema.Column{MedicationsColumns[4]},
			},
		},
	}
	// MedicationProgressesColumns holds the columns for the "medication_progresses" table.
	MedicationProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "medication_id", Type: field.TypeUUID},
		{Name: "author_id", Type: field.TypeUUID},
		{Name: "note", Type: field.TypeString, Size: 2147483647},
	}
	// MedicationProgressesTable holds the schema information for the "medication_progresses" table.
	MedicationProgressesTable = &schema.Table{
		Name:       "medication_progresses",
		Columns:    MedicationProgressesColumns,
		PrimaryKey: []*schema.Column{MedicationProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "medicationprogress_medication_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MedicationProgressesColumns[3], MedicationProgressesColumns[1]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "conversation_id", Type: field.TypeUUID},
		{Name: "sender_id", Type: field.TypeUUID},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "is_read", Type: field.TypeBool, Default: false},
		{Name: "read_at", Type: field.TypeTime, Nullable: true},
		{Name: "is_pinned", Type: field.TypeBool, Default: false},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "message_conversation_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[3], MessagesColumns[1]},
			},
			{
				Name:    "message_sender_id",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[4]},
			},
		},
	}
	// MessageAuditLogsColumns holds the columns for the "message_audit_logs" table.
	MessageAuditLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "conversation_id", Type: field.TypeUUID},
		{Name: "message_id", Type: field.TypeUUID, Nullable: true},
		{Name: "actor_id", Type: field.TypeUUID},
		{Name: "action", Type: field.TypeEnum, Enums: []string{"create", "read", "pin", "unpin", "delete"}},
	}
	// MessageAuditLogsTable holds the schema information for the "message_audit_logs" table.
	MessageAuditLogsTable = &schema.Table{
		Name:       "message_audit_logs",
		Columns:    MessageAuditLogsColumns,
		PrimaryKey: []*schema.Column{MessageAuditLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "messageauditlog_conversation_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessageAuditLogsColumns[2], MessageAuditLogsColumns[1]},
			},
			{
				Name:    "messageauditlog_message_id",
				Unique:  false,
				Columns: []*schema.Column{MessageAuditLogsColumns[3]},
			},
		},
	}
	// MessageReadReceiptsColumns holds the columns for the "message_read_receipts" table.
	MessageReadReceiptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "message_id", Type: field.TypeUUID},
		{Name: "reader_id", Type: field.TypeUUID},
	}
	// MessageReadReceiptsTable holds the schema information for the "message_read_receipts" table.
	MessageReadReceiptsTable = &schema.Table{
		Name:       "message_read_receipts",
		Columns:    MessageReadReceiptsColumns,
		PrimaryKey: []*schema.Column{MessageReadReceiptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "messagereadreceipt_message_id_reader_id",
				Unique:  true,
				Columns: []*schema.Column{MessageReadReceiptsColumns[2], MessageReadReceiptsColumns[3]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "appointment_id", Type: field.TypeUUID, Nullable: true},
		{Name: "type", Type: field.TypeString, Size: 64},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "body", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "is_read", Type: field.TypeBool, Default: false},
		{Name: "is_pushed", Type: field.TypeBool, Default: false},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notification_user_id_is_read_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[2], NotificationsColumns[7], NotificationsColumns[1]},
			},
			{
				Name:    "notification_appointment_id",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[3]},
			},
		},
	}
	// PrescriptionsColumns holds the columns for the "prescriptions" table.
	PrescriptionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "file_key", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "file_name", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "prescribed_date", Type: field.TypeTime},
	}
	// PrescriptionsTable holds the schema information for the "prescriptions" table.
	PrescriptionsTable = &schema.Table{
		Name:       "prescriptions",
		Columns:    PrescriptionsColumns,
		PrimaryKey: []*schema.Column{PrescriptionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "prescription_patient_id_prescribed_date",
				Unique:  false,
				Columns: []*schema.Column{PrescriptionsColumns[5], PrescriptionsColumns[10]},
			},
			{
				Name:    "prescription_doctor_id",
				Unique:  false,
				Columns: []*schema.Column{PrescriptionsColumns[4]},
			},
		},
	}
	// TimeOffsColumns holds the columns for the "time_offs" table.
	TimeOffsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "end_time", Type: field.TypeTime},
		{Name: "reason", Type: field.TypeString, Nullable: true, Size: 255},
	}
	// TimeOffsTable holds the schema information for the "time_offs" table.
	TimeOffsTable = &schema.Table{
		Name:       "time_offs",
		Columns:    TimeOffsColumns,
		PrimaryKey: []*schema.Column{TimeOffsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "timeoff_doctor_id_end_time",
				Unique:  false,
				Columns: []*schema.Column{TimeOffsColumns[3], TimeOffsColumns[5]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "first_name", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "last_name", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "phone", Type: field.TypeString, Unique: true, Nullable: true, Size: 20},
		{Name: "email", Type: field.TypeString, Unique: true, Nullable: true, Size: 255},
		{Name: "password_hash", Type: field.TypeString, Nullable: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"patient", "doctor", "admin"}, Default: "patient"},
		{Name: "specialty", Type: field.TypeString, Nullable: true, Size: 120},
		{Name: "bio", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "average_rating", Type: field.TypeFloat64, Default: 0},
		{Name: "rating_count", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"ACTIVE", "SUSPENDED"}, Default: "ACTIVE"},
		{Name: "phone_verified", Type: field.TypeBool, Default: false},
		{Name: "email_verified", Type: field.TypeBool, Default: false},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "suspended_at", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_role",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AppointmentsTable,
		AppointmentEventsTable,
		AppointmentMeetingsTable,
		AppointmentReschedulesTable,
		AvailabilitySlotsTable,
		CalendarCredentialsTable,
		ConversationsTable,
		DoctorPatientsTable,
		DoctorRatingsTable,
		LabReportsTable,
		MedicalHistoriesTable,
		MedicationsTable,
		MedicationProgressesTable,
		MessagesTable,
		MessageAuditLogsTable,
		MessageReadReceiptsTable,
		NotificationsTable,
		PrescriptionsTable,
		TimeOffsTable,
		UsersTable,
	}
)

func init() {
	AppointmentsTable.ForeignKeys[0].RefTable = AvailabilitySlotsTable
}
