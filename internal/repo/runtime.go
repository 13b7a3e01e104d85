// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/curaline/curaline_backend/internal/repo/appointment"
	"github.com/curaline/curaline_backend/internal/repo/appointmentevent"
	"github.com/curaline/curaline_backend/internal/repo/appointmentmeeting"
	"github.com/curaline/curaline_backend/internal/repo/appointmentreschedule"
	"github.com/curaline/curaline_backend/internal/repo/availabilityslot"
	"github.com/curaline/curaline_backend/internal/repo/calendarcredential"
	"github.com/curaline/curaline_backend/internal/repo/conversation"
	"github.com/curaline/curaline_backend/internal/repo/doctorpatient"
	"github.com/curaline/curaline_backend/internal/repo/doctorrating"
	"github.com/curaline/curaline_backend/internal/repo/labreport"
	"github.com/curaline/curaline_backend/internal/repo/medicalhistory"
	"github.com/curaline/curaline_backend/internal/repo/medication"
	"github.com/curaline/curaline_backend/internal/repo/medicationprogress"
	"github.com/curaline/curaline_backend/internal/repo/message"
	"github.com/curaline/curaline_backend/internal/repo/messageauditlog"
	"github.com/curaline/curaline_backend/internal/repo/messagereadreceipt"
	"github.com/curaline/curaline_backend/internal/repo/notification"
	"github.com/curaline/curaline_backend/internal/repo/prescription"
	"github.com/curaline/curaline_backend/internal/repo/timeoff"
	"github.com/curaline/curaline_backend/internal/repo/user"
	"github.com/curaline/curaline_backend/internal/schema"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	appointmentMixin := schema.Appointment{}.Mixin()
	appointmentMixinFields0 := appointmentMixin[0].Fields()
	_ = appointmentMixinFields0
	appointmentMixinFields1 := appointmentMixin[1].Fields()
	_ = appointmentMixinFields1
	appointmentFields := schema.Appointment{}.Fields()
	_ = appointmentFields
	// appointmentDescCreatedAt is the schema descriptor for created_at field.
	appointmentDescCreatedAt := appointmentMixinFields1[0].Descriptor()
	// appointment.DefaultCreatedAt holds the default value on creation for the created_at field.
	appointment.DefaultCreatedAt = appointmentDescCreatedAt.Default.(func() time.Time)
	// appointmentDescUpdatedAt is the schema descriptor for updated_at field.
	appointmentDescUpdatedAt := appointmentMixinFields1[1].Descriptor()
	// appointment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	appointment.DefaultUpdatedAt = appointmentDescUpdatedAt.Default.(func() time.Time)
	// appointment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	appointment.UpdateDefaultUpdatedAt = appointmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// appointmentDescAppointmentType is the schema descriptor for appointment_type field.
	appointmentDescAppointmentType := appointmentFields[3].Descriptor()
	// appointment.DefaultAppointmentType holds the default value on creation for the appointment_type field.
	appointment.DefaultAppointmentType = appointmentDescAppointmentType.Default.(string)
	// appointment.AppointmentTypeValidator is a validator for the "appointment_type" field. It is called by the builders before save.
	appointment.AppointmentTypeValidator = appointmentDescAppointmentType.Validators[0].(func(string) error)
	// appointmentDescID is the schema descriptor for id field.
	appointmentDescID := appointmentMixinFields0[0].Descriptor()
	// appointment.DefaultID holds the default value on creation for the id field.
	appointment.DefaultID = appointmentDescID.Default.(func() uuid.UUID)
	appointmenteventMixin := schema.AppointmentEvent{}.Mixin()
	appointmenteventMixinFields0 := appointmenteventMixin[0].Fields()
	_ = appointmenteventMixinFields0
	appointmenteventMixinFields1 := appointmenteventMixin[1].Fields()
	_ = appointmenteventMixinFields1
	appointmenteventFields := schema.AppointmentEvent{}.Fields()
	_ = appointmenteventFields
	// appointmenteventDescCreatedAt is the schema descriptor for created_at field.
	appointmenteventDescCreatedAt := appointmenteventMixinFields1[0].Descriptor()
	// appointmentevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	appointmentevent.DefaultCreatedAt = appointmenteventDescCreatedAt.Default.(func() time.Time)
	// appointmenteventDescActorRole is the schema descriptor for actor_role field.
	appointmenteventDescActorRole := appointmenteventFields[4].Descriptor()
	// appointmentevent.ActorRoleValidator is a validator for the "actor_role" field. It is called by the builders before save.
	appointmentevent.ActorRoleValidator = appointmenteventDescActorRole.Validators[0].(func(string) error)
	// appointmenteventDescID is the schema descriptor for id field.
	appointmenteventDescID := appointmenteventMixinFields0[0].Descriptor()
	// appointmentevent.DefaultID holds the default value on creation for the id field.
	appointmentevent.DefaultID = appointmenteventDescID.Default.(func() uuid.UUID)
	appointmentmeetingMixin := schema.AppointmentMeeting{}.Mixin()
	appointmentmeetingMixinFields0 := appointmentmeetingMixin[0].Fields()
	_ = appointmentmeetingMixinFields0
	appointmentmeetingMixinFields1 := appointmentmeetingMixin[1].Fields()
	_ = appointmentmeetingMixinFields1
	appointmentmeetingFields := schema.AppointmentMeeting{}.Fields()
	_ = appointmentmeetingFields
	// appointmentmeetingDescCreatedAt is the schema descriptor for created_at field.
	appointmentmeetingDescCreatedAt := appointmentmeetingMixinFields1[0].Descriptor()
	// appointmentmeeting.DefaultCreatedAt holds the default value on creation for the created_at field.
	appointmentmeeting.DefaultCreatedAt = appointmentmeetingDescCreatedAt.Default.(func() time.Time)
	// appointmentmeetingDescUpdatedAt is the schema descriptor for updated_at field.
	appointmentmeetingDescUpdatedAt := appointmentmeetingMixinFields1[1].Descriptor()
	// appointmentmeeting.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	appointmentmeeting.DefaultUpdatedAt = appointmentmeetingDescUpdatedAt.Default.(func() time.Time)
	// appointmentmeeting.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	appointmentmeeting.UpdateDefaultUpdatedAt = appointmentmeetingDescUpdatedAt.UpdateDefault.(func() time.Time)
	// appointmentmeetingDescMeetLink is the schema descriptor for meet_link field.
	appointmentmeetingDescMeetLink := appointmentmeetingFields[1].Descriptor()
	// appointmentmeeting.MeetLinkValidator is a validator for the "meet_link" field. It is called by the builders before save.
	appointmentmeeting.MeetLinkValidator = appointmentmeetingDescMeetLink.Validators[0].(func(string) error)
	// appointmentmeetingDescCalendarEventID is the schema descriptor for calendar_event_id field.
	appointmentmeetingDescCalendarEventID := appointmentmeetingFields[2].Descriptor()
	// appointmentmeeting.CalendarEventIDValidator is a validator for the "calendar_event_id" field. It is called by the builders before save.
	appointmentmeeting.CalendarEventIDValidator = appointmentmeetingDescCalendarEventID.Validators[0].(func(string) error)
	// appointmentmeetingDescID is the schema descriptor for id field.
	appointmentmeetingDescID := appointmentmeetingMixinFields0[0].Descriptor()
	// appointmentmeeting.DefaultID holds the default value on creation for the id field.
	appointmentmeeting.DefaultID = appointmentmeetingDescID.Default.(func() uuid.UUID)
	appointmentrescheduleMixin := schema.AppointmentReschedule{}.Mixin()
	appointmentrescheduleMixinFields0 := appointmentrescheduleMixin[0].Fields()
	_ = appointmentrescheduleMixinFields0
	appointmentrescheduleMixinFields1 := appointmentrescheduleMixin[1].Fields()
	_ = appointmentrescheduleMixinFields1
	appointmentrescheduleFields := schema.AppointmentReschedule{}.Fields()
	_ = appointmentrescheduleFields
	// appointmentrescheduleDescCreatedAt is the schema descriptor for created_at field.
	appointmentrescheduleDescCreatedAt := appointmentrescheduleMixinFields1[0].Descriptor()
	// appointmentreschedule.DefaultCreatedAt holds the default value on creation for the created_at field.
	appointmentreschedule.DefaultCreatedAt = appointmentrescheduleDescCreatedAt.Default.(func() time.Time)
	// appointmentrescheduleDescUpdatedAt is the schema descriptor for updated_at field.
	appointmentrescheduleDescUpdatedAt := appointmentrescheduleMixinFields1[1].Descriptor()
	// appointmentreschedule.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	appointmentreschedule.DefaultUpdatedAt = appointmentrescheduleDescUpdatedAt.Default.(func() time.Time)
	// appointmentreschedule.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	appointmentreschedule.UpdateDefaultUpdatedAt = appointmentrescheduleDescUpdatedAt.UpdateDefault.(func() time.Time)
	// appointmentrescheduleDescID is the schema descriptor for id field.
	appointmentrescheduleDescID := appointmentrescheduleMixinFields0[0].Descriptor()
	// appointmentreschedule.DefaultID holds the default value on creation for the id field.
	appointmentreschedule.DefaultID = appointmentrescheduleDescID.Default.(func() uuid.UUID)
	availabilityslotMixin := schema.AvailabilitySlot{}.Mixin()
	availabilityslotMixinFields0 := availabilityslotMixin[0].Fields()
	_ = availabilityslotMixinFields0
	availabilityslotMixinFields1 := availabilityslotMixin[1].Fields()
	_ = availabilityslotMixinFields1
	availabilityslotFields := schema.AvailabilitySlot{}.Fields()
	_ = availabilityslotFields
	// availabilityslotDescCreatedAt is the schema descriptor for created_at field.
	availabilityslotDescCreatedAt := availabilityslotMixinFields1[0].Descriptor()
	// availabilityslot.DefaultCreatedAt holds the default value on creation for the created_at field.
	availabilityslot.DefaultCreatedAt = availabilityslotDescCreatedAt.Default.(func() time.Time)
	// availabilityslotDescUpdatedAt is the schema descriptor for updated_at field.
	availabilityslotDescUpdatedAt := availabilityslotMixinFields1[1].Descriptor()
	// availabilityslot.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	availabilityslot.DefaultUpdatedAt = availabilityslotDescUpdatedAt.Default.(func() time.Time)
	// availabilityslot.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	availabilityslot.UpdateDefaultUpdatedAt = availabilityslotDescUpdatedAt.UpdateDefault.(func() time.Time)
	// availabilityslotDescIsBooked is the schema descriptor for is_booked field.
	availabilityslotDescIsBooked := availabilityslotFields[3].Descriptor()
	// availabilityslot.DefaultIsBooked holds the default value on creation for the is_booked field.
	availabilityslot.DefaultIsBooked = availabilityslotDescIsBooked.Default.(bool)
	// availabilityslotDescID is the schema descriptor for id field.
	availabilityslotDescID := availabilityslotMixinFields0[0].Descriptor()
	// availabilityslot.DefaultID holds the default value on creation for the id field.
	availabilityslot.DefaultID = availabilityslotDescID.Default.(func() uuid.UUID)
	calendarcredentialMixin := schema.CalendarCredential{}.Mixin()
	calendarcredentialMixinFields0 := calendarcredentialMixin[0].Fields()
	_ = calendarcredentialMixinFields0
	calendarcredentialMixinFields1 := calendarcredentialMixin[1].Fields()
	_ = calendarcredentialMixinFields1
	calendarcredentialFields := schema.CalendarCredential{}.Fields()
	_ = calendarcredentialFields
	// calendarcredentialDescCreatedAt is the schema descriptor for created_at field.
	calendarcredentialDescCreatedAt := calendarcredentialMixinFields1[0].Descriptor()
	// calendarcredential.DefaultCreatedAt holds the default value on creation for the created_at field.
	calendarcredential.DefaultCreatedAt = calendarcredentialDescCreatedAt.Default.(func() time.Time)
	// calendarcredentialDescUpdatedAt is the schema descriptor for updated_at field.
	calendarcredentialDescUpdatedAt := calendarcredentialMixinFields1[1].Descriptor()
	// calendarcredential.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	calendarcredential.DefaultUpdatedAt = calendarcredentialDescUpdatedAt.Default.(func() time.Time)
	// calendarcredential.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	calendarcredential.UpdateDefaultUpdatedAt = calendarcredentialDescUpdatedAt.UpdateDefault.(func() time.Time)
	// calendarcredentialDescProvider is the schema descriptor for provider field.
	calendarcredentialDescProvider := calendarcredentialFields[1].Descriptor()
	// calendarcredential.DefaultProvider holds the default value on creation for the provider field.
	calendarcredential.DefaultProvider = calendarcredentialDescProvider.Default.(string)
	// calendarcredential.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	calendarcredential.ProviderValidator = calendarcredentialDescProvider.Validators[0].(func(string) error)
	// calendarcredentialDescProviderEmail is the schema descriptor for provider_email field.
	calendarcredentialDescProviderEmail := calendarcredentialFields[3].Descriptor()
	// calendarcredential.ProviderEmailValidator is a validator for the "provider_email" field. It is called by the builders before save.
	calendarcredential.ProviderEmailValidator = calendarcredentialDescProviderEmail.Validators[0].(func(string) error)
	// calendarcredentialDescID is the schema descriptor for id field.
	calendarcredentialDescID := calendarcredentialMixinFields0[0].Descriptor()
	// calendarcredential.DefaultID holds the default value on creation for the id field.
	calendarcredential.DefaultID = calendarcredentialDescID.Default.(func() uuid.UUID)
	conversationMixin := schema.Conversation{}.Mixin()
	conversationMixinFields0 := conversationMixin[0].Fields()
	_ = conversationMixinFields0
	conversationMixinFields1 := conversationMixin[1].Fields()
	_ = conversationMixinFields1
	conversationFields := schema.Conversation{}.Fields()
	_ = conversationFields
	// conversationDescCreatedAt is the schema descriptor for created_at field.
	conversationDescCreatedAt := conversationMixinFields1[0].Descriptor()
	// conversation.DefaultCreatedAt holds the default value on creation for the created_at field.
	conversation.DefaultCreatedAt = conversationDescCreatedAt.Default.(func() time.Time)
	// conversationDescID is the schema descriptor for id field.
	conversationDescID := conversationMixinFields0[0].Descriptor()
	// conversation.DefaultID holds the default value on creation for the id field.
	conversation.DefaultID = conversationDescID.Default.(func() uuid.UUID)
	doctorpatientMixin := schema.DoctorPatient{}.Mixin()
	doctorpatientMixinFields0 := doctorpatientMixin[0].Fields()
	_ = doctorpatientMixinFields0
	doctorpatientMixinFields1 := doctorpatientMixin[1].Fields()
	_ = doctorpatientMixinFields1
	doctorpatientFields := schema.DoctorPatient{}.Fields()
	_ = doctorpatientFields
	// doctorpatientDescCreatedAt is the schema descriptor for created_at field.
	doctorpatientDescCreatedAt := doctorpatientMixinFields1[0].Descriptor()
	// doctorpatient.DefaultCreatedAt holds the default value on creation for the created_at field.
	doctorpatient.DefaultCreatedAt = doctorpatientDescCreatedAt.Default.(func() time.Time)
	// doctorpatientDescID is the schema descriptor for id field.
	doctorpatientDescID := doctorpatientMixinFields0[0].Descriptor()
	// doctorpatient.DefaultID holds the default value on creation for the id field.
	doctorpatient.DefaultID = doctorpatientDescID.Default.(func() uuid.UUID)
	doctorratingMixin := schema.DoctorRating{}.Mixin()
	doctorratingMixinFields0 := doctorratingMixin[0].Fields()
	_ = doctorratingMixinFields0
	doctorratingMixinFields1 := doctorratingMixin[1].Fields()
	_ = doctorratingMixinFields1
	doctorratingFields := schema.DoctorRating{}.Fields()
	_ = doctorratingFields
	// doctorratingDescCreatedAt is the schema descriptor for created_at field.
	doctorratingDescCreatedAt := doctorratingMixinFields1[0].Descriptor()
	// doctorrating.DefaultCreatedAt holds the default value on creation for the created_at field.
	doctorrating.DefaultCreatedAt = doctorratingDescCreatedAt.Default.(func() time.Time)
	// doctorratingDescUpdatedAt is the schema descriptor for updated_at field.
	doctorratingDescUpdatedAt := doctorratingMixinFields1[1].Descriptor()
	// doctorrating.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	doctorrating.DefaultUpdatedAt = doctorratingDescUpdatedAt.Default.(func() time.Time)
	// doctorrating.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	doctorrating.UpdateDefaultUpdatedAt = doctorratingDescUpdatedAt.UpdateDefault.(func() time.Time)
	// doctorratingDescRating is the schema descriptor for rating field.
	doctorratingDescRating := doctorratingFields[2].Descriptor()
	// doctorrating.RatingValidator is a validator for the "rating" field. It is called by the builders before save.
	doctorrating.RatingValidator = doctorratingDescRating.Validators[0].(func(int) error)
	// doctorratingDescID is the schema descriptor for id field.
	doctorratingDescID := doctorratingMixinFields0[0].Descriptor()
	// doctorrating.DefaultID holds the default value on creation for the id field.
	doctorrating.DefaultID = doctorratingDescID.Default.(func() uuid.UUID)
	labreportMixin := schema.LabReport{}.Mixin()
	labreportMixinFields0 := labreportMixin[0].Fields()
	_ = labreportMixinFields0
	labreportMixinFields1 := labreportMixin[1].Fields()
	_ = labreportMixinFields1
	labreportFields := schema.LabReport{}.Fields()
	_ = labreportFields
	// labreportDescCreatedAt is the schema descriptor for created_at field.
	labreportDescCreatedAt := labreportMixinFields1[0].Descriptor()
	// labreport.DefaultCreatedAt holds the default value on creation for the created_at field.
	labreport.DefaultCreatedAt = labreportDescCreatedAt.Default.(func() time.Time)
	// labreportDescUpdatedAt is the schema descriptor for updated_at field.
	labreportDescUpdatedAt := labreportMixinFields1[1].Descriptor()
	// labreport.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	labreport.DefaultUpdatedAt = labreportDescUpdatedAt.Default.(func() time.Time)
	// labreport.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	labreport.UpdateDefaultUpdatedAt = labreportDescUpdatedAt.UpdateDefault.(func() time.Time)
	// labreportDescTitle is the schema descriptor for title field.
	labreportDescTitle := labreportFields[2].Descriptor()
	// labreport.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	labreport.TitleValidator = labreportDescTitle.Validators[0].(func(string) error)
	// labreportDescFileURL is the schema descriptor for file_url field.
	labreportDescFileURL := labreportFields[4].Descriptor()
	// labreport.FileURLValidator is a validator for the "file_url" field. It is called by the builders before save.
	labreport.FileURLValidator = labreportDescFileURL.Validators[0].(func(string) error)
	// labreportDescID is the schema descriptor for id field.
	labreportDescID := labreportMixinFields0[0].Descriptor()
	// labreport.DefaultID holds the default value on creation for the id field.
	labreport.DefaultID = labreportDescID.Default.(func() uuid.UUID)
	medicalhistoryMixin := schema.MedicalHistory{}.Mixin()
	medicalhistoryMixinFields0 := medicalhistoryMixin[0].Fields()
	_ = medicalhistoryMixinFields0
	medicalhistoryMixinFields1 := medicalhistoryMixin[1].Fields()
	_ = medicalhistoryMixinFields1
	medicalhistoryFields := schema.MedicalHistory{}.Fields()
	_ = medicalhistoryFields
	// medicalhistoryDescCreatedAt is the schema descriptor for created_at field.
	medicalhistoryDescCreatedAt := medicalhistoryMixinFields1[0].Descriptor()
	// medicalhistory.DefaultCreatedAt holds the default value on creation for the created_at field.
	medicalhistory.DefaultCreatedAt = medicalhistoryDescCreatedAt.Default.(func() time.Time)
	// medicalhistoryDescUpdatedAt is the schema descriptor for updated_at field.
	medicalhistoryDescUpdatedAt := medicalhistoryMixinFields1[1].Descriptor()
	// medicalhistory.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	medicalhistory.DefaultUpdatedAt = medicalhistoryDescUpdatedAt.Default.(func() time.Time)
	// medicalhistory.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	medicalhistory.UpdateDefaultUpdatedAt = medicalhistoryDescUpdatedAt.UpdateDefault.(func() time.Time)
	// medicalhistoryDescCondition is the schema descriptor for condition field.
	medicalhistoryDescCondition := medicalhistoryFields[2].Descriptor()
	// medicalhistory.ConditionValidator is a validator for the "condition" field. It is called by the builders before save.
	medicalhistory.ConditionValidator = medicalhistoryDescCondition.Validators[0].(func(string) error)
	// medicalhistoryDescID is the schema descriptor for id field.
	medicalhistoryDescID := medicalhistoryMixinFields0[0].Descriptor()
	// medicalhistory.DefaultID holds the default value on creation for the id field.
	medicalhistory.DefaultID = medicalhistoryDescID.Default.(func() uuid.UUID)
	medicationMixin := schema.Medication{}.Mixin()
	medicationMixinFields0 := medicationMixin[0].Fields()
	_ = medicationMixinFields0
	medicationMixinFields1 := medicationMixin[1].Fields()
	_ = medicationMixinFields1
	medicationFields := schema.Medication{}.Fields()
	_ = medicationFields
	// medicationDescCreatedAt is the schema descriptor for created_at field.
	medicationDescCreatedAt := medicationMixinFields1[0].Descriptor()
	// medication.DefaultCreatedAt holds the default value on creation for the created_at field.
	medication.DefaultCreatedAt = medicationDescCreatedAt.Default.(func() time.Time)
	// medicationDescUpdatedAt is the schema descriptor for updated_at field.
	medicationDescUpdatedAt := medicationMixinFields1[1].Descriptor()
	// medication.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	medication.DefaultUpdatedAt = medicationDescUpdatedAt.Default.(func() time.Time)
	// medication.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	medication.UpdateDefaultUpdatedAt = medicationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// medicationDescName is the schema descriptor for name field.
	medicationDescName := medicationFields[2].Descriptor()
	// medication.NameValidator is a validator for the "name" field. It is called by the builders before save.
	medication.NameValidator = medicationDescName.Validators[0].(func(string) error)
	// medicationDescDosage is the schema descriptor for dosage field.
	medicationDescDosage := medicationFields[3].Descriptor()
	// medication.DosageValidator is a validator for the "dosage" field. It is called by the builders before save.
	medication.DosageValidator = medicationDescDosage.Validators[0].(func(string) error)
	// medicationDescFrequency is the schema descriptor for frequency field.
	medicationDescFrequency := medicationFields[4].Descriptor()
	// medication.FrequencyValidator is a validator for the "frequency" field. It is called by the builders before save.
	medication.FrequencyValidator = medicationDescFrequency.Validators[0].(func(string) error)
	// medicationDescID is the schema descriptor for id field.
	medicationDescID := medicationMixinFields0[0].Descriptor()
	// medication.DefaultID holds the default value on creation for the id field.
	medication.DefaultID = medicationDescID.Default.(func() uuid.UUID)
	medicationprogressMixin := schema.MedicationProgress{}.Mixin()
	medicationprogressMixinFields0 := medicationprogressMixin[0].Fields()
	_ = medicationprogressMixinFields0
	medicationprogressMixinFields1 := medicationprogressMixin[1].Fields()
	_ = medicationprogressMixinFields1
	medicationprogressFields := schema.MedicationProgress{}.Fields()
	_ = medicationprogressFields
	// medicationprogressDescCreatedAt is the schema descriptor for created_at field.
	medicationprogressDescCreatedAt := medicationprogressMixinFields1[0].Descriptor()
	// medicationprogress.DefaultCreatedAt holds the default value on creation for the created_at field.
	medicationprogress.DefaultCreatedAt = medicationprogressDescCreatedAt.Default.(func() time.Time)
	// medicationprogressDescID is the schema descriptor for id field.
	medicationprogressDescID := medicationprogressMixinFields0[0].Descriptor()
	// medicationprogress.DefaultID holds the default value on creation for the id field.
	medicationprogress.DefaultID = medicationprogressDescID.Default.(func() uuid.UUID)
	messageMixin := schema.Message{}.Mixin()
	messageMixinFields0 := messageMixin[0].Fields()
	_ = messageMixinFields0
	messageMixinFields1 := messageMixin[1].Fields()
	_ = messageMixinFields1
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageMixinFields1[0].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	// messageDescIsRead is the schema descriptor for is_read field.
	messageDescIsRead := messageFields[3].Descriptor()
	// message.DefaultIsRead holds the default value on creation for the is_read field.
	message.DefaultIsRead = messageDescIsRead.Default.(bool)
	// messageDescIsPinned is the schema descriptor for is_pinned field.
	messageDescIsPinned := messageFields[5].Descriptor()
	// message.DefaultIsPinned holds the default value on creation for the is_pinned field.
	message.DefaultIsPinned = messageDescIsPinned.Default.(bool)
	// messageDescID is the schema descriptor for id field.
	messageDescID := messageMixinFields0[0].Descriptor()
	// message.DefaultID holds the default value on creation for the id field.
	message.DefaultID = messageDescID.Default.(func() uuid.UUID)
	messageauditlogMixin := schema.MessageAuditLog{}.Mixin()
	messageauditlogMixinFields0 := messageauditlogMixin[0].Fields()
	_ = messageauditlogMixinFields0
	messageauditlogMixinFields1 := messageauditlogMixin[1].Fields()
	_ = messageauditlogMixinFields1
	messageauditlogFields := schema.MessageAuditLog{}.Fields()
	_ = messageauditlogFields
	// messageauditlogDescCreatedAt is the schema descriptor for created_at field.
	messageauditlogDescCreatedAt := messageauditlogMixinFields1[0].Descriptor()
	// messageauditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	messageauditlog.DefaultCreatedAt = messageauditlogDescCreatedAt.Default.(func() time.Time)
	// messageauditlogDescID is the schema descriptor for id field.
	messageauditlogDescID := messageauditlogMixinFields0[0].Descriptor()
	// messageauditlog.DefaultID holds the default value on creation for the id field.
	messageauditlog.DefaultID = messageauditlogDescID.Default.(func() uuid.UUID)
	messagereadreceiptMixin := schema.MessageReadReceipt{}.Mixin()
	messagereadreceiptMixinFields0 := messagereadreceiptMixin[0].Fields()
	_ = messagereadreceiptMixinFields0
	messagereadreceiptMixinFields1 := messagereadreceiptMixin[1].Fields()
	_ = messagereadreceiptMixinFields1
	messagereadreceiptFields := schema.MessageReadReceipt{}.Fields()
	_ = messagereadreceiptFields
	// messagereadreceiptDescCreatedAt is the schema descriptor for created_at field.
	messagereadreceiptDescCreatedAt := messagereadreceiptMixinFields1[0].Descriptor()
	// messagereadreceipt.DefaultCreatedAt holds the default value on creation for the created_at field.
	messagereadreceipt.DefaultCreatedAt = messagereadreceiptDescCreatedAt.Default.(func() time.Time)
	// messagereadreceiptDescID is the schema descriptor for id field.
	messagereadreceiptDescID := messagereadreceiptMixinFields0[0].Descriptor()
	// messagereadreceipt.DefaultID holds the default value on creation for the id field.
	messagereadreceipt.DefaultID = messagereadreceiptDescID.Default.(func() uuid.UUID)
	notificationMixin := schema.Notification{}.Mixin()
	notificationMixinFields0 := notificationMixin[0].Fields()
	_ = notificationMixinFields0
	notificationMixinFields1 := notificationMixin[1].Fields()
	_ = notificationMixinFields1
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationMixinFields1[0].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	// notificationDescType is the schema descriptor for type field.
	notificationDescType := notificationFields[2].Descriptor()
	// notification.TypeValidator is a validator for the "type" field. It is called by the builders before save.
	notification.TypeValidator = notificationDescType.Validators[0].(func(string) error)
	// notificationDescTitle is the schema descriptor for title field.
	notificationDescTitle := notificationFields[3].Descriptor()
	// notification.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	notification.TitleValidator = notificationDescTitle.Validators[0].(func(string) error)
	// notificationDescIsRead is the schema descriptor for is_read field.
	notificationDescIsRead := notificationFields[5].Descriptor()
	// notification.DefaultIsRead holds the default value on creation for the is_read field.
	notification.DefaultIsRead = notificationDescIsRead.Default.(bool)
	// notificationDescIsPushed is the schema descriptor for is_pushed field.
	notificationDescIsPushed := notificationFields[6].Descriptor()
	// notification.DefaultIsPushed holds the default value on creation for the is_pushed field.
	notification.DefaultIsPushed = notificationDescIsPushed.Default.(bool)
	// notificationDescID is the schema descriptor for id field.
	notificationDescID := notificationMixinFields0[0].Descriptor()
	// notification.DefaultID holds the default value on creation for the id field.
	notification.DefaultID = notificationDescID.Default.(func() uuid.UUID)
	prescriptionMixin := schema.Prescription{}.Mixin()
	prescriptionMixinFields0 := prescriptionMixin[0].Fields()
	_ = prescriptionMixinFields0
	prescriptionMixinFields1 := prescriptionMixin[1].Fields()
	_ = prescriptionMixinFields1
	prescriptionFields := schema.Prescription{}.Fields()
	_ = prescriptionFields
	// prescriptionDescCreatedAt is the schema descriptor for created_at field.
	prescriptionDescCreatedAt := prescriptionMixinFields1[0].Descriptor()
	// prescription.DefaultCreatedAt holds the default value on creation for the created_at field.
	prescription.DefaultCreatedAt = prescriptionDescCreatedAt.Default.(func() time.Time)
	// prescriptionDescUpdatedAt is the schema descriptor for updated_at field.
	prescriptionDescUpdatedAt := prescriptionMixinFields1[1].Descriptor()
	// prescription.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	prescription.DefaultUpdatedAt = prescriptionDescUpdatedAt.Default.(func() time.Time)
	// prescription.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	prescription.UpdateDefaultUpdatedAt = prescriptionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// prescriptionDescTitle is the schema descriptor for title field.
	prescriptionDescTitle := prescriptionFields[2].Descriptor()
	// prescription.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	prescription.TitleValidator = prescriptionDescTitle.Validators[0].(func(string) error)
	// prescriptionDescFileKey is the schema descriptor for file_key field.
	prescriptionDescFileKey := prescriptionFields[4].Descriptor()
	// prescription.FileKeyValidator is a validator for the "file_key" field. It is called by the builders before save.
	prescription.FileKeyValidator = prescriptionDescFileKey.Validators[0].(func(string) error)
	// prescriptionDescFileName is the schema descriptor for file_name field.
	prescriptionDescFileName := prescriptionFields[5].Descriptor()
	// prescription.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	prescription.FileNameValidator = prescriptionDescFileName.Validators[0].(func(string) error)
	// prescriptionDescPrescribedDate is the schema descriptor for prescribed_date field.
	prescriptionDescPrescribedDate := prescriptionFields[6].Descriptor()
	// prescription.DefaultPrescribedDate holds the default value on creation for the prescribed_date field.
	prescription.DefaultPrescribedDate = prescriptionDescPrescribedDate.Default.(func() time.Time)
	// prescriptionDescID is the schema descriptor for id field.
	prescriptionDescID := prescriptionMixinFields0[0].Descriptor()
	// prescription.DefaultID holds the default value on creation for the id field.
	prescription.DefaultID = prescriptionDescID.Default.(func() uuid.UUID)
	timeoffMixin := schema.TimeOff{}.Mixin()
	timeoffMixinFields0 := timeoffMixin[0].Fields()
	_ = timeoffMixinFields0
	timeoffMixinFields1 := timeoffMixin[1].Fields()
	_ = timeoffMixinFields1
	timeoffFields := schema.TimeOff{}.Fields()
	_ = timeoffFields
	// timeoffDescCreatedAt is the schema descriptor for created_at field.
	timeoffDescCreatedAt := timeoffMixinFields1[0].Descriptor()
	// timeoff.DefaultCreatedAt holds the default value on creation for the created_at field.
	timeoff.DefaultCreatedAt = timeoffDescCreatedAt.Default.(func() time.Time)
	// timeoffDescUpdatedAt is the schema descriptor for updated_at field.
	timeoffDescUpdatedAt := timeoffMixinFields1[1].Descriptor()
	// timeoff.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	timeoff.DefaultUpdatedAt = timeoffDescUpdatedAt.Default.(func() time.Time)
	// timeoff.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	timeoff.UpdateDefaultUpdatedAt = timeoffDescUpdatedAt.UpdateDefault.(func() time.Time)
	// timeoffDescReason is the schema descriptor for reason field.
	timeoffDescReason := timeoffFields[3].Descriptor()
	// timeoff.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	timeoff.ReasonValidator = timeoffDescReason.Validators[0].(func(string) error)
	// timeoffDescID is the schema descriptor for id field.
	timeoffDescID := timeoffMixinFields0[0].Descriptor()
	// timeoff.DefaultID holds the default value on creation for the id field.
	timeoff.DefaultID = timeoffDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescFirstName is the schema descriptor for first_name field.
	userDescFirstName := userFields[0].Descriptor()
	// user.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	user.FirstNameValidator = userDescFirstName.Validators[0].(func(string) error)
	// userDescLastName is the schema descriptor for last_name field.
	userDescLastName := userFields[1].Descriptor()
	// user.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	user.LastNameValidator = userDescLastName.Validators[0].(func(string) error)
	// userDescPhone is the schema descriptor for phone field.
	userDescPhone := userFields[2].Descriptor()
	// user.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	user.PhoneValidator = userDescPhone.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[3].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescSpecialty is the schema descriptor for specialty field.
	userDescSpecialty := userFields[6].Descriptor()
	// user.SpecialtyValidator is a validator for the "specialty" field. It is called by the builders before save.
	user.SpecialtyValidator = userDescSpecialty.Validators[0].(func(string) error)
	// userDescAverageRating is the schema descriptor for average_rating field.
	userDescAverageRating := userFields[8].Descriptor()
	// user.DefaultAverageRating holds the default value on creation for the average_rating field.
	user.DefaultAverageRating = userDescAverageRating.Default.(float64)
	// userDescRatingCount is the schema descriptor for rating_count field.
	userDescRatingCount := userFields[9].Descriptor()
	// user.DefaultRatingCount holds the default value on creation for the rating_count field.
	user.DefaultRatingCount = userDescRatingCount.Default.(int)
	// user.RatingCountValidator is a validator for the "rating_count" field. It is called by the builders before save.
	user.RatingCountValidator = userDescRatingCount.Validators[0].(func(int) error)
	// userDescPhoneVerified is the schema descriptor for phone_verified field.
	userDescPhoneVerified := userFields[11].Descriptor()
	// user.DefaultPhoneVerified holds the default value on creation for the phone_verified field.
	user.DefaultPhoneVerified = userDescPhoneVerified.Default.(bool)
	// userDescEmailVerified is the schema descriptor for email_verified field.
	userDescEmailVerified := userFields[12].Descriptor()
	// user.DefaultEmailVerified holds the default value on creation for the email_verified field.
	user.DefaultEmailVerified = userDescEmailVerified.Default.(bool)
	// userDescMetadata is the schema descriptor for metadata field.
	userDescMetadata := userFields[14].Descriptor()
	// user.DefaultMetadata holds the default value on creation for the metadata field.
	user.DefaultMetadata = userDescMetadata.Default.(map[string]interface{})
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
