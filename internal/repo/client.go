// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/curaline/curaline_backend/internal/repo/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
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

	stdsql "database/sql"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Appointment is the client for interacting with the Appointment builders.
	Appointment *AppointmentClient
	// AppointmentEvent is the client for interacting with the AppointmentEvent builders.
	AppointmentEvent *AppointmentEventClient
	// AppointmentMeeting is the client for interacting with the AppointmentMeeting builders.
	AppointmentMeeting *AppointmentMeetingClient
	// AppointmentReschedule is the client for interacting with the AppointmentReschedule builders.
	AppointmentReschedule *AppointmentRescheduleClient
	// AvailabilitySlot is the client for interacting with the AvailabilitySlot builders.
	AvailabilitySlot *AvailabilitySlotClient
	// CalendarCredential is the client for interacting with the CalendarCredential builders.
	CalendarCredential *CalendarCredentialClient
	// Conversation is the client for interacting with the Conversation builders.
	Conversation *ConversationClient
	// DoctorPatient is the client for interacting with the DoctorPatient builders.
	DoctorPatient *DoctorPatientClient
	// DoctorRating is the client for interacting with the DoctorRating builders.
	DoctorRating *DoctorRatingClient
	// LabReport is the client for interacting with the LabReport builders.
	LabReport *LabReportClient
	// MedicalHistory is the client for interacting with the MedicalHistory builders.
	MedicalHistory *MedicalHistoryClient
	// Medication is the client for interacting with the Medication builders.
	Medication *MedicationClient
	// MedicationProgress is the client for interacting with the MedicationProgress builders.
	MedicationProgress *MedicationProgressClient
	// Message is the client for interacting with the Message builders.
	Message *MessageClient
	// MessageAuditLog is the client for interacting with the MessageAuditLog builders.
	MessageAuditLog *MessageAuditLogClient
	// MessageReadReceipt is the client for interacting with the MessageReadReceipt builders.
	MessageReadReceipt *MessageReadReceiptClient
	// Notification is the client for interacting with the Notification builders.
	Notification *NotificationClient
	// Prescription is the client for interacting with the Prescription builders.
	Prescription *PrescriptionClient
	// TimeOff is the client for interacting with the TimeOff builders.
	TimeOff *TimeOffClient
	// User is the client for interacting with the User builders.
	User *UserClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Appointment = NewAppointmentClient(c.config)
	c.AppointmentEvent = NewAppointmentEventClient(c.config)
	c.AppointmentMeeting = NewAppointmentMeetingClient(c.config)
	c.AppointmentReschedule = NewAppointmentRescheduleClient(c.config)
	c.AvailabilitySlot = NewAvailabilitySlotClient(c.config)
	c.CalendarCredential = NewCalendarCredentialClient(c.config)
	c.Conversation = NewConversationClient(c.config)
	c.DoctorPatient = NewDoctorPatientClient(c.config)
	c.DoctorRating = NewDoctorRatingClient(c.config)
	c.LabReport = NewLabReportClient(c.config)
	c.MedicalHistory = NewMedicalHistoryClient(c.config)
	c.Medication = NewMedicationClient(c.config)
	c.MedicationProgress = NewMedicationProgressClient(c.config)
	c.Message = NewMessageClient(c.config)
	c.MessageAuditLog = NewMessageAuditLogClient(c.config)
	c.MessageReadReceipt = NewMessageReadReceiptClient(c.config)
	c.Notification = NewNotificationClient(c.config)
	c.Prescription = NewPrescriptionClient(c.config)
	c.TimeOff = NewTimeOffClient(c.config)
	c.User = NewUserClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("repo: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("repo: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                   ctx,
		config:                cfg,
		Appointment:           NewAppointmentClient(cfg),
		AppointmentEvent:      NewAppointmentEventClient(cfg),
		AppointmentMeeting:    NewAppointmentMeetingClient(cfg),
		AppointmentReschedule: NewAppointmentRescheduleClient(cfg),
		AvailabilitySlot:      NewAvailabilitySlotClient(cfg),
		CalendarCredential:    NewCalendarCredentialClient(cfg),
		Conversation:          NewConversationClient(cfg),
		DoctorPatient:         NewDoctorPatientClient(cfg),
		DoctorRating:          NewDoctorRatingClient(cfg),
		LabReport:             NewLabReportClient(cfg),
		MedicalHistory:        NewMedicalHistoryClient(cfg),
		Medication:            NewMedicationClient(cfg),
		MedicationProgress:    NewMedicationProgressClient(cfg),
		Message:               NewMessageClient(cfg),
		MessageAuditLog:       NewMessageAuditLogClient(cfg),
		MessageReadReceipt:    NewMessageReadReceiptClient(cfg),
		Notification:          NewNotificationClient(cfg),
		Prescription:          NewPrescriptionClient(cfg),
		TimeOff:               NewTimeOffClient(cfg),
		User:                  NewUserClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                   ctx,
		config:                cfg,
		Appointment:           NewAppointmentClient(cfg),
		AppointmentEvent:      NewAppointmentEventClient(cfg),
		AppointmentMeeting:    NewAppointmentMeetingClient(cfg),
		AppointmentReschedule: NewAppointmentRescheduleClient(cfg),
		AvailabilitySlot:      NewAvailabilitySlotClient(cfg),
		CalendarCredential:    NewCalendarCredentialClient(cfg),
		Conversation:          NewConversationClient(cfg),
		DoctorPatient:         NewDoctorPatientClient(cfg),
		DoctorRating:          NewDoctorRatingClient(cfg),
		LabReport:             NewLabReportClient(cfg),
		MedicalHistory:        NewMedicalHistoryClient(cfg),
		Medication:            NewMedicationClient(cfg),
		MedicationProgress:    NewMedicationProgressClient(cfg),
		Message:               NewMessageClient(cfg),
		MessageAuditLog:       NewMessageAuditLogClient(cfg),
		MessageReadReceipt:    NewMessageReadReceiptClient(cfg),
		Notification:          NewNotificationClient(cfg),
		Prescription:          NewPrescriptionClient(cfg),
		TimeOff:               NewTimeOffClient(cfg),
		User:                  NewUserClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Appointment.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Appointment, c.AppointmentEvent, c.AppointmentMeeting,
		c.AppointmentReschedule, c.AvailabilitySlot, c.CalendarCredential,
		c.Conversation, c.DoctorPatient, c.DoctorRating, c.LabReport, c.MedicalHistory,
		c.Medication, c.MedicationProgress, c.Message, c.MessageAuditLog,
		c.MessageReadReceipt, c.Notification, c.Prescription, c.TimeOff, c.User,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Appointment, c.AppointmentEvent, c.AppointmentMeeting,
		c.AppointmentReschedule, c.AvailabilitySlot, c.CalendarCredential,
		c.Conversation, c.DoctorPatient, c.DoctorRating, c.LabReport, c.MedicalHistory,
		c.Medication, c.MedicationProgress, c.Message, c.MessageAuditLog,
		c.MessageReadReceipt, c.Notification, c.Prescription, c.TimeOff, c.User,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AppointmentMutation:
		return c.Appointment.mutate(ctx, m)
	case *AppointmentEventMutation:
		return c.AppointmentEvent.mutate(ctx, m)
	case *AppointmentMeetingMutation:
		return c.AppointmentMeeting.mutate(ctx, m)
	case *AppointmentRescheduleMutation:
		return c.AppointmentReschedule.mutate(ctx, m)
	case *AvailabilitySlotMutation:
		return c.AvailabilitySlot.mutate(ctx, m)
	case *CalendarCredentialMutation:
		return c.CalendarCredential.mutate(ctx, m)
	case *ConversationMutation:
		return c.Conversation.mutate(ctx, m)
	case *DoctorPatientMutation:
		return c.DoctorPatient.mutate(ctx, m)
	case *DoctorRatingMutation:
		return c.DoctorRating.mutate(ctx, m)
	case *LabReportMutation:
		return c.LabReport.mutate(ctx, m)
	case *MedicalHistoryMutation:
		return c.MedicalHistory.mutate(ctx, m)
	case *MedicationMutation:
		return c.Medication.mutate(ctx, m)
	case *MedicationProgressMutation:
		return c.MedicationProgress.mutate(ctx, m)
	case *MessageMutation:
		return c.Message.mutate(ctx, m)
	case *MessageAuditLogMutation:
		return c.MessageAuditLog.mutate(ctx, m)
	case *MessageReadReceiptMutation:
		return c.MessageReadReceipt.mutate(ctx, m)
	case *NotificationMutation:
		return c.Notification.mutate(ctx, m)
	case *PrescriptionMutation:
		return c.Prescription.mutate(ctx, m)
	case *TimeOffMutation:
		return c.TimeOff.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("repo: unknown mutation type %T", m)
	}
}

// AppointmentClient is a client for the Appointment schema.
type AppointmentClient struct {
	config
}

// NewAppointmentClient returns a client for the Appointment from the given config.
func NewAppointmentClient(c config) *AppointmentClient {
	return &AppointmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `appointment.Hooks(f(g(h())))`.
func (c *AppointmentClient) Use(hooks ...Hook) {
	c.hooks.Appointment = append(c.hooks.Appointment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `appointment.Intercept(f(g(h())))`.
func (c *AppointmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Appointment = append(c.inters.Appointment, interceptors...)
}

// Create returns a builder for creating a Appointment entity.
func (c *AppointmentClient) Create() *AppointmentCreate {
	mutation := newAppointmentMutation(c.config, OpCreate)
	return &AppointmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Appointment entities.
func (c *AppointmentClient) CreateBulk(builders ...*AppointmentCreate) *AppointmentCreateBulk {
	return &AppointmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AppointmentClient) MapCreateBulk(slice any, setFunc func(*AppointmentCreate, int)) *AppointmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AppointmentCreateBulk{err: fmt.Errorf("calling to AppointmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AppointmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AppointmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Appointment.
func (c *AppointmentClient) Update() *AppointmentUpdate {
	mutation := newAppointmentMutation(c.config, OpUpdate)
	return &AppointmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AppointmentClient) UpdateOne(_m *Appointment) *AppointmentUpdateOne {
	mutation := newAppointmentMutation(c.config, OpUpdateOne, withAppointment(_m))
	return &AppointmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AppointmentClient) UpdateOneID(id uuid.UUID) *AppointmentUpdateOne {
	mutation := newAppointmentMutation(c.config, OpUpdateOne, withAppointmentID(id))
	return &AppointmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Appointment.
func (c *AppointmentClient) Delete() *AppointmentDelete {
	mutation := newAppointmentMutation(c.config, OpDelete)
	return &AppointmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AppointmentClient) DeleteOne(_m *Appointment) *AppointmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AppointmentClient) DeleteOneID(id uuid.UUID) *AppointmentDeleteOne {
	builder := c.Delete().Where(appointment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AppointmentDeleteOne{builder}
}

// Query returns a query builder for Appointment.
func (c *AppointmentClient) Query() *AppointmentQuery {
	return &AppointmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAppointment},
		inters: c.Interceptors(),
	}
}

// Get returns a Appointment entity by its id.
func (c *AppointmentClient) Get(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return c.Query().Where(appointment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AppointmentClient) GetX(ctx context.Context, id uuid.UUID) *Appointment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAvailability queries the availability edge of a Appointment.
func (c *AppointmentClient) QueryAvailability(_m *Appointment) *AvailabilitySlotQuery {
	query := (&AvailabilitySlotClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(appointment.Table, appointment.FieldID, id),
			sqlgraph.To(availabilityslot.Table, availabilityslot.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, appointment.AvailabilityTable, appointment.AvailabilityColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AppointmentClient) Hooks() []Hook {
	return c.hooks.Appointment
}

// Interceptors returns the client interceptors.
func (c *AppointmentClient) Interceptors() []Interceptor {
	return c.inters.Appointment
}

func (c *AppointmentClient) mutate(ctx context.Context, m *AppointmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AppointmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AppointmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AppointmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AppointmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Appointment mutation op: %q", m.Op())
	}
}

// AppointmentEventClient is a client for the AppointmentEvent schema.
type AppointmentEventClient struct {
	config
}

// NewAppointmentEventClient returns a client for the AppointmentEvent from the given config.
func NewAppointmentEventClient(c config) *AppointmentEventClient {
	return &AppointmentEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `appointmentevent.Hooks(f(g(h())))`.
func (c *AppointmentEventClient) Use(hooks ...Hook) {
	c.hooks.AppointmentEvent = append(c.hooks.AppointmentEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `appointmentevent.Intercept(f(g(h())))`.
func (c *AppointmentEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AppointmentEvent = append(c.inters.AppointmentEvent, interceptors...)
}

// Create returns a builder for creating a AppointmentEvent entity.
func (c *AppointmentEventClient) Create() *AppointmentEventCreate {
	mutation := newAppointmentEventMutation(c.config, OpCreate)
	return &AppointmentEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AppointmentEvent entities.
func (c *AppointmentEventClient) CreateBulk(builders ...*AppointmentEventCreate) *AppointmentEventCreateBulk {
	return &AppointmentEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AppointmentEventClient) MapCreateBulk(slice any, setFunc func(*AppointmentEventCreate, int)) *AppointmentEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AppointmentEventCreateBulk{err: fmt.Errorf("calling to AppointmentEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AppointmentEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AppointmentEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AppointmentEvent.
func (c *AppointmentEventClient) Update() *AppointmentEventUpdate {
	mutation := newAppointmentEventMutation(c.config, OpUpdate)
	return &AppointmentEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AppointmentEventClient) UpdateOne(_m *AppointmentEvent) *AppointmentEventUpdateOne {
	mutation := newAppointmentEventMutation(c.config, OpUpdateOne, withAppointmentEvent(_m))
	return &AppointmentEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AppointmentEventClient) UpdateOneID(id uuid.UUID) *AppointmentEventUpdateOne {
	mutation := newAppointmentEventMutation(c.config, OpUpdateOne, withAppointmentEventID(id))
	return &AppointmentEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AppointmentEvent.
func (c *AppointmentEventClient) Delete() *AppointmentEventDelete {
	mutation := newAppointmentEventMutation(c.config, OpDelete)
	return &AppointmentEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AppointmentEventClient) DeleteOne(_m *AppointmentEvent) *AppointmentEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AppointmentEventClient) DeleteOneID(id uuid.UUID) *AppointmentEventDeleteOne {
	builder := c.Delete().Where(appointmentevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AppointmentEventDeleteOne{builder}
}

// Query returns a query builder for AppointmentEvent.
func (c *AppointmentEventClient) Query() *AppointmentEventQuery {
	return &AppointmentEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAppointmentEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AppointmentEvent entity by its id.
func (c *AppointmentEventClient) Get(ctx context.Context, id uuid.UUID) (*AppointmentEvent, error) {
	return c.Query().Where(appointmentevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AppointmentEventClient) GetX(ctx context.Context, id uuid.UUID) *AppointmentEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AppointmentEventClient) Hooks() []Hook {
	return c.hooks.AppointmentEvent
}

// Interceptors returns the client interceptors.
func (c *AppointmentEventClient) Interceptors() []Interceptor {
	return c.inters.AppointmentEvent
}

func (c *AppointmentEventClient) mutate(ctx context.Context, m *AppointmentEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AppointmentEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AppointmentEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AppointmentEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AppointmentEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown AppointmentEvent mutation op: %q", m.Op())
	}
}

// AppointmentMeetingClient is a client for the AppointmentMeeting schema.
type AppointmentMeetingClient struct {
	config
}

// NewAppointmentMeetingClient returns a client for the AppointmentMeeting from the given config.
func NewAppointmentMeetingClient(c config) *AppointmentMeetingClient {
	return &AppointmentMeetingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `appointmentmeeting.Hooks(f(g(h())))`.
func (c *AppointmentMeetingClient) Use(hooks ...Hook) {
	c.hooks.AppointmentMeeting = append(c.hooks.AppointmentMeeting, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `appointmentmeeting.Intercept(f(g(h())))`.
func (c *AppointmentMeetingClient) Intercept(interceptors ...Interceptor) {
	c.inters.AppointmentMeeting = append(c.inters.AppointmentMeeting, interceptors...)
}

// Create returns a builder for creating a AppointmentMeeting entity.
func (c *AppointmentMeetingClient) Create() *AppointmentMeetingCreate {
	mutation := newAppointmentMeetingMutation(c.config, OpCreate)
	return &AppointmentMeetingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AppointmentMeeting entities.
func (c *AppointmentMeetingClient) CreateBulk(builders ...*AppointmentMeetingCreate) *AppointmentMeetingCreateBulk {
	return &AppointmentMeetingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AppointmentMeetingClient) MapCreateBulk(slice any, setFunc func(*AppointmentMeetingCreate, int)) *AppointmentMeetingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AppointmentMeetingCreateBulk{err: fmt.Errorf("calling to AppointmentMeetingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AppointmentMeetingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AppointmentMeetingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AppointmentMeeting.
func (c *AppointmentMeetingClient) Update() *AppointmentMeetingUpdate {
	mutation := newAppointmentMeetingMutation(c.config, OpUpdate)
	return &AppointmentMeetingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AppointmentMeetingClient) UpdateOne(_m *AppointmentMeeting) *AppointmentMeetingUpdateOne {
	mutation := newAppointmentMeetingMutation(c.config, OpUpdateOne, withAppointmentMeeting(_m))
	return &AppointmentMeetingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AppointmentMeetingClient) UpdateOneID(id uuid.UUID) *AppointmentMeetingUpdateOne {
	mutation := newAppointmentMeetingMutation(c.config, OpUpdateOne, withAppointmentMeetingID(id))
	return &AppointmentMeetingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AppointmentMeeting.
func (c *AppointmentMeetingClient) Delete() *AppointmentMeetingDelete {
	mutation := newAppointmentMeetingMutation(c.config, OpDelete)
	return &AppointmentMeetingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AppointmentMeetingClient) DeleteOne(_m *AppointmentMeeting) *AppointmentMeetingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AppointmentMeetingClient) DeleteOneID(id uuid.UUID) *AppointmentMeetingDeleteOne {
	builder := c.Delete().Where(appointmentmeeting.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AppointmentMeetingDeleteOne{builder}
}

// Query returns a query builder for AppointmentMeeting.
func (c *AppointmentMeetingClient) Query() *AppointmentMeetingQuery {
	return &AppointmentMeetingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAppointmentMeeting},
		inters: c.Interceptors(),
	}
}

// Get returns a AppointmentMeeting entity by its id.
func (c *AppointmentMeetingClient) Get(ctx context.Context, id uuid.UUID) (*AppointmentMeeting, error) {
	return c.Query().Where(appointmentmeeting.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AppointmentMeetingClient) GetX(ctx context.Context, id uuid.UUID) *AppointmentMeeting {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AppointmentMeetingClient) Hooks() []Hook {
	return c.hooks.AppointmentMeeting
}

// Interceptors returns the client interceptors.
func (c *AppointmentMeetingClient) Interceptors() []Interceptor {
	return c.inters.AppointmentMeeting
}

func (c *AppointmentMeetingClient) mutate(ctx context.Context, m *AppointmentMeetingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AppointmentMeetingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AppointmentMeetingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AppointmentMeetingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AppointmentMeetingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown AppointmentMeeting mutation op: %q", m.Op())
	}
}

// AppointmentRescheduleClient is a client for the AppointmentReschedule schema.
type AppointmentRescheduleClient struct {
	config
}

// NewAppointmentRescheduleClient returns a client for the AppointmentReschedule from the given config.
func NewAppointmentRescheduleClient(c config) *AppointmentRescheduleClient {
	return &AppointmentRescheduleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `appointmentreschedule.Hooks(f(g(h())))`.
func (c *AppointmentRescheduleClient) Use(hooks ...Hook) {
	c.hooks.AppointmentReschedule = append(c.hooks.AppointmentReschedule, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `appointmentreschedule.Intercept(f(g(h())))`.
func (c *AppointmentRescheduleClient) Intercept(interceptors ...Interceptor) {
	c.inters.AppointmentReschedule = append(c.inters.AppointmentReschedule, interceptors...)
}

// Create returns a builder for creating a AppointmentReschedule entity.
func (c *AppointmentRescheduleClient) Create() *AppointmentRescheduleCreate {
	mutation := newAppointmentRescheduleMutation(c.config, OpCreate)
	return &AppointmentRescheduleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AppointmentReschedule entities.
func (c *AppointmentRescheduleClient) CreateBulk(builders ...*AppointmentRescheduleCreate) *AppointmentRescheduleCreateBulk {
	return &AppointmentRescheduleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AppointmentRescheduleClient) MapCreateBulk(slice any, setFunc func(*AppointmentRescheduleCreate, int)) *AppointmentRescheduleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AppointmentRescheduleCreateBulk{err: fmt.Errorf("calling to AppointmentRescheduleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AppointmentRescheduleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AppointmentRescheduleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AppointmentReschedule.
func (c *AppointmentRescheduleClient) Update() *AppointmentRescheduleUpdate {
	mutation := newAppointmentRescheduleMutation(c.config, OpUpdate)
	return &AppointmentRescheduleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AppointmentRescheduleClient) UpdateOne(_m *AppointmentReschedule) *AppointmentRescheduleUpdateOne {
	mutation := newAppointmentRescheduleMutation(c.config, OpUpdateOne, withAppointmentReschedule(_m))
	return &AppointmentRescheduleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AppointmentRescheduleClient) UpdateOneID(id uuid.UUID) *AppointmentRescheduleUpdateOne {
	mutation := newAppointmentRescheduleMutation(c.config, OpUpdateOne, withAppointmentRescheduleID(id))
	return &AppointmentRescheduleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AppointmentReschedule.
func (c *AppointmentRescheduleClient) Delete() *AppointmentRescheduleDelete {
	mutation := newAppointmentRescheduleMutation(c.config, OpDelete)
	return &AppointmentRescheduleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AppointmentRescheduleClient) DeleteOne(_m *AppointmentReschedule) *AppointmentRescheduleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AppointmentRescheduleClient) DeleteOneID(id uuid.UUID) *AppointmentRescheduleDeleteOne {
	builder := c.Delete().Where(appointmentreschedule.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AppointmentRescheduleDeleteOne{builder}
}

// Query returns a query builder for AppointmentReschedule.
func (c *AppointmentRescheduleClient) Query() *AppointmentRescheduleQuery {
	return &AppointmentRescheduleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAppointmentReschedule},
		inters: c.Interceptors(),
	}
}

// Get returns a AppointmentReschedule entity by its id.
func (c *AppointmentRescheduleClient) Get(ctx context.Context, id uuid.UUID) (*AppointmentReschedule, error) {
	return c.Query().Where(appointmentreschedule.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AppointmentRescheduleClient) GetX(ctx context.Context, id uuid.UUID) *AppointmentReschedule {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AppointmentRescheduleClient) Hooks() []Hook {
	return c.hooks.AppointmentReschedule
}

// Interceptors returns the client interceptors.
func (c *AppointmentRescheduleClient) Interceptors() []Interceptor {
	return c.inters.AppointmentReschedule
}

func (c *AppointmentRescheduleClient) mutate(ctx context.Context, m *AppointmentRescheduleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AppointmentRescheduleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AppointmentRescheduleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AppointmentRescheduleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AppointmentRescheduleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown AppointmentReschedule mutation op: %q", m.Op())
	}
}

// AvailabilitySlotClient is a client for the AvailabilitySlot schema.
type AvailabilitySlotClient struct {
	config
}

// NewAvailabilitySlotClient returns a client for the AvailabilitySlot from the given config.
func NewAvailabilitySlotClient(c config) *AvailabilitySlotClient {
	return &AvailabilitySlotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `availabilityslot.Hooks(f(g(h())))`.
func (c *AvailabilitySlotClient) Use(hooks ...Hook) {
	c.hooks.AvailabilitySlot = append(c.hooks.AvailabilitySlot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `availabilityslot.Intercept(f(g(h())))`.
func (c *AvailabilitySlotClient) Intercept(interceptors ...Interceptor) {
	c.inters.AvailabilitySlot = append(c.inters.AvailabilitySlot, interceptors...)
}

// Create returns a builder for creating a AvailabilitySlot entity.
func (c *AvailabilitySlotClient) Create() *AvailabilitySlotCreate {
	mutation := newAvailabilitySlotMutation(c.config, OpCreate)
	return &AvailabilitySlotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AvailabilitySlot entities.
func (c *AvailabilitySlotClient) CreateBulk(builders ...*AvailabilitySlotCreate) *AvailabilitySlotCreateBulk {
	return &AvailabilitySlotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AvailabilitySlotClient) MapCreateBulk(slice any, setFunc func(*AvailabilitySlotCreate, int)) *AvailabilitySlotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AvailabilitySlotCreateBulk{err: fmt.Errorf("calling to AvailabilitySlotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AvailabilitySlotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AvailabilitySlotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AvailabilitySlot.
func (c *AvailabilitySlotClient) Update() *AvailabilitySlotUpdate {
	mutation := newAvailabilitySlotMutation(c.config, OpUpdate)
	return &AvailabilitySlotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AvailabilitySlotClient) UpdateOne(_m *AvailabilitySlot) *AvailabilitySlotUpdateOne {
	mutation := newAvailabilitySlotMutation(c.config, OpUpdateOne, withAvailabilitySlot(_m))
	return &AvailabilitySlotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AvailabilitySlotClient) UpdateOneID(id uuid.UUID) *AvailabilitySlotUpdateOne {
	mutation := newAvailabilitySlotMutation(c.config, OpUpdateOne, withAvailabilitySlotID(id))
	return &AvailabilitySlotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AvailabilitySlot.
func (c *AvailabilitySlotClient) Delete() *AvailabilitySlotDelete {
	mutation := newAvailabilitySlotMutation(c.config, OpDelete)
	return &AvailabilitySlotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AvailabilitySlotClient) DeleteOne(_m *AvailabilitySlot) *AvailabilitySlotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AvailabilitySlotClient) DeleteOneID(id uuid.UUID) *AvailabilitySlotDeleteOne {
	builder := c.Delete().Where(availabilityslot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AvailabilitySlotDeleteOne{builder}
}

// Query returns a query builder for AvailabilitySlot.
func (c *AvailabilitySlotClient) Query() *AvailabilitySlotQuery {
	return &AvailabilitySlotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAvailabilitySlot},
		inters: c.Interceptors(),
	}
}

// Get returns a AvailabilitySlot entity by its id.
func (c *AvailabilitySlotClient) Get(ctx context.Context, id uuid.UUID) (*AvailabilitySlot, error) {
	return c.Query().Where(availabilityslot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AvailabilitySlotClient) GetX(ctx context.Context, id uuid.UUID) *AvailabilitySlot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AvailabilitySlotClient) Hooks() []Hook {
	return c.hooks.AvailabilitySlot
}

// Interceptors returns the client interceptors.
func (c *AvailabilitySlotClient) Interceptors() []Interceptor {
	return c.inters.AvailabilitySlot
}

func (c *AvailabilitySlotClient) mutate(ctx context.Context, m *AvailabilitySlotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AvailabilitySlotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AvailabilitySlotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AvailabilitySlotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AvailabilitySlotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown AvailabilitySlot mutation op: %q", m.Op())
	}
}

// CalendarCredentialClient is a client for the CalendarCredential schema.
type CalendarCredentialClient struct {
	config
}

// NewCalendarCredentialClient returns a client for the CalendarCredential from the given config.
func NewCalendarCredentialClient(c config) *CalendarCredentialClient {
	return &CalendarCredentialClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `calendarcredential.Hooks(f(g(h())))`.
func (c *CalendarCredentialClient) Use(hooks ...Hook) {
	c.hooks.CalendarCredential = append(c.hooks.CalendarCredential, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `calendarcredential.Intercept(f(g(h())))`.
func (c *CalendarCredentialClient) Intercept(interceptors ...Interceptor) {
	c.inters.CalendarCredential = append(c.inters.CalendarCredential, interceptors...)
}

// Create returns a builder for creating a CalendarCredential entity.
func (c *CalendarCredentialClient) Create() *CalendarCredentialCreate {
	mutation := newCalendarCredentialMutation(c.config, OpCreate)
	return &CalendarCredentialCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CalendarCredential entities.
func (c *CalendarCredentialClient) CreateBulk(builders ...*CalendarCredentialCreate) *CalendarCredentialCreateBulk {
	return &CalendarCredentialCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CalendarCredentialClient) MapCreateBulk(slice any, setFunc func(*CalendarCredentialCreate, int)) *CalendarCredentialCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CalendarCredentialCreateBulk{err: fmt.Errorf("calling to CalendarCredentialClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CalendarCredentialCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CalendarCredentialCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CalendarCredential.
func (c *CalendarCredentialClient) Update() *CalendarCredentialUpdate {
	mutation := newCalendarCredentialMutation(c.config, OpUpdate)
	return &CalendarCredentialUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CalendarCredentialClient) UpdateOne(_m *CalendarCredential) *CalendarCredentialUpdateOne {
	mutation := newCalendarCredentialMutation(c.config, OpUpdateOne, withCalendarCredential(_m))
	return &CalendarCredentialUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CalendarCredentialClient) UpdateOneID(id uuid.UUID) *CalendarCredentialUpdateOne {
	mutation := newCalendarCredentialMutation(c.config, OpUpdateOne, withCalendarCredentialID(id))
	return &CalendarCredentialUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CalendarCredential.
func (c *CalendarCredentialClient) Delete() *CalendarCredentialDelete {
	mutation := newCalendarCredentialMutation(c.config, OpDelete)
	return &CalendarCredentialDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CalendarCredentialClient) DeleteOne(_m *CalendarCredential) *CalendarCredentialDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CalendarCredentialClient) DeleteOneID(id uuid.UUID) *CalendarCredentialDeleteOne {
	builder := c.Delete().Where(calendarcredential.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CalendarCredentialDeleteOne{builder}
}

// Query returns a query builder for CalendarCredential.
func (c *CalendarCredentialClient) Query() *CalendarCredentialQuery {
	return &CalendarCredentialQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCalendarCredential},
		inters: c.Interceptors(),
	}
}

// Get returns a CalendarCredential entity by its id.
func (c *CalendarCredentialClient) Get(ctx context.Context, id uuid.UUID) (*CalendarCredential, error) {
	return c.Query().Where(calendarcredential.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CalendarCredentialClient) GetX(ctx context.Context, id uuid.UUID) *CalendarCredential {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CalendarCredentialClient) Hooks() []Hook {
	return c.hooks.CalendarCredential
}

// Interceptors returns the client interceptors.
func (c *CalendarCredentialClient) Interceptors() []Interceptor {
	return c.inters.CalendarCredential
}

func (c *CalendarCredentialClient) mutate(ctx context.Context, m *CalendarCredentialMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CalendarCredentialCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CalendarCredentialUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CalendarCredentialUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CalendarCredentialDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown CalendarCredential mutation op: %q", m.Op())
	}
}

// ConversationClient is a client for the Conversation schema.
type ConversationClient struct {
	config
}

// NewConversationClient returns a client for the Conversation from the given config.
func NewConversationClient(c config) *ConversationClient {
	return &ConversationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `conversation.Hooks(f(g(h())))`.
func (c *ConversationClient) Use(hooks ...Hook) {
	c.hooks.Conversation = append(c.hooks.Conversation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `conversation.Intercept(f(g(h())))`.
func (c *ConversationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Conversation = append(c.inters.Conversation, interceptors...)
}

// Create returns a builder for creating a Conversation entity.
func (c *ConversationClient) Create() *ConversationCreate {
	mutation := newConversationMutation(c.config, OpCreate)
	return &ConversationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Conversation entities.
func (c *ConversationClient) CreateBulk(builders ...*ConversationCreate) *ConversationCreateBulk {
	return &ConversationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConversationClient) MapCreateBulk(slice any, setFunc func(*ConversationCreate, int)) *ConversationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConversationCreateBulk{err: fmt.Errorf("calling to ConversationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConversationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConversationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Conversation.
func (c *ConversationClient) Update() *ConversationUpdate {
	mutation := newConversationMutation(c.config, OpUpdate)
	return &ConversationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConversationClient) UpdateOne(_m *Conversation) *ConversationUpdateOne {
	mutation := newConversationMutation(c.config, OpUpdateOne, withConversation(_m))
	return &ConversationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConversationClient) UpdateOneID(id uuid.UUID) *ConversationUpdateOne {
	mutation := newConversationMutation(c.config, OpUpdateOne, withConversationID(id))
	return &ConversationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Conversation.
func (c *ConversationClient) Delete() *ConversationDelete {
	mutation := newConversationMutation(c.config, OpDelete)
	return &ConversationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConversationClient) DeleteOne(_m *Conversation) *ConversationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConversationClient) DeleteOneID(id uuid.UUID) *ConversationDeleteOne {
	builder := c.Delete().Where(conversation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConversationDeleteOne{builder}
}

// Query returns a query builder for Conversation.
func (c *ConversationClient) Query() *ConversationQuery {
	return &ConversationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConversation},
		inters: c.Interceptors(),
	}
}

// Get returns a Conversation entity by its id.
func (c *ConversationClient) Get(ctx context.Context, id uuid.UUID) (*Conversation, error) {
	return c.Query().Where(conversation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConversationClient) GetX(ctx context.Context, id uuid.UUID) *Conversation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ConversationClient) Hooks() []Hook {
	return c.hooks.Conversation
}

// Interceptors returns the client interceptors.
func (c *ConversationClient) Interceptors() []Interceptor {
	return c.inters.Conversation
}

func (c *ConversationClient) mutate(ctx context.Context, m *ConversationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConversationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConversationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConversationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConversationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Conversation mutation op: %q", m.Op())
	}
}

// DoctorPatientClient is a client for the DoctorPatient schema.
type DoctorPatientClient struct {
	config
}

// NewDoctorPatientClient returns a client for the DoctorPatient from the given config.
func NewDoctorPatientClient(c config) *DoctorPatientClient {
	return &DoctorPatientClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `doctorpatient.Hooks(f(g(h())))`.
func (c *DoctorPatientClient) Use(hooks ...Hook) {
	c.hooks.DoctorPatient = append(c.hooks.DoctorPatient, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `doctorpatient.Intercept(f(g(h())))`.
func (c *DoctorPatientClient) Intercept(interceptors ...Interceptor) {
	c.inters.DoctorPatient = append(c.inters.DoctorPatient, interceptors...)
}

// Create returns a builder for creating a DoctorPatient entity.
func (c *DoctorPatientClient) Create() *DoctorPatientCreate {
	mutation := newDoctorPatientMutation(c.config, OpCreate)
	return &DoctorPatientCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DoctorPatient entities.
func (c *DoctorPatientClient) CreateBulk(builders ...*DoctorPatientCreate) *DoctorPatientCreateBulk {
	return &DoctorPatientCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DoctorPatientClient) MapCreateBulk(slice any, setFunc func(*DoctorPatientCreate, int)) *DoctorPatientCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DoctorPatientCreateBulk{err: fmt.Errorf("calling to DoctorPatientClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DoctorPatientCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DoctorPatientCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DoctorPatient.
func (c *DoctorPatientClient) Update() *DoctorPatientUpdate {
	mutation := newDoctorPatientMutation(c.config, OpUpdate)
	return &DoctorPatientUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DoctorPatientClient) UpdateOne(_m *DoctorPatient) *DoctorPatientUpdateOne {
	mutation := newDoctorPatientMutation(c.config, OpUpdateOne, withDoctorPatient(_m))
	return &DoctorPatientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DoctorPatientClient) UpdateOneID(id uuid.UUID) *DoctorPatientUpdateOne {
	mutation := newDoctorPatientMutation(c.config, OpUpdateOne, withDoctorPatientID(id))
	return &DoctorPatientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DoctorPatient.
func (c *DoctorPatientClient) Delete() *DoctorPatientDelete {
	mutation := newDoctorPatientMutation(c.config, OpDelete)
	return &DoctorPatientDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DoctorPatientClient) DeleteOne(_m *DoctorPatient) *DoctorPatientDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DoctorPatientClient) DeleteOneID(id uuid.UUID) *DoctorPatientDeleteOne {
	builder := c.Delete().Where(doctorpatient.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DoctorPatientDeleteOne{builder}
}

// Query returns a query builder for DoctorPatient.
func (c *DoctorPatientClient) Query() *DoctorPatientQuery {
	return &DoctorPatientQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDoctorPatient},
		inters: c.Interceptors(),
	}
}

// Get returns a DoctorPatient entity by its id.
func (c *DoctorPatientClient) Get(ctx context.Context, id uuid.UUID) (*DoctorPatient, error) {
	return c.Query().Where(doctorpatient.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DoctorPatientClient) GetX(ctx context.Context, id uuid.UUID) *DoctorPatient {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DoctorPatientClient) Hooks() []Hook {
	return c.hooks.DoctorPatient
}

// Interceptors returns the client interceptors.
func (c *DoctorPatientClient) Interceptors() []Interceptor {
	return c.inters.DoctorPatient
}

func (c *DoctorPatientClient) mutate(ctx context.Context, m *DoctorPatientMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DoctorPatientCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DoctorPatientUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DoctorPatientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DoctorPatientDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown DoctorPatient mutation op: %q", m.Op())
	}
}

// DoctorRatingClient is a client for the DoctorRating schema.
type DoctorRatingClient struct {
	config
}

// NewDoctorRatingClient returns a client for the DoctorRating from the given config.
func NewDoctorRatingClient(c config) *DoctorRatingClient {
	return &DoctorRatingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `doctorrating.Hooks(f(g(h())))`.
func (c *DoctorRatingClient) Use(hooks ...Hook) {
	c.hooks.DoctorRating = append(c.hooks.DoctorRating, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `doctorrating.Intercept(f(g(h())))`.
func (c *DoctorRatingClient) Intercept(interceptors ...Interceptor) {
	c.inters.DoctorRating = append(c.inters.DoctorRating, interceptors...)
}

// Create returns a builder for creating a DoctorRating entity.
func (c *DoctorRatingClient) Create() *DoctorRatingCreate {
	mutation := newDoctorRatingMutation(c.config, OpCreate)
	return &DoctorRatingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DoctorRating entities.
func (c *DoctorRatingClient) CreateBulk(builders ...*DoctorRatingCreate) *DoctorRatingCreateBulk {
	return &DoctorRatingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DoctorRatingClient) MapCreateBulk(slice any, setFunc func(*DoctorRatingCreate, int)) *DoctorRatingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DoctorRatingCreateBulk{err: fmt.Errorf("calling to DoctorRatingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DoctorRatingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DoctorRatingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DoctorRating.
func (c *DoctorRatingClient) Update() *DoctorRatingUpdate {
	mutation := newDoctorRatingMutation(c.config, OpUpdate)
	return &DoctorRatingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DoctorRatingClient) UpdateOne(_m *DoctorRating) *DoctorRatingUpdateOne {
	mutation := newDoctorRatingMutation(c.config, OpUpdateOne, withDoctorRating(_m))
	return &DoctorRatingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DoctorRatingClient) UpdateOneID(id uuid.UUID) *DoctorRatingUpdateOne {
	mutation := newDoctorRatingMutation(c.config, OpUpdateOne, withDoctorRatingID(id))
	return &DoctorRatingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DoctorRating.
func (c *DoctorRatingClient) Delete() *DoctorRatingDelete {
	mutation := newDoctorRatingMutation(c.config, OpDelete)
	return &DoctorRatingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DoctorRatingClient) DeleteOne(_m *DoctorRating) *DoctorRatingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DoctorRatingClient) DeleteOneID(id uuid.UUID) *DoctorRatingDeleteOne {
	builder := c.Delete().Where(doctorrating.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DoctorRatingDeleteOne{builder}
}

// Query returns a query builder for DoctorRating.
func (c *DoctorRatingClient) Query() *DoctorRatingQuery {
	return &DoctorRatingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDoctorRating},
		inters: c.Interceptors(),
	}
}

// Get returns a DoctorRating entity by its id.
func (c *DoctorRatingClient) Get(ctx context.Context, id uuid.UUID) (*DoctorRating, error) {
	return c.Query().Where(doctorrating.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DoctorRatingClient) GetX(ctx context.Context, id uuid.UUID) *DoctorRating {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DoctorRatingClient) Hooks() []Hook {
	return c.hooks.DoctorRating
}

// Interceptors returns the client interceptors.
func (c *DoctorRatingClient) Interceptors() []Interceptor {
	return c.inters.DoctorRating
}

func (c *DoctorRatingClient) mutate(ctx context.Context, m *DoctorRatingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DoctorRatingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DoctorRatingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DoctorRatingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DoctorRatingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown DoctorRating mutation op: %q", m.Op())
	}
}

// LabReportClient is a client for the LabReport schema.
type LabReportClient struct {
	config
}

// NewLabReportClient returns a client for the LabReport from the given config.
func NewLabReportClient(c config) *LabReportClient {
	return &LabReportClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `labreport.Hooks(f(g(h())))`.
func (c *LabReportClient) Use(hooks ...Hook) {
	c.hooks.LabReport = append(c.hooks.LabReport, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `labreport.Intercept(f(g(h())))`.
func (c *LabReportClient) Intercept(interceptors ...Interceptor) {
	c.inters.LabReport = append(c.inters.LabReport, interceptors...)
}

// Create returns a builder for creating a LabReport entity.
func (c *LabReportClient) Create() *LabReportCreate {
	mutation := newLabReportMutation(c.config, OpCreate)
	return &LabReportCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LabReport entities.
func (c *LabReportClient) CreateBulk(builders ...*LabReportCreate) *LabReportCreateBulk {
	return &LabReportCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LabReportClient) MapCreateBulk(slice any, setFunc func(*LabReportCreate, int)) *LabReportCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LabReportCreateBulk{err: fmt.Errorf("calling to LabReportClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LabReportCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LabReportCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LabReport.
func (c *LabReportClient) Update() *LabReportUpdate {
	mutation := newLabReportMutation(c.config, OpUpdate)
	return &LabReportUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LabReportClient) UpdateOne(_m *LabReport) *LabReportUpdateOne {
	mutation := newLabReportMutation(c.config, OpUpdateOne, withLabReport(_m))
	return &LabReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LabReportClient) UpdateOneID(id uuid.UUID) *LabReportUpdateOne {
	mutation := newLabReportMutation(c.config, OpUpdateOne, withLabReportID(id))
	return &LabReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LabReport.
func (c *LabReportClient) Delete() *LabReportDelete {
	mutation := newLabReportMutation(c.config, OpDelete)
	return &LabReportDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LabReportClient) DeleteOne(_m *LabReport) *LabReportDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LabReportClient) DeleteOneID(id uuid.UUID) *LabReportDeleteOne {
	builder := c.Delete().Where(labreport.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LabReportDeleteOne{builder}
}

// Query returns a query builder for LabReport.
func (c *LabReportClient) Query() *LabReportQuery {
	return &LabReportQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLabReport},
		inters: c.Interceptors(),
	}
}

// Get returns a LabReport entity by its id.
func (c *LabReportClient) Get(ctx context.Context, id uuid.UUID) (*LabReport, error) {
	return c.Query().Where(labreport.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LabReportClient) GetX(ctx context.Context, id uuid.UUID) *LabReport {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LabReportClient) Hooks() []Hook {
	return c.hooks.LabReport
}

// Interceptors returns the client interceptors.
func (c *LabReportClient) Interceptors() []Interceptor {
	return c.inters.LabReport
}

func (c *LabReportClient) mutate(ctx context.Context, m *LabReportMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LabReportCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LabReportUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LabReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LabReportDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown LabReport mutation op: %q", m.Op())
	}
}

// MedicalHistoryClient is a client for the MedicalHistory schema.
type MedicalHistoryClient struct {
	config
}

// NewMedicalHistoryClient returns a client for the MedicalHistory from the given config.
func NewMedicalHistoryClient(c config) *MedicalHistoryClient {
	return &MedicalHistoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `medicalhistory.Hooks(f(g(h())))`.
func (c *MedicalHistoryClient) Use(hooks ...Hook) {
	c.hooks.MedicalHistory = append(c.hooks.MedicalHistory, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `medicalhistory.Intercept(f(g(h())))`.
func (c *MedicalHistoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.MedicalHistory = append(c.inters.MedicalHistory, interceptors...)
}

// Create returns a builder for creating a MedicalHistory entity.
func (c *MedicalHistoryClient) Create() *MedicalHistoryCreate {
	mutation := newMedicalHistoryMutation(c.config, OpCreate)
	return &MedicalHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MedicalHistory entities.
func (c *MedicalHistoryClient) CreateBulk(builders ...*MedicalHistoryCreate) *MedicalHistoryCreateBulk {
	return &MedicalHistoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MedicalHistoryClient) MapCreateBulk(slice any, setFunc func(*MedicalHistoryCreate, int)) *MedicalHistoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MedicalHistoryCreateBulk{err: fmt.Errorf("calling to MedicalHistoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MedicalHistoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MedicalHistoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MedicalHistory.
func (c *MedicalHistoryClient) Update() *MedicalHistoryUpdate {
	mutation := newMedicalHistoryMutation(c.config, OpUpdate)
	return &MedicalHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MedicalHistoryClient) UpdateOne(_m *MedicalHistory) *MedicalHistoryUpdateOne {
	mutation := newMedicalHistoryMutation(c.config, OpUpdateOne, withMedicalHistory(_m))
	return &MedicalHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MedicalHistoryClient) UpdateOneID(id uuid.UUID) *MedicalHistoryUpdateOne {
	mutation := newMedicalHistoryMutation(c.config, OpUpdateOne, withMedicalHistoryID(id))
	return &MedicalHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MedicalHistory.
func (c *MedicalHistoryClient) Delete() *MedicalHistoryDelete {
	mutation := newMedicalHistoryMutation(c.config, OpDelete)
	return &MedicalHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MedicalHistoryClient) DeleteOne(_m *MedicalHistory) *MedicalHistoryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MedicalHistoryClient) DeleteOneID(id uuid.UUID) *MedicalHistoryDeleteOne {
	builder := c.Delete().Where(medicalhistory.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MedicalHistoryDeleteOne{builder}
}

// Query returns a query builder for MedicalHistory.
func (c *MedicalHistoryClient) Query() *MedicalHistoryQuery {
	return &MedicalHistoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMedicalHistory},
		inters: c.Interceptors(),
	}
}

// Get returns a MedicalHistory entity by its id.
func (c *MedicalHistoryClient) Get(ctx context.Context, id uuid.UUID) (*MedicalHistory, error) {
	return c.Query().Where(medicalhistory.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MedicalHistoryClient) GetX(ctx context.Context, id uuid.UUID) *MedicalHistory {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MedicalHistoryClient) Hooks() []Hook {
	return c.hooks.MedicalHistory
}

// Interceptors returns the client interceptors.
func (c *MedicalHistoryClient) Interceptors() []Interceptor {
	return c.inters.MedicalHistory
}

func (c *MedicalHistoryClient) mutate(ctx context.Context, m *MedicalHistoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MedicalHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MedicalHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MedicalHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MedicalHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown MedicalHistory mutation op: %q", m.Op())
	}
}

// MedicationClient is a client for the Medication schema.
type MedicationClient struct {
	config
}

// NewMedicationClient returns a client for the Medication from the given config.
func NewMedicationClient(c config) *MedicationClient {
	return &MedicationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `medication.Hooks(f(g(h())))`.
func (c *MedicationClient) Use(hooks ...Hook) {
	c.hooks.Medication = append(c.hooks.Medication, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `medication.Intercept(f(g(h())))`.
func (c *MedicationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Medication = append(c.inters.Medication, interceptors...)
}

// Create returns a builder for creating a Medication entity.
func (c *MedicationClient) Create() *MedicationCreate {
	mutation := newMedicationMutation(c.config, OpCreate)
	return &MedicationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Medication entities.
func (c *MedicationClient) CreateBulk(builders ...*MedicationCreate) *MedicationCreateBulk {
	return &MedicationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MedicationClient) MapCreateBulk(slice any, setFunc func(*MedicationCreate, int)) *MedicationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MedicationCreateBulk{err: fmt.Errorf("calling to MedicationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MedicationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MedicationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Medication.
func (c *MedicationClient) Update() *MedicationUpdate {
	mutation := newMedicationMutation(c.config, OpUpdate)
	return &MedicationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MedicationClient) UpdateOne(_m *Medication) *MedicationUpdateOne {
	mutation := newMedicationMutation(c.config, OpUpdateOne, withMedication(_m))
	return &MedicationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MedicationClient) UpdateOneID(id uuid.UUID) *MedicationUpdateOne {
	mutation := newMedicationMutation(c.config, OpUpdateOne, withMedicationID(id))
	return &MedicationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Medication.
func (c *MedicationClient) Delete() *MedicationDelete {
	mutation := newMedicationMutation(c.config, OpDelete)
	return &MedicationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MedicationClient) DeleteOne(_m *Medication) *MedicationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MedicationClient) DeleteOneID(id uuid.UUID) *MedicationDeleteOne {
	builder := c.Delete().Where(medication.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MedicationDeleteOne{builder}
}

// Query returns a query builder for Medication.
func (c *MedicationClient) Query() *MedicationQuery {
	return &MedicationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMedication},
		inters: c.Interceptors(),
	}
}

// Get returns a Medication entity by its id.
func (c *MedicationClient) Get(ctx context.Context, id uuid.UUID) (*Medication, error) {
	return c.Query().Where(medication.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MedicationClient) GetX(ctx context.Context, id uuid.UUID) *Medication {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MedicationClient) Hooks() []Hook {
	return c.hooks.Medication
}

// Interceptors returns the client interceptors.
func (c *MedicationClient) Interceptors() []Interceptor {
	return c.inters.Medication
}

func (c *MedicationClient) mutate(ctx context.Context, m *MedicationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MedicationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MedicationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MedicationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MedicationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Medication mutation op: %q", m.Op())
	}
}

// MedicationProgressClient is a client for the MedicationProgress schema.
type MedicationProgressClient struct {
	config
}

// NewMedicationProgressClient returns a client for the MedicationProgress from the given config.
func NewMedicationProgressClient(c config) *MedicationProgressClient {
	return &MedicationProgressClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `medicationprogress.Hooks(f(g(h())))`.
func (c *MedicationProgressClient) Use(hooks ...Hook) {
	c.hooks.MedicationProgress = append(c.hooks.MedicationProgress, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `medicationprogress.Intercept(f(g(h())))`.
func (c *MedicationProgressClient) Intercept(interceptors ...Interceptor) {
	c.inters.MedicationProgress = append(c.inters.MedicationProgress, interceptors...)
}

// Create returns a builder for creating a MedicationProgress entity.
func (c *MedicationProgressClient) Create() *MedicationProgressCreate {
	mutation := newMedicationProgressMutation(c.config, OpCreate)
	return &MedicationProgressCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MedicationProgress entities.
func (c *MedicationProgressClient) CreateBulk(builders ...*MedicationProgressCreate) *MedicationProgressCreateBulk {
	return &MedicationProgressCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MedicationProgressClient) MapCreateBulk(slice any, setFunc func(*MedicationProgressCreate, int)) *MedicationProgressCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MedicationProgressCreateBulk{err: fmt.Errorf("calling to MedicationProgressClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MedicationProgressCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MedicationProgressCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MedicationProgress.
func (c *MedicationProgressClient) Update() *MedicationProgressUpdate {
	mutation := newMedicationProgressMutation(c.config, OpUpdate)
	return &MedicationProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MedicationProgressClient) UpdateOne(_m *MedicationProgress) *MedicationProgressUpdateOne {
	mutation := newMedicationProgressMutation(c.config, OpUpdateOne, withMedicationProgress(_m))
	return &MedicationProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MedicationProgressClient) UpdateOneID(id uuid.UUID) *MedicationProgressUpdateOne {
	mutation := newMedicationProgressMutation(c.config, OpUpdateOne, withMedicationProgressID(id))
	return &MedicationProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MedicationProgress.
func (c *MedicationProgressClient) Delete() *MedicationProgressDelete {
	mutation := newMedicationProgressMutation(c.config, OpDelete)
	return &MedicationProgressDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MedicationProgressClient) DeleteOne(_m *MedicationProgress) *MedicationProgressDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MedicationProgressClient) DeleteOneID(id uuid.UUID) *MedicationProgressDeleteOne {
	builder := c.Delete().Where(medicationprogress.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MedicationProgressDeleteOne{builder}
}

// Query returns a query builder for MedicationProgress.
func (c *MedicationProgressClient) Query() *MedicationProgressQuery {
	return &MedicationProgressQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMedicationProgress},
		inters: c.Interceptors(),
	}
}

// Get returns a MedicationProgress entity by its id.
func (c *MedicationProgressClient) Get(ctx context.Context, id uuid.UUID) (*MedicationProgress, error) {
	return c.Query().Where(medicationprogress.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MedicationProgressClient) GetX(ctx context.Context, id uuid.UUID) *MedicationProgress {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MedicationProgressClient) Hooks() []Hook {
	return c.hooks.MedicationProgress
}

// Interceptors returns the client interceptors.
func (c *MedicationProgressClient) Interceptors() []Interceptor {
	return c.inters.MedicationProgress
}

func (c *MedicationProgressClient) mutate(ctx context.Context, m *MedicationProgressMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MedicationProgressCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MedicationProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MedicationProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MedicationProgressDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown MedicationProgress mutation op: %q", m.Op())
	}
}

// MessageClient is a client for the Message schema.
type MessageClient struct {
	config
}

// NewMessageClient returns a client for the Message from the given config.
func NewMessageClient(c config) *MessageClient {
	return &MessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `message.Hooks(f(g(h())))`.
func (c *MessageClient) Use(hooks ...Hook) {
	c.hooks.Message = append(c.hooks.Message, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `message.Intercept(f(g(h())))`.
func (c *MessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.Message = append(c.inters.Message, interceptors...)
}

// Create returns a builder for creating a Message entity.
func (c *MessageClient) Create() *MessageCreate {
	mutation := newMessageMutation(c.config, OpCreate)
	return &MessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Message entities.
func (c *MessageClient) CreateBulk(builders ...*MessageCreate) *MessageCreateBulk {
	return &MessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MessageClient) MapCreateBulk(slice any, setFunc func(*MessageCreate, int)) *MessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MessageCreateBulk{err: fmt.Errorf("calling to MessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Message.
func (c *MessageClient) Update() *MessageUpdate {
	mutation := newMessageMutation(c.config, OpUpdate)
	return &MessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MessageClient) UpdateOne(_m *Message) *MessageUpdateOne {
	mutation := newMessageMutation(c.config, OpUpdateOne, withMessage(_m))
	return &MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MessageClient) UpdateOneID(id uuid.UUID) *MessageUpdateOne {
	mutation := newMessageMutation(c.config, OpUpdateOne, withMessageID(id))
	return &MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Message.
func (c *MessageClient) Delete() *MessageDelete {
	mutation := newMessageMutation(c.config, OpDelete)
	return &MessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MessageClient) DeleteOne(_m *Message) *MessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MessageClient) DeleteOneID(id uuid.UUID) *MessageDeleteOne {
	builder := c.Delete().Where(message.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MessageDeleteOne{builder}
}

// Query returns a query builder for Message.
func (c *MessageClient) Query() *MessageQuery {
	return &MessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a Message entity by its id.
func (c *MessageClient) Get(ctx context.Context, id uuid.UUID) (*Message, error) {
	return c.Query().Where(message.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MessageClient) GetX(ctx context.Context, id uuid.UUID) *Message {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MessageClient) Hooks() []Hook {
	return c.hooks.Message
}

// Interceptors returns the client interceptors.
func (c *MessageClient) Interceptors() []Interceptor {
	return c.inters.Message
}

func (c *MessageClient) mutate(ctx context.Context, m *MessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Message mutation op: %q", m.Op())
	}
}

// MessageAuditLogClient is a client for the MessageAuditLog schema.
type MessageAuditLogClient struct {
	config
}

// NewMessageAuditLogClient returns a client for the MessageAuditLog from the given config.
func NewMessageAuditLogClient(c config) *MessageAuditLogClient {
	return &MessageAuditLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `messageauditlog.Hooks(f(g(h())))`.
func (c *MessageAuditLogClient) Use(hooks ...Hook) {
	c.hooks.MessageAuditLog = append(c.hooks.MessageAuditLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `messageauditlog.Intercept(f(g(h())))`.
func (c *MessageAuditLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.MessageAuditLog = append(c.inters.MessageAuditLog, interceptors...)
}

// Create returns a builder for creating a MessageAuditLog entity.
func (c *MessageAuditLogClient) Create() *MessageAuditLogCreate {
	mutation := newMessageAuditLogMutation(c.config, OpCreate)
	return &MessageAuditLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MessageAuditLog entities.
func (c *MessageAuditLogClient) CreateBulk(builders ...*MessageAuditLogCreate) *MessageAuditLogCreateBulk {
	return &MessageAuditLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MessageAuditLogClient) MapCreateBulk(slice any, setFunc func(*MessageAuditLogCreate, int)) *MessageAuditLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MessageAuditLogCreateBulk{err: fmt.Errorf("calling to MessageAuditLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MessageAuditLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MessageAuditLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MessageAuditLog.
func (c *MessageAuditLogClient) Update() *MessageAuditLogUpdate {
	mutation := newMessageAuditLogMutation(c.config, OpUpdate)
	return &MessageAuditLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MessageAuditLogClient) UpdateOne(_m *MessageAuditLog) *MessageAuditLogUpdateOne {
	mutation := newMessageAuditLogMutation(c.config, OpUpdateOne, withMessageAuditLog(_m))
	return &MessageAuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MessageAuditLogClient) UpdateOneID(id uuid.UUID) *MessageAuditLogUpdateOne {
	mutation := newMessageAuditLogMutation(c.config, OpUpdateOne, withMessageAuditLogID(id))
	return &MessageAuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MessageAuditLog.
func (c *MessageAuditLogClient) Delete() *MessageAuditLogDelete {
	mutation := newMessageAuditLogMutation(c.config, OpDelete)
	return &MessageAuditLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MessageAuditLogClient) DeleteOne(_m *MessageAuditLog) *MessageAuditLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MessageAuditLogClient) DeleteOneID(id uuid.UUID) *MessageAuditLogDeleteOne {
	builder := c.Delete().Where(messageauditlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MessageAuditLogDeleteOne{builder}
}

// Query returns a query builder for MessageAuditLog.
func (c *MessageAuditLogClient) Query() *MessageAuditLogQuery {
	return &MessageAuditLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMessageAuditLog},
		inters: c.Interceptors(),
	}
}

// Get returns a MessageAuditLog entity by its id.
func (c *MessageAuditLogClient) Get(ctx context.Context, id uuid.UUID) (*MessageAuditLog, error) {
	return c.Query().Where(messageauditlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MessageAuditLogClient) GetX(ctx context.Context, id uuid.UUID) *MessageAuditLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MessageAuditLogClient) Hooks() []Hook {
	return c.hooks.MessageAuditLog
}

// Interceptors returns the client interceptors.
func (c *MessageAuditLogClient) Interceptors() []Interceptor {
	return c.inters.MessageAuditLog
}

func (c *MessageAuditLogClient) mutate(ctx context.Context, m *MessageAuditLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MessageAuditLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MessageAuditLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MessageAuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MessageAuditLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown MessageAuditLog mutation op: %q", m.Op())
	}
}

// MessageReadReceiptClient is a client for the MessageReadReceipt schema.
type MessageReadReceiptClient struct {
	config
}

// NewMessageReadReceiptClient returns a client for the MessageReadReceipt from the given config.
func NewMessageReadReceiptClient(c config) *MessageReadReceiptClient {
	return &MessageReadReceiptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `messagereadreceipt.Hooks(f(g(h())))`.
func (c *MessageReadReceiptClient) Use(hooks ...Hook) {
	c.hooks.MessageReadReceipt = append(c.hooks.MessageReadReceipt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `messagereadreceipt.Intercept(f(g(h())))`.
func (c *MessageReadReceiptClient) Intercept(interceptors ...Interceptor) {
	c.inters.MessageReadReceipt = append(c.inters.MessageReadReceipt, interceptors...)
}

// Create returns a builder for creating a MessageReadReceipt entity.
func (c *MessageReadReceiptClient) Create() *MessageReadReceiptCreate {
	mutation := newMessageReadReceiptMutation(c.config, OpCreate)
	return &MessageReadReceiptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MessageReadReceipt entities.
func (c *MessageReadReceiptClient) CreateBulk(builders ...*MessageReadReceiptCreate) *MessageReadReceiptCreateBulk {
	return &MessageReadReceiptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MessageReadReceiptClient) MapCreateBulk(slice any, setFunc func(*MessageReadReceiptCreate, int)) *MessageReadReceiptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MessageReadReceiptCreateBulk{err: fmt.Errorf("calling to MessageReadReceiptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MessageReadReceiptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MessageReadReceiptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MessageReadReceipt.
func (c *MessageReadReceiptClient) Update() *MessageReadReceiptUpdate {
	mutation := newMessageReadReceiptMutation(c.config, OpUpdate)
	return &MessageReadReceiptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MessageReadReceiptClient) UpdateOne(_m *MessageReadReceipt) *MessageReadReceiptUpdateOne {
	mutation := newMessageReadReceiptMutation(c.config, OpUpdateOne, withMessageReadReceipt(_m))
	return &MessageReadReceiptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MessageReadReceiptClient) UpdateOneID(id uuid.UUID) *MessageReadReceiptUpdateOne {
	mutation := newMessageReadReceiptMutation(c.config, OpUpdateOne, withMessageReadReceiptID(id))
	return &MessageReadReceiptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MessageReadReceipt.
func (c *MessageReadReceiptClient) Delete() *MessageReadReceiptDelete {
	mutation := newMessageReadReceiptMutation(c.config, OpDelete)
	return &MessageReadReceiptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MessageReadReceiptClient) DeleteOne(_m *MessageReadReceipt) *MessageReadReceiptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MessageReadReceiptClient) DeleteOneID(id uuid.UUID) *MessageReadReceiptDeleteOne {
	builder := c.Delete().Where(messagereadreceipt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MessageReadReceiptDeleteOne{builder}
}

// Query returns a query builder for MessageReadReceipt.
func (c *MessageReadReceiptClient) Query() *MessageReadReceiptQuery {
	return &MessageReadReceiptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMessageReadReceipt},
		inters: c.Interceptors(),
	}
}

// Get returns a MessageReadReceipt entity by its id.
func (c *MessageReadReceiptClient) Get(ctx context.Context, id uuid.UUID) (*MessageReadReceipt, error) {
	return c.Query().Where(messagereadreceipt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MessageReadReceiptClient) GetX(ctx context.Context, id uuid.UUID) *MessageReadReceipt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MessageReadReceiptClient) Hooks() []Hook {
	return c.hooks.MessageReadReceipt
}

// Interceptors returns the client interceptors.
func (c *MessageReadReceiptClient) Interceptors() []Interceptor {
	return c.inters.MessageReadReceipt
}

func (c *MessageReadReceiptClient) mutate(ctx context.Context, m *MessageReadReceiptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MessageReadReceiptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MessageReadReceiptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MessageReadReceiptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MessageReadReceiptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown MessageReadReceipt mutation op: %q", m.Op())
	}
}

// NotificationClient is a client for the Notification schema.
type NotificationClient struct {
	config
}

// NewNotificationClient returns a client for the Notification from the given config.
func NewNotificationClient(c config) *NotificationClient {
	return &NotificationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `notification.Hooks(f(g(h())))`.
func (c *NotificationClient) Use(hooks ...Hook) {
	c.hooks.Notification = append(c.hooks.Notification, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `notification.Intercept(f(g(h())))`.
func (c *NotificationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Notification = append(c.inters.Notification, interceptors...)
}

// Create returns a builder for creating a Notification entity.
func (c *NotificationClient) Create() *NotificationCreate {
	mutation := newNotificationMutation(c.config, OpCreate)
	return &NotificationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Notification entities.
func (c *NotificationClient) CreateBulk(builders ...*NotificationCreate) *NotificationCreateBulk {
	return &NotificationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NotificationClient) MapCreateBulk(slice any, setFunc func(*NotificationCreate, int)) *NotificationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NotificationCreateBulk{err: fmt.Errorf("calling to NotificationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NotificationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NotificationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Notification.
func (c *NotificationClient) Update() *NotificationUpdate {
	mutation := newNotificationMutation(c.config, OpUpdate)
	return &NotificationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NotificationClient) UpdateOne(_m *Notification) *NotificationUpdateOne {
	mutation := newNotificationMutation(c.config, OpUpdateOne, withNotification(_m))
	return &NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NotificationClient) UpdateOneID(id uuid.UUID) *NotificationUpdateOne {
	mutation := newNotificationMutation(c.config, OpUpdateOne, withNotificationID(id))
	return &NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Notification.
func (c *NotificationClient) Delete() *NotificationDelete {
	mutation := newNotificationMutation(c.config, OpDelete)
	return &NotificationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NotificationClient) DeleteOne(_m *Notification) *NotificationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NotificationClient) DeleteOneID(id uuid.UUID) *NotificationDeleteOne {
	builder := c.Delete().Where(notification.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NotificationDeleteOne{builder}
}

// Query returns a query builder for Notification.
func (c *NotificationClient) Query() *NotificationQuery {
	return &NotificationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNotification},
		inters: c.Interceptors(),
	}
}

// Get returns a Notification entity by its id.
func (c *NotificationClient) Get(ctx context.Context, id uuid.UUID) (*Notification, error) {
	return c.Query().Where(notification.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NotificationClient) GetX(ctx context.Context, id uuid.UUID) *Notification {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *NotificationClient) Hooks() []Hook {
	return c.hooks.Notification
}

// Interceptors returns the client interceptors.
func (c *NotificationClient) Interceptors() []Interceptor {
	return c.inters.Notification
}

func (c *NotificationClient) mutate(ctx context.Context, m *NotificationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NotificationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NotificationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NotificationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Notification mutation op: %q", m.Op())
	}
}

// PrescriptionClient is a client for the Prescription schema.
type PrescriptionClient struct {
	config
}

// NewPrescriptionClient returns a client for the Prescription from the given config.
func NewPrescriptionClient(c config) *PrescriptionClient {
	return &PrescriptionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `prescription.Hooks(f(g(h())))`.
func (c *PrescriptionClient) Use(hooks ...Hook) {
	c.hooks.Prescription = append(c.hooks.Prescription, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `prescription.Intercept(f(g(h())))`.
func (c *PrescriptionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Prescription = append(c.inters.Prescription, interceptors...)
}

// Create returns a builder for creating a Prescription entity.
func (c *PrescriptionClient) Create() *PrescriptionCreate {
	mutation := newPrescriptionMutation(c.config, OpCreate)
	return &PrescriptionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Prescription entities.
func (c *PrescriptionClient) CreateBulk(builders ...*PrescriptionCreate) *PrescriptionCreateBulk {
	return &PrescriptionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PrescriptionClient) MapCreateBulk(slice any, setFunc func(*PrescriptionCreate, int)) *PrescriptionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PrescriptionCreateBulk{err: fmt.Errorf("calling to PrescriptionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PrescriptionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PrescriptionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Prescription.
func (c *PrescriptionClient) Update() *PrescriptionUpdate {
	mutation := newPrescriptionMutation(c.config, OpUpdate)
	return &PrescriptionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PrescriptionClient) UpdateOne(_m *Prescription) *PrescriptionUpdateOne {
	mutation := newPrescriptionMutation(c.config, OpUpdateOne, withPrescription(_m))
	return &PrescriptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PrescriptionClient) UpdateOneID(id uuid.UUID) *PrescriptionUpdateOne {
	mutation := newPrescriptionMutation(c.config, OpUpdateOne, withPrescriptionID(id))
	return &PrescriptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Prescription.
func (c *PrescriptionClient) Delete() *PrescriptionDelete {
	mutation := newPrescriptionMutation(c.config, OpDelete)
	return &PrescriptionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PrescriptionClient) DeleteOne(_m *Prescription) *PrescriptionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PrescriptionClient) DeleteOneID(id uuid.UUID) *PrescriptionDeleteOne {
	builder := c.Delete().Where(prescription.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PrescriptionDeleteOne{builder}
}

// Query returns a query builder for Prescription.
func (c *PrescriptionClient) Query() *PrescriptionQuery {
	return &PrescriptionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePrescription},
		inters: c.Interceptors(),
	}
}

// Get returns a Prescription entity by its id.
func (c *PrescriptionClient) Get(ctx context.Context, id uuid.UUID) (*Prescription, error) {
	return c.Query().Where(prescription.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PrescriptionClient) GetX(ctx context.Context, id uuid.UUID) *Prescription {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PrescriptionClient) Hooks() []Hook {
	return c.hooks.Prescription
}

// Interceptors returns the client interceptors.
func (c *PrescriptionClient) Interceptors() []Interceptor {
	return c.inters.Prescription
}

func (c *PrescriptionClient) mutate(ctx context.Context, m *PrescriptionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PrescriptionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PrescriptionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PrescriptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PrescriptionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Prescription mutation op: %q", m.Op())
	}
}

// TimeOffClient is a client for the TimeOff schema.
type TimeOffClient struct {
	config
}

// NewTimeOffClient returns a client for the TimeOff from the given config.
func NewTimeOffClient(c config) *TimeOffClient {
	return &TimeOffClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `timeoff.Hooks(f(g(h())))`.
func (c *TimeOffClient) Use(hooks ...Hook) {
	c.hooks.TimeOff = append(c.hooks.TimeOff, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `timeoff.Intercept(f(g(h())))`.
func (c *TimeOffClient) Intercept(interceptors ...Interceptor) {
	c.inters.TimeOff = append(c.inters.TimeOff, interceptors...)
}

// Create returns a builder for creating a TimeOff entity.
func (c *TimeOffClient) Create() *TimeOffCreate {
	mutation := newTimeOffMutation(c.config, OpCreate)
	return &TimeOffCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TimeOff entities.
func (c *TimeOffClient) CreateBulk(builders ...*TimeOffCreate) *TimeOffCreateBulk {
	return &TimeOffCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TimeOffClient) MapCreateBulk(slice any, setFunc func(*TimeOffCreate, int)) *TimeOffCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TimeOffCreateBulk{err: fmt.Errorf("calling to TimeOffClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TimeOffCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TimeOffCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TimeOff.
func (c *TimeOffClient) Update() *TimeOffUpdate {
	mutation := newTimeOffMutation(c.config, OpUpdate)
	return &TimeOffUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TimeOffClient) UpdateOne(_m *TimeOff) *TimeOffUpdateOne {
	mutation := newTimeOffMutation(c.config, OpUpdateOne, withTimeOff(_m))
	return &TimeOffUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TimeOffClient) UpdateOneID(id uuid.UUID) *TimeOffUpdateOne {
	mutation := newTimeOffMutation(c.config, OpUpdateOne, withTimeOffID(id))
	return &TimeOffUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TimeOff.
func (c *TimeOffClient) Delete() *TimeOffDelete {
	mutation := newTimeOffMutation(c.config, OpDelete)
	return &TimeOffDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TimeOffClient) DeleteOne(_m *TimeOff) *TimeOffDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TimeOffClient) DeleteOneID(id uuid.UUID) *TimeOffDeleteOne {
	builder := c.Delete().Where(timeoff.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TimeOffDeleteOne{builder}
}

// Query returns a query builder for TimeOff.
func (c *TimeOffClient) Query() *TimeOffQuery {
	return &TimeOffQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTimeOff},
		inters: c.Interceptors(),
	}
}

// Get returns a TimeOff entity by its id.
func (c *TimeOffClient) Get(ctx context.Context, id uuid.UUID) (*TimeOff, error) {
	return c.Query().Where(timeoff.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TimeOffClient) GetX(ctx context.Context, id uuid.UUID) *TimeOff {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TimeOffClient) Hooks() []Hook {
	return c.hooks.TimeOff
}

// Interceptors returns the client interceptors.
func (c *TimeOffClient) Interceptors() []Interceptor {
	return c.inters.TimeOff
}

func (c *TimeOffClient) mutate(ctx context.Context, m *TimeOffMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TimeOffCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TimeOffUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TimeOffUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TimeOffDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown TimeOff mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id uuid.UUID) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id uuid.UUID) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id uuid.UUID) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown User mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Appointment, AppointmentEvent, AppointmentMeeting, AppointmentReschedule,
		AvailabilitySlot, CalendarCredential, Conversation, DoctorPatient,
		DoctorRating, LabReport, MedicalHistory, Medication, MedicationProgress,
		Message, MessageAuditLog, MessageReadReceipt, Notification, Prescription,
		TimeOff, User []ent.Hook
	}
	inters struct {
		Appointment, AppointmentEvent, AppointmentMeeting, AppointmentReschedule,
		AvailabilitySlot, CalendarCredential, Conversation, DoctorPatient,
		DoctorRating, LabReport, MedicalHistory, Medication, MedicationProgress,
		Message, MessageAuditLog, MessageReadReceipt, Notification, Prescription,
		TimeOff, User []ent.Interceptor
	}
)

// ExecContext allows calling the underlying ExecContext method of the driver if it is supported by it.
// See, database/sql#DB.ExecContext for more information.
func (c *config) ExecContext(ctx context.Context, query string, args ...any) (stdsql.Result, error) {
	ex, ok := c.driver.(interface {
		ExecContext(context.Context, string, ...any) (stdsql.Result, error)
	})
	if !ok {
		return nil, fmt.Errorf("Driver.ExecContext is not supported")
	}
	return ex.ExecContext(ctx, query, args...)
}

// QueryContext allows calling the underlying QueryContext method of the driver if it is supported by it.
// See, database/sql#DB.QueryContext for more information.
func (c *config) QueryContext(ctx context.Context, query string, args ...any) (*stdsql.Rows, error) {
	q, ok := c.driver.(interface {
		QueryContext(context.Context, string, ...any) (*stdsql.Rows, error)
	})
	if !ok {
		return nil, fmt.Errorf("Driver.QueryContext is not supported")
	}
	return q.QueryContext(ctx, query, args...)
}
