// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/govently/govently_backend/internal/repo/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/govently/govently_backend/internal/repo/appointment"
	"github.com/govently/govently_backend/internal/repo/matchresult"
	"github.com/govently/govently_backend/internal/repo/mentalassessment"
	"github.com/govently/govently_backend/internal/repo/therapistprofile"
	"github.com/govently/govently_backend/internal/repo/timeslot"
	"github.com/govently/govently_backend/internal/repo/user"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Appointment is the client for interacting with the Appointment builders.
	Appointment *AppointmentClient
	// MatchResult is the client for interacting with the MatchResult builders.
	MatchResult *MatchResultClient
	// MentalAssessment is the client for interacting with the MentalAssessment builders.
	MentalAssessment *MentalAssessmentClient
	// TherapistProfile is the client for interacting with the TherapistProfile builders.
	TherapistProfile *TherapistProfileClient
	// TimeSlot is the client for interacting with the TimeSlot builders.
	TimeSlot *TimeSlotClient
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
	c.MatchResult = NewMatchResultClient(c.config)
	c.MentalAssessment = NewMentalAssessmentClient(c.config)
	c.TherapistProfile = NewTherapistProfileClient(c.config)
	c.TimeSlot = NewTimeSlotClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		Appointment:      NewAppointmentClient(cfg),
		MatchResult:      NewMatchResultClient(cfg),
		MentalAssessment: NewMentalAssessmentClient(cfg),
		TherapistProfile: NewTherapistProfileClient(cfg),
		TimeSlot:         NewTimeSlotClient(cfg),
		User:             NewUserClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		Appointment:      NewAppointmentClient(cfg),
		MatchResult:      NewMatchResultClient(cfg),
		MentalAssessment: NewMentalAssessmentClient(cfg),
		TherapistProfile: NewTherapistProfileClient(cfg),
		TimeSlot:         NewTimeSlotClient(cfg),
		User:             NewUserClient(cfg),
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
		c.Appointment, c.MatchResult, c.MentalAssessment, c.TherapistProfile,
		c.TimeSlot, c.User,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Appointment, c.MatchResult, c.MentalAssessment, c.TherapistProfile,
		c.TimeSlot, c.User,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AppointmentMutation:
		return c.Appointment.mutate(ctx, m)
	case *MatchResultMutation:
		return c.MatchResult.mutate(ctx, m)
	case *MentalAssessmentMutation:
		return c.MentalAssessment.mutate(ctx, m)
	case *TherapistProfileMutation:
		return c.TherapistProfile.mutate(ctx, m)
	case *TimeSlotMutation:
		return c.TimeSlot.mutate(ctx, m)
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

// MatchResultClient is a client for the MatchResult schema.
type MatchResultClient struct {
	config
}

// NewMatchResultClient returns a client for the MatchResult from the given config.
func NewMatchResultClient(c config) *MatchResultClient {
	return &MatchResultClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `matchresult.Hooks(f(g(h())))`.
func (c *MatchResultClient) Use(hooks ...Hook) {
	c.hooks.MatchResult = append(c.hooks.MatchResult, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `matchresult.Intercept(f(g(h())))`.
func (c *MatchResultClient) Intercept(interceptors ...Interceptor) {
	c.inters.MatchResult = append(c.inters.MatchResult, interceptors...)
}

// Create returns a builder for creating a MatchResult entity.
func (c *MatchResultClient) Create() *MatchResultCreate {
	mutation := newMatchResultMutation(c.config, OpCreate)
	return &MatchResultCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MatchResult entities.
func (c *MatchResultClient) CreateBulk(builders ...*MatchResultCreate) *MatchResultCreateBulk {
	return &MatchResultCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MatchResultClient) MapCreateBulk(slice any, setFunc func(*MatchResultCreate, int)) *MatchResultCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MatchResultCreateBulk{err: fmt.Errorf("calling to MatchResultClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MatchResultCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MatchResultCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MatchResult.
func (c *MatchResultClient) Update() *MatchResultUpdate {
	mutation := newMatchResultMutation(c.config, OpUpdate)
	return &MatchResultUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MatchResultClient) UpdateOne(_m *MatchResult) *MatchResultUpdateOne {
	mutation := newMatchResultMutation(c.config, OpUpdateOne, withMatchResult(_m))
	return &MatchResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MatchResultClient) UpdateOneID(id uuid.UUID) *MatchResultUpdateOne {
	mutation := newMatchResultMutation(c.config, OpUpdateOne, withMatchResultID(id))
	return &MatchResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MatchResult.
func (c *MatchResultClient) Delete() *MatchResultDelete {
	mutation := newMatchResultMutation(c.config, OpDelete)
	return &MatchResultDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MatchResultClient) DeleteOne(_m *MatchResult) *MatchResultDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MatchResultClient) DeleteOneID(id uuid.UUID) *MatchResultDeleteOne {
	builder := c.Delete().Where(matchresult.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MatchResultDeleteOne{builder}
}

// Query returns a query builder for MatchResult.
func (c *MatchResultClient) Query() *MatchResultQuery {
	return &MatchResultQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMatchResult},
		inters: c.Interceptors(),
	}
}

// Get returns a MatchResult entity by its id.
func (c *MatchResultClient) Get(ctx context.Context, id uuid.UUID) (*MatchResult, error) {
	return c.Query().Where(matchresult.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MatchResultClient) GetX(ctx context.Context, id uuid.UUID) *MatchResult {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MatchResultClient) Hooks() []Hook {
	return c.hooks.MatchResult
}

// Interceptors returns the client interceptors.
func (c *MatchResultClient) Interceptors() []Interceptor {
	return c.inters.MatchResult
}

func (c *MatchResultClient) mutate(ctx context.Context, m *MatchResultMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MatchResultCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MatchResultUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MatchResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MatchResultDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown MatchResult mutation op: %q", m.Op())
	}
}

// MentalAssessmentClient is a client for the MentalAssessment schema.
type MentalAssessmentClient struct {
	config
}

// NewMentalAssessmentClient returns a client for the MentalAssessment from the given config.
func NewMentalAssessmentClient(c config) *MentalAssessmentClient {
	return &MentalAssessmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `mentalassessment.Hooks(f(g(h())))`.
func (c *MentalAssessmentClient) Use(hooks ...Hook) {
	c.hooks.MentalAssessment = append(c.hooks.MentalAssessment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `mentalassessment.Intercept(f(g(h())))`.
func (c *MentalAssessmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.MentalAssessment = append(c.inters.MentalAssessment, interceptors...)
}

// Create returns a builder for creating a MentalAssessment entity.
func (c *MentalAssessmentClient) Create() *MentalAssessmentCreate {
	mutation := newMentalAssessmentMutation(c.config, OpCreate)
	return &MentalAssessmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MentalAssessment entities.
func (c *MentalAssessmentClient) CreateBulk(builders ...*MentalAssessmentCreate) *MentalAssessmentCreateBulk {
	return &MentalAssessmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MentalAssessmentClient) MapCreateBulk(slice any, setFunc func(*MentalAssessmentCreate, int)) *MentalAssessmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MentalAssessmentCreateBulk{err: fmt.Errorf("calling to MentalAssessmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MentalAssessmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MentalAssessmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MentalAssessment.
func (c *MentalAssessmentClient) Update() *MentalAssessmentUpdate {
	mutation := newMentalAssessmentMutation(c.config, OpUpdate)
	return &MentalAssessmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MentalAssessmentClient) UpdateOne(_m *MentalAssessment) *MentalAssessmentUpdateOne {
	mutation := newMentalAssessmentMutation(c.config, OpUpdateOne, withMentalAssessment(_m))
	return &MentalAssessmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MentalAssessmentClient) UpdateOneID(id uuid.UUID) *MentalAssessmentUpdateOne {
	mutation := newMentalAssessmentMutation(c.config, OpUpdateOne, withMentalAssessmentID(id))
	return &MentalAssessmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MentalAssessment.
func (c *MentalAssessmentClient) Delete() *MentalAssessmentDelete {
	mutation := newMentalAssessmentMutation(c.config, OpDelete)
	return &MentalAssessmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MentalAssessmentClient) DeleteOne(_m *MentalAssessment) *MentalAssessmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MentalAssessmentClient) DeleteOneID(id uuid.UUID) *MentalAssessmentDeleteOne {
	builder := c.Delete().Where(mentalassessment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MentalAssessmentDeleteOne{builder}
}

// Query returns a query builder for MentalAssessment.
func (c *MentalAssessmentClient) Query() *MentalAssessmentQuery {
	return &MentalAssessmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMentalAssessment},
		inters: c.Interceptors(),
	}
}

// Get returns a MentalAssessment entity by its id.
func (c *MentalAssessmentClient) Get(ctx context.Context, id uuid.UUID) (*MentalAssessment, error) {
	return c.Query().Where(mentalassessment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MentalAssessmentClient) GetX(ctx context.Context, id uuid.UUID) *MentalAssessment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MentalAssessmentClient) Hooks() []Hook {
	return c.hooks.MentalAssessment
}

// Interceptors returns the client interceptors.
func (c *MentalAssessmentClient) Interceptors() []Interceptor {
	return c.inters.MentalAssessment
}

func (c *MentalAssessmentClient) mutate(ctx context.Context, m *MentalAssessmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MentalAssessmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MentalAssessmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MentalAssessmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MentalAssessmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown MentalAssessment mutation op: %q", m.Op())
	}
}

// TherapistProfileClient is a client for the TherapistProfile schema.
type TherapistProfileClient struct {
	config
}

// NewTherapistProfileClient returns a client for the TherapistProfile from the given config.
func NewTherapistProfileClient(c config) *TherapistProfileClient {
	return &TherapistProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `therapistprofile.Hooks(f(g(h())))`.
func (c *TherapistProfileClient) Use(hooks ...Hook) {
	c.hooks.TherapistProfile = append(c.hooks.TherapistProfile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `therapistprofile.Intercept(f(g(h())))`.
func (c *TherapistProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.TherapistProfile = append(c.inters.TherapistProfile, interceptors...)
}

// Create returns a builder for creating a TherapistProfile entity.
func (c *TherapistProfileClient) Create() *TherapistProfileCreate {
	mutation := newTherapistProfileMutation(c.config, OpCreate)
	return &TherapistProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TherapistProfile entities.
func (c *TherapistProfileClient) CreateBulk(builders ...*TherapistProfileCreate) *TherapistProfileCreateBulk {
	return &TherapistProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TherapistProfileClient) MapCreateBulk(slice any, setFunc func(*TherapistProfileCreate, int)) *TherapistProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TherapistProfileCreateBulk{err: fmt.Errorf("calling to TherapistProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TherapistProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TherapistProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TherapistProfile.
func (c *TherapistProfileClient) Update() *TherapistProfileUpdate {
	mutation := newTherapistProfileMutation(c.config, OpUpdate)
	return &TherapistProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TherapistProfileClient) UpdateOne(_m *TherapistProfile) *TherapistProfileUpdateOne {
	mutation := newTherapistProfileMutation(c.config, OpUpdateOne, withTherapistProfile(_m))
	return &TherapistProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TherapistProfileClient) UpdateOneID(id uuid.UUID) *TherapistProfileUpdateOne {
	mutation := newTherapistProfileMutation(c.config, OpUpdateOne, withTherapistProfileID(id))
	return &TherapistProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TherapistProfile.
func (c *TherapistProfileClient) Delete() *TherapistProfileDelete {
	mutation := newTherapistProfileMutation(c.config, OpDelete)
	return &TherapistProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TherapistProfileClient) DeleteOne(_m *TherapistProfile) *TherapistProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TherapistProfileClient) DeleteOneID(id uuid.UUID) *TherapistProfileDeleteOne {
	builder := c.Delete().Where(therapistprofile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TherapistProfileDeleteOne{builder}
}

// Query returns a query builder for TherapistProfile.
func (c *TherapistProfileClient) Query() *TherapistProfileQuery {
	return &TherapistProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTherapistProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a TherapistProfile entity by its id.
func (c *TherapistProfileClient) Get(ctx context.Context, id uuid.UUID) (*TherapistProfile, error) {
	return c.Query().Where(therapistprofile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TherapistProfileClient) GetX(ctx context.Context, id uuid.UUID) *TherapistProfile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TherapistProfileClient) Hooks() []Hook {
	return c.hooks.TherapistProfile
}

// Interceptors returns the client interceptors.
func (c *TherapistProfileClient) Interceptors() []Interceptor {
	return c.inters.TherapistProfile
}

func (c *TherapistProfileClient) mutate(ctx context.Context, m *TherapistProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TherapistProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TherapistProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TherapistProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TherapistProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown TherapistProfile mutation op: %q", m.Op())
	}
}

// TimeSlotClient is a client for the TimeSlot schema.
type TimeSlotClient struct {
	config
}

// NewTimeSlotClient returns a client for the TimeSlot from the given config.
func NewTimeSlotClient(c config) *TimeSlotClient {
	return &TimeSlotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `timeslot.Hooks(f(g(h())))`.
func (c *TimeSlotClient) Use(hooks ...Hook) {
	c.hooks.TimeSlot = append(c.hooks.TimeSlot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `timeslot.Intercept(f(g(h())))`.
func (c *TimeSlotClient) Intercept(interceptors ...Interceptor) {
	c.inters.TimeSlot = append(c.inters.TimeSlot, interceptors...)
}

// Create returns a builder for creating a TimeSlot entity.
func (c *TimeSlotClient) Create() *TimeSlotCreate {
	mutation := newTimeSlotMutation(c.config, OpCreate)
	return &TimeSlotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TimeSlot entities.
func (c *TimeSlotClient) CreateBulk(builders ...*TimeSlotCreate) *TimeSlotCreateBulk {
	return &TimeSlotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TimeSlotClient) MapCreateBulk(slice any, setFunc func(*TimeSlotCreate, int)) *TimeSlotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TimeSlotCreateBulk{err: fmt.Errorf("calling to TimeSlotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TimeSlotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TimeSlotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TimeSlot.
func (c *TimeSlotClient) Update() *TimeSlotUpdate {
	mutation := newTimeSlotMutation(c.config, OpUpdate)
	return &TimeSlotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TimeSlotClient) UpdateOne(_m *TimeSlot) *TimeSlotUpdateOne {
	mutation := newTimeSlotMutation(c.config, OpUpdateOne, withTimeSlot(_m))
	return &TimeSlotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TimeSlotClient) UpdateOneID(id uuid.UUID) *TimeSlotUpdateOne {
	mutation := newTimeSlotMutation(c.config, OpUpdateOne, withTimeSlotID(id))
	return &TimeSlotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TimeSlot.
func (c *TimeSlotClient) Delete() *TimeSlotDelete {
	mutation := newTimeSlotMutation(c.config, OpDelete)
	return &TimeSlotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TimeSlotClient) DeleteOne(_m *TimeSlot) *TimeSlotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TimeSlotClient) DeleteOneID(id uuid.UUID) *TimeSlotDeleteOne {
	builder := c.Delete().Where(timeslot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TimeSlotDeleteOne{builder}
}

// Query returns a query builder for TimeSlot.
func (c *TimeSlotClient) Query() *TimeSlotQuery {
	return &TimeSlotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTimeSlot},
		inters: c.Interceptors(),
	}
}

// Get returns a TimeSlot entity by its id.
func (c *TimeSlotClient) Get(ctx context.Context, id uuid.UUID) (*TimeSlot, error) {
	return c.Query().Where(timeslot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TimeSlotClient) GetX(ctx context.Context, id uuid.UUID) *TimeSlot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TimeSlotClient) Hooks() []Hook {
	return c.hooks.TimeSlot
}

// Interceptors returns the client interceptors.
func (c *TimeSlotClient) Interceptors() []Interceptor {
	return c.inters.TimeSlot
}

func (c *TimeSlotClient) mutate(ctx context.Context, m *TimeSlotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TimeSlotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TimeSlotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TimeSlotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TimeSlotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown TimeSlot mutation op: %q", m.Op())
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
		Appointment, MatchResult, MentalAssessment, TherapistProfile, TimeSlot,
		User []ent.Hook
	}
	inters struct {
		Appointment, MatchResult, MentalAssessment, TherapistProfile, TimeSlot,
		User []ent.Interceptor
	}
)
