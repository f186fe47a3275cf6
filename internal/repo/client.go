// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/niramoy/niramoy_backend/internal/repo/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/niramoy/niramoy_backend/internal/repo/appointment"
	"github.com/niramoy/niramoy_backend/internal/repo/canteenitem"
	"github.com/niramoy/niramoy_backend/internal/repo/canteensale"
	"github.com/niramoy/niramoy_backend/internal/repo/canteensaleitem"
	"github.com/niramoy/niramoy_backend/internal/repo/doctoravailability"
	"github.com/niramoy/niramoy_backend/internal/repo/doctorschedule"
	"github.com/niramoy/niramoy_backend/internal/repo/drug"
	"github.com/niramoy/niramoy_backend/internal/repo/expense"
	"github.com/niramoy/niramoy_backend/internal/repo/income"
	"github.com/niramoy/niramoy_backend/internal/repo/laborder"
	"github.com/niramoy/niramoy_backend/internal/repo/labresult"
	"github.com/niramoy/niramoy_backend/internal/repo/labtest"
	"github.com/niramoy/niramoy_backend/internal/repo/patient"
	"github.com/niramoy/niramoy_backend/internal/repo/pctransaction"
	"github.com/niramoy/niramoy_backend/internal/repo/pharmacysale"
	"github.com/niramoy/niramoy_backend/internal/repo/prescription"
	"github.com/niramoy/niramoy_backend/internal/repo/prescriptionmedicine"
	"github.com/niramoy/niramoy_backend/internal/repo/saleitem"
	"github.com/niramoy/niramoy_backend/internal/repo/staff"
	"github.com/niramoy/niramoy_backend/internal/repo/stockadjustment"

	stdsql "database/sql"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Appointment is the client for interacting with the Appointment builders.
	Appointment *AppointmentClient
	// CanteenItem is the client for interacting with the CanteenItem builders.
	CanteenItem *CanteenItemClient
	// CanteenSale is the client for interacting with the CanteenSale builders.
	CanteenSale *CanteenSaleClient
	// CanteenSaleItem is the client for interacting with the CanteenSaleItem builders.
	CanteenSaleItem *CanteenSaleItemClient
	// DoctorAvailability is the client for interacting with the DoctorAvailability builders.
	DoctorAvailability *DoctorAvailabilityClient
	// DoctorSchedule is the client for interacting with the DoctorSchedule builders.
	DoctorSchedule *DoctorScheduleClient
	// Drug is the client for interacting with the Drug builders.
	Drug *DrugClient
	// Expense is the client for interacting with the Expense builders.
	Expense *ExpenseClient
	// Income is the client for interacting with the Income builders.
	Income *IncomeClient
	// LabOrder is the client for interacting with the LabOrder builders.
	LabOrder *LabOrderClient
	// LabResult is the client for interacting with the LabResult builders.
	LabResult *LabResultClient
	// LabTest is the client for interacting with the LabTest builders.
	LabTest *LabTestClient
	// PCTransaction is the client for interacting with the PCTransaction builders.
	PCTransaction *PCTransactionClient
	// Patient is the client for interacting with the Patient builders.
	Patient *PatientClient
	// PharmacySale is the client for interacting with the PharmacySale builders.
	PharmacySale *PharmacySaleClient
	// Prescription is the client for interacting with the Prescription builders.
	Prescription *PrescriptionClient
	// PrescriptionMedicine is the client for interacting with the PrescriptionMedicine builders.
	PrescriptionMedicine *PrescriptionMedicineClient
	// SaleItem is the client for interacting with the SaleItem builders.
	SaleItem *SaleItemClient
	// Staff is the client for interacting with the Staff builders.
	Staff *StaffClient
	// StockAdjustment is the client for interacting with the StockAdjustment builders.
	StockAdjustment *StockAdjustmentClient
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
	c.CanteenItem = NewCanteenItemClient(c.config)
	c.CanteenSale = NewCanteenSaleClient(c.config)
	c.CanteenSaleItem = NewCanteenSaleItemClient(c.config)
	c.DoctorAvailability = NewDoctorAvailabilityClient(c.config)
	c.DoctorSchedule = NewDoctorScheduleClient(c.config)
	c.Drug = NewDrugClient(c.config)
	c.Expense = NewExpenseClient(c.config)
	c.Income = NewIncomeClient(c.config)
	c.LabOrder = NewLabOrderClient(c.config)
	c.LabResult = NewLabResultClient(c.config)
	c.LabTest = NewLabTestClient(c.config)
	c.PCTransaction = NewPCTransactionClient(c.config)
	c.Patient = NewPatientClient(c.config)
	c.PharmacySale = NewPharmacySaleClient(c.config)
	c.Prescription = NewPrescriptionClient(c.config)
	c.PrescriptionMedicine = NewPrescriptionMedicineClient(c.config)
	c.SaleItem = NewSaleItemClient(c.config)
	c.Staff = NewStaffClient(c.config)
	c.StockAdjustment = NewStockAdjustmentClient(c.config)
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
		ctx:                  ctx,
		config:               cfg,
		Appointment:          NewAppointmentClient(cfg),
		CanteenItem:          NewCanteenItemClient(cfg),
		CanteenSale:          NewCanteenSaleClient(cfg),
		CanteenSaleItem:      NewCanteenSaleItemClient(cfg),
		DoctorAvailability:   NewDoctorAvailabilityClient(cfg),
		DoctorSchedule:       NewDoctorScheduleClient(cfg),
		Drug:                 NewDrugClient(cfg),
		Expense:              NewExpenseClient(cfg),
		Income:               NewIncomeClient(cfg),
		LabOrder:             NewLabOrderClient(cfg),
		LabResult:            NewLabResultClient(cfg),
		LabTest:              NewLabTestClient(cfg),
		PCTransaction:        NewPCTransactionClient(cfg),
		Patient:              NewPatientClient(cfg),
		PharmacySale:         NewPharmacySaleClient(cfg),
		Prescription:         NewPrescriptionClient(cfg),
		PrescriptionMedicine: NewPrescriptionMedicineClient(cfg),
		SaleItem:             NewSaleItemClient(cfg),
		Staff:                NewStaffClient(cfg),
		StockAdjustment:      NewStockAdjustmentClient(cfg),
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
		ctx:                  ctx,
		config:               cfg,
		Appointment:          NewAppointmentClient(cfg),
		CanteenItem:          NewCanteenItemClient(cfg),
		CanteenSale:          NewCanteenSaleClient(cfg),
		CanteenSaleItem:      NewCanteenSaleItemClient(cfg),
		DoctorAvailability:   NewDoctorAvailabilityClient(cfg),
		DoctorSchedule:       NewDoctorScheduleClient(cfg),
		Drug:                 NewDrugClient(cfg),
		Expense:              NewExpenseClient(cfg),
		Income:               NewIncomeClient(cfg),
		LabOrder:             NewLabOrderClient(cfg),
		LabResult:            NewLabResultClient(cfg),
		LabTest:              NewLabTestClient(cfg),
		PCTransaction:        NewPCTransactionClient(cfg),
		Patient:              NewPatientClient(cfg),
		PharmacySale:         NewPharmacySaleClient(cfg),
		Prescription:         NewPrescriptionClient(cfg),
		PrescriptionMedicine: NewPrescriptionMedicineClient(cfg),
		SaleItem:             NewSaleItemClient(cfg),
		Staff:                NewStaffClient(cfg),
		StockAdjustment:      NewStockAdjustmentClient(cfg),
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
		c.Appointment, c.CanteenItem, c.CanteenSale, c.CanteenSaleItem,
		c.DoctorAvailability, c.DoctorSchedule, c.Drug, c.Expense, c.Income,
		c.LabOrder, c.LabResult, c.LabTest, c.PCTransaction, c.Patient, c.PharmacySale,
		c.Prescription, c.PrescriptionMedicine, c.SaleItem, c.Staff, c.StockAdjustment,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Appointment, c.CanteenItem, c.CanteenSale, c.CanteenSaleItem,
		c.DoctorAvailability, c.DoctorSchedule, c.Drug, c.Expense, c.Income,
		c.LabOrder, c.LabResult, c.LabTest, c.PCTransaction, c.Patient, c.PharmacySale,
		c.Prescription, c.PrescriptionMedicine, c.SaleItem, c.Staff, c.StockAdjustment,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AppointmentMutation:
		return c.Appointment.mutate(ctx, m)
	case *CanteenItemMutation:
		return c.CanteenItem.mutate(ctx, m)
	case *CanteenSaleMutation:
		return c.CanteenSale.mutate(ctx, m)
	case *CanteenSaleItemMutation:
		return c.CanteenSaleItem.mutate(ctx, m)
	case *DoctorAvailabilityMutation:
		return c.DoctorAvailability.mutate(ctx, m)
	case *DoctorScheduleMutation:
		return c.DoctorSchedule.mutate(ctx, m)
	case *DrugMutation:
		return c.Drug.mutate(ctx, m)
	case *ExpenseMutation:
		return c.Expense.mutate(ctx, m)
	case *IncomeMutation:
		return c.Income.mutate(ctx, m)
	case *LabOrderMutation:
		return c.LabOrder.mutate(ctx, m)
	case *LabResultMutation:
		return c.LabResult.mutate(ctx, m)
	case *LabTestMutation:
		return c.LabTest.mutate(ctx, m)
	case *PCTransactionMutation:
		return c.PCTransaction.mutate(ctx, m)
	case *PatientMutation:
		return c.Patient.mutate(ctx, m)
	case *PharmacySaleMutation:
		return c.PharmacySale.mutate(ctx, m)
	case *PrescriptionMutation:
		return c.Prescription.mutate(ctx, m)
	case *PrescriptionMedicineMutation:
		return c.PrescriptionMedicine.mutate(ctx, m)
	case *SaleItemMutation:
		return c.SaleItem.mutate(ctx, m)
	case *StaffMutation:
		return c.Staff.mutate(ctx, m)
	case *StockAdjustmentMutation:
		return c.StockAdjustment.mutate(ctx, m)
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

// CanteenItemClient is a client for the CanteenItem schema.
type CanteenItemClient struct {
	config
}

// NewCanteenItemClient returns a client for the CanteenItem from the given config.
func NewCanteenItemClient(c config) *CanteenItemClient {
	return &CanteenItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `canteenitem.Hooks(f(g(h())))`.
func (c *CanteenItemClient) Use(hooks ...Hook) {
	c.hooks.CanteenItem = append(c.hooks.CanteenItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `canteenitem.Intercept(f(g(h())))`.
func (c *CanteenItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.CanteenItem = append(c.inters.CanteenItem, interceptors...)
}

// Create returns a builder for creating a CanteenItem entity.
func (c *CanteenItemClient) Create() *CanteenItemCreate {
	mutation := newCanteenItemMutation(c.config, OpCreate)
	return &CanteenItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CanteenItem entities.
func (c *CanteenItemClient) CreateBulk(builders ...*CanteenItemCreate) *CanteenItemCreateBulk {
	return &CanteenItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CanteenItemClient) MapCreateBulk(slice any, setFunc func(*CanteenItemCreate, int)) *CanteenItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CanteenItemCreateBulk{err: fmt.Errorf("calling to CanteenItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CanteenItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CanteenItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CanteenItem.
func (c *CanteenItemClient) Update() *CanteenItemUpdate {
	mutation := newCanteenItemMutation(c.config, OpUpdate)
	return &CanteenItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CanteenItemClient) UpdateOne(_m *CanteenItem) *CanteenItemUpdateOne {
	mutation := newCanteenItemMutation(c.config, OpUpdateOne, withCanteenItem(_m))
	return &CanteenItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CanteenItemClient) UpdateOneID(id uuid.UUID) *CanteenItemUpdateOne {
	mutation := newCanteenItemMutation(c.config, OpUpdateOne, withCanteenItemID(id))
	return &CanteenItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CanteenItem.
func (c *CanteenItemClient) Delete() *CanteenItemDelete {
	mutation := newCanteenItemMutation(c.config, OpDelete)
	return &CanteenItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CanteenItemClient) DeleteOne(_m *CanteenItem) *CanteenItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CanteenItemClient) DeleteOneID(id uuid.UUID) *CanteenItemDeleteOne {
	builder := c.Delete().Where(canteenitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CanteenItemDeleteOne{builder}
}

// Query returns a query builder for CanteenItem.
func (c *CanteenItemClient) Query() *CanteenItemQuery {
	return &CanteenItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCanteenItem},
		inters: c.Interceptors(),
	}
}

// Get returns a CanteenItem entity by its id.
func (c *CanteenItemClient) Get(ctx context.Context, id uuid.UUID) (*CanteenItem, error) {
	return c.Query().Where(canteenitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CanteenItemClient) GetX(ctx context.Context, id uuid.UUID) *CanteenItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CanteenItemClient) Hooks() []Hook {
	return c.hooks.CanteenItem
}

// Interceptors returns the client interceptors.
func (c *CanteenItemClient) Interceptors() []Interceptor {
	return c.inters.CanteenItem
}

func (c *CanteenItemClient) mutate(ctx context.Context, m *CanteenItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CanteenItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CanteenItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CanteenItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CanteenItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown CanteenItem mutation op: %q", m.Op())
	}
}

// CanteenSaleClient is a client for the CanteenSale schema.
type CanteenSaleClient struct {
	config
}

// NewCanteenSaleClient returns a client for the CanteenSale from the given config.
func NewCanteenSaleClient(c config) *CanteenSaleClient {
	return &CanteenSaleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `canteensale.Hooks(f(g(h())))`.
func (c *CanteenSaleClient) Use(hooks ...Hook) {
	c.hooks.CanteenSale = append(c.hooks.CanteenSale, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `canteensale.Intercept(f(g(h())))`.
func (c *CanteenSaleClient) Intercept(interceptors ...Interceptor) {
	c.inters.CanteenSale = append(c.inters.CanteenSale, interceptors...)
}

// Create returns a builder for creating a CanteenSale entity.
func (c *CanteenSaleClient) Create() *CanteenSaleCreate {
	mutation := newCanteenSaleMutation(c.config, OpCreate)
	return &CanteenSaleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CanteenSale entities.
func (c *CanteenSaleClient) CreateBulk(builders ...*CanteenSaleCreate) *CanteenSaleCreateBulk {
	return &CanteenSaleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CanteenSaleClient) MapCreateBulk(slice any, setFunc func(*CanteenSaleCreate, int)) *CanteenSaleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CanteenSaleCreateBulk{err: fmt.Errorf("calling to CanteenSaleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CanteenSaleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CanteenSaleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CanteenSale.
func (c *CanteenSaleClient) Update() *CanteenSaleUpdate {
	mutation := newCanteenSaleMutation(c.config, OpUpdate)
	return &CanteenSaleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CanteenSaleClient) UpdateOne(_m *CanteenSale) *CanteenSaleUpdateOne {
	mutation := newCanteenSaleMutation(c.config, OpUpdateOne, withCanteenSale(_m))
	return &CanteenSaleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CanteenSaleClient) UpdateOneID(id uuid.UUID) *CanteenSaleUpdateOne {
	mutation := newCanteenSaleMutation(c.config, OpUpdateOne, withCanteenSaleID(id))
	return &CanteenSaleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CanteenSale.
func (c *CanteenSaleClient) Delete() *CanteenSaleDelete {
	mutation := newCanteenSaleMutation(c.config, OpDelete)
	return &CanteenSaleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CanteenSaleClient) DeleteOne(_m *CanteenSale) *CanteenSaleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CanteenSaleClient) DeleteOneID(id uuid.UUID) *CanteenSaleDeleteOne {
	builder := c.Delete().Where(canteensale.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CanteenSaleDeleteOne{builder}
}

// Query returns a query builder for CanteenSale.
func (c *CanteenSaleClient) Query() *CanteenSaleQuery {
	return &CanteenSaleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCanteenSale},
		inters: c.Interceptors(),
	}
}

// Get returns a CanteenSale entity by its id.
func (c *CanteenSaleClient) Get(ctx context.Context, id uuid.UUID) (*CanteenSale, error) {
	return c.Query().Where(canteensale.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CanteenSaleClient) GetX(ctx context.Context, id uuid.UUID) *CanteenSale {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CanteenSaleClient) Hooks() []Hook {
	return c.hooks.CanteenSale
}

// Interceptors returns the client interceptors.
func (c *CanteenSaleClient) Interceptors() []Interceptor {
	return c.inters.CanteenSale
}

func (c *CanteenSaleClient) mutate(ctx context.Context, m *CanteenSaleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CanteenSaleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CanteenSaleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CanteenSaleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CanteenSaleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown CanteenSale mutation op: %q", m.Op())
	}
}

// CanteenSaleItemClient is a client for the CanteenSaleItem schema.
type CanteenSaleItemClient struct {
	config
}

// NewCanteenSaleItemClient returns a client for the CanteenSaleItem from the given config.
func NewCanteenSaleItemClient(c config) *CanteenSaleItemClient {
	return &CanteenSaleItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `canteensaleitem.Hooks(f(g(h())))`.
func (c *CanteenSaleItemClient) Use(hooks ...Hook) {
	c.hooks.CanteenSaleItem = append(c.hooks.CanteenSaleItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `canteensaleitem.Intercept(f(g(h())))`.
func (c *CanteenSaleItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.CanteenSaleItem = append(c.inters.CanteenSaleItem, interceptors...)
}

// Create returns a builder for creating a CanteenSaleItem entity.
func (c *CanteenSaleItemClient) Create() *CanteenSaleItemCreate {
	mutation := newCanteenSaleItemMutation(c.config, OpCreate)
	return &CanteenSaleItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CanteenSaleItem entities.
func (c *CanteenSaleItemClient) CreateBulk(builders ...*CanteenSaleItemCreate) *CanteenSaleItemCreateBulk {
	return &CanteenSaleItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CanteenSaleItemClient) MapCreateBulk(slice any, setFunc func(*CanteenSaleItemCreate, int)) *CanteenSaleItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CanteenSaleItemCreateBulk{err: fmt.Errorf("calling to CanteenSaleItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CanteenSaleItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CanteenSaleItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CanteenSaleItem.
func (c *CanteenSaleItemClient) Update() *CanteenSaleItemUpdate {
	mutation := newCanteenSaleItemMutation(c.config, OpUpdate)
	return &CanteenSaleItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CanteenSaleItemClient) UpdateOne(_m *CanteenSaleItem) *CanteenSaleItemUpdateOne {
	mutation := newCanteenSaleItemMutation(c.config, OpUpdateOne, withCanteenSaleItem(_m))
	return &CanteenSaleItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CanteenSaleItemClient) UpdateOneID(id uuid.UUID) *CanteenSaleItemUpdateOne {
	mutation := newCanteenSaleItemMutation(c.config, OpUpdateOne, withCanteenSaleItemID(id))
	return &CanteenSaleItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CanteenSaleItem.
func (c *CanteenSaleItemClient) Delete() *CanteenSaleItemDelete {
	mutation := newCanteenSaleItemMutation(c.config, OpDelete)
	return &CanteenSaleItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CanteenSaleItemClient) DeleteOne(_m *CanteenSaleItem) *CanteenSaleItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CanteenSaleItemClient) DeleteOneID(id uuid.UUID) *CanteenSaleItemDeleteOne {
	builder := c.Delete().Where(canteensaleitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CanteenSaleItemDeleteOne{builder}
}

// Query returns a query builder for CanteenSaleItem.
func (c *CanteenSaleItemClient) Query() *CanteenSaleItemQuery {
	return &CanteenSaleItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCanteenSaleItem},
		inters: c.Interceptors(),
	}
}

// Get returns a CanteenSaleItem entity by its id.
func (c *CanteenSaleItemClient) Get(ctx context.Context, id uuid.UUID) (*CanteenSaleItem, error) {
	return c.Query().Where(canteensaleitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CanteenSaleItemClient) GetX(ctx context.Context, id uuid.UUID) *CanteenSaleItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CanteenSaleItemClient) Hooks() []Hook {
	return c.hooks.CanteenSaleItem
}

// Interceptors returns the client interceptors.
func (c *CanteenSaleItemClient) Interceptors() []Interceptor {
	return c.inters.CanteenSaleItem
}

func (c *CanteenSaleItemClient) mutate(ctx context.Context, m *CanteenSaleItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CanteenSaleItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CanteenSaleItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CanteenSaleItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CanteenSaleItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown CanteenSaleItem mutation op: %q", m.Op())
	}
}

// DoctorAvailabilityClient is a client for the DoctorAvailability schema.
type DoctorAvailabilityClient struct {
	config
}

// NewDoctorAvailabilityClient returns a client for the DoctorAvailability from the given config.
func NewDoctorAvailabilityClient(c config) *DoctorAvailabilityClient {
	return &DoctorAvailabilityClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `doctoravailability.Hooks(f(g(h())))`.
func (c *DoctorAvailabilityClient) Use(hooks ...Hook) {
	c.hooks.DoctorAvailability = append(c.hooks.DoctorAvailability, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `doctoravailability.Intercept(f(g(h())))`.
func (c *DoctorAvailabilityClient) Intercept(interceptors ...Interceptor) {
	c.inters.DoctorAvailability = append(c.inters.DoctorAvailability, interceptors...)
}

// Create returns a builder for creating a DoctorAvailability entity.
func (c *DoctorAvailabilityClient) Create() *DoctorAvailabilityCreate {
	mutation := newDoctorAvailabilityMutation(c.config, OpCreate)
	return &DoctorAvailabilityCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DoctorAvailability entities.
func (c *DoctorAvailabilityClient) CreateBulk(builders ...*DoctorAvailabilityCreate) *DoctorAvailabilityCreateBulk {
	return &DoctorAvailabilityCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DoctorAvailabilityClient) MapCreateBulk(slice any, setFunc func(*DoctorAvailabilityCreate, int)) *DoctorAvailabilityCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DoctorAvailabilityCreateBulk{err: fmt.Errorf("calling to DoctorAvailabilityClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DoctorAvailabilityCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DoctorAvailabilityCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DoctorAvailability.
func (c *DoctorAvailabilityClient) Update() *DoctorAvailabilityUpdate {
	mutation := newDoctorAvailabilityMutation(c.config, OpUpdate)
	return &DoctorAvailabilityUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DoctorAvailabilityClient) UpdateOne(_m *DoctorAvailability) *DoctorAvailabilityUpdateOne {
	mutation := newDoctorAvailabilityMutation(c.config, OpUpdateOne, withDoctorAvailability(_m))
	return &DoctorAvailabilityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DoctorAvailabilityClient) UpdateOneID(id uuid.UUID) *DoctorAvailabilityUpdateOne {
	mutation := newDoctorAvailabilityMutation(c.config, OpUpdateOne, withDoctorAvailabilityID(id))
	return &DoctorAvailabilityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DoctorAvailability.
func (c *DoctorAvailabilityClient) Delete() *DoctorAvailabilityDelete {
	mutation := newDoctorAvailabilityMutation(c.config, OpDelete)
	return &DoctorAvailabilityDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DoctorAvailabilityClient) DeleteOne(_m *DoctorAvailability) *DoctorAvailabilityDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DoctorAvailabilityClient) DeleteOneID(id uuid.UUID) *DoctorAvailabilityDeleteOne {
	builder := c.Delete().Where(doctoravailability.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DoctorAvailabilityDeleteOne{builder}
}

// Query returns a query builder for DoctorAvailability.
func (c *DoctorAvailabilityClient) Query() *DoctorAvailabilityQuery {
	return &DoctorAvailabilityQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDoctorAvailability},
		inters: c.Interceptors(),
	}
}

// Get returns a DoctorAvailability entity by its id.
func (c *DoctorAvailabilityClient) Get(ctx context.Context, id uuid.UUID) (*DoctorAvailability, error) {
	return c.Query().Where(doctoravailability.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DoctorAvailabilityClient) GetX(ctx context.Context, id uuid.UUID) *DoctorAvailability {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DoctorAvailabilityClient) Hooks() []Hook {
	return c.hooks.DoctorAvailability
}

// Interceptors returns the client interceptors.
func (c *DoctorAvailabilityClient) Interceptors() []Interceptor {
	return c.inters.DoctorAvailability
}

func (c *DoctorAvailabilityClient) mutate(ctx context.Context, m *DoctorAvailabilityMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DoctorAvailabilityCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DoctorAvailabilityUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DoctorAvailabilityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DoctorAvailabilityDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown DoctorAvailability mutation op: %q", m.Op())
	}
}

// DoctorScheduleClient is a client for the DoctorSchedule schema.
type DoctorScheduleClient struct {
	config
}

// NewDoctorScheduleClient returns a client for the DoctorSchedule from the given config.
func NewDoctorScheduleClient(c config) *DoctorScheduleClient {
	return &DoctorScheduleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `doctorschedule.Hooks(f(g(h())))`.
func (c *DoctorScheduleClient) Use(hooks ...Hook) {
	c.hooks.DoctorSchedule = append(c.hooks.DoctorSchedule, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `doctorschedule.Intercept(f(g(h())))`.
func (c *DoctorScheduleClient) Intercept(interceptors ...Interceptor) {
	c.inters.DoctorSchedule = append(c.inters.DoctorSchedule, interceptors...)
}

// Create returns a builder for creating a DoctorSchedule entity.
func (c *DoctorScheduleClient) Create() *DoctorScheduleCreate {
	mutation := newDoctorScheduleMutation(c.config, OpCreate)
	return &DoctorScheduleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DoctorSchedule entities.
func (c *DoctorScheduleClient) CreateBulk(builders ...*DoctorScheduleCreate) *DoctorScheduleCreateBulk {
	return &DoctorScheduleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DoctorScheduleClient) MapCreateBulk(slice any, setFunc func(*DoctorScheduleCreate, int)) *DoctorScheduleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DoctorScheduleCreateBulk{err: fmt.Errorf("calling to DoctorScheduleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DoctorScheduleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DoctorScheduleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DoctorSchedule.
func (c *DoctorScheduleClient) Update() *DoctorScheduleUpdate {
	mutation := newDoctorScheduleMutation(c.config, OpUpdate)
	return &DoctorScheduleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DoctorScheduleClient) UpdateOne(_m *DoctorSchedule) *DoctorScheduleUpdateOne {
	mutation := newDoctorScheduleMutation(c.config, OpUpdateOne, withDoctorSchedule(_m))
	return &DoctorScheduleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DoctorScheduleClient) UpdateOneID(id uuid.UUID) *DoctorScheduleUpdateOne {
	mutation := newDoctorScheduleMutation(c.config, OpUpdateOne, withDoctorScheduleID(id))
	return &DoctorScheduleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DoctorSchedule.
func (c *DoctorScheduleClient) Delete() *DoctorScheduleDelete {
	mutation := newDoctorScheduleMutation(c.config, OpDelete)
	return &DoctorScheduleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DoctorScheduleClient) DeleteOne(_m *DoctorSchedule) *DoctorScheduleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DoctorScheduleClient) DeleteOneID(id uuid.UUID) *DoctorScheduleDeleteOne {
	builder := c.Delete().Where(doctorschedule.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DoctorScheduleDeleteOne{builder}
}

// Query returns a query builder for DoctorSchedule.
func (c *DoctorScheduleClient) Query() *DoctorScheduleQuery {
	return &DoctorScheduleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDoctorSchedule},
		inters: c.Interceptors(),
	}
}

// Get returns a DoctorSchedule entity by its id.
func (c *DoctorScheduleClient) Get(ctx context.Context, id uuid.UUID) (*DoctorSchedule, error) {
	return c.Query().Where(doctorschedule.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DoctorScheduleClient) GetX(ctx context.Context, id uuid.UUID) *DoctorSchedule {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DoctorScheduleClient) Hooks() []Hook {
	return c.hooks.DoctorSchedule
}

// Interceptors returns the client interceptors.
func (c *DoctorScheduleClient) Interceptors() []Interceptor {
	return c.inters.DoctorSchedule
}

func (c *DoctorScheduleClient) mutate(ctx context.Context, m *DoctorScheduleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DoctorScheduleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DoctorScheduleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DoctorScheduleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DoctorScheduleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown DoctorSchedule mutation op: %q", m.Op())
	}
}

// DrugClient is a client for the Drug schema.
type DrugClient struct {
	config
}

// NewDrugClient returns a client for the Drug from the given config.
func NewDrugClient(c config) *DrugClient {
	return &DrugClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `drug.Hooks(f(g(h())))`.
func (c *DrugClient) Use(hooks ...Hook) {
	c.hooks.Drug = append(c.hooks.Drug, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `drug.Intercept(f(g(h())))`.
func (c *DrugClient) Intercept(interceptors ...Interceptor) {
	c.inters.Drug = append(c.inters.Drug, interceptors...)
}

// Create returns a builder for creating a Drug entity.
func (c *DrugClient) Create() *DrugCreate {
	mutation := newDrugMutation(c.config, OpCreate)
	return &DrugCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Drug entities.
func (c *DrugClient) CreateBulk(builders ...*DrugCreate) *DrugCreateBulk {
	return &DrugCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DrugClient) MapCreateBulk(slice any, setFunc func(*DrugCreate, int)) *DrugCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DrugCreateBulk{err: fmt.Errorf("calling to DrugClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DrugCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DrugCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Drug.
func (c *DrugClient) Update() *DrugUpdate {
	mutation := newDrugMutation(c.config, OpUpdate)
	return &DrugUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DrugClient) UpdateOne(_m *Drug) *DrugUpdateOne {
	mutation := newDrugMutation(c.config, OpUpdateOne, withDrug(_m))
	return &DrugUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DrugClient) UpdateOneID(id uuid.UUID) *DrugUpdateOne {
	mutation := newDrugMutation(c.config, OpUpdateOne, withDrugID(id))
	return &DrugUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Drug.
func (c *DrugClient) Delete() *DrugDelete {
	mutation := newDrugMutation(c.config, OpDelete)
	return &DrugDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DrugClient) DeleteOne(_m *Drug) *DrugDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DrugClient) DeleteOneID(id uuid.UUID) *DrugDeleteOne {
	builder := c.Delete().Where(drug.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DrugDeleteOne{builder}
}

// Query returns a query builder for Drug.
func (c *DrugClient) Query() *DrugQuery {
	return &DrugQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDrug},
		inters: c.Interceptors(),
	}
}

// Get returns a Drug entity by its id.
func (c *DrugClient) Get(ctx context.Context, id uuid.UUID) (*Drug, error) {
	return c.Query().Where(drug.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DrugClient) GetX(ctx context.Context, id uuid.UUID) *Drug {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DrugClient) Hooks() []Hook {
	return c.hooks.Drug
}

// Interceptors returns the client interceptors.
func (c *DrugClient) Interceptors() []Interceptor {
	return c.inters.Drug
}

func (c *DrugClient) mutate(ctx context.Context, m *DrugMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DrugCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DrugUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DrugUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DrugDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Drug mutation op: %q", m.Op())
	}
}

// ExpenseClient is a client for the Expense schema.
type ExpenseClient struct {
	config
}

// NewExpenseClient returns a client for the Expense from the given config.
func NewExpenseClient(c config) *ExpenseClient {
	return &ExpenseClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `expense.Hooks(f(g(h())))`.
func (c *ExpenseClient) Use(hooks ...Hook) {
	c.hooks.Expense = append(c.hooks.Expense, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `expense.Intercept(f(g(h())))`.
func (c *ExpenseClient) Intercept(interceptors ...Interceptor) {
	c.inters.Expense = append(c.inters.Expense, interceptors...)
}

// Create returns a builder for creating a Expense entity.
func (c *ExpenseClient) Create() *ExpenseCreate {
	mutation := newExpenseMutation(c.config, OpCreate)
	return &ExpenseCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Expense entities.
func (c *ExpenseClient) CreateBulk(builders ...*ExpenseCreate) *ExpenseCreateBulk {
	return &ExpenseCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExpenseClient) MapCreateBulk(slice any, setFunc func(*ExpenseCreate, int)) *ExpenseCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExpenseCreateBulk{err: fmt.Errorf("calling to ExpenseClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExpenseCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExpenseCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Expense.
func (c *ExpenseClient) Update() *ExpenseUpdate {
	mutation := newExpenseMutation(c.config, OpUpdate)
	return &ExpenseUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExpenseClient) UpdateOne(_m *Expense) *ExpenseUpdateOne {
	mutation := newExpenseMutation(c.config, OpUpdateOne, withExpense(_m))
	return &ExpenseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExpenseClient) UpdateOneID(id uuid.UUID) *ExpenseUpdateOne {
	mutation := newExpenseMutation(c.config, OpUpdateOne, withExpenseID(id))
	return &ExpenseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Expense.
func (c *ExpenseClient) Delete() *ExpenseDelete {
	mutation := newExpenseMutation(c.config, OpDelete)
	return &ExpenseDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExpenseClient) DeleteOne(_m *Expense) *ExpenseDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExpenseClient) DeleteOneID(id uuid.UUID) *ExpenseDeleteOne {
	builder := c.Delete().Where(expense.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExpenseDeleteOne{builder}
}

// Query returns a query builder for Expense.
func (c *ExpenseClient) Query() *ExpenseQuery {
	return &ExpenseQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExpense},
		inters: c.Interceptors(),
	}
}

// Get returns a Expense entity by its id.
func (c *ExpenseClient) Get(ctx context.Context, id uuid.UUID) (*Expense, error) {
	return c.Query().Where(expense.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExpenseClient) GetX(ctx context.Context, id uuid.UUID) *Expense {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ExpenseClient) Hooks() []Hook {
	return c.hooks.Expense
}

// Interceptors returns the client interceptors.
func (c *ExpenseClient) Interceptors() []Interceptor {
	return c.inters.Expense
}

func (c *ExpenseClient) mutate(ctx context.Context, m *ExpenseMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExpenseCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExpenseUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExpenseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExpenseDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Expense mutation op: %q", m.Op())
	}
}

// IncomeClient is a client for the Income schema.
type IncomeClient struct {
	config
}

// NewIncomeClient returns a client for the Income from the given config.
func NewIncomeClient(c config) *IncomeClient {
	return &IncomeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `income.Hooks(f(g(h())))`.
func (c *IncomeClient) Use(hooks ...Hook) {
	c.hooks.Income = append(c.hooks.Income, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `income.Intercept(f(g(h())))`.
func (c *IncomeClient) Intercept(interceptors ...Interceptor) {
	c.inters.Income = append(c.inters.Income, interceptors...)
}

// Create returns a builder for creating a Income entity.
func (c *IncomeClient) Create() *IncomeCreate {
	mutation := newIncomeMutation(c.config, OpCreate)
	return &IncomeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Income entities.
func (c *IncomeClient) CreateBulk(builders ...*IncomeCreate) *IncomeCreateBulk {
	return &IncomeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *IncomeClient) MapCreateBulk(slice any, setFunc func(*IncomeCreate, int)) *IncomeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &IncomeCreateBulk{err: fmt.Errorf("calling to IncomeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*IncomeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &IncomeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Income.
func (c *IncomeClient) Update() *IncomeUpdate {
	mutation := newIncomeMutation(c.config, OpUpdate)
	return &IncomeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *IncomeClient) UpdateOne(_m *Income) *IncomeUpdateOne {
	mutation := newIncomeMutation(c.config, OpUpdateOne, withIncome(_m))
	return &IncomeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *IncomeClient) UpdateOneID(id uuid.UUID) *IncomeUpdateOne {
	mutation := newIncomeMutation(c.config, OpUpdateOne, withIncomeID(id))
	return &IncomeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Income.
func (c *IncomeClient) Delete() *IncomeDelete {
	mutation := newIncomeMutation(c.config, OpDelete)
	return &IncomeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *IncomeClient) DeleteOne(_m *Income) *IncomeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *IncomeClient) DeleteOneID(id uuid.UUID) *IncomeDeleteOne {
	builder := c.Delete().Where(income.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &IncomeDeleteOne{builder}
}

// Query returns a query builder for Income.
func (c *IncomeClient) Query() *IncomeQuery {
	return &IncomeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeIncome},
		inters: c.Interceptors(),
	}
}

// Get returns a Income entity by its id.
func (c *IncomeClient) Get(ctx context.Context, id uuid.UUID) (*Income, error) {
	return c.Query().Where(income.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *IncomeClient) GetX(ctx context.Context, id uuid.UUID) *Income {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *IncomeClient) Hooks() []Hook {
	return c.hooks.Income
}

// Interceptors returns the client interceptors.
func (c *IncomeClient) Interceptors() []Interceptor {
	return c.inters.Income
}

func (c *IncomeClient) mutate(ctx context.Context, m *IncomeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&IncomeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&IncomeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&IncomeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&IncomeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Income mutation op: %q", m.Op())
	}
}

// LabOrderClient is a client for the LabOrder schema.
type LabOrderClient struct {
	config
}

// NewLabOrderClient returns a client for the LabOrder from the given config.
func NewLabOrderClient(c config) *LabOrderClient {
	return &LabOrderClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `laborder.Hooks(f(g(h())))`.
func (c *LabOrderClient) Use(hooks ...Hook) {
	c.hooks.LabOrder = append(c.hooks.LabOrder, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `laborder.Intercept(f(g(h())))`.
func (c *LabOrderClient) Intercept(interceptors ...Interceptor) {
	c.inters.LabOrder = append(c.inters.LabOrder, interceptors...)
}

// Create returns a builder for creating a LabOrder entity.
func (c *LabOrderClient) Create() *LabOrderCreate {
	mutation := newLabOrderMutation(c.config, OpCreate)
	return &LabOrderCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LabOrder entities.
func (c *LabOrderClient) CreateBulk(builders ...*LabOrderCreate) *LabOrderCreateBulk {
	return &LabOrderCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LabOrderClient) MapCreateBulk(slice any, setFunc func(*LabOrderCreate, int)) *LabOrderCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LabOrderCreateBulk{err: fmt.Errorf("calling to LabOrderClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LabOrderCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LabOrderCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LabOrder.
func (c *LabOrderClient) Update() *LabOrderUpdate {
	mutation := newLabOrderMutation(c.config, OpUpdate)
	return &LabOrderUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LabOrderClient) UpdateOne(_m *LabOrder) *LabOrderUpdateOne {
	mutation := newLabOrderMutation(c.config, OpUpdateOne, withLabOrder(_m))
	return &LabOrderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LabOrderClient) UpdateOneID(id uuid.UUID) *LabOrderUpdateOne {
	mutation := newLabOrderMutation(c.config, OpUpdateOne, withLabOrderID(id))
	return &LabOrderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LabOrder.
func (c *LabOrderClient) Delete() *LabOrderDelete {
	mutation := newLabOrderMutation(c.config, OpDelete)
	return &LabOrderDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LabOrderClient) DeleteOne(_m *LabOrder) *LabOrderDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LabOrderClient) DeleteOneID(id uuid.UUID) *LabOrderDeleteOne {
	builder := c.Delete().Where(laborder.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LabOrderDeleteOne{builder}
}

// Query returns a query builder for LabOrder.
func (c *LabOrderClient) Query() *LabOrderQuery {
	return &LabOrderQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLabOrder},
		inters: c.Interceptors(),
	}
}

// Get returns a LabOrder entity by its id.
func (c *LabOrderClient) Get(ctx context.Context, id uuid.UUID) (*LabOrder, error) {
	return c.Query().Where(laborder.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LabOrderClient) GetX(ctx context.Context, id uuid.UUID) *LabOrder {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LabOrderClient) Hooks() []Hook {
	return c.hooks.LabOrder
}

// Interceptors returns the client interceptors.
func (c *LabOrderClient) Interceptors() []Interceptor {
	return c.inters.LabOrder
}

func (c *LabOrderClient) mutate(ctx context.Context, m *LabOrderMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LabOrderCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LabOrderUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LabOrderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LabOrderDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown LabOrder mutation op: %q", m.Op())
	}
}

// LabResultClient is a client for the LabResult schema.
type LabResultClient struct {
	config
}

// NewLabResultClient returns a client for the LabResult from the given config.
func NewLabResultClient(c config) *LabResultClient {
	return &LabResultClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `labresult.Hooks(f(g(h())))`.
func (c *LabResultClient) Use(hooks ...Hook) {
	c.hooks.LabResult = append(c.hooks.LabResult, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `labresult.Intercept(f(g(h())))`.
func (c *LabResultClient) Intercept(interceptors ...Interceptor) {
	c.inters.LabResult = append(c.inters.LabResult, interceptors...)
}

// Create returns a builder for creating a LabResult entity.
func (c *LabResultClient) Create() *LabResultCreate {
	mutation := newLabResultMutation(c.config, OpCreate)
	return &LabResultCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LabResult entities.
func (c *LabResultClient) CreateBulk(builders ...*LabResultCreate) *LabResultCreateBulk {
	return &LabResultCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LabResultClient) MapCreateBulk(slice any, setFunc func(*LabResultCreate, int)) *LabResultCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LabResultCreateBulk{err: fmt.Errorf("calling to LabResultClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LabResultCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LabResultCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LabResult.
func (c *LabResultClient) Update() *LabResultUpdate {
	mutation := newLabResultMutation(c.config, OpUpdate)
	return &LabResultUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LabResultClient) UpdateOne(_m *LabResult) *LabResultUpdateOne {
	mutation := newLabResultMutation(c.config, OpUpdateOne, withLabResult(_m))
	return &LabResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LabResultClient) UpdateOneID(id uuid.UUID) *LabResultUpdateOne {
	mutation := newLabResultMutation(c.config, OpUpdateOne, withLabResultID(id))
	return &LabResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LabResult.
func (c *LabResultClient) Delete() *LabResultDelete {
	mutation := newLabResultMutation(c.config, OpDelete)
	return &LabResultDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LabResultClient) DeleteOne(_m *LabResult) *LabResultDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LabResultClient) DeleteOneID(id uuid.UUID) *LabResultDeleteOne {
	builder := c.Delete().Where(labresult.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LabResultDeleteOne{builder}
}

// Query returns a query builder for LabResult.
func (c *LabResultClient) Query() *LabResultQuery {
	return &LabResultQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLabResult},
		inters: c.Interceptors(),
	}
}

// Get returns a LabResult entity by its id.
func (c *LabResultClient) Get(ctx context.Context, id uuid.UUID) (*LabResult, error) {
	return c.Query().Where(labresult.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LabResultClient) GetX(ctx context.Context, id uuid.UUID) *LabResult {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LabResultClient) Hooks() []Hook {
	return c.hooks.LabResult
}

// Interceptors returns the client interceptors.
func (c *LabResultClient) Interceptors() []Interceptor {
	return c.inters.LabResult
}

func (c *LabResultClient) mutate(ctx context.Context, m *LabResultMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LabResultCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LabResultUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LabResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LabResultDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown LabResult mutation op: %q", m.Op())
	}
}

// LabTestClient is a client for the LabTest schema.
type LabTestClient struct {
	config
}

// NewLabTestClient returns a client for the LabTest from the given config.
func NewLabTestClient(c config) *LabTestClient {
	return &LabTestClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `labtest.Hooks(f(g(h())))`.
func (c *LabTestClient) Use(hooks ...Hook) {
	c.hooks.LabTest = append(c.hooks.LabTest, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `labtest.Intercept(f(g(h())))`.
func (c *LabTestClient) Intercept(interceptors ...Interceptor) {
	c.inters.LabTest = append(c.inters.LabTest, interceptors...)
}

// Create returns a builder for creating a LabTest entity.
func (c *LabTestClient) Create() *LabTestCreate {
	mutation := newLabTestMutation(c.config, OpCreate)
	return &LabTestCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LabTest entities.
func (c *LabTestClient) CreateBulk(builders ...*LabTestCreate) *LabTestCreateBulk {
	return &LabTestCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LabTestClient) MapCreateBulk(slice any, setFunc func(*LabTestCreate, int)) *LabTestCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LabTestCreateBulk{err: fmt.Errorf("calling to LabTestClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LabTestCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LabTestCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LabTest.
func (c *LabTestClient) Update() *LabTestUpdate {
	mutation := newLabTestMutation(c.config, OpUpdate)
	return &LabTestUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LabTestClient) UpdateOne(_m *LabTest) *LabTestUpdateOne {
	mutation := newLabTestMutation(c.config, OpUpdateOne, withLabTest(_m))
	return &LabTestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LabTestClient) UpdateOneID(id uuid.UUID) *LabTestUpdateOne {
	mutation := newLabTestMutation(c.config, OpUpdateOne, withLabTestID(id))
	return &LabTestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LabTest.
func (c *LabTestClient) Delete() *LabTestDelete {
	mutation := newLabTestMutation(c.config, OpDelete)
	return &LabTestDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LabTestClient) DeleteOne(_m *LabTest) *LabTestDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LabTestClient) DeleteOneID(id uuid.UUID) *LabTestDeleteOne {
	builder := c.Delete().Where(labtest.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LabTestDeleteOne{builder}
}

// Query returns a query builder for LabTest.
func (c *LabTestClient) Query() *LabTestQuery {
	return &LabTestQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLabTest},
		inters: c.Interceptors(),
	}
}

// Get returns a LabTest entity by its id.
func (c *LabTestClient) Get(ctx context.Context, id uuid.UUID) (*LabTest, error) {
	return c.Query().Where(labtest.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LabTestClient) GetX(ctx context.Context, id uuid.UUID) *LabTest {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LabTestClient) Hooks() []Hook {
	return c.hooks.LabTest
}

// Interceptors returns the client interceptors.
func (c *LabTestClient) Interceptors() []Interceptor {
	return c.inters.LabTest
}

func (c *LabTestClient) mutate(ctx context.Context, m *LabTestMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LabTestCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LabTestUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LabTestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LabTestDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown LabTest mutation op: %q", m.Op())
	}
}

// PCTransactionClient is a client for the PCTransaction schema.
type PCTransactionClient struct {
	config
}

// NewPCTransactionClient returns a client for the PCTransaction from the given config.
func NewPCTransactionClient(c config) *PCTransactionClient {
	return &PCTransactionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pctransaction.Hooks(f(g(h())))`.
func (c *PCTransactionClient) Use(hooks ...Hook) {
	c.hooks.PCTransaction = append(c.hooks.PCTransaction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pctransaction.Intercept(f(g(h())))`.
func (c *PCTransactionClient) Intercept(interceptors ...Interceptor) {
	c.inters.PCTransaction = append(c.inters.PCTransaction, interceptors...)
}

// Create returns a builder for creating a PCTransaction entity.
func (c *PCTransactionClient) Create() *PCTransactionCreate {
	mutation := newPCTransactionMutation(c.config, OpCreate)
	return &PCTransactionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PCTransaction entities.
func (c *PCTransactionClient) CreateBulk(builders ...*PCTransactionCreate) *PCTransactionCreateBulk {
	return &PCTransactionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PCTransactionClient) MapCreateBulk(slice any, setFunc func(*PCTransactionCreate, int)) *PCTransactionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PCTransactionCreateBulk{err: fmt.Errorf("calling to PCTransactionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PCTransactionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PCTransactionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PCTransaction.
func (c *PCTransactionClient) Update() *PCTransactionUpdate {
	mutation := newPCTransactionMutation(c.config, OpUpdate)
	return &PCTransactionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PCTransactionClient) UpdateOne(_m *PCTransaction) *PCTransactionUpdateOne {
	mutation := newPCTransactionMutation(c.config, OpUpdateOne, withPCTransaction(_m))
	return &PCTransactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PCTransactionClient) UpdateOneID(id uuid.UUID) *PCTransactionUpdateOne {
	mutation := newPCTransactionMutation(c.config, OpUpdateOne, withPCTransactionID(id))
	return &PCTransactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PCTransaction.
func (c *PCTransactionClient) Delete() *PCTransactionDelete {
	mutation := newPCTransactionMutation(c.config, OpDelete)
	return &PCTransactionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PCTransactionClient) DeleteOne(_m *PCTransaction) *PCTransactionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PCTransactionClient) DeleteOneID(id uuid.UUID) *PCTransactionDeleteOne {
	builder := c.Delete().Where(pctransaction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PCTransactionDeleteOne{builder}
}

// Query returns a query builder for PCTransaction.
func (c *PCTransactionClient) Query() *PCTransactionQuery {
	return &PCTransactionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePCTransaction},
		inters: c.Interceptors(),
	}
}

// Get returns a PCTransaction entity by its id.
func (c *PCTransactionClient) Get(ctx context.Context, id uuid.UUID) (*PCTransaction, error) {
	return c.Query().Where(pctransaction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PCTransactionClient) GetX(ctx context.Context, id uuid.UUID) *PCTransaction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PCTransactionClient) Hooks() []Hook {
	return c.hooks.PCTransaction
}

// Interceptors returns the client interceptors.
func (c *PCTransactionClient) Interceptors() []Interceptor {
	return c.inters.PCTransaction
}

func (c *PCTransactionClient) mutate(ctx context.Context, m *PCTransactionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PCTransactionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PCTransactionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PCTransactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PCTransactionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown PCTransaction mutation op: %q", m.Op())
	}
}

// PatientClient is a client for the Patient schema.
type PatientClient struct {
	config
}

// NewPatientClient returns a client for the Patient from the given config.
func NewPatientClient(c config) *PatientClient {
	return &PatientClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `patient.Hooks(f(g(h())))`.
func (c *PatientClient) Use(hooks ...Hook) {
	c.hooks.Patient = append(c.hooks.Patient, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `patient.Intercept(f(g(h())))`.
func (c *PatientClient) Intercept(interceptors ...Interceptor) {
	c.inters.Patient = append(c.inters.Patient, interceptors...)
}

// Create returns a builder for creating a Patient entity.
func (c *PatientClient) Create() *PatientCreate {
	mutation := newPatientMutation(c.config, OpCreate)
	return &PatientCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Patient entities.
func (c *PatientClient) CreateBulk(builders ...*PatientCreate) *PatientCreateBulk {
	return &PatientCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PatientClient) MapCreateBulk(slice any, setFunc func(*PatientCreate, int)) *PatientCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PatientCreateBulk{err: fmt.Errorf("calling to PatientClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PatientCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PatientCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Patient.
func (c *PatientClient) Update() *PatientUpdate {
	mutation := newPatientMutation(c.config, OpUpdate)
	return &PatientUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PatientClient) UpdateOne(_m *Patient) *PatientUpdateOne {
	mutation := newPatientMutation(c.config, OpUpdateOne, withPatient(_m))
	return &PatientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PatientClient) UpdateOneID(id uuid.UUID) *PatientUpdateOne {
	mutation := newPatientMutation(c.config, OpUpdateOne, withPatientID(id))
	return &PatientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Patient.
func (c *PatientClient) Delete() *PatientDelete {
	mutation := newPatientMutation(c.config, OpDelete)
	return &PatientDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PatientClient) DeleteOne(_m *Patient) *PatientDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PatientClient) DeleteOneID(id uuid.UUID) *PatientDeleteOne {
	builder := c.Delete().Where(patient.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PatientDeleteOne{builder}
}

// Query returns a query builder for Patient.
func (c *PatientClient) Query() *PatientQuery {
	return &PatientQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePatient},
		inters: c.Interceptors(),
	}
}

// Get returns a Patient entity by its id.
func (c *PatientClient) Get(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return c.Query().Where(patient.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PatientClient) GetX(ctx context.Context, id uuid.UUID) *Patient {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PatientClient) Hooks() []Hook {
	return c.hooks.Patient
}

// Interceptors returns the client interceptors.
func (c *PatientClient) Interceptors() []Interceptor {
	return c.inters.Patient
}

func (c *PatientClient) mutate(ctx context.Context, m *PatientMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PatientCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PatientUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PatientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PatientDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Patient mutation op: %q", m.Op())
	}
}

// PharmacySaleClient is a client for the PharmacySale schema.
type PharmacySaleClient struct {
	config
}

// NewPharmacySaleClient returns a client for the PharmacySale from the given config.
func NewPharmacySaleClient(c config) *PharmacySaleClient {
	return &PharmacySaleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pharmacysale.Hooks(f(g(h())))`.
func (c *PharmacySaleClient) Use(hooks ...Hook) {
	c.hooks.PharmacySale = append(c.hooks.PharmacySale, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pharmacysale.Intercept(f(g(h())))`.
func (c *PharmacySaleClient) Intercept(interceptors ...Interceptor) {
	c.inters.PharmacySale = append(c.inters.PharmacySale, interceptors...)
}

// Create returns a builder for creating a PharmacySale entity.
func (c *PharmacySaleClient) Create() *PharmacySaleCreate {
	mutation := newPharmacySaleMutation(c.config, OpCreate)
	return &PharmacySaleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PharmacySale entities.
func (c *PharmacySaleClient) CreateBulk(builders ...*PharmacySaleCreate) *PharmacySaleCreateBulk {
	return &PharmacySaleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PharmacySaleClient) MapCreateBulk(slice any, setFunc func(*PharmacySaleCreate, int)) *PharmacySaleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PharmacySaleCreateBulk{err: fmt.Errorf("calling to PharmacySaleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PharmacySaleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PharmacySaleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PharmacySale.
func (c *PharmacySaleClient) Update() *PharmacySaleUpdate {
	mutation := newPharmacySaleMutation(c.config, OpUpdate)
	return &PharmacySaleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PharmacySaleClient) UpdateOne(_m *PharmacySale) *PharmacySaleUpdateOne {
	mutation := newPharmacySaleMutation(c.config, OpUpdateOne, withPharmacySale(_m))
	return &PharmacySaleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PharmacySaleClient) UpdateOneID(id uuid.UUID) *PharmacySaleUpdateOne {
	mutation := newPharmacySaleMutation(c.config, OpUpdateOne, withPharmacySaleID(id))
	return &PharmacySaleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PharmacySale.
func (c *PharmacySaleClient) Delete() *PharmacySaleDelete {
	mutation := newPharmacySaleMutation(c.config, OpDelete)
	return &PharmacySaleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PharmacySaleClient) DeleteOne(_m *PharmacySale) *PharmacySaleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PharmacySaleClient) DeleteOneID(id uuid.UUID) *PharmacySaleDeleteOne {
	builder := c.Delete().Where(pharmacysale.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PharmacySaleDeleteOne{builder}
}

// Query returns a query builder for PharmacySale.
func (c *PharmacySaleClient) Query() *PharmacySaleQuery {
	return &PharmacySaleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePharmacySale},
		inters: c.Interceptors(),
	}
}

// Get returns a PharmacySale entity by its id.
func (c *PharmacySaleClient) Get(ctx context.Context, id uuid.UUID) (*PharmacySale, error) {
	return c.Query().Where(pharmacysale.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PharmacySaleClient) GetX(ctx context.Context, id uuid.UUID) *PharmacySale {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PharmacySaleClient) Hooks() []Hook {
	return c.hooks.PharmacySale
}

// Interceptors returns the client interceptors.
func (c *PharmacySaleClient) Interceptors() []Interceptor {
	return c.inters.PharmacySale
}

func (c *PharmacySaleClient) mutate(ctx context.Context, m *PharmacySaleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PharmacySaleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PharmacySaleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PharmacySaleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PharmacySaleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown PharmacySale mutation op: %q", m.Op())
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

// PrescriptionMedicineClient is a client for the PrescriptionMedicine schema.
type PrescriptionMedicineClient struct {
	config
}

// NewPrescriptionMedicineClient returns a client for the PrescriptionMedicine from the given config.
func NewPrescriptionMedicineClient(c config) *PrescriptionMedicineClient {
	return &PrescriptionMedicineClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `prescriptionmedicine.Hooks(f(g(h())))`.
func (c *PrescriptionMedicineClient) Use(hooks ...Hook) {
	c.hooks.PrescriptionMedicine = append(c.hooks.PrescriptionMedicine, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `prescriptionmedicine.Intercept(f(g(h())))`.
func (c *PrescriptionMedicineClient) Intercept(interceptors ...Interceptor) {
	c.inters.PrescriptionMedicine = append(c.inters.PrescriptionMedicine, interceptors...)
}

// Create returns a builder for creating a PrescriptionMedicine entity.
func (c *PrescriptionMedicineClient) Create() *PrescriptionMedicineCreate {
	mutation := newPrescriptionMedicineMutation(c.config, OpCreate)
	return &PrescriptionMedicineCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PrescriptionMedicine entities.
func (c *PrescriptionMedicineClient) CreateBulk(builders ...*PrescriptionMedicineCreate) *PrescriptionMedicineCreateBulk {
	return &PrescriptionMedicineCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PrescriptionMedicineClient) MapCreateBulk(slice any, setFunc func(*PrescriptionMedicineCreate, int)) *PrescriptionMedicineCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PrescriptionMedicineCreateBulk{err: fmt.Errorf("calling to PrescriptionMedicineClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PrescriptionMedicineCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PrescriptionMedicineCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PrescriptionMedicine.
func (c *PrescriptionMedicineClient) Update() *PrescriptionMedicineUpdate {
	mutation := newPrescriptionMedicineMutation(c.config, OpUpdate)
	return &PrescriptionMedicineUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PrescriptionMedicineClient) UpdateOne(_m *PrescriptionMedicine) *PrescriptionMedicineUpdateOne {
	mutation := newPrescriptionMedicineMutation(c.config, OpUpdateOne, withPrescriptionMedicine(_m))
	return &PrescriptionMedicineUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PrescriptionMedicineClient) UpdateOneID(id uuid.UUID) *PrescriptionMedicineUpdateOne {
	mutation := newPrescriptionMedicineMutation(c.config, OpUpdateOne, withPrescriptionMedicineID(id))
	return &PrescriptionMedicineUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PrescriptionMedicine.
func (c *PrescriptionMedicineClient) Delete() *PrescriptionMedicineDelete {
	mutation := newPrescriptionMedicineMutation(c.config, OpDelete)
	return &PrescriptionMedicineDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PrescriptionMedicineClient) DeleteOne(_m *PrescriptionMedicine) *PrescriptionMedicineDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PrescriptionMedicineClient) DeleteOneID(id uuid.UUID) *PrescriptionMedicineDeleteOne {
	builder := c.Delete().Where(prescriptionmedicine.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PrescriptionMedicineDeleteOne{builder}
}

// Query returns a query builder for PrescriptionMedicine.
func (c *PrescriptionMedicineClient) Query() *PrescriptionMedicineQuery {
	return &PrescriptionMedicineQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePrescriptionMedicine},
		inters: c.Interceptors(),
	}
}

// Get returns a PrescriptionMedicine entity by its id.
func (c *PrescriptionMedicineClient) Get(ctx context.Context, id uuid.UUID) (*PrescriptionMedicine, error) {
	return c.Query().Where(prescriptionmedicine.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PrescriptionMedicineClient) GetX(ctx context.Context, id uuid.UUID) *PrescriptionMedicine {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PrescriptionMedicineClient) Hooks() []Hook {
	return c.hooks.PrescriptionMedicine
}

// Interceptors returns the client interceptors.
func (c *PrescriptionMedicineClient) Interceptors() []Interceptor {
	return c.inters.PrescriptionMedicine
}

func (c *PrescriptionMedicineClient) mutate(ctx context.Context, m *PrescriptionMedicineMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PrescriptionMedicineCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PrescriptionMedicineUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PrescriptionMedicineUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PrescriptionMedicineDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown PrescriptionMedicine mutation op: %q", m.Op())
	}
}

// SaleItemClient is a client for the SaleItem schema.
type SaleItemClient struct {
	config
}

// NewSaleItemClient returns a client for the SaleItem from the given config.
func NewSaleItemClient(c config) *SaleItemClient {
	return &SaleItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `saleitem.Hooks(f(g(h())))`.
func (c *SaleItemClient) Use(hooks ...Hook) {
	c.hooks.SaleItem = append(c.hooks.SaleItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `saleitem.Intercept(f(g(h())))`.
func (c *SaleItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.SaleItem = append(c.inters.SaleItem, interceptors...)
}

// Create returns a builder for creating a SaleItem entity.
func (c *SaleItemClient) Create() *SaleItemCreate {
	mutation := newSaleItemMutation(c.config, OpCreate)
	return &SaleItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SaleItem entities.
func (c *SaleItemClient) CreateBulk(builders ...*SaleItemCreate) *SaleItemCreateBulk {
	return &SaleItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SaleItemClient) MapCreateBulk(slice any, setFunc func(*SaleItemCreate, int)) *SaleItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SaleItemCreateBulk{err: fmt.Errorf("calling to SaleItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SaleItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SaleItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SaleItem.
func (c *SaleItemClient) Update() *SaleItemUpdate {
	mutation := newSaleItemMutation(c.config, OpUpdate)
	return &SaleItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SaleItemClient) UpdateOne(_m *SaleItem) *SaleItemUpdateOne {
	mutation := newSaleItemMutation(c.config, OpUpdateOne, withSaleItem(_m))
	return &SaleItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SaleItemClient) UpdateOneID(id uuid.UUID) *SaleItemUpdateOne {
	mutation := newSaleItemMutation(c.config, OpUpdateOne, withSaleItemID(id))
	return &SaleItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SaleItem.
func (c *SaleItemClient) Delete() *SaleItemDelete {
	mutation := newSaleItemMutation(c.config, OpDelete)
	return &SaleItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SaleItemClient) DeleteOne(_m *SaleItem) *SaleItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SaleItemClient) DeleteOneID(id uuid.UUID) *SaleItemDeleteOne {
	builder := c.Delete().Where(saleitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SaleItemDeleteOne{builder}
}

// Query returns a query builder for SaleItem.
func (c *SaleItemClient) Query() *SaleItemQuery {
	return &SaleItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSaleItem},
		inters: c.Interceptors(),
	}
}

// Get returns a SaleItem entity by its id.
func (c *SaleItemClient) Get(ctx context.Context, id uuid.UUID) (*SaleItem, error) {
	return c.Query().Where(saleitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SaleItemClient) GetX(ctx context.Context, id uuid.UUID) *SaleItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SaleItemClient) Hooks() []Hook {
	return c.hooks.SaleItem
}

// Interceptors returns the client interceptors.
func (c *SaleItemClient) Interceptors() []Interceptor {
	return c.inters.SaleItem
}

func (c *SaleItemClient) mutate(ctx context.Context, m *SaleItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SaleItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SaleItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SaleItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SaleItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown SaleItem mutation op: %q", m.Op())
	}
}

// StaffClient is a client for the Staff schema.
type StaffClient struct {
	config
}

// NewStaffClient returns a client for the Staff from the given config.
func NewStaffClient(c config) *StaffClient {
	return &StaffClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `staff.Hooks(f(g(h())))`.
func (c *StaffClient) Use(hooks ...Hook) {
	c.hooks.Staff = append(c.hooks.Staff, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `staff.Intercept(f(g(h())))`.
func (c *StaffClient) Intercept(interceptors ...Interceptor) {
	c.inters.Staff = append(c.inters.Staff, interceptors...)
}

// Create returns a builder for creating a Staff entity.
func (c *StaffClient) Create() *StaffCreate {
	mutation := newStaffMutation(c.config, OpCreate)
	return &StaffCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Staff entities.
func (c *StaffClient) CreateBulk(builders ...*StaffCreate) *StaffCreateBulk {
	return &StaffCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StaffClient) MapCreateBulk(slice any, setFunc func(*StaffCreate, int)) *StaffCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StaffCreateBulk{err: fmt.Errorf("calling to StaffClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StaffCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StaffCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Staff.
func (c *StaffClient) Update() *StaffUpdate {
	mutation := newStaffMutation(c.config, OpUpdate)
	return &StaffUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StaffClient) UpdateOne(_m *Staff) *StaffUpdateOne {
	mutation := newStaffMutation(c.config, OpUpdateOne, withStaff(_m))
	return &StaffUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StaffClient) UpdateOneID(id uuid.UUID) *StaffUpdateOne {
	mutation := newStaffMutation(c.config, OpUpdateOne, withStaffID(id))
	return &StaffUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Staff.
func (c *StaffClient) Delete() *StaffDelete {
	mutation := newStaffMutation(c.config, OpDelete)
	return &StaffDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StaffClient) DeleteOne(_m *Staff) *StaffDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StaffClient) DeleteOneID(id uuid.UUID) *StaffDeleteOne {
	builder := c.Delete().Where(staff.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StaffDeleteOne{builder}
}

// Query returns a query builder for Staff.
func (c *StaffClient) Query() *StaffQuery {
	return &StaffQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStaff},
		inters: c.Interceptors(),
	}
}

// Get returns a Staff entity by its id.
func (c *StaffClient) Get(ctx context.Context, id uuid.UUID) (*Staff, error) {
	return c.Query().Where(staff.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StaffClient) GetX(ctx context.Context, id uuid.UUID) *Staff {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StaffClient) Hooks() []Hook {
	return c.hooks.Staff
}

// Interceptors returns the client interceptors.
func (c *StaffClient) Interceptors() []Interceptor {
	return c.inters.Staff
}

func (c *StaffClient) mutate(ctx context.Context, m *StaffMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StaffCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StaffUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StaffUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StaffDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Staff mutation op: %q", m.Op())
	}
}

// StockAdjustmentClient is a client for the StockAdjustment schema.
type StockAdjustmentClient struct {
	config
}

// NewStockAdjustmentClient returns a client for the StockAdjustment from the given config.
func NewStockAdjustmentClient(c config) *StockAdjustmentClient {
	return &StockAdjustmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `stockadjustment.Hooks(f(g(h())))`.
func (c *StockAdjustmentClient) Use(hooks ...Hook) {
	c.hooks.StockAdjustment = append(c.hooks.StockAdjustment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `stockadjustment.Intercept(f(g(h())))`.
func (c *StockAdjustmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.StockAdjustment = append(c.inters.StockAdjustment, interceptors...)
}

// Create returns a builder for creating a StockAdjustment entity.
func (c *StockAdjustmentClient) Create() *StockAdjustmentCreate {
	mutation := newStockAdjustmentMutation(c.config, OpCreate)
	return &StockAdjustmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StockAdjustment entities.
func (c *StockAdjustmentClient) CreateBulk(builders ...*StockAdjustmentCreate) *StockAdjustmentCreateBulk {
	return &StockAdjustmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StockAdjustmentClient) MapCreateBulk(slice any, setFunc func(*StockAdjustmentCreate, int)) *StockAdjustmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StockAdjustmentCreateBulk{err: fmt.Errorf("calling to StockAdjustmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StockAdjustmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StockAdjustmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StockAdjustment.
func (c *StockAdjustmentClient) Update() *StockAdjustmentUpdate {
	mutation := newStockAdjustmentMutation(c.config, OpUpdate)
	return &StockAdjustmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StockAdjustmentClient) UpdateOne(_m *StockAdjustment) *StockAdjustmentUpdateOne {
	mutation := newStockAdjustmentMutation(c.config, OpUpdateOne, withStockAdjustment(_m))
	return &StockAdjustmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StockAdjustmentClient) UpdateOneID(id uuid.UUID) *StockAdjustmentUpdateOne {
	mutation := newStockAdjustmentMutation(c.config, OpUpdateOne, withStockAdjustmentID(id))
	return &StockAdjustmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StockAdjustment.
func (c *StockAdjustmentClient) Delete() *StockAdjustmentDelete {
	mutation := newStockAdjustmentMutation(c.config, OpDelete)
	return &StockAdjustmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StockAdjustmentClient) DeleteOne(_m *StockAdjustment) *StockAdjustmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StockAdjustmentClient) DeleteOneID(id uuid.UUID) *StockAdjustmentDeleteOne {
	builder := c.Delete().Where(stockadjustment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StockAdjustmentDeleteOne{builder}
}

// Query returns a query builder for StockAdjustment.
func (c *StockAdjustmentClient) Query() *StockAdjustmentQuery {
	return &StockAdjustmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStockAdjustment},
		inters: c.Interceptors(),
	}
}

// Get returns a StockAdjustment entity by its id.
func (c *StockAdjustmentClient) Get(ctx context.Context, id uuid.UUID) (*StockAdjustment, error) {
	return c.Query().Where(stockadjustment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StockAdjustmentClient) GetX(ctx context.Context, id uuid.UUID) *StockAdjustment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StockAdjustmentClient) Hooks() []Hook {
	return c.hooks.StockAdjustment
}

// Interceptors returns the client interceptors.
func (c *StockAdjustmentClient) Interceptors() []Interceptor {
	return c.inters.StockAdjustment
}

func (c *StockAdjustmentClient) mutate(ctx context.Context, m *StockAdjustmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StockAdjustmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StockAdjustmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StockAdjustmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StockAdjustmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown StockAdjustment mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Appointment, CanteenItem, CanteenSale, CanteenSaleItem, DoctorAvailability,
		DoctorSchedule, Drug, Expense, Income, LabOrder, LabResult, LabTest,
		PCTransaction, Patient, PharmacySale, Prescription, PrescriptionMedicine,
		SaleItem, Staff, StockAdjustment []ent.Hook
	}
	inters struct {
		Appointment, CanteenItem, CanteenSale, CanteenSaleItem, DoctorAvailability,
		DoctorSchedule, Drug, Expense, Income, LabOrder, LabResult, LabTest,
		PCTransaction, Patient, PharmacySale, Prescription, PrescriptionMedicine,
		SaleItem, Staff, StockAdjustment []ent.Interceptor
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
