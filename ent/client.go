// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/caseops/inquest/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/caseops/inquest/ent/casemessage"
	"github.com/caseops/inquest/ent/caserecord"
	"github.com/caseops/inquest/ent/casereport"
	"github.com/caseops/inquest/ent/evidencefile"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CaseMessage is the client for interacting with the CaseMessage builders.
	CaseMessage *CaseMessageClient
	// CaseRecord is the client for interacting with the CaseRecord builders.
	CaseRecord *CaseRecordClient
	// CaseReport is the client for interacting with the CaseReport builders.
	CaseReport *CaseReportClient
	// EvidenceFile is the client for interacting with the EvidenceFile builders.
	EvidenceFile *EvidenceFileClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.CaseMessage = NewCaseMessageClient(c.config)
	c.CaseRecord = NewCaseRecordClient(c.config)
	c.CaseReport = NewCaseReportClient(c.config)
	c.EvidenceFile = NewEvidenceFileClient(c.config)
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
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:          ctx,
		config:       cfg,
		CaseMessage:  NewCaseMessageClient(cfg),
		CaseRecord:   NewCaseRecordClient(cfg),
		CaseReport:   NewCaseReportClient(cfg),
		EvidenceFile: NewEvidenceFileClient(cfg),
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
		ctx:          ctx,
		config:       cfg,
		CaseMessage:  NewCaseMessageClient(cfg),
		CaseRecord:   NewCaseRecordClient(cfg),
		CaseReport:   NewCaseReportClient(cfg),
		EvidenceFile: NewEvidenceFileClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CaseMessage.
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
	c.CaseMessage.Use(hooks...)
	c.CaseRecord.Use(hooks...)
	c.CaseReport.Use(hooks...)
	c.EvidenceFile.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.CaseMessage.Intercept(interceptors...)
	c.CaseRecord.Intercept(interceptors...)
	c.CaseReport.Intercept(interceptors...)
	c.EvidenceFile.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CaseMessageMutation:
		return c.CaseMessage.mutate(ctx, m)
	case *CaseRecordMutation:
		return c.CaseRecord.mutate(ctx, m)
	case *CaseReportMutation:
		return c.CaseReport.mutate(ctx, m)
	case *EvidenceFileMutation:
		return c.EvidenceFile.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CaseMessageClient is a client for the CaseMessage schema.
type CaseMessageClient struct {
	config
}

// NewCaseMessageClient returns a client for the CaseMessage from the given config.
func NewCaseMessageClient(c config) *CaseMessageClient {
	return &CaseMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `casemessage.Hooks(f(g(h())))`.
func (c *CaseMessageClient) Use(hooks ...Hook) {
	c.hooks.CaseMessage = append(c.hooks.CaseMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `casemessage.Intercept(f(g(h())))`.
func (c *CaseMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.CaseMessage = append(c.inters.CaseMessage, interceptors...)
}

// Create returns a builder for creating a CaseMessage entity.
func (c *CaseMessageClient) Create() *CaseMessageCreate {
	mutation := newCaseMessageMutation(c.config, OpCreate)
	return &CaseMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CaseMessage entities.
func (c *CaseMessageClient) CreateBulk(builders ...*CaseMessageCreate) *CaseMessageCreateBulk {
	return &CaseMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CaseMessageClient) MapCreateBulk(slice any, setFunc func(*CaseMessageCreate, int)) *CaseMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CaseMessageCreateBulk{err: fmt.Errorf("calling to CaseMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CaseMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CaseMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CaseMessage.
func (c *CaseMessageClient) Update() *CaseMessageUpdate {
	mutation := newCaseMessageMutation(c.config, OpUpdate)
	return &CaseMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CaseMessageClient) UpdateOne(_m *CaseMessage) *CaseMessageUpdateOne {
	mutation := newCaseMessageMutation(c.config, OpUpdateOne, withCaseMessage(_m))
	return &CaseMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CaseMessageClient) UpdateOneID(id string) *CaseMessageUpdateOne {
	mutation := newCaseMessageMutation(c.config, OpUpdateOne, withCaseMessageID(id))
	return &CaseMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CaseMessage.
func (c *CaseMessageClient) Delete() *CaseMessageDelete {
	mutation := newCaseMessageMutation(c.config, OpDelete)
	return &CaseMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CaseMessageClient) DeleteOne(_m *CaseMessage) *CaseMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CaseMessageClient) DeleteOneID(id string) *CaseMessageDeleteOne {
	builder := c.Delete().Where(casemessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CaseMessageDeleteOne{builder}
}

// Query returns a query builder for CaseMessage.
func (c *CaseMessageClient) Query() *CaseMessageQuery {
	return &CaseMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCaseMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a CaseMessage entity by its id.
func (c *CaseMessageClient) Get(ctx context.Context, id string) (*CaseMessage, error) {
	return c.Query().Where(casemessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CaseMessageClient) GetX(ctx context.Context, id string) *CaseMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCase queries the case edge of a CaseMessage.
func (c *CaseMessageClient) QueryCase(_m *CaseMessage) *CaseRecordQuery {
	query := (&CaseRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(casemessage.Table, casemessage.FieldID, id),
			sqlgraph.To(caserecord.Table, caserecord.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, casemessage.CaseTable, casemessage.CaseColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CaseMessageClient) Hooks() []Hook {
	return c.hooks.CaseMessage
}

// Interceptors returns the client interceptors.
func (c *CaseMessageClient) Interceptors() []Interceptor {
	return c.inters.CaseMessage
}

func (c *CaseMessageClient) mutate(ctx context.Context, m *CaseMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CaseMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CaseMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CaseMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CaseMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CaseMessage mutation op: %q", m.Op())
	}
}

// CaseRecordClient is a client for the CaseRecord schema.
type CaseRecordClient struct {
	config
}

// NewCaseRecordClient returns a client for the CaseRecord from the given config.
func NewCaseRecordClient(c config) *CaseRecordClient {
	return &CaseRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `caserecord.Hooks(f(g(h())))`.
func (c *CaseRecordClient) Use(hooks ...Hook) {
	c.hooks.CaseRecord = append(c.hooks.CaseRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `caserecord.Intercept(f(g(h())))`.
func (c *CaseRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.CaseRecord = append(c.inters.CaseRecord, interceptors...)
}

// Create returns a builder for creating a CaseRecord entity.
func (c *CaseRecordClient) Create() *CaseRecordCreate {
	mutation := newCaseRecordMutation(c.config, OpCreate)
	return &CaseRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CaseRecord entities.
func (c *CaseRecordClient) CreateBulk(builders ...*CaseRecordCreate) *CaseRecordCreateBulk {
	return &CaseRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CaseRecordClient) MapCreateBulk(slice any, setFunc func(*CaseRecordCreate, int)) *CaseRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CaseRecordCreateBulk{err: fmt.Errorf("calling to CaseRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CaseRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CaseRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CaseRecord.
func (c *CaseRecordClient) Update() *CaseRecordUpdate {
	mutation := newCaseRecordMutation(c.config, OpUpdate)
	return &CaseRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CaseRecordClient) UpdateOne(_m *CaseRecord) *CaseRecordUpdateOne {
	mutation := newCaseRecordMutation(c.config, OpUpdateOne, withCaseRecord(_m))
	return &CaseRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CaseRecordClient) UpdateOneID(id string) *CaseRecordUpdateOne {
	mutation := newCaseRecordMutation(c.config, OpUpdateOne, withCaseRecordID(id))
	return &CaseRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CaseRecord.
func (c *CaseRecordClient) Delete() *CaseRecordDelete {
	mutation := newCaseRecordMutation(c.config, OpDelete)
	return &CaseRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CaseRecordClient) DeleteOne(_m *CaseRecord) *CaseRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CaseRecordClient) DeleteOneID(id string) *CaseRecordDeleteOne {
	builder := c.Delete().Where(caserecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CaseRecordDeleteOne{builder}
}

// Query returns a query builder for CaseRecord.
func (c *CaseRecordClient) Query() *CaseRecordQuery {
	return &CaseRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCaseRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a CaseRecord entity by its id.
func (c *CaseRecordClient) Get(ctx context.Context, id string) (*CaseRecord, error) {
	return c.Query().Where(caserecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CaseRecordClient) GetX(ctx context.Context, id string) *CaseRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMessages queries the messages edge of a CaseRecord.
func (c *CaseRecordClient) QueryMessages(_m *CaseRecord) *CaseMessageQuery {
	query := (&CaseMessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(caserecord.Table, caserecord.FieldID, id),
			sqlgraph.To(casemessage.Table, casemessage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, caserecord.MessagesTable, caserecord.MessagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryReports queries the reports edge of a CaseRecord.
func (c *CaseRecordClient) QueryReports(_m *CaseRecord) *CaseReportQuery {
	query := (&CaseReportClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(caserecord.Table, caserecord.FieldID, id),
			sqlgraph.To(casereport.Table, casereport.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, caserecord.ReportsTable, caserecord.ReportsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvidenceFiles queries the evidence_files edge of a CaseRecord.
func (c *CaseRecordClient) QueryEvidenceFiles(_m *CaseRecord) *EvidenceFileQuery {
	query := (&EvidenceFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(caserecord.Table, caserecord.FieldID, id),
			sqlgraph.To(evidencefile.Table, evidencefile.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, caserecord.EvidenceFilesTable, caserecord.EvidenceFilesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CaseRecordClient) Hooks() []Hook {
	return c.hooks.CaseRecord
}

// Interceptors returns the client interceptors.
func (c *CaseRecordClient) Interceptors() []Interceptor {
	return c.inters.CaseRecord
}

func (c *CaseRecordClient) mutate(ctx context.Context, m *CaseRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CaseRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CaseRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CaseRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CaseRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CaseRecord mutation op: %q", m.Op())
	}
}

// CaseReportClient is a client for the CaseReport schema.
type CaseReportClient struct {
	config
}

// NewCaseReportClient returns a client for the CaseReport from the given config.
func NewCaseReportClient(c config) *CaseReportClient {
	return &CaseReportClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `casereport.Hooks(f(g(h())))`.
func (c *CaseReportClient) Use(hooks ...Hook) {
	c.hooks.CaseReport = append(c.hooks.CaseReport, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `casereport.Intercept(f(g(h())))`.
func (c *CaseReportClient) Intercept(interceptors ...Interceptor) {
	c.inters.CaseReport = append(c.inters.CaseReport, interceptors...)
}

// Create returns a builder for creating a CaseReport entity.
func (c *CaseReportClient) Create() *CaseReportCreate {
	mutation := newCaseReportMutation(c.config, OpCreate)
	return &CaseReportCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CaseReport entities.
func (c *CaseReportClient) CreateBulk(builders ...*CaseReportCreate) *CaseReportCreateBulk {
	return &CaseReportCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CaseReportClient) MapCreateBulk(slice any, setFunc func(*CaseReportCreate, int)) *CaseReportCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CaseReportCreateBulk{err: fmt.Errorf("calling to CaseReportClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CaseReportCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CaseReportCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CaseReport.
func (c *CaseReportClient) Update() *CaseReportUpdate {
	mutation := newCaseReportMutation(c.config, OpUpdate)
	return &CaseReportUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CaseReportClient) UpdateOne(_m *CaseReport) *CaseReportUpdateOne {
	mutation := newCaseReportMutation(c.config, OpUpdateOne, withCaseReport(_m))
	return &CaseReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CaseReportClient) UpdateOneID(id string) *CaseReportUpdateOne {
	mutation := newCaseReportMutation(c.config, OpUpdateOne, withCaseReportID(id))
	return &CaseReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CaseReport.
func (c *CaseReportClient) Delete() *CaseReportDelete {
	mutation := newCaseReportMutation(c.config, OpDelete)
	return &CaseReportDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CaseReportClient) DeleteOne(_m *CaseReport) *CaseReportDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CaseReportClient) DeleteOneID(id string) *CaseReportDeleteOne {
	builder := c.Delete().Where(casereport.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CaseReportDeleteOne{builder}
}

// Query returns a query builder for CaseReport.
func (c *CaseReportClient) Query() *CaseReportQuery {
	return &CaseReportQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCaseReport},
		inters: c.Interceptors(),
	}
}

// Get returns a CaseReport entity by its id.
func (c *CaseReportClient) Get(ctx context.Context, id string) (*CaseReport, error) {
	return c.Query().Where(casereport.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CaseReportClient) GetX(ctx context.Context, id string) *CaseReport {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCase queries the case edge of a CaseReport.
func (c *CaseReportClient) QueryCase(_m *CaseReport) *CaseRecordQuery {
	query := (&CaseRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(casereport.Table, casereport.FieldID, id),
			sqlgraph.To(caserecord.Table, caserecord.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, casereport.CaseTable, casereport.CaseColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CaseReportClient) Hooks() []Hook {
	return c.hooks.CaseReport
}

// Interceptors returns the client interceptors.
func (c *CaseReportClient) Interceptors() []Interceptor {
	return c.inters.CaseReport
}

func (c *CaseReportClient) mutate(ctx context.Context, m *CaseReportMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CaseReportCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CaseReportUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CaseReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CaseReportDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CaseReport mutation op: %q", m.Op())
	}
}

// EvidenceFileClient is a client for the EvidenceFile schema.
type EvidenceFileClient struct {
	config
}

// NewEvidenceFileClient returns a client for the EvidenceFile from the given config.
func NewEvidenceFileClient(c config) *EvidenceFileClient {
	return &EvidenceFileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `evidencefile.Hooks(f(g(h())))`.
func (c *EvidenceFileClient) Use(hooks ...Hook) {
	c.hooks.EvidenceFile = append(c.hooks.EvidenceFile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `evidencefile.Intercept(f(g(h())))`.
func (c *EvidenceFileClient) Intercept(interceptors ...Interceptor) {
	c.inters.EvidenceFile = append(c.inters.EvidenceFile, interceptors...)
}

// Create returns a builder for creating a EvidenceFile entity.
func (c *EvidenceFileClient) Create() *EvidenceFileCreate {
	mutation := newEvidenceFileMutation(c.config, OpCreate)
	return &EvidenceFileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EvidenceFile entities.
func (c *EvidenceFileClient) CreateBulk(builders ...*EvidenceFileCreate) *EvidenceFileCreateBulk {
	return &EvidenceFileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EvidenceFileClient) MapCreateBulk(slice any, setFunc func(*EvidenceFileCreate, int)) *EvidenceFileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EvidenceFileCreateBulk{err: fmt.Errorf("calling to EvidenceFileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EvidenceFileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EvidenceFileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EvidenceFile.
func (c *EvidenceFileClient) Update() *EvidenceFileUpdate {
	mutation := newEvidenceFileMutation(c.config, OpUpdate)
	return &EvidenceFileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EvidenceFileClient) UpdateOne(_m *EvidenceFile) *EvidenceFileUpdateOne {
	mutation := newEvidenceFileMutation(c.config, OpUpdateOne, withEvidenceFile(_m))
	return &EvidenceFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EvidenceFileClient) UpdateOneID(id string) *EvidenceFileUpdateOne {
	mutation := newEvidenceFileMutation(c.config, OpUpdateOne, withEvidenceFileID(id))
	return &EvidenceFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EvidenceFile.
func (c *EvidenceFileClient) Delete() *EvidenceFileDelete {
	mutation := newEvidenceFileMutation(c.config, OpDelete)
	return &EvidenceFileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EvidenceFileClient) DeleteOne(_m *EvidenceFile) *EvidenceFileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EvidenceFileClient) DeleteOneID(id string) *EvidenceFileDeleteOne {
	builder := c.Delete().Where(evidencefile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EvidenceFileDeleteOne{builder}
}

// Query returns a query builder for EvidenceFile.
func (c *EvidenceFileClient) Query() *EvidenceFileQuery {
	return &EvidenceFileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvidenceFile},
		inters: c.Interceptors(),
	}
}

// Get returns a EvidenceFile entity by its id.
func (c *EvidenceFileClient) Get(ctx context.Context, id string) (*EvidenceFile, error) {
	return c.Query().Where(evidencefile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EvidenceFileClient) GetX(ctx context.Context, id string) *EvidenceFile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCase queries the case edge of a EvidenceFile.
func (c *EvidenceFileClient) QueryCase(_m *EvidenceFile) *CaseRecordQuery {
	query := (&CaseRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(evidencefile.Table, evidencefile.FieldID, id),
			sqlgraph.To(caserecord.Table, caserecord.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, evidencefile.CaseTable, evidencefile.CaseColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EvidenceFileClient) Hooks() []Hook {
	return c.hooks.EvidenceFile
}

// Interceptors returns the client interceptors.
func (c *EvidenceFileClient) Interceptors() []Interceptor {
	return c.inters.EvidenceFile
}

func (c *EvidenceFileClient) mutate(ctx context.Context, m *EvidenceFileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EvidenceFileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EvidenceFileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EvidenceFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EvidenceFileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EvidenceFile mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		CaseMessage, CaseRecord, CaseReport, EvidenceFile []ent.Hook
	}
	inters struct {
		CaseMessage, CaseRecord, CaseReport, EvidenceFile []ent.Interceptor
	}
)
