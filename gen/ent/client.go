// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/cuisinehq/mercuriale/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/cuisinehq/mercuriale/gen/ent/catalogentry"
	"github.com/cuisinehq/mercuriale/gen/ent/importfile"
	"github.com/cuisinehq/mercuriale/gen/ent/importjob"
	"github.com/cuisinehq/mercuriale/gen/ent/recipesheet"
	"github.com/cuisinehq/mercuriale/gen/ent/stockmovement"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CatalogEntry is the client for interacting with the CatalogEntry builders.
	CatalogEntry *CatalogEntryClient
	// ImportFile is the client for interacting with the ImportFile builders.
	ImportFile *ImportFileClient
	// ImportJob is the client for interacting with the ImportJob builders.
	ImportJob *ImportJobClient
	// RecipeSheet is the client for interacting with the RecipeSheet builders.
	RecipeSheet *RecipeSheetClient
	// StockMovement is the client for interacting with the StockMovement builders.
	StockMovement *StockMovementClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.CatalogEntry = NewCatalogEntryClient(c.config)
	c.ImportFile = NewImportFileClient(c.config)
	c.ImportJob = NewImportJobClient(c.config)
	c.RecipeSheet = NewRecipeSheetClient(c.config)
	c.StockMovement = NewStockMovementClient(c.config)
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
		ctx:           ctx,
		config:        cfg,
		CatalogEntry:  NewCatalogEntryClient(cfg),
		ImportFile:    NewImportFileClient(cfg),
		ImportJob:     NewImportJobClient(cfg),
		RecipeSheet:   NewRecipeSheetClient(cfg),
		StockMovement: NewStockMovementClient(cfg),
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
		ctx:           ctx,
		config:        cfg,
		CatalogEntry:  NewCatalogEntryClient(cfg),
		ImportFile:    NewImportFileClient(cfg),
		ImportJob:     NewImportJobClient(cfg),
		RecipeSheet:   NewRecipeSheetClient(cfg),
		StockMovement: NewStockMovementClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CatalogEntry.
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
	c.CatalogEntry.Use(hooks...)
	c.ImportFile.Use(hooks...)
	c.ImportJob.Use(hooks...)
	c.RecipeSheet.Use(hooks...)
	c.StockMovement.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.CatalogEntry.Intercept(interceptors...)
	c.ImportFile.Intercept(interceptors...)
	c.ImportJob.Intercept(interceptors...)
	c.RecipeSheet.Intercept(interceptors...)
	c.StockMovement.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CatalogEntryMutation:
		return c.CatalogEntry.mutate(ctx, m)
	case *ImportFileMutation:
		return c.ImportFile.mutate(ctx, m)
	case *ImportJobMutation:
		return c.ImportJob.mutate(ctx, m)
	case *RecipeSheetMutation:
		return c.RecipeSheet.mutate(ctx, m)
	case *StockMovementMutation:
		return c.StockMovement.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CatalogEntryClient is a client for the CatalogEntry schema.
type CatalogEntryClient struct {
	config
}

// NewCatalogEntryClient returns a client for the CatalogEntry from the given config.
func NewCatalogEntryClient(c config) *CatalogEntryClient {
	return &CatalogEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `catalogentry.Hooks(f(g(h())))`.
func (c *CatalogEntryClient) Use(hooks ...Hook) {
	c.hooks.CatalogEntry = append(c.hooks.CatalogEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `catalogentry.Intercept(f(g(h())))`.
func (c *CatalogEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.CatalogEntry = append(c.inters.CatalogEntry, interceptors...)
}

// Create returns a builder for creating a CatalogEntry entity.
func (c *CatalogEntryClient) Create() *CatalogEntryCreate {
	mutation := newCatalogEntryMutation(c.config, OpCreate)
	return &CatalogEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CatalogEntry entities.
func (c *CatalogEntryClient) CreateBulk(builders ...*CatalogEntryCreate) *CatalogEntryCreateBulk {
	return &CatalogEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CatalogEntryClient) MapCreateBulk(slice any, setFunc func(*CatalogEntryCreate, int)) *CatalogEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CatalogEntryCreateBulk{err: fmt.Errorf("calling to CatalogEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CatalogEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CatalogEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CatalogEntry.
func (c *CatalogEntryClient) Update() *CatalogEntryUpdate {
	mutation := newCatalogEntryMutation(c.config, OpUpdate)
	return &CatalogEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CatalogEntryClient) UpdateOne(_m *CatalogEntry) *CatalogEntryUpdateOne {
	mutation := newCatalogEntryMutation(c.config, OpUpdateOne, withCatalogEntry(_m))
	return &CatalogEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CatalogEntryClient) UpdateOneID(id uuid.UUID) *CatalogEntryUpdateOne {
	mutation := newCatalogEntryMutation(c.config, OpUpdateOne, withCatalogEntryID(id))
	return &CatalogEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CatalogEntry.
func (c *CatalogEntryClient) Delete() *CatalogEntryDelete {
	mutation := newCatalogEntryMutation(c.config, OpDelete)
	return &CatalogEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CatalogEntryClient) DeleteOne(_m *CatalogEntry) *CatalogEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CatalogEntryClient) DeleteOneID(id uuid.UUID) *CatalogEntryDeleteOne {
	builder := c.Delete().Where(catalogentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CatalogEntryDeleteOne{builder}
}

// Query returns a query builder for CatalogEntry.
func (c *CatalogEntryClient) Query() *CatalogEntryQuery {
	return &CatalogEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCatalogEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a CatalogEntry entity by its id.
func (c *CatalogEntryClient) Get(ctx context.Context, id uuid.UUID) (*CatalogEntry, error) {
	return c.Query().Where(catalogentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CatalogEntryClient) GetX(ctx context.Context, id uuid.UUID) *CatalogEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CatalogEntryClient) Hooks() []Hook {
	return c.hooks.CatalogEntry
}

// Interceptors returns the client interceptors.
func (c *CatalogEntryClient) Interceptors() []Interceptor {
	return c.inters.CatalogEntry
}

func (c *CatalogEntryClient) mutate(ctx context.Context, m *CatalogEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CatalogEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CatalogEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CatalogEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CatalogEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CatalogEntry mutation op: %q", m.Op())
	}
}

// ImportFileClient is a client for the ImportFile schema.
type ImportFileClient struct {
	config
}

// NewImportFileClient returns a client for the ImportFile from the given config.
func NewImportFileClient(c config) *ImportFileClient {
	return &ImportFileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `importfile.Hooks(f(g(h())))`.
func (c *ImportFileClient) Use(hooks ...Hook) {
	c.hooks.ImportFile = append(c.hooks.ImportFile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `importfile.Intercept(f(g(h())))`.
func (c *ImportFileClient) Intercept(interceptors ...Interceptor) {
	c.inters.ImportFile = append(c.inters.ImportFile, interceptors...)
}

// Create returns a builder for creating a ImportFile entity.
func (c *ImportFileClient) Create() *ImportFileCreate {
	mutation := newImportFileMutation(c.config, OpCreate)
	return &ImportFileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ImportFile entities.
func (c *ImportFileClient) CreateBulk(builders ...*ImportFileCreate) *ImportFileCreateBulk {
	return &ImportFileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ImportFileClient) MapCreateBulk(slice any, setFunc func(*ImportFileCreate, int)) *ImportFileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ImportFileCreateBulk{err: fmt.Errorf("calling to ImportFileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ImportFileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ImportFileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ImportFile.
func (c *ImportFileClient) Update() *ImportFileUpdate {
	mutation := newImportFileMutation(c.config, OpUpdate)
	return &ImportFileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ImportFileClient) UpdateOne(_m *ImportFile) *ImportFileUpdateOne {
	mutation := newImportFileMutation(c.config, OpUpdateOne, withImportFile(_m))
	return &ImportFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ImportFileClient) UpdateOneID(id uuid.UUID) *ImportFileUpdateOne {
	mutation := newImportFileMutation(c.config, OpUpdateOne, withImportFileID(id))
	return &ImportFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ImportFile.
func (c *ImportFileClient) Delete() *ImportFileDelete {
	mutation := newImportFileMutation(c.config, OpDelete)
	return &ImportFileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ImportFileClient) DeleteOne(_m *ImportFile) *ImportFileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ImportFileClient) DeleteOneID(id uuid.UUID) *ImportFileDeleteOne {
	builder := c.Delete().Where(importfile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ImportFileDeleteOne{builder}
}

// Query returns a query builder for ImportFile.
func (c *ImportFileClient) Query() *ImportFileQuery {
	return &ImportFileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeImportFile},
		inters: c.Interceptors(),
	}
}

// Get returns a ImportFile entity by its id.
func (c *ImportFileClient) Get(ctx context.Context, id uuid.UUID) (*ImportFile, error) {
	return c.Query().Where(importfile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ImportFileClient) GetX(ctx context.Context, id uuid.UUID) *ImportFile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ImportFileClient) Hooks() []Hook {
	return c.hooks.ImportFile
}

// Interceptors returns the client interceptors.
func (c *ImportFileClient) Interceptors() []Interceptor {
	return c.inters.ImportFile
}

func (c *ImportFileClient) mutate(ctx context.Context, m *ImportFileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ImportFileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ImportFileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ImportFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ImportFileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ImportFile mutation op: %q", m.Op())
	}
}

// ImportJobClient is a client for the ImportJob schema.
type ImportJobClient struct {
	config
}

// NewImportJobClient returns a client for the ImportJob from the given config.
func NewImportJobClient(c config) *ImportJobClient {
	return &ImportJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `importjob.Hooks(f(g(h())))`.
func (c *ImportJobClient) Use(hooks ...Hook) {
	c.hooks.ImportJob = append(c.hooks.ImportJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `importjob.Intercept(f(g(h())))`.
func (c *ImportJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.ImportJob = append(c.inters.ImportJob, interceptors...)
}

// Create returns a builder for creating a ImportJob entity.
func (c *ImportJobClient) Create() *ImportJobCreate {
	mutation := newImportJobMutation(c.config, OpCreate)
	return &ImportJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ImportJob entities.
func (c *ImportJobClient) CreateBulk(builders ...*ImportJobCreate) *ImportJobCreateBulk {
	return &ImportJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ImportJobClient) MapCreateBulk(slice any, setFunc func(*ImportJobCreate, int)) *ImportJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ImportJobCreateBulk{err: fmt.Errorf("calling to ImportJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ImportJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ImportJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ImportJob.
func (c *ImportJobClient) Update() *ImportJobUpdate {
	mutation := newImportJobMutation(c.config, OpUpdate)
	return &ImportJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ImportJobClient) UpdateOne(_m *ImportJob) *ImportJobUpdateOne {
	mutation := newImportJobMutation(c.config, OpUpdateOne, withImportJob(_m))
	return &ImportJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ImportJobClient) UpdateOneID(id uuid.UUID) *ImportJobUpdateOne {
	mutation := newImportJobMutation(c.config, OpUpdateOne, withImportJobID(id))
	return &ImportJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ImportJob.
func (c *ImportJobClient) Delete() *ImportJobDelete {
	mutation := newImportJobMutation(c.config, OpDelete)
	return &ImportJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ImportJobClient) DeleteOne(_m *ImportJob) *ImportJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ImportJobClient) DeleteOneID(id uuid.UUID) *ImportJobDeleteOne {
	builder := c.Delete().Where(importjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ImportJobDeleteOne{builder}
}

// Query returns a query builder for ImportJob.
func (c *ImportJobClient) Query() *ImportJobQuery {
	return &ImportJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeImportJob},
		inters: c.Interceptors(),
	}
}

// Get returns a ImportJob entity by its id.
func (c *ImportJobClient) Get(ctx context.Context, id uuid.UUID) (*ImportJob, error) {
	return c.Query().Where(importjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ImportJobClient) GetX(ctx context.Context, id uuid.UUID) *ImportJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ImportJobClient) Hooks() []Hook {
	return c.hooks.ImportJob
}

// Interceptors returns the client interceptors.
func (c *ImportJobClient) Interceptors() []Interceptor {
	return c.inters.ImportJob
}

func (c *ImportJobClient) mutate(ctx context.Context, m *ImportJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ImportJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ImportJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ImportJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ImportJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ImportJob mutation op: %q", m.Op())
	}
}

// RecipeSheetClient is a client for the RecipeSheet schema.
type RecipeSheetClient struct {
	config
}

// NewRecipeSheetClient returns a client for the RecipeSheet from the given config.
func NewRecipeSheetClient(c config) *RecipeSheetClient {
	return &RecipeSheetClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `recipesheet.Hooks(f(g(h())))`.
func (c *RecipeSheetClient) Use(hooks ...Hook) {
	c.hooks.RecipeSheet = append(c.hooks.RecipeSheet, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `recipesheet.Intercept(f(g(h())))`.
func (c *RecipeSheetClient) Intercept(interceptors ...Interceptor) {
	c.inters.RecipeSheet = append(c.inters.RecipeSheet, interceptors...)
}

// Create returns a builder for creating a RecipeSheet entity.
func (c *RecipeSheetClient) Create() *RecipeSheetCreate {
	mutation := newRecipeSheetMutation(c.config, OpCreate)
	return &RecipeSheetCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RecipeSheet entities.
func (c *RecipeSheetClient) CreateBulk(builders ...*RecipeSheetCreate) *RecipeSheetCreateBulk {
	return &RecipeSheetCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RecipeSheetClient) MapCreateBulk(slice any, setFunc func(*RecipeSheetCreate, int)) *RecipeSheetCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RecipeSheetCreateBulk{err: fmt.Errorf("calling to RecipeSheetClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RecipeSheetCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RecipeSheetCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RecipeSheet.
func (c *RecipeSheetClient) Update() *RecipeSheetUpdate {
	mutation := newRecipeSheetMutation(c.config, OpUpdate)
	return &RecipeSheetUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RecipeSheetClient) UpdateOne(_m *RecipeSheet) *RecipeSheetUpdateOne {
	mutation := newRecipeSheetMutation(c.config, OpUpdateOne, withRecipeSheet(_m))
	return &RecipeSheetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RecipeSheetClient) UpdateOneID(id uuid.UUID) *RecipeSheetUpdateOne {
	mutation := newRecipeSheetMutation(c.config, OpUpdateOne, withRecipeSheetID(id))
	return &RecipeSheetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RecipeSheet.
func (c *RecipeSheetClient) Delete() *RecipeSheetDelete {
	mutation := newRecipeSheetMutation(c.config, OpDelete)
	return &RecipeSheetDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RecipeSheetClient) DeleteOne(_m *RecipeSheet) *RecipeSheetDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RecipeSheetClient) DeleteOneID(id uuid.UUID) *RecipeSheetDeleteOne {
	builder := c.Delete().Where(recipesheet.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RecipeSheetDeleteOne{builder}
}

// Query returns a query builder for RecipeSheet.
func (c *RecipeSheetClient) Query() *RecipeSheetQuery {
	return &RecipeSheetQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRecipeSheet},
		inters: c.Interceptors(),
	}
}

// Get returns a RecipeSheet entity by its id.
func (c *RecipeSheetClient) Get(ctx context.Context, id uuid.UUID) (*RecipeSheet, error) {
	return c.Query().Where(recipesheet.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RecipeSheetClient) GetX(ctx context.Context, id uuid.UUID) *RecipeSheet {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RecipeSheetClient) Hooks() []Hook {
	return c.hooks.RecipeSheet
}

// Interceptors returns the client interceptors.
func (c *RecipeSheetClient) Interceptors() []Interceptor {
	return c.inters.RecipeSheet
}

func (c *RecipeSheetClient) mutate(ctx context.Context, m *RecipeSheetMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RecipeSheetCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RecipeSheetUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RecipeSheetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RecipeSheetDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RecipeSheet mutation op: %q", m.Op())
	}
}

// StockMovementClient is a client for the StockMovement schema.
type StockMovementClient struct {
	config
}

// NewStockMovementClient returns a client for the StockMovement from the given config.
func NewStockMovementClient(c config) *StockMovementClient {
	return &StockMovementClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `stockmovement.Hooks(f(g(h())))`.
func (c *StockMovementClient) Use(hooks ...Hook) {
	c.hooks.StockMovement = append(c.hooks.StockMovement, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `stockmovement.Intercept(f(g(h())))`.
func (c *StockMovementClient) Intercept(interceptors ...Interceptor) {
	c.inters.StockMovement = append(c.inters.StockMovement, interceptors...)
}

// Create returns a builder for creating a StockMovement entity.
func (c *StockMovementClient) Create() *StockMovementCreate {
	mutation := newStockMovementMutation(c.config, OpCreate)
	return &StockMovementCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StockMovement entities.
func (c *StockMovementClient) CreateBulk(builders ...*StockMovementCreate) *StockMovementCreateBulk {
	return &StockMovementCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StockMovementClient) MapCreateBulk(slice any, setFunc func(*StockMovementCreate, int)) *StockMovementCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StockMovementCreateBulk{err: fmt.Errorf("calling to StockMovementClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StockMovementCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StockMovementCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StockMovement.
func (c *StockMovementClient) Update() *StockMovementUpdate {
	mutation := newStockMovementMutation(c.config, OpUpdate)
	return &StockMovementUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StockMovementClient) UpdateOne(_m *StockMovement) *StockMovementUpdateOne {
	mutation := newStockMovementMutation(c.config, OpUpdateOne, withStockMovement(_m))
	return &StockMovementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StockMovementClient) UpdateOneID(id uuid.UUID) *StockMovementUpdateOne {
	mutation := newStockMovementMutation(c.config, OpUpdateOne, withStockMovementID(id))
	return &StockMovementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StockMovement.
func (c *StockMovementClient) Delete() *StockMovementDelete {
	mutation := newStockMovementMutation(c.config, OpDelete)
	return &StockMovementDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StockMovementClient) DeleteOne(_m *StockMovement) *StockMovementDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StockMovementClient) DeleteOneID(id uuid.UUID) *StockMovementDeleteOne {
	builder := c.Delete().Where(stockmovement.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StockMovementDeleteOne{builder}
}

// Query returns a query builder for StockMovement.
func (c *StockMovementClient) Query() *StockMovementQuery {
	return &StockMovementQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStockMovement},
		inters: c.Interceptors(),
	}
}

// Get returns a StockMovement entity by its id.
func (c *StockMovementClient) Get(ctx context.Context, id uuid.UUID) (*StockMovement, error) {
	return c.Query().Where(stockmovement.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StockMovementClient) GetX(ctx context.Context, id uuid.UUID) *StockMovement {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StockMovementClient) Hooks() []Hook {
	return c.hooks.StockMovement
}

// Interceptors returns the client interceptors.
func (c *StockMovementClient) Interceptors() []Interceptor {
	return c.inters.StockMovement
}

func (c *StockMovementClient) mutate(ctx context.Context, m *StockMovementMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StockMovementCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StockMovementUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StockMovementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StockMovementDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StockMovement mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		CatalogEntry, ImportFile, ImportJob, RecipeSheet, StockMovement []ent.Hook
	}
	inters struct {
		CatalogEntry, ImportFile, ImportJob, RecipeSheet,
		StockMovement []ent.Interceptor
	}
)
