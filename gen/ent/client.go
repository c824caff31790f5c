// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/dzadsearch/ads-ingest/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/dzadsearch/ads-ingest/gen/ent/announcement"
	"github.com/dzadsearch/ads-ingest/gen/ent/announcementtype"
	"github.com/dzadsearch/ads-ingest/gen/ent/businessline"
	"github.com/dzadsearch/ads-ingest/gen/ent/wilaya"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Announcement is the client for interacting with the Announcement builders.
	Announcement *AnnouncementClient
	// AnnouncementType is the client for interacting with the AnnouncementType builders.
	AnnouncementType *AnnouncementTypeClient
	// BusinessLine is the client for interacting with the BusinessLine builders.
	BusinessLine *BusinessLineClient
	// Wilaya is the client for interacting with the Wilaya builders.
	Wilaya *WilayaClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Announcement = NewAnnouncementClient(c.config)
	c.AnnouncementType = NewAnnouncementTypeClient(c.config)
	c.BusinessLine = NewBusinessLineClient(c.config)
	c.Wilaya = NewWilayaClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		Announcement:     NewAnnouncementClient(cfg),
		AnnouncementType: NewAnnouncementTypeClient(cfg),
		BusinessLine:     NewBusinessLineClient(cfg),
		Wilaya:           NewWilayaClient(cfg),
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
		Announcement:     NewAnnouncementClient(cfg),
		AnnouncementType: NewAnnouncementTypeClient(cfg),
		BusinessLine:     NewBusinessLineClient(cfg),
		Wilaya:           NewWilayaClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Announcement.
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
	c.Announcement.Use(hooks...)
	c.AnnouncementType.Use(hooks...)
	c.BusinessLine.Use(hooks...)
	c.Wilaya.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Announcement.Intercept(interceptors...)
	c.AnnouncementType.Intercept(interceptors...)
	c.BusinessLine.Intercept(interceptors...)
	c.Wilaya.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AnnouncementMutation:
		return c.Announcement.mutate(ctx, m)
	case *AnnouncementTypeMutation:
		return c.AnnouncementType.mutate(ctx, m)
	case *BusinessLineMutation:
		return c.BusinessLine.mutate(ctx, m)
	case *WilayaMutation:
		return c.Wilaya.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AnnouncementClient is a client for the Announcement schema.
type AnnouncementClient struct {
	config
}

// NewAnnouncementClient returns a client for the Announcement from the given config.
func NewAnnouncementClient(c config) *AnnouncementClient {
	return &AnnouncementClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `announcement.Hooks(f(g(h())))`.
func (c *AnnouncementClient) Use(hooks ...Hook) {
	c.hooks.Announcement = append(c.hooks.Announcement, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `announcement.Intercept(f(g(h())))`.
func (c *AnnouncementClient) Intercept(interceptors ...Interceptor) {
	c.inters.Announcement = append(c.inters.Announcement, interceptors...)
}

// Create returns a builder for creating a Announcement entity.
func (c *AnnouncementClient) Create() *AnnouncementCreate {
	mutation := newAnnouncementMutation(c.config, OpCreate)
	return &AnnouncementCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Announcement entities.
func (c *AnnouncementClient) CreateBulk(builders ...*AnnouncementCreate) *AnnouncementCreateBulk {
	return &AnnouncementCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnnouncementClient) MapCreateBulk(slice any, setFunc func(*AnnouncementCreate, int)) *AnnouncementCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnnouncementCreateBulk{err: fmt.Errorf("calling to AnnouncementClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnnouncementCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnnouncementCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Announcement.
func (c *AnnouncementClient) Update() *AnnouncementUpdate {
	mutation := newAnnouncementMutation(c.config, OpUpdate)
	return &AnnouncementUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnnouncementClient) UpdateOne(_m *Announcement) *AnnouncementUpdateOne {
	mutation := newAnnouncementMutation(c.config, OpUpdateOne, withAnnouncement(_m))
	return &AnnouncementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnnouncementClient) UpdateOneID(id uuid.UUID) *AnnouncementUpdateOne {
	mutation := newAnnouncementMutation(c.config, OpUpdateOne, withAnnouncementID(id))
	return &AnnouncementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Announcement.
func (c *AnnouncementClient) Delete() *AnnouncementDelete {
	mutation := newAnnouncementMutation(c.config, OpDelete)
	return &AnnouncementDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnnouncementClient) DeleteOne(_m *Announcement) *AnnouncementDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnnouncementClient) DeleteOneID(id uuid.UUID) *AnnouncementDeleteOne {
	builder := c.Delete().Where(announcement.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnnouncementDeleteOne{builder}
}

// Query returns a query builder for Announcement.
func (c *AnnouncementClient) Query() *AnnouncementQuery {
	return &AnnouncementQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnnouncement},
		inters: c.Interceptors(),
	}
}

// Get returns a Announcement entity by its id.
func (c *AnnouncementClient) Get(ctx context.Context, id uuid.UUID) (*Announcement, error) {
	return c.Query().Where(announcement.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnnouncementClient) GetX(ctx context.Context, id uuid.UUID) *Announcement {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWilaya queries the wilaya edge of a Announcement.
func (c *AnnouncementClient) QueryWilaya(_m *Announcement) *WilayaQuery {
	query := (&WilayaClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(announcement.Table, announcement.FieldID, id),
			sqlgraph.To(wilaya.Table, wilaya.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, announcement.WilayaTable, announcement.WilayaColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryBusinessLine queries the business_line edge of a Announcement.
func (c *AnnouncementClient) QueryBusinessLine(_m *Announcement) *BusinessLineQuery {
	query := (&BusinessLineClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(announcement.Table, announcement.FieldID, id),
			sqlgraph.To(businessline.Table, businessline.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, announcement.BusinessLineTable, announcement.BusinessLineColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAnnouncementType queries the announcement_type edge of a Announcement.
func (c *AnnouncementClient) QueryAnnouncementType(_m *Announcement) *AnnouncementTypeQuery {
	query := (&AnnouncementTypeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(announcement.Table, announcement.FieldID, id),
			sqlgraph.To(announcementtype.Table, announcementtype.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, announcement.AnnouncementTypeTable, announcement.AnnouncementTypeColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AnnouncementClient) Hooks() []Hook {
	return c.hooks.Announcement
}

// Interceptors returns the client interceptors.
func (c *AnnouncementClient) Interceptors() []Interceptor {
	return c.inters.Announcement
}

func (c *AnnouncementClient) mutate(ctx context.Context, m *AnnouncementMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnnouncementCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnnouncementUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnnouncementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnnouncementDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Announcement mutation op: %q", m.Op())
	}
}

// AnnouncementTypeClient is a client for the AnnouncementType schema.
type AnnouncementTypeClient struct {
	config
}

// NewAnnouncementTypeClient returns a client for the AnnouncementType from the given config.
func NewAnnouncementTypeClient(c config) *AnnouncementTypeClient {
	return &AnnouncementTypeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `announcementtype.Hooks(f(g(h())))`.
func (c *AnnouncementTypeClient) Use(hooks ...Hook) {
	c.hooks.AnnouncementType = append(c.hooks.AnnouncementType, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `announcementtype.Intercept(f(g(h())))`.
func (c *AnnouncementTypeClient) Intercept(interceptors ...Interceptor) {
	c.inters.AnnouncementType = append(c.inters.AnnouncementType, interceptors...)
}

// Create returns a builder for creating a AnnouncementType entity.
func (c *AnnouncementTypeClient) Create() *AnnouncementTypeCreate {
	mutation := newAnnouncementTypeMutation(c.config, OpCreate)
	return &AnnouncementTypeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AnnouncementType entities.
func (c *AnnouncementTypeClient) CreateBulk(builders ...*AnnouncementTypeCreate) *AnnouncementTypeCreateBulk {
	return &AnnouncementTypeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnnouncementTypeClient) MapCreateBulk(slice any, setFunc func(*AnnouncementTypeCreate, int)) *AnnouncementTypeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnnouncementTypeCreateBulk{err: fmt.Errorf("calling to AnnouncementTypeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnnouncementTypeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnnouncementTypeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AnnouncementType.
func (c *AnnouncementTypeClient) Update() *AnnouncementTypeUpdate {
	mutation := newAnnouncementTypeMutation(c.config, OpUpdate)
	return &AnnouncementTypeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnnouncementTypeClient) UpdateOne(_m *AnnouncementType) *AnnouncementTypeUpdateOne {
	mutation := newAnnouncementTypeMutation(c.config, OpUpdateOne, withAnnouncementType(_m))
	return &AnnouncementTypeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnnouncementTypeClient) UpdateOneID(id int) *AnnouncementTypeUpdateOne {
	mutation := newAnnouncementTypeMutation(c.config, OpUpdateOne, withAnnouncementTypeID(id))
	return &AnnouncementTypeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AnnouncementType.
func (c *AnnouncementTypeClient) Delete() *AnnouncementTypeDelete {
	mutation := newAnnouncementTypeMutation(c.config, OpDelete)
	return &AnnouncementTypeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnnouncementTypeClient) DeleteOne(_m *AnnouncementType) *AnnouncementTypeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnnouncementTypeClient) DeleteOneID(id int) *AnnouncementTypeDeleteOne {
	builder := c.Delete().Where(announcementtype.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnnouncementTypeDeleteOne{builder}
}

// Query returns a query builder for AnnouncementType.
func (c *AnnouncementTypeClient) Query() *AnnouncementTypeQuery {
	return &AnnouncementTypeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnnouncementType},
		inters: c.Interceptors(),
	}
}

// Get returns a AnnouncementType entity by its id.
func (c *AnnouncementTypeClient) Get(ctx context.Context, id int) (*AnnouncementType, error) {
	return c.Query().Where(announcementtype.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnnouncementTypeClient) GetX(ctx context.Context, id int) *AnnouncementType {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAnnouncements queries the announcements edge of a AnnouncementType.
func (c *AnnouncementTypeClient) QueryAnnouncements(_m *AnnouncementType) *AnnouncementQuery {
	query := (&AnnouncementClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(announcementtype.Table, announcementtype.FieldID, id),
			sqlgraph.To(announcement.Table, announcement.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, announcementtype.AnnouncementsTable, announcementtype.AnnouncementsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AnnouncementTypeClient) Hooks() []Hook {
	return c.hooks.AnnouncementType
}

// Interceptors returns the client interceptors.
func (c *AnnouncementTypeClient) Interceptors() []Interceptor {
	return c.inters.AnnouncementType
}

func (c *AnnouncementTypeClient) mutate(ctx context.Context, m *AnnouncementTypeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnnouncementTypeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnnouncementTypeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnnouncementTypeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnnouncementTypeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AnnouncementType mutation op: %q", m.Op())
	}
}

// BusinessLineClient is a client for the BusinessLine schema.
type BusinessLineClient struct {
	config
}

// NewBusinessLineClient returns a client for the BusinessLine from the given config.
func NewBusinessLineClient(c config) *BusinessLineClient {
	return &BusinessLineClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `businessline.Hooks(f(g(h())))`.
func (c *BusinessLineClient) Use(hooks ...Hook) {
	c.hooks.BusinessLine = append(c.hooks.BusinessLine, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `businessline.Intercept(f(g(h())))`.
func (c *BusinessLineClient) Intercept(interceptors ...Interceptor) {
	c.inters.BusinessLine = append(c.inters.BusinessLine, interceptors...)
}

// Create returns a builder for creating a BusinessLine entity.
func (c *BusinessLineClient) Create() *BusinessLineCreate {
	mutation := newBusinessLineMutation(c.config, OpCreate)
	return &BusinessLineCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BusinessLine entities.
func (c *BusinessLineClient) CreateBulk(builders ...*BusinessLineCreate) *BusinessLineCreateBulk {
	return &BusinessLineCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BusinessLineClient) MapCreateBulk(slice any, setFunc func(*BusinessLineCreate, int)) *BusinessLineCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BusinessLineCreateBulk{err: fmt.Errorf("calling to BusinessLineClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BusinessLineCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BusinessLineCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BusinessLine.
func (c *BusinessLineClient) Update() *BusinessLineUpdate {
	mutation := newBusinessLineMutation(c.config, OpUpdate)
	return &BusinessLineUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BusinessLineClient) UpdateOne(_m *BusinessLine) *BusinessLineUpdateOne {
	mutation := newBusinessLineMutation(c.config, OpUpdateOne, withBusinessLine(_m))
	return &BusinessLineUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BusinessLineClient) UpdateOneID(id int) *BusinessLineUpdateOne {
	mutation := newBusinessLineMutation(c.config, OpUpdateOne, withBusinessLineID(id))
	return &BusinessLineUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BusinessLine.
func (c *BusinessLineClient) Delete() *BusinessLineDelete {
	mutation := newBusinessLineMutation(c.config, OpDelete)
	return &BusinessLineDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BusinessLineClient) DeleteOne(_m *BusinessLine) *BusinessLineDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BusinessLineClient) DeleteOneID(id int) *BusinessLineDeleteOne {
	builder := c.Delete().Where(businessline.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BusinessLineDeleteOne{builder}
}

// Query returns a query builder for BusinessLine.
func (c *BusinessLineClient) Query() *BusinessLineQuery {
	return &BusinessLineQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBusinessLine},
		inters: c.Interceptors(),
	}
}

// Get returns a BusinessLine entity by its id.
func (c *BusinessLineClient) Get(ctx context.Context, id int) (*BusinessLine, error) {
	return c.Query().Where(businessline.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BusinessLineClient) GetX(ctx context.Context, id int) *BusinessLine {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAnnouncements queries the announcements edge of a BusinessLine.
func (c *BusinessLineClient) QueryAnnouncements(_m *BusinessLine) *AnnouncementQuery {
	query := (&AnnouncementClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(businessline.Table, businessline.FieldID, id),
			sqlgraph.To(announcement.Table, announcement.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, businessline.AnnouncementsTable, businessline.AnnouncementsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BusinessLineClient) Hooks() []Hook {
	return c.hooks.BusinessLine
}

// Interceptors returns the client interceptors.
func (c *BusinessLineClient) Interceptors() []Interceptor {
	return c.inters.BusinessLine
}

func (c *BusinessLineClient) mutate(ctx context.Context, m *BusinessLineMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BusinessLineCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BusinessLineUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BusinessLineUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BusinessLineDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BusinessLine mutation op: %q", m.Op())
	}
}

// WilayaClient is a client for the Wilaya schema.
type WilayaClient struct {
	config
}

// NewWilayaClient returns a client for the Wilaya from the given config.
func NewWilayaClient(c config) *WilayaClient {
	return &WilayaClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `wilaya.Hooks(f(g(h())))`.
func (c *WilayaClient) Use(hooks ...Hook) {
	c.hooks.Wilaya = append(c.hooks.Wilaya, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `wilaya.Intercept(f(g(h())))`.
func (c *WilayaClient) Intercept(interceptors ...Interceptor) {
	c.inters.Wilaya = append(c.inters.Wilaya, interceptors...)
}

// Create returns a builder for creating a Wilaya entity.
func (c *WilayaClient) Create() *WilayaCreate {
	mutation := newWilayaMutation(c.config, OpCreate)
	return &WilayaCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Wilaya entities.
func (c *WilayaClient) CreateBulk(builders ...*WilayaCreate) *WilayaCreateBulk {
	return &WilayaCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WilayaClient) MapCreateBulk(slice any, setFunc func(*WilayaCreate, int)) *WilayaCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WilayaCreateBulk{err: fmt.Errorf("calling to WilayaClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WilayaCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WilayaCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Wilaya.
func (c *WilayaClient) Update() *WilayaUpdate {
	mutation := newWilayaMutation(c.config, OpUpdate)
	return &WilayaUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WilayaClient) UpdateOne(_m *Wilaya) *WilayaUpdateOne {
	mutation := newWilayaMutation(c.config, OpUpdateOne, withWilaya(_m))
	return &WilayaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WilayaClient) UpdateOneID(id int) *WilayaUpdateOne {
	mutation := newWilayaMutation(c.config, OpUpdateOne, withWilayaID(id))
	return &WilayaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Wilaya.
func (c *WilayaClient) Delete() *WilayaDelete {
	mutation := newWilayaMutation(c.config, OpDelete)
	return &WilayaDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WilayaClient) DeleteOne(_m *Wilaya) *WilayaDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WilayaClient) DeleteOneID(id int) *WilayaDeleteOne {
	builder := c.Delete().Where(wilaya.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WilayaDeleteOne{builder}
}

// Query returns a query builder for Wilaya.
func (c *WilayaClient) Query() *WilayaQuery {
	return &WilayaQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWilaya},
		inters: c.Interceptors(),
	}
}

// Get returns a Wilaya entity by its id.
func (c *WilayaClient) Get(ctx context.Context, id int) (*Wilaya, error) {
	return c.Query().Where(wilaya.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WilayaClient) GetX(ctx context.Context, id int) *Wilaya {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAnnouncements queries the announcements edge of a Wilaya.
func (c *WilayaClient) QueryAnnouncements(_m *Wilaya) *AnnouncementQuery {
	query := (&AnnouncementClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(wilaya.Table, wilaya.FieldID, id),
			sqlgraph.To(announcement.Table, announcement.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, wilaya.AnnouncementsTable, wilaya.AnnouncementsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WilayaClient) Hooks() []Hook {
	return c.hooks.Wilaya
}

// Interceptors returns the client interceptors.
func (c *WilayaClient) Interceptors() []Interceptor {
	return c.inters.Wilaya
}

func (c *WilayaClient) mutate(ctx context.Context, m *WilayaMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WilayaCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WilayaUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WilayaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WilayaDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Wilaya mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Announcement, AnnouncementType, BusinessLine, Wilaya []ent.Hook
	}
	inters struct {
		Announcement, AnnouncementType, BusinessLine, Wilaya []ent.Interceptor
	}
)
