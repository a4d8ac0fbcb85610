// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/atriumhq/atrium_backend/internal/repo/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/atriumhq/atrium_backend/internal/repo/blogcategory"
	"github.com/atriumhq/atrium_backend/internal/repo/blogpost"
	"github.com/atriumhq/atrium_backend/internal/repo/inquiry"
	"github.com/atriumhq/atrium_backend/internal/repo/inquiryreply"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// BlogCategory is the client for interacting with the BlogCategory builders.
	BlogCategory *BlogCategoryClient
	// BlogPost is the client for interacting with the BlogPost builders.
	BlogPost *BlogPostClient
	// Inquiry is the client for interacting with the Inquiry builders.
	Inquiry *InquiryClient
	// InquiryReply is the client for interacting with the InquiryReply builders.
	InquiryReply *InquiryReplyClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.BlogCategory = NewBlogCategoryClient(c.config)
	c.BlogPost = NewBlogPostClient(c.config)
	c.Inquiry = NewInquiryClient(c.config)
	c.InquiryReply = NewInquiryReplyClient(c.config)
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
		ctx:          ctx,
		config:       cfg,
		BlogCategory: NewBlogCategoryClient(cfg),
		BlogPost:     NewBlogPostClient(cfg),
		Inquiry:      NewInquiryClient(cfg),
		InquiryReply: NewInquiryReplyClient(cfg),
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
		BlogCategory: NewBlogCategoryClient(cfg),
		BlogPost:     NewBlogPostClient(cfg),
		Inquiry:      NewInquiryClient(cfg),
		InquiryReply: NewInquiryReplyClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		BlogCategory.
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
	c.BlogCategory.Use(hooks...)
	c.BlogPost.Use(hooks...)
	c.Inquiry.Use(hooks...)
	c.InquiryReply.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.BlogCategory.Intercept(interceptors...)
	c.BlogPost.Intercept(interceptors...)
	c.Inquiry.Intercept(interceptors...)
	c.InquiryReply.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *BlogCategoryMutation:
		return c.BlogCategory.mutate(ctx, m)
	case *BlogPostMutation:
		return c.BlogPost.mutate(ctx, m)
	case *InquiryMutation:
		return c.Inquiry.mutate(ctx, m)
	case *InquiryReplyMutation:
		return c.InquiryReply.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("repo: unknown mutation type %T", m)
	}
}

// BlogCategoryClient is a client for the BlogCategory schema.
type BlogCategoryClient struct {
	config
}

// NewBlogCategoryClient returns a client for the BlogCategory from the given config.
func NewBlogCategoryClient(c config) *BlogCategoryClient {
	return &BlogCategoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `blogcategory.Hooks(f(g(h())))`.
func (c *BlogCategoryClient) Use(hooks ...Hook) {
	c.hooks.BlogCategory = append(c.hooks.BlogCategory, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `blogcategory.Intercept(f(g(h())))`.
func (c *BlogCategoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.BlogCategory = append(c.inters.BlogCategory, interceptors...)
}

// Create returns a builder for creating a BlogCategory entity.
func (c *BlogCategoryClient) Create() *BlogCategoryCreate {
	mutation := newBlogCategoryMutation(c.config, OpCreate)
	return &BlogCategoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BlogCategory entities.
func (c *BlogCategoryClient) CreateBulk(builders ...*BlogCategoryCreate) *BlogCategoryCreateBulk {
	return &BlogCategoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BlogCategoryClient) MapCreateBulk(slice any, setFunc func(*BlogCategoryCreate, int)) *BlogCategoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BlogCategoryCreateBulk{err: fmt.Errorf("calling to BlogCategoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BlogCategoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BlogCategoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BlogCategory.
func (c *BlogCategoryClient) Update() *BlogCategoryUpdate {
	mutation := newBlogCategoryMutation(c.config, OpUpdate)
	return &BlogCategoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BlogCategoryClient) UpdateOne(_m *BlogCategory) *BlogCategoryUpdateOne {
	mutation := newBlogCategoryMutation(c.config, OpUpdateOne, withBlogCategory(_m))
	return &BlogCategoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BlogCategoryClient) UpdateOneID(id uuid.UUID) *BlogCategoryUpdateOne {
	mutation := newBlogCategoryMutation(c.config, OpUpdateOne, withBlogCategoryID(id))
	return &BlogCategoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BlogCategory.
func (c *BlogCategoryClient) Delete() *BlogCategoryDelete {
	mutation := newBlogCategoryMutation(c.config, OpDelete)
	return &BlogCategoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BlogCategoryClient) DeleteOne(_m *BlogCategory) *BlogCategoryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BlogCategoryClient) DeleteOneID(id uuid.UUID) *BlogCategoryDeleteOne {
	builder := c.Delete().Where(blogcategory.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BlogCategoryDeleteOne{builder}
}

// Query returns a query builder for BlogCategory.
func (c *BlogCategoryClient) Query() *BlogCategoryQuery {
	return &BlogCategoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBlogCategory},
		inters: c.Interceptors(),
	}
}

// Get returns a BlogCategory entity by its id.
func (c *BlogCategoryClient) Get(ctx context.Context, id uuid.UUID) (*BlogCategory, error) {
	return c.Query().Where(blogcategory.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BlogCategoryClient) GetX(ctx context.Context, id uuid.UUID) *BlogCategory {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPosts queries the posts edge of a BlogCategory.
func (c *BlogCategoryClient) QueryPosts(_m *BlogCategory) *BlogPostQuery {
	query := (&BlogPostClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(blogcategory.Table, blogcategory.FieldID, id),
			sqlgraph.To(blogpost.Table, blogpost.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, blogcategory.PostsTable, blogcategory.PostsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BlogCategoryClient) Hooks() []Hook {
	return c.hooks.BlogCategory
}

// Interceptors returns the client interceptors.
func (c *BlogCategoryClient) Interceptors() []Interceptor {
	return c.inters.BlogCategory
}

func (c *BlogCategoryClient) mutate(ctx context.Context, m *BlogCategoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BlogCategoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BlogCategoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BlogCategoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BlogCategoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown BlogCategory mutation op: %q", m.Op())
	}
}

// BlogPostClient is a client for the BlogPost schema.
type BlogPostClient struct {
	config
}

// NewBlogPostClient returns a client for the BlogPost from the given config.
func NewBlogPostClient(c config) *BlogPostClient {
	return &BlogPostClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `blogpost.Hooks(f(g(h())))`.
func (c *BlogPostClient) Use(hooks ...Hook) {
	c.hooks.BlogPost = append(c.hooks.BlogPost, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `blogpost.Intercept(f(g(h())))`.
func (c *BlogPostClient) Intercept(interceptors ...Interceptor) {
	c.inters.BlogPost = append(c.inters.BlogPost, interceptors...)
}

// Create returns a builder for creating a BlogPost entity.
func (c *BlogPostClient) Create() *BlogPostCreate {
	mutation := newBlogPostMutation(c.config, OpCreate)
	return &BlogPostCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BlogPost entities.
func (c *BlogPostClient) CreateBulk(builders ...*BlogPostCreate) *BlogPostCreateBulk {
	return &BlogPostCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BlogPostClient) MapCreateBulk(slice any, setFunc func(*BlogPostCreate, int)) *BlogPostCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BlogPostCreateBulk{err: fmt.Errorf("calling to BlogPostClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BlogPostCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BlogPostCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BlogPost.
func (c *BlogPostClient) Update() *BlogPostUpdate {
	mutation := newBlogPostMutation(c.config, OpUpdate)
	return &BlogPostUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BlogPostClient) UpdateOne(_m *BlogPost) *BlogPostUpdateOne {
	mutation := newBlogPostMutation(c.config, OpUpdateOne, withBlogPost(_m))
	return &BlogPostUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BlogPostClient) UpdateOneID(id uuid.UUID) *BlogPostUpdateOne {
	mutation := newBlogPostMutation(c.config, OpUpdateOne, withBlogPostID(id))
	return &BlogPostUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BlogPost.
func (c *BlogPostClient) Delete() *BlogPostDelete {
	mutation := newBlogPostMutation(c.config, OpDelete)
	return &BlogPostDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BlogPostClient) DeleteOne(_m *BlogPost) *BlogPostDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BlogPostClient) DeleteOneID(id uuid.UUID) *BlogPostDeleteOne {
	builder := c.Delete().Where(blogpost.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BlogPostDeleteOne{builder}
}

// Query returns a query builder for BlogPost.
func (c *BlogPostClient) Query() *BlogPostQuery {
	return &BlogPostQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBlogPost},
		inters: c.Interceptors(),
	}
}

// Get returns a BlogPost entity by its id.
func (c *BlogPostClient) Get(ctx context.Context, id uuid.UUID) (*BlogPost, error) {
	return c.Query().Where(blogpost.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BlogPostClient) GetX(ctx context.Context, id uuid.UUID) *BlogPost {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCategory queries the category edge of a BlogPost.
func (c *BlogPostClient) QueryCategory(_m *BlogPost) *BlogCategoryQuery {
	query := (&BlogCategoryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(blogpost.Table, blogpost.FieldID, id),
			sqlgraph.To(blogcategory.Table, blogcategory.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, blogpost.CategoryTable, blogpost.CategoryColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BlogPostClient) Hooks() []Hook {
	return c.hooks.BlogPost
}

// Interceptors returns the client interceptors.
func (c *BlogPostClient) Interceptors() []Interceptor {
	return c.inters.BlogPost
}

func (c *BlogPostClient) mutate(ctx context.Context, m *BlogPostMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BlogPostCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BlogPostUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BlogPostUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BlogPostDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown BlogPost mutation op: %q", m.Op())
	}
}

// InquiryClient is a client for the Inquiry schema.
type InquiryClient struct {
	config
}

// NewInquiryClient returns a client for the Inquiry from the given config.
func NewInquiryClient(c config) *InquiryClient {
	return &InquiryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `inquiry.Hooks(f(g(h())))`.
func (c *InquiryClient) Use(hooks ...Hook) {
	c.hooks.Inquiry = append(c.hooks.Inquiry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `inquiry.Intercept(f(g(h())))`.
func (c *InquiryClient) Intercept(interceptors ...Interceptor) {
	c.inters.Inquiry = append(c.inters.Inquiry, interceptors...)
}

// Create returns a builder for creating a Inquiry entity.
func (c *InquiryClient) Create() *InquiryCreate {
	mutation := newInquiryMutation(c.config, OpCreate)
	return &InquiryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Inquiry entities.
func (c *InquiryClient) CreateBulk(builders ...*InquiryCreate) *InquiryCreateBulk {
	return &InquiryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InquiryClient) MapCreateBulk(slice any, setFunc func(*InquiryCreate, int)) *InquiryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InquiryCreateBulk{err: fmt.Errorf("calling to InquiryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InquiryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InquiryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Inquiry.
func (c *InquiryClient) Update() *InquiryUpdate {
	mutation := newInquiryMutation(c.config, OpUpdate)
	return &InquiryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InquiryClient) UpdateOne(_m *Inquiry) *InquiryUpdateOne {
	mutation := newInquiryMutation(c.config, OpUpdateOne, withInquiry(_m))
	return &InquiryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InquiryClient) UpdateOneID(id uuid.UUID) *InquiryUpdateOne {
	mutation := newInquiryMutation(c.config, OpUpdateOne, withInquiryID(id))
	return &InquiryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Inquiry.
func (c *InquiryClient) Delete() *InquiryDelete {
	mutation := newInquiryMutation(c.config, OpDelete)
	return &InquiryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InquiryClient) DeleteOne(_m *Inquiry) *InquiryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InquiryClient) DeleteOneID(id uuid.UUID) *InquiryDeleteOne {
	builder := c.Delete().Where(inquiry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InquiryDeleteOne{builder}
}

// Query returns a query builder for Inquiry.
func (c *InquiryClient) Query() *InquiryQuery {
	return &InquiryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInquiry},
		inters: c.Interceptors(),
	}
}

// Get returns a Inquiry entity by its id.
func (c *InquiryClient) Get(ctx context.Context, id uuid.UUID) (*Inquiry, error) {
	return c.Query().Where(inquiry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InquiryClient) GetX(ctx context.Context, id uuid.UUID) *Inquiry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryReplies queries the replies edge of a Inquiry.
func (c *InquiryClient) QueryReplies(_m *Inquiry) *InquiryReplyQuery {
	query := (&InquiryReplyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(inquiry.Table, inquiry.FieldID, id),
			sqlgraph.To(inquiryreply.Table, inquiryreply.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, inquiry.RepliesTable, inquiry.RepliesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *InquiryClient) Hooks() []Hook {
	return c.hooks.Inquiry
}

// Interceptors returns the client interceptors.
func (c *InquiryClient) Interceptors() []Interceptor {
	return c.inters.Inquiry
}

func (c *InquiryClient) mutate(ctx context.Context, m *InquiryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InquiryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InquiryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InquiryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InquiryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Inquiry mutation op: %q", m.Op())
	}
}

// InquiryReplyClient is a client for the InquiryReply schema.
type InquiryReplyClient struct {
	config
}

// NewInquiryReplyClient returns a client for the InquiryReply from the given config.
func NewInquiryReplyClient(c config) *InquiryReplyClient {
	return &InquiryReplyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `inquiryreply.Hooks(f(g(h())))`.
func (c *InquiryReplyClient) Use(hooks ...Hook) {
	c.hooks.InquiryReply = append(c.hooks.InquiryReply, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `inquiryreply.Intercept(f(g(h())))`.
func (c *InquiryReplyClient) Intercept(interceptors ...Interceptor) {
	c.inters.InquiryReply = append(c.inters.InquiryReply, interceptors...)
}

// Create returns a builder for creating a InquiryReply entity.
func (c *InquiryReplyClient) Create() *InquiryReplyCreate {
	mutation := newInquiryReplyMutation(c.config, OpCreate)
	return &InquiryReplyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InquiryReply entities.
func (c *InquiryReplyClient) CreateBulk(builders ...*InquiryReplyCreate) *InquiryReplyCreateBulk {
	return &InquiryReplyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InquiryReplyClient) MapCreateBulk(slice any, setFunc func(*InquiryReplyCreate, int)) *InquiryReplyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InquiryReplyCreateBulk{err: fmt.Errorf("calling to InquiryReplyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InquiryReplyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InquiryReplyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InquiryReply.
func (c *InquiryReplyClient) Update() *InquiryReplyUpdate {
	mutation := newInquiryReplyMutation(c.config, OpUpdate)
	return &InquiryReplyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InquiryReplyClient) UpdateOne(_m *InquiryReply) *InquiryReplyUpdateOne {
	mutation := newInquiryReplyMutation(c.config, OpUpdateOne, withInquiryReply(_m))
	return &InquiryReplyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InquiryReplyClient) UpdateOneID(id uuid.UUID) *InquiryReplyUpdateOne {
	mutation := newInquiryReplyMutation(c.config, OpUpdateOne, withInquiryReplyID(id))
	return &InquiryReplyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InquiryReply.
func (c *InquiryReplyClient) Delete() *InquiryReplyDelete {
	mutation := newInquiryReplyMutation(c.config, OpDelete)
	return &InquiryReplyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InquiryReplyClient) DeleteOne(_m *InquiryReply) *InquiryReplyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InquiryReplyClient) DeleteOneID(id uuid.UUID) *InquiryReplyDeleteOne {
	builder := c.Delete().Where(inquiryreply.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InquiryReplyDeleteOne{builder}
}

// Query returns a query builder for InquiryReply.
func (c *InquiryReplyClient) Query() *InquiryReplyQuery {
	return &InquiryReplyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInquiryReply},
		inters: c.Interceptors(),
	}
}

// Get returns a InquiryReply entity by its id.
func (c *InquiryReplyClient) Get(ctx context.Context, id uuid.UUID) (*InquiryReply, error) {
	return c.Query().Where(inquiryreply.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InquiryReplyClient) GetX(ctx context.Context, id uuid.UUID) *InquiryReply {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryInquiry queries the inquiry edge of a InquiryReply.
func (c *InquiryReplyClient) QueryInquiry(_m *InquiryReply) *InquiryQuery {
	query := (&InquiryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(inquiryreply.Table, inquiryreply.FieldID, id),
			sqlgraph.To(inquiry.Table, inquiry.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, inquiryreply.InquiryTable, inquiryreply.InquiryColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *InquiryReplyClient) Hooks() []Hook {
	return c.hooks.InquiryReply
}

// Interceptors returns the client interceptors.
func (c *InquiryReplyClient) Interceptors() []Interceptor {
	return c.inters.InquiryReply
}

func (c *InquiryReplyClient) mutate(ctx context.Context, m *InquiryReplyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InquiryReplyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InquiryReplyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InquiryReplyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InquiryReplyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown InquiryReply mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		BlogCategory, BlogPost, Inquiry, InquiryReply []ent.Hook
	}
	inters struct {
		BlogCategory, BlogPost, Inquiry, InquiryReply []ent.Interceptor
	}
)
