// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/apratap/adept/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/apratap/adept/ent/achievement"
	"github.com/apratap/adept/ent/practicerecord"
	"github.com/apratap/adept/ent/practicesession"
	"github.com/apratap/adept/ent/userconcept"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Achievement is the client for interacting with the Achievement builders.
	Achievement *AchievementClient
	// PracticeRecord is the client for interacting with the PracticeRecord builders.
	PracticeRecord *PracticeRecordClient
	// PracticeSession is the client for interacting with the PracticeSession builders.
	PracticeSession *PracticeSessionClient
	// UserConcept is the client for interacting with the UserConcept builders.
	UserConcept *UserConceptClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Achievement = NewAchievementClient(c.config)
	c.PracticeRecord = NewPracticeRecordClient(c.config)
	c.PracticeSession = NewPracticeSessionClient(c.config)
	c.UserConcept = NewUserConceptClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		Achievement:     NewAchievementClient(cfg),
		PracticeRecord:  NewPracticeRecordClient(cfg),
		PracticeSession: NewPracticeSessionClient(cfg),
		UserConcept:     NewUserConceptClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		Achievement:     NewAchievementClient(cfg),
		PracticeRecord:  NewPracticeRecordClient(cfg),
		PracticeSession: NewPracticeSessionClient(cfg),
		UserConcept:     NewUserConceptClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Achievement.
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
	c.Achievement.Use(hooks...)
	c.PracticeRecord.Use(hooks...)
	c.PracticeSession.Use(hooks...)
	c.UserConcept.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Achievement.Intercept(interceptors...)
	c.PracticeRecord.Intercept(interceptors...)
	c.PracticeSession.Intercept(interceptors...)
	c.UserConcept.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AchievementMutation:
		return c.Achievement.mutate(ctx, m)
	case *PracticeRecordMutation:
		return c.PracticeRecord.mutate(ctx, m)
	case *PracticeSessionMutation:
		return c.PracticeSession.mutate(ctx, m)
	case *UserConceptMutation:
		return c.UserConcept.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AchievementClient is a client for the Achievement schema.
type AchievementClient struct {
	config
}

// NewAchievementClient returns a client for the Achievement from the given config.
func NewAchievementClient(c config) *AchievementClient {
	return &AchievementClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `achievement.Hooks(f(g(h())))`.
func (c *AchievementClient) Use(hooks ...Hook) {
	c.hooks.Achievement = append(c.hooks.Achievement, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `achievement.Intercept(f(g(h())))`.
func (c *AchievementClient) Intercept(interceptors ...Interceptor) {
	c.inters.Achievement = append(c.inters.Achievement, interceptors...)
}

// Create returns a builder for creating a Achievement entity.
func (c *AchievementClient) Create() *AchievementCreate {
	mutation := newAchievementMutation(c.config, OpCreate)
	return &AchievementCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Achievement entities.
func (c *AchievementClient) CreateBulk(builders ...*AchievementCreate) *AchievementCreateBulk {
	return &AchievementCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AchievementClient) MapCreateBulk(slice any, setFunc func(*AchievementCreate, int)) *AchievementCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AchievementCreateBulk{err: fmt.Errorf("calling to AchievementClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AchievementCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AchievementCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Achievement.
func (c *AchievementClient) Update() *AchievementUpdate {
	mutation := newAchievementMutation(c.config, OpUpdate)
	return &AchievementUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AchievementClient) UpdateOne(_m *Achievement) *AchievementUpdateOne {
	mutation := newAchievementMutation(c.config, OpUpdateOne, withAchievement(_m))
	return &AchievementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AchievementClient) UpdateOneID(id int) *AchievementUpdateOne {
	mutation := newAchievementMutation(c.config, OpUpdateOne, withAchievementID(id))
	return &AchievementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Achievement.
func (c *AchievementClient) Delete() *AchievementDelete {
	mutation := newAchievementMutation(c.config, OpDelete)
	return &AchievementDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AchievementClient) DeleteOne(_m *Achievement) *AchievementDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AchievementClient) DeleteOneID(id int) *AchievementDeleteOne {
	builder := c.Delete().Where(achievement.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AchievementDeleteOne{builder}
}

// Query returns a query builder for Achievement.
func (c *AchievementClient) Query() *AchievementQuery {
	return &AchievementQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAchievement},
		inters: c.Interceptors(),
	}
}

// Get returns a Achievement entity by its id.
func (c *AchievementClient) Get(ctx context.Context, id int) (*Achievement, error) {
	return c.Query().Where(achievement.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AchievementClient) GetX(ctx context.Context, id int) *Achievement {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AchievementClient) Hooks() []Hook {
	return c.hooks.Achievement
}

// Interceptors returns the client interceptors.
func (c *AchievementClient) Interceptors() []Interceptor {
	return c.inters.Achievement
}

func (c *AchievementClient) mutate(ctx context.Context, m *AchievementMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AchievementCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AchievementUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AchievementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AchievementDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Achievement mutation op: %q", m.Op())
	}
}

// PracticeRecordClient is a client for the PracticeRecord schema.
type PracticeRecordClient struct {
	config
}

// NewPracticeRecordClient returns a client for the PracticeRecord from the given config.
func NewPracticeRecordClient(c config) *PracticeRecordClient {
	return &PracticeRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `practicerecord.Hooks(f(g(h())))`.
func (c *PracticeRecordClient) Use(hooks ...Hook) {
	c.hooks.PracticeRecord = append(c.hooks.PracticeRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `practicerecord.Intercept(f(g(h())))`.
func (c *PracticeRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.PracticeRecord = append(c.inters.PracticeRecord, interceptors...)
}

// Create returns a builder for creating a PracticeRecord entity.
func (c *PracticeRecordClient) Create() *PracticeRecordCreate {
	mutation := newPracticeRecordMutation(c.config, OpCreate)
	return &PracticeRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PracticeRecord entities.
func (c *PracticeRecordClient) CreateBulk(builders ...*PracticeRecordCreate) *PracticeRecordCreateBulk {
	return &PracticeRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PracticeRecordClient) MapCreateBulk(slice any, setFunc func(*PracticeRecordCreate, int)) *PracticeRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PracticeRecordCreateBulk{err: fmt.Errorf("calling to PracticeRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PracticeRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PracticeRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PracticeRecord.
func (c *PracticeRecordClient) Update() *PracticeRecordUpdate {
	mutation := newPracticeRecordMutation(c.config, OpUpdate)
	return &PracticeRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PracticeRecordClient) UpdateOne(_m *PracticeRecord) *PracticeRecordUpdateOne {
	mutation := newPracticeRecordMutation(c.config, OpUpdateOne, withPracticeRecord(_m))
	return &PracticeRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PracticeRecordClient) UpdateOneID(id int) *PracticeRecordUpdateOne {
	mutation := newPracticeRecordMutation(c.config, OpUpdateOne, withPracticeRecordID(id))
	return &PracticeRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PracticeRecord.
func (c *PracticeRecordClient) Delete() *PracticeRecordDelete {
	mutation := newPracticeRecordMutation(c.config, OpDelete)
	return &PracticeRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PracticeRecordClient) DeleteOne(_m *PracticeRecord) *PracticeRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PracticeRecordClient) DeleteOneID(id int) *PracticeRecordDeleteOne {
	builder := c.Delete().Where(practicerecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PracticeRecordDeleteOne{builder}
}

// Query returns a query builder for PracticeRecord.
func (c *PracticeRecordClient) Query() *PracticeRecordQuery {
	return &PracticeRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePracticeRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a PracticeRecord entity by its id.
func (c *PracticeRecordClient) Get(ctx context.Context, id int) (*PracticeRecord, error) {
	return c.Query().Where(practicerecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PracticeRecordClient) GetX(ctx context.Context, id int) *PracticeRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PracticeRecordClient) Hooks() []Hook {
	return c.hooks.PracticeRecord
}

// Interceptors returns the client interceptors.
func (c *PracticeRecordClient) Interceptors() []Interceptor {
	return c.inters.PracticeRecord
}

func (c *PracticeRecordClient) mutate(ctx context.Context, m *PracticeRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PracticeRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PracticeRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PracticeRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PracticeRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PracticeRecord mutation op: %q", m.Op())
	}
}

// PracticeSessionClient is a client for the PracticeSession schema.
type PracticeSessionClient struct {
	config
}

// NewPracticeSessionClient returns a client for the PracticeSession from the given config.
func NewPracticeSessionClient(c config) *PracticeSessionClient {
	return &PracticeSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `practicesession.Hooks(f(g(h())))`.
func (c *PracticeSessionClient) Use(hooks ...Hook) {
	c.hooks.PracticeSession = append(c.hooks.PracticeSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `practicesession.Intercept(f(g(h())))`.
func (c *PracticeSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.PracticeSession = append(c.inters.PracticeSession, interceptors...)
}

// Create returns a builder for creating a PracticeSession entity.
func (c *PracticeSessionClient) Create() *PracticeSessionCreate {
	mutation := newPracticeSessionMutation(c.config, OpCreate)
	return &PracticeSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PracticeSession entities.
func (c *PracticeSessionClient) CreateBulk(builders ...*PracticeSessionCreate) *PracticeSessionCreateBulk {
	return &PracticeSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PracticeSessionClient) MapCreateBulk(slice any, setFunc func(*PracticeSessionCreate, int)) *PracticeSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PracticeSessionCreateBulk{err: fmt.Errorf("calling to PracticeSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PracticeSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PracticeSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PracticeSession.
func (c *PracticeSessionClient) Update() *PracticeSessionUpdate {
	mutation := newPracticeSessionMutation(c.config, OpUpdate)
	return &PracticeSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PracticeSessionClient) UpdateOne(_m *PracticeSession) *PracticeSessionUpdateOne {
	mutation := newPracticeSessionMutation(c.config, OpUpdateOne, withPracticeSession(_m))
	return &PracticeSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PracticeSessionClient) UpdateOneID(id string) *PracticeSessionUpdateOne {
	mutation := newPracticeSessionMutation(c.config, OpUpdateOne, withPracticeSessionID(id))
	return &PracticeSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PracticeSession.
func (c *PracticeSessionClient) Delete() *PracticeSessionDelete {
	mutation := newPracticeSessionMutation(c.config, OpDelete)
	return &PracticeSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PracticeSessionClient) DeleteOne(_m *PracticeSession) *PracticeSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PracticeSessionClient) DeleteOneID(id string) *PracticeSessionDeleteOne {
	builder := c.Delete().Where(practicesession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PracticeSessionDeleteOne{builder}
}

// Query returns a query builder for PracticeSession.
func (c *PracticeSessionClient) Query() *PracticeSessionQuery {
	return &PracticeSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePracticeSession},
		inters: c.Interceptors(),
	}
}

// Get returns a PracticeSession entity by its id.
func (c *PracticeSessionClient) Get(ctx context.Context, id string) (*PracticeSession, error) {
	return c.Query().Where(practicesession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PracticeSessionClient) GetX(ctx context.Context, id string) *PracticeSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PracticeSessionClient) Hooks() []Hook {
	return c.hooks.PracticeSession
}

// Interceptors returns the client interceptors.
func (c *PracticeSessionClient) Interceptors() []Interceptor {
	return c.inters.PracticeSession
}

func (c *PracticeSessionClient) mutate(ctx context.Context, m *PracticeSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PracticeSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PracticeSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PracticeSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PracticeSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PracticeSession mutation op: %q", m.Op())
	}
}

// UserConceptClient is a client for the UserConcept schema.
type UserConceptClient struct {
	config
}

// NewUserConceptClient returns a client for the UserConcept from the given config.
func NewUserConceptClient(c config) *UserConceptClient {
	return &UserConceptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `userconcept.Hooks(f(g(h())))`.
func (c *UserConceptClient) Use(hooks ...Hook) {
	c.hooks.UserConcept = append(c.hooks.UserConcept, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `userconcept.Intercept(f(g(h())))`.
func (c *UserConceptClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserConcept = append(c.inters.UserConcept, interceptors...)
}

// Create returns a builder for creating a UserConcept entity.
func (c *UserConceptClient) Create() *UserConceptCreate {
	mutation := newUserConceptMutation(c.config, OpCreate)
	return &UserConceptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserConcept entities.
func (c *UserConceptClient) CreateBulk(builders ...*UserConceptCreate) *UserConceptCreateBulk {
	return &UserConceptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserConceptClient) MapCreateBulk(slice any, setFunc func(*UserConceptCreate, int)) *UserConceptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserConceptCreateBulk{err: fmt.Errorf("calling to UserConceptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserConceptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserConceptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserConcept.
func (c *UserConceptClient) Update() *UserConceptUpdate {
	mutation := newUserConceptMutation(c.config, OpUpdate)
	return &UserConceptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserConceptClient) UpdateOne(_m *UserConcept) *UserConceptUpdateOne {
	mutation := newUserConceptMutation(c.config, OpUpdateOne, withUserConcept(_m))
	return &UserConceptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserConceptClient) UpdateOneID(id int) *UserConceptUpdateOne {
	mutation := newUserConceptMutation(c.config, OpUpdateOne, withUserConceptID(id))
	return &UserConceptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserConcept.
func (c *UserConceptClient) Delete() *UserConceptDelete {
	mutation := newUserConceptMutation(c.config, OpDelete)
	return &UserConceptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserConceptClient) DeleteOne(_m *UserConcept) *UserConceptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserConceptClient) DeleteOneID(id int) *UserConceptDeleteOne {
	builder := c.Delete().Where(userconcept.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserConceptDeleteOne{builder}
}

// Query returns a query builder for UserConcept.
func (c *UserConceptClient) Query() *UserConceptQuery {
	return &UserConceptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserConcept},
		inters: c.Interceptors(),
	}
}

// Get returns a UserConcept entity by its id.
func (c *UserConceptClient) Get(ctx context.Context, id int) (*UserConcept, error) {
	return c.Query().Where(userconcept.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserConceptClient) GetX(ctx context.Context, id int) *UserConcept {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserConceptClient) Hooks() []Hook {
	return c.hooks.UserConcept
}

// Interceptors returns the client interceptors.
func (c *UserConceptClient) Interceptors() []Interceptor {
	return c.inters.UserConcept
}

func (c *UserConceptClient) mutate(ctx context.Context, m *UserConceptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserConceptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserConceptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserConceptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserConceptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserConcept mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Achievement, PracticeRecord, PracticeSession, UserConcept []ent.Hook
	}
	inters struct {
		Achievement, PracticeRecord, PracticeSession, UserConcept []ent.Interceptor
	}
)
