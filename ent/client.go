// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/pathwise/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/abhisek/pathwise/ent/feedbackevent"
	"github.com/abhisek/pathwise/ent/generatedquiz"
	"github.com/abhisek/pathwise/ent/llmrequestevent"
	"github.com/abhisek/pathwise/ent/practiceattempt"
	"github.com/abhisek/pathwise/ent/practicequestion"
	"github.com/abhisek/pathwise/ent/quizresult"
	"github.com/abhisek/pathwise/ent/roadmap"
	"github.com/abhisek/pathwise/ent/skillgapanalysis"
	"github.com/abhisek/pathwise/ent/step"
	"github.com/abhisek/pathwise/ent/user"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// FeedbackEvent is the client for interacting with the FeedbackEvent builders.
	FeedbackEvent *FeedbackEventClient
	// GeneratedQuiz is the client for interacting with the GeneratedQuiz builders.
	GeneratedQuiz *GeneratedQuizClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// PracticeAttempt is the client for interacting with the PracticeAttempt builders.
	PracticeAttempt *PracticeAttemptClient
	// PracticeQuestion is the client for interacting with the PracticeQuestion builders.
	PracticeQuestion *PracticeQuestionClient
	// QuizResult is the client for interacting with the QuizResult builders.
	QuizResult *QuizResultClient
	// Roadmap is the client for interacting with the Roadmap builders.
	Roadmap *RoadmapClient
	// SkillGapAnalysis is the client for interacting with the SkillGapAnalysis builders.
	SkillGapAnalysis *SkillGapAnalysisClient
	// Step is the client for interacting with the Step builders.
	Step *StepClient
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
	c.FeedbackEvent = NewFeedbackEventClient(c.config)
	c.GeneratedQuiz = NewGeneratedQuizClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.PracticeAttempt = NewPracticeAttemptClient(c.config)
	c.PracticeQuestion = NewPracticeQuestionClient(c.config)
	c.QuizResult = NewQuizResultClient(c.config)
	c.Roadmap = NewRoadmapClient(c.config)
	c.SkillGapAnalysis = NewSkillGapAnalysisClient(c.config)
	c.Step = NewStepClient(c.config)
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
		FeedbackEvent:    NewFeedbackEventClient(cfg),
		GeneratedQuiz:    NewGeneratedQuizClient(cfg),
		LLMRequestEvent:  NewLLMRequestEventClient(cfg),
		PracticeAttempt:  NewPracticeAttemptClient(cfg),
		PracticeQuestion: NewPracticeQuestionClient(cfg),
		QuizResult:       NewQuizResultClient(cfg),
		Roadmap:          NewRoadmapClient(cfg),
		SkillGapAnalysis: NewSkillGapAnalysisClient(cfg),
		Step:             NewStepClient(cfg),
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
		FeedbackEvent:    NewFeedbackEventClient(cfg),
		GeneratedQuiz:    NewGeneratedQuizClient(cfg),
		LLMRequestEvent:  NewLLMRequestEventClient(cfg),
		PracticeAttempt:  NewPracticeAttemptClient(cfg),
		PracticeQuestion: NewPracticeQuestionClient(cfg),
		QuizResult:       NewQuizResultClient(cfg),
		Roadmap:          NewRoadmapClient(cfg),
		SkillGapAnalysis: NewSkillGapAnalysisClient(cfg),
		Step:             NewStepClient(cfg),
		User:             NewUserClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		FeedbackEvent.
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
		c.FeedbackEvent, c.GeneratedQuiz, c.LLMRequestEvent, c.PracticeAttempt,
		c.PracticeQuestion, c.QuizResult, c.Roadmap, c.SkillGapAnalysis, c.Step,
		c.User,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.FeedbackEvent, c.GeneratedQuiz, c.LLMRequestEvent, c.PracticeAttempt,
		c.PracticeQuestion, c.QuizResult, c.Roadmap, c.SkillGapAnalysis, c.Step,
		c.User,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *FeedbackEventMutation:
		return c.FeedbackEvent.mutate(ctx, m)
	case *GeneratedQuizMutation:
		return c.GeneratedQuiz.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *PracticeAttemptMutation:
		return c.PracticeAttempt.mutate(ctx, m)
	case *PracticeQuestionMutation:
		return c.PracticeQuestion.mutate(ctx, m)
	case *QuizResultMutation:
		return c.QuizResult.mutate(ctx, m)
	case *RoadmapMutation:
		return c.Roadmap.mutate(ctx, m)
	case *SkillGapAnalysisMutation:
		return c.SkillGapAnalysis.mutate(ctx, m)
	case *StepMutation:
		return c.Step.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// FeedbackEventClient is a client for the FeedbackEvent schema.
type FeedbackEventClient struct {
	config
}

// NewFeedbackEventClient returns a client for the FeedbackEvent from the given config.
func NewFeedbackEventClient(c config) *FeedbackEventClient {
	return &FeedbackEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `feedbackevent.Hooks(f(g(h())))`.
func (c *FeedbackEventClient) Use(hooks ...Hook) {
	c.hooks.FeedbackEvent = append(c.hooks.FeedbackEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `feedbackevent.Intercept(f(g(h())))`.
func (c *FeedbackEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.FeedbackEvent = append(c.inters.FeedbackEvent, interceptors...)
}

// Create returns a builder for creating a FeedbackEvent entity.
func (c *FeedbackEventClient) Create() *FeedbackEventCreate {
	mutation := newFeedbackEventMutation(c.config, OpCreate)
	return &FeedbackEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FeedbackEvent entities.
func (c *FeedbackEventClient) CreateBulk(builders ...*FeedbackEventCreate) *FeedbackEventCreateBulk {
	return &FeedbackEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FeedbackEventClient) MapCreateBulk(slice any, setFunc func(*FeedbackEventCreate, int)) *FeedbackEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FeedbackEventCreateBulk{err: fmt.Errorf("calling to FeedbackEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FeedbackEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FeedbackEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FeedbackEvent.
func (c *FeedbackEventClient) Update() *FeedbackEventUpdate {
	mutation := newFeedbackEventMutation(c.config, OpUpdate)
	return &FeedbackEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FeedbackEventClient) UpdateOne(_m *FeedbackEvent) *FeedbackEventUpdateOne {
	mutation := newFeedbackEventMutation(c.config, OpUpdateOne, withFeedbackEvent(_m))
	return &FeedbackEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FeedbackEventClient) UpdateOneID(id uuid.UUID) *FeedbackEventUpdateOne {
	mutation := newFeedbackEventMutation(c.config, OpUpdateOne, withFeedbackEventID(id))
	return &FeedbackEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FeedbackEvent.
func (c *FeedbackEventClient) Delete() *FeedbackEventDelete {
	mutation := newFeedbackEventMutation(c.config, OpDelete)
	return &FeedbackEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FeedbackEventClient) DeleteOne(_m *FeedbackEvent) *FeedbackEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FeedbackEventClient) DeleteOneID(id uuid.UUID) *FeedbackEventDeleteOne {
	builder := c.Delete().Where(feedbackevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FeedbackEventDeleteOne{builder}
}

// Query returns a query builder for FeedbackEvent.
func (c *FeedbackEventClient) Query() *FeedbackEventQuery {
	return &FeedbackEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFeedbackEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a FeedbackEvent entity by its id.
func (c *FeedbackEventClient) Get(ctx context.Context, id uuid.UUID) (*FeedbackEvent, error) {
	return c.Query().Where(feedbackevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FeedbackEventClient) GetX(ctx context.Context, id uuid.UUID) *FeedbackEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *FeedbackEventClient) Hooks() []Hook {
	return c.hooks.FeedbackEvent
}

// Interceptors returns the client interceptors.
func (c *FeedbackEventClient) Interceptors() []Interceptor {
	return c.inters.FeedbackEvent
}

func (c *FeedbackEventClient) mutate(ctx context.Context, m *FeedbackEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FeedbackEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FeedbackEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FeedbackEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FeedbackEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FeedbackEvent mutation op: %q", m.Op())
	}
}

// GeneratedQuizClient is a client for the GeneratedQuiz schema.
type GeneratedQuizClient struct {
	config
}

// NewGeneratedQuizClient returns a client for the GeneratedQuiz from the given config.
func NewGeneratedQuizClient(c config) *GeneratedQuizClient {
	return &GeneratedQuizClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `generatedquiz.Hooks(f(g(h())))`.
func (c *GeneratedQuizClient) Use(hooks ...Hook) {
	c.hooks.GeneratedQuiz = append(c.hooks.GeneratedQuiz, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `generatedquiz.Intercept(f(g(h())))`.
func (c *GeneratedQuizClient) Intercept(interceptors ...Interceptor) {
	c.inters.GeneratedQuiz = append(c.inters.GeneratedQuiz, interceptors...)
}

// Create returns a builder for creating a GeneratedQuiz entity.
func (c *GeneratedQuizClient) Create() *GeneratedQuizCreate {
	mutation := newGeneratedQuizMutation(c.config, OpCreate)
	return &GeneratedQuizCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GeneratedQuiz entities.
func (c *GeneratedQuizClient) CreateBulk(builders ...*GeneratedQuizCreate) *GeneratedQuizCreateBulk {
	return &GeneratedQuizCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GeneratedQuizClient) MapCreateBulk(slice any, setFunc func(*GeneratedQuizCreate, int)) *GeneratedQuizCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GeneratedQuizCreateBulk{err: fmt.Errorf("calling to GeneratedQuizClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GeneratedQuizCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GeneratedQuizCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GeneratedQuiz.
func (c *GeneratedQuizClient) Update() *GeneratedQuizUpdate {
	mutation := newGeneratedQuizMutation(c.config, OpUpdate)
	return &GeneratedQuizUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GeneratedQuizClient) UpdateOne(_m *GeneratedQuiz) *GeneratedQuizUpdateOne {
	mutation := newGeneratedQuizMutation(c.config, OpUpdateOne, withGeneratedQuiz(_m))
	return &GeneratedQuizUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GeneratedQuizClient) UpdateOneID(id uuid.UUID) *GeneratedQuizUpdateOne {
	mutation := newGeneratedQuizMutation(c.config, OpUpdateOne, withGeneratedQuizID(id))
	return &GeneratedQuizUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GeneratedQuiz.
func (c *GeneratedQuizClient) Delete() *GeneratedQuizDelete {
	mutation := newGeneratedQuizMutation(c.config, OpDelete)
	return &GeneratedQuizDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GeneratedQuizClient) DeleteOne(_m *GeneratedQuiz) *GeneratedQuizDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GeneratedQuizClient) DeleteOneID(id uuid.UUID) *GeneratedQuizDeleteOne {
	builder := c.Delete().Where(generatedquiz.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GeneratedQuizDeleteOne{builder}
}

// Query returns a query builder for GeneratedQuiz.
func (c *GeneratedQuizClient) Query() *GeneratedQuizQuery {
	return &GeneratedQuizQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGeneratedQuiz},
		inters: c.Interceptors(),
	}
}

// Get returns a GeneratedQuiz entity by its id.
func (c *GeneratedQuizClient) Get(ctx context.Context, id uuid.UUID) (*GeneratedQuiz, error) {
	return c.Query().Where(generatedquiz.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GeneratedQuizClient) GetX(ctx context.Context, id uuid.UUID) *GeneratedQuiz {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GeneratedQuizClient) Hooks() []Hook {
	return c.hooks.GeneratedQuiz
}

// Interceptors returns the client interceptors.
func (c *GeneratedQuizClient) Interceptors() []Interceptor {
	return c.inters.GeneratedQuiz
}

func (c *GeneratedQuizClient) mutate(ctx context.Context, m *GeneratedQuizMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GeneratedQuizCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GeneratedQuizUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GeneratedQuizUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GeneratedQuizDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GeneratedQuiz mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// PracticeAttemptClient is a client for the PracticeAttempt schema.
type PracticeAttemptClient struct {
	config
}

// NewPracticeAttemptClient returns a client for the PracticeAttempt from the given config.
func NewPracticeAttemptClient(c config) *PracticeAttemptClient {
	return &PracticeAttemptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `practiceattempt.Hooks(f(g(h())))`.
func (c *PracticeAttemptClient) Use(hooks ...Hook) {
	c.hooks.PracticeAttempt = append(c.hooks.PracticeAttempt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `practiceattempt.Intercept(f(g(h())))`.
func (c *PracticeAttemptClient) Intercept(interceptors ...Interceptor) {
	c.inters.PracticeAttempt = append(c.inters.PracticeAttempt, interceptors...)
}

// Create returns a builder for creating a PracticeAttempt entity.
func (c *PracticeAttemptClient) Create() *PracticeAttemptCreate {
	mutation := newPracticeAttemptMutation(c.config, OpCreate)
	return &PracticeAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PracticeAttempt entities.
func (c *PracticeAttemptClient) CreateBulk(builders ...*PracticeAttemptCreate) *PracticeAttemptCreateBulk {
	return &PracticeAttemptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PracticeAttemptClient) MapCreateBulk(slice any, setFunc func(*PracticeAttemptCreate, int)) *PracticeAttemptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PracticeAttemptCreateBulk{err: fmt.Errorf("calling to PracticeAttemptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PracticeAttemptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PracticeAttemptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PracticeAttempt.
func (c *PracticeAttemptClient) Update() *PracticeAttemptUpdate {
	mutation := newPracticeAttemptMutation(c.config, OpUpdate)
	return &PracticeAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PracticeAttemptClient) UpdateOne(_m *PracticeAttempt) *PracticeAttemptUpdateOne {
	mutation := newPracticeAttemptMutation(c.config, OpUpdateOne, withPracticeAttempt(_m))
	return &PracticeAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PracticeAttemptClient) UpdateOneID(id uuid.UUID) *PracticeAttemptUpdateOne {
	mutation := newPracticeAttemptMutation(c.config, OpUpdateOne, withPracticeAttemptID(id))
	return &PracticeAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PracticeAttempt.
func (c *PracticeAttemptClient) Delete() *PracticeAttemptDelete {
	mutation := newPracticeAttemptMutation(c.config, OpDelete)
	return &PracticeAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PracticeAttemptClient) DeleteOne(_m *PracticeAttempt) *PracticeAttemptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PracticeAttemptClient) DeleteOneID(id uuid.UUID) *PracticeAttemptDeleteOne {
	builder := c.Delete().Where(practiceattempt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PracticeAttemptDeleteOne{builder}
}

// Query returns a query builder for PracticeAttempt.
func (c *PracticeAttemptClient) Query() *PracticeAttemptQuery {
	return &PracticeAttemptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePracticeAttempt},
		inters: c.Interceptors(),
	}
}

// Get returns a PracticeAttempt entity by its id.
func (c *PracticeAttemptClient) Get(ctx context.Context, id uuid.UUID) (*PracticeAttempt, error) {
	return c.Query().Where(practiceattempt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PracticeAttemptClient) GetX(ctx context.Context, id uuid.UUID) *PracticeAttempt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PracticeAttemptClient) Hooks() []Hook {
	return c.hooks.PracticeAttempt
}

// Interceptors returns the client interceptors.
func (c *PracticeAttemptClient) Interceptors() []Interceptor {
	return c.inters.PracticeAttempt
}

func (c *PracticeAttemptClient) mutate(ctx context.Context, m *PracticeAttemptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PracticeAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PracticeAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PracticeAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PracticeAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PracticeAttempt mutation op: %q", m.Op())
	}
}

// PracticeQuestionClient is a client for the PracticeQuestion schema.
type PracticeQuestionClient struct {
	config
}

// NewPracticeQuestionClient returns a client for the PracticeQuestion from the given config.
func NewPracticeQuestionClient(c config) *PracticeQuestionClient {
	return &PracticeQuestionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `practicequestion.Hooks(f(g(h())))`.
func (c *PracticeQuestionClient) Use(hooks ...Hook) {
	c.hooks.PracticeQuestion = append(c.hooks.PracticeQuestion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `practicequestion.Intercept(f(g(h())))`.
func (c *PracticeQuestionClient) Intercept(interceptors ...Interceptor) {
	c.inters.PracticeQuestion = append(c.inters.PracticeQuestion, interceptors...)
}

// Create returns a builder for creating a PracticeQuestion entity.
func (c *PracticeQuestionClient) Create() *PracticeQuestionCreate {
	mutation := newPracticeQuestionMutation(c.config, OpCreate)
	return &PracticeQuestionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PracticeQuestion entities.
func (c *PracticeQuestionClient) CreateBulk(builders ...*PracticeQuestionCreate) *PracticeQuestionCreateBulk {
	return &PracticeQuestionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PracticeQuestionClient) MapCreateBulk(slice any, setFunc func(*PracticeQuestionCreate, int)) *PracticeQuestionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PracticeQuestionCreateBulk{err: fmt.Errorf("calling to PracticeQuestionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PracticeQuestionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PracticeQuestionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PracticeQuestion.
func (c *PracticeQuestionClient) Update() *PracticeQuestionUpdate {
	mutation := newPracticeQuestionMutation(c.config, OpUpdate)
	return &PracticeQuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PracticeQuestionClient) UpdateOne(_m *PracticeQuestion) *PracticeQuestionUpdateOne {
	mutation := newPracticeQuestionMutation(c.config, OpUpdateOne, withPracticeQuestion(_m))
	return &PracticeQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PracticeQuestionClient) UpdateOneID(id uuid.UUID) *PracticeQuestionUpdateOne {
	mutation := newPracticeQuestionMutation(c.config, OpUpdateOne, withPracticeQuestionID(id))
	return &PracticeQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PracticeQuestion.
func (c *PracticeQuestionClient) Delete() *PracticeQuestionDelete {
	mutation := newPracticeQuestionMutation(c.config, OpDelete)
	return &PracticeQuestionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PracticeQuestionClient) DeleteOne(_m *PracticeQuestion) *PracticeQuestionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PracticeQuestionClient) DeleteOneID(id uuid.UUID) *PracticeQuestionDeleteOne {
	builder := c.Delete().Where(practicequestion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PracticeQuestionDeleteOne{builder}
}

// Query returns a query builder for PracticeQuestion.
func (c *PracticeQuestionClient) Query() *PracticeQuestionQuery {
	return &PracticeQuestionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePracticeQuestion},
		inters: c.Interceptors(),
	}
}

// Get returns a PracticeQuestion entity by its id.
func (c *PracticeQuestionClient) Get(ctx context.Context, id uuid.UUID) (*PracticeQuestion, error) {
	return c.Query().Where(practicequestion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PracticeQuestionClient) GetX(ctx context.Context, id uuid.UUID) *PracticeQuestion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PracticeQuestionClient) Hooks() []Hook {
	return c.hooks.PracticeQuestion
}

// Interceptors returns the client interceptors.
func (c *PracticeQuestionClient) Interceptors() []Interceptor {
	return c.inters.PracticeQuestion
}

func (c *PracticeQuestionClient) mutate(ctx context.Context, m *PracticeQuestionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PracticeQuestionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PracticeQuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PracticeQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PracticeQuestionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PracticeQuestion mutation op: %q", m.Op())
	}
}

// QuizResultClient is a client for the QuizResult schema.
type QuizResultClient struct {
	config
}

// NewQuizResultClient returns a client for the QuizResult from the given config.
func NewQuizResultClient(c config) *QuizResultClient {
	return &QuizResultClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `quizresult.Hooks(f(g(h())))`.
func (c *QuizResultClient) Use(hooks ...Hook) {
	c.hooks.QuizResult = append(c.hooks.QuizResult, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `quizresult.Intercept(f(g(h())))`.
func (c *QuizResultClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuizResult = append(c.inters.QuizResult, interceptors...)
}

// Create returns a builder for creating a QuizResult entity.
func (c *QuizResultClient) Create() *QuizResultCreate {
	mutation := newQuizResultMutation(c.config, OpCreate)
	return &QuizResultCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuizResult entities.
func (c *QuizResultClient) CreateBulk(builders ...*QuizResultCreate) *QuizResultCreateBulk {
	return &QuizResultCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuizResultClient) MapCreateBulk(slice any, setFunc func(*QuizResultCreate, int)) *QuizResultCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuizResultCreateBulk{err: fmt.Errorf("calling to QuizResultClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuizResultCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuizResultCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuizResult.
func (c *QuizResultClient) Update() *QuizResultUpdate {
	mutation := newQuizResultMutation(c.config, OpUpdate)
	return &QuizResultUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuizResultClient) UpdateOne(_m *QuizResult) *QuizResultUpdateOne {
	mutation := newQuizResultMutation(c.config, OpUpdateOne, withQuizResult(_m))
	return &QuizResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuizResultClient) UpdateOneID(id uuid.UUID) *QuizResultUpdateOne {
	mutation := newQuizResultMutation(c.config, OpUpdateOne, withQuizResultID(id))
	return &QuizResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuizResult.
func (c *QuizResultClient) Delete() *QuizResultDelete {
	mutation := newQuizResultMutation(c.config, OpDelete)
	return &QuizResultDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuizResultClient) DeleteOne(_m *QuizResult) *QuizResultDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuizResultClient) DeleteOneID(id uuid.UUID) *QuizResultDeleteOne {
	builder := c.Delete().Where(quizresult.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuizResultDeleteOne{builder}
}

// Query returns a query builder for QuizResult.
func (c *QuizResultClient) Query() *QuizResultQuery {
	return &QuizResultQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuizResult},
		inters: c.Interceptors(),
	}
}

// Get returns a QuizResult entity by its id.
func (c *QuizResultClient) Get(ctx context.Context, id uuid.UUID) (*QuizResult, error) {
	return c.Query().Where(quizresult.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuizResultClient) GetX(ctx context.Context, id uuid.UUID) *QuizResult {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuizResultClient) Hooks() []Hook {
	return c.hooks.QuizResult
}

// Interceptors returns the client interceptors.
func (c *QuizResultClient) Interceptors() []Interceptor {
	return c.inters.QuizResult
}

func (c *QuizResultClient) mutate(ctx context.Context, m *QuizResultMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuizResultCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuizResultUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuizResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuizResultDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QuizResult mutation op: %q", m.Op())
	}
}

// RoadmapClient is a client for the Roadmap schema.
type RoadmapClient struct {
	config
}

// NewRoadmapClient returns a client for the Roadmap from the given config.
func NewRoadmapClient(c config) *RoadmapClient {
	return &RoadmapClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `roadmap.Hooks(f(g(h())))`.
func (c *RoadmapClient) Use(hooks ...Hook) {
	c.hooks.Roadmap = append(c.hooks.Roadmap, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `roadmap.Intercept(f(g(h())))`.
func (c *RoadmapClient) Intercept(interceptors ...Interceptor) {
	c.inters.Roadmap = append(c.inters.Roadmap, interceptors...)
}

// Create returns a builder for creating a Roadmap entity.
func (c *RoadmapClient) Create() *RoadmapCreate {
	mutation := newRoadmapMutation(c.config, OpCreate)
	return &RoadmapCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Roadmap entities.
func (c *RoadmapClient) CreateBulk(builders ...*RoadmapCreate) *RoadmapCreateBulk {
	return &RoadmapCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RoadmapClient) MapCreateBulk(slice any, setFunc func(*RoadmapCreate, int)) *RoadmapCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RoadmapCreateBulk{err: fmt.Errorf("calling to RoadmapClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RoadmapCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RoadmapCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Roadmap.
func (c *RoadmapClient) Update() *RoadmapUpdate {
	mutation := newRoadmapMutation(c.config, OpUpdate)
	return &RoadmapUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RoadmapClient) UpdateOne(_m *Roadmap) *RoadmapUpdateOne {
	mutation := newRoadmapMutation(c.config, OpUpdateOne, withRoadmap(_m))
	return &RoadmapUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RoadmapClient) UpdateOneID(id uuid.UUID) *RoadmapUpdateOne {
	mutation := newRoadmapMutation(c.config, OpUpdateOne, withRoadmapID(id))
	return &RoadmapUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Roadmap.
func (c *RoadmapClient) Delete() *RoadmapDelete {
	mutation := newRoadmapMutation(c.config, OpDelete)
	return &RoadmapDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RoadmapClient) DeleteOne(_m *Roadmap) *RoadmapDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RoadmapClient) DeleteOneID(id uuid.UUID) *RoadmapDeleteOne {
	builder := c.Delete().Where(roadmap.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RoadmapDeleteOne{builder}
}

// Query returns a query builder for Roadmap.
func (c *RoadmapClient) Query() *RoadmapQuery {
	return &RoadmapQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRoadmap},
		inters: c.Interceptors(),
	}
}

// Get returns a Roadmap entity by its id.
func (c *RoadmapClient) Get(ctx context.Context, id uuid.UUID) (*Roadmap, error) {
	return c.Query().Where(roadmap.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RoadmapClient) GetX(ctx context.Context, id uuid.UUID) *Roadmap {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySteps queries the steps edge of a Roadmap.
func (c *RoadmapClient) QuerySteps(_m *Roadmap) *StepQuery {
	query := (&StepClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(roadmap.Table, roadmap.FieldID, id),
			sqlgraph.To(step.Table, step.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, roadmap.StepsTable, roadmap.StepsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RoadmapClient) Hooks() []Hook {
	return c.hooks.Roadmap
}

// Interceptors returns the client interceptors.
func (c *RoadmapClient) Interceptors() []Interceptor {
	return c.inters.Roadmap
}

func (c *RoadmapClient) mutate(ctx context.Context, m *RoadmapMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RoadmapCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RoadmapUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RoadmapUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RoadmapDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Roadmap mutation op: %q", m.Op())
	}
}

// SkillGapAnalysisClient is a client for the SkillGapAnalysis schema.
type SkillGapAnalysisClient struct {
	config
}

// NewSkillGapAnalysisClient returns a client for the SkillGapAnalysis from the given config.
func NewSkillGapAnalysisClient(c config) *SkillGapAnalysisClient {
	return &SkillGapAnalysisClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `skillgapanalysis.Hooks(f(g(h())))`.
func (c *SkillGapAnalysisClient) Use(hooks ...Hook) {
	c.hooks.SkillGapAnalysis = append(c.hooks.SkillGapAnalysis, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `skillgapanalysis.Intercept(f(g(h())))`.
func (c *SkillGapAnalysisClient) Intercept(interceptors ...Interceptor) {
	c.inters.SkillGapAnalysis = append(c.inters.SkillGapAnalysis, interceptors...)
}

// Create returns a builder for creating a SkillGapAnalysis entity.
func (c *SkillGapAnalysisClient) Create() *SkillGapAnalysisCreate {
	mutation := newSkillGapAnalysisMutation(c.config, OpCreate)
	return &SkillGapAnalysisCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SkillGapAnalysis entities.
func (c *SkillGapAnalysisClient) CreateBulk(builders ...*SkillGapAnalysisCreate) *SkillGapAnalysisCreateBulk {
	return &SkillGapAnalysisCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SkillGapAnalysisClient) MapCreateBulk(slice any, setFunc func(*SkillGapAnalysisCreate, int)) *SkillGapAnalysisCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SkillGapAnalysisCreateBulk{err: fmt.Errorf("calling to SkillGapAnalysisClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SkillGapAnalysisCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SkillGapAnalysisCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SkillGapAnalysis.
func (c *SkillGapAnalysisClient) Update() *SkillGapAnalysisUpdate {
	mutation := newSkillGapAnalysisMutation(c.config, OpUpdate)
	return &SkillGapAnalysisUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SkillGapAnalysisClient) UpdateOne(_m *SkillGapAnalysis) *SkillGapAnalysisUpdateOne {
	mutation := newSkillGapAnalysisMutation(c.config, OpUpdateOne, withSkillGapAnalysis(_m))
	return &SkillGapAnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SkillGapAnalysisClient) UpdateOneID(id uuid.UUID) *SkillGapAnalysisUpdateOne {
	mutation := newSkillGapAnalysisMutation(c.config, OpUpdateOne, withSkillGapAnalysisID(id))
	return &SkillGapAnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SkillGapAnalysis.
func (c *SkillGapAnalysisClient) Delete() *SkillGapAnalysisDelete {
	mutation := newSkillGapAnalysisMutation(c.config, OpDelete)
	return &SkillGapAnalysisDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SkillGapAnalysisClient) DeleteOne(_m *SkillGapAnalysis) *SkillGapAnalysisDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SkillGapAnalysisClient) DeleteOneID(id uuid.UUID) *SkillGapAnalysisDeleteOne {
	builder := c.Delete().Where(skillgapanalysis.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SkillGapAnalysisDeleteOne{builder}
}

// Query returns a query builder for SkillGapAnalysis.
func (c *SkillGapAnalysisClient) Query() *SkillGapAnalysisQuery {
	return &SkillGapAnalysisQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSkillGapAnalysis},
		inters: c.Interceptors(),
	}
}

// Get returns a SkillGapAnalysis entity by its id.
func (c *SkillGapAnalysisClient) Get(ctx context.Context, id uuid.UUID) (*SkillGapAnalysis, error) {
	return c.Query().Where(skillgapanalysis.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SkillGapAnalysisClient) GetX(ctx context.Context, id uuid.UUID) *SkillGapAnalysis {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SkillGapAnalysisClient) Hooks() []Hook {
	return c.hooks.SkillGapAnalysis
}

// Interceptors returns the client interceptors.
func (c *SkillGapAnalysisClient) Interceptors() []Interceptor {
	return c.inters.SkillGapAnalysis
}

func (c *SkillGapAnalysisClient) mutate(ctx context.Context, m *SkillGapAnalysisMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SkillGapAnalysisCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SkillGapAnalysisUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SkillGapAnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SkillGapAnalysisDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SkillGapAnalysis mutation op: %q", m.Op())
	}
}

// StepClient is a client for the Step schema.
type StepClient struct {
	config
}

// NewStepClient returns a client for the Step from the given config.
func NewStepClient(c config) *StepClient {
	return &StepClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `step.Hooks(f(g(h())))`.
func (c *StepClient) Use(hooks ...Hook) {
	c.hooks.Step = append(c.hooks.Step, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `step.Intercept(f(g(h())))`.
func (c *StepClient) Intercept(interceptors ...Interceptor) {
	c.inters.Step = append(c.inters.Step, interceptors...)
}

// Create returns a builder for creating a Step entity.
func (c *StepClient) Create() *StepCreate {
	mutation := newStepMutation(c.config, OpCreate)
	return &StepCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Step entities.
func (c *StepClient) CreateBulk(builders ...*StepCreate) *StepCreateBulk {
	return &StepCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StepClient) MapCreateBulk(slice any, setFunc func(*StepCreate, int)) *StepCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StepCreateBulk{err: fmt.Errorf("calling to StepClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StepCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StepCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Step.
func (c *StepClient) Update() *StepUpdate {
	mutation := newStepMutation(c.config, OpUpdate)
	return &StepUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StepClient) UpdateOne(_m *Step) *StepUpdateOne {
	mutation := newStepMutation(c.config, OpUpdateOne, withStep(_m))
	return &StepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StepClient) UpdateOneID(id int) *StepUpdateOne {
	mutation := newStepMutation(c.config, OpUpdateOne, withStepID(id))
	return &StepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Step.
func (c *StepClient) Delete() *StepDelete {
	mutation := newStepMutation(c.config, OpDelete)
	return &StepDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StepClient) DeleteOne(_m *Step) *StepDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StepClient) DeleteOneID(id int) *StepDeleteOne {
	builder := c.Delete().Where(step.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StepDeleteOne{builder}
}

// Query returns a query builder for Step.
func (c *StepClient) Query() *StepQuery {
	return &StepQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStep},
		inters: c.Interceptors(),
	}
}

// Get returns a Step entity by its id.
func (c *StepClient) Get(ctx context.Context, id int) (*Step, error) {
	return c.Query().Where(step.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StepClient) GetX(ctx context.Context, id int) *Step {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRoadmap queries the roadmap edge of a Step.
func (c *StepClient) QueryRoadmap(_m *Step) *RoadmapQuery {
	query := (&RoadmapClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(step.Table, step.FieldID, id),
			sqlgraph.To(roadmap.Table, roadmap.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, step.RoadmapTable, step.RoadmapColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *StepClient) Hooks() []Hook {
	return c.hooks.Step
}

// Interceptors returns the client interceptors.
func (c *StepClient) Interceptors() []Interceptor {
	return c.inters.Step
}

func (c *StepClient) mutate(ctx context.Context, m *StepMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StepCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StepUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StepDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Step mutation op: %q", m.Op())
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
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		FeedbackEvent, GeneratedQuiz, LLMRequestEvent, PracticeAttempt,
		PracticeQuestion, QuizResult, Roadmap, SkillGapAnalysis, Step, User []ent.Hook
	}
	inters struct {
		FeedbackEvent, GeneratedQuiz, LLMRequestEvent, PracticeAttempt,
		PracticeQuestion, QuizResult, Roadmap, SkillGapAnalysis, Step,
		User []ent.Interceptor
	}
)
