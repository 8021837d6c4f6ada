// Package usecase contains the route finder application logic.
// SearchController is the search form state machine; SessionRegistry gives every UI session its own controller.
package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/airfare-routefinder/route-finder/internal/domain"
	"github.com/airfare-routefinder/route-finder/internal/infrastructure/logger"
	"github.com/airfare-routefinder/route-finder/internal/infrastructure/timeutil"
)

// SearchObserver receives the outcome of every search that settles as the visible result.
type SearchObserver interface {
	SearchSettled(state domain.ResultState, failure domain.FailureKind, lookup time.Duration)
}

// ControllerConfig contains the initial form values and lookup settings of a controller.
type ControllerConfig struct {
	// DefaultFromCity and DefaultToCity pre-fill the form (may be empty)
	DefaultFromCity string
	DefaultToCity   string

	// DefaultRankBy is used when empty or invalid: Fastest
	DefaultRankBy domain.RankBy

	// LookupTimeout bounds each lookup call. Zero means no deadline.
	LookupTimeout time.Duration
}

// State is a consistent view of the controller at one instant.
type State struct {
	Query  domain.SearchQuery
	Result domain.SearchResult

	// Generation increases with every RunSearch and Reset
	Generation uint64
}

// ControllerOption configures optional collaborators of a SearchController.
type ControllerOption func(*SearchController)

// WithLogger sets the logger used for settled searches.
func WithLogger(l *logger.Logger) ControllerOption {
	return func(c *SearchController) {
		if l != nil {
			c.log = l
		}
	}
}

// WithObserver sets the observer notified of settled searches.
func WithObserver(o SearchObserver) ControllerOption {
	return func(c *SearchController) {
		c.observer = o
	}
}

// WithClock sets the clock used to measure lookup latency.
func WithClock(clock timeutil.Clock) ControllerOption {
	return func(c *SearchController) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// SearchController owns the search form and its visible result.
//
// The result moves Empty -> Pending -> one of Failed, NoMatches or Found on every RunSearch.
// A newer RunSearch (or Reset) cancels the lookup of the previous one and only the latest
// invocation may write the visible result.
//
// SearchController is safe for concurrent use.
type SearchController struct {
	lookup        domain.ConnectionLookupService
	cities        []domain.City
	lookupTimeout time.Duration

	log      *logger.Logger
	observer SearchObserver
	clock    timeutil.Clock

	mu         sync.RWMutex
	query      domain.SearchQuery
	result     domain.SearchResult
	generation uint64
	cancel     context.CancelFunc
}

// NewSearchController creates a controller with the given lookup port and city list.
// The form starts from the defaults in cfg and the result starts Empty.
func NewSearchController(lookup domain.ConnectionLookupService, cities []domain.City, cfg ControllerConfig, opts ...ControllerOption) *SearchController {
	rankBy := cfg.DefaultRankBy
	if !rankBy.IsValid() {
		rankBy = domain.DefaultRankBy
	}

	list := make([]domain.City, len(cities))
	copy(list, cities)

	c := &SearchController{
		lookup:        lookup,
		cities:        list,
		lookupTimeout: cfg.LookupTimeout,
		log:           logger.Nop(),
		clock:         timeutil.NewRealClock(),
		query: domain.SearchQuery{
			FromCity: cfg.DefaultFromCity,
			ToCity:   cfg.DefaultToCity,
			RankBy:   rankBy,
		},
		result: domain.Empty{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetFromCity sets the departure city. The current result is left untouched.
func (c *SearchController) SetFromCity(name string) {
	c.mu.Lock()
	c.query.FromCity = name
	c.mu.Unlock()
}

// SetToCity sets the destination city. The current result is left untouched.
func (c *SearchController) SetToCity(name string) {
	c.mu.Lock()
	c.query.ToCity = name
	c.mu.Unlock()
}

// SetRankBy sets the ranking preference. Unknown values are rejected with domain.ErrInvalidRankBy.
func (c *SearchController) SetRankBy(rankBy domain.RankBy) error {
	if !rankBy.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidRankBy, rankBy)
	}
	c.mu.Lock()
	c.query.RankBy = rankBy
	c.mu.Unlock()
	return nil
}

// Query returns the current form values.
func (c *SearchController) Query() domain.SearchQuery {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.query
}

// Result returns the visible search result.
func (c *SearchController) Result() domain.SearchResult {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.result
}

// Cities returns the selectable cities in catalog order.
func (c *SearchController) Cities() []domain.City {
	list := make([]domain.City, len(c.cities))
	copy(list, c.cities)
	return list
}

// Snapshot returns the form and result read together.
func (c *SearchController) Snapshot() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return State{
		Query:      c.query,
		Result:     c.result,
		Generation: c.generation,
	}
}

// Reset clears the result back to Empty and cancels any in-flight lookup.
// The form values are kept.
func (c *SearchController) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelLocked()
	c.generation++
	c.result = domain.Empty{}
}

// Close cancels any in-flight lookup and clears the result back to Empty.
// A lookup cancelled this way never settles as the visible result.
func (c *SearchController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelLocked()
	c.generation++
	c.result = domain.Empty{}
}

// RunSearch validates the form, performs the lookup and settles the visible result.
// It blocks until the lookup returns and reports the outcome of this invocation,
// which differs from Result() when a newer search superseded it.
func (c *SearchController) RunSearch(ctx context.Context) domain.SearchResult {
	run, done := c.begin(ctx)
	if done != nil {
		c.notify(done, 0)
		return done
	}
	return c.settle(run)
}

// Start begins a search without waiting for the lookup.
// The returned state shows Pending, or Failed when validation rejected the form.
// The channel receives the outcome of this invocation once it settles.
func (c *SearchController) Start(ctx context.Context) (State, <-chan domain.SearchResult) {
	out := make(chan domain.SearchResult, 1)

	run, done := c.begin(ctx)
	state := c.Snapshot()
	if done != nil {
		c.notify(done, 0)
		out <- done
		close(out)
		return state, out
	}

	go func() {
		defer close(out)
		out <- c.settle(run)
	}()
	return state, out
}

// searchRun carries one in-flight lookup from begin to settle.
type searchRun struct {
	ctx        context.Context
	cancel     context.CancelFunc
	query      domain.SearchQuery
	generation uint64
}

// begin moves the result to Pending and validates the form.
// It returns a non-nil result when the search already settled without a lookup.
func (c *SearchController) begin(ctx context.Context) (*searchRun, domain.SearchResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelLocked()
	c.generation++
	c.result = domain.Pending{}
	query := c.query

	if err := query.Validate(); err != nil {
		failed := domain.FailedFromError(err)
		c.result = failed

		c.log.Debug().
			Str(logger.FieldFromCity, query.FromCity).
			Str(logger.FieldToCity, query.ToCity).
			Str("reason", failed.Message).
			Msg("search rejected by validation")
		return nil, failed
	}

	var lookupCtx context.Context
	var cancel context.CancelFunc
	if c.lookupTimeout > 0 {
		lookupCtx, cancel = context.WithTimeout(ctx, c.lookupTimeout)
	} else {
		lookupCtx, cancel = context.WithCancel(ctx)
	}
	c.cancel = cancel

	return &searchRun{
		ctx:        lookupCtx,
		cancel:     cancel,
		query:      query,
		generation: c.generation,
	}, nil
}

// settle performs the lookup of run and writes its outcome if run is still the latest search.
func (c *SearchController) settle(run *searchRun) domain.SearchResult {
	defer run.cancel()

	start := c.clock.Now()
	lr, err := c.find(run.ctx, run.query)
	elapsed := c.clock.Now().Sub(start)

	var result domain.SearchResult
	if err != nil {
		result = domain.Failed{
			Kind:    domain.FailureTransport,
			Message: domain.MsgServiceUnavailable,
		}
	} else {
		result = domain.ResultFromLookup(lr)
	}

	c.mu.Lock()
	current := run.generation == c.generation
	if current {
		c.result = result
		c.cancel = nil
	}
	c.mu.Unlock()

	event := c.log.Info()
	switch {
	case !current:
		event = c.log.Debug()
	case err != nil:
		event = c.log.Warn().Err(err)
	}
	event.
		Str(logger.FieldFromCity, run.query.FromCity).
		Str(logger.FieldToCity, run.query.ToCity).
		Str(logger.FieldRankBy, run.query.RankBy.String()).
		Str("state", string(result.State())).
		Dur("lookup_ms", elapsed).
		Bool("superseded", !current).
		Msg("search settled")

	if current {
		c.notify(result, elapsed)
	}
	return result
}

// find calls the lookup port, turning a panic into an error.
func (c *SearchController) find(ctx context.Context, query domain.SearchQuery) (lr *domain.LookupResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			lr = nil
			err = fmt.Errorf("lookup panic: %v", r)
		}
	}()

	return c.lookup.Find(ctx, query)
}

func (c *SearchController) notify(result domain.SearchResult, lookup time.Duration) {
	if c.observer == nil {
		return
	}
	var kind domain.FailureKind
	if failed, ok := result.(domain.Failed); ok {
		kind = failed.Kind
	}
	c.observer.SearchSettled(result.State(), kind, lookup)
}

// cancelLocked cancels the in-flight lookup. c.mu must be held.
func (c *SearchController) cancelLocked() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}
