package lookup

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"weatherlookup.app/internal/core/history"
	"weatherlookup.app/internal/core/weather"
	"weatherlookup.app/internal/ports"
	"weatherlookup.app/pkg/errors"
	"weatherlookup.app/pkg/validation"
)

// User-facing messages written into the view error
const (
	MsgEmptyQuery             = "Please enter a city name"
	MsgGeolocationUnsupported = "Geolocation is not supported by this client."
	MsgLocationUnavailable    = "Unable to retrieve your location. Please ensure location services are enabled."
)

// Lookup kinds reported to metrics and logs
const (
	KindCity     = "city"
	KindLocation = "location"
	KindHistory  = "history"
)

// Outcome describes how a lookup intent ended
type Outcome string

const (
	OutcomeSuccess   Outcome = "success"
	OutcomePartial   Outcome = "partial"
	OutcomeFailure   Outcome = "failure"
	OutcomeInvalid   Outcome = "invalid"
	OutcomeDiscarded Outcome = "discarded"
)

type viewState struct {
	query       string
	current     *weather.CurrentConditions
	forecast    *weather.Forecast
	loading     bool
	err         string
	hourlyStart int
}

// Controller owns the view state and is its only mutation entry point.
// Every lookup takes a new generation; results from older generations are dropped.
type Controller struct {
	provider   ports.WeatherProvider
	geolocator ports.Geolocator
	history    *history.Store
	logger     ports.Logger
	metrics    ports.LookupMetrics
	now        func() time.Time

	mu         sync.Mutex
	state      viewState
	generation uint64

	// persistMu orders writes so storage always ends with the latest history
	persistMu sync.Mutex
}

type ControllerDependencies struct {
	Provider   ports.WeatherProvider
	Geolocator ports.Geolocator
	History    *history.Store
	Logger     ports.Logger
	Metrics    ports.LookupMetrics
	Clock      func() time.Time
}

func NewController(deps ControllerDependencies) (*Controller, error) {
	if deps.Provider == nil {
		return nil, errors.NewValidationError("weather provider is required")
	}
	if deps.History == nil {
		return nil, errors.NewValidationError("history store is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}

	return &Controller{
		provider:   deps.Provider,
		geolocator: deps.Geolocator,
		history:    deps.History,
		logger:     deps.Logger,
		metrics:    deps.Metrics,
		now:        clock,
	}, nil
}

// lookupPlan binds one lookup source to its two provider calls
type lookupPlan struct {
	kind           string
	target         string
	adoptName      bool
	fetchCurrent   func(ctx context.Context) (*weather.CurrentConditions, error)
	fetchForecast  func(ctx context.Context) (*weather.Forecast, error)
	resolveFailure func(err error) string
}

// LoadHistory fills the in-memory history from storage
func (c *Controller) LoadHistory(ctx context.Context) []history.Entry {
	entries := c.history.Load(ctx)
	c.reportHistorySize(len(entries))
	return entries
}

// SetQuery updates the query text only
func (c *Controller) SetQuery(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.query = text
}

// SubmitCity looks up current conditions and then the forecast for city.
// The submitted text becomes the query text.
func (c *Controller) SubmitCity(ctx context.Context, city string) Outcome {
	return c.submitCity(ctx, KindCity, city)
}

// SelectHistory re-runs the by-name lookup for a history entry
func (c *Controller) SelectHistory(ctx context.Context, name string) Outcome {
	return c.submitCity(ctx, KindHistory, name)
}

func (c *Controller) submitCity(ctx context.Context, kind, city string) Outcome {
	c.SetQuery(city)

	query, ok := validation.TrimAndValidate(city)
	if !ok {
		c.mu.Lock()
		c.state.err = MsgEmptyQuery
		c.mu.Unlock()

		c.logger.Debug("Rejected empty city query", ports.F("kind", kind))
		c.reportOutcome(kind, OutcomeInvalid)
		return OutcomeInvalid
	}

	return c.run(ctx, lookupPlan{
		kind:   kind,
		target: query,
		fetchCurrent: func(ctx context.Context) (*weather.CurrentConditions, error) {
			return c.provider.GetCurrentByCity(ctx, query)
		},
		fetchForecast: func(ctx context.Context) (*weather.Forecast, error) {
			return c.provider.GetForecastByCity(ctx, query)
		},
		resolveFailure: errors.UserMessage,
	})
}

// SubmitLocation looks up weather for the position reported by the geolocator.
// The query text becomes the name of the resolved location.
func (c *Controller) SubmitLocation(ctx context.Context) Outcome {
	if c.geolocator == nil {
		c.mu.Lock()
		c.state.err = MsgGeolocationUnsupported
		c.mu.Unlock()

		c.reportOutcome(KindLocation, OutcomeInvalid)
		return OutcomeInvalid
	}

	var position weather.Coordinates
	return c.run(ctx, lookupPlan{
		kind:      KindLocation,
		target:    "current position",
		adoptName: true,
		fetchCurrent: func(ctx context.Context) (*weather.CurrentConditions, error) {
			coords, err := c.geolocator.CurrentPosition(ctx)
			if err != nil {
				return nil, errors.NewLocationUnavailableError(MsgLocationUnavailable, err)
			}
			position = coords
			return c.provider.GetCurrentByCoords(ctx, coords.Lat, coords.Lon)
		},
		fetchForecast: func(ctx context.Context) (*weather.Forecast, error) {
			return c.provider.GetForecastByCoords(ctx, position.Lat, position.Lon)
		},
		resolveFailure: func(err error) string {
			if errors.IsLocationUnavailableError(err) {
				return MsgLocationUnavailable
			}
			return errors.UserMessage(err)
		},
	})
}

// run executes the two-step lookup protocol. Current conditions are applied and recorded
// as soon as they arrive; a later forecast failure never rolls them back.
func (c *Controller) run(ctx context.Context, plan lookupPlan) Outcome {
	gen := c.begin()
	lookupID := uuid.NewString()
	started := c.now()

	c.logger.Info("Lookup started",
		ports.F("lookup_id", lookupID),
		ports.F("kind", plan.kind),
		ports.F("target", plan.target),
		ports.F("generation", gen))

	current, err := plan.fetchCurrent(ctx)
	if err != nil {
		return c.finishFailure(gen, lookupID, plan, err, false)
	}

	entries, applied := c.applyCurrent(gen, current, plan.adoptName)
	if !applied {
		return c.discard(lookupID, plan, "current")
	}

	c.persistHistory(ctx, lookupID, entries)

	forecast, err := plan.fetchForecast(ctx)
	if err != nil {
		return c.finishFailure(gen, lookupID, plan, err, true)
	}

	if !c.applyForecast(gen, forecast) {
		return c.discard(lookupID, plan, "forecast")
	}

	c.logger.Info("Lookup completed",
		ports.F("lookup_id", lookupID),
		ports.F("kind", plan.kind),
		ports.F("location", current.Location.Name),
		ports.F("country", current.Location.Country),
		ports.F("samples", len(forecast.Samples)),
		ports.F("duration_ms", c.now().Sub(started).Milliseconds()))

	c.reportOutcome(plan.kind, OutcomeSuccess)
	return OutcomeSuccess
}

func (c *Controller) begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	c.state.loading = true
	c.state.err = ""
	return c.generation
}

func (c *Controller) applyCurrent(gen uint64, current *weather.CurrentConditions, adoptName bool) ([]history.Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		return nil, false
	}

	c.state.current = current
	if adoptName {
		c.state.query = current.Location.Name
	}

	return c.history.Record(current.Location, c.now()), true
}

func (c *Controller) applyForecast(gen uint64, forecast *weather.Forecast) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		return false
	}

	c.state.forecast = forecast
	c.state.hourlyStart = 0
	c.state.loading = false
	return true
}

func (c *Controller) finishFailure(gen uint64, lookupID string, plan lookupPlan, err error, partial bool) Outcome {
	message := plan.resolveFailure(err)

	c.mu.Lock()
	stale := gen != c.generation
	if !stale {
		c.state.loading = false
		c.state.err = message
	}
	c.mu.Unlock()

	if stale {
		return c.discard(lookupID, plan, "error")
	}

	outcome := OutcomeFailure
	if partial {
		outcome = OutcomePartial
	}

	c.logger.Warn("Lookup failed",
		ports.F("lookup_id", lookupID),
		ports.F("kind", plan.kind),
		ports.F("target", plan.target),
		ports.F("outcome", string(outcome)),
		ports.F("status_code", errors.StatusCode(err)),
		ports.F("error", err.Error()))

	c.reportOutcome(plan.kind, outcome)
	return outcome
}

func (c *Controller) discard(lookupID string, plan lookupPlan, stage string) Outcome {
	c.logger.Debug("Discarding superseded lookup result",
		ports.F("lookup_id", lookupID),
		ports.F("kind", plan.kind),
		ports.F("stage", stage))

	c.reportOutcome(plan.kind, OutcomeDiscarded)
	return OutcomeDiscarded
}

func (c *Controller) persistHistory(ctx context.Context, lookupID string, recorded []history.Entry) {
	c.reportHistorySize(len(recorded))

	c.persistMu.Lock()
	defer c.persistMu.Unlock()

	if err := c.history.Persist(ctx, c.history.Entries()); err != nil {
		c.logger.Error("Failed to persist history",
			ports.F("lookup_id", lookupID),
			ports.F("error", err.Error()))
	}
}

// NextHours advances the hourly window by one sample, clamped
func (c *Controller) NextHours() int {
	return c.shiftWindow(1)
}

// PreviousHours moves the hourly window back by one sample, clamped
func (c *Controller) PreviousHours() int {
	return c.shiftWindow(-1)
}

func (c *Controller) shiftWindow(delta int) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	if c.state.forecast != nil {
		total = len(c.state.forecast.Samples)
	}

	c.state.hourlyStart = weather.ClampWindowStart(total, c.state.hourlyStart+delta, weather.HourlyWindowSize)
	return c.state.hourlyStart
}

// View returns a snapshot of the current state with derived summaries
func (c *Controller) View() View {
	c.mu.Lock()
	state := c.state
	c.mu.Unlock()

	return buildView(state, c.history.Entries())
}

func (c *Controller) reportOutcome(kind string, outcome Outcome) {
	if c.metrics != nil {
		c.metrics.RecordLookup(kind, string(outcome))
	}
}

func (c *Controller) reportHistorySize(size int) {
	if c.metrics != nil {
		c.metrics.SetHistorySize(size)
	}
}
