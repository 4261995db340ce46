package screen

import (
	"context"
	"errors"
	"sync"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/model/external"
	"go-weather/internal/domain/usecase/city"
	"go-weather/internal/domain/usecase/weather"
	"go-weather/pkg/debounce"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
)

const (
	DefaultDebounce       = 1200 * time.Millisecond
	DefaultMinQueryLength = 3
)

var (
	ErrSearchClosed     = errors.New("search is not open")
	ErrInvalidSelection = errors.New("no search result at that position")
)

// Config tunes the search behaviour
type Config struct {
	Debounce       time.Duration
	MinQueryLength int
}

// Listener is notified with a fresh snapshot after every state change. It must not block and
// must not call back into the controller synchronously.
type Listener func(State)

// Controller sequences location, forecast, search and persistence in response to screen events.
//
// Every forecast and every search takes a token from a monotonically increasing counter. A result
// is applied only if its token is still the latest of its kind; issuing a new request also cancels
// the context of the one it supersedes. Requests that change the query (Mount and SelectCity) also
// take a selection token, which guards persistence so a background refresh of the same query never
// skips it.
type Controller struct {
	weather  weather.UseCase
	city     city.UseCase
	location api.LocationGateway
	config   Config
	debounce *debounce.Debouncer

	ctx    context.Context
	cancel context.CancelFunc

	mu             sync.Mutex
	state          State
	forecastToken  uint64
	searchToken    uint64
	selectionToken uint64
	cancelForecast context.CancelFunc
	cancelSearch   context.CancelFunc

	persistMu sync.Mutex

	notifyMu  sync.Mutex
	listeners []Listener
}

func NewController(weatherUseCase weather.UseCase, cityUseCase city.UseCase, location api.LocationGateway, config Config) *Controller {
	if config.Debounce <= 0 {
		config.Debounce = DefaultDebounce
	}
	if config.MinQueryLength <= 0 {
		config.MinQueryLength = DefaultMinQueryLength
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Controller{
		weather:  weatherUseCase,
		city:     cityUseCase,
		location: location,
		config:   config,
		debounce: debounce.New(config.Debounce),
		ctx:      ctx,
		cancel:   cancel,
		state:    State{Loading: true},
	}
}

// Subscribe registers a listener for state changes
func (c *Controller) Subscribe(listener Listener) {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()
	c.listeners = append(c.listeners, listener)
}

// Snapshot returns a copy of the current state
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// Close disarms the debounce timer and cancels every in-flight request
func (c *Controller) Close() {
	c.debounce.Cancel()
	c.cancel()
}

// Mount asks for the location permission and loads the first forecast: by coordinates when
// granted, by the persisted (or default) city otherwise. It returns immediately.
func (c *Controller) Mount() {
	c.mu.Lock()
	token, ctx := c.beginMountLocked()
	c.mu.Unlock()
	c.notify()

	go c.mount(ctx, token)
}

func (c *Controller) beginMountLocked() (uint64, context.Context) {
	c.selectionToken++
	return c.beginForecastLocked(true)
}

func (c *Controller) mount(ctx context.Context, token uint64) {
	query := c.resolveInitialQuery(ctx)
	c.setQuery(token, query)
	log.Info(msg.GetMessage("screen.mounted", query))
	c.finishForecast(token, c.weather.FetchWeatherForecast(ctx, query))
}

func (c *Controller) resolveInitialQuery(ctx context.Context) string {
	status, err := c.location.RequestPermission(ctx)
	if err == nil && status == model.PermissionGranted {
		coordinates, err := c.location.CurrentPosition(ctx)
		if err == nil {
			log.Info(msg.GetMessage("screen.location-resolved", coordinates.Query()),
				zap.Float64("latitude", coordinates.Latitude),
				zap.Float64("longitude", coordinates.Longitude))
			return coordinates.Query()
		}
		log.Warn(msg.GetMessage("screen.location-failed", err))
	}

	name, _, loadErr := c.city.LoadCity(ctx)
	if loadErr != nil {
		log.Warn(msg.GetMessage("screen.location-failed", loadErr))
	}
	if status != model.PermissionGranted || err != nil {
		log.Info(msg.GetMessage("screen.permission-denied", name), zap.String("permission", string(status)))
	}
	return name
}

// ToggleSearch shows or hides the search input. Hiding clears the results and any pending search.
func (c *Controller) ToggleSearch() {
	c.mu.Lock()
	c.state.ShowSearch = !c.state.ShowSearch
	if !c.state.ShowSearch {
		c.clearSearchLocked()
	}
	c.mu.Unlock()
	c.notify()
}

// Blur hides the search input and clears the results
func (c *Controller) Blur() {
	c.mu.Lock()
	c.state.ShowSearch = false
	c.clearSearchLocked()
	c.mu.Unlock()
	c.notify()
}

// ChangeText records the typed text and re-arms the debounce timer. When the timer fires the
// suggestion list is fetched for the final text, provided it is long enough.
func (c *Controller) ChangeText(text string) error {
	c.mu.Lock()
	if !c.state.ShowSearch {
		c.mu.Unlock()
		return ErrSearchClosed
	}
	c.state.SearchText = text
	c.mu.Unlock()

	c.debounce.Trigger(func() { c.search(text) })
	c.notify()
	return nil
}

func (c *Controller) search(text string) {
	if utf8.RuneCountInString(text) < c.config.MinQueryLength {
		return
	}

	c.mu.Lock()
	if !c.state.ShowSearch {
		c.mu.Unlock()
		return
	}
	c.searchToken++
	token := c.searchToken
	if c.cancelSearch != nil {
		c.cancelSearch()
	}
	ctx, cancel := context.WithCancel(c.ctx)
	c.cancelSearch = cancel
	c.mu.Unlock()

	result := c.weather.FetchSearchList(ctx, text)

	c.mu.Lock()
	if token != c.searchToken || !c.state.ShowSearch {
		c.mu.Unlock()
		cancel()
		log.Debug(msg.GetMessage("screen.stale-result", "search", token, c.latestSearchToken()))
		return
	}
	c.cancelSearch()
	c.cancelSearch = nil
	if result.OK {
		c.state.SearchResults = result.Data
		c.state.SearchFailure = nil
	} else {
		c.state.SearchResults = nil
		c.state.SearchFailure = result.Failure
	}
	c.mu.Unlock()
	c.notify()
}

// SelectCity closes the search, loads the forecast for the location's name and, once that request
// completes, persists the name as the fallback city unless another city was selected or the screen
// remounted in the meantime.
func (c *Controller) SelectCity(location external.SearchLocationDTO) {
	c.mu.Lock()
	c.state.ShowSearch = false
	c.clearSearchLocked()
	c.selectionToken++
	selection := c.selectionToken
	token, ctx := c.beginForecastLocked(true)
	c.state.Query = location.Name
	c.mu.Unlock()
	c.notify()

	go func() {
		c.finishForecast(token, c.weather.FetchWeatherForecast(ctx, location.Name))
		c.persistCity(selection, location.Name)
	}()
}

// SelectIndex selects the search result at index
func (c *Controller) SelectIndex(index int) error {
	c.mu.Lock()
	if !c.state.ShowSearch || index < 0 || index >= len(c.state.SearchResults) {
		c.mu.Unlock()
		return ErrInvalidSelection
	}
	location := c.state.SearchResults[index]
	c.mu.Unlock()

	c.SelectCity(location)
	return nil
}

// Refresh re-fetches the forecast for the last query in the background, without the loading
// indicator. It does nothing while another forecast is in flight; before the first query is known
// it mounts.
func (c *Controller) Refresh() bool {
	c.mu.Lock()
	if c.cancelForecast != nil {
		c.mu.Unlock()
		return false
	}
	query := c.state.Query
	if query == "" {
		token, ctx := c.beginMountLocked()
		c.mu.Unlock()
		c.notify()
		go c.mount(ctx, token)
		return true
	}
	token, ctx := c.beginForecastLocked(false)
	c.mu.Unlock()
	c.notify()

	go func() {
		c.finishForecast(token, c.weather.FetchWeatherForecast(ctx, query))
	}()
	return true
}

func (c *Controller) persistCity(selection uint64, name string) {
	c.persistMu.Lock()
	defer c.persistMu.Unlock()

	// a later selection or mount owns the persisted city now
	if c.latestSelectionToken() != selection {
		return
	}
	if err := c.city.StoreCity(c.ctx, name); err != nil {
		log.Error(msg.GetMessage("screen.persist-failed", name, err), zap.Error(err))
	}
}

// beginForecastLocked takes the next forecast token and cancels the request it supersedes. c.mu must be held.
func (c *Controller) beginForecastLocked(loading bool) (uint64, context.Context) {
	c.forecastToken++
	token := c.forecastToken
	if c.cancelForecast != nil {
		c.cancelForecast()
	}
	ctx, cancel := context.WithCancel(c.ctx)
	c.cancelForecast = cancel
	if loading {
		c.state.Loading = true
	}
	return token, ctx
}

func (c *Controller) setQuery(token uint64, query string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if token == c.forecastToken {
		c.state.Query = query
	}
}

// finishForecast applies result if token is still the latest forecast token and reports whether it did
func (c *Controller) finishForecast(token uint64, result model.Result[*external.WeatherForecastResponse]) bool {
	c.mu.Lock()
	if token != c.forecastToken {
		latest := c.forecastToken
		c.mu.Unlock()
		log.Debug(msg.GetMessage("screen.stale-result", "forecast", token, latest))
		return false
	}

	c.cancelForecast()
	c.cancelForecast = nil
	c.state.Loading = false
	if result.OK {
		c.state.Weather = result.Data
		c.state.Failure = nil
	} else {
		c.state.Failure = result.Failure
	}
	c.mu.Unlock()

	c.notify()
	return true
}

// clearSearchLocked drops the text, the results and any pending or in-flight search
func (c *Controller) clearSearchLocked() {
	c.debounce.Cancel()
	c.searchToken++
	if c.cancelSearch != nil {
		c.cancelSearch()
		c.cancelSearch = nil
	}
	c.state.SearchText = ""
	c.state.SearchResults = nil
	c.state.SearchFailure = nil
}

func (c *Controller) latestSelectionToken() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selectionToken
}

func (c *Controller) latestSearchToken() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.searchToken
}

func (c *Controller) notify() {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	if len(c.listeners) == 0 {
		return
	}
	state := c.Snapshot()
	for _, listener := range c.listeners {
		listener(state)
	}
}
