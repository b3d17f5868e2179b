// Package clock renders the clock face, date line and greeting into a
// surface and applies incremental settings changes.
//
// A Widget is driven from a single goroutine: Run serializes the one
// second tick and every Event, so renders never interleave.
package clock

import (
	"context"
	"fmt"
	"time"

	"swayclock/i18n"
	"swayclock/logging"
	"swayclock/store"
	"swayclock/surface"
)

// Ticker is the recurring timer the render loop owns.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type timeTicker struct{ t *time.Ticker }

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop()               { t.t.Stop() }

func newTimeTicker(d time.Duration) Ticker { return timeTicker{time.NewTicker(d)} }

const tickPeriod = time.Second

// Options configures a Widget. Store is required; everything else has a
// default.
type Options struct {
	Store      store.Store
	Debouncer  *store.Debouncer
	Translator *i18n.Translator
	Clock      Clock
	Measurer   Measurer
	NewTicker  func(time.Duration) Ticker
	// OnReady is called once the first render succeeded.
	OnReady func(feature string)
}

type runState struct {
	settings   Settings
	greeting   string
	dateformat DateFormat
}

type Widget struct {
	Surface *surface.Surface

	store     store.Store
	debounce  *store.Debouncer
	tr        *i18n.Translator
	clock     Clock
	measure   Measurer
	newTicker func(time.Duration) Ticker
	onReady   func(string)
	rare      bool

	ticker Ticker
	run    runState
	style  AnalogStyle
	widths []float64
}

func New(opts Options) *Widget {
	w := &Widget{
		Surface:   surface.New(),
		store:     opts.Store,
		debounce:  opts.Debouncer,
		tr:        opts.Translator,
		clock:     opts.Clock,
		measure:   opts.Measurer,
		newTicker: opts.NewTicker,
		onReady:   opts.OnReady,
		rare:      oneInFive,
		style:     DefaultAnalogStyle(),
		widths:    []float64{1},
	}
	if w.debounce == nil {
		w.debounce = store.NewDebouncer(opts.Store, 400*time.Millisecond, func(err error) {
			logging.Warn("debounced write failed", "error", err)
		})
	}
	if w.tr == nil {
		w.tr = i18n.New("en")
	}
	if w.clock == nil {
		w.clock = realClock{}
	}
	if w.measure == nil {
		w.measure = RuneMeasurer{}
	}
	if w.newTicker == nil {
		w.newTicker = newTimeTicker
	}
	return w
}

// Load reads the synced keys the clock starts from. Absent keys are left
// nil or empty so Init falls back to defaults.
func Load(ctx context.Context, s store.Store) (Sync, error) {
	data, err := s.Get(ctx, KeyClock, KeyDateFormat, KeyGreeting, KeyAnalogStyle)
	if err != nil {
		return Sync{}, fmt.Errorf("load settings: %w", err)
	}
	var out Sync
	clk := DefaultSettings()
	if data.Decode(KeyClock, &clk) {
		out.Clock = &clk
	}
	style := DefaultAnalogStyle()
	if data.Decode(KeyAnalogStyle, &style) {
		out.AnalogStyle = &style
	}
	var df string
	if data.Decode(KeyDateFormat, &df) && IsDateFormat(df) {
		out.DateFormat = DateFormat(df)
	}
	data.Decode(KeyGreeting, &out.Greeting)
	return out, nil
}

// Init performs the first render and starts the tick. On error nothing is
// started and OnReady is not called.
func (w *Widget) Init(data Sync) error {
	clk := DefaultSettings()
	if data.Clock != nil {
		clk = *data.Clock
	}
	df := data.DateFormat
	if df == "" {
		df = DateEU
	}
	if !ValidTimezone(clk.Timezone) {
		return fmt.Errorf("init clock: %w: %q", ErrBadTimezone, clk.Timezone)
	}

	w.startClock(clk, data.Greeting, df)
	w.renderDate(w.zoned(clk.Timezone), df)
	w.greetings(w.zoned(clk.Timezone), data.Greeting)
	w.analogStyle(data.AnalogStyle)
	w.clockSize(clk.Size)

	if w.onReady != nil {
		w.onReady("clock")
	}
	return nil
}

// zoned is ZonedDate for a timezone that was validated before it was
// stored in the run state.
func (w *Widget) zoned(tz string) time.Time {
	date, err := ZonedDate(w.clock.Now(), tz)
	if err != nil {
		logging.Debug("zoned date", "error", err)
	}
	return date
}

// startClock cancels any running tick, renders once and schedules the
// next renders every second.
func (w *Widget) startClock(clk Settings, greeting string, df DateFormat) {
	t := w.Surface.El("time")
	t.ToggleClass("analog", clk.Analog)
	t.ToggleClass("seconds", clk.Seconds)

	if clk.Seconds {
		w.widths = measureWidths(w.measure)
	}

	w.Stop()
	w.run = runState{settings: clk, greeting: greeting, dateformat: df}
	w.Tick()
	w.ticker = w.newTicker(tickPeriod)
}

// Tick renders the active face; at the top of each hour it also refreshes
// the date line and the greeting.
func (w *Widget) Tick() {
	clk := w.run.settings
	date := w.zoned(clk.Timezone)

	if clk.Analog {
		w.analog(date, clk.Seconds)
	} else {
		w.digital(date, clk.Ampm, clk.Seconds)
	}

	if date.Minute() == 0 {
		w.renderDate(date, w.run.dateformat)
		w.greetings(date, w.run.greeting)
	}
}

// Stop cancels the tick. The widget can be started again by Init or Update.
func (w *Widget) Stop() {
	if w.ticker != nil {
		w.ticker.Stop()
		w.ticker = nil
	}
}

func (w *Widget) tickC() <-chan time.Time {
	if w.ticker == nil {
		return nil
	}
	return w.ticker.C()
}

// Settings returns the settings the loop is currently rendering with.
func (w *Widget) Settings() Settings { return w.run.settings }

func (w *Widget) DateFormat() DateFormat { return w.run.dateformat }

func (w *Widget) Style() AnalogStyle { return w.style }

func (w *Widget) Translator() *i18n.Translator { return w.tr }

// SetTranslator switches language and re-renders every localized facet.
func (w *Widget) SetTranslator(tr *i18n.Translator) {
	w.tr = tr
	date := w.zoned(w.run.settings.Timezone)
	w.renderDate(date, w.run.dateformat)
	w.greetings(date, w.run.greeting)
	style := w.style
	w.analogStyle(&style)
}

// Event is applied on the loop goroutine.
type Event func(ctx context.Context, w *Widget) error

// UpdateEvent wraps a settings change as an Event.
func UpdateEvent(u Update) Event {
	return func(ctx context.Context, w *Widget) error { return w.Update(ctx, u) }
}

// LangEvent switches the widget to a new language.
func LangEvent(lang string) Event {
	return func(_ context.Context, w *Widget) error {
		if lang == w.tr.Lang() {
			return nil
		}
		w.SetTranslator(i18n.New(lang))
		return nil
	}
}

// Run drives the widget until ctx is done. flush, if set, is called after
// every tick and every event so outputs can read the surface.
func (w *Widget) Run(ctx context.Context, events <-chan Event, flush func()) error {
	defer w.debounce.Flush()
	defer w.Stop()
	if flush != nil {
		flush()
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.tickC():
			w.Tick()
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if err := ev(ctx, w); err != nil {
				logging.Warn("clock event", "error", err)
			}
		}
		if flush != nil {
			flush()
		}
	}
}
