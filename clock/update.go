package clock

import (
	"context"
	"fmt"

	"swayclock/logging"
	"swayclock/store"
)

// Update applies a partial settings change. Unknown or invalid values are
// ignored. If the stored clock, date format or greeting is missing the whole
// update is a no-op.
//
// Opacity changes are persisted through the debouncer; every other write
// goes straight to the store.
func (w *Widget) Update(ctx context.Context, u Update) error {
	data, err := w.store.Get(ctx, KeyClock, KeyDateFormat, KeyGreeting, KeyAnalogStyle)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	if data == nil {
		data = store.Record{}
	}
	// Opacity writes still waiting in the debouncer are newer than the store.
	for k, v := range w.debounce.Pending() {
		data[k] = v
	}

	style := DefaultAnalogStyle()
	if _, ok := data[KeyAnalogStyle]; ok && !data.Decode(KeyAnalogStyle, &style) {
		style = DefaultAnalogStyle()
	}
	clk := DefaultSettings()
	var storedFormat, greeting string
	if !data.Decode(KeyClock, &clk) || !data.Decode(KeyDateFormat, &storedFormat) || !data.Decode(KeyGreeting, &greeting) {
		logging.Debug("clock update ignored: settings not initialized")
		return nil
	}
	dateformat := DateFormat(storedFormat)
	if !IsDateFormat(storedFormat) {
		dateformat = DateEU
	}

	if u.Analog != nil {
		w.Surface.El("analog_options").ToggleClass("shown", *u.Analog)
		w.Surface.El("digital_options").ToggleClass("shown", !*u.Analog)
	}

	if u.DateFormat != nil && IsDateFormat(*u.DateFormat) {
		df := DateFormat(*u.DateFormat)
		w.renderDate(w.zoned(clk.Timezone), df)
		w.persist(ctx, map[string]any{KeyDateFormat: df})
		dateformat = df
	}

	if u.Greeting != nil {
		w.greetings(w.zoned(clk.Timezone), *u.Greeting)
		w.persist(ctx, map[string]any{KeyGreeting: *u.Greeting})
		greeting = *u.Greeting
	}

	timezone := clk.Timezone
	if u.Timezone != nil && ValidTimezone(*u.Timezone) {
		timezone = *u.Timezone
		w.renderDate(w.zoned(timezone), dateformat)
		w.greetings(w.zoned(timezone), greeting)
	}

	if u.Ampm != nil {
		clk.Ampm = *u.Ampm
	}
	if u.Size != nil && *u.Size > 0 {
		clk.Size = *u.Size
	}
	if u.Analog != nil {
		clk.Analog = *u.Analog
	}
	if u.Seconds != nil {
		clk.Seconds = *u.Seconds
	}
	clk.Timezone = timezone

	if u.Background != nil && u.Background.Opacity != nil {
		style.Background.Alpha = clamp01(*u.Background.Opacity)
		w.debounced(map[string]any{KeyAnalogStyle: style})
		w.analogStyle(&style)
		return nil
	}

	if u.Border != nil && u.Border.Opacity != nil {
		style.Border.Alpha = clamp01(*u.Border.Opacity)
		w.debounced(map[string]any{KeyAnalogStyle: style})
		w.analogStyle(&style)
		return nil
	}

	if u.Background != nil && isShade(u.Background.Shade) {
		style.Background.RGB = shadeRGB(u.Background.Shade)
		w.persist(ctx, map[string]any{KeyAnalogStyle: style})
		w.analogStyle(&style)
		return nil
	}

	if u.Border != nil && isShade(u.Border.Shade) {
		style.Border.RGB = shadeRGB(u.Border.Shade)
		w.persist(ctx, map[string]any{KeyAnalogStyle: style})
		w.analogStyle(&style)
		return nil
	}

	if u.Hands != nil && IsHands(*u.Hands) {
		style.Hands = *u.Hands
	}
	if u.Shape != nil && IsShape(*u.Shape) {
		style.Shape = *u.Shape
	}
	if u.Face != nil && IsFace(*u.Face) {
		style.Face = *u.Face
	}

	w.persist(ctx, map[string]any{KeyClock: clk, KeyAnalogStyle: style})
	w.startClock(clk, greeting, dateformat)
	w.analogStyle(&style)
	w.clockSize(clk.Size)
	return nil
}

// persist writes immediately. Failures are logged, not returned: a lost
// write only means the next start shows the previous value.
func (w *Widget) persist(ctx context.Context, fields map[string]any) {
	rec, err := store.Fields(fields)
	if err != nil {
		logging.Warn("encode settings", "error", err)
		return
	}
	// Land the older debounced record first so it cannot fire over rec.
	w.debounce.Flush()
	if err := w.store.Set(ctx, rec); err != nil {
		logging.Warn("persist settings", "error", err)
	}
}

func (w *Widget) debounced(fields map[string]any) {
	rec, err := store.Fields(fields)
	if err != nil {
		logging.Warn("encode settings", "error", err)
		return
	}
	w.debounce.Push(rec)
}

func isShade(s string) bool { return s == "light" || s == "dark" }

// shadeRGB maps the button state to the colour it switches to.
func shadeRGB(shade string) string {
	if shade == "light" {
		return rgbBlack
	}
	return rgbWhite
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
