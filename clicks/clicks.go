package clicks

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"math"

	"swayclock/clock"
	"swayclock/logging"
)

// Click represents a click event fed by swaybar back into stdin.
type Click struct {
	Name      string   `json:"name"`
	Instance  string   `json:"instance,omitempty"`
	Button    int      `json:"button"`
	X         int      `json:"x"`
	Y         int      `json:"y"`
	Modifiers []string `json:"modifiers"`
}

// Pointer buttons as swaybar numbers them.
const (
	ButtonLeft       = 1
	ButtonMiddle     = 2
	ButtonRight      = 3
	ButtonScrollUp   = 4
	ButtonScrollDown = 5
)

const (
	sizeStep = 0.1
	sizeMin  = 0.5
	sizeMax  = 3
)

// Read consumes newline-delimited JSON click events, emitting them onto out.
// It drops events if the channel is full to avoid blocking the main loop.
// swaybar opens the click stream with "[" and prefixes later events with ",".
func Read(r io.Reader, out chan<- Click) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := trimFraming(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		var c Click
		if err := json.Unmarshal(line, &c); err != nil {
			logging.Warn("click parse", "error", err)
			continue
		}
		select {
		case out <- c:
		default:
			// drop if full
		}
	}
	if err := sc.Err(); err != nil {
		logging.Warn("click scanner", "error", err)
	}
}

func trimFraming(b []byte) []byte {
	for len(b) > 0 && (b[0] == '[' || b[0] == ',' || b[0] == ' ') {
		b = b[1:]
	}
	return b
}

// Event maps a click to the settings change it stands for. The event reads
// the widget state when applied, so rapid clicks toggle correctly.
func Event(c Click) (clock.Event, bool) {
	var change func(w *clock.Widget) clock.Update
	switch c.Name {
	case "clock":
		switch c.Button {
		case ButtonLeft:
			change = func(w *clock.Widget) clock.Update {
				return clock.Update{Analog: flip(w.Settings().Analog)}
			}
		case ButtonMiddle:
			change = func(w *clock.Widget) clock.Update {
				return clock.Update{Seconds: flip(w.Settings().Seconds)}
			}
		case ButtonRight:
			change = func(w *clock.Widget) clock.Update {
				return clock.Update{Ampm: flip(w.Settings().Ampm)}
			}
		case ButtonScrollUp, ButtonScrollDown:
			step := sizeStep
			if c.Button == ButtonScrollDown {
				step = -sizeStep
			}
			change = func(w *clock.Widget) clock.Update {
				size := nextSize(w.Settings().Size, step)
				return clock.Update{Size: &size}
			}
		}
	case "date":
		if c.Button == ButtonLeft {
			change = func(w *clock.Widget) clock.Update {
				df := string(nextFormat(w.DateFormat()))
				return clock.Update{DateFormat: &df}
			}
		}
	}
	if change == nil {
		return nil, false
	}
	return func(ctx context.Context, w *clock.Widget) error {
		return w.Update(ctx, change(w))
	}, true
}

func flip(b bool) *bool {
	v := !b
	return &v
}

func nextSize(size, step float64) float64 {
	if size <= 0 {
		size = 1
	}
	size = math.Round((size+step)*10) / 10
	return math.Max(sizeMin, math.Min(sizeMax, size))
}

func nextFormat(df clock.DateFormat) clock.DateFormat {
	for i, f := range clock.DateFormats {
		if f == df {
			return clock.DateFormats[(i+1)%len(clock.DateFormats)]
		}
	}
	return clock.DateFormats[0]
}
