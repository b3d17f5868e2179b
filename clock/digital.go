package clock

import (
	"strconv"
	"time"
)

// displayHour maps a 0..23 hour to what the digital face shows.
func displayHour(hour int, ampm bool) int {
	if !ampm {
		return hour
	}
	h := hour % 12
	if h == 0 {
		h = 12
	}
	return h
}

func fixunits(v int) string {
	if v < 10 {
		return "0" + strconv.Itoa(v)
	}
	return strconv.Itoa(v)
}

func (w *Widget) digital(date time.Time, ampm, seconds bool) {
	dom := w.Surface.El("digital")
	h := displayHour(date.Hour(), ampm)
	m := fixunits(date.Minute())
	s := fixunits(date.Second())

	if seconds {
		tens := date.Second() / 10
		width := secondsWidth(w.widths, tens)
		dom.SetStyle("--seconds-width", formatFloat(width)+"ch")
		dom.SetStyle("--seconds-margin-offset", strconv.FormatFloat(width-2, 'f', 1, 64)+"ch")
	}

	dom.ToggleClass("zero", !ampm && h < 10)

	w.Surface.El("digital-hh").SetText(strconv.Itoa(h))
	w.Surface.El("digital-mm").SetText(m)
	w.Surface.El("digital-ss").SetText(s)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
