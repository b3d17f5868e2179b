package clock

import (
	"math/rand/v2"
	"time"
)

// oneInFive picks the alternate night phrasing for the whole process.
var oneInFive = rand.Float64() > 0.8

type period string

const (
	periodNight     period = "night"
	periodMorning   period = "morning"
	periodAfternoon period = "afternoon"
	periodEvening   period = "evening"
)

func dayPeriod(hour int) period {
	switch {
	case hour < 3:
		return periodEvening
	case hour < 5:
		return periodNight
	case hour < 12:
		return periodMorning
	case hour < 18:
		return periodAfternoon
	}
	return periodEvening
}

func greetingText(p period, rare bool) string {
	switch p {
	case periodMorning:
		return "Good morning"
	case periodAfternoon:
		return "Good afternoon"
	case periodNight:
		if rare {
			return "Sweet dreams"
		}
		return "Good night"
	}
	return "Good evening"
}

func (w *Widget) greetings(date time.Time, name string) {
	p := dayPeriod(date.Hour())
	greet := greetingText(p, w.rare)

	transform := "capitalize"
	if name != "" || (w.rare && p == periodNight) {
		transform = "none"
	}
	w.Surface.El("greetings").SetStyle("text-transform", transform)

	text := w.tr.Trad(greet)
	if name != "" {
		text += ", "
	}
	w.Surface.El("greeting").SetText(text)
	w.Surface.El("greeting-name").SetText(name)
}
