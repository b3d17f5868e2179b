package clock

import (
	"testing"
	"time"
)

func TestDisplayHour(t *testing.T) {
	for h := 0; h < 24; h++ {
		want := h % 12
		if want == 0 {
			want = 12
		}
		if got := displayHour(h, true); got != want {
			t.Errorf("displayHour(%d, ampm) = %d, want %d", h, got, want)
		}
		if got := displayHour(h, false); got != h {
			t.Errorf("displayHour(%d, 24h) = %d", h, got)
		}
	}
}

func TestDigitalZeroClass(t *testing.T) {
	tests := []struct {
		name     string
		hour     int
		ampm     bool
		wantHH   string
		wantZero bool
	}{
		{name: "24h single digit", hour: 7, wantHH: "7", wantZero: true},
		{name: "24h double digit", hour: 13, wantHH: "13", wantZero: false},
		{name: "12h afternoon", hour: 13, ampm: true, wantHH: "1", wantZero: false},
		{name: "12h midnight", hour: 0, ampm: true, wantHH: "12", wantZero: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, at(tt.hour, 4, 9), "en")
			f.w.digital(at(tt.hour, 4, 9), tt.ampm, false)
			if got := f.text("digital-hh"); got != tt.wantHH {
				t.Errorf("hh = %q, want %q", got, tt.wantHH)
			}
			if f.text("digital-mm") != "04" || f.text("digital-ss") != "09" {
				t.Errorf("mm:ss = %s:%s", f.text("digital-mm"), f.text("digital-ss"))
			}
			if got := f.w.Surface.El("digital").HasClass("zero"); got != tt.wantZero {
				t.Errorf("zero = %v, want %v", got, tt.wantZero)
			}
		})
	}
}

func TestDigitalSecondsWidth(t *testing.T) {
	f := newFixture(t, at(10, 0, 0), "en")
	f.w.startClock(Settings{Seconds: true, Timezone: "auto", Size: 1}, "", DateEU)
	// widths: [1, 0.6, 1, 1, 1.1, 1]; min 0.6
	tests := []struct {
		sec        int
		wantWidth  string
		wantOffset string
	}{
		{sec: 5, wantWidth: "1.6ch", wantOffset: "-0.4ch"},
		{sec: 15, wantWidth: "1.2ch", wantOffset: "-0.8ch"},
		{sec: 42, wantWidth: "1.7ch", wantOffset: "-0.3ch"},
	}
	for _, tt := range tests {
		f.w.digital(at(10, 0, tt.sec), false, true)
		dom := f.w.Surface.El("digital")
		if got := dom.Style("--seconds-width"); got != tt.wantWidth {
			t.Errorf("sec %d: --seconds-width = %q, want %q", tt.sec, got, tt.wantWidth)
		}
		if got := dom.Style("--seconds-margin-offset"); got != tt.wantOffset {
			t.Errorf("sec %d: --seconds-margin-offset = %q, want %q", tt.sec, got, tt.wantOffset)
		}
	}
}

func TestMeasureWidths(t *testing.T) {
	got := measureWidths(digitWidths{"0": 10, "1": 6, "2": 10, "3": 10, "4": 11, "5": 10})
	want := []float64{1, 0.6, 1, 1, 1.1, 1}
	if len(got) != len(want) {
		t.Fatalf("measureWidths() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("widths[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	flat := measureWidths(RuneMeasurer{})
	for i, w := range flat {
		if w != 1 {
			t.Errorf("RuneMeasurer widths[%d] = %v, want 1", i, w)
		}
	}

	if got := measureWidths(digitWidths{}); len(got) != 6 || got[3] != 1 {
		t.Errorf("zero baseline widths = %v", got)
	}
}

func TestAdvances(t *testing.T) {
	a := Advances{7, 4, 7, 7, 8, 7}
	if got := a.Width("14"); got != 12 {
		t.Errorf("Width(14) = %v, want 12", got)
	}
	if got := a.Width("9"); got != 1 {
		t.Errorf("Width(9) outside table = %v, want cell width 1", got)
	}
}

func TestHandAngles(t *testing.T) {
	tests := []struct {
		date                time.Time
		wantH, wantM, wantS string
	}{
		{date: at(3, 0, 0), wantH: "90.0", wantM: "0.0", wantS: "0.0"},
		{date: at(0, 30, 0), wantH: "15.0", wantM: "180.0", wantS: "0.0"},
		{date: at(15, 0, 30), wantH: "90.0", wantM: "3.0", wantS: "180.0"},
		{date: at(11, 59, 59), wantH: "359.5", wantM: "359.9", wantS: "354.0"},
	}
	for _, tt := range tests {
		h, m, s := HandAngles(tt.date)
		if h != tt.wantH || m != tt.wantM || s != tt.wantS {
			t.Errorf("HandAngles(%s) = %s, %s, %s; want %s, %s, %s",
				tt.date.Format("15:04:05"), h, m, s, tt.wantH, tt.wantM, tt.wantS)
		}
	}
}

func TestAnalogStyle(t *testing.T) {
	f := newFixture(t, at(9, 0, 0), "ar")
	f.w.analogStyle(&AnalogStyle{
		Face:       "number",
		Hands:      "classic",
		Shape:      "square",
		Border:     Color{Alpha: 0.5, RGB: "0, 0, 0"},
		Background: Color{Alpha: 0.8, RGB: "255, 255, 255"},
	})
	el := f.w.Surface.El("analog")
	if el.Data("face") != "" || el.Data("shape") != "square" || el.Data("hands") != "classic" {
		t.Errorf("data = face %q shape %q hands %q", el.Data("face"), el.Data("shape"), el.Data("hands"))
	}
	if !el.HasClass("white-opaque") || el.HasClass("transparent") {
		t.Errorf("classes = %v", el.Classes())
	}
	if got := el.Style("--analog-border"); got != "rgba(0, 0, 0, 0.5)" {
		t.Errorf("--analog-border = %q", got)
	}
	if got := f.text("analog-face-3"); got != "١٢" {
		t.Errorf("arabic fourth face slot = %q", got)
	}

	f.w.analogStyle(&AnalogStyle{Face: "swiss", Background: Color{Alpha: 0, RGB: "0, 0, 0"}})
	if el.Data("face") != "swiss" || !el.HasClass("transparent") || el.HasClass("white-opaque") {
		t.Errorf("swiss transparent: face %q classes %v", el.Data("face"), el.Classes())
	}
	if f.text("analog-face-0") != "" {
		t.Errorf("swiss face glyph = %q, want empty", f.text("analog-face-0"))
	}
}

func TestFaceGlyphs(t *testing.T) {
	tests := []struct {
		face, lang string
		want       [4]string
	}{
		{"roman", "en", [4]string{"XII", "III", "VI", "IX"}},
		{"marks", "en", [4]string{"│", "―", "│", "―"}},
		{"number", "en", [4]string{"12", "3", "6", "9"}},
		{"number", "fa", [4]string{"۳", "۶", "۹", "۱۲"}},
		{"number", "zh_HK", [4]string{"三", "六", "九", "十二"}},
		{"number", "am", [4]string{"Գ", "Զ", "Թ", "ԺԲ"}},
		{"braun", "en", [4]string{}},
	}
	for _, tt := range tests {
		if got := faceGlyphs(tt.face, tt.lang); got != tt.want {
			t.Errorf("faceGlyphs(%s, %s) = %v, want %v", tt.face, tt.lang, got, tt.want)
		}
	}
}

func TestRenderDateFormats(t *testing.T) {
	tests := []struct {
		format     DateFormat
		lang       string
		aa, bb, cc string
	}{
		{DateEU, "en", "Monday", "4", "March"},
		{DateUS, "en", "Monday", "March", "4"},
		{DateCN, "en", "March", "4", "Monday"},
		{DateEU, "fr", "lundi", "4", "mars"},
		{DateCN, "zh_CN", "三月", "4日", "星期一"},
	}
	for _, tt := range tests {
		t.Run(string(tt.format)+"/"+tt.lang, func(t *testing.T) {
			f := newFixture(t, at(9, 0, 0), tt.lang)
			f.w.renderDate(at(9, 0, 0), DateUS)
			f.w.renderDate(at(9, 0, 0), tt.format)
			if f.text("date-aa") != tt.aa || f.text("date-bb") != tt.bb || f.text("date-cc") != tt.cc {
				t.Errorf("slots = %q %q %q, want %q %q %q",
					f.text("date-aa"), f.text("date-bb"), f.text("date-cc"), tt.aa, tt.bb, tt.cc)
			}
			classes := f.w.Surface.El("date").Classes()
			if len(classes) != 1 || classes[0] != string(tt.format) {
				t.Errorf("date classes = %v", classes)
			}
		})
	}
}

func TestDayPeriodBoundaries(t *testing.T) {
	tests := []struct {
		hour int
		want period
	}{
		{0, periodEvening}, {2, periodEvening},
		{3, periodNight}, {4, periodNight},
		{5, periodMorning}, {11, periodMorning},
		{12, periodAfternoon}, {17, periodAfternoon},
		{18, periodEvening}, {23, periodEvening},
	}
	for _, tt := range tests {
		if got := dayPeriod(tt.hour); got != tt.want {
			t.Errorf("dayPeriod(%d) = %s, want %s", tt.hour, got, tt.want)
		}
	}
}

func TestGreetings(t *testing.T) {
	tests := []struct {
		name          string
		hour          int
		person        string
		rare          bool
		wantText      string
		wantTransform string
	}{
		{name: "plain", hour: 13, wantText: "Good afternoon", wantTransform: "capitalize"},
		{name: "named", hour: 19, person: "Ada", wantText: "Good evening, ", wantTransform: "none"},
		{name: "night", hour: 4, wantText: "Good night", wantTransform: "capitalize"},
		{name: "rare night", hour: 4, rare: true, wantText: "Sweet dreams", wantTransform: "none"},
		{name: "rare only affects night", hour: 8, rare: true, wantText: "Good morning", wantTransform: "capitalize"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, at(tt.hour, 0, 0), "en")
			f.w.rare = tt.rare
			f.w.greetings(at(tt.hour, 0, 0), tt.person)
			if got := f.text("greeting"); got != tt.wantText {
				t.Errorf("greeting = %q, want %q", got, tt.wantText)
			}
			if got := f.text("greeting-name"); got != tt.person {
				t.Errorf("name = %q, want %q", got, tt.person)
			}
			if got := f.w.Surface.El("greetings").Style("text-transform"); got != tt.wantTransform {
				t.Errorf("text-transform = %q, want %q", got, tt.wantTransform)
			}
		})
	}
}
