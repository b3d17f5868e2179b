package clock

// Storage keys.
const (
	KeyClock       = "clock"
	KeyDateFormat  = "dateformat"
	KeyGreeting    = "greeting"
	KeyAnalogStyle = "analogstyle"
)

// Settings is the persisted clock record.
type Settings struct {
	Ampm     bool    `json:"ampm"`
	Analog   bool    `json:"analog"`
	Seconds  bool    `json:"seconds"`
	Timezone string  `json:"timezone"`
	Size     float64 `json:"size"`
}

func DefaultSettings() Settings {
	return Settings{Timezone: "auto", Size: 1}
}

// Color is an "R, G, B" triplet with its opacity.
type Color struct {
	Alpha float64 `json:"alpha"`
	RGB   string  `json:"rgb"`
}

// AnalogStyle is persisted separately from Settings.
type AnalogStyle struct {
	Face       string `json:"face"`
	Hands      string `json:"hands"`
	Shape      string `json:"shape"`
	Border     Color  `json:"border"`
	Background Color  `json:"background"`
}

const (
	rgbWhite = "255, 255, 255"
	rgbBlack = "0, 0, 0"
)

func DefaultAnalogStyle() AnalogStyle {
	return AnalogStyle{
		Face:       "none",
		Hands:      "modern",
		Shape:      "round",
		Border:     Color{Alpha: 1, RGB: rgbWhite},
		Background: Color{Alpha: 0.2, RGB: rgbWhite},
	}
}

type DateFormat string

const (
	DateEU DateFormat = "eu"
	DateUS DateFormat = "us"
	DateCN DateFormat = "cn"
)

// DateFormats lists the accepted formats in cycling order.
var DateFormats = []DateFormat{DateEU, DateUS, DateCN}

var (
	faces  = []string{"none", "number", "roman", "marks", "swiss", "braun"}
	hands  = []string{"modern", "swiss-hands", "classic", "braun", "apple"}
	shapes = []string{"round", "square", "rectangle"}
)

func oneOf(s string, set []string) bool {
	for _, v := range set {
		if s == v {
			return true
		}
	}
	return false
}

func IsFace(s string) bool  { return oneOf(s, faces) }
func IsHands(s string) bool { return oneOf(s, hands) }
func IsShape(s string) bool { return oneOf(s, shapes) }

func IsDateFormat(s string) bool {
	for _, f := range DateFormats {
		if DateFormat(s) == f {
			return true
		}
	}
	return false
}

// Sync is the subset of synced storage the clock starts from. Nil fields
// fall back to defaults.
type Sync struct {
	Clock       *Settings
	Greeting    string
	DateFormat  DateFormat
	AnalogStyle *AnalogStyle
}

// ShadeUpdate carries either a slider opacity or a light/dark shade click.
type ShadeUpdate struct {
	Opacity *float64 `json:"opacity,omitempty"`
	Shade   string   `json:"shade,omitempty"`
}

// Update is a partial settings change from the settings panel. Absent
// fields keep their stored value.
type Update struct {
	Ampm       *bool        `json:"ampm,omitempty"`
	Analog     *bool        `json:"analog,omitempty"`
	Seconds    *bool        `json:"seconds,omitempty"`
	DateFormat *string      `json:"dateformat,omitempty"`
	Greeting   *string      `json:"greeting,omitempty"`
	Timezone   *string      `json:"timezone,omitempty"`
	Shape      *string      `json:"shape,omitempty"`
	Face       *string      `json:"face,omitempty"`
	Hands      *string      `json:"hands,omitempty"`
	Size       *float64     `json:"size,omitempty"`
	Border     *ShadeUpdate `json:"border,omitempty"`
	Background *ShadeUpdate `json:"background,omitempty"`
}
