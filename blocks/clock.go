package blocks

import (
	"fmt"
	"html"
	"math"
	"strconv"
	"strings"

	"swayclock/logging"
	"swayclock/surface"
	"swayclock/theme"
)

// ClockProvider shows the digital time or, in analog mode, the clock-face
// emoji nearest the hour hand.
type ClockProvider struct {
	s       *surface.Surface
	digitPx int
	blk     Block
}

func NewClockProvider(e *Env) *ClockProvider {
	return &ClockProvider{s: e.Surface, digitPx: e.Config.DigitPx}
}

func (c *ClockProvider) Name() string { return "clock" }

func (c *ClockProvider) Current() Block { return c.blk }

func (c *ClockProvider) Refresh() bool {
	timeEl := c.s.El("time")
	size := clockSize(c.s)
	blk := Block{
		Name:                "clock",
		Separator:           false,
		SeparatorBlockWidth: SeparatorWidth,
		Markup:              "pango",
	}

	var text string
	if timeEl.HasClass("analog") {
		text = analogText(c.s)
		analog := c.s.El("analog")
		blk.Border = hexFromRGBA(analog.Style("--analog-border"))
		blk.Background = hexFromRGBA(analog.Style("--analog-background"))
	} else {
		hh := c.s.El("digital-hh").Text()
		text = hh + ":" + c.s.El("digital-mm").Text()
		if timeEl.HasClass("seconds") {
			text += ":" + c.s.El("digital-ss").Text()
			blk.MinWidth = c.minWidth(len(hh)+4, size)
			blk.Align = "left"
		}
	}
	blk.FullText = sized(html.EscapeString(text), size)

	if blk == c.blk {
		return false
	}
	c.blk = blk
	return true
}

// minWidth reserves room for the hh:mm: prefix plus the seconds width the
// clock computed, so the bar does not shift as digits change.
func (c *ClockProvider) minWidth(prefixCells int, size float64) int {
	ch := strings.TrimSuffix(c.s.El("digital").Style("--seconds-width"), "ch")
	secs, err := strconv.ParseFloat(ch, 64)
	if err != nil {
		secs = 2
	}
	return int(math.Round((float64(prefixCells) + secs) * float64(c.digitPx) * size))
}

// analogText maps the hour hand angle to one of the 24 half-hour clock faces.
func analogText(s *surface.Surface) string {
	deg := strings.TrimSuffix(s.El("analog-hours").Style("--deg"), "deg")
	angle, err := strconv.ParseFloat(deg, 64)
	if err != nil {
		return "🕛"
	}
	slot := int(math.Round(angle/15)) % 24
	hour := slot / 2
	if hour == 0 {
		hour = 12
	}
	base := rune(0x1F550) // one o'clock
	if slot%2 == 1 {
		base = 0x1F55C // one-thirty
	}
	return string(base + rune(hour-1))
}

func clockSize(s *surface.Surface) float64 {
	em := strings.TrimSuffix(s.El("root").Style("--clock-size"), "em")
	size, err := strconv.ParseFloat(em, 64)
	if err != nil || size <= 0 {
		return 1
	}
	return size
}

// sized wraps escaped pango text in a relative size span.
func sized(text string, size float64) string {
	if size == 1 {
		return text
	}
	return fmt.Sprintf(`<span size="%d%%">%s</span>`, int(math.Round(size*100)), text)
}

// hexFromRGBA converts "rgba(R, G, B, A)" back to #RRGGBBAA.
func hexFromRGBA(s string) string {
	rgb, alpha, ok := theme.ParseRGBA(s)
	if !ok {
		return ""
	}
	hex, err := theme.RGBA(rgb, alpha)
	if err != nil {
		logging.Debug("analog colour", "value", s, "error", err)
		return ""
	}
	return hex
}
